package misc

import (
	"errors"
	"fmt"
	"os"
)

func ReadFile(fileName string) ([]byte, error) {
	if fileName == "" {
		return nil, errors.New("no filename supplied")
	}
	contents, err := os.ReadFile(fileName)
	if err != nil {
		return nil, fmt.Errorf("unable to read %s - %s", fileName, err)
	}
	return contents, nil
}

func WriteFile(fileName string, contents []byte) error {
	if fileName == "" {
		return errors.New("no filename supplied")
	}
	if err := os.WriteFile(fileName, contents, 0o644); err != nil {
		return fmt.Errorf("unable to write %s - %s", fileName, err)
	}
	return nil
}
