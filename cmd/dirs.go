package cmd

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/mitchellh/go-homedir"
)

var (
	ErrWorkingDir = errors.New("failed to determine the current directory")
	ErrHomeDir    = errors.New("failed to determine the home directory")
)

// Replaced in tests.
var (
	getwd   = os.Getwd
	homeDir = homedir.Dir
)

// resolveDirs returns the current working directory and the user's home directory.
func resolveDirs() (string, string, error) {
	pwd, err := getwd()
	if err != nil {
		return "", "", fmt.Errorf("%w: %s", ErrWorkingDir, err)
	}

	home, err := homeDir()
	if err != nil {
		return "", "", fmt.Errorf("%w: %s", ErrHomeDir, err)
	}

	if strings.TrimSpace(home) == "" {
		return "", "", fmt.Errorf("%w: home directory is empty", ErrHomeDir)
	}

	return pwd, home, nil
}
