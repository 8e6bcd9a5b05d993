package cmd

import (
	"errors"
	"testing"
)

// stubDirs replaces the directory lookups for the duration of the test.
func stubDirs(t *testing.T, pwd string, pwdErr error, home string, homeErr error) {
	t.Helper()

	oldGetwd, oldHomeDir := getwd, homeDir
	t.Cleanup(func() {
		getwd, homeDir = oldGetwd, oldHomeDir
	})

	getwd = func() (string, error) { return pwd, pwdErr }
	homeDir = func() (string, error) { return home, homeErr }
}

func TestResolveDirs(t *testing.T) {
	t.Run("returns working and home directories", func(t *testing.T) {
		stubDirs(t, "/home/tester/src", nil, "/home/tester", nil)

		pwd, home, err := resolveDirs()
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		if pwd != "/home/tester/src" {
			t.Errorf("expected pwd %q, got %q", "/home/tester/src", pwd)
		}

		if home != "/home/tester" {
			t.Errorf("expected home %q, got %q", "/home/tester", home)
		}
	})

	t.Run("returns error when working directory is unavailable", func(t *testing.T) {
		stubDirs(t, "", errors.New("getwd: no such file or directory"), "/home/tester", nil)

		_, _, err := resolveDirs()
		if !errors.Is(err, ErrWorkingDir) {
			t.Errorf("expected error %v, got %v", ErrWorkingDir, err)
		}
	})

	t.Run("returns error when home directory is unavailable", func(t *testing.T) {
		stubDirs(t, "/tmp", nil, "", errors.New("blank output when reading home directory"))

		_, _, err := resolveDirs()
		if !errors.Is(err, ErrHomeDir) {
			t.Errorf("expected error %v, got %v", ErrHomeDir, err)
		}
	})

	t.Run("returns error when home directory is empty", func(t *testing.T) {
		stubDirs(t, "/tmp", nil, "  ", nil)

		_, _, err := resolveDirs()
		if !errors.Is(err, ErrHomeDir) {
			t.Errorf("expected error %v, got %v", ErrHomeDir, err)
		}
	})
}
