package util

import (
	"fmt"
	"github.com/natefinch/atomic"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// ReadIntFromFile reads a single integer from a (sysfs) file
func ReadIntFromFile(path string) (value int, err error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return -1, err
	}
	text := strings.TrimSpace(string(data))
	if len(text) <= 0 {
		return -1, fmt.Errorf("file is empty: %s", path)
	}
	value, err = strconv.Atoi(text)
	if err != nil {
		return -1, fmt.Errorf("file %s does not contain an integer: %q", path, text)
	}
	return value, nil
}

// WriteIntToFile write a single integer to a file path
func WriteIntToFile(value int, path string) error {
	evaluatedPath, err := resolvePath(path)
	if len(evaluatedPath) > 0 && err == nil {
		path = evaluatedPath
	}
	valueAsString := strconv.Itoa(value)

	// sysfs attributes must never be created
	file, err := os.OpenFile(path, os.O_WRONLY|os.O_TRUNC, 0)
	if err != nil {
		return err
	}
	_, err = file.WriteString(valueAsString)
	closeErr := file.Close()
	if err != nil {
		return err
	}
	return closeErr
}

func resolvePath(path string) (string, error) {
	return filepath.EvalSymlinks(path)
}

// WriteFileAtomic replaces the content of the given file atomically.
// This must not be used for sysfs attributes.
func WriteFileAtomic(path string, content string) error {
	evaluatedPath, err := resolvePath(path)
	if len(evaluatedPath) > 0 && err == nil {
		path = evaluatedPath
	}
	return atomic.WriteFile(path, strings.NewReader(content))
}

// FileExists returns true if the given path exists and is a regular file (or a symlink to one)
func FileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}
