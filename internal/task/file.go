package task

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// DefaultFile is the task file used when no other path is configured.
const DefaultFile = "tasks.json"

// ErrNullCollection is returned when a task file is empty or holds JSON null.
var ErrNullCollection = errors.New("task file holds no collection")

// ReadFile reads and parses a task file.
// A missing file yields an error wrapping fs.ErrNotExist.
func ReadFile(path string) ([]Task, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read task file: %w", err)
	}
	return Decode(data)
}

// Decode parses a JSON array of tasks.
func Decode(data []byte) ([]Task, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, ErrNullCollection
	}

	var tasks []Task
	if err := json.Unmarshal(data, &tasks); err != nil {
		return nil, fmt.Errorf("parse task file: %w", err)
	}
	if tasks == nil {
		return nil, ErrNullCollection
	}
	return tasks, nil
}

// Encode renders tasks as an indented JSON array with a trailing newline.
func Encode(tasks []Task) ([]byte, error) {
	if tasks == nil {
		tasks = []Task{}
	}
	data, err := json.MarshalIndent(tasks, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal tasks: %w", err)
	}
	return append(data, '\n'), nil
}

// WriteFile writes tasks to path through a temporary file and a rename.
// A symlinked path is written through to its target, and an existing file
// keeps its permissions.
func WriteFile(path string, tasks []Task) error {
	data, err := Encode(tasks)
	if err != nil {
		return err
	}

	target, mode, err := resolveTarget(path)
	if err != nil {
		return err
	}

	tmpFile, err := os.CreateTemp(filepath.Dir(target), filepath.Base(target)+".tmp")
	if err != nil {
		return fmt.Errorf("create temp task file: %w", err)
	}
	name := tmpFile.Name()
	_, err = tmpFile.Write(data)
	if err == nil {
		err = tmpFile.Chmod(mode)
	}
	if err1 := tmpFile.Close(); err1 != nil && err == nil {
		err = err1
	}
	if err != nil {
		os.Remove(name)
		return fmt.Errorf("write temp task file: %w", err)
	}

	if err := os.Rename(name, target); err != nil {
		os.Remove(name)
		return fmt.Errorf("rename task file: %w", err)
	}
	return nil
}

// resolveTarget follows symlinks at path and returns the file to replace
// along with the permissions the new file should carry.
func resolveTarget(path string) (string, os.FileMode, error) {
	target := path
	if resolved, err := filepath.EvalSymlinks(path); err == nil {
		target = resolved
	} else if !errors.Is(err, fs.ErrNotExist) {
		return "", 0, fmt.Errorf("resolve task file: %w", err)
	} else if link, lerr := os.Readlink(path); lerr == nil {
		// Dangling link: create its target.
		if !filepath.IsAbs(link) {
			link = filepath.Join(filepath.Dir(path), link)
		}
		target = link
	}

	info, err := os.Stat(target)
	switch {
	case err == nil:
		return target, info.Mode().Perm(), nil
	case errors.Is(err, fs.ErrNotExist):
		return target, 0o644, nil
	default:
		return "", 0, fmt.Errorf("stat task file: %w", err)
	}
}

// WithJSONExt appends ".json" unless path already ends with it, ignoring case.
func WithJSONExt(path string) string {
	if strings.HasSuffix(strings.ToLower(path), ".json") {
		return path
	}
	return path + ".json"
}
