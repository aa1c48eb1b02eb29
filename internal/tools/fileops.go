package tools

import (
	"context"
	"encoding/json"
	"os"
	"strings"
)

type fileOperationsArgs struct {
	Operation string `json:"operation"`
	Path      string `json:"path"`
	Content   string `json:"content"`
}

// FileOperations performs basic filesystem operations: list, read, write,
// exists and size. Soft misses (a read on a missing file, a size check on an
// absent path) are reported as plain text, not errors; only genuine I/O
// failures set the error flag.
func FileOperations(_ context.Context, args json.RawMessage) (Result, error) {
	var a fileOperationsArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return Result{}, err
	}

	switch a.Operation {
	case "list":
		return listDir(a.Path), nil
	case "read":
		return readFile(a.Path), nil
	case "write":
		if err := os.WriteFile(a.Path, []byte(a.Content), 0o644); err != nil {
			return errFileOperation(err), nil
		}
		return Textf("Successfully wrote to %s", a.Path), nil
	case "exists":
		if _, err := os.Stat(a.Path); err == nil {
			return Textf("Path %s exists", a.Path), nil
		}
		return Textf("Path %s does not exist", a.Path), nil
	case "size":
		fi, err := os.Stat(a.Path)
		if os.IsNotExist(err) {
			return Textf("Path %s does not exist", a.Path), nil
		}
		if err != nil {
			return errFileOperation(err), nil
		}
		return Textf("Size of %s: %d bytes", a.Path, fi.Size()), nil
	default:
		return Errorf("Unknown operation: %s", a.Operation), nil
	}
}

func listDir(path string) Result {
	fi, err := os.Stat(path)
	if err != nil || !fi.IsDir() {
		return Textf("Path %s is not a directory", path)
	}
	entries, err := os.ReadDir(path)
	if err != nil {
		return errFileOperation(err)
	}
	names := make([]string, len(entries))
	for i, e := range entries {
		names[i] = e.Name()
	}
	return Textf("Contents of %s:\n%s", path, strings.Join(names, "\n"))
}

func readFile(path string) Result {
	fi, err := os.Stat(path)
	if err != nil || !fi.Mode().IsRegular() {
		return Textf("File %s not found", path)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return errFileOperation(err)
	}
	return Textf("Contents of %s:\n%s", path, data)
}

func errFileOperation(err error) Result {
	return Errorf("Error with file operation: %v", err)
}
