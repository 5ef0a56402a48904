// Package safety guards where and under what names documents get written.
package safety

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ToolError is a machine-readable error body surfaced back to the model as JSON.
type ToolError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Error returns a compact, single-line JSON string to keep tool results small.
func (e ToolError) Error() string {
	b, _ := json.Marshal(e)
	return string(b)
}

// InitWriteRoot resolves the absolute sandbox root for document saves.
// An empty root defaults to the current working directory.
func InitWriteRoot(root string) (string, error) {
	if root == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("getwd: %w", err)
		}
		root = cwd
	}
	abs, err := filepath.Abs(root)
	if err != nil {
		return "", fmt.Errorf("abs(writeRoot): %w", err)
	}
	// Resolve symlinks where possible so later boundary checks are reliable.
	if r, err := filepath.EvalSymlinks(abs); err == nil {
		abs = r
	}
	return abs, nil
}

// ValidateWritePath resolves relPath against absRoot and returns an absolute
// path inside the sandbox. It rejects absolute inputs, parent traversal, and
// symlink escapes, and denies writes under .git/ and .drafter/ (the telemetry
// dir). On violation it returns a ToolError.
func ValidateWritePath(absRoot, relPath string) (string, error) {
	if filepath.IsAbs(relPath) {
		return "", ToolError{Code: "ERR_PATH_OUTSIDE_SANDBOX", Message: "absolute paths are not allowed"}
	}

	cleaned := filepath.Clean(relPath)
	if cleaned == "" || cleaned == "." {
		return "", ToolError{Code: "ERR_NOT_A_FILE", Message: "path does not name a file"}
	}

	candidate := filepath.Join(absRoot, cleaned)

	// Best-effort symlink resolution. Resolve the whole candidate if it
	// exists; otherwise resolve the deepest existing ancestor and rejoin the
	// final segment, which reveals escapes via a symlinked parent.
	if resolved, err := filepath.EvalSymlinks(candidate); err == nil {
		candidate = resolved
	} else {
		parent := filepath.Dir(candidate)
		if resolvedParent, err2 := filepath.EvalSymlinks(parent); err2 == nil {
			candidate = filepath.Join(resolvedParent, filepath.Base(candidate))
		}
	}

	// Boundary check via filepath.Rel, robust against partial prefix matches.
	rel, err := filepath.Rel(absRoot, candidate)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) || filepath.IsAbs(rel) {
		return "", ToolError{Code: "ERR_PATH_OUTSIDE_SANDBOX", Message: "requested path resolves outside the sandbox root"}
	}

	relClean := filepath.ToSlash(rel)
	for _, deny := range []string{".git", ".drafter"} {
		if relClean == deny || strings.HasPrefix(relClean, deny+"/") {
			return "", ToolError{Code: "ERR_DENIED_WRITE", Message: "writes under " + deny + "/ are not allowed"}
		}
	}

	return candidate, nil
}
