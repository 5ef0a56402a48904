// Package fsops performs sandboxed filesystem writes for document saves.
//
// All writes resolve against a single sandbox root taken from
// DRAFTER_WRITE_ROOT (default: current working directory) and validated by
// the safety package before any bytes touch disk.
package fsops

import (
	"os"
	"path/filepath"

	"github.com/hammadafzall/drafter-agent/internal/safety"
)

// WriteDocument writes content to a file addressed by a relative path under
// the sandbox write root, creating parent directories as needed. The bytes
// written are exactly the content string, UTF-8, no added framing.
func WriteDocument(relPath, content string) error {
	root, err := writeRoot()
	if err != nil {
		return err
	}

	absPath, err := safety.ValidateWritePath(root, relPath)
	if err != nil {
		return err // propagate ToolError unchanged
	}

	if err := os.MkdirAll(filepath.Dir(absPath), 0o755); err != nil {
		return err
	}

	return os.WriteFile(absPath, []byte(content), 0o644)
}
