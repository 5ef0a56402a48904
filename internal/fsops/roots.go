package fsops

import (
	"os"
	"sync"

	"github.com/hammadafzall/drafter-agent/internal/safety"
)

var (
	rootOnce     sync.Once
	absWriteRoot string
	initRootErr  error
)

// writeRoot resolves and caches the sandbox root. The env var is read once;
// mid-run changes have no effect.
func writeRoot() (string, error) {
	rootOnce.Do(func() {
		absWriteRoot, initRootErr = safety.InitWriteRoot(os.Getenv("DRAFTER_WRITE_ROOT"))
	})
	return absWriteRoot, initRootErr
}
