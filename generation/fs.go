package generation

import (
	"errors"
	"io/fs"
	"os"

	"github.com/goaux/stacktrace/v2"
)

// FileSystem is what Generate needs from the disk.
type FileSystem interface {
	EnsureDir(path string) error
	Exists(path string) (bool, error)
	WriteAll(path string, data []byte) error
}

// OS is the FileSystem backed by the os package.
var OS FileSystem = osFS{}

type osFS struct{}

func (osFS) EnsureDir(path string) error {
	return stacktrace.Trace(os.MkdirAll(path, 0o755))
}

func (osFS) Exists(path string) (bool, error) {
	_, err := os.Stat(path)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	return false, stacktrace.Trace(err)
}

func (osFS) WriteAll(path string, data []byte) error {
	return stacktrace.Trace(os.WriteFile(path, data, 0o644))
}
