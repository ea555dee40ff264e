package generation

import "fmt"

// AlreadyExistsError is returned when the target file exists and Force is off.
type AlreadyExistsError struct {
	Path string
}

func (e *AlreadyExistsError) Error() string {
	return fmt.Sprintf("the file %s already exists, use --force to overwrite it", e.Path)
}

// IOError wraps a failure of the FileSystem.
type IOError struct {
	Op   string
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *IOError) Unwrap() error { return e.Err }
