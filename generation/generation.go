// Package generation decides whether and where a rendered model is written.
package generation

import (
	"fmt"
	"path/filepath"

	"github.com/takumakei/model-gen-go/model"
)

// DefaultDir is used when no directory is configured.
const DefaultDir = "src/models"

// Config controls a single generation.
type Config struct {
	Force  bool
	DryRun bool
	Dir    string
}

// State is where a generation ended up.
type State int

const (
	Pending State = iota
	Skipped
	Blocked
	Written
)

func (s State) String() string {
	switch s {
	case Pending:
		return "pending"
	case Skipped:
		return "skipped"
	case Blocked:
		return "blocked"
	case Written:
		return "written"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

// Renderer produces the file contents for a model.
type Renderer interface {
	Ext() string
	Render(model.Data) (string, error)
}

// Result reports the final state and the resolved path.
// Path is empty when the generation was skipped.
type Result struct {
	State State
	Path  string
}

func (c Config) dir() string {
	if c.Dir == "" {
		return DefaultDir
	}
	return c.Dir
}

// Path resolves the file a model is written to.
func Path(def model.Definition, dir, ext string) string {
	name := def.Data.FileName
	if ext != "" {
		name += "." + ext
	}
	return filepath.Join(dir, name)
}

// Generate writes def to disk according to cfg.
//
// A dry run touches nothing. Otherwise the directory is created, an
// existing file blocks the write unless cfg.Force is set, and the file is
// replaced with the rendered text. Nothing is retried.
func Generate(fsys FileSystem, r Renderer, def model.Definition, cfg Config) (Result, error) {
	if cfg.DryRun {
		return Result{State: Skipped}, nil
	}

	dir := cfg.dir()
	path := Path(def, dir, r.Ext())

	if err := fsys.EnsureDir(dir); err != nil {
		return Result{State: Pending, Path: path}, &IOError{Op: "create directory", Path: dir, Err: err}
	}

	exists, err := fsys.Exists(path)
	if err != nil {
		return Result{State: Pending, Path: path}, &IOError{Op: "stat", Path: path, Err: err}
	}
	if exists && !cfg.Force {
		return Result{State: Blocked, Path: path}, &AlreadyExistsError{Path: path}
	}

	text, err := r.Render(def.Data)
	if err != nil {
		return Result{State: Pending, Path: path}, err
	}
	if err := fsys.WriteAll(path, []byte(text)); err != nil {
		return Result{State: Pending, Path: path}, &IOError{Op: "write", Path: path, Err: err}
	}
	return Result{State: Written, Path: path}, nil
}
