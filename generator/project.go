package generator

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/goaux/stacktrace/v2"
	"gopkg.in/yaml.v3"
)

// Project is the optional per-project file, .mime.yaml by default.
type Project struct {
	Dir    string `yaml:"dir"`
	Target string `yaml:"target"`
	Format bool   `yaml:"format"`
	Force  bool   `yaml:"force"`
}

// LoadProject reads the project file at path.
// A missing file yields a zero Project unless required is set.
func LoadProject(path string, required bool) (Project, error) {
	var p Project
	f, err := os.Open(path)
	if err != nil {
		if !required && errors.Is(err, fs.ErrNotExist) {
			return p, nil
		}
		return p, stacktrace.Trace(err)
	}
	defer f.Close()

	dec := yaml.NewDecoder(bufio.NewReader(f))
	dec.KnownFields(true)
	if err := dec.Decode(&p); err != nil && !errors.Is(err, io.EOF) {
		return p, fmt.Errorf("%s: %w", path, err)
	}
	return p, nil
}
