package generator

import (
	"bufio"
	"errors"
	"io"
	"os"
	"strings"

	"github.com/goaux/iter/bufioscanner"
	"github.com/goaux/stacktrace/v2"
)

var errTerminalInput = errors.New("refusing to read field descriptors from a terminal, pipe them in or pass a file")

// readDescriptorsAuto reads descriptors from path, or from cin when path is "-".
func readDescriptorsAuto(cin io.Reader, path string) ([]string, error) {
	if path == "-" {
		if isTTY(cin) {
			return nil, errTerminalInput
		}
		return readDescriptors(cin)
	}
	f, err := stacktrace.Trace2(os.Open(path))
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return readDescriptors(f)
}

// readDescriptors returns one descriptor per line.
// Blank lines and lines starting with '#' are skipped.
func readDescriptors(r io.Reader) ([]string, error) {
	var list []string
	sc := bufio.NewScanner(r)
	for _, line := range bufioscanner.New(sc).Text() {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		list = append(list, line)
	}
	if err := sc.Err(); err != nil {
		return nil, stacktrace.Trace(err)
	}
	return list, nil
}
