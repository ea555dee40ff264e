package generator

import (
	"context"
	"io"

	charmlog "github.com/charmbracelet/log"
	"github.com/goaux/contextvalue"
)

func newLogger(w io.Writer, prefix string, verbose bool) *charmlog.Logger {
	level := charmlog.InfoLevel
	if verbose {
		level = charmlog.DebugLevel
	}
	return charmlog.NewWithOptions(w, charmlog.Options{
		Level:           level,
		Prefix:          prefix,
		ReportTimestamp: false,
	})
}

// logger returns the logger stored in ctx, or a discarding one.
func logger(ctx context.Context) *charmlog.Logger {
	if l, ok := contextvalue.From[*charmlog.Logger](ctx); ok {
		return l
	}
	return charmlog.New(io.Discard)
}
