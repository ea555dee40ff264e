package generator

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/goaux/contextvalue"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/takumakei/model-gen-go/execpipe"
	"github.com/takumakei/model-gen-go/generation"
	"github.com/takumakei/model-gen-go/model"
	"github.com/takumakei/model-gen-go/render"
)

type modelFlags struct {
	Dir        string
	Force      bool
	Dry        bool
	FieldsFrom string
	Target     string
	Format     bool
}

func newModelCommand(config *Config, configFile *string) *cobra.Command {
	var flags modelFlags

	cmd := &cobra.Command{
		Use:   "model <name> [field...]",
		Short: "Generate a model from name:type[:pub|pri] field descriptors",
		Example: "  " + config.Use + " generate model user id:i32 email:String:pri\n" +
			"  " + config.Use + " generate model user id:i32 --dir models --force",
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path, required := config.ConfigFile, false
			if *configFile != "" {
				path, required = *configFile, true
			}
			project, err := LoadProject(path, required)
			if err != nil {
				return err
			}
			flags.resolve(cmd.Flags(), config, project)
			return runModel(cmd, flags, args[0], args[1:])
		},

		ValidArgsFunction: func(*cobra.Command, []string, string) ([]cobra.Completion, cobra.ShellCompDirective) {
			return nil, cobra.ShellCompDirectiveNoFileComp
		},
	}

	fl := cmd.Flags()
	fl.SortFlags = false
	fl.StringVarP(&flags.Dir, "dir", "d", "", "Output `directory` (default "+config.DefaultDir+")")
	fl.BoolVarP(&flags.Force, "force", "f", false, "Overwrite an existing file")
	fl.BoolVar(&flags.Dry, "dry", false, "Print the model without touching the file system")
	fl.StringVarP(&flags.FieldsFrom, "fields-from", "F", "", "Read more descriptors from `file`, one per line (- for stdin)")
	fl.StringVarP(&flags.Target, "target", "t", "", "Target `language`: "+strings.Join(render.Targets(), ", ")+" (default "+config.DefaultTarget+")")
	fl.BoolVar(&flags.Format, "format", false, "Pipe the output through the target's formatter")

	cmd.MarkFlagDirname("dir")
	cmd.MarkFlagFilename("fields-from")
	cmd.RegisterFlagCompletionFunc("target", completeTargets)
	return cmd
}

// resolve fills the unset flags from the project file, then from config.
func (f *modelFlags) resolve(fs *pflag.FlagSet, config *Config, project Project) {
	changed := fs.Changed
	if !changed("dir") {
		f.Dir = firstNonEmpty(project.Dir, config.DefaultDir)
	}
	if !changed("target") {
		f.Target = firstNonEmpty(project.Target, config.DefaultTarget)
	}
	if !changed("force") {
		f.Force = project.Force
	}
	if !changed("format") {
		f.Format = project.Format
	}
}

func runModel(cmd *cobra.Command, flags modelFlags, name string, descriptors []string) error {
	ctx := cmd.Context()
	log := logger(ctx)

	if flags.FieldsFrom != "" {
		more, err := readDescriptorsAuto(cmd.InOrStdin(), flags.FieldsFrom)
		if err != nil {
			return err
		}
		log.Debug("read descriptors", "file", flags.FieldsFrom, "count", len(more))
		descriptors = append(descriptors, more...)
	}

	data, err := model.Build(name, descriptors)
	if err != nil {
		return err
	}
	def := model.NewDefinition(data)

	r, err := render.Lookup(flags.Target)
	if err != nil {
		return err
	}
	text, err := r.Render(data)
	if err != nil {
		return err
	}
	if flags.Format {
		if text, err = format(ctx, r.Name(), text); err != nil {
			return err
		}
	}

	cfg := generation.Config{
		Force:  flags.Force,
		DryRun: flags.Dry,
		Dir:    flags.Dir,
	}
	log.Debug("generate", "model", data.ClassName, "fields", len(data.Fields),
		"target", r.Name(), "dir", cfg.Dir, "force", cfg.Force, "dry", cfg.DryRun)

	log.Info("Generate the following model:")
	if _, err := io.WriteString(cmd.OutOrStdout(), text); err != nil {
		return err
	}

	res, err := generation.Generate(fileSystem(ctx), rendered{ext: r.Ext(), text: text}, def, cfg)
	switch res.State {
	case generation.Skipped:
		log.Info("dry run, nothing written")
	case generation.Blocked:
		log.Warn("blocked", "path", res.Path)
	case generation.Written:
		log.Info("written", "path", res.Path)
	}
	return err
}

// rendered hands already rendered text to generation.Generate so that the
// file receives exactly what was printed.
type rendered struct {
	ext  string
	text string
}

func (r rendered) Ext() string                       { return r.ext }
func (r rendered) Render(model.Data) (string, error) { return r.text, nil }

var formatters = map[string][]string{
	"rust": {"rustfmt", "--emit", "stdout", "--edition", "2021"},
	"go":   {"gofmt"},
}

func format(ctx context.Context, target, text string) (string, error) {
	argv, ok := formatters[target]
	if !ok {
		return "", fmt.Errorf("no formatter for target %q", target)
	}
	if err := execpipe.CheckPath(argv[0]); err != nil {
		return "", fmt.Errorf("%s was not found, consider using `--format=false`: %w", argv[0], err)
	}
	return execpipe.Filter(ctx, text, argv[0], argv[1:]...)
}

// fileSystem lets tests swap the disk for a fake through the context.
func fileSystem(ctx context.Context) generation.FileSystem {
	if fsys, ok := contextvalue.From[generation.FileSystem](ctx); ok {
		return fsys
	}
	return generation.OS
}

func firstNonEmpty(list ...string) string {
	for _, s := range list {
		if s != "" {
			return s
		}
	}
	return ""
}
