// Package generator implements the command tree that turns a model name and
// field descriptors into a source file.
package generator

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/goaux/contextvalue"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"github.com/takumakei/model-gen-go/render"
)

// Main runs the command with the process arguments and exits on error.
func Main(ctx context.Context, config Config) {
	if err := Run(ctx, config, os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err.Error())
		os.Exit(1)
	}
}

// Run executes the command tree with args.
func Run(ctx context.Context, config Config, args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	cmd := NewCommand(&config)
	cmd.SetArgs(args)
	cmd.SetIn(stdin)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	return cmd.ExecuteContext(ctx)
}

// NewCommand builds the root command: <use> generate model <name> [field...].
// Unset defaults in config are filled in.
func NewCommand(config *Config) *cobra.Command {
	config.defaults()

	var (
		verbose    bool
		configFile string
	)

	root := &cobra.Command{
		Use:     config.Use,
		Short:   config.Short,
		Long:    renderUsage(config.Long),
		Version: config.Version,
		Args:    cobra.NoArgs,
		RunE:    requireSubcommand,

		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			l := newLogger(cmd.ErrOrStderr(), config.Use, verbose)
			cmd.SetContext(contextvalue.With(cmd.Context(), l))
		},

		SilenceErrors: true,
		SilenceUsage:  true,
	}

	pf := root.PersistentFlags()
	pf.SortFlags = false
	pf.BoolVarP(&verbose, "verbose", "v", false, "Log debug messages")
	pf.StringVar(&configFile, "config", "", "Project `file` (default "+config.ConfigFile+")")
	root.MarkPersistentFlagFilename("config", "yaml", "yml")

	generate := &cobra.Command{
		Use:     "generate",
		Aliases: []string{"g"},
		Short:   "Generate source files",
		Args:    cobra.NoArgs,
		RunE:    requireSubcommand,
	}
	generate.AddCommand(newModelCommand(config, &configFile))

	root.CompletionOptions.HiddenDefaultCmd = true
	root.AddCommand(generate)
	return root
}

func requireSubcommand(cmd *cobra.Command, _ []string) error {
	cmd.Help()
	return fmt.Errorf("%s requires a subcommand", cmd.CommandPath())
}

func renderUsage(usage string) string {
	if isTTY(os.Stdout) {
		r, err := glamour.NewTermRenderer(
			glamour.WithEnvironmentConfig(),
			glamour.WithWordWrap(100),
		)
		if err == nil { // if NO error
			if s, err := r.Render(usage); err == nil { // if NO error
				return s
			}
		}
	}
	return usage
}

func isTTY(io any) bool {
	if f, ok := io.(*os.File); ok {
		return isatty.IsTerminal(f.Fd())
	}
	return false
}

func completeTargets(*cobra.Command, []string, string) ([]cobra.Completion, cobra.ShellCompDirective) {
	return render.Targets(), cobra.ShellCompDirectiveNoFileComp
}
