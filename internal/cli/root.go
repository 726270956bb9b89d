package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/phoenix-kits/phoenix-kits/internal/branding"
	"github.com/phoenix-kits/phoenix-kits/internal/config"
	"github.com/phoenix-kits/phoenix-kits/internal/engine"
	"github.com/phoenix-kits/phoenix-kits/internal/logging"
	"github.com/phoenix-kits/phoenix-kits/internal/templates"
	"github.com/phoenix-kits/phoenix-kits/internal/ui"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// errAborted is returned by commands that already reported the failure to
// the user.
var errAborted = errors.New("aborted")

type buildInfo struct {
	version string
	commit  string
	date    string
}

// rootOptions carries the persistent flags and the state shared by
// subcommands.
type rootOptions struct {
	build        buildInfo
	verbose      bool
	templatesDir string
	logger       *zap.Logger
}

// store returns the template store selected by --templates-dir or the
// templates_dir setting.
func (o *rootOptions) store() *templates.Store {
	dir := o.templatesDir
	if dir == "" {
		dir = config.TemplatesDir()
	}
	return templates.Resolve(dir)
}

// engine returns the template engine over the selected store.
func (o *rootOptions) engine() *engine.TemplateEngine {
	return engine.New(o.store(),
		engine.WithLogger(o.logger),
		engine.WithCLIVersion(o.build.version),
	)
}

func newRootCmd(build buildInfo) *cobra.Command {
	opts := &rootOptions{build: build, logger: zap.NewNop()}

	cmd := &cobra.Command{
		Use:   branding.CLIName(),
		Short: branding.Description(),
		Long: branding.DisplayName() + `: template-driven initialization for LLM applications
with built-in observability using Arize Phoenix.`,
		Version:       build.version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			config.Load()

			logger, err := logging.New(opts.verbose, config.LogLevel())
			if err != nil {
				// A bad stored level must not lock the user out of config set.
				fmt.Fprintf(cmd.ErrOrStderr(), "Warning: %v; using the default log level\n", err)
				if logger, err = logging.New(opts.verbose, ""); err != nil {
					return err
				}
			}
			opts.logger = logger
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = opts.logger.Sync()
		},
	}

	cmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "Enable debug logging on stderr")
	cmd.PersistentFlags().StringVar(&opts.templatesDir, "templates-dir", "", "Directory to load templates from (overrides the templates_dir setting)")

	cmd.AddCommand(
		newInitCmd(opts),
		newListCmd(opts),
		newDoctorCmd(opts),
		newConfigCmd(),
		newVersionCmd(opts),
	)
	return cmd
}

// Execute runs the root command with build info injected via ldflags.
func Execute(version, commit, date string) error {
	return execute(newRootCmd(buildInfo{version: version, commit: commit, date: date}))
}

func execute(root *cobra.Command) error {
	err := root.Execute()
	if err != nil {
		report(root.ErrOrStderr(), err)
	}
	return err
}

// report prints err unless the command already did.
func report(w io.Writer, err error) {
	if errors.Is(err, errAborted) {
		fmt.Fprintln(w, "Aborted!")
		return
	}
	ui.NewPrinter(w).Error("Error: %v", err)
}
