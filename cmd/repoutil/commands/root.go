// Package commands implements the CLI commands for repoutil.
package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/repoutil/internal/app"
	"go.trai.ch/repoutil/internal/build"
	"go.trai.ch/repoutil/internal/core/domain"
)

// CLI represents the command line interface for repoutil.
type CLI struct {
	app     Application
	rootCmd *cobra.Command
}

// Application represents the application logic interface.
type Application interface {
	Verify(ctx context.Context, opts app.VerifyOptions) error
	Watch(ctx context.Context, opts app.WatchOptions) error
}

// New creates a new CLI instance with the given app.
func New(a Application) *CLI {
	rootCmd := &cobra.Command{
		Use:           "repoutil",
		Short:         "Keep package versions consistent across a repository",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
	}

	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"{{.Name}} version {{.Version}} (commit: %s, date: %s)\n",
		build.Commit,
		build.Date,
	))
	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	c := &CLI{
		app:     a,
		rootCmd: rootCmd,
	}

	rootCmd.AddCommand(c.newVerifyCmd())
	rootCmd.AddCommand(c.newWatchCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// SetOutput sets the output and error streams for the root command.
func (c *CLI) SetOutput(out, err io.Writer) {
	c.rootCmd.SetOut(out)
	c.rootCmd.SetErr(err)
}

// scanFlags are the flags shared by verify and watch.
type scanFlags struct {
	config   string
	patterns []string
	ignore   []string
	cacheDir string
}

func (f *scanFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.config, "config", "c", "", "Path to "+domain.ConfigFileName+" (default: discovered from the root upward)")
	cmd.Flags().StringArrayVarP(&f.patterns, "pattern", "p", nil, "Manifest file name glob (repeatable, overrides the config)")
	cmd.Flags().StringArrayVar(&f.ignore, "ignore", nil, "Directory name glob to skip (repeatable, overrides the config)")
	cmd.Flags().StringVar(&f.cacheDir, "cache-dir", "", "Cache extracted references in this directory")
}

func (f *scanFlags) options(cmd *cobra.Command, args []string) app.VerifyOptions {
	root := "."
	if len(args) > 0 {
		root = args[0]
	}
	return app.VerifyOptions{
		Root:       root,
		ConfigPath: f.config,
		Patterns:   f.patterns,
		Ignore:     f.ignore,
		CacheDir:   f.cacheDir,
		Output:     cmd.OutOrStdout(),
	}
}
