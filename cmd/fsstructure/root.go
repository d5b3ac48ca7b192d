package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/ozum/fs-structure/pkg/fsstructure"
)

// envLogLevel supplies the --log-level default. It may also be set in a .env file.
const envLogLevel = "FSSTRUCTURE_LOG_LEVEL"

// app holds the state shared by all subcommands of one invocation.
type app struct {
	logLevel string
	cwd      string
	fs       *fsstructure.FSStructure
}

// options returns the per-call options every subcommand starts from.
func (a *app) options() []fsstructure.Option {
	return []fsstructure.Option{fsstructure.WithCwd(a.cwd)}
}

// newRootCmd builds the command tree. Each call returns independent flag state.
func newRootCmd() *cobra.Command {
	a := &app{}

	cmd := &cobra.Command{
		Use:   "fsstructure",
		Short: "Create, remove and load file trees described in JSON or YAML",
		Long: `fsstructure converts between plain tree descriptions and the filesystem.
A tree file maps relative paths to file contents, nested mappings (directories)
or descriptors such as {"$type": "Symlink", "target": "./a"}.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			_ = godotenv.Load()

			levelStr := a.logLevel
			if !cmd.Flags().Changed("log-level") {
				if env := os.Getenv(envLogLevel); env != "" {
					levelStr = env
				}
			}
			level, err := fsstructure.LogLevelFromString(levelStr)
			if err != nil {
				return fmt.Errorf("invalid log level %q: %w", levelStr, err)
			}

			a.fs = fsstructure.New(fsstructure.WithInstanceLogger(fsstructure.NewLogger(cmd.ErrOrStderr(), level)))
			return nil
		},
	}

	cmd.PersistentFlags().StringVar(&a.logLevel, "log-level", "warn", "Log level (trace, debug, info, warn, error); env "+envLogLevel)
	cmd.PersistentFlags().StringVar(&a.cwd, "cwd", "", "Base directory trees are resolved against (default: current directory)")

	cmd.AddCommand(newVersionCommand())
	cmd.AddCommand(newCreateCommand(a))
	cmd.AddCommand(newRemoveCommand(a))
	cmd.AddCommand(newLoadCommand(a))
	cmd.AddCommand(newFlatCommand(a))
	cmd.AddCommand(newPlanCommand(a))
	cmd.AddCommand(newTempDirCommand(a))

	return cmd
}

// Execute runs the root command. This is called by main.main().
func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Long:  `Print the version number of fsstructure`,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "fsstructure version %s (commit: %s, built: %s)\n", version, commit, date)
		},
	}
}
