package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vytor/chronoquest/internal/config"
	"github.com/vytor/chronoquest/internal/logger"
	"github.com/vytor/chronoquest/internal/share"
)

// Options holds the collaborators a command needs beyond its flags.
type Options struct {
	Config    config.Config
	Clipboard share.Target
	Now       func() time.Time
}

type globalFlags struct {
	dbPath      string
	puzzlesPath string
	verbose     bool
}

// NewRootCmd builds the chronoquest command tree.
func NewRootCmd(opts Options) *cobra.Command {
	if opts.Clipboard == nil {
		opts.Clipboard = share.Clipboard()
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}

	flags := &globalFlags{}
	root := &cobra.Command{
		Use:           "chronoquest",
		Short:         "ChronoQuest - guess the year of today's historical event",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := logger.WARN
			if flags.verbose {
				level = logger.DEBUG
			}
			logger.SetDefault(logger.New(
				logger.WithOutput(cmd.ErrOrStderr()),
				logger.WithLevel(level),
				logger.WithColors(opts.Config.LogColors),
			))
		},
	}

	root.PersistentFlags().StringVar(&flags.dbPath, "db", opts.Config.DBPath, "SQLite database holding the streak")
	root.PersistentFlags().StringVar(&flags.puzzlesPath, "puzzles", opts.Config.PuzzlesPath, "puzzle dataset (.json or .yaml); empty uses the built-in set")
	root.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(playCmd(flags, opts))
	root.AddCommand(puzzleCmd(flags, opts))
	root.AddCommand(streakCmd(flags, opts))
	return root
}

// Execute runs the CLI with configuration from the environment.
func Execute(version string) error {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return err
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintln(os.Stderr, "Error: invalid configuration:", err)
		return err
	}

	root := NewRootCmd(Options{Config: cfg})
	root.Version = version
	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return err
	}
	return nil
}
