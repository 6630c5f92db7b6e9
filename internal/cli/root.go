package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"rfind/config"
	"rfind/internal/adapter/logging"
)

// globalOptions are shared by every command.
type globalOptions struct {
	cfgFile   string
	logLevel  string
	logFormat string
	json      bool
	strict    bool
	progress  bool

	cfg    *config.Config
	logger logging.Logger
}

func newRootCmd() *cobra.Command {
	opts := &globalOptions{}
	search := &searchOptions{}

	rootCmd := &cobra.Command{
		Use:   "rfind",
		Short: "Search directory trees for paths matching regular expressions",
		Long: `rfind walks one or more directories and prints every file or directory whose
path matches all of the given regular expressions and whose size is greater than
the given number of bytes.

Example usage:
  rfind -d . -p '\.go$'                  # Go files under the current directory
  rfind -d /var/log -p log -p app -s 1024 # paths containing "log" and "app", over 1 KiB
  rfind save big-logs -d /var/log -p '\.log$' -s 1048576
  rfind run big-logs`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.load(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSearch(cmd, opts, search)
		},
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&opts.cfgFile, "config", "", "config file (default is ./rfind.yaml)")
	pf.StringVar(&opts.logLevel, "log-level", "", "diagnostic level: debug, info, warn, error (default from config)")
	pf.StringVar(&opts.logFormat, "log-format", "", "diagnostic format: text or json (default from config)")
	pf.BoolVar(&opts.json, "json", false, "print results as JSON")
	pf.BoolVar(&opts.strict, "strict", false, "reject invalid patterns instead of matching everything")
	pf.BoolVar(&opts.progress, "progress", false, "show a progress spinner on stderr")

	search.bind(rootCmd)

	rootCmd.AddCommand(
		newSaveCmd(opts),
		newRunCmd(opts),
		newListCmd(opts),
		newDeleteCmd(opts),
	)

	return rootCmd
}

// load reads the config file and builds the diagnostic logger. Flags win over config.
func (o *globalOptions) load(cmd *cobra.Command) error {
	var err error
	if o.cfgFile != "" {
		o.cfg, err = config.Load(o.cfgFile)
	} else {
		var wd string
		wd, err = os.Getwd()
		if err != nil {
			return fmt.Errorf("failed to get working directory: %w", err)
		}
		o.cfg, err = config.LoadFromDir(wd)
	}
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if o.logLevel != "" {
		o.cfg.Logging.Level = o.logLevel
	}
	if o.logFormat != "" {
		o.cfg.Logging.Format = o.logFormat
	}
	if o.json {
		o.cfg.Output.Format = "json"
	}
	if o.strict {
		o.cfg.Search.StrictPatterns = true
	}
	if o.progress {
		o.cfg.Output.Progress = true
	}

	o.logger, err = logging.New(o.cfg.Logging.Format, cmd.ErrOrStderr(), o.cfg.Logging.Level)
	return err
}

// Execute runs the root command. Only argument, config and store errors fail the process.
func Execute() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(rootCmd.ErrOrStderr(), "Error: %v\n", err)
		os.Exit(1)
	}
}
