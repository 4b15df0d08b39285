package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/spf13/cobra"

	herror "github.com/msto63/helper/foundation/core/error"
	hlog "github.com/msto63/helper/foundation/core/log"
	"github.com/msto63/helper/pkg/core/config"
	"github.com/msto63/helper/pkg/core/logging"
)

// app carries the global flags and the runtime built from them
type app struct {
	cfgFile   string
	verbose   bool
	logFormat string
	env       string
	output    string

	cfg     *config.Config
	logger  *hlog.Logger
	logFile io.Closer
}

// NewRootCmd builds the complete command tree
func NewRootCmd() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:   "helper",
		Short: "Date, file and fleet helpers",
		Long: `helper bundles small utilities used around robot fleet operations.

Command groups:
  dates      - normalize and compare calendar dates
  datetimes  - normalize, compare and convert instants to UTC
  files      - inspect directories, JSON, CSV and Excel files
  fleet      - query the fleet API and send robot commands`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			a.close()
		},
	}

	rootCmd.PersistentFlags().StringVar(&a.cfgFile, "config", "", "config file (default: $HELPER_CONFIG or ./configs/helper.toml)")
	rootCmd.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().StringVar(&a.logFormat, "log-format", "", "log format: text, json or console")
	rootCmd.PersistentFlags().StringVar(&a.env, "env", "", "fleet environment, e.g. prod_web")
	rootCmd.PersistentFlags().StringVarP(&a.output, "output", "o", "text", "output format: text or json")

	rootCmd.AddCommand(
		newDatesCmd(a),
		newDatetimesCmd(a),
		newFilesCmd(a),
		newFleetCmd(a),
		newVersionCmd(),
	)
	return rootCmd
}

// Execute runs the CLI, cancelling the context on SIGINT and SIGTERM
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := NewRootCmd().ExecuteContext(ctx); err != nil {
		printError(os.Stderr, err)
		return err
	}
	return nil
}

func printError(w io.Writer, err error) {
	fmt.Fprintf(w, "%s %v\n", ErrorStyle.Render("error:"), err)
}

// setup loads the configuration and installs the default logger
func (a *app) setup(cmd *cobra.Command, args []string) error {
	cfg, err := a.loadConfig()
	if err != nil {
		return err
	}
	if a.env != "" {
		cfg.General.Environment = a.env
	}
	if a.output != "text" && a.output != "json" {
		return herror.Newf("invalid output format %q, use text or json", a.output).
			WithCode(herror.CodeInvalidInput).
			WithOperation("cmd.setup")
	}

	logCfg := logging.LoggerConfig{
		ServiceName:  cfg.General.Name,
		Level:        cfg.Logging.Level,
		Format:       cfg.Logging.Format,
		Output:       cmd.ErrOrStderr(),
		EnableCaller: cfg.Logging.EnableCaller,
	}
	if a.verbose {
		logCfg.Level = "debug"
	}
	if a.logFormat != "" {
		if _, err := hlog.ParseFormat(a.logFormat); err != nil {
			return herror.Wrap(err, "invalid --log-format").
				WithCode(herror.CodeInvalidInput).
				WithOperation("cmd.setup")
		}
		logCfg.Format = a.logFormat
	}
	if cfg.Logging.File != "" {
		f, err := logging.OpenLogFile(cfg.Logging.File)
		if err != nil {
			return err
		}
		a.logFile = f
		logCfg.AdditionalOutputs = []io.Writer{f}
	}

	a.cfg = cfg
	a.logger = logging.NewLogger(logCfg)
	hlog.SetDefault(a.logger)
	a.logger.Debug("configuration loaded", hlog.Fields{"path": cfg.Path(), "environment": cfg.General.Environment})
	return nil
}

// loadConfig honors --config, then HELPER_CONFIG and the default paths,
// and falls back to the built-in defaults when no file exists
func (a *app) loadConfig() (*config.Config, error) {
	if a.cfgFile != "" {
		return config.Load(a.cfgFile)
	}
	cfg, err := config.LoadFromEnv()
	if herror.HasCode(err, herror.CodeMissingConfig) {
		return config.Default(), nil
	}
	return cfg, err
}

func (a *app) close() {
	if a.logFile != nil {
		a.logFile.Close()
		a.logFile = nil
	}
}

// printJSON writes v as indented JSON
func printJSON(w io.Writer, v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return herror.Wrap(err, "failed to encode output").
			WithCode(herror.CodeInternal).
			WithOperation("cmd.printJSON")
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}

// print writes v as JSON or hands the writer to text
func (a *app) print(cmd *cobra.Command, v interface{}, text func(w io.Writer)) error {
	if a.output == "json" {
		return printJSON(cmd.OutOrStdout(), v)
	}
	text(cmd.OutOrStdout())
	return nil
}

func parseID(arg string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil {
		return 0, herror.Wrap(err, fmt.Sprintf("invalid id %q", arg)).
			WithCode(herror.CodeInvalidInput).
			WithOperation("cmd.parseID")
	}
	return id, nil
}

func fmtValue(v interface{}) string {
	switch val := v.(type) {
	case string:
		return val
	case fmt.Stringer:
		return val.String()
	default:
		return fmt.Sprint(val)
	}
}
