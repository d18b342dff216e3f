// Configuration sources, highest priority first:
//  1. Command-line flags (--element, --log-level, --log-format)
//  2. MATRIXCTL_<KEY> environment variables (MATRIXCTL_ELEMENT, MATRIXCTL_LOG_LEVEL, ...)
//  3. The config file: --config, else MATRIXCTL_CONFIG_FILE, else ./.matrixctl.yaml
//  4. Built-in defaults
package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Config keys.
const (
	keyElement   = "element"
	keyLogLevel  = "log-level"
	keyLogFormat = "log-format"
)

// Element kinds selectable through the "element" key.
const (
	elementInt   = "int"
	elementFloat = "float"
)

const envPrefix = "MATRIXCTL"

// app carries the per-invocation state shared by all subcommands.
type app struct {
	cfgFile string
	v       *viper.Viper
	log     *slog.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{v: viper.New()}
	a.v.SetDefault(keyElement, elementInt)
	a.v.SetDefault(keyLogLevel, "warn")
	a.v.SetDefault(keyLogFormat, "text")

	root := &cobra.Command{
		Use:   "matrixctl",
		Short: "Add, multiply and verify text-encoded matrices",
		Long: `matrixctl reads matrices stored as whitespace-separated numbers in
row-major order. Files carry no header: the shape is passed on the command
line (--shape, --lhs, --rhs) or recorded in a fixtures manifest.

Results are printed with every element followed by a tab and one row per line.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if err := a.initConfig(); err != nil {
				return err
			}
			return a.initLogger(cmd.ErrOrStderr())
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.cfgFile, "config", "", "config file (default is ./.matrixctl.yaml, can also use MATRIXCTL_CONFIG_FILE)")
	pf.StringP(keyElement, "e", elementInt, "element type (int|float)")
	pf.String(keyLogLevel, "warn", "log level (debug, info, warn, error)")
	pf.String(keyLogFormat, "text", "log format (text|json)")
	for _, k := range []string{keyElement, keyLogLevel, keyLogFormat} {
		_ = a.v.BindPFlag(k, pf.Lookup(k))
	}

	root.AddCommand(
		newAddCmd(a),
		newMulCmd(a),
		newShowCmd(a),
		newVerifyCmd(a),
	)

	return root
}

// initConfig wires the config file and environment into a.v.
// A missing default config file is fine; a missing explicit one is not.
func (a *app) initConfig() error {
	explicit := a.cfgFile
	if explicit == "" {
		explicit = os.Getenv(envPrefix + "_CONFIG_FILE")
	}
	if explicit != "" {
		a.v.SetConfigFile(explicit)
	} else {
		a.v.AddConfigPath(".")
		a.v.SetConfigType("yaml")
		a.v.SetConfigName(".matrixctl")
	}

	a.v.SetEnvPrefix(envPrefix)
	a.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	a.v.AutomaticEnv()

	if err := a.v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if explicit != "" || !errors.As(err, &notFound) {
			return fmt.Errorf("config: %w", err)
		}
	}

	switch el := a.element(); el {
	case elementInt, elementFloat:
	default:
		return fmt.Errorf("config: unknown element type %q (want %s or %s)", el, elementInt, elementFloat)
	}

	return nil
}

// initLogger builds the slog logger from the log-level and log-format keys.
func (a *app) initLogger(w io.Writer) error {
	var level slog.Level
	if err := level.UnmarshalText([]byte(a.v.GetString(keyLogLevel))); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	opts := &slog.HandlerOptions{Level: level}

	var handler slog.Handler
	switch format := strings.ToLower(a.v.GetString(keyLogFormat)); format {
	case "json":
		handler = slog.NewJSONHandler(w, opts)
	case "text", "":
		handler = slog.NewTextHandler(w, opts)
	default:
		return fmt.Errorf("config: unknown log format %q", format)
	}
	a.log = slog.New(handler).With("component", "matrixctl")
	if used := a.v.ConfigFileUsed(); used != "" {
		a.log.Debug("config loaded", "file", used)
	}

	return nil
}

func (a *app) element() string {
	return strings.ToLower(a.v.GetString(keyElement))
}
