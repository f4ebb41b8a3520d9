// Package cli implements the typereg command-line interface.
package cli

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mesh-intelligence/contenttypes/internal/paths"
	"github.com/mesh-intelligence/contenttypes/pkg/types"
)

// Exit codes.
const (
	exitUserError = 1
	exitSysError  = 2
)

// rootFlags holds global flag values.
type rootFlags struct {
	configDir string
	dataDir   string
	jsonMode  bool
	logLevel  string
	logFormat string
	metrics   bool
}

// app is the state shared by the commands of one invocation.
type app struct {
	flags   rootFlags
	config  *viper.Viper
	logger  *slog.Logger
	metrics *prometheus.Registry
}

// NewRootCmd creates the "typereg" command with its subcommands.
func NewRootCmd() *cobra.Command {
	a := &app{
		logger:  slog.New(slog.DiscardHandler),
		metrics: prometheus.NewRegistry(),
	}

	root := &cobra.Command{
		Use:   "typereg",
		Short: "Declare and activate content types against a host runtime",
		Long: `typereg reads content type, taxonomy and panel declarations from a YAML
manifest, activates them against an in-process host runtime, and journals
what the host accepted.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			if !a.flags.metrics {
				return nil
			}
			return writeMetrics(cmd.ErrOrStderr(), a.metrics)
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.flags.configDir, "config-dir", "", "configuration directory (default: platform config dir)")
	pf.StringVar(&a.flags.dataDir, "data-dir", "", "data directory (default: $(CWD)/"+paths.DefaultDataDirName+")")
	pf.BoolVar(&a.flags.jsonMode, "json", false, "output in JSON format")
	pf.StringVar(&a.flags.logLevel, "log-level", "warn", "log level: debug, info, warn, error")
	pf.StringVar(&a.flags.logFormat, "log-format", "text", "log format: text, json")
	pf.BoolVar(&a.flags.metrics, "metrics", false, "print host counters to stderr when the command finishes")

	root.AddCommand(a.newVersionCmd())
	root.AddCommand(a.newInitCmd())
	root.AddCommand(a.newActivateCmd())
	root.AddCommand(a.newRenderCmd())
	root.AddCommand(a.newListCmd())
	root.AddCommand(a.newExportCmd())

	return root
}

// Execute runs the root command and exits with the appropriate code.
func Execute() {
	root := NewRootCmd()
	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "typereg:", err)
		os.Exit(exitCode(err))
	}
}

// setup loads the configuration and builds the logger.
func (a *app) setup(cmd *cobra.Command, args []string) error {
	if cmd.Name() == "version" {
		return nil
	}

	configDir, err := paths.ResolveConfigDir(a.flags.configDir)
	if err != nil {
		return sysError(fmt.Errorf("resolve config dir: %w", err))
	}
	cfg, err := loadConfig(configDir)
	if errors.Is(err, types.ErrBackendEmpty) || errors.Is(err, types.ErrBackendUnknown) {
		return err
	}
	if err != nil {
		return sysError(err)
	}
	a.config = cfg

	level := a.flags.logLevel
	if !cmd.Flags().Changed("log-level") && cfg.IsSet(cfgKeyLogLevel) {
		level = cfg.GetString(cfgKeyLogLevel)
	}
	a.logger = newLogger(level, a.flags.logFormat, cmd.ErrOrStderr())
	a.logger.Debug("configuration loaded", "config_dir", configDir, "backend", cfg.GetString(cfgKeyBackend))
	return nil
}

// resolveDataDir applies flag > config.yaml > env > default.
func (a *app) resolveDataDir() (string, error) {
	var fromConfig string
	if a.config != nil {
		fromConfig = a.config.GetString(cfgKeyDataDir)
	}
	return paths.ResolveDataDir(a.flags.dataDir, fromConfig)
}

func (a *app) backend() string {
	if a.config == nil {
		return defaultBackend
	}
	return a.config.GetString(cfgKeyBackend)
}
