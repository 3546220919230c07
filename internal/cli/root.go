// Package cli implements the tableload command tree.
package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mtiwari1/tableloader/internal/client"
	"github.com/mtiwari1/tableloader/internal/config"
	"github.com/mtiwari1/tableloader/internal/table"
)

// Conn is a table service handle the commands can close when done.
type Conn interface {
	table.Client
	Close() error
}

// DialFunc opens a connection to the table service.
type DialFunc func(cfg *config.Config, logger *slog.Logger) (Conn, error)

func dialService(cfg *config.Config, logger *slog.Logger) (Conn, error) {
	c, err := client.New(cfg, logger)
	if err != nil {
		return nil, err
	}
	return c, nil
}

type app struct {
	v       *viper.Viper
	cfgFile string
	cfg     *config.Config
	logger  *slog.Logger
	logOut  io.Writer
	dial    DialFunc
}

// Option customizes the command tree built by NewRootCmd.
type Option func(*app)

// WithDial replaces how commands connect to the table service.
func WithDial(dial DialFunc) Option {
	return func(a *app) { a.dial = dial }
}

// WithLogOutput sends structured logs to w instead of stderr.
func WithLogOutput(w io.Writer) Option {
	return func(a *app) { a.logOut = w }
}

// NewRootCmd builds the tableload command tree.
func NewRootCmd(opts ...Option) *cobra.Command {
	a := &app{
		v:      viper.New(),
		logOut: os.Stderr,
		dial:   dialService,
	}
	for _, opt := range opts {
		opt(a)
	}

	root := &cobra.Command{
		Use:           "tableload",
		Short:         "Load local Parquet and CSV files into the table service",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup()
		},
	}

	defaults := config.DefaultConfig()
	pf := root.PersistentFlags()
	pf.StringVar(&a.cfgFile, "config", "", "Config file (default ./tableload.yaml)")
	pf.String("endpoint", defaults.Endpoint, "Table service address (or set TABLELOAD_ENDPOINT)")
	pf.Bool("insecure", defaults.Insecure, "Disable TLS")
	pf.Bool("tls-skip-verify", false, "Skip TLS certificate verification")
	pf.String("tls-ca-cert", "", "Path to a CA certificate for TLS")
	pf.String("api-key", "", "API key sent as a bearer token (or set TABLELOAD_API_KEY)")
	pf.String("client-id", "", "Client id sent with every request")
	pf.Duration("timeout", defaults.Timeout, "Deadline for each command")
	pf.String("log-level", defaults.LogLevel, "Log level: debug, info, warn, error")

	for key, flag := range map[string]string{
		"endpoint":        "endpoint",
		"insecure":        "insecure",
		"tls_skip_verify": "tls-skip-verify",
		"tls_ca_cert":     "tls-ca-cert",
		"api_key":         "api-key",
		"client_id":       "client-id",
		"timeout":         "timeout",
		"log_level":       "log-level",
	} {
		if err := a.v.BindPFlag(key, pf.Lookup(flag)); err != nil {
			panic(fmt.Errorf("failed to bind flag %s: %w", flag, err))
		}
	}

	root.AddCommand(a.tableCmd())
	root.AddCommand(a.inspectCmd())
	return root
}

func (a *app) setup() error {
	cfg, err := config.LoadWith(a.v, a.cfgFile)
	if err != nil {
		return err
	}
	a.cfg = cfg

	level, err := parseLevel(cfg.LogLevel)
	if err != nil {
		return err
	}
	a.logger = slog.New(slog.NewJSONHandler(a.logOut, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(a.logger)
	return nil
}

// connect dials the table service and returns a context bounded by the configured timeout.
func (a *app) connect(parent context.Context) (context.Context, Conn, func(), error) {
	conn, err := a.dial(a.cfg, a.logger)
	if err != nil {
		return nil, nil, nil, err
	}
	ctx, cancel := context.WithTimeout(parent, a.cfg.Timeout)
	cleanup := func() {
		cancel()
		if err := conn.Close(); err != nil {
			a.logger.Warn("close connection", slog.String("error", err.Error()))
		}
	}
	return ctx, conn, cleanup, nil
}

func parseLevel(s string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return 0, fmt.Errorf("invalid log level %q: %w", s, err)
	}
	return level, nil
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// Execute runs the root command. This is called by main.main().
func Execute() {
	root := NewRootCmd()
	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
