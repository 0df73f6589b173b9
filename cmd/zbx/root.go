package main

import (
	"log/slog"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/shaiso/zbx/internal/cli"
	"github.com/shaiso/zbx/internal/config"
	"github.com/shaiso/zbx/internal/telemetry"
	"github.com/shaiso/zbx/internal/zabbix"
)

// rootFlags — значения persistent-флагов. Переопределяют окружение,
// только если флаг задан явно.
type rootFlags struct {
	url          string
	user         string
	password     string
	timeout      time.Duration
	reuseSession bool
	jsonOutput   bool
	noColor      bool
}

// newRootCmd собирает корневую команду. Конфигурация загружается в
// PersistentPreRunE и записывается в cfg, поэтому --help и --version
// работают даже при ошибочном окружении.
func newRootCmd(cfg *config.Config, logger *slog.Logger, metrics *telemetry.Metrics) *cobra.Command {
	var f rootFlags

	rootCmd := &cobra.Command{
		Use:           "zbx",
		Short:         "zbx — Zabbix API command line client",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			loaded, err := config.Load()
			if err != nil {
				return err
			}
			*cfg = *loaded

			fs := cmd.Flags()
			if fs.Changed("url") {
				cfg.Zabbix.URL = f.url
			}
			if fs.Changed("user") {
				cfg.Zabbix.User = f.user
			}
			if fs.Changed("password") {
				cfg.Zabbix.Password = f.password
			}
			if fs.Changed("timeout") {
				cfg.Zabbix.Timeout = f.timeout
			}
			if fs.Changed("reuse-session") {
				cfg.Zabbix.ReuseSession = f.reuseSession
			}
			if f.noColor {
				color.NoColor = true
			}

			return cfg.Validate()
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&f.url, "url", "", "Zabbix API URL (default $ZABBIX_URL or http://localhost/api_jsonrpc.php)")
	flags.StringVar(&f.user, "user", "", "API user (default $ZABBIX_USER or admin)")
	flags.StringVar(&f.password, "password", "", "API password (default $ZABBIX_PASSWORD)")
	flags.DurationVar(&f.timeout, "timeout", 0, "Timeout of a single API request (default $ZABBIX_TIMEOUT or 30s)")
	flags.BoolVar(&f.reuseSession, "reuse-session", false, "Log in once per run instead of before every call ($ZABBIX_REUSE_SESSION)")
	flags.BoolVar(&f.jsonOutput, "json", false, "Output in JSON format")
	flags.BoolVar(&f.noColor, "no-color", false, "Disable colored messages")

	clientFn := func() *zabbix.Client {
		return zabbix.NewClient(zabbix.Config{
			URL:          cfg.Zabbix.URL,
			User:         cfg.Zabbix.User,
			Password:     cfg.Zabbix.Password,
			Timeout:      cfg.Zabbix.Timeout,
			ReuseSession: cfg.Zabbix.ReuseSession,
			Logger:       logger,
			Metrics:      metrics,
		})
	}
	outputFn := func() *cli.Output { return cli.NewOutput(f.jsonOutput) }

	rootCmd.AddCommand(
		cli.NewHostCmd(clientFn, outputFn),
		cli.NewHostGroupCmd(clientFn, outputFn),
		cli.NewTemplateCmd(clientFn, outputFn),
		cli.NewProxyCmd(clientFn, outputFn),
	)

	return rootCmd
}
