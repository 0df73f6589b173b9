// zbx — инструмент командной строки для Zabbix API.
//
// Использование:
//
//	zbx [--url URL] [--user USER] [--json] <command> -a <action> [flags]
//
// Команды:
//
//	host       Создание и просмотр хостов
//	hostgroup  Просмотр групп хостов
//	template   Просмотр шаблонов
//	proxy      Просмотр proxy
//
// Параметры подключения берутся из ZABBIX_URL, ZABBIX_USER, ZABBIX_PASSWORD
// и переопределяются флагами.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/shaiso/zbx/internal/cli"
	"github.com/shaiso/zbx/internal/config"
	"github.com/shaiso/zbx/internal/telemetry"
)

// version задаётся через ldflags при сборке.
var version = "dev"

const pushTimeout = 5 * time.Second

func main() {
	logger := telemetry.SetupLogger()
	metrics := telemetry.NewMetrics()
	cfg := &config.Config{}

	rootCmd := newRootCmd(cfg, logger, metrics)

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	ctx = telemetry.WithLogger(ctx, logger)

	err := rootCmd.ExecuteContext(ctx)
	cancel()

	if cfg.Metrics.PushgatewayURL != "" {
		pushCtx, pushCancel := context.WithTimeout(context.Background(), pushTimeout)
		if perr := metrics.Push(pushCtx, cfg.Metrics.PushgatewayURL, cfg.Metrics.Job); perr != nil {
			logger.Warn("failed to push metrics", "error", perr)
		}
		pushCancel()
	}

	if err != nil {
		cli.NewOutput(false).Error(err.Error())
		os.Exit(1)
	}
}
