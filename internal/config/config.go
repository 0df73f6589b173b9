// Package config загружает настройки CLI из переменных окружения.
package config

import (
	"errors"
	"fmt"
	"net/url"
	"time"

	"github.com/caarlos0/env/v9"
)

// Config содержит всю конфигурацию CLI.
type Config struct {
	Zabbix  ZabbixConfig
	Metrics MetricsConfig
}

// ZabbixConfig — параметры подключения к API.
type ZabbixConfig struct {
	URL          string        `env:"ZABBIX_URL" envDefault:"http://localhost/api_jsonrpc.php"`
	User         string        `env:"ZABBIX_USER" envDefault:"admin"`
	Password     string        `env:"ZABBIX_PASSWORD" envDefault:"zabbix"`
	Timeout      time.Duration `env:"ZABBIX_TIMEOUT" envDefault:"30s"`
	ReuseSession bool          `env:"ZABBIX_REUSE_SESSION" envDefault:"false"`
}

// MetricsConfig — отправка метрик в Pushgateway.
type MetricsConfig struct {
	PushgatewayURL string `env:"ZBX_PUSHGATEWAY_URL"`
	Job            string `env:"ZBX_METRICS_JOB" envDefault:"zbx"`
}

// Load загружает конфигурацию из переменных окружения.
func Load() (*Config, error) {
	cfg := &Config{}

	if err := env.Parse(&cfg.Zabbix); err != nil {
		return nil, fmt.Errorf("parsing zabbix config: %w", err)
	}
	if err := env.Parse(&cfg.Metrics); err != nil {
		return nil, fmt.Errorf("parsing metrics config: %w", err)
	}

	return cfg, nil
}

// Validate проверяет конфигурацию.
func (c *Config) Validate() error {
	u, err := url.Parse(c.Zabbix.URL)
	if err != nil {
		return fmt.Errorf("invalid ZABBIX_URL: %w", err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("ZABBIX_URL must be an http(s) URL, got %q", c.Zabbix.URL)
	}
	if c.Zabbix.User == "" {
		return errors.New("ZABBIX_USER is required")
	}
	if c.Zabbix.Timeout <= 0 {
		return fmt.Errorf("ZABBIX_TIMEOUT must be positive, got %s", c.Zabbix.Timeout)
	}
	if c.Metrics.PushgatewayURL != "" && c.Metrics.Job == "" {
		return errors.New("ZBX_METRICS_JOB is required when ZBX_PUSHGATEWAY_URL is set")
	}
	return nil
}
