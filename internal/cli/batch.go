package cli

import (
	"context"
	"fmt"

	"github.com/shaiso/zbx/internal/telemetry"
	"github.com/shaiso/zbx/internal/zabbix"
)

// BatchResult — итог пакетного создания хостов.
type BatchResult struct {
	Created []string
	Failed  []string
}

// CreateHosts создаёт хосты по одному, сообщая о результате каждого.
//
// Ошибка одного хоста не прерывает пакет. Отмена ctx прерывает его
// перед следующим хостом.
func CreateHosts(ctx context.Context, client *zabbix.Client, out *Output, hosts []string, tmpl zabbix.HostSpec) (*BatchResult, error) {
	logger := telemetry.FromContext(ctx)
	result := &BatchResult{}

	for _, host := range hosts {
		if err := ctx.Err(); err != nil {
			return result, err
		}

		spec := tmpl
		spec.Name = host

		if _, err := client.CreateHost(ctx, spec); err != nil {
			telemetry.WithHost(logger, host).Debug("host create failed", "error", err)
			out.Failure(fmt.Sprintf("%s: %s", host, zabbix.ServerDetail(err)))
			result.Failed = append(result.Failed, host)
			continue
		}

		out.Success(fmt.Sprintf("%s: create success!", host))
		result.Created = append(result.Created, host)
	}

	if len(result.Failed) > 0 {
		return result, fmt.Errorf("%w: %d of %d", ErrBatchFailed, len(result.Failed), len(hosts))
	}
	return result, nil
}
