package zabbix

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Значения по умолчанию для host.create.
const (
	DefaultGroups    = "Linux servers"
	DefaultTemplates = "Template OS Linux"

	// AgentPort — порт Zabbix agent на наблюдаемом хосте.
	AgentPort = "10050"

	interfaceTypeAgent = 1
)

// Availability — статус доступности хоста из host.get.
type Availability int

const (
	AvailabilityUnknown     Availability = 0
	AvailabilityAvailable   Availability = 1
	AvailabilityUnavailable Availability = 2
)

// String возвращает текстовое представление статуса.
func (a Availability) String() string {
	switch a {
	case AvailabilityAvailable:
		return "available"
	case AvailabilityUnavailable:
		return "unavailable"
	default:
		return "unknown"
	}
}

// UnmarshalJSON принимает статус как строку ("1") или число (1).
// Значения вне {0,1,2} считаются unknown.
func (a *Availability) UnmarshalJSON(data []byte) error {
	s := strings.Trim(strings.TrimSpace(string(data)), `"`)
	if s == "" || s == "null" {
		*a = AvailabilityUnknown
		return nil
	}

	n, err := strconv.Atoi(s)
	if err != nil {
		return fmt.Errorf("invalid availability %s: %w", data, err)
	}

	switch v := Availability(n); v {
	case AvailabilityAvailable, AvailabilityUnavailable:
		*a = v
	default:
		*a = AvailabilityUnknown
	}
	return nil
}

// MarshalJSON сериализует статус числом.
func (a Availability) MarshalJSON() ([]byte, error) {
	return json.Marshal(int(a))
}

// HostSpec — параметры создания хоста.
type HostSpec struct {
	// Name — имя хоста, оно же IP агентского интерфейса.
	Name string

	// Groups — имена групп через запятую.
	Groups string

	// Templates — имена шаблонов через запятую.
	Templates string

	// Proxy — имя proxy; пустое значение — мониторинг напрямую сервером.
	Proxy string
}

// NewHostSpec создаёт HostSpec с группой и шаблоном по умолчанию.
func NewHostSpec(name string) HostSpec {
	return HostSpec{
		Name:      name,
		Groups:    DefaultGroups,
		Templates: DefaultTemplates,
	}
}

// HostCreateResult — результат host.create.
type HostCreateResult struct {
	HostIDs []string `json:"hostids"`
}

type hostRecord struct {
	Host      string       `json:"host"`
	Available Availability `json:"available"`
}

// CreateHost создаёт хост с одним агентским интерфейсом.
//
// Группы, шаблоны и proxy ищутся по именам; имена, которых нет на сервере,
// просто не попадают в запрос. Ошибка сервера при поиске или при создании
// возвращается как есть.
func (c *Client) CreateHost(ctx context.Context, spec HostSpec) (*HostCreateResult, error) {
	result, err := c.createHost(ctx, spec)
	if !errors.Is(err, ErrEmptyHost) {
		c.metrics.HostCreated(err == nil)
	}
	return result, err
}

func (c *Client) createHost(ctx context.Context, spec HostSpec) (*HostCreateResult, error) {
	name := strings.TrimSpace(spec.Name)
	if name == "" {
		return nil, ErrEmptyHost
	}

	params := &hostCreateParams{
		Host: name,
		Interfaces: []hostInterface{{
			Type:  interfaceTypeAgent,
			Main:  1,
			UseIP: 1,
			IP:    name,
			DNS:   "",
			Port:  AgentPort,
		}},
	}

	if SplitNames(spec.Groups) != nil {
		groups, err := c.ListHostGroups(ctx, spec.Groups)
		if err != nil {
			return nil, fmt.Errorf("resolve groups: %w", err)
		}
		for _, g := range groups {
			params.Groups = append(params.Groups, groupRef{GroupID: g.GroupID})
		}
	}

	if SplitNames(spec.Templates) != nil {
		templates, err := c.ListTemplates(ctx, spec.Templates)
		if err != nil {
			return nil, fmt.Errorf("resolve templates: %w", err)
		}
		for _, t := range templates {
			params.Templates = append(params.Templates, templateRef{TemplateID: t.TemplateID})
		}
	}

	if SplitNames(spec.Proxy) != nil {
		proxies, err := c.ListProxies(ctx, spec.Proxy)
		if err != nil {
			return nil, fmt.Errorf("resolve proxy: %w", err)
		}
		if len(proxies) > 0 {
			params.ProxyHostID = proxies[0].ProxyID
		}
	}

	if len(params.Groups) == 0 || len(params.Templates) == 0 {
		c.logger.Debug("host created without some links",
			"host", name, "groups", len(params.Groups), "templates", len(params.Templates))
	}

	var result HostCreateResult
	if err := c.call(ctx, MethodHostCreate, params, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// ListHosts возвращает все хосты и их статус доступности.
func (c *Client) ListHosts(ctx context.Context) (map[string]Availability, error) {
	params := &getParams{Output: []string{"host", "available"}}

	var records []hostRecord
	if err := c.call(ctx, MethodHostGet, params, &records); err != nil {
		return nil, err
	}

	hosts := make(map[string]Availability, len(records))
	for _, r := range records {
		hosts[r.Host] = r.Available
	}
	return hosts, nil
}
