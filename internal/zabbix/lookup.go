package zabbix

import "context"

// HostGroup — группа хостов.
type HostGroup struct {
	GroupID string `json:"groupid"`
	Name    string `json:"name"`
}

// Template — шаблон.
type Template struct {
	TemplateID string `json:"templateid"`
	Name       string `json:"name"`
}

// Proxy — Zabbix proxy.
type Proxy struct {
	ProxyID string `json:"proxyid"`
	Host    string `json:"host"`
}

// ListHostGroups возвращает группы хостов. Если names не пустой
// (имена через запятую), сервер фильтрует по точному совпадению name.
// Отсутствие совпадений — пустой срез, не ошибка.
func (c *Client) ListHostGroups(ctx context.Context, names string) ([]HostGroup, error) {
	params := newGetParams([]string{"name", "groupid"}, "name", SplitNames(names))

	groups := []HostGroup{}
	if err := c.call(ctx, MethodHostGroupGet, params, &groups); err != nil {
		return nil, err
	}
	if groups == nil {
		groups = []HostGroup{}
	}
	return groups, nil
}

// ListTemplates возвращает шаблоны. Фильтр names применяется к полю host
// (техническое имя шаблона).
func (c *Client) ListTemplates(ctx context.Context, names string) ([]Template, error) {
	params := newGetParams([]string{"name", "templateid"}, "host", SplitNames(names))

	templates := []Template{}
	if err := c.call(ctx, MethodTemplateGet, params, &templates); err != nil {
		return nil, err
	}
	if templates == nil {
		templates = []Template{}
	}
	return templates, nil
}

// ListProxies возвращает proxy. Фильтр names применяется к полю host.
func (c *Client) ListProxies(ctx context.Context, names string) ([]Proxy, error) {
	params := newGetParams([]string{"host", "proxyid"}, "host", SplitNames(names))

	proxies := []Proxy{}
	if err := c.call(ctx, MethodProxyGet, params, &proxies); err != nil {
		return nil, err
	}
	if proxies == nil {
		proxies = []Proxy{}
	}
	return proxies, nil
}
