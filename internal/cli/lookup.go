package cli

import (
	"github.com/spf13/cobra"

	"github.com/shaiso/zbx/internal/zabbix"
)

// NewHostGroupCmd создаёт команду просмотра групп хостов.
func NewHostGroupCmd(clientFn func() *zabbix.Client, outputFn func() *Output) *cobra.Command {
	var action string
	var groups string

	cmd := &cobra.Command{
		Use:   "hostgroup",
		Short: "List host groups and their IDs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := checkAction(action, ActionGet); err != nil {
				return err
			}

			list, err := clientFn().ListHostGroups(cmd.Context(), groups)
			if err != nil {
				return err
			}

			rows := make([][]string, len(list))
			for i, g := range list {
				rows[i] = []string{g.GroupID, g.Name}
			}
			return outputFn().Print([]string{"GROUPID", "NAME"}, rows, list)
		},
	}

	addActionFlag(cmd, &action, ActionGet)
	cmd.Flags().StringVarP(&groups, "groups", "g", "", "Only these host groups, comma separated")

	return cmd
}

// NewTemplateCmd создаёт команду просмотра шаблонов.
func NewTemplateCmd(clientFn func() *zabbix.Client, outputFn func() *Output) *cobra.Command {
	var action string
	var templates string

	cmd := &cobra.Command{
		Use:   "template",
		Short: "List templates and their IDs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := checkAction(action, ActionGet); err != nil {
				return err
			}

			list, err := clientFn().ListTemplates(cmd.Context(), templates)
			if err != nil {
				return err
			}

			rows := make([][]string, len(list))
			for i, t := range list {
				rows[i] = []string{t.TemplateID, t.Name}
			}
			return outputFn().Print([]string{"TEMPLATEID", "NAME"}, rows, list)
		},
	}

	addActionFlag(cmd, &action, ActionGet)
	cmd.Flags().StringVarP(&templates, "templates", "t", "", "Only these templates, comma separated")

	return cmd
}

// NewProxyCmd создаёт команду просмотра proxy.
func NewProxyCmd(clientFn func() *zabbix.Client, outputFn func() *Output) *cobra.Command {
	var action string
	var proxies string

	cmd := &cobra.Command{
		Use:   "proxy",
		Short: "List proxies and their IDs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := checkAction(action, ActionGet); err != nil {
				return err
			}

			list, err := clientFn().ListProxies(cmd.Context(), proxies)
			if err != nil {
				return err
			}

			rows := make([][]string, len(list))
			for i, p := range list {
				rows[i] = []string{p.ProxyID, p.Host}
			}
			return outputFn().Print([]string{"PROXYID", "HOST"}, rows, list)
		},
	}

	addActionFlag(cmd, &action, ActionGet)
	cmd.Flags().StringVarP(&proxies, "proxies", "p", "", "Only these proxies, comma separated")

	return cmd
}
