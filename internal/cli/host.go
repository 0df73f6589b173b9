package cli

import (
	"sort"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/shaiso/zbx/internal/zabbix"
)

// NewHostCmd создаёт команду управления хостами.
func NewHostCmd(clientFn func() *zabbix.Client, outputFn func() *Output) *cobra.Command {
	var action string
	var hosts string
	var spec zabbix.HostSpec

	cmd := &cobra.Command{
		Use:   "host",
		Short: "Create hosts or list hosts with their availability",
		Example: `  zbx host -a get
  zbx host -a create -i 10.0.0.1,10.0.0.2 -g "Linux servers" -t "Template OS Linux" -p proxy-dc1`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := checkAction(action, ActionGet, ActionCreate); err != nil {
				return err
			}

			if action == ActionCreate {
				names := zabbix.SplitNames(hosts)
				if len(names) == 0 {
					return ErrHostsRequired
				}
				_, err := CreateHosts(cmd.Context(), clientFn(), outputFn(), names, spec)
				return err
			}

			return runHostGet(cmd, clientFn(), outputFn())
		},
	}

	addActionFlag(cmd, &action, ActionGet, ActionCreate)
	cmd.Flags().StringVarP(&hosts, "hosts", "i", "", `Hosts to create, comma separated (with "-a create")`)
	cmd.Flags().StringVarP(&spec.Groups, "groups", "g", zabbix.DefaultGroups, "Host groups for new hosts, comma separated")
	cmd.Flags().StringVarP(&spec.Templates, "templates", "t", zabbix.DefaultTemplates, "Templates to link to new hosts, comma separated")
	cmd.Flags().StringVarP(&spec.Proxy, "proxy", "p", "", "Proxy that monitors new hosts")

	return cmd
}

func runHostGet(cmd *cobra.Command, client *zabbix.Client, out *Output) error {
	hosts, err := client.ListHosts(cmd.Context())
	if err != nil {
		return err
	}

	names := make([]string, 0, len(hosts))
	for name := range hosts {
		names = append(names, name)
	}
	sort.Strings(names)

	rows := make([][]string, len(names))
	for i, name := range names {
		a := hosts[name]
		rows[i] = []string{name, strconv.Itoa(int(a)), a.String()}
	}

	return out.Print([]string{"HOST", "AVAILABLE", "STATUS"}, rows, hosts)
}
