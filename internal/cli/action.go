package cli

import (
	"fmt"
	"slices"
	"strings"

	"github.com/spf13/cobra"
)

// Действия над ресурсами.
const (
	ActionGet    = "get"
	ActionCreate = "create"
)

// addActionFlag регистрирует обязательный флаг --action/-a.
func addActionFlag(cmd *cobra.Command, action *string, allowed ...string) {
	cmd.Flags().StringVarP(action, "action", "a", "",
		fmt.Sprintf("Action to perform (%s) (required)", strings.Join(allowed, ", ")))
	cmd.MarkFlagRequired("action")
}

// checkAction проверяет, что action входит в allowed.
func checkAction(action string, allowed ...string) error {
	if slices.Contains(allowed, action) {
		return nil
	}
	return fmt.Errorf("%w %q, choose from: %s", ErrInvalidAction, action, strings.Join(allowed, ", "))
}
