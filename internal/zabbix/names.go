package zabbix

import "strings"

// SplitNames разбивает список имён через запятую.
// Пробелы по краям обрезаются, пустые элементы отбрасываются.
func SplitNames(s string) []string {
	if s == "" {
		return nil
	}

	parts := strings.Split(s, ",")
	names := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			names = append(names, p)
		}
	}
	if len(names) == 0 {
		return nil
	}
	return names
}
