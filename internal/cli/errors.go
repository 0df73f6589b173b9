package cli

import "errors"

// Ошибки CLI. Все они возникают до обращения к API, кроме ErrBatchFailed.
var (
	// ErrHostsRequired — для "host -a create" не задан --hosts.
	ErrHostsRequired = errors.New(`must provide hosts (-i HOSTS) with "-a create"`)

	// ErrInvalidAction — неизвестное значение --action.
	ErrInvalidAction = errors.New("invalid action")

	// ErrBatchFailed — часть хостов не создана.
	ErrBatchFailed = errors.New("some hosts were not created")
)
