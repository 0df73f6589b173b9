// Package cli реализует команды zbx.
//
// # Обзор
//
// Каждая команда соответствует ресурсу Zabbix и выбирает операцию
// флагом --action (-a):
//   - host: get, create
//   - hostgroup: get
//   - template: get
//   - proxy: get
//
// Команды создаются фабричными функциями (NewHostCmd и т.д.), принимающими
// clientFn и outputFn — замыкания для ленивого создания zabbix.Client и
// Output после парсинга PersistentFlags.
//
// # Вывод
//
// Списки выводятся таблицей (text/tabwriter) или JSON с флагом --json.
// Сообщения об успешном создании хоста — зелёным в stdout, об ошибках —
// красным в stderr (github.com/fatih/color). Цвет отключается, если stdout
// не терминал, задан NO_COLOR или флаг --no-color.
//
// # Пакетное создание
//
//	zbx host -a create -i 10.0.0.1,10.0.0.2
//
// Хосты создаются по одному; ошибка одного хоста выводится и не прерывает
// остальные. Команда завершается с ErrBatchFailed, если хотя бы один хост
// не создан.
package cli
