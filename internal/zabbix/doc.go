// Package zabbix реализует клиент JSON-RPC API Zabbix.
//
// # Обзор
//
// Каждая операция клиента — это один или несколько запросов вида
//
//	{"jsonrpc":"2.0","id":1,"method":"host.get","params":{...},"auth":"<token>"}
//
// Перед каждым вызовом клиент заново выполняет user.login и получает
// свежий токен сессии. С опцией ReuseSession токен кешируется на время
// жизни процесса и обновляется один раз при ответе "Not authorised".
//
// # Ответы
//
// Ответ сервера интерпретируется одинаково для всех методов:
//   - есть поле result (даже пустой массив) — успех
//   - есть поле error — *RPCError (errors.Is(err, ErrServer))
//   - нет ни того, ни другого — ErrMalformedResponse
//
// Пустой результат поиска по имени (hostgroup.get, template.get, proxy.get)
// не является ошибкой.
//
// # Использование
//
//	client := zabbix.NewClient(zabbix.Config{
//	    URL:      "http://zabbix.local/api_jsonrpc.php",
//	    User:     "admin",
//	    Password: "zabbix",
//	})
//	hosts, err := client.ListHosts(ctx)
package zabbix
