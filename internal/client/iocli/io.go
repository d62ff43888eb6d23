// Package iocli ввод-вывод интерактивных команд.
package iocli

//go:generate moq -out io_mock.go . IO

// IO терминал команды: вывод отчётов и чтение ответов пользователя.
// ReadPassword не отображает ввод, если stdin является терминалом.
type IO interface {
	Println(a ...any)
	Printf(format string, a ...any)
	ReadInput(prompt string) (string, error)
	ReadPassword(prompt string) (string, error)
	Write(p []byte) (n int, err error)
}
