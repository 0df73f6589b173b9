package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/fatih/color"
)

// Output управляет форматированием вывода CLI.
type Output struct {
	jsonMode bool
	w        io.Writer // stdout для данных и сообщений об успехе
	errW     io.Writer // stderr для ошибок

	success *color.Color
	failure *color.Color
}

// NewOutput создаёт Output. Если jsonMode=true, данные выводятся в JSON.
//
// Цвет управляется пакетом color: он выключен, если stdout не терминал,
// задан NO_COLOR или color.NoColor выставлен флагом --no-color.
func NewOutput(jsonMode bool) *Output {
	return &Output{
		jsonMode: jsonMode,
		w:        os.Stdout,
		errW:     os.Stderr,
		success:  color.New(color.FgGreen),
		failure:  color.New(color.FgRed),
	}
}

// Print выводит данные: таблицу или JSON в зависимости от режима.
func (o *Output) Print(headers []string, rows [][]string, jsonData any) error {
	if o.jsonMode {
		return o.JSON(jsonData)
	}
	return o.Table(headers, rows)
}

// Table выводит данные в виде таблицы через tabwriter.
func (o *Output) Table(headers []string, rows [][]string) error {
	tw := tabwriter.NewWriter(o.w, 0, 0, 2, ' ', 0)

	fmt.Fprintln(tw, strings.Join(headers, "\t"))

	dashes := make([]string, len(headers))
	for i, h := range headers {
		dashes[i] = strings.Repeat("-", len(h))
	}
	fmt.Fprintln(tw, strings.Join(dashes, "\t"))

	for _, row := range rows {
		fmt.Fprintln(tw, strings.Join(row, "\t"))
	}

	if err := tw.Flush(); err != nil {
		return fmt.Errorf("write table: %w", err)
	}
	return nil
}

// JSON выводит данные в формате JSON с отступами.
func (o *Output) JSON(v any) error {
	enc := json.NewEncoder(o.w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("write json: %w", err)
	}
	return nil
}

// Success выводит зелёное сообщение об успехе в stdout.
func (o *Output) Success(msg string) {
	fmt.Fprintln(o.w, o.success.Sprint(msg))
}

// Failure выводит красное сообщение о неудаче в stderr.
func (o *Output) Failure(msg string) {
	fmt.Fprintln(o.errW, o.failure.Sprint(msg))
}

// Error выводит сообщение об ошибке в stderr.
func (o *Output) Error(msg string) {
	o.Failure("Error: " + msg)
}
