package logging

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/logrusorgru/aurora/v3"
	"github.com/mattn/go-isatty"
)

const (
	LevelNone = iota
	LevelNotice
	LevelError
	LevelWarn
	LevelInfo
)

var (
	logLevel = LevelError
	logger   = log.New(os.Stderr, "", log.LstdFlags)
	au       = aurora.NewAurora(isTerminal(os.Stderr))
)

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

func SetLevel(level int) {
	logLevel = level
}

func Level() int {
	return logLevel
}

// SetOutput redirects log output to w. Colour is enabled when w is a
// terminal.
func SetOutput(w io.Writer) {
	logger.SetOutput(w)
	au = aurora.NewAurora(isTerminal(w))
}

// SetColor forces colour on or off.
func SetColor(enabled bool) {
	au = aurora.NewAurora(enabled)
}

func format(arguments []any) string {
	var finalStr string
	for _, argument := range arguments {
		finalStr += fmt.Sprint(argument)
		finalStr += " "
	}
	return finalStr
}

func Notice(module string, arguments ...any) {
	if logLevel < LevelNotice {
		return
	}

	logger.Printf(au.BrightGreen("N[%s]").String()+": %s", module, format(arguments))
}

func Error(module string, arguments ...any) {
	if logLevel < LevelError {
		return
	}

	logger.Printf(au.BrightRed("E[%s]").String()+": %s", module, format(arguments))
}

func Warn(module string, arguments ...any) {
	if logLevel < LevelWarn {
		return
	}

	logger.Printf(au.BrightYellow("W[%s]").String()+": %s", module, format(arguments))
}

func Info(module string, arguments ...any) {
	if logLevel < LevelInfo {
		return
	}

	logger.Printf(au.BrightCyan("I[%s]").String()+": %s", module, format(arguments))
}
