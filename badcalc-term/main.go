// Command badcalc-term is a terminal version of the bad calculator.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/peterh/liner"
	"golang.org/x/text/language"

	"github.com/fjl/badcalc/internal/calc"
)

const (
	prompt      = "badcalc> "
	historyFile = ".badcalc_history"
	banner      = "badcalc: type keys like 24+6= or AC, :quit to exit."
)

func main() {
	lang := flag.String("lang", "en", "language of the display's number format")
	flag.Parse()

	tag, err := language.Parse(*lang)
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid -lang %q: %v\n", *lang, err)
		os.Exit(2)
	}
	os.Exit(run(calc.New(calc.WithLanguage(tag))))
}

func run(c *calc.Calculator) int {
	fmt.Println(banner)

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	// Without a home directory there is no history.
	if histPath, ok := historyPath(os.UserHomeDir); ok {
		if f, err := os.Open(histPath); err == nil {
			_, _ = ln.ReadHistory(f)
			_ = f.Close()
		}
		defer func() {
			if f, err := os.Create(histPath); err == nil {
				_, _ = ln.WriteHistory(f)
				_ = f.Close()
			}
		}()
	}

	r := &repl{calc: c, out: os.Stdout}
	r.show()
	for {
		line, err := ln.Prompt(prompt)
		if errors.Is(err, io.EOF) || errors.Is(err, liner.ErrPromptAborted) {
			fmt.Println()
			return 0
		}
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return 1
		}
		if strings.TrimSpace(line) == "" {
			continue
		}
		ln.AppendHistory(line)
		if r.handleLine(line) {
			return 0
		}
	}
}

// historyPath returns the location of the history file in the home directory.
func historyPath(homeDir func() (string, error)) (string, bool) {
	home, err := homeDir()
	if err != nil || home == "" {
		return "", false
	}
	return filepath.Join(home, historyFile), true
}

// repl applies input lines to the calculator.
type repl struct {
	calc *calc.Calculator
	out  io.Writer
}

// handleLine processes one line of input. It returns true when the user
// wants to quit.
func (r *repl) handleLine(line string) (exit bool) {
	line = strings.TrimSpace(line)
	if strings.HasPrefix(line, ":") {
		switch strings.ToLower(line) {
		case ":quit", ":q":
			return true
		case ":state":
			r.state()
		default:
			fmt.Fprintln(r.out, "unknown command. Type :quit to exit.")
		}
		return false
	}

	for _, k := range calc.SplitKeys(line) {
		if err := r.calc.PressKey(k); err != nil {
			fmt.Fprintln(r.out, "error:", err)
			break
		}
	}
	r.show()
	return false
}

func (r *repl) show() {
	fmt.Fprintf(r.out, "[%s] %s\n", r.calc.ClearLabel(), r.calc.Display())
}

func (r *repl) state() {
	op := "none"
	if p, ok := r.calc.Pending(); ok {
		op = p.String()
	}
	fmt.Fprintf(r.out, "entering=%t text=%q previous=%v current=%v pending=%s\n",
		r.calc.Entering(), r.calc.Text(), r.calc.Previous(), r.calc.Value(), op)
}
