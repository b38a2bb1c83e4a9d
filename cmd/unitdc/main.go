package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	"github.com/peterh/liner"
	perrors "github.com/pkg/errors"

	"github.com/zephyrtronium/unitdc"
)

const historyFile = ".unitdc_history"

func main() {
	log.SetFlags(0)
	var (
		inname, prelude string
		asYAML, quiet   bool
		prec            int
	)
	flag.StringVar(&inname, "in", "", "input file (default stdin if no args given)")
	flag.StringVar(&prelude, "prelude", "", "file to evaluate instead of the standard unit definitions")
	flag.BoolVar(&asYAML, "yaml", false, "write outputs as YAML documents")
	flag.IntVar(&prec, "p", 256, "precision in bits of inexact powers")
	flag.BoolVar(&quiet, "q", false, "read stdin without line editing or prompts")
	flag.Parse()
	if prec <= 0 {
		log.Fatalf("precision (%d) must be positive", prec)
	}

	opts := []unitdc.InterpOption{unitdc.Prec(uint(prec))}
	if prelude != "" {
		b, err := os.ReadFile(prelude)
		if err != nil {
			log.Fatal(err)
		}
		opts = append(opts, unitdc.Prelude(string(b)))
	}
	p := newPrinter(os.Stdout, os.Stderr, asYAML)
	in, err := unitdc.New(p.print, opts...)
	if err != nil {
		log.Fatal(err)
	}

	for _, arg := range flag.Args() {
		if err := in.Eval(arg); err != nil {
			log.Fatal(err)
		}
	}
	switch {
	case inname != "" && inname != "-":
		f, err := os.Open(inname)
		if err != nil {
			log.Fatal(err)
		}
		defer f.Close()
		if err := evalLines(in, f, inname, os.Stderr); err != nil {
			log.Fatal(err)
		}
	case inname == "-", flag.NArg() == 0 && (quiet || !isTerminal(os.Stdin)):
		if err := evalLines(in, os.Stdin, "stdin", os.Stderr); err != nil {
			log.Fatal(err)
		}
	case flag.NArg() == 0:
		repl(in)
	}
}

// evalLines evaluates each line of r as a separate command. Errors are
// reported to errs with the line number, and evaluation continues.
func evalLines(in *unitdc.Interpreter, r io.Reader, name string, errs io.Writer) error {
	sc := bufio.NewScanner(r)
	for n := 1; sc.Scan(); n++ {
		if err := in.Eval(sc.Text()); err != nil {
			fmt.Fprintf(errs, "%s:%d: %v\n", name, n, err)
		}
	}
	return perrors.Wrapf(sc.Err(), "reading %s", name)
}

// repl runs an interactive session with line editing and history.
func repl(in *unitdc.Interpreter) {
	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	home, _ := os.UserHomeDir()
	hist := filepath.Join(home, historyFile)
	if f, err := os.Open(hist); err == nil {
		ln.ReadHistory(f)
		f.Close()
	}
	defer func() {
		if f, err := os.Create(hist); err == nil {
			ln.WriteHistory(f)
			f.Close()
		}
	}()

	for {
		line, err := ln.Prompt("> ")
		if errors.Is(err, liner.ErrPromptAborted) {
			continue
		}
		if err != nil {
			if !errors.Is(err, io.EOF) {
				fmt.Fprintln(os.Stderr, err)
			}
			fmt.Println()
			return
		}
		if line == "" {
			continue
		}
		ln.AppendHistory(line)
		if err := in.Eval(line); err != nil {
			fmt.Fprintln(os.Stderr, err)
		}
	}
}

func isTerminal(f *os.File) bool {
	fi, err := f.Stat()
	if err != nil {
		return false
	}
	return fi.Mode()&os.ModeCharDevice != 0
}
