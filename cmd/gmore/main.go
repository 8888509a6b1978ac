package main

import (
	"fmt"
	"io"
	"os"

	"github.com/gdamore/tcell/v2"
	apppkg "github.com/kk-code-lab/gmore/internal/app"
	"golang.org/x/term"
)

func printHelp() {
	fmt.Print(`gmore - A clone of the more command line utility

USAGE:
    gmore [OPTIONS] FILE

Shows FILE one screenful at a time. Space, Enter, Down or PageDown
advance; 'q', Escape or Ctrl-C exit.

OPTIONS:
    -h, --help    Show this help message and exit
`)
}

func main() {
	// Set UTF-8 as fallback encoding for maximum compatibility
	tcell.SetEncodingFallback(tcell.EncodingFallbackUTF8)

	path := ""
	for _, arg := range os.Args[1:] {
		switch {
		case arg == "-h" || arg == "--help":
			printHelp()
			os.Exit(0)
		case path == "":
			path = arg
		default:
			fmt.Fprintf(os.Stderr, "gmore: unexpected argument %q\n", arg)
			os.Exit(2)
		}
	}

	if path == "" {
		printHelp()
		os.Exit(2)
	}

	if _, err := os.Stat(path); err != nil {
		fmt.Fprintln(os.Stderr, "Specified file doesn't exist. Please enter a valid file path.")
		os.Exit(1)
	}

	// Without a terminal on stdout there is nothing to page; behave
	// like cat, the way more does in a pipeline.
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		if err := passthrough(path); err != nil {
			fmt.Fprintf(os.Stderr, "gmore: %v\n", err)
			os.Exit(1)
		}
		return
	}

	app, err := apppkg.NewApplication(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing application: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		_ = app.Close()
	}()

	if err := app.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "gmore: %v\n", err)
		os.Exit(1)
	}
}

func passthrough(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer func() {
		_ = f.Close()
	}()

	_, err = io.Copy(os.Stdout, f)
	return err
}
