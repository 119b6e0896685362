package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	vellum "github.com/iw2rmb/vellum"
	"github.com/iw2rmb/vellum/editor"
	"github.com/iw2rmb/vellum/internal/config"
	"github.com/iw2rmb/vellum/internal/logger"
)

// app adapts editor.Model to the tea.Model interface for standalone use.
type app struct {
	editor editor.Model
}

func (a app) Init() tea.Cmd { return a.editor.Init() }

func (a app) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	a.editor, cmd = a.editor.Update(msg)
	return a, cmd
}

func (a app) View() string { return a.editor.View() }

type cliArgs struct {
	path        string
	showVersion bool
}

// parseArgs interprets the command line: an optional --version flag and at
// most one positional path. Anything else is a usage error.
func parseArgs(args []string, stderr io.Writer) (cliArgs, error) {
	fs := flag.NewFlagSet("vellum", flag.ContinueOnError)
	fs.SetOutput(stderr)
	showVersion := fs.Bool("version", false, "print the version and exit")
	fs.Usage = func() { fmt.Fprintln(stderr, "usage: vellum [path]") }

	if err := fs.Parse(args); err != nil {
		return cliArgs{}, err
	}
	if fs.NArg() > 1 {
		fs.Usage()
		return cliArgs{}, errors.New("too many arguments")
	}
	return cliArgs{path: fs.Arg(0), showVersion: *showVersion}, nil
}

func main() {
	args, err := parseArgs(os.Args[1:], os.Stderr)
	if err != nil {
		os.Exit(2)
	}
	if args.showVersion {
		fmt.Println("vellum " + vellum.Version())
		return
	}
	os.Exit(run(args.path))
}

func run(path string) int {
	cfg, cfgErr := config.Load()
	logger.Init(logger.ParseLevel(cfg.Log.Level), cfg.Log.File)
	defer logger.Close()
	if cfgErr != nil {
		logger.Warn("falling back to default config", "err", cfgErr)
	}

	text := ""
	if path != "" {
		var err error
		text, err = editor.LoadFile(path)
		if err != nil {
			// Unreadable files open as an empty document; the path is kept
			// so saving creates or replaces the file.
			logger.Warn("opening unreadable file as empty", "path", path, "err", err)
			text = ""
		}
	}

	ed := editor.New(editor.Config{
		Text:         text,
		FileName:     path,
		ShowLineNums: cfg.UI.ShowLineNumbers,
	})
	ed.Style = editor.ThemedStyle(
		cfg.UI.Theme.StatusBackground,
		cfg.UI.Theme.StatusForeground,
		cfg.UI.Theme.StatusHighlight,
	)

	logger.Info("starting editor", "version", vellum.Version(), "path", path)

	p := tea.NewProgram(app{editor: ed}, tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "vellum: %v\n", err)
		return 1
	}
	return 0
}
