package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/fwojciec/diffmark"
	"github.com/fwojciec/diffmark/bubbletea"
	"github.com/fwojciec/diffmark/chroma"
	"github.com/fwojciec/diffmark/clipboard"
	"github.com/fwojciec/diffmark/corpus"
	"github.com/fwojciec/diffmark/csvutil"
	"github.com/fwojciec/diffmark/fs"
	"github.com/fwojciec/diffmark/jsonl"
	"github.com/fwojciec/diffmark/lipgloss"
	"github.com/fwojciec/diffmark/yaml"
)

// ErrUsage is returned when the command line cannot be understood.
var ErrUsage = errors.New("usage: diffmark <command> [arguments]")

// ErrNoEntries is returned when the input corpus has no entries.
var ErrNoEntries = errors.New("no entries")

const usage = `Commands:
  diff BEFORE AFTER          print the pattern turning BEFORE into AFTER
  mark BASE PATTERN          apply PATTERN to BASE
  validate PATTERN...        check pattern syntax
  encode [flags] [CORPUS]    encode a slash-separated corpus (stdin if omitted)
  decode ENCODED             print the corpus stored in a .jsonl, .csv or .db file
  check [CORPUS]             round-trip every variant and report sizes
  lookup DB BASE             print the variants stored for BASE
  demo [CORPUS]              print the encoded corpus with highlighting
  view CORPUS|ENCODED.jsonl  browse the encoded corpus
  config [-init]             print the effective configuration`

// App encapsulates the application logic for testing.
type App struct {
	Stdin      io.Reader
	Output     io.Writer
	ErrOutput  io.Writer
	Config     diffmark.Config
	ConfigPath string

	Reader   diffmark.EntryReader
	Writer   diffmark.EntryWriter
	Store    diffmark.EncodedStore
	Exporter diffmark.Exporter

	// Renderer and Viewer are built from Config.Theme when nil.
	Renderer diffmark.Renderer
	Viewer   diffmark.Viewer
}

// NewApp returns an App wired to the standard streams and the default
// adapters.
func NewApp(cfg diffmark.Config, configPath string) *App {
	return &App{
		Stdin:      os.Stdin,
		Output:     os.Stdout,
		ErrOutput:  os.Stderr,
		Config:     cfg,
		ConfigPath: configPath,
		Reader:     corpus.NewReader(),
		Writer:     corpus.NewWriter(),
		Store:      jsonl.NewStore(),
		Exporter:   csvutil.NewExporter(),
	}
}

// Run dispatches args to a command.
func (a *App) Run(ctx context.Context, args []string) error {
	if len(args) < 1 {
		return ErrUsage
	}

	cmd, rest := args[0], args[1:]
	switch cmd {
	case "diff":
		return a.runDiff(rest)
	case "mark":
		return a.runMark(rest)
	case "validate":
		return a.runValidate(rest)
	case "encode":
		return a.runEncode(ctx, rest)
	case "decode":
		return a.runDecode(ctx, rest)
	case "check":
		return a.runCheck(ctx, rest)
	case "lookup":
		return a.runLookup(ctx, rest)
	case "demo":
		return a.runDemo(ctx, rest)
	case "view":
		return a.runView(ctx, rest)
	case "config":
		return a.runConfig(rest)
	}
	return fmt.Errorf("%w: unknown command %q", ErrUsage, cmd)
}

func (a *App) runDiff(args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("%w: diff BEFORE AFTER", ErrUsage)
	}
	_, err := fmt.Fprintln(a.Output, diffmark.Diff(args[0], args[1]))
	return err
}

func (a *App) runMark(args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("%w: mark BASE PATTERN", ErrUsage)
	}
	result, err := diffmark.Mark(args[0], args[1])
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(a.Output, result)
	return err
}

func (a *App) runValidate(args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("%w: validate PATTERN...", ErrUsage)
	}
	invalid := 0
	for _, p := range args {
		if err := diffmark.Validate(p); err != nil {
			invalid++
			fmt.Fprintf(a.Output, "%q\t%v\n", p, err)
			continue
		}
		fmt.Fprintf(a.Output, "%q\tok\n", p)
	}
	if invalid > 0 {
		return fmt.Errorf("%d of %d patterns: %w", invalid, len(args), diffmark.ErrInvalidPattern)
	}
	return nil
}

func (a *App) runConfig(args []string) error {
	flags := a.flagSet("config")
	initFile := flags.Bool("init", false, "Write the default configuration to the config path")
	if err := flags.Parse(args); err != nil {
		return err
	}

	if *initFile {
		if a.ConfigPath == "" {
			return errors.New("no config path: set " + yaml.EnvConfig)
		}
		if _, err := os.Stat(a.ConfigPath); err == nil {
			return fmt.Errorf("%s already exists", a.ConfigPath)
		}
		cfg := diffmark.DefaultConfig()
		cfg.CacheDir = fs.DefaultCacheDir()
		if err := yaml.Save(a.ConfigPath, cfg); err != nil {
			return err
		}
		fmt.Fprintf(a.ErrOutput, "wrote %s\n", a.ConfigPath)
		return nil
	}

	fmt.Fprintf(a.Output, "# %s\n", a.ConfigPath)
	return yaml.Write(a.Output, a.Config)
}

// flagSet returns a flag set that reports errors instead of exiting.
func (a *App) flagSet(name string) *flag.FlagSet {
	set := flag.NewFlagSet(name, flag.ContinueOnError)
	set.SetOutput(a.ErrOutput)
	return set
}

// theme resolves the configured theme, with override taking precedence.
func (a *App) theme(override string) (diffmark.Theme, error) {
	name := a.Config.Theme
	if override != "" {
		name = override
	}
	return lipgloss.ThemeByName(name)
}

func (a *App) renderer(themeName string) (diffmark.Renderer, error) {
	if a.Renderer != nil {
		return a.Renderer, nil
	}
	theme, err := a.theme(themeName)
	if err != nil {
		return nil, err
	}
	return lipgloss.NewRenderer(theme, chroma.NewHighlighter()), nil
}

func (a *App) viewer(themeName string) (diffmark.Viewer, error) {
	if a.Viewer != nil {
		return a.Viewer, nil
	}
	theme, err := a.theme(themeName)
	if err != nil {
		return nil, err
	}
	return bubbletea.NewViewer(
		bubbletea.WithTheme(theme),
		bubbletea.WithHighlighter(chroma.NewHighlighter()),
		bubbletea.WithClipboard(clipboard.NewSystem()),
	), nil
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		if errors.Is(err, ErrUsage) {
			fmt.Fprintln(os.Stderr, "\n"+usage)
		}
		os.Exit(1)
	}
}

func run() error {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	path := yaml.DefaultPath()
	cfg, err := yaml.Load(path)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	args := os.Args[1:]
	if len(args) > 0 && strings.TrimLeft(args[0], "-") == "help" {
		fmt.Fprintln(os.Stdout, ErrUsage.Error()+"\n\n"+usage)
		return nil
	}

	return NewApp(cfg, path).Run(ctx, args)
}
