// Command boxfmt renders brace/paren key-value notation as nested ASCII
// boxes or as indented text, and checks it against the strict grammar.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/kong"
	"github.com/sirupsen/logrus"
)

const version = "0.4.0"

// Globals are flags shared by every command. Each can also be set from the
// environment or a JSON config file.
type Globals struct {
	Color        string          `enum:"auto,always,never" default:"auto" env:"BOXFMT_COLOR" help:"Colorize output (auto, always, never)"`
	Out          string          `short:"o" env:"BOXFMT_OUT" help:"Write output to this file; .gz, .zst and .xz suffixes compress it"`
	KeepNewlines bool            `name:"keep-newlines" env:"BOXFMT_KEEP_NEWLINES" help:"Do not fold multi-line input onto one line before rendering"`
	LogLevel     string          `name:"log-level" enum:"debug,info,warn,error" default:"warn" env:"BOXFMT_LOG_LEVEL" help:"Log level (debug, info, warn, error)"`
	Config       kong.ConfigFlag `help:"Load flag defaults from a JSON file"`
}

// CLI defines the command-line interface for boxfmt.
type CLI struct {
	Globals

	Box     BoxCmd     `cmd:"" help:"Render input as nested boxes"`
	Indent  IndentCmd  `cmd:"" help:"Render input as indented text"`
	Check   CheckCmd   `cmd:"" help:"Check input against the strict grammar"`
	Diff    DiffCmd    `cmd:"" help:"Show how indent rendering would change the input"`
	Lex     LexCmd     `cmd:"" help:"Debug: dump strict lexer tokens"`
	Ast     AstCmd     `cmd:"" help:"Debug: dump the parsed tree"`
	Version VersionCmd `cmd:"" help:"Print version information"`
}

// App carries the process streams and logger into command Run methods.
type App struct {
	Globals

	log    *logrus.Logger
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
}

func newLogger(w io.Writer, level string) (*logrus.Logger, error) {
	log := logrus.New()
	log.SetOutput(w)
	log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return nil, err
	}
	log.SetLevel(lvl)
	return log, nil
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	var cli CLI
	app := &App{stdin: stdin, stdout: stdout, stderr: stderr}

	parser, err := kong.New(&cli,
		kong.Name("boxfmt"),
		kong.Description("Render brace/paren key-value notation as boxes or indented text"),
		kong.Configuration(kong.JSON, "~/.config/boxfmt.json", ".boxfmt.json"),
		kong.Writers(stdout, stderr),
		kong.Bind(app),
	)
	if err != nil {
		fmt.Fprintf(stderr, "CLI initialization error: %v\n", err)
		return 2
	}

	ctx, err := parser.Parse(args)
	if err != nil {
		parser.Errorf("%s", err)
		var perr *kong.ParseError
		if errors.As(err, &perr) && perr.Context != nil {
			_ = perr.Context.PrintUsage(true)
		}
		return 2
	}

	app.Globals = cli.Globals
	app.log, err = newLogger(stderr, app.LogLevel)
	if err != nil {
		parser.Errorf("%s", err)
		return 2
	}
	app.log.WithField("command", ctx.Command()).Debug("starting")

	if err := ctx.Run(); err != nil {
		parser.Errorf("%s", err)
		return 1
	}
	return 0
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}
