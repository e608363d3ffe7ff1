// Command floatexpr evaluates arithmetic expressions.
package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/zephyrtronium/floatexpr"
)

// flag names
const (
	inFlagName       = "in"
	linesFlagName    = "lines"
	fmtFlagName      = "fmt"
	echoFlagName     = "echo"
	laxFlagName      = "lax"
	maxDepthFlagName = "max-depth"
	verboseFlagName  = "verbose"
)

func main() {
	if err := newApp().Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:      "floatexpr",
		Usage:     "evaluate arithmetic expressions",
		ArgsUsage: "[expression...]",
		Description: "Each argument is evaluated as one expression. With no arguments, " +
			"expressions are read from standard input. Operators are + - * / ** %; " +
			"* / ** % share a precedence level. sin and cos are available.",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  inFlagName,
				Usage: "input file, or - for stdin (default stdin if no args given)",
			},
			&cli.BoolFlag{
				Name:    linesFlagName,
				Aliases: []string{"n"},
				Usage:   "parse separate input lines as separate expressions",
			},
			&cli.StringFlag{
				Name:  fmtFlagName,
				Value: "%g",
				Usage: "result formatting string",
			},
			&cli.BoolFlag{
				Name:  echoFlagName,
				Usage: "print parse trees",
			},
			&cli.BoolFlag{
				Name:  laxFlagName,
				Usage: "ignore input following a complete expression",
			},
			&cli.IntFlag{
				Name:  maxDepthFlagName,
				Value: floatexpr.DefaultMaxDepth,
				Usage: "maximum nesting of parentheses and calls, 0 for no limit",
			},
			&cli.BoolFlag{
				Name:    verboseFlagName,
				Aliases: []string{"v"},
				Usage:   "log evaluations to stderr",
			},
		},
		Action: run,
	}
}

// run evaluates every expression from the command line and input, printing
// either the result or the error for each. Any failure makes the whole run
// fail, but only after all expressions are printed.
func run(c *cli.Context) error {
	level := slog.LevelInfo
	if c.Bool(verboseFlagName) {
		level = slog.LevelDebug
	}
	h := slog.NewTextHandler(c.App.ErrWriter, &slog.HandlerOptions{Level: level})
	logger := slog.New(h)

	depth := c.Int(maxDepthFlagName)
	if depth < 0 {
		return fmt.Errorf("max depth (%d) must not be negative", depth)
	}
	opts := []floatexpr.ParseOption{floatexpr.MaxDepth(depth)}
	if c.Bool(laxFlagName) {
		opts = append(opts, floatexpr.AllowTrailing())
	}

	srcs, err := sources(c)
	if err != nil {
		return err
	}
	logger.Debug("read input", "expressions", len(srcs))

	ctx := floatexpr.NewContext(floatexpr.WithLogHandler(h))
	verb := c.String(fmtFlagName) + "\n"
	w := c.App.Writer
	failed := 0
	for _, src := range srcs {
		a, err := floatexpr.Parse(src, opts...)
		if err != nil {
			logger.Debug("parse failed", "source", src, "error", err)
			fmt.Fprintln(w, err)
			failed++
			continue
		}
		if c.Bool(echoFlagName) {
			fmt.Fprintf(w, "%v : ", a)
		}
		r, err := ctx.Eval(a)
		if err != nil {
			fmt.Fprintln(w, err)
			failed++
			continue
		}
		fmt.Fprintf(w, verb, r)
	}
	if failed != 0 {
		return fmt.Errorf("%d of %d expressions failed", failed, len(srcs))
	}
	return nil
}

// sources collects the expressions to evaluate. The input file comes first,
// then the arguments in order.
func sources(c *cli.Context) ([]string, error) {
	var srcs []string
	in, err := infile(c.String(inFlagName), c.NArg() == 0, c.App.Reader)
	if err != nil {
		return nil, err
	}
	if in != nil {
		defer in.Close()
		if c.Bool(linesFlagName) {
			s := bufio.NewScanner(in)
			for s.Scan() {
				if strings.TrimSpace(s.Text()) == "" {
					continue
				}
				srcs = append(srcs, s.Text())
			}
			if err := s.Err(); err != nil {
				return nil, fmt.Errorf("reading input: %w", err)
			}
		} else {
			b, err := io.ReadAll(in)
			if err != nil {
				return nil, fmt.Errorf("reading input: %w", err)
			}
			srcs = append(srcs, string(b))
		}
	}
	srcs = append(srcs, c.Args().Slice()...)
	if len(srcs) == 0 {
		return nil, errors.New("no expressions to evaluate")
	}
	return srcs, nil
}

func infile(inname string, std bool, stdin io.Reader) (io.ReadCloser, error) {
	switch {
	case inname != "" && inname != "-":
		f, err := os.Open(inname)
		if err != nil {
			return nil, err
		}
		return f, nil
	case inname == "-", std:
		return io.NopCloser(stdin), nil
	}
	return nil, nil
}
