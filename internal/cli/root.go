// Package cli implements the linediff command.
package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/codinganovel/linediff/difflib"
	"github.com/codinganovel/linediff/internal/config"
	"github.com/codinganovel/linediff/render"
)

// Exit statuses, as in diff(1).
const (
	StatusSame    = 0
	StatusDiffer  = 1
	StatusTrouble = 2
)

// timeFormat is the timestamp of unified and context headers.
const timeFormat = "2006-01-02 15:04:05.000000000 -0700"

type app struct {
	flags  flags
	status int
	logger *slog.Logger
}

// Execute runs linediff with the process arguments and returns the exit
// status.
func Execute() int {
	return Run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
}

// Run runs linediff with args and the given streams and returns the exit
// status.
func Run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	a := &app{logger: slog.New(slog.DiscardHandler)}
	cmd := a.command()
	cmd.SetArgs(args)
	cmd.SetIn(stdin)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(stderr, "linediff: %v\n", err)
		return StatusTrouble
	}
	return a.status
}

func (a *app) command() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "linediff [flags] OLD NEW",
		Short: "Compare two files line by line",
		Long: `linediff compares two files line by line and prints the differences.

Either file may be "-" to read standard input. The exit status is 0 when the
files are the same, 1 when they differ and 2 on trouble.

A first file named like a subcommand runs that subcommand. Write it as
./compare or put "--" before the files to diff it.`,
		Args:          cobra.ExactArgs(2),
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE:          a.runDiff,
	}
	a.flags.register(cmd.Flags())
	cmd.AddCommand(a.compareCommand(), a.closeCommand())
	return cmd
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// input is one side of the comparison.
type input struct {
	name    string
	text    string
	lines   []string
	modTime time.Time
}

// header returns the unified and context header fields for in. A label
// replaces both the name and the date.
func (in input) header(label string) (name, date string) {
	if label != "" {
		return label, ""
	}
	return in.name, in.modTime.Format(timeFormat)
}

func readInput(stdin io.Reader, path string) (input, error) {
	if path == "-" {
		b, err := io.ReadAll(stdin)
		if err != nil {
			return input{}, fmt.Errorf("reading standard input: %w", err)
		}
		return newInput("-", string(b), time.Now()), nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return input{}, err
	}
	info, err := os.Stat(path)
	if err != nil {
		return input{}, err
	}
	return newInput(path, string(b), info.ModTime()), nil
}

func newInput(name, content string, modTime time.Time) input {
	return input{
		name:    name,
		text:    trimFinalNewline(content),
		lines:   splitInput(content),
		modTime: modTime,
	}
}

// splitInput splits file content into lines. Empty content has no lines,
// while "\n" is one empty line.
func splitInput(content string) []string {
	if content == "" {
		return []string{}
	}
	return difflib.SplitText(trimFinalNewline(content))
}

// trimFinalNewline drops the terminator of the last line so that it does
// not produce an empty trailing element.
func trimFinalNewline(s string) string {
	if strings.HasSuffix(s, "\n") {
		return strings.TrimSuffix(strings.TrimSuffix(s, "\n"), "\r")
	}
	return strings.TrimSuffix(s, "\r")
}

func (a *app) runDiff(cmd *cobra.Command, args []string) error {
	a.logger = newLogger(cmd.ErrOrStderr(), a.flags.verbose)

	cfg, err := a.flags.load()
	if err != nil {
		return err
	}
	a.flags.apply(cmd.Flags(), &cfg)
	if err := cfg.Validate(); err != nil {
		return err
	}
	if len(a.flags.labels) > 2 {
		return fmt.Errorf("%w: at most two labels", difflib.ErrInvalidArgument)
	}
	if args[0] == "-" && args[1] == "-" {
		return fmt.Errorf("%w: standard input used for both files", difflib.ErrInvalidArgument)
	}
	a.logger.Debug("configuration", "format", cfg.Format, "context", cfg.Context,
		"ignore_lines", cfg.IgnoreLines, "inline", cfg.Inline)

	oldIn, err := readInput(cmd.InOrStdin(), args[0])
	if err != nil {
		return err
	}
	newIn, err := readInput(cmd.InOrStdin(), args[1])
	if err != nil {
		return err
	}

	opts, err := cfg.DiffOptions()
	if err != nil {
		return err
	}
	d, err := difflib.NewDiff(oldIn.lines, newIn.lines, append(opts, difflib.WithLogger(a.logger))...)
	if err != nil {
		return err
	}
	if !d.IsIdentical() {
		a.status = StatusDiffer
	}

	out := cmd.OutOrStdout()
	switch {
	case a.flags.brief:
		if a.status == StatusDiffer {
			_, err = fmt.Fprintf(out, "Files %s and %s differ\n", oldIn.name, newIn.name)
		}
		return err
	case cmd.Flags().Changed("similarity"):
		method, err := cfg.SimilarityMethod()
		if err != nil {
			return err
		}
		_, err = fmt.Fprintf(out, "%.4f\n", d.Similarity(method))
		return err
	case a.flags.stats:
		s := d.Statistics()
		_, err = fmt.Fprintf(out, "inserted: %d\ndeleted: %d\nreplaced: %d\nequal: %d\nignored: %d\n",
			s.Inserted, s.Deleted, s.Replaced, s.Equal, s.Ignored)
		return err
	}

	ro, err := cfg.RenderOptions(cfg.UseColor(isTerminal(out)))
	if err != nil {
		return err
	}
	var h render.Header
	h.FromFile, h.FromDate = oldIn.header(a.label(0))
	h.ToFile, h.ToDate = newIn.header(a.label(1))
	if ro.TitleA == config.Default().TitleA && a.label(0) != "" {
		ro.TitleA = a.label(0)
	}
	if ro.TitleB == config.Default().TitleB && a.label(1) != "" {
		ro.TitleB = a.label(1)
	}
	return newRenderer(cfg.Format, ro, h).Render(out, d)
}

func (a *app) label(i int) string {
	if i < len(a.flags.labels) {
		return a.flags.labels[i]
	}
	return ""
}

func newRenderer(format string, ro render.Options, h render.Header) render.Renderer {
	switch format {
	case config.FormatContext:
		return render.Context{Header: h}
	case config.FormatUnifiedCLI:
		return render.UnifiedCLI{Options: ro}
	case config.FormatInlineCLI:
		return render.InlineCLI{Options: ro}
	case config.FormatSideBySide:
		return render.SideBySide{Options: ro}
	case config.FormatHTML:
		return render.HTML{Options: ro}
	case config.FormatNDiff:
		return render.Delta{Intraline: ro.Inline != difflib.InlineNone}
	default:
		return render.Unified{Header: h}
	}
}

func isTerminal(w io.Writer) func() bool {
	return func() bool {
		f, ok := w.(*os.File)
		return ok && term.IsTerminal(int(f.Fd()))
	}
}
