package cli

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"
	"unicode/utf8"

	"github.com/sergi/go-diff/diffmatchpatch"
	"github.com/spf13/cobra"

	"github.com/codinganovel/linediff/difflib"
)

// engineStats summarizes the line edit script of one diff engine.
type engineStats struct {
	ops      int
	equal    int
	deleted  int
	inserted int
	regions  int
	elapsed  time.Duration
}

// add counts one operation. A change region is a run of operations between
// two equal ones.
func (s *engineStats) add(op byte, n, m int, inChange *bool) {
	s.ops++
	switch op {
	case '=':
		s.equal += n
		*inChange = false
		return
	case '-':
		s.deleted += n
	case '+':
		s.inserted += n
	case '!':
		s.deleted += n
		s.inserted += m
	}
	if !*inChange {
		s.regions++
		*inChange = true
	}
}

func (a *app) compareCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "compare OLD NEW",
		Short: "Compare linediff with diff-match-patch on two files",
		Long: `compare diffs two files line by line with linediff and with the
diff-match-patch line mode, and prints the size of both edit scripts.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			oldIn, err := readInput(cmd.InOrStdin(), args[0])
			if err != nil {
				return err
			}
			newIn, err := readInput(cmd.InOrStdin(), args[1])
			if err != nil {
				return err
			}
			ours, err := linediffStats(oldIn.text, newIn.text)
			if err != nil {
				return err
			}
			theirs := dmpStats(oldIn.text, newIn.text)
			if ours.regions > 0 {
				a.status = StatusDiffer
			}
			return writeStats(cmd.OutOrStdout(), []string{"linediff", "go-diff"}, []engineStats{ours, theirs})
		},
	}
}

// splitAfterLines splits s after each newline, the way diff-match-patch
// does in line mode.
func splitAfterLines(s string) []string {
	lines := strings.SplitAfter(s, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

func linediffStats(a, b string) (engineStats, error) {
	start := time.Now()
	d, err := difflib.NewDiff(splitAfterLines(a), splitAfterLines(b))
	if err != nil {
		return engineStats{}, err
	}
	ops := d.OpCodes()
	s := engineStats{elapsed: time.Since(start)}

	var inChange bool
	for _, op := range ops {
		n, m := op.I2-op.I1, op.J2-op.J1
		switch op.Tag {
		case difflib.TagEqual:
			s.add('=', n, m, &inChange)
		case difflib.TagReplace:
			s.add('!', n, m, &inChange)
		default:
			if n > 0 {
				s.add('-', n, m, &inChange)
			} else {
				s.add('+', m, n, &inChange)
			}
		}
	}
	return s, nil
}

func dmpStats(a, b string) engineStats {
	dmp := diffmatchpatch.New()
	start := time.Now()
	ra, rb, _ := dmp.DiffLinesToRunes(a, b)
	diffs := dmp.DiffMainRunes(ra, rb, false)
	diffs = dmp.DiffCleanupMerge(diffs)
	s := engineStats{elapsed: time.Since(start)}

	var inChange bool
	for _, d := range diffs {
		// Each rune stands for one line.
		n := utf8.RuneCountInString(d.Text)
		switch d.Type {
		case diffmatchpatch.DiffEqual:
			s.add('=', n, n, &inChange)
		case diffmatchpatch.DiffDelete:
			s.add('-', n, 0, &inChange)
		case diffmatchpatch.DiffInsert:
			s.add('+', n, 0, &inChange)
		}
	}
	return s
}

func writeStats(w io.Writer, names []string, stats []engineStats) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	for i, s := range stats {
		fmt.Fprintf(tw, "%s:\tops %d\tequal %d\tdeleted %d\tinserted %d\tregions %d\t%s\n",
			names[i], s.ops, s.equal, s.deleted, s.inserted, s.regions, s.elapsed.Round(time.Microsecond))
	}
	return tw.Flush()
}
