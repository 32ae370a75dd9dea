package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/codinganovel/linediff/difflib"
)

func (a *app) closeCommand() *cobra.Command {
	var (
		n      int
		cutoff float64
	)
	cmd := &cobra.Command{
		Use:   "close WORD CANDIDATE...",
		Short: "Print the candidates closest to a word",
		Long: `close prints up to -n candidates whose similarity to WORD is at least
the cutoff, best first. The exit status is 1 when nothing matches.`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if n <= 0 {
				return fmt.Errorf("%w: count %d", difflib.ErrInvalidArgument, n)
			}
			if cutoff < 0 || cutoff > 1 {
				return fmt.Errorf("%w: cutoff %v not in [0, 1]", difflib.ErrInvalidArgument, cutoff)
			}
			matches := difflib.GetCloseMatches(args[0], args[1:], n, cutoff)
			if len(matches) == 0 {
				a.status = StatusDiffer
			}
			for _, m := range matches {
				if _, err := fmt.Fprintln(cmd.OutOrStdout(), m); err != nil {
					return err
				}
			}
			return nil
		},
	}
	cmd.Flags().IntVarP(&n, "count", "n", 3, "maximum number of matches")
	cmd.Flags().Float64Var(&cutoff, "cutoff", 0.6, "minimum similarity in [0, 1]")
	return cmd
}
