package cli

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"jyotish/internal/domain/entity"
)

const dateLayout = "2006-01-02"

func (a *app) dashaCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dasha",
		Short: "Print the Vimshottari dasha timeline",
		Long: "dasha prints every period of the timeline, indented by level. " +
			"With --current only the chain of periods running at --at (default now) is printed.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			svc := a.service(cmd.ErrOrStderr())
			current, _ := cmd.Flags().GetBool("current")
			if !current {
				chart, err := svc.Generate(cmd.Context(), a.request())
				if err != nil {
					return err
				}
				return writeTimeline(cmd.OutOrStdout(), chart.Dasha.Mahadashas)
			}

			at := time.Now()
			if raw, _ := cmd.Flags().GetString("at"); raw != "" {
				parsed, err := time.Parse(time.RFC3339, raw)
				if err != nil {
					return fmt.Errorf("invalid --at %q: %w", raw, err)
				}
				at = parsed
			}
			chain, err := svc.CurrentDasha(cmd.Context(), a.request(), at)
			if err != nil {
				return err
			}
			return writeTimeline(cmd.OutOrStdout(), chain)
		},
	}
	cmd.Flags().Bool("current", false, "print only the periods running at --at")
	cmd.Flags().String("at", "", "instant for --current, RFC 3339 (default now)")
	return cmd
}

// writeTimeline prints periods depth first. Flat chains are indented by
// their level too.
func writeTimeline(w io.Writer, periods []entity.DashaPeriod) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "PERIOD\tSTART\tEND\tYEARS")
	for _, root := range periods {
		root.Walk(func(p entity.DashaPeriod) bool {
			indent := strings.Repeat("  ", max(p.Level-1, 0))
			fmt.Fprintf(tw, "%s%s\t%s\t%s\t%.2f\n",
				indent, p.Planet, p.Start.Format(dateLayout), p.End.Format(dateLayout), p.DurationYears)
			return true
		})
	}
	return tw.Flush()
}
