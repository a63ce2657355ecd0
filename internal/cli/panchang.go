package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (a *app) panchangCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "panchang",
		Short: "Print the day, tithi, yoga and karan of the birth moment",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			chart, err := a.service(cmd.ErrOrStderr()).Generate(cmd.Context(), a.request())
			if err != nil {
				return err
			}
			p := chart.Panchang
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Day:   %s\n", p.Day)
			fmt.Fprintf(out, "Tithi: %s\n", p.Tithi)
			fmt.Fprintf(out, "Yoga:  %s\n", p.Yoga)
			fmt.Fprintf(out, "Karan: %s\n", p.Karan)
			return nil
		},
	}
}
