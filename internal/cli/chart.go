package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"jyotish/internal/domain/entity"
)

func (a *app) chartCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "chart",
		Short: "Print the full chart",
		Example: "  kundli chart --dob 1989-02-24 --tob 16:30 --lat 28.5355 --lon 77.391 --timezone 5.5\n" +
			"  KUNDLI_DOB=1989-02-24 kundli chart -o yaml",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			format, _ := cmd.Flags().GetString("output")
			chart, err := a.service(cmd.ErrOrStderr()).Generate(cmd.Context(), a.request())
			if err != nil {
				return err
			}
			return writeChart(cmd.OutOrStdout(), chart, format)
		},
	}
	cmd.Flags().StringP("output", "o", "json", "output format: json or yaml")
	return cmd
}

func writeChart(w io.Writer, chart *entity.Chart, format string) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(chart)
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(chart); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("unknown output format %q (want json or yaml)", format)
	}
}
