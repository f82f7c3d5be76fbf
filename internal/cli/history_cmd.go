package cli

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

func newHistoryCmd(app *App) *cobra.Command {
	var (
		last   int
		asJSON bool
	)
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show recent state refreshes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.History == nil {
				return fmt.Errorf("history needs persistence (QKITTY_PERSIST=true)")
			}
			records, err := app.History.ListVersions(last)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if asJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(records)
			}
			if len(records) == 0 {
				fmt.Fprintln(out, styleDim.Render("no refreshes recorded"))
				return nil
			}
			for _, r := range records {
				fmt.Fprintf(out, "%s %s %s\n",
					styleDim.Render(r.CreatedAt.Format(time.DateTime)),
					styleHeader.Render(fmt.Sprintf("%-14s", r.Trigger)),
					renderState(r.Vector.Condition, r.Vector.Intensity, r.Vector.Tone))
			}
			return nil
		},
	}
	cmd.Flags().IntVarP(&last, "last", "n", 10, "number of refreshes to show")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print raw records as JSON")
	return cmd
}
