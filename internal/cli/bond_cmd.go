package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newBondCmd(app *App) *cobra.Command {
	var identity string
	cmd := &cobra.Command{
		Use:   "bond",
		Short: "Name the kitty for an identity",
	}
	cmd.PersistentFlags().StringVar(&identity, "identity", "anonymous", "caller identity")

	cmd.AddCommand(
		&cobra.Command{
			Use:   "set KITTY_NAME",
			Short: "Bind a kitty name to the identity",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				if err := app.Engine.SaveBond(identity, args[0]); err != nil {
					return fmt.Errorf("save bond: %w", err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s is now bonded with %s\n", identity, args[0])
				return nil
			},
		},
		&cobra.Command{
			Use:   "get",
			Short: "Show the kitty name bound to the identity",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				label, found, err := app.Engine.Bond(identity)
				if err != nil {
					return fmt.Errorf("lookup bond: %w", err)
				}
				if !found {
					fmt.Fprintln(cmd.OutOrStdout(), styleDim.Render(identity+" has not named a kitty yet"))
					return nil
				}
				fmt.Fprintln(cmd.OutOrStdout(), label)
				return nil
			},
		},
	)
	return cmd
}
