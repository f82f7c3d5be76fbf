package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newGreetCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "greet NAME",
		Short: "Print the stateless greeting",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), app.Engine.Greet(args[0]))
			return nil
		},
	}
}

func newQuantumGreetCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "quantum-greet NAME",
		Short: "Greet NAME in the kitty's current tone",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res := app.Engine.QuantumGreet(args[0], app.now())
			fmt.Fprint(cmd.OutOrStdout(), renderMessage("Greeting", res.Greeting, res.Condition, res.Intensity, res.Tone))
			return nil
		},
	}
}

func newWisdomCmd(app *App) *cobra.Command {
	var topics []string
	cmd := &cobra.Command{
		Use:   "wisdom [KITTY_NAME]",
		Short: "Compose wisdom for a topic",
		Long: "Compose wisdom for the first --topic (default \"general\"). KITTY_NAME fills {kitty};\n" +
			"when omitted, the name bonded to --identity is used.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			subject, err := resolveSubject(app, cmd, args)
			if err != nil {
				return err
			}
			res := app.Engine.ComposeWisdom(subject, topics, app.now())
			fmt.Fprint(cmd.OutOrStdout(), renderMessage("Wisdom", res.Content, res.Condition, res.Intensity, res.Tone))
			return nil
		},
	}
	cmd.Flags().StringSliceVarP(&topics, "topic", "t", nil, "topic categories; only the first is used")
	cmd.Flags().String("identity", "", "identity whose bonded kitty name to use")
	return cmd
}

func resolveSubject(app *App, cmd *cobra.Command, args []string) (string, error) {
	if len(args) == 1 {
		return args[0], nil
	}
	identity, _ := cmd.Flags().GetString("identity")
	if identity == "" {
		return "", fmt.Errorf("give a KITTY_NAME or --identity")
	}
	label, found, err := app.Engine.Bond(identity)
	if err != nil {
		return "", err
	}
	if !found {
		return "", fmt.Errorf("identity %q has not named a kitty yet", identity)
	}
	return label, nil
}

func newRefreshCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "refresh",
		Short: "Force a state refresh",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			v := app.Engine.RefreshState(app.now())
			fmt.Fprintln(cmd.OutOrStdout(), renderState(v.Condition, v.Intensity, v.Tone))
			return nil
		},
	}
}
