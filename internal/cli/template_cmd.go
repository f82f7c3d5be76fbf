package cli

import (
	"fmt"

	"github.com/danielpatrickdp/quantum-kitty/go-controller/internal/state"
	"github.com/spf13/cobra"
)

func newTemplateCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "template",
		Short: "Manage wisdom templates",
	}
	cmd.AddCommand(newTemplateAddCmd(app), newTemplateListCmd(app))
	return cmd
}

func newTemplateAddCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "add CATEGORY TEXT",
		Short: "Add a template to a category",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			added := app.Engine.AddTemplate(args[0], args[1])
			printAdded(cmd, added, "template", args[0])
			return nil
		},
	}
}

func newTemplateListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list [CATEGORY]",
		Short: "List categories, or the templates of one category",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if len(args) == 0 {
				for _, c := range app.Engine.Categories() {
					fmt.Fprintf(out, "%s %s\n", styleHeader.Render(c),
						styleDim.Render(fmt.Sprintf("(%d)", len(app.Engine.TemplatesFor(c)))))
				}
				return nil
			}
			list := app.Engine.TemplatesFor(args[0])
			if len(list) == 0 {
				fmt.Fprintln(out, styleDim.Render("no templates in "+args[0]))
				return nil
			}
			for i, t := range list {
				fmt.Fprintf(out, "%s %s\n", styleDim.Render(fmt.Sprintf("%2d.", i+1)), t)
			}
			return nil
		},
	}
}

func newAdjectiveCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "adjective",
		Short: "Manage condition adjectives",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "add CONDITION WORD",
		Short: "Add an adjective for a condition",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, ok := state.ParseCondition(args[0])
			if !ok {
				return fmt.Errorf("unknown condition %q (want one of %v)", args[0], state.Conditions)
			}
			printAdded(cmd, app.Engine.AddConditionAdjective(c, args[1]), "adjective", string(c))
			return nil
		},
	})
	return cmd
}

func newPhraseCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "phrase",
		Short: "Manage tone phrases",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "add TONE PHRASE",
		Short: "Add a phrase for a tone",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, ok := state.ParseTone(args[0])
			if !ok {
				return fmt.Errorf("unknown tone %q (want one of %v)", args[0], state.Tones)
			}
			printAdded(cmd, app.Engine.AddTonePhrase(t, args[1]), "phrase", string(t))
			return nil
		},
	})
	return cmd
}

func printAdded(cmd *cobra.Command, added bool, kind, key string) {
	if added {
		fmt.Fprintf(cmd.OutOrStdout(), "added %s to %s\n", kind, key)
		return
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s already present in %s\n", kind, key)
}
