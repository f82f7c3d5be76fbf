package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/danielpatrickdp/quantum-kitty/go-controller/internal/rpc"
	"github.com/spf13/cobra"
)

const remoteTimeout = 10 * time.Second

func newRemoteCmd(app *App) *cobra.Command {
	var addr, identity string
	cmd := &cobra.Command{
		Use:   "remote",
		Short: "Talk to a running qkitty server",
	}
	cmd.PersistentFlags().StringVar(&addr, "addr", "", "server address (default from QKITTY_ADDR)")
	cmd.PersistentFlags().StringVar(&identity, "identity", "", "caller identity sent with each request")

	dial := func() (*rpc.Client, error) {
		target := addr
		if target == "" {
			target = app.Config.Addr
		}
		c, err := rpc.NewClient(target)
		if err != nil {
			return nil, err
		}
		if identity != "" {
			c = c.WithIdentity(identity)
		}
		return c, nil
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "greet NAME",
			Short: "Stateless greeting from the server",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				c, err := dial()
				if err != nil {
					return err
				}
				defer c.Close()
				ctx, cancel := context.WithTimeout(cmd.Context(), remoteTimeout)
				defer cancel()

				msg, err := c.Greet(ctx, args[0])
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), msg)
				return nil
			},
		},
		&cobra.Command{
			Use:   "quantum-greet NAME",
			Short: "Tone-dependent greeting from the server",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				c, err := dial()
				if err != nil {
					return err
				}
				defer c.Close()
				ctx, cancel := context.WithTimeout(cmd.Context(), remoteTimeout)
				defer cancel()

				res, err := c.QuantumGreet(ctx, args[0])
				if err != nil {
					return err
				}
				fmt.Fprint(cmd.OutOrStdout(), renderMessage("Greeting", res.Greeting, res.Condition, res.Intensity, res.Tone))
				return nil
			},
		},
		newRemoteWisdomCmd(dial),
	)
	return cmd
}

func newRemoteWisdomCmd(dial func() (*rpc.Client, error)) *cobra.Command {
	var topics []string
	cmd := &cobra.Command{
		Use:   "wisdom [KITTY_NAME]",
		Short: "Wisdom from the server; without KITTY_NAME the bonded name is used",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := dial()
			if err != nil {
				return err
			}
			defer c.Close()
			ctx, cancel := context.WithTimeout(cmd.Context(), remoteTimeout)
			defer cancel()

			subject := ""
			if len(args) == 1 {
				subject = args[0]
			} else {
				name, found, err := c.GetKittyName(ctx)
				if err != nil {
					return err
				}
				if !found {
					return fmt.Errorf("no kitty name bound on the server; pass KITTY_NAME")
				}
				subject = name
			}

			res, err := c.ComposeWisdom(ctx, subject, topics)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), renderMessage("Wisdom", res.Content, res.Condition, res.Intensity, res.Tone))
			return nil
		},
	}
	cmd.Flags().StringSliceVarP(&topics, "topic", "t", nil, "topic categories; only the first is used")
	return cmd
}
