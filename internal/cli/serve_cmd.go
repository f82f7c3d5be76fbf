package cli

import (
	"fmt"
	"net"
	"os"
	"os/signal"
	"syscall"

	"github.com/danielpatrickdp/quantum-kitty/go-controller/internal/rpc"
	"github.com/spf13/cobra"
)

func newServeCmd(app *App) *cobra.Command {
	var addr string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the kitty over gRPC",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if addr == "" {
				addr = app.Config.Addr
			}
			lis, err := net.Listen("tcp", addr)
			if err != nil {
				return fmt.Errorf("listen %s: %w", addr, err)
			}

			srv := rpc.NewServer(app.Engine, app.Logger)
			if app.Now != nil {
				srv = srv.WithClock(app.Now)
			}
			srv = srv.WithRateLimit(app.Config.RateLimit, app.Config.RateBurst)
			gs := rpc.NewGRPCServer(srv)

			sig := make(chan os.Signal, 1)
			signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
			go func() {
				<-sig
				app.Logger.Info("shutting down")
				gs.GracefulStop()
			}()

			app.Logger.Info("serving", "addr", lis.Addr().String(), "service", rpc.ServiceName)
			return gs.Serve(lis)
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default from QKITTY_ADDR)")
	return cmd
}
