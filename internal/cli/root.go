package cli

import (
	"log/slog"
	"time"

	"github.com/danielpatrickdp/quantum-kitty/go-controller/internal/config"
	"github.com/danielpatrickdp/quantum-kitty/go-controller/internal/engine"
	"github.com/danielpatrickdp/quantum-kitty/go-controller/internal/state"
	"github.com/spf13/cobra"
)

// App holds what CLI commands operate on.
type App struct {
	Engine  *engine.Engine
	History *state.Store // nil when persistence is disabled
	Config  config.Config
	Logger  *slog.Logger
	Now     func() time.Time
}

func (a *App) now() time.Time {
	if a.Now != nil {
		return a.Now()
	}
	return time.Now().UTC()
}

// NewRootCmd creates the top-level "qkitty" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "qkitty",
		Short:         "Time-driven quantum kitty greetings and wisdom",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newGreetCmd(app),
		newQuantumGreetCmd(app),
		newWisdomCmd(app),
		newRefreshCmd(app),
		newTemplateCmd(app),
		newAdjectiveCmd(app),
		newPhraseCmd(app),
		newBondCmd(app),
		newHistoryCmd(app),
		newServeCmd(app),
		newRemoteCmd(app),
	)

	return root
}
