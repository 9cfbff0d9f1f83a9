package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/AntonioJCosta/bellcurve/internal/adapters/coinsource"
	"github.com/AntonioJCosta/bellcurve/internal/adapters/histogram"
	"github.com/AntonioJCosta/bellcurve/internal/core/services/distributionanalysis"
	"github.com/AntonioJCosta/bellcurve/internal/core/services/trialsimulation"
	"github.com/AntonioJCosta/bellcurve/internal/handlers/cli"
	"github.com/AntonioJCosta/bellcurve/internal/handlers/ui"
	"github.com/AntonioJCosta/bellcurve/internal/logging"
	"github.com/AntonioJCosta/bellcurve/internal/repositories/simconfig"
	"github.com/go-kit/log"
)

// Version is set at build time
var Version = "dev"

func main() {
	// The level is replaced once --log-level has been parsed.
	logger := &log.SwapLogger{}
	base, err := logging.New(os.Stderr, logging.DefaultLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing logger: %v\n", err)
		os.Exit(1)
	}
	logger.Swap(base)

	coinSources := coinsource.NewPCGFactory()
	renderer := histogram.NewTextRenderer()
	configLoader := simconfig.NewLoader()

	simulationSvc := trialsimulation.NewService(coinSources, renderer, logger)
	analysisSvc := distributionanalysis.NewService()
	rootCmd := cli.NewRootCommand(Version, simulationSvc, analysisSvc, configLoader, logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, ui.ErrorColor(fmt.Sprintf("Error: %v", err)))
		stop()
		os.Exit(1)
	}
}
