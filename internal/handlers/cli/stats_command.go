package cli

import (
	"fmt"
	"io"
	"strconv"

	"github.com/AntonioJCosta/bellcurve/internal/core/ports"
	"github.com/AntonioJCosta/bellcurve/internal/handlers/ui"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

// NewStatsCommand creates the 'stats' subcommand.
func NewStatsCommand(
	flags *simulationFlags,
	configLoader ports.ConfigLoader,
	simulationService ports.SimulationService,
	analyzer ports.DistributionAnalyzer,
) *cobra.Command {
	var hideBuckets bool

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Simulate and compare the result with the binomial distribution.",
		Long: `Runs the configured simulation and prints summary statistics next to the
values expected from a fair coin, followed by observed and expected counts
for every possible number of heads.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStatsCmd(cmd, flags, configLoader, simulationService, analyzer, hideBuckets)
		},
	}

	cmd.Flags().BoolVar(&hideBuckets, "summary-only", false, "Print only the summary table.")

	return cmd
}

// runStatsCmd contains the core logic for the 'stats' command.
func runStatsCmd(
	cmd *cobra.Command,
	flags *simulationFlags,
	configLoader ports.ConfigLoader,
	simulationService ports.SimulationService,
	analyzer ports.DistributionAnalyzer,
	hideBuckets bool,
) error {
	cfg, err := resolveConfig(cmd, flags, configLoader)
	if err != nil {
		return err
	}

	sim, err := simulationService.Simulate(cmd.Context(), cfg)
	if err != nil {
		return fmt.Errorf("could not run simulation: %w", err)
	}

	report, err := analyzer.Analyze(sim.Frequencies(), sim.OccurrencesPerTrial())
	if err != nil {
		return fmt.Errorf("could not analyze distribution: %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, ui.HeaderColor(fmt.Sprintf("Distribution of heads over %d trials of %d flips:", report.NumTrials, report.OccurrencesPerTrial)))
	fmt.Fprintln(out, ui.DetailColor(fmt.Sprintf("(seed %d, scale %v, workers %d)", sim.Seed(), cfg.Scale, cfg.EffectiveWorkers())))
	renderSummary(out, report)

	if hideBuckets || len(report.Buckets) == 0 {
		return nil
	}
	fmt.Fprintln(out, ui.InfoColor("\nPer-bucket counts:"))
	renderBuckets(out, report)
	return nil
}

func renderSummary(w io.Writer, report ports.AnalysisReport) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Statistic", "Observed", "Expected"})
	table.SetBorder(true)
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_RIGHT, tablewriter.ALIGN_RIGHT})

	table.Append([]string{ui.LabelColor("Mean"), ui.ValueColor(formatFloat(report.ObservedMean)), formatFloat(report.ExpectedMean)})
	table.Append([]string{ui.LabelColor("Std dev"), ui.ValueColor(formatFloat(report.ObservedStdDev)), formatFloat(report.ExpectedStdDev)})
	table.Append([]string{ui.LabelColor("Peak"), ui.ValueColor(strconv.Itoa(report.Peak)), strconv.Itoa(report.OccurrencesPerTrial / 2)})
	table.Append([]string{ui.LabelColor("Correlation"), ui.Fit(report.Correlation, formatFloat(report.Correlation)), "1.0000"})
	table.Render()
}

func renderBuckets(w io.Writer, report ports.AnalysisReport) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Heads", "Observed", "Expected", "Difference"})
	table.SetBorder(true)
	table.SetColumnAlignment([]int{tablewriter.ALIGN_RIGHT, tablewriter.ALIGN_RIGHT, tablewriter.ALIGN_RIGHT, tablewriter.ALIGN_RIGHT})

	for _, b := range report.Buckets {
		table.Append([]string{
			strconv.Itoa(b.Positives),
			strconv.Itoa(b.Observed),
			strconv.FormatFloat(b.Expected, 'f', 1, 64),
			strconv.FormatFloat(float64(b.Observed)-b.Expected, 'f', 1, 64),
		})
	}
	table.Render()
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', 4, 64)
}
