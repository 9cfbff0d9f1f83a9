package distributionanalysis

import (
	"errors"
	"fmt"
	"math"

	"github.com/AntonioJCosta/bellcurve/internal/core/domain/frequency"
	"github.com/AntonioJCosta/bellcurve/internal/core/ports"
	"github.com/montanaflynn/stats"
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"
)

// ErrTableSize is returned when a table does not have occurrencesPerTrial+1 entries.
var ErrTableSize = errors.New("frequency table size does not match occurrences per trial")

// fairCoin is the probability of a positive draw.
const fairCoin = 0.5

type service struct{}

// NewService creates a new distribution analysis service.
func NewService() ports.DistributionAnalyzer {
	return &service{}
}

// Analyze compares table with Binomial(occurrencesPerTrial, 0.5) scaled to the
// number of trials in the table.
func (s *service) Analyze(table frequency.Table, occurrencesPerTrial int) (ports.AnalysisReport, error) {
	var report ports.AnalysisReport
	if occurrencesPerTrial < 0 || len(table) != occurrencesPerTrial+1 {
		return report, fmt.Errorf("%w: %d entries for %d occurrences per trial", ErrTableSize, len(table), occurrencesPerTrial)
	}

	trials := table.Total()
	report.OccurrencesPerTrial = occurrencesPerTrial
	report.NumTrials = trials
	report.Peak = table.Peak()
	report.ExpectedMean = float64(occurrencesPerTrial) * fairCoin
	report.ExpectedStdDev = math.Sqrt(float64(occurrencesPerTrial) * fairCoin * (1 - fairCoin))
	report.ObservedMean, report.ObservedStdDev = observedMoments(table, trials)

	binomial := distuv.Binomial{N: float64(occurrencesPerTrial), P: fairCoin}
	observed := make(stats.Float64Data, len(table))
	expected := make(stats.Float64Data, len(table))
	report.Buckets = make([]ports.BucketStat, len(table))
	for k, count := range table {
		want := float64(trials) * binomialProb(binomial, occurrencesPerTrial, k)
		observed[k] = float64(count)
		expected[k] = want
		report.Buckets[k] = ports.BucketStat{Positives: k, Observed: count, Expected: want}
	}
	report.Correlation = correlation(observed, expected)

	return report, nil
}

// observedMoments returns the mean and sample standard deviation of positives
// per trial, using bucket counts as weights.
func observedMoments(table frequency.Table, trials int) (float64, float64) {
	if trials == 0 {
		return 0, 0
	}
	x := make([]float64, len(table))
	weights := make([]float64, len(table))
	for k, count := range table {
		x[k] = float64(k)
		weights[k] = float64(count)
	}
	if trials == 1 {
		return stat.Mean(x, weights), 0
	}
	return stat.MeanStdDev(x, weights)
}

func binomialProb(b distuv.Binomial, n, k int) float64 {
	if n == 0 {
		// Binomial(0, p) puts all its mass on zero.
		if k == 0 {
			return 1
		}
		return 0
	}
	return b.Prob(float64(k))
}

// correlation is zero when it is undefined, e.g. for a single bucket or an empty table.
func correlation(observed, expected stats.Float64Data) float64 {
	c, err := stats.Correlation(observed, expected)
	if err != nil || math.IsNaN(c) {
		return 0
	}
	return c
}
