package ports

import "github.com/AntonioJCosta/bellcurve/internal/core/domain/frequency"

// BucketStat compares one frequency-table entry with its binomial expectation.
type BucketStat struct {
	Positives int
	Observed  int
	Expected  float64
}

// AnalysisReport summarizes how closely a run follows the binomial distribution.
type AnalysisReport struct {
	OccurrencesPerTrial int
	NumTrials           int
	ObservedMean        float64
	ObservedStdDev      float64
	ExpectedMean        float64
	ExpectedStdDev      float64
	Peak                int
	// Correlation is the Pearson correlation of observed and expected counts.
	Correlation float64
	Buckets     []BucketStat
}

// DistributionAnalyzer compares a frequency table with the fair-coin binomial distribution.
type DistributionAnalyzer interface {
	Analyze(table frequency.Table, occurrencesPerTrial int) (AnalysisReport, error)
}
