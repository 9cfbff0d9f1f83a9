package testutil

import (
	"github.com/AntonioJCosta/bellcurve/internal/core/domain/frequency"
	"github.com/AntonioJCosta/bellcurve/internal/core/ports"
)

// MockDistributionAnalyzer is a mock implementation of the ports.DistributionAnalyzer interface.
type MockDistributionAnalyzer struct {
	AnalyzeFunc func(table frequency.Table, occurrencesPerTrial int) (ports.AnalysisReport, error)
}

// Analyze mocks the Analyze method.
func (m *MockDistributionAnalyzer) Analyze(table frequency.Table, occurrencesPerTrial int) (ports.AnalysisReport, error) {
	if m.AnalyzeFunc != nil {
		return m.AnalyzeFunc(table, occurrencesPerTrial)
	}
	return ports.AnalysisReport{OccurrencesPerTrial: occurrencesPerTrial, NumTrials: table.Total()}, nil
}

// Ensure MockDistributionAnalyzer implements the ports.DistributionAnalyzer interface.
var _ ports.DistributionAnalyzer = (*MockDistributionAnalyzer)(nil)
