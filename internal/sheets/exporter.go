package sheets

import (
	"context"
	"sync"
)

// Exporter publishes a report and returns where it can be viewed.
type Exporter interface {
	Export(ctx context.Context, report Report) (string, error)
}

var _ Exporter = (*Writer)(nil)

// MockExporter records exports for tests.
type MockExporter struct {
	ExportFunc func(ctx context.Context, report Report) (string, error)
	Reports    []Report
	mu         sync.Mutex
}

// Export implements Exporter.
func (m *MockExporter) Export(ctx context.Context, report Report) (string, error) {
	m.mu.Lock()
	m.Reports = append(m.Reports, report)
	m.mu.Unlock()

	if m.ExportFunc != nil {
		return m.ExportFunc(ctx, report)
	}
	return "https://docs.google.com/spreadsheets/d/mock", nil
}

// Calls returns how many reports were exported.
func (m *MockExporter) Calls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Reports)
}
