package adapter

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	m "github.com/mouse-blink/hooklens/internal/model"
)

// ReportStore persists machine-readable run results.
type ReportStore interface {
	SaveReport(path m.Path, report any) error
	LoadReport(path m.Path, report any) error
}

type reportStore struct{}

// NewReportStore constructs a ReportStore writing indented JSON files.
func NewReportStore() ReportStore {
	return &reportStore{}
}

func (rs *reportStore) SaveReport(path m.Path, report any) error {
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("encode report: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(string(path)), 0o750); err != nil {
		return fmt.Errorf("create report directory: %w", err)
	}

	if err := os.WriteFile(string(path), append(data, '\n'), 0o600); err != nil {
		return fmt.Errorf("write report %s: %w", path, err)
	}

	return nil
}

func (rs *reportStore) LoadReport(path m.Path, report any) error {
	data, err := os.ReadFile(string(path))
	if err != nil {
		return fmt.Errorf("read report %s: %w", path, err)
	}

	if err := json.Unmarshal(data, report); err != nil {
		return fmt.Errorf("decode report %s: %w", path, err)
	}

	return nil
}
