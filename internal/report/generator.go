// Package report renders computed statistics and record details as textual
// or JSON reports.
package report

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"canefield/harvest-csv/internal/config"
	"canefield/harvest-csv/internal/dateutils"
	"canefield/harvest-csv/internal/harvesterror"
	"canefield/harvest-csv/internal/models"

	"github.com/sirupsen/logrus"
)

// HarvestReport is the typed report input: the computed statistics plus the
// ordered record list. The shape is decided at the call boundary, never by
// probing row contents.
type HarvestReport struct {
	GeneratedAt time.Time          `json:"generated_at"`
	Statistics  models.Statistics  `json:"statistics"`
	Records     []models.RecordRow `json:"records"`
}

// NewHarvestReport builds a report input stamped with the current time.
func NewHarvestReport(statistics models.Statistics, records []models.HarvestRecord) HarvestReport {
	return HarvestReport{
		GeneratedAt: time.Now(),
		Statistics:  statistics,
		Records:     models.Rows(records),
	}
}

// ReportGenerator renders harvest reports in the supported formats.
type ReportGenerator struct {
	logger *logrus.Logger
}

// NewReportGenerator creates a new instance of ReportGenerator.
func NewReportGenerator() *ReportGenerator {
	return &ReportGenerator{
		logger: config.Logger,
	}
}

// Generate renders the report in the specified format (text or json).
func (g *ReportGenerator) Generate(report HarvestReport, format string) ([]byte, error) {
	switch format {
	case "text":
		return g.generateTextReport(report), nil
	case "json":
		return g.generateJSONReport(report)
	default:
		return nil, fmt.Errorf("unsupported report format: %s (must be 'text' or 'json')", format)
	}
}

// WriteToFile renders the text report into dir under a timestamped file
// name and returns the full path written.
func (g *ReportGenerator) WriteToFile(report HarvestReport, dir string) (string, error) {
	if err := os.MkdirAll(dir, 0750); err != nil {
		return "", &harvesterror.PersistenceError{Op: "report", Err: err}
	}

	path := filepath.Join(dir, fmt.Sprintf("harvest_report_%s.txt", dateutils.FileStamp(report.GeneratedAt)))
	if err := os.WriteFile(path, g.generateTextReport(report), 0600); err != nil {
		return "", &harvesterror.PersistenceError{Op: "report", Err: err}
	}

	g.logger.WithFields(logrus.Fields{
		"file":    path,
		"records": len(report.Records),
	}).Info("Report written")
	return path, nil
}

const divider = "=================================================="

func (g *ReportGenerator) generateTextReport(report HarvestReport) []byte {
	var b strings.Builder

	b.WriteString(divider + "\n")
	b.WriteString("      SUGARCANE HARVEST EFFICIENCY REPORT\n")
	fmt.Fprintf(&b, "      Generated at: %s\n", dateutils.Timestamp(report.GeneratedAt))
	b.WriteString(divider + "\n\n")

	if len(report.Records) == 0 {
		b.WriteString("No harvest records registered for this report.\n")
		return []byte(b.String())
	}

	s := report.Statistics
	b.WriteString("HARVEST SUMMARY\n")
	fmt.Fprintf(&b, "Total records: %d\n", s.TotalCount)
	fmt.Fprintf(&b, "Manual harvests: %d\n", s.ManualCount)
	fmt.Fprintf(&b, "Mechanized harvests: %d\n\n", s.MechanizedCount)

	b.WriteString("EFFICIENCY\n")
	fmt.Fprintf(&b, "Overall average efficiency: %s%%\n", s.OverallAvgEfficiency.StringFixed(2))
	fmt.Fprintf(&b, "Average efficiency (manual): %s%%\n", s.ManualAvgEfficiency.StringFixed(2))
	fmt.Fprintf(&b, "Average efficiency (mechanized): %s%%\n", s.MechanizedAvgEfficiency.StringFixed(2))
	fmt.Fprintf(&b, "Efficiency difference: %s%%\n\n", s.Difference.StringFixed(2))

	b.WriteString("RECOMMENDATIONS\n")
	for _, rec := range s.Recommendations {
		fmt.Fprintf(&b, "- %s\n", rec)
	}
	b.WriteString("\n")

	b.WriteString(divider + "\n")
	b.WriteString("HARVEST DETAILS\n")
	b.WriteString(divider + "\n\n")

	for i, row := range report.Records {
		method := row.Method
		if m, ok := models.ParseMethod(row.Method); ok {
			method = m.Label()
		}

		fmt.Fprintf(&b, "Harvest #%d\n", i+1)
		fmt.Fprintf(&b, "Batch: %s\n", row.BatchID)
		fmt.Fprintf(&b, "Method: %s\n", method)
		fmt.Fprintf(&b, "Date: %s\n", row.Date)
		fmt.Fprintf(&b, "Predicted: %s tons\n", row.PredictedTons)
		fmt.Fprintf(&b, "Harvested: %s tons\n", row.HarvestedTons)
		fmt.Fprintf(&b, "Efficiency: %s%%\n", row.Efficiency)
		fmt.Fprintf(&b, "Loss: %s%%\n", row.Loss)
		if row.Notes != "" {
			fmt.Fprintf(&b, "Notes: %s\n", row.Notes)
		}
		b.WriteString("\n" + strings.Repeat("-", 50) + "\n\n")
	}

	b.WriteString("\n\nEnd of report.\n")
	return []byte(b.String())
}

func (g *ReportGenerator) generateJSONReport(report HarvestReport) ([]byte, error) {
	jsonReport, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		g.logger.Errorf("Failed to marshal JSON report: %v", err)
		return nil, fmt.Errorf("failed to marshal JSON report: %w", err)
	}
	return jsonReport, nil
}
