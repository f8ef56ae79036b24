package utils

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/gocarina/gocsv"
	log "github.com/sirupsen/logrus"

	"github.com/jiaming2012/options-flow/src/eventmodels"
)

const reportTimeLayout = "2006-01-02-1504"

func ReportFilename(name string, at time.Time) string {
	return fmt.Sprintf("%s-%s.csv", name, at.Format(reportTimeLayout))
}

// ExportCsv writes rows to <outDir>/<name>-YYYY-MM-DD-HHMM.csv and returns the
// path. Nothing is written for an empty slice.
func ExportCsv[T any](rows []T, outDir, name string, at time.Time) (string, error) {
	if len(rows) == 0 {
		log.Infof("ExportCsv: no %s rows to export", name)
		return "", nil
	}

	if err := os.MkdirAll(outDir, 0755); err != nil {
		return "", fmt.Errorf("ExportCsv: failed to create %s: %w", outDir, err)
	}

	outFile := filepath.Join(outDir, ReportFilename(name, at))
	file, err := os.Create(outFile)
	if err != nil {
		return "", fmt.Errorf("ExportCsv: failed to create %s: %w", outFile, err)
	}
	defer file.Close()

	if err := gocsv.MarshalFile(&rows, file); err != nil {
		return "", fmt.Errorf("ExportCsv: failed to write %s: %w", outFile, err)
	}

	log.Infof("Exported %d %s rows to %s", len(rows), name, outFile)
	return outFile, nil
}

// ReadTradesCsv loads an enriched trade batch previously exported with the
// OptionTrade csv columns.
func ReadTradesCsv(path string) ([]eventmodels.OptionTrade, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("ReadTradesCsv: %w", err)
	}
	defer file.Close()

	var trades []eventmodels.OptionTrade
	if err := gocsv.UnmarshalFile(file, &trades); err != nil {
		return nil, fmt.Errorf("ReadTradesCsv: failed to unmarshal %s: %w", path, err)
	}

	return trades, nil
}
