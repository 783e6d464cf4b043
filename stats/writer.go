package stats

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
)

// Writer persists experiment outcomes as CSV files under a base directory.
type Writer struct {
	baseDir string
}

// NewWriter creates baseDir (and parents) and returns a Writer rooted there.
func NewWriter(baseDir string) (*Writer, error) {
	if err := os.MkdirAll(baseDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	return &Writer{baseDir: baseDir}, nil
}

// WriteReports writes one row per report to reports.csv.
func (w *Writer) WriteReports(reports []Report) error {
	path := filepath.Join(w.baseDir, "reports.csv")
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create reports file: %w", err)
	}
	defer f.Close()

	cw := csv.NewWriter(f)
	defer cw.Flush()

	header := []string{"algorithm", "start_row", "start_col", "size", "trials", "successes", "rate", "elapsed_ms"}
	if err = cw.Write(header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	for _, rep := range reports {
		row := []string{
			rep.Algo.String(),
			strconv.Itoa(rep.Start.Row),
			strconv.Itoa(rep.Start.Col),
			strconv.Itoa(rep.Size),
			strconv.Itoa(rep.Trials),
			strconv.Itoa(rep.Successes),
			strconv.FormatFloat(rep.Rate, 'f', 6, 64),
			strconv.FormatInt(rep.Elapsed.Milliseconds(), 10),
		}
		if err = cw.Write(row); err != nil {
			return fmt.Errorf("failed to write report row: %w", err)
		}
	}

	return nil
}

// WriteTrials writes the per-trial records of one report to <name>_trials.csv.
func (w *Writer) WriteTrials(name string, records []TrialRecord) error {
	path := filepath.Join(w.baseDir, name+"_trials.csv")
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create trials file: %w", err)
	}
	defer f.Close()

	cw := csv.NewWriter(f)
	defer cw.Flush()

	header := []string{"trial", "seed", "success", "moves"}
	if err = cw.Write(header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	for _, rec := range records {
		row := []string{
			strconv.Itoa(rec.Trial),
			strconv.FormatInt(rec.Seed, 10),
			strconv.FormatBool(rec.Success),
			strconv.Itoa(rec.Moves),
		}
		if err = cw.Write(row); err != nil {
			return fmt.Errorf("failed to write trial row: %w", err)
		}
	}

	return nil
}
