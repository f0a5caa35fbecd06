package ctc

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/gaze-network/brc20-export/internal/brc20"
	"github.com/samber/lo"
)

const (
	blockchainName = "Bitcoin"

	// output files are named from the local wall clock at write time
	filenameLayout = "2006-01-02 15-04-05"
)

var header = []string{
	"Timestamp (UTC)",
	"Type",
	"Base Currency",
	"Base Amount",
	"Quote Currency",
	"Quote Amount",
	"Fee Currency",
	"Fee Amount",
	"From",
	"To",
	"Blockchain",
	"ID",
	"Description",
}

// WriteFile writes one row per inscription, in accumulation order, to a new
// CSV file under outputDir. The directory is created if missing. Returns the
// path of the written file.
func WriteFile(outputDir string, inscriptions []*brc20.Inscription) (string, error) {
	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return "", errors.Wrapf(err, "can't create output directory %q", outputDir)
	}
	filename := filepath.Join(outputDir, time.Now().Format(filenameLayout)+".csv")
	file, err := os.Create(filename)
	if err != nil {
		return "", errors.Wrapf(err, "can't create %q", filename)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	if err := writer.Write(header); err != nil {
		return "", errors.Wrap(err, "can't write csv header")
	}
	rows := lo.Map(inscriptions, func(inscription *brc20.Inscription, _ int) []string {
		return NewCsvRow(inscription).record()
	})
	if err := writer.WriteAll(rows); err != nil {
		return "", errors.Wrapf(err, "can't write csv rows to %q", filename)
	}
	return filename, nil
}
