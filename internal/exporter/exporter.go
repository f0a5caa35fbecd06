package exporter

import (
	"context"

	"github.com/cockroachdb/errors"
	"github.com/gaze-network/brc20-export/internal/brc20"
	"github.com/gaze-network/brc20-export/internal/ctc"
	"github.com/gaze-network/brc20-export/pkg/logger"
	"github.com/gaze-network/brc20-export/pkg/logger/slogx"
)

// InscriptionDatasource provides normalized pages of a wallet's inscription
// history. Pages are 1-based on the wire.
type InscriptionDatasource interface {
	GetInscriptionPage(ctx context.Context, address string, page int) (*brc20.Pagination, error)
}

type Exporter struct {
	datasource InscriptionDatasource
	outputDir  string
}

func New(datasource InscriptionDatasource, outputDir string) *Exporter {
	return &Exporter{
		datasource: datasource,
		outputDir:  outputDir,
	}
}

// FetchAll walks the explorer's pagination sequentially until the reported
// current page equals the reported total page count, accumulating every
// inscription in page order. Termination is driven entirely by the server's
// counters: a server reporting a wrong total would loop or truncate, and we
// deliberately do not guard against that. Any error on any page aborts the
// whole walk.
func (e *Exporter) FetchAll(ctx context.Context, address string) ([]*brc20.Inscription, error) {
	inscriptions := make([]*brc20.Inscription, 0)
	for page := 0; ; page++ {
		logger.DebugContext(ctx, "fetching page", slogx.Int("page", page+1))
		// local counter is zero-based, the API is 1-indexed
		pagination, err := e.datasource.GetInscriptionPage(ctx, address, page+1)
		if err != nil {
			return nil, errors.Wrapf(err, "can't fetch page %d", page+1)
		}
		inscriptions = append(inscriptions, pagination.Inscriptions...)
		logger.InfoContext(ctx, "fetched page",
			slogx.Int("page", pagination.Page),
			slogx.Int("totalPages", pagination.TotalPages),
			slogx.Int("records", len(pagination.Inscriptions)),
		)
		if pagination.Page == pagination.TotalPages {
			return inscriptions, nil
		}
	}
}

// Export fetches the wallet's full inscription history and writes it as a
// CTC CSV, returning the output file path. Nothing is written until the
// entire walk has completed: a partial export is worse than no export.
func (e *Exporter) Export(ctx context.Context, address string) (string, error) {
	inscriptions, err := e.FetchAll(ctx, address)
	if err != nil {
		return "", errors.WithStack(err)
	}
	logger.InfoContext(ctx, "fetched all inscriptions", slogx.Int("total", len(inscriptions)))
	path, err := ctc.WriteFile(e.outputDir, inscriptions)
	if err != nil {
		return "", errors.WithStack(err)
	}
	return path, nil
}
