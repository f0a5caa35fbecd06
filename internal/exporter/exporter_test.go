package exporter

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/gaze-network/brc20-export/internal/brc20"
	"github.com/gaze-network/uint128"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubDatasource struct {
	pages     []*brc20.Pagination
	failPage  int // 1-based page to fail on, 0 = never
	requested []int
}

func (s *stubDatasource) GetInscriptionPage(_ context.Context, _ string, page int) (*brc20.Pagination, error) {
	s.requested = append(s.requested, page)
	if s.failPage != 0 && page == s.failPage {
		return nil, errors.New("upstream exploded")
	}
	return s.pages[page-1], nil
}

func makePages(recordsPerPage ...int) []*brc20.Pagination {
	totalPages := len(recordsPerPage)
	pages := make([]*brc20.Pagination, 0, totalPages)
	serial := 0
	for i, count := range recordsPerPage {
		inscriptions := make([]*brc20.Inscription, 0, count)
		for j := 0; j < count; j++ {
			inscriptions = append(inscriptions, &brc20.Inscription{
				Action:        brc20.ActionMint,
				Amount:        uint128.From64(uint64(serial)),
				Token:         "sats",
				TokenType:     brc20.TokenTypeBRC20,
				InscriptionId: fmt.Sprintf("inscription-%d", serial),
				TxId:          fmt.Sprintf("tx-%d", serial),
			})
			serial++
		}
		pages = append(pages, &brc20.Pagination{
			Inscriptions: inscriptions,
			Page:         i + 1,
			TotalPages:   totalPages,
		})
	}
	return pages
}

func TestFetchAll(t *testing.T) {
	tests := []struct {
		name           string
		recordsPerPage []int
	}{
		{
			name:           "single page",
			recordsPerPage: []int{3},
		},
		{
			name:           "multiple pages",
			recordsPerPage: []int{50, 50, 7},
		},
		{
			name:           "single empty page",
			recordsPerPage: []int{0},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			datasource := &stubDatasource{pages: makePages(tt.recordsPerPage...)}
			actual, err := New(datasource, t.TempDir()).FetchAll(context.Background(), "bc1qwallet")
			require.NoError(t, err)

			var expectedTotal int
			expectedRequested := make([]int, 0, len(tt.recordsPerPage))
			for i, count := range tt.recordsPerPage {
				expectedTotal += count
				expectedRequested = append(expectedRequested, i+1)
			}
			require.Len(t, actual, expectedTotal)
			// pages are requested strictly in order, exactly once each
			assert.Equal(t, expectedRequested, datasource.requested)
			// inter-page and intra-page order is preserved
			for i, inscription := range actual {
				assert.Equal(t, fmt.Sprintf("inscription-%d", i), inscription.InscriptionId)
			}
		})
	}
}

func TestFetchAllAbortsOnFailedPage(t *testing.T) {
	datasource := &stubDatasource{pages: makePages(2, 2, 2), failPage: 2}
	_, err := New(datasource, t.TempDir()).FetchAll(context.Background(), "bc1qwallet")
	require.Error(t, err)
	// the walk stops at the failed page, no skip-and-continue
	assert.Equal(t, []int{1, 2}, datasource.requested)
}

func TestExport(t *testing.T) {
	outputDir := filepath.Join(t.TempDir(), "csv")
	datasource := &stubDatasource{pages: makePages(2, 1)}
	path, err := New(datasource, outputDir).Export(context.Background(), "bc1qwallet")
	require.NoError(t, err)

	contents, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(contents), "Timestamp (UTC)")
	assert.Contains(t, string(contents), "inscription-2")
}

func TestExportWritesNothingOnFailure(t *testing.T) {
	outputDir := filepath.Join(t.TempDir(), "csv")
	datasource := &stubDatasource{pages: makePages(2, 2, 2), failPage: 3}
	_, err := New(datasource, outputDir).Export(context.Background(), "bc1qwallet")
	require.Error(t, err)

	// earlier valid pages must not leak into a partial file
	_, statErr := os.Stat(outputDir)
	assert.True(t, os.IsNotExist(statErr))
}
