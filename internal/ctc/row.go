package ctc

import (
	"fmt"

	"github.com/gaze-network/brc20-export/internal/brc20"
)

// Category is a supported CTC transaction category.
type Category string

const (
	CategoryBuy  Category = "buy"
	CategoryMint Category = "mint"
)

func (c Category) String() string {
	return string(c)
}

const timestampLayout = "2006/01/02 15:04:05"

// CsvRow is one output row, formatted to CTC's schema.
type CsvRow struct {
	Timestamp    string
	Category     Category
	BaseCurrency string
	BaseAmount   string
	From         string
	To           string
	Hash         string
	Description  string
}

// NewCsvRow projects one inscription onto CTC's schema. Total, no failure
// path: every field of a normalized Inscription is renderable.
func NewCsvRow(inscription *brc20.Inscription) CsvRow {
	var category Category
	switch inscription.Action {
	case brc20.ActionMint:
		category = CategoryMint
	case brc20.ActionTransfer:
		category = CategoryBuy // may need more involved logic if we encounter non-buy transfers
	}
	return CsvRow{
		Timestamp:    inscription.Timestamp.UTC().Format(timestampLayout),
		Category:     category,
		BaseCurrency: inscription.Token,
		BaseAmount:   inscription.Amount.String(),
		From:         inscription.FromAddress,
		To:           inscription.ToAddress,
		Hash:         inscription.TxId,
		Description:  fmt.Sprintf("%s %s with inscription_id %s", inscription.TokenType, inscription.Action, inscription.InscriptionId),
	}
}

// record lays the row out in the exact column order of the header.
func (r CsvRow) record() []string {
	return []string{
		r.Timestamp,
		r.Category.String(),
		r.BaseCurrency,
		r.BaseAmount,
		"", // quote currency
		"", // quote amount
		"", // fee currency
		"", // fee amount
		r.From,
		r.To,
		blockchainName,
		r.Hash,
		r.Description,
	}
}
