package ctc

import (
	"testing"
	"time"

	"github.com/Cleverse/go-utilities/utils"
	"github.com/gaze-network/brc20-export/internal/brc20"
	"github.com/gaze-network/uint128"
	"github.com/stretchr/testify/assert"
)

func TestNewCsvRow(t *testing.T) {
	tests := []struct {
		name     string
		input    *brc20.Inscription
		expected CsvRow
	}{
		{
			name: "transfer becomes buy",
			input: &brc20.Inscription{
				Action:        brc20.ActionTransfer,
				Amount:        uint128.From64(1000),
				Timestamp:     time.Date(2023, 7, 7, 1, 23, 45, 0, time.UTC),
				FromAddress:   "from",
				InscriptionId: "inscription_id",
				ToAddress:     "to",
				Token:         "sats",
				TokenType:     brc20.TokenTypeBRC20,
				TxId:          "hash",
			},
			expected: CsvRow{
				Timestamp:    "2023/07/07 01:23:45",
				Category:     CategoryBuy,
				BaseCurrency: "sats",
				BaseAmount:   "1000",
				From:         "from",
				To:           "to",
				Hash:         "hash",
				Description:  "BRC20 Transfer with inscription_id inscription_id",
			},
		},
		{
			name: "mint stays mint",
			input: &brc20.Inscription{
				Action:        brc20.ActionMint,
				Amount:        utils.Must(uint128.FromString("18446744073709551616")),
				Timestamp:     time.Date(2023, 5, 26, 9, 7, 21, 0, time.UTC),
				FromAddress:   "",
				InscriptionId: "minted_id",
				ToAddress:     "bc1qminter",
				Token:         "ordi",
				TokenType:     brc20.TokenTypeBRC20,
				TxId:          "mint_hash",
			},
			expected: CsvRow{
				Timestamp:    "2023/05/26 09:07:21",
				Category:     CategoryMint,
				BaseCurrency: "ordi",
				BaseAmount:   "18446744073709551616",
				From:         "",
				To:           "bc1qminter",
				Hash:         "mint_hash",
				Description:  "BRC20 Mint with inscription_id minted_id",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, NewCsvRow(tt.input))
		})
	}
}

func TestCsvRowRecord(t *testing.T) {
	row := CsvRow{
		Timestamp:    "2023/07/07 01:23:45",
		Category:     CategoryBuy,
		BaseCurrency: "sats",
		BaseAmount:   "1000",
		From:         "from",
		To:           "to",
		Hash:         "hash",
		Description:  "BRC20 Transfer with inscription_id inscription_id",
	}
	expected := []string{
		"2023/07/07 01:23:45",
		"buy",
		"sats",
		"1000",
		"",
		"",
		"",
		"",
		"from",
		"to",
		"Bitcoin",
		"hash",
		"BRC20 Transfer with inscription_id inscription_id",
	}
	actual := row.record()
	assert.Equal(t, expected, actual)
	assert.Len(t, actual, len(header))
}
