package brc20

import (
	"time"

	"github.com/gaze-network/uint128"
)

// Inscription is the relevant data for one inscription transfer, with every
// interpreted field already validated and coerced. Constructed once from a
// raw explorer record and never mutated.
//
// The transaction state is consumed as a validation gate during normalization
// and not retained here: by the time an Inscription exists, its state can only
// have been "success".
type Inscription struct {
	Action        Action
	Amount        uint128.Uint128
	Timestamp     time.Time
	FromAddress   string
	InscriptionId string
	ToAddress     string
	Token         string
	TokenType     TokenType
	TxId          string
}

// Pagination is one normalized page of inscription history. Record order is
// the API-returned order and must be preserved.
type Pagination struct {
	Inscriptions []*Inscription
	Page         int
	TotalPages   int
}
