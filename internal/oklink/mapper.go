package oklink

import (
	"strconv"

	"github.com/cockroachdb/errors"
	"github.com/gaze-network/brc20-export/common/errs"
	"github.com/gaze-network/brc20-export/internal/brc20"
)

// mapInscription normalizes one raw explorer record into a domain Inscription.
// Interpreted fields (action, amount, time, state, token type) are validated;
// opaque fields (addresses, ids, ticker, tx hash) are copied verbatim. The
// first invalid field fails the whole record, no partial records.
func mapInscription(src inscriptionRaw) (*brc20.Inscription, error) {
	action, err := brc20.ParseAction(src.ActionType)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	amount, err := brc20.ParseAmount(src.Amount)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	timestamp, err := brc20.ParseTimestamp(src.Time)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	// state is a validation gate only, it has exactly one valid value
	if _, err := brc20.ParseState(src.State); err != nil {
		return nil, errors.WithStack(err)
	}
	tokenType, err := brc20.ParseTokenType(src.TokenType)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	return &brc20.Inscription{
		Action:        action,
		Amount:        amount,
		Timestamp:     timestamp,
		FromAddress:   src.FromAddress,
		InscriptionId: src.InscriptionId,
		ToAddress:     src.ToAddress,
		Token:         src.Token,
		TokenType:     tokenType,
		TxId:          src.TxId,
	}, nil
}

// mapPagination normalizes one raw page. Record order is preserved. A single
// failed record fails the whole page rather than producing an under-counted
// export.
func mapPagination(src paginationRaw) (*brc20.Pagination, error) {
	inscriptions := make([]*brc20.Inscription, 0, len(src.InscriptionsList))
	for _, raw := range src.InscriptionsList {
		inscription, err := mapInscription(raw)
		if err != nil {
			return nil, errors.WithStack(err)
		}
		inscriptions = append(inscriptions, inscription)
	}
	page, err := strconv.Atoi(src.Page)
	if err != nil {
		return nil, errors.Wrapf(errs.InvalidArgument, "cannot parse page %q: %v", src.Page, err)
	}
	totalPages, err := strconv.Atoi(src.TotalPage)
	if err != nil {
		return nil, errors.Wrapf(errs.InvalidArgument, "cannot parse total page %q: %v", src.TotalPage, err)
	}
	return &brc20.Pagination{
		Inscriptions: inscriptions,
		Page:         page,
		TotalPages:   totalPages,
	}, nil
}
