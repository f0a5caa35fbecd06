package brc20

import (
	"github.com/cockroachdb/errors"
	"github.com/gaze-network/brc20-export/common/errs"
)

// Action is a supported inscription transaction category.
type Action string

const (
	ActionMint     Action = "Mint"
	ActionTransfer Action = "Transfer"
)

// rawActions maps the explorer API's vocabulary to actions. Matching is
// exact: if the API ever emits anything else, parsing must fail loudly
// instead of guessing a category for financial data.
var rawActions = map[string]Action{
	"mint":     ActionMint,
	"transfer": ActionTransfer,
}

func ParseAction(raw string) (Action, error) {
	action, ok := rawActions[raw]
	if !ok {
		return "", errors.Wrapf(errs.Unsupported, "unknown action: %q", raw)
	}
	return action, nil
}

func (a Action) String() string {
	return string(a)
}

// State is a terminal transaction status.
//
// We use this to ensure the transactions we encounter have succeeded.
// If we ever encounter a failed transaction, we'll have to update
// our logic to handle those.
type State string

const StateSuccess State = "success"

func ParseState(raw string) (State, error) {
	if State(raw) != StateSuccess {
		return "", errors.Wrapf(errs.Unsupported, "unknown state: %q", raw)
	}
	return StateSuccess, nil
}

func (s State) String() string {
	return string(s)
}

// TokenType is a supported token standard.
//
// We only expect to encounter BRC20 tokens, but if we encounter others,
// we'll be alerted by this type's failure to parse.
type TokenType string

const TokenTypeBRC20 TokenType = "BRC20"

func ParseTokenType(raw string) (TokenType, error) {
	if TokenType(raw) != TokenTypeBRC20 {
		return "", errors.Wrapf(errs.Unsupported, "unknown token type: %q", raw)
	}
	return TokenTypeBRC20, nil
}

func (t TokenType) String() string {
	return string(t)
}
