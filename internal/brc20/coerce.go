package brc20

import (
	"math/big"
	"strconv"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/gaze-network/brc20-export/common/errs"
	"github.com/gaze-network/uint128"
)

// ParseAmount parses a raw decimal-integer string into an exact amount.
// BRC20 amounts routinely exceed the uint64 range, so they are kept as
// uint128 end to end and never pass through a native integer or float.
// The whole string must be a base-10 unsigned integer: any stray
// character fails the parse instead of truncating to a wrong figure.
func ParseAmount(raw string) (uint128.Uint128, error) {
	value, ok := new(big.Int).SetString(raw, 10)
	if !ok || raw[0] == '+' || value.Sign() < 0 {
		return uint128.Zero, errors.Wrapf(errs.InvalidArgument, "cannot parse amount %q", raw)
	}
	amount, err := uint128.FromBig(value)
	if err != nil {
		return uint128.Zero, errors.Wrapf(errs.InvalidArgument, "cannot parse amount %q: %v", raw, err)
	}
	return amount, nil
}

// ParseTimestamp parses a raw unix-millisecond string into a UTC instant.
// The explorer API reports time in milliseconds, not seconds, and never
// before the epoch: negative input fails the record.
func ParseTimestamp(raw string) (time.Time, error) {
	ms, err := strconv.ParseUint(raw, 10, 63)
	if err != nil {
		return time.Time{}, errors.Wrapf(errs.InvalidArgument, "cannot parse timestamp %q: %v", raw, err)
	}
	return time.UnixMilli(int64(ms)).UTC(), nil
}
