// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package amount

import (
	"math"

	"github.com/shopspring/decimal"

	"github.com/bitmark-inc/deex/fault"
	"github.com/bitmark-inc/deex/objectid"
)

// Amount - integer quantity of an asset in its smallest unit
type Amount struct {
	Amount  int64       `json:"amount"`
	AssetID objectid.ID `json:"asset_id"`
}

// New - create an amount
func New(value int64, asset objectid.ID) Amount {
	return Amount{Amount: value, AssetID: asset}
}

// FromDecimal - scale a decimal string by the asset precision
//
// "1.5" with precision 5 gives 150000; digits beyond the precision
// are rejected rather than rounded
func FromDecimal(value string, precision int32, asset objectid.ID) (Amount, error) {
	d, err := decimal.NewFromString(value)
	if nil != err {
		return Amount{}, fault.ErrInvalidCount
	}
	scaled := d.Shift(precision)
	if !scaled.Equal(scaled.Truncate(0)) {
		return Amount{}, fault.ErrInvalidCount
	}
	if scaled.GreaterThan(decimal.NewFromInt(math.MaxInt64)) || scaled.LessThan(decimal.NewFromInt(math.MinInt64)) {
		return Amount{}, fault.ErrAmountTooLarge
	}
	return Amount{Amount: scaled.IntPart(), AssetID: asset}, nil
}

// Decimal - value in whole units
func (a Amount) Decimal(precision int32) decimal.Decimal {
	return decimal.New(a.Amount, -precision)
}

// Format - whole units with exactly precision decimals
func (a Amount) Format(precision int32) string {
	return a.Decimal(precision).StringFixed(precision)
}

// IsZero - an amount of nothing, used for unset fees
func (a Amount) IsZero() bool {
	return 0 == a.Amount
}

// Fields - the form stored in operation fields
func (a Amount) Fields() map[string]interface{} {
	return map[string]interface{}{
		"amount":   a.Amount,
		"asset_id": a.AssetID.String(),
	}
}

// FromFields - inverse of Fields, also accepting JSON decoded numbers
func FromFields(v interface{}) (Amount, bool) {
	m, ok := v.(map[string]interface{})
	if !ok {
		return Amount{}, false
	}
	s, ok := m["asset_id"].(string)
	if !ok {
		return Amount{}, false
	}
	asset, err := objectid.Parse(s)
	if nil != err {
		return Amount{}, false
	}
	var value int64
	switch n := m["amount"].(type) {
	case int64:
		value = n
	case int:
		value = int64(n)
	case uint64:
		if n > math.MaxInt64 {
			return Amount{}, false
		}
		value = int64(n)
	case float64:
		if n != math.Trunc(n) {
			return Amount{}, false
		}
		value = int64(n)
	default:
		return Amount{}, false
	}
	return Amount{Amount: value, AssetID: asset}, true
}
