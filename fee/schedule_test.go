// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fee_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/deex/amount"
	"github.com/bitmark-inc/deex/fault"
	"github.com/bitmark-inc/deex/fee"
	"github.com/bitmark-inc/deex/objectid"
	"github.com/bitmark-inc/deex/operation"
)

func transfer(t *testing.T) *operation.Operation {
	op, err := operation.New(operation.Transfer, map[string]interface{}{
		"from":   objectid.Account(17),
		"to":     objectid.Account(18),
		"amount": amount.New(1, objectid.CoreAsset),
	})
	assert.Nil(t, err)
	return op
}

func TestComputeFee(t *testing.T) {
	s, err := fee.FromNames(objectid.CoreAsset, 100, map[string]int64{"transfer": 20})
	assert.Nil(t, err)

	f, err := s.ComputeFee(transfer(t))
	assert.Nil(t, err)
	assert.Equal(t, amount.New(20, objectid.CoreAsset), f)

	issue, err := operation.New(operation.AssetIssue, map[string]interface{}{
		"issuer":           objectid.Account(17),
		"asset_to_issue":   amount.New(5, objectid.Asset(2)),
		"issue_to_account": objectid.Account(18),
	})
	assert.Nil(t, err)
	f, err = s.ComputeFee(issue)
	assert.Nil(t, err)
	assert.Equal(t, int64(100), f.Amount, "default fee")
}

func TestProposalFee(t *testing.T) {
	s := fee.New(objectid.CoreAsset, 100)

	p, err := operation.New(operation.ProposalCreate, map[string]interface{}{
		"fee_paying_account": objectid.Account(17),
		"expiration_time":    "2020-01-01T00:00:00",
		"proposed_ops":       []interface{}{map[string]interface{}{"op": transfer(t)}, map[string]interface{}{"op": transfer(t)}},
	})
	assert.Nil(t, err)

	f, err := s.ComputeFee(p)
	assert.Nil(t, err)
	assert.Equal(t, int64(120), f.Amount)
}

func TestUnknownName(t *testing.T) {
	_, err := fee.FromNames(objectid.CoreAsset, 1, map[string]int64{"fly": 1})
	assert.Equal(t, fault.ErrUnknownOperation, err)

	var s *fee.Schedule
	_, err = s.ComputeFee(transfer(t))
	assert.Equal(t, fault.ErrFeeScheduleMissing, err)
}
