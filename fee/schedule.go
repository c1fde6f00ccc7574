// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fee

import (
	"sync"

	"github.com/bitmark-inc/deex/amount"
	"github.com/bitmark-inc/deex/fault"
	"github.com/bitmark-inc/deex/objectid"
	"github.com/bitmark-inc/deex/operation"
)

// Schedule - flat fee per operation kind, paid in one asset
type Schedule struct {
	sync.RWMutex
	asset      objectid.ID
	defaultFee int64
	kinds      map[operation.Kind]int64
}

// New - schedule where every kind costs defaultFee unless overridden
func New(asset objectid.ID, defaultFee int64) *Schedule {
	return &Schedule{
		asset:      asset,
		defaultFee: defaultFee,
		kinds:      make(map[operation.Kind]int64),
	}
}

// FromNames - schedule with overrides given by operation name
func FromNames(asset objectid.ID, defaultFee int64, named map[string]int64) (*Schedule, error) {
	s := New(asset, defaultFee)
	for name, value := range named {
		kind, err := operation.KindFromName(name)
		if nil != err {
			return nil, err
		}
		s.Set(kind, value)
	}
	return s, nil
}

// Set - fee for one kind
func (s *Schedule) Set(kind operation.Kind, value int64) {
	s.Lock()
	s.kinds[kind] = value
	s.Unlock()
}

// ComputeFee - the fee to attach to an operation
func (s *Schedule) ComputeFee(op *operation.Operation) (amount.Amount, error) {
	if nil == s {
		return amount.Amount{}, fault.ErrFeeScheduleMissing
	}
	s.RLock()
	defer s.RUnlock()

	value, ok := s.kinds[op.Kind()]
	if !ok {
		value = s.defaultFee
	}

	// a proposal pays for the operations it carries
	if operation.ProposalCreate == op.Kind() {
		if l, ok := op.Field("proposed_ops"); ok {
			value += int64(len(l.([]interface{}))) * s.defaultFee / 10
		}
	}
	return amount.New(value, s.asset), nil
}
