// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transaction_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/deex/transaction"
)

func TestStateTransitions(t *testing.T) {
	e := transaction.EmptyState
	s := transaction.StagedState
	a := transaction.AuthorityResolvedState
	g := transaction.SignedState
	b := transaction.BroadcastState

	tests := []struct {
		from    transaction.State
		to      transaction.State
		allowed bool
	}{
		{e, s, true},
		{e, a, false},
		{e, g, false},
		{e, b, false},
		{s, s, true},
		{s, a, true},
		{s, g, false},
		{s, b, false},
		{s, e, true},
		{a, g, true},
		{a, s, true},
		{a, b, false},
		{g, b, true},
		{g, s, true},
		{g, e, true},
		{b, e, true},
		{b, s, false},
		{b, g, false},
		{transaction.State('?'), e, false},
	}

	for i, item := range tests {
		assert.Equal(t, item.allowed, item.from.CanChangeTo(item.to), "%d: %s -> %s", i, item.from, item.to)
	}
}

func TestStateText(t *testing.T) {
	names := map[transaction.State]string{
		transaction.EmptyState:             "Empty",
		transaction.StagedState:            "Staged",
		transaction.AuthorityResolvedState: "AuthorityResolved",
		transaction.SignedState:            "Signed",
		transaction.BroadcastState:         "Broadcast",
	}
	for state, name := range names {
		assert.Equal(t, name, state.String())
		text, err := state.MarshalText()
		assert.Nil(t, err)
		assert.Equal(t, name, string(text))
	}
}
