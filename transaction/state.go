// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transaction

// State - stage of a builder
type State byte

// possible states for a builder
//
// Note: each code _MUST_ be a unique capital letter
const (
	EmptyState             = State('E')
	StagedState            = State('S')
	AuthorityResolvedState = State('A')
	SignedState            = State('G')
	BroadcastState         = State('B')
)

// CanChangeTo - allowed transitions
//
// Staged can be re-entered from itself, from AuthorityResolved and
// from Signed whenever content changes; only Clear leaves Broadcast
func (state State) CanChangeTo(newState State) bool {
	switch state {
	case EmptyState:
		return StagedState == newState

	case StagedState:
		return StagedState == newState || AuthorityResolvedState == newState || EmptyState == newState

	case AuthorityResolvedState:
		return StagedState == newState || SignedState == newState || EmptyState == newState

	case SignedState:
		return StagedState == newState || BroadcastState == newState || EmptyState == newState

	case BroadcastState:
		return EmptyState == newState

	default:
		return false
	}
}

func (state State) String() string {
	switch state {
	case EmptyState:
		return "Empty"
	case StagedState:
		return "Staged"
	case AuthorityResolvedState:
		return "AuthorityResolved"
	case SignedState:
		return "Signed"
	case BroadcastState:
		return "Broadcast"
	default:
		return "?"
	}
}

// MarshalText - convert state to text for JSON
func (state State) MarshalText() ([]byte, error) {
	return []byte(state.String()), nil
}
