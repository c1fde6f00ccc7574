// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transaction

import (
	"context"

	"github.com/bitmark-inc/deex/amount"
	"github.com/bitmark-inc/deex/authority"
	"github.com/bitmark-inc/deex/keypair"
	"github.com/bitmark-inc/deex/objectid"
	"github.com/bitmark-inc/deex/operation"
)

//go:generate mockgen -destination=../mocks/transaction.go -package=mocks github.com/bitmark-inc/deex/transaction Serializer,KeyStore,Broadcaster,FeeSchedule,AccountResolver

// Serializer - canonical bytes of an operation
type Serializer interface {
	Encode(op *operation.Operation) ([]byte, error)
}

// KeyStore - private keys by account and level
//
// a missing key is reported with a NotFoundError
type KeyStore interface {
	FindKey(account objectid.ID, level authority.Level) (*keypair.PrivateKey, error)
}

// Broadcaster - write side of the network collaborator
type Broadcaster interface {
	Broadcast(ctx context.Context, tx *Signed) (*Result, error)
}

// FeeSchedule - fee for an operation that has none
type FeeSchedule interface {
	ComputeFee(op *operation.Operation) (amount.Amount, error)
}

// AccountResolver - account id from a name or id
type AccountResolver interface {
	ResolveAccount(ctx context.Context, nameOrID string) (objectid.ID, error)
}
