// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"encoding/json"

	"github.com/bitmark-inc/deex/fault"
	"github.com/bitmark-inc/deex/objectid"
	"github.com/bitmark-inc/deex/transaction"
)

// offline - network collaborators that refuse every request
type offline struct{}

func (offline) FetchObject(ctx context.Context, id objectid.ID) (json.RawMessage, error) {
	return nil, &fault.NetworkError{Op: "get_objects", Err: ErrOffline}
}

func (offline) FetchNamed(ctx context.Context, namespace string, name string) (json.RawMessage, error) {
	return nil, &fault.NetworkError{Op: "lookup_" + namespace, Err: ErrOffline}
}

func (offline) FetchBlock(ctx context.Context, number uint32) (json.RawMessage, error) {
	return nil, &fault.NetworkError{Op: "get_block", Err: ErrOffline}
}

func (offline) Broadcast(ctx context.Context, tx *transaction.Signed) (*transaction.Result, error) {
	return nil, &fault.NetworkError{Op: "broadcast", Err: ErrOffline}
}
