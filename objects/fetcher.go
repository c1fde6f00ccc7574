// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package objects

import (
	"context"
	"encoding/json"

	"golang.org/x/time/rate"

	"github.com/bitmark-inc/deex/objectid"
	"github.com/bitmark-inc/deex/ratelimit"
)

// names accepted by FetchNamed
const (
	NamedAccount   = "account"
	NamedAsset     = "asset"
	NamedCommittee = "committee_member" // by account id
)

// Fetcher - read side of the network collaborator
//
// a missing object is returned as nil data with a nil error
//
//go:generate mockgen -destination=../mocks/fetcher.go -package=mocks github.com/bitmark-inc/deex/objects Fetcher
type Fetcher interface {
	FetchObject(ctx context.Context, id objectid.ID) (json.RawMessage, error)
	FetchNamed(ctx context.Context, namespace string, name string) (json.RawMessage, error)
	FetchBlock(ctx context.Context, number uint32) (json.RawMessage, error)
}

type limitedFetcher struct {
	next    Fetcher
	limiter *rate.Limiter
}

// NewLimitedFetcher - wrap a fetcher so requests do not exceed a rate
func NewLimitedFetcher(next Fetcher, limit rate.Limit, burst int) Fetcher {
	return &limitedFetcher{
		next:    next,
		limiter: rate.NewLimiter(limit, burst),
	}
}

func (f *limitedFetcher) FetchObject(ctx context.Context, id objectid.ID) (json.RawMessage, error) {
	if err := ratelimit.Limit(ctx, f.limiter); nil != err {
		return nil, err
	}
	return f.next.FetchObject(ctx, id)
}

func (f *limitedFetcher) FetchNamed(ctx context.Context, namespace string, name string) (json.RawMessage, error) {
	if err := ratelimit.Limit(ctx, f.limiter); nil != err {
		return nil, err
	}
	return f.next.FetchNamed(ctx, namespace, name)
}

func (f *limitedFetcher) FetchBlock(ctx context.Context, number uint32) (json.RawMessage, error) {
	if err := ratelimit.Limit(ctx, f.limiter); nil != err {
		return nil, err
	}
	return f.next.FetchBlock(ctx, number)
}
