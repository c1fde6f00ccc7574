// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package objects

import (
	"bytes"
	"context"
	"encoding/json"
	"strconv"

	"github.com/bitmark-inc/logger"
	"github.com/pkg/errors"

	"github.com/bitmark-inc/deex/cache"
	"github.com/bitmark-inc/deex/fault"
	"github.com/bitmark-inc/deex/objectid"
)

// Loader - read through cache in front of a Fetcher
type Loader struct {
	cache   *cache.ObjectCache
	fetcher Fetcher
	log     *logger.L
}

// NewLoader - create a loader
func NewLoader(c *cache.ObjectCache, fetcher Fetcher, log *logger.L) *Loader {
	return &Loader{
		cache:   c,
		fetcher: fetcher,
		log:     log,
	}
}

// decode raw data, a missing object is ErrObjectNotFound
func decode(data json.RawMessage, target interface{}, what string) error {
	trimmed := bytes.TrimSpace(data)
	if 0 == len(trimmed) || bytes.Equal(trimmed, []byte("null")) {
		return errors.Wrapf(fault.ErrObjectNotFound, "%s", what)
	}
	if err := json.Unmarshal(trimmed, target); nil != err {
		return errors.Wrapf(err, "decode %s", what)
	}
	return nil
}

// load - cache lookup, fetch on miss
//
// target must be a pointer to a new object, it is returned on a miss;
// fetched is true only when the value came from the fetcher; callers
// store only fetched values so a hit never resets an entry's age
func (l *Loader) load(key string, refresh bool, target interface{}, fetch func() (json.RawMessage, error)) (v interface{}, fetched bool, err error) {
	if !refresh {
		if cached, ok := l.cache.Get(key); ok {
			return cached, false, nil
		}
	}

	data, err := fetch()
	if nil != err {
		l.log.Warnf("fetch: %s  error: %s", key, err)
		return nil, false, err
	}
	if err := decode(data, target, key); nil != err {
		return nil, false, err
	}
	return target, true, nil
}

// store - a fetched value under each of its keys
func (l *Loader) store(v interface{}, keys ...string) {
	for _, k := range keys {
		l.cache.Set(k, v)
	}
}

func (l *Loader) fetchObject(ctx context.Context, id objectid.ID) func() (json.RawMessage, error) {
	return func() (json.RawMessage, error) {
		return l.fetcher.FetchObject(ctx, id)
	}
}

func (l *Loader) fetchNamed(ctx context.Context, namespace string, name string) func() (json.RawMessage, error) {
	return func() (json.RawMessage, error) {
		return l.fetcher.FetchNamed(ctx, namespace, name)
	}
}

// checkType - an id must name the expected object type
func checkType(id objectid.ID, space uint8, objectType uint8) error {
	if !id.Is(space, objectType) {
		return errors.Wrapf(fault.ErrInvalidObjectID, "unexpected type: %s", id)
	}
	return nil
}

// Account - by id or by name
func (l *Loader) Account(ctx context.Context, nameOrID string) (*Account, error) {
	return l.account(ctx, nameOrID, false)
}

// RefreshAccount - bypass the cache
func (l *Loader) RefreshAccount(ctx context.Context, nameOrID string) (*Account, error) {
	return l.account(ctx, nameOrID, true)
}

func (l *Loader) account(ctx context.Context, nameOrID string, refresh bool) (*Account, error) {
	key := "account:" + nameOrID
	fetch := l.fetchNamed(ctx, NamedAccount, nameOrID)
	if id, err := objectid.Parse(nameOrID); nil == err {
		if err := checkType(id, objectid.ProtocolSpace, objectid.AccountType); nil != err {
			return nil, err
		}
		key = id.String()
		fetch = l.fetchObject(ctx, id)
	}

	v, fetched, err := l.load(key, refresh, &Account{}, fetch)
	if nil != err {
		return nil, err
	}
	a := v.(*Account)
	if fetched {
		l.store(a, a.ID.String(), "account:"+a.Name)
	}
	return a, nil
}

// ResolveAccount - id of an account given its name or id
func (l *Loader) ResolveAccount(ctx context.Context, nameOrID string) (objectid.ID, error) {
	if id, err := objectid.Parse(nameOrID); nil == err && id.IsAccount() {
		return id, nil
	}
	a, err := l.Account(ctx, nameOrID)
	if nil != err {
		return objectid.ID{}, err
	}
	return a.ID, nil
}

// Asset - by id or by symbol
func (l *Loader) Asset(ctx context.Context, symbolOrID string) (*Asset, error) {
	return l.asset(ctx, symbolOrID, false)
}

// RefreshAsset - bypass the cache
func (l *Loader) RefreshAsset(ctx context.Context, symbolOrID string) (*Asset, error) {
	return l.asset(ctx, symbolOrID, true)
}

func (l *Loader) asset(ctx context.Context, symbolOrID string, refresh bool) (*Asset, error) {
	key := "asset:" + symbolOrID
	fetch := l.fetchNamed(ctx, NamedAsset, symbolOrID)
	if id, err := objectid.Parse(symbolOrID); nil == err {
		if err := checkType(id, objectid.ProtocolSpace, objectid.AssetType); nil != err {
			return nil, err
		}
		key = id.String()
		fetch = l.fetchObject(ctx, id)
	}

	v, fetched, err := l.load(key, refresh, &Asset{}, fetch)
	if nil != err {
		return nil, err
	}
	a := v.(*Asset)
	if fetched {
		l.store(a, a.ID.String(), "asset:"+a.Symbol)
	}
	return a, nil
}

// Committee - by committee member id or by the member's account
func (l *Loader) Committee(ctx context.Context, accountOrID string) (*Committee, error) {
	if id, err := objectid.Parse(accountOrID); nil == err && id.Is(objectid.ProtocolSpace, objectid.CommitteeMemberType) {
		v, fetched, err := l.load(id.String(), false, &Committee{}, l.fetchObject(ctx, id))
		if nil != err {
			return nil, err
		}
		if fetched {
			l.store(v, id.String())
		}
		return v.(*Committee), nil
	}

	account, err := l.ResolveAccount(ctx, accountOrID)
	if nil != err {
		return nil, err
	}
	key := "committee:" + account.String()
	v, fetched, err := l.load(key, false, &Committee{}, l.fetchNamed(ctx, NamedCommittee, account.String()))
	if nil != err {
		return nil, err
	}
	c := v.(*Committee)
	if fetched {
		l.store(c, c.ID.String(), key)
	}
	return c, nil
}

// Vesting - vesting balance by id
func (l *Loader) Vesting(ctx context.Context, id objectid.ID) (*Vesting, error) {
	if err := checkType(id, objectid.ProtocolSpace, objectid.VestingBalanceType); nil != err {
		return nil, err
	}
	v, fetched, err := l.load(id.String(), false, &Vesting{}, l.fetchObject(ctx, id))
	if nil != err {
		return nil, err
	}
	if fetched {
		l.store(v, id.String())
	}
	return v.(*Vesting), nil
}

// Worker - worker by id
func (l *Loader) Worker(ctx context.Context, id objectid.ID) (*Worker, error) {
	if err := checkType(id, objectid.ProtocolSpace, objectid.WorkerType); nil != err {
		return nil, err
	}
	v, fetched, err := l.load(id.String(), false, &Worker{}, l.fetchObject(ctx, id))
	if nil != err {
		return nil, err
	}
	if fetched {
		l.store(v, id.String())
	}
	return v.(*Worker), nil
}

// GenesisBalance - unclaimed genesis balance by id
func (l *Loader) GenesisBalance(ctx context.Context, id objectid.ID) (*GenesisBalance, error) {
	if err := checkType(id, objectid.ProtocolSpace, objectid.BalanceType); nil != err {
		return nil, err
	}
	v, fetched, err := l.load(id.String(), false, &GenesisBalance{}, l.fetchObject(ctx, id))
	if nil != err {
		return nil, err
	}
	if fetched {
		l.store(v, id.String())
	}
	return v.(*GenesisBalance), nil
}

// Block - block by number; blocks never change so they stay cached
func (l *Loader) Block(ctx context.Context, number uint32) (*Block, error) {
	key := "block:" + strconv.FormatUint(uint64(number), 10)
	v, fetched, err := l.load(key, false, &Block{}, func() (json.RawMessage, error) {
		return l.fetcher.FetchBlock(ctx, number)
	})
	if nil != err {
		return nil, err
	}
	if fetched {
		l.store(v, key)
	}
	return v.(*Block), nil
}

// BlockHeader - header of a block by number
func (l *Loader) BlockHeader(ctx context.Context, number uint32) (*BlockHeader, error) {
	b, err := l.Block(ctx, number)
	if nil != err {
		return nil, err
	}
	return &b.BlockHeader, nil
}

// DynamicGlobalProperties - always fetched, never served from cache
func (l *Loader) DynamicGlobalProperties(ctx context.Context) (*DynamicGlobalProperties, error) {
	v, _, err := l.load(objectid.DynamicGlobalProperty.String(), true, &DynamicGlobalProperties{}, l.fetchObject(ctx, objectid.DynamicGlobalProperty))
	if nil != err {
		return nil, err
	}
	return v.(*DynamicGlobalProperties), nil
}
