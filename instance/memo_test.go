// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package instance_test

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	pkgerrors "github.com/pkg/errors"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/deex/configuration"
	"github.com/bitmark-inc/deex/fault"
	"github.com/bitmark-inc/deex/memo"
	"github.com/bitmark-inc/deex/message"
	"github.com/bitmark-inc/deex/objectid"
	"github.com/bitmark-inc/deex/objects"
	"github.com/bitmark-inc/deex/operation"
)

const goldJSON = `{
  "id": "1.3.4",
  "symbol": "GOLD",
  "precision": 4,
  "issuer": "1.2.17",
  "options": {
    "max_supply": "1000000000000000",
    "market_fee_percent": 0,
    "max_market_fee": "1000000000000000",
    "issuer_permissions": 0,
    "flags": 0,
    "core_exchange_rate": {"base": {"amount": 1, "asset_id": "1.3.0"}, "quote": {"amount": 1, "asset_id": "1.3.4"}},
    "whitelist_authorities": [],
    "blacklist_authorities": [],
    "whitelist_markets": [],
    "blacklist_markets": [],
    "description": "",
    "extensions": []
  },
  "dynamic_asset_data_id": "2.3.4"
}`

// account publishing a memo key
func accountJSON(id objectid.ID, name string, memoKey string) json.RawMessage {
	return json.RawMessage(fmt.Sprintf(`{
  "id": %q,
  "name": %q,
  "registrar": "1.2.0",
  "referrer": "1.2.0",
  "membership_expiration_date": "1970-01-01T00:00:00",
  "owner": {"weight_threshold": 1, "account_auths": [], "key_auths": [], "address_auths": []},
  "active": {"weight_threshold": 1, "account_auths": [], "key_auths": [], "address_auths": []},
  "options": {"memo_key": %q, "voting_account": "1.2.5", "num_witness": 0, "num_committee": 0, "votes": [], "extensions": []},
  "statistics": "2.6.0"
}`, id.String(), name, memoKey))
}

// init0 uses its active key for memos, bob holds a separate memo key
func memoConfiguration(t *testing.T) *configuration.Configuration {
	config := testConfiguration(t)
	config.Keys = append(config.Keys, configuration.KeyType{
		Account:    bob.String(),
		Level:      "other",
		PrivateKey: newKey(t, 2).String(),
	})
	return config
}

func TestIssueAssetWithMemo(t *testing.T) {
	setupTestLogger()
	defer teardownTestLogger()

	config := memoConfiguration(t)
	config.NoBroadcast = true
	f := newFixture(t, config)
	defer f.finish()

	f.fetcher.EXPECT().FetchNamed(gomock.Any(), objects.NamedAsset, "GOLD").Return(json.RawMessage(goldJSON), nil).Times(1)
	f.fetcher.EXPECT().FetchObject(gomock.Any(), init0).Return(accountJSON(init0, "init0", newKey(t, 1).PublicKey().String()), nil).Times(1)
	f.fetcher.EXPECT().FetchObject(gomock.Any(), bob).Return(accountJSON(bob, "bob", newKey(t, 2).PublicKey().String()), nil).Times(1)

	done, err := f.instance.IssueAsset(context.Background(), "GOLD", "2.5", bob.String(), "welcome", nil)
	if !assert.Nil(t, err) {
		return
	}
	if !assert.Equal(t, 1, len(done.Transaction.Operations)) {
		return
	}
	op := done.Transaction.Operations[0]
	assert.Equal(t, operation.AssetIssue, op.Kind())
	assert.Equal(t, 1, len(done.Transaction.Signatures))

	field, ok := op.Field("memo")
	if !assert.True(t, ok, "no memo") {
		return
	}
	m, err := memo.FromField(field)
	assert.Nil(t, err)
	assert.False(t, strings.Contains(fmt.Sprint(field), "welcome"), "memo not sealed")

	text, err := f.instance.DecryptMemo(m)
	assert.Nil(t, err)
	assert.Equal(t, "welcome", text)
}

func TestIssueAssetWithoutMemo(t *testing.T) {
	setupTestLogger()
	defer teardownTestLogger()

	config := memoConfiguration(t)
	config.Unsigned = true
	f := newFixture(t, config)
	defer f.finish()

	f.fetcher.EXPECT().FetchObject(gomock.Any(), objectid.Asset(4)).Return(json.RawMessage(goldJSON), nil).Times(1)

	_, err := f.instance.IssueAsset(context.Background(), "1.3.4", "1", bob.String(), "", nil)
	assert.Nil(t, err)

	ops := operations(t, f.instance.Tx())
	if !assert.Equal(t, 1, len(ops)) {
		return
	}
	_, ok := ops[0].Field("memo")
	assert.False(t, ok)
}

func TestEncryptMemoWithoutKey(t *testing.T) {
	setupTestLogger()
	defer teardownTestLogger()

	f := newFixture(t, testConfiguration(t))
	defer f.finish()

	// bob's memo key is not held
	f.fetcher.EXPECT().FetchObject(gomock.Any(), bob).Return(accountJSON(bob, "bob", newKey(t, 2).PublicKey().String()), nil).Times(1)
	f.fetcher.EXPECT().FetchObject(gomock.Any(), init0).Return(accountJSON(init0, "init0", newKey(t, 1).PublicKey().String()), nil).Times(1)

	_, err := f.instance.EncryptMemo(context.Background(), bob.String(), init0.String(), "hello")
	assert.Equal(t, fault.ErrKeyNotFound, pkgerrors.Cause(err))
}

func TestSignAndVerifyMessage(t *testing.T) {
	setupTestLogger()
	defer teardownTestLogger()

	f := newFixture(t, memoConfiguration(t))
	defer f.finish()

	ctx := context.Background()
	properties := json.RawMessage(`{"id": "2.1.0", "head_block_number": 23814223, "head_block_id": "0001234556789abcdef0123456789abcdef01234", "time": "2018-01-24T11:42:33"}`)
	f.fetcher.EXPECT().FetchNamed(gomock.Any(), objects.NamedAccount, "init0").Return(accountJSON(init0, "init0", newKey(t, 1).PublicKey().String()), nil).Times(1)
	f.fetcher.EXPECT().FetchObject(gomock.Any(), objectid.DynamicGlobalProperty).Return(properties, nil).Times(1)

	framed, err := f.instance.SignMessage(ctx, "message foobar", "")
	if !assert.Nil(t, err) {
		return
	}
	assert.True(t, strings.Contains(framed, "\naccount=init0\n"))
	assert.True(t, strings.Contains(framed, "\nblock=23814223\ntimestamp=2018-01-24T11:42:33\n"))

	s, err := f.instance.VerifyMessage(ctx, framed)
	assert.Nil(t, err)
	assert.Equal(t, "message foobar", s.Text)

	_, err = f.instance.VerifyMessage(ctx, strings.Replace(framed, "foobar", "foobaz", 1))
	assert.Equal(t, fault.ErrInvalidSignature, err)

	// correctly signed, but not with the key init0 publishes
	forged, err := message.Sign("message foobar", message.Meta{
		Account:   "init0",
		Block:     1,
		Timestamp: time.Now(),
	}, newKey(t, 2))
	assert.Nil(t, err)
	_, err = f.instance.VerifyMessage(ctx, forged.String())
	assert.Equal(t, fault.ErrMemoKeyMismatch, err)

	_, err = f.instance.VerifyMessage(ctx, "no frame")
	assert.Equal(t, fault.ErrInvalidMessage, pkgerrors.Cause(err))
}

func TestSignMessageWithoutMemoKey(t *testing.T) {
	setupTestLogger()
	defer teardownTestLogger()

	f := newFixture(t, testConfiguration(t))
	defer f.finish()

	f.expectDefaultAccount(1)

	_, err := f.instance.SignMessage(context.Background(), "hello", "init0")
	assert.Equal(t, fault.ErrInvalidPublicKey, pkgerrors.Cause(err))
}
