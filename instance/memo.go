// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package instance

import (
	"context"
	"crypto/rand"

	"github.com/pkg/errors"

	"github.com/bitmark-inc/deex/asset"
	"github.com/bitmark-inc/deex/fault"
	"github.com/bitmark-inc/deex/keypair"
	"github.com/bitmark-inc/deex/memo"
	"github.com/bitmark-inc/deex/message"
	"github.com/bitmark-inc/deex/objects"
)

// public memo key published by an account
func memoKey(a *objects.Account) (*keypair.PublicKey, error) {
	if "" == a.Options.MemoKey {
		return nil, errors.Wrapf(fault.ErrInvalidPublicKey, "account: %s has no memo key", a.Name)
	}
	return keypair.PublicKeyFromBase58(a.Options.MemoKey)
}

// private key for a public memo key, whichever account it is held for
func (i *Instance) findMemoKey(public *keypair.PublicKey) (*keypair.PrivateKey, error) {
	i.RLock()
	defer i.RUnlock()
	return i.keys.FindPublicKey(public)
}

// EncryptMemo - seal text from one account's memo key to another's
//
// the private memo key of from must be held
func (i *Instance) EncryptMemo(ctx context.Context, from string, to string, text string) (*memo.Memo, error) {
	sender, err := i.loader.Account(ctx, from)
	if nil != err {
		return nil, err
	}
	recipient, err := i.loader.Account(ctx, to)
	if nil != err {
		return nil, err
	}

	senderPublic, err := memoKey(sender)
	if nil != err {
		return nil, err
	}
	recipientPublic, err := memoKey(recipient)
	if nil != err {
		return nil, err
	}
	key, err := i.findMemoKey(senderPublic)
	if nil != err {
		return nil, errors.Wrapf(err, "memo key of: %s", sender.Name)
	}
	return memo.Encrypt(key, recipientPublic, text, rand.Reader)
}

// DecryptMemo - text of a memo with the key of either end
func (i *Instance) DecryptMemo(m *memo.Memo) (string, error) {
	key, err := i.findMemoKey(m.To)
	if fault.IsErrNotFound(err) {
		key, err = i.findMemoKey(m.From)
	}
	if nil != err {
		return "", err
	}
	return m.Decrypt(key)
}

// IssueAsset - create supply of an asset given by symbol or id for an
// account, signed by the issuer
//
// a non-empty text is sealed into the memo from the issuer to the
// recipient
func (i *Instance) IssueAsset(ctx context.Context, symbolOrID string, value string, to string, text string, target Target) (*Finalized, error) {
	a, err := i.loader.Asset(ctx, symbolOrID)
	if nil != err {
		return nil, err
	}
	recipient, err := i.loader.ResolveAccount(ctx, to)
	if nil != err {
		return nil, err
	}

	var m *memo.Memo
	if "" != text {
		m, err = i.EncryptMemo(ctx, a.Issuer.String(), recipient.String(), text)
		if nil != err {
			return nil, err
		}
	}

	u, err := asset.Issue(a, value, recipient, m)
	if nil != err {
		return nil, err
	}
	return i.FinalizeOp(ctx, u.Operation, a.Issuer.String(), u.Level, target)
}

// SignMessage - frame and sign text with an account's memo key
//
// an empty account is the default account; the chain head is recorded
// in the meta
func (i *Instance) SignMessage(ctx context.Context, text string, account string) (string, error) {
	if "" == account {
		account = i.Config().DefaultAccount
	}
	if "" == account {
		return "", errors.Wrap(fault.ErrInvalidMessage, "no account and no default account")
	}

	a, err := i.loader.Account(ctx, account)
	if nil != err {
		return "", err
	}
	public, err := memoKey(a)
	if nil != err {
		return "", err
	}
	key, err := i.findMemoKey(public)
	if nil != err {
		return "", errors.Wrapf(err, "memo key of: %s", a.Name)
	}
	p, err := i.loader.DynamicGlobalProperties(ctx)
	if nil != err {
		return "", err
	}

	s, err := message.Sign(text, message.Meta{
		Account:   a.Name,
		MemoKey:   public,
		Block:     p.HeadBlockNumber,
		Timestamp: p.Time.Time,
	}, key)
	if nil != err {
		return "", err
	}
	i.log.Debugf("signed message  account: %s  block: %d", a.Name, p.HeadBlockNumber)
	return s.String(), nil
}

// VerifyMessage - check a framed message against the memo key its
// account currently publishes
func (i *Instance) VerifyMessage(ctx context.Context, framed string) (*message.Signed, error) {
	s, err := message.Parse(framed)
	if nil != err {
		return nil, err
	}

	a, err := i.loader.Account(ctx, s.Meta.Account)
	if nil != err {
		return nil, err
	}
	public, err := memoKey(a)
	if nil != err {
		return nil, err
	}
	if !public.Equal(s.Meta.MemoKey) {
		return nil, fault.ErrMemoKeyMismatch
	}
	if err := s.Verify(); nil != err {
		return nil, err
	}
	return s, nil
}
