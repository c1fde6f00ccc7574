// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package message - plain text signed with an account's memo key
//
// a signed message is framed as:
//
//	-----BEGIN DEEX SIGNED MESSAGE-----
//	<text>
//	-----BEGIN META-----
//	account=<name>
//	memokey=<public key>
//	block=<head block number>
//	timestamp=<head block time>
//	-----BEGIN SIGNATURE-----
//	<hex signature>
//	-----END DEEX SIGNED MESSAGE-----
//
// the signature covers the text followed by the four meta lines
package message

import (
	"encoding/hex"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"

	"github.com/bitmark-inc/deex/fault"
	"github.com/bitmark-inc/deex/keypair"
	"github.com/bitmark-inc/deex/objects"
)

// frame markers in order
const (
	BeginMessage   = "-----BEGIN DEEX SIGNED MESSAGE-----"
	BeginMeta      = "-----BEGIN META-----"
	BeginSignature = "-----BEGIN SIGNATURE-----"
	EndMessage     = "-----END DEEX SIGNED MESSAGE-----"
)

var (
	markers = regexp.MustCompile(strings.Join([]string{
		regexp.QuoteMeta(BeginMessage),
		regexp.QuoteMeta(BeginMeta),
		regexp.QuoteMeta(BeginSignature),
		regexp.QuoteMeta(EndMessage),
	}, "|"))
	metaLine = regexp.MustCompile(`(\S+)=(.*)`)
)

// Meta - who signed and the chain head at the time
type Meta struct {
	Account   string
	MemoKey   *keypair.PublicKey
	Block     uint32
	Timestamp time.Time
}

// Signed - text with its meta and signature
type Signed struct {
	Text      string
	Meta      Meta
	Signature keypair.Signature
}

// Sign - sign text with the private memo key
//
// a nil meta.MemoKey is taken from the key, otherwise they must match
func Sign(text string, meta Meta, key *keypair.PrivateKey) (*Signed, error) {
	if "" == meta.Account {
		return nil, errors.Wrap(fault.ErrInvalidMessage, "no account")
	}
	public := key.PublicKey()
	if nil == meta.MemoKey {
		meta.MemoKey = public
	}
	if !public.Equal(meta.MemoKey) {
		return nil, fault.ErrMemoKeyMismatch
	}
	meta.Timestamp = meta.Timestamp.UTC().Truncate(time.Second)

	s := &Signed{
		Text: strings.TrimSpace(text),
		Meta: meta,
	}
	s.Signature = key.Sign(s.signable())
	return s, nil
}

// the signed bytes
func (s *Signed) signable() []byte {
	return []byte(s.Text + "\n" + s.metaLines())
}

func (s *Signed) metaLines() string {
	return fmt.Sprintf("account=%s\nmemokey=%s\nblock=%d\ntimestamp=%s",
		s.Meta.Account,
		s.Meta.MemoKey,
		s.Meta.Block,
		s.Meta.Timestamp.UTC().Format(objects.TimeFormat),
	)
}

// Verify - the signature was made by the meta memo key
//
// whether that key belongs to the account is for the caller to check
func (s *Signed) Verify() error {
	if nil == s.Meta.MemoKey {
		return errors.Wrap(fault.ErrInvalidMessage, "no memo key")
	}
	if !s.Meta.MemoKey.Verify(s.signable(), s.Signature) {
		return fault.ErrInvalidSignature
	}
	return nil
}

// String - the framed form
func (s *Signed) String() string {
	return strings.Join([]string{
		BeginMessage,
		s.Text,
		BeginMeta,
		s.metaLines(),
		BeginSignature,
		hex.EncodeToString(s.Signature),
		EndMessage,
	}, "\n") + "\n"
}

// Parse - read the framed form
//
// line breaks next to the markers are optional
func Parse(framed string) (*Signed, error) {
	parts := markers.Split(framed, -1)
	if 5 != len(parts) {
		return nil, errors.Wrapf(fault.ErrInvalidMessage, "frame has %d parts", len(parts))
	}

	meta := make(map[string]string)
	for _, m := range metaLine.FindAllStringSubmatch(parts[2], -1) {
		meta[m[1]] = strings.TrimSpace(m[2])
	}
	for _, k := range []string{"account", "memokey", "block", "timestamp"} {
		if _, ok := meta[k]; !ok {
			return nil, errors.Wrapf(fault.ErrInvalidMessage, "meta: missing: %s", k)
		}
	}

	key, err := keypair.PublicKeyFromBase58(meta["memokey"])
	if nil != err {
		return nil, errors.Wrapf(fault.ErrInvalidMessage, "meta: memokey: %s", err)
	}
	block, err := strconv.ParseUint(meta["block"], 10, 32)
	if nil != err {
		return nil, errors.Wrapf(fault.ErrInvalidMessage, "meta: block: %q", meta["block"])
	}
	timestamp, err := time.Parse(objects.TimeFormat, meta["timestamp"])
	if nil != err {
		return nil, errors.Wrapf(fault.ErrInvalidMessage, "meta: timestamp: %q", meta["timestamp"])
	}
	signature, err := hex.DecodeString(strings.TrimSpace(parts[3]))
	if nil != err {
		return nil, errors.Wrap(fault.ErrInvalidMessage, "signature is not hex")
	}

	return &Signed{
		Text: strings.TrimSpace(parts[1]),
		Meta: Meta{
			Account:   meta["account"],
			MemoKey:   key,
			Block:     uint32(block),
			Timestamp: timestamp.UTC(),
		},
		Signature: signature,
	}, nil
}
