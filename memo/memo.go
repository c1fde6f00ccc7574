// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package memo - messages carried by transfers and issues, readable
// only by the sender and the recipient
package memo

import (
	"encoding/binary"
	"encoding/hex"
	"encoding/json"
	"io"
	"strconv"

	"github.com/pkg/errors"
	"golang.org/x/crypto/nacl/box"
	"golang.org/x/crypto/sha3"

	"github.com/bitmark-inc/deex/fault"
	"github.com/bitmark-inc/deex/keypair"
)

// limits on the plain text
const (
	MaximumLength = 2048
)

// Memo - sealed text between two memo keys
type Memo struct {
	From    *keypair.PublicKey
	To      *keypair.PublicKey
	Nonce   uint64
	Message []byte
}

// wire form: the nonce is a decimal string and the message hex
type memoFields struct {
	From    *keypair.PublicKey `json:"from"`
	To      *keypair.PublicKey `json:"to"`
	Nonce   string             `json:"nonce"`
	Message string             `json:"message"`
}

// Encrypt - seal text from the sender's private memo key to the
// recipient's public memo key
//
// rand supplies the nonce
func Encrypt(from *keypair.PrivateKey, to *keypair.PublicKey, text string, rand io.Reader) (*Memo, error) {
	if 0 == len(text) || len(text) > MaximumLength {
		return nil, errors.Wrapf(fault.ErrInvalidMemo, "length: %d", len(text))
	}

	shared, err := from.SharedKey(to)
	if nil != err {
		return nil, err
	}

	var n [8]byte
	if _, err := io.ReadFull(rand, n[:]); nil != err {
		return nil, err
	}

	m := &Memo{
		From:  from.PublicKey(),
		To:    to,
		Nonce: binary.BigEndian.Uint64(n[:]),
	}
	nonce := m.boxNonce()
	m.Message = box.SealAfterPrecomputation(nil, []byte(text), &nonce, shared)
	return m, nil
}

// Decrypt - open with either the sender's or the recipient's private
// memo key
func (m *Memo) Decrypt(key *keypair.PrivateKey) (string, error) {
	if nil == m.From || nil == m.To {
		return "", fault.ErrInvalidMemo
	}

	public := key.PublicKey()
	var peer *keypair.PublicKey
	switch {
	case public.Equal(m.To):
		peer = m.From
	case public.Equal(m.From):
		peer = m.To
	default:
		return "", fault.ErrMemoKeyMismatch
	}

	shared, err := key.SharedKey(peer)
	if nil != err {
		return "", err
	}
	nonce := m.boxNonce()
	text, ok := box.OpenAfterPrecomputation(nil, m.Message, &nonce, shared)
	if !ok {
		return "", fault.ErrInvalidMemo
	}
	return string(text), nil
}

// box nonce: the memo nonce followed by a digest of the direction, so
// replies under the same nonce do not reuse a box nonce
func (m *Memo) boxNonce() [24]byte {
	var nonce [24]byte
	binary.BigEndian.PutUint64(nonce[:8], m.Nonce)

	h := sha3.New256()
	h.Write(m.From.Key)
	h.Write(m.To.Key)
	copy(nonce[8:], h.Sum(nil))
	return nonce
}

// Fields - operation field form
func (m *Memo) Fields() map[string]interface{} {
	return map[string]interface{}{
		"from":    m.From,
		"to":      m.To,
		"nonce":   strconv.FormatUint(m.Nonce, 10),
		"message": hex.EncodeToString(m.Message),
	}
}

// MarshalJSON - wire form
func (m Memo) MarshalJSON() ([]byte, error) {
	return json.Marshal(memoFields{
		From:    m.From,
		To:      m.To,
		Nonce:   strconv.FormatUint(m.Nonce, 10),
		Message: hex.EncodeToString(m.Message),
	})
}

// UnmarshalJSON - wire form
func (m *Memo) UnmarshalJSON(data []byte) error {
	var f memoFields
	if err := json.Unmarshal(data, &f); nil != err {
		return errors.Wrap(fault.ErrInvalidMemo, err.Error())
	}
	if nil == f.From || nil == f.To {
		return fault.ErrInvalidMemo
	}
	nonce, err := strconv.ParseUint(f.Nonce, 10, 64)
	if nil != err {
		return errors.Wrapf(fault.ErrInvalidMemo, "nonce: %q", f.Nonce)
	}
	message, err := hex.DecodeString(f.Message)
	if nil != err {
		return errors.Wrap(fault.ErrInvalidMemo, "message is not hex")
	}

	m.From = f.From
	m.To = f.To
	m.Nonce = nonce
	m.Message = message
	return nil
}

// FromField - the memo of an operation field as found in a fetched
// or decoded operation
func FromField(v interface{}) (*Memo, error) {
	data, err := json.Marshal(v)
	if nil != err {
		return nil, errors.Wrap(fault.ErrInvalidMemo, err.Error())
	}
	m := &Memo{}
	if err := json.Unmarshal(data, m); nil != err {
		return nil, err
	}
	return m, nil
}
