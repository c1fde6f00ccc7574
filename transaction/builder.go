// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transaction

import (
	"bytes"
	"context"
	"encoding/json"
	"time"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/deex/authority"
	"github.com/bitmark-inc/deex/fault"
	"github.com/bitmark-inc/deex/keypair"
	"github.com/bitmark-inc/deex/merkle"
	"github.com/bitmark-inc/deex/objectid"
	"github.com/bitmark-inc/deex/operation"
)

// Collaborators - everything a builder depends on
type Collaborators struct {
	ChainID    []byte
	Serializer Serializer
	KeyStore   KeyStore
	Network    Broadcaster
	Fees       FeeSchedule
	Expiration time.Duration
	Log        *logger.L
}

type signer struct {
	requirement authority.Requirement
	key         *keypair.PrivateKey
}

// Builder - a transaction moving from staged operations to broadcast
type Builder struct {
	Collaborators

	buffer     *Buffer
	state      State
	signers    []signer
	signatures []keypair.Signature
	digest     merkle.Digest
}

// NewBuilder - empty builder
//
// a nil Log uses the "transaction" channel
func NewBuilder(c Collaborators) *Builder {
	if nil == c.Log {
		c.Log = logger.New("transaction")
	}
	b := &Builder{
		Collaborators: c,
		buffer:        NewBuffer(c.Fees, c.Expiration),
		state:         EmptyState,
	}
	b.buffer.owner = b
	return b
}

// State - current stage
func (b *Builder) State() State {
	return b.state
}

// change state, unknown transitions are programming errors
func (b *Builder) setState(newState State) {
	if b.state == newState {
		return
	}
	if !b.state.CanChangeTo(newState) {
		b.Log.Criticalf("invalid state change: %s -> %s", b.state, newState)
		logger.Panicf("transaction: invalid state change: %s -> %s", b.state, newState)
	}
	b.Log.Debugf("state: %s -> %s", b.state, newState)
	b.state = newState
}

// content changed: signatures and resolved keys no longer apply
func (b *Builder) invalidate() {
	b.signers = nil
	b.signatures = nil
	b.digest = merkle.Digest{}
	b.setState(StagedState)
}

// attached proposals may change only until broadcast
func (b *Builder) checkChange() error {
	if BroadcastState == b.state {
		return fault.ErrAlreadyBroadcast
	}
	return nil
}

// an attached proposal changed
func (b *Builder) changed() {
	b.invalidate()
}

// Append - add an operation, see Buffer.Append
func (b *Builder) Append(op *operation.Operation, signers ...authority.Requirement) error {
	if BroadcastState == b.state {
		return fault.ErrAlreadyBroadcast
	}
	if err := b.buffer.Append(op, signers...); nil != err {
		return err
	}
	b.invalidate()
	return nil
}

// AppendNew - validate fields into an operation and append it
func (b *Builder) AppendNew(kind operation.Kind, fields map[string]interface{}, signers ...authority.Requirement) error {
	op, err := operation.New(kind, fields)
	if nil != err {
		return err
	}
	return b.Append(op, signers...)
}

// NewProposal - attach a proposal at the current position
func (b *Builder) NewProposal(proposer objectid.ID, options ProposalOptions) (*Proposal, error) {
	if BroadcastState == b.state {
		return nil, fault.ErrAlreadyBroadcast
	}
	p, err := b.buffer.NewProposal(proposer, options)
	if nil != err {
		return nil, err
	}
	b.invalidate()
	return p, nil
}

// SetExpiration - fix the expiration time
func (b *Builder) SetExpiration(t time.Time) error {
	if BroadcastState == b.state {
		return fault.ErrAlreadyBroadcast
	}
	b.buffer.SetExpiration(t)
	if EmptyState != b.state {
		b.invalidate()
	}
	return nil
}

// SetReference - bind to a block
func (b *Builder) SetReference(blockNumber uint32, blockID string) error {
	if BroadcastState == b.state {
		return fault.ErrAlreadyBroadcast
	}
	if err := b.buffer.SetReference(blockNumber, blockID); nil != err {
		return err
	}
	if EmptyState != b.state {
		b.invalidate()
	}
	return nil
}

// HasProposal - p is attached to this builder and not cleared since
func (b *Builder) HasProposal(p *Proposal) bool {
	return b.buffer.holds(p)
}

// Buffer - the staged content
func (b *Builder) Buffer() *Buffer {
	return b.buffer
}

// IsEmpty - nothing to sign
func (b *Builder) IsEmpty() bool {
	return b.buffer.IsEmpty()
}

// RequiredAuthority - accounts that must sign
func (b *Builder) RequiredAuthority() authority.Set {
	return b.buffer.RequiredAuthority()
}

// ResolveAuthorities - find a key for every required account
//
// a key of a stricter level than required is acceptable
func (b *Builder) ResolveAuthorities() error {
	switch b.state {
	case BroadcastState:
		return fault.ErrAlreadyBroadcast
	case SignedState:
		if d, err := b.currentDigest(); nil == err && d == b.digest {
			return nil
		}
		b.invalidate()
	}

	if b.buffer.IsEmpty() {
		return fault.ErrEmptyTransaction
	}

	signers := make([]signer, 0)
	for _, r := range b.buffer.RequiredAuthority().List() {
		key, err := b.KeyStore.FindKey(r.Account, r.Level)
		if fault.IsErrNotFound(err) {
			return &fault.MissingAuthorityKeyError{Account: r.Account.String(), Level: r.Level.String()}
		}
		if nil != err {
			return err
		}
		signers = append(signers, signer{requirement: r, key: key})
	}

	b.signers = signers
	b.setState(AuthorityResolvedState)
	return nil
}

// digest of the signable bytes of the current content
func (b *Builder) currentDigest() (merkle.Digest, error) {
	data, err := b.buffer.SignableBytes(b.ChainID, b.Serializer)
	if nil != err {
		return merkle.Digest{}, err
	}
	return merkle.NewDigest(data), nil
}

// Sign - sign with every resolved key
//
// signing again without a change in content leaves the signatures
// as they are
func (b *Builder) Sign() error {
	if err := b.ResolveAuthorities(); nil != err {
		return err
	}
	if SignedState == b.state {
		return nil
	}

	d, err := b.currentDigest()
	if nil != err {
		return err
	}

	signatures := make([]keypair.Signature, 0, len(b.signers))
	seen := make([][]byte, 0, len(b.signers))
loop:
	for _, s := range b.signers {
		public := s.key.PublicKey().Key
		for _, p := range seen {
			if bytes.Equal(p, public) {
				continue loop
			}
		}
		seen = append(seen, public)
		signatures = append(signatures, s.key.Sign(d[:]))
	}

	b.digest = d
	b.signatures = signatures
	b.setState(SignedState)
	b.Log.Debugf("signed: %s  signatures: %d", d, len(signatures))
	return nil
}

// Signatures - copy of the current signatures
func (b *Builder) Signatures() []keypair.Signature {
	return append([]keypair.Signature{}, b.signatures...)
}

// TransactionID - digest of the signed content
func (b *Builder) TransactionID() (merkle.Digest, error) {
	if SignedState != b.state && BroadcastState != b.state {
		return merkle.Digest{}, fault.ErrNotSigned
	}
	return b.digest, nil
}

// Signed - the chain form with signatures
func (b *Builder) Signed() (*Signed, error) {
	if SignedState != b.state && BroadcastState != b.state {
		return nil, fault.ErrNotSigned
	}
	s, err := b.buffer.Unsigned()
	if nil != err {
		return nil, err
	}
	s.Signatures = b.Signatures()
	return s, nil
}

// JSON - chain form, with signatures when signed
func (b *Builder) JSON() ([]byte, error) {
	s, err := b.buffer.Unsigned()
	if nil != err {
		return nil, err
	}
	s.Signatures = b.Signatures()
	return json.Marshal(s)
}

// Broadcast - hand the signed transaction to the network
//
// errors from the network are returned unchanged and the builder
// stays signed; nothing is retried
func (b *Builder) Broadcast(ctx context.Context) (*Result, error) {
	switch b.state {
	case BroadcastState:
		return nil, fault.ErrAlreadyBroadcast
	case SignedState:
	default:
		return nil, fault.ErrNotSigned
	}

	d, err := b.currentDigest()
	if nil != err {
		return nil, err
	}
	if d != b.digest {
		return nil, fault.ErrSignatureStale
	}

	s, err := b.Signed()
	if nil != err {
		return nil, err
	}

	result, err := b.Network.Broadcast(ctx, s)
	if nil != err {
		b.Log.Warnf("broadcast: %s  error: %s", d, err)
		return nil, err
	}

	b.setState(BroadcastState)
	b.Log.Infof("broadcast: %s", d)
	return result, nil
}

// Clear - back to Empty, keeping the collaborators
func (b *Builder) Clear() {
	b.buffer.Clear()
	b.signers = nil
	b.signatures = nil
	b.digest = merkle.Digest{}
	b.setState(EmptyState)
}
