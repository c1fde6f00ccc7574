// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transaction

import (
	"encoding/json"
	"time"

	"github.com/bitmark-inc/deex/authority"
	"github.com/bitmark-inc/deex/fault"
	"github.com/bitmark-inc/deex/keypair"
	"github.com/bitmark-inc/deex/objects"
	"github.com/bitmark-inc/deex/operation"
	"github.com/bitmark-inc/deex/util"
)

// DefaultExpiration - lifetime of a transaction after it is first
// serialised, unless set explicitly
const DefaultExpiration = 30 * time.Second

// one slot: an operation, or a proposal finalised on demand
type entry struct {
	op       *operation.Operation
	proposal *Proposal
}

// Buffer - ordered operations plus the header fields of a transaction
type Buffer struct {
	entries        []entry
	required       authority.Set
	fees           FeeSchedule
	lifetime       time.Duration
	expiration     time.Time
	refBlockNum    uint16
	refBlockPrefix uint32
	now            func() time.Time
	owner          changeNotifier
}

// changeNotifier - told when the content of an attached proposal
// changes, so that signatures over the enclosing transaction are dropped
type changeNotifier interface {
	checkChange() error
	changed()
}

// checkChange - whether the owner still accepts changes
func (b *Buffer) checkChange() error {
	if nil == b.owner {
		return nil
	}
	return b.owner.checkChange()
}

// changed - pass a content change up to the owner
func (b *Buffer) changed() {
	if nil != b.owner {
		b.owner.changed()
	}
}

// NewBuffer - empty buffer
//
// fees may be nil, operations then keep whatever fee they carry;
// lifetime <= 0 selects DefaultExpiration
func NewBuffer(fees FeeSchedule, lifetime time.Duration) *Buffer {
	if lifetime <= 0 {
		lifetime = DefaultExpiration
	}
	return &Buffer{
		required: authority.Set{},
		fees:     fees,
		lifetime: lifetime,
		now:      time.Now,
	}
}

// withFee - attach the scheduled fee if the operation has none
func (b *Buffer) withFee(op *operation.Operation) (*operation.Operation, error) {
	if _, ok := op.Fee(); ok || nil == b.fees {
		return op, nil
	}
	fee, err := b.fees.ComputeFee(op)
	if nil != err {
		return nil, err
	}
	return op.WithFee(fee), nil
}

// Append - add an operation at the end
//
// signers adds explicit requirements on top of those the operation
// itself needs
func (b *Buffer) Append(op *operation.Operation, signers ...authority.Requirement) error {
	if nil == op {
		return &fault.ValidationError{Kind: "nil", Reason: "no operation"}
	}
	for _, s := range signers {
		if !s.Account.IsAccount() {
			return &fault.ValidationError{Kind: op.Name(), Field: "signer", Reason: "not an account id"}
		}
		if s.Level < authority.Other || s.Level > authority.Owner {
			return fault.ErrInvalidAuthorityLevel
		}
	}

	op, err := b.withFee(op)
	if nil != err {
		return err
	}

	b.entries = append(b.entries, entry{op: op})
	b.required.Merge(op.RequiredAuthority())
	for _, s := range signers {
		b.required.Add(s.Account, s.Level)
	}
	return nil
}

// AppendNew - validate fields into an operation and append it
func (b *Buffer) AppendNew(kind operation.Kind, fields map[string]interface{}, signers ...authority.Requirement) error {
	op, err := operation.New(kind, fields)
	if nil != err {
		return err
	}
	return b.Append(op, signers...)
}

// attach - reserve the next slot for a proposal
func (b *Buffer) attach(p *Proposal) {
	p.owner = b
	b.entries = append(b.entries, entry{proposal: p})
}

// holds - p occupies a slot in this buffer
func (b *Buffer) holds(p *Proposal) bool {
	return nil != p && b == p.owner
}

// RequiredAuthority - copy of the accounts that must sign
//
// a non empty attached proposal needs its proposer's active key
func (b *Buffer) RequiredAuthority() authority.Set {
	s := b.required.Copy()
	for _, e := range b.entries {
		if nil != e.proposal && !e.proposal.IsEmpty() {
			s.Add(e.proposal.proposer, authority.Active)
		}
	}
	return s
}

// Operations - the operations in order with attached proposals
// finalised; empty proposals are left out
func (b *Buffer) Operations() ([]*operation.Operation, error) {
	ops := make([]*operation.Operation, 0, len(b.entries))
	for _, e := range b.entries {
		if nil != e.op {
			ops = append(ops, e.op)
			continue
		}
		if e.proposal.IsEmpty() {
			continue
		}
		op, err := e.proposal.Finalize()
		if nil != err {
			return nil, err
		}
		op, err = b.withFee(op)
		if nil != err {
			return nil, err
		}
		ops = append(ops, op)
	}
	return ops, nil
}

// Len - number of slots, including attached proposals
func (b *Buffer) Len() int {
	return len(b.entries)
}

// IsEmpty - nothing that would produce an operation
func (b *Buffer) IsEmpty() bool {
	for _, e := range b.entries {
		if nil != e.op || !e.proposal.IsEmpty() {
			return false
		}
	}
	return true
}

// Clear - drop everything, including header fields
//
// attached proposals are detached, later changes to them no longer
// reach this buffer
func (b *Buffer) Clear() {
	for _, e := range b.entries {
		if nil != e.proposal {
			e.proposal.owner = nil
		}
	}
	b.entries = nil
	b.required = authority.Set{}
	b.expiration = time.Time{}
	b.refBlockNum = 0
	b.refBlockPrefix = 0
}

// SetExpiration - fix the expiration time
func (b *Buffer) SetExpiration(t time.Time) {
	b.expiration = t.UTC().Truncate(time.Second)
}

// Expiration - the expiration, fixed to now plus the lifetime the
// first time it is needed
func (b *Buffer) Expiration() time.Time {
	if b.expiration.IsZero() {
		b.SetExpiration(b.now().Add(b.lifetime))
	}
	return b.expiration
}

// SetReference - bind to a block by number and id
func (b *Buffer) SetReference(blockNumber uint32, blockID string) error {
	num, prefix, err := objects.ReferenceBlock(blockNumber, blockID)
	if nil != err {
		return err
	}
	b.refBlockNum = num
	b.refBlockPrefix = prefix
	return nil
}

// Reference - ref_block_num and ref_block_prefix
func (b *Buffer) Reference() (uint16, uint32) {
	return b.refBlockNum, b.refBlockPrefix
}

// Unsigned - chain form without signatures
func (b *Buffer) Unsigned() (*Signed, error) {
	ops, err := b.Operations()
	if nil != err {
		return nil, err
	}
	return &Signed{
		RefBlockNum:    b.refBlockNum,
		RefBlockPrefix: b.refBlockPrefix,
		Expiration:     objects.Time{Time: b.Expiration()},
		Operations:     ops,
		Extensions:     []interface{}{},
		Signatures:     []keypair.Signature{},
	}, nil
}

// JSON - chain form without signatures
func (b *Buffer) JSON() ([]byte, error) {
	s, err := b.Unsigned()
	if nil != err {
		return nil, err
	}
	return json.Marshal(s)
}

// SignableBytes - bytes covered by signatures
//
//	chain id || varint header fields || varint count || operations || no extensions
func (b *Buffer) SignableBytes(chainID []byte, serializer Serializer) ([]byte, error) {
	ops, err := b.Operations()
	if nil != err {
		return nil, err
	}

	packed := util.Packed(append([]byte{}, chainID...))
	packed = packed.AppendUint64(uint64(b.refBlockNum))
	packed = packed.AppendUint64(uint64(b.refBlockPrefix))
	packed = packed.AppendUint64(uint64(b.Expiration().Unix()))
	packed = packed.AppendUint64(uint64(len(ops)))
	for _, op := range ops {
		encoded, err := serializer.Encode(op)
		if nil != err {
			return nil, err
		}
		packed = packed.AppendBytes(encoded)
	}
	packed = packed.AppendUint64(0)
	return packed, nil
}
