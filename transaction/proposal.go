// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transaction

import (
	"time"

	"github.com/bitmark-inc/deex/authority"
	"github.com/bitmark-inc/deex/fault"
	"github.com/bitmark-inc/deex/objectid"
	"github.com/bitmark-inc/deex/objects"
	"github.com/bitmark-inc/deex/operation"
)

// DefaultProposalExpiration - lifetime of a proposal on chain
const DefaultProposalExpiration = 2 * 24 * time.Hour

// ProposalOptions - proposal timing
//
// a zero Expiration selects DefaultProposalExpiration; a zero Review
// leaves out the review period
type ProposalOptions struct {
	Expiration time.Duration
	Review     time.Duration
}

// Proposal - operations to be wrapped in a single proposal_create
type Proposal struct {
	proposer  objectid.ID
	options   ProposalOptions
	buffer    *Buffer
	expiresAt time.Time
	owner     *Buffer // where the proposal is attached, if anywhere
}

func newProposal(proposer objectid.ID, options ProposalOptions, fees FeeSchedule, now func() time.Time) (*Proposal, error) {
	if !proposer.IsAccount() {
		return nil, &fault.ValidationError{Kind: "proposal_create", Field: "fee_paying_account", Reason: "not an account id"}
	}
	if options.Expiration <= 0 {
		options.Expiration = DefaultProposalExpiration
	}
	if options.Review < 0 {
		options.Review = 0
	}
	b := NewBuffer(fees, 0)
	b.now = now
	p := &Proposal{
		proposer: proposer,
		options:  options,
		buffer:   b,
	}
	b.owner = p
	return p, nil
}

// NewProposal - standalone proposal; Finalize gives the operation to
// append wherever it is wanted
func NewProposal(proposer objectid.ID, options ProposalOptions, fees FeeSchedule) (*Proposal, error) {
	return newProposal(proposer, options, fees, time.Now)
}

// NewProposal - proposal whose slot in this buffer is taken now and
// whose operation is produced when the buffer is serialised
func (b *Buffer) NewProposal(proposer objectid.ID, options ProposalOptions) (*Proposal, error) {
	p, err := newProposal(proposer, options, b.fees, b.now)
	if nil != err {
		return nil, err
	}
	b.attach(p)
	return p, nil
}

// Proposer - account paying for the proposal
func (p *Proposal) Proposer() objectid.ID {
	return p.proposer
}

// SetProposer - change the paying account
func (p *Proposal) SetProposer(proposer objectid.ID) error {
	if !proposer.IsAccount() {
		return &fault.ValidationError{Kind: "proposal_create", Field: "fee_paying_account", Reason: "not an account id"}
	}
	if err := p.checkChange(); nil != err {
		return err
	}
	p.proposer = proposer
	p.changed()
	return nil
}

// Append - add an operation to the proposal only
//
// an attached proposal cannot change once its transaction is
// broadcast, before that any signatures on the transaction are dropped
func (p *Proposal) Append(op *operation.Operation) error {
	if err := p.checkChange(); nil != err {
		return err
	}
	if err := p.buffer.Append(op); nil != err {
		return err
	}
	p.changed()
	return nil
}

// AppendNew - validate fields into an operation and append it
func (p *Proposal) AppendNew(kind operation.Kind, fields map[string]interface{}) error {
	op, err := operation.New(kind, fields)
	if nil != err {
		return err
	}
	return p.Append(op)
}

func (p *Proposal) checkChange() error {
	if nil == p.owner {
		return nil
	}
	return p.owner.checkChange()
}

func (p *Proposal) changed() {
	if nil != p.owner {
		p.owner.changed()
	}
}

// Len - number of proposed operations
func (p *Proposal) Len() int {
	return p.buffer.Len()
}

// IsEmpty - nothing proposed
func (p *Proposal) IsEmpty() bool {
	return p.buffer.IsEmpty()
}

// RequiredAuthority - who must approve the proposed operations
func (p *Proposal) RequiredAuthority() authority.Set {
	return p.buffer.RequiredAuthority()
}

// Finalize - the proposal_create operation
//
// the expiration time is fixed by the first call
func (p *Proposal) Finalize() (*operation.Operation, error) {
	ops, err := p.buffer.Operations()
	if nil != err {
		return nil, err
	}
	if 0 == len(ops) {
		return nil, fault.ErrEmptyProposal
	}

	if p.expiresAt.IsZero() {
		p.expiresAt = p.buffer.now().Add(p.options.Expiration).UTC().Truncate(time.Second)
	}

	proposed := make([]interface{}, len(ops))
	for i, op := range ops {
		proposed[i] = map[string]interface{}{"op": op}
	}

	fields := map[string]interface{}{
		"fee_paying_account": p.proposer,
		"expiration_time":    p.expiresAt.Format(objects.TimeFormat),
		"proposed_ops":       proposed,
		"extensions":         []interface{}{},
	}
	if p.options.Review > 0 {
		fields["review_period_seconds"] = int64(p.options.Review / time.Second)
	}
	return operation.New(operation.ProposalCreate, fields)
}
