// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package instance

import (
	"github.com/bitmark-inc/deex/authority"
	"github.com/bitmark-inc/deex/operation"
	"github.com/bitmark-inc/deex/transaction"
)

// Target - somewhere other than the default transaction
type Target interface {
	place(op *operation.Operation, signer *authority.Requirement) error
}

type proposalTarget struct {
	proposal *transaction.Proposal
}

// proposed operations are approved later, the signer is not needed
func (t proposalTarget) place(op *operation.Operation, _ *authority.Requirement) error {
	return t.proposal.Append(op)
}

type builderTarget struct {
	builder *transaction.Builder
}

func (t builderTarget) place(op *operation.Operation, signer *authority.Requirement) error {
	return place(t.builder, op, signer)
}

// ToProposal - FinalizeOp appends to the proposal
func ToProposal(p *transaction.Proposal) Target {
	return proposalTarget{proposal: p}
}

// ToTransaction - FinalizeOp appends to the builder without signing
func ToTransaction(b *transaction.Builder) Target {
	return builderTarget{builder: b}
}

func place(b *transaction.Builder, op *operation.Operation, signer *authority.Requirement) error {
	if nil == signer {
		return b.Append(op)
	}
	return b.Append(op, *signer)
}
