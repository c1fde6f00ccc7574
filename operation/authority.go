// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package operation

import (
	"github.com/bitmark-inc/deex/authority"
	"github.com/bitmark-inc/deex/objectid"
)

// RequiredAuthority - accounts that must sign and at what level
//
// the author always signs; some kinds need more: account_update with
// a new owner authority and asset_update_issuer need the owner key,
// proposal_update needs every approval being added or removed and
// custom needs each of its required_auths
func (o *Operation) RequiredAuthority() authority.Set {
	i := kinds[o.kind]
	s := authority.Set{}
	s.Add(o.Author(), i.level)

	switch o.kind {
	case AccountUpdate:
		if v, ok := o.fields["owner"]; ok && nil != v {
			s.Add(o.Author(), authority.Owner)
		}

	case ProposalDelete:
		if b, ok := o.fields["using_owner_authority"].(bool); ok && b {
			s.Add(o.Author(), authority.Owner)
		}

	case ProposalUpdate:
		addAccounts(s, o.fields["active_approvals_to_add"], authority.Active)
		addAccounts(s, o.fields["active_approvals_to_remove"], authority.Active)
		addAccounts(s, o.fields["owner_approvals_to_add"], authority.Owner)
		addAccounts(s, o.fields["owner_approvals_to_remove"], authority.Owner)

	case Custom:
		addAccounts(s, o.fields["required_auths"], authority.Active)
	}
	return s
}

// add every account id in a list, ignoring anything else
func addAccounts(s authority.Set, v interface{}, level authority.Level) {
	l, ok := v.([]interface{})
	if !ok {
		return
	}
	for _, item := range l {
		str, ok := item.(string)
		if !ok {
			continue
		}
		if id, err := objectid.Parse(str); nil == err && id.IsAccount() {
			s.Add(id, level)
		}
	}
}
