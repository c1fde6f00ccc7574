// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package authority_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/deex/authority"
	"github.com/bitmark-inc/deex/fault"
	"github.com/bitmark-inc/deex/objectid"
)

func TestLevels(t *testing.T) {
	assert.True(t, authority.Owner > authority.Active)
	assert.True(t, authority.Active > authority.Other)
	assert.True(t, authority.Owner.Satisfies(authority.Active))
	assert.False(t, authority.Active.Satisfies(authority.Owner))

	for _, l := range []authority.Level{authority.Other, authority.Active, authority.Owner} {
		p, err := authority.ParseLevel(l.String())
		assert.Nil(t, err)
		assert.Equal(t, l, p)
	}
	_, err := authority.ParseLevel("posting")
	assert.Equal(t, fault.ErrInvalidAuthorityLevel, err)
	assert.Equal(t, "invalid", authority.Level(7).String())
}

func TestSetKeepsStrictest(t *testing.T) {
	alice := objectid.Account(17)
	bob := objectid.Account(4)

	s := authority.Set{}
	s.Add(alice, authority.Active)
	s.Add(alice, authority.Other)
	s.Add(bob, authority.Active)
	s.Add(bob, authority.Owner)

	assert.Equal(t, authority.Active, s[alice])
	assert.Equal(t, authority.Owner, s[bob])

	list := s.List()
	assert.Equal(t, []authority.Requirement{
		{Account: bob, Level: authority.Owner},
		{Account: alice, Level: authority.Active},
	}, list)
}

func TestMergeIsUnionWithMax(t *testing.T) {
	a := authority.Set{objectid.Account(1): authority.Active}
	b := authority.Set{objectid.Account(1): authority.Owner, objectid.Account(2): authority.Other}

	c := a.Copy()
	c.Merge(b)

	assert.Equal(t, authority.Set{objectid.Account(1): authority.Owner, objectid.Account(2): authority.Other}, c)
	assert.Equal(t, authority.Active, a[objectid.Account(1)], "copy must be independent")
}

func TestRequirementJSON(t *testing.T) {
	buffer, err := json.Marshal(authority.Requirement{Account: objectid.Account(5), Level: authority.Owner})
	assert.Nil(t, err)
	assert.Equal(t, `{"account":"1.2.5","level":"owner"}`, string(buffer))
}
