// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package authority

import (
	"sort"

	"github.com/bitmark-inc/deex/fault"
	"github.com/bitmark-inc/deex/objectid"
)

// Level - signing authority, ordered from least to most strict
type Level int

// authority levels
const (
	Other Level = iota
	Active
	Owner
)

var levelNames = [...]string{
	Other:  "other",
	Active: "active",
	Owner:  "owner",
}

func (l Level) String() string {
	if l < Other || l > Owner {
		return "invalid"
	}
	return levelNames[l]
}

// ParseLevel - convert a level name
func ParseLevel(s string) (Level, error) {
	for l, name := range levelNames {
		if name == s {
			return Level(l), nil
		}
	}
	return Other, fault.ErrInvalidAuthorityLevel
}

// MarshalText - JSON form is the level name
func (l Level) MarshalText() ([]byte, error) {
	if l < Other || l > Owner {
		return nil, fault.ErrInvalidAuthorityLevel
	}
	return []byte(levelNames[l]), nil
}

// UnmarshalText - parse a level name
func (l *Level) UnmarshalText(s []byte) error {
	n, err := ParseLevel(string(s))
	if nil != err {
		return err
	}
	*l = n
	return nil
}

// Satisfies - a key of level l may sign where required is needed
func (l Level) Satisfies(required Level) bool {
	return l >= required
}

// Requirement - one account and the level it must sign with
type Requirement struct {
	Account objectid.ID `json:"account"`
	Level   Level       `json:"level"`
}

// Set - the strictest level required from each account
type Set map[objectid.ID]Level

// Add - record a requirement, keeping the stricter of old and new
func (s Set) Add(account objectid.ID, level Level) {
	if current, ok := s[account]; !ok || level > current {
		s[account] = level
	}
}

// Merge - union with another set
func (s Set) Merge(other Set) {
	for account, level := range other {
		s.Add(account, level)
	}
}

// Copy - independent copy
func (s Set) Copy() Set {
	c := make(Set, len(s))
	for account, level := range s {
		c[account] = level
	}
	return c
}

// List - requirements in a stable order: by account id
func (s Set) List() []Requirement {
	result := make([]Requirement, 0, len(s))
	for account, level := range s {
		result = append(result, Requirement{Account: account, Level: level})
	}
	sort.Slice(result, func(i, j int) bool {
		a, b := result[i].Account, result[j].Account
		if a.Space != b.Space {
			return a.Space < b.Space
		}
		if a.Type != b.Type {
			return a.Type < b.Type
		}
		return a.Instance < b.Instance
	})
	return result
}
