// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package asset

import (
	"bytes"
	"encoding/json"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"

	"github.com/bitmark-inc/deex/amount"
	"github.com/bitmark-inc/deex/authority"
	"github.com/bitmark-inc/deex/fault"
	"github.com/bitmark-inc/deex/memo"
	"github.com/bitmark-inc/deex/objectid"
	"github.com/bitmark-inc/deex/objects"
	"github.com/bitmark-inc/deex/operation"
	"github.com/bitmark-inc/deex/permission"
)

// Update - an operation and the level the issuer signs it with
type Update struct {
	Operation *operation.Operation
	Level     authority.Level
}

// List - which of the two lists an authority or market change affects
type List int

// the lists
const (
	WhiteList List = iota
	BlackList
)

func (l List) String() string {
	switch l {
	case WhiteList:
		return "whitelist"
	case BlackList:
		return "blacklist"
	default:
		return "?"
	}
}

// Lists - authorities and markets for Release
type Lists struct {
	WhitelistAuthorities []objectid.ID
	BlacklistAuthorities []objectid.ID
	WhitelistMarkets     []objectid.ID
	BlacklistMarkets     []objectid.ID
}

var (
	oneHundred = decimal.New(100, 0)
)

// copy of the options, list fields never nil
func optionsOf(a *objects.Asset) objects.AssetOptions {
	o := a.Options
	o.WhitelistAuthorities = copyIDs(o.WhitelistAuthorities)
	o.BlacklistAuthorities = copyIDs(o.BlacklistAuthorities)
	o.WhitelistMarkets = copyIDs(o.WhitelistMarkets)
	o.BlacklistMarkets = copyIDs(o.BlacklistMarkets)
	if 0 == len(o.Extensions) {
		o.Extensions = json.RawMessage(`[]`)
	}
	return o
}

func copyIDs(ids []objectid.ID) []objectid.ID {
	return append([]objectid.ID{}, ids...)
}

// apply a flag request to the options after checking it against the
// issuer permissions
func setFlags(o *objects.AssetOptions, named map[string]bool) error {
	r, err := permission.ParseRequest(named)
	if nil != err {
		return err
	}
	if err := permission.TestPermissions(o.IssuerPermissions, r); nil != err {
		return err
	}
	flags, err := permission.ForceFlag(o.Flags, r)
	if nil != err {
		return err
	}
	o.Flags = flags
	return nil
}

// options in the generic field form
func optionFields(o objects.AssetOptions) (map[string]interface{}, error) {
	buffer, err := json.Marshal(o)
	if nil != err {
		return nil, err
	}
	decoder := json.NewDecoder(bytes.NewReader(buffer))
	decoder.UseNumber()

	fields := make(map[string]interface{})
	if err := decoder.Decode(&fields); nil != err {
		return nil, err
	}
	return fields, nil
}

// asset_update with the given options
func update(a *objects.Asset, o objects.AssetOptions) (*Update, error) {
	options, err := optionFields(o)
	if nil != err {
		return nil, errors.Wrapf(err, "asset: %s options", a.ID)
	}
	op, err := operation.New(operation.AssetUpdate, map[string]interface{}{
		"issuer":          a.Issuer,
		"asset_to_update": a.ID,
		"new_options":     options,
		"extensions":      []interface{}{},
	})
	if nil != err {
		return nil, err
	}
	return &Update{Operation: op, Level: authority.Active}, nil
}

// Halt - stop the asset from being moved or traded
//
// only the null account may hold it and it trades only against
// itself
func Halt(a *objects.Asset) (*Update, error) {
	o := optionsOf(a)
	if err := setFlags(&o, map[string]bool{"white_list": true, "transfer_restricted": true}); nil != err {
		return nil, err
	}
	o.WhitelistAuthorities = []objectid.ID{objectid.NullAccount}
	o.BlacklistAuthorities = []objectid.ID{}
	o.WhitelistMarkets = []objectid.ID{a.ID}
	o.BlacklistMarkets = []objectid.ID{}
	return update(a, o)
}

// Release - allow transfer and trading again
//
// white_list stays on when any authority list is given
func Release(a *objects.Asset, lists Lists) (*Update, error) {
	o := optionsOf(a)
	restrict := len(lists.WhitelistAuthorities) > 0 || len(lists.BlacklistAuthorities) > 0
	if err := setFlags(&o, map[string]bool{"white_list": restrict, "transfer_restricted": false}); nil != err {
		return nil, err
	}
	o.WhitelistAuthorities = copyIDs(lists.WhitelistAuthorities)
	o.BlacklistAuthorities = copyIDs(lists.BlacklistAuthorities)
	o.WhitelistMarkets = copyIDs(lists.WhitelistMarkets)
	o.BlacklistMarkets = copyIDs(lists.BlacklistMarkets)
	return update(a, o)
}

// SetOptions - turn named flags on or off
func SetOptions(a *objects.Asset, flags map[string]bool) (*Update, error) {
	o := optionsOf(a)
	if err := setFlags(&o, flags); nil != err {
		return nil, err
	}
	return update(a, o)
}

// EnableFlag - turn one flag on
func EnableFlag(a *objects.Asset, name string) (*Update, error) {
	return SetOptions(a, map[string]bool{name: true})
}

// DisableFlag - turn one flag off
func DisableFlag(a *objects.Asset, name string) (*Update, error) {
	return SetOptions(a, map[string]bool{name: false})
}

// Seize - move an amount between two accounts on the issuer's
// authority
//
// the override_authority flag must be enabled, holding the
// permission alone is not enough
func Seize(a *objects.Asset, from objectid.ID, to objectid.ID, value amount.Amount) (*Update, error) {
	if !a.Options.Flags.Has(permission.OverrideAuthority) {
		return nil, &fault.PermissionDeniedError{Flag: permission.OverrideAuthority.String()}
	}
	op, err := operation.New(operation.OverrideTransfer, map[string]interface{}{
		"issuer":     a.Issuer,
		"from":       from,
		"to":         to,
		"amount":     value,
		"extensions": []interface{}{},
	})
	if nil != err {
		return nil, err
	}
	return &Update{Operation: op, Level: authority.Active}, nil
}

// AddAuthorities - extend a white or black list of accounts, turning
// white_list on
func AddAuthorities(a *objects.Asset, list List, accounts []objectid.ID) (*Update, error) {
	o := optionsOf(a)
	if err := setFlags(&o, map[string]bool{"white_list": true}); nil != err {
		return nil, err
	}
	for _, id := range accounts {
		if !id.IsAccount() {
			return nil, fault.ErrInvalidObjectID
		}
	}
	switch list {
	case WhiteList:
		o.WhitelistAuthorities = append(o.WhitelistAuthorities, accounts...)
	case BlackList:
		o.BlacklistAuthorities = append(o.BlacklistAuthorities, accounts...)
	}
	return update(a, o)
}

// RemoveAuthorities - drop accounts from a white or black list
func RemoveAuthorities(a *objects.Asset, list List, accounts []objectid.ID) (*Update, error) {
	o := optionsOf(a)
	var err error
	switch list {
	case WhiteList:
		o.WhitelistAuthorities, err = remove(o.WhitelistAuthorities, accounts, "whitelist_authorities")
	case BlackList:
		o.BlacklistAuthorities, err = remove(o.BlacklistAuthorities, accounts, "blacklist_authorities")
	}
	if nil != err {
		return nil, err
	}
	return update(a, o)
}

// AddMarkets - extend a white or black list of markets
//
// with forceEnable the white_list flag is turned on, otherwise it
// must already be on
func AddMarkets(a *objects.Asset, list List, markets []objectid.ID, forceEnable bool) (*Update, error) {
	o := optionsOf(a)
	if forceEnable {
		if err := setFlags(&o, map[string]bool{"white_list": true}); nil != err {
			return nil, err
		}
	} else if !o.Flags.Has(permission.WhiteList) {
		return nil, &fault.PermissionDeniedError{Flag: permission.WhiteList.String()}
	}
	for _, id := range markets {
		if !id.IsAsset() {
			return nil, fault.ErrInvalidObjectID
		}
	}
	switch list {
	case WhiteList:
		o.WhitelistMarkets = append(o.WhitelistMarkets, markets...)
	case BlackList:
		o.BlacklistMarkets = append(o.BlacklistMarkets, markets...)
	}
	return update(a, o)
}

// RemoveMarkets - drop markets from a white or black list
func RemoveMarkets(a *objects.Asset, list List, markets []objectid.ID) (*Update, error) {
	o := optionsOf(a)
	var err error
	switch list {
	case WhiteList:
		o.WhitelistMarkets, err = remove(o.WhitelistMarkets, markets, "whitelist_markets")
	case BlackList:
		o.BlacklistMarkets, err = remove(o.BlacklistMarkets, markets, "blacklist_markets")
	}
	if nil != err {
		return nil, err
	}
	return update(a, o)
}

// remove each id once; an id not in the list is an error
func remove(from []objectid.ID, ids []objectid.ID, field string) ([]objectid.ID, error) {
	result := copyIDs(from)
outer:
	for _, id := range ids {
		for i, item := range result {
			if item == id {
				result = append(result[:i], result[i+1:]...)
				continue outer
			}
		}
		return nil, &fault.ValidationError{Kind: "asset_update", Field: field, Reason: "not listed: " + id.String()}
	}
	return result, nil
}

// SetMarketFee - charge a percentage of each trade, capped at
// maxMarketFee
//
// percent is in (0, 100] with two decimal places kept
func SetMarketFee(a *objects.Asset, percent decimal.Decimal, maxMarketFee int64) (*Update, error) {
	if !percent.IsPositive() || percent.GreaterThan(oneHundred) {
		return nil, fault.ErrInvalidMarketFee
	}
	o := optionsOf(a)
	if err := setFlags(&o, map[string]bool{"charge_market_fee": true}); nil != err {
		return nil, err
	}
	o.MarketFeePercent = uint16(percent.Mul(oneHundred).IntPart())
	o.MaxMarketFee = objects.Int64(maxMarketFee)
	return update(a, o)
}

// UpdateFeedProducers - accounts allowed to publish price feeds for a
// market pegged asset
func UpdateFeedProducers(a *objects.Asset, producers []objectid.ID) (*Update, error) {
	if !a.IsBitAsset() {
		return nil, fault.ErrNotBitAsset
	}
	list := make([]interface{}, len(producers))
	for i, id := range producers {
		list[i] = id
	}
	op, err := operation.New(operation.AssetUpdateFeedProducers, map[string]interface{}{
		"issuer":             a.Issuer,
		"asset_to_update":    a.ID,
		"new_feed_producers": list,
		"extensions":         []interface{}{},
	})
	if nil != err {
		return nil, err
	}
	return &Update{Operation: op, Level: authority.Active}, nil
}

// ChangeIssuer - hand the asset to another account, signed with the
// owner key
func ChangeIssuer(a *objects.Asset, newIssuer objectid.ID) (*Update, error) {
	op, err := operation.New(operation.AssetUpdateIssuer, map[string]interface{}{
		"issuer":          a.Issuer,
		"asset_to_update": a.ID,
		"new_issuer":      newIssuer,
		"extensions":      []interface{}{},
	})
	if nil != err {
		return nil, err
	}
	return &Update{Operation: op, Level: authority.Owner}, nil
}

// Issue - create new supply for an account
//
// value is a decimal string in whole units of the asset; m may be nil,
// see memo.Encrypt
func Issue(a *objects.Asset, value string, to objectid.ID, m *memo.Memo) (*Update, error) {
	issued, err := amount.FromDecimal(value, a.Precision, a.ID)
	if nil != err {
		return nil, err
	}
	fields := map[string]interface{}{
		"issuer":           a.Issuer,
		"asset_to_issue":   issued,
		"issue_to_account": to,
		"extensions":       []interface{}{},
	}
	if nil != m {
		fields["memo"] = m.Fields()
	}
	op, err := operation.New(operation.AssetIssue, fields)
	if nil != err {
		return nil, err
	}
	return &Update{Operation: op, Level: authority.Active}, nil
}
