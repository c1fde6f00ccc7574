// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package operation

import (
	"strconv"

	"github.com/bitmark-inc/deex/authority"
	"github.com/bitmark-inc/deex/fault"
)

// Kind - the operation id as used on the chain
type Kind uint16

// operation ids - keep in numeric order
const (
	Transfer                 Kind = 0
	LimitOrderCreate         Kind = 1
	LimitOrderCancel         Kind = 2
	CallOrderUpdate          Kind = 3
	AccountCreate            Kind = 5
	AccountUpdate            Kind = 6
	AccountWhitelist         Kind = 7
	AccountUpgrade           Kind = 8
	AccountTransfer          Kind = 9
	AssetCreate              Kind = 10
	AssetUpdate              Kind = 11
	AssetUpdateBitasset      Kind = 12
	AssetUpdateFeedProducers Kind = 13
	AssetIssue               Kind = 14
	AssetReserve             Kind = 15
	AssetFundFeePool         Kind = 16
	AssetSettle              Kind = 17
	AssetGlobalSettle        Kind = 18
	AssetPublishFeed         Kind = 19
	WitnessCreate            Kind = 20
	WitnessUpdate            Kind = 21
	ProposalCreate           Kind = 22
	ProposalUpdate           Kind = 23
	ProposalDelete           Kind = 24
	CommitteeMemberCreate    Kind = 29
	CommitteeMemberUpdate    Kind = 30
	VestingBalanceCreate     Kind = 32
	VestingBalanceWithdraw   Kind = 33
	WorkerCreate             Kind = 34
	Custom                   Kind = 35
	BalanceClaim             Kind = 37
	OverrideTransfer         Kind = 38
	BidCollateral            Kind = 45
	AssetUpdateIssuer        Kind = 48
	HtlcCreate               Kind = 49
	HtlcRedeem               Kind = 50
)

// kinds of field value checked at construction
type fieldType int

const (
	anyField fieldType = iota
	accountField
	assetField
	amountField
	listField
)

type field struct {
	name  string
	vtype fieldType
}

type kindInfo struct {
	name   string
	author string          // account field that pays the fee
	level  authority.Level // level the author signs with
	fields []field         // required, besides fee
}

func acct(name string) field   { return field{name, accountField} }
func asset(name string) field  { return field{name, assetField} }
func amt(name string) field    { return field{name, amountField} }
func list(name string) field   { return field{name, listField} }
func val(name string) field    { return field{name, anyField} }
func active(name string) level { return level{name, authority.Active} }
func owner(name string) level  { return level{name, authority.Owner} }

type level struct {
	field string
	level authority.Level
}

func info(name string, author level, fields ...field) kindInfo {
	return kindInfo{
		name:   name,
		author: author.field,
		level:  author.level,
		fields: append([]field{acct(author.field)}, fields...),
	}
}

var kinds = map[Kind]kindInfo{
	Transfer:                 info("transfer", active("from"), acct("to"), amt("amount")),
	LimitOrderCreate:         info("limit_order_create", active("seller"), amt("amount_to_sell"), amt("min_to_receive"), val("expiration")),
	LimitOrderCancel:         info("limit_order_cancel", active("fee_paying_account"), val("order")),
	CallOrderUpdate:          info("call_order_update", active("funding_account"), amt("delta_collateral"), amt("delta_debt")),
	AccountCreate:            info("account_create", active("registrar"), val("name"), val("owner"), val("active"), val("options")),
	AccountUpdate:            info("account_update", active("account")),
	AccountWhitelist:         info("account_whitelist", active("authorizing_account"), acct("account_to_list"), val("new_listing")),
	AccountUpgrade:           info("account_upgrade", active("account_to_upgrade"), val("upgrade_to_lifetime_member")),
	AccountTransfer:          info("account_transfer", owner("account_id"), acct("new_owner")),
	AssetCreate:              info("asset_create", active("issuer"), val("symbol"), val("precision"), val("common_options")),
	AssetUpdate:              info("asset_update", active("issuer"), asset("asset_to_update"), val("new_options")),
	AssetUpdateBitasset:      info("asset_update_bitasset", active("issuer"), asset("asset_to_update"), val("new_options")),
	AssetUpdateFeedProducers: info("asset_update_feed_producers", active("issuer"), asset("asset_to_update"), list("new_feed_producers")),
	AssetIssue:               info("asset_issue", active("issuer"), amt("asset_to_issue"), acct("issue_to_account")),
	AssetReserve:             info("asset_reserve", active("payer"), amt("amount_to_reserve")),
	AssetFundFeePool:         info("asset_fund_fee_pool", active("from_account"), asset("asset_id"), val("amount")),
	AssetSettle:              info("asset_settle", active("account"), amt("amount")),
	AssetGlobalSettle:        info("asset_global_settle", active("issuer"), asset("asset_to_settle"), val("settle_price")),
	AssetPublishFeed:         info("asset_publish_feed", active("publisher"), asset("asset_id"), val("feed")),
	WitnessCreate:            info("witness_create", active("witness_account"), val("url"), val("block_signing_key")),
	WitnessUpdate:            info("witness_update", active("witness_account"), val("witness")),
	ProposalCreate:           info("proposal_create", active("fee_paying_account"), val("expiration_time"), list("proposed_ops")),
	ProposalUpdate:           info("proposal_update", active("fee_paying_account"), val("proposal")),
	ProposalDelete:           info("proposal_delete", active("fee_paying_account"), val("proposal")),
	CommitteeMemberCreate:    info("committee_member_create", active("committee_member_account"), val("url")),
	CommitteeMemberUpdate:    info("committee_member_update", active("committee_member_account"), val("committee_member")),
	VestingBalanceCreate:     info("vesting_balance_create", active("creator"), acct("owner"), amt("amount"), val("policy")),
	VestingBalanceWithdraw:   info("vesting_balance_withdraw", active("owner"), val("vesting_balance"), amt("amount")),
	WorkerCreate:             info("worker_create", active("owner"), val("work_begin_date"), val("work_end_date"), val("daily_pay"), val("name"), val("url"), val("initializer")),
	Custom:                   info("custom", active("payer"), list("required_auths"), val("id"), val("data")),
	BalanceClaim:             info("balance_claim", active("deposit_to_account"), val("balance_to_claim"), val("balance_owner_key"), amt("total_claimed")),
	OverrideTransfer:         info("override_transfer", active("issuer"), acct("from"), acct("to"), amt("amount")),
	BidCollateral:            info("bid_collateral", active("bidder"), amt("additional_collateral"), amt("debt_covered")),
	AssetUpdateIssuer:        info("asset_update_issuer", owner("issuer"), asset("asset_to_update"), acct("new_issuer")),
	HtlcCreate:               info("htlc_create", active("from"), acct("to"), amt("amount"), val("preimage_hash"), val("preimage_size"), val("claim_period_seconds")),
	HtlcRedeem:               info("htlc_redeem", active("redeemer"), val("htlc_id"), val("preimage")),
}

// Valid - a kind in the table
func (k Kind) Valid() bool {
	_, ok := kinds[k]
	return ok
}

func (k Kind) String() string {
	if i, ok := kinds[k]; ok {
		return i.name
	}
	return "operation(" + strconv.Itoa(int(k)) + ")"
}

// KindFromName - look up an operation by its chain name
func KindFromName(name string) (Kind, error) {
	for k, i := range kinds {
		if i.name == name {
			return k, nil
		}
	}
	return 0, fault.ErrUnknownOperation
}
