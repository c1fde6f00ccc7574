// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package objects

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/bitmark-inc/deex/amount"
	"github.com/bitmark-inc/deex/objectid"
	"github.com/bitmark-inc/deex/permission"
)

// TimeFormat - chain timestamps carry no zone and are UTC
const TimeFormat = "2006-01-02T15:04:05"

// Time - chain timestamp
type Time struct {
	time.Time
}

// MarshalJSON - chain form
func (t Time) MarshalJSON() ([]byte, error) {
	return []byte(`"` + t.UTC().Format(TimeFormat) + `"`), nil
}

// UnmarshalJSON - chain form
func (t *Time) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); nil != err {
		return err
	}
	p, err := time.Parse(TimeFormat, s)
	if nil != err {
		return err
	}
	t.Time = p
	return nil
}

// Weighted - one entry of an authority: [who, weight]
type Weighted struct {
	Who    string
	Weight uint16
}

// MarshalJSON - pair form
func (w Weighted) MarshalJSON() ([]byte, error) {
	return json.Marshal([]interface{}{w.Who, w.Weight})
}

// UnmarshalJSON - pair form
func (w *Weighted) UnmarshalJSON(data []byte) error {
	var pair []json.RawMessage
	if err := json.Unmarshal(data, &pair); nil != err {
		return err
	}
	if 2 != len(pair) {
		return fmt.Errorf("weighted entry is not a pair: %s", data)
	}
	if err := json.Unmarshal(pair[0], &w.Who); nil != err {
		return err
	}
	return json.Unmarshal(pair[1], &w.Weight)
}

// Authority - weighted threshold of accounts and keys
type Authority struct {
	WeightThreshold uint32     `json:"weight_threshold"`
	AccountAuths    []Weighted `json:"account_auths"`
	KeyAuths        []Weighted `json:"key_auths"`
	AddressAuths    []Weighted `json:"address_auths"`
}

// AccountOptions - memo key and votes
type AccountOptions struct {
	MemoKey       string        `json:"memo_key"`
	VotingAccount objectid.ID   `json:"voting_account"`
	NumWitness    uint16        `json:"num_witness"`
	NumCommittee  uint16        `json:"num_committee"`
	Votes         []string      `json:"votes"`
	Extensions    []interface{} `json:"extensions"`
}

// Account - protocol object 1.2.x
type Account struct {
	ID                   objectid.ID    `json:"id"`
	Name                 string         `json:"name"`
	Registrar            objectid.ID    `json:"registrar"`
	Referrer             objectid.ID    `json:"referrer"`
	MembershipExpiration Time           `json:"membership_expiration_date"`
	Owner                Authority      `json:"owner"`
	Active               Authority      `json:"active"`
	Options              AccountOptions `json:"options"`
	Statistics           string         `json:"statistics"`
}

// AssetOptions - the part of an asset its issuer may change
type AssetOptions struct {
	MaxSupply            Int64           `json:"max_supply"`
	MarketFeePercent     uint16          `json:"market_fee_percent"`
	MaxMarketFee         Int64           `json:"max_market_fee"`
	IssuerPermissions    permission.Mask `json:"issuer_permissions"`
	Flags                permission.Mask `json:"flags"`
	CoreExchangeRate     json.RawMessage `json:"core_exchange_rate"`
	WhitelistAuthorities []objectid.ID   `json:"whitelist_authorities"`
	BlacklistAuthorities []objectid.ID   `json:"blacklist_authorities"`
	WhitelistMarkets     []objectid.ID   `json:"whitelist_markets"`
	BlacklistMarkets     []objectid.ID   `json:"blacklist_markets"`
	Description          string          `json:"description"`
	Extensions           json.RawMessage `json:"extensions"`
}

// Asset - protocol object 1.3.x
type Asset struct {
	ID                 objectid.ID  `json:"id"`
	Symbol             string       `json:"symbol"`
	Precision          int32        `json:"precision"`
	Issuer             objectid.ID  `json:"issuer"`
	Options            AssetOptions `json:"options"`
	DynamicAssetDataID objectid.ID  `json:"dynamic_asset_data_id"`
	BitassetDataID     *objectid.ID `json:"bitasset_data_id,omitempty"`
}

// IsBitAsset - market pegged assets have bitasset data
func (a *Asset) IsBitAsset() bool {
	return nil != a.BitassetDataID
}

// Permissions - flag name -> issuer may change it
func (a *Asset) Permissions() map[string]bool {
	return permission.ToDict(a.Options.IssuerPermissions)
}

// Flags - flag name -> currently enabled
func (a *Asset) Flags() map[string]bool {
	return permission.ToDict(a.Options.Flags)
}

// Committee - protocol object 1.5.x
type Committee struct {
	ID                     objectid.ID `json:"id"`
	CommitteeMemberAccount objectid.ID `json:"committee_member_account"`
	VoteID                 string      `json:"vote_id"`
	TotalVotes             Int64       `json:"total_votes"`
	URL                    string      `json:"url"`
}

// Vesting - protocol object 1.13.x
type Vesting struct {
	ID      objectid.ID     `json:"id"`
	Owner   objectid.ID     `json:"owner"`
	Balance amount.Amount   `json:"balance"`
	Policy  json.RawMessage `json:"policy"`
}

// Worker - protocol object 1.14.x
type Worker struct {
	ID            objectid.ID     `json:"id"`
	WorkerAccount objectid.ID     `json:"worker_account"`
	WorkBeginDate Time            `json:"work_begin_date"`
	WorkEndDate   Time            `json:"work_end_date"`
	DailyPay      Int64           `json:"daily_pay"`
	Worker        json.RawMessage `json:"worker"`
	VoteFor       string          `json:"vote_for"`
	VoteAgainst   string          `json:"vote_against"`
	TotalVotesFor Int64           `json:"total_votes_for"`
	Name          string          `json:"name"`
	URL           string          `json:"url"`
}

// GenesisBalance - protocol object 1.15.x
type GenesisBalance struct {
	ID            objectid.ID     `json:"id"`
	Owner         string          `json:"owner"`
	Balance       amount.Amount   `json:"balance"`
	LastClaimDate Time            `json:"last_claim_date"`
	Policy        json.RawMessage `json:"policy,omitempty"`
}

// BlockHeader - block without its transactions
type BlockHeader struct {
	Previous              string `json:"previous"`
	Timestamp             Time   `json:"timestamp"`
	Witness               string `json:"witness"`
	TransactionMerkleRoot string `json:"transaction_merkle_root"`
	WitnessSignature      string `json:"witness_signature"`
}

// Block - a full block
type Block struct {
	BlockHeader
	Transactions []json.RawMessage `json:"transactions"`
}

// DynamicGlobalProperties - implementation object 2.1.0
type DynamicGlobalProperties struct {
	ID                 objectid.ID `json:"id"`
	HeadBlockNumber    uint32      `json:"head_block_number"`
	HeadBlockID        string      `json:"head_block_id"`
	Time               Time        `json:"time"`
	CurrentWitness     objectid.ID `json:"current_witness"`
	LastIrreversibleID uint32      `json:"last_irreversible_block_num"`
}
