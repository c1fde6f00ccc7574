// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package instance

import (
	"context"
	"sync"

	"github.com/bitmark-inc/logger"
	"github.com/pkg/errors"

	"github.com/bitmark-inc/deex/amount"
	"github.com/bitmark-inc/deex/authority"
	"github.com/bitmark-inc/deex/background"
	"github.com/bitmark-inc/deex/cache"
	"github.com/bitmark-inc/deex/codec"
	"github.com/bitmark-inc/deex/configuration"
	"github.com/bitmark-inc/deex/fault"
	"github.com/bitmark-inc/deex/fee"
	"github.com/bitmark-inc/deex/keypair"
	"github.com/bitmark-inc/deex/keystore"
	"github.com/bitmark-inc/deex/objectid"
	"github.com/bitmark-inc/deex/objects"
	"github.com/bitmark-inc/deex/operation"
	"github.com/bitmark-inc/deex/transaction"
)

// Collaborators - the network side of an instance
//
// a nil Serializer selects the CBOR codec
type Collaborators struct {
	Fetcher    objects.Fetcher
	Network    transaction.Broadcaster
	Serializer transaction.Serializer
}

// Finalized - what happened to the default transaction
type Finalized struct {
	Transaction *transaction.Signed
	Result      *transaction.Result // nil when not broadcast
}

// Instance - shared client context
type Instance struct {
	sync.RWMutex // config, fees, keys, watch and closed

	log        *logger.L
	builderLog *logger.L

	config  *configuration.Configuration
	chainID []byte
	fees    *fee.Schedule
	keys    *keystore.Memory
	watch   *background.T
	closed  bool

	cache      *cache.ObjectCache
	loader     *objects.Loader
	network    transaction.Broadcaster
	serializer transaction.Serializer

	tx       *transaction.Builder
	proposal *transaction.Proposal
}

// New - create an instance from a configuration
//
// a nil configuration selects the defaults
func New(config *configuration.Configuration, c Collaborators) (*Instance, error) {
	if nil == config {
		config = configuration.Default()
	}
	if nil == c.Fetcher || nil == c.Network {
		return nil, errors.New("instance: fetcher and network are required")
	}

	p, err := config.Parameters()
	if nil != err {
		return nil, errors.Wrapf(err, "instance: chain: %q", config.Chain)
	}
	fees, err := config.FeeSchedule()
	if nil != err {
		return nil, err
	}
	keys, err := config.KeyStore()
	if nil != err {
		return nil, err
	}

	serializer := c.Serializer
	if nil == serializer {
		serializer = codec.CBOR{}
	}

	oc := cache.New(config.CacheExpiration(), config.CacheSweepInterval(), logger.New("cache"))
	limit, burst := config.FetchLimit()
	fetcher := objects.NewLimitedFetcher(c.Fetcher, limit, burst)

	i := &Instance{
		log:        logger.New("instance"),
		builderLog: logger.New("builder"),
		config:     config,
		chainID:    p.ChainIDBytes(),
		fees:       fees,
		keys:       keys,
		cache:      oc,
		loader:     objects.NewLoader(oc, fetcher, logger.New("loader")),
		network:    c.Network,
		serializer: serializer,
	}
	i.log.Infof("chain: %s  keys: %d  default account: %q", config.Chain, keys.Count(), config.DefaultAccount)
	return i, nil
}

// Close - stop the watcher and the cache sweeper
func (i *Instance) Close() {
	i.Lock()
	if i.closed {
		i.Unlock()
		return
	}
	i.closed = true
	watch := i.watch
	i.watch = nil
	i.Unlock()

	watch.Stop()
	i.cache.Close()
	i.log.Info("closed")
}

// Config - the current configuration
func (i *Instance) Config() *configuration.Configuration {
	i.RLock()
	defer i.RUnlock()
	return i.config
}

// Loader - cached object access
func (i *Instance) Loader() *objects.Loader {
	return i.loader
}

// ClearCache - drop every cached object
func (i *Instance) ClearCache() {
	i.cache.Clear()
	i.log.Debug("cache cleared")
}

// ComputeFee - fee from the current schedule
//
// builders created by the instance see a reloaded schedule at once
func (i *Instance) ComputeFee(op *operation.Operation) (amount.Amount, error) {
	i.RLock()
	defer i.RUnlock()
	return i.fees.ComputeFee(op)
}

// FindKey - key from the current key store
func (i *Instance) FindKey(account objectid.ID, level authority.Level) (*keypair.PrivateKey, error) {
	i.RLock()
	defer i.RUnlock()
	return i.keys.FindKey(account, level)
}

// Reload - apply a new configuration
//
// fees, keys, modes and lifetimes change; the chain cannot
func (i *Instance) Reload(config *configuration.Configuration) error {
	fees, err := config.FeeSchedule()
	if nil != err {
		return err
	}
	keys, err := config.KeyStore()
	if nil != err {
		return err
	}

	i.Lock()
	if i.closed {
		i.Unlock()
		return fault.ErrNotInitialised
	}
	if config.Chain != i.config.Chain {
		i.Unlock()
		return errors.Wrapf(fault.ErrInvalidChain, "instance: reload: chain: %q", config.Chain)
	}
	i.config = config
	i.fees = fees
	i.keys = keys
	i.Unlock()

	i.cache.Clear()
	i.log.Infof("reloaded  keys: %d", keys.Count())
	return nil
}

// Watch - reload whenever the configuration file is rewritten
func (i *Instance) Watch(fileName string) error {
	i.Lock()
	defer i.Unlock()

	if i.closed {
		return fault.ErrNotInitialised
	}
	if nil != i.watch {
		return fault.ErrAlreadyInitialised
	}

	w, err := configuration.NewWatcher(fileName, logger.New("watcher"))
	if nil != err {
		return err
	}
	r := &reloader{
		log:      i.log,
		instance: i,
		watcher:  w,
	}
	i.watch = background.Start(background.Processes{w, r}, nil)
	return nil
}

// NewTx - a new builder using the instance keys and fees
func (i *Instance) NewTx() *transaction.Builder {
	return transaction.NewBuilder(transaction.Collaborators{
		ChainID:    i.chainID,
		Serializer: i.serializer,
		KeyStore:   i,
		Network:    i.network,
		Fees:       i,
		Expiration: i.Config().TransactionExpiration(),
		Log:        i.builderLog,
	})
}

// Tx - the default transaction
func (i *Instance) Tx() *transaction.Builder {
	if nil == i.tx {
		i.tx = i.NewTx()
	}
	return i.tx
}

// Proposal - the default proposal, attached to the default transaction
// when first requested
//
// a non-empty proposer replaces the paying account of the default
// proposal; once the default transaction is cleared a new default
// proposal is attached
func (i *Instance) Proposal(ctx context.Context, proposer string) (*transaction.Proposal, error) {
	if !i.hasDefaultProposal() {
		i.proposal = nil
		return i.NewProposal(ctx, nil, proposer, transaction.ProposalOptions{})
	}
	if "" == proposer {
		return i.proposal, nil
	}

	id, err := i.loader.ResolveAccount(ctx, proposer)
	if nil != err {
		return nil, err
	}
	if err := i.proposal.SetProposer(id); nil != err {
		return nil, err
	}
	return i.proposal, nil
}

// NewProposal - attach a new proposal to parent
//
// a nil parent is the default transaction and the first proposal on it
// becomes the default proposal; an empty proposer is the default
// account and zero options come from the configuration
func (i *Instance) NewProposal(ctx context.Context, parent *transaction.Builder, proposer string, options transaction.ProposalOptions) (*transaction.Proposal, error) {
	config := i.Config()
	if "" == proposer {
		proposer = config.DefaultAccount
	}
	if "" == proposer {
		return nil, &fault.ValidationError{Kind: "proposal_create", Field: "fee_paying_account", Reason: "no proposer and no default account"}
	}
	id, err := i.loader.ResolveAccount(ctx, proposer)
	if nil != err {
		return nil, err
	}

	if 0 == options.Expiration {
		options.Expiration = config.ProposalExpiration()
	}
	if 0 == options.Review {
		options.Review = config.ProposalReview()
	}

	isDefault := nil == parent
	if isDefault {
		parent = i.Tx()
	}
	p, err := parent.NewProposal(id, options)
	if nil != err {
		return nil, err
	}
	if isDefault && !i.hasDefaultProposal() {
		i.proposal = p
	}
	i.log.Debugf("new proposal  proposer: %s", id)
	return p, nil
}

// the default proposal is still part of the default transaction
func (i *Instance) hasDefaultProposal() bool {
	return nil != i.proposal && nil != i.tx && i.tx.HasProposal(i.proposal)
}

// Clear - empty the default transaction and forget the default proposal
func (i *Instance) Clear() {
	if nil != i.tx {
		i.tx.Clear()
	}
	i.proposal = nil
}

// FinalizeOp - place an operation
//
// with a target the operation is only appended there and nil is
// returned; otherwise it goes to the default transaction which, unless
// the configuration is unsigned, is signed and (when not nobroadcast)
// broadcast.  account is the signer the operation is finalised with,
// empty selects the default account and with neither only the
// operation's own authority is required
func (i *Instance) FinalizeOp(ctx context.Context, op *operation.Operation, account string, level authority.Level, target Target) (*Finalized, error) {
	config := i.Config()

	var signer *authority.Requirement
	if "" == account {
		account = config.DefaultAccount
	}
	if "" != account {
		id, err := i.loader.ResolveAccount(ctx, account)
		if nil != err {
			return nil, err
		}
		signer = &authority.Requirement{Account: id, Level: level}
	}

	if nil != target {
		return nil, target.place(op, signer)
	}

	if err := place(i.Tx(), op, signer); nil != err {
		return nil, err
	}

	if config.Unsigned {
		return nil, nil
	}
	if config.NoBroadcast {
		if err := i.tx.Sign(); nil != err {
			return nil, err
		}
		s, err := i.tx.Signed()
		if nil != err {
			return nil, err
		}
		i.log.Warn("nobroadcast: transaction not broadcast")
		i.Clear()
		return &Finalized{Transaction: s}, nil
	}
	return i.Broadcast(ctx)
}

// Broadcast - sign and broadcast the default transaction
//
// on success the default transaction is cleared and so is the cache;
// on error both are kept
func (i *Instance) Broadcast(ctx context.Context) (*Finalized, error) {
	tx := i.Tx()
	if err := tx.Sign(); nil != err {
		return nil, err
	}
	s, err := tx.Signed()
	if nil != err {
		return nil, err
	}
	result, err := tx.Broadcast(ctx)
	if nil != err {
		return nil, err
	}

	i.Clear()
	i.ClearCache()
	return &Finalized{
		Transaction: s,
		Result:      result,
	}, nil
}

// Transfer - move value of an asset given by symbol or id
//
// value is in asset units, e.g. "1.5"; an empty account is the
// default account
func (i *Instance) Transfer(ctx context.Context, to string, value string, symbolOrID string, account string, target Target) (*Finalized, error) {
	if "" == account {
		account = i.Config().DefaultAccount
	}
	if "" == account {
		return nil, &fault.ValidationError{Kind: "transfer", Field: "from", Reason: "no account and no default account"}
	}

	from, err := i.loader.ResolveAccount(ctx, account)
	if nil != err {
		return nil, err
	}
	recipient, err := i.loader.ResolveAccount(ctx, to)
	if nil != err {
		return nil, err
	}
	a, err := i.loader.Asset(ctx, symbolOrID)
	if nil != err {
		return nil, err
	}
	v, err := amount.FromDecimal(value, a.Precision, a.ID)
	if nil != err {
		return nil, err
	}

	op, err := operation.New(operation.Transfer, map[string]interface{}{
		"from":       from,
		"to":         recipient,
		"amount":     v,
		"extensions": []interface{}{},
	})
	if nil != err {
		return nil, err
	}
	return i.FinalizeOp(ctx, op, from.String(), authority.Active, target)
}
