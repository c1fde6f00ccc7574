// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/bitmark-inc/logger"
	"github.com/pkg/errors"
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/deex/authority"
	"github.com/bitmark-inc/deex/chain"
	"github.com/bitmark-inc/deex/fault"
	"github.com/bitmark-inc/deex/fee"
	"github.com/bitmark-inc/deex/keypair"
	"github.com/bitmark-inc/deex/keystore"
	"github.com/bitmark-inc/deex/objectid"
)

// basic defaults (directories and files are relative to the "DataDirectory" from Configuration file)
const (
	defaultDataDirectory = "." // same directory as the config file

	defaultCacheExpiration   = 10 // seconds
	defaultTxExpiration      = 30
	defaultProposalLifetime  = 2 * 24 * 60 * 60
	defaultFetchRateLimit    = 0 // unlimited
	defaultFetchRateBurst    = 1
	defaultFeeAssetID        = "1.3.0"
	defaultLogDirectory      = "log"
	defaultLogFile           = "deex.log"
	defaultLogCount          = 10          //  number of log files retained
	defaultLogSize           = 1024 * 1024 // rotate when <logfile> exceeds this size
	defaultCacheSweepSeconds = 0           // no sweeper
)

// CacheType - object cache timing in seconds
type CacheType struct {
	DefaultExpiration int `gluamapper:"default_expiration" json:"default_expiration"`
	SweepInterval     int `gluamapper:"sweep_interval" json:"sweep_interval"`
}

// TransactionType - transaction lifetime in seconds
type TransactionType struct {
	Expiration int `gluamapper:"expiration" json:"expiration"`
}

// ProposalType - proposal timing in seconds, zero review means none
type ProposalType struct {
	Expiration int `gluamapper:"expiration" json:"expiration"`
	Review     int `gluamapper:"review" json:"review"`
}

// FeesType - flat fee schedule, kinds are operation names
type FeesType struct {
	Asset   string           `gluamapper:"asset" json:"asset"`
	Default int64            `gluamapper:"default" json:"default"`
	Kinds   map[string]int64 `gluamapper:"kinds" json:"kinds"`
}

// KeyType - one signing key
type KeyType struct {
	Account    string `gluamapper:"account" json:"account"`
	Level      string `gluamapper:"level" json:"level"`
	PrivateKey string `gluamapper:"private_key" json:"private_key"`
}

// FetchRateType - requests per second to the network, zero is unlimited
type FetchRateType struct {
	Limit float64 `gluamapper:"limit" json:"limit"`
	Burst int     `gluamapper:"burst" json:"burst"`
}

// Configuration - everything an instance needs
type Configuration struct {
	DataDirectory  string               `gluamapper:"data_directory" json:"data_directory"`
	Chain          string               `gluamapper:"chain" json:"chain"`
	DefaultAccount string               `gluamapper:"default_account" json:"default_account"`
	NoBroadcast    bool                 `gluamapper:"nobroadcast" json:"nobroadcast"`
	Unsigned       bool                 `gluamapper:"unsigned" json:"unsigned"`
	Cache          CacheType            `gluamapper:"cache" json:"cache"`
	Transaction    TransactionType      `gluamapper:"transaction" json:"transaction"`
	Proposal       ProposalType         `gluamapper:"proposal" json:"proposal"`
	Fees           FeesType             `gluamapper:"fees" json:"fees"`
	Keys           []KeyType            `gluamapper:"keys" json:"keys"`
	FetchRate      FetchRateType        `gluamapper:"fetch_rate" json:"fetch_rate"`
	Logging        logger.Configuration `gluamapper:"logging" json:"logging"`
}

// Default - configuration before any file is applied
func Default() *Configuration {
	return &Configuration{
		DataDirectory: defaultDataDirectory,
		Chain:         chain.Deex,
		Cache: CacheType{
			DefaultExpiration: defaultCacheExpiration,
			SweepInterval:     defaultCacheSweepSeconds,
		},
		Transaction: TransactionType{
			Expiration: defaultTxExpiration,
		},
		Proposal: ProposalType{
			Expiration: defaultProposalLifetime,
		},
		Fees: FeesType{
			Asset: defaultFeeAssetID,
			Kinds: map[string]int64{},
		},
		FetchRate: FetchRateType{
			Limit: defaultFetchRateLimit,
			Burst: defaultFetchRateBurst,
		},
		Logging: logger.Configuration{
			Directory: defaultLogDirectory,
			File:      defaultLogFile,
			Size:      defaultLogSize,
			Count:     defaultLogCount,
			Levels: map[string]string{
				"main":            "info",
				logger.DefaultTag: "critical",
			},
		},
	}
}

// GetConfiguration - read decode and verify a configuration file
func GetConfiguration(configurationFileName string) (*Configuration, error) {

	configurationFileName, err := filepath.Abs(filepath.Clean(configurationFileName))
	if nil != err {
		return nil, err
	}

	// absolute path to the main directory
	dataDirectory, _ := filepath.Split(configurationFileName)

	options := Default()

	if err := ParseConfigurationFile(configurationFileName, options); nil != err {
		return nil, errors.Wrapf(err, "configuration: %s", configurationFileName)
	}

	if err := options.validate(); nil != err {
		return nil, err
	}

	// ensure absolute data directory
	if "" == options.DataDirectory || "~" == options.DataDirectory {
		return nil, errors.Errorf("configuration: path: %q is not a valid directory", options.DataDirectory)
	} else if "." == options.DataDirectory {
		options.DataDirectory = dataDirectory // same directory as the configuration file
	}
	options.DataDirectory = filepath.Clean(options.DataDirectory)

	// this directory must exist - i.e. must be created prior to running
	if fileInfo, err := os.Stat(options.DataDirectory); nil != err {
		return nil, err
	} else if !fileInfo.IsDir() {
		return nil, errors.Errorf("configuration: path: %q is not a directory", options.DataDirectory)
	}

	// log file must be a plain name within the log directory
	switch filepath.Dir(options.Logging.File) {
	case "", ".":
	default:
		return nil, errors.Errorf("configuration: files: %q is not plain name", options.Logging.File)
	}

	options.Logging.Directory = ensureAbsolute(options.DataDirectory, options.Logging.Directory)
	if err := os.MkdirAll(options.Logging.Directory, 0700); nil != err {
		return nil, err
	}

	return options, nil
}

// check values that do not depend on the file system
func (c *Configuration) validate() error {
	c.Chain = strings.ToLower(c.Chain)
	if !chain.Valid(c.Chain) {
		return errors.Errorf("configuration: chain: %q is not supported", c.Chain)
	}

	if c.Cache.DefaultExpiration < 0 || c.Cache.SweepInterval < 0 {
		return errors.New("configuration: cache times must not be negative")
	}
	if c.Transaction.Expiration < 0 || c.Proposal.Expiration < 0 || c.Proposal.Review < 0 {
		return errors.New("configuration: expiration times must not be negative")
	}
	if c.FetchRate.Limit < 0 {
		return errors.New("configuration: fetch rate must not be negative")
	}
	if c.FetchRate.Burst <= 0 {
		c.FetchRate.Burst = defaultFetchRateBurst
	}
	return nil
}

// ensure the path is absolute
func ensureAbsolute(directory string, filePath string) string {
	if !filepath.IsAbs(filePath) {
		filePath = filepath.Join(directory, filePath)
	}
	return filepath.Clean(filePath)
}

// Parameters - the selected chain
func (c *Configuration) Parameters() (chain.Parameters, error) {
	return chain.Get(c.Chain)
}

// CacheExpiration - default time to live of cached objects
func (c *Configuration) CacheExpiration() time.Duration {
	return seconds(c.Cache.DefaultExpiration)
}

// CacheSweepInterval - zero means no background sweep
func (c *Configuration) CacheSweepInterval() time.Duration {
	return seconds(c.Cache.SweepInterval)
}

// TransactionExpiration - lifetime of a new transaction
func (c *Configuration) TransactionExpiration() time.Duration {
	return seconds(c.Transaction.Expiration)
}

// ProposalExpiration - lifetime of a new proposal
func (c *Configuration) ProposalExpiration() time.Duration {
	return seconds(c.Proposal.Expiration)
}

// ProposalReview - review period of a new proposal
func (c *Configuration) ProposalReview() time.Duration {
	return seconds(c.Proposal.Review)
}

// FetchLimit - rate limit for network reads
func (c *Configuration) FetchLimit() (rate.Limit, int) {
	if 0 == c.FetchRate.Limit {
		return rate.Inf, c.FetchRate.Burst
	}
	return rate.Limit(c.FetchRate.Limit), c.FetchRate.Burst
}

func seconds(n int) time.Duration {
	return time.Duration(n) * time.Second
}

// FeeSchedule - the configured fees
func (c *Configuration) FeeSchedule() (*fee.Schedule, error) {
	asset, err := objectid.Parse(c.Fees.Asset)
	if nil != err || !asset.IsAsset() {
		return nil, errors.Wrapf(fault.ErrInvalidObjectID, "configuration: fee asset: %q", c.Fees.Asset)
	}
	s, err := fee.FromNames(asset, c.Fees.Default, c.Fees.Kinds)
	if nil != err {
		return nil, errors.Wrap(err, "configuration: fees")
	}
	return s, nil
}

// KeyStore - the configured keys
//
// every key must belong to the configured chain's network
func (c *Configuration) KeyStore() (*keystore.Memory, error) {
	p, err := c.Parameters()
	if nil != err {
		return nil, err
	}

	store := keystore.New()
	for i, k := range c.Keys {
		account, err := objectid.Parse(k.Account)
		if nil != err {
			return nil, errors.Wrapf(err, "configuration: keys[%d]: account", i)
		}
		level, err := authority.ParseLevel(k.Level)
		if nil != err {
			return nil, errors.Wrapf(err, "configuration: keys[%d]: level", i)
		}
		key, err := keypair.PrivateKeyFromBase58(k.PrivateKey)
		if nil != err {
			return nil, errors.Wrapf(err, "configuration: keys[%d]: private key", i)
		}
		if key.Test != p.IsTesting {
			return nil, errors.Wrapf(fault.ErrWrongNetworkForKey, "configuration: keys[%d]", i)
		}
		if err := store.Add(account, level, key); nil != err {
			return nil, errors.Wrapf(err, "configuration: keys[%d]", i)
		}
	}
	return store, nil
}
