// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package cache

import (
	"fmt"
	"time"

	"github.com/bitmark-inc/logger"
	gocache "github.com/patrickmn/go-cache"

	"github.com/bitmark-inc/deex/background"
	"github.com/bitmark-inc/deex/counter"
)

// ObjectCache - key value store where each entry has a time to live
//
// a zero default expiration means entries never expire
//
// an entry expires once the clock is strictly past insert+ttl, so a
// lookup landing exactly on insert+ttl still sees it
type ObjectCache struct {
	store             *gocache.Cache
	defaultExpiration time.Duration
	hits              counter.Counter
	misses            counter.Counter
	log               *logger.L
	sweeper           *background.T
}

// Statistics - lookup counts since creation or the last Clear
//
// Stored includes expired entries not yet swept
type Statistics struct {
	Hits    uint64 `json:"hits"`
	Misses  uint64 `json:"misses"`
	Entries int    `json:"entries"`
	Stored  int    `json:"stored"`
}

// New - create a cache
//
// a positive sweepInterval starts a background process that deletes
// expired entries; Close must then be called to stop it
func New(defaultExpiration time.Duration, sweepInterval time.Duration, log *logger.L) *ObjectCache {
	if defaultExpiration < 0 {
		defaultExpiration = 0
	}
	c := &ObjectCache{
		store:             gocache.New(defaultExpiration, 0),
		defaultExpiration: defaultExpiration,
		log:               log,
	}

	if sweepInterval > 0 {
		c.sweeper = background.Start(background.Processes{
			&sweeper{cache: c, interval: sweepInterval},
		}, nil)
	}

	log.Debugf("new cache: default expiration: %s  sweep interval: %s", defaultExpiration, sweepInterval)
	return c
}

// Close - stop the sweeper if one was started
func (c *ObjectCache) Close() {
	c.sweeper.Stop()
}

// DefaultExpiration - time to live of entries set without one
func (c *ObjectCache) DefaultExpiration() time.Duration {
	return c.defaultExpiration
}

// Get - fetch a live entry
//
// a missing or expired key is not an error, just ok == false
func (c *ObjectCache) Get(key string) (interface{}, bool) {
	value, ok := c.store.Get(key)
	if ok {
		c.hits.Increment()
	} else {
		c.misses.Increment()
	}
	return value, ok
}

// GetOrDefault - fetch a live entry or return def
func (c *ObjectCache) GetOrDefault(key string, def interface{}) interface{} {
	if value, ok := c.Get(key); ok {
		return value
	}
	return def
}

// Contains - true if a live entry exists
func (c *ObjectCache) Contains(key string) bool {
	_, ok := c.store.Get(key)
	return ok
}

// Set - store with the default expiration, replacing any entry and
// restarting its age
func (c *ObjectCache) Set(key string, value interface{}) {
	c.store.Set(key, value, gocache.DefaultExpiration)
}

// SetWithExpiration - store with an entry specific time to live
//
// ttl <= 0 selects the default expiration
func (c *ObjectCache) SetWithExpiration(key string, value interface{}, ttl time.Duration) {
	if ttl <= 0 {
		ttl = gocache.DefaultExpiration
	}
	c.store.Set(key, value, ttl)
}

// Delete - remove an entry
func (c *ObjectCache) Delete(key string) {
	c.store.Delete(key)
}

// Clear - remove everything
func (c *ObjectCache) Clear() {
	c.store.Flush()
	c.hits.Reset()
	c.misses.Reset()
	c.log.Debug("cleared")
}

// Count - number of live entries
func (c *ObjectCache) Count() int {
	return len(c.store.Items())
}

// Sweep - delete expired entries now
func (c *ObjectCache) Sweep() {
	c.store.DeleteExpired()
}

// Statistics - current counts
func (c *ObjectCache) Statistics() Statistics {
	return Statistics{
		Hits:    c.hits.Uint64(),
		Misses:  c.misses.Uint64(),
		Entries: c.Count(),
		Stored:  c.store.ItemCount(),
	}
}

func (c *ObjectCache) String() string {
	return fmt.Sprintf("ObjectCache(n=%d, default_expiration=%s)", c.Count(), c.defaultExpiration)
}
