// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package cache

import (
	"time"
)

type sweeper struct {
	cache    *ObjectCache
	interval time.Duration
}

func (s *sweeper) Run(args interface{}, shutdown <-chan struct{}) {
	log := s.cache.log
	log.Info("sweeper: starting…")

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

loop:
	for {
		select {
		case <-ticker.C:
			before := s.cache.store.ItemCount()
			s.cache.Sweep()
			log.Debugf("sweeper: removed: %d", before-s.cache.store.ItemCount())
		case <-shutdown:
			break loop
		}
	}
	log.Info("sweeper: stopped")
}
