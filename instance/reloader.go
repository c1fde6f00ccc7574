// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package instance

import (
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/deex/configuration"
)

// reloader - background process applying watched file changes
type reloader struct {
	log      *logger.L
	instance *Instance
	watcher  *configuration.Watcher
}

func (r *reloader) Run(args interface{}, shutdown <-chan struct{}) {
loop:
	for {
		select {
		case <-shutdown:
			break loop

		case <-r.watcher.Remove():
			r.log.Warnf("configuration: %s removed, no further reloads", r.watcher.FilePath())
			break loop

		case <-r.watcher.Change():
			config, err := configuration.GetConfiguration(r.watcher.FilePath())
			if nil != err {
				r.log.Errorf("configuration: %s  error: %s", r.watcher.FilePath(), err)
				continue loop
			}
			if err := r.instance.Reload(config); nil != err {
				r.log.Errorf("reload error: %s", err)
			}
		}
	}
	r.log.Debug("reloader stopped")
}
