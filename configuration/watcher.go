// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration

import (
	"os"
	"path/filepath"

	"github.com/bitmark-inc/logger"
	"github.com/fsnotify/fsnotify"
	"github.com/pkg/errors"
)

// Watcher - signals when a configuration file is rewritten or removed
//
// events are coalesced: a signal not yet received absorbs later ones
type Watcher struct {
	log      *logger.L
	watcher  *fsnotify.Watcher
	filePath string
	change   chan struct{}
	remove   chan struct{}
}

// NewWatcher - start watching an existing file
//
// events are collected once the returned watcher is run as a
// background process
func NewWatcher(fileName string, log *logger.L) (*Watcher, error) {
	filePath, err := filepath.Abs(filepath.Clean(fileName))
	if nil != err {
		return nil, err
	}

	if _, err := os.Stat(filePath); os.IsNotExist(err) {
		return nil, errors.Errorf("watcher: file: %q does not exist", filePath)
	}

	watcher, err := fsnotify.NewWatcher()
	if nil != err {
		log.Errorf("new watcher with error: %s", err)
		return nil, err
	}

	if err := watcher.Add(filePath); nil != err {
		log.Errorf("watcher add error: %s", err)
		watcher.Close()
		return nil, err
	}

	return &Watcher{
		log:      log,
		watcher:  watcher,
		filePath: filePath,
		change:   make(chan struct{}, 1),
		remove:   make(chan struct{}, 1),
	}, nil
}

// FilePath - absolute path of the watched file
func (w *Watcher) FilePath() string {
	return w.filePath
}

// Change - receives after the file was written
func (w *Watcher) Change() <-chan struct{} {
	return w.change
}

// Remove - receives once the file is gone; nothing more is reported
func (w *Watcher) Remove() <-chan struct{} {
	return w.remove
}

// Run - background process loop
func (w *Watcher) Run(args interface{}, shutdown <-chan struct{}) {
	defer w.watcher.Close()

	name := filepath.Base(w.filePath)
loop:
	for {
		select {
		case <-shutdown:
			break loop

		case err, ok := <-w.watcher.Errors:
			if !ok {
				break loop
			}
			w.log.Errorf("watch: %s  error: %s", w.filePath, err)

		case event, ok := <-w.watcher.Events:
			if !ok {
				break loop
			}
			w.log.Debugf("file event: %v", event)

			if isRemove(event) {
				w.log.Warnf("file: %s removed, stop", w.filePath)
				w.send(w.remove, "remove")
				break loop
			}

			if filepath.Base(event.Name) != name {
				w.log.Debugf("file: %s not match, discard event", event.Name)
				continue loop
			}

			if isChange(event) {
				w.log.Info("sending config change event")
				w.send(w.change, "change")
			}
		}
	}
	w.log.Debug("watcher stopped")
}

func (w *Watcher) send(ch chan<- struct{}, name string) {
	select {
	case ch <- struct{}{}:
	default:
		w.log.Debugf("event channel: %s full, discard event", name)
	}
}

func isRemove(event fsnotify.Event) bool {
	return "" == event.Name ||
		event.Op&fsnotify.Remove == fsnotify.Remove ||
		event.Op&fsnotify.Rename == fsnotify.Rename
}

func isChange(event fsnotify.Event) bool {
	return event.Op&fsnotify.Write == fsnotify.Write ||
		event.Op&fsnotify.Chmod == fsnotify.Chmod
}
