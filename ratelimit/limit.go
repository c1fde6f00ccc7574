// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ratelimit

import (
	"context"
	"time"

	"golang.org/x/time/rate"

	"github.com/bitmark-inc/deex/fault"
)

// Limit - wait for a single request slot
func Limit(ctx context.Context, limiter *rate.Limiter) error {
	return wait(ctx, limiter.Reserve())
}

// LimitN - wait for count slots
//
// an invalid count is limited as a single request and then rejected
func LimitN(ctx context.Context, limiter *rate.Limiter, count int, maximumCount int) error {
	if count <= 0 || count > maximumCount {
		if err := wait(ctx, limiter.Reserve()); nil != err {
			return err
		}
		return fault.ErrInvalidCount
	}
	return wait(ctx, limiter.ReserveN(time.Now(), count))
}

func wait(ctx context.Context, r *rate.Reservation) error {
	if !r.OK() {
		return fault.ErrRateLimiting
	}
	delay := r.Delay()
	if 0 == delay {
		return nil
	}

	timer := time.NewTimer(delay)
	defer timer.Stop()

	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		r.Cancel()
		return ctx.Err()
	}
}
