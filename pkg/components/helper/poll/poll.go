/*
 * Copyright 2025 InfAI (CC SES)
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *    http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package poll

import (
	"context"
	"time"
)

type Policy struct {
	Interval    time.Duration `json:"interval" env_var:"POLL_INTERVAL"`
	MaxAttempts int           `json:"max_attempts" env_var:"POLL_MAX_ATTEMPTS"`
}

// CheckFunc reports whether the awaited condition holds. Attempts start at 1.
type CheckFunc func(ctx context.Context, attempt int) (bool, error)

// Until waits policy.Interval before each of at most policy.MaxAttempts checks.
// It returns true as soon as check reports done and false once the attempts are used up.
// A check error or a done context ends polling immediately.
func Until(ctx context.Context, clock Clock, policy Policy, check CheckFunc) (bool, error) {
	if clock == nil {
		clock = RealClock{}
	}
	for attempt := 1; attempt <= policy.MaxAttempts; attempt++ {
		select {
		case <-ctx.Done():
			return false, ctx.Err()
		case <-clock.After(policy.Interval):
		}
		done, err := check(ctx, attempt)
		if err != nil {
			return false, err
		}
		if done {
			return true, nil
		}
	}
	return false, nil
}
