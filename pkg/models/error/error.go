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

package error

import (
	"errors"
	"fmt"
)

type Kind string

const (
	ConfigurationMissing     Kind = "configuration_missing"
	InvalidInput             Kind = "invalid_input"
	NotFound                 Kind = "not_found"
	ResourceLookupFailure    Kind = "resource_lookup_failure"
	ResourceUpdateFailure    Kind = "resource_update_failure"
	RuleConflict             Kind = "rule_conflict"
	ServiceTransitionFailure Kind = "service_transition_failure"
	ServiceRemovalFailure    Kind = "service_removal_failure"
	NetworkGrantFailure      Kind = "network_grant_failure"
	SourceCheckoutFailure    Kind = "source_checkout_failure"
	ImagePublishFailure      Kind = "image_publish_failure"
	Internal                 Kind = "internal"
)

type Policy int

const (
	Fatal Policy = iota
	Absorbed
)

// Policies decides per kind whether a failure aborts a deployment or is logged and dropped.
var Policies = map[Kind]Policy{
	ConfigurationMissing:     Fatal,
	InvalidInput:             Fatal,
	NotFound:                 Fatal,
	ResourceLookupFailure:    Fatal,
	ResourceUpdateFailure:    Fatal,
	RuleConflict:             Absorbed,
	ServiceTransitionFailure: Fatal,
	ServiceRemovalFailure:    Absorbed,
	NetworkGrantFailure:      Absorbed,
	SourceCheckoutFailure:    Fatal,
	ImagePublishFailure:      Fatal,
	Internal:                 Fatal,
}

type Error struct {
	Kind Kind
	Op   string
	err  error
}

func New(kind Kind, op string, err error) *Error {
	return &Error{
		Kind: kind,
		Op:   op,
		err:  err,
	}
}

func Newf(kind Kind, op, format string, a ...any) *Error {
	return New(kind, op, fmt.Errorf(format, a...))
}

func (e *Error) Error() string {
	if e.Op == "" {
		return e.err.Error()
	}
	return e.Op + ": " + e.err.Error()
}

func (e *Error) Unwrap() error {
	return e.err
}

// Is matches on Kind so callers can use errors.Is(err, &Error{Kind: X}).
func (e *Error) Is(target error) bool {
	var t *Error
	if !errors.As(target, &t) {
		return false
	}
	return t.err == nil && t.Kind == e.Kind
}

func KindOf(err error) (Kind, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind, true
	}
	return "", false
}

func IsKind(err error, kind Kind) bool {
	k, ok := KindOf(err)
	return ok && k == kind
}

// IsAbsorbed reports whether the policy table allows err to be logged and dropped. Untyped errors are fatal.
func IsAbsorbed(err error) bool {
	k, ok := KindOf(err)
	if !ok {
		return false
	}
	return Policies[k] == Absorbed
}
