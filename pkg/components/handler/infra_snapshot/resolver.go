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

package infra_snapshot

import (
	"fmt"
	"os"
	"strings"

	models_error "github.com/SENERGY-Platform/ecs-app-deployer/pkg/models/error"
)

// Setting names a configuration value: an explicit override key (environment variable), an optional
// snapshot key and an optional default.
type Setting struct {
	Key         string
	SnapshotKey string
	Default     *string
}

func (s Setting) WithDefault(d string) Setting {
	s.Default = &d
	return s
}

type Resolver struct {
	snapshot  *Snapshot
	lookupEnv func(string) (string, bool)
}

// NewResolver creates a resolver reading overrides through lookupEnv, os.LookupEnv if nil.
func NewResolver(snapshot *Snapshot, lookupEnv func(string) (string, bool)) *Resolver {
	if lookupEnv == nil {
		lookupEnv = os.LookupEnv
	}
	return &Resolver{
		snapshot:  snapshot,
		lookupEnv: lookupEnv,
	}
}

func (r *Resolver) Snapshot() *Snapshot {
	return r.snapshot
}

// Resolve returns the override, else the snapshot value, else the default.
func (r *Resolver) Resolve(s Setting) (string, error) {
	if v, ok := r.resolve(s); ok {
		return v, nil
	}
	return "", missingErr(s)
}

// FirstOf resolves the settings in order and returns the first value found.
func (r *Resolver) FirstOf(settings ...Setting) (string, error) {
	var keys []string
	for _, s := range settings {
		if v, ok := r.resolve(s); ok {
			return v, nil
		}
		keys = append(keys, fmt.Sprintf("key=%s, snapshot_key=%s", s.Key, s.SnapshotKey))
	}
	return "", models_error.Newf(models_error.ConfigurationMissing, "", "configuration value not found: %s", strings.Join(keys, "; "))
}

func (r *Resolver) ResolveList(s Setting) ([]string, error) {
	v, err := r.Resolve(s)
	if err != nil {
		return nil, err
	}
	return SplitList(v), nil
}

func (r *Resolver) resolve(s Setting) (string, bool) {
	if s.Key != "" {
		if v, ok := r.lookupEnv(s.Key); ok && v != "" {
			return v, true
		}
	}
	if s.SnapshotKey != "" && r.snapshot != nil {
		if v, ok := r.snapshot.Lookup(s.SnapshotKey); ok {
			return v, true
		}
	}
	if s.Default != nil {
		return *s.Default, true
	}
	return "", false
}

func SplitList(v string) []string {
	var items []string
	for _, item := range strings.Split(v, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}

func missingErr(s Setting) error {
	return models_error.Newf(models_error.ConfigurationMissing, "", "configuration value not found: key=%s, snapshot_key=%s", s.Key, s.SnapshotKey)
}
