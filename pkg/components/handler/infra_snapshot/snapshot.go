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
	"bytes"
	"encoding/json"
	"fmt"
	"log/slog"
	"maps"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"

	"github.com/SENERGY-Platform/ecs-app-deployer/pkg/models/slog_attr"
	"gopkg.in/yaml.v3"
)

const outputsKey = "outputs"

// Snapshot is a read-only key/value description of provisioned infrastructure. The file is read on first
// access and cached for the lifetime of the process. A missing or unreadable file yields an empty snapshot.
type Snapshot struct {
	path   string
	logger *slog.Logger
	once   sync.Once
	values map[string]any
}

func NewSnapshot(config Config, logger *slog.Logger) *Snapshot {
	if logger == nil {
		logger = slog.Default()
	}
	p := config.Path
	if p != "" && !filepath.IsAbs(p) {
		root := config.ProjectRoot
		if root == "" {
			if wd, err := os.Getwd(); err == nil {
				root = wd
			}
		}
		p = filepath.Join(root, p)
	}
	return &Snapshot{
		path:   filepath.Clean(p),
		logger: logger,
	}
}

// NewStaticSnapshot returns a snapshot backed by the given values instead of a file.
func NewStaticSnapshot(values map[string]any) *Snapshot {
	s := &Snapshot{values: values}
	s.once.Do(func() {})
	return s
}

func (s *Snapshot) Path() string {
	return s.path
}

func (s *Snapshot) Keys() []string {
	return slices.Sorted(maps.Keys(s.load()))
}

// Lookup returns the value of key rendered as a string. Lists are joined with ",". Empty values count as absent.
func (s *Snapshot) Lookup(key string) (string, bool) {
	v, ok := s.load()[key]
	if !ok || v == nil {
		return "", false
	}
	var str string
	switch val := v.(type) {
	case string:
		str = val
	case []any:
		var items []string
		for _, item := range val {
			if item == nil {
				continue
			}
			if i := fmt.Sprint(item); i != "" {
				items = append(items, i)
			}
		}
		str = strings.Join(items, ",")
	default:
		str = fmt.Sprint(val)
	}
	if str == "" {
		return "", false
	}
	return str, true
}

func (s *Snapshot) load() map[string]any {
	s.once.Do(func() {
		values, err := readFile(s.path)
		if err != nil {
			s.logger.Warn("loading infrastructure snapshot failed", slog_attr.PathKey, s.path, slog_attr.ErrorKey, err)
			values = make(map[string]any)
		} else {
			s.logger.Info("loaded infrastructure snapshot", slog_attr.PathKey, s.path, "keys", len(values))
		}
		s.values = values
	})
	return s.values
}

func readFile(p string) (map[string]any, error) {
	if p == "" || p == "." {
		return nil, fmt.Errorf("no snapshot path configured")
	}
	b, err := os.ReadFile(p)
	if err != nil {
		return nil, err
	}
	var raw map[string]any
	switch strings.ToLower(filepath.Ext(p)) {
	case ".yml", ".yaml":
		err = yaml.Unmarshal(b, &raw)
	default:
		dec := json.NewDecoder(bytes.NewReader(b))
		dec.UseNumber()
		err = dec.Decode(&raw)
	}
	if err != nil {
		return nil, err
	}
	return flatten(raw), nil
}

// flatten accepts a Terraform state file ({"outputs": {k: {"value": v}}}), the output of
// "terraform output -json" ({k: {"value": v}}) or a plain key/value map.
func flatten(raw map[string]any) map[string]any {
	if outputs, ok := raw[outputsKey].(map[string]any); ok {
		raw = outputs
	}
	values := make(map[string]any, len(raw))
	for key, val := range raw {
		if m, ok := val.(map[string]any); ok {
			if v, ok := m["value"]; ok {
				values[key] = v
				continue
			}
		}
		values[key] = val
	}
	return values
}
