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
	"log/slog"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

const tfState = `{
  "version": 4,
  "outputs": {
    "vpc_id": {"value": "vpc-123", "type": "string"},
    "private_subnet_ids": {"value": ["subnet-a", "subnet-b"], "type": ["list", "string"]},
    "empty": {"value": "", "type": "string"},
    "port": {"value": 7860, "type": "number"},
    "account_id": {"value": 123456789012, "type": "number"},
    "ratio": {"value": 0.25, "type": "number"}
  },
  "resources": []
}`

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	if err := os.WriteFile(p, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return p
}

func TestSnapshot_TerraformState(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "terraform.tfstate", tfState)
	s := NewSnapshot(Config{Path: "terraform.tfstate", ProjectRoot: dir}, slog.Default())
	if s.Path() != filepath.Join(dir, "terraform.tfstate") {
		t.Errorf("unexpected path %s", s.Path())
	}
	v, ok := s.Lookup("vpc_id")
	if !ok || v != "vpc-123" {
		t.Errorf("expected: vpc-123, got: %s", v)
	}
	v, ok = s.Lookup("private_subnet_ids")
	if !ok || v != "subnet-a,subnet-b" {
		t.Errorf("expected: subnet-a,subnet-b, got: %s", v)
	}
	v, ok = s.Lookup("port")
	if !ok || v != "7860" {
		t.Errorf("expected: 7860, got: %s", v)
	}
	v, ok = s.Lookup("account_id")
	if !ok || v != "123456789012" {
		t.Errorf("expected: 123456789012, got: %s", v)
	}
	v, ok = s.Lookup("ratio")
	if !ok || v != "0.25" {
		t.Errorf("expected: 0.25, got: %s", v)
	}
	if _, ok = s.Lookup("empty"); ok {
		t.Error("expected empty value to be absent")
	}
	if _, ok = s.Lookup("missing"); ok {
		t.Error("expected missing key to be absent")
	}
	a := []string{"account_id", "empty", "port", "private_subnet_ids", "ratio", "vpc_id"}
	if b := s.Keys(); !reflect.DeepEqual(a, b) {
		t.Errorf("expected %v, got %v", a, b)
	}
}

func TestSnapshot_OutputJSON(t *testing.T) {
	dir := t.TempDir()
	p := writeFile(t, dir, "outputs.json", `{"vpc_id": {"value": "vpc-456", "sensitive": false}, "plain": "x"}`)
	s := NewSnapshot(Config{Path: p}, slog.Default())
	if v, _ := s.Lookup("vpc_id"); v != "vpc-456" {
		t.Errorf("expected: vpc-456, got: %s", v)
	}
	if v, _ := s.Lookup("plain"); v != "x" {
		t.Errorf("expected: x, got: %s", v)
	}
}

func TestSnapshot_YAML(t *testing.T) {
	dir := t.TempDir()
	p := writeFile(t, dir, "infra.yml", "vpc_id: vpc-789\npublic_subnet_ids:\n  - subnet-c\n  - subnet-d\n")
	s := NewSnapshot(Config{Path: p}, slog.Default())
	if v, _ := s.Lookup("vpc_id"); v != "vpc-789" {
		t.Errorf("expected: vpc-789, got: %s", v)
	}
	if v, _ := s.Lookup("public_subnet_ids"); v != "subnet-c,subnet-d" {
		t.Errorf("expected: subnet-c,subnet-d, got: %s", v)
	}
}

func TestSnapshot_LoadOnce(t *testing.T) {
	dir := t.TempDir()
	p := writeFile(t, dir, "terraform.tfstate", tfState)
	s := NewSnapshot(Config{Path: p}, slog.Default())
	if v, _ := s.Lookup("vpc_id"); v != "vpc-123" {
		t.Fatalf("expected: vpc-123, got: %s", v)
	}
	writeFile(t, dir, "terraform.tfstate", `{"outputs": {"vpc_id": {"value": "vpc-changed"}}}`)
	if v, _ := s.Lookup("vpc_id"); v != "vpc-123" {
		t.Errorf("expected cached value vpc-123, got: %s", v)
	}
}

func TestSnapshot_Degrades(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		s := NewSnapshot(Config{Path: filepath.Join(t.TempDir(), "does_not_exist")}, slog.Default())
		if len(s.Keys()) != 0 {
			t.Error("expected empty snapshot")
		}
	})
	t.Run("invalid file", func(t *testing.T) {
		dir := t.TempDir()
		p := writeFile(t, dir, "terraform.tfstate", "{not json")
		s := NewSnapshot(Config{Path: p}, slog.Default())
		if len(s.Keys()) != 0 {
			t.Error("expected empty snapshot")
		}
	})
	t.Run("no path", func(t *testing.T) {
		s := NewSnapshot(Config{}, slog.Default())
		if len(s.Keys()) != 0 {
			t.Error("expected empty snapshot")
		}
	})
}
