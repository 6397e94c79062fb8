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

package models

import (
	"strings"
	"testing"
)

func TestValidateAppName(t *testing.T) {
	valid := []string{"a", "demo", "image-filter", "app1", strings.Repeat("a", 29)}
	for _, name := range valid {
		if err := ValidateAppName(name); err != nil {
			t.Errorf("%s: %s", name, err)
		}
	}
	invalid := []string{"", "-demo", "demo-", "Demo", "demo_app", "demo app", strings.Repeat("a", 30)}
	for _, name := range invalid {
		if err := ValidateAppName(name); err == nil {
			t.Errorf("%s: expected error", name)
		}
	}
}

func TestValidateAlbPath(t *testing.T) {
	for _, p := range []string{"/", "/*", "/image-filter/*", "/a/b/c"} {
		if err := ValidateAlbPath(p); err != nil {
			t.Errorf("%s: %s", p, err)
		}
	}
	for _, p := range []string{"", "app/*", "/a b", "/" + strings.Repeat("a", 128)} {
		if err := ValidateAlbPath(p); err == nil {
			t.Errorf("%s: expected error", p)
		}
	}
}

func TestValidateTaskSize(t *testing.T) {
	valid := [][2]string{{"256", "512"}, {"256", "2048"}, {"1024", "2048"}, {"2048", "4096"}, {"2048", "16384"}, {"4096", "30720"}}
	for _, s := range valid {
		if err := ValidateTaskSize(s[0], s[1]); err != nil {
			t.Errorf("%v: %s", s, err)
		}
	}
	invalid := [][2]string{{"", "4096"}, {"2048", "x"}, {"300", "1024"}, {"256", "1536"}, {"2048", "2048"}, {"2048", "4500"}, {"1024", "9216"}}
	for _, s := range invalid {
		if err := ValidateTaskSize(s[0], s[1]); err == nil {
			t.Errorf("%v: expected error", s)
		}
	}
}

func TestValidateRelPath(t *testing.T) {
	for _, p := range []string{"./", ".", "app", "apps/demo", "a/../b"} {
		if err := ValidateRelPath(p); err != nil {
			t.Errorf("%s: %s", p, err)
		}
	}
	for _, p := range []string{"/etc", "..", "../x", "a/../../x"} {
		if err := ValidateRelPath(p); err == nil {
			t.Errorf("%s: expected error", p)
		}
	}
}

func TestDeployRequest_Validate(t *testing.T) {
	req := DeployRequest{
		AppName:       "demo",
		AlbPath:       "/demo/*",
		DockerContext: "./",
		Dockerfile:    "Dockerfile",
		CPU:           "2048",
		Memory:        "4096",
	}
	if err := req.Validate(); err != nil {
		t.Error(err)
	}
	req.AppName = "Demo"
	req.AlbPath = "demo"
	err := req.Validate()
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "app name") || !strings.Contains(err.Error(), "alb path") {
		t.Errorf("expected both failures to be reported, got %s", err)
	}
}
