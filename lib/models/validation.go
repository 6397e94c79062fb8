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
	"errors"
	"fmt"
	"path"
	"regexp"
	"slices"
	"strconv"
	"strings"
)

// Derived resource names must fit the 32 character target group limit including the "-tg" suffix.
var appNameRegex = regexp.MustCompile(`^[a-z0-9](?:[a-z0-9-]{0,27}[a-z0-9])?$`)

// fargateSizes maps task CPU units to the allowed memory range and step (MiB).
var fargateSizes = map[int][3]int{
	256:   {512, 2048, 0},
	512:   {1024, 4096, 1024},
	1024:  {2048, 8192, 1024},
	2048:  {4096, 16384, 1024},
	4096:  {8192, 30720, 1024},
	8192:  {16384, 61440, 4096},
	16384: {32768, 122880, 8192},
}

func ValidateAppName(name string) error {
	if !appNameRegex.MatchString(name) {
		return fmt.Errorf("invalid app name '%s': lowercase alphanumeric and '-', at most 29 characters", name)
	}
	return nil
}

func ValidateAlbPath(pattern string) error {
	if !strings.HasPrefix(pattern, "/") {
		return fmt.Errorf("invalid alb path '%s': must start with '/'", pattern)
	}
	if len(pattern) > 128 {
		return fmt.Errorf("invalid alb path '%s': longer than 128 characters", pattern)
	}
	if strings.ContainsAny(pattern, " \t\n") {
		return fmt.Errorf("invalid alb path '%s': contains whitespace", pattern)
	}
	return nil
}

func ValidateTaskSize(cpu, memory string) error {
	c, err := strconv.Atoi(cpu)
	if err != nil {
		return fmt.Errorf("invalid cpu '%s'", cpu)
	}
	m, err := strconv.Atoi(memory)
	if err != nil {
		return fmt.Errorf("invalid memory '%s'", memory)
	}
	r, ok := fargateSizes[c]
	if !ok {
		return fmt.Errorf("unsupported cpu '%s'", cpu)
	}
	if m < r[0] || m > r[1] {
		return fmt.Errorf("memory %d out of range %d-%d for cpu %d", m, r[0], r[1], c)
	}
	if r[2] > 0 && (m-r[0])%r[2] != 0 {
		return fmt.Errorf("memory %d must be a multiple of %d for cpu %d", m, r[2], c)
	}
	if r[2] == 0 && !slices.Contains([]int{512, 1024, 2048}, m) {
		return fmt.Errorf("memory %d not supported for cpu %d", m, c)
	}
	return nil
}

func ValidateRelPath(p string) error {
	if path.IsAbs(p) {
		return fmt.Errorf("path '%s' must be relative", p)
	}
	if c := path.Clean(p); c == ".." || strings.HasPrefix(c, "../") {
		return fmt.Errorf("path '%s' escapes base directory", p)
	}
	return nil
}

// Validate checks a request after defaults have been applied.
func (r DeployRequest) Validate() error {
	var errs []error
	if err := ValidateAppName(r.AppName); err != nil {
		errs = append(errs, err)
	}
	if err := ValidateAlbPath(r.AlbPath); err != nil {
		errs = append(errs, err)
	}
	if err := ValidateTaskSize(r.CPU, r.Memory); err != nil {
		errs = append(errs, err)
	}
	if err := ValidateRelPath(r.DockerContext); err != nil {
		errs = append(errs, err)
	}
	if err := ValidateRelPath(r.Dockerfile); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}
