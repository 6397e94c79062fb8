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

type ConfigSnapshot struct {
	Region           string            `json:"region"`
	Cluster          string            `json:"cluster"`
	AccountID        string            `json:"account_id,omitempty"`
	SnapshotPath     string            `json:"snapshot_path"`
	SnapshotKeys     []string          `json:"snapshot_keys"`
	Values           map[string]string `json:"values"`
	Unresolved       map[string]string `json:"unresolved,omitempty"`
	ContainerPort    int32             `json:"container_port"`
	DefaultCPU       string            `json:"default_cpu"`
	DefaultMemory    string            `json:"default_memory"`
	DeletePollPolicy PollPolicy        `json:"delete_poll_policy"`
}

type PollPolicy struct {
	Interval    string `json:"interval"`
	MaxAttempts int    `json:"max_attempts"`
}
