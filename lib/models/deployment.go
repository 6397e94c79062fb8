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

type DeploymentType = string

// DeployRequest is the body of a deploy call. CPU and Memory are ECS task size strings (1024 = 1 vCPU, memory in MiB).
type DeployRequest struct {
	AppName       string `json:"app_name"`
	AlbPath       string `json:"alb_path"`
	GitRepoURL    string `json:"git_repo_url,omitempty"`
	DockerContext string `json:"docker_context,omitempty"`
	Dockerfile    string `json:"dockerfile,omitempty"`
	CPU           string `json:"cpu,omitempty"`
	Memory        string `json:"memory,omitempty"`
	ForceRecreate bool   `json:"force_recreate"`
}

type DeployOutcome struct {
	Status             string         `json:"status"`
	Message            string         `json:"message"`
	DeployedURL        string         `json:"deployed_url"`
	AlbDNSName         string         `json:"alb_dns_name"`
	AlbPath            string         `json:"alb_path"`
	AppName            string         `json:"app_name"`
	Protocol           string         `json:"protocol"`
	CPU                string         `json:"cpu"`
	Memory             string         `json:"memory"`
	DeploymentType     DeploymentType `json:"deployment_type"`
	EstimatedReadyTime string         `json:"estimated_ready_time"`
}

type ServiceStatus struct {
	AppName      string         `json:"app_name"`
	Exists       bool           `json:"exists"`
	Status       string         `json:"status,omitempty"`
	DesiredCount int32          `json:"desired_count"`
	RunningCount int32          `json:"running_count"`
	PendingCount int32          `json:"pending_count"`
	RolloutState string         `json:"rollout_state,omitempty"`
	TaskDef      string         `json:"task_definition,omitempty"`
	Targets      []TargetHealth `json:"targets"`
}

type TargetHealth struct {
	ID     string `json:"id"`
	Port   int32  `json:"port"`
	State  string `json:"state"`
	Reason string `json:"reason,omitempty"`
}
