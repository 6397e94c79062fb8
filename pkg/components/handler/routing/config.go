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

package routing

import "time"

type HealthCheck struct {
	Path               string        `json:"path" env_var:"HEALTH_CHECK_PATH"`
	Interval           time.Duration `json:"interval" env_var:"HEALTH_CHECK_INTERVAL"`
	Timeout            time.Duration `json:"timeout" env_var:"HEALTH_CHECK_TIMEOUT"`
	HealthyThreshold   int32         `json:"healthy_threshold" env_var:"HEALTH_CHECK_HEALTHY_THRESHOLD"`
	UnhealthyThreshold int32         `json:"unhealthy_threshold" env_var:"HEALTH_CHECK_UNHEALTHY_THRESHOLD"`
	Matcher            string        `json:"matcher" env_var:"HEALTH_CHECK_MATCHER"`
}

type Config struct {
	ContainerPort int32       `json:"container_port" env_var:"CONTAINER_PORT"`
	HealthCheck   HealthCheck `json:"health_check"`
	PriorityFloor int32       `json:"priority_floor" env_var:"RULE_PRIORITY_FLOOR"`
	SecurePort    int32       `json:"secure_port" env_var:"ALB_SECURE_PORT"`
}
