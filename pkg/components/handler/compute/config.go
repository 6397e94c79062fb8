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

package compute

import (
	"time"

	helper_poll "github.com/SENERGY-Platform/ecs-app-deployer/pkg/components/helper/poll"
)

type EnvNames struct {
	BindAddress string `json:"bind_address" env_var:"APP_ENV_BIND_ADDRESS_NAME"`
	Port        string `json:"port" env_var:"APP_ENV_PORT_NAME"`
	RootPath    string `json:"root_path" env_var:"APP_ENV_ROOT_PATH_NAME"`
}

type Config struct {
	DesiredCount         int32              `json:"desired_count" env_var:"SERVICE_DESIRED_COUNT"`
	GracePeriod          time.Duration      `json:"grace_period" env_var:"SERVICE_GRACE_PERIOD"`
	EnableExecuteCommand bool               `json:"enable_execute_command" env_var:"SERVICE_ENABLE_EXECUTE_COMMAND"`
	DeletePoll           helper_poll.Policy `json:"delete_poll"`
	BindAddress          string             `json:"bind_address" env_var:"APP_BIND_ADDRESS"`
	EnvNames             EnvNames           `json:"env_names"`
	LogStreamPrefix      string             `json:"log_stream_prefix" env_var:"LOG_STREAM_PREFIX"`
}
