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

package configuration

import (
	"time"

	handler_compute "github.com/SENERGY-Platform/ecs-app-deployer/pkg/components/handler/compute"
	handler_image_publisher "github.com/SENERGY-Platform/ecs-app-deployer/pkg/components/handler/image_publisher"
	handler_image_registry "github.com/SENERGY-Platform/ecs-app-deployer/pkg/components/handler/image_registry"
	handler_infra_snapshot "github.com/SENERGY-Platform/ecs-app-deployer/pkg/components/handler/infra_snapshot"
	handler_routing "github.com/SENERGY-Platform/ecs-app-deployer/pkg/components/handler/routing"
	handler_source_checkout "github.com/SENERGY-Platform/ecs-app-deployer/pkg/components/handler/source_checkout"
	helper_poll "github.com/SENERGY-Platform/ecs-app-deployer/pkg/components/helper/poll"
	sb_config_hdl "github.com/SENERGY-Platform/go-service-base/config-hdl"
	struct_logger "github.com/SENERGY-Platform/go-service-base/struct-logger"
)

type DefaultsConfig struct {
	CPU    string `json:"cpu" env_var:"DEFAULT_CPU"`
	Memory string `json:"memory" env_var:"DEFAULT_MEMORY"`
}

type Config struct {
	ServerPort          uint                           `json:"server_port" env_var:"SERVER_PORT"`
	HttpAccessLog       bool                           `json:"http_access_log" env_var:"HTTP_ACCESS_LOG"`
	Logger              struct_logger.Config           `json:"logger"`
	InfraSnapshot       handler_infra_snapshot.Config  `json:"infra_snapshot"`
	Routing             handler_routing.Config         `json:"routing"`
	Compute             handler_compute.Config         `json:"compute"`
	ImageRegistry       handler_image_registry.Config  `json:"image_registry"`
	ImagePublisher      handler_image_publisher.Config `json:"image_publisher"`
	SourceCheckout      handler_source_checkout.Config `json:"source_checkout"`
	BuildContextBaseDir string                         `json:"build_context_base_dir" env_var:"BUILD_CONTEXT_BASE_DIR"`
	Defaults            DefaultsConfig                 `json:"defaults"`
}

func New(path string) (*Config, error) {
	cfg := Config{
		ServerPort: 8000,
		Logger: struct_logger.Config{
			Handler:    struct_logger.TextHandlerSelector,
			Level:      struct_logger.LevelInfo,
			TimeFormat: time.RFC3339Nano,
			TimeUtc:    true,
			AddMeta:    false,
		},
		InfraSnapshot: handler_infra_snapshot.Config{
			Path: "terraform/environments/base-infrastructure/terraform.tfstate",
		},
		Routing: handler_routing.Config{
			ContainerPort: 7860,
			HealthCheck: handler_routing.HealthCheck{
				Path:               "/",
				Interval:           time.Second * 30,
				Timeout:            time.Second * 5,
				HealthyThreshold:   2,
				UnhealthyThreshold: 3,
				Matcher:            "200",
			},
			PriorityFloor: 99,
			SecurePort:    443,
		},
		Compute: handler_compute.Config{
			DesiredCount:         1,
			GracePeriod:          time.Second * 300,
			EnableExecuteCommand: true,
			DeletePoll: helper_poll.Policy{
				Interval:    time.Second * 10,
				MaxAttempts: 30,
			},
			BindAddress: "0.0.0.0",
			EnvNames: handler_compute.EnvNames{
				BindAddress: "GRADIO_SERVER_NAME",
				Port:        "GRADIO_SERVER_PORT",
				RootPath:    "GRADIO_ROOT_PATH",
			},
			LogStreamPrefix: "ecs",
		},
		ImageRegistry: handler_image_registry.Config{
			Tag: "latest",
		},
		ImagePublisher: handler_image_publisher.Config{
			Platform: "linux/amd64",
		},
		SourceCheckout: handler_source_checkout.Config{
			WorkDirPath: "/tmp/ecs-app-deployer",
			Timeout:     time.Minute * 5,
			Depth:       1,
		},
		BuildContextBaseDir: ".",
		Defaults: DefaultsConfig{
			CPU:    "2048",
			Memory: "4096",
		},
	}
	err := sb_config_hdl.Load(&cfg, nil, nil, nil, path)
	return &cfg, err
}
