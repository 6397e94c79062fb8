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

package api

import (
	"context"

	"github.com/SENERGY-Platform/ecs-app-deployer/lib/models"
	srv_info_hdl "github.com/SENERGY-Platform/go-service-base/srv-info-hdl"
)

type serviceItf interface {
	Deploy(ctx context.Context, req models.DeployRequest) (models.DeployOutcome, error)
	Status(ctx context.Context, app string) (models.ServiceStatus, error)
	GetConfig(ctx context.Context) (models.ConfigSnapshot, error)
}

type infoHandler interface {
	ServiceInfo() srv_info_hdl.ServiceInfo
	Version() string
	Name() string
}
