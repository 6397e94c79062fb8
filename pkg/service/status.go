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

package service

import (
	"context"

	"github.com/SENERGY-Platform/ecs-app-deployer/lib/models"
	handler_infra_snapshot "github.com/SENERGY-Platform/ecs-app-deployer/pkg/components/handler/infra_snapshot"
	helper_naming "github.com/SENERGY-Platform/ecs-app-deployer/pkg/components/helper/naming"
	models_error "github.com/SENERGY-Platform/ecs-app-deployer/pkg/models/error"
)

// Status reports the service state and target health of an application. It does not wait for anything.
func (s *Service) Status(ctx context.Context, app string) (models.ServiceStatus, error) {
	if err := models.ValidateAppName(app); err != nil {
		return models.ServiceStatus{}, models_error.New(models_error.InvalidInput, "validate app name", err)
	}
	cluster, err := s.resolver.Resolve(handler_infra_snapshot.Cluster)
	if err != nil {
		return models.ServiceStatus{}, err
	}
	names := helper_naming.Derive(app)
	status, err := s.computeHdl.Status(ctx, cluster, names.Service)
	if err != nil {
		return models.ServiceStatus{}, err
	}
	if !status.Exists {
		return models.ServiceStatus{}, models_error.Newf(models_error.NotFound, "", "no deployment for %s", app)
	}
	status.AppName = app
	if status.Targets, err = s.routingHdl.TargetHealth(ctx, names.TargetGroup); err != nil {
		return models.ServiceStatus{}, err
	}
	if status.Targets == nil {
		status.Targets = []models.TargetHealth{}
	}
	return status, nil
}
