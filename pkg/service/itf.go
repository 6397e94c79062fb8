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
	handler_compute "github.com/SENERGY-Platform/ecs-app-deployer/pkg/components/handler/compute"
	handler_image_publisher "github.com/SENERGY-Platform/ecs-app-deployer/pkg/components/handler/image_publisher"
	handler_image_registry "github.com/SENERGY-Platform/ecs-app-deployer/pkg/components/handler/image_registry"
	handler_network_access "github.com/SENERGY-Platform/ecs-app-deployer/pkg/components/handler/network_access"
	handler_routing "github.com/SENERGY-Platform/ecs-app-deployer/pkg/components/handler/routing"
	handler_source_checkout "github.com/SENERGY-Platform/ecs-app-deployer/pkg/components/handler/source_checkout"
)

type NetworkAccessHandler interface {
	EnsureIngress(ctx context.Context, groups handler_network_access.Groups, port int32) error
}

type RoutingHandler interface {
	EnsureTargetGroup(ctx context.Context, name string, port int32, vpcID string, hc handler_routing.HealthCheck) (string, error)
	EnsureRule(ctx context.Context, listenerArn, pattern, tgArn string) (handler_routing.Rule, error)
	DescribeLoadBalancer(ctx context.Context, listenerArn, lbArn string) (handler_routing.LoadBalancer, error)
	TargetHealth(ctx context.Context, name string) ([]models.TargetHealth, error)
}

type ComputeHandler interface {
	RegisterRevision(ctx context.Context, spec handler_compute.TaskSpec) (handler_compute.Revision, error)
	Reconcile(ctx context.Context, spec handler_compute.ServiceSpec) (models.DeploymentType, error)
	Status(ctx context.Context, cluster, name string) (models.ServiceStatus, error)
}

type ImageRegistryHandler interface {
	EnsureRepository(ctx context.Context, name string) (string, error)
	ImageRef(uri string) string
	Credentials(ctx context.Context) (handler_image_registry.Credentials, error)
}

type ImagePublisher interface {
	Publish(ctx context.Context, job handler_image_publisher.Job) error
}

type SourceCheckoutHandler interface {
	Clone(ctx context.Context, app, url string) (handler_source_checkout.Checkout, func(), error)
}

type AccountHandler interface {
	AccountID(ctx context.Context) (string, error)
}
