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
	"fmt"
	"path/filepath"

	"github.com/SENERGY-Platform/ecs-app-deployer/lib/models"
	handler_compute "github.com/SENERGY-Platform/ecs-app-deployer/pkg/components/handler/compute"
	handler_image_publisher "github.com/SENERGY-Platform/ecs-app-deployer/pkg/components/handler/image_publisher"
	handler_network_access "github.com/SENERGY-Platform/ecs-app-deployer/pkg/components/handler/network_access"
	helper_naming "github.com/SENERGY-Platform/ecs-app-deployer/pkg/components/helper/naming"
	models_error "github.com/SENERGY-Platform/ecs-app-deployer/pkg/models/error"
	"github.com/SENERGY-Platform/ecs-app-deployer/pkg/models/slog_attr"
	"github.com/docker/docker/api/types/registry"
)

const (
	defaultDockerContext = "./"
	defaultDockerfile    = "Dockerfile"
)

// Deploy publishes the application image and reconciles routing and compute resources. Steps run in order and
// the first failure aborts the deployment without rolling back earlier steps.
func (s *Service) Deploy(ctx context.Context, req models.DeployRequest) (models.DeployOutcome, error) {
	ctx = context.WithoutCancel(ctx)
	req = s.withDefaults(req)
	if err := req.Validate(); err != nil {
		return models.DeployOutcome{}, models_error.New(models_error.InvalidInput, "validate request", err)
	}
	logger := s.logger.With(slog_attr.AppNameKey, req.AppName)
	logger.Info("deployment started", slog_attr.PathPatternKey, req.AlbPath, slog_attr.ForceRecreateKey, req.ForceRecreate)
	env, err := s.resolveEnvironment()
	if err != nil {
		return models.DeployOutcome{}, err
	}
	lb, err := s.routingHdl.DescribeLoadBalancer(ctx, env.ListenerArn, env.LoadBalancerArn)
	if err != nil {
		if env.AlbDNSName == "" {
			return models.DeployOutcome{}, err
		}
		logger.Warn("describing load balancer failed, assuming http", slog_attr.ErrorKey, err)
		lb.Protocol = models.ProtocolHTTP
	}
	if env.AlbDNSName == "" {
		env.AlbDNSName = lb.DNSName
	}
	names := helper_naming.Derive(req.AppName)
	port := s.config.ContainerPort

	contextDir, cleanup, err := s.buildContext(ctx, req)
	if err != nil {
		return models.DeployOutcome{}, err
	}
	defer cleanup()
	image, err := s.publish(ctx, names, contextDir, req.Dockerfile)
	if err != nil {
		return models.DeployOutcome{}, err
	}

	err = s.networkHdl.EnsureIngress(ctx, handler_network_access.Groups{
		Alb: env.AlbSecurityGroup,
		Ecs: env.EcsSecurityGroup,
	}, port)
	if err != nil {
		return models.DeployOutcome{}, err
	}

	tgArn, err := s.routingHdl.EnsureTargetGroup(ctx, names.TargetGroup, port, env.VpcID, s.config.HealthCheck)
	if err != nil {
		return models.DeployOutcome{}, err
	}
	rule, err := s.routingHdl.EnsureRule(ctx, env.ListenerArn, req.AlbPath, tgArn)
	if err != nil {
		return models.DeployOutcome{}, err
	}
	logger.Info("routing reconciled", slog_attr.TargetGroupKey, names.TargetGroup, slog_attr.PriorityKey, rule.Priority, slog_attr.RuleActionKey, rule.Action)

	rev, err := s.computeHdl.RegisterRevision(ctx, handler_compute.TaskSpec{
		Family:           names.TaskFamily,
		Container:        names.Container,
		Image:            image,
		CPU:              req.CPU,
		Memory:           req.Memory,
		Port:             port,
		RootPath:         helper_naming.RootPath(req.AlbPath),
		LogGroup:         names.LogGroup,
		Region:           env.Region,
		ExecutionRoleArn: env.ExecutionRoleArn,
		TaskRoleArn:      env.TaskRoleArn,
	})
	if err != nil {
		return models.DeployOutcome{}, err
	}
	deploymentType, err := s.computeHdl.Reconcile(ctx, handler_compute.ServiceSpec{
		Cluster:        env.Cluster,
		Name:           names.Service,
		Family:         names.TaskFamily,
		Container:      names.Container,
		Port:           port,
		TargetGroupArn: tgArn,
		Subnets:        env.Subnets,
		SecurityGroups: env.SecurityGroups,
		PrivateSubnets: env.PrivateSubnets,
		ForceRecreate:  req.ForceRecreate,
	})
	if err != nil {
		return models.DeployOutcome{}, err
	}
	outcome := models.DeployOutcome{
		Status:             models.StatusSuccess,
		Message:            fmt.Sprintf("%s deployed, allow %s until it is reachable", req.AppName, models.EstimatedReadyTime),
		DeployedURL:        helper_naming.URL(lb.Protocol, env.AlbDNSName, req.AlbPath),
		AlbDNSName:         env.AlbDNSName,
		AlbPath:            req.AlbPath,
		AppName:            req.AppName,
		Protocol:           lb.Protocol,
		CPU:                req.CPU,
		Memory:             req.Memory,
		DeploymentType:     deploymentType,
		EstimatedReadyTime: models.EstimatedReadyTime,
	}
	logger.Info("deployment finished", slog_attr.DeploymentTypeKey, deploymentType, slog_attr.RevisionKey, rev.Revision, slog_attr.URLKey, outcome.DeployedURL)
	return outcome, nil
}

func (s *Service) withDefaults(req models.DeployRequest) models.DeployRequest {
	if req.DockerContext == "" {
		req.DockerContext = defaultDockerContext
	}
	if req.Dockerfile == "" {
		req.Dockerfile = defaultDockerfile
	}
	if req.CPU == "" {
		req.CPU = s.config.DefaultCPU
	}
	if req.Memory == "" {
		req.Memory = s.config.DefaultMemory
	}
	return req
}

// buildContext returns the directory to build from and a cleanup function that is always safe to call.
func (s *Service) buildContext(ctx context.Context, req models.DeployRequest) (string, func(), error) {
	if req.GitRepoURL == "" {
		return filepath.Join(s.config.BuildContextBaseDir, req.DockerContext), func() {}, nil
	}
	co, cleanup, err := s.checkoutHdl.Clone(ctx, req.AppName, req.GitRepoURL)
	if err != nil {
		return "", func() {}, err
	}
	return filepath.Join(co.Dir, req.DockerContext), cleanup, nil
}

func (s *Service) publish(ctx context.Context, names helper_naming.Names, contextDir, dockerfile string) (string, error) {
	uri, err := s.registryHdl.EnsureRepository(ctx, names.Repository)
	if err != nil {
		return "", err
	}
	image := s.registryHdl.ImageRef(uri)
	creds, err := s.registryHdl.Credentials(ctx)
	if err != nil {
		return "", err
	}
	err = s.publisher.Publish(ctx, handler_image_publisher.Job{
		ContextDir: contextDir,
		Dockerfile: dockerfile,
		Image:      image,
		Auth: registry.AuthConfig{
			Username:      creds.Username,
			Password:      creds.Password,
			ServerAddress: creds.ServerAddress,
		},
	})
	if err != nil {
		return "", err
	}
	return image, nil
}
