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
	"context"
	"time"

	"github.com/SENERGY-Platform/ecs-app-deployer/lib/models"
	helper_aws_err "github.com/SENERGY-Platform/ecs-app-deployer/pkg/components/helper/aws_err"
	helper_poll "github.com/SENERGY-Platform/ecs-app-deployer/pkg/components/helper/poll"
	helper_set "github.com/SENERGY-Platform/ecs-app-deployer/pkg/components/helper/set"
	models_error "github.com/SENERGY-Platform/ecs-app-deployer/pkg/models/error"
	"github.com/SENERGY-Platform/ecs-app-deployer/pkg/models/slog_attr"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ecs"
	"github.com/aws/aws-sdk-go-v2/service/ecs/types"
)

const (
	StatusActive   = "ACTIVE"
	StatusDraining = "DRAINING"
	StatusInactive = "INACTIVE"
)

const primaryDeployment = "PRIMARY"

type ServiceSpec struct {
	Cluster        string
	Name           string
	Family         string
	Container      string
	Port           int32
	TargetGroupArn string
	Subnets        []string
	SecurityGroups []string
	PrivateSubnets []string
	ForceRecreate  bool
}

// Reconcile points an active service at the latest revision of the family or creates the service.
// Services that are not active, or any service when ForceRecreate is set, are deleted and awaited first.
func (h *Handler) Reconcile(ctx context.Context, spec ServiceSpec) (models.DeploymentType, error) {
	svc, err := h.describeService(ctx, spec.Cluster, spec.Name)
	if err != nil {
		return "", err
	}
	if svc != nil {
		status := aws.ToString(svc.Status)
		if status == StatusActive && !spec.ForceRecreate {
			return models.DeploymentTypeUpdate, h.update(ctx, spec)
		}
		if status != StatusInactive {
			h.logger.Warn("removing service before create", slog_attr.ServiceKey, spec.Name, slog_attr.StatusKey, status, slog_attr.ForceRecreateKey, spec.ForceRecreate)
			if err := h.delete(ctx, spec); err != nil {
				if !models_error.IsAbsorbed(err) {
					return "", err
				}
				h.logger.Warn("deleting service failed", slog_attr.ServiceKey, spec.Name, slog_attr.ErrorKey, err)
			}
			h.awaitGone(ctx, spec)
		}
	}
	return models.DeploymentTypeCreate, h.create(ctx, spec)
}

// Status returns the state of the service without changing it.
func (h *Handler) Status(ctx context.Context, cluster, name string) (models.ServiceStatus, error) {
	status := models.ServiceStatus{AppName: name}
	svc, err := h.describeService(ctx, cluster, name)
	if err != nil {
		return status, err
	}
	if svc == nil {
		return status, nil
	}
	status.Exists = aws.ToString(svc.Status) != StatusInactive
	status.Status = aws.ToString(svc.Status)
	status.DesiredCount = svc.DesiredCount
	status.RunningCount = svc.RunningCount
	status.PendingCount = svc.PendingCount
	status.TaskDef = aws.ToString(svc.TaskDefinition)
	for _, d := range svc.Deployments {
		if aws.ToString(d.Status) == primaryDeployment {
			status.RolloutState = string(d.RolloutState)
			break
		}
	}
	return status, nil
}

// AssignPublicIP is disabled as soon as one subnet is a known private subnet.
func AssignPublicIP(subnets, privateSubnets []string) types.AssignPublicIp {
	if helper_set.New(privateSubnets...).ContainsAny(subnets) {
		return types.AssignPublicIpDisabled
	}
	return types.AssignPublicIpEnabled
}

func (h *Handler) update(ctx context.Context, spec ServiceSpec) error {
	_, err := h.ecsClient.UpdateService(ctx, &ecs.UpdateServiceInput{
		Cluster:              aws.String(spec.Cluster),
		Service:              aws.String(spec.Name),
		TaskDefinition:       aws.String(spec.Family),
		ForceNewDeployment:   true,
		EnableExecuteCommand: aws.Bool(h.config.EnableExecuteCommand),
	})
	if err != nil {
		return models_error.New(models_error.ServiceTransitionFailure, "update service", err)
	}
	h.logger.Info("service updated", slog_attr.ServiceKey, spec.Name, slog_attr.ClusterKey, spec.Cluster)
	return nil
}

func (h *Handler) create(ctx context.Context, spec ServiceSpec) error {
	assignPublicIP := AssignPublicIP(spec.Subnets, spec.PrivateSubnets)
	_, err := h.ecsClient.CreateService(ctx, &ecs.CreateServiceInput{
		Cluster:        aws.String(spec.Cluster),
		ServiceName:    aws.String(spec.Name),
		TaskDefinition: aws.String(spec.Family),
		DesiredCount:   aws.Int32(h.config.DesiredCount),
		LaunchType:     types.LaunchTypeFargate,
		LoadBalancers: []types.LoadBalancer{
			{
				TargetGroupArn: aws.String(spec.TargetGroupArn),
				ContainerName:  aws.String(spec.Container),
				ContainerPort:  aws.Int32(spec.Port),
			},
		},
		NetworkConfiguration: &types.NetworkConfiguration{
			AwsvpcConfiguration: &types.AwsVpcConfiguration{
				Subnets:        spec.Subnets,
				SecurityGroups: spec.SecurityGroups,
				AssignPublicIp: assignPublicIP,
			},
		},
		HealthCheckGracePeriodSeconds: aws.Int32(int32(h.config.GracePeriod / time.Second)),
		EnableExecuteCommand:          h.config.EnableExecuteCommand,
	})
	if err != nil {
		return models_error.New(models_error.ServiceTransitionFailure, "create service", err)
	}
	h.logger.Info("service created", slog_attr.ServiceKey, spec.Name, slog_attr.ClusterKey, spec.Cluster, slog_attr.SubnetsKey, spec.Subnets, slog_attr.AssignPublicIPKey, assignPublicIP)
	return nil
}

func (h *Handler) delete(ctx context.Context, spec ServiceSpec) error {
	_, err := h.ecsClient.DeleteService(ctx, &ecs.DeleteServiceInput{
		Cluster: aws.String(spec.Cluster),
		Service: aws.String(spec.Name),
		Force:   aws.Bool(true),
	})
	if err != nil {
		return models_error.New(models_error.ServiceRemovalFailure, "delete service", err)
	}
	h.logger.Info("service deleted", slog_attr.ServiceKey, spec.Name)
	return nil
}

// awaitGone polls until the service is absent or inactive. Lookup errors do not end polling.
// After the last attempt the caller proceeds regardless.
func (h *Handler) awaitGone(ctx context.Context, spec ServiceSpec) {
	gone, err := helper_poll.Until(ctx, h.clock, h.config.DeletePoll, func(ctx context.Context, attempt int) (bool, error) {
		svc, err := h.describeService(ctx, spec.Cluster, spec.Name)
		if err != nil {
			h.logger.Warn("checking service removal failed", slog_attr.ServiceKey, spec.Name, slog_attr.AttemptKey, attempt, slog_attr.ErrorKey, err)
			return false, nil
		}
		if svc == nil || aws.ToString(svc.Status) == StatusInactive {
			return true, nil
		}
		h.logger.Debug("waiting for service removal", slog_attr.ServiceKey, spec.Name, slog_attr.AttemptKey, attempt, slog_attr.StatusKey, aws.ToString(svc.Status))
		return false, nil
	})
	switch {
	case err != nil:
		h.logger.Warn("waiting for service removal aborted", slog_attr.ServiceKey, spec.Name, slog_attr.ErrorKey, err)
	case gone:
		h.logger.Info("service removed", slog_attr.ServiceKey, spec.Name)
	default:
		h.logger.Warn("service not removed within poll limit, creating anyway", slog_attr.ServiceKey, spec.Name, slog_attr.AttemptKey, h.config.DeletePoll.MaxAttempts)
	}
}

// describeService returns nil if the service does not exist.
func (h *Handler) describeService(ctx context.Context, cluster, name string) (*types.Service, error) {
	out, err := h.ecsClient.DescribeServices(ctx, &ecs.DescribeServicesInput{
		Cluster:  aws.String(cluster),
		Services: []string{name},
	})
	if err != nil {
		if helper_aws_err.HasCode(err, helper_aws_err.ServiceNotFound) {
			return nil, nil
		}
		return nil, models_error.New(models_error.ResourceLookupFailure, "describe services", err)
	}
	for _, svc := range out.Services {
		if aws.ToString(svc.ServiceName) == name {
			return &svc, nil
		}
	}
	return nil, nil
}
