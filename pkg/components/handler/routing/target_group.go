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

import (
	"context"
	"time"

	"github.com/SENERGY-Platform/ecs-app-deployer/lib/models"
	helper_aws_err "github.com/SENERGY-Platform/ecs-app-deployer/pkg/components/helper/aws_err"
	models_error "github.com/SENERGY-Platform/ecs-app-deployer/pkg/models/error"
	"github.com/SENERGY-Platform/ecs-app-deployer/pkg/models/slog_attr"
	"github.com/aws/aws-sdk-go-v2/aws"
	elbv2 "github.com/aws/aws-sdk-go-v2/service/elasticloadbalancingv2"
	"github.com/aws/aws-sdk-go-v2/service/elasticloadbalancingv2/types"
)

// EnsureTargetGroup returns the ARN of the target group called name. A missing group is created,
// an existing one gets the given health check applied.
func (h *Handler) EnsureTargetGroup(ctx context.Context, name string, port int32, vpcID string, hc HealthCheck) (string, error) {
	tg, ok, err := h.lookupTargetGroup(ctx, name)
	if err != nil {
		return "", err
	}
	if !ok {
		arn, err := h.createTargetGroup(ctx, name, port, vpcID, hc)
		if err == nil || !helper_aws_err.HasCode(err, helper_aws_err.DuplicateTargetGroupName) {
			return arn, err
		}
		h.logger.Warn("target group created concurrently", slog_attr.TargetGroupKey, name)
		if tg, ok, err = h.lookupTargetGroup(ctx, name); err != nil {
			return "", err
		}
		if !ok {
			return "", models_error.Newf(models_error.ResourceLookupFailure, "ensure target group", "target group %s not found", name)
		}
	}
	arn := aws.ToString(tg.TargetGroupArn)
	_, err = h.client.ModifyTargetGroup(ctx, &elbv2.ModifyTargetGroupInput{
		TargetGroupArn:             aws.String(arn),
		HealthCheckEnabled:         aws.Bool(true),
		HealthCheckPath:            aws.String(hc.Path),
		HealthCheckIntervalSeconds: aws.Int32(seconds(hc.Interval)),
		HealthCheckTimeoutSeconds:  aws.Int32(seconds(hc.Timeout)),
		HealthyThresholdCount:      aws.Int32(hc.HealthyThreshold),
		UnhealthyThresholdCount:    aws.Int32(hc.UnhealthyThreshold),
		Matcher:                    &types.Matcher{HttpCode: aws.String(hc.Matcher)},
	})
	if err != nil {
		return "", models_error.New(models_error.ResourceUpdateFailure, "modify target group", err)
	}
	h.logger.Info("target group health check updated", slog_attr.TargetGroupKey, name, slog_attr.ArnKey, arn)
	return arn, nil
}

// TargetHealth lists the registered targets of the target group called name. A missing group yields no targets.
func (h *Handler) TargetHealth(ctx context.Context, name string) ([]models.TargetHealth, error) {
	tg, ok, err := h.lookupTargetGroup(ctx, name)
	if err != nil || !ok {
		return nil, err
	}
	out, err := h.client.DescribeTargetHealth(ctx, &elbv2.DescribeTargetHealthInput{
		TargetGroupArn: tg.TargetGroupArn,
	})
	if err != nil {
		return nil, models_error.New(models_error.ResourceLookupFailure, "describe target health", err)
	}
	targets := make([]models.TargetHealth, 0, len(out.TargetHealthDescriptions))
	for _, d := range out.TargetHealthDescriptions {
		var th models.TargetHealth
		if d.Target != nil {
			th.ID = aws.ToString(d.Target.Id)
			th.Port = aws.ToInt32(d.Target.Port)
		}
		if d.TargetHealth != nil {
			th.State = string(d.TargetHealth.State)
			th.Reason = string(d.TargetHealth.Reason)
		}
		targets = append(targets, th)
	}
	return targets, nil
}

func (h *Handler) lookupTargetGroup(ctx context.Context, name string) (types.TargetGroup, bool, error) {
	out, err := h.client.DescribeTargetGroups(ctx, &elbv2.DescribeTargetGroupsInput{
		Names: []string{name},
	})
	if err != nil {
		if helper_aws_err.HasCode(err, helper_aws_err.TargetGroupNotFound) {
			return types.TargetGroup{}, false, nil
		}
		return types.TargetGroup{}, false, models_error.New(models_error.ResourceLookupFailure, "describe target groups", err)
	}
	for _, tg := range out.TargetGroups {
		if aws.ToString(tg.TargetGroupName) == name {
			return tg, true, nil
		}
	}
	return types.TargetGroup{}, false, nil
}

func (h *Handler) createTargetGroup(ctx context.Context, name string, port int32, vpcID string, hc HealthCheck) (string, error) {
	out, err := h.client.CreateTargetGroup(ctx, &elbv2.CreateTargetGroupInput{
		Name:                       aws.String(name),
		Protocol:                   types.ProtocolEnumHttp,
		Port:                       aws.Int32(port),
		VpcId:                      aws.String(vpcID),
		TargetType:                 types.TargetTypeEnumIp,
		HealthCheckEnabled:         aws.Bool(true),
		HealthCheckProtocol:        types.ProtocolEnumHttp,
		HealthCheckPath:            aws.String(hc.Path),
		HealthCheckIntervalSeconds: aws.Int32(seconds(hc.Interval)),
		HealthCheckTimeoutSeconds:  aws.Int32(seconds(hc.Timeout)),
		HealthyThresholdCount:      aws.Int32(hc.HealthyThreshold),
		UnhealthyThresholdCount:    aws.Int32(hc.UnhealthyThreshold),
		Matcher:                    &types.Matcher{HttpCode: aws.String(hc.Matcher)},
	})
	if err != nil {
		if helper_aws_err.HasCode(err, helper_aws_err.DuplicateTargetGroupName) {
			return "", err
		}
		return "", models_error.New(models_error.ResourceUpdateFailure, "create target group", err)
	}
	if len(out.TargetGroups) == 0 {
		return "", models_error.Newf(models_error.ResourceUpdateFailure, "create target group", "no target group returned for %s", name)
	}
	arn := aws.ToString(out.TargetGroups[0].TargetGroupArn)
	h.logger.Info("target group created", slog_attr.TargetGroupKey, name, slog_attr.ArnKey, arn, slog_attr.PortKey, port)
	return arn, nil
}

func seconds(d time.Duration) int32 {
	return int32(d / time.Second)
}
