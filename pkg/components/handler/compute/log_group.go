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

	helper_aws_err "github.com/SENERGY-Platform/ecs-app-deployer/pkg/components/helper/aws_err"
	models_error "github.com/SENERGY-Platform/ecs-app-deployer/pkg/models/error"
	"github.com/SENERGY-Platform/ecs-app-deployer/pkg/models/slog_attr"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/cloudwatchlogs"
)

// EnsureLogGroup creates the log group if needed and fails if it is still missing afterwards.
func (h *Handler) EnsureLogGroup(ctx context.Context, name string) error {
	_, err := h.logsClient.CreateLogGroup(ctx, &cloudwatchlogs.CreateLogGroupInput{
		LogGroupName: aws.String(name),
	})
	switch {
	case err == nil:
		h.logger.Info("log group created", slog_attr.LogGroupKey, name)
	case helper_aws_err.HasCode(err, helper_aws_err.ResourceAlreadyExists):
		h.logger.Debug("log group exists", slog_attr.LogGroupKey, name)
		return nil
	default:
		h.logger.Warn("creating log group failed", slog_attr.LogGroupKey, name, slog_attr.ErrorKey, err)
	}
	out, err := h.logsClient.DescribeLogGroups(ctx, &cloudwatchlogs.DescribeLogGroupsInput{
		LogGroupNamePrefix: aws.String(name),
	})
	if err != nil {
		return models_error.New(models_error.ResourceLookupFailure, "describe log groups", err)
	}
	for _, g := range out.LogGroups {
		if aws.ToString(g.LogGroupName) == name {
			return nil
		}
	}
	return models_error.Newf(models_error.ResourceLookupFailure, "ensure log group", "log group %s does not exist after create attempt", name)
}
