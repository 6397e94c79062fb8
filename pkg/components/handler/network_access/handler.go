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

package network_access

import (
	"context"
	"fmt"
	"log/slog"

	helper_aws_err "github.com/SENERGY-Platform/ecs-app-deployer/pkg/components/helper/aws_err"
	models_error "github.com/SENERGY-Platform/ecs-app-deployer/pkg/models/error"
	"github.com/SENERGY-Platform/ecs-app-deployer/pkg/models/slog_attr"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ec2"
	"github.com/aws/aws-sdk-go-v2/service/ec2/types"
)

const tcp = "tcp"

// Groups holds the security group of the load balancer and the one attached to the tasks.
type Groups struct {
	Alb string
	Ecs string
}

type Handler struct {
	client ec2API
	logger *slog.Logger
}

func New(client ec2API, logger *slog.Logger) *Handler {
	return &Handler{
		client: client,
		logger: logger,
	}
}

// EnsureIngress allows traffic on port from the load balancer group and from the task group itself.
// Existing permissions count as success. Absorbed failures are logged and the next grant is attempted.
func (h *Handler) EnsureIngress(ctx context.Context, groups Groups, port int32) error {
	if groups.Alb == "" || groups.Ecs == "" {
		h.logger.Warn("security groups not configured, skipping ingress grant", slog_attr.SourceGroupKey, groups.Alb, slog_attr.GroupIDKey, groups.Ecs)
		return nil
	}
	for _, source := range []string{groups.Alb, groups.Ecs} {
		if err := h.authorize(ctx, groups.Ecs, source, port); err != nil {
			if !models_error.IsAbsorbed(err) {
				return err
			}
			h.logger.Warn("granting ingress failed", slog_attr.GroupIDKey, groups.Ecs, slog_attr.SourceGroupKey, source, slog_attr.PortKey, port, slog_attr.ErrorKey, err)
		}
	}
	return nil
}

func (h *Handler) authorize(ctx context.Context, target, source string, port int32) error {
	_, err := h.client.AuthorizeSecurityGroupIngress(ctx, &ec2.AuthorizeSecurityGroupIngressInput{
		GroupId: aws.String(target),
		IpPermissions: []types.IpPermission{
			{
				IpProtocol: aws.String(tcp),
				FromPort:   aws.Int32(port),
				ToPort:     aws.Int32(port),
				UserIdGroupPairs: []types.UserIdGroupPair{
					{
						GroupId:     aws.String(source),
						Description: aws.String(fmt.Sprintf("app traffic from %s", source)),
					},
				},
			},
		},
	})
	if err != nil {
		if helper_aws_err.HasCode(err, helper_aws_err.DuplicatePermission) {
			h.logger.Debug("ingress already granted", slog_attr.GroupIDKey, target, slog_attr.SourceGroupKey, source, slog_attr.PortKey, port)
			return nil
		}
		// Rejections by EC2 are grant failures, errors without an API response are not.
		if helper_aws_err.IsAPIError(err) {
			return models_error.New(models_error.NetworkGrantFailure, "authorize ingress", err)
		}
		return models_error.New(models_error.ResourceUpdateFailure, "authorize ingress", err)
	}
	h.logger.Info("ingress granted", slog_attr.GroupIDKey, target, slog_attr.SourceGroupKey, source, slog_attr.PortKey, port)
	return nil
}
