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
	"strconv"

	models_error "github.com/SENERGY-Platform/ecs-app-deployer/pkg/models/error"
	"github.com/SENERGY-Platform/ecs-app-deployer/pkg/models/slog_attr"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ecs"
	"github.com/aws/aws-sdk-go-v2/service/ecs/types"
)

const (
	awslogsGroup        = "awslogs-group"
	awslogsRegion       = "awslogs-region"
	awslogsStreamPrefix = "awslogs-stream-prefix"
)

type TaskSpec struct {
	Family           string
	Container        string
	Image            string
	CPU              string
	Memory           string
	Port             int32
	RootPath         string
	LogGroup         string
	Region           string
	ExecutionRoleArn string
	TaskRoleArn      string
}

type Revision struct {
	Arn      string
	Family   string
	Revision int32
}

// RegisterRevision ensures the log group and registers a new revision of the task family.
func (h *Handler) RegisterRevision(ctx context.Context, spec TaskSpec) (Revision, error) {
	if err := h.EnsureLogGroup(ctx, spec.LogGroup); err != nil {
		return Revision{}, err
	}
	out, err := h.ecsClient.RegisterTaskDefinition(ctx, &ecs.RegisterTaskDefinitionInput{
		Family:                  aws.String(spec.Family),
		NetworkMode:             types.NetworkModeAwsvpc,
		RequiresCompatibilities: []types.Compatibility{types.CompatibilityFargate},
		Cpu:                     aws.String(spec.CPU),
		Memory:                  aws.String(spec.Memory),
		ExecutionRoleArn:        aws.String(spec.ExecutionRoleArn),
		TaskRoleArn:             aws.String(spec.TaskRoleArn),
		ContainerDefinitions: []types.ContainerDefinition{
			{
				Name:      aws.String(spec.Container),
				Image:     aws.String(spec.Image),
				Essential: aws.Bool(true),
				PortMappings: []types.PortMapping{
					{
						ContainerPort: aws.Int32(spec.Port),
						Protocol:      types.TransportProtocolTcp,
					},
				},
				Environment: h.environment(spec),
				LogConfiguration: &types.LogConfiguration{
					LogDriver: types.LogDriverAwslogs,
					Options: map[string]string{
						awslogsGroup:        spec.LogGroup,
						awslogsRegion:       spec.Region,
						awslogsStreamPrefix: h.config.LogStreamPrefix,
					},
				},
			},
		},
	})
	if err != nil {
		return Revision{}, models_error.New(models_error.ServiceTransitionFailure, "register task definition", err)
	}
	rev := Revision{Family: spec.Family}
	if td := out.TaskDefinition; td != nil {
		rev.Arn = aws.ToString(td.TaskDefinitionArn)
		rev.Revision = td.Revision
	}
	h.logger.Info("task definition registered", slog_attr.ArnKey, rev.Arn, slog_attr.RevisionKey, rev.Revision, slog_attr.ImageKey, spec.Image)
	return rev, nil
}

func (h *Handler) environment(spec TaskSpec) []types.KeyValuePair {
	return []types.KeyValuePair{
		{Name: aws.String(h.config.EnvNames.BindAddress), Value: aws.String(h.config.BindAddress)},
		{Name: aws.String(h.config.EnvNames.Port), Value: aws.String(strconv.FormatInt(int64(spec.Port), 10))},
		{Name: aws.String(h.config.EnvNames.RootPath), Value: aws.String(spec.RootPath)},
	}
}
