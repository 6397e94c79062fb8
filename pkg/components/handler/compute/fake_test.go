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
	"log/slog"
	"time"

	helper_poll "github.com/SENERGY-Platform/ecs-app-deployer/pkg/components/helper/poll"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/cloudwatchlogs"
	logs_types "github.com/aws/aws-sdk-go-v2/service/cloudwatchlogs/types"
	"github.com/aws/aws-sdk-go-v2/service/ecs"
	"github.com/aws/aws-sdk-go-v2/service/ecs/types"
	"github.com/aws/smithy-go"
)

type ecsFake struct {
	services       map[string]types.Service
	taskDefs       []*ecs.RegisterTaskDefinitionInput
	created        []*ecs.CreateServiceInput
	updated        []*ecs.UpdateServiceInput
	deleted        int
	describeCalls  int
	goneAfter      int
	neverGone      bool
	describeErr    error
	createErr      error
	updateErr      error
	deleteErr      error
	deletedAt      int
	deleteRequests int
}

func newEcsFake() *ecsFake {
	return &ecsFake{services: make(map[string]types.Service)}
}

func (f *ecsFake) RegisterTaskDefinition(_ context.Context, params *ecs.RegisterTaskDefinitionInput, _ ...func(*ecs.Options)) (*ecs.RegisterTaskDefinitionOutput, error) {
	f.taskDefs = append(f.taskDefs, params)
	rev := int32(len(f.taskDefs))
	return &ecs.RegisterTaskDefinitionOutput{
		TaskDefinition: &types.TaskDefinition{
			TaskDefinitionArn: aws.String("arn:task-definition/" + aws.ToString(params.Family)),
			Family:            params.Family,
			Revision:          rev,
		},
	}, nil
}

func (f *ecsFake) DescribeServices(_ context.Context, params *ecs.DescribeServicesInput, _ ...func(*ecs.Options)) (*ecs.DescribeServicesOutput, error) {
	f.describeCalls++
	if f.describeErr != nil {
		return nil, f.describeErr
	}
	name := params.Services[0]
	svc, ok := f.services[name]
	if !ok {
		return &ecs.DescribeServicesOutput{
			Failures: []types.Failure{{Arn: aws.String("arn:service/" + name), Reason: aws.String("MISSING")}},
		}, nil
	}
	if aws.ToString(svc.Status) == StatusDraining && !f.neverGone && f.describeCalls-f.deletedAt >= f.goneAfter {
		svc.Status = aws.String(StatusInactive)
		f.services[name] = svc
	}
	return &ecs.DescribeServicesOutput{Services: []types.Service{svc}}, nil
}

func (f *ecsFake) CreateService(_ context.Context, params *ecs.CreateServiceInput, _ ...func(*ecs.Options)) (*ecs.CreateServiceOutput, error) {
	f.created = append(f.created, params)
	if f.createErr != nil {
		return nil, f.createErr
	}
	svc := types.Service{
		ServiceName:    params.ServiceName,
		Status:         aws.String(StatusActive),
		TaskDefinition: params.TaskDefinition,
		DesiredCount:   aws.ToInt32(params.DesiredCount),
	}
	f.services[aws.ToString(params.ServiceName)] = svc
	return &ecs.CreateServiceOutput{Service: &svc}, nil
}

func (f *ecsFake) UpdateService(_ context.Context, params *ecs.UpdateServiceInput, _ ...func(*ecs.Options)) (*ecs.UpdateServiceOutput, error) {
	f.updated = append(f.updated, params)
	if f.updateErr != nil {
		return nil, f.updateErr
	}
	return &ecs.UpdateServiceOutput{}, nil
}

func (f *ecsFake) DeleteService(_ context.Context, params *ecs.DeleteServiceInput, _ ...func(*ecs.Options)) (*ecs.DeleteServiceOutput, error) {
	f.deleteRequests++
	if f.deleteErr != nil {
		return nil, f.deleteErr
	}
	name := aws.ToString(params.Service)
	svc, ok := f.services[name]
	if !ok {
		return nil, &smithy.GenericAPIError{Code: "ServiceNotFoundException"}
	}
	f.deleted++
	f.deletedAt = f.describeCalls
	svc.Status = aws.String(StatusDraining)
	f.services[name] = svc
	return &ecs.DeleteServiceOutput{Service: &svc}, nil
}

type logsFake struct {
	groups    map[string]bool
	createErr error
	creates   int
}

func (f *logsFake) CreateLogGroup(_ context.Context, params *cloudwatchlogs.CreateLogGroupInput, _ ...func(*cloudwatchlogs.Options)) (*cloudwatchlogs.CreateLogGroupOutput, error) {
	f.creates++
	if f.createErr != nil {
		return nil, f.createErr
	}
	name := aws.ToString(params.LogGroupName)
	if f.groups[name] {
		return nil, &smithy.GenericAPIError{Code: "ResourceAlreadyExistsException"}
	}
	f.groups[name] = true
	return &cloudwatchlogs.CreateLogGroupOutput{}, nil
}

func (f *logsFake) DescribeLogGroups(_ context.Context, params *cloudwatchlogs.DescribeLogGroupsInput, _ ...func(*cloudwatchlogs.Options)) (*cloudwatchlogs.DescribeLogGroupsOutput, error) {
	var out cloudwatchlogs.DescribeLogGroupsOutput
	for name := range f.groups {
		if name == aws.ToString(params.LogGroupNamePrefix) {
			out.LogGroups = append(out.LogGroups, logs_types.LogGroup{LogGroupName: aws.String(name)})
		}
	}
	return &out, nil
}

type clockFake struct {
	waits []time.Duration
}

func (c *clockFake) After(d time.Duration) <-chan time.Time {
	c.waits = append(c.waits, d)
	ch := make(chan time.Time, 1)
	ch <- time.Time{}
	return ch
}

func testConfig() Config {
	return Config{
		DesiredCount:         1,
		GracePeriod:          300 * time.Second,
		EnableExecuteCommand: true,
		DeletePoll: helper_poll.Policy{
			Interval:    10 * time.Second,
			MaxAttempts: 30,
		},
		BindAddress: "0.0.0.0",
		EnvNames: EnvNames{
			BindAddress: "GRADIO_SERVER_NAME",
			Port:        "GRADIO_SERVER_PORT",
			RootPath:    "GRADIO_ROOT_PATH",
		},
		LogStreamPrefix: "ecs",
	}
}

func newTestHandler(e *ecsFake, l *logsFake, c *clockFake) *Handler {
	if l == nil {
		l = &logsFake{groups: make(map[string]bool)}
	}
	return New(e, l, c, testConfig(), slog.Default())
}

func activeService(name string) types.Service {
	return types.Service{
		ServiceName: aws.String(name),
		Status:      aws.String(StatusActive),
	}
}
