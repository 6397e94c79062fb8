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

type recorder struct {
	calls []string
	ctxs  []context.Context
}

func (r *recorder) add(ctx context.Context, name string) {
	r.calls = append(r.calls, name)
	r.ctxs = append(r.ctxs, ctx)
}

type networkMock struct {
	rec    *recorder
	groups handler_network_access.Groups
	port   int32
	err    error
}

func (m *networkMock) EnsureIngress(ctx context.Context, groups handler_network_access.Groups, port int32) error {
	m.rec.add(ctx, "EnsureIngress")
	m.groups = groups
	m.port = port
	return m.err
}

type routingMock struct {
	rec       *recorder
	lb        handler_routing.LoadBalancer
	lbErr     error
	tgErr     error
	ruleErr   error
	tgName    string
	vpcID     string
	hc        handler_routing.HealthCheck
	pattern   string
	ruleTgArn string
	targets   []models.TargetHealth
}

func (m *routingMock) EnsureTargetGroup(ctx context.Context, name string, _ int32, vpcID string, hc handler_routing.HealthCheck) (string, error) {
	m.rec.add(ctx, "EnsureTargetGroup")
	m.tgName = name
	m.vpcID = vpcID
	m.hc = hc
	if m.tgErr != nil {
		return "", m.tgErr
	}
	return "arn:tg/" + name, nil
}

func (m *routingMock) EnsureRule(ctx context.Context, _ string, pattern, tgArn string) (handler_routing.Rule, error) {
	m.rec.add(ctx, "EnsureRule")
	m.pattern = pattern
	m.ruleTgArn = tgArn
	if m.ruleErr != nil {
		return handler_routing.Rule{}, m.ruleErr
	}
	return handler_routing.Rule{Arn: "arn:rule/1", Priority: "100", Action: handler_routing.RuleCreated}, nil
}

func (m *routingMock) DescribeLoadBalancer(ctx context.Context, _, _ string) (handler_routing.LoadBalancer, error) {
	m.rec.add(ctx, "DescribeLoadBalancer")
	if m.lbErr != nil {
		return handler_routing.LoadBalancer{}, m.lbErr
	}
	return m.lb, nil
}

func (m *routingMock) TargetHealth(ctx context.Context, _ string) ([]models.TargetHealth, error) {
	m.rec.add(ctx, "TargetHealth")
	return m.targets, nil
}

type computeMock struct {
	rec            *recorder
	deploymentType models.DeploymentType
	reconcileErr   error
	taskSpec       handler_compute.TaskSpec
	serviceSpec    handler_compute.ServiceSpec
	status         models.ServiceStatus
}

func (m *computeMock) RegisterRevision(ctx context.Context, spec handler_compute.TaskSpec) (handler_compute.Revision, error) {
	m.rec.add(ctx, "RegisterRevision")
	m.taskSpec = spec
	return handler_compute.Revision{Family: spec.Family, Revision: 1}, nil
}

func (m *computeMock) Reconcile(ctx context.Context, spec handler_compute.ServiceSpec) (models.DeploymentType, error) {
	m.rec.add(ctx, "Reconcile")
	m.serviceSpec = spec
	if m.reconcileErr != nil {
		return "", m.reconcileErr
	}
	return m.deploymentType, nil
}

func (m *computeMock) Status(ctx context.Context, _, _ string) (models.ServiceStatus, error) {
	m.rec.add(ctx, "Status")
	return m.status, nil
}

type registryMock struct {
	rec *recorder
}

func (m *registryMock) EnsureRepository(ctx context.Context, name string) (string, error) {
	m.rec.add(ctx, "EnsureRepository")
	return "123456789012.dkr.ecr.ap-northeast-1.amazonaws.com/" + name, nil
}

func (m *registryMock) ImageRef(uri string) string {
	return uri + ":latest"
}

func (m *registryMock) Credentials(ctx context.Context) (handler_image_registry.Credentials, error) {
	m.rec.add(ctx, "Credentials")
	return handler_image_registry.Credentials{Username: "AWS", Password: "secret", ServerAddress: "https://registry"}, nil
}

type publisherMock struct {
	rec *recorder
	job handler_image_publisher.Job
	err error
}

func (m *publisherMock) Publish(ctx context.Context, job handler_image_publisher.Job) error {
	m.rec.add(ctx, "Publish")
	m.job = job
	return m.err
}

type checkoutMock struct {
	rec       *recorder
	cleanedUp int
	url       string
	err       error
}

func (m *checkoutMock) Clone(ctx context.Context, app, url string) (handler_source_checkout.Checkout, func(), error) {
	m.rec.add(ctx, "Clone")
	m.url = url
	if m.err != nil {
		return handler_source_checkout.Checkout{}, func() {}, m.err
	}
	return handler_source_checkout.Checkout{Dir: "/tmp/checkouts/" + app}, func() { m.cleanedUp++ }, nil
}

type accountMock struct {
	err error
}

func (m *accountMock) AccountID(_ context.Context) (string, error) {
	if m.err != nil {
		return "", m.err
	}
	return "123456789012", nil
}
