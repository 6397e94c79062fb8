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
	handler_infra_snapshot "github.com/SENERGY-Platform/ecs-app-deployer/pkg/components/handler/infra_snapshot"
	models_error "github.com/SENERGY-Platform/ecs-app-deployer/pkg/models/error"
)

// environment holds the infrastructure facts a deployment needs.
type environment struct {
	Region           string
	Cluster          string
	VpcID            string
	ListenerArn      string
	LoadBalancerArn  string
	AlbDNSName       string
	Subnets          []string
	PrivateSubnets   []string
	SecurityGroups   []string
	EcsSecurityGroup string
	AlbSecurityGroup string
	ExecutionRoleArn string
	TaskRoleArn      string
}

// resolveEnvironment fails on the first required setting that cannot be resolved.
func (s *Service) resolveEnvironment() (environment, error) {
	var env environment
	var err error
	required := []struct {
		dst     *string
		setting handler_infra_snapshot.Setting
	}{
		{&env.Region, handler_infra_snapshot.Region},
		{&env.Cluster, handler_infra_snapshot.Cluster},
		{&env.VpcID, handler_infra_snapshot.VpcID},
		{&env.ListenerArn, handler_infra_snapshot.ListenerArn},
		{&env.LoadBalancerArn, handler_infra_snapshot.LoadBalancerArn},
		{&env.ExecutionRoleArn, handler_infra_snapshot.ExecutionRoleArn},
		{&env.TaskRoleArn, handler_infra_snapshot.TaskRoleArn},
	}
	for _, r := range required {
		if *r.dst, err = s.resolver.Resolve(r.setting); err != nil {
			return environment{}, err
		}
	}
	subnets, err := s.resolver.FirstOf(handler_infra_snapshot.Subnets, handler_infra_snapshot.PublicSubnets, handler_infra_snapshot.PrivateSubnets)
	if err != nil {
		return environment{}, err
	}
	env.Subnets = handler_infra_snapshot.SplitList(subnets)
	if env.SecurityGroups, err = s.resolver.ResolveList(handler_infra_snapshot.SecurityGroups); err != nil {
		return environment{}, err
	}
	if env.PrivateSubnets, err = s.optionalList(handler_infra_snapshot.PrivateSubnets); err != nil {
		return environment{}, err
	}
	if env.AlbDNSName, err = s.optional(handler_infra_snapshot.AlbDNSName); err != nil {
		return environment{}, err
	}
	if env.EcsSecurityGroup, err = s.optional(handler_infra_snapshot.EcsSecurityGroupID); err != nil {
		return environment{}, err
	}
	if env.AlbSecurityGroup, err = s.optional(handler_infra_snapshot.AlbSecurityGroupID); err != nil {
		return environment{}, err
	}
	return env, nil
}

func (s *Service) optional(setting handler_infra_snapshot.Setting) (string, error) {
	v, err := s.resolver.Resolve(setting)
	if err != nil && !models_error.IsKind(err, models_error.ConfigurationMissing) {
		return "", err
	}
	return v, nil
}

func (s *Service) optionalList(setting handler_infra_snapshot.Setting) ([]string, error) {
	v, err := s.optional(setting)
	if err != nil {
		return nil, err
	}
	return handler_infra_snapshot.SplitList(v), nil
}
