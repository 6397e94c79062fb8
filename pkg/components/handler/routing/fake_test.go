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
	"fmt"
	"log/slog"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	elbv2 "github.com/aws/aws-sdk-go-v2/service/elasticloadbalancingv2"
	"github.com/aws/aws-sdk-go-v2/service/elasticloadbalancingv2/types"
	"github.com/aws/smithy-go"
)

type elbFake struct {
	targetGroups  map[string]types.TargetGroup
	targetHealth  []types.TargetHealthDescription
	rules         []types.Rule
	listeners     []types.Listener
	loadBalancers []types.LoadBalancer
	rulePageSize  int
	createTgErr   error
	createTgCalls int
	modifyTgCalls int
	modifyRules   int
	createRules   int
	describeErr   error
}

func newElbFake() *elbFake {
	return &elbFake{targetGroups: make(map[string]types.TargetGroup)}
}

func (f *elbFake) DescribeTargetGroups(_ context.Context, params *elbv2.DescribeTargetGroupsInput, _ ...func(*elbv2.Options)) (*elbv2.DescribeTargetGroupsOutput, error) {
	if f.describeErr != nil {
		return nil, f.describeErr
	}
	var out elbv2.DescribeTargetGroupsOutput
	for _, name := range params.Names {
		tg, ok := f.targetGroups[name]
		if !ok {
			return nil, &smithy.GenericAPIError{Code: "TargetGroupNotFound", Message: "not found"}
		}
		out.TargetGroups = append(out.TargetGroups, tg)
	}
	return &out, nil
}

func (f *elbFake) CreateTargetGroup(_ context.Context, params *elbv2.CreateTargetGroupInput, _ ...func(*elbv2.Options)) (*elbv2.CreateTargetGroupOutput, error) {
	f.createTgCalls++
	if f.createTgErr != nil {
		return nil, f.createTgErr
	}
	name := aws.ToString(params.Name)
	if _, ok := f.targetGroups[name]; ok {
		return nil, &smithy.GenericAPIError{Code: "DuplicateTargetGroupName"}
	}
	tg := types.TargetGroup{
		TargetGroupArn:             aws.String("arn:tg/" + name),
		TargetGroupName:            params.Name,
		Port:                       params.Port,
		VpcId:                      params.VpcId,
		TargetType:                 params.TargetType,
		HealthCheckPath:            params.HealthCheckPath,
		HealthCheckIntervalSeconds: params.HealthCheckIntervalSeconds,
		HealthCheckTimeoutSeconds:  params.HealthCheckTimeoutSeconds,
		HealthyThresholdCount:      params.HealthyThresholdCount,
		UnhealthyThresholdCount:    params.UnhealthyThresholdCount,
		Matcher:                    params.Matcher,
	}
	f.targetGroups[name] = tg
	return &elbv2.CreateTargetGroupOutput{TargetGroups: []types.TargetGroup{tg}}, nil
}

func (f *elbFake) ModifyTargetGroup(_ context.Context, params *elbv2.ModifyTargetGroupInput, _ ...func(*elbv2.Options)) (*elbv2.ModifyTargetGroupOutput, error) {
	f.modifyTgCalls++
	for name, tg := range f.targetGroups {
		if aws.ToString(tg.TargetGroupArn) != aws.ToString(params.TargetGroupArn) {
			continue
		}
		tg.HealthCheckPath = params.HealthCheckPath
		tg.HealthCheckIntervalSeconds = params.HealthCheckIntervalSeconds
		tg.HealthCheckTimeoutSeconds = params.HealthCheckTimeoutSeconds
		tg.HealthyThresholdCount = params.HealthyThresholdCount
		tg.UnhealthyThresholdCount = params.UnhealthyThresholdCount
		tg.Matcher = params.Matcher
		f.targetGroups[name] = tg
		return &elbv2.ModifyTargetGroupOutput{TargetGroups: []types.TargetGroup{tg}}, nil
	}
	return nil, &smithy.GenericAPIError{Code: "TargetGroupNotFound"}
}

func (f *elbFake) DescribeTargetHealth(_ context.Context, _ *elbv2.DescribeTargetHealthInput, _ ...func(*elbv2.Options)) (*elbv2.DescribeTargetHealthOutput, error) {
	return &elbv2.DescribeTargetHealthOutput{TargetHealthDescriptions: f.targetHealth}, nil
}

func (f *elbFake) DescribeListeners(_ context.Context, params *elbv2.DescribeListenersInput, _ ...func(*elbv2.Options)) (*elbv2.DescribeListenersOutput, error) {
	var out elbv2.DescribeListenersOutput
	for _, l := range f.listeners {
		if len(params.ListenerArns) > 0 && aws.ToString(l.ListenerArn) != params.ListenerArns[0] {
			continue
		}
		if params.LoadBalancerArn != nil && aws.ToString(l.LoadBalancerArn) != aws.ToString(params.LoadBalancerArn) {
			continue
		}
		out.Listeners = append(out.Listeners, l)
	}
	return &out, nil
}

func (f *elbFake) DescribeRules(_ context.Context, params *elbv2.DescribeRulesInput, _ ...func(*elbv2.Options)) (*elbv2.DescribeRulesOutput, error) {
	start := 0
	if params.Marker != nil {
		fmt.Sscanf(aws.ToString(params.Marker), "%d", &start)
	}
	end := len(f.rules)
	if f.rulePageSize > 0 && start+f.rulePageSize < end {
		end = start + f.rulePageSize
	}
	out := elbv2.DescribeRulesOutput{Rules: f.rules[start:end]}
	if end < len(f.rules) {
		out.NextMarker = aws.String(fmt.Sprintf("%d", end))
	}
	return &out, nil
}

func (f *elbFake) CreateRule(_ context.Context, params *elbv2.CreateRuleInput, _ ...func(*elbv2.Options)) (*elbv2.CreateRuleOutput, error) {
	f.createRules++
	r := types.Rule{
		RuleArn:    aws.String(fmt.Sprintf("arn:rule/%d", len(f.rules)+1)),
		Priority:   aws.String(fmt.Sprintf("%d", aws.ToInt32(params.Priority))),
		Conditions: params.Conditions,
		Actions:    params.Actions,
	}
	f.rules = append(f.rules, r)
	return &elbv2.CreateRuleOutput{Rules: []types.Rule{r}}, nil
}

func (f *elbFake) ModifyRule(_ context.Context, params *elbv2.ModifyRuleInput, _ ...func(*elbv2.Options)) (*elbv2.ModifyRuleOutput, error) {
	f.modifyRules++
	for i, r := range f.rules {
		if aws.ToString(r.RuleArn) == aws.ToString(params.RuleArn) {
			f.rules[i].Actions = params.Actions
			return &elbv2.ModifyRuleOutput{Rules: []types.Rule{f.rules[i]}}, nil
		}
	}
	return nil, &smithy.GenericAPIError{Code: "RuleNotFound"}
}

func (f *elbFake) DescribeLoadBalancers(_ context.Context, params *elbv2.DescribeLoadBalancersInput, _ ...func(*elbv2.Options)) (*elbv2.DescribeLoadBalancersOutput, error) {
	var out elbv2.DescribeLoadBalancersOutput
	for _, lb := range f.loadBalancers {
		if aws.ToString(lb.LoadBalancerArn) == params.LoadBalancerArns[0] {
			out.LoadBalancers = append(out.LoadBalancers, lb)
		}
	}
	return &out, nil
}

func testConfig() Config {
	return Config{
		ContainerPort: 7860,
		HealthCheck: HealthCheck{
			Path:               "/",
			Interval:           30 * time.Second,
			Timeout:            5 * time.Second,
			HealthyThreshold:   2,
			UnhealthyThreshold: 3,
			Matcher:            "200",
		},
		PriorityFloor: 99,
		SecurePort:    443,
	}
}

func newTestHandler(f *elbFake) *Handler {
	return New(f, testConfig(), slog.Default())
}

func pathRule(arn, priority, pattern, tgArn string) types.Rule {
	return types.Rule{
		RuleArn:  aws.String(arn),
		Priority: aws.String(priority),
		Conditions: []types.RuleCondition{
			{Field: aws.String("path-pattern"), Values: []string{pattern}},
		},
		Actions: []types.Action{
			{Type: types.ActionTypeEnumForward, TargetGroupArn: aws.String(tgArn)},
		},
	}
}
