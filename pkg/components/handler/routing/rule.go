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
	"slices"
	"strconv"

	models_error "github.com/SENERGY-Platform/ecs-app-deployer/pkg/models/error"
	"github.com/SENERGY-Platform/ecs-app-deployer/pkg/models/slog_attr"
	"github.com/aws/aws-sdk-go-v2/aws"
	elbv2 "github.com/aws/aws-sdk-go-v2/service/elasticloadbalancingv2"
	"github.com/aws/aws-sdk-go-v2/service/elasticloadbalancingv2/types"
)

const pathPatternField = "path-pattern"

type RuleAction string

const (
	RuleCreated   RuleAction = "created"
	RuleCorrected RuleAction = "corrected"
	RuleUnchanged RuleAction = "unchanged"
)

type Rule struct {
	Arn      string
	Priority string
	Action   RuleAction
}

// EnsureRule makes the listener forward requests matching pattern to the target group. An existing rule for the
// pattern keeps its priority and is redirected in place. New rules get the next priority above all numeric ones.
func (h *Handler) EnsureRule(ctx context.Context, listenerArn, pattern, tgArn string) (Rule, error) {
	rules, err := h.listRules(ctx, listenerArn)
	if err != nil {
		return Rule{}, err
	}
	for _, r := range rules {
		if !matchesPattern(r, pattern) {
			continue
		}
		rule := Rule{
			Arn:      aws.ToString(r.RuleArn),
			Priority: aws.ToString(r.Priority),
			Action:   RuleUnchanged,
		}
		if forwardsTo(r, tgArn) {
			h.logger.Debug("listener rule up to date", slog_attr.PathPatternKey, pattern, slog_attr.ArnKey, rule.Arn)
			return rule, nil
		}
		conflict := models_error.Newf(models_error.RuleConflict, "ensure rule", "rule %s for %s forwards to another target group", rule.Arn, pattern)
		if !models_error.IsAbsorbed(conflict) {
			return Rule{}, conflict
		}
		h.logger.Warn("correcting listener rule", slog_attr.PathPatternKey, pattern, slog_attr.PriorityKey, rule.Priority, slog_attr.ErrorKey, conflict)
		_, err = h.client.ModifyRule(ctx, &elbv2.ModifyRuleInput{
			RuleArn: r.RuleArn,
			Actions: forwardActions(tgArn),
		})
		if err != nil {
			return Rule{}, models_error.New(models_error.ResourceUpdateFailure, "modify rule", err)
		}
		rule.Action = RuleCorrected
		return rule, nil
	}
	priority := nextPriority(rules, h.config.PriorityFloor)
	out, err := h.client.CreateRule(ctx, &elbv2.CreateRuleInput{
		ListenerArn: aws.String(listenerArn),
		Priority:    aws.Int32(priority),
		Conditions: []types.RuleCondition{
			{
				Field:             aws.String(pathPatternField),
				PathPatternConfig: &types.PathPatternConditionConfig{Values: []string{pattern}},
			},
		},
		Actions: forwardActions(tgArn),
	})
	if err != nil {
		return Rule{}, models_error.New(models_error.ResourceUpdateFailure, "create rule", err)
	}
	rule := Rule{
		Priority: strconv.FormatInt(int64(priority), 10),
		Action:   RuleCreated,
	}
	if len(out.Rules) > 0 {
		rule.Arn = aws.ToString(out.Rules[0].RuleArn)
	}
	h.logger.Info("listener rule created", slog_attr.PathPatternKey, pattern, slog_attr.PriorityKey, priority, slog_attr.ArnKey, rule.Arn)
	return rule, nil
}

func (h *Handler) listRules(ctx context.Context, listenerArn string) ([]types.Rule, error) {
	var rules []types.Rule
	var marker *string
	for {
		out, err := h.client.DescribeRules(ctx, &elbv2.DescribeRulesInput{
			ListenerArn: aws.String(listenerArn),
			Marker:      marker,
		})
		if err != nil {
			return nil, models_error.New(models_error.ResourceLookupFailure, "describe rules", err)
		}
		rules = append(rules, out.Rules...)
		if aws.ToString(out.NextMarker) == "" {
			return rules, nil
		}
		marker = out.NextMarker
	}
}

func matchesPattern(r types.Rule, pattern string) bool {
	for _, c := range r.Conditions {
		if aws.ToString(c.Field) != pathPatternField {
			continue
		}
		if slices.Contains(c.Values, pattern) {
			return true
		}
		if c.PathPatternConfig != nil && slices.Contains(c.PathPatternConfig.Values, pattern) {
			return true
		}
	}
	return false
}

// forwardsTo reports whether every forward target of the rule is tgArn.
func forwardsTo(r types.Rule, tgArn string) bool {
	var found bool
	for _, a := range r.Actions {
		if a.Type != types.ActionTypeEnumForward {
			continue
		}
		if a.TargetGroupArn != nil {
			if aws.ToString(a.TargetGroupArn) != tgArn {
				return false
			}
			found = true
		}
		if a.ForwardConfig != nil {
			for _, tg := range a.ForwardConfig.TargetGroups {
				if aws.ToString(tg.TargetGroupArn) != tgArn {
					return false
				}
				found = true
			}
		}
	}
	return found
}

// nextPriority returns one above the highest numeric priority, at least floor+1. The default rule is skipped.
func nextPriority(rules []types.Rule, floor int32) int32 {
	highest := floor
	for _, r := range rules {
		if aws.ToBool(r.IsDefault) {
			continue
		}
		p, err := strconv.ParseInt(aws.ToString(r.Priority), 10, 32)
		if err != nil {
			continue
		}
		if int32(p) > highest {
			highest = int32(p)
		}
	}
	return highest + 1
}

func forwardActions(tgArn string) []types.Action {
	return []types.Action{
		{
			Type:           types.ActionTypeEnumForward,
			TargetGroupArn: aws.String(tgArn),
		},
	}
}
