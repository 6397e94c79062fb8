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
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/elasticloadbalancingv2/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNextPriority(t *testing.T) {
	rules := []types.Rule{
		{Priority: aws.String("100")},
		{Priority: aws.String("250")},
		{Priority: aws.String("99")},
		{Priority: aws.String("default"), IsDefault: aws.Bool(true)},
	}
	assert.Equal(t, int32(251), nextPriority(rules, 99))
	assert.Equal(t, int32(100), nextPriority(nil, 99))
	assert.Equal(t, int32(100), nextPriority([]types.Rule{{Priority: aws.String("default"), IsDefault: aws.Bool(true)}}, 99))
	assert.Equal(t, int32(100), nextPriority([]types.Rule{{Priority: aws.String("5")}}, 99))
}

func TestHandler_EnsureRule(t *testing.T) {
	t.Run("create with allocated priority", func(t *testing.T) {
		f := newElbFake()
		f.rules = []types.Rule{
			pathRule("arn:rule/a", "100", "/a/*", "arn:tg/a"),
			pathRule("arn:rule/b", "250", "/b/*", "arn:tg/b"),
			pathRule("arn:rule/c", "99", "/c/*", "arn:tg/c"),
			{RuleArn: aws.String("arn:rule/default"), Priority: aws.String("default"), IsDefault: aws.Bool(true)},
		}
		h := newTestHandler(f)
		rule, err := h.EnsureRule(context.Background(), "arn:listener", "/app/*", "arn:tg/app")
		require.NoError(t, err)
		assert.Equal(t, RuleCreated, rule.Action)
		assert.Equal(t, "251", rule.Priority)
		created := f.rules[len(f.rules)-1]
		assert.Equal(t, "251", aws.ToString(created.Priority))
		assert.True(t, matchesPattern(created, "/app/*"))
		assert.True(t, forwardsTo(created, "arn:tg/app"))
	})
	t.Run("first rule", func(t *testing.T) {
		f := newElbFake()
		h := newTestHandler(f)
		rule, err := h.EnsureRule(context.Background(), "arn:listener", "/app/*", "arn:tg/app")
		require.NoError(t, err)
		assert.Equal(t, "100", rule.Priority)
	})
	t.Run("correct in place", func(t *testing.T) {
		f := newElbFake()
		f.rules = []types.Rule{
			pathRule("arn:rule/x", "120", "/other/*", "arn:tg/other"),
			pathRule("arn:rule/app", "130", "/app/*", "arn:tg/A"),
		}
		h := newTestHandler(f)
		rule, err := h.EnsureRule(context.Background(), "arn:listener", "/app/*", "arn:tg/B")
		require.NoError(t, err)
		assert.Equal(t, RuleCorrected, rule.Action)
		assert.Equal(t, "130", rule.Priority)
		assert.Equal(t, 0, f.createRules)
		assert.Equal(t, 1, f.modifyRules)
		var matching []types.Rule
		for _, r := range f.rules {
			if matchesPattern(r, "/app/*") {
				matching = append(matching, r)
			}
		}
		require.Len(t, matching, 1)
		assert.Equal(t, "130", aws.ToString(matching[0].Priority))
		assert.True(t, forwardsTo(matching[0], "arn:tg/B"))
	})
	t.Run("unchanged", func(t *testing.T) {
		f := newElbFake()
		f.rules = []types.Rule{pathRule("arn:rule/app", "130", "/app/*", "arn:tg/app")}
		h := newTestHandler(f)
		rule, err := h.EnsureRule(context.Background(), "arn:listener", "/app/*", "arn:tg/app")
		require.NoError(t, err)
		assert.Equal(t, RuleUnchanged, rule.Action)
		assert.Equal(t, 0, f.createRules)
		assert.Equal(t, 0, f.modifyRules)
	})
	t.Run("path pattern config", func(t *testing.T) {
		f := newElbFake()
		f.rules = []types.Rule{
			{
				RuleArn:  aws.String("arn:rule/app"),
				Priority: aws.String("140"),
				Conditions: []types.RuleCondition{
					{Field: aws.String("path-pattern"), PathPatternConfig: &types.PathPatternConditionConfig{Values: []string{"/app/*"}}},
				},
				Actions: []types.Action{
					{
						Type: types.ActionTypeEnumForward,
						ForwardConfig: &types.ForwardActionConfig{
							TargetGroups: []types.TargetGroupTuple{{TargetGroupArn: aws.String("arn:tg/app")}},
						},
					},
				},
			},
		}
		h := newTestHandler(f)
		rule, err := h.EnsureRule(context.Background(), "arn:listener", "/app/*", "arn:tg/app")
		require.NoError(t, err)
		assert.Equal(t, RuleUnchanged, rule.Action)
	})
	t.Run("paginated", func(t *testing.T) {
		f := newElbFake()
		f.rulePageSize = 1
		f.rules = []types.Rule{
			pathRule("arn:rule/a", "100", "/a/*", "arn:tg/a"),
			pathRule("arn:rule/b", "300", "/b/*", "arn:tg/b"),
			pathRule("arn:rule/c", "200", "/c/*", "arn:tg/c"),
		}
		h := newTestHandler(f)
		rule, err := h.EnsureRule(context.Background(), "arn:listener", "/app/*", "arn:tg/app")
		require.NoError(t, err)
		assert.Equal(t, "301", rule.Priority)
	})
	t.Run("idempotent", func(t *testing.T) {
		f := newElbFake()
		h := newTestHandler(f)
		_, err := h.EnsureRule(context.Background(), "arn:listener", "/app/*", "arn:tg/app")
		require.NoError(t, err)
		rule, err := h.EnsureRule(context.Background(), "arn:listener", "/app/*", "arn:tg/app")
		require.NoError(t, err)
		assert.Equal(t, RuleUnchanged, rule.Action)
		assert.Len(t, f.rules, 1)
	})
}

func TestForwardsTo(t *testing.T) {
	r := types.Rule{
		Actions: []types.Action{
			{
				Type: types.ActionTypeEnumForward,
				ForwardConfig: &types.ForwardActionConfig{
					TargetGroups: []types.TargetGroupTuple{
						{TargetGroupArn: aws.String("arn:tg/a")},
						{TargetGroupArn: aws.String("arn:tg/b")},
					},
				},
			},
		},
	}
	assert.False(t, forwardsTo(r, "arn:tg/a"))
	assert.False(t, forwardsTo(types.Rule{}, "arn:tg/a"))
}
