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

	"github.com/SENERGY-Platform/ecs-app-deployer/lib/models"
	models_error "github.com/SENERGY-Platform/ecs-app-deployer/pkg/models/error"
	"github.com/SENERGY-Platform/ecs-app-deployer/pkg/models/slog_attr"
	"github.com/aws/aws-sdk-go-v2/aws"
	elbv2 "github.com/aws/aws-sdk-go-v2/service/elasticloadbalancingv2"
	"github.com/aws/aws-sdk-go-v2/service/elasticloadbalancingv2/types"
)

type LoadBalancer struct {
	Arn      string
	DNSName  string
	Protocol string
}

// DescribeLoadBalancer looks up the load balancer owning the listener, lbArn may be empty. The protocol is
// https if any listener is bound to the secure port.
func (h *Handler) DescribeLoadBalancer(ctx context.Context, listenerArn, lbArn string) (LoadBalancer, error) {
	if lbArn == "" {
		out, err := h.client.DescribeListeners(ctx, &elbv2.DescribeListenersInput{
			ListenerArns: []string{listenerArn},
		})
		if err != nil {
			return LoadBalancer{}, models_error.New(models_error.ResourceLookupFailure, "describe listener", err)
		}
		if len(out.Listeners) == 0 {
			return LoadBalancer{}, models_error.Newf(models_error.ResourceLookupFailure, "describe listener", "listener %s not found", listenerArn)
		}
		lbArn = aws.ToString(out.Listeners[0].LoadBalancerArn)
	}
	lb := LoadBalancer{
		Arn:      lbArn,
		Protocol: models.ProtocolHTTP,
	}
	out, err := h.client.DescribeLoadBalancers(ctx, &elbv2.DescribeLoadBalancersInput{
		LoadBalancerArns: []string{lbArn},
	})
	if err != nil {
		return LoadBalancer{}, models_error.New(models_error.ResourceLookupFailure, "describe load balancer", err)
	}
	if len(out.LoadBalancers) > 0 {
		lb.DNSName = aws.ToString(out.LoadBalancers[0].DNSName)
	}
	listeners, err := h.listListeners(ctx, lbArn)
	if err != nil {
		return LoadBalancer{}, err
	}
	for _, l := range listeners {
		if aws.ToInt32(l.Port) == h.config.SecurePort {
			lb.Protocol = models.ProtocolHTTPS
			break
		}
	}
	h.logger.Debug("load balancer described", slog_attr.ArnKey, lbArn, slog_attr.ProtocolKey, lb.Protocol)
	return lb, nil
}

func (h *Handler) listListeners(ctx context.Context, lbArn string) ([]types.Listener, error) {
	var listeners []types.Listener
	var marker *string
	for {
		out, err := h.client.DescribeListeners(ctx, &elbv2.DescribeListenersInput{
			LoadBalancerArn: aws.String(lbArn),
			Marker:          marker,
		})
		if err != nil {
			return nil, models_error.New(models_error.ResourceLookupFailure, "describe listeners", err)
		}
		listeners = append(listeners, out.Listeners...)
		if aws.ToString(out.NextMarker) == "" {
			return listeners, nil
		}
		marker = out.NextMarker
	}
}
