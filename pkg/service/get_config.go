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
	handler_infra_snapshot "github.com/SENERGY-Platform/ecs-app-deployer/pkg/components/handler/infra_snapshot"
	"github.com/SENERGY-Platform/ecs-app-deployer/pkg/models/slog_attr"
)

const subnetsName = "subnets"

// GetConfig reports the resolved configuration. Unresolved settings are listed instead of failing the call.
func (s *Service) GetConfig(ctx context.Context) (models.ConfigSnapshot, error) {
	cfg := models.ConfigSnapshot{
		Values:        make(map[string]string),
		Unresolved:    make(map[string]string),
		ContainerPort: s.config.ContainerPort,
		DefaultCPU:    s.config.DefaultCPU,
		DefaultMemory: s.config.DefaultMemory,
		DeletePollPolicy: models.PollPolicy{
			Interval:    s.config.DeletePoll.Interval.String(),
			MaxAttempts: s.config.DeletePoll.MaxAttempts,
		},
	}
	if snapshot := s.resolver.Snapshot(); snapshot != nil {
		cfg.SnapshotPath = snapshot.Path()
		cfg.SnapshotKeys = snapshot.Keys()
	}
	for name, setting := range handler_infra_snapshot.Named {
		v, err := s.resolver.Resolve(setting)
		if err != nil {
			cfg.Unresolved[name] = err.Error()
			continue
		}
		cfg.Values[name] = v
	}
	if v, err := s.resolver.FirstOf(handler_infra_snapshot.Subnets, handler_infra_snapshot.PublicSubnets, handler_infra_snapshot.PrivateSubnets); err != nil {
		cfg.Unresolved[subnetsName] = err.Error()
	} else {
		cfg.Values[subnetsName] = v
	}
	cfg.Region = cfg.Values["region"]
	cfg.Cluster = cfg.Values["cluster"]
	if id, err := s.accountHdl.AccountID(ctx); err != nil {
		s.logger.Warn("looking up account id failed", slog_attr.ErrorKey, err)
	} else {
		cfg.AccountID = id
	}
	return cfg, nil
}
