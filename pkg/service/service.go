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
	"log/slog"

	handler_infra_snapshot "github.com/SENERGY-Platform/ecs-app-deployer/pkg/components/handler/infra_snapshot"
)

type Service struct {
	resolver    *handler_infra_snapshot.Resolver
	networkHdl  NetworkAccessHandler
	routingHdl  RoutingHandler
	computeHdl  ComputeHandler
	registryHdl ImageRegistryHandler
	publisher   ImagePublisher
	checkoutHdl SourceCheckoutHandler
	accountHdl  AccountHandler
	config      Config
	logger      *slog.Logger
}

func New(
	resolver *handler_infra_snapshot.Resolver,
	networkHdl NetworkAccessHandler,
	routingHdl RoutingHandler,
	computeHdl ComputeHandler,
	registryHdl ImageRegistryHandler,
	publisher ImagePublisher,
	checkoutHdl SourceCheckoutHandler,
	accountHdl AccountHandler,
	config Config,
	logger *slog.Logger,
) *Service {
	return &Service{
		resolver:    resolver,
		networkHdl:  networkHdl,
		routingHdl:  routingHdl,
		computeHdl:  computeHdl,
		registryHdl: registryHdl,
		publisher:   publisher,
		checkoutHdl: checkoutHdl,
		accountHdl:  accountHdl,
		config:      config,
		logger:      logger,
	}
}
