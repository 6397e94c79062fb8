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

package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"strconv"
	"sync"
	"syscall"
	"time"

	"github.com/SENERGY-Platform/ecs-app-deployer/lib/models"
	"github.com/SENERGY-Platform/ecs-app-deployer/pkg/api"
	handler_account "github.com/SENERGY-Platform/ecs-app-deployer/pkg/components/handler/account"
	handler_compute "github.com/SENERGY-Platform/ecs-app-deployer/pkg/components/handler/compute"
	handler_image_publisher "github.com/SENERGY-Platform/ecs-app-deployer/pkg/components/handler/image_publisher"
	handler_image_registry "github.com/SENERGY-Platform/ecs-app-deployer/pkg/components/handler/image_registry"
	handler_infra_snapshot "github.com/SENERGY-Platform/ecs-app-deployer/pkg/components/handler/infra_snapshot"
	handler_network_access "github.com/SENERGY-Platform/ecs-app-deployer/pkg/components/handler/network_access"
	handler_routing "github.com/SENERGY-Platform/ecs-app-deployer/pkg/components/handler/routing"
	handler_source_checkout "github.com/SENERGY-Platform/ecs-app-deployer/pkg/components/handler/source_checkout"
	helper_os_signal "github.com/SENERGY-Platform/ecs-app-deployer/pkg/components/helper/os_signal"
	"github.com/SENERGY-Platform/ecs-app-deployer/pkg/configuration"
	"github.com/SENERGY-Platform/ecs-app-deployer/pkg/models/slog_attr"
	"github.com/SENERGY-Platform/ecs-app-deployer/pkg/service"
	sb_config_hdl "github.com/SENERGY-Platform/go-service-base/config-hdl"
	srv_info_hdl "github.com/SENERGY-Platform/go-service-base/srv-info-hdl"
	struct_logger "github.com/SENERGY-Platform/go-service-base/struct-logger"
	aws_config "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/cloudwatchlogs"
	"github.com/aws/aws-sdk-go-v2/service/ec2"
	"github.com/aws/aws-sdk-go-v2/service/ecr"
	"github.com/aws/aws-sdk-go-v2/service/ecs"
	"github.com/aws/aws-sdk-go-v2/service/elasticloadbalancingv2"
	"github.com/aws/aws-sdk-go-v2/service/sts"
	docker_client "github.com/docker/docker/client"
)

var version string

func main() {
	ec := 0
	defer func() {
		os.Exit(ec)
	}()

	srvInfoHdl := srv_info_hdl.New(models.ServiceName, version)

	configuration.ParseFlags()

	config, err := configuration.New(configuration.ConfPath)
	if err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		ec = 1
		return
	}

	logger := struct_logger.New(config.Logger, os.Stderr, "", srvInfoHdl.Name())

	logger.Info("starting service", slog_attr.VersionKey, srvInfoHdl.Version(), slog_attr.ConfigValuesKey, sb_config_hdl.StructToMap(config, true))

	ctx, cf := context.WithCancel(context.Background())

	resolver := handler_infra_snapshot.NewResolver(handler_infra_snapshot.NewSnapshot(config.InfraSnapshot, logger), nil)

	region, err := resolver.Resolve(handler_infra_snapshot.Region)
	if err != nil {
		logger.Error("resolving aws region failed", slog_attr.ErrorKey, err)
		ec = 1
		return
	}

	awsCfg, err := aws_config.LoadDefaultConfig(ctx, aws_config.WithRegion(region))
	if err != nil {
		logger.Error("loading aws config failed", slog_attr.ErrorKey, err)
		ec = 1
		return
	}

	dockerClient, err := docker_client.NewClientWithOpts(docker_client.FromEnv, docker_client.WithAPIVersionNegotiation())
	if err != nil {
		logger.Error("creating docker client failed", slog_attr.ErrorKey, err)
		ec = 1
		return
	}
	defer dockerClient.Close()

	networkAccessHdl := handler_network_access.New(ec2.NewFromConfig(awsCfg), logger)
	routingHdl := handler_routing.New(elasticloadbalancingv2.NewFromConfig(awsCfg), config.Routing, logger)
	computeHdl := handler_compute.New(ecs.NewFromConfig(awsCfg), cloudwatchlogs.NewFromConfig(awsCfg), nil, config.Compute, logger)
	imageRegistryHdl := handler_image_registry.New(ecr.NewFromConfig(awsCfg), config.ImageRegistry, logger)
	imagePublisher := handler_image_publisher.New(dockerClient, config.ImagePublisher, logger)
	sourceCheckoutHdl := handler_source_checkout.New(config.SourceCheckout, logger)
	accountHdl := handler_account.New(sts.NewFromConfig(awsCfg))

	srv := service.New(
		resolver,
		networkAccessHdl,
		routingHdl,
		computeHdl,
		imageRegistryHdl,
		imagePublisher,
		sourceCheckoutHdl,
		accountHdl,
		service.Config{
			ContainerPort:       config.Routing.ContainerPort,
			HealthCheck:         config.Routing.HealthCheck,
			BuildContextBaseDir: config.BuildContextBaseDir,
			DefaultCPU:          config.Defaults.CPU,
			DefaultMemory:       config.Defaults.Memory,
			DeletePoll:          config.Compute.DeletePoll,
		},
		logger,
	)

	httpApi, err := api.New(
		srv,
		srvInfoHdl,
		logger,
		config.HttpAccessLog,
	)
	if err != nil {
		logger.Error("creating http engine failed", slog_attr.ErrorKey, err)
		ec = 1
		return
	}

	httpServer := &http.Server{Handler: httpApi.Handler()}
	serverListener, err := net.Listen("tcp", ":"+strconv.FormatInt(int64(config.ServerPort), 10))
	if err != nil {
		logger.Error("creating server listener failed", slog_attr.ErrorKey, err)
		ec = 1
		return
	}

	err = sourceCheckoutHdl.Init()
	if err != nil {
		logger.Error("initializing source checkout handler failed", slog_attr.ErrorKey, err)
		ec = 1
		return
	}

	go func() {
		helper_os_signal.Wait(ctx, logger, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)
		cf()
	}()

	wg := &sync.WaitGroup{}

	go func() {
		logger.Info("starting http server")
		if err := httpServer.Serve(serverListener); !errors.Is(err, http.ErrServerClosed) {
			logger.Error("starting server failed", slog_attr.ErrorKey, err)
			ec = 1
		}
		cf()
	}()

	wg.Add(1)
	go func() {
		defer wg.Done()
		<-ctx.Done()
		logger.Info("stopping http server")
		ctxWt, cf2 := context.WithTimeout(context.Background(), time.Second*5)
		defer cf2()
		if err := httpServer.Shutdown(ctxWt); err != nil {
			logger.Error("stopping server failed", slog_attr.ErrorKey, err)
			ec = 1
		} else {
			logger.Info("http server stopped")
		}
	}()

	wg.Wait()
}
