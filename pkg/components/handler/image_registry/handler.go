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

package image_registry

import (
	"context"
	"encoding/base64"
	"fmt"
	"log/slog"
	"strings"

	helper_aws_err "github.com/SENERGY-Platform/ecs-app-deployer/pkg/components/helper/aws_err"
	models_error "github.com/SENERGY-Platform/ecs-app-deployer/pkg/models/error"
	"github.com/SENERGY-Platform/ecs-app-deployer/pkg/models/slog_attr"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ecr"
	"github.com/aws/aws-sdk-go-v2/service/ecr/types"
)

type Credentials struct {
	Username      string
	Password      string
	ServerAddress string
}

type Handler struct {
	client ecrAPI
	config Config
	logger *slog.Logger
}

func New(client ecrAPI, config Config, logger *slog.Logger) *Handler {
	return &Handler{
		client: client,
		config: config,
		logger: logger,
	}
}

// EnsureRepository returns the repository URI, creating the repository if it does not exist.
func (h *Handler) EnsureRepository(ctx context.Context, name string) (string, error) {
	uri, ok, err := h.lookup(ctx, name)
	if err != nil || ok {
		return uri, err
	}
	mutability := types.ImageTagMutabilityMutable
	if h.config.ImmutableTags {
		mutability = types.ImageTagMutabilityImmutable
	}
	out, err := h.client.CreateRepository(ctx, &ecr.CreateRepositoryInput{
		RepositoryName:             aws.String(name),
		ImageTagMutability:         mutability,
		ImageScanningConfiguration: &types.ImageScanningConfiguration{ScanOnPush: h.config.ScanOnPush},
	})
	if err != nil {
		if !helper_aws_err.HasCode(err, helper_aws_err.RepositoryAlreadyExists) {
			return "", models_error.New(models_error.ResourceUpdateFailure, "create repository", err)
		}
		h.logger.Warn("repository created concurrently", slog_attr.RepositoryKey, name)
		if uri, ok, err = h.lookup(ctx, name); err != nil {
			return "", err
		}
		if !ok {
			return "", models_error.Newf(models_error.ResourceLookupFailure, "ensure repository", "repository %s not found", name)
		}
		return uri, nil
	}
	if out.Repository != nil {
		uri = aws.ToString(out.Repository.RepositoryUri)
	}
	h.logger.Info("repository created", slog_attr.RepositoryKey, name, slog_attr.ImageKey, uri)
	return uri, nil
}

func (h *Handler) lookup(ctx context.Context, name string) (string, bool, error) {
	out, err := h.client.DescribeRepositories(ctx, &ecr.DescribeRepositoriesInput{
		RepositoryNames: []string{name},
	})
	if err != nil {
		if helper_aws_err.HasCode(err, helper_aws_err.RepositoryNotFound) {
			return "", false, nil
		}
		return "", false, models_error.New(models_error.ResourceLookupFailure, "describe repositories", err)
	}
	if len(out.Repositories) == 0 {
		return "", false, nil
	}
	return aws.ToString(out.Repositories[0].RepositoryUri), true, nil
}

// ImageRef returns the reference images of the repository are pushed to.
func (h *Handler) ImageRef(uri string) string {
	return uri + ":" + h.config.Tag
}

// Credentials exchanges an authorization token for registry credentials.
func (h *Handler) Credentials(ctx context.Context) (Credentials, error) {
	out, err := h.client.GetAuthorizationToken(ctx, &ecr.GetAuthorizationTokenInput{})
	if err != nil {
		return Credentials{}, models_error.New(models_error.ImagePublishFailure, "get authorization token", err)
	}
	if len(out.AuthorizationData) == 0 {
		return Credentials{}, models_error.Newf(models_error.ImagePublishFailure, "get authorization token", "no authorization data returned")
	}
	data := out.AuthorizationData[0]
	return decodeToken(aws.ToString(data.AuthorizationToken), aws.ToString(data.ProxyEndpoint))
}

func decodeToken(token, endpoint string) (Credentials, error) {
	b, err := base64.StdEncoding.DecodeString(token)
	if err != nil {
		return Credentials{}, models_error.New(models_error.ImagePublishFailure, "decode authorization token", err)
	}
	user, pass, ok := strings.Cut(string(b), ":")
	if !ok {
		return Credentials{}, models_error.New(models_error.ImagePublishFailure, "decode authorization token", fmt.Errorf("malformed token"))
	}
	return Credentials{
		Username:      user,
		Password:      pass,
		ServerAddress: endpoint,
	}, nil
}
