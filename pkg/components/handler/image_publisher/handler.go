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

package image_publisher

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	models_error "github.com/SENERGY-Platform/ecs-app-deployer/pkg/models/error"
	"github.com/SENERGY-Platform/ecs-app-deployer/pkg/models/slog_attr"
	"github.com/distribution/reference"
	"github.com/docker/docker/api/types"
	"github.com/docker/docker/api/types/registry"
	"github.com/docker/docker/pkg/archive"
	"github.com/docker/docker/pkg/jsonmessage"
	"github.com/moby/patternmatcher/ignorefile"
)

const dockerignore = ".dockerignore"

type Job struct {
	ContextDir string
	Dockerfile string
	Image      string
	Auth       registry.AuthConfig
}

type Handler struct {
	client dockerClient
	config Config
	logger *slog.Logger
}

func New(client dockerClient, config Config, logger *slog.Logger) *Handler {
	return &Handler{
		client: client,
		config: config,
		logger: logger,
	}
}

// Publish builds the image from the context directory and pushes it to the registry.
func (h *Handler) Publish(ctx context.Context, job Job) error {
	if _, err := reference.ParseNormalizedNamed(job.Image); err != nil {
		return models_error.New(models_error.InvalidInput, "parse image reference", err)
	}
	if err := h.build(ctx, job); err != nil {
		return err
	}
	return h.push(ctx, job)
}

func (h *Handler) build(ctx context.Context, job Job) error {
	buildCtx, err := tarContext(job.ContextDir, job.Dockerfile)
	if err != nil {
		return models_error.New(models_error.ImagePublishFailure, "archive build context", err)
	}
	defer buildCtx.Close()
	h.logger.Info("building image", slog_attr.ImageKey, job.Image, slog_attr.DirKey, job.ContextDir)
	resp, err := h.client.ImageBuild(ctx, buildCtx, types.ImageBuildOptions{
		Tags:        []string{job.Image},
		Dockerfile:  job.Dockerfile,
		Platform:    h.config.Platform,
		NoCache:     h.config.NoCache,
		Remove:      true,
		ForceRemove: true,
		PullParent:  true,
	})
	if err != nil {
		return models_error.New(models_error.ImagePublishFailure, "build image", err)
	}
	defer resp.Body.Close()
	if err = h.drain(resp.Body, job.Image); err != nil {
		return models_error.New(models_error.ImagePublishFailure, "build image", err)
	}
	return nil
}

func (h *Handler) push(ctx context.Context, job Job) error {
	auth, err := registry.EncodeAuthConfig(job.Auth)
	if err != nil {
		return models_error.New(models_error.ImagePublishFailure, "encode registry auth", err)
	}
	h.logger.Info("pushing image", slog_attr.ImageKey, job.Image)
	rc, err := h.client.ImagePush(ctx, job.Image, types.ImagePushOptions{RegistryAuth: auth})
	if err != nil {
		return models_error.New(models_error.ImagePublishFailure, "push image", err)
	}
	defer rc.Close()
	if err = h.drain(rc, job.Image); err != nil {
		return models_error.New(models_error.ImagePublishFailure, "push image", err)
	}
	return nil
}

// drain consumes a docker progress stream and returns the first error message it contains.
func (h *Handler) drain(r io.Reader, image string) error {
	w := &logWriter{logger: h.logger.With(slog_attr.ImageKey, image)}
	return jsonmessage.DisplayJSONMessagesStream(r, w, 0, false, nil)
}

func tarContext(dir, dockerfile string) (io.ReadCloser, error) {
	if _, err := os.Stat(filepath.Join(dir, dockerfile)); err != nil {
		return nil, fmt.Errorf("dockerfile: %w", err)
	}
	excludes, err := readDockerignore(dir)
	if err != nil {
		return nil, err
	}
	return archive.TarWithOptions(dir, &archive.TarOptions{ExcludePatterns: excludes})
}

func readDockerignore(dir string) ([]string, error) {
	f, err := os.Open(filepath.Join(dir, dockerignore))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	defer f.Close()
	return ignorefile.ReadAll(f)
}
