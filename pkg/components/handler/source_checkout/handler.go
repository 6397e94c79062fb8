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

package source_checkout

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	models_error "github.com/SENERGY-Platform/ecs-app-deployer/pkg/models/error"
	"github.com/SENERGY-Platform/ecs-app-deployer/pkg/models/slog_attr"
	"github.com/go-git/go-git/v5"
	"github.com/google/uuid"
)

const timestampFormat = "20060102150405"

type Checkout struct {
	Dir      string
	Revision string
}

type Handler struct {
	config Config
	logger *slog.Logger
}

func New(config Config, logger *slog.Logger) *Handler {
	return &Handler{
		config: config,
		logger: logger,
	}
}

func (h *Handler) Init() error {
	if !filepath.IsAbs(h.config.WorkDirPath) {
		return fmt.Errorf("work dir path must be absolute")
	}
	return os.MkdirAll(h.config.WorkDirPath, 0775)
}

// Clone checks out the default branch of url into a new directory below the work dir. The returned cleanup
// function removes the directory and must be called in any case, it is a no-op on error.
func (h *Handler) Clone(ctx context.Context, app, url string) (Checkout, func(), error) {
	dir := filepath.Join(h.config.WorkDirPath, dirName(app, time.Now()))
	cleanup := func() {
		if err := os.RemoveAll(dir); err != nil {
			h.logger.Error("removing checkout failed", slog_attr.DirKey, dir, slog_attr.ErrorKey, err)
			return
		}
		h.logger.Debug("checkout removed", slog_attr.DirKey, dir)
	}
	if h.config.Timeout > 0 {
		var cf context.CancelFunc
		ctx, cf = context.WithTimeout(ctx, h.config.Timeout)
		defer cf()
	}
	repo, err := git.PlainCloneContext(ctx, dir, false, &git.CloneOptions{
		URL:               url,
		SingleBranch:      true,
		Depth:             h.config.Depth,
		RecurseSubmodules: git.NoRecurseSubmodules,
		Tags:              git.NoTags,
	})
	if err != nil {
		cleanup()
		return Checkout{}, func() {}, models_error.New(models_error.SourceCheckoutFailure, "clone", err)
	}
	co := Checkout{Dir: dir}
	if ref, err := repo.Head(); err == nil {
		co.Revision = ref.Hash().String()
	}
	h.logger.Info("repository cloned", slog_attr.AppNameKey, app, slog_attr.DirKey, dir, slog_attr.RevisionKey, co.Revision)
	return co, cleanup, nil
}

func dirName(app string, t time.Time) string {
	return fmt.Sprintf("%s_%s_%s", app, t.UTC().Format(timestampFormat), uuid.NewString()[:8])
}
