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

package client

import (
	"context"
	"net/http"
	"net/url"

	"github.com/SENERGY-Platform/ecs-app-deployer/lib/models"
)

func (c *Client) Config(ctx context.Context) (models.ConfigSnapshot, error) {
	u, err := url.JoinPath(c.baseUrl, models.ConfigPath)
	if err != nil {
		return models.ConfigSnapshot{}, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return models.ConfigSnapshot{}, err
	}
	var cfg models.ConfigSnapshot
	err = c.baseClient.ExecRequestJSON(req, &cfg)
	if err != nil {
		return models.ConfigSnapshot{}, err
	}
	return cfg, nil
}

func (c *Client) HealthCheck(ctx context.Context) error {
	u, err := url.JoinPath(c.baseUrl, models.HealthCheckPath)
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return err
	}
	return c.baseClient.ExecRequestVoid(req)
}
