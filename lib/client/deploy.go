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
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/url"

	"github.com/SENERGY-Platform/ecs-app-deployer/lib/models"
)

// Deploy blocks until the server finished reconciling, which includes the image build.
// Callers should use an HTTP client without a short timeout.
func (c *Client) Deploy(ctx context.Context, deployReq models.DeployRequest) (models.DeployOutcome, error) {
	u, err := url.JoinPath(c.baseUrl, models.DeployPath)
	if err != nil {
		return models.DeployOutcome{}, err
	}
	body, err := json.Marshal(deployReq)
	if err != nil {
		return models.DeployOutcome{}, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, u, bytes.NewBuffer(body))
	if err != nil {
		return models.DeployOutcome{}, err
	}
	req.Header.Set("Content-Type", "application/json")
	var outcome models.DeployOutcome
	err = c.baseClient.ExecRequestJSON(req, &outcome)
	if err != nil {
		return models.DeployOutcome{}, err
	}
	return outcome, nil
}

func (c *Client) Status(ctx context.Context, app string) (models.ServiceStatus, error) {
	u, err := url.JoinPath(c.baseUrl, models.DeploymentsPath, app)
	if err != nil {
		return models.ServiceStatus{}, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return models.ServiceStatus{}, err
	}
	var status models.ServiceStatus
	err = c.baseClient.ExecRequestJSON(req, &status)
	if err != nil {
		return models.ServiceStatus{}, err
	}
	return status, nil
}
