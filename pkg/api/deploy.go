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

package api

import (
	"net/http"
	"path"

	"github.com/SENERGY-Platform/ecs-app-deployer/lib/models"
	models_error "github.com/SENERGY-Platform/ecs-app-deployer/pkg/models/error"
	"github.com/gin-gonic/gin"
)

const appParam = "app"

// postDeployH godoc
// @Summary Deploy application
// @Description Build and push the application image, reconcile routing and the ECS service. Returns once the service was created or updated, not when it is healthy.
// @Tags Deployments
// @Accept json
// @Produce	json
// @Param request body models.DeployRequest true "deploy request"
// @Success	200 {object} models.DeployOutcome "deploy outcome"
// @Failure	400 {string} string "error message"
// @Failure	500 {string} string "error message"
// @Router /deploy [post]
func postDeployH(a *Api) (string, string, gin.HandlerFunc) {
	return http.MethodPost, models.DeployPath, func(gc *gin.Context) {
		var req models.DeployRequest
		if err := gc.ShouldBindJSON(&req); err != nil {
			_ = gc.Error(models_error.New(models_error.InvalidInput, "", err))
			return
		}
		outcome, err := a.service.Deploy(gc.Request.Context(), req)
		if err != nil {
			_ = gc.Error(err)
			return
		}
		gc.JSON(http.StatusOK, outcome)
	}
}

// getDeploymentH godoc
// @Summary Get deployment status
// @Description Report the ECS service state and target health of an application.
// @Tags Deployments
// @Produce	json
// @Param app path string true "application name"
// @Success	200 {object} models.ServiceStatus "status"
// @Failure	400 {string} string "error message"
// @Failure	404 {string} string "error message"
// @Failure	500 {string} string "error message"
// @Router /deployments/{app} [get]
func getDeploymentH(a *Api) (string, string, gin.HandlerFunc) {
	return http.MethodGet, path.Join(models.DeploymentsPath, ":"+appParam), func(gc *gin.Context) {
		status, err := a.service.Status(gc.Request.Context(), gc.Param(appParam))
		if err != nil {
			_ = gc.Error(err)
			return
		}
		gc.JSON(http.StatusOK, status)
	}
}
