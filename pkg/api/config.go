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

	"github.com/SENERGY-Platform/ecs-app-deployer/lib/models"
	"github.com/gin-gonic/gin"
)

// getConfigH godoc
// @Summary Get configuration
// @Description Resolved infrastructure settings. Unresolved settings are listed with the reason.
// @Tags Configuration
// @Produce	json
// @Success	200 {object} models.ConfigSnapshot "configuration"
// @Failure	500 {string} string "error message"
// @Router /config [get]
func getConfigH(a *Api) (string, string, gin.HandlerFunc) {
	return http.MethodGet, models.ConfigPath, func(gc *gin.Context) {
		cfg, err := a.service.GetConfig(gc.Request.Context())
		if err != nil {
			_ = gc.Error(err)
			return
		}
		gc.JSON(http.StatusOK, cfg)
	}
}
