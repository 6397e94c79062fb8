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

	models_error "github.com/SENERGY-Platform/ecs-app-deployer/pkg/models/error"
)

var statusCodes = map[models_error.Kind]int{
	models_error.InvalidInput:          http.StatusBadRequest,
	models_error.SourceCheckoutFailure: http.StatusBadRequest,
	models_error.NotFound:              http.StatusNotFound,
}

func getStatusCode(err error) int {
	kind, ok := models_error.KindOf(err)
	if !ok {
		return http.StatusInternalServerError
	}
	if code, ok := statusCodes[kind]; ok {
		return code
	}
	return http.StatusInternalServerError
}
