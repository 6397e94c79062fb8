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

package aws_err

import (
	"errors"

	"github.com/aws/smithy-go"
)

const (
	DuplicatePermission      = "InvalidPermission.Duplicate"
	ResourceAlreadyExists    = "ResourceAlreadyExistsException"
	RepositoryAlreadyExists  = "RepositoryAlreadyExistsException"
	RepositoryNotFound       = "RepositoryNotFoundException"
	TargetGroupNotFound      = "TargetGroupNotFound"
	DuplicateTargetGroupName = "DuplicateTargetGroupName"
	ServiceNotFound          = "ServiceNotFoundException"
	ServiceNotActive         = "ServiceNotActiveException"
)

// Code returns the AWS API error code of err or an empty string.
func Code(err error) string {
	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		return apiErr.ErrorCode()
	}
	return ""
}

// IsAPIError reports whether err carries an error response of an AWS API.
func IsAPIError(err error) bool {
	var apiErr smithy.APIError
	return errors.As(err, &apiErr)
}

func HasCode(err error, codes ...string) bool {
	c := Code(err)
	if c == "" {
		return false
	}
	for _, code := range codes {
		if c == code {
			return true
		}
	}
	return false
}
