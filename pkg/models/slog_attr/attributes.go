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

package slog_attr

import "github.com/SENERGY-Platform/go-service-base/struct-logger/attributes"

const (
	ErrorKey                   = attributes.ErrorKey
	RequestIDKey               = "request_id"
	VersionKey                 = "version"
	ConfigValuesKey            = "config_values"
	SignalKey                  = "signal"
	ComponentKey               = "component"
	AppNameKey                 = "app_name"
	ResourceKey                = "resource"
	ArnKey                     = "arn"
	GroupIDKey                 = "group_id"
	SourceGroupKey             = "source_group"
	ClusterKey                 = "cluster"
	ServiceKey                 = "service"
	TargetGroupKey             = "target_group"
	LogGroupKey                = "log_group"
	RepositoryKey              = "repository"
	ProtocolKey                = "protocol"
	RuleActionKey              = "rule_action"
	URLKey                     = "url"
	PortKey                    = "port"
	PriorityKey                = "priority"
	PathPatternKey             = "path_pattern"
	StatusKey                  = "status"
	AttemptKey                 = "attempt"
	DirKey                     = "dir"
	ImageKey                   = "image"
	RevisionKey                = "revision"
	DeploymentTypeKey          = "deployment_type"
	ForceRecreateKey           = "force_recreate"
	SubnetsKey                 = "subnets"
	AssignPublicIPKey          = "assign_public_ip"
	PathKey                    = attributes.PathKey
	MethodKey                  = attributes.MethodKey
	LogRecordTypeKey           = attributes.LogRecordTypeKey
	HttpAccessLogRecordTypeVal = attributes.HttpAccessLogRecordTypeVal
)

var Provider = attributes.Provider
