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

package naming

import (
	"path"
	"strings"
)

const (
	targetGroupSuffix = "-tg"
	logGroupPrefix    = "/ecs"
)

// Names holds every resource name derived from an application name. There is no stored mapping,
// the same application name always yields the same names.
type Names struct {
	App         string
	Repository  string
	TargetGroup string
	TaskFamily  string
	Container   string
	LogGroup    string
	Service     string
}

func Derive(app string) Names {
	return Names{
		App:         app,
		Repository:  app,
		TargetGroup: app + targetGroupSuffix,
		TaskFamily:  app,
		Container:   app,
		LogGroup:    path.Join(logGroupPrefix, app),
		Service:     app,
	}
}

// RootPath strips trailing wildcards and slashes from a path pattern: "/app/*" -> "/app", "/*" -> "".
func RootPath(pattern string) string {
	return strings.TrimRight(pattern, "*/")
}

func URL(protocol, host, pattern string) string {
	return protocol + "://" + host + RootPath(pattern) + "/"
}
