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

import "time"

type Config struct {
	WorkDirPath string        `json:"work_dir_path" env_var:"SOURCE_CHECKOUT_WORK_DIR_PATH"`
	Timeout     time.Duration `json:"timeout" env_var:"SOURCE_CHECKOUT_TIMEOUT"`
	Depth       int           `json:"depth" env_var:"SOURCE_CHECKOUT_DEPTH"`
}
