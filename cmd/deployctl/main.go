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

// Command deployctl talks to an ecs-app-deployer server.
//
// Usage:
//
//	deployctl deploy --app image-filter --path "/image-filter/*" --git https://github.com/org/repo.git
//	deployctl status --app image-filter
//	deployctl config
//	deployctl version
package main

import (
	"net/http"
	"os"
	"time"

	"github.com/SENERGY-Platform/ecs-app-deployer/lib/client"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var version = "dev"

type globalOptions struct {
	baseUrl string
	timeout time.Duration
	debug   bool
}

func (o *globalOptions) client() *client.Client {
	return client.New(&http.Client{Timeout: o.timeout}, o.baseUrl)
}

func newRootCmd() *cobra.Command {
	opts := &globalOptions{}
	rootCmd := &cobra.Command{
		Use:           "deployctl",
		Short:         "Deploy applications to ECS through an ecs-app-deployer server",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if opts.debug {
				log.SetLevel(log.DebugLevel)
			}
		},
	}
	rootCmd.PersistentFlags().StringVar(&opts.baseUrl, "url", envOr("DEPLOY_SERVER_URL", "http://localhost:8000"), "deploy server base url")
	rootCmd.PersistentFlags().DurationVar(&opts.timeout, "timeout", 30*time.Minute, "request timeout")
	rootCmd.PersistentFlags().BoolVar(&opts.debug, "debug", false, "enable debug output")

	rootCmd.AddCommand(
		newDeployCmd(opts),
		newStatusCmd(opts),
		newConfigCmd(opts),
		newVersionCmd(),
	)
	return rootCmd
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		log.Error("command failed", "err", err)
		os.Exit(1)
	}
}

func envOr(key, def string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return def
}
