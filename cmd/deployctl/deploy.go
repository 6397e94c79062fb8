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

package main

import (
	"github.com/SENERGY-Platform/ecs-app-deployer/lib/models"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

func newDeployCmd(opts *globalOptions) *cobra.Command {
	var req models.DeployRequest
	cmd := &cobra.Command{
		Use:   "deploy",
		Short: "Build, push and deploy an application",
		Long: `Deploy builds the application image, pushes it to ECR and creates or updates the ECS service
behind the load balancer path. The command returns once the service was reconciled, the
application itself may need several minutes until it is reachable.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			log.Info("deploying", "app", req.AppName, "path", req.AlbPath, "force_recreate", req.ForceRecreate)
			outcome, err := opts.client().Deploy(cmd.Context(), req)
			if err != nil {
				return err
			}
			log.Info("deployed", "url", outcome.DeployedURL, "type", outcome.DeploymentType, "ready_in", outcome.EstimatedReadyTime)
			return printJSON(cmd.OutOrStdout(), outcome)
		},
	}
	cmd.Flags().StringVar(&req.AppName, "app", "", "application name")
	cmd.Flags().StringVar(&req.AlbPath, "path", "", "load balancer path pattern, e.g. /app/*")
	cmd.Flags().StringVar(&req.GitRepoURL, "git", "", "git repository url of the application")
	cmd.Flags().StringVar(&req.DockerContext, "context", "", "docker build context relative to the repository root")
	cmd.Flags().StringVar(&req.Dockerfile, "dockerfile", "", "dockerfile relative to the build context")
	cmd.Flags().StringVar(&req.CPU, "cpu", "", "task cpu units")
	cmd.Flags().StringVar(&req.Memory, "mem", "", "task memory in MiB")
	cmd.Flags().BoolVar(&req.ForceRecreate, "force", false, "delete and recreate the service")
	_ = cmd.MarkFlagRequired("app")
	_ = cmd.MarkFlagRequired("path")
	return cmd
}
