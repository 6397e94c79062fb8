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
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

func newStatusCmd(opts *globalOptions) *cobra.Command {
	var app string
	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show service state and target health of an application",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			status, err := opts.client().Status(cmd.Context(), app)
			if err != nil {
				return err
			}
			healthy := 0
			for _, target := range status.Targets {
				if target.State == "healthy" {
					healthy++
				}
			}
			log.Debug("status", "service", status.Status, "running", status.RunningCount, "desired", status.DesiredCount, "healthy_targets", healthy)
			return printJSON(cmd.OutOrStdout(), status)
		},
	}
	cmd.Flags().StringVar(&app, "app", "", "application name")
	_ = cmd.MarkFlagRequired("app")
	return cmd
}
