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

package infra_snapshot

var (
	Region             = Setting{Key: "AWS_REGION", SnapshotKey: "aws_region"}.WithDefault("ap-northeast-1")
	Cluster            = Setting{Key: "ECS_CLUSTER_NAME", SnapshotKey: "ecs_cluster_name"}.WithDefault("gradio-ecs-cluster")
	VpcID              = Setting{Key: "VPC_ID", SnapshotKey: "vpc_id"}
	ListenerArn        = Setting{Key: "ALB_LISTENER_ARN", SnapshotKey: "alb_listener_arn"}
	LoadBalancerArn    = Setting{Key: "ALB_ARN", SnapshotKey: "alb_arn"}.WithDefault("")
	AlbDNSName         = Setting{Key: "ALB_DNS_NAME", SnapshotKey: "alb_dns_name"}
	Subnets            = Setting{Key: "SUBNETS"}
	PublicSubnets      = Setting{Key: "PUBLIC_SUBNET_IDS", SnapshotKey: "public_subnet_ids"}
	PrivateSubnets     = Setting{Key: "PRIVATE_SUBNET_IDS", SnapshotKey: "private_subnet_ids"}
	SecurityGroups     = Setting{Key: "SECURITY_GROUPS", SnapshotKey: "ecs_security_group_id"}
	EcsSecurityGroupID = Setting{Key: "ECS_SECURITY_GROUP_ID", SnapshotKey: "ecs_security_group_id"}
	AlbSecurityGroupID = Setting{Key: "ALB_SECURITY_GROUP_ID", SnapshotKey: "alb_security_group_id"}
	ExecutionRoleArn   = Setting{Key: "ECS_TASK_EXECUTION_ROLE_ARN", SnapshotKey: "ecs_task_execution_role_arn"}
	TaskRoleArn        = Setting{Key: "ECS_TASK_ROLE_ARN", SnapshotKey: "ecs_task_role_arn"}
)

// Named is used for reporting resolved values.
var Named = map[string]Setting{
	"region":                      Region,
	"cluster":                     Cluster,
	"vpc_id":                      VpcID,
	"alb_listener_arn":            ListenerArn,
	"alb_arn":                     LoadBalancerArn,
	"alb_dns_name":                AlbDNSName,
	"public_subnet_ids":           PublicSubnets,
	"private_subnet_ids":          PrivateSubnets,
	"security_groups":             SecurityGroups,
	"ecs_security_group_id":       EcsSecurityGroupID,
	"alb_security_group_id":       AlbSecurityGroupID,
	"ecs_task_execution_role_arn": ExecutionRoleArn,
	"ecs_task_role_arn":           TaskRoleArn,
}
