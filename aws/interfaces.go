// Package aws declares the narrow AWS service client interfaces used by the
// command layer and the supporting packages. The SDK clients satisfy them
// directly; tests substitute the mocks in integration/mock.
package aws

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/iam"
	"github.com/aws/aws-sdk-go-v2/service/kinesisanalytics"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/securitylake"
	"github.com/aws/aws-sdk-go-v2/service/sts"
)

// KinesisAnalyticsClient is the Kinesis Analytics (v1) surface exposed as commands.
type KinesisAnalyticsClient interface {
	AddApplicationCloudWatchLoggingOption(ctx context.Context, params *kinesisanalytics.AddApplicationCloudWatchLoggingOptionInput, optFns ...func(*kinesisanalytics.Options)) (*kinesisanalytics.AddApplicationCloudWatchLoggingOptionOutput, error)
	AddApplicationInput(ctx context.Context, params *kinesisanalytics.AddApplicationInputInput, optFns ...func(*kinesisanalytics.Options)) (*kinesisanalytics.AddApplicationInputOutput, error)
	AddApplicationInputProcessingConfiguration(ctx context.Context, params *kinesisanalytics.AddApplicationInputProcessingConfigurationInput, optFns ...func(*kinesisanalytics.Options)) (*kinesisanalytics.AddApplicationInputProcessingConfigurationOutput, error)
	AddApplicationOutput(ctx context.Context, params *kinesisanalytics.AddApplicationOutputInput, optFns ...func(*kinesisanalytics.Options)) (*kinesisanalytics.AddApplicationOutputOutput, error)
	AddApplicationReferenceDataSource(ctx context.Context, params *kinesisanalytics.AddApplicationReferenceDataSourceInput, optFns ...func(*kinesisanalytics.Options)) (*kinesisanalytics.AddApplicationReferenceDataSourceOutput, error)
	CreateApplication(ctx context.Context, params *kinesisanalytics.CreateApplicationInput, optFns ...func(*kinesisanalytics.Options)) (*kinesisanalytics.CreateApplicationOutput, error)
	DeleteApplication(ctx context.Context, params *kinesisanalytics.DeleteApplicationInput, optFns ...func(*kinesisanalytics.Options)) (*kinesisanalytics.DeleteApplicationOutput, error)
	DeleteApplicationCloudWatchLoggingOption(ctx context.Context, params *kinesisanalytics.DeleteApplicationCloudWatchLoggingOptionInput, optFns ...func(*kinesisanalytics.Options)) (*kinesisanalytics.DeleteApplicationCloudWatchLoggingOptionOutput, error)
	DeleteApplicationInputProcessingConfiguration(ctx context.Context, params *kinesisanalytics.DeleteApplicationInputProcessingConfigurationInput, optFns ...func(*kinesisanalytics.Options)) (*kinesisanalytics.DeleteApplicationInputProcessingConfigurationOutput, error)
	DeleteApplicationOutput(ctx context.Context, params *kinesisanalytics.DeleteApplicationOutputInput, optFns ...func(*kinesisanalytics.Options)) (*kinesisanalytics.DeleteApplicationOutputOutput, error)
	DeleteApplicationReferenceDataSource(ctx context.Context, params *kinesisanalytics.DeleteApplicationReferenceDataSourceInput, optFns ...func(*kinesisanalytics.Options)) (*kinesisanalytics.DeleteApplicationReferenceDataSourceOutput, error)
	DescribeApplication(ctx context.Context, params *kinesisanalytics.DescribeApplicationInput, optFns ...func(*kinesisanalytics.Options)) (*kinesisanalytics.DescribeApplicationOutput, error)
	DiscoverInputSchema(ctx context.Context, params *kinesisanalytics.DiscoverInputSchemaInput, optFns ...func(*kinesisanalytics.Options)) (*kinesisanalytics.DiscoverInputSchemaOutput, error)
	ListApplications(ctx context.Context, params *kinesisanalytics.ListApplicationsInput, optFns ...func(*kinesisanalytics.Options)) (*kinesisanalytics.ListApplicationsOutput, error)
	ListTagsForResource(ctx context.Context, params *kinesisanalytics.ListTagsForResourceInput, optFns ...func(*kinesisanalytics.Options)) (*kinesisanalytics.ListTagsForResourceOutput, error)
	StartApplication(ctx context.Context, params *kinesisanalytics.StartApplicationInput, optFns ...func(*kinesisanalytics.Options)) (*kinesisanalytics.StartApplicationOutput, error)
	StopApplication(ctx context.Context, params *kinesisanalytics.StopApplicationInput, optFns ...func(*kinesisanalytics.Options)) (*kinesisanalytics.StopApplicationOutput, error)
	TagResource(ctx context.Context, params *kinesisanalytics.TagResourceInput, optFns ...func(*kinesisanalytics.Options)) (*kinesisanalytics.TagResourceOutput, error)
	UntagResource(ctx context.Context, params *kinesisanalytics.UntagResourceInput, optFns ...func(*kinesisanalytics.Options)) (*kinesisanalytics.UntagResourceOutput, error)
	UpdateApplication(ctx context.Context, params *kinesisanalytics.UpdateApplicationInput, optFns ...func(*kinesisanalytics.Options)) (*kinesisanalytics.UpdateApplicationOutput, error)
}

// SecurityLakeClient is the Security Lake surface exposed as commands.
type SecurityLakeClient interface {
	CreateAwsLogSource(ctx context.Context, params *securitylake.CreateAwsLogSourceInput, optFns ...func(*securitylake.Options)) (*securitylake.CreateAwsLogSourceOutput, error)
	CreateCustomLogSource(ctx context.Context, params *securitylake.CreateCustomLogSourceInput, optFns ...func(*securitylake.Options)) (*securitylake.CreateCustomLogSourceOutput, error)
	CreateDataLake(ctx context.Context, params *securitylake.CreateDataLakeInput, optFns ...func(*securitylake.Options)) (*securitylake.CreateDataLakeOutput, error)
	CreateDataLakeExceptionSubscription(ctx context.Context, params *securitylake.CreateDataLakeExceptionSubscriptionInput, optFns ...func(*securitylake.Options)) (*securitylake.CreateDataLakeExceptionSubscriptionOutput, error)
	CreateDataLakeOrganizationConfiguration(ctx context.Context, params *securitylake.CreateDataLakeOrganizationConfigurationInput, optFns ...func(*securitylake.Options)) (*securitylake.CreateDataLakeOrganizationConfigurationOutput, error)
	CreateSubscriber(ctx context.Context, params *securitylake.CreateSubscriberInput, optFns ...func(*securitylake.Options)) (*securitylake.CreateSubscriberOutput, error)
	CreateSubscriberNotification(ctx context.Context, params *securitylake.CreateSubscriberNotificationInput, optFns ...func(*securitylake.Options)) (*securitylake.CreateSubscriberNotificationOutput, error)
	DeleteAwsLogSource(ctx context.Context, params *securitylake.DeleteAwsLogSourceInput, optFns ...func(*securitylake.Options)) (*securitylake.DeleteAwsLogSourceOutput, error)
	DeleteCustomLogSource(ctx context.Context, params *securitylake.DeleteCustomLogSourceInput, optFns ...func(*securitylake.Options)) (*securitylake.DeleteCustomLogSourceOutput, error)
	DeleteDataLake(ctx context.Context, params *securitylake.DeleteDataLakeInput, optFns ...func(*securitylake.Options)) (*securitylake.DeleteDataLakeOutput, error)
	DeleteDataLakeExceptionSubscription(ctx context.Context, params *securitylake.DeleteDataLakeExceptionSubscriptionInput, optFns ...func(*securitylake.Options)) (*securitylake.DeleteDataLakeExceptionSubscriptionOutput, error)
	DeleteDataLakeOrganizationConfiguration(ctx context.Context, params *securitylake.DeleteDataLakeOrganizationConfigurationInput, optFns ...func(*securitylake.Options)) (*securitylake.DeleteDataLakeOrganizationConfigurationOutput, error)
	DeleteSubscriber(ctx context.Context, params *securitylake.DeleteSubscriberInput, optFns ...func(*securitylake.Options)) (*securitylake.DeleteSubscriberOutput, error)
	DeleteSubscriberNotification(ctx context.Context, params *securitylake.DeleteSubscriberNotificationInput, optFns ...func(*securitylake.Options)) (*securitylake.DeleteSubscriberNotificationOutput, error)
	DeregisterDataLakeDelegatedAdministrator(ctx context.Context, params *securitylake.DeregisterDataLakeDelegatedAdministratorInput, optFns ...func(*securitylake.Options)) (*securitylake.DeregisterDataLakeDelegatedAdministratorOutput, error)
	GetDataLakeExceptionSubscription(ctx context.Context, params *securitylake.GetDataLakeExceptionSubscriptionInput, optFns ...func(*securitylake.Options)) (*securitylake.GetDataLakeExceptionSubscriptionOutput, error)
	GetDataLakeOrganizationConfiguration(ctx context.Context, params *securitylake.GetDataLakeOrganizationConfigurationInput, optFns ...func(*securitylake.Options)) (*securitylake.GetDataLakeOrganizationConfigurationOutput, error)
	GetDataLakeSources(ctx context.Context, params *securitylake.GetDataLakeSourcesInput, optFns ...func(*securitylake.Options)) (*securitylake.GetDataLakeSourcesOutput, error)
	GetSubscriber(ctx context.Context, params *securitylake.GetSubscriberInput, optFns ...func(*securitylake.Options)) (*securitylake.GetSubscriberOutput, error)
	ListDataLakeExceptions(ctx context.Context, params *securitylake.ListDataLakeExceptionsInput, optFns ...func(*securitylake.Options)) (*securitylake.ListDataLakeExceptionsOutput, error)
	ListDataLakes(ctx context.Context, params *securitylake.ListDataLakesInput, optFns ...func(*securitylake.Options)) (*securitylake.ListDataLakesOutput, error)
	ListLogSources(ctx context.Context, params *securitylake.ListLogSourcesInput, optFns ...func(*securitylake.Options)) (*securitylake.ListLogSourcesOutput, error)
	ListSubscribers(ctx context.Context, params *securitylake.ListSubscribersInput, optFns ...func(*securitylake.Options)) (*securitylake.ListSubscribersOutput, error)
	ListTagsForResource(ctx context.Context, params *securitylake.ListTagsForResourceInput, optFns ...func(*securitylake.Options)) (*securitylake.ListTagsForResourceOutput, error)
	RegisterDataLakeDelegatedAdministrator(ctx context.Context, params *securitylake.RegisterDataLakeDelegatedAdministratorInput, optFns ...func(*securitylake.Options)) (*securitylake.RegisterDataLakeDelegatedAdministratorOutput, error)
	TagResource(ctx context.Context, params *securitylake.TagResourceInput, optFns ...func(*securitylake.Options)) (*securitylake.TagResourceOutput, error)
	UntagResource(ctx context.Context, params *securitylake.UntagResourceInput, optFns ...func(*securitylake.Options)) (*securitylake.UntagResourceOutput, error)
	UpdateDataLake(ctx context.Context, params *securitylake.UpdateDataLakeInput, optFns ...func(*securitylake.Options)) (*securitylake.UpdateDataLakeOutput, error)
	UpdateDataLakeExceptionSubscription(ctx context.Context, params *securitylake.UpdateDataLakeExceptionSubscriptionInput, optFns ...func(*securitylake.Options)) (*securitylake.UpdateDataLakeExceptionSubscriptionOutput, error)
	UpdateSubscriber(ctx context.Context, params *securitylake.UpdateSubscriberInput, optFns ...func(*securitylake.Options)) (*securitylake.UpdateSubscriberOutput, error)
	UpdateSubscriberNotification(ctx context.Context, params *securitylake.UpdateSubscriberNotificationInput, optFns ...func(*securitylake.Options)) (*securitylake.UpdateSubscriberNotificationOutput, error)
}

// S3Client is used for output sinks, pipeline checkpoints and run reports.
type S3Client interface {
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// DynamoDBClient writes the invocation audit trail.
type DynamoDBClient interface {
	BatchWriteItem(ctx context.Context, params *dynamodb.BatchWriteItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.BatchWriteItemOutput, error)
}

// IAMClient simulates permissions before a command runs.
type IAMClient interface {
	SimulatePrincipalPolicy(ctx context.Context, params *iam.SimulatePrincipalPolicyInput, optFns ...func(*iam.Options)) (*iam.SimulatePrincipalPolicyOutput, error)
}

// STSClient resolves the calling principal for permission simulation.
type STSClient interface {
	GetCallerIdentity(ctx context.Context, params *sts.GetCallerIdentityInput, optFns ...func(*sts.Options)) (*sts.GetCallerIdentityOutput, error)
}

// Compile-time checks that the SDK clients satisfy the interfaces
var (
	_ KinesisAnalyticsClient = (*kinesisanalytics.Client)(nil)
	_ SecurityLakeClient     = (*securitylake.Client)(nil)
	_ S3Client               = (*s3.Client)(nil)
	_ DynamoDBClient         = (*dynamodb.Client)(nil)
	_ IAMClient              = (*iam.Client)(nil)
	_ STSClient              = (*sts.Client)(nil)
)
