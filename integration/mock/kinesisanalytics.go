package mock

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/service/kinesisanalytics"

	"github.com/gurre/awscmd/aws"
)

// KinesisAnalyticsClient is a recording mock of aws.KinesisAnalyticsClient.
type KinesisAnalyticsClient struct {
	Service
}

var _ aws.KinesisAnalyticsClient = (*KinesisAnalyticsClient)(nil)

// NewKinesisAnalyticsClient creates a new mock Kinesis Analytics client.
func NewKinesisAnalyticsClient() *KinesisAnalyticsClient { return &KinesisAnalyticsClient{} }

func (m *KinesisAnalyticsClient) AddApplicationCloudWatchLoggingOption(ctx context.Context, in *kinesisanalytics.AddApplicationCloudWatchLoggingOptionInput, _ ...func(*kinesisanalytics.Options)) (*kinesisanalytics.AddApplicationCloudWatchLoggingOptionOutput, error) {
	return invoke[kinesisanalytics.AddApplicationCloudWatchLoggingOptionOutput](&m.Service, ctx, "AddApplicationCloudWatchLoggingOption", in)
}

func (m *KinesisAnalyticsClient) AddApplicationInput(ctx context.Context, in *kinesisanalytics.AddApplicationInputInput, _ ...func(*kinesisanalytics.Options)) (*kinesisanalytics.AddApplicationInputOutput, error) {
	return invoke[kinesisanalytics.AddApplicationInputOutput](&m.Service, ctx, "AddApplicationInput", in)
}

func (m *KinesisAnalyticsClient) AddApplicationInputProcessingConfiguration(ctx context.Context, in *kinesisanalytics.AddApplicationInputProcessingConfigurationInput, _ ...func(*kinesisanalytics.Options)) (*kinesisanalytics.AddApplicationInputProcessingConfigurationOutput, error) {
	return invoke[kinesisanalytics.AddApplicationInputProcessingConfigurationOutput](&m.Service, ctx, "AddApplicationInputProcessingConfiguration", in)
}

func (m *KinesisAnalyticsClient) AddApplicationOutput(ctx context.Context, in *kinesisanalytics.AddApplicationOutputInput, _ ...func(*kinesisanalytics.Options)) (*kinesisanalytics.AddApplicationOutputOutput, error) {
	return invoke[kinesisanalytics.AddApplicationOutputOutput](&m.Service, ctx, "AddApplicationOutput", in)
}

func (m *KinesisAnalyticsClient) AddApplicationReferenceDataSource(ctx context.Context, in *kinesisanalytics.AddApplicationReferenceDataSourceInput, _ ...func(*kinesisanalytics.Options)) (*kinesisanalytics.AddApplicationReferenceDataSourceOutput, error) {
	return invoke[kinesisanalytics.AddApplicationReferenceDataSourceOutput](&m.Service, ctx, "AddApplicationReferenceDataSource", in)
}

func (m *KinesisAnalyticsClient) CreateApplication(ctx context.Context, in *kinesisanalytics.CreateApplicationInput, _ ...func(*kinesisanalytics.Options)) (*kinesisanalytics.CreateApplicationOutput, error) {
	return invoke[kinesisanalytics.CreateApplicationOutput](&m.Service, ctx, "CreateApplication", in)
}

func (m *KinesisAnalyticsClient) DeleteApplication(ctx context.Context, in *kinesisanalytics.DeleteApplicationInput, _ ...func(*kinesisanalytics.Options)) (*kinesisanalytics.DeleteApplicationOutput, error) {
	return invoke[kinesisanalytics.DeleteApplicationOutput](&m.Service, ctx, "DeleteApplication", in)
}

func (m *KinesisAnalyticsClient) DeleteApplicationCloudWatchLoggingOption(ctx context.Context, in *kinesisanalytics.DeleteApplicationCloudWatchLoggingOptionInput, _ ...func(*kinesisanalytics.Options)) (*kinesisanalytics.DeleteApplicationCloudWatchLoggingOptionOutput, error) {
	return invoke[kinesisanalytics.DeleteApplicationCloudWatchLoggingOptionOutput](&m.Service, ctx, "DeleteApplicationCloudWatchLoggingOption", in)
}

func (m *KinesisAnalyticsClient) DeleteApplicationInputProcessingConfiguration(ctx context.Context, in *kinesisanalytics.DeleteApplicationInputProcessingConfigurationInput, _ ...func(*kinesisanalytics.Options)) (*kinesisanalytics.DeleteApplicationInputProcessingConfigurationOutput, error) {
	return invoke[kinesisanalytics.DeleteApplicationInputProcessingConfigurationOutput](&m.Service, ctx, "DeleteApplicationInputProcessingConfiguration", in)
}

func (m *KinesisAnalyticsClient) DeleteApplicationOutput(ctx context.Context, in *kinesisanalytics.DeleteApplicationOutputInput, _ ...func(*kinesisanalytics.Options)) (*kinesisanalytics.DeleteApplicationOutputOutput, error) {
	return invoke[kinesisanalytics.DeleteApplicationOutputOutput](&m.Service, ctx, "DeleteApplicationOutput", in)
}

func (m *KinesisAnalyticsClient) DeleteApplicationReferenceDataSource(ctx context.Context, in *kinesisanalytics.DeleteApplicationReferenceDataSourceInput, _ ...func(*kinesisanalytics.Options)) (*kinesisanalytics.DeleteApplicationReferenceDataSourceOutput, error) {
	return invoke[kinesisanalytics.DeleteApplicationReferenceDataSourceOutput](&m.Service, ctx, "DeleteApplicationReferenceDataSource", in)
}

func (m *KinesisAnalyticsClient) DescribeApplication(ctx context.Context, in *kinesisanalytics.DescribeApplicationInput, _ ...func(*kinesisanalytics.Options)) (*kinesisanalytics.DescribeApplicationOutput, error) {
	return invoke[kinesisanalytics.DescribeApplicationOutput](&m.Service, ctx, "DescribeApplication", in)
}

func (m *KinesisAnalyticsClient) DiscoverInputSchema(ctx context.Context, in *kinesisanalytics.DiscoverInputSchemaInput, _ ...func(*kinesisanalytics.Options)) (*kinesisanalytics.DiscoverInputSchemaOutput, error) {
	return invoke[kinesisanalytics.DiscoverInputSchemaOutput](&m.Service, ctx, "DiscoverInputSchema", in)
}

func (m *KinesisAnalyticsClient) ListApplications(ctx context.Context, in *kinesisanalytics.ListApplicationsInput, _ ...func(*kinesisanalytics.Options)) (*kinesisanalytics.ListApplicationsOutput, error) {
	return invoke[kinesisanalytics.ListApplicationsOutput](&m.Service, ctx, "ListApplications", in)
}

func (m *KinesisAnalyticsClient) ListTagsForResource(ctx context.Context, in *kinesisanalytics.ListTagsForResourceInput, _ ...func(*kinesisanalytics.Options)) (*kinesisanalytics.ListTagsForResourceOutput, error) {
	return invoke[kinesisanalytics.ListTagsForResourceOutput](&m.Service, ctx, "ListTagsForResource", in)
}

func (m *KinesisAnalyticsClient) StartApplication(ctx context.Context, in *kinesisanalytics.StartApplicationInput, _ ...func(*kinesisanalytics.Options)) (*kinesisanalytics.StartApplicationOutput, error) {
	return invoke[kinesisanalytics.StartApplicationOutput](&m.Service, ctx, "StartApplication", in)
}

func (m *KinesisAnalyticsClient) StopApplication(ctx context.Context, in *kinesisanalytics.StopApplicationInput, _ ...func(*kinesisanalytics.Options)) (*kinesisanalytics.StopApplicationOutput, error) {
	return invoke[kinesisanalytics.StopApplicationOutput](&m.Service, ctx, "StopApplication", in)
}

func (m *KinesisAnalyticsClient) TagResource(ctx context.Context, in *kinesisanalytics.TagResourceInput, _ ...func(*kinesisanalytics.Options)) (*kinesisanalytics.TagResourceOutput, error) {
	return invoke[kinesisanalytics.TagResourceOutput](&m.Service, ctx, "TagResource", in)
}

func (m *KinesisAnalyticsClient) UntagResource(ctx context.Context, in *kinesisanalytics.UntagResourceInput, _ ...func(*kinesisanalytics.Options)) (*kinesisanalytics.UntagResourceOutput, error) {
	return invoke[kinesisanalytics.UntagResourceOutput](&m.Service, ctx, "UntagResource", in)
}

func (m *KinesisAnalyticsClient) UpdateApplication(ctx context.Context, in *kinesisanalytics.UpdateApplicationInput, _ ...func(*kinesisanalytics.Options)) (*kinesisanalytics.UpdateApplicationOutput, error) {
	return invoke[kinesisanalytics.UpdateApplicationOutput](&m.Service, ctx, "UpdateApplication", in)
}
