package mock

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/service/securitylake"

	"github.com/gurre/awscmd/aws"
)

// SecurityLakeClient is a recording mock of aws.SecurityLakeClient.
type SecurityLakeClient struct {
	Service
}

var _ aws.SecurityLakeClient = (*SecurityLakeClient)(nil)

// NewSecurityLakeClient creates a new mock Security Lake client.
func NewSecurityLakeClient() *SecurityLakeClient { return &SecurityLakeClient{} }

func (m *SecurityLakeClient) CreateAwsLogSource(ctx context.Context, in *securitylake.CreateAwsLogSourceInput, _ ...func(*securitylake.Options)) (*securitylake.CreateAwsLogSourceOutput, error) {
	return invoke[securitylake.CreateAwsLogSourceOutput](&m.Service, ctx, "CreateAwsLogSource", in)
}

func (m *SecurityLakeClient) CreateCustomLogSource(ctx context.Context, in *securitylake.CreateCustomLogSourceInput, _ ...func(*securitylake.Options)) (*securitylake.CreateCustomLogSourceOutput, error) {
	return invoke[securitylake.CreateCustomLogSourceOutput](&m.Service, ctx, "CreateCustomLogSource", in)
}

func (m *SecurityLakeClient) CreateDataLake(ctx context.Context, in *securitylake.CreateDataLakeInput, _ ...func(*securitylake.Options)) (*securitylake.CreateDataLakeOutput, error) {
	return invoke[securitylake.CreateDataLakeOutput](&m.Service, ctx, "CreateDataLake", in)
}

func (m *SecurityLakeClient) CreateDataLakeExceptionSubscription(ctx context.Context, in *securitylake.CreateDataLakeExceptionSubscriptionInput, _ ...func(*securitylake.Options)) (*securitylake.CreateDataLakeExceptionSubscriptionOutput, error) {
	return invoke[securitylake.CreateDataLakeExceptionSubscriptionOutput](&m.Service, ctx, "CreateDataLakeExceptionSubscription", in)
}

func (m *SecurityLakeClient) CreateDataLakeOrganizationConfiguration(ctx context.Context, in *securitylake.CreateDataLakeOrganizationConfigurationInput, _ ...func(*securitylake.Options)) (*securitylake.CreateDataLakeOrganizationConfigurationOutput, error) {
	return invoke[securitylake.CreateDataLakeOrganizationConfigurationOutput](&m.Service, ctx, "CreateDataLakeOrganizationConfiguration", in)
}

func (m *SecurityLakeClient) CreateSubscriber(ctx context.Context, in *securitylake.CreateSubscriberInput, _ ...func(*securitylake.Options)) (*securitylake.CreateSubscriberOutput, error) {
	return invoke[securitylake.CreateSubscriberOutput](&m.Service, ctx, "CreateSubscriber", in)
}

func (m *SecurityLakeClient) CreateSubscriberNotification(ctx context.Context, in *securitylake.CreateSubscriberNotificationInput, _ ...func(*securitylake.Options)) (*securitylake.CreateSubscriberNotificationOutput, error) {
	return invoke[securitylake.CreateSubscriberNotificationOutput](&m.Service, ctx, "CreateSubscriberNotification", in)
}

func (m *SecurityLakeClient) DeleteAwsLogSource(ctx context.Context, in *securitylake.DeleteAwsLogSourceInput, _ ...func(*securitylake.Options)) (*securitylake.DeleteAwsLogSourceOutput, error) {
	return invoke[securitylake.DeleteAwsLogSourceOutput](&m.Service, ctx, "DeleteAwsLogSource", in)
}

func (m *SecurityLakeClient) DeleteCustomLogSource(ctx context.Context, in *securitylake.DeleteCustomLogSourceInput, _ ...func(*securitylake.Options)) (*securitylake.DeleteCustomLogSourceOutput, error) {
	return invoke[securitylake.DeleteCustomLogSourceOutput](&m.Service, ctx, "DeleteCustomLogSource", in)
}

func (m *SecurityLakeClient) DeleteDataLake(ctx context.Context, in *securitylake.DeleteDataLakeInput, _ ...func(*securitylake.Options)) (*securitylake.DeleteDataLakeOutput, error) {
	return invoke[securitylake.DeleteDataLakeOutput](&m.Service, ctx, "DeleteDataLake", in)
}

func (m *SecurityLakeClient) DeleteDataLakeExceptionSubscription(ctx context.Context, in *securitylake.DeleteDataLakeExceptionSubscriptionInput, _ ...func(*securitylake.Options)) (*securitylake.DeleteDataLakeExceptionSubscriptionOutput, error) {
	return invoke[securitylake.DeleteDataLakeExceptionSubscriptionOutput](&m.Service, ctx, "DeleteDataLakeExceptionSubscription", in)
}

func (m *SecurityLakeClient) DeleteDataLakeOrganizationConfiguration(ctx context.Context, in *securitylake.DeleteDataLakeOrganizationConfigurationInput, _ ...func(*securitylake.Options)) (*securitylake.DeleteDataLakeOrganizationConfigurationOutput, error) {
	return invoke[securitylake.DeleteDataLakeOrganizationConfigurationOutput](&m.Service, ctx, "DeleteDataLakeOrganizationConfiguration", in)
}

func (m *SecurityLakeClient) DeleteSubscriber(ctx context.Context, in *securitylake.DeleteSubscriberInput, _ ...func(*securitylake.Options)) (*securitylake.DeleteSubscriberOutput, error) {
	return invoke[securitylake.DeleteSubscriberOutput](&m.Service, ctx, "DeleteSubscriber", in)
}

func (m *SecurityLakeClient) DeleteSubscriberNotification(ctx context.Context, in *securitylake.DeleteSubscriberNotificationInput, _ ...func(*securitylake.Options)) (*securitylake.DeleteSubscriberNotificationOutput, error) {
	return invoke[securitylake.DeleteSubscriberNotificationOutput](&m.Service, ctx, "DeleteSubscriberNotification", in)
}

func (m *SecurityLakeClient) DeregisterDataLakeDelegatedAdministrator(ctx context.Context, in *securitylake.DeregisterDataLakeDelegatedAdministratorInput, _ ...func(*securitylake.Options)) (*securitylake.DeregisterDataLakeDelegatedAdministratorOutput, error) {
	return invoke[securitylake.DeregisterDataLakeDelegatedAdministratorOutput](&m.Service, ctx, "DeregisterDataLakeDelegatedAdministrator", in)
}

func (m *SecurityLakeClient) GetDataLakeExceptionSubscription(ctx context.Context, in *securitylake.GetDataLakeExceptionSubscriptionInput, _ ...func(*securitylake.Options)) (*securitylake.GetDataLakeExceptionSubscriptionOutput, error) {
	return invoke[securitylake.GetDataLakeExceptionSubscriptionOutput](&m.Service, ctx, "GetDataLakeExceptionSubscription", in)
}

func (m *SecurityLakeClient) GetDataLakeOrganizationConfiguration(ctx context.Context, in *securitylake.GetDataLakeOrganizationConfigurationInput, _ ...func(*securitylake.Options)) (*securitylake.GetDataLakeOrganizationConfigurationOutput, error) {
	return invoke[securitylake.GetDataLakeOrganizationConfigurationOutput](&m.Service, ctx, "GetDataLakeOrganizationConfiguration", in)
}

func (m *SecurityLakeClient) GetDataLakeSources(ctx context.Context, in *securitylake.GetDataLakeSourcesInput, _ ...func(*securitylake.Options)) (*securitylake.GetDataLakeSourcesOutput, error) {
	return invoke[securitylake.GetDataLakeSourcesOutput](&m.Service, ctx, "GetDataLakeSources", in)
}

func (m *SecurityLakeClient) GetSubscriber(ctx context.Context, in *securitylake.GetSubscriberInput, _ ...func(*securitylake.Options)) (*securitylake.GetSubscriberOutput, error) {
	return invoke[securitylake.GetSubscriberOutput](&m.Service, ctx, "GetSubscriber", in)
}

func (m *SecurityLakeClient) ListDataLakeExceptions(ctx context.Context, in *securitylake.ListDataLakeExceptionsInput, _ ...func(*securitylake.Options)) (*securitylake.ListDataLakeExceptionsOutput, error) {
	return invoke[securitylake.ListDataLakeExceptionsOutput](&m.Service, ctx, "ListDataLakeExceptions", in)
}

func (m *SecurityLakeClient) ListDataLakes(ctx context.Context, in *securitylake.ListDataLakesInput, _ ...func(*securitylake.Options)) (*securitylake.ListDataLakesOutput, error) {
	return invoke[securitylake.ListDataLakesOutput](&m.Service, ctx, "ListDataLakes", in)
}

func (m *SecurityLakeClient) ListLogSources(ctx context.Context, in *securitylake.ListLogSourcesInput, _ ...func(*securitylake.Options)) (*securitylake.ListLogSourcesOutput, error) {
	return invoke[securitylake.ListLogSourcesOutput](&m.Service, ctx, "ListLogSources", in)
}

func (m *SecurityLakeClient) ListSubscribers(ctx context.Context, in *securitylake.ListSubscribersInput, _ ...func(*securitylake.Options)) (*securitylake.ListSubscribersOutput, error) {
	return invoke[securitylake.ListSubscribersOutput](&m.Service, ctx, "ListSubscribers", in)
}

func (m *SecurityLakeClient) ListTagsForResource(ctx context.Context, in *securitylake.ListTagsForResourceInput, _ ...func(*securitylake.Options)) (*securitylake.ListTagsForResourceOutput, error) {
	return invoke[securitylake.ListTagsForResourceOutput](&m.Service, ctx, "ListTagsForResource", in)
}

func (m *SecurityLakeClient) RegisterDataLakeDelegatedAdministrator(ctx context.Context, in *securitylake.RegisterDataLakeDelegatedAdministratorInput, _ ...func(*securitylake.Options)) (*securitylake.RegisterDataLakeDelegatedAdministratorOutput, error) {
	return invoke[securitylake.RegisterDataLakeDelegatedAdministratorOutput](&m.Service, ctx, "RegisterDataLakeDelegatedAdministrator", in)
}

func (m *SecurityLakeClient) TagResource(ctx context.Context, in *securitylake.TagResourceInput, _ ...func(*securitylake.Options)) (*securitylake.TagResourceOutput, error) {
	return invoke[securitylake.TagResourceOutput](&m.Service, ctx, "TagResource", in)
}

func (m *SecurityLakeClient) UntagResource(ctx context.Context, in *securitylake.UntagResourceInput, _ ...func(*securitylake.Options)) (*securitylake.UntagResourceOutput, error) {
	return invoke[securitylake.UntagResourceOutput](&m.Service, ctx, "UntagResource", in)
}

func (m *SecurityLakeClient) UpdateDataLake(ctx context.Context, in *securitylake.UpdateDataLakeInput, _ ...func(*securitylake.Options)) (*securitylake.UpdateDataLakeOutput, error) {
	return invoke[securitylake.UpdateDataLakeOutput](&m.Service, ctx, "UpdateDataLake", in)
}

func (m *SecurityLakeClient) UpdateDataLakeExceptionSubscription(ctx context.Context, in *securitylake.UpdateDataLakeExceptionSubscriptionInput, _ ...func(*securitylake.Options)) (*securitylake.UpdateDataLakeExceptionSubscriptionOutput, error) {
	return invoke[securitylake.UpdateDataLakeExceptionSubscriptionOutput](&m.Service, ctx, "UpdateDataLakeExceptionSubscription", in)
}

func (m *SecurityLakeClient) UpdateSubscriber(ctx context.Context, in *securitylake.UpdateSubscriberInput, _ ...func(*securitylake.Options)) (*securitylake.UpdateSubscriberOutput, error) {
	return invoke[securitylake.UpdateSubscriberOutput](&m.Service, ctx, "UpdateSubscriber", in)
}

func (m *SecurityLakeClient) UpdateSubscriberNotification(ctx context.Context, in *securitylake.UpdateSubscriberNotificationInput, _ ...func(*securitylake.Options)) (*securitylake.UpdateSubscriberNotificationOutput, error) {
	return invoke[securitylake.UpdateSubscriberNotificationOutput](&m.Service, ctx, "UpdateSubscriberNotification", in)
}
