package slk

import (
	"bytes"
	"context"
	"testing"

	"github.com/aws/aws-sdk-go-v2/service/securitylake"
	"github.com/aws/aws-sdk-go-v2/service/securitylake/types"
	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/gurre/awscmd/cmdlet"
	"github.com/gurre/awscmd/integration/mock"
	"github.com/gurre/awscmd/optional"
	"github.com/gurre/awscmd/render"
)

type harness struct {
	client *mock.SecurityLakeClient
	env    *cmdlet.Env
	out    *bytes.Buffer
	logs   *observer.ObservedLogs
}

func newHarness() *harness {
	core, logs := observer.New(zap.WarnLevel)
	out := &bytes.Buffer{}
	client := mock.NewSecurityLakeClient()
	return &harness{
		client: client,
		out:    out,
		logs:   logs,
		env: &cmdlet.Env{
			Clients:   cmdlet.Clients{SecurityLake: client},
			Region:    "us-east-1",
			Strict:    true,
			Force:     true,
			Threshold: cmdlet.ImpactHigh,
			Output:    render.NewWriter(out, render.FormatJSON),
			Logger:    zap.New(core),
			Tracker:   cmdlet.NewTracker(),
		},
	}
}

func (h *harness) run(t *testing.T, name string, args ...string) error {
	t.Helper()
	cmd, ok := cmdlet.NewRegistry(Commands()).Lookup(name)
	require.True(t, ok, "command %s", name)
	return cmd.Run(context.Background(), h.env, cmdlet.Request{Args: args})
}

func ptr[T any](v T) *T { return &v }

func TestCommands(t *testing.T) {
	cmds := Commands()
	assert.Len(t, cmds, 31)
	for _, c := range cmdlet.NewRegistry(cmds).All() {
		assert.Contains(t, c.Name(), "-SLK")
		assert.Equal(t, service, c.Info().Service)
	}
}

func TestNotificationHTTPSVariant(t *testing.T) {
	h := newHarness()
	require.NoError(t, h.run(t, "New-SLKSubscriberNotification",
		"-SubscriberId", "sub-1",
		"-HttpsNotificationConfiguration_Endpoint", "https://example.com/hook",
		"-Configuration_HttpsNotificationConfiguration_HttpMethod", "POST",
		"-HttpsNotificationConfiguration_TargetRoleArn", "arn:aws:iam::123456789012:role/notify"))

	in := h.client.LastInput().(*securitylake.CreateSubscriberNotificationInput)
	https, ok := in.Configuration.(*types.NotificationConfigurationMemberHttpsNotificationConfiguration)
	require.True(t, ok, "got %T", in.Configuration)
	assert.Equal(t, "https://example.com/hook", *https.Value.Endpoint)
	assert.Equal(t, types.HttpMethodPost, https.Value.HttpMethod)
	assert.Nil(t, https.Value.AuthorizationApiKeyName)
}

func TestNotificationSQSVariant(t *testing.T) {
	h := newHarness()
	require.NoError(t, h.run(t, "Update-SLKSubscriberNotification",
		"-SubscriberId", "sub-1", "-SqsNotificationConfiguration"))

	in := h.client.LastInput().(*securitylake.UpdateSubscriberNotificationInput)
	_, ok := in.Configuration.(*types.NotificationConfigurationMemberSqsNotificationConfiguration)
	assert.True(t, ok, "got %T", in.Configuration)
}

func TestNotificationWithoutVariantIsNil(t *testing.T) {
	h := newHarness()
	require.NoError(t, h.run(t, "New-SLKSubscriberNotification", "-SubscriberId", "sub-1"))
	in := h.client.LastInput().(*securitylake.CreateSubscriberNotificationInput)
	assert.Nil(t, in.Configuration)
}

func TestNotificationUnionConflictMakesNoCall(t *testing.T) {
	h := newHarness()
	err := h.run(t, "New-SLKSubscriberNotification",
		"-SubscriberId", "sub-1",
		"-HttpsNotificationConfiguration_Endpoint", "https://example.com/hook",
		"-SqsNotificationConfiguration")
	assert.ErrorIs(t, err, cmdlet.ErrUnionConflict)
	assert.Zero(t, h.client.CallCount())
}

func TestSubscriberSources(t *testing.T) {
	h := newHarness()
	require.NoError(t, h.run(t, "New-SLKSubscriber",
		"-SubscriberName", "siem",
		"-SubscriberIdentity_Principal", "123456789012",
		"-SubscriberIdentity_ExternalId", "ext-1",
		"-Source", `[{"AwsLogSource":{"SourceName":"CLOUD_TRAIL_MGMT","SourceVersion":"2.0"}},{"CustomLogSource":{"SourceName":"firewall"}}]`,
		"-AccessType", "S3"))

	in := h.client.LastInput().(*securitylake.CreateSubscriberInput)
	require.Len(t, in.Sources, 2)
	aws, ok := in.Sources[0].(*types.LogSourceResourceMemberAwsLogSource)
	require.True(t, ok)
	assert.Equal(t, types.AwsLogSourceNameCloudTrailMgmt, aws.Value.SourceName)
	custom, ok := in.Sources[1].(*types.LogSourceResourceMemberCustomLogSource)
	require.True(t, ok)
	assert.Equal(t, "firewall", *custom.Value.SourceName)
	assert.Equal(t, "ext-1", *in.SubscriberIdentity.ExternalId)
	assert.Equal(t, []types.AccessType{types.AccessTypeS3}, in.AccessTypes)
	assert.Zero(t, h.logs.Len())
}

func TestSourceWithBothVariantsConflicts(t *testing.T) {
	h := newHarness()
	err := h.run(t, "Get-SLKLogSource",
		"-Source", `[{"AwsLogSource":{"SourceName":"S3_DATA"},"CustomLogSource":{"SourceName":"x"}}]`)
	assert.ErrorIs(t, err, cmdlet.ErrUnionConflict)
	assert.Zero(t, h.client.CallCount())
}

func TestSourceWithNoVariantIsUsageError(t *testing.T) {
	h := newHarness()
	err := h.run(t, "Update-SLKSubscriber", "-SubscriberId", "sub-1", "-Source", `[{"Value":{"SourceName":"ROUTE53"}}]`)
	assert.ErrorIs(t, err, cmdlet.ErrUnionConflict)
	assert.True(t, cmdlet.IsUsageError(err))
	assert.Zero(t, h.client.CallCount())
}

func TestSubscriberSourcesRoundTrip(t *testing.T) {
	h := newHarness()
	h.client.Respond("GetSubscriber", &securitylake.GetSubscriberOutput{
		Subscriber: &types.SubscriberResource{
			SubscriberId:   ptr("sub-1"),
			SubscriberName: ptr("siem"),
			Sources: []types.LogSourceResource{
				&types.LogSourceResourceMemberAwsLogSource{Value: types.AwsLogSourceResource{
					SourceName:    types.AwsLogSourceNameRoute53,
					SourceVersion: ptr("2.0"),
				}},
				&types.LogSourceResourceMemberCustomLogSource{Value: types.CustomLogSourceResource{
					SourceName: ptr("mine"),
				}},
			},
		},
	})
	require.NoError(t, h.run(t, "Get-SLKSubscriber", "-SubscriberId", "sub-1"))
	assert.NotContains(t, h.out.String(), `"Value"`)

	var got struct {
		SubscriberName string
		Sources        json.RawMessage
	}
	require.NoError(t, json.Unmarshal(h.out.Bytes(), &got))
	assert.Equal(t, "siem", got.SubscriberName)

	require.NoError(t, h.run(t, "Update-SLKSubscriber", "-SubscriberId", "sub-1", "-Source", string(got.Sources)))
	require.Equal(t, 2, h.client.CallCount())
	in := h.client.LastInput().(*securitylake.UpdateSubscriberInput)
	require.Len(t, in.Sources, 2)
	aws, ok := in.Sources[0].(*types.LogSourceResourceMemberAwsLogSource)
	require.True(t, ok, "got %T", in.Sources[0])
	assert.Equal(t, types.AwsLogSourceNameRoute53, aws.Value.SourceName)
	assert.Equal(t, "2.0", *aws.Value.SourceVersion)
	custom, ok := in.Sources[1].(*types.LogSourceResourceMemberCustomLogSource)
	require.True(t, ok, "got %T", in.Sources[1])
	assert.Equal(t, "mine", *custom.Value.SourceName)
}

func TestEmptySourceListIsPresent(t *testing.T) {
	h := newHarness()
	require.NoError(t, h.run(t, "Update-SLKSubscriber", "-SubscriberId", "sub-1", "-Source", "[]"))
	in := h.client.LastInput().(*securitylake.UpdateSubscriberInput)
	assert.NotNil(t, in.Sources)
	assert.Empty(t, in.Sources)
	assert.Nil(t, in.SubscriberIdentity)
	assert.Nil(t, in.SubscriberName)
}

func TestCustomLogSourceConfiguration(t *testing.T) {
	h := newHarness()
	require.NoError(t, h.run(t, "New-SLKCustomLogSource",
		"-SourceName", "firewall",
		"-EventClass", "NETWORK_ACTIVITY,DNS_ACTIVITY",
		"-Configuration_CrawlerConfiguration_RoleArn", "arn:aws:iam::123456789012:role/crawler"))

	in := h.client.LastInput().(*securitylake.CreateCustomLogSourceInput)
	require.NotNil(t, in.Configuration)
	assert.Equal(t, "arn:aws:iam::123456789012:role/crawler", *in.Configuration.CrawlerConfiguration.RoleArn)
	assert.Nil(t, in.Configuration.ProviderIdentity)
	assert.Equal(t, []string{"NETWORK_ACTIVITY", "DNS_ACTIVITY"}, in.EventClasses)
}

func TestDataLakeConfigurations(t *testing.T) {
	h := newHarness()
	h.client.Respond("CreateDataLake", &securitylake.CreateDataLakeOutput{
		DataLakes: []types.DataLakeResource{{DataLakeArn: ptr("arn:lake"), Region: ptr("eu-west-1")}},
	})
	require.NoError(t, h.run(t, "New-SLKDataLake",
		"-Configuration", `[{"Region":"eu-west-1","LifecycleConfiguration":{"Expiration":{"Days":365}}}]`,
		"-MetaStoreManagerRoleArn", "arn:aws:iam::123456789012:role/meta"))

	in := h.client.LastInput().(*securitylake.CreateDataLakeInput)
	require.Len(t, in.Configurations, 1)
	assert.Equal(t, int32(365), *in.Configurations[0].LifecycleConfiguration.Expiration.Days)
	assert.Contains(t, h.out.String(), `"DataLakeArn": "arn:lake"`)
}

func TestOperationsWithoutParameters(t *testing.T) {
	h := newHarness()
	h.client.Respond("GetDataLakeExceptionSubscription", &securitylake.GetDataLakeExceptionSubscriptionOutput{
		ExceptionTimeToLive: ptr(int64(7)),
	})
	require.NoError(t, h.run(t, "Get-SLKDataLakeExceptionSubscription", "-Select", "ExceptionTimeToLive"))
	assert.Equal(t, "7\n", h.out.String())

	require.NoError(t, h.run(t, "Unregister-SLKDataLakeDelegatedAdministrator"))
	assert.Equal(t, 2, h.client.CallCount())
}

func TestPagedListEmitsNextToken(t *testing.T) {
	h := newHarness()
	h.client.Respond("ListSubscribers", &securitylake.ListSubscribersOutput{NextToken: ptr("page-2")})
	require.NoError(t, h.run(t, "Get-SLKSubscriberList", "-MaxResult", "10"))

	in := h.client.LastInput().(*securitylake.ListSubscribersInput)
	assert.Equal(t, int32(10), *in.MaxResults)
	assert.Nil(t, in.NextToken)
	assert.Contains(t, h.out.String(), `"NextToken": "page-2"`)
}

func TestRemoveDataLakePassThru(t *testing.T) {
	h := newHarness()
	require.NoError(t, h.run(t, "Remove-SLKDataLake", "-Region", "eu-west-1,eu-north-1", "-PassThru"))
	in := h.client.LastInput().(*securitylake.DeleteDataLakeInput)
	assert.Equal(t, []string{"eu-west-1", "eu-north-1"}, in.Regions)
	assert.JSONEq(t, `["eu-west-1","eu-north-1"]`, h.out.String())
}

func TestDeclinedUnregisterMakesNoCall(t *testing.T) {
	h := newHarness()
	h.env.Force = false
	h.env.Confirmer = cmdlet.Decline
	require.NoError(t, h.run(t, "Unregister-SLKDataLakeDelegatedAdministrator"))
	assert.Zero(t, h.client.CallCount())

	require.NoError(t, h.run(t, "Unregister-SLKDataLakeDelegatedAdministrator", "-Force"))
	assert.Equal(t, 1, h.client.CallCount())
}

func TestPipelineBindsSubscriberId(t *testing.T) {
	h := newHarness()
	cmd, _ := cmdlet.NewRegistry(Commands()).Lookup("Get-SLKSubscriber")
	err := cmd.Run(context.Background(), h.env, cmdlet.Request{Pipeline: optional.Of("sub-9")})
	require.NoError(t, err)
	in := h.client.LastInput().(*securitylake.GetSubscriberInput)
	assert.Equal(t, "sub-9", *in.SubscriberId)
}
