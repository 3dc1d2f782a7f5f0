// Package slk holds the Amazon Security Lake commands.
package slk

import (
	"context"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/service/securitylake"
	"github.com/aws/aws-sdk-go-v2/service/securitylake/types"

	"github.com/gurre/awscmd/aws"
	"github.com/gurre/awscmd/binder"
	"github.com/gurre/awscmd/cmdlet"
	"github.com/gurre/awscmd/optional"
	"github.com/gurre/awscmd/render"
)

const (
	service = "securitylake"
	prefix  = "SLK"
)

var errNoClient = errors.New("no Security Lake client configured")

func init() {
	render.RegisterConverter(outputLogSource)
}

// Commands returns every Security Lake command.
func Commands() []cmdlet.Command {
	return []cmdlet.Command{
		newAwsLogSource(),
		newCustomLogSource(),
		newDataLake(),
		newDataLakeExceptionSubscription(),
		newDataLakeOrganizationConfiguration(),
		newSubscriber(),
		newSubscriberNotification(),
		removeAwsLogSource(),
		removeCustomLogSource(),
		removeDataLake(),
		removeDataLakeExceptionSubscription(),
		removeDataLakeOrganizationConfiguration(),
		removeSubscriber(),
		removeSubscriberNotification(),
		unregisterDelegatedAdministrator(),
		getDataLakeExceptionSubscription(),
		getDataLakeOrganizationConfiguration(),
		getDataLakeSource(),
		getSubscriber(),
		getDataLakeExceptionList(),
		getDataLake(),
		getLogSource(),
		getSubscriberList(),
		getResourceTag(),
		registerDelegatedAdministrator(),
		addResourceTag(),
		removeResourceTag(),
		updateDataLake(),
		updateDataLakeExceptionSubscription(),
		updateSubscriber(),
		updateSubscriberNotification(),
	}
}

func call[In, Out any](fn func(aws.SecurityLakeClient, context.Context, *In, ...func(*securitylake.Options)) (*Out, error)) func(context.Context, cmdlet.Clients, *In) (*Out, error) {
	return func(ctx context.Context, c cmdlet.Clients, in *In) (*Out, error) {
		if c.SecurityLake == nil {
			return nil, errNoClient
		}
		return fn(c.SecurityLake, ctx, in)
	}
}

func action(name string) string { return service + ":" + name }

// noParams is the parameter set of operations whose request has no members.
type noParams struct{}

func empty[In any](*noParams) (*In, error) { return new(In), nil }

// logSource is the flag form of one LogSourceResource union value: exactly
// one member must be set.
type logSource struct {
	AwsLogSource    *types.AwsLogSourceResource    `json:"AwsLogSource,omitempty"`
	CustomLogSource *types.CustomLogSourceResource `json:"CustomLogSource,omitempty"`
}

const logSourceUsage = `JSON list of log sources, each {"AwsLogSource":{"SourceName","SourceVersion"}} or {"CustomLogSource":{"SourceName","SourceVersion"}}`

// logSources converts bound log sources to union values. A bound empty list
// yields an empty, non-nil slice.
func logSources(v optional.Value[[]logSource]) ([]types.LogSourceResource, error) {
	items, ok := v.Get()
	if !ok {
		return nil, nil
	}
	out := make([]types.LogSourceResource, 0, len(items))
	for i, s := range items {
		switch {
		case s.AwsLogSource != nil && s.CustomLogSource != nil:
			return nil, fmt.Errorf("%w: source %d sets both AwsLogSource and CustomLogSource", cmdlet.ErrUnionConflict, i)
		case s.AwsLogSource != nil:
			out = append(out, &types.LogSourceResourceMemberAwsLogSource{Value: *s.AwsLogSource})
		case s.CustomLogSource != nil:
			out = append(out, &types.LogSourceResourceMemberCustomLogSource{Value: *s.CustomLogSource})
		default:
			return nil, fmt.Errorf("%w: source %d sets neither AwsLogSource nor CustomLogSource", cmdlet.ErrUnionConflict, i)
		}
	}
	return out, nil
}

// outputLogSource renders a LogSourceResource in the shape -Source accepts,
// so listed sources can be passed back to another command.
func outputLogSource(r types.LogSourceResource) any {
	switch v := r.(type) {
	case *types.LogSourceResourceMemberAwsLogSource:
		return logSource{AwsLogSource: &v.Value}
	case *types.LogSourceResourceMemberCustomLogSource:
		return logSource{CustomLogSource: &v.Value}
	default:
		return r
	}
}

// identityParams bind an AwsIdentity under a flag prefix.
type identityParams struct {
	ExternalId optional.Value[string]
	Principal  optional.Value[string]
}

func (p *identityParams) bind(s *binder.Set, member, alias string, opts ...binder.Option) {
	with := func(field string) []binder.Option {
		if alias == "" || alias == member {
			return opts
		}
		return append([]binder.Option{binder.Alias(alias + field)}, opts...)
	}
	binder.String(s, &p.ExternalId, member+"_ExternalId", "external ID used to establish trust", with("_ExternalId")...)
	binder.String(s, &p.Principal, member+"_Principal", "AWS account ID or service principal", with("_Principal")...)
}

func (p *identityParams) build() *types.AwsIdentity {
	return optional.Group(func(id *types.AwsIdentity, b *optional.Builder) {
		optional.Set(b, &id.ExternalId, p.ExternalId)
		optional.Set(b, &id.Principal, p.Principal)
	})
}

// notificationParams bind the NotificationConfiguration union. The HTTPS
// variant is chosen by any of its members, the SQS variant by its switch.
type notificationParams struct {
	Endpoint      optional.Value[string]
	TargetRoleArn optional.Value[string]
	APIKeyName    optional.Value[string]
	APIKeyValue   optional.Value[string]
	HTTPMethod    optional.Value[types.HttpMethod]
	SQS           optional.Value[bool]
}

func (p *notificationParams) bind(s *binder.Set) {
	const https = "HttpsNotificationConfiguration_"
	binder.String(s, &p.Endpoint, https+"Endpoint", "subscription endpoint notifications are sent to",
		binder.Alias("Configuration_"+https+"Endpoint"))
	binder.String(s, &p.TargetRoleArn, https+"TargetRoleArn", "ARN of the role used to reach the endpoint",
		binder.Alias("Configuration_"+https+"TargetRoleArn"))
	binder.String(s, &p.APIKeyName, https+"AuthorizationApiKeyName", "name of the API key header",
		binder.Alias("Configuration_"+https+"AuthorizationApiKeyName"))
	binder.String(s, &p.APIKeyValue, https+"AuthorizationApiKeyValue", "value of the API key",
		binder.Alias("Configuration_"+https+"AuthorizationApiKeyValue"))
	binder.Enum(s, &p.HTTPMethod, https+"HttpMethod", "HTTP method of the notification",
		types.HttpMethod("").Values(), binder.Alias("Configuration_"+https+"HttpMethod"))
	binder.Switch(s, &p.SQS, "SqsNotificationConfiguration", "notify through an SQS queue created by Security Lake",
		binder.Alias("Configuration_SqsNotificationConfiguration"))
}

func (p *notificationParams) build() (types.NotificationConfiguration, error) {
	https := optional.Group(func(h *types.HttpsNotificationConfiguration, b *optional.Builder) {
		optional.Set(b, &h.Endpoint, p.Endpoint)
		optional.Set(b, &h.TargetRoleArn, p.TargetRoleArn)
		optional.Set(b, &h.AuthorizationApiKeyName, p.APIKeyName)
		optional.Set(b, &h.AuthorizationApiKeyValue, p.APIKeyValue)
		optional.SetValue(b, &h.HttpMethod, p.HTTPMethod)
	})
	sqs := p.SQS.Or(false)
	switch {
	case https != nil && sqs:
		return nil, fmt.Errorf("%w: HttpsNotificationConfiguration and SqsNotificationConfiguration", cmdlet.ErrUnionConflict)
	case https != nil:
		return &types.NotificationConfigurationMemberHttpsNotificationConfiguration{Value: *https}, nil
	case sqs:
		return &types.NotificationConfigurationMemberSqsNotificationConfiguration{Value: types.SqsNotificationConfiguration{}}, nil
	}
	return nil, nil
}

// pageParams are the paging members of list operations. Each invocation
// fetches one page; NextToken continues.
type pageParams struct {
	MaxResults optional.Value[int32]
	NextToken  optional.Value[string]
}

func (p *pageParams) bind(s *binder.Set) {
	binder.Int32(s, &p.MaxResults, "MaxResult", "maximum number of results in the page", binder.Alias("MaxItems", "MaxResults"))
	binder.String(s, &p.NextToken, "NextToken", "token of the page to fetch, from a previous response")
}
