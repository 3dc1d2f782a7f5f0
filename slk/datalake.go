package slk

import (
	"strings"

	"github.com/aws/aws-sdk-go-v2/service/securitylake"
	"github.com/aws/aws-sdk-go-v2/service/securitylake/types"

	"github.com/gurre/awscmd/aws"
	"github.com/gurre/awscmd/binder"
	"github.com/gurre/awscmd/cmdlet"
	"github.com/gurre/awscmd/optional"
)

type dataLakeParams struct {
	Configurations          optional.Value[[]types.DataLakeConfiguration]
	MetaStoreManagerRoleArn optional.Value[string]
	Tags                    optional.Value[[]types.Tag]
}

func (p *dataLakeParams) bind(s *binder.Set, tags bool) {
	binder.JSON(s, &p.Configurations, "Configuration",
		`JSON list of per-Region configurations, e.g. [{"Region":"eu-west-1","LifecycleConfiguration":{"Expiration":{"Days":365}}}]`,
		binder.Required())
	binder.String(s, &p.MetaStoreManagerRoleArn, "MetaStoreManagerRoleArn", "ARN of the role that manages the Glue metastore")
	if tags {
		binder.JSON(s, &p.Tags, "Tag", `JSON list of {"Key","Value"}`)
	}
}

func (p *dataLakeParams) target() string {
	configs, _ := p.Configurations.Get()
	regions := make([]string, 0, len(configs))
	for _, c := range configs {
		if c.Region != nil {
			regions = append(regions, *c.Region)
		}
	}
	return strings.Join(regions, ",")
}

func newDataLake() cmdlet.Command {
	type (
		in  = securitylake.CreateDataLakeInput
		out = securitylake.CreateDataLakeOutput
	)
	return &cmdlet.Operation[dataLakeParams, in, out]{
		Verb:     "New",
		Noun:     prefix + "DataLake",
		Service:  service,
		Action:   action("CreateDataLake"),
		Synopsis: "Enables Security Lake in the configured Regions.",
		Impact:   cmdlet.ImpactMedium,
		Select:   "DataLakes",
		Selectors: map[string]func(*out) any{
			"DataLakes": func(o *out) any { return o.DataLakes },
		},
		Bind: func(s *binder.Set, p *dataLakeParams) { p.bind(s, true) },
		Build: func(p *dataLakeParams) (*in, error) {
			req := &in{MetaStoreManagerRoleArn: p.MetaStoreManagerRoleArn.Ptr()}
			req.Configurations, _ = p.Configurations.Get()
			req.Tags, _ = p.Tags.Get()
			return req, nil
		},
		Call:   call(aws.SecurityLakeClient.CreateDataLake),
		Target: func(p *dataLakeParams) string { return p.target() },
	}
}

func updateDataLake() cmdlet.Command {
	type (
		in  = securitylake.UpdateDataLakeInput
		out = securitylake.UpdateDataLakeOutput
	)
	return &cmdlet.Operation[dataLakeParams, in, out]{
		Verb:     "Update",
		Noun:     prefix + "DataLake",
		Service:  service,
		Action:   action("UpdateDataLake"),
		Synopsis: "Updates the encryption, lifecycle or replication settings of data lakes.",
		Impact:   cmdlet.ImpactMedium,
		Select:   "DataLakes",
		Selectors: map[string]func(*out) any{
			"DataLakes": func(o *out) any { return o.DataLakes },
		},
		Bind: func(s *binder.Set, p *dataLakeParams) { p.bind(s, false) },
		Build: func(p *dataLakeParams) (*in, error) {
			req := &in{MetaStoreManagerRoleArn: p.MetaStoreManagerRoleArn.Ptr()}
			req.Configurations, _ = p.Configurations.Get()
			return req, nil
		},
		Call:   call(aws.SecurityLakeClient.UpdateDataLake),
		Target: func(p *dataLakeParams) string { return p.target() },
	}
}

type regionsParams struct {
	Regions optional.Value[[]string]
}

func removeDataLake() cmdlet.Command {
	type (
		in  = securitylake.DeleteDataLakeInput
		out = securitylake.DeleteDataLakeOutput
	)
	return &cmdlet.Operation[regionsParams, in, out]{
		Verb:     "Remove",
		Noun:     prefix + "DataLake",
		Service:  service,
		Action:   action("DeleteDataLake"),
		Synopsis: "Disables Security Lake in the given Regions.",
		Impact:   cmdlet.ImpactHigh,
		PassThru: "Region",
		Select:   cmdlet.SelectNothing,
		Bind: func(s *binder.Set, p *regionsParams) {
			binder.Strings(s, &p.Regions, "Region", "Regions to disable Security Lake in", binder.Required(), binder.FromPipeline())
		},
		Build: func(p *regionsParams) (*in, error) {
			req := &in{}
			req.Regions, _ = p.Regions.Get()
			return req, nil
		},
		Call:   call(aws.SecurityLakeClient.DeleteDataLake),
		Target: func(p *regionsParams) string { return strings.Join(p.Regions.Or(nil), ",") },
	}
}

func getDataLake() cmdlet.Command {
	type (
		in  = securitylake.ListDataLakesInput
		out = securitylake.ListDataLakesOutput
	)
	return &cmdlet.Operation[regionsParams, in, out]{
		Verb:     "Get",
		Noun:     prefix + "DataLake",
		Service:  service,
		Action:   action("ListDataLakes"),
		Synopsis: "Lists the data lakes and their configuration, optionally for some Regions.",
		Impact:   cmdlet.ImpactNone,
		Select:   "DataLakes",
		Selectors: map[string]func(*out) any{
			"DataLakes": func(o *out) any { return o.DataLakes },
		},
		Bind: func(s *binder.Set, p *regionsParams) {
			binder.Strings(s, &p.Regions, "Region", "Regions to list", binder.FromPipeline())
		},
		Build: func(p *regionsParams) (*in, error) {
			req := &in{}
			req.Regions, _ = p.Regions.Get()
			return req, nil
		},
		Call: call(aws.SecurityLakeClient.ListDataLakes),
	}
}

type exceptionListParams struct {
	pageParams
	Regions optional.Value[[]string]
}

func getDataLakeExceptionList() cmdlet.Command {
	type (
		in  = securitylake.ListDataLakeExceptionsInput
		out = securitylake.ListDataLakeExceptionsOutput
	)
	return &cmdlet.Operation[exceptionListParams, in, out]{
		Verb:     "Get",
		Noun:     prefix + "DataLakeExceptionList",
		Service:  service,
		Action:   action("ListDataLakeExceptions"),
		Synopsis: "Lists the exceptions raised by data lakes in the last 14 days.",
		Impact:   cmdlet.ImpactNone,
		Select:   cmdlet.SelectAll,
		Selectors: map[string]func(*out) any{
			"Exceptions": func(o *out) any { return o.Exceptions },
			"NextToken":  func(o *out) any { return o.NextToken },
		},
		Bind: func(s *binder.Set, p *exceptionListParams) {
			binder.Strings(s, &p.Regions, "Region", "Regions to list exceptions for")
			p.pageParams.bind(s)
		},
		Build: func(p *exceptionListParams) (*in, error) {
			req := &in{MaxResults: p.MaxResults.Ptr(), NextToken: p.NextToken.Ptr()}
			req.Regions, _ = p.Regions.Get()
			return req, nil
		},
		Call: call(aws.SecurityLakeClient.ListDataLakeExceptions),
	}
}

type exceptionSubscriptionParams struct {
	NotificationEndpoint optional.Value[string]
	SubscriptionProtocol optional.Value[string]
	ExceptionTimeToLive  optional.Value[int64]
}

func (p *exceptionSubscriptionParams) bind(s *binder.Set) {
	binder.String(s, &p.NotificationEndpoint, "NotificationEndpoint", "account ID or endpoint exceptions are sent to", binder.Required(), binder.FromPipeline())
	binder.String(s, &p.SubscriptionProtocol, "SubscriptionProtocol", "protocol of the subscription, e.g. email or https", binder.Required())
	binder.Int64(s, &p.ExceptionTimeToLive, "ExceptionTimeToLive", "days an exception notification is kept")
}

func newDataLakeExceptionSubscription() cmdlet.Command {
	type (
		in  = securitylake.CreateDataLakeExceptionSubscriptionInput
		out = securitylake.CreateDataLakeExceptionSubscriptionOutput
	)
	return &cmdlet.Operation[exceptionSubscriptionParams, in, out]{
		Verb:     "New",
		Noun:     prefix + "DataLakeExceptionSubscription",
		Service:  service,
		Action:   action("CreateDataLakeExceptionSubscription"),
		Synopsis: "Subscribes to notifications of data lake exceptions.",
		Impact:   cmdlet.ImpactMedium,
		PassThru: "NotificationEndpoint",
		Select:   cmdlet.SelectNothing,
		Bind:     func(s *binder.Set, p *exceptionSubscriptionParams) { p.bind(s) },
		Build: func(p *exceptionSubscriptionParams) (*in, error) {
			return &in{
				NotificationEndpoint: p.NotificationEndpoint.Ptr(),
				SubscriptionProtocol: p.SubscriptionProtocol.Ptr(),
				ExceptionTimeToLive:  p.ExceptionTimeToLive.Ptr(),
			}, nil
		},
		Call:   call(aws.SecurityLakeClient.CreateDataLakeExceptionSubscription),
		Target: func(p *exceptionSubscriptionParams) string { return p.NotificationEndpoint.Or("") },
	}
}

func updateDataLakeExceptionSubscription() cmdlet.Command {
	type (
		in  = securitylake.UpdateDataLakeExceptionSubscriptionInput
		out = securitylake.UpdateDataLakeExceptionSubscriptionOutput
	)
	return &cmdlet.Operation[exceptionSubscriptionParams, in, out]{
		Verb:     "Update",
		Noun:     prefix + "DataLakeExceptionSubscription",
		Service:  service,
		Action:   action("UpdateDataLakeExceptionSubscription"),
		Synopsis: "Updates the endpoint or protocol of the exception subscription.",
		Impact:   cmdlet.ImpactMedium,
		PassThru: "NotificationEndpoint",
		Select:   cmdlet.SelectNothing,
		Bind:     func(s *binder.Set, p *exceptionSubscriptionParams) { p.bind(s) },
		Build: func(p *exceptionSubscriptionParams) (*in, error) {
			return &in{
				NotificationEndpoint: p.NotificationEndpoint.Ptr(),
				SubscriptionProtocol: p.SubscriptionProtocol.Ptr(),
				ExceptionTimeToLive:  p.ExceptionTimeToLive.Ptr(),
			}, nil
		},
		Call:   call(aws.SecurityLakeClient.UpdateDataLakeExceptionSubscription),
		Target: func(p *exceptionSubscriptionParams) string { return p.NotificationEndpoint.Or("") },
	}
}

func removeDataLakeExceptionSubscription() cmdlet.Command {
	type (
		in  = securitylake.DeleteDataLakeExceptionSubscriptionInput
		out = securitylake.DeleteDataLakeExceptionSubscriptionOutput
	)
	return &cmdlet.Operation[noParams, in, out]{
		Verb:     "Remove",
		Noun:     prefix + "DataLakeExceptionSubscription",
		Service:  service,
		Action:   action("DeleteDataLakeExceptionSubscription"),
		Synopsis: "Deletes the exception notification subscription.",
		Impact:   cmdlet.ImpactHigh,
		Select:   cmdlet.SelectNothing,
		Build:    empty[in],
		Call:     call(aws.SecurityLakeClient.DeleteDataLakeExceptionSubscription),
	}
}

func getDataLakeExceptionSubscription() cmdlet.Command {
	type (
		in  = securitylake.GetDataLakeExceptionSubscriptionInput
		out = securitylake.GetDataLakeExceptionSubscriptionOutput
	)
	return &cmdlet.Operation[noParams, in, out]{
		Verb:     "Get",
		Noun:     prefix + "DataLakeExceptionSubscription",
		Service:  service,
		Action:   action("GetDataLakeExceptionSubscription"),
		Synopsis: "Describes the exception notification subscription.",
		Impact:   cmdlet.ImpactNone,
		Select:   cmdlet.SelectAll,
		Selectors: map[string]func(*out) any{
			"ExceptionTimeToLive":  func(o *out) any { return o.ExceptionTimeToLive },
			"NotificationEndpoint": func(o *out) any { return o.NotificationEndpoint },
			"SubscriptionProtocol": func(o *out) any { return o.SubscriptionProtocol },
		},
		Build: empty[in],
		Call:  call(aws.SecurityLakeClient.GetDataLakeExceptionSubscription),
	}
}

type organizationParams struct {
	AutoEnableNewAccount optional.Value[[]types.DataLakeAutoEnableNewAccountConfiguration]
}

func (p *organizationParams) bind(s *binder.Set) {
	binder.JSON(s, &p.AutoEnableNewAccount, "AutoEnableNewAccount",
		`JSON list of {"Region","Sources":[{"SourceName","SourceVersion"}]}`)
}

func newDataLakeOrganizationConfiguration() cmdlet.Command {
	type (
		in  = securitylake.CreateDataLakeOrganizationConfigurationInput
		out = securitylake.CreateDataLakeOrganizationConfigurationOutput
	)
	return &cmdlet.Operation[organizationParams, in, out]{
		Verb:     "New",
		Noun:     prefix + "DataLakeOrganizationConfiguration",
		Service:  service,
		Action:   action("CreateDataLakeOrganizationConfiguration"),
		Synopsis: "Automatically enables Security Lake for new member accounts of the organization.",
		Impact:   cmdlet.ImpactMedium,
		Select:   cmdlet.SelectNothing,
		Bind:     func(s *binder.Set, p *organizationParams) { p.bind(s) },
		Build: func(p *organizationParams) (*in, error) {
			req := &in{}
			req.AutoEnableNewAccount, _ = p.AutoEnableNewAccount.Get()
			return req, nil
		},
		Call: call(aws.SecurityLakeClient.CreateDataLakeOrganizationConfiguration),
	}
}

func removeDataLakeOrganizationConfiguration() cmdlet.Command {
	type (
		in  = securitylake.DeleteDataLakeOrganizationConfigurationInput
		out = securitylake.DeleteDataLakeOrganizationConfigurationOutput
	)
	return &cmdlet.Operation[organizationParams, in, out]{
		Verb:     "Remove",
		Noun:     prefix + "DataLakeOrganizationConfiguration",
		Service:  service,
		Action:   action("DeleteDataLakeOrganizationConfiguration"),
		Synopsis: "Stops automatically enabling Security Lake for new member accounts.",
		Impact:   cmdlet.ImpactHigh,
		Select:   cmdlet.SelectNothing,
		Bind:     func(s *binder.Set, p *organizationParams) { p.bind(s) },
		Build: func(p *organizationParams) (*in, error) {
			req := &in{}
			req.AutoEnableNewAccount, _ = p.AutoEnableNewAccount.Get()
			return req, nil
		},
		Call: call(aws.SecurityLakeClient.DeleteDataLakeOrganizationConfiguration),
	}
}

func getDataLakeOrganizationConfiguration() cmdlet.Command {
	type (
		in  = securitylake.GetDataLakeOrganizationConfigurationInput
		out = securitylake.GetDataLakeOrganizationConfigurationOutput
	)
	return &cmdlet.Operation[noParams, in, out]{
		Verb:     "Get",
		Noun:     prefix + "DataLakeOrganizationConfiguration",
		Service:  service,
		Action:   action("GetDataLakeOrganizationConfiguration"),
		Synopsis: "Describes which sources are enabled for new member accounts.",
		Impact:   cmdlet.ImpactNone,
		Select:   "AutoEnableNewAccount",
		Selectors: map[string]func(*out) any{
			"AutoEnableNewAccount": func(o *out) any { return o.AutoEnableNewAccount },
		},
		Build: empty[in],
		Call:  call(aws.SecurityLakeClient.GetDataLakeOrganizationConfiguration),
	}
}

type accountParams struct {
	AccountId optional.Value[string]
}

func registerDelegatedAdministrator() cmdlet.Command {
	type (
		in  = securitylake.RegisterDataLakeDelegatedAdministratorInput
		out = securitylake.RegisterDataLakeDelegatedAdministratorOutput
	)
	return &cmdlet.Operation[accountParams, in, out]{
		Verb:     "Register",
		Noun:     prefix + "DataLakeDelegatedAdministrator",
		Service:  service,
		Action:   action("RegisterDataLakeDelegatedAdministrator"),
		Synopsis: "Designates an account as the Security Lake administrator of the organization.",
		Impact:   cmdlet.ImpactMedium,
		PassThru: "AccountId",
		Select:   cmdlet.SelectNothing,
		Bind: func(s *binder.Set, p *accountParams) {
			binder.String(s, &p.AccountId, "AccountId", "account ID of the delegated administrator", binder.Required(), binder.FromPipeline())
		},
		Build: func(p *accountParams) (*in, error) {
			return &in{AccountId: p.AccountId.Ptr()}, nil
		},
		Call:   call(aws.SecurityLakeClient.RegisterDataLakeDelegatedAdministrator),
		Target: func(p *accountParams) string { return p.AccountId.Or("") },
	}
}

func unregisterDelegatedAdministrator() cmdlet.Command {
	type (
		in  = securitylake.DeregisterDataLakeDelegatedAdministratorInput
		out = securitylake.DeregisterDataLakeDelegatedAdministratorOutput
	)
	return &cmdlet.Operation[noParams, in, out]{
		Verb:     "Unregister",
		Noun:     prefix + "DataLakeDelegatedAdministrator",
		Service:  service,
		Action:   action("DeregisterDataLakeDelegatedAdministrator"),
		Synopsis: "Removes the delegated Security Lake administrator of the organization.",
		Impact:   cmdlet.ImpactHigh,
		Select:   cmdlet.SelectNothing,
		Build:    empty[in],
		Call:     call(aws.SecurityLakeClient.DeregisterDataLakeDelegatedAdministrator),
	}
}
