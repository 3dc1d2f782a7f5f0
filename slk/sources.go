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

type awsLogSourceParams struct {
	Sources optional.Value[[]types.AwsLogSourceConfiguration]
}

func (p *awsLogSourceParams) bind(s *binder.Set) {
	binder.JSON(s, &p.Sources, "Source",
		`JSON list of {"SourceName","SourceVersion","Regions":[...],"Accounts":[...]}`, binder.Required())
}

func (p *awsLogSourceParams) target() string {
	sources, _ := p.Sources.Get()
	names := make([]string, 0, len(sources))
	for _, s := range sources {
		names = append(names, string(s.SourceName))
	}
	return strings.Join(names, ",")
}

func newAwsLogSource() cmdlet.Command {
	type (
		in  = securitylake.CreateAwsLogSourceInput
		out = securitylake.CreateAwsLogSourceOutput
	)
	return &cmdlet.Operation[awsLogSourceParams, in, out]{
		Verb:     "New",
		Noun:     prefix + "AwsLogSource",
		Service:  service,
		Action:   action("CreateAwsLogSource"),
		Synopsis: "Adds natively supported AWS services as log sources.",
		Impact:   cmdlet.ImpactMedium,
		Select:   "Failed",
		Selectors: map[string]func(*out) any{
			"Failed": func(o *out) any { return o.Failed },
		},
		Bind: func(s *binder.Set, p *awsLogSourceParams) { p.bind(s) },
		Build: func(p *awsLogSourceParams) (*in, error) {
			req := &in{}
			req.Sources, _ = p.Sources.Get()
			return req, nil
		},
		Call:   call(aws.SecurityLakeClient.CreateAwsLogSource),
		Target: func(p *awsLogSourceParams) string { return p.target() },
	}
}

func removeAwsLogSource() cmdlet.Command {
	type (
		in  = securitylake.DeleteAwsLogSourceInput
		out = securitylake.DeleteAwsLogSourceOutput
	)
	return &cmdlet.Operation[awsLogSourceParams, in, out]{
		Verb:     "Remove",
		Noun:     prefix + "AwsLogSource",
		Service:  service,
		Action:   action("DeleteAwsLogSource"),
		Synopsis: "Stops collecting logs from natively supported AWS services.",
		Impact:   cmdlet.ImpactHigh,
		Select:   "Failed",
		Selectors: map[string]func(*out) any{
			"Failed": func(o *out) any { return o.Failed },
		},
		Bind: func(s *binder.Set, p *awsLogSourceParams) { p.bind(s) },
		Build: func(p *awsLogSourceParams) (*in, error) {
			req := &in{}
			req.Sources, _ = p.Sources.Get()
			return req, nil
		},
		Call:   call(aws.SecurityLakeClient.DeleteAwsLogSource),
		Target: func(p *awsLogSourceParams) string { return p.target() },
	}
}

type customLogSourceParams struct {
	SourceName    optional.Value[string]
	SourceVersion optional.Value[string]
	EventClasses  optional.Value[[]string]
	CrawlerRole   optional.Value[string]
	Provider      identityParams
}

func newCustomLogSource() cmdlet.Command {
	type (
		params = customLogSourceParams
		in     = securitylake.CreateCustomLogSourceInput
		out    = securitylake.CreateCustomLogSourceOutput
	)
	return &cmdlet.Operation[params, in, out]{
		Verb:     "New",
		Noun:     prefix + "CustomLogSource",
		Service:  service,
		Action:   action("CreateCustomLogSource"),
		Synopsis: "Adds a third-party custom log source.",
		Impact:   cmdlet.ImpactMedium,
		Select:   "Source",
		Selectors: map[string]func(*out) any{
			"Source": func(o *out) any { return o.Source },
		},
		Bind: func(s *binder.Set, p *params) {
			binder.String(s, &p.SourceName, "SourceName", "name of the custom log source", binder.Required(), binder.FromPipeline())
			binder.String(s, &p.SourceVersion, "SourceVersion", "version of the custom log source")
			binder.Strings(s, &p.EventClasses, "EventClass", "OCSF event classes of the source data", binder.Alias("EventClasses"))
			binder.String(s, &p.CrawlerRole, "CrawlerConfiguration_RoleArn", "ARN of the role the Glue crawler uses",
				binder.Alias("Configuration_CrawlerConfiguration_RoleArn"))
			p.Provider.bind(s, "ProviderIdentity", "Configuration_ProviderIdentity")
		},
		Build: func(p *params) (*in, error) {
			req := &in{
				SourceName:    p.SourceName.Ptr(),
				SourceVersion: p.SourceVersion.Ptr(),
			}
			req.EventClasses, _ = p.EventClasses.Get()
			req.Configuration = optional.Group(func(c *types.CustomLogSourceConfiguration, b *optional.Builder) {
				optional.Nest(b, &c.CrawlerConfiguration, optional.Group(func(cc *types.CustomLogSourceCrawlerConfiguration, b *optional.Builder) {
					optional.Set(b, &cc.RoleArn, p.CrawlerRole)
				}))
				optional.Nest(b, &c.ProviderIdentity, p.Provider.build())
			})
			return req, nil
		},
		Call:   call(aws.SecurityLakeClient.CreateCustomLogSource),
		Target: func(p *params) string { return p.SourceName.Or("") },
	}
}

type removeCustomLogSourceParams struct {
	SourceName    optional.Value[string]
	SourceVersion optional.Value[string]
}

func removeCustomLogSource() cmdlet.Command {
	type (
		params = removeCustomLogSourceParams
		in     = securitylake.DeleteCustomLogSourceInput
		out    = securitylake.DeleteCustomLogSourceOutput
	)
	return &cmdlet.Operation[params, in, out]{
		Verb:     "Remove",
		Noun:     prefix + "CustomLogSource",
		Service:  service,
		Action:   action("DeleteCustomLogSource"),
		Synopsis: "Removes a custom log source.",
		Impact:   cmdlet.ImpactHigh,
		PassThru: "SourceName",
		Select:   cmdlet.SelectNothing,
		Bind: func(s *binder.Set, p *params) {
			binder.String(s, &p.SourceName, "SourceName", "name of the custom log source", binder.Required(), binder.FromPipeline())
			binder.String(s, &p.SourceVersion, "SourceVersion", "version of the custom log source")
		},
		Build: func(p *params) (*in, error) {
			return &in{SourceName: p.SourceName.Ptr(), SourceVersion: p.SourceVersion.Ptr()}, nil
		},
		Call:   call(aws.SecurityLakeClient.DeleteCustomLogSource),
		Target: func(p *params) string { return p.SourceName.Or("") },
	}
}

type dataLakeSourceParams struct {
	pageParams
	Accounts optional.Value[[]string]
}

func getDataLakeSource() cmdlet.Command {
	type (
		params = dataLakeSourceParams
		in     = securitylake.GetDataLakeSourcesInput
		out    = securitylake.GetDataLakeSourcesOutput
	)
	return &cmdlet.Operation[params, in, out]{
		Verb:     "Get",
		Noun:     prefix + "DataLakeSource",
		Service:  service,
		Action:   action("GetDataLakeSources"),
		Synopsis: "Describes the log sources and their collection status per account.",
		Impact:   cmdlet.ImpactNone,
		Select:   cmdlet.SelectAll,
		Selectors: map[string]func(*out) any{
			"DataLakeArn":     func(o *out) any { return o.DataLakeArn },
			"DataLakeSources": func(o *out) any { return o.DataLakeSources },
			"NextToken":       func(o *out) any { return o.NextToken },
		},
		Bind: func(s *binder.Set, p *params) {
			binder.Strings(s, &p.Accounts, "Account", "account IDs to describe", binder.FromPipeline())
			p.pageParams.bind(s)
		},
		Build: func(p *params) (*in, error) {
			req := &in{MaxResults: p.MaxResults.Ptr(), NextToken: p.NextToken.Ptr()}
			req.Accounts, _ = p.Accounts.Get()
			return req, nil
		},
		Call: call(aws.SecurityLakeClient.GetDataLakeSources),
	}
}

type logSourceListParams struct {
	pageParams
	Accounts optional.Value[[]string]
	Regions  optional.Value[[]string]
	Sources  optional.Value[[]logSource]
}

func getLogSource() cmdlet.Command {
	type (
		params = logSourceListParams
		in     = securitylake.ListLogSourcesInput
		out    = securitylake.ListLogSourcesOutput
	)
	return &cmdlet.Operation[params, in, out]{
		Verb:     "Get",
		Noun:     prefix + "LogSource",
		Service:  service,
		Action:   action("ListLogSources"),
		Synopsis: "Lists the log sources in the current Region.",
		Impact:   cmdlet.ImpactNone,
		Select:   cmdlet.SelectAll,
		Selectors: map[string]func(*out) any{
			"Sources":   func(o *out) any { return o.Sources },
			"NextToken": func(o *out) any { return o.NextToken },
		},
		Bind: func(s *binder.Set, p *params) {
			binder.Strings(s, &p.Accounts, "Account", "account IDs to list sources of")
			binder.Strings(s, &p.Regions, "Region", "Regions to list sources in")
			binder.JSON(s, &p.Sources, "Source", logSourceUsage)
			p.pageParams.bind(s)
		},
		Build: func(p *params) (*in, error) {
			sources, err := logSources(p.Sources)
			if err != nil {
				return nil, err
			}
			req := &in{MaxResults: p.MaxResults.Ptr(), NextToken: p.NextToken.Ptr(), Sources: sources}
			req.Accounts, _ = p.Accounts.Get()
			req.Regions, _ = p.Regions.Get()
			return req, nil
		},
		Call: call(aws.SecurityLakeClient.ListLogSources),
	}
}
