package kina

import (
	"time"

	"github.com/aws/aws-sdk-go-v2/service/kinesisanalytics"
	"github.com/aws/aws-sdk-go-v2/service/kinesisanalytics/types"

	"github.com/gurre/awscmd/aws"
	"github.com/gurre/awscmd/binder"
	"github.com/gurre/awscmd/cmdlet"
	"github.com/gurre/awscmd/optional"
)

type newApplicationParams struct {
	ApplicationName          optional.Value[string]
	ApplicationCode          optional.Value[string]
	ApplicationDescription   optional.Value[string]
	CloudWatchLoggingOptions optional.Value[[]types.CloudWatchLoggingOption]
	Inputs                   optional.Value[[]types.Input]
	Outputs                  optional.Value[[]types.Output]
	Tags                     optional.Value[[]types.Tag]
}

func newApplication() cmdlet.Command {
	type (
		params = newApplicationParams
		in     = kinesisanalytics.CreateApplicationInput
		out    = kinesisanalytics.CreateApplicationOutput
	)
	return &cmdlet.Operation[params, in, out]{
		Verb:     "New",
		Noun:     prefix + "Application",
		Service:  service,
		Action:   action("CreateApplication"),
		Synopsis: "Creates a Kinesis Analytics SQL application.",
		Impact:   cmdlet.ImpactMedium,
		Select:   "ApplicationSummary",
		Selectors: map[string]func(*out) any{
			"ApplicationSummary": func(o *out) any { return o.ApplicationSummary },
		},
		Bind: func(s *binder.Set, p *params) {
			binder.String(s, &p.ApplicationName, "ApplicationName", "name of the application", binder.Required(), binder.FromPipeline())
			binder.Document(s, &p.ApplicationCode, "ApplicationCode", "SQL code of the application; @file reads it from a file")
			binder.String(s, &p.ApplicationDescription, "ApplicationDescription", "summary description of the application")
			binder.JSON(s, &p.CloudWatchLoggingOptions, "CloudWatchLoggingOption", `JSON list of {"LogStreamARN","RoleARN"}`)
			binder.JSON(s, &p.Inputs, "Input", "JSON list of streaming sources")
			binder.JSON(s, &p.Outputs, "Output", "JSON list of destinations")
			binder.JSON(s, &p.Tags, "Tag", `JSON list of {"Key","Value"}`)
		},
		Build: func(p *params) (*in, error) {
			req := &in{
				ApplicationName:        p.ApplicationName.Ptr(),
				ApplicationCode:        p.ApplicationCode.Ptr(),
				ApplicationDescription: p.ApplicationDescription.Ptr(),
			}
			req.CloudWatchLoggingOptions, _ = p.CloudWatchLoggingOptions.Get()
			req.Inputs, _ = p.Inputs.Get()
			req.Outputs, _ = p.Outputs.Get()
			req.Tags, _ = p.Tags.Get()
			return req, nil
		},
		Call:   call(aws.KinesisAnalyticsClient.CreateApplication),
		Target: func(p *params) string { return p.ApplicationName.Or("") },
	}
}

type removeApplicationParams struct {
	ApplicationName optional.Value[string]
	CreateTimestamp optional.Value[time.Time]
}

func removeApplication() cmdlet.Command {
	type (
		params = removeApplicationParams
		in     = kinesisanalytics.DeleteApplicationInput
		out    = kinesisanalytics.DeleteApplicationOutput
	)
	return &cmdlet.Operation[params, in, out]{
		Verb:     "Remove",
		Noun:     prefix + "Application",
		Service:  service,
		Action:   action("DeleteApplication"),
		Synopsis: "Deletes an application and stops its processing.",
		Impact:   cmdlet.ImpactHigh,
		PassThru: "ApplicationName",
		Select:   cmdlet.SelectNothing,
		Bind: func(s *binder.Set, p *params) {
			binder.String(s, &p.ApplicationName, "ApplicationName", "name of the application", binder.Required(), binder.FromPipeline())
			binder.Time(s, &p.CreateTimestamp, "CreateTimestamp", "creation time of the application (RFC 3339); use Get-KINAApplication to read it", binder.Required())
		},
		Build: func(p *params) (*in, error) {
			return &in{
				ApplicationName: p.ApplicationName.Ptr(),
				CreateTimestamp: p.CreateTimestamp.Ptr(),
			}, nil
		},
		Call:   call(aws.KinesisAnalyticsClient.DeleteApplication),
		Target: func(p *params) string { return p.ApplicationName.Or("") },
	}
}

type nameParams struct {
	ApplicationName optional.Value[string]
}

func (p *nameParams) bind(s *binder.Set) {
	binder.String(s, &p.ApplicationName, "ApplicationName", "name of the application", binder.Required(), binder.FromPipeline())
}

func getApplication() cmdlet.Command {
	type (
		in  = kinesisanalytics.DescribeApplicationInput
		out = kinesisanalytics.DescribeApplicationOutput
	)
	return &cmdlet.Operation[nameParams, in, out]{
		Verb:     "Get",
		Noun:     prefix + "Application",
		Service:  service,
		Action:   action("DescribeApplication"),
		Synopsis: "Describes an application, including its version, inputs, outputs and reference data.",
		Impact:   cmdlet.ImpactNone,
		Select:   "ApplicationDetail",
		Selectors: map[string]func(*out) any{
			"ApplicationDetail": func(o *out) any { return o.ApplicationDetail },
		},
		Bind: func(s *binder.Set, p *nameParams) { p.bind(s) },
		Build: func(p *nameParams) (*in, error) {
			return &in{ApplicationName: p.ApplicationName.Ptr()}, nil
		},
		Call:   call(aws.KinesisAnalyticsClient.DescribeApplication),
		Target: func(p *nameParams) string { return p.ApplicationName.Or("") },
	}
}

type findInputSchemaParams struct {
	Lambda           lambdaParams
	StartingPosition optional.Value[types.InputStartingPosition]
	ResourceARN      optional.Value[string]
	RoleARN          optional.Value[string]
	S3BucketARN      optional.Value[string]
	S3FileKey        optional.Value[string]
	S3RoleARN        optional.Value[string]
}

func findInputSchema() cmdlet.Command {
	type (
		params = findInputSchemaParams
		in     = kinesisanalytics.DiscoverInputSchemaInput
		out    = kinesisanalytics.DiscoverInputSchemaOutput
	)
	return &cmdlet.Operation[params, in, out]{
		Verb:     "Find",
		Noun:     prefix + "InputSchema",
		Service:  service,
		Action:   action("DiscoverInputSchema"),
		Synopsis: "Infers a schema by sampling records from a stream or an S3 object.",
		Impact:   cmdlet.ImpactNone,
		Select:   cmdlet.SelectAll,
		Selectors: map[string]func(*out) any{
			"InputSchema":           func(o *out) any { return o.InputSchema },
			"ParsedInputRecords":    func(o *out) any { return o.ParsedInputRecords },
			"ProcessedInputRecords": func(o *out) any { return o.ProcessedInputRecords },
			"RawInputRecords":       func(o *out) any { return o.RawInputRecords },
		},
		Bind: func(s *binder.Set, p *params) {
			p.Lambda.bind(s, "InputProcessingConfiguration")
			binder.Enum(s, &p.StartingPosition, "InputStartingPositionConfiguration_InputStartingPosition",
				"point in the stream to start sampling from", types.InputStartingPosition("").Values())
			binder.String(s, &p.ResourceARN, "ResourceARN", "ARN of the streaming source")
			binder.String(s, &p.RoleARN, "RoleARN", "ARN of the role used to read the stream")
			binder.String(s, &p.S3BucketARN, "S3Configuration_BucketARN", "ARN of the bucket holding the sample")
			binder.String(s, &p.S3FileKey, "S3Configuration_FileKey", "object key of the sample")
			binder.String(s, &p.S3RoleARN, "S3Configuration_RoleARN", "ARN of the role used to read the sample")
		},
		Build: func(p *params) (*in, error) {
			req := &in{
				InputProcessingConfiguration: p.Lambda.build(),
				ResourceARN:                  p.ResourceARN.Ptr(),
				RoleARN:                      p.RoleARN.Ptr(),
			}
			req.InputStartingPositionConfiguration = optional.Group(func(c *types.InputStartingPositionConfiguration, b *optional.Builder) {
				optional.SetValue(b, &c.InputStartingPosition, p.StartingPosition)
			})
			req.S3Configuration = optional.Group(func(c *types.S3Configuration, b *optional.Builder) {
				optional.Set(b, &c.BucketARN, p.S3BucketARN)
				optional.Set(b, &c.FileKey, p.S3FileKey)
				optional.Set(b, &c.RoleARN, p.S3RoleARN)
			})
			return req, nil
		},
		Call: call(aws.KinesisAnalyticsClient.DiscoverInputSchema),
		Target: func(p *params) string {
			if arn, ok := p.ResourceARN.Get(); ok {
				return arn
			}
			return p.S3BucketARN.Or("") + "/" + p.S3FileKey.Or("")
		},
	}
}

type getApplicationListParams struct {
	ExclusiveStartApplicationName optional.Value[string]
	Limit                         optional.Value[int32]
}

func getApplicationList() cmdlet.Command {
	type (
		params = getApplicationListParams
		in     = kinesisanalytics.ListApplicationsInput
		out    = kinesisanalytics.ListApplicationsOutput
	)
	return &cmdlet.Operation[params, in, out]{
		Verb:     "Get",
		Noun:     prefix + "ApplicationList",
		Service:  service,
		Action:   action("ListApplications"),
		Synopsis: "Lists applications in the account, one page per call.",
		Impact:   cmdlet.ImpactNone,
		Select:   "ApplicationSummaries",
		Selectors: map[string]func(*out) any{
			"ApplicationSummaries": func(o *out) any { return o.ApplicationSummaries },
			"HasMoreApplications":  func(o *out) any { return o.HasMoreApplications },
		},
		Bind: func(s *binder.Set, p *params) {
			binder.String(s, &p.ExclusiveStartApplicationName, "ExclusiveStartApplicationName",
				"name of the application to start the list after", binder.FromPipeline())
			binder.Int32(s, &p.Limit, "Limit", "maximum number of applications to list", binder.Alias("MaxItem"))
		},
		Build: func(p *params) (*in, error) {
			return &in{
				ExclusiveStartApplicationName: p.ExclusiveStartApplicationName.Ptr(),
				Limit:                         p.Limit.Ptr(),
			}, nil
		},
		Call: call(aws.KinesisAnalyticsClient.ListApplications),
	}
}

type startApplicationParams struct {
	ApplicationName     optional.Value[string]
	InputConfigurations optional.Value[[]types.InputConfiguration]
}

func startApplication() cmdlet.Command {
	type (
		params = startApplicationParams
		in     = kinesisanalytics.StartApplicationInput
		out    = kinesisanalytics.StartApplicationOutput
	)
	return &cmdlet.Operation[params, in, out]{
		Verb:     "Start",
		Noun:     prefix + "Application",
		Service:  service,
		Action:   action("StartApplication"),
		Synopsis: "Starts reading the inputs of an application.",
		Impact:   cmdlet.ImpactMedium,
		PassThru: "ApplicationName",
		Select:   cmdlet.SelectNothing,
		Bind: func(s *binder.Set, p *params) {
			binder.String(s, &p.ApplicationName, "ApplicationName", "name of the application", binder.Required(), binder.FromPipeline())
			binder.JSON(s, &p.InputConfigurations, "InputConfiguration",
				`JSON list of {"Id","InputStartingPositionConfiguration":{"InputStartingPosition"}}`, binder.Required())
		},
		Build: func(p *params) (*in, error) {
			req := &in{ApplicationName: p.ApplicationName.Ptr()}
			req.InputConfigurations, _ = p.InputConfigurations.Get()
			return req, nil
		},
		Call:   call(aws.KinesisAnalyticsClient.StartApplication),
		Target: func(p *params) string { return p.ApplicationName.Or("") },
	}
}

func stopApplication() cmdlet.Command {
	type (
		in  = kinesisanalytics.StopApplicationInput
		out = kinesisanalytics.StopApplicationOutput
	)
	return &cmdlet.Operation[nameParams, in, out]{
		Verb:     "Stop",
		Noun:     prefix + "Application",
		Service:  service,
		Action:   action("StopApplication"),
		Synopsis: "Stops an application from processing input data.",
		Impact:   cmdlet.ImpactHigh,
		PassThru: "ApplicationName",
		Select:   cmdlet.SelectNothing,
		Bind:     func(s *binder.Set, p *nameParams) { p.bind(s) },
		Build: func(p *nameParams) (*in, error) {
			return &in{ApplicationName: p.ApplicationName.Ptr()}, nil
		},
		Call:   call(aws.KinesisAnalyticsClient.StopApplication),
		Target: func(p *nameParams) string { return p.ApplicationName.Or("") },
	}
}

type updateApplicationParams struct {
	applicationParams
	CodeUpdate                     optional.Value[string]
	CloudWatchLoggingOptionUpdates optional.Value[[]types.CloudWatchLoggingOptionUpdate]
	InputUpdates                   optional.Value[[]types.InputUpdate]
	OutputUpdates                  optional.Value[[]types.OutputUpdate]
	ReferenceDataSourceUpdates     optional.Value[[]types.ReferenceDataSourceUpdate]
}

func updateApplication() cmdlet.Command {
	type (
		params = updateApplicationParams
		in     = kinesisanalytics.UpdateApplicationInput
		out    = kinesisanalytics.UpdateApplicationOutput
	)
	return &cmdlet.Operation[params, in, out]{
		Verb:     "Update",
		Noun:     prefix + "Application",
		Service:  service,
		Action:   action("UpdateApplication"),
		Synopsis: "Updates the code, inputs, outputs or reference data of an application.",
		Impact:   cmdlet.ImpactMedium,
		PassThru: "ApplicationName",
		Select:   cmdlet.SelectNothing,
		Bind: func(s *binder.Set, p *params) {
			p.applicationParams.bind(s)
			binder.Document(s, &p.CodeUpdate, "ApplicationUpdate_ApplicationCodeUpdate", "new SQL code; @file reads it from a file")
			binder.JSON(s, &p.CloudWatchLoggingOptionUpdates, "ApplicationUpdate_CloudWatchLoggingOptionUpdate",
				"JSON list of logging option updates", binder.Alias("ApplicationUpdate_CloudWatchLoggingOptionUpdates"))
			binder.JSON(s, &p.InputUpdates, "ApplicationUpdate_InputUpdate",
				"JSON list of input updates", binder.Alias("ApplicationUpdate_InputUpdates"))
			binder.JSON(s, &p.OutputUpdates, "ApplicationUpdate_OutputUpdate",
				"JSON list of output updates", binder.Alias("ApplicationUpdate_OutputUpdates"))
			binder.JSON(s, &p.ReferenceDataSourceUpdates, "ApplicationUpdate_ReferenceDataSourceUpdate",
				"JSON list of reference data updates", binder.Alias("ApplicationUpdate_ReferenceDataSourceUpdates"))
		},
		Build: func(p *params) (*in, error) {
			req := &in{
				ApplicationName:             p.ApplicationName.Ptr(),
				CurrentApplicationVersionId: p.CurrentApplicationVersionId.Ptr(),
			}
			req.ApplicationUpdate = optional.Group(func(u *types.ApplicationUpdate, b *optional.Builder) {
				optional.Set(b, &u.ApplicationCodeUpdate, p.CodeUpdate)
				optional.SetSlice(b, &u.CloudWatchLoggingOptionUpdates, p.CloudWatchLoggingOptionUpdates)
				optional.SetSlice(b, &u.InputUpdates, p.InputUpdates)
				optional.SetSlice(b, &u.OutputUpdates, p.OutputUpdates)
				optional.SetSlice(b, &u.ReferenceDataSourceUpdates, p.ReferenceDataSourceUpdates)
			})
			return req, nil
		},
		Call:   call(aws.KinesisAnalyticsClient.UpdateApplication),
		Target: func(p *params) string { return p.target() },
	}
}
