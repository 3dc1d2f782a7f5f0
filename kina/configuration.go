package kina

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/service/kinesisanalytics"
	"github.com/aws/aws-sdk-go-v2/service/kinesisanalytics/types"

	"github.com/gurre/awscmd/aws"
	"github.com/gurre/awscmd/binder"
	"github.com/gurre/awscmd/cmdlet"
	"github.com/gurre/awscmd/optional"
)

type addCloudWatchLoggingOptionParams struct {
	applicationParams
	LogStreamARN optional.Value[string]
	RoleARN      optional.Value[string]
}

func addCloudWatchLoggingOption() cmdlet.Command {
	type (
		params = addCloudWatchLoggingOptionParams
		in     = kinesisanalytics.AddApplicationCloudWatchLoggingOptionInput
		out    = kinesisanalytics.AddApplicationCloudWatchLoggingOptionOutput
	)
	return &cmdlet.Operation[params, in, out]{
		Verb:     "Add",
		Noun:     prefix + "ApplicationCloudWatchLoggingOption",
		Service:  service,
		Action:   action("AddApplicationCloudWatchLoggingOption"),
		Synopsis: "Adds a CloudWatch log stream to monitor application configuration errors.",
		Impact:   cmdlet.ImpactMedium,
		PassThru: "ApplicationName",
		Select:   cmdlet.SelectNothing,
		Bind: func(s *binder.Set, p *params) {
			p.applicationParams.bind(s)
			binder.String(s, &p.LogStreamARN, "CloudWatchLoggingOption_LogStreamARN", "ARN of the CloudWatch log stream", binder.Required())
			binder.String(s, &p.RoleARN, "CloudWatchLoggingOption_RoleARN", "ARN of the role used to send application messages", binder.Required())
		},
		Build: func(p *params) (*in, error) {
			req := &in{
				ApplicationName:             p.ApplicationName.Ptr(),
				CurrentApplicationVersionId: p.CurrentApplicationVersionId.Ptr(),
			}
			req.CloudWatchLoggingOption = optional.Group(func(o *types.CloudWatchLoggingOption, b *optional.Builder) {
				optional.Set(b, &o.LogStreamARN, p.LogStreamARN)
				optional.Set(b, &o.RoleARN, p.RoleARN)
			})
			return req, nil
		},
		Call:   call(aws.KinesisAnalyticsClient.AddApplicationCloudWatchLoggingOption),
		Target: func(p *params) string { return p.target() },
	}
}

type addInputParams struct {
	applicationParams
	NamePrefix  optional.Value[string]
	Parallelism optional.Value[int32]
	Schema      schemaParams
	Lambda      lambdaParams
	Firehose    arnRole
	Stream      arnRole
}

func addInput() cmdlet.Command {
	type (
		params = addInputParams
		in     = kinesisanalytics.AddApplicationInputInput
		out    = kinesisanalytics.AddApplicationInputOutput
	)
	return &cmdlet.Operation[params, in, out]{
		Verb:     "Add",
		Noun:     prefix + "ApplicationInput",
		Service:  service,
		Action:   action("AddApplicationInput"),
		Synopsis: "Adds a streaming source to an application.",
		Impact:   cmdlet.ImpactMedium,
		PassThru: "ApplicationName",
		Select:   cmdlet.SelectNothing,
		Bind: func(s *binder.Set, p *params) {
			p.applicationParams.bind(s)
			binder.String(s, &p.NamePrefix, "Input_NamePrefix", "name prefix of the in-application streams", binder.Required())
			binder.Int32(s, &p.Parallelism, "InputParallelism_Count", "number of in-application streams to create",
				binder.Alias("Input_InputParallelism_Count"))
			p.Schema.bind(s, "InputSchema", "Input_InputSchema")
			p.Lambda.bind(s, "Input_InputProcessingConfiguration")
			p.Firehose.bind(s, "KinesisFirehoseInput", "Input", "source Firehose delivery stream")
			p.Stream.bind(s, "KinesisStreamsInput", "Input", "source Kinesis stream")
		},
		Build: func(p *params) (*in, error) {
			req := &in{
				ApplicationName:             p.ApplicationName.Ptr(),
				CurrentApplicationVersionId: p.CurrentApplicationVersionId.Ptr(),
			}
			req.Input = optional.Group(func(i *types.Input, b *optional.Builder) {
				optional.Set(b, &i.NamePrefix, p.NamePrefix)
				optional.Nest(b, &i.InputParallelism, optional.Group(func(ip *types.InputParallelism, b *optional.Builder) {
					optional.Set(b, &ip.Count, p.Parallelism)
				}))
				optional.Nest(b, &i.InputSchema, p.Schema.build())
				optional.Nest(b, &i.InputProcessingConfiguration, p.Lambda.build())
				optional.Nest(b, &i.KinesisFirehoseInput, optional.Group(func(f *types.KinesisFirehoseInput, b *optional.Builder) {
					p.Firehose.fill(b, &f.ResourceARN, &f.RoleARN)
				}))
				optional.Nest(b, &i.KinesisStreamsInput, optional.Group(func(k *types.KinesisStreamsInput, b *optional.Builder) {
					p.Stream.fill(b, &k.ResourceARN, &k.RoleARN)
				}))
			})
			return req, nil
		},
		Call:   call(aws.KinesisAnalyticsClient.AddApplicationInput),
		Target: func(p *params) string { return p.target() },
	}
}

type addInputProcessingConfigurationParams struct {
	applicationParams
	InputId optional.Value[string]
	Lambda  lambdaParams
}

func addInputProcessingConfiguration() cmdlet.Command {
	type (
		params = addInputProcessingConfigurationParams
		in     = kinesisanalytics.AddApplicationInputProcessingConfigurationInput
		out    = kinesisanalytics.AddApplicationInputProcessingConfigurationOutput
	)
	return &cmdlet.Operation[params, in, out]{
		Verb:     "Add",
		Noun:     prefix + "ApplicationInputProcessingConfiguration",
		Service:  service,
		Action:   action("AddApplicationInputProcessingConfiguration"),
		Synopsis: "Adds a preprocessing Lambda function to an application input.",
		Impact:   cmdlet.ImpactMedium,
		PassThru: "ApplicationName",
		Select:   cmdlet.SelectNothing,
		Bind: func(s *binder.Set, p *params) {
			p.applicationParams.bind(s)
			binder.String(s, &p.InputId, "InputId", "ID of the input; use Get-KINAApplication to read it", binder.Required())
			p.Lambda.bind(s, "InputProcessingConfiguration")
		},
		Build: func(p *params) (*in, error) {
			return &in{
				ApplicationName:              p.ApplicationName.Ptr(),
				CurrentApplicationVersionId:  p.CurrentApplicationVersionId.Ptr(),
				InputId:                      p.InputId.Ptr(),
				InputProcessingConfiguration: p.Lambda.build(),
			}, nil
		},
		Call:   call(aws.KinesisAnalyticsClient.AddApplicationInputProcessingConfiguration),
		Target: func(p *params) string { return p.target() },
	}
}

type addOutputParams struct {
	applicationParams
	Name             optional.Value[string]
	RecordFormatType optional.Value[types.RecordFormatType]
	Firehose         arnRole
	Stream           arnRole
	Lambda           arnRole
}

func addOutput() cmdlet.Command {
	type (
		params = addOutputParams
		in     = kinesisanalytics.AddApplicationOutputInput
		out    = kinesisanalytics.AddApplicationOutputOutput
	)
	return &cmdlet.Operation[params, in, out]{
		Verb:     "Add",
		Noun:     prefix + "ApplicationOutput",
		Service:  service,
		Action:   action("AddApplicationOutput"),
		Synopsis: "Adds an external destination for an in-application stream.",
		Impact:   cmdlet.ImpactMedium,
		PassThru: "ApplicationName",
		Select:   cmdlet.SelectNothing,
		Bind: func(s *binder.Set, p *params) {
			p.applicationParams.bind(s)
			binder.String(s, &p.Name, "Output_Name", "name of the in-application stream", binder.Required())
			binder.Enum(s, &p.RecordFormatType, "DestinationSchema_RecordFormatType", "format of the records written to the destination",
				types.RecordFormatType("").Values(), binder.Alias("Output_DestinationSchema_RecordFormatType"))
			p.Firehose.bind(s, "KinesisFirehoseOutput", "Output", "destination Firehose delivery stream")
			p.Stream.bind(s, "KinesisStreamsOutput", "Output", "destination Kinesis stream")
			p.Lambda.bind(s, "LambdaOutput", "Output", "destination Lambda function")
		},
		Build: func(p *params) (*in, error) {
			req := &in{
				ApplicationName:             p.ApplicationName.Ptr(),
				CurrentApplicationVersionId: p.CurrentApplicationVersionId.Ptr(),
			}
			req.Output = optional.Group(func(o *types.Output, b *optional.Builder) {
				optional.Set(b, &o.Name, p.Name)
				optional.Nest(b, &o.DestinationSchema, optional.Group(func(d *types.DestinationSchema, b *optional.Builder) {
					optional.SetValue(b, &d.RecordFormatType, p.RecordFormatType)
				}))
				optional.Nest(b, &o.KinesisFirehoseOutput, optional.Group(func(f *types.KinesisFirehoseOutput, b *optional.Builder) {
					p.Firehose.fill(b, &f.ResourceARN, &f.RoleARN)
				}))
				optional.Nest(b, &o.KinesisStreamsOutput, optional.Group(func(k *types.KinesisStreamsOutput, b *optional.Builder) {
					p.Stream.fill(b, &k.ResourceARN, &k.RoleARN)
				}))
				optional.Nest(b, &o.LambdaOutput, optional.Group(func(l *types.LambdaOutput, b *optional.Builder) {
					p.Lambda.fill(b, &l.ResourceARN, &l.RoleARN)
				}))
			})
			return req, nil
		},
		Call:   call(aws.KinesisAnalyticsClient.AddApplicationOutput),
		Target: func(p *params) string { return p.target() },
	}
}

type addReferenceDataSourceParams struct {
	applicationParams
	TableName        optional.Value[string]
	Schema           schemaParams
	BucketARN        optional.Value[string]
	FileKey          optional.Value[string]
	ReferenceRoleARN optional.Value[string]
}

func addReferenceDataSource() cmdlet.Command {
	type (
		params = addReferenceDataSourceParams
		in     = kinesisanalytics.AddApplicationReferenceDataSourceInput
		out    = kinesisanalytics.AddApplicationReferenceDataSourceOutput
	)
	return &cmdlet.Operation[params, in, out]{
		Verb:     "Add",
		Noun:     prefix + "ApplicationReferenceDataSource",
		Service:  service,
		Action:   action("AddApplicationReferenceDataSource"),
		Synopsis: "Adds an S3 object as reference data to an application.",
		Impact:   cmdlet.ImpactMedium,
		PassThru: "ApplicationName",
		Select:   cmdlet.SelectNothing,
		Bind: func(s *binder.Set, p *params) {
			p.applicationParams.bind(s)
			binder.String(s, &p.TableName, "ReferenceDataSource_TableName", "name of the in-application table to create", binder.Required())
			p.Schema.bind(s, "ReferenceSchema", "ReferenceDataSource_ReferenceSchema")
			const path = "ReferenceDataSource_S3ReferenceDataSource_"
			binder.String(s, &p.BucketARN, "S3ReferenceDataSource_BucketARN", "ARN of the bucket holding the data",
				binder.Alias(path+"BucketARN"))
			binder.String(s, &p.FileKey, "S3ReferenceDataSource_FileKey", "object key of the data",
				binder.Alias(path+"FileKey"))
			binder.String(s, &p.ReferenceRoleARN, "S3ReferenceDataSource_ReferenceRoleARN", "ARN of the role used to read the object",
				binder.Alias(path+"ReferenceRoleARN"))
		},
		Build: func(p *params) (*in, error) {
			req := &in{
				ApplicationName:             p.ApplicationName.Ptr(),
				CurrentApplicationVersionId: p.CurrentApplicationVersionId.Ptr(),
			}
			req.ReferenceDataSource = optional.Group(func(r *types.ReferenceDataSource, b *optional.Builder) {
				optional.Set(b, &r.TableName, p.TableName)
				optional.Nest(b, &r.ReferenceSchema, p.Schema.build())
				optional.Nest(b, &r.S3ReferenceDataSource, optional.Group(func(s *types.S3ReferenceDataSource, b *optional.Builder) {
					optional.Set(b, &s.BucketARN, p.BucketARN)
					optional.Set(b, &s.FileKey, p.FileKey)
					optional.Set(b, &s.ReferenceRoleARN, p.ReferenceRoleARN)
				}))
			})
			return req, nil
		},
		Call:   call(aws.KinesisAnalyticsClient.AddApplicationReferenceDataSource),
		Target: func(p *params) string { return p.target() },
	}
}

// removeChildParams identify one configuration item of an application.
type removeChildParams struct {
	applicationParams
	ID optional.Value[string]
}

// removeChild describes the Delete* operations that detach one item by ID.
// They differ only in the ID parameter and the request shape.
func removeChild[In, Out any](noun, op, idName, synopsis string,
	build func(name *string, version *int64, id *string) *In,
	fn func(aws.KinesisAnalyticsClient, context.Context, *In, ...func(*kinesisanalytics.Options)) (*Out, error),
) cmdlet.Command {
	return &cmdlet.Operation[removeChildParams, In, Out]{
		Verb:     "Remove",
		Noun:     prefix + noun,
		Service:  service,
		Action:   action(op),
		Synopsis: synopsis,
		Impact:   cmdlet.ImpactHigh,
		PassThru: "ApplicationName",
		Select:   cmdlet.SelectNothing,
		Bind: func(s *binder.Set, p *removeChildParams) {
			p.applicationParams.bind(s)
			binder.String(s, &p.ID, idName, "ID of the item to remove; use Get-KINAApplication to read it", binder.Required())
		},
		Build: func(p *removeChildParams) (*In, error) {
			return build(p.ApplicationName.Ptr(), p.CurrentApplicationVersionId.Ptr(), p.ID.Ptr()), nil
		},
		Call: call(fn),
		Target: func(p *removeChildParams) string {
			return p.target() + "/" + p.ID.Or("")
		},
	}
}

func removeCloudWatchLoggingOption() cmdlet.Command {
	return removeChild("ApplicationCloudWatchLoggingOption", "DeleteApplicationCloudWatchLoggingOption",
		"CloudWatchLoggingOptionId", "Deletes a CloudWatch log stream from an application.",
		func(name *string, version *int64, id *string) *kinesisanalytics.DeleteApplicationCloudWatchLoggingOptionInput {
			return &kinesisanalytics.DeleteApplicationCloudWatchLoggingOptionInput{
				ApplicationName: name, CurrentApplicationVersionId: version, CloudWatchLoggingOptionId: id,
			}
		},
		aws.KinesisAnalyticsClient.DeleteApplicationCloudWatchLoggingOption)
}

func removeInputProcessingConfiguration() cmdlet.Command {
	return removeChild("ApplicationInputProcessingConfiguration", "DeleteApplicationInputProcessingConfiguration",
		"InputId", "Deletes the preprocessing configuration of an application input.",
		func(name *string, version *int64, id *string) *kinesisanalytics.DeleteApplicationInputProcessingConfigurationInput {
			return &kinesisanalytics.DeleteApplicationInputProcessingConfigurationInput{
				ApplicationName: name, CurrentApplicationVersionId: version, InputId: id,
			}
		},
		aws.KinesisAnalyticsClient.DeleteApplicationInputProcessingConfiguration)
}

func removeOutput() cmdlet.Command {
	return removeChild("ApplicationOutput", "DeleteApplicationOutput",
		"OutputId", "Deletes an output destination from an application.",
		func(name *string, version *int64, id *string) *kinesisanalytics.DeleteApplicationOutputInput {
			return &kinesisanalytics.DeleteApplicationOutputInput{
				ApplicationName: name, CurrentApplicationVersionId: version, OutputId: id,
			}
		},
		aws.KinesisAnalyticsClient.DeleteApplicationOutput)
}

func removeReferenceDataSource() cmdlet.Command {
	return removeChild("ApplicationReferenceDataSource", "DeleteApplicationReferenceDataSource",
		"ReferenceId", "Deletes a reference data source from an application.",
		func(name *string, version *int64, id *string) *kinesisanalytics.DeleteApplicationReferenceDataSourceInput {
			return &kinesisanalytics.DeleteApplicationReferenceDataSourceInput{
				ApplicationName: name, CurrentApplicationVersionId: version, ReferenceId: id,
			}
		},
		aws.KinesisAnalyticsClient.DeleteApplicationReferenceDataSource)
}
