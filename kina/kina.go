// Package kina holds the Amazon Kinesis Analytics (v1, SQL applications)
// commands. Each command is a static table: parameters bound from flags,
// the request they build, the one client call and the response selectors.
package kina

import (
	"context"
	"errors"

	"github.com/aws/aws-sdk-go-v2/service/kinesisanalytics"
	"github.com/aws/aws-sdk-go-v2/service/kinesisanalytics/types"

	"github.com/gurre/awscmd/aws"
	"github.com/gurre/awscmd/binder"
	"github.com/gurre/awscmd/cmdlet"
	"github.com/gurre/awscmd/optional"
)

const (
	service = "kinesisanalytics"
	prefix  = "KINA"
)

var errNoClient = errors.New("no Kinesis Analytics client configured")

// Commands returns every Kinesis Analytics command.
func Commands() []cmdlet.Command {
	return []cmdlet.Command{
		addCloudWatchLoggingOption(),
		addInput(),
		addInputProcessingConfiguration(),
		addOutput(),
		addReferenceDataSource(),
		newApplication(),
		removeApplication(),
		removeCloudWatchLoggingOption(),
		removeInputProcessingConfiguration(),
		removeOutput(),
		removeReferenceDataSource(),
		getApplication(),
		findInputSchema(),
		getApplicationList(),
		getResourceTag(),
		startApplication(),
		stopApplication(),
		addResourceTag(),
		removeResourceTag(),
		updateApplication(),
	}
}

// call adapts a client method expression, e.g.
// aws.KinesisAnalyticsClient.StartApplication, to an operation's Call.
func call[In, Out any](fn func(aws.KinesisAnalyticsClient, context.Context, *In, ...func(*kinesisanalytics.Options)) (*Out, error)) func(context.Context, cmdlet.Clients, *In) (*Out, error) {
	return func(ctx context.Context, c cmdlet.Clients, in *In) (*Out, error) {
		if c.KinesisAnalytics == nil {
			return nil, errNoClient
		}
		return fn(c.KinesisAnalytics, ctx, in)
	}
}

func action(name string) string { return service + ":" + name }

// applicationParams identify an application at a version. Most mutating
// operations carry both.
type applicationParams struct {
	ApplicationName             optional.Value[string]
	CurrentApplicationVersionId optional.Value[int64]
}

func (p *applicationParams) bind(s *binder.Set) {
	binder.String(s, &p.ApplicationName, "ApplicationName", "name of the application", binder.Required(), binder.FromPipeline())
	binder.Int64(s, &p.CurrentApplicationVersionId, "CurrentApplicationVersionId", "version of the application; use Get-KINAApplication to read it", binder.Required())
}

func (p *applicationParams) target() string { return p.ApplicationName.Or("") }

// schemaParams are the flattened members of a SourceSchema. The same shape
// describes streaming inputs and reference data.
type schemaParams struct {
	RecordColumns            optional.Value[[]types.RecordColumn]
	RecordEncoding           optional.Value[string]
	RecordFormatType         optional.Value[types.RecordFormatType]
	CSVRecordColumnDelimiter optional.Value[string]
	CSVRecordRowDelimiter    optional.Value[string]
	JSONRecordRowPath        optional.Value[string]
}

// bind registers the schema flags. schema is the short name of the schema
// member ("InputSchema"), path the full path used for aliases
// ("Input_InputSchema").
func (p *schemaParams) bind(s *binder.Set, schema, path string) {
	mapping := path + "_RecordFormat_MappingParameters_"
	binder.JSON(s, &p.RecordColumns, schema+"_RecordColumn",
		`JSON list of columns, e.g. [{"Name":"ticker","SqlType":"VARCHAR(4)","Mapping":"$.ticker"}]`,
		binder.Alias(path+"_RecordColumns"))
	binder.String(s, &p.RecordEncoding, schema+"_RecordEncoding", "encoding of the records, e.g. UTF-8",
		binder.Alias(path+"_RecordEncoding"))
	binder.Enum(s, &p.RecordFormatType, "RecordFormat_RecordFormatType", "type of record format",
		types.RecordFormatType("").Values(), binder.Alias(path+"_RecordFormat_RecordFormatType"))
	binder.String(s, &p.CSVRecordColumnDelimiter, "CSVMappingParameters_RecordColumnDelimiter", "column delimiter, e.g. a comma",
		binder.Alias(mapping+"CSVMappingParameters_RecordColumnDelimiter"))
	binder.String(s, &p.CSVRecordRowDelimiter, "CSVMappingParameters_RecordRowDelimiter", "row delimiter, e.g. a newline",
		binder.Alias(mapping+"CSVMappingParameters_RecordRowDelimiter"))
	binder.String(s, &p.JSONRecordRowPath, "JSONMappingParameters_RecordRowPath", "path to the top-level parent containing the records",
		binder.Alias(mapping+"JSONMappingParameters_RecordRowPath"))
}

func (p *schemaParams) build() *types.SourceSchema {
	return optional.Group(func(sc *types.SourceSchema, b *optional.Builder) {
		optional.SetSlice(b, &sc.RecordColumns, p.RecordColumns)
		optional.Set(b, &sc.RecordEncoding, p.RecordEncoding)
		optional.Nest(b, &sc.RecordFormat, optional.Group(func(f *types.RecordFormat, b *optional.Builder) {
			optional.SetValue(b, &f.RecordFormatType, p.RecordFormatType)
			optional.Nest(b, &f.MappingParameters, optional.Group(func(m *types.MappingParameters, b *optional.Builder) {
				optional.Nest(b, &m.CSVMappingParameters, optional.Group(func(c *types.CSVMappingParameters, b *optional.Builder) {
					optional.Set(b, &c.RecordColumnDelimiter, p.CSVRecordColumnDelimiter)
					optional.Set(b, &c.RecordRowDelimiter, p.CSVRecordRowDelimiter)
				}))
				optional.Nest(b, &m.JSONMappingParameters, optional.Group(func(j *types.JSONMappingParameters, b *optional.Builder) {
					optional.Set(b, &j.RecordRowPath, p.JSONRecordRowPath)
				}))
			}))
		}))
	})
}

// lambdaParams configure a preprocessing Lambda function.
type lambdaParams struct {
	ResourceARN optional.Value[string]
	RoleARN     optional.Value[string]
}

func (p *lambdaParams) bind(s *binder.Set, path string) {
	binder.String(s, &p.ResourceARN, "InputLambdaProcessor_ResourceARN", "ARN of the preprocessing Lambda function",
		binder.Alias(path+"_InputLambdaProcessor_ResourceARN"))
	binder.String(s, &p.RoleARN, "InputLambdaProcessor_RoleARN", "ARN of the role that invokes the function",
		binder.Alias(path+"_InputLambdaProcessor_RoleARN"))
}

func (p *lambdaParams) build() *types.InputProcessingConfiguration {
	return optional.Group(func(c *types.InputProcessingConfiguration, b *optional.Builder) {
		optional.Nest(b, &c.InputLambdaProcessor, optional.Group(func(l *types.InputLambdaProcessor, b *optional.Builder) {
			optional.Set(b, &l.ResourceARN, p.ResourceARN)
			optional.Set(b, &l.RoleARN, p.RoleARN)
		}))
	})
}

// arnRole is a resource ARN with the role used to reach it, the shape of
// every Kinesis stream, Firehose and Lambda source or destination.
type arnRole struct {
	ResourceARN optional.Value[string]
	RoleARN     optional.Value[string]
}

func (p *arnRole) bind(s *binder.Set, member, path, what string) {
	binder.String(s, &p.ResourceARN, member+"_ResourceARN", "ARN of the "+what,
		binder.Alias(path+"_"+member+"_ResourceARN"))
	binder.String(s, &p.RoleARN, member+"_RoleARN", "ARN of the role used to access the "+what,
		binder.Alias(path+"_"+member+"_RoleARN"))
}

// fill sets the two members of an SDK shape with the same layout.
func (p *arnRole) fill(b *optional.Builder, resource, role **string) {
	optional.Set(b, resource, p.ResourceARN)
	optional.Set(b, role, p.RoleARN)
}
