package aws

import (
	sdkaws "github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/iam"
	"github.com/aws/aws-sdk-go-v2/service/kinesisanalytics"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/securitylake"
	"github.com/aws/aws-sdk-go-v2/service/sts"
)

// Clients bundles the concrete SDK clients built from one AWS configuration.
// Services are constructed lazily so a command only pays for the clients it
// touches.
type Clients struct {
	cfg sdkaws.Config

	kinesisAnalytics *kinesisanalytics.Client
	securityLake     *securitylake.Client
	s3               *s3.Client
	dynamodb         *dynamodb.Client
	iam              *iam.Client
	sts              *sts.Client
}

// NewClients creates a Clients over cfg. A BaseEndpoint set on cfg applies to
// the command services only; supporting services keep their default endpoints.
func NewClients(cfg sdkaws.Config) *Clients {
	return &Clients{cfg: cfg}
}

func (c *Clients) supportConfig() sdkaws.Config {
	cfg := c.cfg.Copy()
	cfg.BaseEndpoint = nil
	return cfg
}

// KinesisAnalytics returns the Kinesis Analytics v1 client.
func (c *Clients) KinesisAnalytics() *kinesisanalytics.Client {
	if c.kinesisAnalytics == nil {
		c.kinesisAnalytics = kinesisanalytics.NewFromConfig(c.cfg)
	}
	return c.kinesisAnalytics
}

// SecurityLake returns the Security Lake client.
func (c *Clients) SecurityLake() *securitylake.Client {
	if c.securityLake == nil {
		c.securityLake = securitylake.NewFromConfig(c.cfg)
	}
	return c.securityLake
}

// S3 returns the S3 client used for sinks, checkpoints and pipeline sources.
func (c *Clients) S3() *s3.Client {
	if c.s3 == nil {
		c.s3 = s3.NewFromConfig(c.supportConfig())
	}
	return c.s3
}

// DynamoDB returns the DynamoDB client used by the audit trail.
func (c *Clients) DynamoDB() *dynamodb.Client {
	if c.dynamodb == nil {
		c.dynamodb = dynamodb.NewFromConfig(c.supportConfig())
	}
	return c.dynamodb
}

// IAM returns the IAM client used for permission preflight.
func (c *Clients) IAM() *iam.Client {
	if c.iam == nil {
		c.iam = iam.NewFromConfig(c.supportConfig())
	}
	return c.iam
}

// STS returns the STS client used to resolve the caller.
func (c *Clients) STS() *sts.Client {
	if c.sts == nil {
		c.sts = sts.NewFromConfig(c.supportConfig())
	}
	return c.sts
}

// Region returns the configured region.
func (c *Clients) Region() string {
	return c.cfg.Region
}
