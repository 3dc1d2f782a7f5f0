// Package config holds the global settings of an awscmd run. Values come from
// built-in defaults, then an optional YAML file, then command-line flags.
package config

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	sdkaws "github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"gopkg.in/yaml.v3"
)

// EnvConfigFile names the environment variable pointing at a config file.
const EnvConfigFile = "AWSCMD_CONFIG_FILE"

// Config holds all global settings.
type Config struct {
	Region      string `yaml:"region"`       // AWS region, SDK default chain when empty
	Profile     string `yaml:"profile"`      // shared config profile
	EndpointURL string `yaml:"endpoint_url"` // endpoint override for the command services

	// Static credentials, used instead of the SDK credential chain when set.
	AccessKey    string `yaml:"access_key"`
	SecretKey    string `yaml:"secret_key"`
	SessionToken string `yaml:"session_token"`

	Output string `yaml:"output"` // json|yaml|text
	OutURI string `yaml:"out"`    // -, file:// or s3:// destination for output

	Strict        bool          `yaml:"strict"`         // warn on unbound required parameters
	Force         bool          `yaml:"force"`          // never prompt for confirmation
	ConfirmImpact string        `yaml:"confirm_impact"` // none|low|medium|high
	Timeout       time.Duration `yaml:"timeout"`        // per-invocation timeout, 0 for none

	LogLevel  string `yaml:"log_level"`  // debug|info|warn|error
	LogFormat string `yaml:"log_format"` // console|json

	Preflight  bool   `yaml:"preflight"`   // simulate IAM permissions before each call
	AuditTable string `yaml:"audit_table"` // DynamoDB table for the audit trail

	PipelineInput   string `yaml:"pipeline"`         // -, file:// or s3:// source of piped records
	ResumeKey       string `yaml:"resume"`           // file:// or s3:// checkpoint location
	ReportURI       string `yaml:"report"`           // file:// or s3:// destination for the run report
	CheckpointEvery int    `yaml:"checkpoint_every"` // records between checkpoint saves
}

// Default returns the built-in defaults.
func Default() *Config {
	return &Config{
		Output:          "json",
		Strict:          true,
		ConfirmImpact:   "high",
		LogLevel:        "info",
		LogFormat:       "console",
		CheckpointEvery: 100,
	}
}

// Load reads the config file at path over the defaults. An empty path falls
// back to $AWSCMD_CONFIG_FILE and then the standard locations; finding no
// file there is not an error.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path == "" {
		path = os.Getenv(EnvConfigFile)
	}
	if path == "" {
		for _, loc := range defaultLocations() {
			if _, err := os.Stat(loc); err == nil {
				path = loc
				break
			}
		}
	}
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	return cfg, nil
}

func defaultLocations() []string {
	locs := []string{"awscmd.yaml", ".awscmd.yaml"}
	if home, err := os.UserHomeDir(); err == nil {
		locs = append(locs, filepath.Join(home, ".awscmd", "config.yaml"))
	}
	return locs
}

// PathFromArgs finds the value of -config in the global arguments, which
// must be known before the remaining flags are registered. Scanning stops at
// the first non-flag argument, the command name.
func PathFromArgs(args []string) string {
	for i := 0; i < len(args); i++ {
		arg := args[i]
		if !strings.HasPrefix(arg, "-") {
			return ""
		}
		name := strings.TrimLeft(arg, "-")
		if v, ok := strings.CutPrefix(name, "config="); ok {
			return v
		}
		if name == "config" && i+1 < len(args) {
			return args[i+1]
		}
	}
	return ""
}

// RegisterFlags binds the global flags to c. Current field values become the
// flag defaults, so flags override the config file.
func (c *Config) RegisterFlags(fs *flag.FlagSet) {
	fs.String("config", "", "YAML config file (default $"+EnvConfigFile+")")
	fs.StringVar(&c.Region, "region", c.Region, "AWS region")
	fs.StringVar(&c.Profile, "profile", c.Profile, "shared config profile")
	fs.StringVar(&c.EndpointURL, "endpoint-url", c.EndpointURL, "service endpoint override")
	fs.StringVar(&c.AccessKey, "access-key", c.AccessKey, "static access key ID")
	fs.StringVar(&c.SecretKey, "secret-key", c.SecretKey, "static secret access key")
	fs.StringVar(&c.SessionToken, "session-token", c.SessionToken, "static session token")
	fs.StringVar(&c.Output, "output", c.Output, "output format (json|yaml|text)")
	fs.StringVar(&c.OutURI, "out", c.OutURI, "output destination (-, file:// or s3://)")
	fs.BoolVar(&c.Strict, "strict", c.Strict, "warn when required parameters are not bound")
	fs.BoolVar(&c.Force, "force", c.Force, "never ask for confirmation")
	fs.StringVar(&c.ConfirmImpact, "confirm-impact", c.ConfirmImpact, "lowest impact that asks for confirmation (none|low|medium|high)")
	fs.DurationVar(&c.Timeout, "timeout", c.Timeout, "per-invocation timeout (0 for none)")
	fs.StringVar(&c.LogLevel, "log-level", c.LogLevel, "log level (debug|info|warn|error)")
	fs.StringVar(&c.LogFormat, "log-format", c.LogFormat, "log format (console|json)")
	fs.BoolVar(&c.Preflight, "preflight", c.Preflight, "simulate IAM permissions before each call")
	fs.StringVar(&c.AuditTable, "audit-table", c.AuditTable, "DynamoDB table receiving one audit record per invocation")
	fs.StringVar(&c.PipelineInput, "pipeline", c.PipelineInput, "read one record per line and invoke the command for each (-, file:// or s3://)")
	fs.StringVar(&c.ResumeKey, "resume", c.ResumeKey, "checkpoint location for -pipeline (file:// or s3://)")
	fs.StringVar(&c.ReportURI, "report", c.ReportURI, "write the run report (file:// or s3://)")
	fs.IntVar(&c.CheckpointEvery, "checkpoint-every", c.CheckpointEvery, "records between checkpoint saves")
}

func oneOf(name, value string, allowed ...string) error {
	for _, a := range allowed {
		if strings.EqualFold(value, a) {
			return nil
		}
	}
	return fmt.Errorf("%s must be one of %s, got %q", name, strings.Join(allowed, "|"), value)
}

func validURI(name, value string, schemes ...string) error {
	for _, s := range schemes {
		if s == "-" && value == "-" {
			return nil
		}
		if strings.HasPrefix(value, s+"://") {
			return nil
		}
	}
	return fmt.Errorf("%s must use one of %s, got %q", name, strings.Join(schemes, ", "), value)
}

// Validate checks that settings are consistent.
func (c *Config) Validate() error {
	if err := oneOf("output", c.Output, "json", "yaml", "text"); err != nil {
		return err
	}
	if err := oneOf("confirm impact", c.ConfirmImpact, "none", "low", "medium", "high"); err != nil {
		return err
	}
	if err := oneOf("log level", c.LogLevel, "debug", "info", "warn", "warning", "error"); err != nil {
		return err
	}
	if err := oneOf("log format", c.LogFormat, "console", "json"); err != nil {
		return err
	}

	if c.EndpointURL != "" {
		u, err := url.Parse(c.EndpointURL)
		if err != nil {
			return fmt.Errorf("invalid endpoint URL: %w", err)
		}
		if (u.Scheme != "https" && u.Scheme != "http") || u.Host == "" {
			return fmt.Errorf("endpoint URL must be an absolute http or https URL")
		}
	}

	if (c.AccessKey == "") != (c.SecretKey == "") {
		return errors.New("access key and secret key must be given together")
	}
	if c.SessionToken != "" && c.AccessKey == "" {
		return errors.New("session token requires an access key")
	}

	if c.Timeout < 0 {
		return errors.New("timeout must not be negative")
	}

	if c.OutURI != "" {
		if err := validURI("output URI", c.OutURI, "-", "file", "s3"); err != nil {
			return err
		}
	}
	if c.ReportURI != "" {
		if err := validURI("report URI", c.ReportURI, "file", "s3"); err != nil {
			return err
		}
	}
	if c.PipelineInput != "" {
		if err := validURI("pipeline input", c.PipelineInput, "-", "file", "s3"); err != nil {
			return err
		}
	}
	if c.ResumeKey != "" {
		if c.PipelineInput == "" {
			return errors.New("resume requires pipeline input")
		}
		if c.PipelineInput == "-" {
			return errors.New("resume requires a file:// or s3:// pipeline input")
		}
		if err := validURI("resume key", c.ResumeKey, "file", "s3"); err != nil {
			return err
		}
	}
	if c.CheckpointEvery < 1 {
		return errors.New("checkpoint interval must be at least 1")
	}
	return nil
}

// AWSConfig loads the SDK configuration for the settings. The endpoint
// override is set as the base endpoint.
func (c *Config) AWSConfig(ctx context.Context) (sdkaws.Config, error) {
	var opts []func(*awsconfig.LoadOptions) error
	if c.Region != "" {
		opts = append(opts, awsconfig.WithRegion(c.Region))
	}
	if c.Profile != "" {
		opts = append(opts, awsconfig.WithSharedConfigProfile(c.Profile))
	}
	if c.AccessKey != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(c.AccessKey, c.SecretKey, c.SessionToken)))
	}

	cfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return sdkaws.Config{}, fmt.Errorf("failed to load AWS config: %w", err)
	}
	if c.EndpointURL != "" {
		cfg.BaseEndpoint = sdkaws.String(c.EndpointURL)
	}
	return cfg, nil
}
