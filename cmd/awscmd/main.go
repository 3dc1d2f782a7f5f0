// Package main is the awscmd command line. It runs one Kinesis Analytics or
// Security Lake command per invocation, or once per record with -pipeline.
//
//	awscmd [global flags] <Verb-Noun> [command parameters]
//	awscmd list [prefix]
//	awscmd help <Verb-Noun>
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/gurre/s3streamer"
	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/gurre/awscmd/audit"
	"github.com/gurre/awscmd/aws"
	"github.com/gurre/awscmd/checkpoint"
	"github.com/gurre/awscmd/cmdlet"
	"github.com/gurre/awscmd/config"
	"github.com/gurre/awscmd/kina"
	"github.com/gurre/awscmd/logging"
	"github.com/gurre/awscmd/metrics"
	"github.com/gurre/awscmd/optional"
	"github.com/gurre/awscmd/pipeline"
	"github.com/gurre/awscmd/preflight"
	"github.com/gurre/awscmd/render"
	"github.com/gurre/awscmd/slk"
)

const (
	exitOK      = 0
	exitFailed  = 1
	exitUsage   = 2
	programName = "awscmd"
)

// usageError marks failures caused by how awscmd was invoked.
type usageError struct{ err error }

func (e *usageError) Error() string { return e.err.Error() }
func (e *usageError) Unwrap() error { return e.err }

func usagef(format string, args ...any) error {
	return &usageError{fmt.Errorf(format, args...)}
}

// errRecordsFailed is returned when a pipeline run completed with failures.
var errRecordsFailed = errors.New("one or more records failed")

func main() {
	err := run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
	if err != nil && !errors.Is(err, flag.ErrHelp) {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}
	os.Exit(exitCode(err))
}

func exitCode(err error) int {
	var ue *usageError
	switch {
	case err == nil, errors.Is(err, flag.ErrHelp):
		return exitOK
	case errors.As(err, &ue), cmdlet.IsUsageError(err):
		return exitUsage
	default:
		return exitFailed
	}
}

func commands() *cmdlet.Registry {
	return cmdlet.NewRegistry(kina.Commands(), slk.Commands())
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	cfg, err := config.Load(config.PathFromArgs(args))
	if err != nil {
		return &usageError{err}
	}

	registry := commands()
	fs := flag.NewFlagSet(programName, flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: %s [flags] <command> [parameters]\n       %s list [prefix]\n       %s help <command>\n\nFlags:\n",
			programName, programName, programName)
		fs.PrintDefaults()
	}
	cfg.RegisterFlags(fs)
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return err
		}
		return &usageError{err}
	}
	if err := cfg.Validate(); err != nil {
		return usagef("invalid configuration: %w", err)
	}

	rest := fs.Args()
	if len(rest) == 0 {
		fs.Usage()
		return usagef("no command given")
	}
	switch strings.ToLower(rest[0]) {
	case "list":
		prefix := ""
		if len(rest) > 1 {
			prefix = strings.ToLower(rest[1])
		}
		return list(stdout, registry, prefix)
	case "help":
		if len(rest) < 2 {
			return usagef("help needs a command name")
		}
		cmd, ok := registry.Lookup(rest[1])
		if !ok {
			return usagef("unknown command %q", rest[1])
		}
		cmd.Usage(stdout)
		return nil
	}

	cmd, ok := registry.Lookup(rest[0])
	if !ok {
		return usagef("unknown command %q (try %s list)", rest[0], programName)
	}

	logger, err := logging.New(cfg.LogLevel, cfg.LogFormat, stderr)
	if err != nil {
		return &usageError{err}
	}
	defer func() { _ = logger.Sync() }()

	return invoke(cfg, cmd, rest[1:], stdin, stdout, logger)
}

func list(w io.Writer, registry *cmdlet.Registry, prefix string) error {
	for _, c := range registry.All() {
		info := c.Info()
		if prefix != "" && !strings.HasPrefix(strings.ToLower(info.Name), prefix) &&
			!strings.Contains(strings.ToLower(info.Name), "-"+prefix) {
			continue
		}
		if _, err := fmt.Fprintf(w, "%-55s %s\n", info.Name, info.Synopsis); err != nil {
			return err
		}
	}
	return nil
}

func invoke(cfg *config.Config, cmd cmdlet.Command, cmdArgs []string, stdin io.Reader, stdout io.Writer, logger *zap.Logger) error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	tracker := cmdlet.NewTracker()
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigCh)
	go func() {
		select {
		case sig := <-sigCh:
			n := tracker.StopAll()
			logger.Warn("interrupted, stopping", zap.String("signal", sig.String()), zap.Int("inflight", n))
			cancel()
		case <-ctx.Done():
		}
	}()

	threshold, err := cmdlet.ParseImpact(cfg.ConfirmImpact)
	if err != nil {
		return &usageError{err}
	}
	format, err := render.ParseFormat(cfg.Output)
	if err != nil {
		return &usageError{err}
	}

	awsCfg, err := cfg.AWSConfig(ctx)
	if err != nil {
		return err
	}
	clients := aws.NewClients(awsCfg)

	sink, err := render.OpenSink(cfg.OutURI, clients.S3(), stdout)
	if err != nil {
		return &usageError{err}
	}
	defer func() {
		if err := sink.Close(context.WithoutCancel(ctx)); err != nil {
			logger.Error("failed to write output", zap.Error(err))
		}
	}()

	m := metrics.NewMetrics()
	env := &cmdlet.Env{
		Clients: cmdlet.Clients{
			KinesisAnalytics: clients.KinesisAnalytics(),
			SecurityLake:     clients.SecurityLake(),
		},
		Region:    clients.Region(),
		Endpoint:  cfg.EndpointURL,
		Strict:    cfg.Strict,
		Force:     cfg.Force,
		Threshold: threshold,
		Timeout:   cfg.Timeout,
		Confirmer: confirmer(logger),
		Output:    render.NewWriter(sink, format),
		Logger:    logger,
		Metrics:   m,
		Tracker:   tracker,
	}
	if cfg.Preflight {
		env.Preflight = preflight.NewChecker(clients.IAM(), clients.STS())
	}
	if cfg.AuditTable != "" {
		recorder := audit.NewDynamoDBRecorder(clients.DynamoDB(), cfg.AuditTable)
		env.Audit = recorder
		defer func() {
			if err := recorder.Flush(context.WithoutCancel(ctx)); err != nil {
				logger.Error("failed to write audit records", zap.Error(err))
			}
		}()
	}

	if cfg.PipelineInput == "" {
		err = cmd.Run(ctx, env, cmdlet.Request{Args: cmdArgs})
	} else {
		err = runPipeline(ctx, cfg, cmd, cmdArgs, env, clients, stdin)
	}

	if cfg.ReportURI != "" {
		if reportErr := writeReport(ctx, cfg.ReportURI, clients.S3(), m.GenerateReport()); reportErr != nil {
			logger.Error("failed to write report", zap.Error(reportErr))
		}
	}
	return err
}

func runPipeline(ctx context.Context, cfg *config.Config, cmd cmdlet.Command, cmdArgs []string, env *cmdlet.Env, clients *aws.Clients, stdin io.Reader) error {
	var streamer s3streamer.Streamer
	if strings.HasPrefix(cfg.PipelineInput, "s3://") {
		streamer = s3streamer.NewS3Streamer(clients.S3())
	}
	source, err := pipeline.Open(cfg.PipelineInput, stdin, streamer)
	if err != nil {
		return &usageError{err}
	}
	store, err := checkpoint.Open(cfg.ResumeKey, clients.S3())
	if err != nil {
		return &usageError{err}
	}

	runner := &pipeline.Runner{
		Command: cmd.Name(),
		Source:  source,
		Store:   store,
		Every:   cfg.CheckpointEvery,
		Metrics: env.Metrics,
		Logger:  env.Logger,
		Abort:   cmdlet.IsUsageError,
	}
	state, err := runner.Run(ctx, func(ctx context.Context, record string) error {
		return cmd.Run(ctx, env, cmdlet.Request{Args: cmdArgs, Pipeline: optional.Of(record)})
	})
	if err != nil {
		return err
	}
	env.Logger.Info(env.Metrics.GenerateReport().String())
	if state.Failed > 0 {
		return fmt.Errorf("%w: %d of %d", errRecordsFailed, state.Failed, state.Processed)
	}
	return nil
}

// confirmer prompts on the controlling terminal. Without one, commands at
// or above the threshold are declined unless -force is set.
func confirmer(logger *zap.Logger) cmdlet.Confirmer {
	tty, err := os.OpenFile("/dev/tty", os.O_RDWR, 0)
	if err != nil || !term.IsTerminal(int(tty.Fd())) {
		if tty != nil {
			_ = tty.Close()
		}
		logger.Debug("no terminal for confirmation prompts")
		return cmdlet.NewPrompter(strings.NewReader(""), io.Discard, false)
	}
	return cmdlet.NewPrompter(tty, tty, true)
}

func writeReport(ctx context.Context, uri string, client aws.S3Client, report metrics.Report) error {
	sink, err := render.OpenSink(uri, client, io.Discard)
	if err != nil {
		return err
	}
	if err := render.NewWriter(sink, render.FormatJSON).Emit(report); err != nil {
		return err
	}
	return sink.Close(context.WithoutCancel(ctx))
}
