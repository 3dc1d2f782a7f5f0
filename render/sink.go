package render

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/gurre/awscmd/aws"
	"github.com/gurre/awscmd/checkpoint"
)

// Sink is a destination for rendered output. Close makes the output durable:
// an S3 sink uploads on Close.
type Sink interface {
	io.Writer
	Close(ctx context.Context) error
}

// OpenSink returns the sink for uri. An empty uri or "-" writes to stdout;
// file:// and s3:// URIs write to a file or an S3 object.
func OpenSink(uri string, client aws.S3Client, stdout io.Writer) (Sink, error) {
	switch {
	case uri == "" || uri == "-":
		return &writerSink{Writer: stdout}, nil
	case strings.HasPrefix(uri, "file://"):
		path, err := checkpoint.ParseFileURI(uri)
		if err != nil {
			return nil, err
		}
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			return nil, fmt.Errorf("failed to create directory: %w", err)
		}
		f, err := os.Create(path)
		if err != nil {
			return nil, fmt.Errorf("failed to open output file: %w", err)
		}
		return &fileSink{f: f}, nil
	case strings.HasPrefix(uri, "s3://"):
		bucket, key, err := checkpoint.ParseS3URI(uri)
		if err != nil {
			return nil, err
		}
		if key == "" {
			return nil, fmt.Errorf("S3 URI %q has no object key", uri)
		}
		if client == nil {
			return nil, fmt.Errorf("no S3 client for %s", uri)
		}
		return &S3Sink{client: client, bucket: bucket, key: key}, nil
	default:
		return nil, fmt.Errorf("unsupported output URI %q: use -, file:// or s3://", uri)
	}
}

type writerSink struct {
	io.Writer
}

func (s *writerSink) Close(ctx context.Context) error { return nil }

type fileSink struct {
	f *os.File
}

func (s *fileSink) Write(p []byte) (int, error) { return s.f.Write(p) }

func (s *fileSink) Close(ctx context.Context) error {
	if err := s.f.Close(); err != nil {
		return fmt.Errorf("failed to close output file: %w", err)
	}
	return nil
}

// S3Sink buffers output and uploads it as one object on Close.
type S3Sink struct {
	client aws.S3Client
	bucket string
	key    string
	buf    bytes.Buffer
}

func (s *S3Sink) Write(p []byte) (int, error) { return s.buf.Write(p) }

// Close uploads the buffered output. Nothing is uploaded if nothing was written.
func (s *S3Sink) Close(ctx context.Context) error {
	if s.buf.Len() == 0 {
		return nil
	}
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket: &s.bucket,
		Key:    &s.key,
		Body:   bytes.NewReader(s.buf.Bytes()),
	})
	if err != nil {
		return fmt.Errorf("failed to upload output to s3://%s/%s: %w", s.bucket, s.key, err)
	}
	return nil
}
