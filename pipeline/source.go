package pipeline

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/gurre/s3streamer"

	"github.com/gurre/awscmd/checkpoint"
)

// Source yields newline-delimited records. Each record is reported with an
// offset; offsets increase strictly within one source and streaming from an
// offset yields that record or the one after it.
type Source interface {
	// Name identifies the source in checkpoints.
	Name() string
	Stream(ctx context.Context, offset int64, fn func(record []byte, offset int64) error) error
}

// Open returns the source for uri: "-" reads stdin, file:// a local file and
// s3:// an object streamed with streamer.
func Open(uri string, stdin io.Reader, streamer s3streamer.Streamer) (Source, error) {
	switch {
	case uri == "-":
		return NewReaderSource("stdin", stdin), nil
	case strings.HasPrefix(uri, "file://"):
		path, err := checkpoint.ParseFileURI(uri)
		if err != nil {
			return nil, err
		}
		return &FileSource{uri: uri, path: path}, nil
	case strings.HasPrefix(uri, "s3://"):
		return NewS3Source(streamer, uri)
	default:
		return nil, fmt.Errorf("unsupported pipeline input %q: use -, file:// or s3://", uri)
	}
}

// ReaderSource reads records from a stream that cannot seek. Offsets are the
// byte position of each record's first byte.
type ReaderSource struct {
	name string
	r    io.Reader
}

// NewReaderSource creates a ReaderSource.
func NewReaderSource(name string, r io.Reader) *ReaderSource {
	return &ReaderSource{name: name, r: r}
}

func (s *ReaderSource) Name() string { return s.name }

// Stream discards offset bytes and then reports each line.
func (s *ReaderSource) Stream(ctx context.Context, offset int64, fn func([]byte, int64) error) error {
	if offset > 0 {
		if _, err := io.CopyN(io.Discard, s.r, offset); err != nil {
			return fmt.Errorf("failed to skip to offset %d: %w", offset, err)
		}
	}
	return readLines(ctx, s.r, offset, fn)
}

// FileSource reads records from a local file, seeking to the resume offset.
type FileSource struct {
	uri  string
	path string
}

func (s *FileSource) Name() string { return s.uri }

func (s *FileSource) Stream(ctx context.Context, offset int64, fn func([]byte, int64) error) error {
	f, err := os.Open(s.path)
	if err != nil {
		return fmt.Errorf("failed to open pipeline input: %w", err)
	}
	defer func() { _ = f.Close() }()

	if offset > 0 {
		if _, err := f.Seek(offset, io.SeekStart); err != nil {
			return fmt.Errorf("failed to seek to offset %d: %w", offset, err)
		}
	}
	return readLines(ctx, f, offset, fn)
}

func readLines(ctx context.Context, r io.Reader, offset int64, fn func([]byte, int64) error) error {
	br := bufio.NewReaderSize(r, 64*1024)
	pos := offset
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		line, err := br.ReadBytes('\n')
		if len(line) > 0 {
			start := pos
			pos += int64(len(line))
			if ferr := fn(bytes.TrimRight(line, "\r\n"), start); ferr != nil {
				return ferr
			}
		}
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return fmt.Errorf("failed to read pipeline input: %w", err)
		}
	}
}

// S3Source streams records from one S3 object.
type S3Source struct {
	streamer s3streamer.Streamer
	uri      string
	bucket   string
	key      string
}

// NewS3Source creates an S3Source for s3://bucket/key.
func NewS3Source(streamer s3streamer.Streamer, uri string) (*S3Source, error) {
	bucket, key, err := checkpoint.ParseS3URI(uri)
	if err != nil {
		return nil, err
	}
	if key == "" {
		return nil, fmt.Errorf("S3 URI %q has no object key", uri)
	}
	if streamer == nil {
		return nil, fmt.Errorf("no S3 streamer for %s", uri)
	}
	return &S3Source{streamer: streamer, uri: uri, bucket: bucket, key: key}, nil
}

func (s *S3Source) Name() string { return s.uri }

func (s *S3Source) Stream(ctx context.Context, offset int64, fn func([]byte, int64) error) error {
	return s.streamer.Stream(ctx, s.bucket, s.key, offset, func(line []byte, byteOffset int64) error {
		return fn(bytes.TrimRight(line, "\r\n"), byteOffset)
	})
}
