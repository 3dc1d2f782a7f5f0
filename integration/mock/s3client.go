package mock

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"

	"github.com/gurre/awscmd/aws"
)

// S3Client is an in-memory mock of aws.S3Client. It also implements
// s3streamer.Streamer over the same objects.
type S3Client struct {
	mu sync.RWMutex

	// Maps bucket/key to object content
	Files map[string][]byte
}

var _ aws.S3Client = (*S3Client)(nil)

// NewS3Client creates a new mock S3 client
func NewS3Client() *S3Client {
	return &S3Client{Files: make(map[string][]byte)}
}

// Put stores an object.
func (m *S3Client) Put(bucket, key string, content []byte) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Files[bucket+"/"+key] = content
}

// Object returns a stored object.
func (m *S3Client) Object(bucket, key string) ([]byte, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	content, ok := m.Files[bucket+"/"+key]
	return content, ok
}

func (m *S3Client) GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error) {
	content, ok := m.Object(*params.Bucket, *params.Key)
	if !ok {
		return nil, &types.NoSuchKey{Message: params.Key}
	}
	size := int64(len(content))
	return &s3.GetObjectOutput{
		Body:          io.NopCloser(bytes.NewReader(content)),
		ContentLength: &size,
	}, nil
}

func (m *S3Client) PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	content, err := io.ReadAll(params.Body)
	if err != nil {
		return nil, fmt.Errorf("mock S3: failed to read body: %w", err)
	}
	m.Put(*params.Bucket, *params.Key, content)
	return &s3.PutObjectOutput{}, nil
}

// Stream reads an object line by line, reporting line numbers as offsets
// and skipping lines before offset.
func (m *S3Client) Stream(ctx context.Context, bucket, key string, offset int64, fn func([]byte, int64) error) error {
	content, ok := m.Object(bucket, strings.TrimPrefix(key, bucket+"/"))
	if !ok {
		return fmt.Errorf("mock S3: key not found: %s/%s", bucket, key)
	}

	scanner := bufio.NewScanner(bytes.NewReader(content))
	scanner.Buffer(make([]byte, 1024*1024), 1024*1024)

	lineNum := int64(0)
	for scanner.Scan() {
		if lineNum < offset {
			lineNum++
			continue
		}
		if err := fn(scanner.Bytes(), lineNum); err != nil {
			return err
		}
		lineNum++

		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("error scanning lines: %w", err)
	}
	return nil
}
