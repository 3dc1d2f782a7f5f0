// Package checkpoint saves and restores pipeline progress so an interrupted
// batch of invocations can resume after the last record it consumed.
package checkpoint

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	json "github.com/goccy/go-json"

	"github.com/gurre/awscmd/aws"
)

// State is the progress of a pipeline run over one input source.
//
//	store, _ := checkpoint.Open("s3://my-bucket/checkpoints/tags.json", s3Client)
//	state, err := store.Load(ctx)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Printf("resuming %s after offset %d\n", state.Source, state.Offset)
type State struct {
	Command   string `json:"command"`   // command the records are fed to
	Source    string `json:"source"`    // input the offsets refer to
	Offset    int64  `json:"offset"`    // offset of the last consumed record, as reported by the source
	Processed int64  `json:"processed"` // records consumed so far
	Failed    int64  `json:"failed"`    // records whose invocation failed
}

// Matches reports whether s was written for the same command and source.
// A zero State matches nothing.
func (s State) Matches(command, source string) bool {
	return s.Source != "" && s.Source == source && strings.EqualFold(s.Command, command)
}

// Store saves and loads checkpoint state.
type Store interface {
	Load(ctx context.Context) (State, error)
	Save(ctx context.Context, s State) error
}

// Open returns the store for uri: s3:// and file:// URIs are persistent,
// an empty uri gives a MemoryStore.
func Open(uri string, client aws.S3Client) (Store, error) {
	switch {
	case uri == "":
		return NewMemoryStore(), nil
	case strings.HasPrefix(uri, "s3://"):
		return NewS3Store(client, uri)
	case strings.HasPrefix(uri, "file://"):
		return NewFileStore(uri)
	default:
		return nil, fmt.Errorf("unsupported checkpoint URI %q: use s3:// or file://", uri)
	}
}

// S3Store keeps the checkpoint in one S3 object.
type S3Store struct {
	client aws.S3Client
	bucket string
	key    string
}

// NewS3Store creates a new S3Store instance from an S3 URI.
func NewS3Store(client aws.S3Client, uri string) (*S3Store, error) {
	bucket, key, err := ParseS3URI(uri)
	if err != nil {
		return nil, err
	}
	if key == "" {
		return nil, fmt.Errorf("S3 URI %q has no object key", uri)
	}
	return &S3Store{client: client, bucket: bucket, key: key}, nil
}

// ParseS3URI splits s3://bucket/key into its parts.
func ParseS3URI(uri string) (bucket, key string, err error) {
	u, err := url.Parse(uri)
	if err != nil {
		return "", "", fmt.Errorf("invalid S3 URI: %w", err)
	}
	if u.Scheme != "s3" {
		return "", "", fmt.Errorf("invalid S3 URI scheme: %s", u.Scheme)
	}
	if u.Host == "" {
		return "", "", fmt.Errorf("S3 URI %q has no bucket", uri)
	}
	return u.Host, strings.TrimPrefix(u.Path, "/"), nil
}

// Load returns the saved state, or a zero State if none was saved yet.
func (s *S3Store) Load(ctx context.Context) (State, error) {
	resp, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: &s.bucket,
		Key:    &s.key,
	})
	if err != nil {
		var noSuchKey *types.NoSuchKey
		if errors.As(err, &noSuchKey) {
			return State{}, nil
		}
		// Some S3-compatible stores answer NotFound instead.
		var notFound *types.NotFound
		if errors.As(err, &notFound) {
			return State{}, nil
		}
		return State{}, fmt.Errorf("failed to get checkpoint: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	var state State
	if err := json.NewDecoder(resp.Body).Decode(&state); err != nil {
		return State{}, fmt.Errorf("failed to decode checkpoint: %w", err)
	}
	return state, nil
}

// Save overwrites the checkpoint object.
func (s *S3Store) Save(ctx context.Context, state State) error {
	data, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("failed to encode checkpoint: %w", err)
	}

	_, err = s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket: &s.bucket,
		Key:    &s.key,
		Body:   bytes.NewReader(data),
	})
	if err != nil {
		return fmt.Errorf("failed to save checkpoint: %w", err)
	}
	return nil
}

// FileStore keeps the checkpoint in a local file.
type FileStore struct {
	path string
}

// NewFileStore creates a new FileStore from a file URI. The path must be
// absolute; its directory is created if missing.
func NewFileStore(uri string) (*FileStore, error) {
	path, err := ParseFileURI(uri)
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}
	return &FileStore{path: path}, nil
}

// ParseFileURI returns the cleaned absolute path of a file:// URI.
func ParseFileURI(uri string) (string, error) {
	u, err := url.Parse(uri)
	if err != nil {
		return "", fmt.Errorf("invalid file URI: %w", err)
	}
	if u.Scheme != "file" {
		return "", fmt.Errorf("invalid file URI scheme: %s", u.Scheme)
	}
	cleanPath := filepath.Clean(u.Path)
	if !filepath.IsAbs(cleanPath) {
		return "", fmt.Errorf("path must be absolute: %s", cleanPath)
	}
	return cleanPath, nil
}

// Load returns the saved state, or a zero State if the file does not exist.
func (f *FileStore) Load(ctx context.Context) (State, error) {
	data, err := os.ReadFile(f.path)
	if err != nil {
		if os.IsNotExist(err) {
			return State{}, nil
		}
		return State{}, fmt.Errorf("failed to read checkpoint file: %w", err)
	}

	var state State
	if err := json.Unmarshal(data, &state); err != nil {
		return State{}, fmt.Errorf("failed to decode checkpoint: %w", err)
	}
	return state, nil
}

// Save writes the state to a temporary file and renames it into place, so a
// crash never leaves a truncated checkpoint.
func (f *FileStore) Save(ctx context.Context, state State) error {
	data, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("failed to encode checkpoint: %w", err)
	}

	tmp := f.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return fmt.Errorf("failed to write checkpoint file: %w", err)
	}
	if err := os.Rename(tmp, f.path); err != nil {
		return fmt.Errorf("failed to replace checkpoint file: %w", err)
	}
	return nil
}
