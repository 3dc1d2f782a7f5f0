package checkpoint

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
)

// fakeS3 keeps objects in a map keyed by bucket/key.
type fakeS3 struct {
	objects map[string][]byte
}

func (f *fakeS3) GetObject(ctx context.Context, in *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error) {
	data, ok := f.objects[*in.Bucket+"/"+*in.Key]
	if !ok {
		return nil, &types.NoSuchKey{}
	}
	return &s3.GetObjectOutput{Body: io.NopCloser(bytes.NewReader(data))}, nil
}

func (f *fakeS3) PutObject(ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	data, err := io.ReadAll(in.Body)
	if err != nil {
		return nil, err
	}
	f.objects[*in.Bucket+"/"+*in.Key] = data
	return &s3.PutObjectOutput{}, nil
}

func testState() State {
	return State{
		Command:   "Add-KINAResourceTag",
		Source:    "s3://inputs/arns.txt",
		Offset:    1024,
		Processed: 12,
		Failed:    1,
	}
}

func TestMemoryStore_SaveLoad(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	if err := store.Save(ctx, testState()); err != nil {
		t.Fatalf("failed to save state: %v", err)
	}

	loaded, err := store.Load(ctx)
	if err != nil {
		t.Fatalf("failed to load state: %v", err)
	}
	if loaded != testState() {
		t.Errorf("state mismatch: got %+v, want %+v", loaded, testState())
	}
}

func TestMemoryStore_EmptyState(t *testing.T) {
	state, err := NewMemoryStore().Load(context.Background())
	if err != nil {
		t.Fatalf("failed to load empty state: %v", err)
	}
	if state != (State{}) {
		t.Errorf("expected zero state, got %+v", state)
	}
}

func TestStateMatches(t *testing.T) {
	s := testState()
	if !s.Matches("add-kinaresourcetag", "s3://inputs/arns.txt") {
		t.Error("expected case-insensitive command match")
	}
	if s.Matches("Add-KINAResourceTag", "s3://inputs/other.txt") {
		t.Error("expected mismatch on a different source")
	}
	if (State{}).Matches("", "") {
		t.Error("zero state must match nothing")
	}
}

func TestFileStore_SaveLoad(t *testing.T) {
	uri := "file://" + filepath.Join(t.TempDir(), "checkpoint.json")

	store, err := NewFileStore(uri)
	if err != nil {
		t.Fatalf("failed to create file store: %v", err)
	}

	ctx := context.Background()
	if err := store.Save(ctx, testState()); err != nil {
		t.Fatalf("failed to save state: %v", err)
	}

	loaded, err := store.Load(ctx)
	if err != nil {
		t.Fatalf("failed to load state: %v", err)
	}
	if loaded != testState() {
		t.Errorf("state mismatch: got %+v, want %+v", loaded, testState())
	}
	if _, err := os.Stat(store.path + ".tmp"); !os.IsNotExist(err) {
		t.Error("expected temporary file to be renamed away")
	}
}

func TestFileStore_NonExistent(t *testing.T) {
	uri := "file://" + filepath.Join(t.TempDir(), "nonexistent.json")

	store, err := NewFileStore(uri)
	if err != nil {
		t.Fatalf("failed to create file store: %v", err)
	}

	state, err := store.Load(context.Background())
	if err != nil {
		t.Fatalf("failed to load non-existent state: %v", err)
	}
	if state != (State{}) {
		t.Errorf("expected empty state for non-existent file, got: %+v", state)
	}
}

func TestFileStore_InvalidURI(t *testing.T) {
	testCases := []string{
		"s3://bucket/key",
		"http://example.com/file",
		"/path/without/scheme",
	}

	for _, uri := range testCases {
		t.Run(uri, func(t *testing.T) {
			if _, err := NewFileStore(uri); err == nil {
				t.Errorf("expected error for invalid file URI: %s", uri)
			}
		})
	}
}

func TestFileStore_CreatesDirectory(t *testing.T) {
	nestedDir := filepath.Join(t.TempDir(), "nested", "dir")
	uri := "file://" + filepath.Join(nestedDir, "checkpoint.json")

	store, err := NewFileStore(uri)
	if err != nil {
		t.Fatalf("failed to create file store: %v", err)
	}
	if _, err := os.Stat(nestedDir); os.IsNotExist(err) {
		t.Error("expected nested directory to be created")
	}
	if err := store.Save(context.Background(), State{Source: "stdin"}); err != nil {
		t.Fatalf("failed to save state: %v", err)
	}
}

func TestS3Store_SaveLoad(t *testing.T) {
	client := &fakeS3{objects: map[string][]byte{}}
	store, err := NewS3Store(client, "s3://my-bucket/path/to/checkpoint.json")
	if err != nil {
		t.Fatalf("failed to create S3 store: %v", err)
	}
	if store.bucket != "my-bucket" || store.key != "path/to/checkpoint.json" {
		t.Fatalf("unexpected location %s/%s", store.bucket, store.key)
	}

	ctx := context.Background()
	empty, err := store.Load(ctx)
	if err != nil {
		t.Fatalf("missing object must load as empty state: %v", err)
	}
	if empty != (State{}) {
		t.Errorf("expected zero state, got %+v", empty)
	}

	if err := store.Save(ctx, testState()); err != nil {
		t.Fatalf("failed to save state: %v", err)
	}
	loaded, err := store.Load(ctx)
	if err != nil {
		t.Fatalf("failed to load state: %v", err)
	}
	if loaded != testState() {
		t.Errorf("state mismatch: got %+v", loaded)
	}
}

func TestS3Store_InvalidURI(t *testing.T) {
	testCases := []string{
		"http://bucket/key",
		"https://bucket/key",
		"file:///path/to/file",
		"bucket/key",
		"s3://bucket-only",
	}

	for _, uri := range testCases {
		t.Run(uri, func(t *testing.T) {
			if _, err := NewS3Store(nil, uri); err == nil {
				t.Errorf("expected error for invalid S3 URI: %s", uri)
			}
		})
	}
}

func TestOpen(t *testing.T) {
	if s, err := Open("", nil); err != nil {
		t.Fatalf("empty URI: %v", err)
	} else if _, ok := s.(*MemoryStore); !ok {
		t.Errorf("expected MemoryStore, got %T", s)
	}
	if s, err := Open("s3://b/k.json", &fakeS3{}); err != nil {
		t.Fatalf("s3 URI: %v", err)
	} else if _, ok := s.(*S3Store); !ok {
		t.Errorf("expected S3Store, got %T", s)
	}
	if s, err := Open("file://"+filepath.Join(t.TempDir(), "c.json"), nil); err != nil {
		t.Fatalf("file URI: %v", err)
	} else if _, ok := s.(*FileStore); !ok {
		t.Errorf("expected FileStore, got %T", s)
	}
	if _, err := Open("ftp://host/c.json", nil); err == nil {
		t.Error("expected error for unsupported scheme")
	}
}

func TestMemoryStore_Overwrite(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	if err := store.Save(ctx, State{Source: "first", Offset: 100}); err != nil {
		t.Fatalf("failed to save first state: %v", err)
	}
	if err := store.Save(ctx, State{Source: "second", Offset: 200}); err != nil {
		t.Fatalf("failed to save second state: %v", err)
	}

	loaded, err := store.Load(ctx)
	if err != nil {
		t.Fatalf("failed to load state: %v", err)
	}
	if loaded.Source != "second" || loaded.Offset != 200 {
		t.Errorf("expected second state, got %+v", loaded)
	}
}
