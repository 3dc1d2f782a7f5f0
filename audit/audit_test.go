package audit

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// mockDynamoDBClient implements the aws.DynamoDBClient interface for testing
type mockDynamoDBClient struct {
	batches     [][]types.WriteRequest
	unprocessed int // number of leading calls that return the batch unprocessed
	err         error
	calls       int
}

func (m *mockDynamoDBClient) BatchWriteItem(ctx context.Context, params *dynamodb.BatchWriteItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.BatchWriteItemOutput, error) {
	m.calls++
	if m.err != nil {
		return nil, m.err
	}
	if m.unprocessed > 0 {
		m.unprocessed--
		return &dynamodb.BatchWriteItemOutput{UnprocessedItems: params.RequestItems}, nil
	}
	for _, requests := range params.RequestItems {
		m.batches = append(m.batches, requests)
	}
	return &dynamodb.BatchWriteItemOutput{}, nil
}

func testRecord(id string) Record {
	return Record{
		InvocationID: id,
		Command:      "Start-KINAApplication",
		Service:      "kinesisanalytics",
		Target:       "orders",
		Region:       "eu-west-1",
		Outcome:      OutcomeSucceeded,
		StartedAt:    time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC),
		Duration:     250 * time.Millisecond,
	}
}

func TestDynamoDBRecorderBuffersUntilFlush(t *testing.T) {
	client := &mockDynamoDBClient{}
	r := NewDynamoDBRecorder(client, "audit")
	ctx := context.Background()

	if err := r.Record(ctx, testRecord("a")); err != nil {
		t.Fatalf("record failed: %v", err)
	}
	if client.calls != 0 {
		t.Fatalf("expected no writes before flush, got %d", client.calls)
	}
	if err := r.Flush(ctx); err != nil {
		t.Fatalf("flush failed: %v", err)
	}
	if len(client.batches) != 1 || len(client.batches[0]) != 1 {
		t.Fatalf("expected one batch of one item, got %v", client.batches)
	}

	var got Record
	if err := attributevalue.UnmarshalMap(client.batches[0][0].PutRequest.Item, &got); err != nil {
		t.Fatalf("failed to decode item: %v", err)
	}
	want := testRecord("a")
	if got.InvocationID != want.InvocationID || got.Command != want.Command || got.Outcome != want.Outcome {
		t.Errorf("record mismatch: got %+v", got)
	}
	if !got.StartedAt.Equal(want.StartedAt) || got.Duration != want.Duration {
		t.Errorf("timing mismatch: got %v %v", got.StartedAt, got.Duration)
	}
	if _, ok := client.batches[0][0].PutRequest.Item["error"]; ok {
		t.Error("expected empty error attribute to be omitted")
	}
}

func TestDynamoDBRecorderWritesFullBatches(t *testing.T) {
	client := &mockDynamoDBClient{}
	r := NewDynamoDBRecorder(client, "audit")
	ctx := context.Background()

	for i := 0; i < maxBatch+3; i++ {
		if err := r.Record(ctx, testRecord(string(rune('a'+i)))); err != nil {
			t.Fatalf("record %d failed: %v", i, err)
		}
	}
	if len(client.batches) != 1 || len(client.batches[0]) != maxBatch {
		t.Fatalf("expected one full batch before flush, got %d batches", len(client.batches))
	}
	if err := r.Flush(ctx); err != nil {
		t.Fatalf("flush failed: %v", err)
	}
	if len(client.batches) != 2 || len(client.batches[1]) != 3 {
		t.Fatalf("expected remainder of 3 after flush, got %d batches", len(client.batches))
	}
}

func TestDynamoDBRecorderRetriesUnprocessedItems(t *testing.T) {
	client := &mockDynamoDBClient{unprocessed: 2}
	r := NewDynamoDBRecorder(client, "audit")
	ctx := context.Background()

	_ = r.Record(ctx, testRecord("a"))
	if err := r.Flush(ctx); err != nil {
		t.Fatalf("flush failed: %v", err)
	}
	if client.calls != 3 {
		t.Errorf("expected 3 calls, got %d", client.calls)
	}
	if len(client.batches) != 1 {
		t.Errorf("expected the batch to be written once, got %d", len(client.batches))
	}
}

func TestDynamoDBRecorderFailsOnPersistentError(t *testing.T) {
	client := &mockDynamoDBClient{err: errors.New("table not found")}
	r := NewDynamoDBRecorder(client, "audit")
	ctx := context.Background()

	_ = r.Record(ctx, testRecord("a"))
	if err := r.Flush(ctx); err == nil {
		t.Fatal("expected flush to fail")
	}
	if client.calls != 1 {
		t.Errorf("expected no retry for a non-throttling error, got %d calls", client.calls)
	}
}

func TestMemoryRecorder(t *testing.T) {
	m := NewMemoryRecorder()
	ctx := context.Background()
	_ = m.Record(ctx, testRecord("a"))
	_ = m.Record(ctx, testRecord("b"))

	got := m.Records()
	if len(got) != 2 || got[1].InvocationID != "b" {
		t.Fatalf("unexpected records: %+v", got)
	}
	got[0].InvocationID = "changed"
	if m.Records()[0].InvocationID != "a" {
		t.Error("Records must return a copy")
	}
}
