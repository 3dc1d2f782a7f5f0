// Package audit records one entry per invocation: what was called, on which
// target, and how it ended. Entries go to a DynamoDB table or to memory.
package audit

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/gurre/awscmd/aws"
)

// Outcome is how an invocation ended.
type Outcome string

const (
	OutcomeSucceeded Outcome = "succeeded"
	OutcomeFailed    Outcome = "failed"
	OutcomeStopped   Outcome = "stopped"
	OutcomeDeclined  Outcome = "declined"
)

// Record is one audit entry. InvocationID is the table's partition key.
type Record struct {
	InvocationID string        `dynamodbav:"invocationId"`
	Command      string        `dynamodbav:"command"`
	Service      string        `dynamodbav:"service"`
	Target       string        `dynamodbav:"target,omitempty"`
	Region       string        `dynamodbav:"region,omitempty"`
	Outcome      Outcome       `dynamodbav:"outcome"`
	Error        string        `dynamodbav:"error,omitempty"`
	StartedAt    time.Time     `dynamodbav:"startedAt"`
	Duration     time.Duration `dynamodbav:"durationNanos"`
}

// Recorder stores audit records.
type Recorder interface {
	Record(ctx context.Context, r Record) error
	Flush(ctx context.Context) error
}

// maxBatch is the BatchWriteItem request limit.
const maxBatch = 25

// DynamoDBRecorder buffers records and writes them with BatchWriteItem.
type DynamoDBRecorder struct {
	client    aws.DynamoDBClient
	tableName string

	mu      sync.Mutex
	pending []types.WriteRequest
}

// NewDynamoDBRecorder creates a recorder writing to tableName.
func NewDynamoDBRecorder(client aws.DynamoDBClient, tableName string) *DynamoDBRecorder {
	return &DynamoDBRecorder{client: client, tableName: tableName}
}

// Record buffers r and writes a batch once maxBatch records are pending.
func (d *DynamoDBRecorder) Record(ctx context.Context, r Record) error {
	item, err := attributevalue.MarshalMap(r)
	if err != nil {
		return fmt.Errorf("failed to encode audit record: %w", err)
	}

	d.mu.Lock()
	d.pending = append(d.pending, types.WriteRequest{PutRequest: &types.PutRequest{Item: item}})
	var batch []types.WriteRequest
	if len(d.pending) >= maxBatch {
		batch = d.pending
		d.pending = nil
	}
	d.mu.Unlock()

	if batch == nil {
		return nil
	}
	return d.write(ctx, batch)
}

// Flush writes every pending record.
func (d *DynamoDBRecorder) Flush(ctx context.Context) error {
	d.mu.Lock()
	batch := d.pending
	d.pending = nil
	d.mu.Unlock()

	for len(batch) > 0 {
		n := min(len(batch), maxBatch)
		if err := d.write(ctx, batch[:n]); err != nil {
			return err
		}
		batch = batch[n:]
	}
	return nil
}

// isThrottlingError returns true for DynamoDB capacity errors, which clear
// by waiting.
func isThrottlingError(err error) bool {
	var throughputErr *types.ProvisionedThroughputExceededException
	var requestLimitErr *types.RequestLimitExceeded
	return errors.As(err, &throughputErr) || errors.As(err, &requestLimitErr)
}

// backoffWait sleeps for an exponentially increasing duration with jitter.
// Returns false if the context is cancelled during the wait.
func backoffWait(ctx context.Context, attempt int) bool {
	base := 50 * time.Millisecond
	maxDelay := 5 * time.Second

	delay := base * time.Duration(1<<uint(attempt))
	if delay > maxDelay {
		delay = maxDelay
	}
	delay += time.Duration(rand.Int64N(int64(delay)))

	select {
	case <-time.After(delay):
		return true
	case <-ctx.Done():
		return false
	}
}

// maxAttempts bounds retries of a batch; audit writes must not hold up a run.
const maxAttempts = 5

func (d *DynamoDBRecorder) write(ctx context.Context, batch []types.WriteRequest) error {
	input := &dynamodb.BatchWriteItemInput{
		RequestItems: map[string][]types.WriteRequest{d.tableName: batch},
	}

	for attempt := 0; ; attempt++ {
		output, err := d.client.BatchWriteItem(ctx, input)
		if err == nil && len(output.UnprocessedItems) == 0 {
			return nil
		}
		if err != nil && !isThrottlingError(err) {
			return fmt.Errorf("failed to write audit records: %w", err)
		}
		if attempt+1 >= maxAttempts {
			if err != nil {
				return fmt.Errorf("failed to write audit records after %d attempts: %w", maxAttempts, err)
			}
			return fmt.Errorf("failed to write %d audit records after %d attempts", len(output.UnprocessedItems[d.tableName]), maxAttempts)
		}
		if err == nil {
			input.RequestItems = output.UnprocessedItems
		}
		if !backoffWait(ctx, attempt) {
			return ctx.Err()
		}
	}
}

// MemoryRecorder keeps records in memory. It is used in tests and when no
// audit table is configured but a run summary is wanted.
type MemoryRecorder struct {
	mu      sync.Mutex
	records []Record
}

// NewMemoryRecorder creates an empty MemoryRecorder.
func NewMemoryRecorder() *MemoryRecorder {
	return &MemoryRecorder{}
}

// Record appends r.
func (m *MemoryRecorder) Record(ctx context.Context, r Record) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.records = append(m.records, r)
	return nil
}

// Flush is a no-op.
func (m *MemoryRecorder) Flush(ctx context.Context) error { return nil }

// Records returns a copy of the recorded entries.
func (m *MemoryRecorder) Records() []Record {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]Record(nil), m.records...)
}
