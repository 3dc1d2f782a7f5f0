package mock

import (
	"context"
	"sync"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/gurre/awscmd/aws"
)

// DynamoDBClient is a mock of aws.DynamoDBClient that keeps every written
// item per table.
type DynamoDBClient struct {
	mu          sync.Mutex
	tableData   map[string][]map[string]types.AttributeValue
	batchWrites []dynamodb.BatchWriteItemInput
}

var _ aws.DynamoDBClient = (*DynamoDBClient)(nil)

// NewDynamoDBClient creates a new mock DynamoDB client
func NewDynamoDBClient() *DynamoDBClient {
	return &DynamoDBClient{tableData: make(map[string][]map[string]types.AttributeValue)}
}

func (m *DynamoDBClient) BatchWriteItem(ctx context.Context, params *dynamodb.BatchWriteItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.BatchWriteItemOutput, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.batchWrites = append(m.batchWrites, *params)
	for table, requests := range params.RequestItems {
		for _, req := range requests {
			if req.PutRequest != nil {
				m.tableData[table] = append(m.tableData[table], req.PutRequest.Item)
			}
		}
	}
	return &dynamodb.BatchWriteItemOutput{}, nil
}

// Items returns the items written to a table.
func (m *DynamoDBClient) Items(table string) []map[string]types.AttributeValue {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]map[string]types.AttributeValue(nil), m.tableData[table]...)
}

// GetBatchWrites returns all batch write operations
func (m *DynamoDBClient) GetBatchWrites() []dynamodb.BatchWriteItemInput {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]dynamodb.BatchWriteItemInput(nil), m.batchWrites...)
}
