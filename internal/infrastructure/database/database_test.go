package database

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDynamoDBOptions_Resolve(t *testing.T) {
	t.Setenv("AWS_REGION", "sa-east-1")
	t.Setenv("DYNAMODB_ENDPOINT", "http://dynamodb:8000")

	got := DynamoDBOptions{}.resolve()
	assert.Equal(t, "sa-east-1", got.Region)
	assert.Equal(t, "http://dynamodb:8000", got.Endpoint)

	got = DynamoDBOptions{Region: "us-east-2", Endpoint: "http://localhost:8000"}.resolve()
	assert.Equal(t, "us-east-2", got.Region)
	assert.Equal(t, "http://localhost:8000", got.Endpoint)
}

func TestDynamoDBOptions_DefaultRegion(t *testing.T) {
	t.Setenv("AWS_REGION", "")
	t.Setenv("DYNAMODB_ENDPOINT", "")

	got := DynamoDBOptions{}.resolve()
	assert.Equal(t, "us-east-1", got.Region)
	assert.Empty(t, got.Endpoint)
}

func TestConnectDynamoDB(t *testing.T) {
	t.Setenv("AWS_ACCESS_KEY_ID", "")
	t.Setenv("AWS_SECRET_ACCESS_KEY", "")

	client, err := ConnectDynamoDB(context.Background(), DynamoDBOptions{Region: "us-east-1", Endpoint: "http://localhost:8000"})
	require.NoError(t, err)
	require.NotNil(t, client)
	assert.Equal(t, "http://localhost:8000", *client.Options().BaseEndpoint)
}

func TestOpenGorm(t *testing.T) {
	_, err := OpenGorm("mysql", "whatever")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported database driver")

	db, err := OpenSQLiteMemory("TestOpenGorm/sub test")
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })
	assert.Equal(t, 1, sqlDB.Stats().MaxOpenConnections)
	require.NoError(t, sqlDB.Ping())
}
