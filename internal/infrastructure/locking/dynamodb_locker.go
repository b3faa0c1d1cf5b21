package locking

import (
	"context"
	"errors"
	"log/slog"
	"strconv"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/google/uuid"

	"fluxo_propostas/internal/usecase/interfaces"
)

const defaultLockTableName = "proposal_import_locks"

// DynamoAPI is the subset of *dynamodb.Client used by the locker.
type DynamoAPI interface {
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	DeleteItem(ctx context.Context, params *dynamodb.DeleteItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DeleteItemOutput, error)
}

type leaseItem struct {
	ID        string `dynamodbav:"id"`
	Owner     string `dynamodbav:"owner"`
	ExpiresAt int64  `dynamodbav:"expires_at"`
	CreatedAt string `dynamodbav:"created_at"`
}

// DynamoLocker serializes imports across instances with a lease item per key.
//
// Table requirements:
//   - PK: id (string)
//   - TTL attribute: expires_at (epoch seconds), so abandoned leases disappear
//
// A lease is acquired with a conditional PutItem that only succeeds when no item
// exists or the existing one has expired. It is released with a DeleteItem
// conditioned on the owner token so an expired holder never frees a newer lease.
type DynamoLocker struct {
	ddb       DynamoAPI
	tableName string
	ttl       time.Duration
	retry     time.Duration
	now       func() time.Time
}

var _ interfaces.IImportLocker = (*DynamoLocker)(nil)

func NewDynamoLocker(ddb DynamoAPI, tableName string, ttl time.Duration) *DynamoLocker {
	if tableName == "" {
		tableName = defaultLockTableName
	}
	if ttl <= 0 {
		ttl = 2 * time.Minute
	}
	return &DynamoLocker{
		ddb:       ddb,
		tableName: tableName,
		ttl:       ttl,
		retry:     200 * time.Millisecond,
		now:       time.Now,
	}
}

func (l *DynamoLocker) Lock(ctx context.Context, key string) (func(), error) {
	owner := uuid.NewString()
	for {
		acquired, err := l.tryAcquire(ctx, key, owner)
		if err != nil {
			return nil, err
		}
		if acquired {
			return func() { l.release(key, owner) }, nil
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(l.retry):
		}
	}
}

func (l *DynamoLocker) tryAcquire(ctx context.Context, key, owner string) (bool, error) {
	now := l.now().UTC()
	av, err := attributevalue.MarshalMap(leaseItem{
		ID:        key,
		Owner:     owner,
		ExpiresAt: now.Add(l.ttl).Unix(),
		CreatedAt: now.Format(time.RFC3339Nano),
	})
	if err != nil {
		return false, err
	}

	_, err = l.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(l.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id) OR #expires_at < :now"),
		ExpressionAttributeNames: map[string]string{
			"#id":         "id",
			"#expires_at": "expires_at",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":now": &types.AttributeValueMemberN{Value: strconv.FormatInt(now.Unix(), 10)},
		},
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (l *DynamoLocker) release(key, owner string) {
	// Release must happen even when the request context is already gone.
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	_, err := l.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(l.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: key},
		},
		ConditionExpression: aws.String("#owner = :owner"),
		ExpressionAttributeNames: map[string]string{
			"#owner": "owner",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":owner": &types.AttributeValueMemberS{Value: owner},
		},
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			slog.Warn("[lock][dynamodb] lease expired before release", "key", key)
			return
		}
		slog.Error("[lock][dynamodb] release failed", "key", key, "err", err)
	}
}
