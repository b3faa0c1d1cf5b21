package locking

import (
	"context"
	"strconv"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryLocker_SerializesSameKey(t *testing.T) {
	l := NewMemoryLocker()
	var inside, maxInside int32
	var wg sync.WaitGroup

	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			unlock, err := l.Lock(context.Background(), "ext-1")
			if !assert.NoError(t, err) {
				return
			}
			n := atomic.AddInt32(&inside, 1)
			for {
				m := atomic.LoadInt32(&maxInside)
				if n <= m || atomic.CompareAndSwapInt32(&maxInside, m, n) {
					break
				}
			}
			time.Sleep(2 * time.Millisecond)
			atomic.AddInt32(&inside, -1)
			unlock()
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), maxInside)
	assert.Empty(t, l.locks, "entries are dropped after release")
}

func TestMemoryLocker_DifferentKeysDoNotBlock(t *testing.T) {
	l := NewMemoryLocker()
	unlockA, err := l.Lock(context.Background(), "a")
	require.NoError(t, err)
	defer unlockA()

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	unlockB, err := l.Lock(ctx, "b")
	require.NoError(t, err)
	unlockB()
}

func TestMemoryLocker_ContextCancelled(t *testing.T) {
	l := NewMemoryLocker()
	unlock, err := l.Lock(context.Background(), "a")
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	_, err = l.Lock(ctx, "a")
	assert.ErrorIs(t, err, context.DeadlineExceeded)

	unlock()
	unlock() // idempotent
	assert.Empty(t, l.locks)
}

type fakeDynamo struct {
	mu    sync.Mutex
	items map[string]map[string]types.AttributeValue
	now   func() time.Time
}

func newFakeDynamo(now func() time.Time) *fakeDynamo {
	return &fakeDynamo{items: map[string]map[string]types.AttributeValue{}, now: now}
}

func (f *fakeDynamo) PutItem(_ context.Context, in *dynamodb.PutItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	id := in.Item["id"].(*types.AttributeValueMemberS).Value
	if cur, ok := f.items[id]; ok {
		exp, _ := strconv.ParseInt(cur["expires_at"].(*types.AttributeValueMemberN).Value, 10, 64)
		if exp >= f.now().Unix() {
			return nil, &types.ConditionalCheckFailedException{}
		}
	}
	f.items[id] = in.Item
	return &dynamodb.PutItemOutput{}, nil
}

func (f *fakeDynamo) DeleteItem(_ context.Context, in *dynamodb.DeleteItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.DeleteItemOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	id := in.Key["id"].(*types.AttributeValueMemberS).Value
	owner := in.ExpressionAttributeValues[":owner"].(*types.AttributeValueMemberS).Value
	cur, ok := f.items[id]
	if !ok || cur["owner"].(*types.AttributeValueMemberS).Value != owner {
		return nil, &types.ConditionalCheckFailedException{}
	}
	delete(f.items, id)
	return &dynamodb.DeleteItemOutput{}, nil
}

func TestDynamoLocker_AcquireWaitRelease(t *testing.T) {
	fake := newFakeDynamo(time.Now)
	l := NewDynamoLocker(fake, "", time.Minute)
	l.retry = 5 * time.Millisecond

	unlock, err := l.Lock(context.Background(), "ext-1")
	require.NoError(t, err)
	assert.Len(t, fake.items, 1)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Millisecond)
	defer cancel()
	_, err = l.Lock(ctx, "ext-1")
	assert.ErrorIs(t, err, context.DeadlineExceeded, "held lease blocks a second owner")

	acquired := make(chan struct{})
	go func() {
		unlock2, err := l.Lock(context.Background(), "ext-1")
		if err == nil {
			unlock2()
		}
		close(acquired)
	}()
	unlock()

	select {
	case <-acquired:
	case <-time.After(time.Second):
		t.Fatal("waiter never acquired the released lease")
	}
	assert.Empty(t, fake.items)
}

func TestDynamoLocker_ExpiredLeaseIsTakenOver(t *testing.T) {
	current := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	clock := func() time.Time { return current }
	fake := newFakeDynamo(clock)
	l := NewDynamoLocker(fake, "locks", 10*time.Second)
	l.now = clock

	staleUnlock, err := l.Lock(context.Background(), "ext-1")
	require.NoError(t, err)

	current = current.Add(time.Minute)
	unlock, err := l.Lock(context.Background(), "ext-1")
	require.NoError(t, err)

	staleUnlock() // must not delete the new owner's lease
	assert.Len(t, fake.items, 1)
	unlock()
	assert.Empty(t, fake.items)
}
