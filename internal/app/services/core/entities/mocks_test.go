package entities

import (
	"context"
	"strconv"
	"sync"
	"time"
	"uesvalle-service/internal/pkg/dto/responses"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/mock"
)

type MockEntityRepository[T any] struct {
	mock.Mock
}

func (m *MockEntityRepository[T]) FindAll(ctx context.Context, search string, offset, limit int) ([]T, error) {
	args := m.Called(ctx, search, offset, limit)
	rows, _ := args.Get(0).([]T)
	return rows, args.Error(1)
}

func (m *MockEntityRepository[T]) Count(ctx context.Context, search string) (int64, error) {
	args := m.Called(ctx, search)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockEntityRepository[T]) FindByID(ctx context.Context, id int64) (*T, error) {
	args := m.Called(ctx, id)
	record, _ := args.Get(0).(*T)
	return record, args.Error(1)
}

func (m *MockEntityRepository[T]) Create(ctx context.Context, values map[string]interface{}) (int64, error) {
	args := m.Called(ctx, values)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockEntityRepository[T]) Update(ctx context.Context, id int64, values map[string]interface{}) (int64, error) {
	args := m.Called(ctx, id, values)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockEntityRepository[T]) Delete(ctx context.Context, id int64) (int64, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(int64), args.Error(1)
}

type MockRedisRepository struct {
	mock.Mock
}

func (m *MockRedisRepository) Delete(ctx context.Context, keys ...string) error {
	args := m.Called(ctx, keys)
	return args.Error(0)
}

func (m *MockRedisRepository) Set(ctx context.Context, key string, value interface{}, exp time.Duration) error {
	args := m.Called(ctx, key, value, exp)
	return args.Error(0)
}

func (m *MockRedisRepository) Get(ctx context.Context, key string) (string, error) {
	args := m.Called(ctx, key)
	return args.String(0), args.Error(1)
}

func (m *MockRedisRepository) Increment(ctx context.Context, key string) (int64, error) {
	args := m.Called(ctx, key)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockRedisRepository) TrySetNX(ctx context.Context, key string, value interface{}, exp time.Duration) (bool, error) {
	args := m.Called(ctx, key, value, exp)
	return args.Bool(0), args.Error(1)
}

// memoryRedis keeps values in a map so cache interleavings can be replayed
// without a server. Expiry is ignored.
type memoryRedis struct {
	mu     sync.Mutex
	values map[string]string
}

func newMemoryRedis() *memoryRedis {
	return &memoryRedis{values: map[string]string{}}
}

func (r *memoryRedis) Delete(ctx context.Context, keys ...string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, key := range keys {
		delete(r.values, key)
	}
	return nil
}

func (r *memoryRedis) Set(ctx context.Context, key string, value interface{}, exp time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.values[key] = string(data)
	return nil
}

func (r *memoryRedis) Get(ctx context.Context, key string) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.values[key], nil
}

func (r *memoryRedis) Increment(ctx context.Context, key string) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	current, _ := strconv.ParseInt(r.values[key], 10, 64)
	current++
	r.values[key] = strconv.FormatInt(current, 10)
	return current, nil
}

func (r *memoryRedis) TrySetNX(ctx context.Context, key string, value interface{}, exp time.Duration) (bool, error) {
	r.mu.Lock()
	_, exists := r.values[key]
	r.mu.Unlock()
	if exists {
		return false, nil
	}
	return true, r.Set(ctx, key, value, exp)
}

type MockNotifier struct {
	mock.Mock
}

func (m *MockNotifier) Notify(ctx context.Context, notification *responses.Notification) error {
	args := m.Called(ctx, notification)
	return args.Error(0)
}
