package client

import (
	"context"
	"fmt"
	"sync"
	"time"
)

// MockBackupStore implements BackupStore in memory for tests and for
// running without S3 credentials
type MockBackupStore struct {
	mu      sync.Mutex
	objects map[string][]byte

	// Optional overrides for custom test behavior
	UploadFunc   func(ctx context.Context, key string, payload []byte) error
	DownloadFunc func(ctx context.Context, key string) ([]byte, error)
}

// NewMockBackupStore creates an empty in-memory backup store
func NewMockBackupStore() *MockBackupStore {
	return &MockBackupStore{objects: map[string][]byte{}}
}

// BackupKey mirrors the S3 store's key layout
func (m *MockBackupStore) BackupKey(now time.Time) string {
	return fmt.Sprintf("backups/%s/field-track_%d.json", now.Format("2006/01"), now.Unix())
}

// Upload stores the payload in memory
func (m *MockBackupStore) Upload(ctx context.Context, key string, payload []byte) error {
	if m.UploadFunc != nil {
		return m.UploadFunc(ctx, key, payload)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	stored := make([]byte, len(payload))
	copy(stored, payload)
	m.objects[key] = stored
	return nil
}

// Download returns a previously stored payload
func (m *MockBackupStore) Download(ctx context.Context, key string) ([]byte, error) {
	if m.DownloadFunc != nil {
		return m.DownloadFunc(ctx, key)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	payload, ok := m.objects[key]
	if !ok {
		return nil, fmt.Errorf("backup %s not found", key)
	}
	return payload, nil
}
