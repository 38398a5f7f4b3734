package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/zerotrustlabs/compliance-backend/internal/domain"
	"go.uber.org/zap"
)

const metadataSuffix = ".metadata.json"

type fileMetadata struct {
	Key           string    `json:"key"`
	AccountID     string    `json:"account_id"`
	AttestationID string    `json:"attestation_id"`
	ExpiresAt     time.Time `json:"expires_at"`
}

// LocalStorage keeps attestation reports on the local filesystem for
// development setups without object storage. Each report gets a metadata
// sidecar carrying the attestation identity and expiry.
type LocalStorage struct {
	mu       sync.RWMutex
	basePath string
	logger   *zap.SugaredLogger
}

func NewLocalStorage(basePath string, logger *zap.SugaredLogger) (*LocalStorage, error) {
	if basePath == "" {
		basePath = filepath.Join(os.TempDir(), "compliance-backend", "attestation-reports")
	}

	if err := os.MkdirAll(basePath, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create storage directory: %w", err)
	}

	logger.Infow("local storage initialized", "path", basePath)

	return &LocalStorage{
		basePath: basePath,
		logger:   logger,
	}, nil
}

func (s *LocalStorage) Put(ctx context.Context, key string, data []byte, meta domain.ReportMetadata) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	filePath := s.filePath(key)

	if err := os.WriteFile(filePath, data, 0o644); err != nil {
		return fmt.Errorf("failed to write report file: %w", err)
	}

	sidecar := fileMetadata{
		Key:           key,
		AccountID:     meta.AccountID,
		AttestationID: meta.AttestationID,
		ExpiresAt:     meta.ExpiresAt,
	}
	metaBytes, err := json.Marshal(sidecar)
	if err != nil {
		return fmt.Errorf("failed to marshal report metadata: %w", err)
	}
	if err := os.WriteFile(filePath+metadataSuffix, metaBytes, 0o644); err != nil {
		return fmt.Errorf("failed to write report metadata: %w", err)
	}

	s.logger.Debugw("attestation report stored",
		"key", key,
		"account_id", meta.AccountID,
		"attestation_id", meta.AttestationID,
		"size", len(data),
		"expires_at", meta.ExpiresAt)

	return nil
}

func (s *LocalStorage) Get(ctx context.Context, key string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	meta, err := s.readMetadata(key)
	if err != nil {
		return nil, err
	}

	if time.Now().UTC().After(meta.ExpiresAt) {
		return nil, domain.ErrReportExpired
	}

	data, err := os.ReadFile(s.filePath(key))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, domain.ErrReportNotFound
		}
		return nil, fmt.Errorf("failed to read report file: %w", err)
	}

	return data, nil
}

// PresignGet has no meaning for filesystem storage. The transport layer
// serves report bytes through its own signed-token endpoint instead.
func (s *LocalStorage) PresignGet(ctx context.Context, key string, expires time.Duration) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	meta, err := s.readMetadata(key)
	if err != nil {
		return "", err
	}

	if time.Now().UTC().After(meta.ExpiresAt) {
		return "", domain.ErrReportExpired
	}

	return "", fmt.Errorf("local storage does not support presigned urls")
}

func (s *LocalStorage) CleanupExpired(ctx context.Context, now time.Time) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries, err := os.ReadDir(s.basePath)
	if err != nil {
		return 0, fmt.Errorf("failed to list storage directory: %w", err)
	}

	count := 0
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), metadataSuffix) {
			continue
		}

		metaPath := filepath.Join(s.basePath, entry.Name())
		metaBytes, err := os.ReadFile(metaPath)
		if err != nil {
			continue
		}

		var meta fileMetadata
		if err := json.Unmarshal(metaBytes, &meta); err != nil {
			s.logger.Warnw("unreadable report metadata", "path", metaPath, "error", err)
			continue
		}

		if !now.After(meta.ExpiresAt) {
			continue
		}

		reportPath := strings.TrimSuffix(metaPath, metadataSuffix)
		if err := os.Remove(reportPath); err != nil && !os.IsNotExist(err) {
			s.logger.Warnw("failed to remove expired report", "path", reportPath, "error", err)
			continue
		}
		if err := os.Remove(metaPath); err != nil {
			s.logger.Warnw("failed to remove report metadata", "path", metaPath, "error", err)
		}
		count++
	}

	if count > 0 {
		s.logger.Infow("expired reports cleaned", "count", count)
	}

	return count, nil
}

func (s *LocalStorage) StartCleanupLoop(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				s.logger.Info("storage cleanup loop stopped")
				return
			case <-ticker.C:
				_, err := s.CleanupExpired(ctx, time.Now().UTC())
				if err != nil {
					s.logger.Errorw("storage cleanup failed", "error", err)
				}
			}
		}
	}()
}

func (s *LocalStorage) filePath(key string) string {
	// keys are attestation-derived uuids; Base guards against traversal
	return filepath.Join(s.basePath, filepath.Base(key))
}

func (s *LocalStorage) readMetadata(key string) (*fileMetadata, error) {
	metaBytes, err := os.ReadFile(s.filePath(key) + metadataSuffix)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, domain.ErrReportNotFound
		}
		return nil, fmt.Errorf("failed to read report metadata: %w", err)
	}

	var meta fileMetadata
	if err := json.Unmarshal(metaBytes, &meta); err != nil {
		return nil, fmt.Errorf("failed to parse report metadata: %w", err)
	}

	return &meta, nil
}
