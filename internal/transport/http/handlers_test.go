package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi"
	"github.com/zerotrustlabs/compliance-backend/internal/domain"
	"github.com/zerotrustlabs/compliance-backend/internal/infrastructure/token"
	"go.uber.org/zap"
)

type fakeReportStorage struct {
	reports    map[string][]byte
	getErr     error
	presignURL string
}

func (s *fakeReportStorage) Put(ctx context.Context, key string, data []byte, meta domain.ReportMetadata) error {
	s.reports[key] = data
	return nil
}

func (s *fakeReportStorage) Get(ctx context.Context, key string) ([]byte, error) {
	if s.getErr != nil {
		return nil, s.getErr
	}
	data, ok := s.reports[key]
	if !ok {
		return nil, domain.ErrReportNotFound
	}
	return data, nil
}

func (s *fakeReportStorage) PresignGet(ctx context.Context, key string, expires time.Duration) (string, error) {
	if s.presignURL != "" {
		return s.presignURL, nil
	}
	return "", domain.ErrReportNotFound
}

func (s *fakeReportStorage) CleanupExpired(ctx context.Context, now time.Time) (int, error) {
	return 0, nil
}

func newReportTestServer(storage *fakeReportStorage, signer *token.HMACToken) *chi.Mux {
	h := NewHandlers(HandlersConfig{
		ReportStorage: storage,
		TokenProvider: signer,
		Logger:        zap.NewNop().Sugar(),
	})

	r := chi.NewRouter()
	r.Get("/v1/report/{token}", h.GetReport)
	return r
}

func TestGetReport(t *testing.T) {
	signer := token.NewHMACToken("test-secret")

	t.Run("streams stored report", func(t *testing.T) {
		storage := &fakeReportStorage{reports: map[string][]byte{"att-1.pdf": []byte("%PDF-1.4 body")}}
		srv := newReportTestServer(storage, signer)

		tok := signer.Sign("att-1.pdf", time.Hour)
		rec := httptest.NewRecorder()
		srv.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/report/"+tok, nil))

		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
		}
		if got := rec.Header().Get("Content-Type"); got != "application/pdf" {
			t.Errorf("Content-Type = %q, want application/pdf", got)
		}
	})

	t.Run("redirects to presigned url when available", func(t *testing.T) {
		storage := &fakeReportStorage{
			reports:    map[string][]byte{},
			presignURL: "https://minio.example.com/reports/att-1.pdf?sig=abc",
		}
		srv := newReportTestServer(storage, signer)

		tok := signer.Sign("att-1.pdf", time.Hour)
		rec := httptest.NewRecorder()
		srv.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/report/"+tok, nil))

		if rec.Code != http.StatusFound {
			t.Fatalf("status = %d, want %d", rec.Code, http.StatusFound)
		}
		if got := rec.Header().Get("Location"); got != storage.presignURL {
			t.Errorf("Location = %q, want %q", got, storage.presignURL)
		}
	})

	t.Run("expired link is gone", func(t *testing.T) {
		storage := &fakeReportStorage{reports: map[string][]byte{"att-1.pdf": []byte("%PDF")}}
		srv := newReportTestServer(storage, signer)

		tok := signer.Sign("att-1.pdf", -time.Minute)
		rec := httptest.NewRecorder()
		srv.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/report/"+tok, nil))

		if rec.Code != http.StatusGone {
			t.Errorf("status = %d, want %d", rec.Code, http.StatusGone)
		}
	})

	t.Run("tampered token is rejected", func(t *testing.T) {
		storage := &fakeReportStorage{reports: map[string][]byte{}}
		srv := newReportTestServer(storage, signer)

		rec := httptest.NewRecorder()
		srv.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/report/not-a-token", nil))

		if rec.Code != http.StatusBadRequest {
			t.Errorf("status = %d, want %d", rec.Code, http.StatusBadRequest)
		}
	})

	t.Run("missing report", func(t *testing.T) {
		storage := &fakeReportStorage{reports: map[string][]byte{}}
		srv := newReportTestServer(storage, signer)

		tok := signer.Sign("gone.pdf", time.Hour)
		rec := httptest.NewRecorder()
		srv.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/report/"+tok, nil))

		if rec.Code != http.StatusNotFound {
			t.Errorf("status = %d, want %d", rec.Code, http.StatusNotFound)
		}
	})

	t.Run("expired report", func(t *testing.T) {
		storage := &fakeReportStorage{reports: map[string][]byte{}, getErr: domain.ErrReportExpired}
		srv := newReportTestServer(storage, signer)

		tok := signer.Sign("att-1.pdf", time.Hour)
		rec := httptest.NewRecorder()
		srv.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/report/"+tok, nil))

		if rec.Code != http.StatusGone {
			t.Errorf("status = %d, want %d", rec.Code, http.StatusGone)
		}
	})
}
