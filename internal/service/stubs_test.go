package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tala-app/backend/internal/domain"
)

// stubProvider is a scripted Provider for workflow tests.
type stubProvider struct {
	generateFunc func(req *domain.GenerationRequest) (*domain.GenerationResult, error)
	calls        int
	lastSeen     *domain.GenerationRequest
}

func (s *stubProvider) Generate(_ context.Context, req *domain.GenerationRequest) (*domain.GenerationResult, error) {
	s.calls++
	s.lastSeen = req
	if s.generateFunc != nil {
		return s.generateFunc(req)
	}
	return &domain.GenerationResult{Text: "stub response"}, nil
}

func (s *stubProvider) Name() string {
	return "stub"
}

// textProvider returns a provider that always answers with text.
func textProvider(text string) *stubProvider {
	return &stubProvider{
		generateFunc: func(*domain.GenerationRequest) (*domain.GenerationResult, error) {
			return &domain.GenerationResult{Text: text}, nil
		},
	}
}

// errProvider returns a provider that always fails with err.
func errProvider(err error) *stubProvider {
	return &stubProvider{
		generateFunc: func(*domain.GenerationRequest) (*domain.GenerationResult, error) {
			return nil, err
		},
	}
}

func newDispatcher(t *testing.T, providers ...domain.Provider) *domain.Dispatcher {
	t.Helper()
	d, err := domain.NewDispatcher(providers...)
	require.NoError(t, err)
	return d
}
