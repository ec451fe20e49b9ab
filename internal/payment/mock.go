package payment

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/google/uuid"
)

// Mock is a deterministic in-process provider for development and tests.
// Every intent succeeds unless FailWith is set.
type Mock struct {
	FailWith error

	mu      sync.Mutex
	intents map[string]IntentRequest
}

// CreateIntent fabricates an intent without any network traffic.
func (m *Mock) CreateIntent(_ context.Context, req IntentRequest) (Intent, error) {
	if m.FailWith != nil {
		return Intent{}, m.FailWith
	}
	id := "pi_mock_" + strings.ReplaceAll(uuid.NewString(), "-", "")
	m.mu.Lock()
	if m.intents == nil {
		m.intents = make(map[string]IntentRequest)
	}
	m.intents[id] = req
	m.mu.Unlock()
	return Intent{
		Provider:     "mock",
		ID:           id,
		ClientSecret: id + "_secret",
		Status:       "requires_payment_method",
	}, nil
}

// IntentStatus reports succeeded for any intent the mock created.
func (m *Mock) IntentStatus(_ context.Context, id string) (string, error) {
	m.mu.Lock()
	_, ok := m.intents[id]
	m.mu.Unlock()
	if !ok {
		return "", fmt.Errorf("mock: unknown intent %s", id)
	}
	return "succeeded", nil
}

// LastRequest returns the request that produced the given intent id.
func (m *Mock) LastRequest(id string) (IntentRequest, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	req, ok := m.intents[id]
	return req, ok
}
