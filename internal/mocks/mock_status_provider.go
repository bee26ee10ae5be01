package mocks

import (
	"context"
	"sync"
	"time"

	"github.com/lattiam/ebwait/internal/interfaces"
)

// FetchCall records a single Fetch invocation
type FetchCall struct {
	CommonCall
	EnvironmentName string
	Snapshot        interfaces.EnvironmentSnapshot
}

// MockStatusProvider returns a scripted sequence of snapshots. Once the
// script is exhausted the last snapshot is repeated.
type MockStatusProvider struct {
	snapshots []interfaces.EnvironmentSnapshot
	errAt     map[int]error
	next      int
	mutex     sync.Mutex

	// OnFetch, when set, runs after each fetch with its zero-based index
	OnFetch func(index int)

	tracker *CallTracker[FetchCall]
}

// NewMockStatusProvider creates a provider that returns snapshots in order
func NewMockStatusProvider(snapshots ...interfaces.EnvironmentSnapshot) *MockStatusProvider {
	return &MockStatusProvider{
		snapshots: snapshots,
		errAt:     make(map[int]error),
		tracker:   NewCallTracker[FetchCall](),
	}
}

// SetErrorAt makes the fetch with the given zero-based index fail with err
func (m *MockStatusProvider) SetErrorAt(index int, err error) {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	m.errAt[index] = err
}

// Fetch implements interfaces.StatusProvider
func (m *MockStatusProvider) Fetch(_ context.Context, environmentName string) (interfaces.EnvironmentSnapshot, error) {
	m.mutex.Lock()
	index := m.next
	m.next++

	call := FetchCall{
		CommonCall:      CommonCall{Method: "Fetch", Timestamp: time.Now()},
		EnvironmentName: environmentName,
	}

	var snapshot interfaces.EnvironmentSnapshot
	err := m.errAt[index]
	if err == nil && len(m.snapshots) > 0 {
		if index < len(m.snapshots) {
			snapshot = m.snapshots[index]
		} else {
			snapshot = m.snapshots[len(m.snapshots)-1]
		}
	}
	onFetch := m.OnFetch
	m.mutex.Unlock()

	call.Error = err
	call.Snapshot = snapshot
	m.tracker.RecordCall(call)

	if onFetch != nil {
		onFetch(index)
	}
	if err != nil {
		return interfaces.EnvironmentSnapshot{}, err
	}
	return snapshot, nil
}

// Calls returns the recorded Fetch calls
func (m *MockStatusProvider) Calls() []FetchCall {
	return m.tracker.GetCalls()
}

// CallCount returns the number of Fetch calls
func (m *MockStatusProvider) CallCount() int {
	return m.tracker.GetCallCount()
}
