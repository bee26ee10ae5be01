package mocks

import (
	"sync"

	"github.com/lattiam/ebwait/internal/interfaces"
)

// MockSink records output assignments in memory
type MockSink struct {
	entries []interfaces.OutputEntry
	err     error
	mutex   sync.Mutex
}

// NewMockSink creates an empty sink
func NewMockSink() *MockSink {
	return &MockSink{}
}

// SetShouldFail makes every subsequent Set fail with err
func (s *MockSink) SetShouldFail(err error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	s.err = err
}

// Set implements interfaces.OutputSink
func (s *MockSink) Set(name, value string) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	if s.err != nil {
		return s.err
	}
	s.entries = append(s.entries, interfaces.OutputEntry{Name: name, Value: value})
	return nil
}

// Entries returns the recorded assignments in write order
func (s *MockSink) Entries() []interfaces.OutputEntry {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	entries := make([]interfaces.OutputEntry, len(s.entries))
	copy(entries, s.entries)
	return entries
}

// Values returns the recorded assignments keyed by name
func (s *MockSink) Values() map[string]string {
	values := make(map[string]string)
	for _, e := range s.Entries() {
		values[e.Name] = e.Value
	}
	return values
}
