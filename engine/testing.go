package engine

import (
	"sync"
	"time"

	"github.com/lixenwraith/vi-snake/core"
	"golang.org/x/exp/rand"
)

// MockTimeProvider provides a controllable time source for testing
type MockTimeProvider struct {
	mu          sync.RWMutex
	currentTime time.Time
}

// NewMockTimeProvider creates a new mock time provider with the given start time
func NewMockTimeProvider(startTime time.Time) *MockTimeProvider {
	return &MockTimeProvider{currentTime: startTime}
}

// Now returns the current mocked time
func (m *MockTimeProvider) Now() time.Time {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.currentTime
}

// SetTime sets the mocked time to t
func (m *MockTimeProvider) SetTime(t time.Time) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.currentTime = t
}

// Advance moves the mocked time forward by d
func (m *MockTimeProvider) Advance(d time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.currentTime = m.currentTime.Add(d)
}

// NewTestSession creates a session with a seeded random source and a fixed layout:
// the given snake body (head first) and direction, food at food
func NewTestSession(seed uint64, body []core.Cell, dir core.Direction, food core.Cell) *Session {
	s, err := NewSession(DefaultConfig(), rand.New(rand.NewSource(seed)), nil)
	if err != nil {
		panic(err)
	}
	s.snake = NewSnakeFrom(body, dir)
	s.food.Place(food)
	return s
}
