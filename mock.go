package bjtime

import "time"

// MockTimeService is a TimeService whose clock can be pinned for testing.
type MockTimeService struct {
	*Service

	// FixedNow, when set, is used as the current time for every operation.
	FixedNow *time.Time
}

// NewMockTimeService creates a mock backed by the wall clock until FixedNow
// is set.
func NewMockTimeService() *MockTimeService {
	m := &MockTimeService{}
	m.Service = &Service{
		loc: Beijing,
		now: m.mockNow,
	}
	return m
}

// mockNow returns FixedNow when set, the wall clock otherwise.
func (m *MockTimeService) mockNow() time.Time {
	if m.FixedNow != nil {
		return *m.FixedNow
	}
	return time.Now()
}

// Ensure MockTimeService implements TimeService.
var _ TimeService = (*MockTimeService)(nil)
