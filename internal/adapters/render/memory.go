package render

import "sync"

// Snapshot is the state of a MemorySurface.
type Snapshot struct {
	Frame  Frame   `json:"frame"`
	Notice *Notice `json:"notice,omitempty"`
}

// MemorySurface keeps the last frame and the last notice.
// It is safe for concurrent use.
type MemorySurface struct {
	mu     sync.RWMutex
	frame  Frame
	notice *Notice
}

// NewMemorySurface returns an empty surface showing an empty list.
func NewMemorySurface() *MemorySurface {
	return &MemorySurface{frame: Frame{Mode: ModeList, Entries: []Entry{}}}
}

// Draw stores frame as the current content.
func (m *MemorySurface) Draw(frame Frame) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.frame = frame
	return nil
}

// Announce stores notice as the last notice.
func (m *MemorySurface) Announce(notice Notice) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.notice = &notice
}

// Snapshot returns a copy of the current state.
func (m *MemorySurface) Snapshot() Snapshot {
	m.mu.RLock()
	defer m.mu.RUnlock()

	frame := m.frame
	frame.Entries = append([]Entry(nil), m.frame.Entries...)

	var notice *Notice
	if m.notice != nil {
		n := *m.notice
		notice = &n
	}

	return Snapshot{Frame: frame, Notice: notice}
}
