package state

import (
	"sort"

	"github.com/npillmayer/trema/style/cssom"
)

// DefaultMaxAge is the number of frames a widget state survives without
// being accessed.
const DefaultMaxAge = 10

// Manager owns the widget state store and the frame counter.
type Manager struct {
	frame  uint64
	maxAge uint64
	store  map[string]*WidgetState
}

// Option configures a Manager.
type Option func(*Manager)

// MaxAge sets the number of frames an entry survives without being
// accessed. n <= 0 selects DefaultMaxAge.
func MaxAge(n int) Option {
	return func(m *Manager) {
		if n > 0 {
			m.maxAge = uint64(n)
		}
	}
}

// NewManager creates an empty state store. The frame counter starts at 0.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		maxAge: DefaultMaxAge,
		store:  make(map[string]*WidgetState),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Frame returns the current frame number.
func (m *Manager) Frame() uint64 {
	return m.frame
}

// BeginFrame advances the frame counter and returns the new frame number.
func (m *Manager) BeginFrame() uint64 {
	m.frame++
	return m.frame
}

// EndFrame evicts every entry whose last access is older than the current
// frame minus the maximum age. It returns the number of evicted entries.
func (m *Manager) EndFrame() int {
	if m.frame <= m.maxAge {
		return 0
	}
	threshold := m.frame - m.maxAge
	n := 0
	for id, ws := range m.store {
		if ws.LastFrame < threshold {
			delete(m.store, id)
			n++
		}
	}
	if n > 0 {
		tracer().Debugf("state: evicted %d entries in frame %d", n, m.frame)
	}
	return n
}

// GetOrCreate returns the state for id, creating it with value dflt if not
// present. In any case the entry is stamped with the current frame.
func (m *Manager) GetOrCreate(id string, dflt Value) *WidgetState {
	ws, ok := m.store[id]
	if !ok {
		ws = &WidgetState{ID: id, Value: dflt}
		m.store[id] = ws
		tracer().P("id", id).Debugf("state: created with %v", dflt)
	}
	ws.LastFrame = m.frame
	return ws
}

// Set sets the value for id and stamps the entry with the current frame.
func (m *Manager) Set(id string, v Value) *WidgetState {
	ws, ok := m.store[id]
	if !ok {
		ws = &WidgetState{ID: id}
		m.store[id] = ws
	}
	ws.Value = v
	ws.LastFrame = m.frame
	return ws
}

// Lookup returns the state for id, if present, without stamping it.
func (m *Manager) Lookup(id string) (*WidgetState, bool) {
	ws, ok := m.store[id]
	return ws, ok
}

// Len returns the number of entries.
func (m *Manager) Len() int {
	return len(m.store)
}

// IDs returns the ids of all entries, sorted.
func (m *Manager) IDs() []string {
	ids := make([]string, 0, len(m.store))
	for id := range m.store {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Clear removes all entries. The frame counter is left untouched.
func (m *Manager) Clear() {
	m.store = make(map[string]*WidgetState)
}

// CreateContext creates a render context for the current frame, sharing the
// state store of m.
func (m *Manager) CreateContext(sheet *cssom.Stylesheet, handlers map[string]func()) *Context {
	if handlers == nil {
		handlers = map[string]func(){}
	}
	return &Context{
		Store:      m,
		Handlers:   handlers,
		Stylesheet: sheet,
		Frame:      m.frame,
	}
}
