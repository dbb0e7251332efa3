package docstore

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/mazona200/mobileApp/internal/platform/id"
)

// serverTime is the Memory store's server-timestamp sentinel.
type serverTime struct{}

// MarshalYAML renders the sentinel in dataset listings.
func (serverTime) MarshalYAML() (any, error) {
	return "<server timestamp>", nil
}

// ServerTimestamp is the value Memory.ServerTimestamp returns. It is also
// usable anywhere a placeholder for a not-yet-assigned timestamp is needed.
var ServerTimestamp any = serverTime{}

// Write records one document written to a Memory store.
type Write struct {
	CollectionPath string
	ID             string
	Fields         map[string]any
}

// Path returns the document path.
func (w Write) Path() string {
	return JoinPath(w.CollectionPath, w.ID)
}

// Memory is an in-process Store. Writes are kept in issue order.
type Memory struct {
	// Now resolves server timestamps. Defaults to time.Now.
	Now func() time.Time
	// FailWrite, when set, is called before each write with its 1-based
	// sequence number; a non-nil result fails the write without storing it.
	FailWrite func(seq int, collectionPath string) error

	mu     sync.Mutex
	writes []Write
	closed bool
}

// NewMemory returns an empty Memory store.
func NewMemory() *Memory {
	return &Memory{}
}

// Collection implements Store.
func (m *Memory) Collection(name string) Collection {
	return memoryCollection{store: m, path: name}
}

// ServerTimestamp implements Store.
func (m *Memory) ServerTimestamp() any {
	return ServerTimestamp
}

// Close implements Store.
func (m *Memory) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.closed = true
	return nil
}

// Closed reports whether Close was called.
func (m *Memory) Closed() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.closed
}

// Writes returns a copy of every stored write in issue order.
func (m *Memory) Writes() []Write {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]Write, len(m.writes))
	copy(out, m.writes)
	return out
}

// Documents returns the writes stored directly under collectionPath.
func (m *Memory) Documents(collectionPath string) []Write {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []Write
	for _, w := range m.writes {
		if w.CollectionPath == collectionPath {
			out = append(out, w)
		}
	}
	return out
}

// Count returns the number of documents under collectionPath.
func (m *Memory) Count(collectionPath string) int {
	return len(m.Documents(collectionPath))
}

func (m *Memory) add(ctx context.Context, collectionPath string, fields map[string]any) (Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed {
		return nil, fmt.Errorf("memory store is closed")
	}
	seq := len(m.writes) + 1
	if m.FailWrite != nil {
		if err := m.FailWrite(seq, collectionPath); err != nil {
			return nil, err
		}
	}

	docID, err := id.NewID()
	if err != nil {
		return nil, err
	}
	m.writes = append(m.writes, Write{
		CollectionPath: collectionPath,
		ID:             docID,
		Fields:         m.resolve(fields),
	})
	return memoryDocument{store: m, id: docID, path: JoinPath(collectionPath, docID)}, nil
}

// resolve copies fields, replacing server-timestamp sentinels with one
// instant per write.
func (m *Memory) resolve(fields map[string]any) map[string]any {
	now := time.Now
	if m.Now != nil {
		now = m.Now
	}
	ts := now().UTC()
	out := make(map[string]any, len(fields))
	for key, value := range fields {
		if _, ok := value.(serverTime); ok {
			out[key] = ts
			continue
		}
		out[key] = value
	}
	return out
}

type memoryCollection struct {
	store *Memory
	path  string
}

func (c memoryCollection) Path() string { return c.path }

func (c memoryCollection) Add(ctx context.Context, fields map[string]any) (Document, error) {
	return c.store.add(ctx, c.path, fields)
}

type memoryDocument struct {
	store *Memory
	id    string
	path  string
}

func (d memoryDocument) ID() string   { return d.id }
func (d memoryDocument) Path() string { return d.path }

func (d memoryDocument) Collection(name string) Collection {
	return memoryCollection{store: d.store, path: JoinPath(d.path, name)}
}
