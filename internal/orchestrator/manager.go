package orchestrator

import (
	"sync"

	"github.com/writingtool-org/checkengine/internal/checkqueue"
	"github.com/writingtool-org/checkengine/internal/resultcache"
	"github.com/writingtool-org/checkengine/internal/textcoord"
)

// Manager is the process-wide table of open documents. It implements
// checkqueue.DocumentRegistry so a single Worker can drive every document's
// text-level (and AI) queue entries.
type Manager struct {
	mu   sync.RWMutex
	docs map[string]*Document
}

// NewManager creates an empty document table.
func NewManager() *Manager {
	return &Manager{docs: make(map[string]*Document)}
}

// Add registers a document, replacing any existing one with the same id.
func (m *Manager) Add(doc *Document) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.docs[doc.ID()] = doc
}

// Remove drops a document from the table. It does not dispose it; callers
// that own the lifecycle call Document.Dispose first.
func (m *Manager) Remove(id string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.docs, id)
}

// Get returns the typed Document for id, for callers (handlers, the
// service layer) that need more than the checkqueue.Document view.
func (m *Manager) Get(id string) (*Document, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	d, ok := m.docs[id]
	return d, ok
}

// Document implements checkqueue.DocumentRegistry.
func (m *Manager) Document(id string) (checkqueue.Document, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	d, ok := m.docs[id]
	if !ok {
		return nil, false
	}
	return d, true
}

type holeClass struct {
	cache  *resultcache.Cache
	class  checkqueue.CacheClass
	radius int
}

// NextHole implements checkqueue.DocumentRegistry: it finds one
// unchecked flat paragraph in any open, non-disposed document, scanning
// text-level classes ascending so the narrowest window fills first.
func (m *Manager) NextHole() (checkqueue.Entry, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, doc := range m.docs {
		if doc.IsDisposed() {
			continue
		}
		n := doc.cache.Len()
		classes := [3]holeClass{
			{doc.textLevel[0], checkqueue.CacheTextLevel1, textLevelWindows[0]},
			{doc.textLevel[1], checkqueue.CacheTextLevel2, textLevelWindows[1]},
			{doc.textLevel[2], checkqueue.CacheTextLevel3, textLevelWindows[2]},
		}
		for _, hc := range classes {
			holes := hc.cache.Holes(n, 1)
			if len(holes) == 0 {
				continue
			}
			flat := holes[0]
			coord, ok := doc.cache.ToText(flat)
			if !ok || coord.IsUnknown() {
				continue
			}
			return checkqueue.Entry{
				Start:       coord,
				End:         textcoord.Coord{Kind: coord.Kind, Index: coord.Index + 1},
				CacheClass:  hc.class,
				CheckRadius: hc.radius,
				DocID:       doc.ID(),
			}, true
		}
	}
	return checkqueue.Entry{}, false
}

var _ checkqueue.DocumentRegistry = (*Manager)(nil)
