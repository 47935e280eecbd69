package tower

import (
	"fmt"
	"sync"

	"github.com/mitchellh/hashstructure/v2"

	"github.com/ChicagoDave/towerforge/pkg/params"
)

// Cache memoizes the most recent build, keyed by a structural hash of the
// parameter record. Build is cheap, but the dev server rebuilds on every
// request, and the common case there is "nothing changed". The zero value
// is ready to use; it is safe for concurrent callers.
type Cache struct {
	mu    sync.Mutex
	key   uint64
	tower *Tower
}

// Build returns the tower for p, reusing the previous result when p hashes
// to the same structure as the last call.
func (c *Cache) Build(p params.TowerParameters) (*Tower, error) {
	key, err := hashstructure.Hash(p, hashstructure.FormatV2, nil)
	if err != nil {
		return nil, fmt.Errorf("hashing parameters: %w", err)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.tower != nil && c.key == key {
		return c.tower, nil
	}

	c.tower = Build(p)
	c.key = key
	return c.tower, nil
}

// Invalidate drops the cached tower.
func (c *Cache) Invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.tower = nil
	c.key = 0
}
