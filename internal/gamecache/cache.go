package gamecache

import (
	"strings"
	"sync"

	"github.com/ordinator-tools/ordinator/internal/loadorder"
	"github.com/ordinator-tools/ordinator/internal/masterlist"
	"github.com/ordinator-tools/ordinator/internal/metalist"
	ordinatorerrors "github.com/ordinator-tools/ordinator/pkg/errors"
	"github.com/ordinator-tools/ordinator/pkg/pluginview"
	"github.com/ordinator-tools/ordinator/pkg/validation"
)

// Cache is the single-owner object named in spec.md §3: plugin views, the
// condition-result cache, the loaded masterlist/userlist, and a CRC
// cache. It is created per game instance and torn down with it.
//
// The condition-result map and the CRC map may be touched by the
// condition evaluator mid-query (spec.md §4.6: "the only [operations] in
// the system that may mutate shared state during an otherwise read-only
// query"), so both are guarded by the same mutex even though spec.md §5
// treats a game handle as single-threaded — the guard costs nothing on
// the fast path and keeps the cache safe for concurrent use.
type Cache struct {
	mu sync.Mutex

	views   map[string]pluginview.View
	results map[string]bool
	crcs    map[string]uint32

	inspector pluginview.Inspector
	handler   loadorder.Handler
	dataDir   string

	Masterlist *masterlist.Masterlist
	Userlist   *metalist.MetadataList
}

// New returns an empty Cache backed by inspector and handler. dataDir is
// the game's plugin directory, used to resolve a bare plugin name to a
// path before handing it to inspector.
func New(inspector pluginview.Inspector, handler loadorder.Handler, dataDir string) *Cache {
	return &Cache{
		views:     map[string]pluginview.View{},
		results:   map[string]bool{},
		crcs:      map[string]uint32{},
		inspector: inspector,
		handler:   handler,
		dataDir:   dataDir,
		Userlist:  metalist.New(),
	}
}

// View returns the cached projection for name, inspecting the plugin file
// on first access.
func (c *Cache) View(name string) (pluginview.View, error) {
	key := strings.ToLower(name)

	c.mu.Lock()
	if v, ok := c.views[key]; ok {
		c.mu.Unlock()
		return v, nil
	}
	c.mu.Unlock()

	path, err := validation.ValidatePath(name, validation.PathValidationOptions{BaseDir: c.dataDir})
	if err != nil {
		return pluginview.View{}, ordinatorerrors.NewFileAccess(name, "resolving plugin path", ordinatorerrors.WithCause(err))
	}

	v, err := c.inspector.Inspect(path)
	if err != nil {
		return pluginview.View{}, ordinatorerrors.NewFileAccess(name, "inspecting plugin", ordinatorerrors.WithCause(err))
	}

	c.mu.Lock()
	c.views[key] = v
	c.mu.Unlock()
	return v, nil
}

// Handler returns the load-order handler backing this cache, used by
// callers (internal/database) that need the active plugin list or
// positional index alongside cached plugin views.
func (c *Cache) Handler() loadorder.Handler {
	return c.handler
}

// Views returns every currently cached plugin view.
func (c *Cache) Views() map[string]pluginview.View {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make(map[string]pluginview.View, len(c.views))
	for k, v := range c.views {
		out[k] = v
	}
	return out
}

// ClearViews discards every cached plugin view (spec.md §4.6: "invalidated
// wholesale on explicit clear").
func (c *Cache) ClearViews() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.views = map[string]pluginview.View{}
}

// Get implements condition.ResultCache.
func (c *Cache) Get(cond string) (bool, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	v, ok := c.results[cond]
	return v, ok
}

// Set implements condition.ResultCache.
func (c *Cache) Set(cond string, result bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.results[cond] = result
}

// ClearResults drops every memoised condition result (spec.md §4.6:
// "cleared at the start of any 'evaluate conditions' query that requests
// a fresh view ... and on masterlist swap").
func (c *Cache) ClearResults() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.results = map[string]bool{}
}

// Checksum returns the CRC-32 for path, computing it with compute on first
// access and caching the result. Plugin views already carry their own CRC;
// this cache additionally serves checksum() condition calls against
// arbitrary data-directory files.
func (c *Cache) Checksum(path string, compute func(string) (uint32, error)) (uint32, error) {
	c.mu.Lock()
	if crc, ok := c.crcs[path]; ok {
		c.mu.Unlock()
		return crc, nil
	}
	c.mu.Unlock()

	crc, err := compute(path)
	if err != nil {
		return 0, err
	}

	c.mu.Lock()
	c.crcs[path] = crc
	c.mu.Unlock()
	return crc, nil
}
