package gamecache

import (
	"hash/crc32"
	"os"
	"path/filepath"
	"regexp"

	"github.com/ordinator-tools/ordinator/internal/condition"
	"github.com/ordinator-tools/ordinator/internal/loadorder"
)

// Resolver adapts a Cache (plus its loadorder.Handler and data directory)
// into a condition.Resolver, satisfying spec.md §4.1's function
// semantics: file/many resolve against the data directory, active/
// many_active consult the load-order handler, is_master and version
// consult plugin views, checksum consults the CRC cache.
type Resolver struct {
	cache   *Cache
	handler loadorder.Handler
	dataDir string
}

// NewResolver returns a condition.Resolver backed by cache.
func NewResolver(cache *Cache, handler loadorder.Handler, dataDir string) *Resolver {
	return &Resolver{cache: cache, handler: handler, dataDir: dataDir}
}

func (r *Resolver) resolvePath(path string) string {
	if path == "" {
		return ""
	}
	return filepath.Join(r.dataDir, filepath.FromSlash(path))
}

func (r *Resolver) FileExists(path string) (bool, error) {
	_, err := os.Stat(r.resolvePath(path))
	if err == nil {
		return true, nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, err
}

func (r *Resolver) IsActive(plugin string) (bool, error) {
	return r.handler.IsActive(plugin)
}

func (r *Resolver) CountMatches(pattern string) (int, error) {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return 0, err
	}
	entries, err := os.ReadDir(r.dataDir)
	if err != nil {
		if os.IsNotExist(err) {
			return 0, nil
		}
		return 0, err
	}
	count := 0
	for _, e := range entries {
		if re.MatchString(e.Name()) {
			count++
		}
	}
	return count, nil
}

func (r *Resolver) CountActiveMatches(pattern string) (int, error) {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return 0, err
	}
	active, err := r.handler.ActivePlugins()
	if err != nil {
		return 0, err
	}
	count := 0
	for _, name := range active {
		if re.MatchString(name) {
			count++
		}
	}
	return count, nil
}

func (r *Resolver) IsMaster(plugin string) (bool, error) {
	v, err := r.cache.View(plugin)
	if err != nil {
		return false, err
	}
	return v.IsMaster, nil
}

func (r *Resolver) Checksum(path string) (uint32, error) {
	resolved := r.resolvePath(path)
	return r.cache.Checksum(resolved, func(p string) (uint32, error) {
		data, err := os.ReadFile(p)
		if err != nil {
			return 0, err
		}
		return crc32.ChecksumIEEE(data), nil
	})
}

func (r *Resolver) Version(path string) (string, error) {
	if path == "" {
		// Empty path means the game executable itself (spec.md §4.1).
		// The cache holds no view for it: View("") fails path
		// validation before the inspector is consulted, so this branch
		// returns that error.
		v, err := r.cache.View("")
		if err != nil {
			return "", err
		}
		return v.Version, nil
	}
	v, err := r.cache.View(path)
	if err != nil {
		return "", err
	}
	return v.Version, nil
}

var _ condition.Resolver = (*Resolver)(nil)
