package condition

// Resolver answers the filesystem/game questions a condition's functions
// need. The game cache assembles the concrete implementation from plugin
// views, the load-order handler, and the data directory (spec.md §4.1,
// §9: the cache is borrowed by the evaluator for the duration of a
// query, not shared-owned).
type Resolver interface {
	// FileExists reports whether path names an installed plugin or any
	// other file under the data directory (forward slashes).
	FileExists(path string) (bool, error)
	// IsActive reports whether plugin is in the current load order.
	IsActive(plugin string) (bool, error)
	// CountMatches counts files under the data directory whose relative
	// path matches the given regular expression.
	CountMatches(regex string) (int, error)
	// CountActiveMatches is like CountMatches but restricted to active
	// plugins.
	CountActiveMatches(regex string) (int, error)
	// IsMaster reports whether the named, installed plugin has the master
	// header flag set.
	IsMaster(plugin string) (bool, error)
	// Checksum returns the CRC-32 of path's contents.
	Checksum(path string) (uint32, error)
	// Version returns the best-effort parsed version string for path, or
	// for the game executable when path is empty.
	Version(path string) (string, error)
}

// ResultCache is the condition-result memoisation the game cache owns
// (spec.md §4.6): a map from condition text to its last-evaluated result,
// valid for one cache epoch.
type ResultCache interface {
	Get(condition string) (result bool, found bool)
	Set(condition string, result bool)
}

// NoCache is a ResultCache that never remembers anything, useful for
// one-off evaluations outside of a game handle (e.g. tests).
type NoCache struct{}

func (NoCache) Get(string) (bool, bool) { return false, false }
func (NoCache) Set(string, bool)        {}
