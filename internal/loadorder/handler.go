package loadorder

import (
	"bufio"
	"os"
	"path/filepath"
	"strings"

	ordinatorerrors "github.com/ordinator-tools/ordinator/pkg/errors"
)

// Handler is the load-order library contract named in spec.md §6: for the
// current game, the ordered list of active plugin names, a predicate
// "is active", and the ability to persist a new order.
type Handler interface {
	ActivePlugins() ([]string, error)
	IsActive(plugin string) (bool, error)
	// Index returns the plugin's current position, used by the sorter's
	// stability tie-break (spec.md §4.4 rule 6c). ok is false when the
	// plugin is not present in the current load order.
	Index(plugin string) (index int, ok bool)
	Persist(order []string) error
}

// FileHandler is the default Handler, backed by the game's plaintext
// plugins list (one filename per line, "*" prefix marking active
// entries — the convention Bethesda-family games use for plugins.txt).
type FileHandler struct {
	path    string
	dataDir string
	order   []string
	active  map[string]bool
	index   map[string]int
}

// NewFileHandler loads path (the plugins list) and indexes its contents.
// dataDir is the game's plugin data directory, used by Index/ActivePlugins
// callers that also need to resolve arbitrary on-disk files for the
// condition evaluator's file() function.
func NewFileHandler(path, dataDir string) (*FileHandler, error) {
	h := &FileHandler{
		path:    path,
		dataDir: dataDir,
		active:  map[string]bool{},
		index:   map[string]int{},
	}
	if err := h.reload(); err != nil {
		return nil, err
	}
	return h, nil
}

func (h *FileHandler) reload() error {
	f, err := os.Open(h.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return ordinatorerrors.NewFileAccess(h.path, "reading plugins list", ordinatorerrors.WithCause(err))
	}
	defer f.Close()

	h.order = h.order[:0]
	h.active = map[string]bool{}
	h.index = map[string]int{}

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		active := strings.HasPrefix(line, "*")
		name := strings.TrimPrefix(line, "*")
		key := strings.ToLower(name)
		h.index[key] = len(h.order)
		h.order = append(h.order, name)
		if active {
			h.active[key] = true
		}
	}
	if err := scanner.Err(); err != nil {
		return ordinatorerrors.NewFileAccess(h.path, "scanning plugins list", ordinatorerrors.WithCause(err))
	}
	return nil
}

func (h *FileHandler) ActivePlugins() ([]string, error) {
	var out []string
	for _, name := range h.order {
		if h.active[strings.ToLower(name)] {
			out = append(out, name)
		}
	}
	return out, nil
}

func (h *FileHandler) IsActive(plugin string) (bool, error) {
	return h.active[strings.ToLower(plugin)], nil
}

func (h *FileHandler) Index(plugin string) (int, bool) {
	idx, ok := h.index[strings.ToLower(plugin)]
	return idx, ok
}

// Persist writes order to the plugins list, preserving each entry's prior
// active state (a sort never changes which plugins are active, only
// their order).
func (h *FileHandler) Persist(order []string) error {
	tmp := h.path + ".tmp"
	f, err := os.Create(tmp)
	if err != nil {
		return ordinatorerrors.NewFileAccess(h.path, "writing plugins list", ordinatorerrors.WithCause(err))
	}

	w := bufio.NewWriter(f)
	for _, name := range order {
		line := name
		if h.active[strings.ToLower(name)] {
			line = "*" + line
		}
		if _, err := w.WriteString(line + "\n"); err != nil {
			f.Close()
			os.Remove(tmp)
			return ordinatorerrors.NewFileAccess(h.path, "writing plugins list", ordinatorerrors.WithCause(err))
		}
	}
	if err := w.Flush(); err != nil {
		f.Close()
		os.Remove(tmp)
		return ordinatorerrors.NewFileAccess(h.path, "flushing plugins list", ordinatorerrors.WithCause(err))
	}
	if err := f.Close(); err != nil {
		os.Remove(tmp)
		return ordinatorerrors.NewFileAccess(h.path, "closing plugins list", ordinatorerrors.WithCause(err))
	}
	if err := os.Rename(tmp, h.path); err != nil {
		os.Remove(tmp)
		return ordinatorerrors.NewFileAccess(h.path, "replacing plugins list", ordinatorerrors.WithCause(err))
	}

	h.order = append([]string(nil), order...)
	h.index = map[string]int{}
	for i, name := range h.order {
		h.index[strings.ToLower(name)] = i
	}
	return nil
}

// DataPath resolves name against the handler's data directory, for the
// condition evaluator's file()/many() functions.
func (h *FileHandler) DataPath(name string) string {
	return filepath.Join(h.dataDir, filepath.FromSlash(name))
}
