package update

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/ordinator-tools/ordinator/pkg/logging"
)

const (
	DefaultCheckInterval = 24 * time.Hour
	stateFileName        = "update-state.json"
	quickCheckTimeout    = 3 * time.Second
)

// NotificationConfig controls how often the notifier checks and
// whether it is enabled at all (mirrors toolconfig.UpdateConfig).
type NotificationConfig struct {
	Enabled       bool
	CheckInterval time.Duration
}

// DefaultNotificationConfig is used when no NotificationConfig is given.
func DefaultNotificationConfig() *NotificationConfig {
	return &NotificationConfig{Enabled: true, CheckInterval: DefaultCheckInterval}
}

// State persists check results between CLI invocations, stored at
// ~/.ordinator/update-state.json.
type State struct {
	LastCheckTime       time.Time `json:"last_check_time"`
	LatestVersion       string    `json:"latest_version,omitempty"`
	LatestVersionInfo   *Info     `json:"latest_version_info,omitempty"`
	LastNotifiedVersion string    `json:"last_notified_version,omitempty"`
}

// Notifier performs background update checks and throttles repeat
// notifications for a version the user has already seen.
type Notifier struct {
	config         *NotificationConfig
	currentVersion string
	stateDir       string
	state          *State
	mu             sync.RWMutex
}

// NewNotifier returns a Notifier for currentVersion, loading any
// persisted state from disk.
func NewNotifier(currentVersion string, config *NotificationConfig) *Notifier {
	if config == nil {
		config = DefaultNotificationConfig()
	}
	n := &Notifier{
		config:         config,
		currentVersion: currentVersion,
		stateDir:       stateDir(),
		state:          &State{},
	}
	n.loadState()
	return n
}

func stateDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".ordinator")
}

func (n *Notifier) statePath() string {
	if n.stateDir == "" {
		return ""
	}
	return filepath.Join(n.stateDir, stateFileName)
}

func (n *Notifier) loadState() {
	path := n.statePath()
	if path == "" {
		return
	}
	data, err := os.ReadFile(path)
	if err != nil {
		logging.Debug("no update state file found, starting fresh", "path", path)
		return
	}
	var state State
	if err := json.Unmarshal(data, &state); err != nil {
		logging.Debug("failed to parse update state, starting fresh", "error", err)
		return
	}
	n.mu.Lock()
	n.state = &state
	n.mu.Unlock()
}

func (n *Notifier) saveState() error {
	path := n.statePath()
	if path == "" {
		return fmt.Errorf("no state directory available")
	}
	n.mu.RLock()
	data, err := json.MarshalIndent(n.state, "", "  ")
	n.mu.RUnlock()
	if err != nil {
		return fmt.Errorf("failed to marshal state: %w", err)
	}
	if err := os.MkdirAll(n.stateDir, 0o755); err != nil {
		return fmt.Errorf("failed to create state directory: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

// ShouldCheck reports whether enough time has passed since the last check.
func (n *Notifier) ShouldCheck() bool {
	if !n.config.Enabled || n.currentVersion == "dev" {
		return false
	}
	n.mu.RLock()
	lastCheck := n.state.LastCheckTime
	n.mu.RUnlock()
	return time.Since(lastCheck) > n.config.CheckInterval
}

// CheckAsync runs a bounded-time update check in the background and
// returns a channel that receives Info only if an update is available.
func (n *Notifier) CheckAsync(ctx context.Context) <-chan *Info {
	result := make(chan *Info, 1)

	go func() {
		defer close(result)
		checkCtx, cancel := context.WithTimeout(ctx, quickCheckTimeout)
		defer cancel()

		info, err := NewChecker(n.currentVersion).CheckForUpdate(checkCtx)
		if err != nil {
			logging.Debug("background update check failed", "error", err)
			return
		}

		n.mu.Lock()
		n.state.LastCheckTime = time.Now()
		n.state.LatestVersion = info.LatestVersion
		if info.Available {
			n.state.LatestVersionInfo = info
		}
		n.mu.Unlock()

		if err := n.saveState(); err != nil {
			logging.Debug("failed to save update state", "error", err)
		}
		if info.Available {
			result <- info
		}
	}()

	return result
}

// CachedInfo returns the last-seen available update, or nil if none is
// pending or it has already been notified.
func (n *Notifier) CachedInfo() *Info {
	n.mu.RLock()
	defer n.mu.RUnlock()

	info := n.state.LatestVersionInfo
	if info == nil || !info.Available {
		return nil
	}
	if n.state.LastNotifiedVersion == info.LatestVersion {
		return nil
	}
	return info
}

// MarkNotified records version as shown, so CachedInfo suppresses repeats.
func (n *Notifier) MarkNotified(version string) {
	n.mu.Lock()
	n.state.LastNotifiedVersion = version
	n.mu.Unlock()

	if err := n.saveState(); err != nil {
		logging.Debug("failed to save notification state", "error", err)
	}
}

// FormatNotificationCompact renders a single-line update notice for
// the CLI command output manager.
func FormatNotificationCompact(info *Info) string {
	if info == nil || !info.Available {
		return ""
	}
	return fmt.Sprintf("update available: %s -> %s (run 'ordinatorctl self-update')", info.CurrentVersion, info.LatestVersion)
}
