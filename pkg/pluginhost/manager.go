package pluginhost

import (
	"os/exec"
	"sync"

	"github.com/hashicorp/go-hclog"
	goplugin "github.com/hashicorp/go-plugin"

	ordinatorerrors "github.com/ordinator-tools/ordinator/pkg/errors"
	"github.com/ordinator-tools/ordinator/pkg/pluginview"
)

// Manager owns the lifecycle of an external inspection executable, if
// one is configured, and otherwise falls back to LocalInspector. At
// most one external process is ever started; Inspect calls are safe
// for concurrent use.
type Manager struct {
	mu         sync.Mutex
	binaryPath string
	debug      bool
	client     *goplugin.Client
	inspector  pluginview.Inspector
	fallback   pluginview.Inspector
}

// NewManager returns a Manager. binaryPath may be empty, in which case
// every Inspect call is served by LocalInspector and no subprocess is
// ever launched. debug enables the go-plugin debug logger on stderr.
func NewManager(binaryPath string, debug bool) *Manager {
	return &Manager{
		binaryPath: binaryPath,
		debug:      debug,
		fallback:   LocalInspector{},
	}
}

// Inspect satisfies pluginview.Inspector, lazily starting the external
// process (if configured) on first use.
func (m *Manager) Inspect(path string) (pluginview.View, error) {
	inspector, err := m.ensure()
	if err != nil {
		return pluginview.View{}, err
	}
	return inspector.Inspect(path)
}

func (m *Manager) ensure() (pluginview.Inspector, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.binaryPath == "" {
		return m.fallback, nil
	}
	if m.inspector != nil {
		return m.inspector, nil
	}

	logger := hclog.NewNullLogger()
	if m.debug {
		logger = hclog.New(&hclog.LoggerOptions{Name: "inspector", Level: hclog.Debug})
	}

	client := goplugin.NewClient(&goplugin.ClientConfig{
		HandshakeConfig:  Handshake,
		Plugins:          PluginMap,
		Cmd:              exec.Command(m.binaryPath),
		AllowedProtocols: []goplugin.Protocol{goplugin.ProtocolNetRPC},
		Managed:          true,
		Logger:           logger,
	})

	rpcClient, err := client.Client()
	if err != nil {
		client.Kill()
		return nil, ordinatorerrors.NewFileAccess(m.binaryPath, "cannot start plugin-inspection process", ordinatorerrors.WithCause(err))
	}

	raw, err := rpcClient.Dispense("inspector")
	if err != nil {
		client.Kill()
		return nil, ordinatorerrors.NewFileAccess(m.binaryPath, "cannot dispense inspector plugin", ordinatorerrors.WithCause(err))
	}

	inspector, ok := raw.(pluginview.Inspector)
	if !ok {
		client.Kill()
		return nil, ordinatorerrors.NewFileAccess(m.binaryPath, "plugin-inspection process does not implement the inspector contract")
	}

	m.client = client
	m.inspector = inspector
	return inspector, nil
}

// Close terminates the external process, if one was started. Safe to
// call even if no process was ever launched.
func (m *Manager) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.client != nil {
		m.client.Kill()
		m.client = nil
		m.inspector = nil
	}
}

var _ pluginview.Inspector = (*Manager)(nil)
