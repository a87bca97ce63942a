package pluginhost

import (
	"net/rpc"

	goplugin "github.com/hashicorp/go-plugin"

	"github.com/ordinator-tools/ordinator/pkg/pluginview"
)

// Handshake identifies this process family to go-plugin's magic-cookie
// check, distinct from a plain child process spawned by accident.
var Handshake = goplugin.HandshakeConfig{
	ProtocolVersion:  1,
	MagicCookieKey:   "ORDINATOR_INSPECTOR_MAGIC",
	MagicCookieValue: "f47d7f1f-7e0f-4f6a-9b2a-2a8b7d2d8f11",
}

// PluginMap is the single-entry plugin map the host and the plugin
// binary both pass to goplugin.NewClient / goplugin.Serve.
var PluginMap = map[string]goplugin.Plugin{
	"inspector": &rpcPlugin{},
}

// rpcPlugin is the plugin.Plugin implementation for the classic
// net/rpc transport: Server wraps an in-process Inspector for dispatch
// over RPC, Client wraps the RPC connection back into an Inspector.
type rpcPlugin struct {
	Impl pluginview.Inspector
}

func (p *rpcPlugin) Server(*goplugin.MuxBroker) (interface{}, error) {
	return &rpcServer{impl: p.Impl}, nil
}

func (p *rpcPlugin) Client(_ *goplugin.MuxBroker, c *rpc.Client) (interface{}, error) {
	return &rpcClient{client: c}, nil
}

// rpcServer is dispensed inside the plugin process; its one exported
// method is the net/rpc service net/rpc's codec dispatches to.
type rpcServer struct {
	impl pluginview.Inspector
}

func (s *rpcServer) Inspect(path string, resp *pluginview.View) error {
	v, err := s.impl.Inspect(path)
	if err != nil {
		return err
	}
	*resp = v
	return nil
}

// rpcClient runs in the host process and satisfies pluginview.Inspector
// by calling across the RPC connection the plugin process exposes.
type rpcClient struct {
	client *rpc.Client
}

func (c *rpcClient) Inspect(path string) (pluginview.View, error) {
	var resp pluginview.View
	err := c.client.Call("Plugin.Inspect", path, &resp)
	return resp, err
}

var _ pluginview.Inspector = (*rpcClient)(nil)
