package pluginhost

import (
	goplugin "github.com/hashicorp/go-plugin"

	"github.com/ordinator-tools/ordinator/pkg/pluginview"
)

// Serve blocks forever, handing impl to go-plugin as the "inspector"
// plugin over the net/rpc transport. Call this from the main package
// of a standalone plugin-inspection executable.
func Serve(impl pluginview.Inspector) {
	goplugin.Serve(&goplugin.ServeConfig{
		HandshakeConfig: Handshake,
		Plugins: map[string]goplugin.Plugin{
			"inspector": &rpcPlugin{Impl: impl},
		},
	})
}
