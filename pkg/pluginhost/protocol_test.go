package pluginhost

import (
	"net"
	"net/rpc"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ordinator-tools/ordinator/pkg/pluginview"
)

type stubInspector struct {
	view pluginview.View
	err  error
}

func (s stubInspector) Inspect(string) (pluginview.View, error) {
	return s.view, s.err
}

// TestRPCRoundTrip exercises rpcServer and rpcClient directly over an
// in-memory net/rpc connection, without going through go-plugin's
// process handshake — that part is exercised instead by go-plugin's
// own test suite.
func TestRPCRoundTrip(t *testing.T) {
	want := pluginview.View{Name: "Base.esm", IsMaster: true, Masters: []string{"A.esm"}, CRC: 42}
	server := rpc.NewServer()
	require.NoError(t, server.RegisterName("Plugin", &rpcServer{impl: stubInspector{view: want}}))

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer ln.Close()
	go server.Accept(ln)

	conn, err := net.Dial("tcp", ln.Addr().String())
	require.NoError(t, err)
	client := rpc.NewClient(conn)
	defer client.Close()

	rc := &rpcClient{client: client}
	got, err := rc.Inspect("Base.esm")
	require.NoError(t, err)
	assert.Equal(t, want, got)
}
