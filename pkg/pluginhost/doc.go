// Package pluginhost hosts an optional external plugin-inspection
// executable behind the pluginview.Inspector contract (spec.md §6).
//
// It uses hashicorp/go-plugin's classic net/rpc transport rather than
// the gRPC transport: the inspection contract is a single blocking call
// with plain Go types as arguments, so there is nothing to gain from a
// protobuf schema and a generated stub, and plenty to lose in codegen
// upkeep for a one-method interface. A plugin.Plugin pair (rpcPlugin)
// wraps an in-process pluginview.Inspector on the server side and
// exposes an *rpc.Client-backed Inspector on the client side.
//
// Most installs never configure an external inspector at all, in which
// case Manager falls back to a LocalInspector that reads plugin headers
// directly in-process.
package pluginhost
