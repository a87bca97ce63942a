package pluginview

// Inspector is the external plugin-inspection library contract named in
// spec.md §6. Ordinator never parses plugin file formats itself; it
// delegates to an Inspector and trusts the result.
//
// For a given path, Inspect returns the declared masters in file order,
// the header flags (master/light/empty), the set of FormIDs the plugin
// defines or overrides, a CRC32 of the file contents, and (when present)
// a version string extracted from the plugin's description field.
//
// Implementations are expected to surface I/O failures as plain errors;
// callers wrap them into FileAccessError (pkg/errors).
type Inspector interface {
	Inspect(path string) (View, error)
}
