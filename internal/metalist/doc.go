// Package metalist implements the metadata document format named in
// spec.md §6 and the list-level operations of spec.md §3/§4.2: loading a
// YAML document into metadata.PluginMetadata values, validating every
// condition string eagerly, and merging masterlist against userlist.
//
// The on-disk schema is fixed: top-level bash_tags, globals, plugins,
// groups keys; unknown keys are rejected. File references accept either
// a bare string or a {name, display, condition} mapping (string-or-struct),
// implemented as gopkg.in/yaml.v3 UnmarshalYAML methods instead of a
// runtime type switch, since yaml.v3 gives each field its own decode call.
package metalist
