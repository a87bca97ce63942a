// Package toolconfig loads the tool's own configuration file
// (~/.ordinator.yml): default masterlist URL/branch, default on-disk
// paths, and CLI display preferences. It is unrelated to the plugin
// metadata documents in internal/metalist — this is ordinator's own
// settings file, not game data.
package toolconfig
