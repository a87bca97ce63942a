// Package branding provides the CLI's build-time-overridable identity:
// command name, config file name, description text, and the
// repository URL surfaced by `ordinatorctl version` and the self-update
// notice.
//
// Override at build time:
//
//	go build -ldflags "\
//	    -X github.com/ordinator-tools/ordinator/pkg/branding.CommandName=mycli \
//	    -X github.com/ordinator-tools/ordinator/pkg/branding.ConfigFileName=.mycli.yml"
package branding
