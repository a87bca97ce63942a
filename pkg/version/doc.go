// Package version provides version information and build metadata.
//
// Values can be set at build time using ldflags:
//
//	go build -ldflags "\
//	    -X github.com/ordinator-tools/ordinator/pkg/version.Version=1.2.3 \
//	    -X github.com/ordinator-tools/ordinator/pkg/version.BuildDate=$(date -u +%Y-%m-%dT%H:%M:%SZ) \
//	    -X github.com/ordinator-tools/ordinator/pkg/version.GitCommit=$(git rev-parse HEAD)"
package version
