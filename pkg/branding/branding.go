package branding

import (
	"fmt"
	"os"
	"path/filepath"
)

// These variables can be overridden at build time using ldflags
// Example: go build -ldflags "-X github.com/ordinator-tools/ordinator/pkg/branding.CommandName=mycli"
var (
	// CommandName is the name of the CLI command.
	CommandName = "ordinatorctl"

	// ConfigFileName is the name of the tool's own config file.
	ConfigFileName = ".ordinator.yml"

	// ProjectName is the project display name.
	ProjectName = "Ordinator"

	// Description is a short description of the CLI tool.
	Description = "plugin load-order sorting engine"

	// LongDescription provides more detailed information about the tool.
	LongDescription = `A plugin load-order sorting engine for game content files.
It merges a community-maintained masterlist with per-user overrides, evaluates
conditional metadata, and produces a deterministic, cycle-free load order.`

	// CompletionDir is the directory name for shell completions.
	CompletionDir = "ordinatorctl"

	// RepositoryURL is the URL of the source repository.
	RepositoryURL = "https://github.com/ordinator-tools/ordinator"
)

// GetConfigPath returns the full path to the tool's own config file.
func GetConfigPath() string {
	homeDir, _ := os.UserHomeDir()
	return filepath.Join(homeDir, ConfigFileName)
}

// GetShortDescription returns a formatted short description.
func GetShortDescription() string {
	return fmt.Sprintf("%s %s", ProjectName, Description)
}

// GetFullDescription returns the full formatted description for the CLI.
func GetFullDescription() string {
	return fmt.Sprintf(`%s sorts game plugin load orders from masterlist and userlist metadata.
It evaluates conditional rules, merges overrides, and produces a deterministic,
cycle-free load order.`,
		capitalize(CommandName))
}

// GetCompletionPath returns the path for shell completion files.
func GetCompletionPath(shell string) string {
	var dir string
	switch shell {
	case "bash":
		dir = "/usr/local/etc/bash_completion.d"
	case "zsh":
		dir = "/usr/local/share/zsh/site-functions"
	case "fish":
		homeDir, _ := os.UserHomeDir()
		dir = filepath.Join(homeDir, ".config", "fish", "completions")
	default:
		return ""
	}
	return filepath.Join(dir, CompletionDir)
}

// capitalize returns a string with the first letter capitalized.
func capitalize(s string) string {
	if len(s) == 0 {
		return s
	}
	return string(s[0]-32) + s[1:]
}
