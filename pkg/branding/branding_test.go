package branding

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultValues(t *testing.T) {
	assert.Equal(t, "ordinatorctl", CommandName)
	assert.Equal(t, ".ordinator.yml", ConfigFileName)
	assert.Equal(t, "Ordinator", ProjectName)
	assert.Equal(t, "plugin load-order sorting engine", Description)
	assert.Contains(t, LongDescription, "masterlist")
	assert.Equal(t, "ordinatorctl", CompletionDir)
	assert.Equal(t, "https://github.com/ordinator-tools/ordinator", RepositoryURL)
}

func TestGetConfigPath(t *testing.T) {
	originalConfigFileName := ConfigFileName
	defer func() { ConfigFileName = originalConfigFileName }()

	homeDir, _ := os.UserHomeDir()
	expectedPath := filepath.Join(homeDir, ".ordinator.yml")
	assert.Equal(t, expectedPath, GetConfigPath())

	ConfigFileName = ".mycli.yml"
	expectedPath = filepath.Join(homeDir, ".mycli.yml")
	assert.Equal(t, expectedPath, GetConfigPath())
}

func TestGetShortDescription(t *testing.T) {
	originalProjectName := ProjectName
	originalDescription := Description
	defer func() {
		ProjectName = originalProjectName
		Description = originalDescription
	}()

	assert.Equal(t, "Ordinator plugin load-order sorting engine", GetShortDescription())

	ProjectName = "MyProject"
	Description = "awesome tool"
	assert.Equal(t, "MyProject awesome tool", GetShortDescription())
}

func TestGetFullDescription(t *testing.T) {
	originalCommandName := CommandName
	defer func() { CommandName = originalCommandName }()

	desc := GetFullDescription()
	assert.Contains(t, desc, "Ordinatorctl")
	assert.Contains(t, desc, "deterministic")

	CommandName = "mycli"
	desc = GetFullDescription()
	assert.Contains(t, desc, "Mycli")
}

func TestGetCompletionPath(t *testing.T) {
	originalCompletionDir := CompletionDir
	defer func() { CompletionDir = originalCompletionDir }()

	tests := []struct {
		name     string
		shell    string
		expected string
	}{
		{"bash completion path", "bash", "/usr/local/etc/bash_completion.d/ordinatorctl"},
		{"zsh completion path", "zsh", "/usr/local/share/zsh/site-functions/ordinatorctl"},
		{"fish completion path", "fish", filepath.Join(os.Getenv("HOME"), ".config", "fish", "completions", "ordinatorctl")},
		{"unknown shell", "unknown", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := GetCompletionPath(tt.shell)
			assert.Equal(t, tt.expected, result)
		})
	}

	CompletionDir = "mycli"
	path := GetCompletionPath("bash")
	assert.Equal(t, "/usr/local/etc/bash_completion.d/mycli", path)
}

func TestCapitalize(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"glid", "Glid"},
		{"mycli", "Mycli"},
		{"a", "A"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, capitalize(tt.input))
		})
	}
}

func TestBrandingCustomization(t *testing.T) {
	originalCommandName := CommandName
	originalConfigFileName := ConfigFileName
	originalProjectName := ProjectName
	originalDescription := Description
	originalCompletionDir := CompletionDir
	originalRepositoryURL := RepositoryURL

	defer func() {
		CommandName = originalCommandName
		ConfigFileName = originalConfigFileName
		ProjectName = originalProjectName
		Description = originalDescription
		CompletionDir = originalCompletionDir
		RepositoryURL = originalRepositoryURL
	}()

	CommandName = "acme"
	ConfigFileName = ".acme.yml"
	ProjectName = "ACME Corp"
	Description = "deployment tool"
	CompletionDir = "acme"
	RepositoryURL = "https://github.com/acme/acme-cli"

	assert.Equal(t, "ACME Corp deployment tool", GetShortDescription())
	assert.Contains(t, GetFullDescription(), "Acme")

	homeDir, _ := os.UserHomeDir()
	assert.Equal(t, filepath.Join(homeDir, ".acme.yml"), GetConfigPath())
	assert.True(t, strings.HasSuffix(GetCompletionPath("bash"), "/acme"))
}

func TestLongDescription(t *testing.T) {
	assert.Contains(t, LongDescription, "masterlist")
	assert.Contains(t, LongDescription, "conditional")
	assert.Contains(t, LongDescription, "deterministic")
}
