// Package shell provides subprocess execution for ordinatorctl's external
// collaborators — currently internal/vcs.GitClient, which drives the git
// binary to fetch and inspect the masterlist checkout.
//
// This package handles executing shell commands with proper handling of
// arguments, environment variables, timeouts, and output streaming.
//
// # Basic Execution
//
// Execute a simple command:
//
//	executor := shell.NewExecutor(shell.Options{})
//	result, err := executor.Execute(shell.NewCommand("git", "rev-parse", "HEAD"))
//	if err != nil {
//	    return err
//	}
//	fmt.Println(string(result.Stdout))
//
// # Context-Aware Execution
//
// Execute with context for cancellation and timeout:
//
//	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
//	defer cancel()
//
//	result, err := executor.ExecuteWithContext(ctx, shell.NewCommand("git", "fetch", "origin", "main"))
//
// # Environment Variables
//
// Pass custom environment variables:
//
//	cmd := shell.NewCommand("git", "clone", repoURL, dir)
//	cmd.WithEnv("GIT_TERMINAL_PROMPT=0")
//
// # Working Directory
//
// Execute in a specific directory:
//
//	cmd := shell.NewCommand("git", "status")
//	cmd.WithWorkingDir(checkoutDir)
//
// # Output Handling
//
// The Result struct contains execution details:
//
//	type Result struct {
//	    ExitCode int
//	    Stdout   []byte
//	    Stderr   []byte
//	    Duration time.Duration
//	}
//
// # Command Sanitization
//
// Validate caller-supplied arguments (branch names, URLs from tool config)
// before they reach the subprocess:
//
//	sanitizer := shell.NewSanitizer(shell.DefaultConfig())
//	if err := sanitizer.Validate("git", args); err != nil {
//	    return err
//	}
//
// # Error Handling
//
// Non-zero exit codes are reported on the Result, not as a returned error:
//
//	result, err := executor.ExecuteWithContext(ctx, cmd)
//	if err == nil && result.Error != nil {
//	    fmt.Printf("Exit code: %d\n", result.ExitCode)
//	    fmt.Printf("Stderr: %s\n", result.Stderr)
//	}
package shell
