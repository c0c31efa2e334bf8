// Package exec starts subprocesses and exposes their standard streams as a
// byte stream.
//
// This package wraps the standard library's os/exec, providing the Command
// struct that implements the Executor interface. The package returns
// concrete types (Command, CommandWrapper, Pipe) while accepting interfaces
// in function parameters, making it easy to substitute process spawning in
// tests.
//
// # Basic Usage
//
// Start a process and read its output:
//
//	p, err := exec.New().Start(exec.PipeRead, "echo", "hello world")
//	if err != nil {
//		log.Fatal(err)
//	}
//	out, _ := io.ReadAll(p)
//	err = p.Close() // waits for the process
//
// # Configuration
//
// The package supports both global configuration (set at creation time) and
// local configuration (set per-start). Local settings always override global settings:
//
//	// Global configuration
//	ex := exec.New(
//		exec.WithEnv(map[string]string{"GLOBAL_VAR": "value"}),
//		exec.WithInheritEnv(),
//	)
//
//	// Local configuration (overrides global, cleared after Start)
//	p, err := ex.
//		WithDir("/tmp").
//		WithEnv(map[string]string{"LOCAL_VAR": "value"}).
//		Start(exec.PipeWrite, "sort")
//
// # Command Wrappers
//
// A wrapper prepends a fixed command line:
//
//	sh := exec.Shell(exec.New())
//	p, err := sh.Start(exec.PipeRead, "ls -l | wc -l")
//	// Equivalent to: Start(exec.PipeRead, "sh", "-c", "ls -l | wc -l")
//
// # Error Handling
//
// Start and Close return *ExecError for failures. Close reports the exit
// code and the tail of the child's stderr:
//
//	if err := p.Close(); err != nil {
//		var execErr *exec.ExecError
//		if errors.As(err, &execErr) {
//			fmt.Printf("Exit code: %d\n", execErr.ExitCode)
//			fmt.Printf("Stderr: %s\n", execErr.Stderr)
//		}
//	}
//
// # Context Support
//
// The process is killed if its context is canceled before it exits:
//
//	p, err := ex.WithContext(ctx).Start(exec.PipeRead, "long-running-command")
package exec
