package execshell

// CommandEventObserver receives progress notifications for the git invocations
// the scanner performs (shallow clones and current-branch queries). The console
// event logger in internal/ui implements it for human-readable output.
type CommandEventObserver interface {
	// CommandStarted fires immediately before the command runs.
	CommandStarted(command ShellCommand)
	// CommandCompleted fires once the command produced an ExecutionResult,
	// including results with non-zero exit codes.
	CommandCompleted(command ShellCommand, result ExecutionResult)
	// CommandExecutionFailed fires when the command could not run at all,
	// for example when the git binary is missing.
	CommandExecutionFailed(command ShellCommand, failure error)
}
