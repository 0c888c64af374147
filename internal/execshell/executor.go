package execshell

import (
	"context"
	"errors"

	"go.uber.org/zap"
)

const (
	gitToolNameConstant                       = "git"
	loggerNotConfiguredMessageConstant        = "logger not configured"
	commandRunnerNotConfiguredMessageConstant = "command runner not configured"
)

// Validation errors returned by NewShellExecutor.
var (
	ErrLoggerNotConfigured        = errors.New(loggerNotConfiguredMessageConstant)
	ErrCommandRunnerNotConfigured = errors.New(commandRunnerNotConfiguredMessageConstant)
)

// CommandName identifies a supported executable.
type CommandName string

// Supported executables.
const (
	CommandGit CommandName = CommandName(gitToolNameConstant)
)

// CommandDetails describes a tool invocation.
type CommandDetails struct {
	Arguments        []string
	WorkingDirectory string
}

// ShellCommand combines a CommandName with specific invocation details.
type ShellCommand struct {
	Name    CommandName
	Details CommandDetails
}

// ExecutionResult captures the observable results of executing a command.
type ExecutionResult struct {
	StandardOutput string
	StandardError  string
	ExitCode       int
}

// CommandRunner represents the ability to run shell commands.
type CommandRunner interface {
	Run(executionContext context.Context, command ShellCommand) (ExecutionResult, error)
}

// CommandFailedError indicates a command completed with a non-zero exit code.
type CommandFailedError struct {
	Command ShellCommand
	Result  ExecutionResult
}

// Error describes the command failure including captured standard error output.
func (failedError CommandFailedError) Error() string {
	return CommandMessageFormatter{}.BuildFailureMessage(failedError.Command, failedError.Result)
}

// CommandExecutionError indicates a command could not be executed at all.
type CommandExecutionError struct {
	Command ShellCommand
	Cause   error
}

// Error describes the execution failure.
func (executionError CommandExecutionError) Error() string {
	return CommandMessageFormatter{}.BuildExecutionFailureMessage(executionError.Command, executionError.Cause)
}

// Unwrap exposes the underlying cause.
func (executionError CommandExecutionError) Unwrap() error {
	return executionError.Cause
}

// noopCommandEventObserver discards every command event. It stands in when no
// observer was supplied so the executor never nil-checks before notifying.
type noopCommandEventObserver struct{}

func (noopCommandEventObserver) CommandStarted(ShellCommand) {}

func (noopCommandEventObserver) CommandCompleted(ShellCommand, ExecutionResult) {}

func (noopCommandEventObserver) CommandExecutionFailed(ShellCommand, error) {}

// ShellExecutor coordinates command execution with structured logging and event notification.
type ShellExecutor struct {
	logger           *zap.Logger
	commandRunner    CommandRunner
	messageFormatter CommandMessageFormatter
	eventObserver    CommandEventObserver
}

// NewShellExecutor constructs a ShellExecutor with a no-op event observer.
func NewShellExecutor(logger *zap.Logger, commandRunner CommandRunner) (*ShellExecutor, error) {
	return NewShellExecutorWithObserver(logger, commandRunner, nil)
}

// NewShellExecutorWithObserver constructs a ShellExecutor notifying the provided observer of command lifecycle events.
func NewShellExecutorWithObserver(logger *zap.Logger, commandRunner CommandRunner, eventObserver CommandEventObserver) (*ShellExecutor, error) {
	if logger == nil {
		return nil, ErrLoggerNotConfigured
	}
	if commandRunner == nil {
		return nil, ErrCommandRunnerNotConfigured
	}
	if eventObserver == nil {
		eventObserver = noopCommandEventObserver{}
	}

	return &ShellExecutor{
		logger:           logger,
		commandRunner:    commandRunner,
		messageFormatter: CommandMessageFormatter{},
		eventObserver:    eventObserver,
	}, nil
}

// ExecuteGit runs git with the provided details.
func (executor *ShellExecutor) ExecuteGit(executionContext context.Context, details CommandDetails) (ExecutionResult, error) {
	gitCommand := ShellCommand{Name: CommandGit, Details: details}
	return executor.execute(executionContext, gitCommand)
}

func (executor *ShellExecutor) execute(executionContext context.Context, command ShellCommand) (ExecutionResult, error) {
	executor.logger.Info(executor.messageFormatter.BuildStartedMessage(command))
	executor.eventObserver.CommandStarted(command)

	executionResult, runError := executor.commandRunner.Run(executionContext, command)
	if runError != nil {
		executor.logger.Error(executor.messageFormatter.BuildExecutionFailureMessage(command, runError))
		executor.eventObserver.CommandExecutionFailed(command, runError)
		return ExecutionResult{}, CommandExecutionError{Command: command, Cause: runError}
	}

	if executionResult.ExitCode != 0 {
		executor.logger.Warn(executor.messageFormatter.BuildFailureMessage(command, executionResult))
		executor.eventObserver.CommandCompleted(command, executionResult)
		return ExecutionResult{}, CommandFailedError{Command: command, Result: executionResult}
	}

	executor.logger.Info(executor.messageFormatter.BuildSuccessMessage(command, executionResult))
	executor.eventObserver.CommandCompleted(command, executionResult)

	return executionResult, nil
}
