package ui_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/zxq82lm/repo-readme-scanner/internal/execshell"
	"github.com/zxq82lm/repo-readme-scanner/internal/ui"
)

const (
	testObservedCloneURLConstant    = "https://example.com/acme/widgets.git"
	testObservedDestinationConstant = "/tmp/clone-target"
)

func TestConsoleCommandEventLoggerLevels(testInstance *testing.T) {
	cloneCommand := execshell.ShellCommand{
		Name:    execshell.CommandGit,
		Details: execshell.CommandDetails{Arguments: []string{"clone", testObservedCloneURLConstant, testObservedDestinationConstant}},
	}

	testCases := []struct {
		name          string
		notify        func(eventLogger *ui.ConsoleCommandEventLogger)
		expectedLevel zap.AtomicLevel
		expectedText  string
	}{
		{
			name: "started_logs_info",
			notify: func(eventLogger *ui.ConsoleCommandEventLogger) {
				eventLogger.CommandStarted(cloneCommand)
			},
			expectedLevel: zap.NewAtomicLevelAt(zap.InfoLevel),
			expectedText:  "Cloning",
		},
		{
			name: "nonzero_exit_logs_warning",
			notify: func(eventLogger *ui.ConsoleCommandEventLogger) {
				eventLogger.CommandCompleted(cloneCommand, execshell.ExecutionResult{ExitCode: 1, StandardError: "denied"})
			},
			expectedLevel: zap.NewAtomicLevelAt(zap.WarnLevel),
			expectedText:  "Failed to clone",
		},
		{
			name: "execution_failure_logs_error",
			notify: func(eventLogger *ui.ConsoleCommandEventLogger) {
				eventLogger.CommandExecutionFailed(cloneCommand, errors.New("binary missing"))
			},
			expectedLevel: zap.NewAtomicLevelAt(zap.ErrorLevel),
			expectedText:  "binary missing",
		},
	}

	for _, testCase := range testCases {
		testInstance.Run(testCase.name, func(testInstance *testing.T) {
			observerCore, observedLogs := observer.New(zap.DebugLevel)
			eventLogger := ui.NewConsoleCommandEventLogger(zap.New(observerCore))

			testCase.notify(eventLogger)

			allEntries := observedLogs.All()
			require.Len(testInstance, allEntries, 1)
			require.Equal(testInstance, testCase.expectedLevel.Level(), allEntries[0].Level)
			require.Contains(testInstance, allEntries[0].Message, testCase.expectedText)
		})
	}
}
