package inventory_test

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/zxq82lm/repo-readme-scanner/internal/inventory"
	"github.com/zxq82lm/repo-readme-scanner/internal/utils"
	"github.com/zxq82lm/repo-readme-scanner/internal/workspace"
)

func buildTestCommandBuilder(resolver *stubSourceResolver, detector *stubBranchDetector, configuration inventory.CommandConfiguration) *inventory.CommandBuilder {
	return &inventory.CommandBuilder{
		LoggerProvider: func() *zap.Logger {
			return zap.NewNop()
		},
		SourceResolver: resolver,
		BranchDetector: detector,
		ConfigurationProvider: func() inventory.CommandConfiguration {
			return configuration
		},
	}
}

func TestCommandBuilderBuildDeclaresFlags(testInstance *testing.T) {
	builder := &inventory.CommandBuilder{}
	command, buildError := builder.Build()
	require.NoError(testInstance, buildError)
	require.Equal(testInstance, "inventory", command.Name())

	branchFlag := command.Flags().Lookup("branch")
	require.NotNil(testInstance, branchFlag)
	require.Equal(testInstance, "b", branchFlag.Shorthand)
	require.Equal(testInstance, "", branchFlag.DefValue)

	outputFlag := command.Flags().Lookup("output")
	require.NotNil(testInstance, outputFlag)
	require.Equal(testInstance, "o", outputFlag.Shorthand)
	require.Equal(testInstance, "readme_inventory.html", outputFlag.DefValue)

	csvOutputFlag := command.Flags().Lookup("csv-output")
	require.NotNil(testInstance, csvOutputFlag)
	require.Equal(testInstance, "c", csvOutputFlag.Shorthand)
	require.Equal(testInstance, "readme_inventory.csv", csvOutputFlag.DefValue)
}

func TestCommandRequiresExactlyOneSource(testInstance *testing.T) {
	testCases := []struct {
		name      string
		arguments []string
	}{
		{name: "no_arguments", arguments: []string{}},
		{name: "two_arguments", arguments: []string{"first", "second"}},
	}

	for _, testCase := range testCases {
		testInstance.Run(testCase.name, func(testInstance *testing.T) {
			builder := buildTestCommandBuilder(&stubSourceResolver{}, &stubBranchDetector{}, inventory.DefaultCommandConfiguration())
			command, buildError := builder.Build()
			require.NoError(testInstance, buildError)

			command.SetOut(&bytes.Buffer{})
			command.SetErr(&bytes.Buffer{})
			command.SetArgs(testCase.arguments)

			require.Error(testInstance, command.Execute())
		})
	}
}

func TestCommandRunsInventoryWithFlags(testInstance *testing.T) {
	repositoryRoot := testInstance.TempDir()
	writeTestFile(testInstance, repositoryRoot, "README.md", "# root")

	outputDirectory := testInstance.TempDir()
	htmlOutputPath := filepath.Join(outputDirectory, "flags.html")
	csvOutputPath := filepath.Join(outputDirectory, "flags.csv")

	resolver := &stubSourceResolver{workspaceToReturn: workspace.Workspace{Root: repositoryRoot}}
	detector := &stubBranchDetector{branchName: "develop"}
	builder := buildTestCommandBuilder(resolver, detector, inventory.DefaultCommandConfiguration())

	command, buildError := builder.Build()
	require.NoError(testInstance, buildError)

	var commandOutput bytes.Buffer
	command.SetOut(&commandOutput)
	command.SetErr(&bytes.Buffer{})
	command.SetArgs([]string{"https://github.com/acme/widgets", "-b", "release", "-o", htmlOutputPath, "-c", csvOutputPath})

	require.NoError(testInstance, command.Execute())
	require.Equal(testInstance, "release", resolver.requestedBranch)
	require.Equal(testInstance, 0, detector.invocationCount)
	require.Equal(testInstance, fmt.Sprintf("Wrote 1 entries to %s and %s\n", htmlOutputPath, csvOutputPath), commandOutput.String())

	renderedCSV, csvReadError := os.ReadFile(csvOutputPath)
	require.NoError(testInstance, csvReadError)
	require.Contains(testInstance, string(renderedCSV), "/blob/release/README.md")
}

func TestCommandUsesConfigurationWhenFlagsAbsent(testInstance *testing.T) {
	repositoryRoot := testInstance.TempDir()
	writeTestFile(testInstance, repositoryRoot, "README.md", "# root")

	outputDirectory := testInstance.TempDir()
	configuration := inventory.CommandConfiguration{
		Branch:    "configured",
		Output:    filepath.Join(outputDirectory, "configured.html"),
		CSVOutput: filepath.Join(outputDirectory, "configured.csv"),
	}

	resolver := &stubSourceResolver{workspaceToReturn: workspace.Workspace{Root: repositoryRoot}}
	builder := buildTestCommandBuilder(resolver, &stubBranchDetector{}, configuration)

	command, buildError := builder.Build()
	require.NoError(testInstance, buildError)

	command.SetOut(&bytes.Buffer{})
	command.SetErr(&bytes.Buffer{})
	command.SetArgs([]string{"https://github.com/acme/widgets"})

	require.NoError(testInstance, command.Execute())
	require.Equal(testInstance, "configured", resolver.requestedBranch)

	_, htmlStatError := os.Stat(configuration.Output)
	require.NoError(testInstance, htmlStatError)
	_, csvStatError := os.Stat(configuration.CSVOutput)
	require.NoError(testInstance, csvStatError)
}

func TestCommandLogsConfigurationFileFromContext(testInstance *testing.T) {
	repositoryRoot := testInstance.TempDir()
	writeTestFile(testInstance, repositoryRoot, "README.md", "# root")

	outputDirectory := testInstance.TempDir()
	configurationFilePath := filepath.Join(outputDirectory, "config.yaml")

	observerCore, observedLogs := observer.New(zap.DebugLevel)
	resolver := &stubSourceResolver{workspaceToReturn: workspace.Workspace{Root: repositoryRoot}}
	builder := buildTestCommandBuilder(resolver, &stubBranchDetector{branchName: "main"}, inventory.DefaultCommandConfiguration())
	builder.LoggerProvider = func() *zap.Logger {
		return zap.New(observerCore)
	}

	command, buildError := builder.Build()
	require.NoError(testInstance, buildError)

	commandContext := utils.NewCommandContextAccessor().WithConfigurationFilePath(context.Background(), configurationFilePath)
	command.SetContext(commandContext)
	command.SetOut(&bytes.Buffer{})
	command.SetErr(&bytes.Buffer{})
	command.SetArgs([]string{repositoryRoot, "-o", filepath.Join(outputDirectory, "traced.html"), "-c", filepath.Join(outputDirectory, "traced.csv")})

	require.NoError(testInstance, command.Execute())

	configurationEntries := observedLogs.FilterMessage("inventory configuration resolved").All()
	require.Len(testInstance, configurationEntries, 1)
	require.Equal(testInstance, configurationFilePath, configurationEntries[0].ContextMap()["config_file"])
}

func TestCommandWrapsServiceFailures(testInstance *testing.T) {
	builder := buildTestCommandBuilder(
		&stubSourceResolver{resolveError: workspace.PathNotFoundError{Path: "/missing"}},
		&stubBranchDetector{},
		inventory.DefaultCommandConfiguration(),
	)

	command, buildError := builder.Build()
	require.NoError(testInstance, buildError)

	command.SetOut(&bytes.Buffer{})
	command.SetErr(&bytes.Buffer{})
	command.SetArgs([]string{"/missing"})

	executionError := command.Execute()
	require.Error(testInstance, executionError)
	require.Contains(testInstance, executionError.Error(), "readme inventory failed")
	var notFoundError workspace.PathNotFoundError
	require.ErrorAs(testInstance, executionError, &notFoundError)
}
