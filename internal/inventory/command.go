package inventory

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/zxq82lm/repo-readme-scanner/internal/execshell"
	"github.com/zxq82lm/repo-readme-scanner/internal/gitrepo"
	"github.com/zxq82lm/repo-readme-scanner/internal/ui"
	"github.com/zxq82lm/repo-readme-scanner/internal/utils"
	"github.com/zxq82lm/repo-readme-scanner/internal/workspace"
)

const (
	commandUseConstant                    = "inventory <source>"
	commandShortDescriptionConstant       = "Generate HTML and CSV inventories of README.md files"
	commandLongDescriptionConstant        = "inventory clones a Git URL or opens a local path, finds every README.md beneath it, and writes an HTML report plus a CSV file with clickable links."
	commandExecutionErrorTemplateConstant = "readme inventory failed: %w"
	flagBranchNameConstant                = "branch"
	flagBranchShorthandConstant           = "b"
	flagBranchDescriptionConstant         = "Branch or tag to check out (optional)"
	flagOutputNameConstant                = "output"
	flagOutputShorthandConstant           = "o"
	flagOutputDescriptionConstant         = "Output HTML filename"
	flagCSVOutputNameConstant             = "csv-output"
	flagCSVOutputShorthandConstant        = "c"
	flagCSVOutputDescriptionConstant      = "Output CSV filename"
	configurationSourceMessageConstant    = "inventory configuration resolved"
	logFieldConfigurationFileConstant     = "config_file"
)

// LoggerProvider supplies a zap logger for command execution.
type LoggerProvider func() *zap.Logger

// CommandBuilder assembles the inventory cobra command with configurable dependencies.
type CommandBuilder struct {
	LoggerProvider               LoggerProvider
	SourceResolver               SourceResolver
	BranchDetector               BranchDetector
	ReadmeDiscoverer             ReadmeDiscoverer
	HumanReadableLoggingProvider func() bool
	ConfigurationProvider        func() CommandConfiguration
}

// Build constructs the inventory command.
func (builder *CommandBuilder) Build() (*cobra.Command, error) {
	command := &cobra.Command{
		Use:           commandUseConstant,
		Short:         commandShortDescriptionConstant,
		Long:          commandLongDescriptionConstant,
		SilenceErrors: true,
		SilenceUsage:  true,
		Args:          cobra.ExactArgs(1),
		RunE:          builder.run,
	}

	command.Flags().StringP(flagBranchNameConstant, flagBranchShorthandConstant, "", flagBranchDescriptionConstant)
	command.Flags().StringP(flagOutputNameConstant, flagOutputShorthandConstant, defaultHTMLOutputPathConstant, flagOutputDescriptionConstant)
	command.Flags().StringP(flagCSVOutputNameConstant, flagCSVOutputShorthandConstant, defaultCSVOutputPathConstant, flagCSVOutputDescriptionConstant)

	return command, nil
}

func (builder *CommandBuilder) run(command *cobra.Command, arguments []string) error {
	options := builder.parseOptions(command, arguments)

	logger := builder.resolveLogger()

	contextAccessor := utils.NewCommandContextAccessor()
	if configurationFilePath, configurationFileAvailable := contextAccessor.ConfigurationFilePath(command.Context()); configurationFileAvailable && len(configurationFilePath) > 0 {
		logger.Debug(configurationSourceMessageConstant, zap.String(logFieldConfigurationFileConstant, configurationFilePath))
	}

	repositoryManager, managerError := builder.resolveRepositoryManager(logger)
	if managerError != nil {
		return managerError
	}

	sourceResolver, resolverError := builder.resolveSourceResolver(logger, repositoryManager)
	if resolverError != nil {
		return resolverError
	}

	service, serviceError := NewService(ServiceDependencies{
		Logger:           logger,
		SourceResolver:   sourceResolver,
		BranchDetector:   builder.resolveBranchDetector(repositoryManager),
		ReadmeDiscoverer: builder.resolveReadmeDiscoverer(),
		Output:           utils.NewFlushingWriter(command.OutOrStdout()),
	})
	if serviceError != nil {
		return serviceError
	}

	if runError := service.Run(command.Context(), options); runError != nil {
		return fmt.Errorf(commandExecutionErrorTemplateConstant, runError)
	}

	return nil
}

func (builder *CommandBuilder) parseOptions(command *cobra.Command, arguments []string) InventoryOptions {
	configuration := builder.resolveConfiguration().sanitize()

	branchValue, _ := command.Flags().GetString(flagBranchNameConstant)
	if !command.Flags().Changed(flagBranchNameConstant) && len(configuration.Branch) > 0 {
		branchValue = configuration.Branch
	}

	htmlOutputValue, _ := command.Flags().GetString(flagOutputNameConstant)
	if !command.Flags().Changed(flagOutputNameConstant) {
		htmlOutputValue = configuration.Output
	}

	csvOutputValue, _ := command.Flags().GetString(flagCSVOutputNameConstant)
	if !command.Flags().Changed(flagCSVOutputNameConstant) {
		csvOutputValue = configuration.CSVOutput
	}

	return InventoryOptions{
		SourceLocation: strings.TrimSpace(arguments[0]),
		BranchName:     strings.TrimSpace(branchValue),
		HTMLOutputPath: htmlOutputValue,
		CSVOutputPath:  csvOutputValue,
	}
}

func (builder *CommandBuilder) resolveLogger() *zap.Logger {
	if builder.LoggerProvider == nil {
		return zap.NewNop()
	}
	logger := builder.LoggerProvider()
	if logger == nil {
		return zap.NewNop()
	}
	return logger
}

func (builder *CommandBuilder) resolveConfiguration() CommandConfiguration {
	if builder.ConfigurationProvider == nil {
		return DefaultCommandConfiguration()
	}
	return builder.ConfigurationProvider()
}

func (builder *CommandBuilder) resolveRepositoryManager(logger *zap.Logger) (*gitrepo.RepositoryManager, error) {
	if builder.SourceResolver != nil && builder.BranchDetector != nil {
		return nil, nil
	}

	commandRunner := execshell.NewOSCommandRunner()
	eventObserver := builder.resolveCommandEventObserver(logger)
	shellExecutor, executorError := execshell.NewShellExecutorWithObserver(logger, commandRunner, eventObserver)
	if executorError != nil {
		return nil, executorError
	}

	return gitrepo.NewRepositoryManager(shellExecutor)
}

func (builder *CommandBuilder) resolveCommandEventObserver(logger *zap.Logger) execshell.CommandEventObserver {
	humanReadableLogging := false
	if builder.HumanReadableLoggingProvider != nil {
		humanReadableLogging = builder.HumanReadableLoggingProvider()
	}
	if humanReadableLogging {
		return ui.NewConsoleCommandEventLogger(logger)
	}
	return nil
}

func (builder *CommandBuilder) resolveSourceResolver(logger *zap.Logger, repositoryManager *gitrepo.RepositoryManager) (SourceResolver, error) {
	if builder.SourceResolver != nil {
		return builder.SourceResolver, nil
	}
	return workspace.NewResolver(logger, repositoryManager)
}

func (builder *CommandBuilder) resolveBranchDetector(repositoryManager *gitrepo.RepositoryManager) BranchDetector {
	if builder.BranchDetector != nil {
		return builder.BranchDetector
	}
	return repositoryManager
}

func (builder *CommandBuilder) resolveReadmeDiscoverer() ReadmeDiscoverer {
	if builder.ReadmeDiscoverer != nil {
		return builder.ReadmeDiscoverer
	}
	return NewFilesystemReadmeScanner()
}
