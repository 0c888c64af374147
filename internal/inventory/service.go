package inventory

import (
	"context"
	"errors"
	"fmt"
	"io"

	"go.uber.org/zap"

	"github.com/zxq82lm/repo-readme-scanner/internal/report"
)

const (
	reportTitleConstant                   = "README Inventory"
	fallbackBranchNameConstant            = "main"
	summaryMessageTemplateConstant        = "Wrote %d entries to %s and %s\n"
	inventoryCompletedMessageConstant     = "readme inventory completed"
	branchDetectionSkippedMessageConstant = "branch detection yielded no branch, using fallback"
	logFieldEntryCountConstant            = "entry_count"
	logFieldBranchNameConstant            = "branch_name"
	logFieldHTMLOutputConstant            = "html_output"
	logFieldCSVOutputConstant             = "csv_output"
	logFieldWorkspaceRootConstant         = "workspace_root"
	resolverNotConfiguredMessageConstant  = "source resolver not configured"
	detectorNotConfiguredMessageConstant  = "branch detector not configured"
	scannerNotConfiguredMessageConstant   = "readme discoverer not configured"
)

// Sentinel errors for missing service dependencies.
var (
	ErrSourceResolverNotConfigured   = errors.New(resolverNotConfiguredMessageConstant)
	ErrBranchDetectorNotConfigured   = errors.New(detectorNotConfiguredMessageConstant)
	ErrReadmeDiscovererNotConfigured = errors.New(scannerNotConfiguredMessageConstant)
)

// ServiceDependencies enumerates the collaborators an inventory run needs.
type ServiceDependencies struct {
	Logger           *zap.Logger
	SourceResolver   SourceResolver
	BranchDetector   BranchDetector
	ReadmeDiscoverer ReadmeDiscoverer
	Output           io.Writer
}

// InventoryOptions carries the per-run parameters.
type InventoryOptions struct {
	SourceLocation string
	BranchName     string
	HTMLOutputPath string
	CSVOutputPath  string
}

// Service orchestrates a complete inventory run.
type Service struct {
	logger           *zap.Logger
	sourceResolver   SourceResolver
	branchDetector   BranchDetector
	readmeDiscoverer ReadmeDiscoverer
	output           io.Writer
}

// NewService validates the dependencies and constructs a Service.
func NewService(dependencies ServiceDependencies) (*Service, error) {
	if dependencies.SourceResolver == nil {
		return nil, ErrSourceResolverNotConfigured
	}
	if dependencies.BranchDetector == nil {
		return nil, ErrBranchDetectorNotConfigured
	}
	if dependencies.ReadmeDiscoverer == nil {
		return nil, ErrReadmeDiscovererNotConfigured
	}

	logger := dependencies.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	output := dependencies.Output
	if output == nil {
		output = io.Discard
	}

	return &Service{
		logger:           logger,
		sourceResolver:   dependencies.SourceResolver,
		branchDetector:   dependencies.BranchDetector,
		readmeDiscoverer: dependencies.ReadmeDiscoverer,
		output:           output,
	}, nil
}

// Run resolves the source, collects README entries, and writes both reports.
// Temporary clones are removed on every exit path once the resolve succeeded.
func (service *Service) Run(executionContext context.Context, options InventoryOptions) error {
	resolvedWorkspace, resolveError := service.sourceResolver.Resolve(executionContext, options.SourceLocation, options.BranchName)
	if resolveError != nil {
		return resolveError
	}
	defer resolvedWorkspace.Cleanup()

	branchName := service.resolveBranchName(executionContext, options.BranchName, resolvedWorkspace.Root)

	entries, scanError := service.readmeDiscoverer.DiscoverReadmeFiles(resolvedWorkspace.Root)
	if scanError != nil {
		return scanError
	}
	SortEntries(entries)

	linkBuilder := report.NewLinkBuilder(options.SourceLocation, branchName)
	rows := make([]report.Row, 0, len(entries))
	for _, entry := range entries {
		rows = append(rows, report.Row{
			Project:      entry.Project,
			RelativePath: entry.RelativePath,
			Link:         linkBuilder.BuildLink(entry.RelativePath, entry.AbsolutePath),
			SizeBytes:    entry.SizeBytes,
		})
	}

	htmlDocument := report.HTMLReport{
		Title:          reportTitleConstant,
		SourceLocation: options.SourceLocation,
		Rows:           rows,
	}
	if htmlError := report.WriteHTMLFile(options.HTMLOutputPath, htmlDocument); htmlError != nil {
		return htmlError
	}
	if csvError := report.WriteCSVFile(options.CSVOutputPath, rows); csvError != nil {
		return csvError
	}

	fmt.Fprintf(service.output, summaryMessageTemplateConstant, len(entries), options.HTMLOutputPath, options.CSVOutputPath)

	service.logger.Info(
		inventoryCompletedMessageConstant,
		zap.Int(logFieldEntryCountConstant, len(entries)),
		zap.String(logFieldBranchNameConstant, branchName),
		zap.String(logFieldHTMLOutputConstant, options.HTMLOutputPath),
		zap.String(logFieldCSVOutputConstant, options.CSVOutputPath),
	)

	return nil
}

// resolveBranchName keeps an explicitly requested branch, otherwise asks the
// detector and falls back to "main" when no branch can be determined.
func (service *Service) resolveBranchName(executionContext context.Context, requestedBranch string, workspaceRoot string) string {
	if len(requestedBranch) > 0 {
		return requestedBranch
	}

	detectedBranch, detectionError := service.branchDetector.GetCurrentBranch(executionContext, workspaceRoot)
	if detectionError == nil && len(detectedBranch) > 0 {
		return detectedBranch
	}

	service.logger.Debug(
		branchDetectionSkippedMessageConstant,
		zap.String(logFieldWorkspaceRootConstant, workspaceRoot),
		zap.String(logFieldBranchNameConstant, fallbackBranchNameConstant),
	)
	return fallbackBranchNameConstant
}
