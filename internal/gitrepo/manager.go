package gitrepo

import (
	"context"
	"errors"
	"strings"

	"github.com/zxq82lm/repo-readme-scanner/internal/execshell"
)

const (
	gitCloneSubcommandConstant       = "clone"
	gitDepthFlagConstant             = "--depth"
	gitShallowDepthValueConstant     = "1"
	gitBranchFlagConstant            = "--branch"
	gitSymbolicRefSubcommandConstant = "symbolic-ref"
	gitShortFlagConstant             = "--short"
	gitRevParseSubcommandConstant    = "rev-parse"
	gitAbbrevRefFlagConstant         = "--abbrev-ref"
	gitHeadReferenceConstant         = "HEAD"
	executorNotConfiguredMessage     = "git executor not configured"
)

// ErrExecutorNotConfigured indicates the repository manager was constructed without an executor.
var ErrExecutorNotConfigured = errors.New(executorNotConfiguredMessage)

// GitExecutor exposes the subset of shell execution required by the repository manager.
type GitExecutor interface {
	ExecuteGit(executionContext context.Context, details execshell.CommandDetails) (execshell.ExecutionResult, error)
}

// RepositoryManager performs repository-level git operations through an executor.
type RepositoryManager struct {
	executor GitExecutor
}

// NewRepositoryManager constructs a RepositoryManager using the provided executor.
func NewRepositoryManager(executor GitExecutor) (*RepositoryManager, error) {
	if executor == nil {
		return nil, ErrExecutorNotConfigured
	}
	return &RepositoryManager{executor: executor}, nil
}

// CloneShallow clones the latest commit of the remote repository into the destination directory,
// optionally constrained to the named branch or tag.
func (manager *RepositoryManager) CloneShallow(executionContext context.Context, remoteURL string, branchName string, destinationPath string) error {
	cloneArguments := []string{gitCloneSubcommandConstant, gitDepthFlagConstant, gitShallowDepthValueConstant}
	trimmedBranchName := strings.TrimSpace(branchName)
	if len(trimmedBranchName) > 0 {
		cloneArguments = append(cloneArguments, gitBranchFlagConstant, trimmedBranchName)
	}
	cloneArguments = append(cloneArguments, remoteURL, destinationPath)

	_, executionError := manager.executor.ExecuteGit(executionContext, execshell.CommandDetails{Arguments: cloneArguments})
	return executionError
}

// GetCurrentBranch determines the branch currently checked out at the repository path.
// It prefers the symbolic-ref query and falls back to rev-parse; an empty result means
// detection failed or the repository is in a detached HEAD state.
func (manager *RepositoryManager) GetCurrentBranch(executionContext context.Context, repositoryPath string) (string, error) {
	branchQueries := [][]string{
		{gitSymbolicRefSubcommandConstant, gitShortFlagConstant, gitHeadReferenceConstant},
		{gitRevParseSubcommandConstant, gitAbbrevRefFlagConstant, gitHeadReferenceConstant},
	}

	for _, queryArguments := range branchQueries {
		queryDetails := execshell.CommandDetails{Arguments: queryArguments, WorkingDirectory: repositoryPath}
		executionResult, executionError := manager.executor.ExecuteGit(executionContext, queryDetails)
		if executionError != nil {
			continue
		}

		trimmedBranchName := strings.TrimSpace(executionResult.StandardOutput)
		if len(trimmedBranchName) == 0 || strings.EqualFold(trimmedBranchName, gitHeadReferenceConstant) {
			continue
		}
		return trimmedBranchName, nil
	}

	return "", nil
}
