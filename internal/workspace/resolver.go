package workspace

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"github.com/zxq82lm/repo-readme-scanner/internal/execshell"
	"github.com/zxq82lm/repo-readme-scanner/internal/gitrepo"
)

const (
	temporaryDirectoryPatternConstant       = "repo-readme-*"
	clonerNotConfiguredMessageConstant      = "repository cloner not configured"
	temporaryDirectoryErrorTemplateConstant = "unable to create temporary workspace: %w"
	cloningRepositoryMessageConstant        = "cloning repository into temporary workspace"
	logFieldRemoteURLConstant               = "remote_url"
	logFieldWorkspaceRootConstant           = "workspace_root"
)

// ErrClonerNotConfigured indicates the resolver was constructed without a cloner.
var ErrClonerNotConfigured = errors.New(clonerNotConfiguredMessageConstant)

// RepositoryCloner performs shallow clones into prepared directories.
type RepositoryCloner interface {
	CloneShallow(executionContext context.Context, remoteURL string, branchName string, destinationPath string) error
}

// Workspace is the resolved scanning root. Temporary workspaces own a cloned
// checkout that Cleanup removes; local workspaces leave the directory untouched.
type Workspace struct {
	Root      string
	Temporary bool
}

// Cleanup removes the temporary clone directory. Removal is best-effort and
// never surfaces an error so it cannot mask the primary outcome of a run.
func (workspace Workspace) Cleanup() {
	if !workspace.Temporary || len(workspace.Root) == 0 {
		return
	}
	_ = os.RemoveAll(workspace.Root)
}

// Resolver turns a source location into a Workspace.
type Resolver struct {
	logger *zap.Logger
	cloner RepositoryCloner
}

// NewResolver constructs a Resolver using the provided cloner.
func NewResolver(logger *zap.Logger, cloner RepositoryCloner) (*Resolver, error) {
	if cloner == nil {
		return nil, ErrClonerNotConfigured
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Resolver{logger: logger, cloner: cloner}, nil
}

// Resolve classifies the location as remote or local and produces the workspace to scan.
// Remote locations are shallow cloned into a fresh temporary directory; local locations
// must name an existing directory.
func (resolver *Resolver) Resolve(executionContext context.Context, location string, branchName string) (Workspace, error) {
	if gitrepo.IsRemoteSource(location) {
		return resolver.resolveRemote(executionContext, location, branchName)
	}
	return resolver.resolveLocal(location)
}

func (resolver *Resolver) resolveRemote(executionContext context.Context, location string, branchName string) (Workspace, error) {
	cloneURL := gitrepo.NormalizeCloneURL(location)

	temporaryDirectory, temporaryDirectoryError := os.MkdirTemp("", temporaryDirectoryPatternConstant)
	if temporaryDirectoryError != nil {
		return Workspace{}, fmt.Errorf(temporaryDirectoryErrorTemplateConstant, temporaryDirectoryError)
	}

	resolver.logger.Info(
		cloningRepositoryMessageConstant,
		zap.String(logFieldRemoteURLConstant, cloneURL),
		zap.String(logFieldWorkspaceRootConstant, temporaryDirectory),
	)

	cloneError := resolver.cloner.CloneShallow(executionContext, cloneURL, branchName, temporaryDirectory)
	if cloneError != nil {
		_ = os.RemoveAll(temporaryDirectory)
		return Workspace{}, CloneFailedError{
			RemoteURL:   cloneURL,
			Diagnostics: extractCloneDiagnostics(cloneError),
			Cause:       cloneError,
		}
	}

	return Workspace{Root: temporaryDirectory, Temporary: true}, nil
}

func (resolver *Resolver) resolveLocal(location string) (Workspace, error) {
	absolutePath, absoluteError := filepath.Abs(strings.TrimSpace(location))
	if absoluteError != nil {
		return Workspace{}, PathNotFoundError{Path: location}
	}

	pathInformation, statError := os.Stat(absolutePath)
	if statError != nil || !pathInformation.IsDir() {
		return Workspace{}, PathNotFoundError{Path: absolutePath}
	}

	return Workspace{Root: absolutePath}, nil
}

func extractCloneDiagnostics(cloneError error) string {
	var failedError execshell.CommandFailedError
	if errors.As(cloneError, &failedError) {
		return strings.TrimSpace(failedError.Result.StandardError)
	}
	return ""
}
