package inventory

import (
	"context"

	"github.com/zxq82lm/repo-readme-scanner/internal/workspace"
)

// ReadmeEntry describes one discovered README.md file.
type ReadmeEntry struct {
	// Project is the name of the directory containing the README, or "." for
	// a README at the repository root.
	Project string
	// RelativePath is the slash-separated path of the README below the root.
	RelativePath string
	// AbsolutePath is the filesystem location of the README.
	AbsolutePath string
	// SizeBytes is the file size reported by the filesystem.
	SizeBytes int64
	// Depth counts the directory levels below the root, zero for the root README.
	Depth int
}

// SourceResolver turns a source location into a scannable workspace.
type SourceResolver interface {
	Resolve(executionContext context.Context, location string, branchName string) (workspace.Workspace, error)
}

// BranchDetector reports the branch currently checked out at a repository path.
type BranchDetector interface {
	GetCurrentBranch(executionContext context.Context, repositoryPath string) (string, error)
}

// ReadmeDiscoverer walks a directory tree and collects README entries.
type ReadmeDiscoverer interface {
	DiscoverReadmeFiles(rootPath string) ([]ReadmeEntry, error)
}
