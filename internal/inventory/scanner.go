package inventory

import (
	"io/fs"
	"path/filepath"
	"strings"
)

const (
	readmeFileNameConstant        = "readme.md"
	rootProjectNameConstant       = "."
	relativePathSeparatorConstant = "/"
)

// FilesystemReadmeScanner discovers README.md files by walking the directory
// tree. The file name match is case-insensitive on the full name, so
// Readme.md and README.MD qualify while README.rst does not. Unreadable
// directories and files are skipped rather than failing the scan.
type FilesystemReadmeScanner struct{}

// NewFilesystemReadmeScanner constructs a filesystem-backed scanner.
func NewFilesystemReadmeScanner() *FilesystemReadmeScanner {
	return &FilesystemReadmeScanner{}
}

// DiscoverReadmeFiles walks the root and returns one entry per README found.
// The returned order is the walk order; callers sort separately.
func (scanner *FilesystemReadmeScanner) DiscoverReadmeFiles(rootPath string) ([]ReadmeEntry, error) {
	entries := []ReadmeEntry{}

	walkError := filepath.WalkDir(rootPath, func(currentPath string, directoryEntry fs.DirEntry, visitError error) error {
		if visitError != nil {
			return nil
		}
		if directoryEntry.IsDir() {
			return nil
		}
		if !strings.EqualFold(directoryEntry.Name(), readmeFileNameConstant) {
			return nil
		}

		entry, entryBuilt := buildReadmeEntry(rootPath, currentPath, directoryEntry)
		if entryBuilt {
			entries = append(entries, entry)
		}
		return nil
	})
	if walkError != nil {
		return nil, walkError
	}

	return entries, nil
}

func buildReadmeEntry(rootPath string, readmePath string, directoryEntry fs.DirEntry) (ReadmeEntry, bool) {
	relativePath, relativeError := filepath.Rel(rootPath, readmePath)
	if relativeError != nil {
		return ReadmeEntry{}, false
	}
	relativePath = filepath.ToSlash(relativePath)

	fileInformation, informationError := directoryEntry.Info()
	if informationError != nil {
		return ReadmeEntry{}, false
	}

	atRoot := strings.EqualFold(relativePath, readmeFileNameConstant)

	projectName := rootProjectNameConstant
	depth := 0
	if !atRoot {
		depth = strings.Count(relativePath, relativePathSeparatorConstant)
		parentName := filepath.Base(filepath.Dir(readmePath))
		if len(parentName) > 0 && parentName != string(filepath.Separator) {
			projectName = parentName
		}
	}

	return ReadmeEntry{
		Project:      projectName,
		RelativePath: relativePath,
		AbsolutePath: readmePath,
		SizeBytes:    fileInformation.Size(),
		Depth:        depth,
	}, true
}
