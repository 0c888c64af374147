package report

import (
	"fmt"
	"net/url"
	"path/filepath"
	"strings"

	"github.com/zxq82lm/repo-readme-scanner/internal/gitrepo"
)

const (
	fallbackBranchNameConstant = "main"
	blobURLTemplateConstant    = "https://%s/%s/%s/blob/%s/%s"
	fileURLPrefixConstant      = "file://"
	pathSeparatorConstant      = "/"
)

// Row is one rendered inventory line shared by every output format.
type Row struct {
	Project      string
	RelativePath string
	Link         string
	SizeBytes    int64
}

// LinkBuilder produces the clickable location of a README. The source location
// is parsed once at construction; building links afterwards is pure.
type LinkBuilder struct {
	hostingLocation gitrepo.HostingLocation
	hostingKnown    bool
	branchName      string
}

// NewLinkBuilder prepares a builder for the given source location and branch.
// An empty branch falls back to "main".
func NewLinkBuilder(sourceLocation string, branchName string) LinkBuilder {
	builder := LinkBuilder{branchName: branchName}
	if len(builder.branchName) == 0 {
		builder.branchName = fallbackBranchNameConstant
	}
	if gitrepo.IsRemoteSource(sourceLocation) {
		builder.hostingLocation, builder.hostingKnown = gitrepo.ParseHostingLocation(sourceLocation)
	}
	return builder
}

// BuildLink returns a hosted blob URL when the source was recognized as a
// hosting provider and a file URL over the absolute path otherwise.
func (builder LinkBuilder) BuildLink(relativePath string, absolutePath string) string {
	if builder.hostingKnown {
		return fmt.Sprintf(
			blobURLTemplateConstant,
			builder.hostingLocation.Host,
			builder.hostingLocation.Owner,
			builder.hostingLocation.Repository,
			builder.branchName,
			encodePathSegments(relativePath),
		)
	}
	return fileURLPrefixConstant + encodePathSegments(absolutePath)
}

// encodePathSegments percent-encodes every path segment while keeping the
// separators intact, mirroring how hosting providers expect blob paths.
func encodePathSegments(path string) string {
	segments := strings.Split(filepath.ToSlash(path), pathSeparatorConstant)
	for segmentIndex, segment := range segments {
		segments[segmentIndex] = url.PathEscape(segment)
	}
	return strings.Join(segments, pathSeparatorConstant)
}
