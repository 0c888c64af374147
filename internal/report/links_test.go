package report_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/zxq82lm/repo-readme-scanner/internal/report"
)

func TestLinkBuilderBuildLink(testInstance *testing.T) {
	testCases := []struct {
		name           string
		sourceLocation string
		branchName     string
		relativePath   string
		absolutePath   string
		expectedLink   string
	}{
		{
			name:           "github_https_source",
			sourceLocation: "https://github.com/acme/widgets",
			branchName:     "develop",
			relativePath:   "services/billing/README.md",
			absolutePath:   "/tmp/repo-readme-123/services/billing/README.md",
			expectedLink:   "https://github.com/acme/widgets/blob/develop/services/billing/README.md",
		},
		{
			name:           "branch_defaults_to_main",
			sourceLocation: "https://github.com/acme/widgets.git",
			branchName:     "",
			relativePath:   "README.md",
			absolutePath:   "/tmp/repo-readme-123/README.md",
			expectedLink:   "https://github.com/acme/widgets/blob/main/README.md",
		},
		{
			name:           "scp_style_source",
			sourceLocation: "git@gitlab.com:acme/widgets.git",
			branchName:     "main",
			relativePath:   "docs/README.md",
			absolutePath:   "/tmp/repo-readme-123/docs/README.md",
			expectedLink:   "https://gitlab.com/acme/widgets/blob/main/docs/README.md",
		},
		{
			name:           "path_segments_are_escaped",
			sourceLocation: "https://github.com/acme/widgets",
			branchName:     "main",
			relativePath:   "docs/release notes/README.md",
			absolutePath:   "/tmp/repo-readme-123/docs/release notes/README.md",
			expectedLink:   "https://github.com/acme/widgets/blob/main/docs/release%20notes/README.md",
		},
		{
			name:           "local_source_uses_file_url",
			sourceLocation: "/data/projects/widgets",
			branchName:     "main",
			relativePath:   "README.md",
			absolutePath:   "/data/projects/widgets/README.md",
			expectedLink:   "file:///data/projects/widgets/README.md",
		},
		{
			name:           "local_source_escapes_spaces",
			sourceLocation: "/data/projects/widget factory",
			branchName:     "",
			relativePath:   "README.md",
			absolutePath:   "/data/projects/widget factory/README.md",
			expectedLink:   "file:///data/projects/widget%20factory/README.md",
		},
		{
			name:           "unrecognized_remote_falls_back_to_file_url",
			sourceLocation: "https://example.com/widgets",
			branchName:     "main",
			relativePath:   "README.md",
			absolutePath:   "/tmp/repo-readme-123/README.md",
			expectedLink:   "file:///tmp/repo-readme-123/README.md",
		},
	}

	for _, testCase := range testCases {
		testInstance.Run(testCase.name, func(testInstance *testing.T) {
			builder := report.NewLinkBuilder(testCase.sourceLocation, testCase.branchName)
			require.Equal(testInstance, testCase.expectedLink, builder.BuildLink(testCase.relativePath, testCase.absolutePath))
		})
	}
}

func TestLinkBuilderIsPure(testInstance *testing.T) {
	builder := report.NewLinkBuilder("https://github.com/acme/widgets", "main")
	firstLink := builder.BuildLink("README.md", "/tmp/checkout/README.md")
	secondLink := builder.BuildLink("README.md", "/tmp/checkout/README.md")
	require.Equal(testInstance, firstLink, secondLink)
}
