package gitrepo

import (
	"net/url"
	"strings"
)

const (
	httpProtocolPrefixConstant  = "http://"
	httpsProtocolPrefixConstant = "https://"
	sshProtocolPrefixConstant   = "ssh://"
	gitUserPrefixConstant       = "git@"
	gitSuffixConstant           = ".git"
	pathSeparatorConstant       = "/"
	sshPathDelimiterConstant    = ":"
	sshUserDelimiterConstant    = "@"
)

// HostingLocation identifies a repository hosted on a web code-hosting service.
type HostingLocation struct {
	Host       string
	Owner      string
	Repository string
}

// IsRemoteSource reports whether the location denotes a remote repository rather than a local path.
func IsRemoteSource(location string) bool {
	trimmedLocation := strings.TrimSpace(location)
	if len(trimmedLocation) == 0 {
		return false
	}

	switch {
	case strings.HasPrefix(trimmedLocation, httpProtocolPrefixConstant):
		return true
	case strings.HasPrefix(trimmedLocation, httpsProtocolPrefixConstant):
		return true
	case strings.HasPrefix(trimmedLocation, sshProtocolPrefixConstant):
		return true
	case strings.HasPrefix(trimmedLocation, gitUserPrefixConstant):
		return true
	default:
		return strings.HasSuffix(trimmedLocation, gitSuffixConstant)
	}
}

// NormalizeCloneURL strips trailing slashes and guarantees the version-control suffix clone targets expect.
func NormalizeCloneURL(location string) string {
	trimmedLocation := strings.TrimRight(strings.TrimSpace(location), pathSeparatorConstant)
	if strings.HasSuffix(trimmedLocation, gitSuffixConstant) {
		return trimmedLocation
	}
	return trimmedLocation + gitSuffixConstant
}

// ParseHostingLocation converts a textual source location into a structured hosting location.
// The boolean result reports whether the location identifies a hosted repository with an owner
// and repository name; local paths and malformed URLs are unrecognized.
func ParseHostingLocation(location string) (HostingLocation, bool) {
	trimmedLocation := strings.TrimSpace(location)
	if len(trimmedLocation) == 0 {
		return HostingLocation{}, false
	}

	switch {
	case strings.HasPrefix(trimmedLocation, httpProtocolPrefixConstant), strings.HasPrefix(trimmedLocation, httpsProtocolPrefixConstant):
		return parseWebLocation(trimmedLocation)
	case strings.HasPrefix(trimmedLocation, sshProtocolPrefixConstant):
		return parseSSHLocation(strings.TrimPrefix(trimmedLocation, sshProtocolPrefixConstant))
	case strings.HasPrefix(trimmedLocation, gitUserPrefixConstant):
		return parseSSHLocation(trimmedLocation)
	default:
		return HostingLocation{}, false
	}
}

func parseWebLocation(location string) (HostingLocation, bool) {
	parsedURL, parseError := url.Parse(location)
	if parseError != nil {
		return HostingLocation{}, false
	}
	if len(parsedURL.Host) == 0 {
		return HostingLocation{}, false
	}

	return buildHostingLocation(parsedURL.Host, parsedURL.Path)
}

func parseSSHLocation(location string) (HostingLocation, bool) {
	userSplitIndex := strings.Index(location, sshUserDelimiterConstant)
	if userSplitIndex == -1 {
		return HostingLocation{}, false
	}

	hostAndPath := location[userSplitIndex+1:]
	pathSplitIndex := strings.IndexAny(hostAndPath, sshPathDelimiterConstant+pathSeparatorConstant)
	if pathSplitIndex == -1 {
		return HostingLocation{}, false
	}

	host := hostAndPath[:pathSplitIndex]
	path := hostAndPath[pathSplitIndex+1:]
	return buildHostingLocation(host, path)
}

func buildHostingLocation(host string, path string) (HostingLocation, bool) {
	if len(host) == 0 {
		return HostingLocation{}, false
	}

	pathSegments := make([]string, 0, 2)
	for _, candidateSegment := range strings.Split(path, pathSeparatorConstant) {
		if len(candidateSegment) == 0 {
			continue
		}
		pathSegments = append(pathSegments, candidateSegment)
	}
	if len(pathSegments) < 2 {
		return HostingLocation{}, false
	}

	repository := strings.TrimSuffix(pathSegments[1], gitSuffixConstant)
	if len(repository) == 0 {
		return HostingLocation{}, false
	}

	return HostingLocation{Host: host, Owner: pathSegments[0], Repository: repository}, true
}
