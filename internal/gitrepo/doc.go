// Package gitrepo provides repository-level git operations and parsing of
// hosted repository locations used for link construction.
package gitrepo
