// Package workspace resolves a user-supplied source location into a scanning
// root, cloning remote repositories into temporary directories and guaranteeing
// their removal through the returned workspace handle.
package workspace
