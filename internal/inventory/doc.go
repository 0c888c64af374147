// Package inventory discovers README.md files beneath a resolved repository
// root and orchestrates the end-to-end run: resolve the source, detect the
// branch, scan, sort, and emit the HTML and CSV reports.
package inventory
