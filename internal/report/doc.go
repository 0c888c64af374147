// Package report renders the collected inventory into its output formats and
// builds the per-entry links the formats share: hosted blob URLs for recognized
// remote sources and file URLs for everything else.
package report
