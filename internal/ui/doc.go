// Package ui renders command lifecycle events for human-readable logging.
package ui
