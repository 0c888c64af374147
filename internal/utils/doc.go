// Package utils hosts shared infrastructure for the readme-scanner CLI:
// the Viper-backed configuration loader, the zap logger factory, command
// context helpers, and writer utilities.
package utils
