package utils

import "context"

type configurationFilePathContextKey struct{}

// CommandContextAccessor reads and writes the values the CLI threads through
// cobra command contexts. Currently that is only the resolved configuration
// file path, which subcommands log so runs can be traced back to their
// configuration source.
type CommandContextAccessor struct{}

// NewCommandContextAccessor constructs a CommandContextAccessor instance.
func NewCommandContextAccessor() CommandContextAccessor {
	return CommandContextAccessor{}
}

// WithConfigurationFilePath returns a child context carrying the configuration file path.
func (accessor CommandContextAccessor) WithConfigurationFilePath(parentContext context.Context, configurationFilePath string) context.Context {
	if parentContext == nil {
		parentContext = context.Background()
	}
	return context.WithValue(parentContext, configurationFilePathContextKey{}, configurationFilePath)
}

// ConfigurationFilePath reports the configuration file path stored in the
// context, if any was attached.
func (accessor CommandContextAccessor) ConfigurationFilePath(executionContext context.Context) (string, bool) {
	if executionContext == nil {
		return "", false
	}
	configurationFilePath, configurationFilePathAvailable := executionContext.Value(configurationFilePathContextKey{}).(string)
	return configurationFilePath, configurationFilePathAvailable
}
