package inventory

import "strings"

const (
	defaultHTMLOutputPathConstant = "readme_inventory.html"
	defaultCSVOutputPathConstant  = "readme_inventory.csv"
	branchConfigurationKeySuffix  = ".branch"
	outputConfigurationKeySuffix  = ".output"
	csvConfigurationKeySuffix     = ".csv_output"
)

// CommandConfiguration captures configuration values for the inventory command.
type CommandConfiguration struct {
	Branch    string `mapstructure:"branch"`
	Output    string `mapstructure:"output"`
	CSVOutput string `mapstructure:"csv_output"`
}

// DefaultCommandConfiguration provides baseline configuration values for the inventory command.
func DefaultCommandConfiguration() CommandConfiguration {
	return CommandConfiguration{
		Branch:    "",
		Output:    defaultHTMLOutputPathConstant,
		CSVOutput: defaultCSVOutputPathConstant,
	}
}

// DefaultConfigurationValues exposes the baseline values keyed under the supplied prefix.
func DefaultConfigurationValues(prefix string) map[string]any {
	defaults := DefaultCommandConfiguration()
	return map[string]any{
		prefix + branchConfigurationKeySuffix: defaults.Branch,
		prefix + outputConfigurationKeySuffix: defaults.Output,
		prefix + csvConfigurationKeySuffix:    defaults.CSVOutput,
	}
}

// sanitize trims configuration values and restores defaults for blank output paths.
func (configuration CommandConfiguration) sanitize() CommandConfiguration {
	sanitized := configuration

	sanitized.Branch = strings.TrimSpace(configuration.Branch)
	sanitized.Output = strings.TrimSpace(configuration.Output)
	if len(sanitized.Output) == 0 {
		sanitized.Output = defaultHTMLOutputPathConstant
	}
	sanitized.CSVOutput = strings.TrimSpace(configuration.CSVOutput)
	if len(sanitized.CSVOutput) == 0 {
		sanitized.CSVOutput = defaultCSVOutputPathConstant
	}

	return sanitized
}
