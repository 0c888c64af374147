package cli_test

import (
	"bytes"
	"testing"

	mapstructure "github.com/go-viper/mapstructure/v2"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/require"

	"github.com/zxq82lm/repo-readme-scanner/cmd/cli"
	"github.com/zxq82lm/repo-readme-scanner/internal/inventory"
)

const (
	testInventoryCommandNameConstant = "inventory"
	testConfigurationTypeConstant    = "yaml"
	testDefaultHTMLOutputConstant    = "readme_inventory.html"
	testDefaultCSVOutputConstant     = "readme_inventory.csv"
)

func TestNewApplicationRegistersInventoryCommand(testInstance *testing.T) {
	application := cli.NewApplication()
	rootCommand := application.RootCommand()
	require.NotNil(testInstance, rootCommand)

	commandNames := make([]string, 0, len(rootCommand.Commands()))
	for _, registeredCommand := range rootCommand.Commands() {
		commandNames = append(commandNames, registeredCommand.Name())
	}
	require.Contains(testInstance, commandNames, testInventoryCommandNameConstant)
}

func TestRootCommandDeclaresPersistentFlags(testInstance *testing.T) {
	rootCommand := cli.NewApplication().RootCommand()

	for _, flagName := range []string{"config", "log-level", "log-format"} {
		require.NotNil(testInstance, rootCommand.PersistentFlags().Lookup(flagName), flagName)
	}
}

func decodeEmbeddedApplicationConfiguration(testingInstance testing.TB) cli.ApplicationConfiguration {
	testingInstance.Helper()

	viperInstance := viper.New()
	viperInstance.SetConfigType(testConfigurationTypeConstant)

	readError := viperInstance.ReadConfig(bytes.NewReader(cli.EmbeddedDefaultConfiguration()))
	require.NoError(testingInstance, readError)

	var configuration cli.ApplicationConfiguration
	require.NoError(testingInstance, viperInstance.Unmarshal(&configuration))
	return configuration
}

func TestEmbeddedDefaultsProvideInventoryConfiguration(testInstance *testing.T) {
	configuration := decodeEmbeddedApplicationConfiguration(testInstance)

	require.Equal(testInstance, "info", configuration.Common.LogLevel)
	require.Equal(testInstance, "structured", configuration.Common.LogFormat)
	require.Equal(testInstance, "", configuration.Tools.Inventory.Branch)
	require.Equal(testInstance, testDefaultHTMLOutputConstant, configuration.Tools.Inventory.Output)
	require.Equal(testInstance, testDefaultCSVOutputConstant, configuration.Tools.Inventory.CSVOutput)
}

func TestInventoryConfigurationDecodesFromOptionMap(testInstance *testing.T) {
	options := map[string]any{
		"branch":     "release",
		"output":     "custom.html",
		"csv_output": "custom.csv",
	}

	var configuration inventory.CommandConfiguration
	decoder, decoderError := mapstructure.NewDecoder(&mapstructure.DecoderConfig{TagName: "mapstructure", Result: &configuration})
	require.NoError(testInstance, decoderError)
	require.NoError(testInstance, decoder.Decode(options))

	require.Equal(testInstance, "release", configuration.Branch)
	require.Equal(testInstance, "custom.html", configuration.Output)
	require.Equal(testInstance, "custom.csv", configuration.CSVOutput)
}

func TestDefaultConfigurationValuesCoverEveryInventoryKey(testInstance *testing.T) {
	defaults := inventory.DefaultConfigurationValues("tools.inventory")

	require.Equal(testInstance, "", defaults["tools.inventory.branch"])
	require.Equal(testInstance, testDefaultHTMLOutputConstant, defaults["tools.inventory.output"])
	require.Equal(testInstance, testDefaultCSVOutputConstant, defaults["tools.inventory.csv_output"])
}
