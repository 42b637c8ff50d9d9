package conf

import (
	"bytes"
	"fmt"
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"gopkg.in/alecthomas/kingpin.v2"
)

// EnvPrefix is prepended to upper-cased flag names to build environment variable names.
const EnvPrefix = "PLOT2D"

var (
	app = kingpin.New("plot2d", "No help available")
	// Default flags and values.
	logLevelFlag = NewStringFlag(
		"log",
		"Log level: debug, info, warn, error, fatal, panic",
		"error", // Default Error log level.
	)
	isEnvParsed = false
)

// SetHelp sets the help message for the CLI.
// We need to expose this function so other packages can set the app help.
func SetHelp(help string) {
	app.Help = help
}

// SetAppName sets application name for CLI output.
func SetAppName(name string) {
	app.Name = name
}

// Command registers a sub-command on the application.
func Command(name, help string) *kingpin.CmdClause {
	return app.Command(name, help)
}

// LogLevel returns configured logLevel from input option or env variable.
// If it cannot parse the log level, it returns default value.
func LogLevel() logrus.Level {
	level, err := logrus.ParseLevel(logLevelFlag.Value())
	if err == nil {
		return level
	}

	level, err = logrus.ParseLevel(logLevelFlag.defaultValue)
	if err == nil {
		return level
	}

	// Programmer error.
	panic(errors.Wrap(err, "parsing log level failed"))
}

// ParseFlags parses the command line of the process together with environment
// variables and returns the selected command.
func ParseFlags() (string, error) {
	return Parse(os.Args[1:])
}

// Parse parses given arguments together with environment variables and returns
// the selected command (empty when no commands are registered).
func Parse(args []string) (string, error) {
	if commandMissing(args) {
		return "", errors.Errorf("command not specified, see %q", app.Name+" --help")
	}

	command, err := app.Parse(args)
	if err != nil {
		return "", errors.Wrapf(err, "could not parse command line flags")
	}

	isEnvParsed = true
	return command, nil
}

// commandMissing reports whether commands are registered but args select none.
// Kingpin prints usage and exits with success in that case.
func commandMissing(args []string) bool {
	if len(app.Model().Commands) == 0 {
		return false
	}

	context, err := app.ParseContext(args)
	if err != nil || context.SelectedCommand != nil {
		return false
	}
	for _, element := range context.Elements {
		if flag, ok := element.Clause.(*kingpin.FlagClause); ok && strings.HasPrefix(flag.Model().Name, "help") {
			return false
		}
	}
	return true
}

// DumpConfig dumps environment based configuration with current values of flags.
// Includes "allexport" directives for bash.
func DumpConfig() string {
	buffer := &bytes.Buffer{}

	buffer.WriteString("# Export are values.\n")
	buffer.WriteString("set -o allexport\n")

	// Order is important because it logically groups flags.
	for _, name := range flagOrder {
		flag := definedFlags[name]

		fmt.Fprintf(buffer, "\n# %s\n", flag.help())
		if def := flag.defaultString(); def != "" {
			fmt.Fprintf(buffer, "# Default: %s\n", def)
		}
		fmt.Fprintf(buffer, "%s=%v\n", flag.envName(), flag.valueString())
	}

	buffer.WriteString("set +o allexport")
	return buffer.String()
}

// GetFlags returns flags as map with current values.
func GetFlags() map[string]string {
	flagsMap := map[string]string{}
	for name, flag := range definedFlags {
		flagsMap[name] = flag.valueString()
	}
	return flagsMap
}

func envName(flagName string) string {
	return fmt.Sprintf("%s_%s", EnvPrefix, strings.ToUpper(flagName))
}
