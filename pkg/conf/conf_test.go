package conf

import (
	"os"
	"testing"

	"github.com/sirupsen/logrus"
	. "github.com/smartystreets/goconvey/convey"
)

const testAppName = "testAppName"

var customFlag = NewStringFlag("custom_arg", "help", "default")

// parseEnv parses environment only, as no command line arguments are given.
func parseEnv() error {
	_, err := Parse([]string{})
	return err
}

func clearEnv() {
	// Clear all environment variables in context of that test.
	logLevelFlag.clear()
	customFlag.clear()
	OutputDir.clear()
}

func TestConf(t *testing.T) {
	Convey("While using Conf pkg", t, func() {
		clearEnv()
		defer clearEnv()

		SetAppName(testAppName)
		SetHelp("test help")

		Convey("Name and help should match to specified one", func() {
			So(app.Name, ShouldEqual, testAppName)
			So(app.Help, ShouldEqual, "test help")
		})

		Convey("Log level can be fetched from env", func() {
			os.Setenv(logLevelFlag.envName(), "debug")

			err := parseEnv()
			So(err, ShouldBeNil)

			// Should be from environment.
			So(LogLevel(), ShouldEqual, logrus.DebugLevel)
		})

		Convey("Unparsable log level falls back to default", func() {
			os.Setenv(logLevelFlag.envName(), "loud")

			err := parseEnv()
			So(err, ShouldBeNil)
			So(LogLevel(), ShouldEqual, logrus.ErrorLevel)
		})

		Convey("When some custom argument is defined", func() {
			Convey("When we not defined any environment variable we should have default value after parse", func() {
				err := parseEnv()
				So(err, ShouldBeNil)
				So(customFlag.Value(), ShouldEqual, customFlag.defaultValue)
			})

			Convey("When we define custom environment variable we should have custom value after parse", func() {
				customValue := "customContent"
				os.Setenv(customFlag.envName(), customValue)

				err := parseEnv()
				So(err, ShouldBeNil)
				So(customFlag.Value(), ShouldEqual, customValue)
			})

			Convey("Command line should win over environment", func() {
				os.Setenv(customFlag.envName(), "fromEnv")

				command, err := Parse([]string{"--custom_arg=fromArgs"})
				So(err, ShouldBeNil)
				So(command, ShouldBeEmpty)
				So(customFlag.Value(), ShouldEqual, "fromArgs")
			})
		})

		Convey("Unknown flags are reported", func() {
			_, err := Parse([]string{"--no_such_flag=1"})
			So(err, ShouldNotBeNil)
			So(err.Error(), ShouldContainSubstring, "could not parse command line flags")
		})

		Convey("Config dump should contain every registered flag", func() {
			os.Setenv(OutputDir.envName(), "/tmp/figures")
			So(parseEnv(), ShouldBeNil)

			dump := DumpConfig()
			So(dump, ShouldStartWith, "# Export are values.\nset -o allexport\n")
			So(dump, ShouldEndWith, "set +o allexport")
			So(dump, ShouldContainSubstring, "PLOT2D_OUTPUT_DIR=/tmp/figures\n")
			So(dump, ShouldContainSubstring, "# Default: 6.4in\nPLOT2D_WIDTH=6.4in\n")
			So(dump, ShouldContainSubstring, "PLOT2D_Y_TICKS=15\n")
			So(dump, ShouldContainSubstring, "PLOT2D_GRID=true\n")
		})

		Convey("GetFlags returns current values", func() {
			So(parseEnv(), ShouldBeNil)
			flags := GetFlags()
			So(flags["legend"], ShouldEqual, "upper left")
			So(flags["x_column"], ShouldEqual, "0")
			So(flags["y_column"], ShouldEqual, "1")
		})
	})
}
