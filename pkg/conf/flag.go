package conf

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/alecthomas/kingpin.v2"
)

// flagType is an internal interface for all flags.
// Every flag knows its environment variable name, how to clear it, and how to
// describe itself for DumpConfig.
type flagType interface {
	envName() string
	clear()
	help() string
	defaultString() string
	valueString() string
}

// definedFlags stores all the defined flags. It helps to find duplicates when
// defining flag with the same name.
var definedFlags = map[string]flagType{}

// flagOrder keeps registration order for DumpConfig.
var flagOrder []string

func register(name string, flag flagType) {
	definedFlags[name] = flag
	flagOrder = append(flagOrder, name)
	isEnvParsed = false
}

// cliAndEnvFlag represents option's definition from CLI and Environment variable.
type cliAndEnvFlag struct {
	*kingpin.FlagClause
	name        string
	description string
}

func newCliAndEnvFlag(flagName string, description string, defaultValues ...string) *cliAndEnvFlag {
	if definedFlags[flagName] != nil {
		panic("This flag was already defined. Flag definition is lack of duplicate check.")
	}

	c := &cliAndEnvFlag{
		FlagClause:  app.Flag(flagName, description),
		name:        flagName,
		description: description,
	}
	c.OverrideDefaultFromEnvar(c.envName())

	for _, defaultValue := range defaultValues {
		if defaultValue == "" {
			continue
		}
		c.Default(defaultValue)
	}

	return c
}

// envName returns name converted to environment variable name.
// For instance: "output_dir" will be "PLOT2D_OUTPUT_DIR".
func (f *cliAndEnvFlag) envName() string {
	return envName(f.name)
}

// clear unsets the corresponding environment variable.
func (f *cliAndEnvFlag) clear() {
	os.Unsetenv(f.envName())
}

func (f *cliAndEnvFlag) help() string {
	return f.description
}

// StringFlag represents flag with string value.
type StringFlag struct {
	*cliAndEnvFlag
	defaultValue string
	value        *string
}

// NewStringFlag is a constructor of StringFlag struct.
func NewStringFlag(flagName string, description string, defaultValue string) *StringFlag {
	// Check for duplicates and use it if it defines the same type of flag.
	if duplicatedFlag := definedFlags[flagName]; duplicatedFlag != nil {
		flagDef, ok := duplicatedFlag.(*StringFlag)
		if !ok {
			panic("Flag was redefined but with different type. Unify the type.")
		}

		if flagDef.defaultValue != defaultValue {
			panic("Flag was redefined but with different default value. Unify the default.")
		}

		return flagDef
	}

	flagDef := &StringFlag{
		cliAndEnvFlag: newCliAndEnvFlag(flagName, description, defaultValue),
		defaultValue:  defaultValue,
	}
	flagDef.value = flagDef.String()
	register(flagName, flagDef)
	return flagDef
}

// Value returns value of defined flag after parse.
// NOTE: If conf is not parsed it returns default value (!)
func (s StringFlag) Value() string {
	if !isEnvParsed {
		return s.defaultValue
	}

	return *s.value
}

func (s StringFlag) defaultString() string { return s.defaultValue }
func (s StringFlag) valueString() string   { return s.Value() }

// IntFlag represents flag with int value.
type IntFlag struct {
	*cliAndEnvFlag
	defaultValue int
	value        *int
}

// NewIntFlag is a constructor of IntFlag struct.
func NewIntFlag(flagName string, description string, defaultValue int) *IntFlag {
	if duplicatedFlag := definedFlags[flagName]; duplicatedFlag != nil {
		flagDef, ok := duplicatedFlag.(*IntFlag)
		if !ok {
			panic("Flag was redefined but with different type. Unify the type.")
		}

		if flagDef.defaultValue != defaultValue {
			panic("Flag was redefined but with different default value. Unify the default.")
		}

		return flagDef
	}

	flagDef := &IntFlag{
		cliAndEnvFlag: newCliAndEnvFlag(flagName, description, strconv.Itoa(defaultValue)),
		defaultValue:  defaultValue,
	}
	flagDef.value = flagDef.Int()
	register(flagName, flagDef)
	return flagDef
}

// Value returns value of defined flag after parse.
// NOTE: If conf is not parsed it returns default value (!)
func (i IntFlag) Value() int {
	if !isEnvParsed {
		return i.defaultValue
	}

	return *i.value
}

func (i IntFlag) defaultString() string { return strconv.Itoa(i.defaultValue) }
func (i IntFlag) valueString() string   { return strconv.Itoa(i.Value()) }

// BoolFlag represents flag with bool value.
type BoolFlag struct {
	*cliAndEnvFlag
	defaultValue bool
	value        *bool
}

// NewBoolFlag is a constructor of BoolFlag struct.
// A true default can be switched off on the command line with --no-<name>.
func NewBoolFlag(flagName string, description string, defaultValue bool) *BoolFlag {
	if duplicatedFlag := definedFlags[flagName]; duplicatedFlag != nil {
		flagDef, ok := duplicatedFlag.(*BoolFlag)
		if !ok {
			panic("Flag was redefined but with different type. Unify the type.")
		}

		if flagDef.defaultValue != defaultValue {
			panic("Flag was redefined but with different default value. Unify the default.")
		}

		return flagDef
	}

	flagDef := &BoolFlag{
		cliAndEnvFlag: newCliAndEnvFlag(flagName, description, fmt.Sprintf("%v", defaultValue)),
		defaultValue:  defaultValue,
	}
	flagDef.value = flagDef.Bool()
	register(flagName, flagDef)
	return flagDef
}

// Value returns value of defined flag after parse.
// NOTE: If conf is not parsed it returns default value (!)
func (b BoolFlag) Value() bool {
	if !isEnvParsed {
		return b.defaultValue
	}

	return *b.value
}

func (b BoolFlag) defaultString() string { return fmt.Sprintf("%v", b.defaultValue) }
func (b BoolFlag) valueString() string   { return fmt.Sprintf("%v", b.Value()) }

// SliceFlag represents flag with slice value.
type SliceFlag struct {
	*cliAndEnvFlag
	defaultValue []string
	value        *[]string
	positional   bool
}

// NewSliceFlag is a constructor of SliceFlag struct. Empty elements are skipped.
func NewSliceFlag(flagName string, description string, elemsInDefaultSlice ...string) *SliceFlag {
	return newSliceFlag(flagName, description, false, elemsInDefaultSlice)
}

// NewPositionalSliceFlag is a constructor of SliceFlag struct which keeps empty
// elements, so every element stays at the index it was given at.
func NewPositionalSliceFlag(flagName string, description string) *SliceFlag {
	return newSliceFlag(flagName, description, true, nil)
}

func newSliceFlag(flagName string, description string, positional bool, elemsInDefaultSlice []string) *SliceFlag {
	if duplicatedFlag := definedFlags[flagName]; duplicatedFlag != nil {
		flagDef, ok := duplicatedFlag.(*SliceFlag)
		if !ok || flagDef.positional != positional {
			panic("Flag was redefined but with different type. Unify the type.")
		}

		if len(flagDef.defaultValue) != len(elemsInDefaultSlice) {
			panic("Flag was redefined but with different default value. Unify the default.")
		}
		for i, elem := range elemsInDefaultSlice {
			if flagDef.defaultValue[i] != elem {
				panic("Flag was redefined but with different default value. Unify the default.")
			}
		}

		return flagDef
	}

	flagDef := &SliceFlag{
		cliAndEnvFlag: newCliAndEnvFlag(flagName, description, strings.Join(elemsInDefaultSlice, stringListDelimiter)),
		defaultValue:  append([]string{}, elemsInDefaultSlice...),
		positional:    positional,
	}
	if positional {
		flagDef.value = PositionalList(flagDef)
	} else {
		flagDef.value = StringList(flagDef)
	}
	register(flagName, flagDef)
	return flagDef
}

// Value returns value of defined flag after parse.
// NOTE: If conf is not parsed it returns default value (!)
func (s SliceFlag) Value() []string {
	if !isEnvParsed {
		return append([]string{}, s.defaultValue...)
	}

	return append([]string{}, *s.value...)
}

func (s SliceFlag) defaultString() string {
	return strings.Join(s.defaultValue, stringListDelimiter)
}

func (s SliceFlag) valueString() string {
	return strings.Join(s.Value(), stringListDelimiter)
}
