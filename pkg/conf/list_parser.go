package conf

import (
	"strings"

	"gopkg.in/alecthomas/kingpin.v2"
)

const stringListDelimiter = ","

// StringListValue is a custom kingpin parser which resolves flag's parameters which consists of
// string slice delimited by `stringListDelimiter`.
// For instance for delimiter = "," and flag defined like this:
// `flag = StringList(kingpin.Flag("flag_name", "help").Short("f"))`
//
// When user would specify options: `-f=A,B,C -f=D,E,F` our `flag` variable would be a slice with
// A,B,C,D,E,F items.
type StringListValue []string

// Set parses the input string and appends it to the slice. Implements kingpin.Value.
func (s *StringListValue) Set(value string) error {
	for _, elem := range strings.Split(value, stringListDelimiter) {
		elem = strings.TrimSpace(elem)
		if elem == "" {
			continue
		}
		*s = append(*s, elem)
	}
	return nil
}

// Get returns the underlying slice. Implements kingpin.Getter.
func (s *StringListValue) Get() interface{} {
	return []string(*s)
}

// String returns string value from StringListValue. Implements kingpin.Value.
func (s *StringListValue) String() string {
	return strings.Join(*s, stringListDelimiter)
}

// IsCumulative implements optional interface (kingpin.repeatableFlag) for flags that can be repeated.
func (s *StringListValue) IsCumulative() bool {
	return true
}

// StringList is a helper for defining kingpin flags.
func StringList(s kingpin.Settings) (target *[]string) {
	target = new([]string)
	s.SetValue((*StringListValue)(target))
	return
}

// PositionalListValue works like StringListValue, but keeps empty elements so that
// `-f=,B` gives "" and B. Use it when index of an element matters.
type PositionalListValue []string

// Set parses the input string and appends it to the slice. Implements kingpin.Value.
func (s *PositionalListValue) Set(value string) error {
	for _, elem := range strings.Split(value, stringListDelimiter) {
		*s = append(*s, strings.TrimSpace(elem))
	}
	return nil
}

// Get returns the underlying slice. Implements kingpin.Getter.
func (s *PositionalListValue) Get() interface{} {
	return []string(*s)
}

// String returns string value from PositionalListValue. Implements kingpin.Value.
func (s *PositionalListValue) String() string {
	return strings.Join(*s, stringListDelimiter)
}

// IsCumulative implements optional interface (kingpin.repeatableFlag) for flags that can be repeated.
func (s *PositionalListValue) IsCumulative() bool {
	return true
}

// PositionalList is a helper for defining kingpin flags.
func PositionalList(s kingpin.Settings) (target *[]string) {
	target = new([]string)
	s.SetValue((*PositionalListValue)(target))
	return
}
