package visualization

import (
	"fmt"
	"io"
)

// List is a model for data.
type List struct {
	elements []string
	label    string
}

// NewList creates new model of data representation.
func NewList(elements []string, label string) *List {
	return &List{
		elements,
		label,
	}
}

// PrintList prints elements from list, one per line, each prefixed with the label.
func PrintList(w io.Writer, list *List) {
	for _, value := range list.elements {
		fmt.Fprintln(w, list.label+value)
	}
}
