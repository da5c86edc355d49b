package chimemessaging

import (
	"net/url"
	"sort"
)

// Input is implemented by every operation input shape.
type Input interface {
	Validate() error
	String() string
}

// Operation describes one API operation and its HTTP binding.
type Operation struct {
	Name   string
	Method string

	// Path is the URI template. Labels in braces are filled from the
	// input's location:"uri" fields.
	Path string

	// StaticQuery is a fixed query string sent with every request,
	// e.g. "operation=redact".
	StaticQuery string

	SuccessCode int

	// Paginated operations take and return an opaque NextToken.
	Paginated bool

	NewInput  func() Input
	NewOutput func() any
}

// Operations returns metadata for every operation, sorted by name.
func Operations() []Operation {
	out := make([]Operation, len(operations))
	copy(out, operations)
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// OperationNames returns the sorted operation names.
func OperationNames() []string {
	names := make([]string, 0, len(operations))
	for _, op := range Operations() {
		names = append(names, op.Name)
	}
	return names
}

// LookupOperation finds an operation by its exact name.
func LookupOperation(name string) (Operation, bool) {
	for _, op := range operations {
		if op.Name == name {
			return op, true
		}
	}
	return Operation{}, false
}

// StaticQueryValues parses the operation's fixed query string.
func (op Operation) StaticQueryValues() url.Values {
	v, err := url.ParseQuery(op.StaticQuery)
	if err != nil {
		return url.Values{}
	}
	return v
}
