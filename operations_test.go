package chimemessaging

import (
	"net/http"
	"reflect"
	"regexp"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DrewBradfordXYZ/chimemessaging-go/internal/shapetest"
)

var pathLabel = regexp.MustCompile(`\{([^}]+)\}`)

func TestOperationsCatalog(t *testing.T) {
	ops := Operations()
	require.Len(t, ops, 51)

	names := OperationNames()
	assert.True(t, sort.StringsAreSorted(names))

	seen := map[string]bool{}
	for _, op := range ops {
		assert.False(t, seen[op.Name], "duplicate operation %s", op.Name)
		seen[op.Name] = true
	}
}

func TestOperationsCopy(t *testing.T) {
	ops := Operations()
	ops[0].Name = "Changed"

	_, ok := LookupOperation("Changed")
	assert.False(t, ok)
}

func TestLookupOperation(t *testing.T) {
	tests := []struct {
		name    string
		method  string
		path    string
		query   string
		success int
		paged   bool
	}{
		{"CreateChannel", http.MethodPost, "/channels", "", http.StatusCreated, false},
		{"DeleteChannel", http.MethodDelete, "/channels/{channelArn}", "", http.StatusNoContent, false},
		{"GetChannelMessage", http.MethodGet, "/channels/{channelArn}/messages/{messageId}", "", http.StatusOK, false},
		{"RedactChannelMessage", http.MethodPost, "/channels/{channelArn}/messages/{messageId}", "operation=redact", http.StatusOK, false},
		{"ListChannelMessages", http.MethodGet, "/channels/{channelArn}/messages", "", http.StatusOK, true},
		{"SearchChannels", http.MethodPost, "/channels", "operation=search", http.StatusOK, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			op, ok := LookupOperation(tt.name)
			require.True(t, ok)
			assert.Equal(t, tt.method, op.Method)
			assert.Equal(t, tt.path, op.Path)
			assert.Equal(t, tt.query, op.StaticQuery)
			assert.Equal(t, tt.success, op.SuccessCode)
			assert.Equal(t, tt.paged, op.Paginated)
		})
	}

	_, ok := LookupOperation("createchannel")
	assert.False(t, ok, "lookup is case-sensitive")
}

// Every URI label needs a uri-bound input field and vice versa.
func TestOperationBindingsConsistent(t *testing.T) {
	for _, op := range Operations() {
		t.Run(op.Name, func(t *testing.T) {
			in := op.NewInput()
			require.NotNil(t, in)
			out := op.NewOutput()
			require.NotNil(t, out)

			inType := reflect.TypeOf(in).Elem()
			assert.Equal(t, op.Name+"Input", inType.Name())
			assert.Equal(t, op.Name+"Output", reflect.TypeOf(out).Elem().Name())

			labels := map[string]bool{}
			for _, m := range pathLabel.FindAllStringSubmatch(op.Path, -1) {
				labels[m[1]] = true
			}
			uriFields := map[string]bool{}
			for i := 0; i < inType.NumField(); i++ {
				sf := inType.Field(i)
				if sf.Tag.Get("location") == "uri" {
					uriFields[sf.Tag.Get("locationName")] = true
					assert.Equal(t, "true", sf.Tag.Get("required"), "uri field %s must be required", sf.Name)
				}
			}
			assert.Equal(t, labels, uriFields)

			_, hasToken := inType.FieldByName("NextToken")
			_, isPage := out.(interface{ NextPageToken() *string })
			assert.Equal(t, op.Paginated, hasToken, "NextToken input field")
			assert.Equal(t, op.Paginated, isPage, "paginated output")
		})
	}
}

func TestStaticQueryValues(t *testing.T) {
	op, ok := LookupOperation("BatchCreateChannelMembership")
	require.True(t, ok)
	assert.Equal(t, "batch-create", op.StaticQueryValues().Get("operation"))

	op, _ = LookupOperation("CreateChannel")
	assert.Empty(t, op.StaticQueryValues())
}

func TestOperationShapeValueSemantics(t *testing.T) {
	for _, op := range Operations() {
		t.Run(op.Name+"Input", func(t *testing.T) {
			shapetest.Check(t, func() any { return op.NewInput() })
		})
		t.Run(op.Name+"Output", func(t *testing.T) {
			shapetest.Check(t, op.NewOutput)
		})
	}
}
