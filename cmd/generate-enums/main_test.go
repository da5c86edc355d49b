package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConstName(t *testing.T) {
	tests := []struct {
		wire string
		want string
	}{
		{"NON_PERSISTENT", "NonPersistent"},
		{"IPV4_ONLY", "Ipv4Only"},
		{"ChannelMessage", "ChannelMessage"},
		{"CREATED_TIMESTAMP", "CreatedTimestamp"},
		{"ASYNC", "Async"},
		{"ServiceUnavailable", "ServiceUnavailable"},
		{"app-instance", "AppInstance"},
	}
	for _, tt := range tests {
		t.Run(tt.wire, func(t *testing.T) {
			assert.Equal(t, tt.want, constName(tt.wire))
		})
	}
}

func TestBuildSpecs(t *testing.T) {
	specs, err := buildSpecs(&Definitions{Enums: []EnumDef{
		{Name: "SortOrder", Doc: "is the order of results.", Values: []string{"ASCENDING", "DESCENDING"}},
	}})
	require.NoError(t, err)
	require.Len(t, specs, 1)
	assert.Equal(t, []ValueSpec{
		{Const: "SortOrderAscending", Wire: "ASCENDING"},
		{Const: "SortOrderDescending", Wire: "DESCENDING"},
	}, specs[0].Values)
}

func TestBuildSpecsErrors(t *testing.T) {
	tests := map[string][]EnumDef{
		"missing name":    {{Values: []string{"A"}}},
		"duplicate enum":  {{Name: "X", Values: []string{"A"}}, {Name: "X", Values: []string{"B"}}},
		"no values":       {{Name: "X"}},
		"colliding value": {{Name: "X", Values: []string{"A_B", "A-B"}}},
	}
	for name, defs := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := buildSpecs(&Definitions{Enums: defs})
			assert.Error(t, err)
		})
	}
}

func TestRender(t *testing.T) {
	specs, err := buildSpecs(&Definitions{Enums: []EnumDef{
		{Name: "NetworkType", Doc: "selects the IP stack.", Values: []string{"IPV4_ONLY", "DUAL_STACK"}},
	}})
	require.NoError(t, err)

	src, err := render(specs)
	require.NoError(t, err)

	out := string(src)
	assert.True(t, strings.HasPrefix(out, "// Code generated by cmd/generate-enums. DO NOT EDIT."))
	assert.Contains(t, out, `NetworkTypeIpv4Only`)
	assert.Contains(t, out, `func ParseNetworkType(s string) (NetworkType, error)`)
	assert.Contains(t, out, `case "NetworkType":`)
}

func TestLoadDefinitions(t *testing.T) {
	defs, err := loadDefinitions(filepath.Join("..", "..", "types", "enums.yaml"))
	require.NoError(t, err)
	assert.Len(t, defs.Enums, 17)

	specs, err := buildSpecs(defs)
	require.NoError(t, err)

	// Every defined value must be present in the checked-in file.
	current, err := os.ReadFile(filepath.Join("..", "..", "types", "enums.go"))
	require.NoError(t, err)
	for _, spec := range specs {
		assert.Contains(t, string(current), "func Parse"+spec.Name+"(s string)")
		for _, v := range spec.Values {
			assert.Contains(t, string(current), v.Const+" ", "types/enums.go is stale; run go generate ./types")
		}
	}

	_, err = loadDefinitions(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
