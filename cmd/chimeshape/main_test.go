package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func run(t *testing.T, format string, args ...string) (string, error) {
	t.Helper()
	cfg := config{Format: format, NoColor: true}
	var out bytes.Buffer
	root := newRootCmd(&cfg, &out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "input.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestOperationsCommand(t *testing.T) {
	out, err := run(t, formatText, "operations")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	assert.Len(t, lines, 52)
	assert.Contains(t, out, "/channels/{channelArn}/messages/{messageId}?operation=redact")

	out, err = run(t, formatJSON, "operations")
	require.NoError(t, err)
	var infos []operationInfo
	require.NoError(t, json.Unmarshal([]byte(out), &infos))
	assert.Len(t, infos, 51)
	assert.Equal(t, "AssociateChannelFlow", infos[0].Name)
}

func TestEnumsCommand(t *testing.T) {
	out, err := run(t, formatText, "enums")
	require.NoError(t, err)
	assert.Contains(t, out, "MessagingDataType\n")

	out, err = run(t, formatText, "enums", "SortOrder")
	require.NoError(t, err)
	assert.Equal(t, "ASCENDING\nDESCENDING\n", out)

	out, err = run(t, formatYAML, "enums", "NetworkType")
	require.NoError(t, err)
	var values []string
	require.NoError(t, yaml.Unmarshal([]byte(out), &values))
	assert.Equal(t, []string{"IPV4_ONLY", "DUAL_STACK"}, values)

	_, err = run(t, formatText, "enums", "SortOrdr")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `did you mean "SortOrder"?`)
}

func TestParseEnumCommand(t *testing.T) {
	out, err := run(t, formatText, "parse-enum", "MessagingDataType", "Channel")
	require.NoError(t, err)
	assert.Equal(t, "ok MessagingDataType.Channel\n", out)

	_, err = run(t, formatText, "parse-enum", "MessagingDataType", "Bogus")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "must be one of: Channel, ChannelMessage")

	_, err = run(t, formatText, "parse-enum", "MessagingDataType")
	assert.Error(t, err)
}

const validSend = `{
	"ChannelArn": "arn:aws:chime:us-east-1:123456789012:app-instance/abc/channel/def",
	"ChimeBearer": "arn:aws:chime:us-east-1:123456789012:app-instance/abc/user/u1",
	"Content": "hello",
	"Type": "STANDARD",
	"Persistence": "PERSISTENT",
	"ClientRequestToken": "token-1"
}`

func TestValidateCommand(t *testing.T) {
	t.Run("valid input", func(t *testing.T) {
		out, err := run(t, formatText, "validate", "SendChannelMessage", writeFile(t, validSend))
		require.NoError(t, err)
		assert.Contains(t, out, "valid SendChannelMessage")
		assert.Contains(t, out, "POST /channels/arn:aws:chime:us-east-1:123456789012:app-instance%2Fabc%2Fchannel%2Fdef/messages")
		assert.NotContains(t, out, "hello")
	})

	t.Run("invalid input", func(t *testing.T) {
		doc := `{"Content": "hello", "Type": "STANDARD"}`
		out, err := run(t, formatJSON, "validate", "SendChannelMessage", writeFile(t, doc))
		require.ErrorIs(t, err, errInvalidInput)

		var report validationReport
		require.NoError(t, json.Unmarshal([]byte(out), &report))
		assert.False(t, report.Valid)
		assert.Contains(t, strings.Join(report.Errors, "\n"), "SendChannelMessageInput.ChannelArn")
		assert.Contains(t, strings.Join(report.Errors, "\n"), "SendChannelMessageInput.ClientRequestToken")
	})

	t.Run("fill token", func(t *testing.T) {
		doc := strings.Replace(validSend, `"ClientRequestToken": "token-1"`, `"Metadata": "m"`, 1)
		_, err := run(t, formatText, "validate", "SendChannelMessage", writeFile(t, doc))
		require.ErrorIs(t, err, errInvalidInput)

		_, err = run(t, formatText, "validate", "--fill-token", "SendChannelMessage", writeFile(t, doc))
		assert.NoError(t, err)
	})

	t.Run("unknown enum value", func(t *testing.T) {
		doc := strings.Replace(validSend, `"STANDARD"`, `"LOUD"`, 1)
		_, err := run(t, formatText, "validate", "SendChannelMessage", writeFile(t, doc))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "decoding SendChannelMessage input")
	})

	t.Run("unknown operation", func(t *testing.T) {
		_, err := run(t, formatText, "validate", "SendChanelMessage", writeFile(t, validSend))
		require.Error(t, err)
		assert.Contains(t, err.Error(), `did you mean "SendChannelMessage"?`)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := run(t, formatText, "validate", "SendChannelMessage", filepath.Join(t.TempDir(), "nope.json"))
		assert.Error(t, err)
	})
}

func TestDescribeCommand(t *testing.T) {
	out, err := run(t, formatYAML, "describe", "ListChannelMessages")
	require.NoError(t, err)

	var desc struct {
		Name   string      `yaml:"name"`
		Method string      `yaml:"method"`
		Fields []fieldInfo `yaml:"fields"`
	}
	require.NoError(t, yaml.Unmarshal([]byte(out), &desc))
	assert.Equal(t, "ListChannelMessages", desc.Name)
	assert.Equal(t, "GET", desc.Method)

	byName := map[string]fieldInfo{}
	for _, f := range desc.Fields {
		byName[f.Name] = f
	}
	assert.Equal(t, "querystring", byName["NextToken"].Location)
	assert.Equal(t, "next-token", byName["NextToken"].LocationName)
	assert.True(t, byName["NextToken"].Sensitive)
	assert.Equal(t, "header", byName["ChimeBearer"].Location)
	assert.True(t, byName["ChannelArn"].Required)

	out, err = run(t, formatText, "describe", "CreateChannel")
	require.NoError(t, err)
	assert.Contains(t, out, "CreateChannel POST /channels")
	assert.Contains(t, out, "ClientRequestToken")
	assert.Contains(t, out, "body")
}

func TestUnknownFormat(t *testing.T) {
	_, err := run(t, "xml", "operations")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown format")
}

func TestLoadConfig(t *testing.T) {
	// godotenv never overrides variables that are already set, even to "".
	for _, k := range []string{"CHIMESHAPE_FORMAT", "CHIMESHAPE_DEBUG", "CHIMESHAPE_NO_COLOR", "NO_COLOR"} {
		t.Setenv(k, "")
		require.NoError(t, os.Unsetenv(k))
	}

	cfg := loadConfig(filepath.Join(t.TempDir(), "missing.env"))
	assert.Equal(t, config{Format: formatText}, cfg)

	env := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(env, []byte("CHIMESHAPE_FORMAT=yaml\nCHIMESHAPE_DEBUG=true\n"), 0o644))
	cfg = loadConfig(env)
	assert.Equal(t, formatYAML, cfg.Format)
	assert.True(t, cfg.Debug)
	assert.False(t, cfg.NoColor)

	t.Setenv("CHIMESHAPE_FORMAT", "json")
	cfg = loadConfig(env)
	assert.Equal(t, formatJSON, cfg.Format, "environment wins over .env")
}

var ansiEscape = regexp.MustCompile(`\x1b\[[0-9;]*m`)

// columnStarts returns the offset of every column in an aligned line.
func columnStarts(line string) []int {
	var starts []int
	for i := range line {
		if line[i] != ' ' && (i == 0 || strings.HasSuffix(line[:i], "  ")) {
			starts = append(starts, i)
		}
	}
	return starts
}

func TestTableColorKeepsAlignment(t *testing.T) {
	saved := color.NoColor
	color.NoColor = false
	t.Cleanup(func() { color.NoColor = saved })

	cfg := config{Format: formatText}
	var out bytes.Buffer
	root := newRootCmd(&cfg, &out)
	root.SetArgs([]string{"operations"})
	require.NoError(t, root.Execute())

	lines := strings.Split(out.String(), "\n")
	require.Greater(t, len(lines), 2)
	assert.Contains(t, lines[0], "\x1b[1m", "header is bold")
	assert.NotContains(t, lines[1], "\x1b[")

	header := ansiEscape.ReplaceAllString(lines[0], "")
	assert.Equal(t, columnStarts(lines[1]), columnStarts(header))
}
