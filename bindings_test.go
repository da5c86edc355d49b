package chimemessaging

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DrewBradfordXYZ/chimemessaging-go/types"
)

const (
	testChannelArn = "arn:aws:chime:us-east-1:123456789012:app-instance/abc/channel/def"
	testUserArn    = "arn:aws:chime:us-east-1:123456789012:app-instance/abc/user/u1"
	escapedChannel = "arn:aws:chime:us-east-1:123456789012:app-instance%2Fabc%2Fchannel%2Fdef"
)

func mustOp(t *testing.T, name string) Operation {
	t.Helper()
	op, ok := LookupOperation(name)
	require.True(t, ok, name)
	return op
}

func TestResolvePath(t *testing.T) {
	in := &GetChannelMessageInput{
		ChannelArn:  String(testChannelArn),
		MessageId:   String("msg-1"),
		ChimeBearer: String(testUserArn),
	}
	path, err := ResolvePath(mustOp(t, "GetChannelMessage"), in)
	require.NoError(t, err)
	assert.Equal(t, "/channels/"+escapedChannel+"/messages/msg-1", path)
}

func TestResolvePathMissingLabel(t *testing.T) {
	in := &GetChannelMessageInput{ChannelArn: String(testChannelArn)}
	_, err := ResolvePath(mustOp(t, "GetChannelMessage"), in)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"messageId"`)

	_, err = ResolvePath(mustOp(t, "GetChannelMessage"), &GetChannelMessageInput{
		ChannelArn: String(testChannelArn),
		MessageId:  String(""),
	})
	assert.Error(t, err, "empty label values are rejected")
}

func TestResolvePathNoLabels(t *testing.T) {
	path, err := ResolvePath(mustOp(t, "CreateChannel"), &CreateChannelInput{})
	require.NoError(t, err)
	assert.Equal(t, "/channels", path)
}

func TestQueryValues(t *testing.T) {
	notBefore := time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC)
	in := &ListChannelMessagesInput{
		ChannelArn:   String(testChannelArn),
		SortOrder:    types.SortOrderAscending,
		NotBefore:    Time(notBefore),
		MaxResults:   Int32(25),
		NextToken:    String("opaque/token=="),
		ChimeBearer:  String(testUserArn),
		SubChannelId: String("sub-1"),
	}

	q := QueryValues(mustOp(t, "ListChannelMessages"), in)
	assert.Equal(t, "ASCENDING", q.Get("sort-order"))
	assert.Equal(t, "2024-01-15T10:30:00Z", q.Get("not-before"))
	assert.Equal(t, "25", q.Get("max-results"))
	assert.Equal(t, "opaque/token==", q.Get("next-token"), "tokens pass through unchanged")
	assert.Equal(t, "sub-1", q.Get("sub-channel-id"))
	assert.False(t, q.Has("not-after"), "unset fields are omitted")
	assert.False(t, q.Has("x-amz-chime-bearer"), "headers are not query values")
}

func TestQueryValuesStatic(t *testing.T) {
	in := &RedactChannelMessageInput{
		ChannelArn:  String(testChannelArn),
		MessageId:   String("msg-1"),
		ChimeBearer: String(testUserArn),
	}
	q := QueryValues(mustOp(t, "RedactChannelMessage"), in)
	assert.Equal(t, "redact", q.Get("operation"))
	assert.Len(t, q, 1)
}

func TestHeaders(t *testing.T) {
	h := Headers(&ListChannelsInput{
		AppInstanceArn: String("arn:aws:chime:us-east-1:123456789012:app-instance/abc"),
		ChimeBearer:    String(testUserArn),
	})
	assert.Equal(t, testUserArn, h.Get("x-amz-chime-bearer"))
	assert.Len(t, h, 1)

	assert.Empty(t, Headers(&ListChannelsInput{}))
}

func TestRequestURI(t *testing.T) {
	in := &ListChannelsInput{
		AppInstanceArn: String("arn:aws:chime:us-east-1:123456789012:app-instance/abc"),
		Privacy:        types.ChannelPrivacyPrivate,
		MaxResults:     Int32(10),
	}
	uri, err := RequestURI(mustOp(t, "ListChannels"), in)
	require.NoError(t, err)
	assert.Equal(t,
		"/channels?app-instance-arn=arn%3Aaws%3Achime%3Aus-east-1%3A123456789012%3Aapp-instance%2Fabc&max-results=10&privacy=PRIVATE",
		uri)

	uri, err = RequestURI(mustOp(t, "GetMessagingSessionEndpoint"), &GetMessagingSessionEndpointInput{})
	require.NoError(t, err)
	assert.Equal(t, "/endpoints/messaging-session", uri)
}
