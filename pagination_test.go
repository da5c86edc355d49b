package chimemessaging

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DrewBradfordXYZ/chimemessaging-go/paginator"
	"github.com/DrewBradfordXYZ/chimemessaging-go/types"
)

type fakeMessagesAPI struct {
	pages    map[string]*ListChannelMessagesOutput
	requests []ListChannelMessagesInput
}

func (f *fakeMessagesAPI) ListChannelMessages(ctx context.Context, params *ListChannelMessagesInput) (*ListChannelMessagesOutput, error) {
	f.requests = append(f.requests, *params)
	out, ok := f.pages[ToString(params.NextToken)]
	if !ok {
		return nil, errors.New("unexpected token")
	}
	return out, nil
}

func messages(ids ...string) []types.ChannelMessageSummary {
	out := make([]types.ChannelMessageSummary, len(ids))
	for i, id := range ids {
		out[i] = types.ChannelMessageSummary{MessageId: String(id)}
	}
	return out
}

func newFakeMessagesAPI() *fakeMessagesAPI {
	return &fakeMessagesAPI{pages: map[string]*ListChannelMessagesOutput{
		"":      {ChannelMessages: messages("m1", "m2"), NextToken: String("page2")},
		"page2": {ChannelMessages: messages("m3"), NextToken: String("p2")},
		"p2":    {ChannelMessages: messages("m9")},
	}}
}

func TestListChannelMessagesPages(t *testing.T) {
	api := newFakeMessagesAPI()
	params := &ListChannelMessagesInput{
		ChannelArn:  String(testChannelArn),
		ChimeBearer: String(testUserArn),
		MaxResults:  Int32(2),
	}

	var ids []string
	for msg, err := range ListChannelMessagesPages(context.Background(), api, params) {
		require.NoError(t, err)
		ids = append(ids, ToString(msg.MessageId))
	}
	assert.Equal(t, []string{"m1", "m2", "m3", "m9"}, ids)

	require.Len(t, api.requests, 3)
	assert.Nil(t, api.requests[0].NextToken)
	assert.Equal(t, "page2", ToString(api.requests[1].NextToken))
	assert.Equal(t, "p2", ToString(api.requests[2].NextToken))
	for _, r := range api.requests {
		assert.Equal(t, testChannelArn, ToString(r.ChannelArn), "other parameters are carried over")
		assert.Equal(t, int32(2), ToInt32(r.MaxResults))
	}
	assert.Nil(t, params.NextToken, "params are not modified")
}

func TestListChannelMessagesPagesResume(t *testing.T) {
	api := newFakeMessagesAPI()
	params := &ListChannelMessagesInput{ChannelArn: String(testChannelArn), NextToken: String("page2")}

	var ids []string
	for msg, err := range ListChannelMessagesPages(context.Background(), api, params, paginator.WithLimit(1)) {
		require.NoError(t, err)
		ids = append(ids, ToString(msg.MessageId))
	}
	assert.Equal(t, []string{"m3"}, ids)
	assert.Len(t, api.requests, 1)
}

func TestListChannelMessagesPagesError(t *testing.T) {
	api := &fakeMessagesAPI{pages: map[string]*ListChannelMessagesOutput{}}

	var errs int
	for _, err := range ListChannelMessagesPages(context.Background(), api, nil) {
		assert.Error(t, err)
		errs++
	}
	assert.Equal(t, 1, errs)
}

func TestPagesNilOutput(t *testing.T) {
	api := &fakeMessagesAPI{pages: map[string]*ListChannelMessagesOutput{
		"":      {ChannelMessages: messages("m1"), NextToken: String("page2")},
		"page2": nil,
	}}
	params := &ListChannelMessagesInput{ChannelArn: String(testChannelArn), ChimeBearer: String(testUserArn)}

	var ids []string
	var lastErr error
	for msg, err := range ListChannelMessagesPages(context.Background(), api, params) {
		if err != nil {
			lastErr = err
			continue
		}
		ids = append(ids, ToString(msg.MessageId))
	}
	assert.Equal(t, []string{"m1"}, ids)
	assert.ErrorIs(t, lastErr, paginator.ErrNilPage)
}
