package chimemessaging

import (
	"context"
	"iter"

	"github.com/DrewBradfordXYZ/chimemessaging-go/paginator"
	"github.com/DrewBradfordXYZ/chimemessaging-go/types"
)

// ListChannelBansAPIClient is a client that implements the ListChannelBans operation.
type ListChannelBansAPIClient interface {
	ListChannelBans(ctx context.Context, params *ListChannelBansInput) (*ListChannelBansOutput, error)
}

// ListChannelBansPages iterates every ChannelBanSummary across pages, starting
// from params.NextToken. params is not modified.
func ListChannelBansPages(ctx context.Context, api ListChannelBansAPIClient, params *ListChannelBansInput, opts ...paginator.Option) iter.Seq2[types.ChannelBanSummary, error] {
	if params == nil {
		params = &ListChannelBansInput{}
	}
	fetch := func(ctx context.Context, token *string) (*ListChannelBansOutput, error) {
		in := *params
		in.NextToken = token
		return api.ListChannelBans(ctx, &in)
	}
	opts = append([]paginator.Option{paginator.WithOperation("ListChannelBans"), paginator.WithStartToken(params.NextToken)}, opts...)
	return paginator.Paginate[types.ChannelBanSummary, *ListChannelBansOutput](ctx, fetch, opts...)
}

// ListChannelFlowsAPIClient is a client that implements the ListChannelFlows operation.
type ListChannelFlowsAPIClient interface {
	ListChannelFlows(ctx context.Context, params *ListChannelFlowsInput) (*ListChannelFlowsOutput, error)
}

// ListChannelFlowsPages iterates every ChannelFlowSummary across pages, starting
// from params.NextToken. params is not modified.
func ListChannelFlowsPages(ctx context.Context, api ListChannelFlowsAPIClient, params *ListChannelFlowsInput, opts ...paginator.Option) iter.Seq2[types.ChannelFlowSummary, error] {
	if params == nil {
		params = &ListChannelFlowsInput{}
	}
	fetch := func(ctx context.Context, token *string) (*ListChannelFlowsOutput, error) {
		in := *params
		in.NextToken = token
		return api.ListChannelFlows(ctx, &in)
	}
	opts = append([]paginator.Option{paginator.WithOperation("ListChannelFlows"), paginator.WithStartToken(params.NextToken)}, opts...)
	return paginator.Paginate[types.ChannelFlowSummary, *ListChannelFlowsOutput](ctx, fetch, opts...)
}

// ListChannelMembershipsAPIClient is a client that implements the ListChannelMemberships operation.
type ListChannelMembershipsAPIClient interface {
	ListChannelMemberships(ctx context.Context, params *ListChannelMembershipsInput) (*ListChannelMembershipsOutput, error)
}

// ListChannelMembershipsPages iterates every ChannelMembershipSummary across pages, starting
// from params.NextToken. params is not modified.
func ListChannelMembershipsPages(ctx context.Context, api ListChannelMembershipsAPIClient, params *ListChannelMembershipsInput, opts ...paginator.Option) iter.Seq2[types.ChannelMembershipSummary, error] {
	if params == nil {
		params = &ListChannelMembershipsInput{}
	}
	fetch := func(ctx context.Context, token *string) (*ListChannelMembershipsOutput, error) {
		in := *params
		in.NextToken = token
		return api.ListChannelMemberships(ctx, &in)
	}
	opts = append([]paginator.Option{paginator.WithOperation("ListChannelMemberships"), paginator.WithStartToken(params.NextToken)}, opts...)
	return paginator.Paginate[types.ChannelMembershipSummary, *ListChannelMembershipsOutput](ctx, fetch, opts...)
}

// ListChannelMembershipsForAppInstanceUserAPIClient is a client that implements the ListChannelMembershipsForAppInstanceUser operation.
type ListChannelMembershipsForAppInstanceUserAPIClient interface {
	ListChannelMembershipsForAppInstanceUser(ctx context.Context, params *ListChannelMembershipsForAppInstanceUserInput) (*ListChannelMembershipsForAppInstanceUserOutput, error)
}

// ListChannelMembershipsForAppInstanceUserPages iterates every ChannelMembershipForAppInstanceUserSummary across pages, starting
// from params.NextToken. params is not modified.
func ListChannelMembershipsForAppInstanceUserPages(ctx context.Context, api ListChannelMembershipsForAppInstanceUserAPIClient, params *ListChannelMembershipsForAppInstanceUserInput, opts ...paginator.Option) iter.Seq2[types.ChannelMembershipForAppInstanceUserSummary, error] {
	if params == nil {
		params = &ListChannelMembershipsForAppInstanceUserInput{}
	}
	fetch := func(ctx context.Context, token *string) (*ListChannelMembershipsForAppInstanceUserOutput, error) {
		in := *params
		in.NextToken = token
		return api.ListChannelMembershipsForAppInstanceUser(ctx, &in)
	}
	opts = append([]paginator.Option{paginator.WithOperation("ListChannelMembershipsForAppInstanceUser"), paginator.WithStartToken(params.NextToken)}, opts...)
	return paginator.Paginate[types.ChannelMembershipForAppInstanceUserSummary, *ListChannelMembershipsForAppInstanceUserOutput](ctx, fetch, opts...)
}

// ListChannelMessagesAPIClient is a client that implements the ListChannelMessages operation.
type ListChannelMessagesAPIClient interface {
	ListChannelMessages(ctx context.Context, params *ListChannelMessagesInput) (*ListChannelMessagesOutput, error)
}

// ListChannelMessagesPages iterates every ChannelMessageSummary across pages, starting
// from params.NextToken. params is not modified.
func ListChannelMessagesPages(ctx context.Context, api ListChannelMessagesAPIClient, params *ListChannelMessagesInput, opts ...paginator.Option) iter.Seq2[types.ChannelMessageSummary, error] {
	if params == nil {
		params = &ListChannelMessagesInput{}
	}
	fetch := func(ctx context.Context, token *string) (*ListChannelMessagesOutput, error) {
		in := *params
		in.NextToken = token
		return api.ListChannelMessages(ctx, &in)
	}
	opts = append([]paginator.Option{paginator.WithOperation("ListChannelMessages"), paginator.WithStartToken(params.NextToken)}, opts...)
	return paginator.Paginate[types.ChannelMessageSummary, *ListChannelMessagesOutput](ctx, fetch, opts...)
}

// ListChannelModeratorsAPIClient is a client that implements the ListChannelModerators operation.
type ListChannelModeratorsAPIClient interface {
	ListChannelModerators(ctx context.Context, params *ListChannelModeratorsInput) (*ListChannelModeratorsOutput, error)
}

// ListChannelModeratorsPages iterates every ChannelModeratorSummary across pages, starting
// from params.NextToken. params is not modified.
func ListChannelModeratorsPages(ctx context.Context, api ListChannelModeratorsAPIClient, params *ListChannelModeratorsInput, opts ...paginator.Option) iter.Seq2[types.ChannelModeratorSummary, error] {
	if params == nil {
		params = &ListChannelModeratorsInput{}
	}
	fetch := func(ctx context.Context, token *string) (*ListChannelModeratorsOutput, error) {
		in := *params
		in.NextToken = token
		return api.ListChannelModerators(ctx, &in)
	}
	opts = append([]paginator.Option{paginator.WithOperation("ListChannelModerators"), paginator.WithStartToken(params.NextToken)}, opts...)
	return paginator.Paginate[types.ChannelModeratorSummary, *ListChannelModeratorsOutput](ctx, fetch, opts...)
}

// ListChannelsAPIClient is a client that implements the ListChannels operation.
type ListChannelsAPIClient interface {
	ListChannels(ctx context.Context, params *ListChannelsInput) (*ListChannelsOutput, error)
}

// ListChannelsPages iterates every ChannelSummary across pages, starting
// from params.NextToken. params is not modified.
func ListChannelsPages(ctx context.Context, api ListChannelsAPIClient, params *ListChannelsInput, opts ...paginator.Option) iter.Seq2[types.ChannelSummary, error] {
	if params == nil {
		params = &ListChannelsInput{}
	}
	fetch := func(ctx context.Context, token *string) (*ListChannelsOutput, error) {
		in := *params
		in.NextToken = token
		return api.ListChannels(ctx, &in)
	}
	opts = append([]paginator.Option{paginator.WithOperation("ListChannels"), paginator.WithStartToken(params.NextToken)}, opts...)
	return paginator.Paginate[types.ChannelSummary, *ListChannelsOutput](ctx, fetch, opts...)
}

// ListChannelsAssociatedWithChannelFlowAPIClient is a client that implements the ListChannelsAssociatedWithChannelFlow operation.
type ListChannelsAssociatedWithChannelFlowAPIClient interface {
	ListChannelsAssociatedWithChannelFlow(ctx context.Context, params *ListChannelsAssociatedWithChannelFlowInput) (*ListChannelsAssociatedWithChannelFlowOutput, error)
}

// ListChannelsAssociatedWithChannelFlowPages iterates every ChannelAssociatedWithFlowSummary across pages, starting
// from params.NextToken. params is not modified.
func ListChannelsAssociatedWithChannelFlowPages(ctx context.Context, api ListChannelsAssociatedWithChannelFlowAPIClient, params *ListChannelsAssociatedWithChannelFlowInput, opts ...paginator.Option) iter.Seq2[types.ChannelAssociatedWithFlowSummary, error] {
	if params == nil {
		params = &ListChannelsAssociatedWithChannelFlowInput{}
	}
	fetch := func(ctx context.Context, token *string) (*ListChannelsAssociatedWithChannelFlowOutput, error) {
		in := *params
		in.NextToken = token
		return api.ListChannelsAssociatedWithChannelFlow(ctx, &in)
	}
	opts = append([]paginator.Option{paginator.WithOperation("ListChannelsAssociatedWithChannelFlow"), paginator.WithStartToken(params.NextToken)}, opts...)
	return paginator.Paginate[types.ChannelAssociatedWithFlowSummary, *ListChannelsAssociatedWithChannelFlowOutput](ctx, fetch, opts...)
}

// ListChannelsModeratedByAppInstanceUserAPIClient is a client that implements the ListChannelsModeratedByAppInstanceUser operation.
type ListChannelsModeratedByAppInstanceUserAPIClient interface {
	ListChannelsModeratedByAppInstanceUser(ctx context.Context, params *ListChannelsModeratedByAppInstanceUserInput) (*ListChannelsModeratedByAppInstanceUserOutput, error)
}

// ListChannelsModeratedByAppInstanceUserPages iterates every ChannelModeratedByAppInstanceUserSummary across pages, starting
// from params.NextToken. params is not modified.
func ListChannelsModeratedByAppInstanceUserPages(ctx context.Context, api ListChannelsModeratedByAppInstanceUserAPIClient, params *ListChannelsModeratedByAppInstanceUserInput, opts ...paginator.Option) iter.Seq2[types.ChannelModeratedByAppInstanceUserSummary, error] {
	if params == nil {
		params = &ListChannelsModeratedByAppInstanceUserInput{}
	}
	fetch := func(ctx context.Context, token *string) (*ListChannelsModeratedByAppInstanceUserOutput, error) {
		in := *params
		in.NextToken = token
		return api.ListChannelsModeratedByAppInstanceUser(ctx, &in)
	}
	opts = append([]paginator.Option{paginator.WithOperation("ListChannelsModeratedByAppInstanceUser"), paginator.WithStartToken(params.NextToken)}, opts...)
	return paginator.Paginate[types.ChannelModeratedByAppInstanceUserSummary, *ListChannelsModeratedByAppInstanceUserOutput](ctx, fetch, opts...)
}

// ListSubChannelsAPIClient is a client that implements the ListSubChannels operation.
type ListSubChannelsAPIClient interface {
	ListSubChannels(ctx context.Context, params *ListSubChannelsInput) (*ListSubChannelsOutput, error)
}

// ListSubChannelsPages iterates every SubChannelSummary across pages, starting
// from params.NextToken. params is not modified.
func ListSubChannelsPages(ctx context.Context, api ListSubChannelsAPIClient, params *ListSubChannelsInput, opts ...paginator.Option) iter.Seq2[types.SubChannelSummary, error] {
	if params == nil {
		params = &ListSubChannelsInput{}
	}
	fetch := func(ctx context.Context, token *string) (*ListSubChannelsOutput, error) {
		in := *params
		in.NextToken = token
		return api.ListSubChannels(ctx, &in)
	}
	opts = append([]paginator.Option{paginator.WithOperation("ListSubChannels"), paginator.WithStartToken(params.NextToken)}, opts...)
	return paginator.Paginate[types.SubChannelSummary, *ListSubChannelsOutput](ctx, fetch, opts...)
}

// SearchChannelsAPIClient is a client that implements the SearchChannels operation.
type SearchChannelsAPIClient interface {
	SearchChannels(ctx context.Context, params *SearchChannelsInput) (*SearchChannelsOutput, error)
}

// SearchChannelsPages iterates every ChannelSummary across pages, starting
// from params.NextToken. params is not modified.
func SearchChannelsPages(ctx context.Context, api SearchChannelsAPIClient, params *SearchChannelsInput, opts ...paginator.Option) iter.Seq2[types.ChannelSummary, error] {
	if params == nil {
		params = &SearchChannelsInput{}
	}
	fetch := func(ctx context.Context, token *string) (*SearchChannelsOutput, error) {
		in := *params
		in.NextToken = token
		return api.SearchChannels(ctx, &in)
	}
	opts = append([]paginator.Option{paginator.WithOperation("SearchChannels"), paginator.WithStartToken(params.NextToken)}, opts...)
	return paginator.Paginate[types.ChannelSummary, *SearchChannelsOutput](ctx, fetch, opts...)
}
