package chimemessaging

import "net/http"

var operations = []Operation{
	{
		Name:        "AssociateChannelFlow",
		Method:      http.MethodPut,
		Path:        "/channels/{channelArn}/channel-flow",
		SuccessCode: http.StatusOK,
		NewInput:    func() Input { return &AssociateChannelFlowInput{} },
		NewOutput:   func() any { return &AssociateChannelFlowOutput{} },
	},
	{
		Name:        "BatchCreateChannelMembership",
		Method:      http.MethodPost,
		Path:        "/channels/{channelArn}/memberships",
		StaticQuery: "operation=batch-create",
		SuccessCode: http.StatusOK,
		NewInput:    func() Input { return &BatchCreateChannelMembershipInput{} },
		NewOutput:   func() any { return &BatchCreateChannelMembershipOutput{} },
	},
	{
		Name:        "ChannelFlowCallback",
		Method:      http.MethodPost,
		Path:        "/channels/{channelArn}",
		StaticQuery: "operation=channel-flow-callback",
		SuccessCode: http.StatusOK,
		NewInput:    func() Input { return &ChannelFlowCallbackInput{} },
		NewOutput:   func() any { return &ChannelFlowCallbackOutput{} },
	},
	{
		Name:        "CreateChannel",
		Method:      http.MethodPost,
		Path:        "/channels",
		SuccessCode: http.StatusCreated,
		NewInput:    func() Input { return &CreateChannelInput{} },
		NewOutput:   func() any { return &CreateChannelOutput{} },
	},
	{
		Name:        "CreateChannelBan",
		Method:      http.MethodPost,
		Path:        "/channels/{channelArn}/bans",
		SuccessCode: http.StatusCreated,
		NewInput:    func() Input { return &CreateChannelBanInput{} },
		NewOutput:   func() any { return &CreateChannelBanOutput{} },
	},
	{
		Name:        "CreateChannelFlow",
		Method:      http.MethodPost,
		Path:        "/channel-flows",
		SuccessCode: http.StatusCreated,
		NewInput:    func() Input { return &CreateChannelFlowInput{} },
		NewOutput:   func() any { return &CreateChannelFlowOutput{} },
	},
	{
		Name:        "CreateChannelMembership",
		Method:      http.MethodPost,
		Path:        "/channels/{channelArn}/memberships",
		SuccessCode: http.StatusCreated,
		NewInput:    func() Input { return &CreateChannelMembershipInput{} },
		NewOutput:   func() any { return &CreateChannelMembershipOutput{} },
	},
	{
		Name:        "CreateChannelModerator",
		Method:      http.MethodPost,
		Path:        "/channels/{channelArn}/moderators",
		SuccessCode: http.StatusCreated,
		NewInput:    func() Input { return &CreateChannelModeratorInput{} },
		NewOutput:   func() any { return &CreateChannelModeratorOutput{} },
	},
	{
		Name:        "DeleteChannel",
		Method:      http.MethodDelete,
		Path:        "/channels/{channelArn}",
		SuccessCode: http.StatusNoContent,
		NewInput:    func() Input { return &DeleteChannelInput{} },
		NewOutput:   func() any { return &DeleteChannelOutput{} },
	},
	{
		Name:        "DeleteChannelBan",
		Method:      http.MethodDelete,
		Path:        "/channels/{channelArn}/bans/{memberArn}",
		SuccessCode: http.StatusNoContent,
		NewInput:    func() Input { return &DeleteChannelBanInput{} },
		NewOutput:   func() any { return &DeleteChannelBanOutput{} },
	},
	{
		Name:        "DeleteChannelFlow",
		Method:      http.MethodDelete,
		Path:        "/channel-flows/{channelFlowArn}",
		SuccessCode: http.StatusNoContent,
		NewInput:    func() Input { return &DeleteChannelFlowInput{} },
		NewOutput:   func() any { return &DeleteChannelFlowOutput{} },
	},
	{
		Name:        "DeleteChannelMembership",
		Method:      http.MethodDelete,
		Path:        "/channels/{channelArn}/memberships/{memberArn}",
		SuccessCode: http.StatusNoContent,
		NewInput:    func() Input { return &DeleteChannelMembershipInput{} },
		NewOutput:   func() any { return &DeleteChannelMembershipOutput{} },
	},
	{
		Name:        "DeleteChannelMessage",
		Method:      http.MethodDelete,
		Path:        "/channels/{channelArn}/messages/{messageId}",
		SuccessCode: http.StatusNoContent,
		NewInput:    func() Input { return &DeleteChannelMessageInput{} },
		NewOutput:   func() any { return &DeleteChannelMessageOutput{} },
	},
	{
		Name:        "DeleteChannelModerator",
		Method:      http.MethodDelete,
		Path:        "/channels/{channelArn}/moderators/{channelModeratorArn}",
		SuccessCode: http.StatusNoContent,
		NewInput:    func() Input { return &DeleteChannelModeratorInput{} },
		NewOutput:   func() any { return &DeleteChannelModeratorOutput{} },
	},
	{
		Name:        "DeleteMessagingStreamingConfigurations",
		Method:      http.MethodDelete,
		Path:        "/app-instances/{appInstanceArn}/streaming-configurations",
		SuccessCode: http.StatusNoContent,
		NewInput:    func() Input { return &DeleteMessagingStreamingConfigurationsInput{} },
		NewOutput:   func() any { return &DeleteMessagingStreamingConfigurationsOutput{} },
	},
	{
		Name:        "DescribeChannel",
		Method:      http.MethodGet,
		Path:        "/channels/{channelArn}",
		SuccessCode: http.StatusOK,
		NewInput:    func() Input { return &DescribeChannelInput{} },
		NewOutput:   func() any { return &DescribeChannelOutput{} },
	},
	{
		Name:        "DescribeChannelBan",
		Method:      http.MethodGet,
		Path:        "/channels/{channelArn}/bans/{memberArn}",
		SuccessCode: http.StatusOK,
		NewInput:    func() Input { return &DescribeChannelBanInput{} },
		NewOutput:   func() any { return &DescribeChannelBanOutput{} },
	},
	{
		Name:        "DescribeChannelFlow",
		Method:      http.MethodGet,
		Path:        "/channel-flows/{channelFlowArn}",
		SuccessCode: http.StatusOK,
		NewInput:    func() Input { return &DescribeChannelFlowInput{} },
		NewOutput:   func() any { return &DescribeChannelFlowOutput{} },
	},
	{
		Name:        "DescribeChannelMembership",
		Method:      http.MethodGet,
		Path:        "/channels/{channelArn}/memberships/{memberArn}",
		SuccessCode: http.StatusOK,
		NewInput:    func() Input { return &DescribeChannelMembershipInput{} },
		NewOutput:   func() any { return &DescribeChannelMembershipOutput{} },
	},
	{
		Name:        "DescribeChannelMembershipForAppInstanceUser",
		Method:      http.MethodGet,
		Path:        "/channels/{channelArn}",
		StaticQuery: "scope=app-instance-user-membership",
		SuccessCode: http.StatusOK,
		NewInput:    func() Input { return &DescribeChannelMembershipForAppInstanceUserInput{} },
		NewOutput:   func() any { return &DescribeChannelMembershipForAppInstanceUserOutput{} },
	},
	{
		Name:        "DescribeChannelModeratedByAppInstanceUser",
		Method:      http.MethodGet,
		Path:        "/channels/{channelArn}",
		StaticQuery: "scope=app-instance-user-moderated-channel",
		SuccessCode: http.StatusOK,
		NewInput:    func() Input { return &DescribeChannelModeratedByAppInstanceUserInput{} },
		NewOutput:   func() any { return &DescribeChannelModeratedByAppInstanceUserOutput{} },
	},
	{
		Name:        "DescribeChannelModerator",
		Method:      http.MethodGet,
		Path:        "/channels/{channelArn}/moderators/{channelModeratorArn}",
		SuccessCode: http.StatusOK,
		NewInput:    func() Input { return &DescribeChannelModeratorInput{} },
		NewOutput:   func() any { return &DescribeChannelModeratorOutput{} },
	},
	{
		Name:        "DisassociateChannelFlow",
		Method:      http.MethodDelete,
		Path:        "/channels/{channelArn}/channel-flow/{channelFlowArn}",
		SuccessCode: http.StatusNoContent,
		NewInput:    func() Input { return &DisassociateChannelFlowInput{} },
		NewOutput:   func() any { return &DisassociateChannelFlowOutput{} },
	},
	{
		Name:        "GetChannelMembershipPreferences",
		Method:      http.MethodGet,
		Path:        "/channels/{channelArn}/memberships/{memberArn}/preferences",
		SuccessCode: http.StatusOK,
		NewInput:    func() Input { return &GetChannelMembershipPreferencesInput{} },
		NewOutput:   func() any { return &GetChannelMembershipPreferencesOutput{} },
	},
	{
		Name:        "GetChannelMessage",
		Method:      http.MethodGet,
		Path:        "/channels/{channelArn}/messages/{messageId}",
		SuccessCode: http.StatusOK,
		NewInput:    func() Input { return &GetChannelMessageInput{} },
		NewOutput:   func() any { return &GetChannelMessageOutput{} },
	},
	{
		Name:        "GetChannelMessageStatus",
		Method:      http.MethodGet,
		Path:        "/channels/{channelArn}/messages/{messageId}",
		StaticQuery: "scope=message-status",
		SuccessCode: http.StatusOK,
		NewInput:    func() Input { return &GetChannelMessageStatusInput{} },
		NewOutput:   func() any { return &GetChannelMessageStatusOutput{} },
	},
	{
		Name:        "GetMessagingSessionEndpoint",
		Method:      http.MethodGet,
		Path:        "/endpoints/messaging-session",
		SuccessCode: http.StatusOK,
		NewInput:    func() Input { return &GetMessagingSessionEndpointInput{} },
		NewOutput:   func() any { return &GetMessagingSessionEndpointOutput{} },
	},
	{
		Name:        "GetMessagingStreamingConfigurations",
		Method:      http.MethodGet,
		Path:        "/app-instances/{appInstanceArn}/streaming-configurations",
		SuccessCode: http.StatusOK,
		NewInput:    func() Input { return &GetMessagingStreamingConfigurationsInput{} },
		NewOutput:   func() any { return &GetMessagingStreamingConfigurationsOutput{} },
	},
	{
		Name:        "ListChannelBans",
		Method:      http.MethodGet,
		Path:        "/channels/{channelArn}/bans",
		SuccessCode: http.StatusOK,
		Paginated:   true,
		NewInput:    func() Input { return &ListChannelBansInput{} },
		NewOutput:   func() any { return &ListChannelBansOutput{} },
	},
	{
		Name:        "ListChannelFlows",
		Method:      http.MethodGet,
		Path:        "/channel-flows",
		SuccessCode: http.StatusOK,
		Paginated:   true,
		NewInput:    func() Input { return &ListChannelFlowsInput{} },
		NewOutput:   func() any { return &ListChannelFlowsOutput{} },
	},
	{
		Name:        "ListChannelMemberships",
		Method:      http.MethodGet,
		Path:        "/channels/{channelArn}/memberships",
		SuccessCode: http.StatusOK,
		Paginated:   true,
		NewInput:    func() Input { return &ListChannelMembershipsInput{} },
		NewOutput:   func() any { return &ListChannelMembershipsOutput{} },
	},
	{
		Name:        "ListChannelMembershipsForAppInstanceUser",
		Method:      http.MethodGet,
		Path:        "/channels",
		StaticQuery: "scope=app-instance-user-memberships",
		SuccessCode: http.StatusOK,
		Paginated:   true,
		NewInput:    func() Input { return &ListChannelMembershipsForAppInstanceUserInput{} },
		NewOutput:   func() any { return &ListChannelMembershipsForAppInstanceUserOutput{} },
	},
	{
		Name:        "ListChannelMessages",
		Method:      http.MethodGet,
		Path:        "/channels/{channelArn}/messages",
		SuccessCode: http.StatusOK,
		Paginated:   true,
		NewInput:    func() Input { return &ListChannelMessagesInput{} },
		NewOutput:   func() any { return &ListChannelMessagesOutput{} },
	},
	{
		Name:        "ListChannelModerators",
		Method:      http.MethodGet,
		Path:        "/channels/{channelArn}/moderators",
		SuccessCode: http.StatusOK,
		Paginated:   true,
		NewInput:    func() Input { return &ListChannelModeratorsInput{} },
		NewOutput:   func() any { return &ListChannelModeratorsOutput{} },
	},
	{
		Name:        "ListChannels",
		Method:      http.MethodGet,
		Path:        "/channels",
		SuccessCode: http.StatusOK,
		Paginated:   true,
		NewInput:    func() Input { return &ListChannelsInput{} },
		NewOutput:   func() any { return &ListChannelsOutput{} },
	},
	{
		Name:        "ListChannelsAssociatedWithChannelFlow",
		Method:      http.MethodGet,
		Path:        "/channels",
		StaticQuery: "scope=channel-flow-associations",
		SuccessCode: http.StatusOK,
		Paginated:   true,
		NewInput:    func() Input { return &ListChannelsAssociatedWithChannelFlowInput{} },
		NewOutput:   func() any { return &ListChannelsAssociatedWithChannelFlowOutput{} },
	},
	{
		Name:        "ListChannelsModeratedByAppInstanceUser",
		Method:      http.MethodGet,
		Path:        "/channels",
		StaticQuery: "scope=app-instance-user-moderated-channels",
		SuccessCode: http.StatusOK,
		Paginated:   true,
		NewInput:    func() Input { return &ListChannelsModeratedByAppInstanceUserInput{} },
		NewOutput:   func() any { return &ListChannelsModeratedByAppInstanceUserOutput{} },
	},
	{
		Name:        "ListSubChannels",
		Method:      http.MethodGet,
		Path:        "/channels/{channelArn}/subchannels",
		SuccessCode: http.StatusOK,
		Paginated:   true,
		NewInput:    func() Input { return &ListSubChannelsInput{} },
		NewOutput:   func() any { return &ListSubChannelsOutput{} },
	},
	{
		Name:        "ListTagsForResource",
		Method:      http.MethodGet,
		Path:        "/tags",
		SuccessCode: http.StatusOK,
		NewInput:    func() Input { return &ListTagsForResourceInput{} },
		NewOutput:   func() any { return &ListTagsForResourceOutput{} },
	},
	{
		Name:        "PutChannelExpirationSettings",
		Method:      http.MethodPut,
		Path:        "/channels/{channelArn}/expiration-settings",
		SuccessCode: http.StatusOK,
		NewInput:    func() Input { return &PutChannelExpirationSettingsInput{} },
		NewOutput:   func() any { return &PutChannelExpirationSettingsOutput{} },
	},
	{
		Name:        "PutChannelMembershipPreferences",
		Method:      http.MethodPut,
		Path:        "/channels/{channelArn}/memberships/{memberArn}/preferences",
		SuccessCode: http.StatusOK,
		NewInput:    func() Input { return &PutChannelMembershipPreferencesInput{} },
		NewOutput:   func() any { return &PutChannelMembershipPreferencesOutput{} },
	},
	{
		Name:        "PutMessagingStreamingConfigurations",
		Method:      http.MethodPut,
		Path:        "/app-instances/{appInstanceArn}/streaming-configurations",
		SuccessCode: http.StatusOK,
		NewInput:    func() Input { return &PutMessagingStreamingConfigurationsInput{} },
		NewOutput:   func() any { return &PutMessagingStreamingConfigurationsOutput{} },
	},
	{
		Name:        "RedactChannelMessage",
		Method:      http.MethodPost,
		Path:        "/channels/{channelArn}/messages/{messageId}",
		StaticQuery: "operation=redact",
		SuccessCode: http.StatusOK,
		NewInput:    func() Input { return &RedactChannelMessageInput{} },
		NewOutput:   func() any { return &RedactChannelMessageOutput{} },
	},
	{
		Name:        "SearchChannels",
		Method:      http.MethodPost,
		Path:        "/channels",
		StaticQuery: "operation=search",
		SuccessCode: http.StatusOK,
		Paginated:   true,
		NewInput:    func() Input { return &SearchChannelsInput{} },
		NewOutput:   func() any { return &SearchChannelsOutput{} },
	},
	{
		Name:        "SendChannelMessage",
		Method:      http.MethodPost,
		Path:        "/channels/{channelArn}/messages",
		SuccessCode: http.StatusCreated,
		NewInput:    func() Input { return &SendChannelMessageInput{} },
		NewOutput:   func() any { return &SendChannelMessageOutput{} },
	},
	{
		Name:        "TagResource",
		Method:      http.MethodPost,
		Path:        "/tags",
		StaticQuery: "operation=tag-resource",
		SuccessCode: http.StatusNoContent,
		NewInput:    func() Input { return &TagResourceInput{} },
		NewOutput:   func() any { return &TagResourceOutput{} },
	},
	{
		Name:        "UntagResource",
		Method:      http.MethodPost,
		Path:        "/tags",
		StaticQuery: "operation=untag-resource",
		SuccessCode: http.StatusNoContent,
		NewInput:    func() Input { return &UntagResourceInput{} },
		NewOutput:   func() any { return &UntagResourceOutput{} },
	},
	{
		Name:        "UpdateChannel",
		Method:      http.MethodPut,
		Path:        "/channels/{channelArn}",
		SuccessCode: http.StatusOK,
		NewInput:    func() Input { return &UpdateChannelInput{} },
		NewOutput:   func() any { return &UpdateChannelOutput{} },
	},
	{
		Name:        "UpdateChannelFlow",
		Method:      http.MethodPut,
		Path:        "/channel-flows/{channelFlowArn}",
		SuccessCode: http.StatusOK,
		NewInput:    func() Input { return &UpdateChannelFlowInput{} },
		NewOutput:   func() any { return &UpdateChannelFlowOutput{} },
	},
	{
		Name:        "UpdateChannelMessage",
		Method:      http.MethodPut,
		Path:        "/channels/{channelArn}/messages/{messageId}",
		SuccessCode: http.StatusOK,
		NewInput:    func() Input { return &UpdateChannelMessageInput{} },
		NewOutput:   func() any { return &UpdateChannelMessageOutput{} },
	},
	{
		Name:        "UpdateChannelReadMarker",
		Method:      http.MethodPut,
		Path:        "/channels/{channelArn}/readMarker",
		SuccessCode: http.StatusOK,
		NewInput:    func() Input { return &UpdateChannelReadMarkerInput{} },
		NewOutput:   func() any { return &UpdateChannelReadMarkerOutput{} },
	},
}
