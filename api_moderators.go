package chimemessaging

import (
	"github.com/DrewBradfordXYZ/chimemessaging-go/core"
	"github.com/DrewBradfordXYZ/chimemessaging-go/types"
)

// CreateChannelModeratorInput is the input of CreateChannelModerator.
//
// CreateChannelModerator creates a new channel moderator.
type CreateChannelModeratorInput struct {
	// ChannelArn is a required field
	ChannelArn *string `json:"-" location:"uri" locationName:"channelArn" min:"5" max:"1600" pattern:"ChimeArn" required:"true"`

	// ChannelModeratorArn is a required field
	ChannelModeratorArn *string `json:"ChannelModeratorArn,omitempty" min:"5" max:"1600" pattern:"ChimeArn" required:"true"`

	// The ARN of the AppInstanceUser or AppInstanceBot making the API call.
	//
	// ChimeBearer is a required field
	ChimeBearer *string `json:"-" location:"header" locationName:"x-amz-chime-bearer" min:"5" max:"1600" pattern:"ChimeArn" required:"true"`
}

// Validate checks the input against the service constraints.
func (s *CreateChannelModeratorInput) Validate() error {
	return core.ValidateStruct("CreateChannelModeratorInput", s)
}

func (s CreateChannelModeratorInput) String() string {
	return core.Prettify(s)
}

// CreateChannelModeratorOutput is the output of CreateChannelModerator.
type CreateChannelModeratorOutput struct {
	ChannelArn *string `json:"ChannelArn,omitempty" min:"5" max:"1600" pattern:"ChimeArn"`

	ChannelModerator *types.Identity `json:"ChannelModerator,omitempty"`
}

func (s CreateChannelModeratorOutput) String() string {
	return core.Prettify(s)
}

// DeleteChannelModeratorInput is the input of DeleteChannelModerator.
//
// DeleteChannelModerator deletes a channel moderator.
type DeleteChannelModeratorInput struct {
	// ChannelArn is a required field
	ChannelArn *string `json:"-" location:"uri" locationName:"channelArn" min:"5" max:"1600" pattern:"ChimeArn" required:"true"`

	// ChannelModeratorArn is a required field
	ChannelModeratorArn *string `json:"-" location:"uri" locationName:"channelModeratorArn" min:"5" max:"1600" pattern:"ChimeArn" required:"true"`

	// The ARN of the AppInstanceUser or AppInstanceBot making the API call.
	//
	// ChimeBearer is a required field
	ChimeBearer *string `json:"-" location:"header" locationName:"x-amz-chime-bearer" min:"5" max:"1600" pattern:"ChimeArn" required:"true"`
}

// Validate checks the input against the service constraints.
func (s *DeleteChannelModeratorInput) Validate() error {
	return core.ValidateStruct("DeleteChannelModeratorInput", s)
}

func (s DeleteChannelModeratorInput) String() string {
	return core.Prettify(s)
}

// DeleteChannelModeratorOutput is the output of DeleteChannelModerator.
type DeleteChannelModeratorOutput struct{}

func (s DeleteChannelModeratorOutput) String() string {
	return core.Prettify(s)
}

// DescribeChannelModeratedByAppInstanceUserInput is the input of DescribeChannelModeratedByAppInstanceUser.
//
// DescribeChannelModeratedByAppInstanceUser returns the full details of a
// channel moderated by the specified AppInstanceUser.
type DescribeChannelModeratedByAppInstanceUserInput struct {
	// ChannelArn is a required field
	ChannelArn *string `json:"-" location:"uri" locationName:"channelArn" min:"5" max:"1600" pattern:"ChimeArn" required:"true"`

	// AppInstanceUserArn is a required field
	AppInstanceUserArn *string `json:"-" location:"querystring" locationName:"app-instance-user-arn" min:"5" max:"1600" pattern:"ChimeArn" required:"true"`

	// The ARN of the AppInstanceUser or AppInstanceBot making the API call.
	//
	// ChimeBearer is a required field
	ChimeBearer *string `json:"-" location:"header" locationName:"x-amz-chime-bearer" min:"5" max:"1600" pattern:"ChimeArn" required:"true"`
}

// Validate checks the input against the service constraints.
func (s *DescribeChannelModeratedByAppInstanceUserInput) Validate() error {
	return core.ValidateStruct("DescribeChannelModeratedByAppInstanceUserInput", s)
}

func (s DescribeChannelModeratedByAppInstanceUserInput) String() string {
	return core.Prettify(s)
}

// DescribeChannelModeratedByAppInstanceUserOutput is the output of DescribeChannelModeratedByAppInstanceUser.
type DescribeChannelModeratedByAppInstanceUserOutput struct {
	Channel *types.ChannelModeratedByAppInstanceUserSummary `json:"Channel,omitempty"`
}

func (s DescribeChannelModeratedByAppInstanceUserOutput) String() string {
	return core.Prettify(s)
}

// DescribeChannelModeratorInput is the input of DescribeChannelModerator.
//
// DescribeChannelModerator returns the full details of a single channel
// moderator.
type DescribeChannelModeratorInput struct {
	// ChannelArn is a required field
	ChannelArn *string `json:"-" location:"uri" locationName:"channelArn" min:"5" max:"1600" pattern:"ChimeArn" required:"true"`

	// ChannelModeratorArn is a required field
	ChannelModeratorArn *string `json:"-" location:"uri" locationName:"channelModeratorArn" min:"5" max:"1600" pattern:"ChimeArn" required:"true"`

	// The ARN of the AppInstanceUser or AppInstanceBot making the API call.
	//
	// ChimeBearer is a required field
	ChimeBearer *string `json:"-" location:"header" locationName:"x-amz-chime-bearer" min:"5" max:"1600" pattern:"ChimeArn" required:"true"`
}

// Validate checks the input against the service constraints.
func (s *DescribeChannelModeratorInput) Validate() error {
	return core.ValidateStruct("DescribeChannelModeratorInput", s)
}

func (s DescribeChannelModeratorInput) String() string {
	return core.Prettify(s)
}

// DescribeChannelModeratorOutput is the output of DescribeChannelModerator.
type DescribeChannelModeratorOutput struct {
	ChannelModerator *types.ChannelModerator `json:"ChannelModerator,omitempty"`
}

func (s DescribeChannelModeratorOutput) String() string {
	return core.Prettify(s)
}

// ListChannelModeratorsInput is the input of ListChannelModerators.
//
// ListChannelModerators lists all the moderators for a channel.
type ListChannelModeratorsInput struct {
	// ChannelArn is a required field
	ChannelArn *string `json:"-" location:"uri" locationName:"channelArn" min:"5" max:"1600" pattern:"ChimeArn" required:"true"`

	// The maximum number of items returned per page.
	MaxResults *int32 `json:"-" location:"querystring" locationName:"max-results" min:"1" max:"50"`

	// The token from a previous page. Pass it back unchanged.
	NextToken *string `json:"-" location:"querystring" locationName:"next-token" max:"2048" pattern:"NextToken" sensitive:"true"`

	// The ARN of the AppInstanceUser or AppInstanceBot making the API call.
	//
	// ChimeBearer is a required field
	ChimeBearer *string `json:"-" location:"header" locationName:"x-amz-chime-bearer" min:"5" max:"1600" pattern:"ChimeArn" required:"true"`
}

// Validate checks the input against the service constraints.
func (s *ListChannelModeratorsInput) Validate() error {
	return core.ValidateStruct("ListChannelModeratorsInput", s)
}

func (s ListChannelModeratorsInput) String() string {
	return core.Prettify(s)
}

// ListChannelModeratorsOutput is the output of ListChannelModerators.
type ListChannelModeratorsOutput struct {
	ChannelArn *string `json:"ChannelArn,omitempty" min:"5" max:"1600" pattern:"ChimeArn"`

	// The token for the next page, nil on the last page.
	NextToken *string `json:"NextToken,omitempty" max:"2048" sensitive:"true"`

	ChannelModerators []types.ChannelModeratorSummary `json:"ChannelModerators,omitempty"`
}

func (s ListChannelModeratorsOutput) String() string {
	return core.Prettify(s)
}

// Items returns the page's ChannelModerators in service order.
func (s *ListChannelModeratorsOutput) Items() []types.ChannelModeratorSummary {
	return s.ChannelModerators
}

// NextPageToken returns the continuation token, nil on the last page.
func (s *ListChannelModeratorsOutput) NextPageToken() *string {
	return s.NextToken
}

// ListChannelsModeratedByAppInstanceUserInput is the input of ListChannelsModeratedByAppInstanceUser.
//
// ListChannelsModeratedByAppInstanceUser lists all channels moderated by a
// user.
type ListChannelsModeratedByAppInstanceUserInput struct {
	AppInstanceUserArn *string `json:"-" location:"querystring" locationName:"app-instance-user-arn" min:"5" max:"1600" pattern:"ChimeArn"`

	// The maximum number of items returned per page.
	MaxResults *int32 `json:"-" location:"querystring" locationName:"max-results" min:"1" max:"50"`

	// The token from a previous page. Pass it back unchanged.
	NextToken *string `json:"-" location:"querystring" locationName:"next-token" max:"2048" pattern:"NextToken" sensitive:"true"`

	// The ARN of the AppInstanceUser or AppInstanceBot making the API call.
	//
	// ChimeBearer is a required field
	ChimeBearer *string `json:"-" location:"header" locationName:"x-amz-chime-bearer" min:"5" max:"1600" pattern:"ChimeArn" required:"true"`
}

// Validate checks the input against the service constraints.
func (s *ListChannelsModeratedByAppInstanceUserInput) Validate() error {
	return core.ValidateStruct("ListChannelsModeratedByAppInstanceUserInput", s)
}

func (s ListChannelsModeratedByAppInstanceUserInput) String() string {
	return core.Prettify(s)
}

// ListChannelsModeratedByAppInstanceUserOutput is the output of ListChannelsModeratedByAppInstanceUser.
type ListChannelsModeratedByAppInstanceUserOutput struct {
	Channels []types.ChannelModeratedByAppInstanceUserSummary `json:"Channels,omitempty"`

	// The token for the next page, nil on the last page.
	NextToken *string `json:"NextToken,omitempty" max:"2048" sensitive:"true"`
}

func (s ListChannelsModeratedByAppInstanceUserOutput) String() string {
	return core.Prettify(s)
}

// Items returns the page's Channels in service order.
func (s *ListChannelsModeratedByAppInstanceUserOutput) Items() []types.ChannelModeratedByAppInstanceUserSummary {
	return s.Channels
}

// NextPageToken returns the continuation token, nil on the last page.
func (s *ListChannelsModeratedByAppInstanceUserOutput) NextPageToken() *string {
	return s.NextToken
}
