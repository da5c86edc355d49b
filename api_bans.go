package chimemessaging

import (
	"github.com/DrewBradfordXYZ/chimemessaging-go/core"
	"github.com/DrewBradfordXYZ/chimemessaging-go/types"
)

// CreateChannelBanInput is the input of CreateChannelBan.
//
// CreateChannelBan permanently bans a member from a channel. Moderators
// cannot be banned.
type CreateChannelBanInput struct {
	// ChannelArn is a required field
	ChannelArn *string `json:"-" location:"uri" locationName:"channelArn" min:"5" max:"1600" pattern:"ChimeArn" required:"true"`

	// MemberArn is a required field
	MemberArn *string `json:"MemberArn,omitempty" min:"5" max:"1600" pattern:"ChimeArn" required:"true"`

	// The ARN of the AppInstanceUser or AppInstanceBot making the API call.
	//
	// ChimeBearer is a required field
	ChimeBearer *string `json:"-" location:"header" locationName:"x-amz-chime-bearer" min:"5" max:"1600" pattern:"ChimeArn" required:"true"`
}

// Validate checks the input against the service constraints.
func (s *CreateChannelBanInput) Validate() error {
	return core.ValidateStruct("CreateChannelBanInput", s)
}

func (s CreateChannelBanInput) String() string {
	return core.Prettify(s)
}

// CreateChannelBanOutput is the output of CreateChannelBan.
type CreateChannelBanOutput struct {
	ChannelArn *string `json:"ChannelArn,omitempty" min:"5" max:"1600" pattern:"ChimeArn"`

	Member *types.Identity `json:"Member,omitempty"`
}

func (s CreateChannelBanOutput) String() string {
	return core.Prettify(s)
}

// DeleteChannelBanInput is the input of DeleteChannelBan.
//
// DeleteChannelBan removes a member from a channel's ban list.
type DeleteChannelBanInput struct {
	// ChannelArn is a required field
	ChannelArn *string `json:"-" location:"uri" locationName:"channelArn" min:"5" max:"1600" pattern:"ChimeArn" required:"true"`

	// MemberArn is a required field
	MemberArn *string `json:"-" location:"uri" locationName:"memberArn" min:"5" max:"1600" pattern:"ChimeArn" required:"true"`

	// The ARN of the AppInstanceUser or AppInstanceBot making the API call.
	//
	// ChimeBearer is a required field
	ChimeBearer *string `json:"-" location:"header" locationName:"x-amz-chime-bearer" min:"5" max:"1600" pattern:"ChimeArn" required:"true"`
}

// Validate checks the input against the service constraints.
func (s *DeleteChannelBanInput) Validate() error {
	return core.ValidateStruct("DeleteChannelBanInput", s)
}

func (s DeleteChannelBanInput) String() string {
	return core.Prettify(s)
}

// DeleteChannelBanOutput is the output of DeleteChannelBan.
type DeleteChannelBanOutput struct{}

func (s DeleteChannelBanOutput) String() string {
	return core.Prettify(s)
}

// DescribeChannelBanInput is the input of DescribeChannelBan.
//
// DescribeChannelBan returns the full details of a channel ban.
type DescribeChannelBanInput struct {
	// ChannelArn is a required field
	ChannelArn *string `json:"-" location:"uri" locationName:"channelArn" min:"5" max:"1600" pattern:"ChimeArn" required:"true"`

	// MemberArn is a required field
	MemberArn *string `json:"-" location:"uri" locationName:"memberArn" min:"5" max:"1600" pattern:"ChimeArn" required:"true"`

	// The ARN of the AppInstanceUser or AppInstanceBot making the API call.
	//
	// ChimeBearer is a required field
	ChimeBearer *string `json:"-" location:"header" locationName:"x-amz-chime-bearer" min:"5" max:"1600" pattern:"ChimeArn" required:"true"`
}

// Validate checks the input against the service constraints.
func (s *DescribeChannelBanInput) Validate() error {
	return core.ValidateStruct("DescribeChannelBanInput", s)
}

func (s DescribeChannelBanInput) String() string {
	return core.Prettify(s)
}

// DescribeChannelBanOutput is the output of DescribeChannelBan.
type DescribeChannelBanOutput struct {
	ChannelBan *types.ChannelBan `json:"ChannelBan,omitempty"`
}

func (s DescribeChannelBanOutput) String() string {
	return core.Prettify(s)
}

// ListChannelBansInput is the input of ListChannelBans.
//
// ListChannelBans lists all the users and bots banned from a channel.
type ListChannelBansInput struct {
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
func (s *ListChannelBansInput) Validate() error {
	return core.ValidateStruct("ListChannelBansInput", s)
}

func (s ListChannelBansInput) String() string {
	return core.Prettify(s)
}

// ListChannelBansOutput is the output of ListChannelBans.
type ListChannelBansOutput struct {
	ChannelArn *string `json:"ChannelArn,omitempty" min:"5" max:"1600" pattern:"ChimeArn"`

	// The token for the next page, nil on the last page.
	NextToken *string `json:"NextToken,omitempty" max:"2048" sensitive:"true"`

	ChannelBans []types.ChannelBanSummary `json:"ChannelBans,omitempty"`
}

func (s ListChannelBansOutput) String() string {
	return core.Prettify(s)
}

// Items returns the page's ChannelBans in service order.
func (s *ListChannelBansOutput) Items() []types.ChannelBanSummary {
	return s.ChannelBans
}

// NextPageToken returns the continuation token, nil on the last page.
func (s *ListChannelBansOutput) NextPageToken() *string {
	return s.NextToken
}
