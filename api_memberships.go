package chimemessaging

import (
	"github.com/DrewBradfordXYZ/chimemessaging-go/core"
	"github.com/DrewBradfordXYZ/chimemessaging-go/types"
)

// BatchCreateChannelMembershipInput is the input of BatchCreateChannelMembership.
//
// BatchCreateChannelMembership adds a specified number of users and bots
// to a channel.
type BatchCreateChannelMembershipInput struct {
	// ChannelArn is a required field
	ChannelArn *string `json:"-" location:"uri" locationName:"channelArn" min:"5" max:"1600" pattern:"ChimeArn" required:"true"`

	// HIDDEN members are not returned by ListChannelMemberships.
	Type types.ChannelMembershipType `json:"Type,omitempty"`

	// MemberArns is a required field
	MemberArns []string `json:"MemberArns,omitempty" min:"1" max:"100" elemmin:"5" elemmax:"1600" pattern:"ChimeArn" required:"true"`

	// The ARN of the AppInstanceUser or AppInstanceBot making the API call.
	//
	// ChimeBearer is a required field
	ChimeBearer *string `json:"-" location:"header" locationName:"x-amz-chime-bearer" min:"5" max:"1600" pattern:"ChimeArn" required:"true"`

	// The ID of the SubChannel. Only required for elastic channels.
	SubChannelId *string `json:"SubChannelId,omitempty" min:"1" max:"128" pattern:"SubChannelId"`
}

// Validate checks the input against the service constraints.
func (s *BatchCreateChannelMembershipInput) Validate() error {
	return core.ValidateStruct("BatchCreateChannelMembershipInput", s)
}

func (s BatchCreateChannelMembershipInput) String() string {
	return core.Prettify(s)
}

// BatchCreateChannelMembershipOutput is the output of BatchCreateChannelMembership.
type BatchCreateChannelMembershipOutput struct {
	BatchChannelMemberships *types.BatchChannelMemberships `json:"BatchChannelMemberships,omitempty"`

	// Members that could not be added, with the reason.
	Errors []types.BatchCreateChannelMembershipError `json:"Errors,omitempty"`
}

func (s BatchCreateChannelMembershipOutput) String() string {
	return core.Prettify(s)
}

// CreateChannelMembershipInput is the input of CreateChannelMembership.
//
// CreateChannelMembership adds a member to a channel.
type CreateChannelMembershipInput struct {
	// ChannelArn is a required field
	ChannelArn *string `json:"-" location:"uri" locationName:"channelArn" min:"5" max:"1600" pattern:"ChimeArn" required:"true"`

	// MemberArn is a required field
	MemberArn *string `json:"MemberArn,omitempty" min:"5" max:"1600" pattern:"ChimeArn" required:"true"`

	// Type is a required field
	Type types.ChannelMembershipType `json:"Type,omitempty" required:"true"`

	// The ARN of the AppInstanceUser or AppInstanceBot making the API call.
	//
	// ChimeBearer is a required field
	ChimeBearer *string `json:"-" location:"header" locationName:"x-amz-chime-bearer" min:"5" max:"1600" pattern:"ChimeArn" required:"true"`

	// The ID of the SubChannel. Only required for elastic channels.
	SubChannelId *string `json:"SubChannelId,omitempty" min:"1" max:"128" pattern:"SubChannelId"`
}

// Validate checks the input against the service constraints.
func (s *CreateChannelMembershipInput) Validate() error {
	return core.ValidateStruct("CreateChannelMembershipInput", s)
}

func (s CreateChannelMembershipInput) String() string {
	return core.Prettify(s)
}

// CreateChannelMembershipOutput is the output of CreateChannelMembership.
type CreateChannelMembershipOutput struct {
	ChannelArn *string `json:"ChannelArn,omitempty" min:"5" max:"1600" pattern:"ChimeArn"`

	Member *types.Identity `json:"Member,omitempty"`

	SubChannelId *string `json:"SubChannelId,omitempty" min:"1" max:"128" pattern:"SubChannelId"`
}

func (s CreateChannelMembershipOutput) String() string {
	return core.Prettify(s)
}

// DeleteChannelMembershipInput is the input of DeleteChannelMembership.
//
// DeleteChannelMembership removes a member from a channel.
type DeleteChannelMembershipInput struct {
	// ChannelArn is a required field
	ChannelArn *string `json:"-" location:"uri" locationName:"channelArn" min:"5" max:"1600" pattern:"ChimeArn" required:"true"`

	// MemberArn is a required field
	MemberArn *string `json:"-" location:"uri" locationName:"memberArn" min:"5" max:"1600" pattern:"ChimeArn" required:"true"`

	// The ARN of the AppInstanceUser or AppInstanceBot making the API call.
	//
	// ChimeBearer is a required field
	ChimeBearer *string `json:"-" location:"header" locationName:"x-amz-chime-bearer" min:"5" max:"1600" pattern:"ChimeArn" required:"true"`

	// The ID of the SubChannel. Only required for elastic channels.
	SubChannelId *string `json:"-" location:"querystring" locationName:"sub-channel-id" min:"1" max:"128" pattern:"SubChannelId"`
}

// Validate checks the input against the service constraints.
func (s *DeleteChannelMembershipInput) Validate() error {
	return core.ValidateStruct("DeleteChannelMembershipInput", s)
}

func (s DeleteChannelMembershipInput) String() string {
	return core.Prettify(s)
}

// DeleteChannelMembershipOutput is the output of DeleteChannelMembership.
type DeleteChannelMembershipOutput struct{}

func (s DeleteChannelMembershipOutput) String() string {
	return core.Prettify(s)
}

// DescribeChannelMembershipInput is the input of DescribeChannelMembership.
//
// DescribeChannelMembership returns the full details of a user's channel
// membership.
type DescribeChannelMembershipInput struct {
	// ChannelArn is a required field
	ChannelArn *string `json:"-" location:"uri" locationName:"channelArn" min:"5" max:"1600" pattern:"ChimeArn" required:"true"`

	// MemberArn is a required field
	MemberArn *string `json:"-" location:"uri" locationName:"memberArn" min:"5" max:"1600" pattern:"ChimeArn" required:"true"`

	// The ARN of the AppInstanceUser or AppInstanceBot making the API call.
	//
	// ChimeBearer is a required field
	ChimeBearer *string `json:"-" location:"header" locationName:"x-amz-chime-bearer" min:"5" max:"1600" pattern:"ChimeArn" required:"true"`

	// The ID of the SubChannel. Only required for elastic channels.
	SubChannelId *string `json:"-" location:"querystring" locationName:"sub-channel-id" min:"1" max:"128" pattern:"SubChannelId"`
}

// Validate checks the input against the service constraints.
func (s *DescribeChannelMembershipInput) Validate() error {
	return core.ValidateStruct("DescribeChannelMembershipInput", s)
}

func (s DescribeChannelMembershipInput) String() string {
	return core.Prettify(s)
}

// DescribeChannelMembershipOutput is the output of DescribeChannelMembership.
type DescribeChannelMembershipOutput struct {
	ChannelMembership *types.ChannelMembership `json:"ChannelMembership,omitempty"`
}

func (s DescribeChannelMembershipOutput) String() string {
	return core.Prettify(s)
}

// DescribeChannelMembershipForAppInstanceUserInput is the input of DescribeChannelMembershipForAppInstanceUser.
//
// DescribeChannelMembershipForAppInstanceUser returns the details of a
// channel based on the membership of the specified AppInstanceUser.
type DescribeChannelMembershipForAppInstanceUserInput struct {
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
func (s *DescribeChannelMembershipForAppInstanceUserInput) Validate() error {
	return core.ValidateStruct("DescribeChannelMembershipForAppInstanceUserInput", s)
}

func (s DescribeChannelMembershipForAppInstanceUserInput) String() string {
	return core.Prettify(s)
}

// DescribeChannelMembershipForAppInstanceUserOutput is the output of DescribeChannelMembershipForAppInstanceUser.
type DescribeChannelMembershipForAppInstanceUserOutput struct {
	ChannelMembership *types.ChannelMembershipForAppInstanceUserSummary `json:"ChannelMembership,omitempty"`
}

func (s DescribeChannelMembershipForAppInstanceUserOutput) String() string {
	return core.Prettify(s)
}

// ListChannelMembershipsInput is the input of ListChannelMemberships.
//
// ListChannelMemberships lists all channel memberships in a channel.
type ListChannelMembershipsInput struct {
	// ChannelArn is a required field
	ChannelArn *string `json:"-" location:"uri" locationName:"channelArn" min:"5" max:"1600" pattern:"ChimeArn" required:"true"`

	// Restricts the listing to DEFAULT or HIDDEN members.
	Type types.ChannelMembershipType `json:"-" location:"querystring" locationName:"type"`

	// The maximum number of items returned per page.
	MaxResults *int32 `json:"-" location:"querystring" locationName:"max-results" min:"1" max:"50"`

	// The token from a previous page. Pass it back unchanged.
	NextToken *string `json:"-" location:"querystring" locationName:"next-token" max:"2048" pattern:"NextToken" sensitive:"true"`

	// The ARN of the AppInstanceUser or AppInstanceBot making the API call.
	//
	// ChimeBearer is a required field
	ChimeBearer *string `json:"-" location:"header" locationName:"x-amz-chime-bearer" min:"5" max:"1600" pattern:"ChimeArn" required:"true"`

	// The ID of the SubChannel. Only required for elastic channels.
	SubChannelId *string `json:"-" location:"querystring" locationName:"sub-channel-id" min:"1" max:"128" pattern:"SubChannelId"`
}

// Validate checks the input against the service constraints.
func (s *ListChannelMembershipsInput) Validate() error {
	return core.ValidateStruct("ListChannelMembershipsInput", s)
}

func (s ListChannelMembershipsInput) String() string {
	return core.Prettify(s)
}

// ListChannelMembershipsOutput is the output of ListChannelMemberships.
type ListChannelMembershipsOutput struct {
	ChannelArn *string `json:"ChannelArn,omitempty" min:"5" max:"1600" pattern:"ChimeArn"`

	ChannelMemberships []types.ChannelMembershipSummary `json:"ChannelMemberships,omitempty"`

	// The token for the next page, nil on the last page.
	NextToken *string `json:"NextToken,omitempty" max:"2048" sensitive:"true"`
}

func (s ListChannelMembershipsOutput) String() string {
	return core.Prettify(s)
}

// Items returns the page's ChannelMemberships in service order.
func (s *ListChannelMembershipsOutput) Items() []types.ChannelMembershipSummary {
	return s.ChannelMemberships
}

// NextPageToken returns the continuation token, nil on the last page.
func (s *ListChannelMembershipsOutput) NextPageToken() *string {
	return s.NextToken
}

// ListChannelMembershipsForAppInstanceUserInput is the input of ListChannelMembershipsForAppInstanceUser.
//
// ListChannelMembershipsForAppInstanceUser lists all channels that an
// AppInstanceUser or AppInstanceBot is a part of.
type ListChannelMembershipsForAppInstanceUserInput struct {
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
func (s *ListChannelMembershipsForAppInstanceUserInput) Validate() error {
	return core.ValidateStruct("ListChannelMembershipsForAppInstanceUserInput", s)
}

func (s ListChannelMembershipsForAppInstanceUserInput) String() string {
	return core.Prettify(s)
}

// ListChannelMembershipsForAppInstanceUserOutput is the output of ListChannelMembershipsForAppInstanceUser.
type ListChannelMembershipsForAppInstanceUserOutput struct {
	ChannelMemberships []types.ChannelMembershipForAppInstanceUserSummary `json:"ChannelMemberships,omitempty"`

	// The token for the next page, nil on the last page.
	NextToken *string `json:"NextToken,omitempty" max:"2048" sensitive:"true"`
}

func (s ListChannelMembershipsForAppInstanceUserOutput) String() string {
	return core.Prettify(s)
}

// Items returns the page's ChannelMemberships in service order.
func (s *ListChannelMembershipsForAppInstanceUserOutput) Items() []types.ChannelMembershipForAppInstanceUserSummary {
	return s.ChannelMemberships
}

// NextPageToken returns the continuation token, nil on the last page.
func (s *ListChannelMembershipsForAppInstanceUserOutput) NextPageToken() *string {
	return s.NextToken
}
