package chimemessaging

import (
	"github.com/DrewBradfordXYZ/chimemessaging-go/core"
	"github.com/DrewBradfordXYZ/chimemessaging-go/types"
)

// CreateChannelInput is the input of CreateChannel.
//
// CreateChannel creates a channel to which users and bots can be added and
// messages sent.
type CreateChannelInput struct {
	// AppInstanceArn is a required field
	AppInstanceArn *string `json:"AppInstanceArn,omitempty" min:"5" max:"1600" pattern:"ChimeArn" required:"true"`

	// Name is a required field
	Name *string `json:"Name,omitempty" min:"1" max:"256" pattern:"ResourceName" required:"true" sensitive:"true"`

	Mode types.ChannelMode `json:"Mode,omitempty"`

	Privacy types.ChannelPrivacy `json:"Privacy,omitempty"`

	Metadata *string `json:"Metadata,omitempty" max:"1024" sensitive:"true"`

	// The idempotency token. FillClientRequestToken sets one when absent.
	//
	// ClientRequestToken is a required field
	ClientRequestToken *string `json:"ClientRequestToken,omitempty" min:"2" max:"64" required:"true" sensitive:"true"`

	Tags []types.Tag `json:"Tags,omitempty" min:"1" max:"50"`

	// The ARN of the AppInstanceUser or AppInstanceBot making the API call.
	//
	// ChimeBearer is a required field
	ChimeBearer *string `json:"-" location:"header" locationName:"x-amz-chime-bearer" min:"5" max:"1600" pattern:"ChimeArn" required:"true"`

	// An optional caller-chosen channel ID.
	ChannelId *string `json:"ChannelId,omitempty" min:"1" max:"64" pattern:"ChannelId" sensitive:"true"`

	MemberArns []string `json:"MemberArns,omitempty" min:"1" max:"50" elemmin:"5" elemmax:"1600" pattern:"ChimeArn"`

	ModeratorArns []string `json:"ModeratorArns,omitempty" min:"1" max:"10" elemmin:"5" elemmax:"1600" pattern:"ChimeArn"`

	// Present only for elastic channels.
	ElasticChannelConfiguration *types.ElasticChannelConfiguration `json:"ElasticChannelConfiguration,omitempty"`

	ExpirationSettings *types.ExpirationSettings `json:"ExpirationSettings,omitempty"`
}

// Validate checks the input against the service constraints.
func (s *CreateChannelInput) Validate() error {
	return core.ValidateStruct("CreateChannelInput", s)
}

func (s CreateChannelInput) String() string {
	return core.Prettify(s)
}

func (s *CreateChannelInput) idempotencyToken() **string {
	return &s.ClientRequestToken
}

// CreateChannelOutput is the output of CreateChannel.
type CreateChannelOutput struct {
	ChannelArn *string `json:"ChannelArn,omitempty" min:"5" max:"1600" pattern:"ChimeArn"`
}

func (s CreateChannelOutput) String() string {
	return core.Prettify(s)
}

// DeleteChannelInput is the input of DeleteChannel.
//
// DeleteChannel immediately makes a channel and its memberships
// inaccessible and marks them for deletion.
type DeleteChannelInput struct {
	// ChannelArn is a required field
	ChannelArn *string `json:"-" location:"uri" locationName:"channelArn" min:"5" max:"1600" pattern:"ChimeArn" required:"true"`

	// The ARN of the AppInstanceUser or AppInstanceBot making the API call.
	//
	// ChimeBearer is a required field
	ChimeBearer *string `json:"-" location:"header" locationName:"x-amz-chime-bearer" min:"5" max:"1600" pattern:"ChimeArn" required:"true"`

	// The ID of the SubChannel. Only required for elastic channels.
	SubChannelId *string `json:"-" location:"querystring" locationName:"sub-channel-id" min:"1" max:"128" pattern:"SubChannelId"`
}

// Validate checks the input against the service constraints.
func (s *DeleteChannelInput) Validate() error {
	return core.ValidateStruct("DeleteChannelInput", s)
}

func (s DeleteChannelInput) String() string {
	return core.Prettify(s)
}

// DeleteChannelOutput is the output of DeleteChannel.
type DeleteChannelOutput struct{}

func (s DeleteChannelOutput) String() string {
	return core.Prettify(s)
}

// DescribeChannelInput is the input of DescribeChannel.
//
// DescribeChannel returns the full details of a channel.
type DescribeChannelInput struct {
	// ChannelArn is a required field
	ChannelArn *string `json:"-" location:"uri" locationName:"channelArn" min:"5" max:"1600" pattern:"ChimeArn" required:"true"`

	// The ARN of the AppInstanceUser or AppInstanceBot making the API call.
	//
	// ChimeBearer is a required field
	ChimeBearer *string `json:"-" location:"header" locationName:"x-amz-chime-bearer" min:"5" max:"1600" pattern:"ChimeArn" required:"true"`
}

// Validate checks the input against the service constraints.
func (s *DescribeChannelInput) Validate() error {
	return core.ValidateStruct("DescribeChannelInput", s)
}

func (s DescribeChannelInput) String() string {
	return core.Prettify(s)
}

// DescribeChannelOutput is the output of DescribeChannel.
type DescribeChannelOutput struct {
	Channel *types.Channel `json:"Channel,omitempty"`
}

func (s DescribeChannelOutput) String() string {
	return core.Prettify(s)
}

// ListChannelsInput is the input of ListChannels.
//
// ListChannels lists all channels in an AppInstance.
type ListChannelsInput struct {
	// AppInstanceArn is a required field
	AppInstanceArn *string `json:"-" location:"querystring" locationName:"app-instance-arn" min:"5" max:"1600" pattern:"ChimeArn" required:"true"`

	// Private channels are listed only for AppInstanceAdmins.
	Privacy types.ChannelPrivacy `json:"-" location:"querystring" locationName:"privacy"`

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
func (s *ListChannelsInput) Validate() error {
	return core.ValidateStruct("ListChannelsInput", s)
}

func (s ListChannelsInput) String() string {
	return core.Prettify(s)
}

// ListChannelsOutput is the output of ListChannels.
type ListChannelsOutput struct {
	Channels []types.ChannelSummary `json:"Channels,omitempty"`

	// The token for the next page, nil on the last page.
	NextToken *string `json:"NextToken,omitempty" max:"2048" sensitive:"true"`
}

func (s ListChannelsOutput) String() string {
	return core.Prettify(s)
}

// Items returns the page's Channels in service order.
func (s *ListChannelsOutput) Items() []types.ChannelSummary {
	return s.Channels
}

// NextPageToken returns the continuation token, nil on the last page.
func (s *ListChannelsOutput) NextPageToken() *string {
	return s.NextToken
}

// ListSubChannelsInput is the input of ListSubChannels.
//
// ListSubChannels lists all the SubChannels in an elastic channel.
type ListSubChannelsInput struct {
	// ChannelArn is a required field
	ChannelArn *string `json:"-" location:"uri" locationName:"channelArn" min:"5" max:"1600" pattern:"ChimeArn" required:"true"`

	// The ARN of the AppInstanceUser or AppInstanceBot making the API call.
	//
	// ChimeBearer is a required field
	ChimeBearer *string `json:"-" location:"header" locationName:"x-amz-chime-bearer" min:"5" max:"1600" pattern:"ChimeArn" required:"true"`

	// The maximum number of items returned per page.
	MaxResults *int32 `json:"-" location:"querystring" locationName:"max-results" min:"1" max:"50"`

	// The token from a previous page. Pass it back unchanged.
	NextToken *string `json:"-" location:"querystring" locationName:"next-token" max:"2048" pattern:"NextToken" sensitive:"true"`
}

// Validate checks the input against the service constraints.
func (s *ListSubChannelsInput) Validate() error {
	return core.ValidateStruct("ListSubChannelsInput", s)
}

func (s ListSubChannelsInput) String() string {
	return core.Prettify(s)
}

// ListSubChannelsOutput is the output of ListSubChannels.
type ListSubChannelsOutput struct {
	ChannelArn *string `json:"ChannelArn,omitempty" min:"5" max:"1600" pattern:"ChimeArn"`

	SubChannels []types.SubChannelSummary `json:"SubChannels,omitempty"`

	// The token for the next page, nil on the last page.
	NextToken *string `json:"NextToken,omitempty" max:"2048" sensitive:"true"`
}

func (s ListSubChannelsOutput) String() string {
	return core.Prettify(s)
}

// Items returns the page's SubChannels in service order.
func (s *ListSubChannelsOutput) Items() []types.SubChannelSummary {
	return s.SubChannels
}

// NextPageToken returns the continuation token, nil on the last page.
func (s *ListSubChannelsOutput) NextPageToken() *string {
	return s.NextToken
}

// PutChannelExpirationSettingsInput is the input of PutChannelExpirationSettings.
//
// PutChannelExpirationSettings sets the number of days before a channel is
// automatically deleted.
type PutChannelExpirationSettingsInput struct {
	// ChannelArn is a required field
	ChannelArn *string `json:"-" location:"uri" locationName:"channelArn" min:"5" max:"1600" pattern:"ChimeArn" required:"true"`

	// The ARN of the AppInstanceUser or AppInstanceBot making the API call.
	ChimeBearer *string `json:"-" location:"header" locationName:"x-amz-chime-bearer" min:"5" max:"1600" pattern:"ChimeArn"`

	// Nil removes the expiration settings.
	ExpirationSettings *types.ExpirationSettings `json:"ExpirationSettings,omitempty"`
}

// Validate checks the input against the service constraints.
func (s *PutChannelExpirationSettingsInput) Validate() error {
	return core.ValidateStruct("PutChannelExpirationSettingsInput", s)
}

func (s PutChannelExpirationSettingsInput) String() string {
	return core.Prettify(s)
}

// PutChannelExpirationSettingsOutput is the output of PutChannelExpirationSettings.
type PutChannelExpirationSettingsOutput struct {
	ChannelArn *string `json:"ChannelArn,omitempty" min:"5" max:"1600" pattern:"ChimeArn"`

	ExpirationSettings *types.ExpirationSettings `json:"ExpirationSettings,omitempty"`
}

func (s PutChannelExpirationSettingsOutput) String() string {
	return core.Prettify(s)
}

// SearchChannelsInput is the input of SearchChannels.
//
// SearchChannels allows the ChimeBearer to search channels by channel
// members.
type SearchChannelsInput struct {
	// The ARN of the AppInstanceUser or AppInstanceBot making the API call.
	ChimeBearer *string `json:"-" location:"header" locationName:"x-amz-chime-bearer" min:"5" max:"1600" pattern:"ChimeArn"`

	// Fields is a required field
	Fields []types.SearchField `json:"Fields,omitempty" min:"1" max:"20" required:"true"`

	// The maximum number of items returned per page.
	MaxResults *int32 `json:"-" location:"querystring" locationName:"max-results" min:"1" max:"50"`

	// The token from a previous page. Pass it back unchanged.
	NextToken *string `json:"-" location:"querystring" locationName:"next-token" max:"2048" pattern:"NextToken" sensitive:"true"`
}

// Validate checks the input against the service constraints.
func (s *SearchChannelsInput) Validate() error {
	return core.ValidateStruct("SearchChannelsInput", s)
}

func (s SearchChannelsInput) String() string {
	return core.Prettify(s)
}

// SearchChannelsOutput is the output of SearchChannels.
type SearchChannelsOutput struct {
	Channels []types.ChannelSummary `json:"Channels,omitempty"`

	// The token for the next page, nil on the last page.
	NextToken *string `json:"NextToken,omitempty" max:"2048" sensitive:"true"`
}

func (s SearchChannelsOutput) String() string {
	return core.Prettify(s)
}

// Items returns the page's Channels in service order.
func (s *SearchChannelsOutput) Items() []types.ChannelSummary {
	return s.Channels
}

// NextPageToken returns the continuation token, nil on the last page.
func (s *SearchChannelsOutput) NextPageToken() *string {
	return s.NextToken
}

// UpdateChannelInput is the input of UpdateChannel.
//
// UpdateChannel updates a channel's name, mode and metadata.
type UpdateChannelInput struct {
	// ChannelArn is a required field
	ChannelArn *string `json:"-" location:"uri" locationName:"channelArn" min:"5" max:"1600" pattern:"ChimeArn" required:"true"`

	Name *string `json:"Name,omitempty" min:"1" max:"256" pattern:"ResourceName" sensitive:"true"`

	Mode types.ChannelMode `json:"Mode,omitempty"`

	Metadata *string `json:"Metadata,omitempty" max:"1024" sensitive:"true"`

	// The ARN of the AppInstanceUser or AppInstanceBot making the API call.
	//
	// ChimeBearer is a required field
	ChimeBearer *string `json:"-" location:"header" locationName:"x-amz-chime-bearer" min:"5" max:"1600" pattern:"ChimeArn" required:"true"`
}

// Validate checks the input against the service constraints.
func (s *UpdateChannelInput) Validate() error {
	return core.ValidateStruct("UpdateChannelInput", s)
}

func (s UpdateChannelInput) String() string {
	return core.Prettify(s)
}

// UpdateChannelOutput is the output of UpdateChannel.
type UpdateChannelOutput struct {
	ChannelArn *string `json:"ChannelArn,omitempty" min:"5" max:"1600" pattern:"ChimeArn"`
}

func (s UpdateChannelOutput) String() string {
	return core.Prettify(s)
}

// UpdateChannelReadMarkerInput is the input of UpdateChannelReadMarker.
//
// UpdateChannelReadMarker sets the timestamp to the point when a user last
// read messages in a channel.
type UpdateChannelReadMarkerInput struct {
	// ChannelArn is a required field
	ChannelArn *string `json:"-" location:"uri" locationName:"channelArn" min:"5" max:"1600" pattern:"ChimeArn" required:"true"`

	// The ARN of the AppInstanceUser or AppInstanceBot making the API call.
	//
	// ChimeBearer is a required field
	ChimeBearer *string `json:"-" location:"header" locationName:"x-amz-chime-bearer" min:"5" max:"1600" pattern:"ChimeArn" required:"true"`
}

// Validate checks the input against the service constraints.
func (s *UpdateChannelReadMarkerInput) Validate() error {
	return core.ValidateStruct("UpdateChannelReadMarkerInput", s)
}

func (s UpdateChannelReadMarkerInput) String() string {
	return core.Prettify(s)
}

// UpdateChannelReadMarkerOutput is the output of UpdateChannelReadMarker.
type UpdateChannelReadMarkerOutput struct {
	ChannelArn *string `json:"ChannelArn,omitempty" min:"5" max:"1600" pattern:"ChimeArn"`

	SubChannelId *string `json:"SubChannelId,omitempty" min:"1" max:"128" pattern:"SubChannelId"`
}

func (s UpdateChannelReadMarkerOutput) String() string {
	return core.Prettify(s)
}
