package chimemessaging

import (
	"github.com/DrewBradfordXYZ/chimemessaging-go/core"
	"github.com/DrewBradfordXYZ/chimemessaging-go/types"
)

// DeleteChannelMessageInput is the input of DeleteChannelMessage.
//
// DeleteChannelMessage deletes a channel message. Only admins can delete
// messages.
type DeleteChannelMessageInput struct {
	// ChannelArn is a required field
	ChannelArn *string `json:"-" location:"uri" locationName:"channelArn" min:"5" max:"1600" pattern:"ChimeArn" required:"true"`

	// MessageId is a required field
	MessageId *string `json:"-" location:"uri" locationName:"messageId" min:"1" max:"128" pattern:"MessageId" required:"true"`

	// The ARN of the AppInstanceUser or AppInstanceBot making the API call.
	//
	// ChimeBearer is a required field
	ChimeBearer *string `json:"-" location:"header" locationName:"x-amz-chime-bearer" min:"5" max:"1600" pattern:"ChimeArn" required:"true"`

	// The ID of the SubChannel. Only required for elastic channels.
	SubChannelId *string `json:"-" location:"querystring" locationName:"sub-channel-id" min:"1" max:"128" pattern:"SubChannelId"`
}

// Validate checks the input against the service constraints.
func (s *DeleteChannelMessageInput) Validate() error {
	return core.ValidateStruct("DeleteChannelMessageInput", s)
}

func (s DeleteChannelMessageInput) String() string {
	return core.Prettify(s)
}

// DeleteChannelMessageOutput is the output of DeleteChannelMessage.
type DeleteChannelMessageOutput struct{}

func (s DeleteChannelMessageOutput) String() string {
	return core.Prettify(s)
}

// GetChannelMessageInput is the input of GetChannelMessage.
//
// GetChannelMessage gets the full details of a channel message.
type GetChannelMessageInput struct {
	// ChannelArn is a required field
	ChannelArn *string `json:"-" location:"uri" locationName:"channelArn" min:"5" max:"1600" pattern:"ChimeArn" required:"true"`

	// MessageId is a required field
	MessageId *string `json:"-" location:"uri" locationName:"messageId" min:"1" max:"128" pattern:"MessageId" required:"true"`

	// The ARN of the AppInstanceUser or AppInstanceBot making the API call.
	//
	// ChimeBearer is a required field
	ChimeBearer *string `json:"-" location:"header" locationName:"x-amz-chime-bearer" min:"5" max:"1600" pattern:"ChimeArn" required:"true"`

	// The ID of the SubChannel. Only required for elastic channels.
	SubChannelId *string `json:"-" location:"querystring" locationName:"sub-channel-id" min:"1" max:"128" pattern:"SubChannelId"`
}

// Validate checks the input against the service constraints.
func (s *GetChannelMessageInput) Validate() error {
	return core.ValidateStruct("GetChannelMessageInput", s)
}

func (s GetChannelMessageInput) String() string {
	return core.Prettify(s)
}

// GetChannelMessageOutput is the output of GetChannelMessage.
type GetChannelMessageOutput struct {
	ChannelMessage *types.ChannelMessage `json:"ChannelMessage,omitempty"`
}

func (s GetChannelMessageOutput) String() string {
	return core.Prettify(s)
}

// GetChannelMessageStatusInput is the input of GetChannelMessageStatus.
//
// GetChannelMessageStatus gets the status of a message when a channel flow
// is attached to the channel.
type GetChannelMessageStatusInput struct {
	// ChannelArn is a required field
	ChannelArn *string `json:"-" location:"uri" locationName:"channelArn" min:"5" max:"1600" pattern:"ChimeArn" required:"true"`

	// MessageId is a required field
	MessageId *string `json:"-" location:"uri" locationName:"messageId" min:"1" max:"128" pattern:"MessageId" required:"true"`

	// The ARN of the AppInstanceUser or AppInstanceBot making the API call.
	//
	// ChimeBearer is a required field
	ChimeBearer *string `json:"-" location:"header" locationName:"x-amz-chime-bearer" min:"5" max:"1600" pattern:"ChimeArn" required:"true"`

	// The ID of the SubChannel. Only required for elastic channels.
	SubChannelId *string `json:"-" location:"querystring" locationName:"sub-channel-id" min:"1" max:"128" pattern:"SubChannelId"`
}

// Validate checks the input against the service constraints.
func (s *GetChannelMessageStatusInput) Validate() error {
	return core.ValidateStruct("GetChannelMessageStatusInput", s)
}

func (s GetChannelMessageStatusInput) String() string {
	return core.Prettify(s)
}

// GetChannelMessageStatusOutput is the output of GetChannelMessageStatus.
type GetChannelMessageStatusOutput struct {
	Status *types.ChannelMessageStatusStructure `json:"Status,omitempty"`
}

func (s GetChannelMessageStatusOutput) String() string {
	return core.Prettify(s)
}

// ListChannelMessagesInput is the input of ListChannelMessages.
//
// ListChannelMessages lists all the messages in a channel, sorted by
// creation timestamp.
type ListChannelMessagesInput struct {
	// ChannelArn is a required field
	ChannelArn *string `json:"-" location:"uri" locationName:"channelArn" min:"5" max:"1600" pattern:"ChimeArn" required:"true"`

	// Defaults to DESCENDING on the service side.
	SortOrder types.SortOrder `json:"-" location:"querystring" locationName:"sort-order"`

	NotBefore *core.Timestamp `json:"-" location:"querystring" locationName:"not-before"`

	NotAfter *core.Timestamp `json:"-" location:"querystring" locationName:"not-after"`

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
func (s *ListChannelMessagesInput) Validate() error {
	return core.ValidateStruct("ListChannelMessagesInput", s)
}

func (s ListChannelMessagesInput) String() string {
	return core.Prettify(s)
}

// ListChannelMessagesOutput is the output of ListChannelMessages.
type ListChannelMessagesOutput struct {
	ChannelArn *string `json:"ChannelArn,omitempty" min:"5" max:"1600" pattern:"ChimeArn"`

	// The token for the next page, nil on the last page.
	NextToken *string `json:"NextToken,omitempty" max:"2048" sensitive:"true"`

	ChannelMessages []types.ChannelMessageSummary `json:"ChannelMessages,omitempty"`

	SubChannelId *string `json:"SubChannelId,omitempty" min:"1" max:"128" pattern:"SubChannelId"`
}

func (s ListChannelMessagesOutput) String() string {
	return core.Prettify(s)
}

// Items returns the page's ChannelMessages in service order.
func (s *ListChannelMessagesOutput) Items() []types.ChannelMessageSummary {
	return s.ChannelMessages
}

// NextPageToken returns the continuation token, nil on the last page.
func (s *ListChannelMessagesOutput) NextPageToken() *string {
	return s.NextToken
}

// RedactChannelMessageInput is the input of RedactChannelMessage.
//
// RedactChannelMessage redacts message content without deleting the
// message.
type RedactChannelMessageInput struct {
	// ChannelArn is a required field
	ChannelArn *string `json:"-" location:"uri" locationName:"channelArn" min:"5" max:"1600" pattern:"ChimeArn" required:"true"`

	// MessageId is a required field
	MessageId *string `json:"-" location:"uri" locationName:"messageId" min:"1" max:"128" pattern:"MessageId" required:"true"`

	// The ARN of the AppInstanceUser or AppInstanceBot making the API call.
	//
	// ChimeBearer is a required field
	ChimeBearer *string `json:"-" location:"header" locationName:"x-amz-chime-bearer" min:"5" max:"1600" pattern:"ChimeArn" required:"true"`

	// The ID of the SubChannel. Only required for elastic channels.
	SubChannelId *string `json:"SubChannelId,omitempty" min:"1" max:"128" pattern:"SubChannelId"`
}

// Validate checks the input against the service constraints.
func (s *RedactChannelMessageInput) Validate() error {
	return core.ValidateStruct("RedactChannelMessageInput", s)
}

func (s RedactChannelMessageInput) String() string {
	return core.Prettify(s)
}

// RedactChannelMessageOutput is the output of RedactChannelMessage.
type RedactChannelMessageOutput struct {
	ChannelArn *string `json:"ChannelArn,omitempty" min:"5" max:"1600" pattern:"ChimeArn"`

	MessageId *string `json:"MessageId,omitempty" min:"1" max:"128" pattern:"MessageId"`

	SubChannelId *string `json:"SubChannelId,omitempty" min:"1" max:"128" pattern:"SubChannelId"`
}

func (s RedactChannelMessageOutput) String() string {
	return core.Prettify(s)
}

// SendChannelMessageInput is the input of SendChannelMessage.
//
// SendChannelMessage sends a message to a channel.
type SendChannelMessageInput struct {
	// ChannelArn is a required field
	ChannelArn *string `json:"-" location:"uri" locationName:"channelArn" min:"5" max:"1600" pattern:"ChimeArn" required:"true"`

	// Content is a required field
	Content *string `json:"Content,omitempty" min:"1" required:"true" sensitive:"true"`

	// Type is a required field
	Type types.ChannelMessageType `json:"Type,omitempty" required:"true"`

	// NON_PERSISTENT messages are delivered but not stored.
	//
	// Persistence is a required field
	Persistence types.ChannelMessagePersistenceType `json:"Persistence,omitempty" required:"true"`

	Metadata *string `json:"Metadata,omitempty" max:"1024" sensitive:"true"`

	// The idempotency token. FillClientRequestToken sets one when absent.
	//
	// ClientRequestToken is a required field
	ClientRequestToken *string `json:"ClientRequestToken,omitempty" min:"2" max:"64" required:"true" sensitive:"true"`

	// The ARN of the AppInstanceUser or AppInstanceBot making the API call.
	//
	// ChimeBearer is a required field
	ChimeBearer *string `json:"-" location:"header" locationName:"x-amz-chime-bearer" min:"5" max:"1600" pattern:"ChimeArn" required:"true"`

	PushNotification *types.PushNotificationConfiguration `json:"PushNotification,omitempty"`

	MessageAttributes map[string]types.MessageAttributeValue `json:"MessageAttributes,omitempty" elemmin:"1" elemmax:"64"`

	// The ID of the SubChannel. Only required for elastic channels.
	SubChannelId *string `json:"SubChannelId,omitempty" min:"1" max:"128" pattern:"SubChannelId"`

	ContentType *string `json:"ContentType,omitempty" max:"45" sensitive:"true"`

	// Restricts visibility of the message to the target and the sender.
	Target []types.Target `json:"Target,omitempty" min:"1" max:"1"`
}

// Validate checks the input against the service constraints.
func (s *SendChannelMessageInput) Validate() error {
	return core.ValidateStruct("SendChannelMessageInput", s)
}

func (s SendChannelMessageInput) String() string {
	return core.Prettify(s)
}

func (s *SendChannelMessageInput) idempotencyToken() **string {
	return &s.ClientRequestToken
}

// SendChannelMessageOutput is the output of SendChannelMessage.
type SendChannelMessageOutput struct {
	ChannelArn *string `json:"ChannelArn,omitempty" min:"5" max:"1600" pattern:"ChimeArn"`

	MessageId *string `json:"MessageId,omitempty" min:"1" max:"128" pattern:"MessageId"`

	Status *types.ChannelMessageStatusStructure `json:"Status,omitempty"`

	SubChannelId *string `json:"SubChannelId,omitempty" min:"1" max:"128" pattern:"SubChannelId"`
}

func (s SendChannelMessageOutput) String() string {
	return core.Prettify(s)
}

// UpdateChannelMessageInput is the input of UpdateChannelMessage.
//
// UpdateChannelMessage updates the content of a message.
type UpdateChannelMessageInput struct {
	// ChannelArn is a required field
	ChannelArn *string `json:"-" location:"uri" locationName:"channelArn" min:"5" max:"1600" pattern:"ChimeArn" required:"true"`

	// MessageId is a required field
	MessageId *string `json:"-" location:"uri" locationName:"messageId" min:"1" max:"128" pattern:"MessageId" required:"true"`

	// Content is a required field
	Content *string `json:"Content,omitempty" min:"1" required:"true" sensitive:"true"`

	Metadata *string `json:"Metadata,omitempty" max:"1024" sensitive:"true"`

	// The ARN of the AppInstanceUser or AppInstanceBot making the API call.
	//
	// ChimeBearer is a required field
	ChimeBearer *string `json:"-" location:"header" locationName:"x-amz-chime-bearer" min:"5" max:"1600" pattern:"ChimeArn" required:"true"`

	// The ID of the SubChannel. Only required for elastic channels.
	SubChannelId *string `json:"SubChannelId,omitempty" min:"1" max:"128" pattern:"SubChannelId"`

	ContentType *string `json:"ContentType,omitempty" max:"45" sensitive:"true"`
}

// Validate checks the input against the service constraints.
func (s *UpdateChannelMessageInput) Validate() error {
	return core.ValidateStruct("UpdateChannelMessageInput", s)
}

func (s UpdateChannelMessageInput) String() string {
	return core.Prettify(s)
}

// UpdateChannelMessageOutput is the output of UpdateChannelMessage.
type UpdateChannelMessageOutput struct {
	ChannelArn *string `json:"ChannelArn,omitempty" min:"5" max:"1600" pattern:"ChimeArn"`

	MessageId *string `json:"MessageId,omitempty" min:"1" max:"128" pattern:"MessageId"`

	Status *types.ChannelMessageStatusStructure `json:"Status,omitempty"`

	SubChannelId *string `json:"SubChannelId,omitempty" min:"1" max:"128" pattern:"SubChannelId"`
}

func (s UpdateChannelMessageOutput) String() string {
	return core.Prettify(s)
}
