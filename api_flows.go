package chimemessaging

import (
	"github.com/DrewBradfordXYZ/chimemessaging-go/core"
	"github.com/DrewBradfordXYZ/chimemessaging-go/types"
)

// AssociateChannelFlowInput is the input of AssociateChannelFlow.
//
// AssociateChannelFlow associates a channel flow with a channel. Once
// associated, all messages of the channel go through the flow processors.
type AssociateChannelFlowInput struct {
	// ChannelArn is a required field
	ChannelArn *string `json:"-" location:"uri" locationName:"channelArn" min:"5" max:"1600" pattern:"ChimeArn" required:"true"`

	// ChannelFlowArn is a required field
	ChannelFlowArn *string `json:"ChannelFlowArn,omitempty" min:"5" max:"1600" pattern:"ChimeArn" required:"true"`

	// The ARN of the AppInstanceUser or AppInstanceBot making the API call.
	//
	// ChimeBearer is a required field
	ChimeBearer *string `json:"-" location:"header" locationName:"x-amz-chime-bearer" min:"5" max:"1600" pattern:"ChimeArn" required:"true"`
}

// Validate checks the input against the service constraints.
func (s *AssociateChannelFlowInput) Validate() error {
	return core.ValidateStruct("AssociateChannelFlowInput", s)
}

func (s AssociateChannelFlowInput) String() string {
	return core.Prettify(s)
}

// AssociateChannelFlowOutput is the output of AssociateChannelFlow.
type AssociateChannelFlowOutput struct{}

func (s AssociateChannelFlowOutput) String() string {
	return core.Prettify(s)
}

// ChannelFlowCallbackInput is the input of ChannelFlowCallback.
//
// ChannelFlowCallback returns the result of a processor back to the
// channel flow.
type ChannelFlowCallbackInput struct {
	// The identifier passed to the processor by the service. Used for idempotency.
	//
	// CallbackId is a required field
	CallbackId *string `json:"CallbackId,omitempty" min:"32" max:"64" pattern:"CallbackId" required:"true"`

	// ChannelArn is a required field
	ChannelArn *string `json:"-" location:"uri" locationName:"channelArn" min:"5" max:"1600" pattern:"ChimeArn" required:"true"`

	// When true, the message is deleted instead of sent.
	DeleteResource *bool `json:"DeleteResource,omitempty"`

	// ChannelMessage is a required field
	ChannelMessage *types.ChannelMessageCallback `json:"ChannelMessage,omitempty" required:"true"`
}

// Validate checks the input against the service constraints.
func (s *ChannelFlowCallbackInput) Validate() error {
	return core.ValidateStruct("ChannelFlowCallbackInput", s)
}

func (s ChannelFlowCallbackInput) String() string {
	return core.Prettify(s)
}

func (s *ChannelFlowCallbackInput) idempotencyToken() **string {
	return &s.CallbackId
}

// ChannelFlowCallbackOutput is the output of ChannelFlowCallback.
type ChannelFlowCallbackOutput struct {
	ChannelArn *string `json:"ChannelArn,omitempty" min:"5" max:"1600" pattern:"ChimeArn"`

	CallbackId *string `json:"CallbackId,omitempty" min:"32" max:"64"`
}

func (s ChannelFlowCallbackOutput) String() string {
	return core.Prettify(s)
}

// CreateChannelFlowInput is the input of CreateChannelFlow.
//
// CreateChannelFlow creates a channel flow, a container for processors.
type CreateChannelFlowInput struct {
	// AppInstanceArn is a required field
	AppInstanceArn *string `json:"AppInstanceArn,omitempty" min:"5" max:"1600" pattern:"ChimeArn" required:"true"`

	// Processors run in ExecutionOrder; at most three.
	//
	// Processors is a required field
	Processors []types.Processor `json:"Processors,omitempty" min:"1" max:"3" required:"true"`

	// Name is a required field
	Name *string `json:"Name,omitempty" min:"1" max:"256" pattern:"ResourceName" required:"true" sensitive:"true"`

	Tags []types.Tag `json:"Tags,omitempty" min:"1" max:"50"`

	// The idempotency token. FillClientRequestToken sets one when absent.
	//
	// ClientRequestToken is a required field
	ClientRequestToken *string `json:"ClientRequestToken,omitempty" min:"2" max:"64" required:"true" sensitive:"true"`
}

// Validate checks the input against the service constraints.
func (s *CreateChannelFlowInput) Validate() error {
	return core.ValidateStruct("CreateChannelFlowInput", s)
}

func (s CreateChannelFlowInput) String() string {
	return core.Prettify(s)
}

func (s *CreateChannelFlowInput) idempotencyToken() **string {
	return &s.ClientRequestToken
}

// CreateChannelFlowOutput is the output of CreateChannelFlow.
type CreateChannelFlowOutput struct {
	ChannelFlowArn *string `json:"ChannelFlowArn,omitempty" min:"5" max:"1600" pattern:"ChimeArn"`
}

func (s CreateChannelFlowOutput) String() string {
	return core.Prettify(s)
}

// DeleteChannelFlowInput is the input of DeleteChannelFlow.
//
// DeleteChannelFlow deletes a channel flow. The flow must not be
// associated with any channel.
type DeleteChannelFlowInput struct {
	// ChannelFlowArn is a required field
	ChannelFlowArn *string `json:"-" location:"uri" locationName:"channelFlowArn" min:"5" max:"1600" pattern:"ChimeArn" required:"true"`
}

// Validate checks the input against the service constraints.
func (s *DeleteChannelFlowInput) Validate() error {
	return core.ValidateStruct("DeleteChannelFlowInput", s)
}

func (s DeleteChannelFlowInput) String() string {
	return core.Prettify(s)
}

// DeleteChannelFlowOutput is the output of DeleteChannelFlow.
type DeleteChannelFlowOutput struct{}

func (s DeleteChannelFlowOutput) String() string {
	return core.Prettify(s)
}

// DescribeChannelFlowInput is the input of DescribeChannelFlow.
//
// DescribeChannelFlow returns the full details of a channel flow.
type DescribeChannelFlowInput struct {
	// ChannelFlowArn is a required field
	ChannelFlowArn *string `json:"-" location:"uri" locationName:"channelFlowArn" min:"5" max:"1600" pattern:"ChimeArn" required:"true"`
}

// Validate checks the input against the service constraints.
func (s *DescribeChannelFlowInput) Validate() error {
	return core.ValidateStruct("DescribeChannelFlowInput", s)
}

func (s DescribeChannelFlowInput) String() string {
	return core.Prettify(s)
}

// DescribeChannelFlowOutput is the output of DescribeChannelFlow.
type DescribeChannelFlowOutput struct {
	ChannelFlow *types.ChannelFlow `json:"ChannelFlow,omitempty"`
}

func (s DescribeChannelFlowOutput) String() string {
	return core.Prettify(s)
}

// DisassociateChannelFlowInput is the input of DisassociateChannelFlow.
//
// DisassociateChannelFlow disassociates a channel flow from all its
// channels.
type DisassociateChannelFlowInput struct {
	// ChannelArn is a required field
	ChannelArn *string `json:"-" location:"uri" locationName:"channelArn" min:"5" max:"1600" pattern:"ChimeArn" required:"true"`

	// ChannelFlowArn is a required field
	ChannelFlowArn *string `json:"-" location:"uri" locationName:"channelFlowArn" min:"5" max:"1600" pattern:"ChimeArn" required:"true"`

	// The ARN of the AppInstanceUser or AppInstanceBot making the API call.
	//
	// ChimeBearer is a required field
	ChimeBearer *string `json:"-" location:"header" locationName:"x-amz-chime-bearer" min:"5" max:"1600" pattern:"ChimeArn" required:"true"`
}

// Validate checks the input against the service constraints.
func (s *DisassociateChannelFlowInput) Validate() error {
	return core.ValidateStruct("DisassociateChannelFlowInput", s)
}

func (s DisassociateChannelFlowInput) String() string {
	return core.Prettify(s)
}

// DisassociateChannelFlowOutput is the output of DisassociateChannelFlow.
type DisassociateChannelFlowOutput struct{}

func (s DisassociateChannelFlowOutput) String() string {
	return core.Prettify(s)
}

// ListChannelFlowsInput is the input of ListChannelFlows.
//
// ListChannelFlows returns a paginated list of all the channel flows
// created under an AppInstance.
type ListChannelFlowsInput struct {
	// AppInstanceArn is a required field
	AppInstanceArn *string `json:"-" location:"querystring" locationName:"app-instance-arn" min:"5" max:"1600" pattern:"ChimeArn" required:"true"`

	// The maximum number of items returned per page.
	MaxResults *int32 `json:"-" location:"querystring" locationName:"max-results" min:"1" max:"50"`

	// The token from a previous page. Pass it back unchanged.
	NextToken *string `json:"-" location:"querystring" locationName:"next-token" max:"2048" pattern:"NextToken" sensitive:"true"`
}

// Validate checks the input against the service constraints.
func (s *ListChannelFlowsInput) Validate() error {
	return core.ValidateStruct("ListChannelFlowsInput", s)
}

func (s ListChannelFlowsInput) String() string {
	return core.Prettify(s)
}

// ListChannelFlowsOutput is the output of ListChannelFlows.
type ListChannelFlowsOutput struct {
	ChannelFlows []types.ChannelFlowSummary `json:"ChannelFlows,omitempty"`

	// The token for the next page, nil on the last page.
	NextToken *string `json:"NextToken,omitempty" max:"2048" sensitive:"true"`
}

func (s ListChannelFlowsOutput) String() string {
	return core.Prettify(s)
}

// Items returns the page's ChannelFlows in service order.
func (s *ListChannelFlowsOutput) Items() []types.ChannelFlowSummary {
	return s.ChannelFlows
}

// NextPageToken returns the continuation token, nil on the last page.
func (s *ListChannelFlowsOutput) NextPageToken() *string {
	return s.NextToken
}

// ListChannelsAssociatedWithChannelFlowInput is the input of ListChannelsAssociatedWithChannelFlow.
//
// ListChannelsAssociatedWithChannelFlow lists all channels associated with
// a channel flow.
type ListChannelsAssociatedWithChannelFlowInput struct {
	// ChannelFlowArn is a required field
	ChannelFlowArn *string `json:"-" location:"querystring" locationName:"channel-flow-arn" min:"5" max:"1600" pattern:"ChimeArn" required:"true"`

	// The maximum number of items returned per page.
	MaxResults *int32 `json:"-" location:"querystring" locationName:"max-results" min:"1" max:"50"`

	// The token from a previous page. Pass it back unchanged.
	NextToken *string `json:"-" location:"querystring" locationName:"next-token" max:"2048" pattern:"NextToken" sensitive:"true"`
}

// Validate checks the input against the service constraints.
func (s *ListChannelsAssociatedWithChannelFlowInput) Validate() error {
	return core.ValidateStruct("ListChannelsAssociatedWithChannelFlowInput", s)
}

func (s ListChannelsAssociatedWithChannelFlowInput) String() string {
	return core.Prettify(s)
}

// ListChannelsAssociatedWithChannelFlowOutput is the output of ListChannelsAssociatedWithChannelFlow.
type ListChannelsAssociatedWithChannelFlowOutput struct {
	Channels []types.ChannelAssociatedWithFlowSummary `json:"Channels,omitempty"`

	// The token for the next page, nil on the last page.
	NextToken *string `json:"NextToken,omitempty" max:"2048" sensitive:"true"`
}

func (s ListChannelsAssociatedWithChannelFlowOutput) String() string {
	return core.Prettify(s)
}

// Items returns the page's Channels in service order.
func (s *ListChannelsAssociatedWithChannelFlowOutput) Items() []types.ChannelAssociatedWithFlowSummary {
	return s.Channels
}

// NextPageToken returns the continuation token, nil on the last page.
func (s *ListChannelsAssociatedWithChannelFlowOutput) NextPageToken() *string {
	return s.NextToken
}

// UpdateChannelFlowInput is the input of UpdateChannelFlow.
//
// UpdateChannelFlow updates channel flow attributes.
type UpdateChannelFlowInput struct {
	// ChannelFlowArn is a required field
	ChannelFlowArn *string `json:"-" location:"uri" locationName:"channelFlowArn" min:"5" max:"1600" pattern:"ChimeArn" required:"true"`

	// Processors run in ExecutionOrder; at most three.
	//
	// Processors is a required field
	Processors []types.Processor `json:"Processors,omitempty" min:"1" max:"3" required:"true"`

	// Name is a required field
	Name *string `json:"Name,omitempty" min:"1" max:"256" pattern:"ResourceName" required:"true" sensitive:"true"`
}

// Validate checks the input against the service constraints.
func (s *UpdateChannelFlowInput) Validate() error {
	return core.ValidateStruct("UpdateChannelFlowInput", s)
}

func (s UpdateChannelFlowInput) String() string {
	return core.Prettify(s)
}

// UpdateChannelFlowOutput is the output of UpdateChannelFlow.
type UpdateChannelFlowOutput struct {
	ChannelFlowArn *string `json:"ChannelFlowArn,omitempty" min:"5" max:"1600" pattern:"ChimeArn"`
}

func (s UpdateChannelFlowOutput) String() string {
	return core.Prettify(s)
}
