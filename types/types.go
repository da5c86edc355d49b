package types

import "github.com/DrewBradfordXYZ/chimemessaging-go/core"

// AppInstanceUserMembershipSummary summarizes a user's membership in a channel.
type AppInstanceUserMembershipSummary struct {
	// The time at which a message was last read.
	ReadMarkerTimestamp *core.Timestamp `json:"ReadMarkerTimestamp,omitempty"`

	// The ID of the SubChannel that the AppInstanceUser is a member of.
	SubChannelId *string `json:"SubChannelId,omitempty" min:"1" max:"128" pattern:"SubChannelId"`

	// The type of ChannelMembership.
	Type ChannelMembershipType `json:"Type,omitempty"`
}

func (s *AppInstanceUserMembershipSummary) Validate() error {
	return core.ValidateStruct("AppInstanceUserMembershipSummary", s)
}

func (s AppInstanceUserMembershipSummary) String() string {
	return core.Prettify(s)
}

// BatchChannelMemberships is the membership information of a batch create.
type BatchChannelMemberships struct {
	ChannelArn *string `json:"ChannelArn,omitempty" min:"5" max:"1600" pattern:"ChimeArn"`

	// The identifier of the member who invited another member.
	InvokedBy *Identity `json:"InvokedBy,omitempty"`

	// The users successfully added to the request.
	Members []Identity `json:"Members,omitempty"`

	SubChannelId *string `json:"SubChannelId,omitempty" min:"1" max:"128" pattern:"SubChannelId"`

	Type ChannelMembershipType `json:"Type,omitempty"`
}

func (s *BatchChannelMemberships) Validate() error {
	return core.ValidateStruct("BatchChannelMemberships", s)
}

func (s BatchChannelMemberships) String() string {
	return core.Prettify(s)
}

// BatchCreateChannelMembershipError is a per-member failure of a batch create.
type BatchCreateChannelMembershipError struct {
	ErrorCode ErrorCode `json:"ErrorCode,omitempty"`

	ErrorMessage *string `json:"ErrorMessage,omitempty"`

	// The AppInstanceUserArn of the member that the service couldn't add.
	MemberArn *string `json:"MemberArn,omitempty" min:"5" max:"1600" pattern:"ChimeArn"`
}

func (s *BatchCreateChannelMembershipError) Validate() error {
	return core.ValidateStruct("BatchCreateChannelMembershipError", s)
}

func (s BatchCreateChannelMembershipError) String() string {
	return core.Prettify(s)
}

// Channel is the details of a channel.
type Channel struct {
	ChannelArn *string `json:"ChannelArn,omitempty" min:"5" max:"1600" pattern:"ChimeArn"`

	// The ARN of the channel flow processing messages of this channel.
	ChannelFlowArn *string `json:"ChannelFlowArn,omitempty" min:"5" max:"1600" pattern:"ChimeArn"`

	// The AppInstanceUser who created the channel.
	CreatedBy *Identity `json:"CreatedBy,omitempty"`

	CreatedTimestamp *core.Timestamp `json:"CreatedTimestamp,omitempty"`

	// Present only for elastic channels.
	ElasticChannelConfiguration *ElasticChannelConfiguration `json:"ElasticChannelConfiguration,omitempty"`

	ExpirationSettings *ExpirationSettings `json:"ExpirationSettings,omitempty"`

	LastMessageTimestamp *core.Timestamp `json:"LastMessageTimestamp,omitempty"`

	LastUpdatedTimestamp *core.Timestamp `json:"LastUpdatedTimestamp,omitempty"`

	Metadata *string `json:"Metadata,omitempty" max:"1024" sensitive:"true"`

	Mode ChannelMode `json:"Mode,omitempty"`

	Name *string `json:"Name,omitempty" min:"1" max:"256" pattern:"ResourceName" sensitive:"true"`

	Privacy ChannelPrivacy `json:"Privacy,omitempty"`
}

func (s *Channel) Validate() error {
	return core.ValidateStruct("Channel", s)
}

func (s Channel) String() string {
	return core.Prettify(s)
}

// ChannelAssociatedWithFlowSummary summarizes a channel associated with a flow.
type ChannelAssociatedWithFlowSummary struct {
	ChannelArn *string `json:"ChannelArn,omitempty" min:"5" max:"1600" pattern:"ChimeArn"`

	Metadata *string `json:"Metadata,omitempty" max:"1024" sensitive:"true"`

	Mode ChannelMode `json:"Mode,omitempty"`

	Name *string `json:"Name,omitempty" min:"1" max:"256" pattern:"ResourceName" sensitive:"true"`

	Privacy ChannelPrivacy `json:"Privacy,omitempty"`
}

func (s *ChannelAssociatedWithFlowSummary) Validate() error {
	return core.ValidateStruct("ChannelAssociatedWithFlowSummary", s)
}

func (s ChannelAssociatedWithFlowSummary) String() string {
	return core.Prettify(s)
}

// ChannelBan is the details of a channel ban.
type ChannelBan struct {
	ChannelArn *string `json:"ChannelArn,omitempty" min:"5" max:"1600" pattern:"ChimeArn"`

	// The AppInstanceUser who created the ban.
	CreatedBy *Identity `json:"CreatedBy,omitempty"`

	CreatedTimestamp *core.Timestamp `json:"CreatedTimestamp,omitempty"`

	// The member being banned from the channel.
	Member *Identity `json:"Member,omitempty"`
}

func (s *ChannelBan) Validate() error {
	return core.ValidateStruct("ChannelBan", s)
}

func (s ChannelBan) String() string {
	return core.Prettify(s)
}

// ChannelBanSummary summarizes a channel ban.
type ChannelBanSummary struct {
	Member *Identity `json:"Member,omitempty"`
}

func (s *ChannelBanSummary) Validate() error {
	return core.ValidateStruct("ChannelBanSummary", s)
}

func (s ChannelBanSummary) String() string {
	return core.Prettify(s)
}

// ChannelFlow is the details of a channel flow.
type ChannelFlow struct {
	ChannelFlowArn *string `json:"ChannelFlowArn,omitempty" min:"5" max:"1600" pattern:"ChimeArn"`

	CreatedTimestamp *core.Timestamp `json:"CreatedTimestamp,omitempty"`

	LastUpdatedTimestamp *core.Timestamp `json:"LastUpdatedTimestamp,omitempty"`

	Name *string `json:"Name,omitempty" min:"1" max:"256" pattern:"ResourceName" sensitive:"true"`

	// Processors run in ExecutionOrder.
	Processors []Processor `json:"Processors,omitempty" min:"1" max:"3"`
}

func (s *ChannelFlow) Validate() error {
	return core.ValidateStruct("ChannelFlow", s)
}

func (s ChannelFlow) String() string {
	return core.Prettify(s)
}

// ChannelFlowSummary summarizes a channel flow.
type ChannelFlowSummary struct {
	ChannelFlowArn *string `json:"ChannelFlowArn,omitempty" min:"5" max:"1600" pattern:"ChimeArn"`

	Name *string `json:"Name,omitempty" min:"1" max:"256" pattern:"ResourceName" sensitive:"true"`

	Processors []Processor `json:"Processors,omitempty" min:"1" max:"3"`
}

func (s *ChannelFlowSummary) Validate() error {
	return core.ValidateStruct("ChannelFlowSummary", s)
}

func (s ChannelFlowSummary) String() string {
	return core.Prettify(s)
}

// ChannelMembership is the details of a channel member.
type ChannelMembership struct {
	ChannelArn *string `json:"ChannelArn,omitempty" min:"5" max:"1600" pattern:"ChimeArn"`

	CreatedTimestamp *core.Timestamp `json:"CreatedTimestamp,omitempty"`

	// The identifier of the member who invited another member.
	InvitedBy *Identity `json:"InvitedBy,omitempty"`

	LastUpdatedTimestamp *core.Timestamp `json:"LastUpdatedTimestamp,omitempty"`

	Member *Identity `json:"Member,omitempty"`

	SubChannelId *string `json:"SubChannelId,omitempty" min:"1" max:"128" pattern:"SubChannelId"`

	Type ChannelMembershipType `json:"Type,omitempty"`
}

func (s *ChannelMembership) Validate() error {
	return core.ValidateStruct("ChannelMembership", s)
}

func (s ChannelMembership) String() string {
	return core.Prettify(s)
}

// ChannelMembershipForAppInstanceUserSummary is a channel seen from one of
// its members.
type ChannelMembershipForAppInstanceUserSummary struct {
	AppInstanceUserMembershipSummary *AppInstanceUserMembershipSummary `json:"AppInstanceUserMembershipSummary,omitempty"`

	ChannelSummary *ChannelSummary `json:"ChannelSummary,omitempty"`
}

func (s *ChannelMembershipForAppInstanceUserSummary) Validate() error {
	return core.ValidateStruct("ChannelMembershipForAppInstanceUserSummary", s)
}

func (s ChannelMembershipForAppInstanceUserSummary) String() string {
	return core.Prettify(s)
}

// ChannelMembershipPreferences holds a member's per-channel preferences.
type ChannelMembershipPreferences struct {
	PushNotifications *PushNotificationPreferences `json:"PushNotifications,omitempty"`
}

func (s *ChannelMembershipPreferences) Validate() error {
	return core.ValidateStruct("ChannelMembershipPreferences", s)
}

func (s ChannelMembershipPreferences) String() string {
	return core.Prettify(s)
}

// ChannelMembershipSummary summarizes a channel membership.
type ChannelMembershipSummary struct {
	Member *Identity `json:"Member,omitempty"`
}

func (s *ChannelMembershipSummary) Validate() error {
	return core.ValidateStruct("ChannelMembershipSummary", s)
}

func (s ChannelMembershipSummary) String() string {
	return core.Prettify(s)
}

// ChannelMessage is the details of a message in a channel.
type ChannelMessage struct {
	ChannelArn *string `json:"ChannelArn,omitempty" min:"5" max:"1600" pattern:"ChimeArn"`

	Content *string `json:"Content,omitempty" sensitive:"true"`

	// The content type of the message, such as application/amz-chime-lex-msgs.
	ContentType *string `json:"ContentType,omitempty" max:"45" sensitive:"true"`

	CreatedTimestamp *core.Timestamp `json:"CreatedTimestamp,omitempty"`

	LastEditedTimestamp *core.Timestamp `json:"LastEditedTimestamp,omitempty"`

	LastUpdatedTimestamp *core.Timestamp `json:"LastUpdatedTimestamp,omitempty"`

	// Attributes used for push notification filter rules.
	MessageAttributes map[string]MessageAttributeValue `json:"MessageAttributes,omitempty" elemmin:"1" elemmax:"64"`

	MessageId *string `json:"MessageId,omitempty" min:"1" max:"128" pattern:"MessageId"`

	Metadata *string `json:"Metadata,omitempty" max:"1024" sensitive:"true"`

	Persistence ChannelMessagePersistenceType `json:"Persistence,omitempty"`

	// Whether the message was redacted.
	Redacted *bool `json:"Redacted,omitempty"`

	Sender *Identity `json:"Sender,omitempty"`

	// The status of the message when a channel flow is attached.
	Status *ChannelMessageStatusStructure `json:"Status,omitempty"`

	SubChannelId *string `json:"SubChannelId,omitempty" min:"1" max:"128" pattern:"SubChannelId"`

	// The target of a targeted message. Only the target and the sender can
	// view it.
	Target []Target `json:"Target,omitempty" min:"1" max:"1"`

	Type ChannelMessageType `json:"Type,omitempty"`
}

func (s *ChannelMessage) Validate() error {
	return core.ValidateStruct("ChannelMessage", s)
}

func (s ChannelMessage) String() string {
	return core.Prettify(s)
}

// ChannelMessageCallback is the message a processor returns to a channel flow.
type ChannelMessageCallback struct {
	Content *string `json:"Content,omitempty" min:"1" sensitive:"true"`

	ContentType *string `json:"ContentType,omitempty" max:"45" sensitive:"true"`

	MessageAttributes map[string]MessageAttributeValue `json:"MessageAttributes,omitempty" elemmin:"1" elemmax:"64"`

	// MessageId is a required field
	MessageId *string `json:"MessageId,omitempty" min:"1" max:"128" pattern:"MessageId" required:"true"`

	Metadata *string `json:"Metadata,omitempty" max:"1024" sensitive:"true"`

	PushNotification *PushNotificationConfiguration `json:"PushNotification,omitempty"`

	SubChannelId *string `json:"SubChannelId,omitempty" min:"1" max:"128" pattern:"SubChannelId"`
}

func (s *ChannelMessageCallback) Validate() error {
	return core.ValidateStruct("ChannelMessageCallback", s)
}

func (s ChannelMessageCallback) String() string {
	return core.Prettify(s)
}

// ChannelMessageStatusStructure is the status of a message routed through a
// channel flow.
type ChannelMessageStatusStructure struct {
	// Details of the current status.
	Detail *string `json:"Detail,omitempty"`

	Value ChannelMessageStatus `json:"Value,omitempty"`
}

func (s *ChannelMessageStatusStructure) Validate() error {
	return core.ValidateStruct("ChannelMessageStatusStructure", s)
}

func (s ChannelMessageStatusStructure) String() string {
	return core.Prettify(s)
}

// ChannelMessageSummary summarizes a message.
type ChannelMessageSummary struct {
	Content *string `json:"Content,omitempty" sensitive:"true"`

	ContentType *string `json:"ContentType,omitempty" max:"45" sensitive:"true"`

	CreatedTimestamp *core.Timestamp `json:"CreatedTimestamp,omitempty"`

	LastEditedTimestamp *core.Timestamp `json:"LastEditedTimestamp,omitempty"`

	LastUpdatedTimestamp *core.Timestamp `json:"LastUpdatedTimestamp,omitempty"`

	MessageAttributes map[string]MessageAttributeValue `json:"MessageAttributes,omitempty" elemmin:"1" elemmax:"64"`

	MessageId *string `json:"MessageId,omitempty" min:"1" max:"128" pattern:"MessageId"`

	Metadata *string `json:"Metadata,omitempty" max:"1024" sensitive:"true"`

	Redacted *bool `json:"Redacted,omitempty"`

	Sender *Identity `json:"Sender,omitempty"`

	Status *ChannelMessageStatusStructure `json:"Status,omitempty"`

	Target []Target `json:"Target,omitempty" min:"1" max:"1"`

	Type ChannelMessageType `json:"Type,omitempty"`
}

func (s *ChannelMessageSummary) Validate() error {
	return core.ValidateStruct("ChannelMessageSummary", s)
}

func (s ChannelMessageSummary) String() string {
	return core.Prettify(s)
}

// ChannelModeratedByAppInstanceUserSummary is a channel moderated by a user.
type ChannelModeratedByAppInstanceUserSummary struct {
	ChannelSummary *ChannelSummary `json:"ChannelSummary,omitempty"`
}

func (s *ChannelModeratedByAppInstanceUserSummary) Validate() error {
	return core.ValidateStruct("ChannelModeratedByAppInstanceUserSummary", s)
}

func (s ChannelModeratedByAppInstanceUserSummary) String() string {
	return core.Prettify(s)
}

// ChannelModerator is the details of a channel moderator.
type ChannelModerator struct {
	ChannelArn *string `json:"ChannelArn,omitempty" min:"5" max:"1600" pattern:"ChimeArn"`

	CreatedBy *Identity `json:"CreatedBy,omitempty"`

	CreatedTimestamp *core.Timestamp `json:"CreatedTimestamp,omitempty"`

	Moderator *Identity `json:"Moderator,omitempty"`
}

func (s *ChannelModerator) Validate() error {
	return core.ValidateStruct("ChannelModerator", s)
}

func (s ChannelModerator) String() string {
	return core.Prettify(s)
}

// ChannelModeratorSummary summarizes a channel moderator.
type ChannelModeratorSummary struct {
	Moderator *Identity `json:"Moderator,omitempty"`
}

func (s *ChannelModeratorSummary) Validate() error {
	return core.ValidateStruct("ChannelModeratorSummary", s)
}

func (s ChannelModeratorSummary) String() string {
	return core.Prettify(s)
}

// ChannelSummary summarizes a channel.
type ChannelSummary struct {
	ChannelArn *string `json:"ChannelArn,omitempty" min:"5" max:"1600" pattern:"ChimeArn"`

	LastMessageTimestamp *core.Timestamp `json:"LastMessageTimestamp,omitempty"`

	Metadata *string `json:"Metadata,omitempty" max:"1024" sensitive:"true"`

	Mode ChannelMode `json:"Mode,omitempty"`

	Name *string `json:"Name,omitempty" min:"1" max:"256" pattern:"ResourceName" sensitive:"true"`

	Privacy ChannelPrivacy `json:"Privacy,omitempty"`
}

func (s *ChannelSummary) Validate() error {
	return core.ValidateStruct("ChannelSummary", s)
}

func (s ChannelSummary) String() string {
	return core.Prettify(s)
}

// ElasticChannelConfiguration sizes the SubChannels of an elastic channel.
type ElasticChannelConfiguration struct {
	// MaximumSubChannels is a required field
	MaximumSubChannels *int32 `json:"MaximumSubChannels,omitempty" min:"2" required:"true"`

	// MinimumMembershipPercentage is a required field
	MinimumMembershipPercentage *int32 `json:"MinimumMembershipPercentage,omitempty" min:"1" max:"40" required:"true"`

	// TargetMembershipsPerSubChannel is a required field
	TargetMembershipsPerSubChannel *int32 `json:"TargetMembershipsPerSubChannel,omitempty" min:"2" required:"true"`
}

func (s *ElasticChannelConfiguration) Validate() error {
	return core.ValidateStruct("ElasticChannelConfiguration", s)
}

func (s ElasticChannelConfiguration) String() string {
	return core.Prettify(s)
}

// ExpirationSettings controls when a channel is deleted automatically.
type ExpirationSettings struct {
	// ExpirationCriterion is a required field
	ExpirationCriterion ExpirationCriterion `json:"ExpirationCriterion,omitempty" required:"true"`

	// The period in days after which the channel is deleted.
	//
	// ExpirationDays is a required field
	ExpirationDays *int32 `json:"ExpirationDays,omitempty" min:"1" max:"5475" required:"true"`
}

func (s *ExpirationSettings) Validate() error {
	return core.ValidateStruct("ExpirationSettings", s)
}

func (s ExpirationSettings) String() string {
	return core.Prettify(s)
}

// Identity is the details of a user or bot.
type Identity struct {
	Arn *string `json:"Arn,omitempty" min:"5" max:"1600" pattern:"ChimeArn"`

	Name *string `json:"Name,omitempty" max:"1024" pattern:"ResourceName" sensitive:"true"`
}

func (s *Identity) Validate() error {
	return core.ValidateStruct("Identity", s)
}

func (s Identity) String() string {
	return core.Prettify(s)
}

// LambdaConfiguration is the Lambda function a processor invokes.
type LambdaConfiguration struct {
	// InvocationType is a required field
	InvocationType InvocationType `json:"InvocationType,omitempty" required:"true"`

	// ResourceArn is a required field
	ResourceArn *string `json:"ResourceArn,omitempty" min:"15" max:"2048" required:"true"`
}

func (s *LambdaConfiguration) Validate() error {
	return core.ValidateStruct("LambdaConfiguration", s)
}

func (s LambdaConfiguration) String() string {
	return core.Prettify(s)
}

// MessageAttributeValue is the value of a message attribute.
type MessageAttributeValue struct {
	StringValues []string `json:"StringValues,omitempty" elemmin:"1" elemmax:"512" sensitive:"true"`
}

func (s *MessageAttributeValue) Validate() error {
	return core.ValidateStruct("MessageAttributeValue", s)
}

func (s MessageAttributeValue) String() string {
	return core.Prettify(s)
}

// MessagingSessionEndpoint is the websocket endpoint for messaging sessions.
type MessagingSessionEndpoint struct {
	Url *string `json:"Url,omitempty" max:"4096"`
}

func (s *MessagingSessionEndpoint) Validate() error {
	return core.ValidateStruct("MessagingSessionEndpoint", s)
}

func (s MessagingSessionEndpoint) String() string {
	return core.Prettify(s)
}

// Processor is one step of a channel flow.
type Processor struct {
	// Configuration is a required field
	Configuration *ProcessorConfiguration `json:"Configuration,omitempty" required:"true"`

	// The sequence in which processors run. A flow runs at most three.
	//
	// ExecutionOrder is a required field
	ExecutionOrder *int32 `json:"ExecutionOrder,omitempty" min:"1" max:"3" required:"true"`

	// FallbackAction is a required field
	FallbackAction FallbackAction `json:"FallbackAction,omitempty" required:"true"`

	// Name is a required field
	Name *string `json:"Name,omitempty" min:"1" max:"256" pattern:"ResourceName" required:"true" sensitive:"true"`
}

func (s *Processor) Validate() error {
	return core.ValidateStruct("Processor", s)
}

func (s Processor) String() string {
	return core.Prettify(s)
}

// ProcessorConfiguration is where a processor runs.
type ProcessorConfiguration struct {
	// Lambda is a required field
	Lambda *LambdaConfiguration `json:"Lambda,omitempty" required:"true"`
}

func (s *ProcessorConfiguration) Validate() error {
	return core.ValidateStruct("ProcessorConfiguration", s)
}

func (s ProcessorConfiguration) String() string {
	return core.Prettify(s)
}

// PushNotificationConfiguration is the push notification sent with a message.
type PushNotificationConfiguration struct {
	Body *string `json:"Body,omitempty" max:"150" sensitive:"true"`

	Title *string `json:"Title,omitempty" max:"50" sensitive:"true"`

	Type PushNotificationType `json:"Type,omitempty"`
}

func (s *PushNotificationConfiguration) Validate() error {
	return core.ValidateStruct("PushNotificationConfiguration", s)
}

func (s PushNotificationConfiguration) String() string {
	return core.Prettify(s)
}

// PushNotificationPreferences is a member's push notification preference.
type PushNotificationPreferences struct {
	// AllowNotifications is a required field
	AllowNotifications AllowNotifications `json:"AllowNotifications,omitempty" required:"true"`

	// The filter applied to message attributes when AllowNotifications is
	// FILTERED.
	FilterRule *string `json:"FilterRule,omitempty" min:"1" max:"2048" sensitive:"true"`
}

func (s *PushNotificationPreferences) Validate() error {
	return core.ValidateStruct("PushNotificationPreferences", s)
}

func (s PushNotificationPreferences) String() string {
	return core.Prettify(s)
}

// SearchField is one filter of a channel search.
type SearchField struct {
	// Key is a required field
	Key SearchFieldKey `json:"Key,omitempty" required:"true"`

	// Operator is a required field
	Operator SearchFieldOperator `json:"Operator,omitempty" required:"true"`

	// Values is a required field
	Values []string `json:"Values,omitempty" min:"1" max:"20" elemmin:"1" elemmax:"512" required:"true"`
}

func (s *SearchField) Validate() error {
	return core.ValidateStruct("SearchField", s)
}

func (s SearchField) String() string {
	return core.Prettify(s)
}

// StreamingConfiguration is where an AppInstance streams one kind of data.
type StreamingConfiguration struct {
	// DataType is a required field
	DataType MessagingDataType `json:"DataType,omitempty" required:"true"`

	// The ARN of the Kinesis data stream receiving the data.
	//
	// ResourceArn is a required field
	ResourceArn *string `json:"ResourceArn,omitempty" min:"5" max:"1600" pattern:"ChimeArn" required:"true"`
}

func (s *StreamingConfiguration) Validate() error {
	return core.ValidateStruct("StreamingConfiguration", s)
}

func (s StreamingConfiguration) String() string {
	return core.Prettify(s)
}

// SubChannelSummary summarizes a SubChannel of an elastic channel.
type SubChannelSummary struct {
	MembershipCount *int32 `json:"MembershipCount,omitempty"`

	SubChannelId *string `json:"SubChannelId,omitempty" min:"1" max:"128" pattern:"SubChannelId"`
}

func (s *SubChannelSummary) Validate() error {
	return core.ValidateStruct("SubChannelSummary", s)
}

func (s SubChannelSummary) String() string {
	return core.Prettify(s)
}

// Tag is a key-value pair attached to a resource.
type Tag struct {
	// Key is a required field
	Key *string `json:"Key,omitempty" min:"1" max:"128" required:"true" sensitive:"true"`

	// Value is a required field
	Value *string `json:"Value,omitempty" min:"1" max:"256" required:"true" sensitive:"true"`
}

func (s *Tag) Validate() error {
	return core.ValidateStruct("Tag", s)
}

func (s Tag) String() string {
	return core.Prettify(s)
}

// Target is the recipient of a targeted message.
type Target struct {
	MemberArn *string `json:"MemberArn,omitempty" min:"5" max:"1600" pattern:"ChimeArn"`
}

func (s *Target) Validate() error {
	return core.ValidateStruct("Target", s)
}

func (s Target) String() string {
	return core.Prettify(s)
}
