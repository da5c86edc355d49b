package chimemessaging

import (
	"github.com/DrewBradfordXYZ/chimemessaging-go/core"
	"github.com/DrewBradfordXYZ/chimemessaging-go/types"
)

// GetChannelMembershipPreferencesInput is the input of GetChannelMembershipPreferences.
//
// GetChannelMembershipPreferences gets the membership preferences of an
// AppInstanceUser or AppInstanceBot for a channel.
type GetChannelMembershipPreferencesInput struct {
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
func (s *GetChannelMembershipPreferencesInput) Validate() error {
	return core.ValidateStruct("GetChannelMembershipPreferencesInput", s)
}

func (s GetChannelMembershipPreferencesInput) String() string {
	return core.Prettify(s)
}

// GetChannelMembershipPreferencesOutput is the output of GetChannelMembershipPreferences.
type GetChannelMembershipPreferencesOutput struct {
	ChannelArn *string `json:"ChannelArn,omitempty" min:"5" max:"1600" pattern:"ChimeArn"`

	Member *types.Identity `json:"Member,omitempty"`

	Preferences *types.ChannelMembershipPreferences `json:"Preferences,omitempty"`
}

func (s GetChannelMembershipPreferencesOutput) String() string {
	return core.Prettify(s)
}

// PutChannelMembershipPreferencesInput is the input of PutChannelMembershipPreferences.
//
// PutChannelMembershipPreferences sets the membership preferences of an
// AppInstanceUser or AppInstanceBot for a channel.
type PutChannelMembershipPreferencesInput struct {
	// ChannelArn is a required field
	ChannelArn *string `json:"-" location:"uri" locationName:"channelArn" min:"5" max:"1600" pattern:"ChimeArn" required:"true"`

	// MemberArn is a required field
	MemberArn *string `json:"-" location:"uri" locationName:"memberArn" min:"5" max:"1600" pattern:"ChimeArn" required:"true"`

	// The ARN of the AppInstanceUser or AppInstanceBot making the API call.
	//
	// ChimeBearer is a required field
	ChimeBearer *string `json:"-" location:"header" locationName:"x-amz-chime-bearer" min:"5" max:"1600" pattern:"ChimeArn" required:"true"`

	// Preferences is a required field
	Preferences *types.ChannelMembershipPreferences `json:"Preferences,omitempty" required:"true"`
}

// Validate checks the input against the service constraints.
func (s *PutChannelMembershipPreferencesInput) Validate() error {
	return core.ValidateStruct("PutChannelMembershipPreferencesInput", s)
}

func (s PutChannelMembershipPreferencesInput) String() string {
	return core.Prettify(s)
}

// PutChannelMembershipPreferencesOutput is the output of PutChannelMembershipPreferences.
type PutChannelMembershipPreferencesOutput struct {
	ChannelArn *string `json:"ChannelArn,omitempty" min:"5" max:"1600" pattern:"ChimeArn"`

	Member *types.Identity `json:"Member,omitempty"`

	Preferences *types.ChannelMembershipPreferences `json:"Preferences,omitempty"`
}

func (s PutChannelMembershipPreferencesOutput) String() string {
	return core.Prettify(s)
}
