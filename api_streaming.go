package chimemessaging

import (
	"github.com/DrewBradfordXYZ/chimemessaging-go/core"
	"github.com/DrewBradfordXYZ/chimemessaging-go/types"
)

// DeleteMessagingStreamingConfigurationsInput is the input of DeleteMessagingStreamingConfigurations.
//
// DeleteMessagingStreamingConfigurations deletes the streaming
// configurations of an AppInstance.
type DeleteMessagingStreamingConfigurationsInput struct {
	// AppInstanceArn is a required field
	AppInstanceArn *string `json:"-" location:"uri" locationName:"appInstanceArn" min:"5" max:"1600" pattern:"ChimeArn" required:"true"`
}

// Validate checks the input against the service constraints.
func (s *DeleteMessagingStreamingConfigurationsInput) Validate() error {
	return core.ValidateStruct("DeleteMessagingStreamingConfigurationsInput", s)
}

func (s DeleteMessagingStreamingConfigurationsInput) String() string {
	return core.Prettify(s)
}

// DeleteMessagingStreamingConfigurationsOutput is the output of DeleteMessagingStreamingConfigurations.
type DeleteMessagingStreamingConfigurationsOutput struct{}

func (s DeleteMessagingStreamingConfigurationsOutput) String() string {
	return core.Prettify(s)
}

// GetMessagingStreamingConfigurationsInput is the input of GetMessagingStreamingConfigurations.
//
// GetMessagingStreamingConfigurations retrieves the data streaming
// configuration of an AppInstance.
type GetMessagingStreamingConfigurationsInput struct {
	// AppInstanceArn is a required field
	AppInstanceArn *string `json:"-" location:"uri" locationName:"appInstanceArn" min:"5" max:"1600" pattern:"ChimeArn" required:"true"`
}

// Validate checks the input against the service constraints.
func (s *GetMessagingStreamingConfigurationsInput) Validate() error {
	return core.ValidateStruct("GetMessagingStreamingConfigurationsInput", s)
}

func (s GetMessagingStreamingConfigurationsInput) String() string {
	return core.Prettify(s)
}

// GetMessagingStreamingConfigurationsOutput is the output of GetMessagingStreamingConfigurations.
type GetMessagingStreamingConfigurationsOutput struct {
	StreamingConfigurations []types.StreamingConfiguration `json:"StreamingConfigurations,omitempty" min:"1" max:"2"`
}

func (s GetMessagingStreamingConfigurationsOutput) String() string {
	return core.Prettify(s)
}

// PutMessagingStreamingConfigurationsInput is the input of PutMessagingStreamingConfigurations.
//
// PutMessagingStreamingConfigurations sets the data streaming
// configuration of an AppInstance.
type PutMessagingStreamingConfigurationsInput struct {
	// AppInstanceArn is a required field
	AppInstanceArn *string `json:"-" location:"uri" locationName:"appInstanceArn" min:"5" max:"1600" pattern:"ChimeArn" required:"true"`

	// StreamingConfigurations is a required field
	StreamingConfigurations []types.StreamingConfiguration `json:"StreamingConfigurations,omitempty" min:"1" max:"2" required:"true"`
}

// Validate checks the input against the service constraints.
func (s *PutMessagingStreamingConfigurationsInput) Validate() error {
	return core.ValidateStruct("PutMessagingStreamingConfigurationsInput", s)
}

func (s PutMessagingStreamingConfigurationsInput) String() string {
	return core.Prettify(s)
}

// PutMessagingStreamingConfigurationsOutput is the output of PutMessagingStreamingConfigurations.
type PutMessagingStreamingConfigurationsOutput struct {
	StreamingConfigurations []types.StreamingConfiguration `json:"StreamingConfigurations,omitempty" min:"1" max:"2"`
}

func (s PutMessagingStreamingConfigurationsOutput) String() string {
	return core.Prettify(s)
}
