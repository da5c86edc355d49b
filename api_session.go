package chimemessaging

import (
	"github.com/DrewBradfordXYZ/chimemessaging-go/core"
	"github.com/DrewBradfordXYZ/chimemessaging-go/types"
)

// GetMessagingSessionEndpointInput is the input of GetMessagingSessionEndpoint.
//
// GetMessagingSessionEndpoint gets the endpoint for the messaging session.
type GetMessagingSessionEndpointInput struct {
	NetworkType types.NetworkType `json:"-" location:"querystring" locationName:"network-type"`
}

// Validate checks the input against the service constraints.
func (s *GetMessagingSessionEndpointInput) Validate() error {
	return core.ValidateStruct("GetMessagingSessionEndpointInput", s)
}

func (s GetMessagingSessionEndpointInput) String() string {
	return core.Prettify(s)
}

// GetMessagingSessionEndpointOutput is the output of GetMessagingSessionEndpoint.
type GetMessagingSessionEndpointOutput struct {
	Endpoint *types.MessagingSessionEndpoint `json:"Endpoint,omitempty"`
}

func (s GetMessagingSessionEndpointOutput) String() string {
	return core.Prettify(s)
}
