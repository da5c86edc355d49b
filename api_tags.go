package chimemessaging

import (
	"github.com/DrewBradfordXYZ/chimemessaging-go/core"
	"github.com/DrewBradfordXYZ/chimemessaging-go/types"
)

// ListTagsForResourceInput is the input of ListTagsForResource.
//
// ListTagsForResource lists the tags applied to a resource.
type ListTagsForResourceInput struct {
	// ResourceARN is a required field
	ResourceARN *string `json:"-" location:"querystring" locationName:"arn" min:"5" max:"1600" pattern:"ChimeArn" required:"true"`
}

// Validate checks the input against the service constraints.
func (s *ListTagsForResourceInput) Validate() error {
	return core.ValidateStruct("ListTagsForResourceInput", s)
}

func (s ListTagsForResourceInput) String() string {
	return core.Prettify(s)
}

// ListTagsForResourceOutput is the output of ListTagsForResource.
type ListTagsForResourceOutput struct {
	Tags []types.Tag `json:"Tags,omitempty" min:"1" max:"50"`
}

func (s ListTagsForResourceOutput) String() string {
	return core.Prettify(s)
}

// TagResourceInput is the input of TagResource.
//
// TagResource applies the specified tags to a resource.
type TagResourceInput struct {
	// ResourceARN is a required field
	ResourceARN *string `json:"ResourceARN,omitempty" min:"5" max:"1600" pattern:"ChimeArn" required:"true"`

	// Tags is a required field
	Tags []types.Tag `json:"Tags,omitempty" min:"1" max:"50" required:"true"`
}

// Validate checks the input against the service constraints.
func (s *TagResourceInput) Validate() error {
	return core.ValidateStruct("TagResourceInput", s)
}

func (s TagResourceInput) String() string {
	return core.Prettify(s)
}

// TagResourceOutput is the output of TagResource.
type TagResourceOutput struct{}

func (s TagResourceOutput) String() string {
	return core.Prettify(s)
}

// UntagResourceInput is the input of UntagResource.
//
// UntagResource removes the specified tags from a resource.
type UntagResourceInput struct {
	// ResourceARN is a required field
	ResourceARN *string `json:"ResourceARN,omitempty" min:"5" max:"1600" pattern:"ChimeArn" required:"true"`

	// TagKeys is a required field
	TagKeys []string `json:"TagKeys,omitempty" min:"1" max:"50" elemmin:"1" elemmax:"128" required:"true" sensitive:"true"`
}

// Validate checks the input against the service constraints.
func (s *UntagResourceInput) Validate() error {
	return core.ValidateStruct("UntagResourceInput", s)
}

func (s UntagResourceInput) String() string {
	return core.Prettify(s)
}

// UntagResourceOutput is the output of UntagResource.
type UntagResourceOutput struct{}

func (s UntagResourceOutput) String() string {
	return core.Prettify(s)
}
