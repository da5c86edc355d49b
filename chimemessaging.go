// Package chimemessaging provides the request and response shapes of the
// Amazon Chime SDK Messaging API.
//
// This package provides:
//   - Input and output structures for every operation
//   - Operation metadata (HTTP method, URI template, success code)
//   - Advisory validation against the service's documented constraints
//   - Token-based pagination over every listing operation
//   - Idempotency token generation
//   - Stable, redacting string rendering for logs
//
// Sending requests, signing and retries belong to the caller's runtime.
//
// Building and checking an input:
//
//	in := &chimemessaging.SendChannelMessageInput{
//	    ChannelArn:  chimemessaging.String(channelArn),
//	    Content:     chimemessaging.String("hello"),
//	    Type:        types.ChannelMessageTypeStandard,
//	    Persistence: types.ChannelMessagePersistenceTypePersistent,
//	    ChimeBearer: chimemessaging.String(userArn),
//	}
//	chimemessaging.FillClientRequestToken(in)
//	if err := in.Validate(); err != nil {
//	    log.Fatal(err)
//	}
//
// Resolving the HTTP binding:
//
//	op, _ := chimemessaging.LookupOperation("SendChannelMessage")
//	uri, err := chimemessaging.RequestURI(op, in)
//
// Iterating a listing:
//
//	for msg, err := range chimemessaging.ListChannelMessagesPages(ctx, api, params) {
//	    if err != nil {
//	        return err
//	    }
//	    fmt.Println(msg)
//	}
package chimemessaging

import (
	"time"

	"github.com/DrewBradfordXYZ/chimemessaging-go/core"
)

// Re-export types for convenience
type (
	Timestamp          = core.Timestamp
	InvalidParamsError = core.InvalidParamsError
	InvalidValueError  = core.InvalidValueError
	ParamError         = core.ParamError
	Logger             = core.Logger
)

// String returns a pointer to v.
func String(v string) *string { return core.String(v) }

// ToString dereferences p, returning "" for nil.
func ToString(p *string) string { return core.ToString(p) }

// Int32 returns a pointer to v.
func Int32(v int32) *int32 { return core.Int32(v) }

// ToInt32 dereferences p, returning 0 for nil.
func ToInt32(p *int32) int32 { return core.ToInt32(p) }

// Bool returns a pointer to v.
func Bool(v bool) *bool { return core.Bool(v) }

// ToBool dereferences p, returning false for nil.
func ToBool(p *bool) bool { return core.ToBool(p) }

// Time returns a Timestamp pointer for t.
func Time(t time.Time) *Timestamp { return core.Time(t) }

// ToTime dereferences p, returning the zero time for nil.
func ToTime(p *Timestamp) time.Time { return core.ToTime(p) }

// Prettify renders a shape as a single line with sensitive fields redacted.
func Prettify(v any) string { return core.Prettify(v) }

// Equal reports whether two shapes hold the same values.
func Equal(a, b any) bool { return core.Equal(a, b) }

// IdempotentInput is an input that carries an idempotency token.
type IdempotentInput interface {
	Input
	idempotencyToken() **string
}

// FillClientRequestToken sets a fresh idempotency token on in unless the
// caller already set one. It reports whether a token was generated.
func FillClientRequestToken(in IdempotentInput) bool {
	tok := in.idempotencyToken()
	if *tok != nil && **tok != "" {
		return false
	}
	*tok = core.String(core.NewClientRequestToken())
	return true
}
