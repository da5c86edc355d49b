// Package types holds the nested value objects, enums and error shapes of
// the Chime SDK Messaging API.
//
// Structures use pointer fields so that an absent value is distinguishable
// from a zero value. Enum fields are string types with a closed set of
// values; decoding an unknown value fails rather than passing it through.
//
// Constraint tags (min, max, pattern, required) mirror the service model
// and drive the advisory Validate methods. The service remains the
// authority on what it accepts.
package types

//go:generate go run ../cmd/generate-enums -in enums.yaml -out enums.go
