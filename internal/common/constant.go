// Package common contains shared constants and sentinel errors used across
// backprop components.
package common

// AuthorizationHeaderName is the gRPC metadata key carrying the raw token.
// The value is the token itself, without a "Bearer " prefix.
const AuthorizationHeaderName = "authorization"
