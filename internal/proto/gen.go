// Package proto contains the generated backprop.v1 messages and gRPC stubs.
// The sources live in proto/backprop/v1 at the repository root.
package proto

//go:generate protoc -I ../../proto --go_out=../.. --go_opt=module=github.com/backprop/server --go-grpc_out=../.. --go-grpc_opt=module=github.com/backprop/server backprop/v1/user_service.proto backprop/v1/workspace.proto
