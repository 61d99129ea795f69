// Package api holds the transport contract shared by the server and the
// client on top of the generated backprop.v1 stubs: which methods need a
// token and the status messages errors carry.
package api

import pb "github.com/backprop/server/internal/proto"

// ProtectedMethods require a valid token in the authorization metadata.
var ProtectedMethods = map[string]bool{
	pb.UserService_WhoAmI_FullMethodName:     true,
	pb.UserService_EditUser_FullMethodName:   true,
	pb.UserService_DeleteUser_FullMethodName: true,

	pb.DatasetService_CreateDataset_FullMethodName: true,
	pb.DatasetService_GetDataset_FullMethodName:    true,
	pb.DatasetService_ListDatasets_FullMethodName:  true,
	pb.DatasetService_CreateColumns_FullMethodName: true,

	pb.ProjectService_CreateProject_FullMethodName: true,
	pb.ProjectService_ListProjects_FullMethodName:  true,
}
