// Package grpc serves the backprop.v1 user, dataset and project services on
// top of the services package.
package grpc

import (
	"context"
	"net"

	"github.com/backprop/server/internal/logging"
	pb "github.com/backprop/server/internal/proto"
	"github.com/backprop/server/internal/server/models"
	"github.com/backprop/server/internal/server/services"
	"google.golang.org/grpc"
)

// userService is the part of services.UserService the handlers use.
type userService interface {
	Register(ctx context.Context, username, email, password string) (string, error)
	Login(ctx context.Context, email, password string) (string, error)
	Authenticate(ctx context.Context, raw string) (string, error)
	Get(ctx context.Context, userID string) (*models.User, error)
	Edit(ctx context.Context, userID string, e services.EditUser) error
	ResetPassword(ctx context.Context, email string) error
	Delete(ctx context.Context, userID, email string) error
}

type datasetService interface {
	Create(ctx context.Context, userID string, d models.Dataset) (string, error)
	Get(ctx context.Context, userID, datasetID string) (*models.Dataset, error)
	List(ctx context.Context, userID string) ([]models.Dataset, error)
	CreateColumns(ctx context.Context, userID string, cols []models.Column) (int, error)
}

type projectService interface {
	Create(ctx context.Context, userID string, p models.Project) (string, error)
	List(ctx context.Context, userID string) ([]models.Project, error)
}

type GRPCServer struct {
	pb.UnimplementedUserServiceServer
	pb.UnimplementedDatasetServiceServer
	pb.UnimplementedProjectServiceServer

	address  string
	users    userService
	datasets datasetService
	projects projectService
	logger   logging.Logger
}

func NewGRPCServer(address string, l logging.Logger, us userService, ds datasetService, ps projectService) *GRPCServer {
	return &GRPCServer{
		address:  address,
		logger:   l.With("module", "grpc_server"),
		users:    us,
		datasets: ds,
		projects: ps,
	}
}

// Run listens on the configured address and serves until ctx is done.
func (s *GRPCServer) Run(ctx context.Context) error {
	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}
	return s.Serve(ctx, listen)
}

// Serve serves on lis until ctx is done, then stops gracefully.
func (s *GRPCServer) Serve(ctx context.Context, lis net.Listener) error {
	srv := grpc.NewServer(grpc.ChainUnaryInterceptor(s.accessTokenInterceptor))
	pb.RegisterUserServiceServer(srv, s)
	pb.RegisterDatasetServiceServer(srv, s)
	pb.RegisterProjectServiceServer(srv, s)

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping gRPC server...")
		srv.GracefulStop()
	}()

	s.logger.Info(ctx, "Starting gRPC server", "address", lis.Addr().String())

	if err := srv.Serve(lis); err != nil {
		return err
	}
	return nil
}
