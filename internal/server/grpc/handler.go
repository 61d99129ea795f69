package grpc

import (
	"context"
	"errors"
	"time"

	"github.com/backprop/server/internal/api"
	"github.com/backprop/server/internal/common"
	pb "github.com/backprop/server/internal/proto"
	"github.com/backprop/server/internal/server/services"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func (s *GRPCServer) Register(ctx context.Context, req *pb.RegisterRequest) (*pb.TokenResponse, error) {
	s.logger.Info(ctx, "Registration request")

	token, err := s.users.Register(ctx, req.Username, req.Email, req.Password)
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}
	return &pb.TokenResponse{Jwt: token}, nil
}

func (s *GRPCServer) Login(ctx context.Context, req *pb.LoginRequest) (*pb.TokenResponse, error) {
	token, err := s.users.Login(ctx, req.Email, req.Password)
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}
	return &pb.TokenResponse{Jwt: token}, nil
}

func (s *GRPCServer) ResetPassword(ctx context.Context, req *pb.ResetPasswordRequest) (*pb.ResetPasswordResponse, error) {
	if req.Email == "" {
		return nil, status.Error(codes.InvalidArgument, api.ReasonInvalidRequest)
	}
	if err := s.users.ResetPassword(ctx, req.Email); err != nil {
		return nil, s.toStatus(ctx, err)
	}
	return &pb.ResetPasswordResponse{}, nil
}

func (s *GRPCServer) WhoAmI(ctx context.Context, _ *pb.WhoAmIRequest) (*pb.WhoAmIResponse, error) {
	userID, ok := userIDFromContext(ctx)
	if !ok {
		return nil, status.Error(codes.Unauthenticated, api.ReasonNoJWT)
	}

	user, err := s.users.Get(ctx, userID)
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}
	return &pb.WhoAmIResponse{
		UserId:    user.ID,
		Username:  user.UserName,
		Email:     user.Email,
		CreatedAt: user.CreatedAt.UTC().Format(time.RFC3339Nano),
	}, nil
}

func (s *GRPCServer) EditUser(ctx context.Context, req *pb.EditUserRequest) (*pb.EditUserResponse, error) {
	userID, ok := userIDFromContext(ctx)
	if !ok {
		return nil, status.Error(codes.Unauthenticated, api.ReasonNoJWT)
	}

	err := s.users.Edit(ctx, userID, services.EditUser{
		UsernameChanged: req.UsernameChanged,
		Username:        req.Username,
		PasswordChanged: req.PasswordChanged,
		Password:        req.Password,
		Email:           req.Email,
	})
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}
	return &pb.EditUserResponse{}, nil
}

func (s *GRPCServer) DeleteUser(ctx context.Context, req *pb.DeleteUserRequest) (*pb.DeleteUserResponse, error) {
	userID, ok := userIDFromContext(ctx)
	if !ok {
		return nil, status.Error(codes.Unauthenticated, api.ReasonNoJWT)
	}

	if err := s.users.Delete(ctx, userID, req.Email); err != nil {
		return nil, s.toStatus(ctx, err)
	}
	return &pb.DeleteUserResponse{}, nil
}

func (s *GRPCServer) Ping(ctx context.Context, _ *pb.PingRequest) (*pb.PingResponse, error) {
	return &pb.PingResponse{Status: "OK"}, nil
}

// toStatus maps service errors to gRPC statuses carrying an api.Reason*.
func (s *GRPCServer) toStatus(ctx context.Context, err error) error {
	switch {
	case errors.Is(err, common.ErrorValidation):
		return status.Error(codes.InvalidArgument, api.ReasonInvalidRequest)
	case errors.Is(err, common.ErrorAlreadyExists):
		return status.Error(codes.AlreadyExists, api.ReasonEmailTaken)
	case errors.Is(err, common.ErrUserNotFound):
		return status.Error(codes.NotFound, api.ReasonUserNotFound)
	case errors.Is(err, common.ErrDatasetNotFound):
		return status.Error(codes.NotFound, api.ReasonDatasetNotFound)
	case errors.Is(err, common.ErrWrongPassword):
		return status.Error(codes.Unauthenticated, api.ReasonWrongPassword)
	case errors.Is(err, common.ErrorUnauthorized):
		return status.Error(codes.PermissionDenied, api.ReasonEmailMismatch)
	case errors.Is(err, common.ErrTokenExpired):
		return status.Error(codes.Unauthenticated, api.ReasonJWTExpired)
	case errors.Is(err, common.ErrInvalidToken):
		return status.Error(codes.Unauthenticated, api.ReasonJWTInvalid)
	default:
		s.logger.Error(ctx, "request failed", "error", err)
		return status.Error(codes.Internal, api.ReasonInternal)
	}
}
