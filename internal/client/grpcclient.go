// Package client talks to the backprop services over gRPC and keeps the
// token returned by Register or Login for later protected calls.
package client

import (
	"context"
	"fmt"
	"sync"

	"github.com/backprop/server/internal/api"
	"github.com/backprop/server/internal/common"
	pb "github.com/backprop/server/internal/proto"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

type GRPCClient struct {
	endpointURL string
	conn        *grpc.ClientConn
	users       pb.UserServiceClient
	datasets    pb.DatasetServiceClient
	projects    pb.ProjectServiceClient

	mu    sync.RWMutex
	token string
}

// withToken sets the authorization metadata entry to the raw token.
func withToken(ctx context.Context, token string) context.Context {
	md, _ := metadata.FromOutgoingContext(ctx)
	md = md.Copy()
	md.Set(common.AuthorizationHeaderName, token)
	return metadata.NewOutgoingContext(ctx, md)
}

func (s *GRPCClient) accessTokenInterceptor(
	ctx context.Context,
	method string,
	req, reply any,
	cc *grpc.ClientConn,
	invoker grpc.UnaryInvoker,
	opts ...grpc.CallOption,
) error {
	if api.ProtectedMethods[method] {
		token := s.Token()
		if token == "" {
			return ErrNotLoggedIn
		}
		ctx = withToken(ctx, token)
	}
	return invoker(ctx, method, req, reply, cc, opts...)
}

func NewGRPCClient(endpointURL string) (*GRPCClient, error) {
	c := &GRPCClient{endpointURL: endpointURL}
	conn, err := grpc.NewClient(endpointURL,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithUnaryInterceptor(c.accessTokenInterceptor),
	)
	if err != nil {
		return nil, err
	}
	c.conn = conn
	c.users = pb.NewUserServiceClient(conn)
	c.datasets = pb.NewDatasetServiceClient(conn)
	c.projects = pb.NewProjectServiceClient(conn)
	return c, nil
}

func (s *GRPCClient) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

// SetToken replaces the token sent with protected calls.
func (s *GRPCClient) SetToken(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = token
}

func (s *GRPCClient) Register(ctx context.Context, username, email, password string) (string, error) {
	resp, err := s.users.Register(ctx, &pb.RegisterRequest{Username: username, Email: email, Password: password})
	if err != nil {
		return "", s.mapError(err)
	}
	s.SetToken(resp.Jwt)
	return resp.Jwt, nil
}

func (s *GRPCClient) Login(ctx context.Context, email, password string) (string, error) {
	resp, err := s.users.Login(ctx, &pb.LoginRequest{Email: email, Password: password})
	if err != nil {
		return "", s.mapError(err)
	}
	s.SetToken(resp.Jwt)
	return resp.Jwt, nil
}

func (s *GRPCClient) ResetPassword(ctx context.Context, email string) error {
	_, err := s.users.ResetPassword(ctx, &pb.ResetPasswordRequest{Email: email})
	return s.mapError(err)
}

func (s *GRPCClient) WhoAmI(ctx context.Context) (*pb.WhoAmIResponse, error) {
	resp, err := s.users.WhoAmI(ctx, &pb.WhoAmIRequest{})
	if err != nil {
		return nil, s.mapError(err)
	}
	return resp, nil
}

func (s *GRPCClient) EditUser(ctx context.Context, req *pb.EditUserRequest) error {
	_, err := s.users.EditUser(ctx, req)
	return s.mapError(err)
}

func (s *GRPCClient) DeleteUser(ctx context.Context, email string) error {
	_, err := s.users.DeleteUser(ctx, &pb.DeleteUserRequest{Email: email})
	if err != nil {
		return s.mapError(err)
	}
	s.SetToken("")
	return nil
}

func (s *GRPCClient) Ping(ctx context.Context) error {
	resp, err := s.users.Ping(ctx, &pb.PingRequest{})
	if err != nil {
		return s.mapError(err)
	}
	if resp.Status != "OK" {
		return ErrUnavailable
	}
	return nil
}

func (s *GRPCClient) CreateDataset(ctx context.Context, req *pb.CreateDatasetRequest) (string, error) {
	resp, err := s.datasets.CreateDataset(ctx, req)
	if err != nil {
		return "", s.mapError(err)
	}
	return resp.DatasetId, nil
}

func (s *GRPCClient) GetDataset(ctx context.Context, datasetID string) (*pb.Dataset, error) {
	resp, err := s.datasets.GetDataset(ctx, &pb.GetDatasetRequest{DatasetId: datasetID})
	if err != nil {
		return nil, s.mapError(err)
	}
	return resp.Dataset, nil
}

func (s *GRPCClient) ListDatasets(ctx context.Context) ([]*pb.Dataset, error) {
	resp, err := s.datasets.ListDatasets(ctx, &pb.ListDatasetsRequest{})
	if err != nil {
		return nil, s.mapError(err)
	}
	return resp.Datasets, nil
}

// CreateColumns adds columns to datasets owned by the caller and returns
// how many were stored.
func (s *GRPCClient) CreateColumns(ctx context.Context, columns []*pb.Column) (int, error) {
	resp, err := s.datasets.CreateColumns(ctx, &pb.CreateColumnsRequest{Columns: columns})
	if err != nil {
		return 0, s.mapError(err)
	}
	return int(resp.Created), nil
}

func (s *GRPCClient) CreateProject(ctx context.Context, req *pb.CreateProjectRequest) (string, error) {
	resp, err := s.projects.CreateProject(ctx, req)
	if err != nil {
		return "", s.mapError(err)
	}
	return resp.ProjectId, nil
}

func (s *GRPCClient) ListProjects(ctx context.Context) ([]*pb.Project, error) {
	resp, err := s.projects.ListProjects(ctx, &pb.ListProjectsRequest{})
	if err != nil {
		return nil, s.mapError(err)
	}
	return resp.Projects, nil
}

func (s *GRPCClient) Close() error {
	if s.conn == nil {
		return nil
	}
	return s.conn.Close()
}

func (s *GRPCClient) mapError(err error) error {
	if err == nil {
		return nil
	}
	st, ok := status.FromError(err)
	if !ok {
		return err
	}

	switch st.Message() {
	case api.ReasonUserNotFound:
		return ErrUserNotFound
	case api.ReasonDatasetNotFound:
		return ErrDatasetNotFound
	case api.ReasonWrongPassword:
		return ErrWrongPassword
	case api.ReasonEmailTaken:
		return ErrEmailTaken
	case api.ReasonInvalidRequest:
		return ErrInvalidInput
	case api.ReasonJWTExpired:
		return ErrTokenExpired
	case api.ReasonNoJWT:
		return ErrNotLoggedIn
	}

	switch st.Code() {
	case codes.Unauthenticated, codes.PermissionDenied:
		return ErrUnauthorized
	case codes.Unavailable, codes.DeadlineExceeded:
		return ErrUnavailable
	default:
		return fmt.Errorf("rpc error: %w", err)
	}
}
