package grpc

import (
	"context"

	"github.com/backprop/server/internal/api"
	pb "github.com/backprop/server/internal/proto"
	"github.com/backprop/server/internal/server/models"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func (s *GRPCServer) CreateDataset(ctx context.Context, req *pb.CreateDatasetRequest) (*pb.CreateDatasetResponse, error) {
	userID, ok := userIDFromContext(ctx)
	if !ok {
		return nil, status.Error(codes.Unauthenticated, api.ReasonNoJWT)
	}

	id, err := s.datasets.Create(ctx, userID, models.Dataset{
		Name:        req.Name,
		Description: req.Description,
		FileType:    req.FileType,
		URL:         req.Url,
	})
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}
	return &pb.CreateDatasetResponse{DatasetId: id}, nil
}

func (s *GRPCServer) GetDataset(ctx context.Context, req *pb.GetDatasetRequest) (*pb.GetDatasetResponse, error) {
	userID, ok := userIDFromContext(ctx)
	if !ok {
		return nil, status.Error(codes.Unauthenticated, api.ReasonNoJWT)
	}

	d, err := s.datasets.Get(ctx, userID, req.DatasetId)
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}
	return &pb.GetDatasetResponse{Dataset: toDataset(d)}, nil
}

func (s *GRPCServer) ListDatasets(ctx context.Context, _ *pb.ListDatasetsRequest) (*pb.ListDatasetsResponse, error) {
	userID, ok := userIDFromContext(ctx)
	if !ok {
		return nil, status.Error(codes.Unauthenticated, api.ReasonNoJWT)
	}

	list, err := s.datasets.List(ctx, userID)
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}

	resp := &pb.ListDatasetsResponse{Datasets: make([]*pb.Dataset, 0, len(list))}
	for i := range list {
		resp.Datasets = append(resp.Datasets, toDataset(&list[i]))
	}
	return resp, nil
}

func (s *GRPCServer) CreateColumns(ctx context.Context, req *pb.CreateColumnsRequest) (*pb.CreateColumnsResponse, error) {
	userID, ok := userIDFromContext(ctx)
	if !ok {
		return nil, status.Error(codes.Unauthenticated, api.ReasonNoJWT)
	}

	cols := make([]models.Column, 0, len(req.Columns))
	for _, c := range req.Columns {
		cols = append(cols, models.Column{
			DatasetID: c.GetDatasetId(),
			Name:      c.GetName(),
			Type:      c.GetType(),
			Include:   c.GetInclude(),
			Index:     c.GetIndex(),
		})
	}

	n, err := s.datasets.CreateColumns(ctx, userID, cols)
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}
	return &pb.CreateColumnsResponse{Created: int32(n)}, nil
}

func (s *GRPCServer) CreateProject(ctx context.Context, req *pb.CreateProjectRequest) (*pb.CreateProjectResponse, error) {
	userID, ok := userIDFromContext(ctx)
	if !ok {
		return nil, status.Error(codes.Unauthenticated, api.ReasonNoJWT)
	}

	id, err := s.projects.Create(ctx, userID, models.Project{
		DatasetID:    req.DatasetId,
		Name:         req.Name,
		BatchSize:    req.BatchSize,
		LearningRate: req.LearningRate,
		Loss:         req.Loss,
	})
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}
	return &pb.CreateProjectResponse{ProjectId: id}, nil
}

func (s *GRPCServer) ListProjects(ctx context.Context, _ *pb.ListProjectsRequest) (*pb.ListProjectsResponse, error) {
	userID, ok := userIDFromContext(ctx)
	if !ok {
		return nil, status.Error(codes.Unauthenticated, api.ReasonNoJWT)
	}

	list, err := s.projects.List(ctx, userID)
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}

	resp := &pb.ListProjectsResponse{Projects: make([]*pb.Project, 0, len(list))}
	for _, p := range list {
		resp.Projects = append(resp.Projects, &pb.Project{
			ProjectId:    p.ID,
			DatasetId:    p.DatasetID,
			Name:         p.Name,
			BatchSize:    p.BatchSize,
			LearningRate: p.LearningRate,
			Loss:         p.Loss,
		})
	}
	return resp, nil
}

func toDataset(d *models.Dataset) *pb.Dataset {
	return &pb.Dataset{
		DatasetId:   d.ID,
		Name:        d.Name,
		Description: d.Description,
		FileType:    d.FileType,
		Url:         d.URL,
	}
}
