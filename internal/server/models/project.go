package models

import "time"

// Project is a training setup over one of the owner's datasets.
type Project struct {
	ID           string
	UserID       string
	DatasetID    string
	Name         string
	BatchSize    int32
	LearningRate float64
	Loss         string
	CreatedAt    time.Time
}
