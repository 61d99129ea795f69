package models

import "time"

// Dataset is a data source registered by a user. URL points at the raw file.
type Dataset struct {
	ID          string
	UserID      string
	Name        string
	Description string
	FileType    string
	URL         string
	CreatedAt   time.Time
}

// Column describes one field of a dataset. Index is its position in the
// source file; Include marks it as a model input.
type Column struct {
	ID        string
	DatasetID string
	Name      string
	Type      string
	Include   bool
	Index     int32
}
