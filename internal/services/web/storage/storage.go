package storage

import (
	"context"
	"time"
)

// Project is one gallery entry.
type Project struct {
	Slug        string
	Name        string
	Description string
	URL         string
	ImageURL    string
	Position    int
	CreatedAt   time.Time
}

// GalleryStore reads and maintains gallery projects.
type GalleryStore interface {
	ListProjects(ctx context.Context) ([]Project, error)
	PutProject(ctx context.Context, project Project) error
	DeleteProject(ctx context.Context, slug string) error
}
