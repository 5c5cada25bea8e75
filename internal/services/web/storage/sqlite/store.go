package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	sqlitemigrate "github.com/louisbranch/showcase/internal/platform/storage/sqlitemigrate"
	webstorage "github.com/louisbranch/showcase/internal/services/web/storage"
	"github.com/louisbranch/showcase/internal/services/web/storage/sqlite/migrations"
	_ "modernc.org/sqlite"
)

// Store provides SQLite-backed gallery persistence.
type Store struct {
	sqlDB *sql.DB
}

var _ webstorage.GalleryStore = (*Store)(nil)

// Open opens and migrates a gallery SQLite store.
func Open(ctx context.Context, path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}

	cleanPath := filepath.Clean(path)
	dsn := cleanPath + "?_pragma=journal_mode(WAL)&_pragma=foreign_keys(ON)&_pragma=busy_timeout(5000)&_pragma=synchronous(NORMAL)"
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	if err := sqlDB.PingContext(ctx); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}

	if err := sqlitemigrate.ApplyMigrations(ctx, sqlDB, migrations.FS, ""); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	return &Store{sqlDB: sqlDB}, nil
}

// Close releases the underlying SQLite connection.
func (s *Store) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	return s.sqlDB.Close()
}

// Ping reports whether the database is reachable.
func (s *Store) Ping(ctx context.Context) error {
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}
	return s.sqlDB.PingContext(ctx)
}

// ListProjects returns every project ordered by position, then name.
func (s *Store) ListProjects(ctx context.Context) ([]webstorage.Project, error) {
	if s == nil || s.sqlDB == nil {
		return nil, fmt.Errorf("storage is not configured")
	}
	rows, err := s.sqlDB.QueryContext(ctx,
		`SELECT slug, name, description, url, image_url, position, created_at
		 FROM projects
		 ORDER BY position, name`,
	)
	if err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}
	defer rows.Close()

	var projects []webstorage.Project
	for rows.Next() {
		var project webstorage.Project
		var createdAt int64
		if err := rows.Scan(
			&project.Slug,
			&project.Name,
			&project.Description,
			&project.URL,
			&project.ImageURL,
			&project.Position,
			&createdAt,
		); err != nil {
			return nil, fmt.Errorf("scan project: %w", err)
		}
		project.CreatedAt = unixMillisToTime(createdAt)
		projects = append(projects, project)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate projects: %w", err)
	}
	return projects, nil
}

// PutProject upserts a project by slug.
func (s *Store) PutProject(ctx context.Context, project webstorage.Project) error {
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}
	project.Slug = strings.TrimSpace(project.Slug)
	if project.Slug == "" {
		return fmt.Errorf("project slug is required")
	}
	project.Name = strings.TrimSpace(project.Name)
	if project.Name == "" {
		return fmt.Errorf("project name is required")
	}
	if project.CreatedAt.IsZero() {
		project.CreatedAt = time.Now().UTC()
	}

	_, err := s.sqlDB.ExecContext(ctx,
		`INSERT INTO projects (slug, name, description, url, image_url, position, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT(slug) DO UPDATE SET
		    name = excluded.name,
		    description = excluded.description,
		    url = excluded.url,
		    image_url = excluded.image_url,
		    position = excluded.position`,
		project.Slug,
		project.Name,
		strings.TrimSpace(project.Description),
		strings.TrimSpace(project.URL),
		strings.TrimSpace(project.ImageURL),
		project.Position,
		project.CreatedAt.UTC().UnixMilli(),
	)
	if err != nil {
		return fmt.Errorf("put project: %w", err)
	}
	return nil
}

// DeleteProject removes a project by slug. Missing slugs are not an error.
func (s *Store) DeleteProject(ctx context.Context, slug string) error {
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}
	slug = strings.TrimSpace(slug)
	if slug == "" {
		return fmt.Errorf("project slug is required")
	}
	if _, err := s.sqlDB.ExecContext(ctx, `DELETE FROM projects WHERE slug = ?`, slug); err != nil {
		return fmt.Errorf("delete project: %w", err)
	}
	return nil
}

func unixMillisToTime(value int64) time.Time {
	if value <= 0 {
		return time.Time{}
	}
	return time.UnixMilli(value).UTC()
}
