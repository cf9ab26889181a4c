package content

import (
	"context"
	"errors"
	"fmt"

	"portfolio/site/internal/models"

	"gorm.io/gorm"
)

// ErrFetchFailed marks every error coming out of a project read.
var ErrFetchFailed = errors.New("fetch failed")

// Source reads the full project collection.
type Source interface {
	ListProjects(ctx context.Context) ([]models.Project, error)
}

// GormSource reads projects from a Postgres table through GORM.
type GormSource struct {
	db    *gorm.DB
	table string
}

// NewGormSource creates a source reading from table. An empty table name
// falls back to models.DefaultProjectTable.
func NewGormSource(db *gorm.DB, table string) *GormSource {
	if table == "" {
		table = models.DefaultProjectTable
	}
	return &GormSource{db: db, table: table}
}

// ListProjects selects every row ordered by id ascending. Backend errors are
// returned as-is, wrapped with ErrFetchFailed.
func (s *GormSource) ListProjects(ctx context.Context) ([]models.Project, error) {
	var projects []models.Project
	if err := s.db.WithContext(ctx).Table(s.table).Order("id asc").Find(&projects).Error; err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFetchFailed, err)
	}
	return projects, nil
}

// ListProjectsPage reads one page of projects, ordered by id ascending.
func (s *GormSource) ListProjectsPage(ctx context.Context, page, limit int) (*PaginatedResponse[models.Project], error) {
	query := s.db.WithContext(ctx).Table(s.table).Order("id asc")
	result, err := Paginate[models.Project](query, page, limit)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFetchFailed, err)
	}
	return result, nil
}
