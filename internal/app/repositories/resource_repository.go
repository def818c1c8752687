package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/akhilduddi/college-complaints-management-system/internal/app/models"
	"github.com/akhilduddi/college-complaints-management-system/internal/pkg/apperrors"
	"github.com/akhilduddi/college-complaints-management-system/internal/pkg/logger"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var resourceColumns = []string{"id", "name", "item_id", "features", "created_at"}

// ResourceRepository handles inventory resource database operations
type ResourceRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewResourceRepository creates a new ResourceRepository
func NewResourceRepository(db *pgxpool.Pool) *ResourceRepository {
	return &ResourceRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// Create inserts a resource
func (r *ResourceRepository) Create(ctx context.Context, res *models.Resource) error {
	sql, args, err := r.sb.Insert("resources").
		Columns("name", "item_id", "features").
		Values(res.Name, res.ItemID, res.Features).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building create resource SQL")
		return fmt.Errorf("failed to build create resource query: %w", err)
	}

	if err := r.db.QueryRow(ctx, sql, args...).Scan(&res.ID, &res.CreatedAt); err != nil {
		logger.Error().Err(err).Str("itemID", res.ItemID).Msg("Error executing create resource query")
		return fmt.Errorf("error creating resource: %w", err)
	}
	return nil
}

// GetByID retrieves a resource by ID
func (r *ResourceRepository) GetByID(ctx context.Context, id int64) (*models.Resource, error) {
	sql, args, err := r.sb.Select(resourceColumns...).
		From("resources").
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building get resource SQL")
		return nil, fmt.Errorf("failed to build get resource query: %w", err)
	}

	res := &models.Resource{}
	err = r.db.QueryRow(ctx, sql, args...).Scan(&res.ID, &res.Name, &res.ItemID, &res.Features, &res.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrInventoryItemNotFound
		}
		logger.Error().Err(err).Int64("resourceID", id).Msg("Error scanning resource row")
		return nil, fmt.Errorf("error getting resource by ID: %w", err)
	}
	return res, nil
}

// ResourceListQuery builds the filtered inventory listing
func ResourceListQuery(sb squirrel.StatementBuilderType, filter ResourceFilter) squirrel.SelectBuilder {
	q := sb.Select(resourceColumns...).From("resources")
	return applyConditions(q, ResourceConditions(filter)).OrderBy(newestFirst...)
}

// List retrieves resources matching filter, newest first
func (r *ResourceRepository) List(ctx context.Context, filter ResourceFilter) ([]*models.Resource, error) {
	sql, args, err := ResourceListQuery(r.sb, filter).ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building list resources SQL")
		return nil, fmt.Errorf("failed to build list resources query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing list resources query")
		return nil, fmt.Errorf("error querying resources: %w", err)
	}
	defer rows.Close()

	resources := []*models.Resource{}
	for rows.Next() {
		res := &models.Resource{}
		if err := rows.Scan(&res.ID, &res.Name, &res.ItemID, &res.Features, &res.CreatedAt); err != nil {
			logger.Error().Err(err).Msg("Error scanning resource row during list")
			return nil, fmt.Errorf("error scanning resource row: %w", err)
		}
		resources = append(resources, res)
	}

	if err := rows.Err(); err != nil {
		logger.Error().Err(err).Msg("Error iterating resource rows")
		return nil, fmt.Errorf("error iterating resource rows: %w", err)
	}
	return resources, nil
}

// Update replaces name, item id and features of an existing resource
func (r *ResourceRepository) Update(ctx context.Context, res *models.Resource) error {
	sql, args, err := r.sb.Update("resources").
		SetMap(map[string]interface{}{
			"name":     res.Name,
			"item_id":  res.ItemID,
			"features": res.Features,
		}).
		Where(squirrel.Eq{"id": res.ID}).
		Suffix("RETURNING created_at").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building update resource SQL")
		return fmt.Errorf("failed to build update resource query: %w", err)
	}

	if err := r.db.QueryRow(ctx, sql, args...).Scan(&res.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.ErrInventoryItemNotFound
		}
		logger.Error().Err(err).Int64("resourceID", res.ID).Msg("Error executing update resource query")
		return fmt.Errorf("error updating resource: %w", err)
	}
	return nil
}

// Delete removes a resource
func (r *ResourceRepository) Delete(ctx context.Context, id int64) error {
	sql, args, err := r.sb.Delete("resources").Where(squirrel.Eq{"id": id}).ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building delete resource SQL")
		return fmt.Errorf("failed to build delete resource query: %w", err)
	}

	result, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("resourceID", id).Msg("Error executing delete resource query")
		return fmt.Errorf("error deleting resource: %w", err)
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrInventoryItemNotFound
	}
	return nil
}
