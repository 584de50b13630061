package entities

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"uesvalle-service/internal/app/contracts"
	"uesvalle-service/internal/app/models"
	"uesvalle-service/internal/pkg/constvars"
	"uesvalle-service/internal/pkg/exceptions"
	"uesvalle-service/internal/pkg/queries"
	"uesvalle-service/internal/pkg/utils"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

type entityPostgresRepository[T any] struct {
	DB         *gorm.DB
	Log        *zap.Logger
	definition *models.EntityDefinition
}

func NewEntityPostgresRepository[T any](db *gorm.DB, logger *zap.Logger, definition *models.EntityDefinition) contracts.EntityRepository[T] {
	return &entityPostgresRepository[T]{
		DB:         db,
		Log:        logger,
		definition: definition,
	}
}

func (r *entityPostgresRepository[T]) selectWithJoins(ctx context.Context) *gorm.DB {
	query := r.DB.WithContext(ctx).
		Table(buildFromClause(r.definition)).
		Select(buildSelectColumns(r.definition))
	for _, join := range buildJoinClauses(r.definition) {
		query = query.Joins(join)
	}
	return query
}

func (r *entityPostgresRepository[T]) FindAll(ctx context.Context, search string, offset, limit int) ([]T, error) {
	query := r.selectWithJoins(ctx)
	if clause, args := buildSearchClause(r.definition, search); clause != "" {
		query = query.Where(clause, args...)
	}

	rows := make([]T, 0, limit)
	err := query.
		Order(buildOrderClause(r.definition)).
		Offset(offset).
		Limit(limit).
		Find(&rows).Error
	if err != nil {
		r.Log.Error("entityPostgresRepository.FindAll error",
			zap.String(constvars.LoggingRequestIDKey, utils.RequestIDFromContext(ctx)),
			zap.String(constvars.LoggingTableKey, r.definition.Table),
			zap.Error(err),
		)
		return nil, exceptions.ErrPostgresDBFindData(err, r.definition.Table)
	}
	return rows, nil
}

func (r *entityPostgresRepository[T]) Count(ctx context.Context, search string) (int64, error) {
	query := r.DB.WithContext(ctx).Table(buildFromClause(r.definition))
	if clause, args := buildSearchClause(r.definition, search); clause != "" {
		query = query.Where(clause, args...)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return 0, exceptions.ErrPostgresDBCountData(err, r.definition.Table)
	}
	return total, nil
}

// FindByID returns nil without error when no row has the key.
func (r *entityPostgresRepository[T]) FindByID(ctx context.Context, id int64) (*T, error) {
	var record T
	err := r.selectWithJoins(ctx).
		Where(fmt.Sprintf("%s.%s = ?", baseAlias, r.definition.PrimaryKey), id).
		Take(&record).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	} else if err != nil {
		return nil, exceptions.ErrPostgresDBFindData(err, r.definition.Table)
	}
	return &record, nil
}

func (r *entityPostgresRepository[T]) Create(ctx context.Context, values map[string]interface{}) (int64, error) {
	columns := r.definition.Columns()
	placeholders := make([]string, len(columns))
	args := make([]interface{}, len(columns))
	for i, column := range columns {
		placeholders[i] = "?"
		args[i] = values[column]
	}

	query := fmt.Sprintf(queries.InsertEntity,
		r.definition.Table,
		strings.Join(columns, ", "),
		strings.Join(placeholders, ", "),
		r.definition.PrimaryKey,
	)

	var id int64
	if err := r.DB.WithContext(ctx).Raw(query, args...).Scan(&id).Error; err != nil {
		return 0, exceptions.ErrPostgresDBInsertData(err, r.definition.Table)
	}

	r.Log.Info("entityPostgresRepository.Create succeeded",
		zap.String(constvars.LoggingRequestIDKey, utils.RequestIDFromContext(ctx)),
		zap.String(constvars.LoggingTableKey, r.definition.Table),
		zap.Int64(constvars.LoggingRecordIDKey, id),
	)
	return id, nil
}

// Update returns the number of rows touched; zero means the key does not exist.
func (r *entityPostgresRepository[T]) Update(ctx context.Context, id int64, values map[string]interface{}) (int64, error) {
	result := r.DB.WithContext(ctx).
		Table(r.definition.Table).
		Where(fmt.Sprintf("%s = ?", r.definition.PrimaryKey), id).
		Updates(values)
	if result.Error != nil {
		return 0, exceptions.ErrPostgresDBUpdateData(result.Error, r.definition.Table)
	}
	return result.RowsAffected, nil
}

func (r *entityPostgresRepository[T]) Delete(ctx context.Context, id int64) (int64, error) {
	query := fmt.Sprintf(queries.DeleteEntityByKey, r.definition.Table, r.definition.PrimaryKey)
	result := r.DB.WithContext(ctx).Exec(query, id)
	if result.Error != nil {
		return 0, exceptions.ErrPostgresDBDeleteData(result.Error, r.definition.Table)
	}
	return result.RowsAffected, nil
}
