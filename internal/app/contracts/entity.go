package contracts

import (
	"context"
	"uesvalle-service/internal/app/models"
	"uesvalle-service/internal/pkg/dto/requests"
)

type EntityUsecase[T any] interface {
	Definition() *models.EntityDefinition
	List(ctx context.Context, query *requests.ListQuery) ([]T, int64, error)
	Get(ctx context.Context, id int64) (*T, error)
	Create(ctx context.Context, form requests.EntityForm) (*models.Mutation, error)
	Update(ctx context.Context, id int64, form requests.EntityForm) (*models.Mutation, error)
	Delete(ctx context.Context, id int64, confirmed bool) (*models.Mutation, error)
}

type EntityRepository[T any] interface {
	FindAll(ctx context.Context, search string, offset, limit int) ([]T, error)
	Count(ctx context.Context, search string) (int64, error)
	FindByID(ctx context.Context, id int64) (*T, error)
	Create(ctx context.Context, values map[string]interface{}) (int64, error)
	Update(ctx context.Context, id int64, values map[string]interface{}) (int64, error)
	Delete(ctx context.Context, id int64) (int64, error)
}
