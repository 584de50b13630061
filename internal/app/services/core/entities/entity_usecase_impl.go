package entities

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"
	"uesvalle-service/internal/app/contracts"
	"uesvalle-service/internal/app/models"
	"uesvalle-service/internal/pkg/constvars"
	"uesvalle-service/internal/pkg/dto/requests"
	"uesvalle-service/internal/pkg/dto/responses"
	"uesvalle-service/internal/pkg/exceptions"
	"uesvalle-service/internal/pkg/utils"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type entityUsecase[T any] struct {
	EntityRepository contracts.EntityRepository[T]
	RedisRepository  contracts.RedisRepository
	Notifier         contracts.Notifier
	Log              *zap.Logger
	definition       *models.EntityDefinition
	cacheTTL         time.Duration
}

// cachedPage is the JSON document stored under a list cache key.
type cachedPage[T any] struct {
	Rows  []T   `json:"rows"`
	Total int64 `json:"total"`
}

func NewEntityUsecase[T any](
	definition *models.EntityDefinition,
	entityRepository contracts.EntityRepository[T],
	redisRepository contracts.RedisRepository,
	notifier contracts.Notifier,
	cacheTTL time.Duration,
	logger *zap.Logger,
) contracts.EntityUsecase[T] {
	return &entityUsecase[T]{
		EntityRepository: entityRepository,
		RedisRepository:  redisRepository,
		Notifier:         notifier,
		Log:              logger,
		definition:       definition,
		cacheTTL:         cacheTTL,
	}
}

func (uc *entityUsecase[T]) Definition() *models.EntityDefinition {
	return uc.definition
}

func (uc *entityUsecase[T]) List(ctx context.Context, query *requests.ListQuery) ([]T, int64, error) {
	requestID := utils.RequestIDFromContext(ctx)
	uc.Log.Info("entityUsecase.List called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingResourceKey, uc.definition.Resource),
		zap.String(constvars.LoggingSearchTermKey, query.Search),
		zap.Int(constvars.LoggingPageKey, query.Page),
		zap.Int(constvars.LoggingPageSizeKey, query.PageSize),
	)

	if err := utils.ValidateStruct(query); err != nil {
		return nil, 0, exceptions.ErrQueryParamValidation(err)
	}

	// The generation is read before the backend so a page fetched while a
	// mutation commits is stored under a key that is already dead.
	generation, cacheable := uc.listGeneration(ctx)
	cacheKey := uc.listCacheKey(generation, query)
	if cacheable {
		if page, ok := uc.readCachedPage(ctx, cacheKey); ok {
			uc.Log.Info("entityUsecase.List served from cache",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingRedisKey, cacheKey),
			)
			return page.Rows, page.Total, nil
		}
	}

	rows, err := uc.EntityRepository.FindAll(ctx, query.Search, computeOffset(query.Page, query.PageSize), query.PageSize)
	if err != nil {
		uc.Log.Error("entityUsecase.List error calling EntityRepository.FindAll",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, 0, err
	}
	if rows == nil {
		rows = []T{}
	}

	total, err := uc.EntityRepository.Count(ctx, query.Search)
	if err != nil {
		uc.Log.Error("entityUsecase.List error calling EntityRepository.Count",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, 0, err
	}

	if cacheable {
		uc.writeCachedPage(ctx, cacheKey, cachedPage[T]{Rows: rows, Total: total})
	}

	uc.Log.Info("entityUsecase.List succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingResponseCountKey, len(rows)),
		zap.Int64(constvars.LoggingTotalKey, total),
	)
	return rows, total, nil
}

func (uc *entityUsecase[T]) Get(ctx context.Context, id int64) (*T, error) {
	requestID := utils.RequestIDFromContext(ctx)
	uc.Log.Info("entityUsecase.Get called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingResourceKey, uc.definition.Resource),
		zap.Int64(constvars.LoggingRecordIDKey, id),
	)

	record, err := uc.EntityRepository.FindByID(ctx, id)
	if err != nil {
		uc.Log.Error("entityUsecase.Get error calling EntityRepository.FindByID",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	if record == nil {
		return nil, exceptions.ErrRecordNotFound(nil, uc.definition.Label, uc.definition.Table, id)
	}
	return record, nil
}

func (uc *entityUsecase[T]) Create(ctx context.Context, form requests.EntityForm) (*models.Mutation, error) {
	requestID := utils.RequestIDFromContext(ctx)
	uc.Log.Info("entityUsecase.Create called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingResourceKey, uc.definition.Resource),
	)

	values, fieldErrors := BindForm(uc.definition, form)
	if fieldErrors != nil {
		uc.Log.Info("entityUsecase.Create rejected invalid form",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Any(constvars.LoggingFieldErrorsKey, fieldErrors),
		)
		return &models.Mutation{Values: values}, exceptions.ErrFieldValidation(fieldErrors)
	}

	id, err := uc.EntityRepository.Create(ctx, values)
	if err != nil {
		uc.Log.Error("entityUsecase.Create error calling EntityRepository.Create",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		notification := uc.notifyFailure(ctx, constvars.CreateEntityErrorTitle, err)
		return &models.Mutation{Values: values, Notification: notification}, err
	}

	uc.invalidateListCache(ctx)
	notification := uc.notifySuccess(ctx, constvars.CreateEntitySuccessMessage)

	uc.Log.Info("entityUsecase.Create succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingRecordIDKey, id),
	)
	return &models.Mutation{ID: id, Values: values, Notification: notification}, nil
}

func (uc *entityUsecase[T]) Update(ctx context.Context, id int64, form requests.EntityForm) (*models.Mutation, error) {
	requestID := utils.RequestIDFromContext(ctx)
	uc.Log.Info("entityUsecase.Update called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingResourceKey, uc.definition.Resource),
		zap.Int64(constvars.LoggingRecordIDKey, id),
	)

	values, fieldErrors := BindForm(uc.definition, form)
	if fieldErrors != nil {
		return &models.Mutation{ID: id, Values: values}, exceptions.ErrFieldValidation(fieldErrors)
	}

	affected, err := uc.EntityRepository.Update(ctx, id, values)
	if err == nil && affected == 0 {
		err = exceptions.ErrRecordNotFound(nil, uc.definition.Label, uc.definition.Table, id)
	}
	if err != nil {
		uc.Log.Error("entityUsecase.Update error calling EntityRepository.Update",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		notification := uc.notifyFailure(ctx, constvars.UpdateEntityErrorTitle, err)
		return &models.Mutation{ID: id, Values: values, Notification: notification}, err
	}

	uc.invalidateListCache(ctx)
	notification := uc.notifySuccess(ctx, constvars.UpdateEntitySuccessMessage)

	uc.Log.Info("entityUsecase.Update succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingRecordIDKey, id),
	)
	return &models.Mutation{ID: id, Values: values, Notification: notification}, nil
}

// Delete refuses to reach the backend unless the operator confirmed.
func (uc *entityUsecase[T]) Delete(ctx context.Context, id int64, confirmed bool) (*models.Mutation, error) {
	requestID := utils.RequestIDFromContext(ctx)
	uc.Log.Info("entityUsecase.Delete called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingResourceKey, uc.definition.Resource),
		zap.Int64(constvars.LoggingRecordIDKey, id),
	)

	if !confirmed {
		return nil, exceptions.ErrDeleteNotConfirmed(strings.ToLower(uc.definition.Label), uc.definition.Table)
	}

	affected, err := uc.EntityRepository.Delete(ctx, id)
	if err == nil && affected == 0 {
		err = exceptions.ErrRecordNotFound(nil, uc.definition.Label, uc.definition.Table, id)
	}
	if err != nil {
		uc.Log.Error("entityUsecase.Delete error calling EntityRepository.Delete",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		notification := uc.notifyFailure(ctx, constvars.DeleteEntityErrorTitle, err)
		return &models.Mutation{ID: id, Notification: notification}, err
	}

	uc.invalidateListCache(ctx)
	notification := uc.notifySuccess(ctx, constvars.DeleteEntitySuccessMessage)

	uc.Log.Info("entityUsecase.Delete succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingRecordIDKey, id),
	)
	return &models.Mutation{ID: id, Notification: notification}, nil
}

func (uc *entityUsecase[T]) listCacheKey(generation int64, query *requests.ListQuery) string {
	return fmt.Sprintf(constvars.RedisKeyEntityListFormat,
		uc.definition.Resource,
		generation,
		utils.NormalizeSearchTerm(query.Search),
		query.Page,
		query.PageSize,
	)
}

func (uc *entityUsecase[T]) generationKey() string {
	return fmt.Sprintf(constvars.RedisKeyEntityListGenerationFormat, uc.definition.Resource)
}

// listGeneration reports false when the counter cannot be read; the list
// then bypasses the cache in both directions.
func (uc *entityUsecase[T]) listGeneration(ctx context.Context) (int64, bool) {
	key := uc.generationKey()
	data, err := uc.RedisRepository.Get(ctx, key)
	if err != nil {
		uc.Log.Warn("entityUsecase.listGeneration error retrieving data from Redis",
			zap.String(constvars.LoggingRequestIDKey, utils.RequestIDFromContext(ctx)),
			zap.String(constvars.LoggingRedisKey, key),
			zap.Error(err),
		)
		return 0, false
	}
	if data == "" {
		return 0, true
	}

	generation, err := strconv.ParseInt(data, 10, 64)
	if err != nil {
		uc.Log.Warn("entityUsecase.listGeneration unreadable counter",
			zap.String(constvars.LoggingRedisKey, key),
			zap.Error(err),
		)
		return 0, false
	}
	return generation, true
}

// readCachedPage treats any cache failure as a miss.
func (uc *entityUsecase[T]) readCachedPage(ctx context.Context, key string) (*cachedPage[T], bool) {
	data, err := uc.RedisRepository.Get(ctx, key)
	if err != nil {
		uc.Log.Warn("entityUsecase.readCachedPage error retrieving data from Redis",
			zap.String(constvars.LoggingRequestIDKey, utils.RequestIDFromContext(ctx)),
			zap.String(constvars.LoggingRedisKey, key),
			zap.Error(err),
		)
		return nil, false
	}
	if data == "" {
		return nil, false
	}

	var page cachedPage[T]
	if err := json.Unmarshal([]byte(data), &page); err != nil {
		uc.Log.Warn("entityUsecase.readCachedPage error parsing JSON from Redis",
			zap.String(constvars.LoggingRedisKey, key),
			zap.Error(err),
		)
		return nil, false
	}
	if page.Rows == nil {
		page.Rows = []T{}
	}
	return &page, true
}

func (uc *entityUsecase[T]) writeCachedPage(ctx context.Context, key string, page cachedPage[T]) {
	if err := uc.RedisRepository.Set(ctx, key, page, uc.cacheTTL); err != nil {
		uc.Log.Warn("entityUsecase.writeCachedPage error caching data in Redis",
			zap.String(constvars.LoggingRequestIDKey, utils.RequestIDFromContext(ctx)),
			zap.Error(err),
		)
	}
}

// invalidateListCache retires every cached page of this resource by moving
// the generation forward; old pages expire on their own TTL. Other
// resources that join onto it keep their pages until they expire.
func (uc *entityUsecase[T]) invalidateListCache(ctx context.Context) {
	requestID := utils.RequestIDFromContext(ctx)

	generation, err := uc.RedisRepository.Increment(ctx, uc.generationKey())
	if err != nil {
		uc.Log.Error("entityUsecase.invalidateListCache error advancing list generation",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return
	}

	uc.Log.Info("entityUsecase.invalidateListCache succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingCacheGenerationKey, generation),
	)
}

func (uc *entityUsecase[T]) notifySuccess(ctx context.Context, titleFormat string) *responses.Notification {
	return uc.notify(ctx, &responses.Notification{
		Level: constvars.NotificationLevelSuccess,
		Title: fmt.Sprintf(titleFormat, uc.definition.Label),
	})
}

// notifyFailure carries the backend's own message as the description.
func (uc *entityUsecase[T]) notifyFailure(ctx context.Context, titleFormat string, err error) *responses.Notification {
	return uc.notify(ctx, &responses.Notification{
		Level:       constvars.NotificationLevelError,
		Title:       fmt.Sprintf(titleFormat, strings.ToLower(uc.definition.Label)),
		Description: exceptions.AsCustomError(err).ClientMessage,
	})
}

func (uc *entityUsecase[T]) notify(ctx context.Context, notification *responses.Notification) *responses.Notification {
	notification.Resource = uc.definition.Resource
	notification.RequestID = utils.RequestIDFromContext(ctx)
	notification.CreatedAt = time.Now()

	if err := uc.Notifier.Notify(ctx, notification); err != nil {
		uc.Log.Warn("entityUsecase.notify error delivering notification",
			zap.String(constvars.LoggingRequestIDKey, notification.RequestID),
			zap.Error(err),
		)
	}
	return notification
}
