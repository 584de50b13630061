package exports

import (
	"context"
	"time"
	"uesvalle-service/internal/app/config"
	"uesvalle-service/internal/app/contracts"
	"uesvalle-service/internal/app/models"
	"uesvalle-service/internal/pkg/constvars"
	"uesvalle-service/internal/pkg/dto/requests"
	"uesvalle-service/internal/pkg/dto/responses"
	"uesvalle-service/internal/pkg/exceptions"
	"uesvalle-service/internal/pkg/utils"

	"go.uber.org/zap"
)

type exportUsecase struct {
	ExportRepository contracts.ExportRepository
	Storage          contracts.Storage
	InternalConfig   *config.InternalConfig
	Log              *zap.Logger
	now              func() time.Time
}

// NewExportUsecase accepts a nil storage; archive operations then report
// that archiving is disabled.
func NewExportUsecase(
	exportRepository contracts.ExportRepository,
	storage contracts.Storage,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.ExportUsecase {
	return &exportUsecase{
		ExportRepository: exportRepository,
		Storage:          storage,
		InternalConfig:   internalConfig,
		Log:              logger,
		now:              time.Now,
	}
}

func (uc *exportUsecase) ListMerged(ctx context.Context, query *requests.ListQuery) (*responses.MergedData, int64, error) {
	requestID := utils.RequestIDFromContext(ctx)
	uc.Log.Info("exportUsecase.ListMerged called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingSearchTermKey, query.Search),
		zap.Int(constvars.LoggingPageKey, query.Page),
		zap.Int(constvars.LoggingPageSizeKey, query.PageSize),
	)

	if err := utils.ValidateStruct(query); err != nil {
		return nil, 0, exceptions.ErrQueryParamValidation(err)
	}

	table, err := uc.ExportRepository.CallMerge(ctx)
	if err != nil {
		uc.Log.Error("exportUsecase.ListMerged error calling ExportRepository.CallMerge",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, 0, err
	}

	term := utils.NormalizeSearchTerm(query.Search)
	filtered := make([][]interface{}, 0, len(table.Rows))
	for _, values := range table.Rows {
		if rowMatches(values, term) {
			filtered = append(filtered, values)
		}
	}

	start := query.Page * query.PageSize
	if start > len(filtered) {
		start = len(filtered)
	}
	end := start + query.PageSize
	if end > len(filtered) {
		end = len(filtered)
	}

	data := &responses.MergedData{
		Columns: table.Columns,
		Rows:    make([]map[string]interface{}, 0, end-start),
	}
	for _, values := range filtered[start:end] {
		row := make(map[string]interface{}, len(table.Columns))
		for i, column := range table.Columns {
			row[column] = values[i]
		}
		data.Rows = append(data.Rows, row)
	}

	uc.Log.Info("exportUsecase.ListMerged succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingResponseCountKey, len(data.Rows)),
		zap.Int(constvars.LoggingTotalKey, len(filtered)),
	)
	return data, int64(len(filtered)), nil
}

// BuildSpreadsheet always exports the unfiltered merge result.
func (uc *exportUsecase) BuildSpreadsheet(ctx context.Context) ([]byte, error) {
	requestID := utils.RequestIDFromContext(ctx)
	uc.Log.Info("exportUsecase.BuildSpreadsheet called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	table, err := uc.ExportRepository.CallMerge(ctx)
	if err != nil {
		return nil, err
	}

	content, err := renderSpreadsheet(table)
	if err != nil {
		uc.Log.Error("exportUsecase.BuildSpreadsheet error rendering spreadsheet",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	uc.Log.Info("exportUsecase.BuildSpreadsheet succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingRowsCountKey, len(table.Rows)),
	)
	return content, nil
}

func (uc *exportUsecase) BuildCSV(ctx context.Context, preview bool) ([]byte, error) {
	requestID := utils.RequestIDFromContext(ctx)
	uc.Log.Info("exportUsecase.BuildCSV called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Bool(constvars.LoggingPreviewKey, preview),
	)

	table, err := uc.ExportRepository.CallMerge(ctx)
	if err != nil {
		return nil, err
	}

	limit := 0
	if preview {
		limit = constvars.ExportPreviewRowLimit
	}
	content, err := renderCSV(table, limit)
	if err != nil {
		uc.Log.Error("exportUsecase.BuildCSV error rendering CSV",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	return content, nil
}

func (uc *exportUsecase) ArchiveSpreadsheet(ctx context.Context) (*models.StoredObject, error) {
	requestID := utils.RequestIDFromContext(ctx)
	if uc.Storage == nil {
		return nil, exceptions.ErrExportArchiveDisabled()
	}

	content, err := uc.BuildSpreadsheet(ctx)
	if err != nil {
		return nil, err
	}

	createdAt := uc.now()
	object := &models.StoredObject{
		Bucket:       uc.InternalConfig.Minio.ExportBucketName,
		Name:         utils.GenerateExportObjectName(createdAt),
		Size:         int64(len(content)),
		LastModified: createdAt,
	}
	if err := uc.Storage.PutObject(ctx, object.Bucket, object.Name, constvars.MIMEApplicationXLSX, content); err != nil {
		uc.Log.Error("exportUsecase.ArchiveSpreadsheet error calling Storage.PutObject",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingBucketNameKey, object.Bucket),
			zap.String(constvars.LoggingObjectNameKey, object.Name),
			zap.Error(err),
		)
		return nil, err
	}

	uc.Log.Info("exportUsecase.ArchiveSpreadsheet succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingObjectNameKey, object.Name),
	)
	return object, nil
}

func (uc *exportUsecase) GetLatestArchive(ctx context.Context) (*responses.ExportArchive, error) {
	requestID := utils.RequestIDFromContext(ctx)
	if uc.Storage == nil {
		return nil, exceptions.ErrExportArchiveDisabled()
	}

	bucket := uc.InternalConfig.Minio.ExportBucketName
	object, err := uc.Storage.LatestObject(ctx, bucket, constvars.ExportArchiveObjectPrefix)
	if err != nil {
		uc.Log.Error("exportUsecase.GetLatestArchive error calling Storage.LatestObject",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingBucketNameKey, bucket),
			zap.Error(err),
		)
		return nil, err
	}

	expiry := time.Duration(uc.InternalConfig.Minio.MinioPreSignedUrlObjectExpiryTimeInHours) * time.Hour
	url, err := uc.Storage.GetObjectUrlWithExpiryTime(ctx, bucket, object.Name, expiry)
	if err != nil {
		return nil, err
	}

	return &responses.ExportArchive{
		ObjectName:   object.Name,
		Size:         object.Size,
		LastModified: object.LastModified,
		URL:          url,
		ExpiresAt:    uc.now().Add(expiry),
	}, nil
}
