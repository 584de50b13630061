package contracts

import (
	"context"
	"uesvalle-service/internal/app/models"
	"uesvalle-service/internal/pkg/dto/requests"
	"uesvalle-service/internal/pkg/dto/responses"
)

type ExportUsecase interface {
	ListMerged(ctx context.Context, query *requests.ListQuery) (*responses.MergedData, int64, error)
	BuildSpreadsheet(ctx context.Context) ([]byte, error)
	BuildCSV(ctx context.Context, preview bool) ([]byte, error)
	ArchiveSpreadsheet(ctx context.Context) (*models.StoredObject, error)
	GetLatestArchive(ctx context.Context) (*responses.ExportArchive, error)
}

type ExportRepository interface {
	CallMerge(ctx context.Context) (*models.MergedTable, error)
}
