package exports

import (
	"context"
	"fmt"
	"sync"
	"uesvalle-service/internal/app/contracts"
	"uesvalle-service/internal/app/models"
	"uesvalle-service/internal/pkg/constvars"
	"uesvalle-service/internal/pkg/exceptions"
	"uesvalle-service/internal/pkg/queries"
	"uesvalle-service/internal/pkg/utils"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

type exportPostgresRepository struct {
	DB  *gorm.DB
	Log *zap.Logger
}

var (
	exportPostgresRepositoryInstance contracts.ExportRepository
	onceExportPostgresRepository     sync.Once
)

func NewExportPostgresRepository(db *gorm.DB, logger *zap.Logger) contracts.ExportRepository {
	onceExportPostgresRepository.Do(func() {
		exportPostgresRepositoryInstance = &exportPostgresRepository{
			DB:  db,
			Log: logger,
		}
	})
	return exportPostgresRepositoryInstance
}

// CallMerge reads the whole merge() result set keeping the column order the
// function declares. Byte values are returned as strings.
func (r *exportPostgresRepository) CallMerge(ctx context.Context) (*models.MergedTable, error) {
	requestID := utils.RequestIDFromContext(ctx)
	query := fmt.Sprintf(queries.CallProcedure, constvars.MergeProcedureName)

	rows, err := r.DB.WithContext(ctx).Raw(query).Rows()
	if err != nil {
		r.Log.Error("exportPostgresRepository.CallMerge error calling procedure",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrPostgresDBCallProcedure(err, constvars.MergeProcedureName)
	}
	defer rows.Close()

	columns, err := rows.Columns()
	if err != nil {
		return nil, exceptions.ErrPostgresDBScanRow(err)
	}

	table := &models.MergedTable{
		Columns: columns,
		Rows:    make([][]interface{}, 0),
	}
	for rows.Next() {
		values := make([]interface{}, len(columns))
		pointers := make([]interface{}, len(columns))
		for i := range values {
			pointers[i] = &values[i]
		}
		if err := rows.Scan(pointers...); err != nil {
			r.Log.Error("exportPostgresRepository.CallMerge error scanning row",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Error(err),
			)
			return nil, exceptions.ErrPostgresDBScanRow(err)
		}
		for i, value := range values {
			if raw, ok := value.([]byte); ok {
				values[i] = string(raw)
			}
		}
		table.Rows = append(table.Rows, values)
	}
	if err := rows.Err(); err != nil {
		return nil, exceptions.ErrPostgresDBCallProcedure(err, constvars.MergeProcedureName)
	}

	r.Log.Info("exportPostgresRepository.CallMerge succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingColumnsCountKey, len(columns)),
		zap.Int(constvars.LoggingRowsCountKey, len(table.Rows)),
	)
	return table, nil
}
