package models

import (
	"time"
	"uesvalle-service/internal/pkg/constvars"
)

type Report struct {
	ID              int64      `json:"id_reporte" gorm:"column:id_reporte;primaryKey"`
	Codigo          string     `json:"codigo" gorm:"column:codigo"`
	Estado          *string    `json:"estado" gorm:"column:estado"`
	FechaCreacion   *time.Time `json:"fecha_creacion" gorm:"column:fecha_creacion"`
	Punto           *string    `json:"punto" gorm:"column:punto"`
	IDPrestador     *int64     `json:"id_prestador" gorm:"column:id_prestador"`
	CreatedAt       *time.Time `json:"created_at" gorm:"column:created_at;<-:false"`
	PrestadorNombre *string    `json:"prestador_nombre,omitempty" gorm:"column:prestador_nombre;->"`
}

func (Report) TableName() string {
	return constvars.TableReport
}
