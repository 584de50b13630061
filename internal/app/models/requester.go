package models

import (
	"time"
	"uesvalle-service/internal/pkg/constvars"
)

type Requester struct {
	ID          int64      `json:"id_solicitante" gorm:"column:id_solicitante;primaryKey"`
	Nombre      string     `json:"nombre" gorm:"column:nombre"`
	Estado      *string    `json:"estado" gorm:"column:estado"`
	IDUbicacion *int64     `json:"id_ubicacion" gorm:"column:id_ubicacion"`
	CreatedAt   *time.Time `json:"created_at" gorm:"column:created_at;<-:false"`
	LocatedRecord
}

func (Requester) TableName() string {
	return constvars.TableRequester
}
