package models

import (
	"time"
	"uesvalle-service/internal/pkg/constvars"
)

type Laboratory struct {
	ID          int64      `json:"id_laboratorio" gorm:"column:id_laboratorio;primaryKey"`
	Nombre      string     `json:"nombre" gorm:"column:nombre"`
	Estado      *string    `json:"estado" gorm:"column:estado"`
	Telefono    *string    `json:"telefono" gorm:"column:telefono"`
	Email       *string    `json:"email" gorm:"column:email"`
	IDUbicacion *int64     `json:"id_ubicacion" gorm:"column:id_ubicacion"`
	CreatedAt   *time.Time `json:"created_at" gorm:"column:created_at;<-:false"`
	LocatedRecord
}

func (Laboratory) TableName() string {
	return constvars.TableLaboratory
}
