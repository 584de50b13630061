package models

import (
	"time"
	"uesvalle-service/internal/pkg/constvars"
)

type Representative struct {
	ID              int64      `json:"id_representante" gorm:"column:id_representante;primaryKey"`
	Nombre          string     `json:"nombre" gorm:"column:nombre"`
	Cargo           *string    `json:"cargo" gorm:"column:cargo"`
	Email           *string    `json:"email" gorm:"column:email"`
	IDPrestador     *int64     `json:"id_prestador" gorm:"column:id_prestador"`
	CreatedAt       *time.Time `json:"created_at" gorm:"column:created_at;<-:false"`
	PrestadorNombre *string    `json:"prestador_nombre,omitempty" gorm:"column:prestador_nombre;->"`
}

func (Representative) TableName() string {
	return constvars.TableRepresentative
}
