package models

import (
	"time"
	"uesvalle-service/internal/pkg/constvars"
)

type Provider struct {
	ID                   int64      `json:"id_prestador" gorm:"column:id_prestador;primaryKey"`
	Nombre               string     `json:"nombre" gorm:"column:nombre"`
	Nit                  *string    `json:"nit" gorm:"column:nit"`
	Direccion            *string    `json:"direccion" gorm:"column:direccion"`
	Telefono             *string    `json:"telefono" gorm:"column:telefono"`
	IDSspd               *string    `json:"id_sspd" gorm:"column:id_sspd"`
	IDAutoridadSanitaria *string    `json:"id_autoridad_sanitaria" gorm:"column:id_autoridad_sanitaria"`
	CodigoSistema        *string    `json:"codigo_sistema" gorm:"column:codigo_sistema"`
	NombreSistema        *string    `json:"nombre_sistema" gorm:"column:nombre_sistema"`
	CodigoAnterior       *string    `json:"codigo_anterior" gorm:"column:codigo_anterior"`
	IDUbicacion          *int64     `json:"id_ubicacion" gorm:"column:id_ubicacion"`
	CreatedAt            *time.Time `json:"created_at" gorm:"column:created_at;<-:false"`
	LocatedRecord
}

func (Provider) TableName() string {
	return constvars.TableProvider
}
