package models

import (
	"time"
	"uesvalle-service/internal/pkg/constvars"
)

type Location struct {
	ID           int64      `json:"id_ubicacion" gorm:"column:id_ubicacion;primaryKey"`
	Departamento string     `json:"departamento" gorm:"column:departamento"`
	Municipio    string     `json:"municipio" gorm:"column:municipio"`
	Vereda       *string    `json:"vereda" gorm:"column:vereda"`
	CreatedAt    *time.Time `json:"created_at" gorm:"column:created_at;<-:false"`
}

func (Location) TableName() string {
	return constvars.TableLocation
}

// LocatedRecord carries the location columns joined onto records that reference ubicacion.
type LocatedRecord struct {
	UbicacionDepartamento *string `json:"ubicacion_departamento,omitempty" gorm:"column:ubicacion_departamento;->"`
	UbicacionMunicipio    *string `json:"ubicacion_municipio,omitempty" gorm:"column:ubicacion_municipio;->"`
}

// ProviderLocation is one provider's department and municipality. Linked is
// false when the provider has no ubicacion row at all.
type ProviderLocation struct {
	Linked       bool    `gorm:"column:linked"`
	Departamento *string `gorm:"column:departamento"`
	Municipio    *string `gorm:"column:municipio"`
}
