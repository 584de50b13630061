package models

import (
	"time"
	"uesvalle-service/internal/pkg/constvars"
)

type SampleRequest struct {
	ID                int64      `json:"id_muestreo" gorm:"column:id_muestreo;primaryKey"`
	Codigo            *string    `json:"codigo" gorm:"column:codigo"`
	Nombre            string     `json:"nombre" gorm:"column:nombre"`
	Descripcion       *string    `json:"descripcion" gorm:"column:descripcion"`
	IDPrestador       *int64     `json:"id_prestador" gorm:"column:id_prestador"`
	IDLaboratorio     *int64     `json:"id_laboratorio" gorm:"column:id_laboratorio"`
	IDSolicitante     *int64     `json:"id_solicitante" gorm:"column:id_solicitante"`
	CreatedAt         *time.Time `json:"created_at" gorm:"column:created_at;<-:false"`
	PrestadorNombre   *string    `json:"prestador_nombre,omitempty" gorm:"column:prestador_nombre;->"`
	LaboratorioNombre *string    `json:"laboratorio_nombre,omitempty" gorm:"column:laboratorio_nombre;->"`
	SolicitanteNombre *string    `json:"solicitante_nombre,omitempty" gorm:"column:solicitante_nombre;->"`
}

func (SampleRequest) TableName() string {
	return constvars.TableSampleRequest
}

// ProviderSampleRequestRow is a sample request as listed on a provider's detail page.
type ProviderSampleRequestRow struct {
	ID                int64      `json:"id_muestreo" gorm:"column:id_muestreo"`
	Codigo            *string    `json:"codigo" gorm:"column:codigo"`
	Nombre            string     `json:"nombre" gorm:"column:nombre"`
	Descripcion       *string    `json:"descripcion" gorm:"column:descripcion"`
	IDPrestador       *int64     `json:"id_prestador" gorm:"column:id_prestador"`
	IDLaboratorio     *int64     `json:"id_laboratorio" gorm:"column:id_laboratorio"`
	IDSolicitante     *int64     `json:"id_solicitante" gorm:"column:id_solicitante"`
	CreatedAt         *time.Time `json:"created_at" gorm:"column:created_at"`
	LaboratorioNombre *string    `json:"laboratorio_nombre" gorm:"column:laboratorio_nombre"`
	SolicitanteNombre *string    `json:"solicitante_nombre" gorm:"column:solicitante_nombre"`
}
