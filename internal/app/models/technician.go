package models

import (
	"time"
	"uesvalle-service/internal/pkg/constvars"
)

type Technician struct {
	ID                int64      `json:"id_tecnico" gorm:"column:id_tecnico;primaryKey"`
	Identificacion    *int64     `json:"identificacion" gorm:"column:identificacion"`
	Nombre            string     `json:"nombre" gorm:"column:nombre"`
	Profesion         *string    `json:"profesion" gorm:"column:profesion"`
	Telefono          *string    `json:"telefono" gorm:"column:telefono"`
	Email             *string    `json:"email" gorm:"column:email"`
	IDUbicacion       *int64     `json:"id_ubicacion" gorm:"column:id_ubicacion"`
	IDLaboratorio     *int64     `json:"id_laboratorio" gorm:"column:id_laboratorio"`
	CreatedAt         *time.Time `json:"created_at" gorm:"column:created_at;<-:false"`
	LaboratorioNombre *string    `json:"laboratorio_nombre,omitempty" gorm:"column:laboratorio_nombre;->"`
	LocatedRecord
}

func (Technician) TableName() string {
	return constvars.TableTechnician
}
