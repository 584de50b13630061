package entities

import (
	"uesvalle-service/internal/app/models"
	"uesvalle-service/internal/pkg/constvars"
)

var locationJoin = models.EntityJoin{
	Table:         constvars.TableLocation,
	Alias:         "ubicacion",
	ForeignKey:    "id_ubicacion",
	ReferencedKey: "id_ubicacion",
	Columns: []models.JoinColumn{
		{Column: "departamento", As: "ubicacion_departamento"},
		{Column: "municipio", As: "ubicacion_municipio"},
	},
}

func nameJoin(table, key string) models.EntityJoin {
	return models.EntityJoin{
		Table:         table,
		Alias:         table,
		ForeignKey:    key,
		ReferencedKey: key,
		Columns:       []models.JoinColumn{{Column: "nombre", As: table + "_nombre"}},
	}
}

func text(column string) models.EntityField {
	return models.EntityField{Column: column, Kind: models.FieldKindText}
}

func requiredText(column string) models.EntityField {
	return models.EntityField{Column: column, Kind: models.FieldKindText, Required: true}
}

func integer(column string) models.EntityField {
	return models.EntityField{Column: column, Kind: models.FieldKindInteger}
}

var ProviderDefinition = &models.EntityDefinition{
	Resource:      constvars.ResourceProviders,
	Label:         "Provider",
	Table:         constvars.TableProvider,
	PrimaryKey:    "id_prestador",
	OrderBy:       "nombre",
	SearchColumns: []string{"nombre", "nit"},
	Joins:         []models.EntityJoin{locationJoin},
	Fields: []models.EntityField{
		requiredText("nombre"),
		text("nit"),
		text("direccion"),
		text("telefono"),
		text("id_sspd"),
		text("id_autoridad_sanitaria"),
		text("codigo_sistema"),
		text("nombre_sistema"),
		text("codigo_anterior"),
		integer("id_ubicacion"),
	},
}

var LaboratoryDefinition = &models.EntityDefinition{
	Resource:      constvars.ResourceLaboratories,
	Label:         "Laboratory",
	Table:         constvars.TableLaboratory,
	PrimaryKey:    "id_laboratorio",
	OrderBy:       "nombre",
	SearchColumns: []string{"nombre", "email", "telefono"},
	Joins:         []models.EntityJoin{locationJoin},
	Fields: []models.EntityField{
		requiredText("nombre"),
		text("estado"),
		text("telefono"),
		text("email"),
		integer("id_ubicacion"),
	},
}

var TechnicianDefinition = &models.EntityDefinition{
	Resource:      constvars.ResourceTechnicians,
	Label:         "Technician",
	Table:         constvars.TableTechnician,
	PrimaryKey:    "id_tecnico",
	OrderBy:       "nombre",
	SearchColumns: []string{"nombre", "profesion", "email"},
	Joins: []models.EntityJoin{
		nameJoin(constvars.TableLaboratory, "id_laboratorio"),
		locationJoin,
	},
	Fields: []models.EntityField{
		integer("identificacion"),
		requiredText("nombre"),
		text("profesion"),
		text("telefono"),
		text("email"),
		integer("id_ubicacion"),
		integer("id_laboratorio"),
	},
}

// Sample requests keep insertion order in the grid.
var SampleRequestDefinition = &models.EntityDefinition{
	Resource:      constvars.ResourceSampleRequests,
	Label:         "Sample request",
	Table:         constvars.TableSampleRequest,
	PrimaryKey:    "id_muestreo",
	OrderBy:       "id_muestreo",
	SearchColumns: []string{"codigo", "nombre"},
	Joins: []models.EntityJoin{
		nameJoin(constvars.TableProvider, "id_prestador"),
		nameJoin(constvars.TableLaboratory, "id_laboratorio"),
		nameJoin(constvars.TableRequester, "id_solicitante"),
	},
	Fields: []models.EntityField{
		text("codigo"),
		requiredText("nombre"),
		text("descripcion"),
		integer("id_prestador"),
		integer("id_laboratorio"),
		integer("id_solicitante"),
	},
}

var RequesterDefinition = &models.EntityDefinition{
	Resource:      constvars.ResourceRequesters,
	Label:         "Requester",
	Table:         constvars.TableRequester,
	PrimaryKey:    "id_solicitante",
	OrderBy:       "nombre",
	SearchColumns: []string{"nombre", "estado"},
	Joins:         []models.EntityJoin{locationJoin},
	Fields: []models.EntityField{
		requiredText("nombre"),
		text("estado"),
		integer("id_ubicacion"),
	},
}

// Reports list newest first.
var ReportDefinition = &models.EntityDefinition{
	Resource:      constvars.ResourceReports,
	Label:         "Report",
	Table:         constvars.TableReport,
	PrimaryKey:    "id_reporte",
	OrderBy:       "fecha_creacion",
	Descending:    true,
	SearchColumns: []string{"codigo", "estado", "punto"},
	Joins:         []models.EntityJoin{nameJoin(constvars.TableProvider, "id_prestador")},
	Fields: []models.EntityField{
		requiredText("codigo"),
		text("estado"),
		{Column: "fecha_creacion", Kind: models.FieldKindDate},
		text("punto"),
		integer("id_prestador"),
	},
}

var LocationDefinition = &models.EntityDefinition{
	Resource:      constvars.ResourceLocations,
	Label:         "Location",
	Table:         constvars.TableLocation,
	PrimaryKey:    "id_ubicacion",
	OrderBy:       "departamento",
	SearchColumns: []string{"departamento", "municipio", "vereda"},
	Fields: []models.EntityField{
		requiredText("departamento"),
		requiredText("municipio"),
		text("vereda"),
	},
}

var RepresentativeDefinition = &models.EntityDefinition{
	Resource:      constvars.ResourceRepresentatives,
	Label:         "Representative",
	Table:         constvars.TableRepresentative,
	PrimaryKey:    "id_representante",
	OrderBy:       "nombre",
	SearchColumns: []string{"nombre", "cargo", "email"},
	Joins:         []models.EntityJoin{nameJoin(constvars.TableProvider, "id_prestador")},
	Fields: []models.EntityField{
		requiredText("nombre"),
		text("cargo"),
		text("email"),
		integer("id_prestador"),
	},
}

func AllDefinitions() []*models.EntityDefinition {
	return []*models.EntityDefinition{
		ProviderDefinition,
		LaboratoryDefinition,
		TechnicianDefinition,
		SampleRequestDefinition,
		RequesterDefinition,
		ReportDefinition,
		LocationDefinition,
		RepresentativeDefinition,
	}
}
