package queries

const (
	GetProviderLocations = `
		SELECT u.id_ubicacion IS NOT NULL AS linked, u.departamento, u.municipio
		FROM prestador p
		LEFT JOIN ubicacion u ON u.id_ubicacion = p.id_ubicacion
	`

	GetReportsWithProvider = `
		SELECT r.id_reporte, r.codigo, r.estado, r.fecha_creacion, p.nombre AS prestador_nombre
		FROM reporte r
		LEFT JOIN prestador p ON p.id_prestador = r.id_prestador
		ORDER BY r.fecha_creacion DESC NULLS LAST, r.id_reporte
	`
)
