package queries

const (
	GetRepresentativesByProviderID = `
		SELECT id_representante, nombre, cargo, email, id_prestador, created_at
		FROM representante
		WHERE id_prestador = ?
		ORDER BY nombre ASC, id_representante ASC
	`

	GetSampleRequestsByProviderID = `
		SELECT m.id_muestreo, m.codigo, m.nombre, m.descripcion, m.id_prestador,
			m.id_laboratorio, m.id_solicitante, m.created_at,
			l.nombre AS laboratorio_nombre,
			s.nombre AS solicitante_nombre
		FROM muestreo m
		LEFT JOIN laboratorio l ON l.id_laboratorio = m.id_laboratorio
		LEFT JOIN solicitante s ON s.id_solicitante = m.id_solicitante
		WHERE m.id_prestador = ?
		ORDER BY m.created_at DESC, m.id_muestreo DESC
	`

	GetReportsByProviderID = `
		SELECT id_reporte, codigo, estado, fecha_creacion, punto, id_prestador, created_at
		FROM reporte
		WHERE id_prestador = ?
		ORDER BY fecha_creacion DESC NULLS LAST, id_reporte DESC
	`
)
