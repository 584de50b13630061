package queries

// Formatted with identifiers taken from a fixed entity definition, never from input.
const (
	InsertEntity = `
		INSERT INTO %s (%s)
		VALUES (%s)
		RETURNING %s
	`

	DeleteEntityByKey = `
		DELETE FROM %s
		WHERE %s = ?
	`

	SelectJoinedColumn = "%s.%s AS %s"

	LeftJoin = "LEFT JOIN %s AS %s ON %s.%s = base.%s"

	SearchCondition = "base.%s ILIKE ?"
)
