package queries

const (
	CallProcedure = "SELECT * FROM %s()"
)
