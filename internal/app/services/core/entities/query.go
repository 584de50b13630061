package entities

import (
	"fmt"
	"strings"
	"uesvalle-service/internal/app/models"
	"uesvalle-service/internal/pkg/queries"
	"uesvalle-service/internal/pkg/utils"
)

const baseAlias = "base"

func buildFromClause(definition *models.EntityDefinition) string {
	return fmt.Sprintf("%s AS %s", definition.Table, baseAlias)
}

func buildSelectColumns(definition *models.EntityDefinition) []string {
	columns := []string{baseAlias + ".*"}
	for _, join := range definition.Joins {
		for _, column := range join.Columns {
			columns = append(columns, fmt.Sprintf(queries.SelectJoinedColumn, join.Alias, column.Column, column.As))
		}
	}
	return columns
}

func buildJoinClauses(definition *models.EntityDefinition) []string {
	clauses := make([]string, 0, len(definition.Joins))
	for _, join := range definition.Joins {
		clauses = append(clauses, fmt.Sprintf(queries.LeftJoin, join.Table, join.Alias, join.Alias, join.ReferencedKey, join.ForeignKey))
	}
	return clauses
}

// buildSearchClause ORs a case-insensitive substring match over the search columns.
// An empty term yields no clause.
func buildSearchClause(definition *models.EntityDefinition, search string) (string, []interface{}) {
	term := strings.TrimSpace(search)
	if term == "" || len(definition.SearchColumns) == 0 {
		return "", nil
	}

	pattern := utils.BuildContainsPattern(term)
	conditions := make([]string, len(definition.SearchColumns))
	args := make([]interface{}, len(definition.SearchColumns))
	for i, column := range definition.SearchColumns {
		conditions[i] = fmt.Sprintf(queries.SearchCondition, column)
		args[i] = pattern
	}
	return "(" + strings.Join(conditions, " OR ") + ")", args
}

// buildOrderClause orders by the display field with the key as tiebreaker.
func buildOrderClause(definition *models.EntityDefinition) string {
	direction := "ASC"
	nulls := "NULLS LAST"
	if definition.Descending {
		direction = "DESC"
	}
	order := fmt.Sprintf("%s.%s %s %s", baseAlias, definition.OrderBy, direction, nulls)
	if definition.OrderBy == definition.PrimaryKey {
		return order
	}
	return fmt.Sprintf("%s, %s.%s %s", order, baseAlias, definition.PrimaryKey, direction)
}

func computeOffset(page, pageSize int) int {
	return page * pageSize
}
