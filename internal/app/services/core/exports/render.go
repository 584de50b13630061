package exports

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"
	"strings"
	"time"
	"uesvalle-service/internal/app/models"
	"uesvalle-service/internal/pkg/constvars"
	"uesvalle-service/internal/pkg/exceptions"

	"github.com/tealeg/xlsx"
)

// renderSpreadsheet writes one sheet whose first row is the column names.
func renderSpreadsheet(table *models.MergedTable) ([]byte, error) {
	file := xlsx.NewFile()
	sheet, err := file.AddSheet(constvars.ExportSheetName)
	if err != nil {
		return nil, exceptions.ErrBuildSpreadsheet(err)
	}

	header := sheet.AddRow()
	for _, column := range table.Columns {
		header.AddCell().SetString(column)
	}

	for _, values := range table.Rows {
		row := sheet.AddRow()
		for _, value := range values {
			setCellValue(row.AddCell(), value)
		}
	}

	var buf bytes.Buffer
	if err := file.Write(&buf); err != nil {
		return nil, exceptions.ErrBuildSpreadsheet(err)
	}
	return buf.Bytes(), nil
}

func setCellValue(cell *xlsx.Cell, value interface{}) {
	switch v := value.(type) {
	case nil:
		cell.SetString("")
	case int64:
		cell.SetInt64(v)
	case float64:
		cell.SetFloat(v)
	case bool:
		cell.SetBool(v)
	default:
		cell.SetString(cellText(v))
	}
}

// renderCSV writes the header and at most limit data rows; limit <= 0 writes all.
func renderCSV(table *models.MergedTable, limit int) ([]byte, error) {
	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	if err := writer.Write(table.Columns); err != nil {
		return nil, exceptions.ErrBuildCSV(err)
	}

	rows := table.Rows
	if limit > 0 && len(rows) > limit {
		rows = rows[:limit]
	}
	record := make([]string, len(table.Columns))
	for _, values := range rows {
		for i, value := range values {
			record[i] = cellText(value)
		}
		if err := writer.Write(record); err != nil {
			return nil, exceptions.ErrBuildCSV(err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, exceptions.ErrBuildCSV(err)
	}
	return buf.Bytes(), nil
}

// cellText is the textual form used by CSV cells and the search filter.
func cellText(value interface{}) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case []byte:
		return string(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(v)
	case time.Time:
		return v.Format(time.RFC3339)
	default:
		return fmt.Sprint(v)
	}
}

// rowMatches looks for term in the concatenation of every value of the row.
func rowMatches(values []interface{}, term string) bool {
	if term == "" {
		return true
	}
	var joined strings.Builder
	for _, value := range values {
		joined.WriteString(strings.ToLower(cellText(value)))
	}
	return strings.Contains(joined.String(), term)
}
