package entities

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"
	"uesvalle-service/internal/app/models"
	"uesvalle-service/internal/pkg/dto/requests"
	"uesvalle-service/internal/pkg/exceptions"
	"uesvalle-service/internal/pkg/utils"

	"github.com/goccy/go-json"
)

// BindForm turns raw form input into the full set of editable column values.
// Unknown keys and the primary key are dropped, blanks become NULL, and every
// editable column is present so an update replaces the whole row.
func BindForm(definition *models.EntityDefinition, form requests.EntityForm) (map[string]interface{}, map[string]string) {
	values := make(map[string]interface{}, len(definition.Fields))
	fieldErrors := make(map[string]string)

	for _, field := range definition.Fields {
		raw := stringifyFormValue(form[field.Column])

		if field.Required {
			if err := utils.ValidateVar(raw, "required"); err != nil {
				fieldErrors[field.Column] = exceptions.FormatTag("required", "")
				values[field.Column] = nil
				continue
			}
		}

		if raw == "" {
			values[field.Column] = nil
			continue
		}

		switch field.Kind {
		case models.FieldKindInteger:
			number, err := strconv.ParseInt(raw, 10, 64)
			if err != nil {
				fieldErrors[field.Column] = exceptions.FormatTag("numeric", "")
				values[field.Column] = raw
				continue
			}
			values[field.Column] = number
		case models.FieldKindDate:
			if _, err := utils.ParseDate(raw); err != nil {
				fieldErrors[field.Column] = exceptions.FormatTag("datetime", utils.DateLayout)
			}
			values[field.Column] = raw
		default:
			values[field.Column] = raw
		}
	}

	if len(fieldErrors) == 0 {
		return values, nil
	}
	return values, fieldErrors
}

// FormValues projects a stored record onto the editable columns, for prefilling an edit form.
func FormValues(definition *models.EntityDefinition, record interface{}) (map[string]interface{}, error) {
	encoded, err := json.Marshal(record)
	if err != nil {
		return nil, exceptions.ErrCannotMarshalJSON(err)
	}

	decoder := json.NewDecoder(bytes.NewReader(encoded))
	decoder.UseNumber()
	var decoded map[string]interface{}
	if err := decoder.Decode(&decoded); err != nil {
		return nil, exceptions.ErrCannotMarshalJSON(err)
	}

	values := make(map[string]interface{}, len(definition.Fields))
	for _, field := range definition.Fields {
		value := decoded[field.Column]
		if field.Kind == models.FieldKindDate {
			if text, ok := value.(string); ok && len(text) >= len(utils.DateLayout) {
				value = text[:len(utils.DateLayout)]
			}
		}
		values[field.Column] = value
	}
	return values, nil
}

func stringifyFormValue(value interface{}) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return strings.TrimSpace(v)
	case json.Number:
		return v.String()
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(v)
	default:
		return strings.TrimSpace(fmt.Sprint(v))
	}
}
