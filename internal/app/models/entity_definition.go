package models

// FieldKind tells the form binder how to coerce a raw form value.
type FieldKind string

const (
	FieldKindText    FieldKind = "text"
	FieldKindInteger FieldKind = "integer"
	FieldKindDate    FieldKind = "date"
)

type EntityField struct {
	Column   string
	Kind     FieldKind
	Required bool
}

type JoinColumn struct {
	Column string
	As     string
}

// EntityJoin is a LEFT JOIN from the base table to a referenced table.
type EntityJoin struct {
	Table         string
	Alias         string
	ForeignKey    string
	ReferencedKey string
	Columns       []JoinColumn
}

// EntityDefinition parameterises the generic list/edit controller for one table.
type EntityDefinition struct {
	Resource      string
	Label         string
	Table         string
	PrimaryKey    string
	OrderBy       string
	Descending    bool
	SearchColumns []string
	Joins         []EntityJoin
	Fields        []EntityField
}

func (d *EntityDefinition) Columns() []string {
	columns := make([]string, len(d.Fields))
	for i, field := range d.Fields {
		columns[i] = field.Column
	}
	return columns
}
