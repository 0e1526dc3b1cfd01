package catalog

// Field identifies one of the five record columns. The zero value is
// FieldType; the browser's default sort field is FieldName.
type Field int

const (
	FieldType Field = iota
	FieldName
	FieldManufacturer
	FieldDescription
	FieldInvestigate
)

// Fields lists all columns in display order.
var Fields = []Field{
	FieldType,
	FieldName,
	FieldManufacturer,
	FieldDescription,
	FieldInvestigate,
}

// Title returns the column heading for the field.
func (f Field) Title() string {
	switch f {
	case FieldType:
		return "Plugin Type"
	case FieldName:
		return "Name"
	case FieldManufacturer:
		return "Manufacturer"
	case FieldDescription:
		return "Description"
	case FieldInvestigate:
		return "Investigate"
	default:
		return ""
	}
}

// Value returns the record's value for the field. Unknown fields read
// as empty, matching how missing source keys decode.
func (f Field) Value(r Record) string {
	switch f {
	case FieldType:
		return r.Type
	case FieldName:
		return r.Name
	case FieldManufacturer:
		return r.Manufacturer
	case FieldDescription:
		return r.Description
	case FieldInvestigate:
		return r.Investigate
	default:
		return ""
	}
}
