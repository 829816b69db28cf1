package familytable

type ColumnType int

const (
	FamilyColumn ColumnType = iota + 1
	CatalyticTypeColumn
	CountColumn
	IgnoreColumn
)

func (c ColumnType) String() string {
	switch c {
	case FamilyColumn:
		return "FamilyColumn"
	case CatalyticTypeColumn:
		return "CatalyticTypeColumn"
	case CountColumn:
		return "CountColumn"
	default:
		return "IgnoreColumn"
	}
}

// RequiredColumns are the header names a family table must contain, in the
// order they are reported when missing.
var RequiredColumns = []struct {
	Name string
	Type ColumnType
}{
	{Name: "Family", Type: FamilyColumn},
	{Name: "Catalytic_type", Type: CatalyticTypeColumn},
	{Name: "Count", Type: CountColumn},
}
