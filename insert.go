package stmt

import (
	"fmt"
	"strings"
)

type Insert struct {
	table string
	sets  []assignment
}

func NewInsert(table string) *Insert {
	return &Insert{table: table}
}

// InsertOf creates an Insert for the table of obj with a value for every
// column of obj.
func InsertOf(obj any) (*Insert, error) {
	table, err := TableName(obj)
	if err != nil {
		return nil, err
	}
	sets, err := assignmentsOf(obj)
	if err != nil {
		return nil, err
	}
	return &Insert{table: table, sets: sets}, nil
}

func (i *Insert) Table(name string) *Insert {
	i.table = name
	return i
}

func (i *Insert) Value(column string, value Value) *Insert {
	i.sets = append(i.sets, assignment{column: column, value: value})
	return i
}

func (i *Insert) Clear() *Insert {
	i.table = ""
	i.sets = nil
	return i
}

func (i *Insert) SQL() string {
	columns, values := literals(i.sets)
	return i.render(columns, values)
}

func (i *Insert) ToSQL(d *Dialect) (string, []interface{}) {
	columns, placeholders, args := bind(d, i.sets)
	return i.render(columns, placeholders), args
}

func (i *Insert) render(columns, values []string) string {
	if len(columns) == 0 {
		return fmt.Sprintf("%s %s %s", keywordInsertInto, i.table, keywordDefault)
	}
	return fmt.Sprintf("%s %s (%s) %s (%s)",
		keywordInsertInto,
		i.table,
		strings.Join(columns, ", "),
		keywordValues,
		strings.Join(values, ", "),
	)
}

func (i *Insert) String() string {
	return i.SQL()
}
