package stmt

import (
	"strings"
)

// Update builds an UPDATE statement. Assignments and conditions are
// rendered in the order they were added. The zero value is an Update with
// no table.
type Update struct {
	filter
	table string
	sets  []assignment
}

func NewUpdate(table string) *Update {
	return &Update{table: table}
}

// UpdateOf creates an Update for the table of obj with one assignment per
// column of obj. See TableName and Columns for the naming rules.
func UpdateOf(obj any) (*Update, error) {
	table, err := TableName(obj)
	if err != nil {
		return nil, err
	}
	sets, err := assignmentsOf(obj)
	if err != nil {
		return nil, err
	}
	u := NewUpdate(table)
	u.sets = sets
	return u, nil
}

func (u *Update) Table(name string) *Update {
	u.table = name
	return u
}

// Set appends "column = value". Setting the same column twice emits it twice.
func (u *Update) Set(column string, value Value) *Update {
	u.sets = append(u.sets, assignment{column: column, value: value})
	return u
}

// Clear resets the table, the assignments and the conditions so the
// builder can be reused with Table.
func (u *Update) Clear() *Update {
	u.table = ""
	u.sets = nil
	u.filter.clear()
	return u
}

func (u *Update) SQL() string {
	columns, values := literals(u.sets)
	return u.render(columns, values)
}

// ToSQL renders assignment values as placeholders of d and returns them as
// arguments. Conditions are rendered as they are.
func (u *Update) ToSQL(d *Dialect) (string, []interface{}) {
	columns, placeholders, args := bind(d, u.sets)
	return u.render(columns, placeholders), args
}

func (u *Update) render(columns, values []string) string {
	var b strings.Builder
	b.WriteString(keywordUpdate + " " + u.table)
	if len(columns) > 0 {
		pairs := make([]string, len(columns))
		for i := range columns {
			pairs[i] = columns[i] + " " + Eq + " " + values[i]
		}
		b.WriteString(" " + keywordSet + " " + strings.Join(pairs, ", "))
	}
	b.WriteString(u.whereSQL())
	return b.String()
}

func (u *Update) String() string {
	return u.SQL()
}
