package stmt

type Delete struct {
	filter
	table string
}

func NewDelete(table string) *Delete {
	return &Delete{table: table}
}

func (d *Delete) Table(name string) *Delete {
	d.table = name
	return d
}

func (d *Delete) Clear() *Delete {
	d.table = ""
	d.filter.clear()
	return d
}

// SQL renders "DELETE FROM table", followed by the conditions if any. A
// Delete without conditions removes every row.
func (d *Delete) SQL() string {
	return keywordDeleteFrom + " " + d.table + d.whereSQL()
}

func (d *Delete) String() string {
	return d.SQL()
}
