package stmt

import (
	"fmt"
	"strings"
)

const (
	OrderByASC  = "ASC"
	OrderByDesc = "DESC"
)

type Select struct {
	filter
	table    string
	columns  []string
	distinct bool
	groupBy  []string
	orderBy  []string
	limit    int
	offset   int
}

func NewSelect(table string) *Select {
	return &Select{table: table}
}

func (s *Select) Table(name string) *Select {
	s.table = name
	return s
}

// Columns adds to the projection. Without columns the statement selects *.
func (s *Select) Columns(columns ...string) *Select {
	s.columns = append(s.columns, columns...)
	return s
}

func (s *Select) Distinct() *Select {
	s.distinct = true
	return s
}

func (s *Select) GroupBy(columns ...string) *Select {
	s.groupBy = append(s.groupBy, columns...)
	return s
}

// OrderBy adds "column order". order may be empty, OrderByASC or OrderByDesc.
func (s *Select) OrderBy(column, order string) *Select {
	s.orderBy = append(s.orderBy, strings.TrimSpace(column+" "+order))
	return s
}

// Limit and Offset are omitted from the output when n <= 0.
func (s *Select) Limit(n int) *Select {
	s.limit = n
	return s
}

func (s *Select) Offset(n int) *Select {
	s.offset = n
	return s
}

func (s *Select) Clear() *Select {
	*s = Select{}
	return s
}

func (s *Select) SQL() string {
	sections := []string{keywordSelect}
	if s.distinct {
		sections = append(sections, keywordDistinct)
	}
	if len(s.columns) == 0 {
		sections = append(sections, "*")
	} else {
		sections = append(sections, strings.Join(s.columns, ", "))
	}
	sections = append(sections, keywordFrom, s.table)

	base := strings.Join(sections, " ") + s.whereSQL()

	if len(s.groupBy) > 0 {
		base += fmt.Sprintf(" %s %s", keywordGroupBy, strings.Join(s.groupBy, ", "))
	}
	if len(s.orderBy) > 0 {
		base += fmt.Sprintf(" %s %s", keywordOrderBy, strings.Join(s.orderBy, ", "))
	}
	if s.limit > 0 {
		base += fmt.Sprintf(" %s %d", keywordLimit, s.limit)
	}
	if s.offset > 0 {
		base += fmt.Sprintf(" %s %d", keywordOffset, s.offset)
	}
	return base
}

func (s *Select) String() string {
	return s.SQL()
}
