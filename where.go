package stmt

import (
	"fmt"
	"strings"
)

// filter holds the WHERE fragments of a statement. Fragments are joined
// without a separator, so connectives carry their own spaces. Update,
// Select and Delete expose it through methods that return the statement.
type filter struct {
	conds []string
}

// where ignores blank conditions.
func (f *filter) where(cond string) {
	if strings.TrimSpace(cond) != "" {
		f.conds = append(f.conds, cond)
	}
}

// cond formats value with fmt.Sprint, without quoting.
func (f *filter) cond(column, op string, value any) {
	f.where(fmt.Sprintf("%s %s %v", column, op, value))
}

// connective is a no-op on an empty filter. Repeated calls are not merged.
func (f *filter) connective(op string) {
	if len(f.conds) > 0 {
		f.conds = append(f.conds, " "+op+" ")
	}
}

func (f *filter) equal(column string, value any) {
	f.cond(column, Eq, Lit(value))
}

func (f *filter) equalAliased(cAlias, column, vAlias string, value any) {
	f.cond(qualify(cAlias, column), Eq, qualify(vAlias, fmt.Sprint(value)))
}

func (f *filter) in(column, subSelect string) {
	f.where(fmt.Sprintf("%s %s (%s)", column, In, subSelect))
}

func (f *filter) clear() {
	f.conds = nil
}

func (f *filter) whereSQL() string {
	if len(f.conds) == 0 {
		return ""
	}
	return " " + keywordWhere + " " + strings.Join(f.conds, "")
}

func qualify(alias, column string) string {
	if alias == "" {
		return column
	}
	return alias + "." + column
}

// Where appends a raw condition. Blank conditions are ignored.
func (u *Update) Where(cond string) *Update { u.where(cond); return u }

// Cond appends "column op value". value is formatted with fmt.Sprint and is
// not quoted, so Cond("a", "=", Text("x")) gives "a = x".
func (u *Update) Cond(column, op string, value any) *Update { u.cond(column, op, value); return u }

// And and Or do nothing while there are no conditions.
func (u *Update) And() *Update { u.connective(keywordAnd); return u }
func (u *Update) Or() *Update  { u.connective(keywordOr); return u }

// Equal appends "column = value" with value rendered by Lit.
func (u *Update) Equal(column string, value any) *Update { u.equal(column, value); return u }

func (u *Update) EqualAlias(alias, column string, value any) *Update {
	u.cond(qualify(alias, column), Eq, value)
	return u
}

// EqualAliased compares two qualified references, e.g. "u.id = p.user_id".
func (u *Update) EqualAliased(cAlias, column, vAlias string, value any) *Update {
	u.equalAliased(cAlias, column, vAlias, value)
	return u
}

func (u *Update) GreaterEqual(column string, value any) *Update { u.cond(column, GE, value); return u }
func (u *Update) SmallerEqual(column string, value any) *Update { u.cond(column, LE, value); return u }
func (u *Update) Dif(column string, value any) *Update          { u.cond(column, NE, value); return u }

// In appends "column IN (subSelect)". subSelect is not inspected.
func (u *Update) In(column, subSelect string) *Update { u.in(column, subSelect); return u }

func (u *Update) InSelect(column string, sub *Select) *Update { u.in(column, sub.SQL()); return u }

func (s *Select) Where(cond string) *Select                     { s.where(cond); return s }
func (s *Select) Cond(column, op string, value any) *Select     { s.cond(column, op, value); return s }
func (s *Select) And() *Select                                  { s.connective(keywordAnd); return s }
func (s *Select) Or() *Select                                   { s.connective(keywordOr); return s }
func (s *Select) Equal(column string, value any) *Select        { s.equal(column, value); return s }
func (s *Select) GreaterEqual(column string, value any) *Select { s.cond(column, GE, value); return s }
func (s *Select) SmallerEqual(column string, value any) *Select { s.cond(column, LE, value); return s }
func (s *Select) Dif(column string, value any) *Select          { s.cond(column, NE, value); return s }
func (s *Select) In(column, subSelect string) *Select           { s.in(column, subSelect); return s }
func (s *Select) InSelect(column string, sub *Select) *Select   { s.in(column, sub.SQL()); return s }

func (s *Select) EqualAlias(alias, column string, value any) *Select {
	s.cond(qualify(alias, column), Eq, value)
	return s
}

func (s *Select) EqualAliased(cAlias, column, vAlias string, value any) *Select {
	s.equalAliased(cAlias, column, vAlias, value)
	return s
}

func (d *Delete) Where(cond string) *Delete                     { d.where(cond); return d }
func (d *Delete) Cond(column, op string, value any) *Delete     { d.cond(column, op, value); return d }
func (d *Delete) And() *Delete                                  { d.connective(keywordAnd); return d }
func (d *Delete) Or() *Delete                                   { d.connective(keywordOr); return d }
func (d *Delete) Equal(column string, value any) *Delete        { d.equal(column, value); return d }
func (d *Delete) GreaterEqual(column string, value any) *Delete { d.cond(column, GE, value); return d }
func (d *Delete) SmallerEqual(column string, value any) *Delete { d.cond(column, LE, value); return d }
func (d *Delete) Dif(column string, value any) *Delete          { d.cond(column, NE, value); return d }
func (d *Delete) In(column, subSelect string) *Delete           { d.in(column, subSelect); return d }
func (d *Delete) InSelect(column string, sub *Select) *Delete   { d.in(column, sub.SQL()); return d }

func (d *Delete) EqualAlias(alias, column string, value any) *Delete {
	d.cond(qualify(alias, column), Eq, value)
	return d
}

func (d *Delete) EqualAliased(cAlias, column, vAlias string, value any) *Delete {
	d.equalAliased(cAlias, column, vAlias, value)
	return d
}
