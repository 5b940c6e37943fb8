package stmt

const (
	Eq   = "="
	NE   = "<>"
	GT   = ">"
	LT   = "<"
	GE   = ">="
	LE   = "<="
	Like = "LIKE"
	In   = "IN"
)

const (
	keywordUpdate     = "UPDATE"
	keywordSet        = "SET"
	keywordWhere      = "WHERE"
	keywordAnd        = "AND"
	keywordOr         = "OR"
	keywordSelect     = "SELECT"
	keywordDistinct   = "DISTINCT"
	keywordFrom       = "FROM"
	keywordGroupBy    = "GROUP BY"
	keywordOrderBy    = "ORDER BY"
	keywordLimit      = "LIMIT"
	keywordOffset     = "OFFSET"
	keywordInsertInto = "INSERT INTO"
	keywordValues     = "VALUES"
	keywordDefault    = "DEFAULT VALUES"
	keywordDeleteFrom = "DELETE FROM"
)

// Statement is implemented by every builder in this package. Builders are
// not safe for concurrent use; SQL does not modify the builder and can be
// called any number of times.
type Statement interface {
	SQL() string
}

var (
	_ Statement = (*Update)(nil)
	_ Statement = (*Select)(nil)
	_ Statement = (*Insert)(nil)
	_ Statement = (*Delete)(nil)
)
