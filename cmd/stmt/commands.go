package main

import (
	"fmt"
	"strings"

	"github.com/golobby/stmt"
	"github.com/jedib0t/go-pretty/table"
)

type Target struct {
	Table string `short:"t" long:"table" required:"true" description:"Target table"`
}

type Conditions struct {
	Where []string `short:"w" long:"where" description:"Raw condition, repeatable"`
	Or    bool     `long:"or" description:"Join conditions with OR instead of AND"`
}

// apply hands every non-blank condition to where, with and or or called in
// between.
func (c Conditions) apply(where func(string), and, or func()) {
	for i, cond := range c.conditions() {
		if i > 0 {
			if c.Or {
				or()
			} else {
				and()
			}
		}
		where(cond)
	}
}

func (c Conditions) conditions() []string {
	var conds []string
	for _, w := range c.Where {
		if strings.TrimSpace(w) != "" {
			conds = append(conds, w)
		}
	}
	return conds
}

type Assignments struct {
	Set []string `short:"s" long:"set" description:"Assignment column=value or column:type=value, repeatable"`
}

type parsedAssignment struct {
	column string
	value  stmt.Value
}

func (a Assignments) parse() ([]parsedAssignment, error) {
	var parsed []parsedAssignment
	for _, s := range a.Set {
		column, v, err := parseAssignment(s)
		if err != nil {
			return nil, err
		}
		parsed = append(parsed, parsedAssignment{column: column, value: v})
	}
	return parsed, nil
}

type updateCommand struct {
	Target
	Assignments
	Conditions
}

func (c *updateCommand) Execute(_ []string) error {
	return withLogger("update", func(log Logger) error {
		sets, err := c.parse()
		if err != nil {
			return err
		}
		u := stmt.NewUpdate(c.Table)
		for _, s := range sets {
			u.Set(s.column, s.value)
		}
		c.apply(func(s string) { u.Where(s) }, func() { u.And() }, func() { u.Or() })
		return render(log, u, u.ToSQL, sets, c.conditions())
	})
}

type insertCommand struct {
	Target
	Assignments
}

func (c *insertCommand) Execute(_ []string) error {
	return withLogger("insert", func(log Logger) error {
		sets, err := c.parse()
		if err != nil {
			return err
		}
		i := stmt.NewInsert(c.Table)
		for _, s := range sets {
			i.Value(s.column, s.value)
		}
		return render(log, i, i.ToSQL, sets, nil)
	})
}

type deleteCommand struct {
	Target
	Conditions
}

func (c *deleteCommand) Execute(_ []string) error {
	return withLogger("delete", func(log Logger) error {
		d := stmt.NewDelete(c.Table)
		c.apply(func(s string) { d.Where(s) }, func() { d.And() }, func() { d.Or() })
		return render(log, d, nil, nil, c.conditions())
	})
}

type selectCommand struct {
	Target
	Conditions
	Columns  []string `short:"c" long:"column" description:"Selected column, repeatable"`
	Distinct bool     `long:"distinct" description:"Select distinct rows"`
	GroupBy  []string `long:"group-by" description:"Group by column, repeatable"`
	OrderBy  []string `long:"order-by" description:"Order by \"column [ASC|DESC]\", repeatable"`
	Limit    int      `long:"limit" description:"Maximum number of rows"`
	Offset   int      `long:"offset" description:"Rows to skip"`
}

func (c *selectCommand) Execute(_ []string) error {
	return withLogger("select", func(log Logger) error {
		s := stmt.NewSelect(c.Table).
			Columns(c.Columns...).
			GroupBy(c.GroupBy...).
			Limit(c.Limit).
			Offset(c.Offset)
		if c.Distinct {
			s.Distinct()
		}
		for _, o := range c.OrderBy {
			s.OrderBy(o, "")
		}
		c.apply(func(w string) { s.Where(w) }, func() { s.And() }, func() { s.Or() })
		return render(log, s, nil, nil, c.conditions())
	})
}

// withLogger runs fn with a fresh logger and logs the error fn returns.
func withLogger(command string, fn func(log Logger) error) error {
	log, err := newLogger()
	if err != nil {
		return err
	}
	defer log.Sync()

	log.Infof("rendering %s statement", command)
	if err := fn(log); err != nil {
		log.Errorf("%s: %v", command, err)
		return err
	}
	return nil
}

// render prints the statement. toSQL is nil for statements without a
// parameterized form.
func render(log Logger, s stmt.Statement, toSQL func(*stmt.Dialect) (string, []interface{}), sets []parsedAssignment, conds []string) error {
	if opts.Explain {
		explain(sets, conds)
	}

	if opts.Params && toSQL != nil {
		d, err := stmt.DialectOf(opts.Dialect)
		if err != nil {
			return err
		}
		q, args := toSQL(d)
		log.Debugf("rendered %d placeholders for %s", len(args), d.DriverName)
		fmt.Fprintln(out, q)
		for i, a := range args {
			fmt.Fprintf(out, "%d: %v\n", i+1, a)
		}
		return nil
	}
	if opts.Params {
		log.Warnf("statement has no values to bind, rendering literals")
	}

	q := s.SQL()
	log.Debugf("rendered %q", q)
	fmt.Fprintln(out, q)
	return nil
}

func explain(sets []parsedAssignment, conds []string) {
	w := table.NewWriter()
	w.AppendHeader(table.Row{"Clause", "Column", "Value"})
	for _, s := range sets {
		w.AppendRow(table.Row{"SET", s.column, s.value.Literal()})
	}
	for _, c := range conds {
		w.AppendRow(table.Row{"WHERE", "", c})
	}
	fmt.Fprintln(out, w.Render())
}

// newLogger is a variable so tests can capture log output.
var newLogger = func() (Logger, error) {
	if opts.Debug {
		return newZapLogger(LogLevelDev)
	}
	return newZapLogger(LogLevelProd)
}
