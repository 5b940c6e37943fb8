package main

import (
	"io"
	"os"

	"github.com/jessevdk/go-flags"
)

type Options struct {
	Debug   bool   `long:"debug" env:"STMT_DEBUG" description:"Log with the development logger at debug level"`
	Dialect string `long:"dialect" env:"STMT_DIALECT" default:"sqlite3" description:"Placeholder dialect used with --params (mysql, postgres, sqlite3)"`
	Params  bool   `long:"params" description:"Render values as placeholders and print the bind arguments"`
	Explain bool   `long:"explain" description:"Print the clauses of the statement as a table"`
}

var (
	opts Options
	out  io.Writer = os.Stdout
)

func newParser(options flags.Options) *flags.Parser {
	opts = Options{}
	parser := flags.NewParser(&opts, options)
	parser.ShortDescription = "Render SQL statements"
	parser.LongDescription = "Builds UPDATE, INSERT, DELETE and SELECT statements from flags and prints them. Nothing is executed."

	for _, c := range []struct {
		name, short string
		data        interface{}
	}{
		{"update", "Render an UPDATE statement", &updateCommand{}},
		{"insert", "Render an INSERT statement", &insertCommand{}},
		{"delete", "Render a DELETE statement", &deleteCommand{}},
		{"select", "Render a SELECT statement", &selectCommand{}},
	} {
		if _, err := parser.AddCommand(c.name, c.short, "", c.data); err != nil {
			panic(err)
		}
	}
	return parser
}

func main() {
	parser := newParser(flags.Default)

	if _, err := parser.Parse(); err != nil {
		code := 1
		if fe, ok := err.(*flags.Error); ok && fe.Type == flags.ErrHelp {
			code = 0
		}
		os.Exit(code)
	}
}
