package stmt

type assignment struct {
	column string
	value  Value
}

// bind renders assignments as "column = placeholder" pairs, except Raw
// values which stay inline, and returns the arguments in placeholder order.
func bind(d *Dialect, sets []assignment) (columns, placeholders []string, args []interface{}) {
	if d == nil {
		d = Dialects.MySQL
	}
	n := 0
	for _, s := range sets {
		if _, raw := s.value.(Raw); !raw {
			n++
		}
	}
	phs := d.PlaceHolderGenerator(n)
	for _, s := range sets {
		columns = append(columns, s.column)
		if _, raw := s.value.(Raw); raw {
			placeholders = append(placeholders, s.value.Literal())
			continue
		}
		placeholders = append(placeholders, phs[len(args)])
		args = append(args, s.value.Arg())
	}
	return columns, placeholders, args
}

func literals(sets []assignment) (columns, values []string) {
	for _, s := range sets {
		columns = append(columns, s.column)
		values = append(values, s.value.Literal())
	}
	return columns, values
}
