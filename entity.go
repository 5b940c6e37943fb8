package stmt

import (
	"errors"
	"fmt"
	"reflect"

	"github.com/gertd/go-pluralize"
	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/iancoleman/strcase"
)

var ErrNotStruct = errors.New("expected a struct or a pointer to a struct")

const tagName = "stmt"

// Tabler lets a type choose its own table name.
type Tabler interface {
	TableName() string
}

type field struct {
	Name  string
	Index []int
}

var (
	fieldCache, _ = lru.New[reflect.Type, []field](256)
	pluralizer    = pluralize.NewClient()
)

func structOf(obj any) (reflect.Value, error) {
	v := reflect.ValueOf(obj)
	for v.Kind() == reflect.Ptr {
		if v.IsNil() {
			return reflect.Value{}, fmt.Errorf("%w, got nil %T", ErrNotStruct, obj)
		}
		v = v.Elem()
	}
	if v.Kind() != reflect.Struct {
		return reflect.Value{}, fmt.Errorf("%w, got %T", ErrNotStruct, obj)
	}
	return v, nil
}

// TableName returns obj.TableName() when obj implements Tabler, otherwise
// the plural snake_case form of its type name: BlogPost becomes blog_posts.
func TableName(obj any) (string, error) {
	if t, ok := obj.(Tabler); ok {
		return t.TableName(), nil
	}
	v, err := structOf(obj)
	if err != nil {
		return "", err
	}
	return pluralizer.Plural(strcase.ToSnake(v.Type().Name())), nil
}

// Columns lists the column names of obj in field order. A `stmt:"name"` tag
// overrides the snake_case field name and `stmt:"-"` skips the field.
// Embedded structs contribute their own fields.
func Columns(obj any) ([]string, error) {
	v, err := structOf(obj)
	if err != nil {
		return nil, err
	}
	var names []string
	for _, f := range fieldsOf(v.Type()) {
		names = append(names, f.Name)
	}
	return names, nil
}

func fieldsOf(t reflect.Type) []field {
	if fs, ok := fieldCache.Get(t); ok {
		return fs
	}
	fs := fieldMetadata(t, nil, map[reflect.Type]bool{t: true})
	fieldCache.Add(t, fs)
	return fs
}

// fieldMetadata flattens embedded structs, by value or by pointer. seen
// stops recursion through types that embed themselves.
func fieldMetadata(t reflect.Type, parent []int, seen map[reflect.Type]bool) []field {
	var fs []field
	for i := 0; i < t.NumField(); i++ {
		ft := t.Field(i)
		index := append(append([]int{}, parent...), i)
		et := ft.Type
		if et.Kind() == reflect.Ptr {
			et = et.Elem()
		}
		if ft.Anonymous && et.Kind() == reflect.Struct && et != timeType {
			if !seen[et] {
				seen[et] = true
				fs = append(fs, fieldMetadata(et, index, seen)...)
				delete(seen, et)
			}
			continue
		}
		if ft.PkgPath != "" {
			continue
		}
		name, ok := ft.Tag.Lookup(tagName)
		if name == "-" {
			continue
		}
		if !ok || name == "" {
			name = strcase.ToSnake(ft.Name)
		}
		fs = append(fs, field{Name: name, Index: index})
	}
	return fs
}

func assignmentsOf(obj any) ([]assignment, error) {
	v, err := structOf(obj)
	if err != nil {
		return nil, err
	}
	var sets []assignment
	for _, f := range fieldsOf(v.Type()) {
		fv, err := v.FieldByIndexErr(f.Index)
		if err != nil {
			// nil embedded pointer
			sets = append(sets, assignment{column: f.Name, value: Null})
			continue
		}
		val, err := ValueOf(fv.Interface())
		if err != nil {
			return nil, fmt.Errorf("column %s: %w", f.Name, err)
		}
		sets = append(sets, assignment{column: f.Name, value: val})
	}
	return sets, nil
}
