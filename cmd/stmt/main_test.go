package main

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/jessevdk/go-flags"
	"github.com/stretchr/testify/assert"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	buf := &bytes.Buffer{}
	out = buf
	parser := newParser(flags.HelpFlag)
	_, err := parser.ParseArgs(args)
	return buf.String(), err
}

type recordingLogger struct {
	infos, errors []string
}

func (r *recordingLogger) Debugf(format string, args ...any) {}
func (r *recordingLogger) Warnf(format string, args ...any)  {}
func (r *recordingLogger) Sync() error                       { return nil }

func (r *recordingLogger) Infof(format string, args ...any) {
	r.infos = append(r.infos, fmt.Sprintf(format, args...))
}

func (r *recordingLogger) Errorf(format string, args ...any) {
	r.errors = append(r.errors, fmt.Sprintf(format, args...))
}

func recordLogs(t *testing.T) *recordingLogger {
	t.Helper()
	rec := &recordingLogger{}
	prev := newLogger
	newLogger = func() (Logger, error) { return rec, nil }
	t.Cleanup(func() { newLogger = prev })
	return rec
}

func TestLogging(t *testing.T) {
	t.Run("subcommand is logged", func(t *testing.T) {
		rec := recordLogs(t)
		_, err := run(t, "delete", "-t", "users", "-w", "id = 1")
		assert.NoError(t, err)
		assert.Equal(t, []string{"rendering delete statement"}, rec.infos)
		assert.Empty(t, rec.errors)
	})

	t.Run("assignment errors are logged", func(t *testing.T) {
		rec := recordLogs(t)
		_, err := run(t, "update", "-t", "users", "-s", "age:int=old")
		assert.Error(t, err)
		assert.Len(t, rec.errors, 1)
		assert.Contains(t, rec.errors[0], "update: invalid assignment")
	})

	t.Run("dialect errors are logged", func(t *testing.T) {
		rec := recordLogs(t)
		_, err := run(t, "--params", "--dialect", "oracle", "insert", "-t", "users", "-s", "a=b")
		assert.Error(t, err)
		assert.Len(t, rec.errors, 1)
		assert.Contains(t, rec.errors[0], "insert: ")
	})
}

func TestCommands(t *testing.T) {
	t.Run("update", func(t *testing.T) {
		s, err := run(t, "update", "-t", "users", "-s", "name=amirreza", "-s", "age:int=19", "-w", "id = 1", "-w", "deleted_at IS NULL")
		assert.NoError(t, err)
		assert.Equal(t, "UPDATE users SET name = 'amirreza', age = 19 WHERE id = 1 AND deleted_at IS NULL\n", s)
	})

	t.Run("update with or and params", func(t *testing.T) {
		s, err := run(t, "--params", "--dialect", "postgres", "update", "-t", "users", "-s", "active:bool=true", "-s", "hits:raw=hits + 1", "--or", "-w", "id = 1", "-w", "id = 2")
		assert.NoError(t, err)
		assert.Equal(t, "UPDATE users SET active = $1, hits = hits + 1 WHERE id = 1 OR id = 2\n1: 1\n", s)
	})

	t.Run("insert", func(t *testing.T) {
		s, err := run(t, "insert", "-t", "users", "-s", "name=milad", "-s", "email:null=")
		assert.NoError(t, err)
		assert.Equal(t, "INSERT INTO users (name, email) VALUES ('milad', NULL)\n", s)
	})

	t.Run("blank conditions are skipped", func(t *testing.T) {
		s, err := run(t, "update", "-t", "users", "-s", "a=b", "-w", "id = 1", "-w", "", "-w", "  ")
		assert.NoError(t, err)
		assert.Equal(t, "UPDATE users SET a = 'b' WHERE id = 1\n", s)

		s, err = run(t, "delete", "-t", "users", "-w", "", "-w", "id = 2")
		assert.NoError(t, err)
		assert.Equal(t, "DELETE FROM users WHERE id = 2\n", s)
	})

	t.Run("delete", func(t *testing.T) {
		s, err := run(t, "delete", "-t", "sessions", "-w", "expires_at <= 100")
		assert.NoError(t, err)
		assert.Equal(t, "DELETE FROM sessions WHERE expires_at <= 100\n", s)
	})

	t.Run("select", func(t *testing.T) {
		s, err := run(t, "select", "-t", "users", "-c", "id", "-c", "name", "--order-by", "name DESC", "--limit", "5")
		assert.NoError(t, err)
		assert.Equal(t, "SELECT id, name FROM users ORDER BY name DESC LIMIT 5\n", s)
	})

	t.Run("explain", func(t *testing.T) {
		s, err := run(t, "--explain", "update", "-t", "users", "-s", "name=bob", "-w", "id = 1")
		assert.NoError(t, err)
		assert.Contains(t, s, "SET")
		assert.Contains(t, s, "'bob'")
		assert.Contains(t, s, "id = 1")
		assert.Contains(t, s, "UPDATE users SET name = 'bob' WHERE id = 1\n")
	})

	t.Run("unknown dialect", func(t *testing.T) {
		_, err := run(t, "--params", "--dialect", "oracle", "update", "-t", "users", "-s", "a=b")
		assert.Error(t, err)
	})

	t.Run("table is required", func(t *testing.T) {
		_, err := run(t, "update", "-s", "a=b")
		assert.Error(t, err)
	})
}

func TestParseAssignment(t *testing.T) {
	t.Run("typed values", func(t *testing.T) {
		for _, tt := range []struct{ in, want string }{
			{"name=bob", "'bob'"},
			{"name:text=a=b", "'a=b'"},
			{"age:int=-3", "-3"},
			{"ok:bool=false", "0"},
			{"at:time=1970-01-01T00:00:01Z", "1000"},
			{"id:uuid=6ba7b810-9dad-11d1-80b4-00c04fd430c8", "'6ba7b810-9dad-11d1-80b4-00c04fd430c8'"},
			{"n:raw=n + 1", "n + 1"},
			{"x:null=", "NULL"},
		} {
			_, v, err := parseAssignment(tt.in)
			assert.NoError(t, err, tt.in)
			assert.Equal(t, tt.want, v.Literal(), tt.in)
		}
	})

	t.Run("errors", func(t *testing.T) {
		for _, in := range []string{"novalue", "=x", "age:int=old", "x:float=1.5", "id:uuid=nope"} {
			_, _, err := parseAssignment(in)
			assert.Error(t, err, in)
		}
	})
}
