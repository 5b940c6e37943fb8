package stmt_test

import (
	"fmt"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/golobby/stmt"
	"github.com/stretchr/testify/assert"
)

func ExampleUpdate() {
	s := stmt.NewUpdate("users").
		Set("name", stmt.Text("amirreza")).
		Set("age", stmt.Int(19)).
		Equal("status", "active").
		And().
		GreaterEqual("id", 10).
		SQL()
	fmt.Println(s)
	// Output: UPDATE users SET name = 'amirreza', age = 19 WHERE status = 'active' AND id >= 10
}

func ExampleUpdate_ToSQL() {
	s, args := stmt.NewUpdate("users").
		Set("name", stmt.Text("amirreza")).
		Equal("id", 1).
		ToSQL(stmt.Dialects.PostgreSQL)
	fmt.Println(s)
	fmt.Println(args)
	// Output:
	// UPDATE users SET name = $1 WHERE id = 1
	// [amirreza]
}

func TestExecutingRenderedStatements(t *testing.T) {
	db, mockDB, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherEqual))
	assert.NoError(t, err)
	defer db.Close()

	q, args := stmt.NewUpdate("users").
		Set("name", stmt.Text("amirreza")).
		Set("age", stmt.Int(11)).
		Equal("id", 2).
		ToSQL(stmt.Dialects.MySQL)
	mockDB.ExpectExec(`UPDATE users SET name = ?, age = ? WHERE id = 2`).
		WithArgs("amirreza", int64(11)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	_, err = db.Exec(q, args...)
	assert.NoError(t, err)

	mockDB.ExpectExec(`DELETE FROM users WHERE id = 2`).WillReturnResult(sqlmock.NewResult(0, 1))
	_, err = db.Exec(stmt.NewDelete("users").Equal("id", 2).SQL())
	assert.NoError(t, err)

	assert.NoError(t, mockDB.ExpectationsWereMet())
}
