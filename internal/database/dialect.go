package database

import (
	"strconv"
	"strings"
)

// Dialect smooths over the SQL differences between the supported stores.
//
// Queries are written once with "?" placeholders and rebound per store.
type Dialect struct {
	name     string
	numbered bool
}

var (
	SQLiteDialect   = Dialect{name: "sqlite3"}
	PostgresDialect = Dialect{name: "postgres", numbered: true}
)

// Name returns the dialect identifier.
func (d Dialect) Name() string {
	return d.name
}

// Rebind rewrites "?" placeholders into "$1, $2, ..." for postgres.
// Question marks inside single-quoted literals are left untouched.
func (d Dialect) Rebind(query string) string {
	if !d.numbered {
		return query
	}

	var b strings.Builder
	b.Grow(len(query) + 8)

	n := 0
	inLiteral := false
	for _, r := range query {
		switch {
		case r == '\'':
			inLiteral = !inLiteral
			b.WriteRune(r)
		case r == '?' && !inLiteral:
			n++
			b.WriteByte('$')
			b.WriteString(strconv.Itoa(n))
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Date returns an expression truncating expr (an ISO-8601 string) to its
// calendar day.
func (d Dialect) Date(expr string) string {
	if d.numbered {
		return "CAST(" + expr + " AS DATE)"
	}
	return "DATE(" + expr + ")"
}
