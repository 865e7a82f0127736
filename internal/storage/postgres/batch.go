package postgres

import (
	"context"
	"strings"

	"github.com/jmoiron/sqlx"
)

// insertSQL builds a multi-row INSERT with numbered placeholders.
func insertSQL(table string, columns []string, rows int, suffix string) string {
	var sb strings.Builder
	sb.WriteString("INSERT INTO ")
	sb.WriteString(table)
	sb.WriteString(" (")
	sb.WriteString(strings.Join(columns, ", "))
	sb.WriteString(") VALUES ")

	n := 1
	for i := 0; i < rows; i++ {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString("(")
		for j := range columns {
			if j > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString("$")
			sb.WriteString(itoa(n))
			n++
		}
		sb.WriteString(")")
	}

	sb.WriteString(" ")
	sb.WriteString(suffix)
	return sb.String()
}

// countInserted runs a statement whose RETURNING clause yields one boolean per
// affected row, true for rows that were inserted.
func countInserted(ctx context.Context, q sqlx.QueryerContext, query string, args []interface{}) (int, error) {
	rows, err := q.QueryContext(ctx, query, args...)
	if err != nil {
		return 0, err
	}
	defer rows.Close()

	inserted := 0
	for rows.Next() {
		var isNew bool
		if err := rows.Scan(&isNew); err != nil {
			return 0, err
		}
		if isNew {
			inserted++
		}
	}
	return inserted, rows.Err()
}

func itoa(i int) string {
	if i < 10 {
		return string(rune('0' + i))
	}
	return itoa(i/10) + string(rune('0'+i%10))
}
