package sqlfilter

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"

	"github.com/roach88/brutalist-filter/internal/cir"
)

// Open opens a SQLite database at path using the mattn/go-sqlite3 driver.
// It is illustrative plumbing around Compile, showing the translator
// output actually driving a query, the way the teacher's Engine drives
// SQLCompiler output through its SQLite store (engine/execute_where.go).
func Open(path string) (*sql.DB, error) {
	return sql.Open("sqlite3", path)
}

// Run compiles tree, executes "SELECT * FROM table WHERE <fragment>"
// against db, and returns each matching row as a column-name-keyed map.
func Run(ctx context.Context, db *sql.DB, table string, tree cir.Node) ([]map[string]any, error) {
	compiler := NewCompiler()
	whereSQL, params, err := compiler.Compile(tree)
	if err != nil {
		return nil, err
	}

	query := fmt.Sprintf("SELECT * FROM %s WHERE %s", quoteIdent(table), whereSQL)
	rows, err := db.QueryContext(ctx, query, params...)
	if err != nil {
		return nil, fmt.Errorf("execute query: %w", err)
	}
	defer rows.Close()

	cols, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("read columns: %w", err)
	}

	var out []map[string]any
	for rows.Next() {
		dest := make([]any, len(cols))
		ptrs := make([]any, len(cols))
		for i := range dest {
			ptrs[i] = &dest[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return nil, fmt.Errorf("scan row: %w", err)
		}
		row := make(map[string]any, len(cols))
		for i, col := range cols {
			row[col] = dest[i]
		}
		out = append(out, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration: %w", err)
	}
	return out, nil
}
