package query

import (
	"fmt"
	"strings"
)

type condition struct {
	clause string
	args   []any
}

// SortField names a projected field and its direction.
type SortField struct {
	Field      string
	Descending bool
}

// Assignment pairs a projected field with the value written to it.
type Assignment struct {
	Field string
	Value any
}

// Builder constructs SQL queries using a fluent API with automatic parameter numbering.
type Builder struct {
	projection *ProjectionMap
	conditions []condition
	sort       []SortField
}

// NewBuilder creates a Builder for the given projection ordered by the given sort fields.
func NewBuilder(projection *ProjectionMap, sort ...SortField) *Builder {
	return &Builder{
		projection: projection,
		conditions: make([]condition, 0),
		sort:       sort,
	}
}

// Build returns a SELECT query over every matching row with ordering applied.
func (b *Builder) Build() (string, []any) {
	where, args, _ := b.buildWhere(1)
	sql := fmt.Sprintf(
		"SELECT %s FROM %s%s%s",
		b.projection.Columns(),
		b.projection.Table(),
		where,
		b.buildOrderBy(),
	)
	return sql, args
}

// BuildSingle returns a SELECT query for a single record by ID.
func (b *Builder) BuildSingle(idField string, id any) (string, []any) {
	col := b.projection.Column(idField)
	sql := fmt.Sprintf(
		"SELECT %s FROM %s WHERE %s = $1",
		b.projection.Columns(),
		b.projection.Table(),
		col,
	)
	return sql, []any{id}
}

// BuildInsert returns an INSERT statement that returns the full projected row.
func (b *Builder) BuildInsert(values ...Assignment) (string, []any) {
	cols := make([]string, len(values))
	params := make([]string, len(values))
	args := make([]any, len(values))

	for i, v := range values {
		cols[i] = b.projection.RawColumn(v.Field)
		params[i] = fmt.Sprintf("$%d", i+1)
		args[i] = v.Value
	}

	sql := fmt.Sprintf(
		"INSERT INTO %s (%s) VALUES (%s) RETURNING %s",
		b.projection.Target(),
		strings.Join(cols, ", "),
		strings.Join(params, ", "),
		b.projection.Columns(),
	)
	return sql, args
}

// BuildUpdate returns an UPDATE statement constrained by the current conditions
// that returns the full projected row of every updated record.
func (b *Builder) BuildUpdate(values ...Assignment) (string, []any) {
	sets := make([]string, len(values))
	args := make([]any, 0, len(values))

	for i, v := range values {
		sets[i] = fmt.Sprintf("%s = $%d", b.projection.RawColumn(v.Field), i+1)
		args = append(args, v.Value)
	}

	where, whereArgs, _ := b.buildWhere(len(values) + 1)
	args = append(args, whereArgs...)

	sql := fmt.Sprintf(
		"UPDATE %s SET %s%s RETURNING %s",
		b.projection.Table(),
		strings.Join(sets, ", "),
		where,
		b.projection.Columns(),
	)
	return sql, args
}

// BuildDelete returns a DELETE statement constrained by the current conditions.
func (b *Builder) BuildDelete() (string, []any) {
	where, args, _ := b.buildWhere(1)
	sql := fmt.Sprintf("DELETE FROM %s%s", b.projection.Table(), where)
	return sql, args
}

// WhereEquals adds an equality condition. Nil values are ignored.
func (b *Builder) WhereEquals(field string, value any) *Builder {
	if value == nil {
		return b
	}
	col := b.projection.Column(field)
	b.conditions = append(b.conditions, condition{
		clause: fmt.Sprintf("%s = $%%d", col),
		args:   []any{value},
	})
	return b
}

func (b *Builder) buildOrderBy() string {
	fields := b.sort
	if len(fields) == 0 {
		return ""
	}

	parts := make([]string, len(fields))
	for i, f := range fields {
		dir := "ASC"
		if f.Descending {
			dir = "DESC"
		}
		parts[i] = fmt.Sprintf("%s %s", b.projection.Column(f.Field), dir)
	}

	return " ORDER BY " + strings.Join(parts, ", ")
}

func (b *Builder) buildWhere(startParam int) (string, []any, int) {
	if len(b.conditions) == 0 {
		return "", nil, startParam
	}

	clauses := make([]string, 0, len(b.conditions))
	args := make([]any, 0)
	paramIdx := startParam

	for _, cond := range b.conditions {
		clause := cond.clause
		for _, arg := range cond.args {
			clause = strings.Replace(clause, "$%d", fmt.Sprintf("$%d", paramIdx), 1)
			args = append(args, arg)
			paramIdx++
		}
		clauses = append(clauses, clause)
	}

	return " WHERE " + strings.Join(clauses, " AND "), args, paramIdx
}
