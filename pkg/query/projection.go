// Package query provides a small SQL builder for PostgreSQL that maps Go struct
// field names to qualified column names through a projection map.
package query

import (
	"fmt"
	"strings"
)

// ProjectionMap associates struct field names with the columns of a single table.
// Column order is preserved and determines the order of SELECT and RETURNING lists.
type ProjectionMap struct {
	schema  string
	table   string
	alias   string
	columns []string
	fields  map[string]string
}

// NewProjectionMap creates a projection for schema.table aliased as alias.
func NewProjectionMap(schema, table, alias string) *ProjectionMap {
	return &ProjectionMap{
		schema: schema,
		table:  table,
		alias:  alias,
		fields: make(map[string]string),
	}
}

// Project maps a column to a struct field name.
func (p *ProjectionMap) Project(column, field string) *ProjectionMap {
	p.columns = append(p.columns, column)
	p.fields[field] = column
	return p
}

// Table returns the qualified, aliased table reference used in FROM clauses.
func (p *ProjectionMap) Table() string {
	return fmt.Sprintf("%s.%s %s", p.schema, p.table, p.alias)
}

// Target returns the table reference for INSERT statements, which require AS.
func (p *ProjectionMap) Target() string {
	return fmt.Sprintf("%s.%s AS %s", p.schema, p.table, p.alias)
}

// Columns returns the alias-qualified column list.
func (p *ProjectionMap) Columns() string {
	cols := make([]string, len(p.columns))
	for i, c := range p.columns {
		cols[i] = p.alias + "." + c
	}
	return strings.Join(cols, ", ")
}

// Column returns the alias-qualified column for a field.
// It panics if field is not projected.
func (p *ProjectionMap) Column(field string) string {
	return p.alias + "." + p.column(field)
}

// RawColumn returns the unqualified column for a field.
func (p *ProjectionMap) RawColumn(field string) string {
	return p.column(field)
}

func (p *ProjectionMap) column(field string) string {
	col, ok := p.fields[field]
	if !ok {
		panic(fmt.Sprintf("query: field %q is not projected on %s", field, p.table))
	}
	return col
}
