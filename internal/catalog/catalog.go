// Package catalog holds the static registry of campaign database entities:
// their tables, columns, and relationships. It is the authoritative map between
// storage names and the GraphQL surface, built once at startup and read-only
// thereafter.
package catalog

import (
	"fmt"

	"campaign-graphql/internal/naming"
)

// ColumnKind identifies the scalar family a column maps to.
type ColumnKind int

const (
	KindString ColumnKind = iota
	KindInteger
	KindFloat
	KindBoolean
	KindDateTime
)

// Column describes one scalar column of an entity table.
type Column struct {
	Name string
	Kind ColumnKind
}

// Relationship describes a named relationship to another entity. UseList
// relationships are collections filtered by the remote foreign key; single
// references resolve the first row matching the join column pair.
type Relationship struct {
	Name         string
	RemoteTable  string
	LocalColumn  string
	RemoteColumn string
	UseList      bool
}

// Session is the capability an authenticated caller session must provide.
// A nil Session disables authorization entirely (trusted internal callers).
type Session interface {
	// MayReadProp reports whether the session may read the named column or
	// relationship (in database naming) on the model. When instance is nil the
	// check is class-level, as used for filter and sort references.
	MayReadProp(model *Model, field string, instance *Instance) bool
}

// Model is one entity of the relational catalog.
type Model struct {
	Name  string
	Table string

	columns       []Column
	columnIndex   map[string]int
	relationships []Relationship
	relIndex      map[string]int
}

// NewModel constructs a model from its column and relationship lists.
func NewModel(name, table string, columns []Column, relationships []Relationship) *Model {
	m := &Model{
		Name:          name,
		Table:         table,
		columns:       columns,
		relationships: relationships,
		columnIndex:   make(map[string]int, len(columns)),
		relIndex:      make(map[string]int, len(relationships)),
	}
	for i, col := range columns {
		m.columnIndex[col.Name] = i
	}
	for i, rel := range relationships {
		m.relIndex[rel.Name] = i
	}
	return m
}

// Columns returns the entity's columns in declaration order.
func (m *Model) Columns() []Column {
	return m.columns
}

// ColumnNames returns the column names in declaration order.
func (m *Model) ColumnNames() []string {
	names := make([]string, len(m.columns))
	for i, col := range m.columns {
		names[i] = col.Name
	}
	return names
}

// HasColumn reports whether the model has a column with the given storage name.
func (m *Model) HasColumn(name string) bool {
	_, ok := m.columnIndex[name]
	return ok
}

// Column returns the named column.
func (m *Model) Column(name string) (Column, bool) {
	i, ok := m.columnIndex[name]
	if !ok {
		return Column{}, false
	}
	return m.columns[i], true
}

// Relationships returns the entity's relationships in declaration order.
func (m *Model) Relationships() []Relationship {
	return m.relationships
}

// Relationship returns the named relationship.
func (m *Model) Relationship(name string) (Relationship, bool) {
	i, ok := m.relIndex[name]
	if !ok {
		return Relationship{}, false
	}
	return m.relationships[i], true
}

// SessionHasReadPropAccess reports whether the session may read the given
// column or relationship (database naming) on this model. A nil session grants
// access unconditionally.
func (m *Model) SessionHasReadPropAccess(session Session, field string, instance *Instance) bool {
	if session == nil {
		return true
	}
	return session.MayReadProp(m, field, instance)
}

// GraphQLTypeName returns the model's GraphQL object type name.
func (m *Model) GraphQLTypeName() string {
	return m.Name
}

// GraphQLFieldName returns the camelCase GraphQL name for one of the model's
// storage-layer names.
func GraphQLFieldName(name string) string {
	return naming.ToCamelCase(name)
}

// Registry maps table names to entity models in registration order.
type Registry struct {
	order  []string
	tables map[string]*Model
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{tables: make(map[string]*Model)}
}

// Register adds a model to the registry. Registering the same table twice is a
// programming error.
func (r *Registry) Register(model *Model) error {
	if _, ok := r.tables[model.Table]; ok {
		return fmt.Errorf("table already registered: %s", model.Table)
	}
	r.tables[model.Table] = model
	r.order = append(r.order, model.Table)
	return nil
}

// Lookup returns the model registered for a table name.
func (r *Registry) Lookup(table string) (*Model, bool) {
	model, ok := r.tables[table]
	return model, ok
}

// Tables returns all registered models in registration order.
func (r *Registry) Tables() []*Model {
	models := make([]*Model, len(r.order))
	for i, table := range r.order {
		models[i] = r.tables[table]
	}
	return models
}
