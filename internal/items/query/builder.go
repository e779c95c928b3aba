package query

import (
	"errors"
	"strings"

	"github.com/architect/lostfound/internal/items/models"
)

// ErrNoFields is returned when an update carries no settable fields.
var ErrNoFields = errors.New("no fields provided for update")

// Builder assembles SQL text with '?' placeholders generated in lockstep
// with the bound-argument list. Caller values are never concatenated into
// the query text.
type Builder struct {
	selectFields []string
	fromTable    string
	whereClause  string
	orderBy      string
	params       []interface{}
}

// NewBuilder creates a new query builder
func NewBuilder() *Builder {
	return &Builder{
		selectFields: []string{},
		params:       []interface{}{},
	}
}

// Select adds fields to select
func (b *Builder) Select(fields ...string) *Builder {
	b.selectFields = append(b.selectFields, fields...)
	return b
}

// From sets the main table
func (b *Builder) From(table string) *Builder {
	b.fromTable = table
	return b
}

// Where adds a condition, ANDed with any existing ones
func (b *Builder) Where(condition string, params ...interface{}) *Builder {
	if b.whereClause == "" {
		b.whereClause = condition
	} else {
		b.whereClause += " AND " + condition
	}
	b.params = append(b.params, params...)
	return b
}

// OrderBy sets the order by clause
func (b *Builder) OrderBy(field, direction string) *Builder {
	b.orderBy = field + " " + direction
	return b
}

// Build generates the SQL query and its bound arguments
func (b *Builder) Build() (string, []interface{}) {
	var query strings.Builder

	if len(b.selectFields) == 0 {
		query.WriteString("SELECT *")
	} else {
		query.WriteString("SELECT " + strings.Join(b.selectFields, ", "))
	}

	query.WriteString(" FROM " + b.fromTable)

	if b.whereClause != "" {
		query.WriteString(" WHERE " + b.whereClause)
	}

	if b.orderBy != "" {
		query.WriteString(" ORDER BY " + b.orderBy)
	}

	return query.String(), b.params
}

// Filters is the recognized filter set for item listing.
// Empty values mean the filter is absent; unrecognized query keys
// never reach this struct.
type Filters struct {
	Status   string
	Category string
	Location string
	Date     string
}

// ListQuery builds the filtered SELECT over all item columns.
// Predicates are appended in a fixed order (status, category, location,
// date) so placeholder positions are deterministic. Location matches
// case-insensitively on substrings; the rest are equality checks.
// Results are always newest first.
func ListQuery(f Filters) (string, []interface{}) {
	b := NewBuilder().From(models.Item{}.TableName())

	if f.Status != "" {
		b.Where("status = ?", f.Status)
	}
	if f.Category != "" {
		b.Where("category = ?", f.Category)
	}
	if f.Location != "" {
		b.Where("LOWER(location) LIKE ?", "%"+strings.ToLower(f.Location)+"%")
	}
	if f.Date != "" {
		b.Where("date = ?", f.Date)
	}

	return b.OrderBy("created_at", "DESC").Build()
}

// UpdateQuery builds the parameterized UPDATE for one item, returning
// the updated row. Fields are emitted in whitelist order; keys outside
// the mutable-field whitelist are never translated into SQL. Returns
// ErrNoFields when nothing settable remains.
func UpdateQuery(id string, updates map[string]interface{}) (string, []interface{}, error) {
	assignments := make([]string, 0, len(updates))
	params := make([]interface{}, 0, len(updates)+1)

	for _, field := range models.MutableFields {
		value, ok := updates[field]
		if !ok {
			continue
		}
		assignments = append(assignments, field+" = ?")
		params = append(params, value)
	}

	if len(assignments) == 0 {
		return "", nil, ErrNoFields
	}

	params = append(params, id)

	var query strings.Builder
	query.WriteString("UPDATE " + models.Item{}.TableName())
	query.WriteString(" SET " + strings.Join(assignments, ", "))
	query.WriteString(" WHERE id = ? RETURNING *")

	return query.String(), params, nil
}
