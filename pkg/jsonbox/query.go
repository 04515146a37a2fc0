package jsonbox

import (
	"context"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/kuy/jsonbox-go/internal/constants"
)

// Query describes how a listing is ordered, paginated and filtered.
//
// Query is an immutable value: every method returns a new Query and leaves
// the receiver untouched, so one base query can be shared and branched from
// several goroutines. Start from NewQuery; the zero value has no sort field.
type Query struct {
	field   string
	desc    bool
	skip    int
	limit   int
	filters []string
}

// NewQuery returns the service defaults: newest first, skip 0, limit 20.
func NewQuery() Query {
	return Query{
		field: constants.DefaultSortField,
		desc:  true,
		skip:  constants.DefaultSkip,
		limit: constants.DefaultLimit,
	}
}

// OrderBy sorts by field in ascending order. Chain Desc to reverse it.
func (q Query) OrderBy(field string) Query {
	q.field = field
	q.desc = false

	return q
}

// Desc switches to descending order on the current sort field.
func (q Query) Desc() Query {
	q.desc = true

	return q
}

// Limit sets the maximum number of records returned.
func (q Query) Limit(n int) Query {
	q.limit = n

	return q
}

// Skip sets the number of records skipped before the first one returned.
func (q Query) Skip(n int) Query {
	q.skip = n

	return q
}

// Filter appends a clause. pattern contains a "{}" marker which is replaced
// by value, formatted with fmt.Sprint and percent-encoded. Clauses are ANDed
// in the order they are added, e.g.
//
//	q.Filter("name:{}", "foo bar")   // name:foo%20bar
//	q.Filter("count:>{}", 20)        // count:>20
//	q.Filter("city:{}*", "Los")      // city:Los*
func (q Query) Filter(pattern string, value any) Query {
	clause := strings.ReplaceAll(pattern, constants.FilterPlaceholder, escape(fmt.Sprint(value)))
	q.filters = append(slices.Clip(q.filters), clause)

	return q
}

// And is an alias of Filter.
func (q Query) And(pattern string, value any) Query {
	return q.Filter(pattern, value)
}

// SortField returns the active sort field.
func (q Query) SortField() string {
	return q.field
}

// Descending reports whether the sort order is descending.
func (q Query) Descending() bool {
	return q.desc
}

// SkipCount returns the configured skip.
func (q Query) SkipCount() int {
	return q.skip
}

// LimitCount returns the configured limit.
func (q Query) LimitCount() int {
	return q.limit
}

// Filters returns a copy of the filter clauses in insertion order.
func (q Query) Filters() []string {
	return slices.Clone(q.filters)
}

// Encode renders the query string understood by the service:
//
//	sort=[-]field&skip=N&limit=N[&q=clause1,clause2,...]
func (q Query) Encode() string {
	var b strings.Builder

	b.WriteString(constants.ParamSort)
	b.WriteByte('=')

	if q.desc {
		b.WriteString(constants.DescendingPrefix)
	}

	b.WriteString(q.field)
	b.WriteString("&" + constants.ParamSkip + "=")
	b.WriteString(strconv.Itoa(q.skip))
	b.WriteString("&" + constants.ParamLimit + "=")
	b.WriteString(strconv.Itoa(q.limit))

	if len(q.filters) > 0 {
		b.WriteString("&" + constants.ParamQuery + "=")
		b.WriteString(strings.Join(q.filters, ","))
	}

	return b.String()
}

// String implements fmt.Stringer.
func (q Query) String() string {
	return q.Encode()
}

const upperHex = "0123456789ABCDEF"

// escape percent-encodes every byte that is not an ASCII letter or digit.
func escape(s string) string {
	var b strings.Builder

	b.Grow(len(s))

	for i := range len(s) {
		c := s[i]
		if isAlphanumeric(c) {
			b.WriteByte(c)

			continue
		}

		b.WriteByte('%')
		b.WriteByte(upperHex[c>>4])
		b.WriteByte(upperHex[c&0x0f])
	}

	return b.String()
}

func isAlphanumeric(c byte) bool {
	return ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z') || ('0' <= c && c <= '9')
}

// Reader is the read side of a box client, used by QueryBuilder to execute.
type Reader[T any] interface {
	ReadByID(ctx context.Context, id string) (Record[T], error)
	ReadByQuery(ctx context.Context, query Query) ([]Record[T], error)
}

// QueryBuilder binds a Query to a client so it can be executed directly:
//
//	records, err := client.Read().OrderBy("count").Desc().Limit(5).Run(ctx)
//
// Like Query it is an immutable value.
type QueryBuilder[T any] struct {
	reader Reader[T]
	query  Query
}

// NewQueryBuilder returns a builder holding the default query.
func NewQueryBuilder[T any](reader Reader[T]) QueryBuilder[T] {
	return QueryBuilder[T]{reader: reader, query: NewQuery()}
}

// OrderBy sorts ascending by field.
func (b QueryBuilder[T]) OrderBy(field string) QueryBuilder[T] {
	b.query = b.query.OrderBy(field)

	return b
}

// Desc switches to descending order.
func (b QueryBuilder[T]) Desc() QueryBuilder[T] {
	b.query = b.query.Desc()

	return b
}

// Limit sets the page size.
func (b QueryBuilder[T]) Limit(n int) QueryBuilder[T] {
	b.query = b.query.Limit(n)

	return b
}

// Skip sets the offset.
func (b QueryBuilder[T]) Skip(n int) QueryBuilder[T] {
	b.query = b.query.Skip(n)

	return b
}

// Filter appends a filter clause, see Query.Filter.
func (b QueryBuilder[T]) Filter(pattern string, value any) QueryBuilder[T] {
	b.query = b.query.Filter(pattern, value)

	return b
}

// And is an alias of Filter.
func (b QueryBuilder[T]) And(pattern string, value any) QueryBuilder[T] {
	return b.Filter(pattern, value)
}

// Query returns the accumulated query.
func (b QueryBuilder[T]) Query() Query {
	return b.query
}

// String returns the encoded query string.
func (b QueryBuilder[T]) String() string {
	return b.query.Encode()
}

// ID fetches a single record. The builder's query state is not used.
func (b QueryBuilder[T]) ID(ctx context.Context, id string) (Record[T], error) {
	return b.reader.ReadByID(ctx, id)
}

// All runs the default query, ignoring anything set on this builder.
func (b QueryBuilder[T]) All(ctx context.Context) ([]Record[T], error) {
	return b.reader.ReadByQuery(ctx, NewQuery())
}

// Run executes the accumulated query.
func (b QueryBuilder[T]) Run(ctx context.Context) ([]Record[T], error) {
	return b.reader.ReadByQuery(ctx, b.query)
}
