package supacamel

import "github.com/supabase-community/postgrest-go"

type (
	// QueryBuilder is the table phase of a query chain, created with
	// Client.From(). Its methods pick the operation (select, insert,
	// upsert, update, delete), convert column-bearing arguments and
	// payload keys, and hand the chain over to a FilterBuilder. A payload
	// that cannot be encoded as JSON is recorded on that FilterBuilder
	// and reported by its terminal call; the Client itself is never
	// touched, so other chains stay unaffected.
	QueryBuilder struct {
		client  *Client
		builder *postgrest.QueryBuilder
	}
)

// Select picks columns to retrieve. The columns argument is a
// comma-separated list in the caller convention; count and head are
// forwarded unchanged.
func (q *QueryBuilder) Select(columns, count string, head bool) *FilterBuilder {
	converted := q.client.columnList(columns)
	f := &FilterBuilder{client: q.client}
	if q.builder != nil {
		f.builder = q.builder.Select(converted, count, head)
	}
	return f
}

// Insert adds rows. Payload keys are converted to the backing convention;
// onConflict names columns and is converted as a column list; upsert,
// returning and count are operational flags forwarded unchanged.
func (q *QueryBuilder) Insert(value interface{}, upsert bool, onConflict, returning, count string) *FilterBuilder {
	f := &FilterBuilder{client: q.client}
	if q.builder == nil {
		return f
	}
	converted, err := q.payload(value)
	if err != nil {
		f.err = err
		return f
	}
	f.builder = q.builder.Insert(converted, upsert, q.conflict(onConflict), returning, count)
	return f
}

// Upsert adds or replaces rows, converting the payload and the onConflict
// column list like Insert.
func (q *QueryBuilder) Upsert(value interface{}, onConflict, returning, count string) *FilterBuilder {
	f := &FilterBuilder{client: q.client}
	if q.builder == nil {
		return f
	}
	converted, err := q.payload(value)
	if err != nil {
		f.err = err
		return f
	}
	f.builder = q.builder.Upsert(converted, q.conflict(onConflict), returning, count)
	return f
}

// Update modifies rows matching the filters added afterwards. Payload keys
// are converted to the backing convention.
func (q *QueryBuilder) Update(value interface{}, returning, count string) *FilterBuilder {
	f := &FilterBuilder{client: q.client}
	if q.builder == nil {
		return f
	}
	converted, err := q.payload(value)
	if err != nil {
		f.err = err
		return f
	}
	f.builder = q.builder.Update(converted, returning, count)
	return f
}

// Delete removes rows matching the filters added afterwards. Nothing is
// converted.
func (q *QueryBuilder) Delete(returning, count string) *FilterBuilder {
	f := &FilterBuilder{client: q.client}
	if q.builder != nil {
		f.builder = q.builder.Delete(returning, count)
	}
	return f
}

func (q *QueryBuilder) payload(value interface{}) (interface{}, error) {
	converted, err := normalizePayload(value, func(name string) string {
		return q.client.columnName(name)
	})
	if err != nil {
		return nil, err
	}
	q.client.log("payload", converted)
	return converted, nil
}

func (q *QueryBuilder) conflict(onConflict string) string {
	if onConflict == "" {
		return ""
	}
	return q.client.columnList(onConflict)
}
