package supacamel

import (
	"context"
	"encoding/json"

	"github.com/supabase-community/postgrest-go"
)

type (
	// FilterBuilder is the filter/modifier phase of a query chain. Each
	// method converts its column-bearing parameters, forwards the call to
	// the wrapped postgrest-go builder and returns the same FilterBuilder,
	// so arbitrarily long chains reuse one wrapper. Terminal Execute*
	// methods convert result row keys back to the caller convention.
	//
	// err carries a payload normalization failure from the operation
	// phase; the terminal call reports it instead of issuing a request.
	FilterBuilder struct {
		client  *Client
		builder *postgrest.FilterBuilder
		err     error
	}
)

// Eq matches rows whose column equals value.
func (f *FilterBuilder) Eq(column, value string) *FilterBuilder {
	if f.builder != nil {
		f.builder = f.builder.Eq(f.client.columnName(column), value)
	}
	return f
}

// Neq matches rows whose column does not equal value.
func (f *FilterBuilder) Neq(column, value string) *FilterBuilder {
	if f.builder != nil {
		f.builder = f.builder.Neq(f.client.columnName(column), value)
	}
	return f
}

// Gt matches rows whose column is greater than value.
func (f *FilterBuilder) Gt(column, value string) *FilterBuilder {
	if f.builder != nil {
		f.builder = f.builder.Gt(f.client.columnName(column), value)
	}
	return f
}

// Gte matches rows whose column is greater than or equal to value.
func (f *FilterBuilder) Gte(column, value string) *FilterBuilder {
	if f.builder != nil {
		f.builder = f.builder.Gte(f.client.columnName(column), value)
	}
	return f
}

// Lt matches rows whose column is less than value.
func (f *FilterBuilder) Lt(column, value string) *FilterBuilder {
	if f.builder != nil {
		f.builder = f.builder.Lt(f.client.columnName(column), value)
	}
	return f
}

// Lte matches rows whose column is less than or equal to value.
func (f *FilterBuilder) Lte(column, value string) *FilterBuilder {
	if f.builder != nil {
		f.builder = f.builder.Lte(f.client.columnName(column), value)
	}
	return f
}

// Like matches rows whose column matches the pattern (case-sensitive).
func (f *FilterBuilder) Like(column, value string) *FilterBuilder {
	if f.builder != nil {
		f.builder = f.builder.Like(f.client.columnName(column), value)
	}
	return f
}

// Ilike matches rows whose column matches the pattern (case-insensitive).
func (f *FilterBuilder) Ilike(column, value string) *FilterBuilder {
	if f.builder != nil {
		f.builder = f.builder.Ilike(f.client.columnName(column), value)
	}
	return f
}

// Is matches rows whose column IS value (null, true, false).
func (f *FilterBuilder) Is(column, value string) *FilterBuilder {
	if f.builder != nil {
		f.builder = f.builder.Is(f.client.columnName(column), value)
	}
	return f
}

// In matches rows whose column is one of values. Values are data, not
// column references, and are forwarded unchanged.
func (f *FilterBuilder) In(column string, values []string) *FilterBuilder {
	if f.builder != nil {
		f.builder = f.builder.In(f.client.columnName(column), values)
	}
	return f
}

// Contains matches array or range columns containing every element of value.
func (f *FilterBuilder) Contains(column string, value []string) *FilterBuilder {
	if f.builder != nil {
		f.builder = f.builder.Contains(f.client.columnName(column), value)
	}
	return f
}

// ContainedBy matches array or range columns contained by value.
func (f *FilterBuilder) ContainedBy(column string, value []string) *FilterBuilder {
	if f.builder != nil {
		f.builder = f.builder.ContainedBy(f.client.columnName(column), value)
	}
	return f
}

// ContainsObject matches jsonb columns containing value. The value is data
// and is forwarded unchanged.
func (f *FilterBuilder) ContainsObject(column string, value interface{}) *FilterBuilder {
	if f.builder != nil {
		f.builder = f.builder.ContainsObject(f.client.columnName(column), value)
	}
	return f
}

// ContainedByObject matches jsonb columns contained by value.
func (f *FilterBuilder) ContainedByObject(column string, value interface{}) *FilterBuilder {
	if f.builder != nil {
		f.builder = f.builder.ContainedByObject(f.client.columnName(column), value)
	}
	return f
}

// Overlaps matches array or range columns overlapping value.
func (f *FilterBuilder) Overlaps(column string, value []string) *FilterBuilder {
	if f.builder != nil {
		f.builder = f.builder.Overlaps(f.client.columnName(column), value)
	}
	return f
}

// RangeGt matches range columns strictly right of value.
func (f *FilterBuilder) RangeGt(column, value string) *FilterBuilder {
	if f.builder != nil {
		f.builder = f.builder.RangeGt(f.client.columnName(column), value)
	}
	return f
}

// RangeGte matches range columns not extending left of value.
func (f *FilterBuilder) RangeGte(column, value string) *FilterBuilder {
	if f.builder != nil {
		f.builder = f.builder.RangeGte(f.client.columnName(column), value)
	}
	return f
}

// RangeLt matches range columns strictly left of value.
func (f *FilterBuilder) RangeLt(column, value string) *FilterBuilder {
	if f.builder != nil {
		f.builder = f.builder.RangeLt(f.client.columnName(column), value)
	}
	return f
}

// RangeLte matches range columns not extending right of value.
func (f *FilterBuilder) RangeLte(column, value string) *FilterBuilder {
	if f.builder != nil {
		f.builder = f.builder.RangeLte(f.client.columnName(column), value)
	}
	return f
}

// RangeAdjacent matches range columns adjacent to value.
func (f *FilterBuilder) RangeAdjacent(column, value string) *FilterBuilder {
	if f.builder != nil {
		f.builder = f.builder.RangeAdjacent(f.client.columnName(column), value)
	}
	return f
}

// TextSearch performs a full-text search on column. Only the column is
// converted; the query, config and type are forwarded unchanged.
func (f *FilterBuilder) TextSearch(column, userQuery, config, tsType string) *FilterBuilder {
	if f.builder != nil {
		f.builder = f.builder.TextSearch(f.client.columnName(column), userQuery, config, tsType)
	}
	return f
}

// Match adds an equality filter per map entry. Keys are column references
// and are converted; values are forwarded unchanged.
func (f *FilterBuilder) Match(userQuery map[string]string) *FilterBuilder {
	if f.builder != nil {
		converted := make(map[string]string, len(userQuery))
		for k, v := range userQuery {
			converted[f.client.columnName(k)] = v
		}
		f.builder = f.builder.Match(converted)
	}
	return f
}

// Not negates a single filter. The column is converted, operator and value
// are forwarded unchanged.
func (f *FilterBuilder) Not(column, operator, value string) *FilterBuilder {
	if f.builder != nil {
		f.builder = f.builder.Not(f.client.columnName(column), operator, value)
	}
	return f
}

// Or adds a raw disjunction in PostgREST filter syntax, e.g.
// "user_id.eq.1,user_id.eq.2". The string embeds dot operators, which the
// conversion exclusion rules skip, so it is forwarded verbatim.
func (f *FilterBuilder) Or(filters, foreignTable string) *FilterBuilder {
	if f.builder != nil {
		f.builder = f.builder.Or(filters, foreignTable)
	}
	return f
}

// Filter adds a filter with an explicit operator. The column is converted,
// operator and value are forwarded unchanged.
func (f *FilterBuilder) Filter(column, operator, value string) *FilterBuilder {
	if f.builder != nil {
		f.builder = f.builder.Filter(f.client.columnName(column), operator, value)
	}
	return f
}

// Order sorts results by column. Options are forwarded unchanged; nil means
// postgrest-go defaults.
func (f *FilterBuilder) Order(column string, opts *postgrest.OrderOpts) *FilterBuilder {
	if f.builder != nil {
		if opts == nil {
			opts = &postgrest.OrderOpts{}
		}
		f.builder = f.builder.Order(f.client.columnName(column), opts)
	}
	return f
}

// Limit caps the number of rows returned. No conversion applies.
func (f *FilterBuilder) Limit(count int, foreignTable string) *FilterBuilder {
	if f.builder != nil {
		f.builder = f.builder.Limit(count, foreignTable)
	}
	return f
}

// Range returns rows from offset from to offset to. No conversion applies.
func (f *FilterBuilder) Range(from, to int, foreignTable string) *FilterBuilder {
	if f.builder != nil {
		f.builder = f.builder.Range(from, to, foreignTable)
	}
	return f
}

// Single makes the terminal call resolve a single object instead of an
// array. No conversion applies.
func (f *FilterBuilder) Single() *FilterBuilder {
	if f.builder != nil {
		f.builder = f.builder.Single()
	}
	return f
}

// Execute runs the query and returns the response document with row keys
// converted to the caller convention, plus the count and error exactly as
// postgrest-go reported them. On error the body is returned unconverted.
func (f *FilterBuilder) Execute() ([]byte, int64, error) {
	return f.ExecuteWithContext(context.Background())
}

// ExecuteWithContext is Execute with a context bounding the request.
func (f *FilterBuilder) ExecuteWithContext(ctx context.Context) ([]byte, int64, error) {
	if f.err != nil {
		return nil, 0, f.err
	}
	if f.builder == nil {
		return nil, 0, ErrNoClient
	}
	data, count, err := f.builder.ExecuteWithContext(ctx)
	if err != nil {
		return data, count, err
	}
	return convertJSONKeys(data, f.client.resultNamer), count, nil
}

// ExecuteString is Execute returning the converted document as a string.
func (f *FilterBuilder) ExecuteString() (string, int64, error) {
	return f.ExecuteStringWithContext(context.Background())
}

// ExecuteStringWithContext is ExecuteString with a context bounding the
// request.
func (f *FilterBuilder) ExecuteStringWithContext(ctx context.Context) (string, int64, error) {
	data, count, err := f.ExecuteWithContext(ctx)
	return string(data), count, err
}

// ExecuteTo runs the query and unmarshals the converted document into to,
// so struct fields bind by their camelCase json tags. The count and any
// error pass through unchanged.
func (f *FilterBuilder) ExecuteTo(to interface{}) (int64, error) {
	return f.ExecuteToWithContext(context.Background(), to)
}

// ExecuteToWithContext is ExecuteTo with a context bounding the request.
func (f *FilterBuilder) ExecuteToWithContext(ctx context.Context, to interface{}) (int64, error) {
	data, count, err := f.ExecuteWithContext(ctx)
	if err != nil {
		return count, err
	}
	if len(data) == 0 {
		return count, nil
	}
	if err := json.Unmarshal(data, to); err != nil {
		return count, err
	}
	return count, nil
}
