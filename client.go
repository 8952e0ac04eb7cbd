package supacamel

import (
	"errors"

	"github.com/gopsql/logger"
	"github.com/supabase-community/postgrest-go"
)

type (
	// Client wraps a postgrest-go client. Every query builder it hands
	// out converts caller-side camelCase column names and payload keys to
	// snake_case on the way in and converts result row keys back on the
	// way out. The Client holds no per-query state; builders obtained
	// from it are independent of each other.
	Client struct {
		pg          *postgrest.Client
		logger      logger.Logger
		columnNamer func(string) string
		resultNamer func(string) string
	}
)

var (
	ErrNoClient = errors.New("no postgrest client")
)

// New creates a converting Client around an initialized postgrest-go client.
// For available options, see SetOptions().
func New(pg *postgrest.Client, options ...interface{}) *Client {
	c := &Client{
		pg:          pg,
		columnNamer: DefaultColumnNamer,
		resultNamer: DefaultResultNamer,
	}
	c.SetOptions(options...)
	return c
}

// SetOptions sets the logger (see SetLogger()).
func (c *Client) SetOptions(options ...interface{}) *Client {
	for _, option := range options {
		switch o := option.(type) {
		case logger.Logger:
			c.SetLogger(o)
		}
	}
	return c
}

// Set the logger for the Client. Use logger.StandardLogger if you want to
// use Go's built-in standard logging package. By default, no logger is used,
// so name conversions are not printed to the console.
func (c *Client) SetLogger(logger logger.Logger) *Client {
	c.logger = logger
	return c
}

// SetColumnNamer replaces the caller-to-backing name function. Default is
// ToSnake. The exclusion rules for wildcard, underscored and syntax-bearing
// references apply regardless of the namer.
func (c *Client) SetColumnNamer(namer func(string) string) *Client {
	c.columnNamer = namer
	return c
}

// SetResultNamer replaces the backing-to-caller name function applied to
// result row keys. Default is ToCamel.
func (c *Client) SetResultNamer(namer func(string) string) *Client {
	c.resultNamer = namer
	return c
}

// Clone returns a copy of the Client.
func (c *Client) Clone() *Client {
	return &Client{
		pg:          c.pg,
		logger:      c.logger,
		columnNamer: c.columnNamer,
		resultNamer: c.resultNamer,
	}
}

// Quiet returns a copy of the Client without logger.
func (c *Client) Quiet() *Client {
	return c.Clone().SetLogger(nil)
}

// Postgrest returns the wrapped postgrest-go client.
func (c *Client) Postgrest() *postgrest.Client {
	return c.pg
}

// From returns a converting query builder for the given table. The table
// name itself is forwarded as-is; only column references are converted.
func (c *Client) From(table string) *QueryBuilder {
	q := &QueryBuilder{client: c}
	if c.pg != nil {
		q.builder = c.pg.From(table)
	}
	return q
}

// columnName converts one column reference, logging the rewrite when a
// logger is set.
func (c *Client) columnName(name string) string {
	out := convertColumn(name, c.columnNamer)
	if out != name {
		c.log("column", name, "->", out)
	}
	return out
}

func (c *Client) columnList(columns string) string {
	out := convertColumnList(columns, c.columnNamer)
	if out != columns {
		c.log("columns", columns, "->", out)
	}
	return out
}

func (c *Client) log(args ...interface{}) {
	if c.logger == nil {
		return
	}
	c.logger.Debug(args...)
}
