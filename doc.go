// Package supacamel wraps the Supabase PostgREST query builder
// (github.com/supabase-community/postgrest-go) with transparent
// camelCase/snake_case translation.
//
// # Overview
//
// Application code conventionally uses camelCase field names, while
// PostgreSQL columns are conventionally snake_case. This package lets calling
// code speak camelCase end to end: column arguments and payload keys are
// converted to snake_case before they reach PostgREST, and result rows are
// converted back to camelCase before they reach the caller.
//
// The wrapped builder exposes the same phases as postgrest-go itself:
//
//	pg := postgrest.NewClient("https://xyz.supabase.co/rest/v1", "", headers)
//	db := supacamel.New(pg)
//
//	data, count, err := db.From("users").
//		Select("userId,userName,isActive", "", false).
//		Eq("isActive", "true").
//		Order("createdAt", nil).
//		Execute()
//
// The request above selects user_id,user_name,is_active, filters on
// is_active and orders by created_at. The resolved JSON document has its
// row keys converted back, so data contains userId, userName and isActive.
//
// # Column conversion rules
//
// Only column-bearing arguments are converted. A column reference is passed
// through unmodified when it is the wildcard "*", already contains an
// underscore, or contains any of "(", ")", ".", "->", "::", since those indicate
// aggregate calls, embedded resources, JSON paths or type casts that must not
// be mangled. Conversion is purely boundary-based; acronyms are not
// dictionary-resolved ("userID" becomes "user_i_d", so prefer "userId").
//
// # Payload conversion
//
// Insert, Update and Upsert accept maps, slices of maps, structs, slices of
// structs, pre-encoded JSON strings, []byte, or an io.Reader. Payload keys
// are converted recursively; nested JSON objects and arrays are traversed,
// while any other value (time.Time, []byte, numbers) is forwarded as-is.
// Operational option arguments keep their meaning: onConflict names columns
// and is converted, returning/count flags never are.
//
// # Results and errors
//
// Terminal operations mirror postgrest-go: Execute returns the raw JSON
// document with converted keys, ExecuteTo unmarshals the converted document
// into a target so camelCase json tags bind naturally. Errors and counts
// reported by postgrest-go pass through unchanged; this package introduces no
// error conditions of its own, never retries, and leaves error response
// bodies untouched.
//
// # Logging
//
// Use logger.StandardLogger from github.com/gopsql/logger if you want each
// name conversion printed at debug level. By default no logger is used.
//
//	db := supacamel.New(pg, logger.StandardLogger)
package supacamel
