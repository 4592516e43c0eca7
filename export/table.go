package export

import (
	"fmt"
	"time"
)

// Table is a single exportable rowset with a fixed, query-defined column list.
type Table struct {
	// Name is the base name for output files
	Name string
	// Query is the full-history query for this table
	Query string
	// Filterable tables get the recency cutoff appended to their query.
	// Only log/event tables are filterable - identity tables always export
	// full history.
	Filterable bool
}

// Tables returns the fixed export set in execution order.
func Tables() []Table {
	return []Table{
		{
			Name:  "users",
			Query: "SELECT id, email, role, created_at FROM users",
		},
		{
			Name:  "user_profiles",
			Query: "SELECT id, user_id, role, skill_level, career_path FROM user_profiles",
		},
		{
			Name:       "search_logs",
			Query:      "SELECT id, user_id, query, created_at FROM search_logs",
			Filterable: true,
		},
		{
			Name:       "click_logs",
			Query:      "SELECT id, user_id, course_id, event, created_at FROM click_logs",
			Filterable: true,
		},
		{
			Name:       "completed_courses",
			Query:      "SELECT id, user_id, course_id, completed_at FROM completed_courses",
			Filterable: true,
		},
		{
			Name:       "in_progress",
			Query:      "SELECT id, user_id, course_id, started_at, last_seen_at FROM in_progress",
			Filterable: true,
		},
	}
}

// SinceClause builds the recency filter for filterable tables. The cutoff is
// "now" minus the given number of days, spliced in as a UTC timestamp literal.
// All log tables carry a created_at column, even the ones that don't select it.
func SinceClause(now time.Time, days int) string {
	cutoff := now.UTC().Add(-time.Duration(days) * 24 * time.Hour)
	return fmt.Sprintf(" WHERE created_at >= '%s'", cutoff.Format("2006-01-02 15:04:05"))
}

// BuildQuery returns the query for the table, applying the recency filter when
// sinceDays is non-negative and the table is filterable.
func (t Table) BuildQuery(now time.Time, sinceDays int) string {
	if sinceDays < 0 || !t.Filterable {
		return t.Query
	}

	return t.Query + SinceClause(now, sinceDays)
}
