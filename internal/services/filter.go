package services

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	dateLayout      = "2006-01-02"
	startTimeLayout = "2006-01-02 15:04"
)

// EventFilter is the composed predicate for the event listing query. Nil
// fields are omitted from the predicate entirely; DateFrom defaults to "now"
// so past events never show up unless explicitly requested.
type EventFilter struct {
	DateFrom *time.Time
	DateTo   *time.Time
	Paid     *bool
	Activity *uuid.UUID
}

// ParseEventFilter builds an EventFilter from raw query parameters. Empty
// strings mean "absent". Dates use YYYY-MM-DD; paid coerces to true only for
// the literals "1" and "true"; activity must be a valid id.
func ParseEventFilter(dateFrom, dateTo, paid, activity string) (EventFilter, error) {
	var f EventFilter

	if dateFrom != "" {
		t, err := time.Parse(dateLayout, dateFrom)
		if err != nil {
			return EventFilter{}, fmt.Errorf("invalid date_from: %w", err)
		}
		f.DateFrom = &t
	}

	if dateTo != "" {
		t, err := time.Parse(dateLayout, dateTo)
		if err != nil {
			return EventFilter{}, fmt.Errorf("invalid date_to: %w", err)
		}
		f.DateTo = &t
	}

	if paid != "" {
		v := paid == "1" || paid == "true"
		f.Paid = &v
	}

	if activity != "" {
		id, err := uuid.Parse(activity)
		if err != nil {
			return EventFilter{}, fmt.Errorf("invalid activity: %w", err)
		}
		f.Activity = &id
	}

	return f, nil
}

// Where renders the filter as a conjoined WHERE clause with positional
// placeholders starting at $1, plus the matching argument list.
func (f EventFilter) Where() (string, []any) {
	from := time.Now()
	if f.DateFrom != nil {
		from = *f.DateFrom
	}

	conditions := []string{"start_time >= $1"}
	args := []any{from}

	if f.DateTo != nil {
		conditions = append(conditions, fmt.Sprintf("start_time <= $%d", len(args)+1))
		args = append(args, *f.DateTo)
	}

	if f.Paid != nil {
		conditions = append(conditions, fmt.Sprintf("paid = $%d", len(args)+1))
		args = append(args, *f.Paid)
	}

	if f.Activity != nil {
		conditions = append(conditions, fmt.Sprintf("activity = $%d", len(args)+1))
		args = append(args, *f.Activity)
	}

	return strings.Join(conditions, " AND "), args
}
