package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// OrderDateLayout is the wire format for order dates: MM.DD.YYYY HH:MM:SS.
const OrderDateLayout = "01.02.2006 15:04:05"

// OrderDate wraps time.Time so order dates round-trip through JSON in the
// OrderDateLayout format instead of RFC 3339.
type OrderDate struct {
	time.Time
}

func NewOrderDate(t time.Time) OrderDate {
	return OrderDate{Time: t}
}

func (d OrderDate) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.Format(OrderDateLayout))
}

func (d *OrderDate) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("order_date must be a string in format MM.DD.YYYY HH:MM:SS")
	}

	t, err := time.Parse(OrderDateLayout, raw)
	if err != nil {
		return fmt.Errorf("invalid order_date %q: expected format MM.DD.YYYY HH:MM:SS", raw)
	}

	d.Time = t
	return nil
}

// Scan implements sql.Scanner so the wrapper reads back from timestamp columns.
func (d *OrderDate) Scan(src interface{}) error {
	switch v := src.(type) {
	case time.Time:
		d.Time = v
		return nil
	case string:
		t, err := time.Parse(time.RFC3339, v)
		if err != nil {
			return fmt.Errorf("cannot scan %q into OrderDate: %w", v, err)
		}
		d.Time = t
		return nil
	default:
		return fmt.Errorf("cannot scan %T into OrderDate", src)
	}
}

func (d OrderDate) Value() (driver.Value, error) {
	return d.Time, nil
}
