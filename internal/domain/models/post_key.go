package model

import (
	"fmt"
	"time"
)

// PostKey is the natural key of a post: its UTC publish date plus slug.
type PostKey struct {
	Year  int    `json:"year" validate:"gte=1,lte=9999"`
	Month int    `json:"month" validate:"gte=1,lte=12"`
	Day   int    `json:"day" validate:"gte=1,lte=31"`
	Slug  string `json:"slug" validate:"required,max=250"`
}

// DayRange returns the half-open UTC interval covering the key's date.
// ok is false for dates that do not exist, e.g. February 30.
func (k PostKey) DayRange() (start, end time.Time, ok bool) {
	start = time.Date(k.Year, time.Month(k.Month), k.Day, 0, 0, 0, 0, time.UTC)
	if start.Year() != k.Year || int(start.Month()) != k.Month || start.Day() != k.Day {
		return time.Time{}, time.Time{}, false
	}
	return start, start.AddDate(0, 0, 1), true
}

func (k PostKey) Path() string {
	return fmt.Sprintf("/blog/%d/%d/%d/%s/", k.Year, k.Month, k.Day, k.Slug)
}

func (k PostKey) String() string {
	return fmt.Sprintf("%04d-%02d-%02d/%s", k.Year, k.Month, k.Day, k.Slug)
}
