package intl

import "time"

// Formats is a partial set of named format definitions a provider makes
// available to the formatting module. Only definitions, no rendering
// logic, lives here.
type Formats struct {
	DateTime map[string]DateTimeFormat
	Number   map[string]NumberFormat
	List     map[string]ListFormat
}

// DateTimeFormat names a reusable date/time rendering.
type DateTimeFormat struct {
	Layout   string
	TimeZone *time.Location
}

// NumberFormat names a reusable number rendering.
type NumberFormat struct {
	Style                 string
	Currency              string
	MinimumFractionDigits int
	MaximumFractionDigits int
	UseGrouping           bool
}

// ListFormat names a reusable list rendering.
type ListFormat struct {
	Style string
	Type  string
}

// MergeFormats layers overrides on top of base, per named format, and
// returns the combined set. Neither input is modified.
func MergeFormats(base, overrides *Formats) *Formats {
	if base == nil && overrides == nil {
		return nil
	}

	out := &Formats{
		DateTime: map[string]DateTimeFormat{},
		Number:   map[string]NumberFormat{},
		List:     map[string]ListFormat{},
	}
	for _, f := range []*Formats{base, overrides} {
		if f == nil {
			continue
		}
		for name, def := range f.DateTime {
			out.DateTime[name] = def
		}
		for name, def := range f.Number {
			out.Number[name] = def
		}
		for name, def := range f.List {
			out.List[name] = def
		}
	}
	return out
}
