// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package calyaml provides support for using calendar values in yaml
// configuration files. Dates and clock times are expressed as mappings of
// plain integer fields (year/month/day and hour/minute/second/nanosecond)
// which are validated as they are decoded; an out of range component
// surfaces as a deserialization failure naming the offending field and
// its valid range.
package calyaml

import (
	"bytes"
	"context"
	"fmt"

	"cloudeng.io/calendar"
	"cloudeng.io/errors"
	"cloudeng.io/file"
	"gopkg.in/yaml.v3"
)

// Date is a calendar.CalendarDate that marshals to and from a yaml
// mapping of year, month and day integers.
type Date calendar.CalendarDate

// CalendarDate returns the validated date.
func (d Date) CalendarDate() calendar.CalendarDate {
	return calendar.CalendarDate(d)
}

func (d Date) String() string {
	return calendar.CalendarDate(d).String()
}

type dateFields struct {
	Year  int `yaml:"year"`
	Month int `yaml:"month"`
	Day   int `yaml:"day"`
}

func (d Date) MarshalYAML() (any, error) {
	year, month, day := calendar.CalendarDate(d).Date()
	return dateFields{Year: year, Month: int(month), Day: day}, nil
}

func (d *Date) UnmarshalYAML(value *yaml.Node) error {
	var raw dateFields
	if err := value.Decode(&raw); err != nil {
		return err
	}
	cd, err := calendar.NewCalendarDate(raw.Year, calendar.Month(raw.Month), raw.Day)
	if err != nil {
		return fmt.Errorf("line %d: invalid date: %w", value.Line, err)
	}
	*d = Date(cd)
	return nil
}

// ClockTime is a calendar.ClockTime that marshals to and from a yaml
// mapping of hour, minute, second and nanosecond integers. The second and
// nanosecond fields may be omitted.
type ClockTime calendar.ClockTime

// Time returns the validated clock time.
func (t ClockTime) Time() calendar.ClockTime {
	return calendar.ClockTime(t)
}

func (t ClockTime) String() string {
	return calendar.ClockTime(t).String()
}

type clockTimeFields struct {
	Hour       int `yaml:"hour"`
	Minute     int `yaml:"minute"`
	Second     int `yaml:"second,omitempty"`
	Nanosecond int `yaml:"nanosecond,omitempty"`
}

func (t ClockTime) MarshalYAML() (any, error) {
	ct := calendar.ClockTime(t)
	return clockTimeFields{Hour: ct.Hour(), Minute: ct.Minute(), Second: ct.Second(), Nanosecond: ct.Nanosecond()}, nil
}

func (t *ClockTime) UnmarshalYAML(value *yaml.Node) error {
	var raw clockTimeFields
	if err := value.Decode(&raw); err != nil {
		return err
	}
	ct, err := calendar.NewClockTimeNano(raw.Hour, raw.Minute, raw.Second, raw.Nanosecond)
	if err != nil {
		return fmt.Errorf("line %d: invalid time of day: %w", value.Line, err)
	}
	*t = ClockTime(ct)
	return nil
}

// DateList is a list of Date values. Unmarshaling reports every invalid
// entry rather than stopping at the first.
type DateList []Date

func (dl *DateList) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.SequenceNode {
		return fmt.Errorf("line %d: expected a sequence of dates", value.Line)
	}
	dates := make(DateList, 0, len(value.Content))
	errs := &errors.M{}
	for _, node := range value.Content {
		var d Date
		if err := d.UnmarshalYAML(node); err != nil {
			errs.Append(err)
			continue
		}
		dates = append(dates, d)
	}
	if err := errs.Err(); err != nil {
		return err
	}
	*dl = dates
	return nil
}

// ParseConfig parses the yaml config in spec into the requested type.
func ParseConfig(spec []byte, cfg any) error {
	return yaml.Unmarshal(spec, cfg)
}

// ParseConfigString is like ParseConfig but for a string.
func ParseConfigString(spec string, cfg any) error {
	return ParseConfig([]byte(spec), cfg)
}

// ParseConfigStrict is like ParseConfig but reports an error if there are
// unknown fields in the yaml specification.
func ParseConfigStrict(spec []byte, cfg any) error {
	dec := yaml.NewDecoder(bytes.NewReader(spec))
	dec.KnownFields(true)
	return dec.Decode(cfg)
}

// ParseConfigFile reads a yaml config file as per ParseConfig using
// file.FSReadFile to read the file. The use of FSReadFile allows for the
// configuration file to be read from a storage system, including from
// embed.FS, instead of the local filesystem if an instance of
// fs.ReadFileFS is stored in the context.
func ParseConfigFile(ctx context.Context, filename string, cfg any) error {
	if len(filename) == 0 {
		return fmt.Errorf("no config file specified")
	}
	spec, err := file.FSReadFile(ctx, filename)
	if err != nil {
		return err
	}
	if err := ParseConfig(spec, cfg); err != nil {
		return fmt.Errorf("failed to parse %s: %w", filename, err)
	}
	return nil
}
