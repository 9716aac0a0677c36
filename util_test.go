// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package calendar_test

import (
	"testing"

	"cloudeng.io/calendar"
)

func newCalendarDate(t *testing.T, y, m, d int) calendar.CalendarDate {
	t.Helper()
	cd, err := calendar.NewCalendarDate(y, calendar.Month(m), d)
	if err != nil {
		t.Fatalf("NewCalendarDate(%v, %v, %v): %v", y, m, d, err)
	}
	return cd
}

func newOrdinalDate(t *testing.T, y, o int) calendar.CalendarDate {
	t.Helper()
	cd, err := calendar.NewOrdinalDate(y, o)
	if err != nil {
		t.Fatalf("NewOrdinalDate(%v, %v): %v", y, o, err)
	}
	return cd
}

func newClockTime(t *testing.T, h, m, s int) calendar.ClockTime {
	t.Helper()
	ct, err := calendar.NewClockTime(h, m, s)
	if err != nil {
		t.Fatalf("NewClockTime(%v, %v, %v): %v", h, m, s, err)
	}
	return ct
}

func newRange(t *testing.T, fy, fm, fd, ty, tm, td int) calendar.CalendarDateRange {
	t.Helper()
	return calendar.NewCalendarDateRange(
		newCalendarDate(t, fy, fm, fd), newCalendarDate(t, ty, tm, td))
}
