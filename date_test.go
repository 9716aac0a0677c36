// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package calendar_test

import (
	"errors"
	"testing"

	"cloudeng.io/calendar"
)

func TestNewCalendarDate(t *testing.T) {
	for _, tc := range []struct {
		year, month, day int
		ordinal          int
	}{
		{2023, 1, 1, 1},
		{2023, 2, 28, 59},
		{2023, 3, 1, 60},
		{2024, 2, 29, 60},
		{2024, 3, 1, 61},
		{2023, 12, 31, 365},
		{2024, 12, 31, 366},
		{0, 1, 1, 1},
		{-399, 12, 31, 365},
		{1970, 7, 4, 185},
	} {
		cd := newCalendarDate(t, tc.year, tc.month, tc.day)
		if got, want := cd.Year(), tc.year; got != want {
			t.Errorf("%v: got %v, want %v", tc, got, want)
		}
		if got, want := cd.Month(), calendar.Month(tc.month); got != want {
			t.Errorf("%v: got %v, want %v", tc, got, want)
		}
		if got, want := cd.Day(), tc.day; got != want {
			t.Errorf("%v: got %v, want %v", tc, got, want)
		}
		if got, want := cd.Ordinal(), tc.ordinal; got != want {
			t.Errorf("%v: got %v, want %v", tc, got, want)
		}
		// The ordinal form constructs the identical value.
		if got, want := newOrdinalDate(t, tc.year, tc.ordinal), cd; got != want {
			t.Errorf("%v: got %v, want %v", tc, got, want)
		}
	}
}

func TestNewCalendarDateErrors(t *testing.T) {
	for _, tc := range []struct {
		year, month, day int
		component        string
		min, max         int64
		conditional      bool
	}{
		{2023, 0, 1, "month", 1, 12, false},
		{2023, 13, 1, "month", 1, 12, false},
		{2023, 1, 0, "day", 1, 31, true},
		{2023, 1, 32, "day", 1, 31, true},
		{2023, 2, 29, "day", 1, 28, true},
		{1900, 2, 29, "day", 1, 28, true},
		{2023, 4, 31, "day", 1, 30, true},
		{2023, 2, 30, "day", 1, 28, true},
	} {
		_, err := calendar.NewCalendarDate(tc.year, calendar.Month(tc.month), tc.day)
		if err == nil {
			t.Errorf("%v: expected an error", tc)
			continue
		}
		var cerr *calendar.ComponentRangeError
		if !errors.As(err, &cerr) {
			t.Errorf("%v: unexpected error type: %v", tc, err)
			continue
		}
		if got, want := cerr.Name, tc.component; got != want {
			t.Errorf("%v: got %v, want %v", tc, got, want)
		}
		if got, want := cerr.Min, tc.min; got != want {
			t.Errorf("%v: got %v, want %v", tc, got, want)
		}
		if got, want := cerr.Max, tc.max; got != want {
			t.Errorf("%v: got %v, want %v", tc, got, want)
		}
		if got, want := cerr.Value, int64(tc.day); tc.component == "day" && got != want {
			t.Errorf("%v: got %v, want %v", tc, got, want)
		}
		if got, want := cerr.ConditionalRange, tc.conditional; got != want {
			t.Errorf("%v: got %v, want %v", tc, got, want)
		}
	}

	// Leap day succeeds in leap years only.
	for _, year := range []int{2000, 2020, 2024} {
		if _, err := calendar.NewCalendarDate(year, 2, 29); err != nil {
			t.Errorf("%v: %v", year, err)
		}
	}

	if _, err := calendar.NewOrdinalDate(2023, 366); err == nil {
		t.Errorf("expected an error")
	}
	if _, err := calendar.NewOrdinalDate(2024, 366); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	if _, err := calendar.NewOrdinalDate(2023, 0); err == nil {
		t.Errorf("expected an error")
	}

	if _, err := calendar.NewCalendarDate(calendar.MaxYear+1, 1, 1); !errors.Is(err, calendar.ErrUnrepresentable) {
		t.Errorf("unexpected error: %v", err)
	}
	if _, err := calendar.NewOrdinalDate(calendar.MinYear-1, 1); !errors.Is(err, calendar.ErrUnrepresentable) {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestWith(t *testing.T) {
	leapDay := newCalendarDate(t, 2020, 2, 29)

	// No-op mutations return the identical value.
	if got, err := leapDay.WithYear(2020); err != nil || got != leapDay {
		t.Errorf("got %v, %v, want %v", got, err, leapDay)
	}
	if got, err := leapDay.WithMonth(2); err != nil || got != leapDay {
		t.Errorf("got %v, %v, want %v", got, err, leapDay)
	}
	if got, err := leapDay.WithDay(29); err != nil || got != leapDay {
		t.Errorf("got %v, %v, want %v", got, err, leapDay)
	}
	if got, err := leapDay.WithOrdinal(60); err != nil || got != leapDay {
		t.Errorf("got %v, %v, want %v", got, err, leapDay)
	}

	if got, err := leapDay.WithYear(2024); err != nil || got != newCalendarDate(t, 2024, 2, 29) {
		t.Errorf("got %v, %v", got, err)
	}

	// Feb 29 cannot be moved to a non-leap year.
	_, err := leapDay.WithYear(2021)
	var cerr *calendar.ComponentRangeError
	if !errors.As(err, &cerr) || cerr.Name != "day" {
		t.Errorf("unexpected error: %v", err)
	}

	// Jan 31 cannot be moved to a 30 day month.
	jan31 := newCalendarDate(t, 2023, 1, 31)
	if _, err := jan31.WithMonth(4); err == nil {
		t.Errorf("expected an error")
	}
	if got, err := jan31.WithMonth(3); err != nil || got != newCalendarDate(t, 2023, 3, 31) {
		t.Errorf("got %v, %v", got, err)
	}
	if _, err := jan31.WithDay(32); err == nil {
		t.Errorf("expected an error")
	}

	// 0-based variants.
	if got, err := jan31.WithMonth0(2); err != nil || got != newCalendarDate(t, 2023, 3, 31) {
		t.Errorf("got %v, %v", got, err)
	}
	if got, err := jan31.WithDay0(0); err != nil || got != newCalendarDate(t, 2023, 1, 1) {
		t.Errorf("got %v, %v", got, err)
	}
	if got, err := jan31.WithOrdinal0(0); err != nil || got != newCalendarDate(t, 2023, 1, 1) {
		t.Errorf("got %v, %v", got, err)
	}
	if _, err := jan31.WithMonth0(12); err == nil {
		t.Errorf("expected an error")
	}
}

func TestYearCE(t *testing.T) {
	for _, tc := range []struct {
		year   int
		isCE   bool
		ceYear uint64
	}{
		{2023, true, 2023},
		{1, true, 1},
		{0, false, 1},
		{-1, false, 2},
		{-399, false, 400},
	} {
		cd := newCalendarDate(t, tc.year, 1, 1)
		isCE, ceYear := cd.YearCE()
		if got, want := isCE, tc.isCE; got != want {
			t.Errorf("%v: got %v, want %v", tc.year, got, want)
		}
		if got, want := ceYear, tc.ceYear; got != want {
			t.Errorf("%v: got %v, want %v", tc.year, got, want)
		}
	}
}

func TestTomorrowYesterday(t *testing.T) {
	for _, tc := range []struct {
		day, next calendar.CalendarDate
	}{
		{newCalendarDate(t, 2023, 1, 1), newCalendarDate(t, 2023, 1, 2)},
		{newCalendarDate(t, 2023, 2, 28), newCalendarDate(t, 2023, 3, 1)},
		{newCalendarDate(t, 2024, 2, 28), newCalendarDate(t, 2024, 2, 29)},
		{newCalendarDate(t, 2024, 2, 29), newCalendarDate(t, 2024, 3, 1)},
		{newCalendarDate(t, 2023, 12, 31), newCalendarDate(t, 2024, 1, 1)},
		{newCalendarDate(t, 0, 1, 1), newCalendarDate(t, 0, 1, 2)},
		{newCalendarDate(t, -1, 12, 31), newCalendarDate(t, 0, 1, 1)},
	} {
		if got, want := tc.day.Tomorrow(), tc.next; got != want {
			t.Errorf("%v: got %v, want %v", tc.day, got, want)
		}
		if got, want := tc.next.Yesterday(), tc.day; got != want {
			t.Errorf("%v: got %v, want %v", tc.next, got, want)
		}
	}

	last := newCalendarDate(t, calendar.MaxYear, 12, 31)
	if got, want := last.Tomorrow(), last; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	first := newCalendarDate(t, calendar.MinYear, 1, 1)
	if got, want := first.Yesterday(), first; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestAddDaysSub(t *testing.T) {
	epoch := newCalendarDate(t, 1970, 1, 1)
	for _, tc := range []struct {
		n    int64
		want calendar.CalendarDate
	}{
		{0, epoch},
		{1, newCalendarDate(t, 1970, 1, 2)},
		{365, newCalendarDate(t, 1971, 1, 1)},
		{-1, newCalendarDate(t, 1969, 12, 31)},
		{-719162, newCalendarDate(t, 1, 1, 1)},
	} {
		got, err := epoch.AddDays(tc.n)
		if err != nil {
			t.Errorf("%v: %v", tc.n, err)
			continue
		}
		if want := tc.want; got != want {
			t.Errorf("%v: got %v, want %v", tc.n, got, want)
		}
		if got, want := tc.want.Sub(epoch), tc.n; got != want {
			t.Errorf("%v: got %v, want %v", tc.n, got, want)
		}
	}

	if _, err := newCalendarDate(t, calendar.MaxYear, 12, 31).AddDays(1); !errors.Is(err, calendar.ErrUnrepresentable) {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestDateOrderingAndString(t *testing.T) {
	dates := []calendar.CalendarDate{
		newCalendarDate(t, -399, 1, 1),
		newCalendarDate(t, 0, 12, 31),
		newCalendarDate(t, 1, 1, 1),
		newCalendarDate(t, 1970, 1, 1),
		newCalendarDate(t, 1970, 1, 2),
		newCalendarDate(t, 2024, 2, 29),
		newCalendarDate(t, 2024, 3, 1),
	}
	for i := 1; i < len(dates); i++ {
		if !(dates[i-1] < dates[i]) {
			t.Errorf("%v is not before %v", dates[i-1], dates[i])
		}
		if got, want := dates[i-1].EpochDays() < dates[i].EpochDays(), true; got != want {
			t.Errorf("%v/%v: got %v, want %v", dates[i-1], dates[i], got, want)
		}
	}

	if got, want := newCalendarDate(t, 2006, 1, 2).String(), "2006-01-02"; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}
