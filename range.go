// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package calendar

import (
	"fmt"
	"iter"
	"sort"

	"cloudeng.io/algo/container/heap"
)

// CalendarDateRange represents an inclusive range of CalendarDate values.
type CalendarDateRange struct {
	from, to CalendarDate
}

// NewCalendarDateRange returns the range covering from..to inclusive. If
// from is later than to they are swapped.
func NewCalendarDateRange(from, to CalendarDate) CalendarDateRange {
	if from > to {
		from, to = to, from
	}
	return CalendarDateRange{from: from, to: to}
}

// From returns the first date in the range.
func (cdr CalendarDateRange) From() CalendarDate {
	return cdr.from
}

// To returns the last date in the range.
func (cdr CalendarDateRange) To() CalendarDate {
	return cdr.to
}

// NumDays returns the number of days covered by the range, inclusive of
// both bounds.
func (cdr CalendarDateRange) NumDays() int64 {
	return cdr.to.Sub(cdr.from) + 1
}

// Contains returns true if cd falls within the range.
func (cdr CalendarDateRange) Contains(cd CalendarDate) bool {
	return cd >= cdr.from && cd <= cdr.to
}

// Overlaps returns true if the two ranges share at least one day.
func (cdr CalendarDateRange) Overlaps(o CalendarDateRange) bool {
	return cdr.from <= o.to && o.from <= cdr.to
}

// Dates returns an iterator that yields each date in the range in
// chronological order.
func (cdr CalendarDateRange) Dates() iter.Seq[CalendarDate] {
	return func(yield func(CalendarDate) bool) {
		for cd := cdr.from; cd <= cdr.to; {
			if !yield(cd) {
				return
			}
			next := cd.Tomorrow()
			if next == cd {
				// Tomorrow saturates at the last representable date.
				return
			}
			cd = next
		}
	}
}

func (cdr CalendarDateRange) String() string {
	return fmt.Sprintf("%s - %s", cdr.from, cdr.to)
}

type CalendarDateRangeList []CalendarDateRange

// Sort orders the list by start date, then by end date for identical
// start dates.
func (cdrl CalendarDateRangeList) Sort() {
	sort.Slice(cdrl, func(i, j int) bool {
		if cdrl[i].from == cdrl[j].from {
			return cdrl[i].to < cdrl[j].to
		}
		return cdrl[i].from < cdrl[j].from
	})
}

// Merge returns a new list with overlapping and immediately adjacent
// ranges coalesced. The receiver must already be sorted.
func (cdrl CalendarDateRangeList) Merge() CalendarDateRangeList {
	if len(cdrl) == 0 {
		return nil
	}
	merged := make(CalendarDateRangeList, 0, len(cdrl))
	cur := cdrl[0]
	for _, cdr := range cdrl[1:] {
		if cdr.from <= cur.to.Tomorrow() {
			if cdr.to > cur.to {
				cur.to = cdr.to
			}
			continue
		}
		merged = append(merged, cur)
		cur = cdr
	}
	return append(merged, cur)
}

// MergeCalendarDateRangeLists merges the supplied sorted lists into a
// single sorted list with overlapping and adjacent ranges coalesced. The
// lists are combined via a k-way merge keyed on the epoch day count of
// each range's start date.
func MergeCalendarDateRangeLists(lists ...CalendarDateRangeList) CalendarDateRangeList {
	type cursor struct {
		list, pos int
	}
	n := 0
	for _, l := range lists {
		n += len(l)
	}
	if n == 0 {
		return nil
	}
	h := heap.NewMin(heap.WithSliceCap[int64, cursor](len(lists)))
	for i, l := range lists {
		if len(l) > 0 {
			h.Push(l[0].From().EpochDays(), cursor{list: i})
		}
	}
	out := make(CalendarDateRangeList, 0, n)
	for h.Len() > 0 {
		_, c := h.Pop()
		out = append(out, lists[c.list][c.pos])
		if next := c.pos + 1; next < len(lists[c.list]) {
			h.Push(lists[c.list][next].From().EpochDays(), cursor{list: c.list, pos: next})
		}
	}
	return out.Merge()
}
