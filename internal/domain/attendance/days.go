package attendance

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
)

// DayEntry is a single day key and its status
type DayEntry struct {
	Day    string
	Status Status
}

// DayStatuses is the lookup every day-map representation is adapted into.
// Code outside this file never needs to know which representation it holds.
type DayStatuses interface {
	Get(day string) (Status, bool)
	Entries() []DayEntry
	Len() int
}

// DayMap is the plain string-keyed dictionary representation.
// Entries are returned in ascending numeric key order, non-numeric keys last.
type DayMap map[string]Status

func (m DayMap) Get(day string) (Status, bool) {
	s, ok := m[day]
	return s, ok
}

func (m DayMap) Entries() []DayEntry {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	SortDayKeys(keys)

	entries := make([]DayEntry, 0, len(keys))
	for _, k := range keys {
		entries = append(entries, DayEntry{Day: k, Status: m[k]})
	}
	return entries
}

func (m DayMap) Len() int {
	return len(m)
}

// OrderedDays is the ordered key-map representation: iteration follows
// first insertion, and re-setting a key keeps its position.
type OrderedDays struct {
	keys   []string
	values map[string]Status
}

func NewOrderedDays(entries ...DayEntry) *OrderedDays {
	o := &OrderedDays{values: make(map[string]Status, len(entries))}
	for _, e := range entries {
		o.Set(e.Day, e.Status)
	}
	return o
}

func (o *OrderedDays) Set(day string, status Status) {
	if _, exists := o.values[day]; !exists {
		o.keys = append(o.keys, day)
	}
	o.values[day] = status
}

func (o *OrderedDays) Get(day string) (Status, bool) {
	if o == nil {
		return StatusUnset, false
	}
	s, ok := o.values[day]
	return s, ok
}

func (o *OrderedDays) Entries() []DayEntry {
	if o == nil {
		return nil
	}
	entries := make([]DayEntry, 0, len(o.keys))
	for _, k := range o.keys {
		entries = append(entries, DayEntry{Day: k, Status: o.values[k]})
	}
	return entries
}

func (o *OrderedDays) Len() int {
	if o == nil {
		return 0
	}
	return len(o.keys)
}

// Days is the wire-facing holder of a record's day statuses. It decodes
// either a JSON object or a list of [day, status] pairs and always encodes
// a JSON object. A zero Days behaves as an empty map.
type Days struct {
	lookup DayStatuses
}

func NewDays(lookup DayStatuses) Days {
	return Days{lookup: lookup}
}

// Get returns the status for day, unset when the key is missing
func (d Days) Get(day string) Status {
	if d.lookup == nil {
		return StatusUnset
	}
	s, _ := d.lookup.Get(day)
	return s
}

func (d Days) Entries() []DayEntry {
	if d.lookup == nil {
		return nil
	}
	return d.lookup.Entries()
}

func (d Days) Values() []Status {
	entries := d.Entries()
	values := make([]Status, 0, len(entries))
	for _, e := range entries {
		values = append(values, e.Status)
	}
	return values
}

func (d Days) Len() int {
	if d.lookup == nil {
		return 0
	}
	return d.lookup.Len()
}

// Lookup exposes the underlying representation
func (d Days) Lookup() DayStatuses {
	return d.lookup
}

func (d Days) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, e := range d.Entries() {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(e.Day)
		if err != nil {
			return nil, err
		}
		val, err := json.Marshal(string(e.Status))
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func (d *Days) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		d.lookup = nil
		return nil
	}

	switch data[0] {
	case '{':
		var raw map[string]*string
		if err := json.Unmarshal(data, &raw); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidDays, err)
		}
		m := make(DayMap, len(raw))
		for k, v := range raw {
			if v == nil {
				m[k] = StatusUnset
				continue
			}
			m[k] = Status(*v)
		}
		d.lookup = m
		return nil

	case '[':
		var pairs [][]json.RawMessage
		if err := json.Unmarshal(data, &pairs); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidDays, err)
		}
		ordered := NewOrderedDays()
		for _, pair := range pairs {
			if len(pair) != 2 {
				return fmt.Errorf("%w: pair has %d elements", ErrInvalidDays, len(pair))
			}
			key, err := decodeDayKey(pair[0])
			if err != nil {
				return err
			}
			var status *string
			if err := json.Unmarshal(pair[1], &status); err != nil {
				return fmt.Errorf("%w: %v", ErrInvalidDays, err)
			}
			if status == nil {
				ordered.Set(key, StatusUnset)
				continue
			}
			ordered.Set(key, Status(*status))
		}
		d.lookup = ordered
		return nil
	}

	return ErrInvalidDays
}

// decodeDayKey accepts "5" as well as 5
func decodeDayKey(raw json.RawMessage) (string, error) {
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s, nil
	}
	var n json.Number
	if err := json.Unmarshal(raw, &n); err != nil {
		return "", fmt.Errorf("%w: day key %s", ErrInvalidDays, raw)
	}
	return n.String(), nil
}

// SortDayKeys orders day keys numerically; non-numeric keys sort last
func SortDayKeys(keys []string) {
	sort.SliceStable(keys, func(i, j int) bool {
		a, errA := strconv.Atoi(keys[i])
		b, errB := strconv.Atoi(keys[j])
		switch {
		case errA == nil && errB == nil:
			return a < b
		case errA == nil:
			return true
		case errB == nil:
			return false
		default:
			return keys[i] < keys[j]
		}
	})
}
