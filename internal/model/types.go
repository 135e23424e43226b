package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
)

// StringList stores an ordered list of strings as a comma-joined column.
// Items must not contain commas; callers validate before assignment.
type StringList []string

// Value implements driver.Valuer.
func (l StringList) Value() (driver.Value, error) {
	return strings.Join(l, ","), nil
}

// Scan implements sql.Scanner.
func (l *StringList) Scan(src interface{}) error {
	s, err := columnString(src)
	if err != nil {
		return err
	}
	if s == "" {
		*l = nil
		return nil
	}
	*l = strings.Split(s, ",")
	return nil
}

// StringSet stores an unordered membership set as a comma-joined column.
// Membership mutation is idempotent: adding a present member or removing
// an absent one is a no-op.
type StringSet map[string]struct{}

// NewStringSet builds a set from the given members.
func NewStringSet(members ...string) StringSet {
	s := make(StringSet, len(members))
	for _, m := range members {
		s[m] = struct{}{}
	}
	return s
}

// Has reports whether name is a member.
func (s StringSet) Has(name string) bool {
	_, ok := s[name]
	return ok
}

// Add inserts name into the set.
func (s StringSet) Add(name string) {
	s[name] = struct{}{}
}

// Remove deletes name from the set.
func (s StringSet) Remove(name string) {
	delete(s, name)
}

// Sorted returns the members in lexical order.
func (s StringSet) Sorted() []string {
	out := make([]string, 0, len(s))
	for m := range s {
		out = append(out, m)
	}
	sort.Strings(out)
	return out
}

// Value implements driver.Valuer. Members are joined sorted so the stored
// form is deterministic.
func (s StringSet) Value() (driver.Value, error) {
	return strings.Join(s.Sorted(), ","), nil
}

// Scan implements sql.Scanner.
func (s *StringSet) Scan(src interface{}) error {
	raw, err := columnString(src)
	if err != nil {
		return err
	}
	set := StringSet{}
	if raw != "" {
		for _, m := range strings.Split(raw, ",") {
			set[m] = struct{}{}
		}
	}
	*s = set
	return nil
}

// MarshalJSON renders the set as a sorted array.
func (s StringSet) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.Sorted())
}

// UnmarshalJSON reads the set from an array.
func (s *StringSet) UnmarshalJSON(data []byte) error {
	var members []string
	if err := json.Unmarshal(data, &members); err != nil {
		return err
	}
	*s = NewStringSet(members...)
	return nil
}

func columnString(src interface{}) (string, error) {
	switch v := src.(type) {
	case nil:
		return "", nil
	case string:
		return v, nil
	case []byte:
		return string(v), nil
	default:
		return "", fmt.Errorf("unsupported column type %T", src)
	}
}
