package domain

import (
	"cmp"
	"slices"
	"strings"
)

// Comparator orders two records: negative when a sorts first, zero on a tie.
type Comparator func(a, b Record) int

// ByGender orders MALE before FEMALE.
func ByGender(a, b Record) int {
	return cmp.Compare(a.Gender, b.Gender)
}

// ByDateOfBirth orders earlier birth dates first.
func ByDateOfBirth(a, b Record) int {
	return a.DateOfBirth.Compare(b.DateOfBirth)
}

// ByLastName orders by raw byte value of the last name; no case folding.
func ByLastName(a, b Record) int {
	return strings.Compare(a.LastName, b.LastName)
}

// Reverse returns the descending variant of c, including any tie-breaks c applies.
func Reverse(c Comparator) Comparator {
	return func(a, b Record) int {
		return c(b, a)
	}
}

// Then breaks ties in c with next.
func Then(c Comparator, next Comparator) Comparator {
	return func(a, b Record) int {
		if n := c(a, b); n != 0 {
			return n
		}
		return next(a, b)
	}
}

// SortField names an ordering exposed to callers.
type SortField string

const (
	SortByGender      SortField = "gender"
	SortByDateOfBirth SortField = "birth_date"
	SortByLastName    SortField = "last_name"
)

// SortFields lists every sort field in display order.
var SortFields = []SortField{SortByGender, SortByDateOfBirth, SortByLastName}

// ParseSortField is case-insensitive and also accepts the API path names
// "birthdate" and "name".
func ParseSortField(s string) (SortField, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "gender":
		return SortByGender, true
	case "birth_date", "birthdate":
		return SortByDateOfBirth, true
	case "last_name", "name":
		return SortByLastName, true
	}
	return "", false
}

// SortOrder is ascending unless explicitly descending.
type SortOrder string

const (
	SortAsc  SortOrder = "asc"
	SortDesc SortOrder = "desc"
)

// ParseSortOrder treats anything other than "desc" (any case) as ascending.
func ParseSortOrder(s string) SortOrder {
	if strings.EqualFold(strings.TrimSpace(s), string(SortDesc)) {
		return SortDesc
	}
	return SortAsc
}

func fieldComparator(f SortField) Comparator {
	switch f {
	case SortByGender:
		return ByGender
	case SortByDateOfBirth:
		return ByDateOfBirth
	case SortByLastName:
		return ByLastName
	}
	return nil
}

// APIComparator is the ordering served over HTTP: the bare field comparator,
// reversed for SortDesc. Ties keep input order under a stable sort.
func APIComparator(f SortField, order SortOrder) (Comparator, bool) {
	c := fieldComparator(f)
	if c == nil {
		return nil, false
	}
	if order == SortDesc {
		c = Reverse(c)
	}
	return c, true
}

// DisplayComparator is the ordering printed by the command-line tool:
// gender puts FEMALE first then last name ascending, birth date is
// ascending, and last name is descending.
func DisplayComparator(f SortField) (Comparator, bool) {
	switch f {
	case SortByGender:
		return Then(Reverse(ByGender), ByLastName), true
	case SortByDateOfBirth:
		return ByDateOfBirth, true
	case SortByLastName:
		return Reverse(ByLastName), true
	}
	return nil, false
}

// SortStable returns a sorted copy of records; the input is left untouched.
func SortStable(records []Record, c Comparator) []Record {
	out := slices.Clone(records)
	if out == nil {
		out = []Record{}
	}
	slices.SortStableFunc(out, c)
	return out
}
