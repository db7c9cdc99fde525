package domain

import (
	"strings"
	"time"
)

// DateLayout is the only accepted date-of-birth layout (MM/dd/yyyy).
const DateLayout = "01/02/2006"

// DateFormatHint is DateLayout spelled the way users know it.
const DateFormatHint = "MM/dd/yyyy"

// Gender is the closed set of genders a record may carry.
// Declaration order matters: MALE sorts before FEMALE.
type Gender int

const (
	GenderMale Gender = iota
	GenderFemale
)

var genderNames = [...]string{
	GenderMale:   "male",
	GenderFemale: "female",
}

// ParseGender converts text to a Gender, ignoring case.
// The bool is false for anything other than "male" or "female".
func ParseGender(s string) (Gender, bool) {
	for g, name := range genderNames {
		if strings.EqualFold(s, name) {
			return Gender(g), true
		}
	}
	return 0, false
}

// String returns the lowercase textual form.
func (g Gender) String() string {
	if g < 0 || int(g) >= len(genderNames) {
		return "unknown"
	}
	return genderNames[g]
}

func (g Gender) MarshalText() ([]byte, error) {
	return []byte(g.String()), nil
}

func (g *Gender) UnmarshalText(b []byte) error {
	v, ok := ParseGender(string(b))
	if !ok {
		return newParseError(ErrInvalidGender, "invalid gender, expected one of [male|female], found %q", string(b))
	}
	*g = v
	return nil
}

// Delimiter separates the fields of a record line.
type Delimiter string

const (
	DelimiterComma Delimiter = ","
	DelimiterSpace Delimiter = " "
	DelimiterPipe  Delimiter = "|"
)

// Delimiters lists every accepted delimiter.
var Delimiters = []Delimiter{DelimiterComma, DelimiterSpace, DelimiterPipe}

// ParseDelimiter accepts exactly ",", " " or "|".
func ParseDelimiter(s string) (Delimiter, bool) {
	for _, d := range Delimiters {
		if string(d) == s {
			return d, true
		}
	}
	return "", false
}

// DelimiterByName maps the usual file-type names (csv, ssv, psv, comma, space,
// pipe) to a delimiter. Literal delimiters are accepted as well.
func DelimiterByName(name string) (Delimiter, bool) {
	if d, ok := ParseDelimiter(name); ok {
		return d, true
	}
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "csv", "comma":
		return DelimiterComma, true
	case "ssv", "space":
		return DelimiterSpace, true
	case "psv", "pipe":
		return DelimiterPipe, true
	}
	return "", false
}

// Name returns the file-type name of the delimiter.
func (d Delimiter) Name() string {
	switch d {
	case DelimiterComma:
		return "csv"
	case DelimiterSpace:
		return "ssv"
	case DelimiterPipe:
		return "psv"
	}
	return "unknown"
}

// Record is a single parsed person record. It is a comparable value type:
// two records are equal when all five fields are.
type Record struct {
	LastName      string
	FirstName     string
	Gender        Gender
	FavoriteColor string
	DateOfBirth   time.Time // UTC midnight; only the calendar date is meaningful
}

// NewRecord builds a record, truncating the date of birth to its calendar date.
func NewRecord(lastName, firstName string, gender Gender, favoriteColor string, dob time.Time) Record {
	return Record{
		LastName:      lastName,
		FirstName:     firstName,
		Gender:        gender,
		FavoriteColor: favoriteColor,
		DateOfBirth:   Date(dob.Year(), dob.Month(), dob.Day()),
	}
}

// Date returns UTC midnight of the given calendar date.
func Date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// FormatDate renders t as MM/dd/yyyy.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// String renders the canonical form: last,first,gender,color,MM/dd/yyyy.
// The delimiter a record was parsed with never affects this.
func (r Record) String() string {
	var b strings.Builder
	b.Grow(len(r.LastName) + len(r.FirstName) + len(r.FavoriteColor) + 24)
	b.WriteString(r.LastName)
	b.WriteByte(',')
	b.WriteString(r.FirstName)
	b.WriteByte(',')
	b.WriteString(r.Gender.String())
	b.WriteByte(',')
	b.WriteString(r.FavoriteColor)
	b.WriteByte(',')
	b.WriteString(FormatDate(r.DateOfBirth))
	return b.String()
}

// Equal reports structural equality.
func (r Record) Equal(o Record) bool {
	return r.LastName == o.LastName &&
		r.FirstName == o.FirstName &&
		r.Gender == o.Gender &&
		r.FavoriteColor == o.FavoriteColor &&
		r.DateOfBirth.Equal(o.DateOfBirth)
}
