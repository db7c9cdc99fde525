package domain

import (
	"strings"
	"time"
)

// FieldCount is the number of fields every record line must contain,
// in order: last name, first name, gender, favorite color, date of birth.
const FieldCount = 5

// ParseLine parses a single record line split on delimiter.
//
// The delimiter is matched literally; "|" is never treated as a pattern.
// Names and favorite color are taken as-is and may be empty. Gender is
// case-insensitive. The date must be MM/dd/yyyy.
func ParseLine(line string, delimiter string) (Record, error) {
	if line == "" {
		return Record{}, newParseError(ErrInvalidLine, "invalid record line")
	}

	d, err := CheckDelimiter(delimiter)
	if err != nil {
		return Record{}, err
	}

	return parseFields(strings.Split(line, string(d)))
}

// CheckDelimiter is ParseDelimiter with a ParseError for the rejected case.
func CheckDelimiter(delimiter string) (Delimiter, error) {
	d, ok := ParseDelimiter(delimiter)
	if !ok {
		return "", newParseError(ErrInvalidDelimiter, "invalid delimiter %q, expected one of [,| ]", delimiter)
	}
	return d, nil
}

func parseFields(fields []string) (Record, error) {
	if len(fields) != FieldCount {
		return Record{}, newParseError(ErrFieldCount, "expected %d fields, found %d", FieldCount, len(fields))
	}

	gender, ok := ParseGender(fields[2])
	if !ok {
		return Record{}, newParseError(ErrInvalidGender, "invalid gender, expected one of [male|female], found %q", fields[2])
	}

	dob, err := time.ParseInLocation(DateLayout, fields[4], time.UTC)
	if err != nil {
		return Record{}, newParseError(ErrInvalidDate, "invalid date format, expected %s, found %q", DateFormatHint, fields[4])
	}

	return Record{
		LastName:      fields[0],
		FirstName:     fields[1],
		Gender:        gender,
		FavoriteColor: fields[3],
		DateOfBirth:   dob,
	}, nil
}
