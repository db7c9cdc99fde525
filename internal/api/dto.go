package api

import "github.com/aalvaropc/recordsort/internal/domain"

// CreateRecordRequest is the POST /records payload.
type CreateRecordRequest struct {
	Data      string `json:"data"`
	Delimiter string `json:"delimiter"`
}

// RecordResponse is the wire form of a record: lowercase gender, MM/dd/yyyy date.
type RecordResponse struct {
	LastName      string `json:"lastName"`
	FirstName     string `json:"firstName"`
	Gender        string `json:"gender"`
	FavoriteColor string `json:"favoriteColor"`
	DateOfBirth   string `json:"dateOfBirth"`
}

// ErrorResponse is returned with every 4xx/5xx.
type ErrorResponse struct {
	Status   int    `json:"status"`
	Response string `json:"response"`
	Detail   string `json:"detail,omitempty"`
}

// NewRecordResponses converts records to their wire form, never returning nil.
func NewRecordResponses(records []domain.Record) []RecordResponse {
	out := make([]RecordResponse, 0, len(records))
	for _, r := range records {
		out = append(out, RecordResponse{
			LastName:      r.LastName,
			FirstName:     r.FirstName,
			Gender:        r.Gender.String(),
			FavoriteColor: r.FavoriteColor,
			DateOfBirth:   domain.FormatDate(r.DateOfBirth),
		})
	}
	return out
}
