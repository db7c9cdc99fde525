package api

import (
	"errors"
	"log/slog"

	"github.com/gofiber/fiber/v2"

	"github.com/aalvaropc/recordsort/internal/domain"
	"github.com/aalvaropc/recordsort/internal/infra/logger"
	"github.com/aalvaropc/recordsort/internal/usecase"
)

// Messages returned to clients; parse details go in ErrorResponse.Detail.
const (
	MsgMissingData    = "Record data must be provided"
	MsgInvalidDelim   = "Invalid delimiter"
	MsgUnparseable    = "Unable to parse provided record data"
	MsgInvalidBody    = "Invalid request body"
	MsgStorageFailure = "Unable to store record"
	MsgListingFailure = "Unable to list records"
)

type RecordHandler struct {
	ingest *usecase.IngestRecord
	list   *usecase.ListRecords
	log    *slog.Logger
}

func NewRecordHandler(ingest *usecase.IngestRecord, list *usecase.ListRecords, log *slog.Logger) *RecordHandler {
	if log == nil {
		log = logger.L()
	}
	return &RecordHandler{ingest: ingest, list: list, log: log}
}

// Create validates the request before parsing: data first, then delimiter.
func (h *RecordHandler) Create(c *fiber.Ctx) error {
	var req CreateRecordRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, MsgInvalidBody, err)
	}

	if req.Data == "" {
		return badRequest(c, MsgMissingData, nil)
	}
	if _, ok := domain.ParseDelimiter(req.Delimiter); !ok {
		return badRequest(c, MsgInvalidDelim, nil)
	}

	if _, err := h.ingest.Execute(c.UserContext(), req.Data, req.Delimiter); err != nil {
		if domain.IsParseError(err) {
			return badRequest(c, MsgUnparseable, err)
		}
		h.log.Error("api.create_failed", "request_id", requestID(c), "err", err)
		return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{
			Status:   fiber.StatusInternalServerError,
			Response: MsgStorageFailure,
		})
	}

	return c.SendStatus(fiber.StatusNoContent)
}

// ListBy serves the records sorted by field; ?sortOrder=desc reverses it.
func (h *RecordHandler) ListBy(field domain.SortField) fiber.Handler {
	return func(c *fiber.Ctx) error {
		order := domain.ParseSortOrder(c.Query("sortOrder"))
		records, err := h.list.Execute(c.UserContext(), field, order)
		if err != nil {
			return h.listFailed(c, err)
		}
		return c.JSON(NewRecordResponses(records))
	}
}

// List serves the records in insertion order.
func (h *RecordHandler) List(c *fiber.Ctx) error {
	records, err := h.list.All(c.UserContext())
	if err != nil {
		return h.listFailed(c, err)
	}
	return c.JSON(NewRecordResponses(records))
}

func (h *RecordHandler) listFailed(c *fiber.Ctx, err error) error {
	h.log.Error("api.list_failed", "request_id", requestID(c), "err", err)
	return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{
		Status:   fiber.StatusInternalServerError,
		Response: MsgListingFailure,
	})
}

func badRequest(c *fiber.Ctx, msg string, cause error) error {
	resp := ErrorResponse{Status: fiber.StatusBadRequest, Response: msg}
	var pe *domain.ParseError
	if cause != nil && errors.As(cause, &pe) {
		resp.Detail = pe.Error()
	}
	return c.Status(fiber.StatusBadRequest).JSON(resp)
}

func requestID(c *fiber.Ctx) string {
	if v, ok := c.Locals(requestIDKey).(string); ok {
		return v
	}
	return ""
}
