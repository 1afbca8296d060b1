package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"utsavam/internal/bookings/service"
	apperrors "utsavam/pkg/errors"
	httputil "utsavam/pkg/http"
	"utsavam/pkg/logger"
	"utsavam/pkg/model"

	"github.com/julienschmidt/httprouter"
)

type BookingHandler struct {
	service service.BookingService
	log     *logger.Logger
}

func NewBookingHandler(service service.BookingService, log *logger.Logger) *BookingHandler {
	return &BookingHandler{
		service: service,
		log:     log,
	}
}

func (h *BookingHandler) RegisterRoutes(router *httprouter.Router) {
	router.POST("/api/v1/bookings", h.Create)
	router.GET("/api/v1/bookings/id/:id", h.GetByID)
	router.POST("/api/v1/bookings/id/:id/approve", h.Approve)
	router.POST("/api/v1/bookings/id/:id/reject", h.Reject)
	router.DELETE("/api/v1/bookings/id/:id", h.Delete)
	router.GET("/api/v1/bookings/vendor/:vendorId", h.GetByVendor)
	router.GET("/api/v1/bookings/vendor/:vendorId/calendar", h.Calendar)
	router.GET("/api/v1/bookings/hall/:hallId/ranges", h.BookedRanges)
}

func (h *BookingHandler) Create(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var booking model.Booking
	if err := json.NewDecoder(r.Body).Decode(&booking); err != nil {
		httputil.WriteJSON(w, http.StatusBadRequest, httputil.ErrorResponse{Error: "Invalid request body"})
		return
	}

	if err := h.service.Create(r.Context(), &booking); err != nil {
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteCreated(w, booking)
}

func (h *BookingHandler) GetByID(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	booking, err := h.service.GetByID(r.Context(), ps.ByName("id"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteSuccess(w, booking)
}

func (h *BookingHandler) Approve(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	if err := h.service.Approve(r.Context(), ps.ByName("id")); err != nil {
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteNoContent(w)
}

func (h *BookingHandler) Reject(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	if err := h.service.Reject(r.Context(), ps.ByName("id")); err != nil {
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteNoContent(w)
}

func (h *BookingHandler) Delete(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	if err := h.service.Delete(r.Context(), ps.ByName("id")); err != nil {
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteNoContent(w)
}

func (h *BookingHandler) GetByVendor(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	limit, offset, err := httputil.ExtractLimitOffset(r)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	bookings, total, err := h.service.GetByVendor(r.Context(), ps.ByName("vendorId"), limit, offset)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	httputil.WritePaginated(w, bookings, total, limit, offset)
}

func (h *BookingHandler) Calendar(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	limit, offset, err := httputil.ExtractLimitOffset(r)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	entries, err := h.service.Calendar(r.Context(), ps.ByName("vendorId"), limit, offset)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteSuccess(w, entries)
}

func (h *BookingHandler) BookedRanges(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	from, to, err := parseRangeWindow(r)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	ranges, err := h.service.BookedRanges(r.Context(), ps.ByName("hallId"), from, to)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteSuccess(w, ranges)
}

// parseRangeWindow reads optional from/to query bounds as RFC 3339
// dates. Both must be present or both absent.
func parseRangeWindow(r *http.Request) (*time.Time, *time.Time, error) {
	query := r.URL.Query()
	fromStr, toStr := query.Get("from"), query.Get("to")

	if fromStr == "" && toStr == "" {
		return nil, nil, nil
	}
	if fromStr == "" || toStr == "" {
		return nil, nil, apperrors.InvalidInput("from and to must be provided together")
	}

	from, err := time.Parse(time.RFC3339, fromStr)
	if err != nil {
		return nil, nil, apperrors.InvalidInput("invalid from parameter: " + fromStr)
	}
	to, err := time.Parse(time.RFC3339, toStr)
	if err != nil {
		return nil, nil, apperrors.InvalidInput("invalid to parameter: " + toStr)
	}
	if !to.After(from) {
		return nil, nil, apperrors.InvalidInput("to must be after from")
	}

	return &from, &to, nil
}
