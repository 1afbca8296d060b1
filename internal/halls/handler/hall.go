package handler

import (
	"encoding/json"
	"net/http"

	"utsavam/internal/halls/repository"
	"utsavam/internal/halls/service"
	httputil "utsavam/pkg/http"
	"utsavam/pkg/logger"
	"utsavam/pkg/model"

	"github.com/julienschmidt/httprouter"
)

type HallHandler struct {
	service service.HallService
	log     *logger.Logger
}

func NewHallHandler(service service.HallService, log *logger.Logger) *HallHandler {
	return &HallHandler{
		service: service,
		log:     log,
	}
}

func (h *HallHandler) RegisterRoutes(router *httprouter.Router) {
	router.POST("/api/v1/halls", h.Create)
	router.GET("/api/v1/halls", h.GetAll)
	router.GET("/api/v1/halls/id/:id", h.GetByID)
	router.GET("/api/v1/halls/id/:id/info", h.GetInfo)
	router.GET("/api/v1/halls/vendor/:vendorId", h.GetByVendor)
	router.PATCH("/api/v1/halls/id/:id", h.Update)
	router.POST("/api/v1/halls/id/:id/approve", h.Approve)
	router.POST("/api/v1/halls/id/:id/reject", h.Reject)
	router.DELETE("/api/v1/halls/id/:id", h.Delete)
}

func (h *HallHandler) Create(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var hall model.Hall
	if err := json.NewDecoder(r.Body).Decode(&hall); err != nil {
		httputil.WriteJSON(w, http.StatusBadRequest, httputil.ErrorResponse{Error: "Invalid request body"})
		return
	}

	if err := h.service.Create(r.Context(), &hall); err != nil {
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteCreated(w, hall)
}

func (h *HallHandler) GetByID(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	hall, err := h.service.GetByID(r.Context(), ps.ByName("id"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteSuccess(w, hall)
}

func (h *HallHandler) GetInfo(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	info, err := h.service.GetInfo(r.Context(), ps.ByName("id"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteSuccess(w, info)
}

func (h *HallHandler) GetAll(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	limit, offset, err := httputil.ExtractLimitOffset(r)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	query := r.URL.Query()
	filter := repository.HallFilter{
		City:     query.Get("city"),
		Category: query.Get("category"),
		Status:   model.ApprovalStatus(query.Get("status")),
	}

	halls, total, err := h.service.GetAll(r.Context(), filter, limit, offset)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	httputil.WritePaginated(w, halls, total, limit, offset)
}

func (h *HallHandler) GetByVendor(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	halls, err := h.service.GetByVendor(r.Context(), ps.ByName("vendorId"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteSuccess(w, halls)
}

func (h *HallHandler) Update(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	var hall model.Hall
	if err := json.NewDecoder(r.Body).Decode(&hall); err != nil {
		httputil.WriteJSON(w, http.StatusBadRequest, httputil.ErrorResponse{Error: "Invalid request body"})
		return
	}

	if err := h.service.Update(r.Context(), ps.ByName("id"), &hall); err != nil {
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteNoContent(w)
}

func (h *HallHandler) Approve(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	if err := h.service.Approve(r.Context(), ps.ByName("id")); err != nil {
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteNoContent(w)
}

func (h *HallHandler) Reject(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	if err := h.service.Reject(r.Context(), ps.ByName("id")); err != nil {
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteNoContent(w)
}

func (h *HallHandler) Delete(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	if err := h.service.Delete(r.Context(), ps.ByName("id")); err != nil {
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteNoContent(w)
}
