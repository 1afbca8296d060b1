package handler

import (
	"encoding/json"
	"net/http"

	"utsavam/internal/vendors/service"
	httputil "utsavam/pkg/http"
	"utsavam/pkg/logger"
	"utsavam/pkg/model"

	"github.com/julienschmidt/httprouter"
)

type VendorHandler struct {
	service service.VendorService
	log     *logger.Logger
}

func NewVendorHandler(service service.VendorService, log *logger.Logger) *VendorHandler {
	return &VendorHandler{
		service: service,
		log:     log,
	}
}

func (h *VendorHandler) RegisterRoutes(router *httprouter.Router) {
	router.POST("/api/v1/vendors", h.Register)
	router.GET("/api/v1/vendors", h.GetAll)
	router.GET("/api/v1/vendors/id/:id", h.GetByID)
	router.POST("/api/v1/vendors/id/:id/approve", h.Approve)
	router.POST("/api/v1/vendors/id/:id/reject", h.Reject)
	router.DELETE("/api/v1/vendors/id/:id", h.Delete)
	router.POST("/api/v1/vendors/login/request-code", h.RequestCode)
	router.POST("/api/v1/vendors/login/verify-code", h.VerifyCode)
}

func (h *VendorHandler) Register(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var vendor model.Vendor
	if err := json.NewDecoder(r.Body).Decode(&vendor); err != nil {
		httputil.WriteJSON(w, http.StatusBadRequest, httputil.ErrorResponse{Error: "Invalid request body"})
		return
	}

	if err := h.service.Register(r.Context(), &vendor); err != nil {
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteCreated(w, vendor)
}

type phoneRequest struct {
	Phone string `json:"phone"`
}

type verifyRequest struct {
	Phone string `json:"phone"`
	Code  string `json:"code"`
}

func (h *VendorHandler) RequestCode(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var req phoneRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.WriteJSON(w, http.StatusBadRequest, httputil.ErrorResponse{Error: "Invalid request body"})
		return
	}

	if err := h.service.RequestCode(r.Context(), req.Phone); err != nil {
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteSuccess(w, map[string]string{"message": "Login code sent"})
}

func (h *VendorHandler) VerifyCode(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var req verifyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.WriteJSON(w, http.StatusBadRequest, httputil.ErrorResponse{Error: "Invalid request body"})
		return
	}

	session, err := h.service.VerifyCode(r.Context(), req.Phone, req.Code)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteSuccess(w, session)
}

func (h *VendorHandler) GetByID(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	vendor, err := h.service.GetByID(r.Context(), ps.ByName("id"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteSuccess(w, vendor)
}

func (h *VendorHandler) GetAll(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	limit, offset, err := httputil.ExtractLimitOffset(r)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	vendors, total, err := h.service.GetAll(r.Context(), limit, offset)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	httputil.WritePaginated(w, vendors, total, limit, offset)
}

func (h *VendorHandler) Approve(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	if err := h.service.Approve(r.Context(), ps.ByName("id")); err != nil {
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteNoContent(w)
}

func (h *VendorHandler) Reject(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	if err := h.service.Reject(r.Context(), ps.ByName("id")); err != nil {
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteNoContent(w)
}

func (h *VendorHandler) Delete(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	result, err := h.service.DeleteCascade(r.Context(), ps.ByName("id"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteSuccess(w, result)
}
