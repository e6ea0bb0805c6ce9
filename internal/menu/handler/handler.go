package handler

import (
	"net/http"

	"github.com/fekuna/menu-service/internal/httpapi"
	"github.com/fekuna/menu-service/internal/menu"
	"github.com/fekuna/menu-service/internal/menu/dto"
	"github.com/fekuna/menu-service/pkg/logger"
)

type MenuHandler struct {
	uc     menu.UseCase
	logger logger.ZapLogger
}

func NewMenuHandler(uc menu.UseCase, log logger.ZapLogger) *MenuHandler {
	return &MenuHandler{
		uc:     uc,
		logger: log,
	}
}

func (h *MenuHandler) Register(mux *http.ServeMux) {
	mux.HandleFunc("GET /api/v1/menus", h.list)
	mux.HandleFunc("GET /api/v1/menus/full", h.tree)
	mux.HandleFunc("POST /api/v1/menus", h.create)
	mux.HandleFunc("GET /api/v1/menus/{menu_id}", h.get)
	mux.HandleFunc("PATCH /api/v1/menus/{menu_id}", h.update)
	mux.HandleFunc("DELETE /api/v1/menus/{menu_id}", h.delete)
}

func (h *MenuHandler) list(w http.ResponseWriter, r *http.Request) {
	skip, limit := httpapi.Pagination(r)

	menus, err := h.uc.ListMenus(r.Context(), skip, limit)
	if err != nil {
		httpapi.WriteDomainError(w, h.logger, err)
		return
	}
	httpapi.WriteJSON(w, http.StatusOK, menus)
}

func (h *MenuHandler) tree(w http.ResponseWriter, r *http.Request) {
	menus, err := h.uc.ListMenuTree(r.Context())
	if err != nil {
		httpapi.WriteDomainError(w, h.logger, err)
		return
	}
	httpapi.WriteJSON(w, http.StatusOK, menus)
}

func (h *MenuHandler) create(w http.ResponseWriter, r *http.Request) {
	var input dto.CreateMenuInput
	if err := httpapi.DecodeJSON(r, &input); err != nil {
		httpapi.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	created, err := h.uc.CreateMenu(r.Context(), &input)
	if err != nil {
		httpapi.WriteDomainError(w, h.logger, err)
		return
	}
	httpapi.WriteJSON(w, http.StatusCreated, created)
}

func (h *MenuHandler) get(w http.ResponseWriter, r *http.Request) {
	m, err := h.uc.GetMenu(r.Context(), r.PathValue("menu_id"))
	if err != nil {
		httpapi.WriteDomainError(w, h.logger, err)
		return
	}
	httpapi.WriteJSON(w, http.StatusOK, m)
}

func (h *MenuHandler) update(w http.ResponseWriter, r *http.Request) {
	var input dto.UpdateMenuInput
	if err := httpapi.DecodeJSON(r, &input); err != nil {
		httpapi.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	input.ID = r.PathValue("menu_id")

	updated, err := h.uc.UpdateMenu(r.Context(), &input)
	if err != nil {
		httpapi.WriteDomainError(w, h.logger, err)
		return
	}
	httpapi.WriteJSON(w, http.StatusOK, updated)
}

func (h *MenuHandler) delete(w http.ResponseWriter, r *http.Request) {
	if err := h.uc.DeleteMenu(r.Context(), r.PathValue("menu_id")); err != nil {
		httpapi.WriteDomainError(w, h.logger, err)
		return
	}
	httpapi.WriteJSON(w, http.StatusOK, struct{}{})
}
