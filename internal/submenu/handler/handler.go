package handler

import (
	"net/http"

	"github.com/fekuna/menu-service/internal/httpapi"
	"github.com/fekuna/menu-service/internal/submenu"
	"github.com/fekuna/menu-service/internal/submenu/dto"
	"github.com/fekuna/menu-service/pkg/logger"
)

type SubMenuHandler struct {
	uc     submenu.UseCase
	logger logger.ZapLogger
}

func NewSubMenuHandler(uc submenu.UseCase, log logger.ZapLogger) *SubMenuHandler {
	return &SubMenuHandler{
		uc:     uc,
		logger: log,
	}
}

func (h *SubMenuHandler) Register(mux *http.ServeMux) {
	mux.HandleFunc("GET /api/v1/menus/{menu_id}/submenus", h.list)
	mux.HandleFunc("POST /api/v1/menus/{menu_id}/submenus", h.create)
	mux.HandleFunc("GET /api/v1/menus/{menu_id}/submenus/{submenu_id}", h.get)
	mux.HandleFunc("PATCH /api/v1/menus/{menu_id}/submenus/{submenu_id}", h.update)
	mux.HandleFunc("DELETE /api/v1/menus/{menu_id}/submenus/{submenu_id}", h.delete)
}

func (h *SubMenuHandler) list(w http.ResponseWriter, r *http.Request) {
	skip, limit := httpapi.Pagination(r)

	submenus, err := h.uc.ListSubMenus(r.Context(), r.PathValue("menu_id"), skip, limit)
	if err != nil {
		httpapi.WriteDomainError(w, h.logger, err)
		return
	}
	httpapi.WriteJSON(w, http.StatusOK, submenus)
}

func (h *SubMenuHandler) create(w http.ResponseWriter, r *http.Request) {
	var input dto.CreateSubMenuInput
	if err := httpapi.DecodeJSON(r, &input); err != nil {
		httpapi.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	created, err := h.uc.CreateSubMenu(r.Context(), r.PathValue("menu_id"), &input)
	if err != nil {
		httpapi.WriteDomainError(w, h.logger, err)
		return
	}
	httpapi.WriteJSON(w, http.StatusCreated, created)
}

func (h *SubMenuHandler) get(w http.ResponseWriter, r *http.Request) {
	s, err := h.uc.GetSubMenu(r.Context(), r.PathValue("menu_id"), r.PathValue("submenu_id"))
	if err != nil {
		httpapi.WriteDomainError(w, h.logger, err)
		return
	}
	httpapi.WriteJSON(w, http.StatusOK, s)
}

func (h *SubMenuHandler) update(w http.ResponseWriter, r *http.Request) {
	var input dto.UpdateSubMenuInput
	if err := httpapi.DecodeJSON(r, &input); err != nil {
		httpapi.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	updated, err := h.uc.UpdateSubMenu(r.Context(), r.PathValue("menu_id"), r.PathValue("submenu_id"), &input)
	if err != nil {
		httpapi.WriteDomainError(w, h.logger, err)
		return
	}
	httpapi.WriteJSON(w, http.StatusOK, updated)
}

func (h *SubMenuHandler) delete(w http.ResponseWriter, r *http.Request) {
	err := h.uc.DeleteSubMenu(r.Context(), r.PathValue("menu_id"), r.PathValue("submenu_id"))
	if err != nil {
		httpapi.WriteDomainError(w, h.logger, err)
		return
	}
	httpapi.WriteJSON(w, http.StatusOK, struct{}{})
}
