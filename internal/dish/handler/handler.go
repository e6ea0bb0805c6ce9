package handler

import (
	"net/http"

	"github.com/fekuna/menu-service/internal/dish"
	"github.com/fekuna/menu-service/internal/dish/dto"
	"github.com/fekuna/menu-service/internal/httpapi"
	"github.com/fekuna/menu-service/pkg/logger"
)

type DishHandler struct {
	uc     dish.UseCase
	logger logger.ZapLogger
}

func NewDishHandler(uc dish.UseCase, log logger.ZapLogger) *DishHandler {
	return &DishHandler{
		uc:     uc,
		logger: log,
	}
}

func (h *DishHandler) Register(mux *http.ServeMux) {
	mux.HandleFunc("GET /api/v1/menus/{menu_id}/submenus/{submenu_id}/dishes", h.list)
	mux.HandleFunc("POST /api/v1/menus/{menu_id}/submenus/{submenu_id}/dishes", h.create)
	mux.HandleFunc("GET /api/v1/menus/{menu_id}/submenus/{submenu_id}/dishes/{dish_id}", h.get)
	mux.HandleFunc("PATCH /api/v1/menus/{menu_id}/submenus/{submenu_id}/dishes/{dish_id}", h.update)
	mux.HandleFunc("DELETE /api/v1/menus/{menu_id}/submenus/{submenu_id}/dishes/{dish_id}", h.delete)
}

func (h *DishHandler) list(w http.ResponseWriter, r *http.Request) {
	skip, limit := httpapi.Pagination(r)

	dishes, err := h.uc.ListDishes(r.Context(), r.PathValue("menu_id"), r.PathValue("submenu_id"), skip, limit)
	if err != nil {
		httpapi.WriteDomainError(w, h.logger, err)
		return
	}
	httpapi.WriteJSON(w, http.StatusOK, dishes)
}

func (h *DishHandler) create(w http.ResponseWriter, r *http.Request) {
	var input dto.CreateDishInput
	if err := httpapi.DecodeJSON(r, &input); err != nil {
		httpapi.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	created, err := h.uc.CreateDish(r.Context(), r.PathValue("menu_id"), r.PathValue("submenu_id"), &input)
	if err != nil {
		httpapi.WriteDomainError(w, h.logger, err)
		return
	}
	httpapi.WriteJSON(w, http.StatusCreated, created)
}

func (h *DishHandler) get(w http.ResponseWriter, r *http.Request) {
	d, err := h.uc.GetDish(r.Context(), r.PathValue("menu_id"), r.PathValue("submenu_id"), r.PathValue("dish_id"))
	if err != nil {
		httpapi.WriteDomainError(w, h.logger, err)
		return
	}
	httpapi.WriteJSON(w, http.StatusOK, d)
}

func (h *DishHandler) update(w http.ResponseWriter, r *http.Request) {
	var input dto.UpdateDishInput
	if err := httpapi.DecodeJSON(r, &input); err != nil {
		httpapi.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	updated, err := h.uc.UpdateDish(r.Context(), r.PathValue("menu_id"), r.PathValue("submenu_id"), r.PathValue("dish_id"), &input)
	if err != nil {
		httpapi.WriteDomainError(w, h.logger, err)
		return
	}
	httpapi.WriteJSON(w, http.StatusOK, updated)
}

func (h *DishHandler) delete(w http.ResponseWriter, r *http.Request) {
	err := h.uc.DeleteDish(r.Context(), r.PathValue("menu_id"), r.PathValue("submenu_id"), r.PathValue("dish_id"))
	if err != nil {
		httpapi.WriteDomainError(w, h.logger, err)
		return
	}
	httpapi.WriteJSON(w, http.StatusOK, struct{}{})
}
