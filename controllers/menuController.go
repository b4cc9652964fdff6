package controller

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"

	"github.com/rishijha390/delhi-tandoori-momo/helper"
	"github.com/rishijha390/delhi-tandoori-momo/models"
	"github.com/rishijha390/delhi-tandoori-momo/repository"
)

type MenuController struct {
	repo repository.MenuRepository
	log  *logrus.Logger
}

func NewMenuController(repo repository.MenuRepository, log *logrus.Logger) *MenuController {
	return &MenuController{repo: repo, log: log}
}

// Get all available menu items grouped by category
func (mc *MenuController) GetMenuCategories(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	items, err := mc.repo.ListAvailable(ctx, "")
	if err != nil {
		mc.log.WithError(err).Error("Error fetching menu categories")
		helper.RespondError(w, http.StatusInternalServerError, "Failed to fetch menu")
		return
	}

	helper.RespondJSON(w, http.StatusOK, models.GroupByCategory(items))
}

// Get all available menu items, optionally filtered by category
func (mc *MenuController) GetMenuItems(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	category := r.URL.Query().Get("category")

	items, err := mc.repo.ListAvailable(ctx, category)
	if err != nil {
		mc.log.WithError(err).Error("Error fetching menu items")
		helper.RespondError(w, http.StatusInternalServerError, "Failed to fetch menu items")
		return
	}

	response := make([]models.MenuItemResponse, 0, len(items))
	for _, item := range items {
		response = append(response, item.WithAlias())
	}

	helper.RespondJSON(w, http.StatusOK, response)
}

// Get a single menu item by its catalogue id
func (mc *MenuController) GetMenuItem(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	itemID, err := strconv.Atoi(mux.Vars(r)["item_id"])
	if err != nil {
		helper.RespondError(w, http.StatusBadRequest, "Invalid item id")
		return
	}

	item, err := mc.repo.GetByItemID(ctx, itemID)
	if err == repository.ErrNotFound {
		helper.RespondError(w, http.StatusNotFound, "Item not found")
		return
	}
	if err != nil {
		mc.log.WithError(err).Error("Error fetching menu item")
		helper.RespondError(w, http.StatusInternalServerError, "Failed to fetch menu item")
		return
	}

	helper.RespondJSON(w, http.StatusOK, item.WithAlias())
}
