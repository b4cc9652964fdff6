package controller

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/go-playground/validator"
	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/rishijha390/delhi-tandoori-momo/helper"
	"github.com/rishijha390/delhi-tandoori-momo/models"
	"github.com/rishijha390/delhi-tandoori-momo/repository"
)

type OrderController struct {
	repo     repository.OrderRepository
	validate *validator.Validate
	log      *logrus.Logger
}

func NewOrderController(repo repository.OrderRepository, log *logrus.Logger) *OrderController {
	return &OrderController{repo: repo, validate: validator.New(), log: log}
}

// Create an order: price the cart, assign an order code and persist.
// Order lines are stored as the client sent them; catalogue price changes
// never retroactively affect existing orders.
func (oc *OrderController) CreateOrder(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	var input models.OrderCreate
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		helper.RespondError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := oc.validate.Struct(input); err != nil {
		helper.RespondValidationError(w, err)
		return
	}

	subtotal, deliveryCharge, total := models.CalculateTotals(input.Items, input.Delivery_type)

	now := time.Now().UTC()
	order := models.Order{
		ID:               primitive.NewObjectID(),
		Order_id:         helper.NewOrderID(),
		Customer_name:    input.Customer_name,
		Customer_phone:   input.Customer_phone,
		Customer_email:   input.Customer_email,
		Delivery_address: input.Delivery_address,
		Delivery_type:    input.Delivery_type,
		Items:            input.Items,
		Subtotal:         subtotal,
		Delivery_charge:  deliveryCharge,
		Total:            total,
		Payment_method:   input.Payment_method,
		Payment_status:   "pending",
		Order_status:     "pending",
		Created_at:       now,
		Updated_at:       now,
	}

	if err := oc.repo.Insert(ctx, order); err != nil {
		oc.log.WithError(err).Error("Error creating order")
		helper.RespondError(w, http.StatusInternalServerError, "Failed to create order")
		return
	}

	oc.log.WithField("order_id", order.Order_id).Info("Order created")
	helper.RespondJSON(w, http.StatusOK, order)
}

// Get a single order by its order code
func (oc *OrderController) GetOrder(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	orderID := mux.Vars(r)["order_id"]

	order, err := oc.repo.GetByOrderID(ctx, orderID)
	if err == repository.ErrNotFound {
		helper.RespondError(w, http.StatusNotFound, "Order not found")
		return
	}
	if err != nil {
		oc.log.WithError(err).Error("Error fetching order")
		helper.RespondError(w, http.StatusInternalServerError, "Failed to fetch order")
		return
	}

	helper.RespondJSON(w, http.StatusOK, order)
}

// Get orders newest first, optionally filtered by status, paginated
func (oc *OrderController) GetOrders(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	status := r.URL.Query().Get("status")

	limit, err := strconv.ParseInt(r.URL.Query().Get("limit"), 10, 64)
	if err != nil || limit < 1 {
		limit = 50
	}
	offset, err := strconv.ParseInt(r.URL.Query().Get("offset"), 10, 64)
	if err != nil || offset < 0 {
		offset = 0
	}

	orders, err := oc.repo.List(ctx, status, limit, offset)
	if err != nil {
		oc.log.WithError(err).Error("Error fetching orders")
		helper.RespondError(w, http.StatusInternalServerError, "Failed to fetch orders")
		return
	}

	if orders == nil {
		orders = []models.Order{}
	}
	helper.RespondJSON(w, http.StatusOK, orders)
}
