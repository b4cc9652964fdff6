package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// DeliveryChargeAmount is the flat delivery fee in the minor currency unit,
// applied only when the delivery type is "delivery".
const DeliveryChargeAmount = 30

const (
	DeliveryTypeDelivery = "delivery"
	DeliveryTypePickup   = "pickup"
)

type OrderItem struct {
	Item_id  int    `bson:"item_id" json:"item_id" validate:"required"`
	Name     string `bson:"name" json:"name" validate:"required"`
	Price    int    `bson:"price" json:"price" validate:"required,gt=0"`
	Quantity int    `bson:"quantity" json:"quantity" validate:"required,gt=0"`
}

type Order struct {
	ID               primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	Order_id         string             `bson:"order_id" json:"order_id"`
	Customer_name    string             `bson:"customer_name" json:"customer_name"`
	Customer_phone   string             `bson:"customer_phone" json:"customer_phone"`
	Customer_email   *string            `bson:"customer_email,omitempty" json:"customer_email"`
	Delivery_address *string            `bson:"delivery_address,omitempty" json:"delivery_address"`
	Delivery_type    string             `bson:"delivery_type" json:"delivery_type"`
	Items            []OrderItem        `bson:"items" json:"items"`
	Subtotal         int                `bson:"subtotal" json:"subtotal"`
	Delivery_charge  int                `bson:"delivery_charge" json:"delivery_charge"`
	Total            int                `bson:"total" json:"total"`
	Payment_method   string             `bson:"payment_method" json:"payment_method"`
	Payment_status   string             `bson:"payment_status" json:"payment_status"`
	Order_status     string             `bson:"order_status" json:"order_status"`
	Created_at       time.Time          `bson:"created_at" json:"created_at"`
	Updated_at       time.Time          `bson:"updated_at" json:"updated_at"`
}

type OrderCreate struct {
	Customer_name    string      `json:"customer_name" validate:"required,min=2,max=100"`
	Customer_phone   string      `json:"customer_phone" validate:"required,min=7,max=15"`
	Customer_email   *string     `json:"customer_email" validate:"omitempty,email"`
	Delivery_address *string     `json:"delivery_address"`
	Delivery_type    string      `json:"delivery_type" validate:"required,eq=delivery|eq=pickup"`
	Items            []OrderItem `json:"items" validate:"required,min=1,dive"`
	Payment_method   string      `json:"payment_method" validate:"required"`
}

// CalculateTotals prices a cart. The subtotal is the sum of line price times
// quantity; the delivery charge applies only to delivery orders.
// Invariant: total == subtotal + deliveryCharge.
func CalculateTotals(items []OrderItem, deliveryType string) (subtotal, deliveryCharge, total int) {
	for _, item := range items {
		subtotal += item.Price * item.Quantity
	}
	if deliveryType == DeliveryTypeDelivery {
		deliveryCharge = DeliveryChargeAmount
	}
	total = subtotal + deliveryCharge
	return subtotal, deliveryCharge, total
}
