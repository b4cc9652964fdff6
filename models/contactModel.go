package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ContactMessage struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	Message_id string             `bson:"message_id" json:"message_id"`
	Name       string             `bson:"name" json:"name"`
	Phone      string             `bson:"phone" json:"phone"`
	Email      *string            `bson:"email,omitempty" json:"email"`
	Message    string             `bson:"message" json:"message"`
	Is_read    bool               `bson:"is_read" json:"is_read"`
	Created_at time.Time          `bson:"created_at" json:"created_at"`
}

type ContactMessageCreate struct {
	Name    string  `json:"name" validate:"required,min=2,max=100"`
	Phone   string  `json:"phone" validate:"required,min=7,max=15"`
	Email   *string `json:"email" validate:"omitempty,email"`
	Message string  `json:"message" validate:"required"`
}
