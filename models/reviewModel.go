package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Review struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	Review_id   string             `bson:"review_id" json:"review_id"`
	Name        string             `bson:"name" json:"name"`
	Rating      int                `bson:"rating" json:"rating"`
	Review      string             `bson:"review" json:"review"`
	Avatar      string             `bson:"avatar" json:"avatar"`
	Date        string             `bson:"date" json:"date"`
	Is_approved bool               `bson:"is_approved" json:"is_approved"`
	Created_at  time.Time          `bson:"created_at" json:"created_at"`
}

type ReviewCreate struct {
	Name   string `json:"name" validate:"required,min=2,max=100"`
	Rating int    `json:"rating" validate:"required,min=1,max=5"`
	Review string `json:"review" validate:"required"`
}
