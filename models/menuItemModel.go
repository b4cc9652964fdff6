package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type MenuItem struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	Item_id      int                `bson:"item_id" json:"item_id" validate:"required"`
	Name         string             `bson:"name" json:"name" validate:"required,min=2,max=100"`
	Description  string             `bson:"description" json:"description"`
	Price        int                `bson:"price" json:"price" validate:"required,gt=0"`
	Category     string             `bson:"category" json:"category" validate:"required"`
	Image        string             `bson:"image" json:"image"`
	Is_veg       bool               `bson:"is_veg" json:"is_veg"`
	Is_available bool               `bson:"is_available" json:"is_available"`
	Created_at   time.Time          `bson:"created_at" json:"created_at"`
	Updated_at   time.Time          `bson:"updated_at" json:"updated_at"`
}

// MenuItemResponse duplicates item_id under the public "id" key.
type MenuItemResponse struct {
	MenuItem
	Id int `json:"id"`
}

func (m MenuItem) WithAlias() MenuItemResponse {
	return MenuItemResponse{MenuItem: m, Id: m.Item_id}
}

type MenuCategory struct {
	Id    int                `json:"id"`
	Name  string             `json:"name"`
	Items []MenuCategoryItem `json:"items"`
}

type MenuCategoryItem struct {
	Id          int    `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Price       int    `json:"price"`
	IsVeg       bool   `json:"isVeg"`
	Image       string `json:"image"`
}

// GroupByCategory groups items by their category field, preserving the order in
// which categories are first seen. Category ids are 1-based in discovery order.
func GroupByCategory(items []MenuItem) []MenuCategory {
	categories := []MenuCategory{}
	index := make(map[string]int)

	for _, item := range items {
		pos, ok := index[item.Category]
		if !ok {
			pos = len(categories)
			index[item.Category] = pos
			categories = append(categories, MenuCategory{
				Id:   pos + 1,
				Name: item.Category,
			})
		}
		categories[pos].Items = append(categories[pos].Items, MenuCategoryItem{
			Id:          item.Item_id,
			Name:        item.Name,
			Description: item.Description,
			Price:       item.Price,
			IsVeg:       item.Is_veg,
			Image:       item.Image,
		})
	}

	return categories
}
