// Package models - Product thuộc domain shop (products).
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Product lưu sản phẩm của cửa hàng (products).
// Mọi sản phẩm đều tham chiếu cửa hàng qua shopId; không nhúng
// mảng sản phẩm vào document cửa hàng.
type Product struct {
	ID primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`

	ShopId      primitive.ObjectID `json:"shopId" bson:"shopId" index:"single:1"`
	Name        string             `json:"name" bson:"name"`
	Price       float64            `json:"price" bson:"price"`
	Description string             `json:"description,omitempty" bson:"description,omitempty"`

	CreatedAt int64 `json:"createdAt" bson:"createdAt"`
	UpdatedAt int64 `json:"updatedAt" bson:"updatedAt"`
}
