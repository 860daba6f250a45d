// Package models - Review thuộc domain shop (reviews).
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Review lưu đánh giá của khách về cửa hàng (reviews).
// Review không bao giờ bị sửa hay xóa qua API; rating từ 1 đến 5.
type Review struct {
	ID primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`

	ShopId       primitive.ObjectID `json:"shopId" bson:"shopId" index:"single:1"`
	CustomerName string             `json:"customerName" bson:"customerName"`
	Rating       int                `json:"rating" bson:"rating"`
	Comment      string             `json:"comment,omitempty" bson:"comment,omitempty"`

	CreatedAt int64 `json:"createdAt" bson:"createdAt"`
	UpdatedAt int64 `json:"updatedAt" bson:"updatedAt"`
}
