// Package models - Offer thuộc domain offer (offers).
// Ưu đãi có thời hạn của cửa hàng.
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Offer lưu ưu đãi (offers). StartDate/EndDate là UnixMilli;
// endDate >= startDate, endDate có index phục vụ quét hết hạn.
type Offer struct {
	ID primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`

	ShopId      primitive.ObjectID `json:"shopId" bson:"shopId" index:"single:1"`
	Title       string             `json:"title" bson:"title"`
	Description string             `json:"description,omitempty" bson:"description,omitempty"`
	StartDate   int64              `json:"startDate" bson:"startDate"`
	EndDate     int64              `json:"endDate" bson:"endDate" index:"single:1"`
	Discount    string             `json:"discount,omitempty" bson:"discount,omitempty"`
	ImageUrl    string             `json:"imageUrl,omitempty" bson:"imageUrl,omitempty"`

	CreatedAt int64 `json:"createdAt" bson:"createdAt"`
	UpdatedAt int64 `json:"updatedAt" bson:"updatedAt"`
}
