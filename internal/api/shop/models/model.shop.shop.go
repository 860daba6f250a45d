// Package models - Shop thuộc domain shop (shops).
// Cửa hàng đăng ký trên sàn, định danh công khai bằng slug.
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Shop lưu thông tin cửa hàng (shops).
// Slug được sinh một lần khi đăng ký và không đổi về sau; trùng slug
// sẽ được gắn hậu tố số (-2, -3, ...). Rating là giá trị dẫn xuất từ
// reviews, làm tròn một chữ số thập phân, được ghi lại mỗi khi có
// review mới. SecretHash là bcrypt hash của mã bí mật, không bao giờ
// trả về qua JSON.
type Shop struct {
	ID primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`

	Name        string  `json:"name" bson:"name"`
	Slug        string  `json:"slug" bson:"slug" index:"unique"`
	Owner       string  `json:"owner" bson:"owner"`
	Address     string  `json:"address" bson:"address"`
	Phone       string  `json:"phone" bson:"phone"`
	Email       string  `json:"email" bson:"email" index:"unique"`
	Category    string  `json:"category,omitempty" bson:"category,omitempty"`
	Description string  `json:"description,omitempty" bson:"description,omitempty"`
	LogoUrl     string  `json:"logoUrl,omitempty" bson:"logoUrl,omitempty"`
	Rating      float64 `json:"rating" bson:"rating"`
	ReviewCount int64   `json:"reviewCount" bson:"reviewCount"`
	SecretHash  string  `json:"-" bson:"secretHash"`

	CreatedAt int64 `json:"createdAt" bson:"createdAt" index:"single:-1"`
	UpdatedAt int64 `json:"updatedAt" bson:"updatedAt"`
}
