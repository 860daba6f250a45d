// Package dto - DTO cho domain offer.
package dto

import (
	offermodels "local_commerce/internal/api/offer/models"
)

// OfferCreateInput dữ liệu tạo ưu đãi mới (multipart form).
// ShopId nhận ObjectID hex hoặc slug của cửa hàng.
type OfferCreateInput struct {
	ShopId      string `json:"shopId" validate:"required"`
	Title       string `json:"title" validate:"required" maxLength:"200"`
	Description string `json:"description,omitempty" validate:"omitempty,no_xss"`
	StartDate   int64  `json:"startDate" validate:"required"`
	EndDate     int64  `json:"endDate" validate:"required"`
	Discount    string `json:"discount,omitempty" maxLength:"100"`
}

// OfferResponse một ưu đãi đang hiệu lực kèm tên cửa hàng và URL ảnh
// tuyệt đối (ghép từ PUBLIC_BASE_URL).
type OfferResponse struct {
	offermodels.Offer
	ShopName string `json:"shopName"`
}

// SweepResponse kết quả quét ưu đãi hết hạn.
type SweepResponse struct {
	DeletedCount int64 `json:"deletedCount"`
}
