// Package dto - DTO cho đánh giá cửa hàng.
package dto

import (
	shopmodels "local_commerce/internal/api/shop/models"
)

// ReviewCreateInput dữ liệu tạo đánh giá mới.
type ReviewCreateInput struct {
	CustomerName string `json:"customerName" validate:"required" maxLength:"200"`
	Rating       int    `json:"rating" validate:"required,min=1,max=5"`
	Comment      string `json:"comment,omitempty" validate:"omitempty,no_xss"`
}

// ReviewCreateResponse đánh giá vừa tạo kèm rating tổng hợp mới của cửa hàng.
type ReviewCreateResponse struct {
	Review      *shopmodels.Review `json:"review"`
	Rating      float64            `json:"rating"`
	ReviewCount int64              `json:"reviewCount"`
}

// ReviewListResponse danh sách đánh giá kèm thống kê.
type ReviewListResponse struct {
	Reviews       []shopmodels.Review `json:"reviews"`
	AverageRating float64             `json:"averageRating"`
	TotalReviews  int64               `json:"totalReviews"`
}
