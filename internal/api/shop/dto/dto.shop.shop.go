// Package dto - DTO cho domain shop (đăng ký cửa hàng, xác thực mã bí mật).
package dto

import (
	shopmodels "local_commerce/internal/api/shop/models"
)

// ShopRegisterInput dữ liệu đăng ký cửa hàng mới (multipart form).
// Password là mã bí mật thô, chỉ dùng để sinh secretHash, không lưu trực tiếp.
type ShopRegisterInput struct {
	Name        string `json:"name" validate:"required" maxLength:"200"`
	Owner       string `json:"owner" validate:"required" maxLength:"200"`
	Address     string `json:"address" validate:"required" maxLength:"500"`
	Phone       string `json:"phone" validate:"required" maxLength:"30"`
	Email       string `json:"email" validate:"required,email"`
	Password    string `json:"password" validate:"required"`
	Category    string `json:"category,omitempty" validate:"omitempty,no_xss"`
	Description string `json:"description,omitempty" validate:"omitempty,no_xss"`
}

// ProductSeedInput một sản phẩm trong mảng products gửi kèm lúc đăng ký.
// Mảng đến dưới dạng chuỗi JSON trong form; chuỗi hỏng được coi là mảng rỗng.
type ProductSeedInput struct {
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Description string  `json:"description,omitempty"`
}

// ShopRegisterResponse kết quả đăng ký: cửa hàng vừa tạo và số sản phẩm
// lưu được so với số gửi lên (lỗi từng sản phẩm không rollback cửa hàng).
type ShopRegisterResponse struct {
	Shop              *shopmodels.Shop `json:"shop"`
	ProductsSaved     int              `json:"productsSaved"`
	ProductsRequested int              `json:"productsRequested"`
}

// VerifySecretInput dữ liệu xác thực mã bí mật của cửa hàng.
type VerifySecretInput struct {
	Password string `json:"password" validate:"required"`
}

// VerifySecretResponse kết quả xác thực.
type VerifySecretResponse struct {
	Ok bool `json:"ok"`
}
