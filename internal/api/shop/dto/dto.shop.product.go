// Package dto - DTO cho sản phẩm của cửa hàng.
package dto

// ProductCreateInput dữ liệu thêm sản phẩm. Password là mã bí mật của
// cửa hàng, bắt buộc cho mọi thao tác ghi trên catalog.
type ProductCreateInput struct {
	Password    string  `json:"password" validate:"required"`
	Name        string  `json:"name" validate:"required" maxLength:"200"`
	Price       float64 `json:"price" validate:"gte=0"`
	Description string  `json:"description,omitempty" validate:"omitempty,no_xss"`
}

// ProductUpdateInput dữ liệu cập nhật sản phẩm. Chỉ các trường khác nil
// được ghi đè, các trường còn lại giữ nguyên.
type ProductUpdateInput struct {
	Password    string   `json:"password" validate:"required"`
	Name        *string  `json:"name,omitempty"`
	Price       *float64 `json:"price,omitempty"`
	Description *string  `json:"description,omitempty"`
}

// ProductDeleteInput dữ liệu xóa sản phẩm (chỉ cần mã bí mật).
type ProductDeleteInput struct {
	Password string `json:"password" validate:"required"`
}
