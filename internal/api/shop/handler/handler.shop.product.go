// Package shophdl - Handler sản phẩm của cửa hàng và xác thực mã bí mật.
package shophdl

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson/primitive"

	basehdl "local_commerce/internal/api/base/handler"
	shopdto "local_commerce/internal/api/shop/dto"
	shopsvc "local_commerce/internal/api/shop/service"
	"local_commerce/internal/common"
	"local_commerce/internal/global"
	"local_commerce/internal/logger"
)

// ProductHandler xử lý các route sản phẩm trong phạm vi một cửa hàng.
type ProductHandler struct {
	ProductService *shopsvc.ProductService
}

// NewProductHandler tạo ProductHandler mới.
func NewProductHandler() (*ProductHandler, error) {
	productSvc, err := shopsvc.NewProductService()
	if err != nil {
		return nil, fmt.Errorf("tạo ProductService: %w", err)
	}
	return &ProductHandler{ProductService: productSvc}, nil
}

// parseProductID đọc và validate :productId từ URI params.
func parseProductID(c fiber.Ctx) (primitive.ObjectID, error) {
	idStr := c.Params("productId")
	if idStr == "" {
		return primitive.NilObjectID, common.NewError(
			common.ErrCodeValidationInput, "Thiếu productId trong URL params", common.StatusBadRequest, nil)
	}
	id, err := primitive.ObjectIDFromHex(idStr)
	if err != nil {
		return primitive.NilObjectID, common.NewError(
			common.ErrCodeValidationFormat,
			fmt.Sprintf("productId '%s' không đúng định dạng MongoDB ObjectID (phải là chuỗi hex 24 ký tự)", idStr),
			common.StatusBadRequest,
			err,
		)
	}
	return id, nil
}

// HandleListProducts xử lý GET /shops/:identifier/products.
func (h *ProductHandler) HandleListProducts(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		products, err := h.ProductService.ListByShop(c.Context(), c.Params("identifier"))
		basehdl.HandleResponse(c, products, err)
		return nil
	})
}

// HandleAddProduct xử lý POST /shops/:identifier/products.
// Body yêu cầu password (mã bí mật của cửa hàng).
func (h *ProductHandler) HandleAddProduct(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		var input shopdto.ProductCreateInput
		if err := c.Bind().Body(&input); err != nil {
			basehdl.HandleResponse(c, nil, common.NewError(
				common.ErrCodeValidationFormat, "Dữ liệu gửi lên không đúng định dạng JSON", common.StatusBadRequest, err))
			return nil
		}
		if err := global.Validate.Struct(&input); err != nil {
			basehdl.HandleResponse(c, nil, common.NewError(
				common.ErrCodeValidationInput, common.MsgValidationError, common.StatusBadRequest, err))
			return nil
		}

		product, err := h.ProductService.AddProduct(c.Context(), c.Params("identifier"), &input)
		if err != nil && errors.Is(err, common.ErrInvalidSecret) {
			logger.LogSecretCheck(c.Params("identifier"), false, c)
		}
		basehdl.HandleResponse(c, product, err)
		return nil
	})
}

// HandleUpdateProduct xử lý PUT /shops/:identifier/products/:productId.
// Cập nhật một phần: chỉ các trường có mặt trong body được thay đổi.
func (h *ProductHandler) HandleUpdateProduct(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		productId, err := parseProductID(c)
		if err != nil {
			basehdl.HandleResponse(c, nil, err)
			return nil
		}

		var input shopdto.ProductUpdateInput
		if err := c.Bind().Body(&input); err != nil {
			basehdl.HandleResponse(c, nil, common.NewError(
				common.ErrCodeValidationFormat, "Dữ liệu gửi lên không đúng định dạng JSON", common.StatusBadRequest, err))
			return nil
		}
		if err := global.Validate.Struct(&input); err != nil {
			basehdl.HandleResponse(c, nil, common.NewError(
				common.ErrCodeValidationInput, common.MsgValidationError, common.StatusBadRequest, err))
			return nil
		}

		product, err := h.ProductService.UpdateProduct(c.Context(), c.Params("identifier"), productId, &input)
		if err != nil && errors.Is(err, common.ErrInvalidSecret) {
			logger.LogSecretCheck(c.Params("identifier"), false, c)
		}
		basehdl.HandleResponse(c, product, err)
		return nil
	})
}

// HandleDeleteProduct xử lý DELETE /shops/:identifier/products/:productId.
func (h *ProductHandler) HandleDeleteProduct(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		productId, err := parseProductID(c)
		if err != nil {
			basehdl.HandleResponse(c, nil, err)
			return nil
		}

		var input shopdto.ProductDeleteInput
		if err := c.Bind().Body(&input); err != nil {
			basehdl.HandleResponse(c, nil, common.NewError(
				common.ErrCodeValidationFormat, "Dữ liệu gửi lên không đúng định dạng JSON", common.StatusBadRequest, err))
			return nil
		}

		err = h.ProductService.DeleteProduct(c.Context(), c.Params("identifier"), productId, input.Password)
		if err != nil && errors.Is(err, common.ErrInvalidSecret) {
			logger.LogSecretCheck(c.Params("identifier"), false, c)
		}
		basehdl.HandleResponse(c, nil, err)
		return nil
	})
}

// HandleVerifySecret xử lý POST /shops/:identifier/verify.
// Chỉ so khớp mã bí mật, không có side effect.
func (h *ProductHandler) HandleVerifySecret(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		var input shopdto.VerifySecretInput
		if err := c.Bind().Body(&input); err != nil {
			basehdl.HandleResponse(c, nil, common.NewError(
				common.ErrCodeValidationFormat, "Dữ liệu gửi lên không đúng định dạng JSON", common.StatusBadRequest, err))
			return nil
		}

		ok, err := h.ProductService.VerifySecret(c.Context(), c.Params("identifier"), input.Password)
		if err == nil {
			logger.LogSecretCheck(c.Params("identifier"), ok, c)
		}
		basehdl.HandleResponse(c, shopdto.VerifySecretResponse{Ok: ok}, err)
		return nil
	})
}
