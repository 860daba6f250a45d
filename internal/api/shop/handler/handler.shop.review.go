// Package shophdl - Handler đánh giá cửa hàng.
package shophdl

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	basehdl "local_commerce/internal/api/base/handler"
	shopdto "local_commerce/internal/api/shop/dto"
	shopsvc "local_commerce/internal/api/shop/service"
	"local_commerce/internal/common"
	"local_commerce/internal/global"
)

// ReviewHandler xử lý các route đánh giá công khai.
type ReviewHandler struct {
	ReviewService *shopsvc.ReviewService
}

// NewReviewHandler tạo ReviewHandler mới.
func NewReviewHandler() (*ReviewHandler, error) {
	reviewSvc, err := shopsvc.NewReviewService()
	if err != nil {
		return nil, fmt.Errorf("tạo ReviewService: %w", err)
	}
	return &ReviewHandler{ReviewService: reviewSvc}, nil
}

// HandleListReviews xử lý GET /shops/:identifier/reviews.
func (h *ReviewHandler) HandleListReviews(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		result, err := h.ReviewService.ListWithStats(c.Context(), c.Params("identifier"))
		basehdl.HandleResponse(c, result, err)
		return nil
	})
}

// HandleCreateReview xử lý POST /shops/:identifier/reviews.
// Trả về đánh giá vừa tạo kèm rating tổng hợp mới của cửa hàng.
func (h *ReviewHandler) HandleCreateReview(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		var input shopdto.ReviewCreateInput
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

		result, err := h.ReviewService.CreateReview(c.Context(), c.Params("identifier"), &input)
		basehdl.HandleResponse(c, result, err)
		return nil
	})
}
