// Package offerhdl - Handler ưu đãi của cửa hàng.
package offerhdl

import (
	"fmt"
	"mime/multipart"
	"path/filepath"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v3"

	basehdl "local_commerce/internal/api/base/handler"
	offerdto "local_commerce/internal/api/offer/dto"
	offersvc "local_commerce/internal/api/offer/service"
	"local_commerce/internal/common"
	"local_commerce/internal/global"
	"local_commerce/internal/logger"
	"local_commerce/internal/utility"
)

// OfferHandler xử lý các route ưu đãi công khai.
type OfferHandler struct {
	OfferService *offersvc.OfferService
}

// NewOfferHandler tạo OfferHandler mới.
func NewOfferHandler() (*OfferHandler, error) {
	offerSvc, err := offersvc.NewOfferService()
	if err != nil {
		return nil, fmt.Errorf("tạo OfferService: %w", err)
	}
	return &OfferHandler{OfferService: offerSvc}, nil
}

// parseDateMilli đọc một mốc thời gian từ form: chấp nhận UnixMilli dạng
// số, RFC3339 hoặc YYYY-MM-DD. Trả về 0 nếu không parse được.
func parseDateMilli(value string) int64 {
	if value == "" {
		return 0
	}
	if millis, err := strconv.ParseInt(value, 10, 64); err == nil {
		return millis
	}
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return utility.UnixMilli(t)
	}
	if t, err := time.Parse("2006-01-02", value); err == nil {
		return utility.UnixMilli(t)
	}
	return 0
}

// saveOfferImage lưu ảnh ưu đãi vào thư mục upload với prefix "offer-",
// trả về đường dẫn công khai /uploads/<filename>.
func saveOfferImage(c fiber.Ctx, file *multipart.FileHeader) (string, error) {
	filename := utility.BuildUploadFilename(file.Filename, "offer-", time.Now())
	dest := filepath.Join(global.MongoDB_ServerConfig.UploadDir, filename)
	if err := c.SaveFile(file, dest); err != nil {
		return "", common.NewError(common.ErrCodeInternalServer, "Lỗi lưu ảnh ưu đãi", common.StatusInternalServerError, err)
	}
	return "/uploads/" + filename, nil
}

// HandleListOffers xử lý GET /offers: chỉ ưu đãi còn hiệu lực, kèm
// shopName và URL ảnh tuyệt đối.
func (h *OfferHandler) HandleListOffers(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		offers, err := h.OfferService.ListActive(c.Context())
		basehdl.HandleResponse(c, offers, err)
		return nil
	})
}

// HandleCreateOffer xử lý POST /offers (multipart form).
// Form fields: shopId (hex hoặc slug), title, startDate, endDate bắt buộc;
// description, discount tùy chọn; file image tùy chọn.
func (h *OfferHandler) HandleCreateOffer(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		input := offerdto.OfferCreateInput{
			ShopId:      c.FormValue("shopId"),
			Title:       c.FormValue("title"),
			Description: c.FormValue("description"),
			StartDate:   parseDateMilli(c.FormValue("startDate")),
			EndDate:     parseDateMilli(c.FormValue("endDate")),
			Discount:    c.FormValue("discount"),
		}

		if input.ShopId == "" || input.Title == "" {
			basehdl.HandleResponse(c, nil, common.NewError(
				common.ErrCodeValidationInput,
				"Vui lòng điền đầy đủ thông tin bắt buộc (shopId, title, startDate, endDate)",
				common.StatusBadRequest,
				nil,
			))
			return nil
		}
		if err := offersvc.ValidateOfferDates(input.StartDate, input.EndDate); err != nil {
			basehdl.HandleResponse(c, nil, err)
			return nil
		}

		imageUrl := ""
		if file, err := c.FormFile("image"); err == nil && file != nil {
			imageUrl, err = saveOfferImage(c, file)
			if err != nil {
				basehdl.HandleResponse(c, nil, err)
				return nil
			}
		}

		offer, err := h.OfferService.CreateOffer(c.Context(), &input, imageUrl)
		if err != nil {
			basehdl.HandleResponse(c, nil, err)
			return nil
		}

		logger.LogAction("offer_create", c, map[string]interface{}{
			"offerId": offer.ID.Hex(),
			"shopId":  offer.ShopId.Hex(),
		})

		return basehdl.JSONResponse(c, common.StatusCreated, fiber.Map{
			"code":    common.StatusCreated,
			"message": "Tạo ưu đãi thành công",
			"data":    offer,
			"status":  "success",
		})
	})
}

// HandleSweepExpired xử lý DELETE /offers/expired: quét thủ công, trả về
// số ưu đãi đã xóa.
func (h *OfferHandler) HandleSweepExpired(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		count, err := h.OfferService.DeleteExpired(c.Context())
		if err != nil {
			basehdl.HandleResponse(c, nil, err)
			return nil
		}
		basehdl.HandleResponse(c, offerdto.SweepResponse{DeletedCount: count}, nil)
		return nil
	})
}
