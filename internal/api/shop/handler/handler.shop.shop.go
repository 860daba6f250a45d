// Package shophdl - Handler đăng ký và tra cứu cửa hàng.
package shophdl

import (
	"encoding/json"
	"fmt"
	"mime/multipart"
	"path/filepath"
	"time"

	"github.com/gofiber/fiber/v3"

	basehdl "local_commerce/internal/api/base/handler"
	shopdto "local_commerce/internal/api/shop/dto"
	shopsvc "local_commerce/internal/api/shop/service"
	"local_commerce/internal/common"
	"local_commerce/internal/global"
	"local_commerce/internal/logger"
	"local_commerce/internal/utility"
)

// ShopHandler xử lý các route cửa hàng công khai.
type ShopHandler struct {
	ShopService    *shopsvc.ShopService
	ProductService *shopsvc.ProductService
}

// NewShopHandler tạo ShopHandler mới.
func NewShopHandler() (*ShopHandler, error) {
	shopSvc, err := shopsvc.NewShopService()
	if err != nil {
		return nil, fmt.Errorf("tạo ShopService: %w", err)
	}
	productSvc, err := shopsvc.NewProductService()
	if err != nil {
		return nil, fmt.Errorf("tạo ProductService: %w", err)
	}
	return &ShopHandler{ShopService: shopSvc, ProductService: productSvc}, nil
}

// saveUploadedFile lưu file multipart vào thư mục upload với tên đã làm
// sạch, trả về đường dẫn công khai /uploads/<filename>.
func saveUploadedFile(c fiber.Ctx, file *multipart.FileHeader, prefix string) (string, error) {
	filename := utility.BuildUploadFilename(file.Filename, prefix, time.Now())
	dest := filepath.Join(global.MongoDB_ServerConfig.UploadDir, filename)
	if err := c.SaveFile(file, dest); err != nil {
		return "", common.NewError(common.ErrCodeInternalServer, "Lỗi lưu file upload", common.StatusInternalServerError, err)
	}
	return "/uploads/" + filename, nil
}

// HandleRegisterShop xử lý POST /shops (multipart form).
// Form fields: name, owner, address, phone, email, password (bắt buộc);
// category, description, products (chuỗi JSON) tùy chọn; file logo tùy chọn.
func (h *ShopHandler) HandleRegisterShop(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		input := shopdto.ShopRegisterInput{
			Name:        c.FormValue("name"),
			Owner:       c.FormValue("owner"),
			Address:     c.FormValue("address"),
			Phone:       c.FormValue("phone"),
			Email:       c.FormValue("email"),
			Password:    c.FormValue("password"),
			Category:    c.FormValue("category"),
			Description: c.FormValue("description"),
		}

		if input.Name == "" || input.Owner == "" || input.Address == "" ||
			input.Phone == "" || input.Email == "" || input.Password == "" {
			basehdl.HandleResponse(c, nil, common.NewError(
				common.ErrCodeValidationInput,
				"Vui lòng điền đầy đủ thông tin bắt buộc (name, owner, address, phone, email, password)",
				common.StatusBadRequest,
				nil,
			))
			return nil
		}

		// Mảng sản phẩm đến dưới dạng chuỗi JSON; chuỗi hỏng coi như rỗng
		var seeds []shopdto.ProductSeedInput
		if productsStr := c.FormValue("products"); productsStr != "" {
			if err := json.Unmarshal([]byte(productsStr), &seeds); err != nil {
				logger.GetAppLogger().WithFields(map[string]interface{}{
					"error": err.Error(),
				}).Warn("Trường products không phải JSON hợp lệ, bỏ qua danh sách sản phẩm")
				seeds = nil
			}
		}

		// Logo tùy chọn
		logoUrl := ""
		if file, err := c.FormFile("logo"); err == nil && file != nil {
			logoUrl, err = saveUploadedFile(c, file, "")
			if err != nil {
				basehdl.HandleResponse(c, nil, err)
				return nil
			}
		}

		shop, err := h.ShopService.RegisterShop(c.Context(), &input, logoUrl)
		if err != nil {
			basehdl.HandleResponse(c, nil, err)
			return nil
		}

		saved := h.ProductService.SeedProducts(c.Context(), shop.ID, seeds)

		logger.LogAction("shop_register", c, map[string]interface{}{
			"shopId": shop.ID.Hex(),
			"slug":   shop.Slug,
		})

		return basehdl.JSONResponse(c, common.StatusCreated, fiber.Map{
			"code":    common.StatusCreated,
			"message": "Đăng ký cửa hàng thành công",
			"data": shopdto.ShopRegisterResponse{
				Shop:              shop,
				ProductsSaved:     saved,
				ProductsRequested: len(seeds),
			},
			"status": "success",
		})
	})
}

// HandleListShops xử lý GET /shops: 10 cửa hàng mới nhất.
func (h *ShopHandler) HandleListShops(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		shops, err := h.ShopService.ListRecent(c.Context(), 10)
		basehdl.HandleResponse(c, shops, err)
		return nil
	})
}

// HandleGetShop xử lý GET /shops/:identifier (ObjectID hex hoặc slug).
func (h *ShopHandler) HandleGetShop(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		shop, err := h.ShopService.ResolveIdentifier(c.Context(), c.Params("identifier"))
		basehdl.HandleResponse(c, shop, err)
		return nil
	})
}
