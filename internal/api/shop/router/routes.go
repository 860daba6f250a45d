// Package router đăng ký các route thuộc domain shop: đăng ký cửa hàng,
// sản phẩm, đánh giá, xác thực mã bí mật và bộ tra cứu chỉ đọc.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	apirouter "local_commerce/internal/api/router"
	shophdl "local_commerce/internal/api/shop/handler"
)

// Register đăng ký tất cả route shop lên v1.
func Register(v1 fiber.Router, r *apirouter.Router) error {
	shopHandler, err := shophdl.NewShopHandler()
	if err != nil {
		return fmt.Errorf("tạo ShopHandler: %w", err)
	}
	productHandler, err := shophdl.NewProductHandler()
	if err != nil {
		return fmt.Errorf("tạo ProductHandler: %w", err)
	}
	reviewHandler, err := shophdl.NewReviewHandler()
	if err != nil {
		return fmt.Errorf("tạo ReviewHandler: %w", err)
	}

	// POST /shops — đăng ký cửa hàng mới (multipart, logo tùy chọn)
	apirouter.RegisterRouteWithMiddleware(v1, "/shops", "POST", "/", nil, shopHandler.HandleRegisterShop)
	// GET /shops — 10 cửa hàng mới nhất
	apirouter.RegisterRouteWithMiddleware(v1, "/shops", "GET", "/", nil, shopHandler.HandleListShops)
	// GET /shops/:identifier — tra cứu theo ObjectID hoặc slug
	apirouter.RegisterRouteWithMiddleware(v1, "/shops", "GET", "/:identifier", nil, shopHandler.HandleGetShop)

	// GET /shops/:identifier/products
	apirouter.RegisterRouteWithMiddleware(v1, "/shops", "GET", "/:identifier/products", nil, productHandler.HandleListProducts)
	// POST /shops/:identifier/products — body cần password
	apirouter.RegisterRouteWithMiddleware(v1, "/shops", "POST", "/:identifier/products", nil, productHandler.HandleAddProduct)
	// PUT /shops/:identifier/products/:productId — cập nhật một phần
	apirouter.RegisterRouteWithMiddleware(v1, "/shops", "PUT", "/:identifier/products/:productId", nil, productHandler.HandleUpdateProduct)
	// DELETE /shops/:identifier/products/:productId
	apirouter.RegisterRouteWithMiddleware(v1, "/shops", "DELETE", "/:identifier/products/:productId", nil, productHandler.HandleDeleteProduct)

	// POST /shops/:identifier/verify — {password} -> {ok}
	apirouter.RegisterRouteWithMiddleware(v1, "/shops", "POST", "/:identifier/verify", nil, productHandler.HandleVerifySecret)

	// GET /shops/:identifier/reviews — {reviews, averageRating, totalReviews}
	apirouter.RegisterRouteWithMiddleware(v1, "/shops", "GET", "/:identifier/reviews", nil, reviewHandler.HandleListReviews)
	// POST /shops/:identifier/reviews
	apirouter.RegisterRouteWithMiddleware(v1, "/shops", "POST", "/:identifier/reviews", nil, reviewHandler.HandleCreateReview)

	// Bộ tra cứu generic chỉ đọc cho vận hành
	shopDataHandler, err := shophdl.NewShopDataHandler()
	if err != nil {
		return fmt.Errorf("tạo ShopDataHandler: %w", err)
	}
	productDataHandler, err := shophdl.NewProductDataHandler()
	if err != nil {
		return fmt.Errorf("tạo ProductDataHandler: %w", err)
	}
	reviewDataHandler, err := shophdl.NewReviewDataHandler()
	if err != nil {
		return fmt.Errorf("tạo ReviewDataHandler: %w", err)
	}
	r.RegisterLookupRoutes(v1, "/shops-data", shopDataHandler, apirouter.ReadOnlyConfig)
	r.RegisterLookupRoutes(v1, "/products-data", productDataHandler, apirouter.ReadOnlyConfig)
	r.RegisterLookupRoutes(v1, "/reviews-data", reviewDataHandler, apirouter.ReadOnlyConfig)

	return nil
}
