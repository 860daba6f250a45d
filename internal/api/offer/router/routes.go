// Package router đăng ký các route thuộc domain offer: liệt kê ưu đãi
// còn hiệu lực, tạo ưu đãi, quét hết hạn và bộ tra cứu chỉ đọc.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	offerhdl "local_commerce/internal/api/offer/handler"
	apirouter "local_commerce/internal/api/router"
)

// Register đăng ký tất cả route offer lên v1.
func Register(v1 fiber.Router, r *apirouter.Router) error {
	offerHandler, err := offerhdl.NewOfferHandler()
	if err != nil {
		return fmt.Errorf("tạo OfferHandler: %w", err)
	}

	// GET /offers — ưu đãi còn hiệu lực kèm shopName
	apirouter.RegisterRouteWithMiddleware(v1, "/offers", "GET", "/", nil, offerHandler.HandleListOffers)
	// POST /offers — multipart, ảnh tùy chọn
	apirouter.RegisterRouteWithMiddleware(v1, "/offers", "POST", "/", nil, offerHandler.HandleCreateOffer)
	// DELETE /offers/expired — quét thủ công
	apirouter.RegisterRouteWithMiddleware(v1, "/offers", "DELETE", "/expired", nil, offerHandler.HandleSweepExpired)

	offerDataHandler, err := offerhdl.NewOfferDataHandler()
	if err != nil {
		return fmt.Errorf("tạo OfferDataHandler: %w", err)
	}
	r.RegisterLookupRoutes(v1, "/offers-data", offerDataHandler, apirouter.ReadOnlyConfig)

	return nil
}
