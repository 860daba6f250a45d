package router

import (
	"github.com/gofiber/fiber/v3"
)

// ============================================================================
// LƯU Ý: FIBER V3 - CÁCH ĐĂNG KÝ MIDDLEWARE CHO ROUTE
// ============================================================================
//
// Fiber v3 không gọi middleware khi truyền trực tiếp trong route:
//
//    router.Get("/path", middleware, handler)   // middleware KHÔNG được gọi
//
// Cách đúng là tạo group và đăng ký middleware qua .Use():
//
//    RegisterRouteWithMiddleware(router, "/prefix", "GET", "/path", []fiber.Handler{mw}, handler)
//
// Mọi route mới trong package này phải dùng RegisterRouteWithMiddleware
// nếu cần middleware riêng.
// ============================================================================

// LookupHandler định nghĩa interface cho các handler tra cứu generic.
// Bộ route này chỉ phục vụ đọc; mọi thao tác ghi đi qua handler nghiệp vụ
// của từng domain (nơi mã bí mật cửa hàng được kiểm tra).
type LookupHandler interface {
	Find(c fiber.Ctx) error
	FindOne(c fiber.Ctx) error
	FindOneById(c fiber.Ctx) error
	FindManyByIds(c fiber.Ctx) error
	FindWithPagination(c fiber.Ctx) error
	CountDocuments(c fiber.Ctx) error
	Distinct(c fiber.Ctx) error
	DocumentExists(c fiber.Ctx) error
}

// Router quản lý việc định tuyến cho API
type Router struct {
	app *fiber.App
}

// LookupConfig cấu hình các operation tra cứu được phép cho mỗi collection
type LookupConfig struct {
	Find     bool // Find All
	FindOne  bool // Find One
	FindById bool // Find By Id
	FindIds  bool // Find Many By Ids
	Paginate bool // Find With Pagination
	Count    bool // Count Documents
	Distinct bool // Distinct
	Exists   bool // Document Exists
}

// ReadOnlyConfig bật toàn bộ các operation tra cứu. Các domain dùng chung.
var ReadOnlyConfig = LookupConfig{
	Find: true, FindOne: true, FindById: true,
	FindIds: true, Paginate: true,
	Count: true, Distinct: true, Exists: true,
}

// RoutePrefix chứa các prefix cơ bản cho API
type RoutePrefix struct {
	Base string // Prefix cơ bản (/api)
	V1   string // Prefix cho API version 1 (/api/v1)
}

// NewRoutePrefix tạo mới một instance của RoutePrefix với các giá trị mặc định
func NewRoutePrefix() RoutePrefix {
	base := "/api"
	return RoutePrefix{
		Base: base,
		V1:   base + "/v1",
	}
}

// NewRouter tạo mới một instance của Router
func NewRouter(app *fiber.App) *Router {
	return &Router{
		app: app,
	}
}

// RegisterRouteWithMiddleware đăng ký route với middleware sử dụng .Use() method
// (cách đúng theo Fiber v3, xem comment ở đầu file). Dùng từ domain router.
func RegisterRouteWithMiddleware(router fiber.Router, prefix string, method string, path string, middlewares []fiber.Handler, handler fiber.Handler) {
	// Tạo group với prefix, middleware sẽ chỉ áp dụng cho routes trong group này
	routeGroup := router.Group(prefix)
	for _, mw := range middlewares {
		routeGroup.Use(mw)
	}

	// Đăng ký route với path tương đối (không có prefix vì đã có trong group)
	switch method {
	case "GET":
		routeGroup.Get(path, handler)
	case "POST":
		routeGroup.Post(path, handler)
	case "PUT":
		routeGroup.Put(path, handler)
	case "DELETE":
		routeGroup.Delete(path, handler)
	}
}

// RegisterLookupRoutes đăng ký các route tra cứu cho một collection. Dùng từ domain router.
func (r *Router) RegisterLookupRoutes(router fiber.Router, prefix string, h LookupHandler, config LookupConfig) {
	if config.Find {
		RegisterRouteWithMiddleware(router, prefix, "GET", "/find", nil, h.Find)
	}
	if config.FindOne {
		RegisterRouteWithMiddleware(router, prefix, "GET", "/find-one", nil, h.FindOne)
	}
	if config.FindById {
		RegisterRouteWithMiddleware(router, prefix, "GET", "/find-by-id/:id", nil, h.FindOneById)
	}
	if config.FindIds {
		RegisterRouteWithMiddleware(router, prefix, "POST", "/find-by-ids", nil, h.FindManyByIds)
	}
	if config.Paginate {
		RegisterRouteWithMiddleware(router, prefix, "GET", "/find-with-pagination", nil, h.FindWithPagination)
	}
	if config.Count {
		RegisterRouteWithMiddleware(router, prefix, "GET", "/count", nil, h.CountDocuments)
	}
	if config.Distinct {
		RegisterRouteWithMiddleware(router, prefix, "GET", "/distinct/:field", nil, h.Distinct)
	}
	if config.Exists {
		RegisterRouteWithMiddleware(router, prefix, "GET", "/exists", nil, h.DocumentExists)
	}
}

// RegisterFunc là hàm đăng ký route của một domain (do domain/router export).
type RegisterFunc func(v1 fiber.Router, r *Router) error

// SetupRoutes thiết lập tất cả các route cho ứng dụng.
// Caller truyền lần lượt Register của từng domain để tránh import cycle.
func SetupRoutes(app *fiber.App, regs ...RegisterFunc) error {
	prefix := NewRoutePrefix()
	v1 := app.Group(prefix.V1)
	r := NewRouter(app)
	for _, reg := range regs {
		if err := reg(v1, r); err != nil {
			return err
		}
	}
	return nil
}
