package global

import (
	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/mongo"

	"local_commerce/config"
	"local_commerce/internal/registry"
)

// InitColNames khởi tạo tên các collection trong database
type InitColNames struct {
	Shops    string
	Products string
	Reviews  string
	Offers   string
}

// MongoDB_ColNames chứa tên tất cả collection mà server sử dụng
var MongoDB_ColNames = InitColNames{
	Shops:    "shops",
	Products: "products",
	Reviews:  "reviews",
	Offers:   "offers",
}

var (
	// Validate là instance validator dùng chung toàn server
	Validate *validator.Validate

	// MongoDB_Session là client MongoDB dùng chung
	MongoDB_Session *mongo.Client

	// MongoDB_ServerConfig là cấu hình server đã được nạp
	MongoDB_ServerConfig *config.Configuration

	// RegistryCollections quản lý các *mongo.Collection theo tên
	RegistryCollections = registry.NewRegistry[*mongo.Collection]()
)
