package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/caarlos0/env"
	"github.com/joho/godotenv"
)

// Configuration chứa toàn bộ cấu hình của server, được nạp từ file env
// theo biến môi trường GO_ENV (mặc định: development).
type Configuration struct {
	Address string `env:"ADDRESS" envDefault:":8080"`

	MongoDB_ConnectionURI string `env:"MONGODB_CONNECTION_URI,required"`
	MongoDB_DBName        string `env:"MONGODB_DBNAME,required"`

	CORS_Origins          string `env:"CORS_ORIGINS" envDefault:"*"`
	CORS_AllowCredentials bool   `env:"CORS_ALLOW_CREDENTIALS" envDefault:"false"`

	RateLimit_Enabled bool `env:"RATE_LIMIT_ENABLED" envDefault:"true"`
	RateLimit_Max     int  `env:"RATE_LIMIT_MAX" envDefault:"100"`
	RateLimit_Window  int  `env:"RATE_LIMIT_WINDOW_SECONDS" envDefault:"60"`

	// Thư mục lưu file upload (logo cửa hàng, ảnh ưu đãi) và URL gốc
	// dùng để dựng đường dẫn tuyệt đối khi trả về cho client.
	UploadDir     string `env:"UPLOAD_DIR" envDefault:"uploads"`
	PublicBaseURL string `env:"PUBLIC_BASE_URL" envDefault:"http://localhost:8080"`

	// Chu kỳ quét xóa ưu đãi hết hạn (phút). 0 sẽ dùng mặc định 60 phút.
	OfferSweepIntervalMinutes int `env:"OFFER_SWEEP_INTERVAL_MINUTES" envDefault:"60"`

	EnableTLS   bool   `env:"ENABLE_TLS" envDefault:"false"`
	TLSCertFile string `env:"TLS_CERT_FILE" envDefault:""`
	TLSKeyFile  string `env:"TLS_KEY_FILE" envDefault:""`
}

// getEnvPath tìm đường dẫn tới file env theo GO_ENV.
// Đi ngược từ thư mục hiện tại lên trên cho tới khi gặp thư mục config/env,
// để binary chạy được từ cả gốc repo lẫn cmd/server.
func getEnvPath() (string, error) {
	environment := os.Getenv("GO_ENV")
	if environment == "" {
		environment = "development"
	}

	dir, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("không lấy được thư mục hiện tại: %w", err)
	}

	for i := 0; i < 6; i++ {
		envDir := filepath.Join(dir, "config", "env")
		if info, err := os.Stat(envDir); err == nil && info.IsDir() {
			return filepath.Join(envDir, environment+".env"), nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return "", fmt.Errorf("không tìm thấy thư mục config/env từ thư mục làm việc")
}

// NewConfig nạp file env và parse vào Configuration.
// Trả về nil nếu thiếu biến bắt buộc hoặc không đọc được file.
func NewConfig() *Configuration {
	envPath, err := getEnvPath()
	if err != nil {
		// Sử dụng fmt.Printf vì logger có thể chưa được init ở đây
		fmt.Printf("Cảnh báo: %v, sẽ dùng biến môi trường hệ thống\n", err)
	} else {
		if err := godotenv.Load(envPath); err != nil {
			fmt.Printf("Cảnh báo: không nạp được file env %s: %v\n", envPath, err)
		}
	}

	cfg := Configuration{}
	if err := env.Parse(&cfg); err != nil {
		fmt.Printf("Lỗi parse cấu hình từ biến môi trường: %v\n", err)
		return nil
	}

	return &cfg
}
