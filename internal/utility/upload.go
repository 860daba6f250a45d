package utility

import (
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

// SanitizeFilename làm sạch phần tên file (không gồm phần mở rộng):
// chỉ giữ lại chữ cái, chữ số, gạch dưới và gạch ngang. Các ký tự khác
// (kể cả dấu phân cách đường dẫn và "..") bị loại bỏ hoàn toàn.
func SanitizeFilename(base string) string {
	var b strings.Builder
	b.Grow(len(base))
	for _, r := range base {
		switch {
		case r >= 'a' && r <= 'z',
			r >= 'A' && r <= 'Z',
			r >= '0' && r <= '9',
			r == '_', r == '-':
			b.WriteRune(r)
		}
	}
	return b.String()
}

// BuildUploadFilename dựng tên file lưu trên đĩa cho một file upload.
// Tên gốc được làm sạch, nối thêm timestamp UnixMilli để tránh trùng,
// giữ nguyên phần mở rộng (cũng được làm sạch). prefix dùng để phân loại
// file theo nghiệp vụ (ví dụ "offer-" cho ảnh ưu đãi), có thể rỗng.
func BuildUploadFilename(originalName string, prefix string, now time.Time) string {
	ext := filepath.Ext(originalName)
	base := strings.TrimSuffix(filepath.Base(originalName), ext)

	base = SanitizeFilename(base)
	ext = "." + SanitizeFilename(strings.TrimPrefix(ext, "."))
	if ext == "." {
		ext = ""
	}

	return prefix + base + "-" + strconv.FormatInt(UnixMilli(now), 10) + ext
}
