package utility

import (
	"strings"
)

// Slugify chuyển tên hiển thị thành slug dùng trong URL.
// Quy tắc: chữ thường, bỏ dấu nháy đơn, mọi chuỗi ký tự không phải
// chữ cái/chữ số ASCII được thay bằng một dấu gạch ngang, cắt gạch ngang
// ở hai đầu. Ví dụ: "Joe's Café #1" -> "joes-caf-1".
// Hàm là thuần túy: cùng input luôn cho cùng output.
func Slugify(name string) string {
	s := strings.ToLower(name)

	// Dấu nháy đơn bị bỏ hẳn, không tạo gạch ngang ("Joe's" -> "joes")
	s = strings.ReplaceAll(s, "'", "")
	s = strings.ReplaceAll(s, "’", "")

	var b strings.Builder
	b.Grow(len(s))
	lastHyphen := false
	for _, r := range s {
		isAlnum := (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9')
		if isAlnum {
			b.WriteRune(r)
			lastHyphen = false
			continue
		}
		if !lastHyphen {
			b.WriteByte('-')
			lastHyphen = true
		}
	}

	return strings.Trim(b.String(), "-")
}
