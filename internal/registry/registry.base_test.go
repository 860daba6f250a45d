package registry

import (
	"testing"
)

func TestRegistry_DangKyVaTraCuu(t *testing.T) {
	r := NewRegistry[int]()

	isNew, err := r.Register("counter", 42)
	if err != nil {
		t.Fatalf("Register trả về lỗi không mong muốn: %v", err)
	}
	if !isNew {
		t.Errorf("Đăng ký tên mới phải trả về isNew = true")
	}

	value, exists := r.Get("counter")
	if !exists {
		t.Fatalf("Get phải tìm thấy item vừa đăng ký")
	}
	if value != 42 {
		t.Errorf("Giá trị không đúng: muốn 42, nhận được %d", value)
	}
}

func TestRegistry_GhiDeTenDaTonTai(t *testing.T) {
	r := NewRegistry[string]()

	if _, err := r.Register("db", "first"); err != nil {
		t.Fatalf("Register trả về lỗi không mong muốn: %v", err)
	}
	isNew, err := r.Register("db", "second")
	if err != nil {
		t.Fatalf("Register trả về lỗi không mong muốn: %v", err)
	}
	if isNew {
		t.Errorf("Ghi đè tên đã tồn tại phải trả về isNew = false")
	}

	value, _ := r.Get("db")
	if value != "second" {
		t.Errorf("Register phải ghi đè giá trị cũ: muốn %q, nhận được %q", "second", value)
	}
}

func TestRegistry_TenRongVaTenChuaDangKy(t *testing.T) {
	r := NewRegistry[int]()

	if _, err := r.Register("", 1); err == nil {
		t.Errorf("Register với tên rỗng phải trả về lỗi")
	}

	value, exists := r.Get("khong-ton-tai")
	if exists {
		t.Errorf("Get với tên chưa đăng ký phải trả về exists = false")
	}
	if value != 0 {
		t.Errorf("Item phải là zero value khi không tìm thấy, nhận được %d", value)
	}
}
