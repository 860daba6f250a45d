package utility

import (
	"testing"
)

func TestSlugify_CoBan(t *testing.T) {
	cases := []struct {
		input string
		want  string
	}{
		{"Pho Ha Noi", "pho-ha-noi"},
		{"Joe's Café #1", "joes-caf-1"},
		{"  Banh   Mi  ", "banh-mi"},
		{"UPPER lower 123", "upper-lower-123"},
		{"---", ""},
		{"", ""},
	}
	for _, c := range cases {
		got := Slugify(c.input)
		if got != c.want {
			t.Errorf("Slugify(%q) = %q, muốn %q", c.input, got, c.want)
		}
	}
}

func TestSlugify_KhongTaoGachNgangLienTiep(t *testing.T) {
	got := Slugify("a!!!b###c")
	if got != "a-b-c" {
		t.Errorf("Slugify phải gộp chuỗi ký tự đặc biệt thành một gạch ngang, got %q", got)
	}
}

func TestSlugify_XacDinh(t *testing.T) {
	input := "Quán Cơm Tấm Sài Gòn"
	first := Slugify(input)
	for i := 0; i < 5; i++ {
		if got := Slugify(input); got != first {
			t.Fatalf("Slugify không xác định: lần đầu %q, sau đó %q", first, got)
		}
	}
}
