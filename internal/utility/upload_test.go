package utility

import (
	"strings"
	"testing"
	"time"
)

func TestSanitizeFilename_LoaiKyTuNguyHiem(t *testing.T) {
	cases := []struct {
		input string
		want  string
	}{
		{"logo", "logo"},
		{"my logo", "mylogo"},
		{"../../etc/passwd", "etcpasswd"},
		{"a/b\\c", "abc"},
		{"ten_file-01", "ten_file-01"},
		{"", ""},
	}
	for _, c := range cases {
		got := SanitizeFilename(c.input)
		if got != c.want {
			t.Errorf("SanitizeFilename(%q) = %q, muốn %q", c.input, got, c.want)
		}
	}
}

func TestBuildUploadFilename_CoPrefixVaTimestamp(t *testing.T) {
	now := time.UnixMilli(1700000000000)
	got := BuildUploadFilename("banner.png", "offer-", now)

	if !strings.HasPrefix(got, "offer-banner-") {
		t.Errorf("tên file phải bắt đầu bằng prefix và tên đã làm sạch, got %q", got)
	}
	if !strings.Contains(got, "1700000000000") {
		t.Errorf("tên file phải chứa timestamp UnixMilli, got %q", got)
	}
	if !strings.HasSuffix(got, ".png") {
		t.Errorf("tên file phải giữ phần mở rộng, got %q", got)
	}
}

func TestBuildUploadFilename_ChanPathTraversal(t *testing.T) {
	now := time.UnixMilli(1700000000000)
	got := BuildUploadFilename("../../evil.sh", "", now)

	if strings.Contains(got, "..") || strings.Contains(got, "/") || strings.Contains(got, "\\") {
		t.Errorf("tên file không được chứa ký tự đường dẫn, got %q", got)
	}
	if !strings.HasSuffix(got, ".sh") {
		t.Errorf("phần mở rộng vẫn phải được giữ lại sau khi làm sạch, got %q", got)
	}
}

func TestBuildUploadFilename_KhongCoPhanMoRong(t *testing.T) {
	now := time.UnixMilli(1700000000000)
	got := BuildUploadFilename("logo", "", now)
	if got != "logo-1700000000000" {
		t.Errorf("BuildUploadFilename không phần mở rộng = %q, muốn %q", got, "logo-1700000000000")
	}
}
