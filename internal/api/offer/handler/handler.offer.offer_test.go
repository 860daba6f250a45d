package offerhdl

import (
	"testing"
	"time"
)

func TestParseDateMilli_UnixMilli(t *testing.T) {
	if got := parseDateMilli("1700000000000"); got != 1700000000000 {
		t.Errorf("parseDateMilli chuỗi số = %d, muốn 1700000000000", got)
	}
}

func TestParseDateMilli_RFC3339(t *testing.T) {
	want := time.Date(2026, 8, 31, 10, 0, 0, 0, time.UTC).UnixMilli()
	if got := parseDateMilli("2026-08-31T10:00:00Z"); got != want {
		t.Errorf("parseDateMilli RFC3339 = %d, muốn %d", got, want)
	}
}

func TestParseDateMilli_NgayDonGian(t *testing.T) {
	want := time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC).UnixMilli()
	if got := parseDateMilli("2026-08-31"); got != want {
		t.Errorf("parseDateMilli YYYY-MM-DD = %d, muốn %d", got, want)
	}
}

func TestParseDateMilli_KhongHopLe(t *testing.T) {
	if got := parseDateMilli(""); got != 0 {
		t.Errorf("parseDateMilli chuỗi rỗng = %d, muốn 0", got)
	}
	if got := parseDateMilli("hom-qua"); got != 0 {
		t.Errorf("parseDateMilli chuỗi bất kỳ = %d, muốn 0", got)
	}
}
