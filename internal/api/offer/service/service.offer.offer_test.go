// Package offersvc - Test thời hạn ưu đãi, filter hết hạn và response ưu đãi.
package offersvc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"

	offermodels "local_commerce/internal/api/offer/models"
)

func TestValidateOfferDates_HopLe(t *testing.T) {
	assert.NoError(t, ValidateOfferDates(1700000000000, 1700086400000), "khoảng thời gian hợp lệ phải được chấp nhận")
}

func TestValidateOfferDates_BangNhauLaHopLe(t *testing.T) {
	// Ưu đãi một ngày: startDate == endDate
	assert.NoError(t, ValidateOfferDates(1700000000000, 1700000000000), "startDate == endDate phải hợp lệ")
}

func TestValidateOfferDates_EndTruocStart(t *testing.T) {
	assert.Error(t, ValidateOfferDates(1700086400000, 1700000000000), "endDate trước startDate phải bị từ chối")
}

func TestValidateOfferDates_ThieuMoc(t *testing.T) {
	assert.Error(t, ValidateOfferDates(0, 1700000000000), "thiếu startDate phải bị từ chối")
	assert.Error(t, ValidateOfferDates(1700000000000, 0), "thiếu endDate phải bị từ chối")
	assert.Error(t, ValidateOfferDates(-1, -1), "mốc thời gian âm phải bị từ chối")
}

func TestActiveFilter_ChonDungBien(t *testing.T) {
	nowMilli := int64(1700000000000)
	filter := ActiveFilter(nowMilli)

	endDate, ok := filter["endDate"].(bson.M)
	if !ok {
		t.Fatalf("filter endDate không đúng dạng: %v", filter)
	}
	// Ưu đãi hết hạn đúng thời điểm này vẫn còn hiệu lực
	assert.Equal(t, nowMilli, endDate["$gte"], "ActiveFilter phải dùng $gte nowMilli")
}

func TestExpiredFilter_ChonDungBien(t *testing.T) {
	nowMilli := int64(1700000000000)
	filter := ExpiredFilter(nowMilli)

	endDate, ok := filter["endDate"].(bson.M)
	if !ok {
		t.Fatalf("filter endDate không đúng dạng: %v", filter)
	}
	assert.Equal(t, nowMilli, endDate["$lt"], "ExpiredFilter phải dùng $lt nowMilli")
}

func TestBuildOfferResponse_CuaHangKhongTonTai(t *testing.T) {
	offer := offermodels.Offer{Title: "Giảm giá cuối tuần"}

	resp := BuildOfferResponse(offer, "", "https://api.example.com")
	assert.Equal(t, "Unknown Shop", resp.ShopName, "tên cửa hàng rỗng phải được thay bằng Unknown Shop")

	resp = BuildOfferResponse(offer, "Quán Cà Phê", "https://api.example.com")
	assert.Equal(t, "Quán Cà Phê", resp.ShopName, "tên cửa hàng có sẵn phải được giữ nguyên")
}

func TestBuildOfferResponse_GhepURLAnh(t *testing.T) {
	offer := offermodels.Offer{Title: "Khuyến mãi", ImageUrl: "/uploads/offer-1700000000000.png"}

	// Base URL có dấu / cuối không được tạo ra // trong URL
	resp := BuildOfferResponse(offer, "Quán Cà Phê", "https://api.example.com/")
	assert.Equal(t, "https://api.example.com/uploads/offer-1700000000000.png", resp.ImageUrl)

	// Không có ảnh thì giữ nguyên chuỗi rỗng
	resp = BuildOfferResponse(offermodels.Offer{Title: "Khuyến mãi"}, "Quán Cà Phê", "https://api.example.com")
	assert.Equal(t, "", resp.ImageUrl)
}
