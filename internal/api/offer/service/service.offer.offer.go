// Package offersvc - Service ưu đãi (offers). Mọi phép so sánh thời hạn
// đi qua clock được inject để test được với thời gian giả.
package offersvc

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	mongoopts "go.mongodb.org/mongo-driver/mongo/options"

	basesvc "local_commerce/internal/api/base/service"
	offerdto "local_commerce/internal/api/offer/dto"
	offermodels "local_commerce/internal/api/offer/models"
	shopsvc "local_commerce/internal/api/shop/service"
	"local_commerce/internal/common"
	"local_commerce/internal/global"
	"local_commerce/internal/utility"
)

// OfferService xử lý tạo, liệt kê và quét ưu đãi hết hạn.
type OfferService struct {
	*basesvc.BaseServiceMongoImpl[offermodels.Offer]
	shopService *shopsvc.ShopService
	now         func() time.Time
}

// NewOfferService tạo OfferService với clock hệ thống.
func NewOfferService() (*OfferService, error) {
	return NewOfferServiceWithClock(time.Now)
}

// NewOfferServiceWithClock tạo OfferService với clock tùy ý (dùng cho test).
func NewOfferServiceWithClock(now func() time.Time) (*OfferService, error) {
	coll, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Offers)
	if !exist {
		return nil, fmt.Errorf("không tìm thấy collection %s: %w", global.MongoDB_ColNames.Offers, common.ErrNotFound)
	}
	shopSvc, err := shopsvc.NewShopService()
	if err != nil {
		return nil, err
	}
	if now == nil {
		now = time.Now
	}
	return &OfferService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[offermodels.Offer](coll),
		shopService:          shopSvc,
		now:                  now,
	}, nil
}

// ValidateOfferDates kiểm tra thời hạn ưu đãi: cả hai mốc phải dương và
// endDate >= startDate (bằng nhau là hợp lệ, ưu đãi một ngày).
// Hàm thuần túy.
func ValidateOfferDates(startDate, endDate int64) error {
	if startDate <= 0 || endDate <= 0 {
		return common.NewError(common.ErrCodeValidationInput, "Thiếu startDate hoặc endDate", common.StatusBadRequest, nil)
	}
	if endDate < startDate {
		return common.NewError(common.ErrCodeValidationInput, "endDate phải lớn hơn hoặc bằng startDate", common.StatusBadRequest, nil)
	}
	return nil
}

// ActiveFilter trả về filter MongoDB chọn các ưu đãi còn hiệu lực tại nowMilli.
// Hàm thuần túy, dùng chung cho list và test.
func ActiveFilter(nowMilli int64) bson.M {
	return bson.M{"endDate": bson.M{"$gte": nowMilli}}
}

// ExpiredFilter trả về filter MongoDB chọn các ưu đãi đã hết hạn tại nowMilli.
func ExpiredFilter(nowMilli int64) bson.M {
	return bson.M{"endDate": bson.M{"$lt": nowMilli}}
}

// CreateOffer tạo ưu đãi mới. input.ShopId nhận ObjectID hex hoặc slug;
// title/description/discount được trim trước khi lưu.
// imageUrl là đường dẫn /uploads/... đã lưu (rỗng nếu không có ảnh).
func (s *OfferService) CreateOffer(ctx context.Context, input *offerdto.OfferCreateInput, imageUrl string) (*offermodels.Offer, error) {
	shop, err := s.shopService.ResolveIdentifier(ctx, input.ShopId)
	if err != nil {
		return nil, err
	}

	title := strings.TrimSpace(input.Title)
	if title == "" {
		return nil, common.ErrRequiredField
	}
	if err := ValidateOfferDates(input.StartDate, input.EndDate); err != nil {
		return nil, err
	}

	offer := offermodels.Offer{
		ShopId:      shop.ID,
		Title:       title,
		Description: strings.TrimSpace(input.Description),
		StartDate:   input.StartDate,
		EndDate:     input.EndDate,
		Discount:    strings.TrimSpace(input.Discount),
		ImageUrl:    imageUrl,
	}
	created, err := s.InsertOne(ctx, offer)
	if err != nil {
		return nil, err
	}
	return &created, nil
}

// BuildOfferResponse gắn tên cửa hàng và URL ảnh tuyệt đối cho một ưu đãi.
// shopName rỗng (cửa hàng đã bị xóa hoặc tra cứu thất bại) được thay bằng
// "Unknown Shop". Đường dẫn /uploads/... được ghép với publicBaseURL.
// Hàm thuần túy.
func BuildOfferResponse(offer offermodels.Offer, shopName, publicBaseURL string) offerdto.OfferResponse {
	resp := offerdto.OfferResponse{Offer: offer, ShopName: shopName}
	if resp.ShopName == "" {
		resp.ShopName = "Unknown Shop"
	}
	if resp.ImageUrl != "" && strings.HasPrefix(resp.ImageUrl, "/") {
		resp.ImageUrl = strings.TrimSuffix(publicBaseURL, "/") + resp.ImageUrl
	}
	return resp
}

// ListActive trả về các ưu đãi còn hiệu lực, mới tạo trước, mỗi ưu đãi kèm
// tên cửa hàng và URL ảnh tuyệt đối.
func (s *OfferService) ListActive(ctx context.Context) ([]offerdto.OfferResponse, error) {
	nowMilli := utility.UnixMilli(s.now())
	opts := mongoopts.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	offers, err := s.Find(ctx, ActiveFilter(nowMilli), opts)
	if err != nil {
		return nil, err
	}

	responses := make([]offerdto.OfferResponse, 0, len(offers))
	for _, offer := range offers {
		shopName := ""
		if shop, err := s.shopService.FindOneById(ctx, offer.ShopId); err == nil {
			shopName = shop.Name
		}
		responses = append(responses, BuildOfferResponse(offer, shopName, global.MongoDB_ServerConfig.PublicBaseURL))
	}
	return responses, nil
}

// DeleteExpired xóa mọi ưu đãi có endDate trước thời điểm hiện tại,
// trả về số document đã xóa. Idempotent, an toàn khi chạy lặp lại.
func (s *OfferService) DeleteExpired(ctx context.Context) (int64, error) {
	nowMilli := utility.UnixMilli(s.now())
	return s.DeleteMany(ctx, ExpiredFilter(nowMilli))
}
