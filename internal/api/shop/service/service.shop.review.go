// Package shopsvc - Service đánh giá (reviews) và tổng hợp rating cửa hàng.
package shopsvc

import (
	"context"
	"fmt"
	"math"

	"go.mongodb.org/mongo-driver/bson"
	mongoopts "go.mongodb.org/mongo-driver/mongo/options"

	basesvc "local_commerce/internal/api/base/service"
	shopdto "local_commerce/internal/api/shop/dto"
	shopmodels "local_commerce/internal/api/shop/models"
	"local_commerce/internal/common"
	"local_commerce/internal/global"
	"local_commerce/internal/logger"
)

// ReviewService xử lý tạo và liệt kê đánh giá, đồng thời ghi lại
// rating tổng hợp lên document cửa hàng sau mỗi đánh giá mới.
type ReviewService struct {
	*basesvc.BaseServiceMongoImpl[shopmodels.Review]
	shopService *ShopService
}

// NewReviewService tạo ReviewService mới.
func NewReviewService() (*ReviewService, error) {
	coll, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Reviews)
	if !exist {
		return nil, fmt.Errorf("không tìm thấy collection %s: %w", global.MongoDB_ColNames.Reviews, common.ErrNotFound)
	}
	shopSvc, err := NewShopService()
	if err != nil {
		return nil, err
	}
	return &ReviewService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[shopmodels.Review](coll),
		shopService:          shopSvc,
	}, nil
}

// AverageRating tính điểm trung bình làm tròn một chữ số thập phân
// (round half-up: 4.45 -> 4.5). Mảng rỗng trả về 0.
// Hàm thuần túy, dùng chung cho mọi chỗ tính rating.
func AverageRating(ratings []int) float64 {
	if len(ratings) == 0 {
		return 0
	}
	sum := 0
	for _, r := range ratings {
		sum += r
	}
	mean := float64(sum) / float64(len(ratings))
	return math.Floor(mean*10+0.5) / 10
}

// CreateReview tạo đánh giá mới cho cửa hàng rồi tính lại rating tổng hợp.
// Đánh giá đã insert không bị rollback nếu bước tính lại thất bại; khi đó
// lỗi được log và trả về cho caller (cửa sổ không nhất quán chấp nhận được,
// lần đánh giá sau sẽ tự sửa).
func (s *ReviewService) CreateReview(ctx context.Context, identifier string, input *shopdto.ReviewCreateInput) (*shopdto.ReviewCreateResponse, error) {
	shop, err := s.shopService.ResolveIdentifier(ctx, identifier)
	if err != nil {
		return nil, err
	}

	if input.CustomerName == "" {
		return nil, common.ErrRequiredField
	}
	if input.Rating < 1 || input.Rating > 5 {
		return nil, common.NewError(common.ErrCodeValidationInput, "Rating phải từ 1 đến 5", common.StatusBadRequest, nil)
	}

	review := shopmodels.Review{
		ShopId:       shop.ID,
		CustomerName: input.CustomerName,
		Rating:       input.Rating,
		Comment:      input.Comment,
	}
	created, err := s.InsertOne(ctx, review)
	if err != nil {
		return nil, err
	}

	rating, count, err := s.recalculateShopRating(ctx, shop.ID.Hex())
	if err != nil {
		logger.GetErrorLogger().WithFields(map[string]interface{}{
			"shopId":   shop.ID.Hex(),
			"reviewId": created.ID.Hex(),
			"error":    err.Error(),
		}).Error("Đánh giá đã lưu nhưng tính lại rating cửa hàng thất bại")
		return nil, err
	}

	return &shopdto.ReviewCreateResponse{
		Review:      &created,
		Rating:      rating,
		ReviewCount: count,
	}, nil
}

// recalculateShopRating đọc toàn bộ đánh giá của cửa hàng, tính trung bình
// và ghi rating + reviewCount lên document cửa hàng.
func (s *ReviewService) recalculateShopRating(ctx context.Context, shopIDHex string) (float64, int64, error) {
	shop, err := s.shopService.ResolveIdentifier(ctx, shopIDHex)
	if err != nil {
		return 0, 0, err
	}

	reviews, err := s.Find(ctx, bson.M{"shopId": shop.ID}, nil)
	if err != nil {
		return 0, 0, err
	}

	ratings := make([]int, len(reviews))
	for i, r := range reviews {
		ratings[i] = r.Rating
	}
	rating := AverageRating(ratings)
	count := int64(len(reviews))

	_, err = s.shopService.UpdateById(ctx, shop.ID, &basesvc.UpdateData{
		Set: map[string]interface{}{
			"rating":      rating,
			"reviewCount": count,
		},
	})
	if err != nil {
		return 0, 0, err
	}
	return rating, count, nil
}

// ListWithStats trả về đánh giá của cửa hàng (mới nhất trước) kèm điểm
// trung bình tính trực tiếp từ danh sách.
func (s *ReviewService) ListWithStats(ctx context.Context, identifier string) (*shopdto.ReviewListResponse, error) {
	shop, err := s.shopService.ResolveIdentifier(ctx, identifier)
	if err != nil {
		return nil, err
	}

	opts := mongoopts.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	reviews, err := s.Find(ctx, bson.M{"shopId": shop.ID}, opts)
	if err != nil {
		return nil, err
	}

	ratings := make([]int, len(reviews))
	for i, r := range reviews {
		ratings[i] = r.Rating
	}

	return &shopdto.ReviewListResponse{
		Reviews:       reviews,
		AverageRating: AverageRating(ratings),
		TotalReviews:  int64(len(reviews)),
	}, nil
}
