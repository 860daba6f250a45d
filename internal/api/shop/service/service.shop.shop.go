// Package shopsvc - Service cửa hàng (shops).
package shopsvc

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	mongoopts "go.mongodb.org/mongo-driver/mongo/options"
	"golang.org/x/crypto/bcrypt"

	basesvc "local_commerce/internal/api/base/service"
	shopdto "local_commerce/internal/api/shop/dto"
	shopmodels "local_commerce/internal/api/shop/models"
	"local_commerce/internal/common"
	"local_commerce/internal/global"
	"local_commerce/internal/logger"
	"local_commerce/internal/utility"
)

// ShopService xử lý đăng ký, tra cứu và xác thực mã bí mật của cửa hàng.
type ShopService struct {
	*basesvc.BaseServiceMongoImpl[shopmodels.Shop]
}

// NewShopService tạo ShopService mới.
func NewShopService() (*ShopService, error) {
	coll, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Shops)
	if !exist {
		return nil, fmt.Errorf("không tìm thấy collection %s: %w", global.MongoDB_ColNames.Shops, common.ErrNotFound)
	}
	return &ShopService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[shopmodels.Shop](coll),
	}, nil
}

// ResolveIdentifier tra cứu cửa hàng theo ObjectID hex hoặc slug.
// Identifier dạng hex 24 ký tự được thử theo _id trước; không thấy thì
// tra theo slug đã lưu (có unique index). Không thấy ở cả hai đường
// trả về ErrShopNotFound, phân biệt với lỗi hạ tầng.
func (s *ShopService) ResolveIdentifier(ctx context.Context, identifier string) (*shopmodels.Shop, error) {
	identifier = strings.TrimSpace(identifier)
	if identifier == "" {
		return nil, common.ErrShopNotFound
	}

	if primitive.IsValidObjectID(identifier) {
		shop, err := s.FindOneById(ctx, utility.String2ObjectID(identifier))
		if err == nil {
			return &shop, nil
		}
		if !errors.Is(err, common.ErrNotFound) {
			return nil, err
		}
		// Hex hợp lệ nhưng không có document: thử tiếp theo slug
	}

	shop, err := s.FindOne(ctx, bson.M{"slug": identifier}, nil)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, common.ErrShopNotFound
		}
		return nil, err
	}
	return &shop, nil
}

// RegisterShop đăng ký cửa hàng mới: kiểm tra email trùng, sinh slug
// duy nhất từ tên, băm mã bí mật bằng bcrypt rồi insert.
// logoUrl là đường dẫn /uploads/... đã lưu (rỗng nếu không có logo).
func (s *ShopService) RegisterShop(ctx context.Context, input *shopdto.ShopRegisterInput, logoUrl string) (*shopmodels.Shop, error) {
	if input.Name == "" || input.Owner == "" || input.Address == "" ||
		input.Phone == "" || input.Email == "" || input.Password == "" {
		return nil, common.ErrRequiredField
	}
	if err := utility.ValidateEmail(input.Email); err != nil {
		return nil, err
	}

	// Email đã đăng ký cho cửa hàng khác?
	exists, err := s.DocumentExists(ctx, bson.M{"email": input.Email})
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, common.ErrDuplicateEmail
	}

	slug, err := s.uniqueSlug(ctx, input.Name)
	if err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, common.NewError(common.ErrCodeInternalServer, "Lỗi băm mã bí mật", common.StatusInternalServerError, err)
	}

	shop := shopmodels.Shop{
		Name:        input.Name,
		Slug:        slug,
		Owner:       input.Owner,
		Address:     input.Address,
		Phone:       input.Phone,
		Email:       input.Email,
		Category:    input.Category,
		Description: input.Description,
		LogoUrl:     logoUrl,
		Rating:      0,
		ReviewCount: 0,
		SecretHash:  string(hash),
	}

	created, err := s.InsertOne(ctx, shop)
	if err != nil {
		return nil, err
	}

	logger.GetAppLogger().WithFields(map[string]interface{}{
		"shopId": created.ID.Hex(),
		"slug":   created.Slug,
	}).Info("Đăng ký cửa hàng mới thành công")

	return &created, nil
}

// uniqueSlug sinh slug từ tên cửa hàng, thêm hậu tố -2, -3, ... khi trùng.
func (s *ShopService) uniqueSlug(ctx context.Context, name string) (string, error) {
	base := utility.Slugify(name)
	if base == "" {
		base = "shop"
	}

	candidate := base
	for i := 2; ; i++ {
		exists, err := s.DocumentExists(ctx, bson.M{"slug": candidate})
		if err != nil {
			return "", err
		}
		if !exists {
			return candidate, nil
		}
		candidate = fmt.Sprintf("%s-%d", base, i)
	}
}

// ListRecent trả về các cửa hàng mới đăng ký, mới nhất trước.
func (s *ShopService) ListRecent(ctx context.Context, limit int64) ([]shopmodels.Shop, error) {
	if limit <= 0 {
		limit = 10
	}
	opts := mongoopts.Find().SetLimit(limit).SetSort(bson.D{{Key: "createdAt", Value: -1}})
	return s.Find(ctx, bson.D{}, opts)
}

// CheckSecret so khớp mã bí mật thô với secretHash của cửa hàng.
// Mã rỗng trả về ErrSecretRequired; sai trả về ErrInvalidSecret.
// So sánh luôn qua bcrypt, không có đường tắt nào khác.
func CheckSecret(shop *shopmodels.Shop, secret string) error {
	if secret == "" {
		return common.ErrSecretRequired
	}
	if err := bcrypt.CompareHashAndPassword([]byte(shop.SecretHash), []byte(secret)); err != nil {
		return common.ErrInvalidSecret
	}
	return nil
}
