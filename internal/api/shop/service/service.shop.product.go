// Package shopsvc - Service sản phẩm (products). Mọi thao tác ghi đều
// yêu cầu mã bí mật của cửa hàng và được scope theo shopId.
package shopsvc

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	mongoopts "go.mongodb.org/mongo-driver/mongo/options"

	basesvc "local_commerce/internal/api/base/service"
	shopdto "local_commerce/internal/api/shop/dto"
	shopmodels "local_commerce/internal/api/shop/models"
	"local_commerce/internal/common"
	"local_commerce/internal/global"
)

// ProductService xử lý CRUD sản phẩm trong phạm vi một cửa hàng.
type ProductService struct {
	*basesvc.BaseServiceMongoImpl[shopmodels.Product]
	shopService *ShopService
}

// NewProductService tạo ProductService mới.
func NewProductService() (*ProductService, error) {
	coll, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Products)
	if !exist {
		return nil, fmt.Errorf("không tìm thấy collection %s: %w", global.MongoDB_ColNames.Products, common.ErrNotFound)
	}
	shopSvc, err := NewShopService()
	if err != nil {
		return nil, err
	}
	return &ProductService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[shopmodels.Product](coll),
		shopService:          shopSvc,
	}, nil
}

// resolveAndAuthorize tra cứu cửa hàng theo identifier rồi so khớp mã bí mật.
func (s *ProductService) resolveAndAuthorize(ctx context.Context, identifier, secret string) (*shopmodels.Shop, error) {
	shop, err := s.shopService.ResolveIdentifier(ctx, identifier)
	if err != nil {
		return nil, err
	}
	if err := CheckSecret(shop, secret); err != nil {
		return nil, err
	}
	return shop, nil
}

// ListByShop trả về sản phẩm của cửa hàng, mới nhất trước. Đọc công khai,
// không cần mã bí mật.
func (s *ProductService) ListByShop(ctx context.Context, identifier string) ([]shopmodels.Product, error) {
	shop, err := s.shopService.ResolveIdentifier(ctx, identifier)
	if err != nil {
		return nil, err
	}
	opts := mongoopts.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	return s.Find(ctx, bson.M{"shopId": shop.ID}, opts)
}

// AddProduct thêm sản phẩm mới vào cửa hàng sau khi xác thực mã bí mật.
func (s *ProductService) AddProduct(ctx context.Context, identifier string, input *shopdto.ProductCreateInput) (*shopmodels.Product, error) {
	shop, err := s.resolveAndAuthorize(ctx, identifier, input.Password)
	if err != nil {
		return nil, err
	}
	if input.Name == "" {
		return nil, common.ErrRequiredField
	}
	if input.Price < 0 {
		return nil, common.NewError(common.ErrCodeValidationInput, "Giá sản phẩm không được âm", common.StatusBadRequest, nil)
	}

	product := shopmodels.Product{
		ShopId:      shop.ID,
		Name:        input.Name,
		Price:       input.Price,
		Description: input.Description,
	}
	created, err := s.InsertOne(ctx, product)
	if err != nil {
		return nil, err
	}
	return &created, nil
}

// UpdateProduct cập nhật một phần sản phẩm: chỉ các trường khác nil trong
// input được ghi đè. Sản phẩm không thuộc cửa hàng trả về ErrProductNotFound.
func (s *ProductService) UpdateProduct(ctx context.Context, identifier string, productId primitive.ObjectID, input *shopdto.ProductUpdateInput) (*shopmodels.Product, error) {
	shop, err := s.resolveAndAuthorize(ctx, identifier, input.Password)
	if err != nil {
		return nil, err
	}

	set := make(map[string]interface{})
	if input.Name != nil {
		if *input.Name == "" {
			return nil, common.ErrRequiredField
		}
		set["name"] = *input.Name
	}
	if input.Price != nil {
		if *input.Price < 0 {
			return nil, common.NewError(common.ErrCodeValidationInput, "Giá sản phẩm không được âm", common.StatusBadRequest, nil)
		}
		set["price"] = *input.Price
	}
	if input.Description != nil {
		set["description"] = *input.Description
	}
	if len(set) == 0 {
		return nil, common.NewError(common.ErrCodeValidationInput, "Không có trường nào để cập nhật", common.StatusBadRequest, nil)
	}

	filter := bson.M{"_id": productId, "shopId": shop.ID}
	updated, err := s.UpdateOne(ctx, filter, &basesvc.UpdateData{Set: set}, nil)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, common.ErrProductNotFound
		}
		return nil, err
	}
	return &updated, nil
}

// DeleteProduct xóa sản phẩm khỏi cửa hàng sau khi xác thực mã bí mật.
func (s *ProductService) DeleteProduct(ctx context.Context, identifier string, productId primitive.ObjectID, secret string) error {
	shop, err := s.resolveAndAuthorize(ctx, identifier, secret)
	if err != nil {
		return err
	}
	err = s.DeleteOne(ctx, bson.M{"_id": productId, "shopId": shop.ID})
	if errors.Is(err, common.ErrNotFound) {
		return common.ErrProductNotFound
	}
	return err
}

// VerifySecret xác thực mã bí mật, không có side effect.
func (s *ProductService) VerifySecret(ctx context.Context, identifier, secret string) (bool, error) {
	shop, err := s.shopService.ResolveIdentifier(ctx, identifier)
	if err != nil {
		return false, err
	}
	if secret == "" {
		return false, common.ErrSecretRequired
	}
	if err := CheckSecret(shop, secret); err != nil {
		return false, nil
	}
	return true, nil
}

// SeedProducts lưu mảng sản phẩm gửi kèm lúc đăng ký cửa hàng.
// Sản phẩm thiếu tên hoặc giá âm bị bỏ qua; lỗi từng sản phẩm không
// rollback cửa hàng. Trả về số sản phẩm lưu thành công.
func (s *ProductService) SeedProducts(ctx context.Context, shopID primitive.ObjectID, seeds []shopdto.ProductSeedInput) int {
	saved := 0
	for _, seed := range seeds {
		if seed.Name == "" || seed.Price < 0 {
			continue
		}
		product := shopmodels.Product{
			ShopId:      shopID,
			Name:        seed.Name,
			Price:       seed.Price,
			Description: seed.Description,
		}
		if _, err := s.InsertOne(ctx, product); err == nil {
			saved++
		}
	}
	return saved
}
