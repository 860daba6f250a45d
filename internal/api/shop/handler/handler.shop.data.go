// Package shophdl - Handler tra cứu chung (chỉ đọc) cho các collection của
// domain shop, phục vụ vận hành qua bộ route generic.
package shophdl

import (
	"fmt"

	basehdl "local_commerce/internal/api/base/handler"
	basesvc "local_commerce/internal/api/base/service"
	shopmodels "local_commerce/internal/api/shop/models"
	"local_commerce/internal/common"
	"local_commerce/internal/global"
)

// ShopDataHandler cung cấp bộ tra cứu generic cho collection shops.
type ShopDataHandler struct {
	*basehdl.BaseHandler[shopmodels.Shop]
}

// NewShopDataHandler tạo ShopDataHandler mới.
func NewShopDataHandler() (*ShopDataHandler, error) {
	coll, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Shops)
	if !exist {
		return nil, fmt.Errorf("không tìm thấy collection %s: %w", global.MongoDB_ColNames.Shops, common.ErrNotFound)
	}
	svc := basesvc.NewBaseServiceMongo[shopmodels.Shop](coll)
	return &ShopDataHandler{
		BaseHandler: basehdl.NewBaseHandler[shopmodels.Shop](svc),
	}, nil
}

// ProductDataHandler cung cấp bộ tra cứu generic cho collection products.
type ProductDataHandler struct {
	*basehdl.BaseHandler[shopmodels.Product]
}

// NewProductDataHandler tạo ProductDataHandler mới.
func NewProductDataHandler() (*ProductDataHandler, error) {
	coll, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Products)
	if !exist {
		return nil, fmt.Errorf("không tìm thấy collection %s: %w", global.MongoDB_ColNames.Products, common.ErrNotFound)
	}
	svc := basesvc.NewBaseServiceMongo[shopmodels.Product](coll)
	return &ProductDataHandler{
		BaseHandler: basehdl.NewBaseHandler[shopmodels.Product](svc),
	}, nil
}

// ReviewDataHandler cung cấp bộ tra cứu generic cho collection reviews.
type ReviewDataHandler struct {
	*basehdl.BaseHandler[shopmodels.Review]
}

// NewReviewDataHandler tạo ReviewDataHandler mới.
func NewReviewDataHandler() (*ReviewDataHandler, error) {
	coll, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Reviews)
	if !exist {
		return nil, fmt.Errorf("không tìm thấy collection %s: %w", global.MongoDB_ColNames.Reviews, common.ErrNotFound)
	}
	svc := basesvc.NewBaseServiceMongo[shopmodels.Review](coll)
	return &ReviewDataHandler{
		BaseHandler: basehdl.NewBaseHandler[shopmodels.Review](svc),
	}, nil
}
