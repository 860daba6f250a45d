package offerhdl

import (
	"fmt"

	basehdl "local_commerce/internal/api/base/handler"
	basesvc "local_commerce/internal/api/base/service"
	offermodels "local_commerce/internal/api/offer/models"
	"local_commerce/internal/common"
	"local_commerce/internal/global"
)

// OfferDataHandler cung cấp bộ tra cứu generic chỉ đọc cho collection offers.
type OfferDataHandler struct {
	*basehdl.BaseHandler[offermodels.Offer]
}

// NewOfferDataHandler tạo OfferDataHandler mới.
func NewOfferDataHandler() (*OfferDataHandler, error) {
	coll, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Offers)
	if !exist {
		return nil, fmt.Errorf("không tìm thấy collection %s: %w", global.MongoDB_ColNames.Offers, common.ErrNotFound)
	}
	svc := basesvc.NewBaseServiceMongo[offermodels.Offer](coll)
	return &OfferDataHandler{
		BaseHandler: basehdl.NewBaseHandler[offermodels.Offer](svc),
	}, nil
}
