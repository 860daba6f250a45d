package worker

import (
	"context"
	"time"

	offersvc "local_commerce/internal/api/offer/service"
	"local_commerce/internal/logger"
)

// OfferCleanupWorker worker tự động xóa các ưu đãi đã hết hạn.
// Chạy một lần ngay khi start rồi định kỳ theo interval.
type OfferCleanupWorker struct {
	offerService *offersvc.OfferService
	interval     time.Duration // Khoảng thời gian giữa các lần quét
}

// NewOfferCleanupWorker tạo mới OfferCleanupWorker.
// interval dưới 1 phút sẽ được nâng lên mặc định 1 giờ.
func NewOfferCleanupWorker(interval time.Duration) (*OfferCleanupWorker, error) {
	offerService, err := offersvc.NewOfferService()
	if err != nil {
		return nil, err
	}

	if interval < 1*time.Minute {
		interval = 1 * time.Hour
	}

	return &OfferCleanupWorker{
		offerService: offerService,
		interval:     interval,
	}, nil
}

// Start bắt đầu background worker quét ưu đãi hết hạn.
// Quét ngay một lần khi khởi động, sau đó lặp theo interval cho đến khi
// context bị hủy.
func (w *OfferCleanupWorker) Start(ctx context.Context) {
	log := logger.GetAppLogger()

	log.WithFields(map[string]interface{}{
		"interval": w.interval.String(),
	}).Info("🧹 [OFFER_CLEANUP] Starting Offer Cleanup Worker...")

	w.sweep(ctx)

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Info("🧹 [OFFER_CLEANUP] Offer Cleanup Worker stopped")
			return
		case <-ticker.C:
			w.sweep(ctx)
		}
	}
}

// sweep thực hiện một lần quét, recover panic để không làm chết worker.
func (w *OfferCleanupWorker) sweep(ctx context.Context) {
	log := logger.GetAppLogger()

	defer func() {
		if r := recover(); r != nil {
			log.WithFields(map[string]interface{}{
				"panic": r,
			}).Error("🧹 [OFFER_CLEANUP] Panic khi quét ưu đãi hết hạn, sẽ tiếp tục ở lần chạy tiếp theo")
		}
	}()

	deletedCount, err := w.offerService.DeleteExpired(ctx)
	if err != nil {
		log.WithError(err).Error("🧹 [OFFER_CLEANUP] Quét ưu đãi hết hạn thất bại")
		return
	}

	if deletedCount > 0 {
		log.WithFields(map[string]interface{}{
			"deletedCount": deletedCount,
		}).Info("🧹 [OFFER_CLEANUP] Đã xóa ưu đãi hết hạn")
	}
	// deletedCount = 0 thì không log (giảm log noise)
}
