package jobs

import (
	"context"
	"time"

	"warebook-backend/internal/logger"
)

// ExpireStalePayments cancels payment orders that were created but never
// captured within the configured age. Cancelled orders become inquiries:
// the customer gets a follow-up email and the owner is told someone tried
// to book.
func (jr *JobRunner) ExpireStalePayments() {
	jr.runWithRecovery("ExpireStalePayments", func() {
		ctx := context.Background()
		age := time.Duration(jr.config.Scheduler.StalePaymentAgeMinutes) * time.Minute
		cutoff := time.Now().Add(-age)

		expired, err := jr.store.PaymentRepository.ExpireStale(ctx, cutoff)
		if err != nil {
			logger.Error("Failed to expire stale payments", "error", err)
			return
		}
		logger.Info("Expired stale payments", "count", len(expired), "older_than", cutoff)

		for i := range expired {
			p := &expired[i]
			_ = jr.emailSvc.SendPaymentPendingNotice(ctx, p)

			w, err := jr.store.WarehouseRepository.GetByID(ctx, p.BookingDetails.WarehouseID)
			if err != nil {
				logger.Warn("Cancelled payment references unknown warehouse",
					"order_id", p.OrderID, "warehouse_id", p.BookingDetails.WarehouseID)
				continue
			}
			owner, err := jr.store.UserRepository.GetByID(ctx, w.OwnerID)
			if err != nil {
				logger.Warn("Warehouse owner lookup failed", "warehouse_id", w.ID, "error", err)
				continue
			}
			_ = jr.emailSvc.SendOwnerInquiryNotice(ctx, owner.Email, owner.Name, p)

			logger.Debug("Cancelled stale payment",
				"order_id", p.OrderID,
				"warehouse_id", p.BookingDetails.WarehouseID,
				"customer_email", p.BookingDetails.CustomerEmail)
		}
	})
}

// CleanupExpiredResetCodes drops password reset codes that are past their
// expiry so stale hashes do not linger in the users table.
func (jr *JobRunner) CleanupExpiredResetCodes() {
	jr.runWithRecovery("CleanupExpiredResetCodes", func() {
		ctx := context.Background()

		count, err := jr.store.UserRepository.ClearExpiredResetCodes(ctx)
		if err != nil {
			logger.Error("Failed to clean up reset codes", "error", err)
			return
		}
		logger.Info("Cleared expired reset codes", "count", count)
	})
}
