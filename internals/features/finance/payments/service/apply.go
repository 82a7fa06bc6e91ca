// file: internals/features/finance/payments/service/apply.go
package service

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	chargeModel "hostelku_backend/internals/features/finance/billings/model"
	model "hostelku_backend/internals/features/finance/payments/model"
)

// ApplyPaymentToCharge advances the linked charge after a payment settles.
// Settled payments for the charge are summed; covering the full amount moves
// the charge to paid (stamping paid_at), anything less moves it to partial.
// The forward-only guard on ChargeStatus makes this safe to call repeatedly:
// a no-op transition is simply skipped.
//
// Must run inside the caller's transaction.
func ApplyPaymentToCharge(tx *gorm.DB, p model.Payment) error {
	if p.PaymentChargeID == nil || p.PaymentStatus != model.PaymentStatusSettled {
		return nil
	}

	var charge chargeModel.Charge
	if err := tx.
		Where("charge_id = ? AND charge_owner_user_id = ?", *p.PaymentChargeID, p.PaymentOwnerUserID).
		First(&charge).Error; err != nil {
		return err
	}

	var settled decimal.Decimal
	if err := tx.Model(&model.Payment{}).
		Select("COALESCE(SUM(payment_amount), 0)").
		Where("payment_charge_id = ? AND payment_status = ?", charge.ChargeID, model.PaymentStatusSettled).
		Scan(&settled).Error; err != nil {
		return err
	}

	next := chargeModel.ChargeStatusPartial
	if settled.GreaterThanOrEqual(charge.ChargeAmount) {
		next = chargeModel.ChargeStatusPaid
	}
	if !charge.ChargeStatus.CanTransition(next) {
		return nil
	}

	updates := map[string]interface{}{"charge_status": next}
	if next == chargeModel.ChargeStatusPaid {
		updates["charge_paid_at"] = p.PaymentDate
	}
	return tx.Model(&chargeModel.Charge{}).
		Where("charge_id = ?", charge.ChargeID).
		Updates(updates).Error
}

// OutstandingForTenant sums unpaid charge balances for a tenant: total of
// non-paid charges minus settled payments already applied against them.
// Used by the exit clearance initiation to seed total dues.
func OutstandingForTenant(db *gorm.DB, ownerID, tenantID uuid.UUID) (decimal.Decimal, error) {
	var charged decimal.Decimal
	if err := db.Model(&chargeModel.Charge{}).
		Select("COALESCE(SUM(charge_amount), 0)").
		Where("charge_owner_user_id = ? AND charge_tenant_id = ? AND charge_status <> ?",
			ownerID, tenantID, chargeModel.ChargeStatusPaid).
		Scan(&charged).Error; err != nil {
		return decimal.Zero, err
	}

	var settled decimal.Decimal
	if err := db.Model(&model.Payment{}).
		Select("COALESCE(SUM(payments.payment_amount), 0)").
		Joins("JOIN charges ON charges.charge_id = payments.payment_charge_id").
		Where("payments.payment_owner_user_id = ? AND payments.payment_tenant_id = ? AND payments.payment_status = ? AND charges.charge_status <> ?",
			ownerID, tenantID, model.PaymentStatusSettled, chargeModel.ChargeStatusPaid).
		Scan(&settled).Error; err != nil {
		return decimal.Zero, err
	}

	out := charged.Sub(settled)
	if out.IsNegative() {
		out = decimal.Zero
	}
	return out.Round(2), nil
}
