// file: internals/features/finance/clearance/service/completion.go
package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	clearanceModel "hostelku_backend/internals/features/finance/clearance/model"
	"hostelku_backend/internals/features/finance/clearance/settlement"
	propertyModel "hostelku_backend/internals/features/properties/model"
	tenantModel "hostelku_backend/internals/features/tenants/model"
)

var (
	ErrChecklistIncomplete = errors.New("room inspection and key return must both be done")
	ErrAlreadyCleared      = errors.New("clearance is already cleared")
)

// PartialWriteError names the step of the completion write that failed, so
// operators can tell a half-applied checkout from a clean failure. The
// transaction rolls everything back either way; the step is diagnostic.
type PartialWriteError struct {
	Step string
	Err  error
}

func (e *PartialWriteError) Error() string {
	return fmt.Sprintf("clearance completion failed at step %q: %v", e.Step, e.Err)
}

func (e *PartialWriteError) Unwrap() error { return e.Err }

// CompleteClearance performs the three-step checkout write atomically:
//  1. clearance → cleared, stamping actual exit date and completed_at
//  2. tenant → checked_out, stamping check-out date
//  3. room → available (when the tenant still held one)
//
// The gate is re-checked inside the transaction since the row may have moved
// since the caller read it.
func CompleteClearance(db *gorm.DB, ownerID, clearanceID uuid.UUID, actualExit time.Time) (clearanceModel.ExitClearance, error) {
	var clearance clearanceModel.ExitClearance

	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.
			Where("exit_clearance_id = ? AND exit_clearance_owner_user_id = ?", clearanceID, ownerID).
			First(&clearance).Error; err != nil {
			return &PartialWriteError{Step: "load_clearance", Err: err}
		}

		if clearance.ExitClearanceStatus == settlement.StatusCleared {
			return ErrAlreadyCleared
		}
		if !settlement.CanComplete(clearance.Checklist()) {
			return ErrChecklistIncomplete
		}

		now := time.Now()
		clearance.ExitClearanceStatus = settlement.StatusCleared
		clearance.ExitClearanceActualExitDate = &actualExit
		clearance.ExitClearanceCompletedAt = &now
		if err := tx.Save(&clearance).Error; err != nil {
			return &PartialWriteError{Step: "clearance", Err: err}
		}

		var tenant tenantModel.Tenant
		if err := tx.
			Where("tenant_id = ? AND tenant_owner_user_id = ?", clearance.ExitClearanceTenantID, ownerID).
			First(&tenant).Error; err != nil {
			return &PartialWriteError{Step: "load_tenant", Err: err}
		}

		roomID := tenant.TenantRoomID
		tenant.TenantStatus = tenantModel.TenantStatusCheckedOut
		tenant.TenantCheckOutDate = &actualExit
		tenant.TenantRoomID = nil
		if err := tx.Save(&tenant).Error; err != nil {
			return &PartialWriteError{Step: "tenant", Err: err}
		}

		// close the active stay alongside the tenant
		if err := tx.Model(&tenantModel.TenantStay{}).
			Where("tenant_stay_tenant_id = ? AND tenant_stay_status = ?",
				tenant.TenantID, tenantModel.StayStatusActive).
			Updates(map[string]interface{}{
				"tenant_stay_status":    tenantModel.StayStatusCompleted,
				"tenant_stay_exit_date": actualExit,
			}).Error; err != nil {
			return &PartialWriteError{Step: "stay", Err: err}
		}

		if roomID != nil {
			if err := tx.Model(&propertyModel.Room{}).
				Where("room_id = ?", *roomID).
				Update("room_status", propertyModel.RoomStatusAvailable).Error; err != nil {
				return &PartialWriteError{Step: "room", Err: err}
			}
		}

		return nil
	})

	return clearance, err
}
