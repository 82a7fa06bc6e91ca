// file: internals/features/tenants/controller/tenant_journey_controller.go
package controller

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	complaintModel "hostelku_backend/internals/features/complaints/model"
	billingModel "hostelku_backend/internals/features/finance/billings/model"
	clearanceModel "hostelku_backend/internals/features/finance/clearance/model"
	paymentModel "hostelku_backend/internals/features/finance/payments/model"
	propertyModel "hostelku_backend/internals/features/properties/model"
	"hostelku_backend/internals/features/tenants/journey"
	model "hostelku_backend/internals/features/tenants/model"
	userModel "hostelku_backend/internals/features/users/model"
	visitorModel "hostelku_backend/internals/features/visitors/model"
	helper "hostelku_backend/internals/helpers"
)

type JourneyHandler struct {
	DB     *gorm.DB
	Policy journey.ScoringPolicy
}

func NewJourneyHandler(db *gorm.DB) *JourneyHandler {
	return &JourneyHandler{DB: db, Policy: journey.NewDefaultPolicy()}
}

// -----------------------------------------
// Journey (GET /tenants/:id/journey)
// Fetches every collection fresh, hands an in-memory snapshot to the pure
// aggregator, and returns timeline + scores + summary with a computed_at
// freshness marker. Nothing here is cached.
// -----------------------------------------
func (h *JourneyHandler) Journey(c *fiber.Ctx) error {
	ownerID, err := helper.GetOwnerIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "missing owner scope")
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid tenant id")
	}

	var tenant model.Tenant
	if err := h.DB.
		Where("tenant_id = ? AND tenant_owner_user_id = ?", id, ownerID).
		First(&tenant).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "tenant not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	snap, err := h.buildSnapshot(tenant)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonOK(c, "", fiber.Map{
		"tenant_id":   tenant.TenantID,
		"computed_at": snap.Now.Format(time.RFC3339),
		"timeline":    journey.BuildTimeline(snap),
		"scores":      journey.ComputeScores(snap, h.Policy),
		"summary":     journey.Summarize(snap),
	})
}

// buildSnapshot fetches each source collection independently and maps rows to
// the aggregator's input records. Room transfers are derived from consecutive
// stays: a stay closed as transferred pairs with the stay that follows it.
func (h *JourneyHandler) buildSnapshot(tenant model.Tenant) (journey.Snapshot, error) {
	snap := journey.Snapshot{
		TenantID:         tenant.TenantID.String(),
		Now:              time.Now(),
		NoticeGivenDate:  tenant.TenantNoticeGivenDate,
		AgreementEndDate: tenant.TenantAgreementEndDate,
	}

	// The expected exit date lives on the clearance, not the tenant row: the
	// tenant's check-out date is only stamped after completion, too late for
	// the proximity signal. No clearance means no expected exit.
	var clearance clearanceModel.ExitClearance
	cerr := h.DB.
		Where("exit_clearance_tenant_id = ? AND exit_clearance_owner_user_id = ?",
			tenant.TenantID, tenant.TenantOwnerUserID).
		First(&clearance).Error
	switch {
	case cerr == nil:
		if err := applyClearance(&snap, &clearance); err != nil {
			return snap, err
		}
	case !errors.Is(cerr, gorm.ErrRecordNotFound):
		return snap, cerr
	}

	var stays []model.TenantStay
	if err := h.DB.
		Where("tenant_stay_tenant_id = ?", tenant.TenantID).
		Order("tenant_stay_number ASC").
		Find(&stays).Error; err != nil {
		return snap, err
	}

	roomNames, propNames, err := h.lookupStayContext(stays)
	if err != nil {
		return snap, err
	}
	for _, st := range stays {
		exit := st.TenantStayExitDate
		snap.Stays = append(snap.Stays, journey.StayRecord{
			ID:           st.TenantStayID.String(),
			StayNumber:   st.TenantStayNumber,
			PropertyName: propNames[st.TenantStayPropertyID],
			RoomNumber:   roomNames[st.TenantStayRoomID],
			JoinDate:     st.TenantStayJoinDate,
			ExitDate:     exit,
			MonthlyRent:  st.TenantStayMonthlyRent,
			Status:       string(st.TenantStayStatus),
		})
	}
	for i := 0; i+1 < len(stays); i++ {
		if stays[i].TenantStayStatus != model.StayStatusTransferred || stays[i].TenantStayExitDate == nil {
			continue
		}
		snap.Transfers = append(snap.Transfers, journey.TransferRecord{
			ID:       stays[i].TenantStayID.String(),
			At:       *stays[i].TenantStayExitDate,
			FromRoom: roomNames[stays[i].TenantStayRoomID],
			ToRoom:   roomNames[stays[i+1].TenantStayRoomID],
		})
	}

	var charges []billingModel.Charge
	if err := h.DB.
		Where("charge_tenant_id = ?", tenant.TenantID).
		Find(&charges).Error; err != nil {
		return snap, err
	}
	for _, ch := range charges {
		snap.Charges = append(snap.Charges, journey.ChargeRecord{
			ID:         ch.ChargeID.String(),
			Amount:     ch.ChargeAmount,
			DueDate:    ch.ChargeDueDate,
			Status:     string(ch.ChargeStatus),
			ForPeriod:  ch.ChargeForPeriod,
			ChargeType: ch.ChargeType,
			PaidAt:     ch.ChargePaidAt,
			CreatedAt:  ch.ChargeCreatedAt,
		})
	}

	var payments []paymentModel.Payment
	if err := h.DB.
		Where("payment_tenant_id = ?", tenant.TenantID).
		Find(&payments).Error; err != nil {
		return snap, err
	}
	for _, p := range payments {
		snap.Payments = append(snap.Payments, journey.PaymentRecord{
			ID:        p.PaymentID.String(),
			Amount:    p.PaymentAmount,
			PaidAt:    p.PaymentDate,
			Method:    string(p.PaymentMethod),
			ForPeriod: p.PaymentForPeriod,
		})
	}

	var complaints []complaintModel.Complaint
	if err := h.DB.
		Where("complaint_tenant_id = ?", tenant.TenantID).
		Find(&complaints).Error; err != nil {
		return snap, err
	}
	for _, cm := range complaints {
		snap.Complaints = append(snap.Complaints, journey.ComplaintRecord{
			ID:          cm.ComplaintID.String(),
			Category:    cm.ComplaintCategory,
			Description: cm.ComplaintDescription,
			RaisedAt:    cm.ComplaintRaisedAt,
			ResolvedAt:  cm.ComplaintResolvedAt,
		})
	}

	// pre-tenancy visits matched by phone identity
	var visits []visitorModel.VisitorLog
	if err := h.DB.
		Where("visitor_log_phone = ? AND visitor_log_owner_user_id = ?", tenant.TenantPhone, tenant.TenantOwnerUserID).
		Find(&visits).Error; err != nil {
		return snap, err
	}
	for _, v := range visits {
		snap.Visits = append(snap.Visits, journey.VisitRecord{
			ID:           v.VisitorLogID.String(),
			VisitedAt:    v.VisitorLogCheckInAt,
			PropertyName: propNames[v.VisitorLogPropertyID],
			Purpose:      v.VisitorLogPurpose,
		})
	}

	if tenant.TenantVerifiedAt != nil || tenant.TenantBlockedAt != nil {
		vr := journey.VerificationRecord{
			VerifiedAt: tenant.TenantVerifiedAt,
			BlockedAt:  tenant.TenantBlockedAt,
		}
		if tenant.TenantBlockedReason != nil {
			vr.BlockedReason = *tenant.TenantBlockedReason
		}
		snap.Verification = &vr
	}

	// staff check: an active user account on the same email
	if tenant.TenantEmail != nil {
		var staffCount int64
		if err := h.DB.Model(&userModel.UserModel{}).
			Where("user_email = ? AND user_role IN ? AND user_is_active = true",
				*tenant.TenantEmail, []string{"owner", "manager"}).
			Count(&staffCount).Error; err != nil {
			return snap, err
		}
		snap.IsStaff = staffCount > 0
	}

	return snap, nil
}

// applyClearance folds the exit clearance row into the snapshot: its expected
// exit date drives the churn proximity signal and each deduction line becomes
// a debit on the timeline.
func applyClearance(snap *journey.Snapshot, cl *clearanceModel.ExitClearance) error {
	snap.ExpectedExitDate = cl.ExitClearanceExpectedExitDate

	rec := journey.ClearanceRecord{
		ID:               cl.ExitClearanceID.String(),
		Status:           string(cl.ExitClearanceStatus),
		ExpectedExitDate: cl.ExitClearanceExpectedExitDate,
		DeductedAt:       cl.ExitClearanceUpdatedAt,
	}
	items, err := cl.Deductions()
	if err != nil {
		return err
	}
	for _, d := range items {
		rec.Deductions = append(rec.Deductions, journey.DeductionRecord{
			Reason: d.Reason,
			Amount: d.Amount,
		})
	}
	snap.Clearance = &rec
	return nil
}

// lookupStayContext resolves room numbers and property names referenced by the
// stay rows, so the timeline carries human context instead of ids.
func (h *JourneyHandler) lookupStayContext(stays []model.TenantStay) (map[uuid.UUID]string, map[uuid.UUID]string, error) {
	roomIDs := make([]uuid.UUID, 0, len(stays))
	propIDs := make([]uuid.UUID, 0, len(stays))
	for _, st := range stays {
		roomIDs = append(roomIDs, st.TenantStayRoomID)
		propIDs = append(propIDs, st.TenantStayPropertyID)
	}

	roomNames := map[uuid.UUID]string{}
	propNames := map[uuid.UUID]string{}
	if len(stays) == 0 {
		return roomNames, propNames, nil
	}

	var rooms []propertyModel.Room
	if err := h.DB.Where("room_id IN ?", roomIDs).Find(&rooms).Error; err != nil {
		return nil, nil, err
	}
	for _, r := range rooms {
		roomNames[r.RoomID] = r.RoomNumber
	}

	var props []propertyModel.Property
	if err := h.DB.Where("property_id IN ?", propIDs).Find(&props).Error; err != nil {
		return nil, nil, err
	}
	for _, p := range props {
		propNames[p.PropertyID] = p.PropertyName
	}
	return roomNames, propNames, nil
}
