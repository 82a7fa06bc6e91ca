// file: internals/features/finance/payments/controller/payment_controller.go
package controller

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	dto "hostelku_backend/internals/features/finance/payments/dto"
	model "hostelku_backend/internals/features/finance/payments/model"
	service "hostelku_backend/internals/features/finance/payments/service"
	helper "hostelku_backend/internals/helpers"
)

type PaymentController struct {
	DB *gorm.DB
}

func NewPaymentController(db *gorm.DB) *PaymentController {
	return &PaymentController{DB: db}
}

var paymentSortKeys = map[string]string{
	"created_at": "payment_created_at",
	"date":       "payment_date",
	"amount":     "payment_amount",
}

// =============================
// 📄 List payments (owner scope)
// GET /api/a/payments?tenant_id=&charge_id=&method=&status=
// =============================
func (ctl *PaymentController) List(c *fiber.Ctx) error {
	ownerID, err := helper.GetOwnerIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "missing owner scope")
	}

	// export=true lifts the page cap for accounting pulls
	opts := helper.DefaultOpts
	if c.Query("export") == "true" {
		opts = helper.ExportOpts
	}
	p := helper.ParseFiber(c, "date", "desc", opts)

	q := ctl.DB.Model(&model.Payment{}).
		Where("payment_owner_user_id = ?", ownerID)

	if raw := c.Query("tenant_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "tenant_id is not a valid UUID")
		}
		q = q.Where("payment_tenant_id = ?", id)
	}
	if raw := c.Query("charge_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "charge_id is not a valid UUID")
		}
		q = q.Where("payment_charge_id = ?", id)
	}
	if method := c.Query("method"); method != "" {
		q = q.Where("payment_method = ?", method)
	}
	if status := c.Query("status"); status != "" {
		q = q.Where("payment_status = ?", status)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count payments")
	}

	order, _ := p.SafeOrderClause(paymentSortKeys, "date")

	var rows []model.Payment
	if err := q.
		Order(strings.TrimPrefix(order, "ORDER BY ")).
		Limit(p.Limit()).
		Offset(p.Offset()).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch payments")
	}

	out := make([]dto.PaymentResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.ToPaymentResponse(r))
	}

	return helper.JsonList(c, "", out, helper.BuildMeta(total, p))
}

// =============================
// ➕ Record offline payment
// POST /api/a/payments
// Settles immediately and advances the linked charge in one transaction.
// =============================
func (ctl *PaymentController) Create(c *fiber.Ctx) error {
	ownerID, err := helper.GetOwnerIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "missing owner scope")
	}

	var body dto.PaymentCreateDTO
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := helper.Validate.Struct(body); err != nil {
		return helper.JsonValidationError(c, helper.ValidationMap(err))
	}
	if !body.PaymentAmount.IsPositive() {
		return helper.JsonError(c, fiber.StatusBadRequest, "payment_amount must be positive")
	}

	payment := dto.PaymentCreateDTOToModel(body, ownerID)

	if err := ctl.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&payment).Error; err != nil {
			return err
		}
		return service.ApplyPaymentToCharge(tx, payment)
	}); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Linked charge not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to record payment")
	}

	return helper.JsonCreated(c, "Payment recorded", dto.ToPaymentResponse(payment))
}

// =============================
// 🌐 Start online payment (gateway)
// POST /api/a/payments/online
// Creates a pending payment and returns the snap token; settlement happens
// via the webhook.
// =============================
func (ctl *PaymentController) CreateOnline(c *fiber.Ctx) error {
	ownerID, err := helper.GetOwnerIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "missing owner scope")
	}

	var body dto.PaymentOnlineCreateDTO
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := helper.Validate.Struct(body); err != nil {
		return helper.JsonValidationError(c, helper.ValidationMap(err))
	}
	if !body.PaymentAmount.IsPositive() {
		return helper.JsonError(c, fiber.StatusBadRequest, "payment_amount must be positive")
	}

	externalID := fmt.Sprintf("RENT-%s", uuid.NewString())
	payment := model.Payment{
		PaymentOwnerUserID: ownerID,
		PaymentTenantID:    body.PaymentTenantID,
		PaymentChargeID:    body.PaymentChargeID,
		PaymentAmount:      body.PaymentAmount,
		PaymentDate:        time.Now(),
		PaymentMethod:      model.PaymentMethodOnline,
		PaymentStatus:      model.PaymentStatusPending,
		PaymentForPeriod:   body.PaymentForPeriod,
		PaymentChargeType:  body.PaymentChargeType,
		PaymentExternalID:  &externalID,
	}

	token, redirectURL, err := service.GenerateSnapToken(payment, service.CustomerInput{
		FirstName: body.CustomerFirstName,
		LastName:  body.CustomerLastName,
		Email:     body.CustomerEmail,
		Phone:     body.CustomerPhone,
	})
	if err != nil {
		return helper.JsonErrorWithDetail(c, fiber.StatusBadGateway, "Failed to create gateway transaction", err.Error())
	}
	payment.PaymentSnapToken = &token

	if err := ctl.DB.Create(&payment).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to save payment")
	}

	return helper.JsonCreated(c, "Gateway transaction created", fiber.Map{
		"payment":      dto.ToPaymentResponse(payment),
		"snap_token":   token,
		"redirect_url": redirectURL,
	})
}

// =============================
// 🔔 Gateway webhook (public)
// POST /api/public/payments/webhook
// Order ID maps back via payment_external_id.
// =============================
type webhookPayload struct {
	OrderID           string `json:"order_id"`
	TransactionStatus string `json:"transaction_status"`
	FraudStatus       string `json:"fraud_status"`
}

func (ctl *PaymentController) Webhook(c *fiber.Ctx) error {
	var body webhookPayload
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid webhook payload")
	}
	if body.OrderID == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "order_id is required")
	}

	var payment model.Payment
	if err := ctl.DB.
		Where("payment_external_id = ?", body.OrderID).
		First(&payment).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Unknown order_id")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to look up payment")
	}

	// already final: webhooks can repeat, just acknowledge
	if payment.PaymentStatus != model.PaymentStatusPending {
		return helper.JsonOK(c, "Already processed", fiber.Map{"payment_status": payment.PaymentStatus})
	}

	var next model.PaymentStatus
	switch body.TransactionStatus {
	case "capture":
		if body.FraudStatus == "accept" {
			next = model.PaymentStatusSettled
		} else {
			next = model.PaymentStatusPending
		}
	case "settlement":
		next = model.PaymentStatusSettled
	case "deny", "cancel", "expire", "failure":
		next = model.PaymentStatusFailed
	default:
		// pending / challenge, nothing to do yet
		return helper.JsonOK(c, "No status change", fiber.Map{"payment_status": payment.PaymentStatus})
	}
	if next == model.PaymentStatusPending {
		return helper.JsonOK(c, "No status change", fiber.Map{"payment_status": payment.PaymentStatus})
	}

	if err := ctl.DB.Transaction(func(tx *gorm.DB) error {
		updates := map[string]interface{}{"payment_status": next}
		if next == model.PaymentStatusSettled {
			updates["payment_date"] = time.Now()
		}
		if err := tx.Model(&model.Payment{}).
			Where("payment_id = ?", payment.PaymentID).
			Updates(updates).Error; err != nil {
			return err
		}
		if next == model.PaymentStatusSettled {
			payment.PaymentStatus = model.PaymentStatusSettled
			payment.PaymentDate = time.Now()
			return service.ApplyPaymentToCharge(tx, payment)
		}
		return nil
	}); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to process webhook")
	}

	return helper.JsonOK(c, "Webhook processed", fiber.Map{"payment_status": next})
}
