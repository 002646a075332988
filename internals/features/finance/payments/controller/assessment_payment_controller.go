// file: internals/features/finance/payments/controller/assessment_payment_controller.go
package controller

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	amodel "investku_backend/internals/features/assessments/assessments/model"
	emodel "investku_backend/internals/features/enterprises/model"
	"investku_backend/internals/features/finance/payments/dto"
	"investku_backend/internals/features/finance/payments/model"
	"investku_backend/internals/features/finance/payments/service"
	helper "investku_backend/internals/helpers"
)

type AssessmentPaymentController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewAssessmentPaymentController(db *gorm.DB) *AssessmentPaymentController {
	return &AssessmentPaymentController{DB: db, Validator: validator.New()}
}

/* =========================================================
   💳 Create payment + Snap token (enterprise user)
========================================================= */
func (ctrl *AssessmentPaymentController) CreatePayment(c *fiber.Ctx) error {
	var req dto.CreateAssessmentPaymentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Body request tidak valid")
	}
	if err := ctrl.Validator.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, "User tidak terautentikasi")
	}

	var enterprise emodel.EnterpriseModel
	if err := ctrl.DB.First(&enterprise, "enterprise_user_id = ?", userID).Error; err != nil {
		return helper.Error(c, fiber.StatusNotFound, "Enterprise untuk user ini tidak ditemukan")
	}

	// Assessment harus milik enterprise user login
	var assessment amodel.AssessmentModel
	if err := ctrl.DB.First(&assessment,
		"assessment_id = ? AND assessment_enterprise_id = ?",
		req.PaymentAssessmentID, enterprise.EnterpriseID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Assessment tidak ditemukan")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil assessment")
	}

	payment := model.AssessmentPaymentModel{
		PaymentAssessmentID: assessment.AssessmentID,
		PaymentEnterpriseID: enterprise.EnterpriseID,
		PaymentOrderID:      fmt.Sprintf("ASSESS-%d-%s", time.Now().Unix(), assessment.AssessmentID.String()[:8]),
		PaymentAmount:       req.PaymentAmount,
		PaymentStatus:       model.PaymentStatusPending,
	}

	token, redirectURL, err := service.GenerateSnapToken(payment, req.CustomerName, req.CustomerEmail)
	if err != nil {
		log.Printf("[PAYMENT] snap token failed: %v", err)
		return helper.Error(c, fiber.StatusBadGateway, "Gagal membuat transaksi Midtrans")
	}
	payment.PaymentSnapToken = token
	payment.PaymentRedirectURL = redirectURL

	if err := ctrl.DB.Create(&payment).Error; err != nil {
		log.Printf("[PAYMENT] create failed: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menyimpan payment")
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Payment berhasil dibuat", dto.ToAssessmentPaymentResponse(&payment))
}

/* =========================================================
   📄 List payment milik enterprise user login
========================================================= */
func (ctrl *AssessmentPaymentController) GetMyPayments(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, "User tidak terautentikasi")
	}

	var enterprise emodel.EnterpriseModel
	if err := ctrl.DB.First(&enterprise, "enterprise_user_id = ?", userID).Error; err != nil {
		return helper.Error(c, fiber.StatusNotFound, "Enterprise untuk user ini tidak ditemukan")
	}

	var payments []model.AssessmentPaymentModel
	if err := ctrl.DB.
		Where("payment_enterprise_id = ?", enterprise.EnterpriseID).
		Order("payment_created_at DESC").
		Find(&payments).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil payment")
	}

	return helper.Success(c, "Payment berhasil diambil", dto.ToAssessmentPaymentResponses(payments))
}

/* =========================================================
   📄 List semua payment (admin) + filter status
========================================================= */
func (ctrl *AssessmentPaymentController) GetAllPayments(c *fiber.Ctx) error {
	p := helper.ParseFiber(c, "created_at", "desc", helper.AdminOpts)

	allowedSort := map[string]string{
		"created_at": "payment_created_at",
		"amount":     "payment_amount",
	}
	orderClause, err := p.SafeOrderClause(allowedSort, "created_at")
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Parameter sort tidak valid")
	}

	tx := ctrl.DB.Model(&model.AssessmentPaymentModel{})
	if status := c.Query("status"); status != "" {
		tx = tx.Where("payment_status = ?", status)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menghitung payment")
	}

	var payments []model.AssessmentPaymentModel
	if err := tx.Order(orderClause).Limit(p.Limit()).Offset(p.Offset()).Find(&payments).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil payment")
	}

	return helper.Success(c, "Payment berhasil diambil", fiber.Map{
		"items": dto.ToAssessmentPaymentResponses(payments),
		"meta":  helper.BuildMeta(total, p),
	})
}

/* =========================================================
   📬 Webhook notifikasi Midtrans (public, tanpa auth)
========================================================= */
func (ctrl *AssessmentPaymentController) HandleNotification(c *fiber.Ctx) error {
	var body map[string]interface{}
	if err := c.BodyParser(&body); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload tidak valid")
	}

	if err := service.HandlePaymentStatusWebhook(ctrl.DB, body); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, err.Error())
	}

	return helper.Success(c, "Notifikasi diproses", nil)
}
