package helper

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"investku_backend/internals/helpers/errs"
)

// ✅ Success Response tanpa custom code (default 200)
func Success(c *fiber.Ctx, message string, data interface{}) error {
	return SuccessWithCode(c, fiber.StatusOK, message, data)
}

// ✅ Success Response dengan custom code (contoh 201 untuk created)
func SuccessWithCode(c *fiber.Ctx, code int, message string, data interface{}) error {
	return c.Status(code).JSON(fiber.Map{
		"code":    code,
		"status":  "success",
		"message": message,
		"data":    data,
	})
}

// ✅ Error Response sederhana
func Error(c *fiber.Ctx, code int, message string) error {
	return c.Status(code).JSON(fiber.Map{
		"code":    code,
		"status":  "error",
		"message": message,
	})
}

// ✅ Error Response advance (opsional), bisa kirim multiple field error
func ErrorWithDetails(c *fiber.Ctx, code int, message string, errDetails interface{}) error {
	return c.Status(code).JSON(fiber.Map{
		"code":    code,
		"status":  "error",
		"message": message,
		"errors":  errDetails,
	})
}

// ✅ Khusus error validasi (validator.v10)
func ValidationError(c *fiber.Ctx, err error) error {
	var ve validator.ValidationErrors
	if vErrors, ok := err.(validator.ValidationErrors); ok {
		ve = vErrors
	} else {
		return Error(c, fiber.StatusBadRequest, "Invalid input")
	}

	errorsMap := make(map[string]string)
	for _, fieldErr := range ve {
		errorsMap[fieldErr.Field()] = fieldErr.Tag() // bisa diganti jadi pesan kustom
	}

	return ErrorWithDetails(c, fiber.StatusBadRequest, "Validasi gagal", errorsMap)
}

/* ===============================
   Domain error mapping (workflow)
=================================*/

// DomainError memetakan typed error dari service ke envelope JSON + status code:
//   - InvalidTransitionError / ConcurrentModificationError → 409
//   - InvalidResponseError → 422
//   - InsightGenerationError → 502
//
// error_kind dan current_status ikut dikirim supaya FE bisa resync tanpa tebak-tebakan.
func DomainError(c *fiber.Ctx, err error) error {
	kind, currentStatus, ok := errs.KindOf(err)
	if !ok {
		// bukan domain error → fallback not-found/fiber/500
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return Error(c, fiber.StatusNotFound, "Data tidak ditemukan")
		}
		var fe *fiber.Error
		if errors.As(err, &fe) {
			return Error(c, fe.Code, fe.Message)
		}
		return Error(c, fiber.StatusInternalServerError, err.Error())
	}

	code := fiber.StatusConflict
	switch kind {
	case errs.KindInvalidResponse:
		code = fiber.StatusUnprocessableEntity
	case errs.KindInsightGeneration:
		code = fiber.StatusBadGateway
	}

	body := fiber.Map{
		"code":       code,
		"status":     "error",
		"message":    err.Error(),
		"error_kind": kind,
	}
	if currentStatus != "" {
		body["current_status"] = currentStatus
	}
	return c.Status(code).JSON(body)
}
