// file: internals/features/users/controller/auth_controller.go
package controller

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"hostelku_backend/internals/constants"
	dto "hostelku_backend/internals/features/users/dto"
	model "hostelku_backend/internals/features/users/model"
	service "hostelku_backend/internals/features/users/service"
	helper "hostelku_backend/internals/helpers"
)

type AuthController struct {
	DB *gorm.DB
}

func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{DB: db}
}

// =============================
// 📝 Register owner account
// POST /api/public/auth/register
// =============================
func (ctl *AuthController) Register(c *fiber.Ctx) error {
	var body dto.RegisterDTO
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := helper.Validate.Struct(body); err != nil {
		return helper.JsonValidationError(c, helper.ValidationMap(err))
	}

	email := strings.ToLower(strings.TrimSpace(body.UserEmail))

	var count int64
	if err := ctl.DB.Model(&model.UserModel{}).
		Where("user_email = ?", email).
		Count(&count).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to check email")
	}
	if count > 0 {
		return helper.JsonError(c, fiber.StatusConflict, "Email is already registered")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(body.UserPassword), bcrypt.DefaultCost)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to hash password")
	}

	user := model.UserModel{
		UserName:     body.UserName,
		UserEmail:    email,
		UserPhone:    body.UserPhone,
		UserPassword: string(hash),
		UserRole:     constants.RoleOwner,
		UserIsActive: true,
	}
	if err := ctl.DB.Create(&user).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create account")
	}

	return ctl.respondWithTokens(c, user, fiber.StatusCreated, "Account created")
}

// =============================
// 🔑 Login
// POST /api/public/auth/login
// =============================
func (ctl *AuthController) Login(c *fiber.Ctx) error {
	var body dto.LoginDTO
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := helper.Validate.Struct(body); err != nil {
		return helper.JsonValidationError(c, helper.ValidationMap(err))
	}

	email := strings.ToLower(strings.TrimSpace(body.UserEmail))

	var user model.UserModel
	if err := ctl.DB.
		Where("user_email = ?", email).
		First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusUnauthorized, "Invalid email or password")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch account")
	}
	if !user.UserIsActive {
		return helper.JsonError(c, fiber.StatusForbidden, "Account is deactivated")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.UserPassword), []byte(body.UserPassword)); err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Invalid email or password")
	}

	return ctl.respondWithTokens(c, user, fiber.StatusOK, "Logged in")
}

// =============================
// 🔄 Refresh access token
// POST /api/public/auth/refresh
// =============================
func (ctl *AuthController) Refresh(c *fiber.Ctx) error {
	var body dto.RefreshDTO
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := helper.Validate.Struct(body); err != nil {
		return helper.JsonValidationError(c, helper.ValidationMap(err))
	}

	sub, err := service.ParseRefreshToken(body.RefreshToken)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Invalid refresh token")
	}

	var user model.UserModel
	if err := ctl.DB.
		Where("user_id = ? AND user_is_active = true", sub).
		First(&user).Error; err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Account not found or deactivated")
	}

	return ctl.respondWithTokens(c, user, fiber.StatusOK, "Token refreshed")
}

// =============================
// 👤 Current account
// GET /api/u/me
// =============================
func (ctl *AuthController) Me(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "missing token context")
	}

	var user model.UserModel
	if err := ctl.DB.
		Where("user_id = ?", userID).
		First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Account not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch account")
	}

	return helper.JsonOK(c, "OK", dto.ToUserResponse(user))
}

// =============================
// 🧑‍💼 Appoint manager (owner only)
// POST /api/a/managers
// =============================
func (ctl *AuthController) CreateManager(c *fiber.Ctx) error {
	role, err := helper.GetRoleFromToken(c)
	if err != nil || role != constants.RoleOwner {
		return helper.JsonError(c, fiber.StatusForbidden, "Only owners can appoint managers")
	}
	ownerID, err := helper.GetOwnerIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "missing owner scope")
	}

	var body dto.ManagerCreateDTO
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := helper.Validate.Struct(body); err != nil {
		return helper.JsonValidationError(c, helper.ValidationMap(err))
	}

	email := strings.ToLower(strings.TrimSpace(body.UserEmail))

	var count int64
	if err := ctl.DB.Model(&model.UserModel{}).
		Where("user_email = ?", email).
		Count(&count).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to check email")
	}
	if count > 0 {
		return helper.JsonError(c, fiber.StatusConflict, "Email is already registered")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(body.UserPassword), bcrypt.DefaultCost)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to hash password")
	}

	manager := model.UserModel{
		UserOwnerID:  &ownerID,
		UserName:     body.UserName,
		UserEmail:    email,
		UserPhone:    body.UserPhone,
		UserPassword: string(hash),
		UserRole:     constants.RoleManager,
		UserIsActive: true,
	}
	if err := ctl.DB.Create(&manager).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create manager")
	}

	return helper.JsonCreated(c, "Manager appointed", dto.ToUserResponse(manager))
}

/* =========================================================
   internals
========================================================= */

func (ctl *AuthController) respondWithTokens(c *fiber.Ctx, user model.UserModel, status int, message string) error {
	access, err := service.IssueAccessToken(user)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to sign token")
	}
	refresh, err := service.IssueRefreshToken(user)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to sign token")
	}

	return c.Status(status).JSON(fiber.Map{
		"success": true,
		"message": message,
		"data": dto.AuthResponse{
			User:         dto.ToUserResponse(user),
			AccessToken:  access,
			RefreshToken: refresh,
		},
	})
}
