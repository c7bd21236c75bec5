package handler

import (
	"strings"

	"bioskop_tiket/database"
	"bioskop_tiket/helper"
	"bioskop_tiket/model"
	"bioskop_tiket/utils"

	"github.com/gofiber/fiber/v2"
)

// Login checks the credentials and issues a session token. Accounts migrated
// from the old system may still hold a plain-text password; those get
// upgraded to bcrypt on their first successful login.
func Login(c *fiber.Ctx) error {
	input := c.Locals("input").(model.LoginInput)

	user, err := helper.GetUserByUsername(input.Username)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Server error", err)
	}
	if user == nil {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, "Invalid username or password", nil)
	}

	if helper.IsBcryptHash(user.Password) {
		if !helper.CheckPasswordHash(input.Password, user.Password) {
			return utils.ErrorResponse(c, fiber.StatusUnauthorized, "Invalid username or password", nil)
		}
	} else {
		if user.Password != input.Password {
			return utils.ErrorResponse(c, fiber.StatusUnauthorized, "Invalid username or password", nil)
		}
		if hashed, err := helper.HashPassword(input.Password); err == nil {
			database.DB.Model(user).Update("password", hashed)
		}
	}

	token, err := helper.GenerateToken(user)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Server error", err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"message": "Login successful",
		"data": fiber.Map{
			"user": fiber.Map{
				"id":       user.ID,
				"username": user.Username,
				"email":    user.Email,
				"phone":    user.Phone,
				"role":     user.Role,
			},
			"token": token,
		},
	})
}

// Register creates a user account. Email is optional; accounts without one
// get a placeholder address so the unique index stays usable.
func Register(c *fiber.Ctx) error {
	input := c.Locals("input").(model.RegisterInput)

	username := strings.TrimSpace(input.Username)
	email := strings.TrimSpace(input.Email)
	if email == "" {
		email = username + "@no-email.com"
	}
	if !helper.ValidEmail(email) {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Format email tidak valid", nil)
	}

	var count int64
	if err := database.DB.Model(&model.User{}).
		Where("username = ? OR email = ?", username, email).
		Count(&count).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Server error", err)
	}
	if count > 0 {
		return utils.ErrorResponse(c, fiber.StatusConflict, "Username atau email sudah digunakan", nil)
	}

	hashed, err := helper.HashPassword(input.Password)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Server error", err)
	}

	phone := strings.TrimSpace(input.Phone)
	user := model.User{
		Username: username,
		Email:    email,
		Password: hashed,
		Phone:    &phone,
	}
	if err := database.DB.Create(&user).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusConflict, "Username atau email sudah digunakan", err)
	}

	return utils.SuccessResponse(c, fiber.StatusCreated, fiber.Map{
		"message": "Registrasi berhasil! Silakan login.",
		"data": fiber.Map{
			"id":       user.ID,
			"username": user.Username,
			"email":    user.Email,
		},
	})
}
