// 📁 controller/auth_controller.go
package controller

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"log"
	"time"

	googleAuthIDTokenVerifier "github.com/futurenda/google-auth-id-token-verifier"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"almanar_backend/internals/configs"
	"almanar_backend/internals/constants"
	"almanar_backend/internals/features/users/auth/dto"
	"almanar_backend/internals/features/users/auth/model"
	authService "almanar_backend/internals/features/users/auth/service"
	helpers "almanar_backend/internals/helpers"
)

type AuthController struct {
	DB *gorm.DB
}

func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{DB: db}
}

// 🟢 LOGIN: email + password, role re-derived from the allow-list
func (ctrl *AuthController) Login(c *fiber.Ctx) error {
	var body dto.LoginRequest
	if err := c.BodyParser(&body); err != nil {
		return helpers.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := helpers.Validate.Struct(body); err != nil {
		return helpers.ValidationError(c, err)
	}

	var user model.AdminUser
	if err := ctrl.DB.Where("admin_user_email = ?", body.Email).First(&user).Error; err != nil {
		return helpers.Error(c, fiber.StatusUnauthorized, "Invalid email or password")
	}
	if !user.AdminUserIsActive {
		return helpers.Error(c, fiber.StatusUnauthorized, "Account is inactive")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.AdminUserPassword), []byte(body.Password)); err != nil {
		return helpers.Error(c, fiber.StatusUnauthorized, "Invalid email or password")
	}

	return ctrl.issueTokens(c, user)
}

// 🟢 GOOGLE LOGIN: verify ID token, bind role by email allow-list
func (ctrl *AuthController) GoogleLogin(c *fiber.Ctx) error {
	var body dto.GoogleLoginRequest
	if err := c.BodyParser(&body); err != nil {
		return helpers.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := helpers.Validate.Struct(body); err != nil {
		return helpers.ValidationError(c, err)
	}

	v := googleAuthIDTokenVerifier.Verifier{}
	if err := v.VerifyIDToken(body.IDToken, []string{configs.GoogleClientID}); err != nil {
		return helpers.Error(c, fiber.StatusUnauthorized, "Invalid Google ID Token")
	}
	claimSet, err := googleAuthIDTokenVerifier.Decode(body.IDToken)
	if err != nil {
		return helpers.Error(c, fiber.StatusInternalServerError, "Failed to decode ID Token")
	}
	email, name, googleID := claimSet.Email, claimSet.Name, claimSet.Sub

	var user model.AdminUser
	err = ctrl.DB.Where("admin_user_google_id = ?", googleID).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		// first Google sign-in: create the account row
		user = model.AdminUser{
			AdminUserName:     name,
			AdminUserEmail:    email,
			AdminUserPassword: randomDummyPassword(),
			AdminUserGoogleID: &googleID,
			AdminUserIsActive: true,
		}
		if err := ctrl.DB.Create(&user).Error; err != nil {
			log.Println("[ERROR] google login create user:", err)
			return helpers.Error(c, fiber.StatusInternalServerError, "Failed to create account")
		}
	} else if err != nil {
		return helpers.Error(c, fiber.StatusInternalServerError, "Internal Server Error")
	}

	return ctrl.issueTokens(c, user)
}

// 🟢 REFRESH: redeem a refresh token for a fresh access/refresh pair
func (ctrl *AuthController) RefreshToken(c *fiber.Ctx) error {
	var body dto.RefreshTokenRequest
	if err := c.BodyParser(&body); err != nil {
		return helpers.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := helpers.Validate.Struct(body); err != nil {
		return helpers.ValidationError(c, err)
	}

	claims, err := authService.ParseRefreshToken(body.RefreshToken)
	if err != nil {
		return helpers.Error(c, fiber.StatusUnauthorized, "Invalid or expired refresh token")
	}
	rawID, _ := claims["user_id"].(string)
	userID, err := uuid.Parse(rawID)
	if err != nil {
		return helpers.Error(c, fiber.StatusUnauthorized, "Invalid or expired refresh token")
	}

	var user model.AdminUser
	if err := ctrl.DB.Where("admin_user_id = ?", userID).First(&user).Error; err != nil {
		return helpers.Error(c, fiber.StatusUnauthorized, "Account not found")
	}
	if !user.AdminUserIsActive {
		return helpers.Error(c, fiber.StatusUnauthorized, "Account is inactive")
	}

	return ctrl.issueTokens(c, user)
}

// 🟢 LOGOUT: blacklist the presented token until it expires
func (ctrl *AuthController) Logout(c *fiber.Ctx) error {
	token, _ := c.Locals("token").(string)
	if token == "" {
		return helpers.Error(c, fiber.StatusBadRequest, "No token to revoke")
	}

	entry := model.TokenBlacklist{
		Token:     token,
		ExpiredAt: time.Now().Add(24 * time.Hour),
	}
	if err := ctrl.DB.Create(&entry).Error; err != nil {
		log.Println("[ERROR] logout blacklist insert:", err)
		return helpers.Error(c, fiber.StatusInternalServerError, "Failed to log out")
	}
	return helpers.Success(c, "Logged out", nil)
}

// 🟢 ME: identity + role for the router on the front end
func (ctrl *AuthController) Me(c *fiber.Ctx) error {
	return helpers.Success(c, "OK", fiber.Map{
		"user_id": c.Locals("user_id"),
		"email":   c.Locals("email"),
		"role":    c.Locals("role"),
	})
}

// 🟢 REGISTER ADMIN (owner only): password accounts for operators without Google
func (ctrl *AuthController) RegisterAdmin(c *fiber.Ctx) error {
	var body dto.RegisterAdminRequest
	if err := c.BodyParser(&body); err != nil {
		return helpers.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := helpers.Validate.Struct(body); err != nil {
		return helpers.ValidationError(c, err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(body.Password), bcrypt.DefaultCost)
	if err != nil {
		return helpers.Error(c, fiber.StatusInternalServerError, "Failed to hash password")
	}

	user := model.AdminUser{
		AdminUserName:     body.Name,
		AdminUserEmail:    body.Email,
		AdminUserPassword: string(hash),
		AdminUserRole:     constants.RoleForEmail(body.Email),
		AdminUserIsActive: true,
	}
	if err := ctrl.DB.Create(&user).Error; err != nil {
		return helpers.Error(c, fiber.StatusConflict, "Email already registered")
	}
	return helpers.SuccessWithCode(c, fiber.StatusCreated, "Admin registered", user)
}

func (ctrl *AuthController) issueTokens(c *fiber.Ctx, user model.AdminUser) error {
	// the allow-list is the source of truth for role bindings
	role := constants.RoleForEmail(user.AdminUserEmail)
	if user.AdminUserRole != role {
		user.AdminUserRole = role
		if err := ctrl.DB.Model(&user).Update("admin_user_role", role).Error; err != nil {
			log.Println("[ERROR] role refresh:", err)
		}
	}

	access, err := authService.GenerateAccessToken(user)
	if err != nil {
		return helpers.Error(c, fiber.StatusInternalServerError, "Failed to issue token")
	}
	refresh, err := authService.GenerateRefreshToken(user)
	if err != nil {
		return helpers.Error(c, fiber.StatusInternalServerError, "Failed to issue token")
	}

	return helpers.Success(c, "Login successful", dto.LoginResponse{
		AccessToken:  access,
		RefreshToken: refresh,
		Role:         user.AdminUserRole,
		Name:         user.AdminUserName,
		Email:        user.AdminUserEmail,
	})
}

func randomDummyPassword() string {
	b := make([]byte, 24)
	if _, err := rand.Read(b); err != nil {
		return "google-auth-placeholder"
	}
	return hex.EncodeToString(b)
}
