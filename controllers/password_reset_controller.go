package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rolemap/api-go/config"
	"github.com/rolemap/api-go/email"
	"github.com/rolemap/api-go/models"
	"github.com/rolemap/api-go/utils"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

const resetTokenTTL = 15 * time.Minute

type PasswordResetController struct {
	DB     *gorm.DB
	Mailer *email.Mailer
}

func NewPasswordResetController(db *gorm.DB, mailer *email.Mailer) *PasswordResetController {
	return &PasswordResetController{DB: db, Mailer: mailer}
}

// RequestReset issues a 6-digit code for the account behind the email. The
// response never reveals whether the account exists.
func (prc *PasswordResetController) RequestReset(c *gin.Context) {
	var input struct {
		Email string `json:"email" binding:"required,email"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "success": false})
		return
	}

	genericResponse := gin.H{
		"success": true,
		"message": "If the email is registered, a reset code has been sent",
	}

	var user models.User
	if err := prc.DB.Where("email = ?", input.Email).First(&user).Error; err != nil {
		c.JSON(http.StatusOK, genericResponse)
		return
	}

	code, err := utils.GenerateResetCode()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate reset code", "success": false})
		return
	}

	expiresAt := time.Now().Add(resetTokenTTL)
	token, err := utils.GenerateResetToken(user.ID, expiresAt)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate reset token", "success": false})
		return
	}

	resetToken := models.PasswordResetToken{
		UserID:    user.ID,
		Token:     token,
		Code:      code,
		ExpiresAt: expiresAt,
	}

	if err := prc.DB.Create(&resetToken).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create reset token", "success": false})
		return
	}

	if config.IsDevelopment() {
		// Dev bypass: hand the code back instead of emailing it.
		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"message": "If the email is registered, a reset code has been sent",
			"code":    code,
		})
		return
	}

	if err := prc.Mailer.SendPasswordResetEmail(user.Email, code, token); err != nil {
		log.WithField("userId", user.ID).Error("Reset email delivery failed: ", err)
	}

	c.JSON(http.StatusOK, genericResponse)
}

// VerifyReset consumes a reset code (or link token) and sets the new
// password. A code works exactly once and never after expiry.
func (prc *PasswordResetController) VerifyReset(c *gin.Context) {
	var input struct {
		Code        string `json:"code"`
		Token       string `json:"token"`
		NewPassword string `json:"newPassword" binding:"required,min=6"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "success": false})
		return
	}

	if input.Code == "" && input.Token == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Either code or token is required", "success": false})
		return
	}

	var resetToken models.PasswordResetToken
	var err error

	if input.Code != "" {
		err = prc.DB.Where("code = ? AND is_used = ?", input.Code, false).
			Order("created_at DESC").First(&resetToken).Error
	} else {
		var userID uint
		userID, err = utils.ParseResetToken(input.Token)
		if err == nil {
			err = prc.DB.Where("user_id = ? AND token = ? AND is_used = ?", userID, input.Token, false).
				Order("created_at DESC").First(&resetToken).Error
		}
	}

	// One generic error for unknown, used and expired codes alike.
	if err != nil || !resetToken.Usable() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid or expired code", "success": false})
		return
	}

	hashed, err := utils.HashPassword(input.NewPassword)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not hash password", "success": false})
		return
	}

	err = prc.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.User{}).Where("id = ?", resetToken.UserID).
			Update("password", hashed).Error; err != nil {
			return err
		}
		return tx.Model(&resetToken).Update("is_used", true).Error
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to reset password", "success": false})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Password reset successfully"})
}
