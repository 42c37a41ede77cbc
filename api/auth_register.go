package api

import (
	"errors"
	"net/http"

	"fdict/dictation-api/model"
	"fdict/dictation-api/validators"

	"github.com/gin-gonic/gin"
	gonanoid "github.com/matoous/go-nanoid/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type registerBody struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (a *API) AuthRegister(c *gin.Context) {
	requestID := c.MustGet("requestID").(string)

	var data registerBody
	if err := c.ShouldBindJSON(&data); err != nil {
		respondError(c, http.StatusBadRequest, "AUTH_INVALID_INPUT", "Invalid input data", err.Error())
		return
	}

	fields := map[string]string{}

	if err := validators.EmailValidator(data.Email); err != nil {
		fields["email"] = err.Error()
	}

	if err := validators.PasswordValidator(data.Password); err != nil {
		fields["password"] = err.Error()
	}

	if len(fields) > 0 {
		zap.L().Debug("Rejected registration input", zap.String("requestID", requestID))

		respondError(c, http.StatusBadRequest, "AUTH_INVALID_INPUT", "Invalid input data", fields)
		return
	}

	var count int64

	err := a.DB.Model(&model.User{}).
		Where("email = ?", data.Email).
		Count(&count).
		Error
	if err != nil {
		respondError(c, http.StatusInternalServerError, "AUTH_REGISTRATION_FAILED", "Registration failed. Please try again.", err.Error())

		zap.L().Error("Failed to check if user is registered", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	if count > 0 {
		respondError(c, http.StatusConflict, "AUTH_EMAIL_EXISTS", "An account with this email already exists", nil)
		return
	}

	hash, err := a.Argon.GenerateFromPassword(data.Password)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "AUTH_REGISTRATION_FAILED", "Registration failed. Please try again.", err.Error())

		zap.L().Error("Failed to hash password", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	userID, err := gonanoid.New()
	if err != nil {
		respondError(c, http.StatusInternalServerError, "AUTH_REGISTRATION_FAILED", "Registration failed. Please try again.", err.Error())

		zap.L().Error("Failed to generate user ID", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	user := model.User{
		ID:           userID,
		Email:        data.Email,
		PasswordHash: hash,
	}

	if err := a.DB.Create(&user).Error; err != nil {
		// The uniqueness check above races with concurrent registrations,
		// the unique index has the final say.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			respondError(c, http.StatusConflict, "AUTH_EMAIL_EXISTS", "An account with this email already exists", nil)
			return
		}

		respondError(c, http.StatusInternalServerError, "AUTH_REGISTRATION_FAILED", "Registration failed. Please try again.", err.Error())

		zap.L().Error("Failed to create user", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	respondData(c, http.StatusCreated, gin.H{
		"user": gin.H{
			"id":        user.ID,
			"email":     user.Email,
			"createdAt": user.CreatedAt,
		},
	})
}
