package api

import (
	"errors"
	"net/http"
	"time"

	"fdict/dictation-api/config"
	"fdict/dictation-api/middleware"
	"fdict/dictation-api/model"
	"fdict/dictation-api/validators"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const sessionMaxAge = 60 * 60 * 24 * 30 // 30 days

var (
	errInvalidCredentials = errors.New("invalid credentials")
	errRateLimited        = errors.New("too many login attempts")
)

type loginBody struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (a *API) AuthLogin(c *gin.Context) {
	requestID := c.MustGet("requestID").(string)

	var data loginBody
	if err := c.ShouldBindJSON(&data); err != nil {
		respondError(c, http.StatusBadRequest, "AUTH_INVALID_INPUT", "Invalid input data", err.Error())
		return
	}

	user, err := a.authorize(data.Email, data.Password)
	if err != nil {
		switch err {
		case errInvalidCredentials, errRateLimited:
			// One generic outcome for every rejected step so callers
			// can't probe which emails are registered.
			zap.L().Debug("Login rejected", zap.Error(err), zap.String("requestID", requestID))

			respondError(c, http.StatusUnauthorized, "AUTH_INVALID_CREDENTIALS", "Invalid email or password", nil)
		default:
			respondError(c, http.StatusInternalServerError, "AUTH_LOGIN_FAILED", "Internal server error", err.Error())

			zap.L().Error("Login failed", zap.Error(err), zap.String("requestID", requestID))
		}
		return
	}

	token, err := makeToken(&jwt.MapClaims{
		"user_id": user.ID,
		"type":    "auth",
		"iat":     time.Now().Unix(),
		"exp":     time.Now().Add(time.Second * sessionMaxAge).Unix(),
	})
	if err != nil {
		respondError(c, http.StatusInternalServerError, "AUTH_LOGIN_FAILED", "Internal server error", err.Error())

		zap.L().Error("Failed to generate session token", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	c.SetCookie(middleware.SessionCookie, token, sessionMaxAge, "/", "", config.Production(), true)

	respondData(c, http.StatusOK, gin.H{
		"user": gin.H{
			"id":    user.ID,
			"email": user.Email,
		},
	})
}

// authorize runs the login steps in order: schema check, per-email rate
// limit, user lookup, password verification. All rejections surface as
// errInvalidCredentials or errRateLimited; anything else is an
// infrastructure error. The limiter is keyed by the submitted email and only
// reset once the whole chain succeeds.
func (a *API) authorize(email, password string) (*model.User, error) {
	if validators.EmailValidator(email) != nil || password == "" {
		return nil, errInvalidCredentials
	}

	if res := a.Logins.Check(email); !res.Allowed {
		return nil, errRateLimited
	}

	var user model.User

	err := a.DB.Where("email = ?", email).First(&user).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errInvalidCredentials
		}

		return nil, err
	}

	ok, err := a.Argon.VerifyPasswd(password, user.PasswordHash)
	if err != nil {
		return nil, err
	}

	if !ok {
		return nil, errInvalidCredentials
	}

	a.Logins.Reset(email)

	return &user, nil
}

func makeToken(c *jwt.MapClaims) (string, error) {
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, c)
	return t.SignedString([]byte(viper.GetString("jwt.secret")))
}
