// Package api contains all endpoints available
package api

import (
	"fmt"
	"time"

	"fdict/dictation-api/cloudflare"
	"fdict/dictation-api/db"
	"fdict/dictation-api/internal/ratelimit"
	"fdict/dictation-api/middleware"
	"fdict/dictation-api/security"
	"fdict/dictation-api/validators"

	cache "github.com/chenyahui/gin-cache"
	"github.com/chenyahui/gin-cache/persist"
	"github.com/gin-contrib/cors"
	ginzap "github.com/gin-contrib/zap"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gorm.io/gorm"
)

const (
	gray  = "\x1b[90m"
	reset = "\x1b[0m"
)

// Login attempts allowed per email within one rate window.
const (
	loginMaxAttempts = 5
	loginWindow      = time.Minute
)

type API struct {
	DB     *gorm.DB
	Router *gin.Engine
	Argon  *security.ArgonHash
	R2     *cloudflare.R2Client
	Logins *ratelimit.Limiter

	store *persist.MemoryStore
}

func NewRouter() (*API, error) {
	database, err := db.New()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database, %w", err)
	}

	r2, err := cloudflare.NewR2()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize R2 client, %w", err)
	}

	makeLogger()

	a := &API{
		DB:     database,
		Argon:  security.New(),
		R2:     r2,
		Logins: ratelimit.New(loginMaxAttempts, loginWindow),
	}

	a.Logins.StartSweeper(5 * time.Minute)
	a.setupRoutes()

	return a, nil
}

func (a *API) setupRoutes() {
	router := gin.New()
	a.Router = router
	a.store = persist.NewMemoryStore(time.Minute)

	router.Use(
		cors.New(cors.Config{
			AllowOrigins:     []string{"http://localhost:3000"},
			AllowMethods:     []string{"GET", "POST", "HEAD", "OPTIONS"},
			AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
			ExposeHeaders:    []string{"Content-Length"},
			AllowCredentials: true,
			MaxAge:           12 * time.Hour,
		}),
		gin.Recovery(),
		middleware.NewRequestIDMiddleware(),
		ginzap.GinzapWithConfig(zap.L(), &ginzap.Config{
			TimeFormat: "15:04:05.000",
			UTC:        true,
			Skipper: func(c *gin.Context) bool {
				return c.Request.Method == "HEAD"
			},
			Context: func(c *gin.Context) []zapcore.Field {
				fields := []zapcore.Field{}

				if v := c.GetString("requestID"); v != "" {
					fields = append(fields, zap.String("request_id", v))
				}

				if v := c.GetString("userID"); v != "" {
					fields = append(fields, zap.String("userID", v))
				}

				return fields
			},
		}),
	)

	router.HandleMethodNotAllowed = true
	router.RedirectFixedPath = true

	session := middleware.NewSessionMiddleware(a.DB)
	throttle := middleware.NewThrottleMiddleware(middleware.ThrottleConfig{
		RequestsPerSecond: 5,
		Burst:             20,
	})

	main := router.Group("/api")
	{
		// HEAD /api/heartbeat		-> Used to check if the server is alive
		main.HEAD("/heartbeat", a.Heartbeat)

		// GET /api/health		-> Reports app and database health
		main.GET("/health", a.Health)

		// HEAD /api/validate		-> Validates the session cookie
		main.HEAD("/validate", session, a.Validate)
	}

	auth := main.Group("/auth", throttle, middleware.BodySizeLimiter(1<<20))
	{
		// POST /api/auth/register	-> Registers a new user
		auth.POST("/register", a.AuthRegister)

		// POST /api/auth/login		-> Verifies credentials and issues a session cookie
		auth.POST("/login", a.AuthLogin)

		// POST /api/auth/logout	-> Clears the session cookie
		auth.POST("/logout", a.AuthLogout)
	}

	clips := main.Group("/clips")
	{
		// GET /api/clips		-> Paginated public clip listing
		clips.GET("", a.cacheFor(30), a.ClipList)

		// GET /api/clips/:id		-> Returns a single clip
		clips.GET("/:id", a.cacheFor(30), a.ClipGet)

		// POST /api/clips/upload	-> Uploads a new clip and stores its metadata
		clips.POST("/upload", session, middleware.BodySizeLimiter(validators.MaxClipSize()+1<<20), a.ClipUpload)
	}
}

func makeLogger() {
	cfg := zap.NewDevelopmentConfig()
	cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	cfg.EncoderConfig.EncodeTime = func(t time.Time, pae zapcore.PrimitiveArrayEncoder) {
		pae.AppendString(gray + t.Format("15:04:05.000") + reset)
	}
	cfg.EncoderConfig.EncodeCaller = func(ec zapcore.EntryCaller, pae zapcore.PrimitiveArrayEncoder) {
		pae.AppendString(gray + ec.TrimmedPath() + reset)
	}

	cfg.DisableStacktrace = true

	log, _ := cfg.Build()
	zap.ReplaceGlobals(log)
}

func (a *API) cacheFor(sec int) gin.HandlerFunc {
	return cache.CacheByRequestURI(a.store, time.Second*time.Duration(sec))
}
