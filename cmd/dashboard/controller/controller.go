package controller

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"time"

	jwt "github.com/appleboy/gin-jwt/v2"
	"github.com/gin-gonic/gin"
	"github.com/ory/graceful"

	"github.com/davidmsteixeira-ops/aurem-private-workspace/model"
	"github.com/davidmsteixeira-ops/aurem-private-workspace/pkg/mygin"
	"github.com/davidmsteixeira-ops/aurem-private-workspace/service/singleton"
)

// ServeWeb builds the portal API server. The caller owns its lifecycle.
func ServeWeb() *http.Server {
	gin.SetMode(gin.ReleaseMode)
	if singleton.Conf.Debug {
		gin.SetMode(gin.DebugMode)
	}
	InitUpgrader()

	r := gin.Default()
	r.Use(mygin.RecordPath, mygin.RealIP)
	routers(r)

	return graceful.WithDefaults(&http.Server{
		Addr:              fmt.Sprintf(":%d", singleton.Conf.ListenPort),
		ReadHeaderTimeout: time.Second * 5,
		Handler:           r,
	})
}

func routers(r *gin.Engine) {
	authMiddleware, err := jwt.New(initParams())
	if err != nil {
		log.Fatal("AUREM>> jwt init failure:", err)
	}
	if err := authMiddleware.MiddlewareInit(); err != nil {
		log.Fatal("AUREM>> jwt middleware init failure:", err)
	}

	api := r.Group("api/v1")
	api.POST("/login", authMiddleware.LoginHandler)

	auth := api.Group("", authMiddleware.MiddlewareFunc())
	auth.GET("/refresh-token", authMiddleware.RefreshHandler)
	auth.POST("/logout", recordLogout, authMiddleware.LogoutHandler)

	auth.GET("/profile", commonHandler(getProfile))
	auth.PATCH("/profile", commonHandler(updateProfile))
	auth.POST("/profile/password", commonHandler(updatePassword))
	auth.POST("/profile/revoke-sessions", commonHandler(revokeSessions))

	auth.GET("/notifications", commonHandler(listNotifications))
	auth.POST("/notifications", commonHandler(savePreferences))

	auth.GET("/activity", commonHandler(listActivity))

	auth.POST("/mfa/enroll", commonHandler(enrollMFA))
	auth.POST("/mfa/verify", commonHandler(verifyMFA))
	auth.POST("/mfa/disable", commonHandler(disableMFA))
	auth.POST("/mfa/recovery-codes", commonHandler(regenerateRecoveryCodes))

	auth.GET("/brand-vault", commonHandler(listBrandVault))
	auth.GET("/decisions", commonHandler(listDecisions))

	auth.GET("/assets", commonHandler(listAssets))
	auth.POST("/assets", commonHandler(uploadAsset))
	auth.GET("/assets/:id/download", downloadAsset)

	auth.GET("/intelligence/conversations", commonHandler(listConversations))
	auth.GET("/intelligence/conversations/:id/messages", commonHandler(listMessages))
	auth.POST("/intelligence/messages", commonHandler(postIntelligenceMessage))
	auth.GET("/ws/intelligence", streamIntelligence)

	admin := auth.Group("/admin", ensureAdmin)
	admin.GET("/portfolio", commonHandler(listPortfolio))
	admin.GET("/pulse", commonHandler(getPulse))
	admin.GET("/pipeline", commonHandler(getPipeline))
	admin.POST("/decisions", commonHandler(createDecision))
	admin.PATCH("/decisions/:id", commonHandler(updateDecision))
	admin.POST("/clients", commonHandler(createClient))
	admin.GET("/users", commonHandler(listUser))
	admin.POST("/users", commonHandler(createUser))
	admin.POST("/batch-delete/users", commonHandler(batchDeleteUser))

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, model.CommonResponse[any]{
			Success: false,
			Error:   "ApiErrorNotFound",
		})
	})
}

type handlerFunc[T any] func(c *gin.Context) (T, error)

// commonHandler wraps a typed handler into the uniform response
// envelope. Database errors are logged server-side and flattened so
// driver details never reach the client.
func commonHandler[T any](handler handlerFunc[T]) func(*gin.Context) {
	return func(c *gin.Context) {
		data, err := handler(c)
		if err == nil {
			c.JSON(http.StatusOK, model.CommonResponse[T]{Success: true, Data: data})
			return
		}
		var gErr *gormError
		if errors.As(err, &gErr) {
			log.Printf("AUREM>> %s: %v", c.GetString("MatchedPath"), err)
			c.JSON(http.StatusOK, model.CommonResponse[T]{Success: false, Error: "database error"})
			return
		}
		c.JSON(http.StatusOK, model.CommonResponse[T]{Success: false, Error: err.Error()})
	}
}

type gormError struct {
	msg string
	a   []interface{}
}

func newGormError(format string, args ...interface{}) error {
	return &gormError{msg: format, a: args}
}

func (ge *gormError) Error() string {
	return fmt.Sprintf(ge.msg, ge.a...)
}

func currentUser(c *gin.Context) *model.Profile {
	return c.MustGet(model.CtxKeyAuthorizedUser).(*model.Profile)
}

func ensureAdmin(c *gin.Context) {
	if !currentUser(c).IsAdmin() {
		c.AbortWithStatusJSON(http.StatusForbidden, model.CommonResponse[any]{
			Success: false,
			Error:   "ApiErrorAdminOnly",
		})
	}
}
