package controller

import (
	"net/http"
	"strconv"
	"time"

	jwt "github.com/appleboy/gin-jwt/v2"
	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"

	"github.com/davidmsteixeira-ops/aurem-private-workspace/model"
	"github.com/davidmsteixeira-ops/aurem-private-workspace/pkg/totp"
	"github.com/davidmsteixeira-ops/aurem-private-workspace/service/singleton"
)

// ctxKeyLoginUser carries the authenticated user between the
// authenticator and the login response, for the activity log.
const ctxKeyLoginUser = "cklu"

func initParams() *jwt.GinJWTMiddleware {
	return &jwt.GinJWTMiddleware{
		Realm:       singleton.Conf.Site.Brand,
		Key:         []byte(singleton.Conf.JWTSecretKey),
		CookieName:  "au-jwt",
		SendCookie:  true,
		Timeout:     time.Hour,
		MaxRefresh:  time.Hour,
		IdentityKey: model.CtxKeyAuthorizedUser,
		PayloadFunc: payloadFunc(),

		IdentityHandler: identityHandler(),
		Authenticator:   authenticator(),
		Authorizator:    authorizator(),
		Unauthorized:    unauthorized(),
		TokenLookup:     "header: Authorization, query: token, cookie: au-jwt",
		TokenHeadName:   "Bearer",
		TimeFunc:        time.Now,

		LoginResponse:   loginResponse,
		RefreshResponse: refreshResponse,
		LogoutResponse: func(c *gin.Context, code int) {
			c.JSON(http.StatusOK, model.CommonResponse[any]{Success: true})
		},
	}
}

func payloadFunc() func(data interface{}) jwt.MapClaims {
	return func(data interface{}) jwt.MapClaims {
		if v, ok := data.(string); ok {
			return jwt.MapClaims{
				model.CtxKeyAuthorizedUser: v,
			}
		}
		return jwt.MapClaims{}
	}
}

func identityHandler() func(c *gin.Context) interface{} {
	return func(c *gin.Context) interface{} {
		claims := jwt.ExtractClaims(c)
		idStr, ok := claims[model.CtxKeyAuthorizedUser].(string)
		if !ok {
			return nil
		}
		id, err := strconv.ParseUint(idStr, 10, 64)
		if err != nil {
			return nil
		}
		profile, err := singleton.GetProfile(id)
		if err != nil {
			return nil
		}
		// Tokens minted before the last revoke-sessions call are dead.
		if profile.SessionsRevokedAt != nil {
			iat, ok := claims["orig_iat"].(float64)
			if !ok || int64(iat) < profile.SessionsRevokedAt.Unix() {
				return nil
			}
		}
		return profile
	}
}

// User Login
// @Summary user login
// @Schemes
// @Description user login
// @Accept json
// @param loginRequest body model.LoginRequest true "Login Request"
// @Produce json
// @Success 200 {object} model.CommonResponse[model.LoginResponse]
// @Router /login [post]
func authenticator() func(c *gin.Context) (interface{}, error) {
	return func(c *gin.Context) (interface{}, error) {
		var loginVals model.LoginRequest
		if err := c.ShouldBind(&loginVals); err != nil {
			return "", jwt.ErrMissingLoginValues
		}

		var user model.User
		err := singleton.DB.Select("id", "password", "mfa_enabled", "totp_secret").
			Where("username = ?", loginVals.Username).First(&user).Error
		if err != nil {
			return nil, jwt.ErrFailedAuthentication
		}

		if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(loginVals.Password)); err != nil {
			return nil, jwt.ErrFailedAuthentication
		}

		// Accounts with a confirmed second factor must present a
		// current code with the password.
		if user.MFAEnabled && !totp.Validate(user.TOTPSecret, loginVals.Code, time.Now()) {
			return nil, jwt.ErrFailedAuthentication
		}

		c.Set(ctxKeyLoginUser, &user)
		return strconv.FormatUint(user.ID, 10), nil
	}
}

func authorizator() func(data interface{}, c *gin.Context) bool {
	return func(data interface{}, c *gin.Context) bool {
		_, ok := data.(*model.Profile)
		return ok
	}
}

func unauthorized() func(c *gin.Context, code int, message string) {
	return func(c *gin.Context, code int, message string) {
		c.JSON(http.StatusOK, model.CommonResponse[any]{
			Success: false,
			Error:   "ApiErrorUnauthorized",
		})
	}
}

func loginResponse(c *gin.Context, code int, token string, expire time.Time) {
	if u, ok := c.Get(ctxKeyLoginUser); ok {
		user := u.(*model.User)
		singleton.RecordActivity(user.ID, model.ActivityTypeLogin,
			c.Request.UserAgent(), c.GetString(model.CtxKeyRealIPStr))
	}
	c.JSON(http.StatusOK, model.CommonResponse[model.LoginResponse]{
		Success: true,
		Data: model.LoginResponse{
			Token:  token,
			Expire: expire.Format(time.RFC3339),
		},
	})
}

// Refresh token
// @Summary Refresh token
// @Security BearerAuth
// @Schemes
// @Description Refresh token
// @Tags auth required
// @Produce json
// @Success 200 {object} model.CommonResponse[model.LoginResponse]
// @Router /refresh-token [get]
func refreshResponse(c *gin.Context, code int, token string, expire time.Time) {
	c.JSON(http.StatusOK, model.CommonResponse[model.LoginResponse]{
		Success: true,
		Data: model.LoginResponse{
			Token:  token,
			Expire: expire.Format(time.RFC3339),
		},
	})
}

func recordLogout(c *gin.Context) {
	user := currentUser(c)
	singleton.RecordActivity(user.ID, model.ActivityTypeLogout,
		c.Request.UserAgent(), c.GetString(model.CtxKeyRealIPStr))
}
