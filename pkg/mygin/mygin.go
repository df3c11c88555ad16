package mygin

import (
	"net"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/davidmsteixeira-ops/aurem-private-workspace/model"
)

// RecordPath stores the parameterized route path for request logging.
func RecordPath(c *gin.Context) {
	url := c.Request.URL.String()
	for _, p := range c.Params {
		url = strings.Replace(url, p.Value, ":"+p.Key, 1)
	}
	c.Set("MatchedPath", url)
}

// RealIP resolves the caller address, preferring proxy headers, and
// stores it for the activity log.
func RealIP(c *gin.Context) {
	ip := c.GetHeader("X-Real-IP")
	if ip == "" {
		if fwd := c.GetHeader("X-Forwarded-For"); fwd != "" {
			ip = strings.TrimSpace(strings.Split(fwd, ",")[0])
		}
	}
	if ip == "" {
		var err error
		ip, _, err = net.SplitHostPort(c.Request.RemoteAddr)
		if err != nil {
			ip = c.Request.RemoteAddr
		}
	}
	c.Set(model.CtxKeyRealIPStr, ip)
}
