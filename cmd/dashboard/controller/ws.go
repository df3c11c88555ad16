package controller

import (
	"net"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/davidmsteixeira-ops/aurem-private-workspace/service/singleton"
)

var upgrader *websocket.Upgrader

// InitUpgrader must run after config load. Debug mode additionally
// allows loopback origins so a local frontend dev server can connect.
func InitUpgrader() {
	var checkOrigin func(r *http.Request) bool
	if singleton.Conf.Debug {
		checkOrigin = func(r *http.Request) bool {
			host, _, err := net.SplitHostPort(r.Host)
			if err != nil {
				host = r.Host
			}
			if ip := net.ParseIP(host); ip != nil && ip.IsLoopback() {
				return true
			}
			return host == "localhost"
		}
	}

	upgrader = &websocket.Upgrader{
		ReadBufferSize:  4096,
		WriteBufferSize: 4096,
		CheckOrigin:     checkOrigin,
	}
}

// Stream intelligence messages
// @Summary Push new brand intelligence exchanges over a websocket
// @Security BearerAuth
// @Schemes
// @Description Push new brand intelligence exchanges over a websocket
// @Tags auth required
// @Router /ws/intelligence [get]
func streamIntelligence(c *gin.Context) {
	user := currentUser(c)

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		return
	}
	defer conn.Close()

	events, cancel := singleton.SubscribeIntelligence(user.ID)
	defer cancel()

	// Drain the client side so close frames are processed.
	closed := make(chan struct{})
	go func() {
		defer close(closed)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	ticker := time.NewTicker(30 * time.Second)
	defer ticker.Stop()

	for {
		select {
		case resp, ok := <-events:
			if !ok {
				return
			}
			if err := conn.WriteJSON(resp); err != nil {
				return
			}
		case <-ticker.C:
			if err := conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(5*time.Second)); err != nil {
				return
			}
		case <-closed:
			return
		}
	}
}
