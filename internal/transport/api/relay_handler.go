package api

import (
	"errors"
	"net/http"
	"slices"

	"github.com/fsdevblog/tradecredit/internal/domain"
	"github.com/fsdevblog/tradecredit/internal/notify"
	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"
)

// RelayHandler постоянное соединение подписчика. Идентичность берется из пути, авторизации на этом уровне нет:
// канал только доставляет события, решения о доступе принимаются до публикации.
type RelayHandler struct {
	hub       *notify.Hub
	publisher notify.Publisher
	upgrader  websocket.Upgrader
	log       *logrus.Logger
}

// NewRelayHandler allowedOrigins пустой или содержащий "*" разрешает любые источники.
func NewRelayHandler(
	hub *notify.Hub,
	publisher notify.Publisher,
	allowedOrigins []string,
	l *logrus.Logger,
) *RelayHandler {
	allowAll := len(allowedOrigins) == 0 || slices.Contains(allowedOrigins, "*")
	return &RelayHandler{
		hub:       hub,
		publisher: publisher,
		log:       l,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				origin := r.Header.Get("Origin")
				return allowAll || origin == "" || slices.Contains(allowedOrigins, origin)
			},
		},
	}
}

// Connect GET RelayRoute. Подписывает соединение на группу участника и группу его роли до отключения.
func (h *RelayHandler) Connect(c *gin.Context) {
	partyID, ok := idParam(c, "user_id")
	if !ok {
		return
	}
	role := domain.RoleType(c.Param("user_type"))
	if !role.Valid() {
		_ = c.AbortWithError(http.StatusBadRequest, errors.New("invalid user_type")).SetType(gin.ErrorTypePublic)
		return
	}

	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		// Upgrade уже ответил клиенту.
		_ = c.Error(err).SetType(gin.ErrorTypePrivate)
		c.Abort()
		return
	}

	notify.NewClient(h.hub, h.publisher, conn, partyID, role, h.log).Run(c.Request.Context())
}
