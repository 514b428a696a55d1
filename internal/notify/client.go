package notify

import (
	"context"
	"time"

	"github.com/fsdevblog/tradecredit/internal/domain"
	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 64 << 10
)

// Client соединение подписчика. Сообщения подписки пишутся в сокет, входящие сообщения due_created и
// payment_made пересылаются группе роли по умолчанию, остальные игнорируются.
type Client struct {
	hub       *Hub
	conn      *websocket.Conn
	sub       *Subscription
	publisher Publisher
	log       *logrus.Entry
}

func NewClient(
	hub *Hub,
	publisher Publisher,
	conn *websocket.Conn,
	partyID int64,
	role domain.RoleType,
	l *logrus.Logger,
) *Client {
	sub := hub.Subscribe(partyID, role)
	return &Client{
		hub:       hub,
		conn:      conn,
		sub:       sub,
		publisher: publisher,
		log: l.WithFields(logrus.Fields{
			"component":    "notify",
			"module":       "client",
			"subscription": sub.ID,
		}),
	}
}

// Run обслуживает соединение до его закрытия или отмены ctx. При выходе подписка снимается.
func (c *Client) Run(ctx context.Context) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	done := make(chan struct{})
	go func() {
		defer close(done)
		c.writePump(ctx)
	}()

	c.readPump(ctx)
	cancel()
	c.hub.Unsubscribe(c.sub)
	<-done
}

func (c *Client) readPump(ctx context.Context) {
	c.conn.SetReadLimit(maxMessageSize)
	_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait)) //nolint:wrapcheck
	})

	for {
		_, msg, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				c.log.WithError(err).Debug("unexpected close")
			}
			return
		}
		c.relay(ctx, msg)
	}
}

func (c *Client) relay(ctx context.Context, msg []byte) {
	env, err := DecodeEnvelope(msg)
	if err != nil {
		c.log.WithError(err).Debug("ignoring inbound message")
		return
	}
	topic, ok := domain.DefaultTopic(env.Type)
	if !ok {
		c.log.Debugf("ignoring inbound %s", env.Type)
		return
	}
	c.publisher.Publish(ctx, domain.Event{Type: env.Type, Topic: topic, Data: env.Data})
}

func (c *Client) writePump(ctx context.Context) {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		_ = c.conn.Close()
	}()

	for {
		select {
		case <-ctx.Done():
			_ = c.conn.WriteControl(websocket.CloseMessage,
				websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""), time.Now().Add(writeWait))
			return
		case msg, ok := <-c.sub.Messages():
			if !ok {
				return
			}
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.TextMessage, msg); err != nil {
				c.log.WithError(err).Debug("write failed")
				return
			}
		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
