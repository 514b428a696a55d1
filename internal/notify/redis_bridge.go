package notify

import (
	"context"

	"github.com/fsdevblog/tradecredit/internal/domain"
	"github.com/fsdevblog/tradecredit/internal/metrics"
	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

const DefaultChannel = "tradecredit:events"

// RedisBridge рассылает события через канал redis, чтобы их получили подписчики на всех узлах. Каждый узел
// слушает канал в Run и передает полученные сообщения своему Hub.
type RedisBridge struct {
	hub     *Hub
	client  redis.UniversalClient
	channel string
	log     *logrus.Entry
}

func NewRedisBridge(hub *Hub, client redis.UniversalClient, l *logrus.Logger) *RedisBridge {
	return &RedisBridge{
		hub:     hub,
		client:  client,
		channel: DefaultChannel,
		log:     l.WithFields(logrus.Fields{"component": "notify", "module": "redis_bridge"}),
	}
}

func (b *RedisBridge) SetChannel(channel string) *RedisBridge {
	b.channel = channel
	return b
}

// Publish отправляет событие в redis. Если redis недоступен, событие доставляется только подписчикам этого узла.
func (b *RedisBridge) Publish(ctx context.Context, event domain.Event) {
	envelope, err := EncodeEvent(event)
	if err != nil {
		b.log.WithError(err).Debug("dropping event")
		return
	}
	metrics.RelayPublished.WithLabelValues(string(event.Type)).Inc()

	msg, err := encodeBrokerMessage(event.Topic, envelope)
	if err != nil {
		b.log.WithError(err).Debug("dropping event")
		return
	}
	if err = b.client.Publish(ctx, b.channel, msg).Err(); err != nil {
		b.log.WithError(errors.Wrapf(err, "publishing to %s", b.channel)).Debug("falling back to local delivery")
		b.hub.Deliver(event.Topic, envelope)
	}
}

// Run слушает канал до отмены ctx.
func (b *RedisBridge) Run(ctx context.Context) error {
	pubsub := b.client.Subscribe(ctx, b.channel)
	defer func() {
		if err := pubsub.Close(); err != nil {
			b.log.WithError(err).Warn("closing pubsub")
		}
	}()

	// Receive дожидается подтверждения подписки, иначе первые сообщения могут потеряться.
	if _, err := pubsub.Receive(ctx); err != nil {
		return errors.Wrapf(err, "subscribing to %s", b.channel)
	}
	b.log.Infof("listening on %s", b.channel)

	ch := pubsub.Channel()
	for {
		select {
		case <-ctx.Done():
			return nil
		case m, ok := <-ch:
			if !ok {
				return errors.Errorf("redis channel %s closed", b.channel)
			}
			topic, envelope, err := decodeBrokerMessage([]byte(m.Payload))
			if err != nil {
				b.log.WithError(err).Debug("skipping broker message")
				continue
			}
			b.hub.Deliver(topic, envelope)
		}
	}
}
