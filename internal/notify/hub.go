// Package notify ретранслятор уведомлений. Подписчик получает события своей группы участника (user_<id>) и своей
// группы роли (type_<role>). Доставка без гарантий: если подписчиков нет или буфер подписчика заполнен,
// сообщение теряется.
package notify

import (
	"context"
	"sync"

	"github.com/fsdevblog/tradecredit/internal/domain"
	"github.com/fsdevblog/tradecredit/internal/metrics"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

const DefaultBufferSize = 64

// Publisher принимает события для рассылки. Реализуют Hub и RedisBridge.
type Publisher interface {
	Publish(ctx context.Context, event domain.Event)
}

type Subscription struct {
	ID      uuid.UUID
	PartyID int64
	Role    domain.RoleType

	topics    []domain.Topic
	ch        chan []byte
	closeOnce sync.Once
}

// Messages канал исходящих сообщений. Закрывается при отписке.
func (s *Subscription) Messages() <-chan []byte {
	return s.ch
}

func (s *Subscription) Topics() []domain.Topic {
	return s.topics
}

type Hub struct {
	mu         sync.RWMutex
	topics     map[domain.Topic]map[uuid.UUID]*Subscription
	bufferSize int
	log        *logrus.Entry
}

func NewHub(l *logrus.Logger) *Hub {
	return &Hub{
		topics:     make(map[domain.Topic]map[uuid.UUID]*Subscription),
		bufferSize: DefaultBufferSize,
		log:        l.WithFields(logrus.Fields{"component": "notify", "module": "hub"}),
	}
}

// SetBufferSize размер буфера для новых подписок.
func (h *Hub) SetBufferSize(size int) *Hub {
	if size > 0 {
		h.bufferSize = size
	}
	return h
}

// Subscribe добавляет подписчика в группу участника и группу роли.
func (h *Hub) Subscribe(partyID int64, role domain.RoleType) *Subscription {
	sub := &Subscription{
		ID:      uuid.New(),
		PartyID: partyID,
		Role:    role,
		topics:  []domain.Topic{domain.PartyTopic(partyID), domain.RoleTopic(role)},
		ch:      make(chan []byte, h.bufferSize),
	}

	h.mu.Lock()
	for _, t := range sub.topics {
		if h.topics[t] == nil {
			h.topics[t] = make(map[uuid.UUID]*Subscription)
		}
		h.topics[t][sub.ID] = sub
	}
	h.mu.Unlock()

	metrics.RelayConnections.Inc()
	h.log.WithField("subscription", sub.ID).Debugf("party %d (%s) subscribed", partyID, role)
	return sub
}

// Unsubscribe удаляет подписчика из обеих групп и закрывает его канал. Повторный вызов безопасен.
func (h *Hub) Unsubscribe(sub *Subscription) {
	sub.closeOnce.Do(func() {
		h.mu.Lock()
		for _, t := range sub.topics {
			delete(h.topics[t], sub.ID)
			if len(h.topics[t]) == 0 {
				delete(h.topics, t)
			}
		}
		close(sub.ch)
		h.mu.Unlock()

		metrics.RelayConnections.Dec()
		h.log.WithField("subscription", sub.ID).Debugf("party %d unsubscribed", sub.PartyID)
	})
}

// Publish сериализует событие и рассылает подписчикам его группы на этом узле.
func (h *Hub) Publish(_ context.Context, event domain.Event) {
	msg, err := EncodeEvent(event)
	if err != nil {
		h.log.WithError(err).Debug("dropping event")
		return
	}
	metrics.RelayPublished.WithLabelValues(string(event.Type)).Inc()
	h.Deliver(event.Topic, msg)
}

// Deliver отправляет готовое сообщение подписчикам группы, не блокируясь. Возвращает количество подписчиков,
// получивших сообщение.
func (h *Hub) Deliver(topic domain.Topic, msg []byte) int {
	h.mu.RLock()
	defer h.mu.RUnlock()

	var delivered int
	for _, sub := range h.topics[topic] {
		select {
		case sub.ch <- msg:
			delivered++
		default:
			metrics.RelayDropped.Inc()
			h.log.WithField("subscription", sub.ID).Debugf("buffer full, dropping message for %s", topic)
		}
	}
	return delivered
}

// Subscribers количество подписчиков группы.
func (h *Hub) Subscribers(topic domain.Topic) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.topics[topic])
}

// Close отписывает всех подписчиков.
func (h *Hub) Close() {
	h.mu.RLock()
	subs := make(map[uuid.UUID]*Subscription)
	for _, group := range h.topics {
		for id, sub := range group {
			subs[id] = sub
		}
	}
	h.mu.RUnlock()

	for _, sub := range subs {
		h.Unsubscribe(sub)
	}
}
