package domain

import (
	"fmt"
	"strconv"
	"strings"
)

type EventType string

const (
	EventDueCreated         EventType = "due_created"
	EventDueUpdated         EventType = "due_updated"
	EventPaymentMade        EventType = "payment_made"
	EventCreditLimitUpdated EventType = "credit_limit_updated"
)

func (e EventType) Valid() bool {
	switch e {
	case EventDueCreated, EventDueUpdated, EventPaymentMade, EventCreditLimitUpdated:
		return true
	}
	return false
}

// Topic адрес группы получателей: группа участника (user_<id>) или группа роли (type_<role>).
type Topic string

const (
	partyTopicPrefix = "user_"
	roleTopicPrefix  = "type_"
)

func PartyTopic(partyID int64) Topic {
	return Topic(partyTopicPrefix + strconv.FormatInt(partyID, 10))
}

func RoleTopic(role RoleType) Topic {
	return Topic(roleTopicPrefix + string(role))
}

// ParseTopic разбирает строковое представление топика. Используется при получении событий от брокера.
func ParseTopic(s string) (Topic, error) {
	switch {
	case strings.HasPrefix(s, partyTopicPrefix):
		if _, err := strconv.ParseInt(strings.TrimPrefix(s, partyTopicPrefix), 10, 64); err != nil {
			return "", fmt.Errorf("parse topic `%s`: %w", s, err)
		}
	case strings.HasPrefix(s, roleTopicPrefix):
		if !RoleType(strings.TrimPrefix(s, roleTopicPrefix)).Valid() {
			return "", fmt.Errorf("parse topic `%s`: unknown role", s)
		}
	default:
		return "", fmt.Errorf("parse topic `%s`: unknown prefix", s)
	}
	return Topic(s), nil
}

// Event уведомление для ретранслятора. Data сериализуется в JSON как есть.
type Event struct {
	Type  EventType
	Topic Topic
	Data  any
}

// DefaultTopic возвращает группу роли, которой по умолчанию адресовано событие, пришедшее от клиента.
// Для событий, которые клиент ретранслировать не может, ok == false.
func DefaultTopic(t EventType) (Topic, bool) {
	switch t { //nolint:exhaustive
	case EventDueCreated:
		return RoleTopic(RoleRetailer), true
	case EventPaymentMade:
		return RoleTopic(RoleSupplier), true
	}
	return "", false
}
