package notify

import (
	"encoding/json"

	"github.com/fsdevblog/tradecredit/internal/domain"
	"github.com/pkg/errors"
)

// Envelope формат сообщения в канале клиента в обе стороны: {"type": ..., "data": ...}.
type Envelope struct {
	Type domain.EventType `json:"type"`
	Data json.RawMessage  `json:"data"`
}

// brokerMessage сообщение между узлами через redis: адрес группы и готовый к отправке конверт.
type brokerMessage struct {
	Topic    domain.Topic    `json:"topic"`
	Envelope json.RawMessage `json:"envelope"`
}

// EncodeEvent сериализует событие в конверт. События неизвестного типа не кодируются.
func EncodeEvent(e domain.Event) ([]byte, error) {
	if !e.Type.Valid() {
		return nil, errors.Errorf("encoding event: unknown type %q", e.Type)
	}
	data, err := json.Marshal(e.Data)
	if err != nil {
		return nil, errors.Wrapf(err, "encoding %s data", e.Type)
	}
	b, err := json.Marshal(Envelope{Type: e.Type, Data: data})
	if err != nil {
		return nil, errors.Wrapf(err, "encoding %s envelope", e.Type)
	}
	return b, nil
}

// DecodeEnvelope разбирает сообщение клиента. Конверт с неизвестным типом события отклоняется.
func DecodeEnvelope(b []byte) (*Envelope, error) {
	var env Envelope
	if err := json.Unmarshal(b, &env); err != nil {
		return nil, errors.Wrap(err, "decoding envelope")
	}
	if env.Type == "" {
		return nil, errors.New("decoding envelope: missing type")
	}
	if !env.Type.Valid() {
		return nil, errors.Errorf("decoding envelope: unknown type %q", env.Type)
	}
	return &env, nil
}

func encodeBrokerMessage(topic domain.Topic, envelope []byte) ([]byte, error) {
	b, err := json.Marshal(brokerMessage{Topic: topic, Envelope: envelope})
	if err != nil {
		return nil, errors.Wrap(err, "encoding broker message")
	}
	return b, nil
}

func decodeBrokerMessage(b []byte) (domain.Topic, []byte, error) {
	var m brokerMessage
	if err := json.Unmarshal(b, &m); err != nil {
		return "", nil, errors.Wrap(err, "decoding broker message")
	}
	topic, err := domain.ParseTopic(string(m.Topic))
	if err != nil {
		return "", nil, errors.WithStack(err)
	}
	if len(m.Envelope) == 0 {
		return "", nil, errors.Errorf("decoding broker message for %s: empty envelope", topic)
	}
	return topic, m.Envelope, nil
}
