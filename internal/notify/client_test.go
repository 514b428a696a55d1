package notify

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/fsdevblog/tradecredit/internal/domain"
	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/suite"
)

type ClientTestSuite struct {
	suite.Suite
	hub    *Hub
	server *httptest.Server
	cancel context.CancelFunc
}

func TestClientSuite(t *testing.T) {
	suite.Run(t, new(ClientTestSuite))
}

func (s *ClientTestSuite) SetupTest() {
	l := logrus.New()
	l.SetOutput(io.Discard)
	s.hub = NewHub(l)

	ctx, cancel := context.WithCancel(context.Background())
	s.cancel = cancel

	upgrader := websocket.Upgrader{}
	// /<party id>/<role>
	s.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		parts := strings.Split(strings.Trim(r.URL.Path, "/"), "/")
		partyID, _ := strconv.ParseInt(parts[0], 10, 64)
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		NewClient(s.hub, s.hub, conn, partyID, domain.RoleType(parts[1]), l).Run(ctx)
	}))
}

func (s *ClientTestSuite) TearDownTest() {
	s.cancel()
	s.server.Close()
	s.hub.Close()
}

func (s *ClientTestSuite) dial(partyID int64, role domain.RoleType) *websocket.Conn {
	url := "ws" + strings.TrimPrefix(s.server.URL, "http") + "/" + strconv.FormatInt(partyID, 10) + "/" + string(role)
	conn, resp, err := websocket.DefaultDialer.Dial(url, nil)
	s.Require().NoError(err)
	_ = resp.Body.Close()

	// ждем, пока подписка появится в хабе.
	s.Require().Eventually(func() bool {
		return s.hub.Subscribers(domain.PartyTopic(partyID)) == 1
	}, time.Second, 10*time.Millisecond)
	return conn
}

func (s *ClientTestSuite) read(conn *websocket.Conn) *Envelope {
	_ = conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, msg, err := conn.ReadMessage()
	s.Require().NoError(err)
	env, err := DecodeEnvelope(msg)
	s.Require().NoError(err)
	return env
}

func (s *ClientTestSuite) TestServerEventReachesSubscriber() {
	conn := s.dial(1, domain.RoleSupplier)
	defer conn.Close()

	s.hub.Publish(s.T().Context(), domain.Event{
		Type:  domain.EventPaymentMade,
		Topic: domain.RoleTopic(domain.RoleSupplier),
		Data:  map[string]int{"due": 3},
	})

	env := s.read(conn)
	s.Equal(domain.EventPaymentMade, env.Type)
	s.JSONEq(`{"due":3}`, string(env.Data))
}

func (s *ClientTestSuite) TestInboundDueCreatedGoesToRetailers() {
	supplier := s.dial(1, domain.RoleSupplier)
	defer supplier.Close()
	retailer := s.dial(2, domain.RoleRetailer)
	defer retailer.Close()

	s.Require().NoError(supplier.WriteMessage(websocket.TextMessage,
		[]byte(`{"type":"credit_limit_updated","data":{}}`)))
	s.Require().NoError(supplier.WriteMessage(websocket.TextMessage, []byte(`not json`)))
	s.Require().NoError(supplier.WriteMessage(websocket.TextMessage,
		[]byte(`{"type":"due_deleted","data":{"id":41}}`)))
	s.Require().NoError(supplier.WriteMessage(websocket.TextMessage,
		[]byte(`{"type":"due_created","data":{"id":42}}`)))

	// первые три сообщения проигнорированы, ритейлер получает только due_created.
	env := s.read(retailer)
	s.Equal(domain.EventDueCreated, env.Type)
	s.JSONEq(`{"id":42}`, string(env.Data))
}

func (s *ClientTestSuite) TestDisconnectLeavesGroups() {
	conn := s.dial(3, domain.RoleRetailer)
	s.Equal(1, s.hub.Subscribers(domain.RoleTopic(domain.RoleRetailer)))

	s.Require().NoError(conn.Close())
	s.Eventually(func() bool {
		return s.hub.Subscribers(domain.PartyTopic(3)) == 0 &&
			s.hub.Subscribers(domain.RoleTopic(domain.RoleRetailer)) == 0
	}, 2*time.Second, 10*time.Millisecond)
}
