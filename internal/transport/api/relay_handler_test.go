package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/fsdevblog/tradecredit/internal/domain"
	"github.com/fsdevblog/tradecredit/internal/notify"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/suite"
)

type RelayHandlerTestSuite struct {
	routerSuite
	server *httptest.Server
}

func TestRelayHandlerSuite(t *testing.T) {
	suite.Run(t, new(RelayHandlerTestSuite))
}

func (s *RelayHandlerTestSuite) SetupTest() {
	s.routerSuite.SetupTest()
	s.server = httptest.NewServer(s.router)
}

func (s *RelayHandlerTestSuite) TearDownTest() {
	s.hub.Close()
	s.server.Close()
}

func (s *RelayHandlerTestSuite) dial(path string) (*websocket.Conn, *http.Response, error) {
	url := "ws" + strings.TrimPrefix(s.server.URL, "http") + path
	return websocket.DefaultDialer.Dial(url, nil) //nolint:bodyclose
}

func (s *RelayHandlerTestSuite) TestInvalidPath() {
	cases := []struct {
		name string
		path string
	}{
		{name: "unknown role", path: "/ws/2/admin"},
		{name: "bad id", path: "/ws/abc/retailer"},
	}
	for _, t := range cases {
		s.Run(t.name, func() {
			_, resp, err := s.dial(t.path)
			s.Require().Error(err)
			s.Require().NotNil(resp)
			defer resp.Body.Close()
			s.Equal(http.StatusBadRequest, resp.StatusCode)
		})
	}
}

func (s *RelayHandlerTestSuite) TestFanOut() {
	retailerConn, resp, err := s.dial("/ws/2/retailer")
	s.Require().NoError(err)
	_ = resp.Body.Close()
	defer retailerConn.Close()

	supplierConn, resp, err := s.dial("/ws/1/supplier")
	s.Require().NoError(err)
	_ = resp.Body.Close()
	defer supplierConn.Close()

	s.Require().Eventually(func() bool {
		return s.hub.Subscribers(domain.RoleTopic(domain.RoleRetailer)) == 1 &&
			s.hub.Subscribers(domain.RoleTopic(domain.RoleSupplier)) == 1
	}, time.Second, 10*time.Millisecond)

	// входящее сообщение поставщика уходит группе ритейлеров.
	s.Require().NoError(supplierConn.WriteMessage(websocket.TextMessage,
		[]byte(`{"type":"due_created","data":{"id":10}}`)))
	env := s.read(retailerConn)
	s.Equal(domain.EventDueCreated, env.Type)
	s.JSONEq(`{"id":10}`, string(env.Data))

	// событие сервера в группу участника.
	s.hub.Publish(context.Background(), domain.Event{
		Type:  domain.EventDueUpdated,
		Topic: domain.PartyTopic(1),
		Data:  map[string]int{"id": 10},
	})
	env = s.read(supplierConn)
	s.Equal(domain.EventDueUpdated, env.Type)
}

func (s *RelayHandlerTestSuite) read(conn *websocket.Conn) *notify.Envelope {
	_ = conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, msg, err := conn.ReadMessage()
	s.Require().NoError(err)
	env, err := notify.DecodeEnvelope(msg)
	s.Require().NoError(err)
	return env
}
