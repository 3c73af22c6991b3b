package e2e

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"mockgraph/internal/config"
	"mockgraph/internal/domain"
	"mockgraph/internal/gql"
	httpserver "mockgraph/internal/http"
	"mockgraph/internal/http/controller"
	"mockgraph/internal/metrics"
	"mockgraph/internal/model"
	"mockgraph/internal/queue"
	"mockgraph/internal/service/cars"
	"mockgraph/internal/service/notify"
	"mockgraph/internal/service/users"
	"mockgraph/internal/sse"
	"mockgraph/internal/store/memory"
)

func ginTestMode() {
	gin.SetMode(gin.TestMode)
}

type noopPublisher struct{}

func (n *noopPublisher) Publish(ctx context.Context, payload []byte, routingKey string) error {
	return nil
}

type stack struct {
	server *httptest.Server
	hub    *sse.Hub
	cars   *cars.Service
	users  *users.Service
}

var seedCars = []model.Car{
	{ID: 1, Make: ptr("Toyota"), Model: ptr("Corolla"), Year: ptr[int32](2018), Color: ptr("white"), Price: ptr[int32](15000)},
	{ID: 2, Make: ptr("Ford"), Model: ptr("Focus"), Year: ptr[int32](2016), Color: ptr("blue"), Price: ptr[int32](9000)},
	{ID: 3, Make: ptr("Toyota"), Model: ptr("Camry"), Year: ptr[int32](2020), Color: ptr("black"), Price: ptr[int32](24000)},
}

var seedUsers = []model.User{
	{ID: 1, FirstName: ptr("Ada"), LastName: ptr("Lovelace"), Email: ptr("ada@example.com"), Password: ptr("engine")},
	{ID: 2, FirstName: ptr("Alan"), LastName: ptr("Turing"), Email: ptr("alan@example.com"), Password: ptr("enigma")},
}

// newStack wires one deployment the same way the binary does, minus the
// process lifecycle.
func newStack(t *testing.T, cfg *config.Config, publisher queue.Publisher) *stack {
	t.Helper()
	ginTestMode()

	logger := zap.NewNop()
	m := metrics.New(cfg)
	hub := sse.NewHub()
	notifier := notify.NewService(cfg, hub, publisher, m, logger)

	st := &stack{hub: hub}
	var handler *controller.Handler
	switch cfg.Kind {
	case domain.KindCars:
		st.cars = cars.NewService(memory.New(seedCars, logger), notifier, logger)
		schema, err := gql.NewCarSchema(cfg, st.cars, logger)
		require.NoError(t, err)
		handler = controller.NewHandler(cfg, schema, controller.CarListing(st.cars), hub, m, logger)
	case domain.KindUsers:
		st.users = users.NewService(memory.New(seedUsers, logger), notifier, logger)
		schema, err := gql.NewUserSchema(cfg, st.users, logger)
		require.NoError(t, err)
		handler = controller.NewHandler(cfg, schema, controller.UserListing(st.users), hub, m, logger)
	default:
		t.Fatalf("unknown kind %q", cfg.Kind)
	}

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	go hub.Run(ctx)

	st.server = httptest.NewServer(httpserver.NewRouter(cfg, handler, m, logger))
	t.Cleanup(st.server.Close)
	return st
}

type graphQLResponse struct {
	Data   json.RawMessage `json:"data"`
	Errors []struct {
		Message string `json:"message"`
	} `json:"errors"`
}

func postGraphQL(t *testing.T, baseURL, query string, variables map[string]any) (int, graphQLResponse) {
	t.Helper()
	body, err := json.Marshal(map[string]any{"query": query, "variables": variables})
	require.NoError(t, err)

	resp, err := http.Post(baseURL+"/graphql", "application/json", bytes.NewReader(body))
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()

	var out graphQLResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return resp.StatusCode, out
}

// subscribe opens /events and waits until the hub has registered the stream.
func subscribe(t *testing.T, st *stack, query string) io.ReadCloser {
	t.Helper()
	before := st.hub.Clients()
	resp, err := http.Get(st.server.URL + "/events" + query)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Eventually(t, func() bool { return st.hub.Clients() > before }, 2*time.Second, 10*time.Millisecond)
	t.Cleanup(func() { _ = resp.Body.Close() })
	return resp.Body
}

type sseMessage struct {
	ID    string
	Event string
	Data  string
}

func readSSEMessage(body io.Reader, timeout time.Duration) (sseMessage, error) {
	reader := bufio.NewReader(body)
	type result struct {
		msg sseMessage
		err error
	}
	ch := make(chan result, 1)

	go func() {
		var msg sseMessage
		var dataLines []string
		for {
			line, err := reader.ReadString('\n')
			if err != nil {
				ch <- result{err: err}
				return
			}
			line = strings.TrimRight(line, "\r\n")
			switch {
			case line == "":
				if len(dataLines) > 0 {
					msg.Data = strings.Join(dataLines, "\n")
					ch <- result{msg: msg}
					return
				}
			case strings.HasPrefix(line, ":"):
			case strings.HasPrefix(line, "id:"):
				msg.ID = strings.TrimSpace(strings.TrimPrefix(line, "id:"))
			case strings.HasPrefix(line, "event:"):
				msg.Event = strings.TrimSpace(strings.TrimPrefix(line, "event:"))
			case strings.HasPrefix(line, "data:"):
				dataLines = append(dataLines, strings.TrimSpace(strings.TrimPrefix(line, "data:")))
			}
		}
	}()

	select {
	case res := <-ch:
		return res.msg, res.err
	case <-time.After(timeout):
		return sseMessage{}, context.DeadlineExceeded
	}
}

func getJSON(t *testing.T, url string, into any) {
	t.Helper()
	resp, err := http.Get(url)
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.NoError(t, json.NewDecoder(resp.Body).Decode(into))
}

func ptr[T any](v T) *T { return &v }
