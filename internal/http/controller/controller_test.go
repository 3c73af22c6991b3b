package controller

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"mockgraph/internal/config"
	"mockgraph/internal/domain"
	"mockgraph/internal/gql"
	"mockgraph/internal/http/dto"
	"mockgraph/internal/http/resp"
	"mockgraph/internal/metrics"
	"mockgraph/internal/model"
	"mockgraph/internal/service/cars"
	"mockgraph/internal/service/users"
	"mockgraph/internal/sse"
	"mockgraph/internal/store/memory"
)

type notifierMock struct {
	mock.Mock
}

func (m *notifierMock) Created(ctx context.Context, id int32, record any) {
	m.Called(ctx, id, record)
}

func fixtureCars() []model.Car {
	return []model.Car{
		{ID: 1, Make: ptr("Toyota"), Model: ptr("Corolla"), Year: ptr[int32](2010), Color: ptr("Red"), Price: ptr[int32](9000)},
		{ID: 2, Make: ptr("Ford"), Model: ptr("Focus"), Year: ptr[int32](2015), Color: ptr("Blue"), Price: ptr[int32](12000)},
		{ID: 3, Make: ptr("Toyota"), Model: ptr("Camry"), Year: ptr[int32](2018), Color: ptr("Black"), Price: ptr[int32](21000)},
	}
}

func newCarHandler(t *testing.T, cfg *config.Config, notifier cars.Notifier) *Handler {
	t.Helper()
	svc := cars.NewService(memory.New(fixtureCars(), zap.NewNop()), notifier, zap.NewNop())
	schema, err := gql.NewCarSchema(cfg, svc, zap.NewNop())
	require.NoError(t, err)
	return NewHandler(cfg, schema, CarListing(svc), sse.NewHub(), metrics.New(cfg), zap.NewNop())
}

func setupRouter(t *testing.T, handler *Handler) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.GET("/", handler.Index)
	router.POST("/graphql", handler.GraphQL)
	router.GET("/graphql", handler.GraphQLGet)
	router.GET(handler.ListingPath(), handler.ListAll)
	return router
}

func performJSONRequest(t *testing.T, router *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(method, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

type graphQLResponse struct {
	Data   json.RawMessage `json:"data"`
	Errors []struct {
		Message string `json:"message"`
	} `json:"errors"`
}

func decodeGraphQL(t *testing.T, rec *httptest.ResponseRecorder) graphQLResponse {
	t.Helper()
	var out graphQLResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return out
}

func carsConfig() *config.Config {
	return &config.Config{Kind: domain.KindCars, GraphiQL: true, GraphQLMaxDepth: 10}
}

func TestIndex(t *testing.T) {
	router := setupRouter(t, newCarHandler(t, carsConfig(), &notifierMock{}))

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "Welcome to the Car Inventory API", rec.Body.String())
}

func TestGraphQLController(t *testing.T) {
	t.Run("query", func(t *testing.T) {
		router := setupRouter(t, newCarHandler(t, carsConfig(), &notifierMock{}))

		rec := performJSONRequest(t, router, http.MethodPost, "/graphql", dto.GraphQLRequest{
			Query:     `query Car($id: Int) { findCarById(id: $id) { id make } }`,
			Variables: map[string]interface{}{"id": 2},
		})
		require.Equal(t, http.StatusOK, rec.Code)
		require.JSONEq(t, `{"findCarById":{"id":2,"make":"Ford"}}`, string(decodeGraphQL(t, rec).Data))
	})

	t.Run("mutation then REST listing", func(t *testing.T) {
		notifier := &notifierMock{}
		notifier.On("Created", mock.Anything, int32(4), mock.Anything).Return().Once()
		router := setupRouter(t, newCarHandler(t, carsConfig(), notifier))

		rec := performJSONRequest(t, router, http.MethodPost, "/graphql", dto.GraphQLRequest{
			Query: `mutation { createCar(make: "Tesla", model: "Model3", year: 2024, color: "red", price: 40000) { id make } }`,
		})
		require.Equal(t, http.StatusOK, rec.Code)
		require.JSONEq(t, `{"createCar":{"id":4,"make":"Tesla"}}`, string(decodeGraphQL(t, rec).Data))

		rest := httptest.NewRecorder()
		router.ServeHTTP(rest, httptest.NewRequest(http.MethodGet, "/rest/getAllCars", nil))
		require.Equal(t, http.StatusOK, rest.Code)
		var listed []model.Car
		require.NoError(t, json.Unmarshal(rest.Body.Bytes(), &listed))
		require.Len(t, listed, 4)
		require.Equal(t, model.Car{ID: 4, Make: ptr("Tesla"), Model: ptr("Model3"), Year: ptr[int32](2024), Color: ptr("red"), Price: ptr[int32](40000)}, listed[3])
		notifier.AssertExpectations(t)
	})

	t.Run("invalid json", func(t *testing.T) {
		router := setupRouter(t, newCarHandler(t, carsConfig(), &notifierMock{}))

		req := httptest.NewRequest(http.MethodPost, "/graphql", bytes.NewBufferString("{query"))
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		require.Equal(t, http.StatusBadRequest, rec.Code)
		var body dto.ErrorResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		require.Equal(t, resp.CodeBadRequest, body.Code)
	})

	t.Run("empty query", func(t *testing.T) {
		router := setupRouter(t, newCarHandler(t, carsConfig(), &notifierMock{}))
		rec := performJSONRequest(t, router, http.MethodPost, "/graphql", dto.GraphQLRequest{Query: "  "})
		require.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("syntax error", func(t *testing.T) {
		router := setupRouter(t, newCarHandler(t, carsConfig(), &notifierMock{}))
		rec := performJSONRequest(t, router, http.MethodPost, "/graphql", dto.GraphQLRequest{Query: `{ getAllCars { id `})
		require.Equal(t, http.StatusBadRequest, rec.Code)
		out := decodeGraphQL(t, rec)
		require.NotEmpty(t, out.Errors)
		require.Empty(t, out.Data)
	})
}

func TestGraphQLGet(t *testing.T) {
	t.Run("console for browsers", func(t *testing.T) {
		router := setupRouter(t, newCarHandler(t, carsConfig(), &notifierMock{}))
		req := httptest.NewRequest(http.MethodGet, "/graphql", nil)
		req.Header.Set("Accept", "text/html,application/xhtml+xml")
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		require.Contains(t, rec.Header().Get("Content-Type"), "text/html")
		require.Contains(t, rec.Body.String(), "GraphiQL")
	})

	t.Run("console disabled", func(t *testing.T) {
		cfg := carsConfig()
		cfg.GraphiQL = false
		router := setupRouter(t, newCarHandler(t, cfg, &notifierMock{}))
		req := httptest.NewRequest(http.MethodGet, "/graphql", nil)
		req.Header.Set("Accept", "text/html")
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		require.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("query string", func(t *testing.T) {
		router := setupRouter(t, newCarHandler(t, carsConfig(), &notifierMock{}))
		params := url.Values{}
		params.Set("query", `query($m: String) { findCarByMake(make: $m) { id } }`)
		params.Set("variables", `{"m":"Toyota"}`)
		req := httptest.NewRequest(http.MethodGet, "/graphql?"+params.Encode(), nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		require.JSONEq(t, `{"findCarByMake":[{"id":1},{"id":3}]}`, string(decodeGraphQL(t, rec).Data))
	})

	t.Run("bad variables", func(t *testing.T) {
		router := setupRouter(t, newCarHandler(t, carsConfig(), &notifierMock{}))
		rec := httptest.NewRecorder()
		params := url.Values{"query": {"{ getAllCars { id } }"}, "variables": {"nope"}}
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/graphql?"+params.Encode(), nil))
		require.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestRESTMatchesGraphQL(t *testing.T) {
	router := setupRouter(t, newCarHandler(t, carsConfig(), &notifierMock{}))

	rest := httptest.NewRecorder()
	router.ServeHTTP(rest, httptest.NewRequest(http.MethodGet, "/rest/getAllCars", nil))
	require.Equal(t, http.StatusOK, rest.Code)

	rec := performJSONRequest(t, router, http.MethodPost, "/graphql", dto.GraphQLRequest{
		Query: `{ getAllCars { id make model year color price } }`,
	})
	var data struct {
		GetAllCars json.RawMessage `json:"getAllCars"`
	}
	require.NoError(t, json.Unmarshal(decodeGraphQL(t, rec).Data, &data))
	require.JSONEq(t, rest.Body.String(), string(data.GetAllCars))
}

func TestListAllError(t *testing.T) {
	cfg := &config.Config{Kind: domain.KindUsers}
	listing := Listing{
		Path: "/rest/getAllUsers",
		List: func(context.Context) (any, error) { return nil, errors.New("store failed") },
	}
	svc := users.NewService(memory.New[model.User](nil, zap.NewNop()), &notifierMock{}, zap.NewNop())
	schema, err := gql.NewUserSchema(cfg, svc, zap.NewNop())
	require.NoError(t, err)
	router := setupRouter(t, NewHandler(cfg, schema, listing, sse.NewHub(), metrics.New(cfg), zap.NewNop()))

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/rest/getAllUsers", nil))
	require.Equal(t, http.StatusInternalServerError, rec.Code)
	var body dto.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Equal(t, resp.CodeInternalError, body.Code)
}

func TestUserListing(t *testing.T) {
	svc := users.NewService(memory.New([]model.User{{ID: 1, Email: ptr("a@example.com")}}, zap.NewNop()), &notifierMock{}, zap.NewNop())
	listing := UserListing(svc)
	require.Equal(t, "/rest/getAllUsers", listing.Path)

	records, err := listing.List(context.Background())
	require.NoError(t, err)
	require.Equal(t, []model.User{{ID: 1, Email: ptr("a@example.com")}}, records)
}

func TestEventsAfterHubStopped(t *testing.T) {
	gin.SetMode(gin.TestMode)
	cfg := carsConfig()
	hub := sse.NewHub()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	hub.Run(ctx)

	handler := NewHandler(cfg, nil, Listing{}, hub, metrics.New(cfg), zap.NewNop())
	router := gin.New()
	router.GET("/events", handler.Events)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/events", nil))
	require.Equal(t, http.StatusServiceUnavailable, rec.Code)

	var body dto.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Equal(t, resp.CodeUnavailable, body.Code)
}

func ptr[T any](v T) *T { return &v }
