package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/causeconnect-dev/causeconnect/internal/graph"
	"github.com/causeconnect-dev/causeconnect/internal/store"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type graphQLResponse struct {
	Data   map[string]interface{} `json:"data"`
	Errors []GraphQLError         `json:"errors"`
}

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	// The stores are never reached: these tests only exercise requests that
	// fail before any resolver touches persistence.
	schema, err := graph.NewSchema(store.New(nil), nil)
	require.NoError(t, err)

	r := gin.New()
	r.POST("/graphql", GraphQL(schema))
	r.GET("/api/health", HealthCheck)
	return r
}

func postGraphQL(t *testing.T, r *gin.Engine, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/graphql", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestGraphQLUnauthenticatedError(t *testing.T) {
	r := newTestRouter(t)

	w := postGraphQL(t, r, `{"query": "{ me { id email } }"}`)
	require.Equal(t, http.StatusOK, w.Code, "resolver errors stay inside the GraphQL response")

	var response graphQLResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))

	require.Len(t, response.Errors, 1)
	assert.Equal(t, "Not authenticated", response.Errors[0].Message)
	assert.Equal(t, graph.CodeUnauthenticated, response.Errors[0].Code)
	assert.Equal(t, []interface{}{"me"}, response.Errors[0].Path)
	assert.Nil(t, response.Data["me"])
}

func TestGraphQLValidationErrorGetsDefaultCode(t *testing.T) {
	r := newTestRouter(t)

	w := postGraphQL(t, r, `{"query": "{ noSuchField }"}`)
	require.Equal(t, http.StatusOK, w.Code)

	var response graphQLResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))

	require.NotEmpty(t, response.Errors)
	assert.Equal(t, graph.CodeInternal, response.Errors[0].Code)
}

func TestGraphQLRejectsMalformedBody(t *testing.T) {
	r := newTestRouter(t)

	w := postGraphQL(t, r, `{"query": `)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGraphQLVariables(t *testing.T) {
	r := newTestRouter(t)

	// loginUser fails validation before touching the store when the email
	// argument, passed through variables, is not an address.
	w := postGraphQL(t, r, `{
		"query": "mutation Login($email: String!, $password: String!) { loginUser(email: $email, password: $password) { token } }",
		"variables": {"email": "not-an-email", "password": "supersecret"},
		"operationName": "Login"
	}`)
	require.Equal(t, http.StatusOK, w.Code)

	var response graphQLResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))

	require.Len(t, response.Errors, 1)
	assert.Equal(t, "Invalid email address", response.Errors[0].Message)
	assert.Equal(t, graph.CodeBadUserInput, response.Errors[0].Code)
}

func TestHealthCheck(t *testing.T) {
	r := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "ok", body["status"])
}
