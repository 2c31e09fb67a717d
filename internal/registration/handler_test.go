package registration

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/quizflow/quizflow-lambda/internal/config"
)

func newTestServer(repo Repository, mode string) http.Handler {
	service := NewService(repo, mode)
	handler := NewHandler(service)
	return Routes(handler)
}

func postSubmit(t *testing.T, h http.Handler, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestSubmitQuizMethodNotAllowed(t *testing.T) {
	repo := newFakeRepo()
	h := newTestServer(repo, config.RegistrationStrict)

	for _, method := range []string{http.MethodGet, http.MethodPut, http.MethodPatch} {
		req := httptest.NewRequest(method, "/", nil)
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)

		require.Equal(t, http.StatusMethodNotAllowed, rec.Code, "method %s", method)
	}
	require.Zero(t, repo.calls(), "nenhum acesso ao store deveria ocorrer")
}

func TestSubmitQuizUnknownAction(t *testing.T) {
	repo := newFakeRepo()
	h := newTestServer(repo, config.RegistrationStrict)

	rec := postSubmit(t, h, `{"action":"drop-tables","data":{}}`)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Equal(t, "Invalid action specified.", decodeBody(t, rec)["message"])
	require.Zero(t, repo.calls())
}

func TestSubmitQuizMissingAction(t *testing.T) {
	repo := newFakeRepo()
	h := newTestServer(repo, config.RegistrationStrict)

	rec := postSubmit(t, h, `{"data":{"name":"A"}}`)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Zero(t, repo.calls())
}

func TestSubmitQuizMalformedBody(t *testing.T) {
	repo := newFakeRepo()
	h := newTestServer(repo, config.RegistrationStrict)

	rec := postSubmit(t, h, `{"action":`)

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	require.Equal(t, "An error occurred on the server.", decodeBody(t, rec)["message"])
	require.Zero(t, repo.calls())
}

func TestSubmitQuizRegisterCreated(t *testing.T) {
	repo := newFakeRepo()
	h := newTestServer(repo, config.RegistrationStrict)

	rec := postSubmit(t, h, `{"action":"register-user","data":{"name":"Alice","email":"a@x.com","phone":"111"}}`)

	require.Equal(t, http.StatusCreated, rec.Code)
	require.Equal(t, "User registered successfully.", decodeBody(t, rec)["message"])
}

func TestSubmitQuizRegisterConflicts(t *testing.T) {
	repo := newFakeRepo()
	repo.emails["a@x.com"] = true
	repo.phones["222"] = true
	h := newTestServer(repo, config.RegistrationStrict)

	rec := postSubmit(t, h, `{"action":"register-user","data":{"name":"B","email":"a@x.com","phone":"999"}}`)
	require.Equal(t, http.StatusConflict, rec.Code)
	require.Equal(t, "This email is already registered.", decodeBody(t, rec)["message"])

	rec = postSubmit(t, h, `{"action":"register-user","data":{"name":"B","email":"b@x.com","phone":"222"}}`)
	require.Equal(t, http.StatusConflict, rec.Code)
	require.Equal(t, "This phone number is already registered.", decodeBody(t, rec)["message"])
}

func TestSubmitQuizRegisterAttemptLimit(t *testing.T) {
	repo := newFakeRepo()
	repo.users["max@x.com"] = &User{Email: "max@x.com", QuizAttempts: 3}
	h := newTestServer(repo, config.RegistrationStrict)

	rec := postSubmit(t, h, `{"action":"register-user","data":{"name":"Max","email":"max@x.com","phone":"333"}}`)

	require.Equal(t, http.StatusForbidden, rec.Code)
	require.Equal(t, "You have reached the maximum of 3 attempts.", decodeBody(t, rec)["message"])
}

func TestSubmitQuizRegisterWelcomeBack(t *testing.T) {
	repo := newFakeRepo()
	repo.users["ret@x.com"] = &User{Email: "ret@x.com", QuizAttempts: 1}
	h := newTestServer(repo, config.RegistrationStrict)

	rec := postSubmit(t, h, `{"action":"register-user","data":{"name":"R","email":"ret@x.com","phone":"444"}}`)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "Welcome back! Starting quiz.", decodeBody(t, rec)["message"])
}

func TestSubmitQuizSaveResults(t *testing.T) {
	repo := newFakeRepo()
	repo.users["u@x.com"] = &User{Email: "u@x.com", QuizAttempts: 1}
	h := newTestServer(repo, config.RegistrationStrict)

	rec := postSubmit(t, h, `{"action":"save-results","data":{"user":{"name":"U","email":"u@x.com","phone":"777"},"score":8,"total":10,"answers":[{"q":1,"a":"C"}]}}`)

	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	require.Equal(t, "Quiz results saved successfully.", body["message"])
	require.EqualValues(t, 2, body["newAttempts"])
	require.Len(t, repo.results, 1)
}

func TestSubmitQuizSaveResultsStoreFailure(t *testing.T) {
	repo := newFakeRepo()
	repo.failOn = "save"
	h := newTestServer(repo, config.RegistrationStrict)

	rec := postSubmit(t, h, `{"action":"save-results","data":{"user":{"email":"u@x.com"},"score":1,"total":2,"answers":[]}}`)

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	require.Equal(t, "An error occurred on the server.", decodeBody(t, rec)["message"])
}
