package v1handler_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/ozvarsergen-rgb/qr-scanner-app/internal/api/handler/v1handler"
	mocklookup "github.com/ozvarsergen-rgb/qr-scanner-app/internal/lookup/mock"
	"github.com/ozvarsergen-rgb/qr-scanner-app/pkg/domain"
	"github.com/ozvarsergen-rgb/qr-scanner-app/pkg/serrors"
)

type api struct {
	router   *mux.Router
	lookups  *mocklookup.MockService
	resolver *mocklookup.MockResolver
	userID   domain.UserID
	token    string
}

func newAPI(t *testing.T) *api {
	t.Helper()

	ctrl := gomock.NewController(t)
	priv, pubPEM := genRSAKeys(t)
	uid := uuid.New()
	now := time.Now()

	a := &api{
		router:   mux.NewRouter(),
		lookups:  mocklookup.NewMockService(ctrl),
		resolver: mocklookup.NewMockResolver(ctrl),
		userID:   domain.UserID(uid),
		token:    signJWTRS256(t, priv, uid.String(), now, now.Add(time.Hour)),
	}
	h := v1handler.New(v1handler.Deps{Lookups: a.lookups, Resolver: a.resolver})
	h.Register(a.router.PathPrefix("/v1").Subrouter(), newSecHandlerForTest(t, pubPEM))

	return a
}

func (a *api) do(t *testing.T, method, path, body string, authed bool) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()

	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if authed {
		req.Header.Set("Authorization", "Bearer "+a.token)
	}
	rec := httptest.NewRecorder()
	a.router.ServeHTTP(rec, req)

	var decoded map[string]any
	if rec.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &decoded), rec.Body.String())
	}

	return rec, decoded
}

func TestClassify(t *testing.T) {
	a := newAPI(t)

	rec, body := a.do(t, http.MethodPost, "/v1/classify", `{"payload":"a@b.com"}`, false)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "EMAIL", body["kind"])

	rec, body = a.do(t, http.MethodPost, "/v1/classify", `{"payload":"1234567890128","format":"ean-13"}`, false)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "BARCODE", body["kind"])

	rec, body = a.do(t, http.MethodPost, "/v1/classify", `{"payload":"WIFI:S:cafe;T:WPA;P:latte;;"}`, false)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "cafe", body["wifi"].(map[string]any)["ssid"])
}

func TestClassify_BadRequests(t *testing.T) {
	a := newAPI(t)

	for _, payload := range []string{`{}`, `{"payload":42}`, `not json`} {
		rec, body := a.do(t, http.MethodPost, "/v1/classify", payload, false)
		require.Equal(t, http.StatusBadRequest, rec.Code, payload)
		require.Equal(t, serrors.ErrBadRequest.Error(), body["code"], payload)
	}
}

func TestResolve_RequiresToken(t *testing.T) {
	a := newAPI(t)
	a.resolver.EXPECT().Resolve(gomock.Any(), gomock.Any()).Times(0)

	rec, body := a.do(t, http.MethodPost, "/v1/resolve", `{"code":"1234567890128"}`, false)
	require.Equal(t, http.StatusUnauthorized, rec.Code)
	require.Equal(t, serrors.ErrUnauthorized.Error(), body["code"])
}

func TestResolve(t *testing.T) {
	a := newAPI(t)

	name := "Ayran"
	a.resolver.EXPECT().Resolve(gomock.Any(), "1234567890128").Return(domain.LookupOutcome{
		Code:   "1234567890128",
		Record: &domain.ProductRecord{Name: &name, Source: "openfoodfacts"},
		Attempts: []domain.Attempt{
			{Provider: "upcitemdb", Outcome: domain.AttemptFailed, ErrorKind: domain.ProviderErrorTimeout, Error: "slow"},
			{Provider: "openfoodfacts", Outcome: domain.AttemptSuccess, Elapsed: 120 * time.Millisecond},
		},
	})

	rec, body := a.do(t, http.MethodPost, "/v1/resolve", `{"code":"  1234567890128 "}`, true)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, true, body["found"])
	require.Equal(t, false, body["allFailed"])

	record := body["record"].(map[string]any)
	require.Equal(t, "Ayran", record["name"])
	require.Contains(t, record, "brand")
	require.Nil(t, record["brand"])
	require.Equal(t, "openfoodfacts", record["source"])

	attempts := body["attempts"].([]any)
	require.Len(t, attempts, 2)
	require.Equal(t, "TIMEOUT", attempts[0].(map[string]any)["errorKind"])
	require.InDelta(t, 120, attempts[1].(map[string]any)["elapsedMs"], 0)
}

func TestResolve_InvalidCode(t *testing.T) {
	a := newAPI(t)
	a.resolver.EXPECT().Resolve(gomock.Any(), gomock.Any()).Times(0)

	rec, _ := a.do(t, http.MethodPost, "/v1/resolve", `{"code":"   "}`, true)
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreateLookup(t *testing.T) {
	a := newAPI(t)
	id := domain.LookupID(uuid.New())

	a.lookups.EXPECT().Enqueue(gomock.Any(), a.userID, "1234567890128", domain.FormatEAN13).
		Return(&domain.Lookup{ID: id, Code: "1234567890128", Format: domain.FormatEAN13,
			Status: domain.LookupStatusPending, CreatedAt: time.Now()}, nil)

	rec, body := a.do(t, http.MethodPost, "/v1/lookups", `{"code":"1234567890128","format":"EAN13"}`, true)
	require.Equal(t, http.StatusAccepted, rec.Code)
	require.Equal(t, "/v1/lookups/"+id.String(), rec.Header().Get("Location"))
	require.Equal(t, id.String(), body["id"])
	require.Equal(t, "PENDING", body["status"])
	require.Nil(t, body["outcome"])
	require.Nil(t, body["updatedAt"])
}

func TestGetLookup(t *testing.T) {
	a := newAPI(t)
	id := domain.LookupID(uuid.New())

	rec, _ := a.do(t, http.MethodGet, "/v1/lookups/not-an-id", "", true)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	a.lookups.EXPECT().Result(gomock.Any(), a.userID, id).
		Return(nil, serrors.With(serrors.ErrNotFound, "lookup not found"))
	rec, body := a.do(t, http.MethodGet, "/v1/lookups/"+id.String(), "", true)
	require.Equal(t, http.StatusNotFound, rec.Code)
	require.Equal(t, "lookup not found", body["message"])

	a.lookups.EXPECT().Result(gomock.Any(), a.userID, id).Return(&domain.Lookup{
		ID:      id,
		Code:    "1234567890128",
		Status:  domain.LookupStatusCompleted,
		Outcome: domain.LookupOutcome{Code: "1234567890128", Attempts: []domain.Attempt{}},
	}, nil)
	rec, body = a.do(t, http.MethodGet, "/v1/lookups/"+id.String(), "", true)
	require.Equal(t, http.StatusOK, rec.Code)
	outcome := body["outcome"].(map[string]any)
	require.Equal(t, false, outcome["found"])
	require.Nil(t, outcome["record"])
}

func TestListLookups(t *testing.T) {
	a := newAPI(t)

	rec, _ := a.do(t, http.MethodGet, "/v1/lookups?status=DONE", "", true)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	rec, _ = a.do(t, http.MethodGet, "/v1/lookups?limit=1000", "", true)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	a.lookups.EXPECT().UserLookups(gomock.Any(), a.userID, domain.LookupStatusCompleted, "c1", uint(5)).
		Return([]domain.Lookup{{ID: domain.LookupID(uuid.New()), Status: domain.LookupStatusCompleted}}, "c2", nil)
	rec, body := a.do(t, http.MethodGet, "/v1/lookups?status=COMPLETED&cursor=c1&limit=5", "", true)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Len(t, body["items"], 1)
	require.Equal(t, "c2", body["nextCursor"])

	a.lookups.EXPECT().UserLookups(gomock.Any(), a.userID, domain.LookupStatus(""), "", uint(v1handler.DefaultLimit)).
		Return(nil, "", nil)
	rec, body = a.do(t, http.MethodGet, "/v1/lookups", "", true)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Empty(t, body["items"])
	require.Nil(t, body["nextCursor"])
}

func TestDeleteLookup(t *testing.T) {
	a := newAPI(t)
	id := domain.LookupID(uuid.New())

	a.lookups.EXPECT().Delete(gomock.Any(), a.userID, id).Return(nil)
	rec, _ := a.do(t, http.MethodDelete, "/v1/lookups/"+id.String(), "", true)
	require.Equal(t, http.StatusNoContent, rec.Code)
}
