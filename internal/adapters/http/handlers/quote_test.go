package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen/quotesync/internal/adapters/http/dto"
	"github.com/jsamuelsen/quotesync/internal/adapters/render"
	"github.com/jsamuelsen/quotesync/internal/adapters/storage"
	"github.com/jsamuelsen/quotesync/internal/app"
	"github.com/jsamuelsen/quotesync/internal/domain"
	"github.com/jsamuelsen/quotesync/internal/mocks"
)

type testWidget struct {
	router  *gin.Engine
	service *app.QuoteService
	surface *render.MemorySurface
	remote  *mocks.MockRemoteQuoteClient
}

// setupWidget wires real app services over in-memory adapters and
// registers every API route under /api/v1.
func setupWidget(t *testing.T) *testWidget {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	store := app.NewQuoteStore(app.QuoteStoreConfig{Storage: storage.NewMemoryStore(), Logger: logger})
	require.NoError(t, store.Load(context.Background()))

	surface := render.NewMemorySurface()
	renderer := render.New(surface)

	service := app.NewQuoteService(app.QuoteServiceConfig{
		Store:    store,
		Session:  storage.NewMemoryStore(),
		Renderer: renderer,
		Intn:     func(int) int { return 0 },
		Logger:   logger,
	})

	remote := mocks.NewMockRemoteQuoteClient(t)
	syncer := app.NewSyncer(app.SyncerConfig{
		Store:    store,
		Remote:   remote,
		Renderer: renderer,
		Logger:   logger,
	})

	router := gin.New()
	api := router.Group("/api/v1")
	NewQuoteHandler(service).RegisterQuoteRoutes(api)
	NewSyncHandler(syncer).RegisterSyncRoutes(api)
	NewDisplayHandler(surface).RegisterDisplayRoutes(api)

	return &testWidget{router: router, service: service, surface: surface, remote: remote}
}

func (w *testWidget) do(method, path string, body io.Reader, contentType string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, body)
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	rec := httptest.NewRecorder()
	w.router.ServeHTTP(rec, req)

	return rec
}

func (w *testWidget) doJSON(method, path, body string) *httptest.ResponseRecorder {
	return w.do(method, path, strings.NewReader(body), "application/json")
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()

	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v))

	return v
}

func TestQuoteHandler_ListQuotes(t *testing.T) {
	w := setupWidget(t)

	rec := w.doJSON(http.MethodGet, "/api/v1/quotes", "")

	assert.Equal(t, http.StatusOK, rec.Code)

	resp := decode[dto.QuoteListResponse](t, rec)
	assert.Equal(t, domain.FilterAll, resp.Filter)
	assert.Equal(t, len(domain.SeedQuotes()), resp.Count)
	assert.Len(t, w.surface.Snapshot().Frame.Entries, resp.Count)
}

func TestQuoteHandler_AddQuote(t *testing.T) {
	tests := []struct {
		name         string
		body         string
		expectedCode int
		errCode      string
		notice       string
	}{
		{
			name:         "created",
			body:         `{"text":"Stay curious.","category":"Learning"}`,
			expectedCode: http.StatusCreated,
			notice:       app.NoticeAdded,
		},
		{
			name:         "missing category",
			body:         `{"text":"Stay curious.","category":""}`,
			expectedCode: http.StatusBadRequest,
			errCode:      dto.ErrorCodeValidation,
			notice:       app.NoticeMissingFields,
		},
		{
			name:         "missing text",
			body:         `{"category":"Learning"}`,
			expectedCode: http.StatusBadRequest,
			errCode:      dto.ErrorCodeValidation,
			notice:       app.NoticeMissingFields,
		},
		{
			name:         "malformed body",
			body:         `{"text":`,
			expectedCode: http.StatusBadRequest,
			errCode:      dto.ErrorCodeBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := setupWidget(t)
			before := w.service.Count()

			rec := w.doJSON(http.MethodPost, "/api/v1/quotes", tt.body)

			assert.Equal(t, tt.expectedCode, rec.Code)

			if tt.errCode != "" {
				resp := decode[dto.ErrorResponse](t, rec)
				assert.Equal(t, tt.errCode, resp.Error.Code)
				assert.Equal(t, before, w.service.Count())
			} else {
				resp := decode[dto.QuoteResponse](t, rec)
				assert.Equal(t, dto.QuoteResponse{Text: "Stay curious.", Category: "Learning"}, resp)
				assert.Equal(t, before+1, w.service.Count())
			}

			snap := w.surface.Snapshot()
			if tt.notice == "" {
				assert.Nil(t, snap.Notice)
			} else {
				require.NotNil(t, snap.Notice)
				assert.Equal(t, tt.notice, snap.Notice.Message)
			}
		})
	}
}

func TestQuoteHandler_RandomAndLastViewed(t *testing.T) {
	w := setupWidget(t)

	rec := w.doJSON(http.MethodGet, "/api/v1/quotes/last-viewed", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = w.doJSON(http.MethodGet, "/api/v1/quotes/random", "")
	require.Equal(t, http.StatusOK, rec.Code)

	random := decode[dto.QuoteResponse](t, rec)
	assert.Equal(t, dto.NewQuoteResponse(domain.SeedQuotes()[0]), random)

	rec = w.doJSON(http.MethodGet, "/api/v1/quotes/last-viewed", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, random, decode[dto.QuoteResponse](t, rec))

	assert.Equal(t, render.ModeSingle, w.surface.Snapshot().Frame.Mode)
}

func TestQuoteHandler_RandomWithEmptySelection(t *testing.T) {
	w := setupWidget(t)

	rec := w.doJSON(http.MethodPut, "/api/v1/filter", `{"category":"Nonexistent"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = w.doJSON(http.MethodGet, "/api/v1/quotes/random", "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, dto.ErrorCodeNotFound, decode[dto.ErrorResponse](t, rec).Error.Code)
}

func TestQuoteHandler_Filter(t *testing.T) {
	w := setupWidget(t)

	rec := w.doJSON(http.MethodGet, "/api/v1/filter", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, domain.FilterAll, decode[dto.FilterResponse](t, rec).Category)

	rec = w.doJSON(http.MethodPut, "/api/v1/filter", `{"category":"Design"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	list := decode[dto.QuoteListResponse](t, rec)
	assert.Equal(t, "Design", list.Filter)
	assert.Equal(t, 1, list.Count)

	rec = w.doJSON(http.MethodGet, "/api/v1/filter", "")
	assert.Equal(t, "Design", decode[dto.FilterResponse](t, rec).Category)

	rec = w.doJSON(http.MethodPut, "/api/v1/filter", `{"category":""}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, decode[dto.ErrorResponse](t, rec).Error.Details, "category")
}

func TestQuoteHandler_Categories(t *testing.T) {
	w := setupWidget(t)

	rec := w.doJSON(http.MethodGet, "/api/v1/categories", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []string{"Design", "Motivation", "Programming"},
		decode[dto.CategoriesResponse](t, rec).Categories)
}

func TestQuoteHandler_Export(t *testing.T) {
	w := setupWidget(t)

	rec := w.doJSON(http.MethodGet, "/api/v1/quotes/export", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, `attachment; filename="quotes.json"`, rec.Header().Get("Content-Disposition"))
	assert.Contains(t, rec.Header().Get("Content-Type"), "application/json")
	assert.Contains(t, rec.Body.String(), "\n  {\n    \"text\": ")

	var exported []domain.Quote
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &exported))
	assert.Equal(t, domain.SeedQuotes(), exported)
}

func TestQuoteHandler_Import(t *testing.T) {
	payload := `[{"text":"One","category":"Imp"},{"text":"Two","category":"Imp"}]`

	t.Run("raw JSON body", func(t *testing.T) {
		w := setupWidget(t)

		rec := w.doJSON(http.MethodPost, "/api/v1/quotes/import", payload)

		require.Equal(t, http.StatusOK, rec.Code)

		resp := decode[dto.ImportResponse](t, rec)
		assert.Equal(t, 2, resp.Imported)
		assert.Equal(t, len(domain.SeedQuotes())+2, resp.Total)
		assert.Equal(t, app.NoticeImported, resp.Message)
	})

	t.Run("multipart file", func(t *testing.T) {
		w := setupWidget(t)

		var body bytes.Buffer
		mw := multipart.NewWriter(&body)
		part, err := mw.CreateFormFile("file", "quotes.json")
		require.NoError(t, err)
		_, err = part.Write([]byte(payload))
		require.NoError(t, err)
		require.NoError(t, mw.Close())

		rec := w.do(http.MethodPost, "/api/v1/quotes/import", &body, mw.FormDataContentType())

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, 2, decode[dto.ImportResponse](t, rec).Imported)
	})

	t.Run("multipart without file field", func(t *testing.T) {
		w := setupWidget(t)

		var body bytes.Buffer
		mw := multipart.NewWriter(&body)
		require.NoError(t, mw.WriteField("other", "x"))
		require.NoError(t, mw.Close())

		rec := w.do(http.MethodPost, "/api/v1/quotes/import", &body, mw.FormDataContentType())

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, dto.ErrorCodeBadRequest, decode[dto.ErrorResponse](t, rec).Error.Code)
	})

	t.Run("malformed leaves store untouched", func(t *testing.T) {
		w := setupWidget(t)
		before := w.service.Count()

		rec := w.doJSON(http.MethodPost, "/api/v1/quotes/import", `{"text":"not an array"}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, dto.ErrorCodeParse, decode[dto.ErrorResponse](t, rec).Error.Code)
		assert.Equal(t, before, w.service.Count())
	})
}

func TestSyncHandler_TriggerSync(t *testing.T) {
	w := setupWidget(t)

	remoteList := []domain.Quote{{Text: "Remote", Category: "General"}}
	w.remote.EXPECT().FetchQuotes(mock.Anything).Return(remoteList, nil).Once()
	w.remote.EXPECT().PushQuotes(mock.Anything, remoteList).Return(nil).Once()

	rec := w.doJSON(http.MethodPost, "/api/v1/sync", "")

	require.Equal(t, http.StatusOK, rec.Code)

	resp := decode[dto.SyncResponse](t, rec)
	assert.True(t, resp.Conflict)
	assert.True(t, resp.Pushed)
	assert.Equal(t, 1, resp.Fetched)
	assert.Empty(t, resp.FetchError)

	assert.Equal(t, 1, w.service.Count())

	snap := w.surface.Snapshot()
	require.NotNil(t, snap.Notice)
	assert.Equal(t, app.NoticeSynced, snap.Notice.Message)
}

func TestSyncHandler_TriggerSync_RemoteDown(t *testing.T) {
	w := setupWidget(t)
	before := w.service.Count()

	w.remote.EXPECT().FetchQuotes(mock.Anything).
		Return(nil, domain.NewUnavailableError("remote-quotes", "connection refused")).Once()

	rec := w.doJSON(http.MethodPost, "/api/v1/sync", "")

	require.Equal(t, http.StatusOK, rec.Code)

	resp := decode[dto.SyncResponse](t, rec)
	assert.False(t, resp.Conflict)
	assert.False(t, resp.Pushed)
	assert.Contains(t, resp.FetchError, "connection refused")
	assert.Equal(t, before, w.service.Count())
}

func TestSyncHandler_SyncStatus(t *testing.T) {
	w := setupWidget(t)

	rec := w.doJSON(http.MethodGet, "/api/v1/sync", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"state":"idle"}`, rec.Body.String())
}

func TestDisplayHandler_Display(t *testing.T) {
	w := setupWidget(t)

	w.doJSON(http.MethodGet, "/api/v1/quotes", "")

	rec := w.doJSON(http.MethodGet, "/api/v1/display", "")

	require.Equal(t, http.StatusOK, rec.Code)

	snap := decode[render.Snapshot](t, rec)
	assert.Equal(t, render.ModeList, snap.Frame.Mode)
	require.Len(t, snap.Frame.Entries, len(domain.SeedQuotes()))
	assert.Equal(t, render.FormatLine(domain.SeedQuotes()[0]), snap.Frame.Entries[0].Line)
}
