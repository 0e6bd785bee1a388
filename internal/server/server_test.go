package server_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	mock_bookmark "github.com/orgball2608/mindlink/internal/bookmark/mocks"
	"github.com/orgball2608/mindlink/internal/domain"
	"github.com/orgball2608/mindlink/internal/instagram"
	mock_instagram "github.com/orgball2608/mindlink/internal/instagram/mocks"
	"github.com/orgball2608/mindlink/internal/ratelimit"
	"github.com/orgball2608/mindlink/internal/repositories/link"
	"github.com/orgball2608/mindlink/internal/server"
	apperrors "github.com/orgball2608/mindlink/pkg/errors"
	"github.com/orgball2608/mindlink/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const testUser = "user-1"

func init() {
	gin.SetMode(gin.TestMode)
}

type testRouter struct {
	router    *gin.Engine
	instagram *mock_instagram.MockClient
	bookmark  *mock_bookmark.MockClient
}

type routerOption func(*routerConfig)

type routerConfig struct {
	devMode bool
	limiter ratelimit.Limiter
}

func withDevMode() routerOption {
	return func(c *routerConfig) { c.devMode = true }
}

func withLimiter(l ratelimit.Limiter) routerOption {
	return func(c *routerConfig) { c.limiter = l }
}

func newTestRouter(t *testing.T, opts ...routerOption) *testRouter {
	t.Helper()

	cfg := &routerConfig{limiter: ratelimit.NewInMemoryLimiter(1000, time.Second, 1000)}
	for _, opt := range opts {
		opt(cfg)
	}

	ctrl := gomock.NewController(t)
	tr := &testRouter{
		instagram: mock_instagram.NewMockClient(ctrl),
		bookmark:  mock_bookmark.NewMockClient(ctrl),
	}

	log := logger.NewNop()
	handler := server.NewHandler(tr.instagram, tr.bookmark, log, cfg.devMode)
	tr.router = server.NewRouter(handler, cfg.limiter, log)

	return tr
}

func (tr *testRouter) do(method, target, body string, headers map[string]string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	w := httptest.NewRecorder()
	tr.router.ServeHTTP(w, req)
	return w
}

func asUser() map[string]string {
	return map[string]string{"X-User-ID": testUser}
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func TestHealthz(t *testing.T) {
	t.Parallel()

	tr := newTestRouter(t)
	w := tr.do(http.MethodGet, "/healthz", "", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "ok", w.Body.String())
}

func TestInstagramMetadata_MissingURL(t *testing.T) {
	t.Parallel()

	for _, target := range []string{"/api/instagram/oembed", "/api/instagram/oembed?url="} {
		tr := newTestRouter(t)
		w := tr.do(http.MethodGet, target, "", nil)

		assert.Equal(t, http.StatusBadRequest, w.Code, target)
		assert.JSONEq(t, `{"error":"URL parameter is required"}`, w.Body.String(), target)
	}
}

func TestInstagramMetadata_OK(t *testing.T) {
	t.Parallel()

	tr := newTestRouter(t)
	rawURL := "https://www.instagram.com/reel/ABC/?igsh=1"
	tr.instagram.EXPECT().GetMetadata(gomock.Any(), rawURL).Return(&domain.Metadata{
		Title:        "Reel by @reel",
		Description:  "Instagram Reel",
		ThumbnailURL: "",
		AuthorName:   "reel",
		AuthorURL:    "https://www.instagram.com/reel/",
		Type:         "video",
		Tags:         []string{"Instagram", "reel", "@reel"},
		ContentType:  "reel",
	}, nil)

	w := tr.do(http.MethodGet, "/api/instagram/oembed?url=https%3A%2F%2Fwww.instagram.com%2Freel%2FABC%2F%3Figsh%3D1", "", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{
		"title": "Reel by @reel",
		"description": "Instagram Reel",
		"thumbnail_url": "",
		"author_name": "reel",
		"author_url": "https://www.instagram.com/reel/",
		"type": "video",
		"tags": ["Instagram", "reel", "@reel"],
		"contentType": "reel"
	}`, w.Body.String())
}

func TestInstagramMetadata_UpstreamStatus(t *testing.T) {
	t.Parallel()

	tr := newTestRouter(t)
	tr.instagram.EXPECT().GetMetadata(gomock.Any(), "https://instagram.com/p/X").
		Return(nil, &instagram.FetchError{URL: "https://instagram.com/p/X", Status: 404, Body: "Page not found"})

	w := tr.do(http.MethodGet, "/api/instagram/oembed?url=https://instagram.com/p/X", "", nil)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{
		"error": "Failed to fetch Instagram metadata",
		"details": "Request failed with status code 404",
		"status": 404,
		"data": "Page not found"
	}`, w.Body.String())
}

func TestInstagramMetadata_TransportError(t *testing.T) {
	t.Parallel()

	tr := newTestRouter(t)
	tr.instagram.EXPECT().GetMetadata(gomock.Any(), gomock.Any()).
		Return(nil, &instagram.FetchError{Err: errors.New("dial tcp: lookup instagram.com: no such host")})

	w := tr.do(http.MethodGet, "/api/instagram/oembed?url=https://instagram.com/p/X", "", nil)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	body := decode(t, w)
	assert.Equal(t, "Failed to fetch Instagram metadata", body["error"])
	assert.Equal(t, "dial tcp: lookup instagram.com: no such host", body["details"])
	assert.NotContains(t, body, "status")
	assert.NotContains(t, body, "data")
	assert.NotContains(t, body, "stack")
}

func TestInstagramMetadata_StackInDevelopment(t *testing.T) {
	t.Parallel()

	tr := newTestRouter(t, withDevMode())
	tr.instagram.EXPECT().GetMetadata(gomock.Any(), gomock.Any()).Return(nil, errors.New("boom"))

	w := tr.do(http.MethodGet, "/api/instagram/oembed?url=https://instagram.com/p/X", "", nil)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	body := decode(t, w)
	assert.Equal(t, "boom", body["details"])
	assert.NotEmpty(t, body["stack"])
}

func TestRateLimit(t *testing.T) {
	t.Parallel()

	tr := newTestRouter(t, withLimiter(ratelimit.NewInMemoryLimiter(1, time.Hour, 2)))

	for i := 0; i < 2; i++ {
		w := tr.do(http.MethodGet, "/api/instagram/oembed", "", nil)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	}

	w := tr.do(http.MethodGet, "/api/instagram/oembed", "", nil)
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.JSONEq(t, `{"error":"Too many requests"}`, w.Body.String())

	health := tr.do(http.MethodGet, "/healthz", "", nil)
	assert.Equal(t, http.StatusOK, health.Code, "health checks are not limited")
}

func TestCORSPreflight(t *testing.T) {
	t.Parallel()

	tr := newTestRouter(t)
	w := tr.do(http.MethodOptions, "/api/links", "", map[string]string{"Origin": "https://app.example.com"})

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Contains(t, w.Header().Get("Access-Control-Allow-Headers"), "X-User-ID")
}

func TestLinks_Unauthorized(t *testing.T) {
	t.Parallel()

	tr := newTestRouter(t)

	for _, path := range []string{"/api/links", "/api/links/abc", "/api/activities"} {
		w := tr.do(http.MethodGet, path, "", nil)
		assert.Equal(t, http.StatusUnauthorized, w.Code, path)
		assert.JSONEq(t, `{"message":"Unauthorized"}`, w.Body.String(), path)
	}
}

func TestCreateLink(t *testing.T) {
	t.Parallel()

	tr := newTestRouter(t)
	tr.bookmark.EXPECT().
		AddLink(gomock.Any(), testUser, domain.NewLink{URL: "https://example.com", Tags: []string{"go"}}).
		Return(&domain.Link{ID: "l1", UserID: testUser, URL: "https://example.com", Title: "example.com"}, nil)

	w := tr.do(http.MethodPost, "/api/links", `{"url":"https://example.com","tags":["go"]}`, asUser())

	assert.Equal(t, http.StatusCreated, w.Code)
	body := decode(t, w)
	assert.Equal(t, "l1", body["id"])
	assert.Equal(t, "example.com", body["title"])
}

func TestCreateLink_Errors(t *testing.T) {
	t.Parallel()

	t.Run("invalid json", func(t *testing.T) {
		t.Parallel()

		tr := newTestRouter(t)
		w := tr.do(http.MethodPost, "/api/links", `{"url":`, asUser())
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.JSONEq(t, `{"message":"Invalid request body"}`, w.Body.String())
	})

	t.Run("missing url", func(t *testing.T) {
		t.Parallel()

		tr := newTestRouter(t)
		tr.bookmark.EXPECT().AddLink(gomock.Any(), testUser, gomock.Any()).
			Return(nil, apperrors.InvalidInput("URL is required"))

		w := tr.do(http.MethodPost, "/api/links", `{}`, asUser())
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.JSONEq(t, `{"message":"URL is required"}`, w.Body.String())
	})

	t.Run("storage failure", func(t *testing.T) {
		t.Parallel()

		tr := newTestRouter(t)
		tr.bookmark.EXPECT().AddLink(gomock.Any(), testUser, gomock.Any()).Return(nil, errors.New("db down"))

		w := tr.do(http.MethodPost, "/api/links", `{"url":"https://example.com"}`, asUser())
		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.JSONEq(t, `{"message":"Error creating link"}`, w.Body.String())
	})
}

func TestListLinks(t *testing.T) {
	t.Parallel()

	tr := newTestRouter(t)
	tr.bookmark.EXPECT().ListLinks(gomock.Any(), testUser).Return([]*domain.Link{{ID: "l2"}, {ID: "l1"}}, nil)

	w := tr.do(http.MethodGet, "/api/links", "", asUser())

	assert.Equal(t, http.StatusOK, w.Code)
	var links []domain.Link
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &links))
	require.Len(t, links, 2)
	assert.Equal(t, "l2", links[0].ID)
}

func TestGetLink_NotFound(t *testing.T) {
	t.Parallel()

	tr := newTestRouter(t)
	tr.bookmark.EXPECT().GetLink(gomock.Any(), testUser, "missing").Return(nil, link.ErrNotFound)

	w := tr.do(http.MethodGet, "/api/links/missing", "", asUser())

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"message":"Link not found"}`, w.Body.String())
}

func TestUpdateLink(t *testing.T) {
	t.Parallel()

	tr := newTestRouter(t)
	tr.bookmark.EXPECT().UpdateLink(gomock.Any(), testUser, "l1", gomock.Any()).DoAndReturn(
		func(_ any, _ string, _ string, update domain.LinkUpdate) (*domain.Link, error) {
			require.NotNil(t, update.IsPinned)
			assert.True(t, *update.IsPinned)
			assert.Nil(t, update.Title)
			return &domain.Link{ID: "l1", IsPinned: true}, nil
		},
	)

	w := tr.do(http.MethodPatch, "/api/links/l1", `{"isPinned":true}`, asUser())

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, true, decode(t, w)["isPinned"])
}

func TestDeleteLink(t *testing.T) {
	t.Parallel()

	tr := newTestRouter(t)
	tr.bookmark.EXPECT().DeleteLink(gomock.Any(), testUser, "l1").Return(nil)

	w := tr.do(http.MethodDelete, "/api/links/l1", "", asUser())

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message":"Link deleted successfully"}`, w.Body.String())
}

func TestMarkAsRead(t *testing.T) {
	t.Parallel()

	tr := newTestRouter(t)
	tr.bookmark.EXPECT().MarkAsRead(gomock.Any(), testUser, "l1").Return(&domain.Link{ID: "l1", IsRead: true}, nil)

	w := tr.do(http.MethodPost, "/api/links/l1/read", "", asUser())

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, true, decode(t, w)["isRead"])
}

func TestReprocessLink(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		result *domain.Link
		err    error
		status int
		body   map[string]any
	}{
		{
			name:   "ok",
			result: &domain.Link{ID: "l1", ContentType: domain.ContentTypeReel, IsProcessed: true},
			status: http.StatusOK,
		},
		{
			name:   "not instagram",
			err:    apperrors.InvalidInput("Only Instagram posts and reels can be reprocessed"),
			status: http.StatusBadRequest,
			body:   map[string]any{"message": "Only Instagram posts and reels can be reprocessed"},
		},
		{
			name:   "not found",
			err:    link.ErrNotFound,
			status: http.StatusNotFound,
			body:   map[string]any{"message": "Link not found"},
		},
		{
			name:   "extractor failure",
			err:    &instagram.FetchError{URL: "https://instagram.com/reel/A", Status: 429},
			status: http.StatusInternalServerError,
			body:   map[string]any{"message": "Error reprocessing link"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			tr := newTestRouter(t)
			tr.bookmark.EXPECT().Reprocess(gomock.Any(), testUser, "l1").Return(tt.result, tt.err)

			w := tr.do(http.MethodPost, "/api/links/l1/reprocess", "", asUser())

			assert.Equal(t, tt.status, w.Code)
			body := decode(t, w)
			if tt.body != nil {
				assert.Equal(t, tt.body, body)
				return
			}
			assert.Equal(t, true, body["isProcessed"])
			assert.Equal(t, "reel", body["contentType"])
		})
	}
}

func TestReprocessLink_Unauthorized(t *testing.T) {
	t.Parallel()

	tr := newTestRouter(t)

	w := tr.do(http.MethodPost, "/api/links/l1/reprocess", "", nil)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestListActivities(t *testing.T) {
	t.Parallel()

	tr := newTestRouter(t)
	tr.bookmark.EXPECT().RecentActivities(gomock.Any(), testUser).Return([]*domain.Activity{
		{ID: "a1", Type: domain.ActivityLinkCreated, Message: "Added a new link"},
	}, nil)

	w := tr.do(http.MethodGet, "/api/activities", "", asUser())

	assert.Equal(t, http.StatusOK, w.Code)
	var activities []map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &activities))
	require.Len(t, activities, 1)
	assert.Equal(t, "link_created", activities[0]["type"])
	assert.Contains(t, activities[0], "timestamp")
}

func TestRecovery(t *testing.T) {
	t.Parallel()

	tr := newTestRouter(t)
	tr.bookmark.EXPECT().ListLinks(gomock.Any(), testUser).DoAndReturn(
		func(_ any, _ string) ([]*domain.Link, error) {
			panic("unexpected")
		},
	)

	w := tr.do(http.MethodGet, "/api/links", "", asUser())

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"message":"Internal server error"}`, w.Body.String())
}
