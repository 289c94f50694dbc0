package comment

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clipstack/clipstack-backend/internal/auth"
	httpHandler "github.com/clipstack/clipstack-backend/internal/http"
)

type handlerFixture struct {
	*serviceFixture
	router *gin.Engine
	tokens auth.TokenService
}

func newHandlerFixture(t *testing.T) *handlerFixture {
	t.Helper()
	gin.SetMode(gin.TestMode)

	sf := newServiceFixture(t, DeleteOrphan)

	authConfig := &auth.Config{}
	authConfig.JWT.Secret = "handler-test-secret"
	authConfig.JWT.AccessTokenTTL = time.Hour
	tokens := auth.NewJWTService(authConfig)

	router := gin.New()
	handler := NewHandler(sf.service, httpHandler.NewResponseHandler(sf.logger))
	handler.RegisterRoutes(router, tokens)

	return &handlerFixture{serviceFixture: sf, router: router, tokens: tokens}
}

func (f *handlerFixture) bearerFor(t *testing.T, userID uuid.UUID) string {
	t.Helper()
	token, err := f.tokens.GenerateAccessToken(userID.String(), "viewer@example.com")
	require.NoError(t, err)
	return "Bearer " + token
}

func (f *handlerFixture) do(t *testing.T, method, path, bearer string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if bearer != "" {
		req.Header.Set("Authorization", bearer)
	}

	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, req)
	return w
}

func decodeResponse(t *testing.T, w *httptest.ResponseRecorder) httpHandler.Response {
	t.Helper()
	var resp httpHandler.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func TestHandler_CreateComment(t *testing.T) {
	t.Run("requires authentication", func(t *testing.T) {
		f := newHandlerFixture(t)
		w := f.do(t, http.MethodPost, "/video/"+uuid.NewString()+"/comment", "", gin.H{"content": "hi"})
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("rejects blank content", func(t *testing.T) {
		f := newHandlerFixture(t)
		bearer := f.bearerFor(t, uuid.New())

		w := f.do(t, http.MethodPost, "/video/"+uuid.NewString()+"/comment", bearer, gin.H{"content": "   "})

		assert.Equal(t, http.StatusBadRequest, w.Code)
		resp := decodeResponse(t, w)
		require.NotNil(t, resp.Error)
		assert.Equal(t, "VALIDATION_ERROR", resp.Error.Code)
	})

	t.Run("rejects malformed video id", func(t *testing.T) {
		f := newHandlerFixture(t)
		bearer := f.bearerFor(t, uuid.New())

		w := f.do(t, http.MethodPost, "/video/not-a-uuid/comment", bearer, gin.H{"content": "hi"})

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("creates and trims the comment", func(t *testing.T) {
		f := newHandlerFixture(t)
		author := uuid.New()
		videoID := uuid.New()

		w := f.do(t, http.MethodPost, "/video/"+videoID.String()+"/comment", f.bearerFor(t, author), gin.H{"content": "  nice clip  "})

		require.Equal(t, http.StatusOK, w.Code)
		resp := decodeResponse(t, w)
		assert.True(t, resp.Success)

		require.Len(t, f.comments.comments, 1)
		for _, c := range f.comments.comments {
			assert.Equal(t, "nice clip", c.Content)
			assert.Equal(t, author, c.UserID)
			assert.Equal(t, videoID, c.VideoID)
		}
	})
}

func TestHandler_ListComments(t *testing.T) {
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	t.Run("anonymous listing succeeds", func(t *testing.T) {
		f := newHandlerFixture(t)
		videoID := uuid.New()
		f.seedComment(videoID, uuid.New(), "hello", nil, base, 0)

		w := f.do(t, http.MethodGet, "/video/"+videoID.String()+"/comments", "", nil)

		require.Equal(t, http.StatusOK, w.Code)
		resp := decodeResponse(t, w)
		assert.True(t, resp.Success)
		views, ok := resp.Data.([]interface{})
		require.True(t, ok)
		assert.Len(t, views, 1)
	})

	t.Run("storage failure still returns an empty success", func(t *testing.T) {
		f := newHandlerFixture(t)
		f.comments.listErr = fmt.Errorf("db down")

		w := f.do(t, http.MethodGet, "/video/"+uuid.NewString()+"/comments", "", nil)

		require.Equal(t, http.StatusOK, w.Code)
		resp := decodeResponse(t, w)
		assert.True(t, resp.Success)
	})

	t.Run("count endpoint includes replies", func(t *testing.T) {
		f := newHandlerFixture(t)
		videoID := uuid.New()
		parent := f.seedComment(videoID, uuid.New(), "parent", nil, base, 0)
		f.seedComment(videoID, uuid.New(), "reply", &parent.ID, base.Add(time.Minute), 0)

		w := f.do(t, http.MethodGet, "/video/"+videoID.String()+"/comments/count", "", nil)

		require.Equal(t, http.StatusOK, w.Code)
		resp := decodeResponse(t, w)
		data, ok := resp.Data.(map[string]interface{})
		require.True(t, ok)
		assert.EqualValues(t, 2, data["count"])
	})
}

func TestHandler_DeleteComment(t *testing.T) {
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	t.Run("missing comment reports success", func(t *testing.T) {
		f := newHandlerFixture(t)

		w := f.do(t, http.MethodDelete, "/comment/"+uuid.NewString(), f.bearerFor(t, uuid.New()), nil)

		require.Equal(t, http.StatusOK, w.Code)
		assert.True(t, decodeResponse(t, w).Success)
	})

	t.Run("foreign comment reports success but stays", func(t *testing.T) {
		f := newHandlerFixture(t)
		c := f.seedComment(uuid.New(), uuid.New(), "not yours", nil, base, 0)

		w := f.do(t, http.MethodDelete, "/comment/"+c.ID.String(), f.bearerFor(t, uuid.New()), nil)

		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, f.comments.comments, c.ID)
	})

	t.Run("owner deletes their comment", func(t *testing.T) {
		f := newHandlerFixture(t)
		owner := uuid.New()
		c := f.seedComment(uuid.New(), owner, "mine", nil, base, 0)

		w := f.do(t, http.MethodDelete, "/comment/"+c.ID.String(), f.bearerFor(t, owner), nil)

		require.Equal(t, http.StatusOK, w.Code)
		assert.NotContains(t, f.comments.comments, c.ID)
	})
}

func TestHandler_SetReaction(t *testing.T) {
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	t.Run("requires authentication", func(t *testing.T) {
		f := newHandlerFixture(t)
		w := f.do(t, http.MethodPut, "/comment/"+uuid.NewString()+"/reaction", "", gin.H{"type": "LIKE"})
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("rejects unknown reaction kinds", func(t *testing.T) {
		f := newHandlerFixture(t)
		c := f.seedComment(uuid.New(), uuid.New(), "hello", nil, base, 0)

		w := f.do(t, http.MethodPut, "/comment/"+c.ID.String()+"/reaction", f.bearerFor(t, uuid.New()), gin.H{"type": "LOVE"})

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("missing comment is 404", func(t *testing.T) {
		f := newHandlerFixture(t)

		w := f.do(t, http.MethodPut, "/comment/"+uuid.NewString()+"/reaction", f.bearerFor(t, uuid.New()), gin.H{"type": "LIKE"})

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("lowercase kinds are accepted", func(t *testing.T) {
		f := newHandlerFixture(t)
		c := f.seedComment(uuid.New(), uuid.New(), "hello", nil, base, 0)

		w := f.do(t, http.MethodPut, "/comment/"+c.ID.String()+"/reaction", f.bearerFor(t, uuid.New()), gin.H{"type": "like"})

		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, 1, c.Likes)
	})
}
