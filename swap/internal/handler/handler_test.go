package handler_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Astemirdum/book-swap-service/pkg/auth"
	"github.com/Astemirdum/book-swap-service/swap/internal/errs"
	"github.com/Astemirdum/book-swap-service/swap/internal/handler"
	service_mocks "github.com/Astemirdum/book-swap-service/swap/internal/handler/mocks"
	"github.com/Astemirdum/book-swap-service/swap/internal/model"
)

var authCfg = auth.Config{JWTSecret: "test-secret", Issuer: "bookswap-test"}

type mocks struct {
	catalog   *service_mocks.MockCatalogService
	lifecycle *service_mocks.MockLifecycleService
	inbox     *service_mocks.MockInboxService
	review    *service_mocks.MockReviewService
}

func newRouter(t *testing.T) (*echo.Echo, mocks) {
	t.Helper()
	c := gomock.NewController(t)
	m := mocks{
		catalog:   service_mocks.NewMockCatalogService(c),
		lifecycle: service_mocks.NewMockLifecycleService(c),
		inbox:     service_mocks.NewMockInboxService(c),
		review:    service_mocks.NewMockReviewService(c),
	}
	h := handler.New(handler.Services{
		Catalog:   m.catalog,
		Lifecycle: m.lifecycle,
		Inbox:     m.inbox,
		Review:    m.review,
	}, authCfg, zap.NewNop())
	return h.NewRouter(), m
}

func bearer(t *testing.T, userID string) string {
	t.Helper()
	token, err := auth.NewToken(authCfg, userID, jwt.RegisteredClaims{
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	})
	require.NoError(t, err)
	return "Bearer " + token
}

func do(e *echo.Echo, method, target, authorization, body string) *httptest.ResponseRecorder {
	var r *http.Request
	if body == "" {
		r = httptest.NewRequest(method, target, http.NoBody)
	} else {
		r = httptest.NewRequest(method, target, strings.NewReader(body))
	}
	r.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if authorization != "" {
		r.Header.Set(auth.AuthorizationHeader, authorization)
	}
	w := httptest.NewRecorder()
	e.ServeHTTP(w, r)
	return w
}

func body(w *httptest.ResponseRecorder) string {
	return strings.Trim(w.Body.String(), "\n")
}

func TestHandler_Health(t *testing.T) {
	t.Parallel()
	e, _ := newRouter(t)
	w := do(e, http.MethodGet, "/manage/health", "", "")
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "OK", w.Body.String())
}

func TestHandler_SwaggerDoc(t *testing.T) {
	t.Parallel()
	e, _ := newRouter(t)
	w := do(e, http.MethodGet, "/swagger/doc.json", "", "")
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), `"/swaps/{swapId}/complete"`)
}

func TestHandler_CreateSwapRequest(t *testing.T) {
	t.Parallel()
	requester := uuid.NewString()
	requested, offered := uuid.NewString(), uuid.NewString()
	validBody := `{"bookRequestedId":"` + requested + `","bookOfferedId":"` + offered + `"}`

	type mockBehavior func(m mocks)
	tests := []struct {
		name          string
		authorization string
		body          string
		mockBehavior  mockBehavior
		expectedCode  int
		expectedBody  string
	}{
		{
			name:          "ok",
			authorization: bearer(t, requester),
			body:          validBody,
			mockBehavior: func(m mocks) {
				m.lifecycle.EXPECT().
					CreateSwapRequest(gomock.Any(), requester, requested, offered).
					Return(model.SwapRequest{ID: "s1", RequesterID: requester, Status: model.StatusPending}, nil)
			},
			expectedCode: http.StatusCreated,
		},
		{
			name:         "err. no token",
			body:         validBody,
			mockBehavior: func(m mocks) {},
			expectedCode: http.StatusUnauthorized,
			expectedBody: `{"message":"no authorization header"}`,
		},
		{
			name:          "err. foreign token",
			authorization: "Bearer not.a.token",
			body:          validBody,
			mockBehavior:  func(m mocks) {},
			expectedCode:  http.StatusUnauthorized,
			expectedBody:  `{"message":"invalid token"}`,
		},
		{
			name:          "err. body validation",
			authorization: bearer(t, requester),
			body:          `{"bookRequestedId":"42"}`,
			mockBehavior:  func(m mocks) {},
			expectedCode:  http.StatusBadRequest,
		},
		{
			name:          "err. invalid request",
			authorization: bearer(t, requester),
			body:          validBody,
			mockBehavior: func(m mocks) {
				m.lifecycle.EXPECT().
					CreateSwapRequest(gomock.Any(), requester, requested, offered).
					Return(model.SwapRequest{}, errs.Invalid("offered book is not yours"))
			},
			expectedCode: http.StatusBadRequest,
			expectedBody: `{"message":"offered book is not yours: invalid request"}`,
		},
		{
			name:          "err. store unavailable",
			authorization: bearer(t, requester),
			body:          validBody,
			mockBehavior: func(m mocks) {
				m.lifecycle.EXPECT().
					CreateSwapRequest(gomock.Any(), requester, requested, offered).
					Return(model.SwapRequest{}, errs.Unavailable(context.DeadlineExceeded))
			},
			expectedCode: http.StatusServiceUnavailable,
			expectedBody: `{"message":"service temporarily unavailable, try again"}`,
		},
		{
			name:          "err. internal",
			authorization: bearer(t, requester),
			body:          validBody,
			mockBehavior: func(m mocks) {
				m.lifecycle.EXPECT().
					CreateSwapRequest(gomock.Any(), requester, requested, offered).
					Return(model.SwapRequest{}, errors.New("pq: relation does not exist"))
			},
			expectedCode: http.StatusInternalServerError,
			expectedBody: `{"message":"internal error"}`,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			e, m := newRouter(t)
			tt.mockBehavior(m)

			w := do(e, http.MethodPost, "/api/v1/swaps", tt.authorization, tt.body)
			require.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedBody != "" {
				require.Equal(t, tt.expectedBody, body(w))
			}
			if w.Code == http.StatusCreated {
				var got model.SwapRequest
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
				require.Equal(t, "s1", got.ID)
				require.Equal(t, model.StatusPending, got.Status)
			}
		})
	}
}

func TestHandler_HandleSwap(t *testing.T) {
	t.Parallel()
	owner := uuid.NewString()
	swapID := uuid.NewString()

	tests := []struct {
		name         string
		path         string
		action       model.Action
		err          error
		expectedCode int
		expectedBody string
	}{
		{name: "approve", path: "approve", action: model.ActionApprove, expectedCode: http.StatusOK},
		{name: "deny", path: "deny", action: model.ActionDeny, expectedCode: http.StatusOK},
		{
			name: "err. already decided", path: "approve", action: model.ActionApprove,
			err:          errs.InvalidState("swap is approved and cannot become approved"),
			expectedCode: http.StatusConflict,
			expectedBody: `{"message":"swap is approved and cannot become approved: invalid state"}`,
		},
		{
			name: "err. not owner", path: "deny", action: model.ActionDeny,
			err:          errs.Forbidden("only the owner of the requested book can decide"),
			expectedCode: http.StatusForbidden,
		},
		{
			name: "err. unknown swap", path: "approve", action: model.ActionApprove,
			err:          errs.NotFound("swap request"),
			expectedCode: http.StatusNotFound,
			expectedBody: `{"message":"swap request: not found"}`,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			e, m := newRouter(t)
			m.lifecycle.EXPECT().
				HandleSwapRequest(gomock.Any(), swapID, owner, tt.action).
				Return(model.SwapRequest{ID: swapID}, tt.err)

			w := do(e, http.MethodPost, "/api/v1/swaps/"+swapID+"/"+tt.path, bearer(t, owner), "")
			require.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedBody != "" {
				require.Equal(t, tt.expectedBody, body(w))
			}
		})
	}
}

func TestHandler_CancelAndComplete(t *testing.T) {
	t.Parallel()
	user := uuid.NewString()
	swapID := uuid.NewString()
	e, m := newRouter(t)

	m.lifecycle.EXPECT().
		CancelSwapRequest(gomock.Any(), swapID, user, "changed my mind").
		Return(model.SwapRequest{ID: swapID, Status: model.StatusCancelled}, nil)
	w := do(e, http.MethodPost, "/api/v1/swaps/"+swapID+"/cancel", bearer(t, user), `{"reason":"changed my mind"}`)
	require.Equal(t, http.StatusOK, w.Code)

	w = do(e, http.MethodPost, "/api/v1/swaps/"+swapID+"/cancel", bearer(t, user), `{"reason":"`+strings.Repeat("x", 501)+`"}`)
	require.Equal(t, http.StatusBadRequest, w.Code)

	m.lifecycle.EXPECT().
		CompleteSwap(gomock.Any(), swapID, user).
		Return(model.SwapRequest{}, errs.InvalidState("swap is pending and cannot become completed"))
	w = do(e, http.MethodPost, "/api/v1/swaps/"+swapID+"/complete", bearer(t, user), "")
	require.Equal(t, http.StatusConflict, w.Code)
}

func TestHandler_ListSwaps(t *testing.T) {
	t.Parallel()
	user := uuid.NewString()
	e, m := newRouter(t)

	m.lifecycle.EXPECT().
		ListSwaps(gomock.Any(), user, model.DirectionIncoming, model.StatusPending).
		Return([]model.SwapRequest{{ID: "a"}, {ID: "b"}}, nil)
	w := do(e, http.MethodGet, "/api/v1/swaps?direction=incoming&status=pending", bearer(t, user), "")
	require.Equal(t, http.StatusOK, w.Code)

	var got []model.SwapRequest
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	require.Len(t, got, 2)

	m.lifecycle.EXPECT().ListHistory(gomock.Any(), user).Return([]model.SwapHistory{}, nil)
	w = do(e, http.MethodGet, "/api/v1/swaps/history", bearer(t, user), "")
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, `[]`, body(w))
}

func TestHandler_ListAvailableBooks(t *testing.T) {
	t.Parallel()
	viewer := uuid.NewString()

	tests := []struct {
		name          string
		authorization string
		viewer        string
		expectedCode  int
	}{
		{name: "anonymous", viewer: "", expectedCode: http.StatusOK},
		{name: "signed in", authorization: bearer(t, viewer), viewer: viewer, expectedCode: http.StatusOK},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			e, m := newRouter(t)
			m.catalog.EXPECT().
				ListAvailableBooks(gomock.Any(), tt.viewer).
				Return([]model.BookWithSwapInfo{{Book: model.Book{ID: "b1"}, ViewerState: model.StateCanRequest}}, nil)

			w := do(e, http.MethodGet, "/api/v1/books", tt.authorization, "")
			require.Equal(t, tt.expectedCode, w.Code)
			require.Contains(t, body(w), `"viewerState":"can-request"`)
		})
	}

	e, _ := newRouter(t)
	w := do(e, http.MethodGet, "/api/v1/books", "Bearer garbage", "")
	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestHandler_BookOwnerRoutes(t *testing.T) {
	t.Parallel()
	owner := uuid.NewString()
	bookID := uuid.NewString()
	e, m := newRouter(t)

	w := do(e, http.MethodPost, "/api/v1/books", bearer(t, owner), `{"title":"Dune","author":"Frank Herbert","condition":"mint","location":"Berlin"}`)
	require.Equal(t, http.StatusBadRequest, w.Code)

	m.catalog.EXPECT().
		CreateBook(gomock.Any(), owner, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, req model.CreateBookRequest) (model.Book, error) {
			return model.Book{ID: bookID, Title: req.Title, OwnerID: owner, AvailableForSwap: true}, nil
		})
	w = do(e, http.MethodPost, "/api/v1/books", bearer(t, owner),
		`{"title":"Dune","author":"Frank Herbert","isbn":"9780441013593","condition":"good","location":"Berlin"}`)
	require.Equal(t, http.StatusCreated, w.Code)

	w = do(e, http.MethodPut, "/api/v1/books/"+bookID+"/availability", bearer(t, owner), `{}`)
	require.Equal(t, http.StatusBadRequest, w.Code)

	m.catalog.EXPECT().
		SetAvailability(gomock.Any(), owner, bookID, false).
		Return(model.Book{}, errs.Forbidden("only the owner can change a book"))
	w = do(e, http.MethodPut, "/api/v1/books/"+bookID+"/availability", bearer(t, owner), `{"available":false}`)
	require.Equal(t, http.StatusForbidden, w.Code)

	m.catalog.EXPECT().ListMyBooks(gomock.Any(), owner).Return([]model.Book{{ID: bookID}}, nil)
	w = do(e, http.MethodGet, "/api/v1/books/mine", bearer(t, owner), "")
	require.Equal(t, http.StatusOK, w.Code)

	m.review.EXPECT().
		SubmitReview(gomock.Any(), bookID, owner, model.SubmitReviewRequest{Rating: 5, ReviewText: "a classic for a reason"}).
		Return(model.Review{ID: "r1"}, nil)
	w = do(e, http.MethodPut, "/api/v1/books/"+bookID+"/reviews", bearer(t, owner), `{"rating":5,"reviewText":"a classic for a reason"}`)
	require.Equal(t, http.StatusOK, w.Code)

	m.review.EXPECT().ListReviews(gomock.Any(), bookID).Return(model.BookReviews{Items: []model.Review{}}, nil)
	w = do(e, http.MethodGet, "/api/v1/books/"+bookID+"/reviews", "", "")
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, `{"averageRating":0,"totalCount":0,"items":[]}`, body(w))
}

func TestHandler_Notifications(t *testing.T) {
	t.Parallel()
	user := uuid.NewString()
	noteID := uuid.NewString()
	e, m := newRouter(t)

	m.inbox.EXPECT().ListNotifications(gomock.Any(), user, true).Return([]model.Notification{}, nil)
	w := do(e, http.MethodGet, "/api/v1/notifications?unread=true", bearer(t, user), "")
	require.Equal(t, http.StatusOK, w.Code)

	w = do(e, http.MethodGet, "/api/v1/notifications?unread=maybe", bearer(t, user), "")
	require.Equal(t, http.StatusBadRequest, w.Code)

	m.inbox.EXPECT().UnreadCount(gomock.Any(), user).Return(model.UnreadCount{Count: 3}, nil)
	w = do(e, http.MethodGet, "/api/v1/notifications/unread-count", bearer(t, user), "")
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, `{"count":3}`, body(w))

	m.inbox.EXPECT().MarkRead(gomock.Any(), user, noteID).Return(nil)
	w = do(e, http.MethodPost, "/api/v1/notifications/"+noteID+"/read", bearer(t, user), "")
	require.Equal(t, http.StatusNoContent, w.Code)

	m.inbox.EXPECT().MarkRead(gomock.Any(), user, noteID).Return(errs.NotFound("notification"))
	w = do(e, http.MethodPost, "/api/v1/notifications/"+noteID+"/read", bearer(t, user), "")
	require.Equal(t, http.StatusNotFound, w.Code)
}
