package middleware_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/JohanKruger/traindev-api/internal/middleware"
)

type fakePermissionChecker struct {
	HasPermissionFn func(ctx context.Context, username, permissionCode string) (bool, error)
}

func (f *fakePermissionChecker) HasPermission(ctx context.Context, username, permissionCode string) (bool, error) {
	return f.HasPermissionFn(ctx, username, permissionCode)
}

func runGuard(t *testing.T, username string, checker middleware.PermissionChecker) (*httptest.ResponseRecorder, bool) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	reached := false
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/guarded", nil)
	if username != "" {
		c.Set("username", username)
	}

	middleware.RequirePermission(checker, "EXPORT_REPORT")(c)
	if !c.IsAborted() {
		reached = true
	}
	return w, reached
}

func TestRequirePermission(t *testing.T) {
	t.Run("no authenticated user", func(t *testing.T) {
		checker := &fakePermissionChecker{
			HasPermissionFn: func(ctx context.Context, username, permissionCode string) (bool, error) {
				t.Fatal("the grant table must not be probed without a username")
				return false, nil
			},
		}

		w, reached := runGuard(t, "", checker)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.False(t, reached)
	})

	t.Run("grant missing", func(t *testing.T) {
		checker := &fakePermissionChecker{
			HasPermissionFn: func(ctx context.Context, username, permissionCode string) (bool, error) {
				assert.Equal(t, "jkruger", username)
				assert.Equal(t, "EXPORT_REPORT", permissionCode)
				return false, nil
			},
		}

		w, reached := runGuard(t, "jkruger", checker)

		assert.Equal(t, http.StatusForbidden, w.Code)
		assert.False(t, reached)
	})

	t.Run("checker failure stays generic", func(t *testing.T) {
		checker := &fakePermissionChecker{
			HasPermissionFn: func(ctx context.Context, username, permissionCode string) (bool, error) {
				return false, errors.New("pq: connection refused")
			},
		}

		w, reached := runGuard(t, "jkruger", checker)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.False(t, reached)
		assert.NotContains(t, w.Body.String(), "connection refused")
	})

	t.Run("grant present", func(t *testing.T) {
		checker := &fakePermissionChecker{
			HasPermissionFn: func(ctx context.Context, username, permissionCode string) (bool, error) {
				return true, nil
			},
		}

		_, reached := runGuard(t, "jkruger", checker)

		assert.True(t, reached)
	})
}
