package handlers

import (
	"net/http"
	"net/http/httptest"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func orderRouter(db *gorm.DB) *gin.Engine {
	r := gin.New()
	r.GET("/admin/orders/:id", GetOrder(db))
	r.PUT("/admin/orders/:id", UpdateOrder(db))
	r.DELETE("/admin/orders/:id", DeleteOrder(db))
	return r
}

func TestOrderRoutesRequireNumericID(t *testing.T) {
	db, mock := setupMockDB(t)
	r := orderRouter(db)

	for _, method := range []string{http.MethodGet, http.MethodPut, http.MethodDelete} {
		req := httptest.NewRequest(method, "/admin/orders/ORD-77", strings.NewReader(`{"status": "shipped"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusBadRequest, w.Code, "method %s", method)
	}
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateOrderMergesFields(t *testing.T) {
	db, mock := setupMockDB(t)
	r := orderRouter(db)

	now := time.Now()
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "orders"`)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "status", "total_amount", "created_at", "updated_at"}).
			AddRow(77, "pending", 990.0, now, now))
	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(`UPDATE "orders"`)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	req := httptest.NewRequest(http.MethodPut, "/admin/orders/77",
		strings.NewReader(`{"status": "confirmed"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateOrderRejectsNegativeAmount(t *testing.T) {
	db, mock := setupMockDB(t)
	r := orderRouter(db)

	req := httptest.NewRequest(http.MethodPut, "/admin/orders/77",
		strings.NewReader(`{"total_amount": -50}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteOrderAlreadyGone(t *testing.T) {
	db, mock := setupMockDB(t)
	r := orderRouter(db)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "orders"`)).
		WillReturnError(gorm.ErrRecordNotFound)

	req := httptest.NewRequest(http.MethodDelete, "/admin/orders/77", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}
