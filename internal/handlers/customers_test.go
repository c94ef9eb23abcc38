package handlers

import (
	"encoding/json"
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

func customerRouter(db *gorm.DB) *gin.Engine {
	r := gin.New()
	r.GET("/admin/customers", GetCustomers(db))
	r.GET("/admin/customers/:id", GetCustomer(db))
	r.PATCH("/admin/customers/:id", UpdateCustomer(db))
	r.GET("/admin/customers/:id/notes", GetCustomerNotes(db))
	r.POST("/admin/customers/:id/notes", CreateCustomerNote(db))
	r.GET("/admin/customers/:id/addresses", GetCustomerAddresses(db))
	return r
}

func TestGetCustomersListClampsAndReturnsEnvelope(t *testing.T) {
	db, mock := setupMockDB(t)
	r := customerRouter(db)

	now := time.Now()
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT count(*) FROM "customers"`)).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "customers"`)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "mobile", "created_at"}).
			AddRow(1, "রহিম", "01711111111", now))

	// pageSize above the cap must be clamped to 100
	req := httptest.NewRequest(http.MethodGet, "/admin/customers?page=0&pageSize=9999", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Total    int64 `json:"total"`
		Page     int   `json:"page"`
		PageSize int   `json:"pageSize"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, int64(1), body.Total)
	assert.Equal(t, 1, body.Page)
	assert.Equal(t, 100, body.PageSize)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetCustomerNonNumericIDNeverTouchesDB(t *testing.T) {
	db, mock := setupMockDB(t)
	r := customerRouter(db)

	req := httptest.NewRequest(http.MethodGet, "/admin/customers/abc", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetCustomerNotFound(t *testing.T) {
	db, mock := setupMockDB(t)
	r := customerRouter(db)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "customers"`)).
		WillReturnError(gorm.ErrRecordNotFound)

	req := httptest.NewRequest(http.MethodGet, "/admin/customers/7", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestUpdateCustomerRejectsUnknownField(t *testing.T) {
	db, mock := setupMockDB(t)
	r := customerRouter(db)

	req := httptest.NewRequest(http.MethodPatch, "/admin/customers/7",
		strings.NewReader(`{"total_orders": 99}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code,
		"externally maintained aggregates are not client-writable")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateCustomerNote(t *testing.T) {
	db, mock := setupMockDB(t)
	r := customerRouter(db)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO "customer_notes"`)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(11))
	mock.ExpectCommit()

	req := httptest.NewRequest(http.MethodPost, "/admin/customers/7/notes",
		strings.NewReader(`{"content": "VIP", "created_by": "admin"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), `"content":"VIP"`)
	assert.Contains(t, w.Body.String(), `"created_by":"admin"`)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateCustomerNoteRequiresContent(t *testing.T) {
	db, mock := setupMockDB(t)
	r := customerRouter(db)

	req := httptest.NewRequest(http.MethodPost, "/admin/customers/7/notes",
		strings.NewReader(`{"created_by": "admin"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetCustomerAddressesDefaultFirst(t *testing.T) {
	db, mock := setupMockDB(t)
	r := customerRouter(db)

	rows := sqlmock.NewRows([]string{"id", "customer_id", "address", "is_default"}).
		AddRow(2, 7, "বনানী, ঢাকা", true).
		AddRow(1, 7, "মিরপুর, ঢাকা", false)
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "customer_addresses"`)).
		WillReturnRows(rows)

	req := httptest.NewRequest(http.MethodGet, "/admin/customers/7/addresses", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Addresses []struct {
			IsDefault bool `json:"is_default"`
		} `json:"addresses"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	if assert.Len(t, body.Addresses, 2) {
		assert.True(t, body.Addresses[0].IsDefault)
	}
}
