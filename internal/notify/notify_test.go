package notify

import (
	"context"
	"fmt"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	gormDB, err := gorm.Open(postgres.New(postgres.Config{Conn: db}), &gorm.Config{})
	if err != nil {
		t.Fatalf("gorm.Open: %v", err)
	}
	return gormDB, mock
}

func TestCreatePersistsNotification(t *testing.T) {
	db, mock := setupMockDB(t)
	notifier := New(db, zap.NewNop())

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO "notifications"`)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))
	mock.ExpectCommit()

	title, message := OrderPlaced(OrderEvent{
		CustomerName:   "রহিম",
		CustomerMobile: "01711111111",
		ProductName:    "মধু",
		Quantity:       1,
		TotalAmount:    990,
		IsNewCustomer:  true,
	})
	notification := notifier.Create(context.Background(), "order", title, message,
		map[string]interface{}{"order_id": 77})

	if notification == nil {
		t.Fatal("expected notification on successful write")
	}
	if notification.Title != title {
		t.Fatalf("expected title %q, got %q", title, notification.Title)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestCreateSwallowsWriteFailure(t *testing.T) {
	db, mock := setupMockDB(t)
	notifier := New(db, zap.NewNop())

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO "notifications"`)).
		WillReturnError(fmt.Errorf("connection reset"))
	mock.ExpectRollback()

	notification := notifier.Create(context.Background(), "product", "t", "m", nil)
	if notification != nil {
		t.Fatal("expected nil on write failure")
	}
}

func TestCreateToleratesUnserializablePayload(t *testing.T) {
	db, mock := setupMockDB(t)
	notifier := New(db, zap.NewNop())

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO "notifications"`)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(2))
	mock.ExpectCommit()

	// channels cannot be marshalled; the row is still written without data
	notification := notifier.Create(context.Background(), "user", "t", "m", make(chan int))
	if notification == nil {
		t.Fatal("expected notification despite unserializable payload")
	}
}
