package repositories

import (
	"database/sql"
	"errors"
	"testing"

	"born2ride/internal/domain"
	"born2ride/internal/domain/models"

	"github.com/DATA-DOG/go-sqlmock"
)

func emergencyRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "name", "service_type", "phone", "address", "latitude", "longitude", "is_24x7",
	})
}

func TestEmergencyListFilterByType(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("FROM emergency_services WHERE service_type=\\? ORDER BY service_type ASC, name ASC").
		WithArgs("hospital").
		WillReturnRows(emergencyRows().
			AddRow(2, "Government General Hospital", "hospital", "+91 44 2530 5000",
				"Park Town", 13.0890, 80.2790, true))

	ht := domain.ServiceHospital
	out, err := EmergencyRepository{DB: db}.List(models.EmergencyFilter{Type: &ht})
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if len(out) != 1 || out[0].ServiceType != domain.ServiceHospital {
		t.Fatalf("unexpected result: %+v", out)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestEmergencyGetByIDMissing(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("FROM emergency_services WHERE id=\\?").
		WithArgs(int64(99)).
		WillReturnRows(emergencyRows())

	_, err = EmergencyRepository{DB: db}.GetByID(99)
	if !errors.Is(err, sql.ErrNoRows) {
		t.Fatalf("expected sql.ErrNoRows, got %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}
