package controller

import (
	"bytes"
	"database/sql/driver"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"leadtrack/config"
)

// newMockDB opens a GORM connection over a sqlmock driver so controller
// behavior can be tested without Postgres. Default transactions are skipped
// to keep the expected statement stream minimal.
func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		SkipDefaultTransaction: true,
		TranslateError:         true,
	})
	require.NoError(t, err)

	return db, mock
}

func testLogger() *logrus.Entry {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger.WithField("component", "test")
}

func testSessionConfig() {
	config.AppConfig = config.Config{
		Environment:   "development",
		SessionSecret: "test-secret",
		SessionTTL:    24 * time.Hour,
	}
}

func jsonRequest(t *testing.T, method, target string, body interface{}) *http.Request {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, target, &buf)
	req.Header.Set("Content-Type", "application/json")
	return req
}

func decodeBody(t *testing.T, resp *http.Response) map[string]interface{} {
	t.Helper()

	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return body
}

var companyColumns = []string{
	"id", "company_name", "client_name", "contact_number", "email_address",
	"industry", "remarks", "to_do", "status", "created_at", "updated_at",
}

var prospectColumns = []string{
	"id", "company_name", "contact_person", "contact_number", "email_address",
	"industry", "website", "call_status", "prospect_status", "called_count",
	"last_called_at", "notes", "follow_up_date", "created_at", "updated_at",
}

func companyRow(id int) []driverValue {
	now := time.Now()
	return []driverValue{
		id, "Acme Corp", "Jane Cruz", "091812186912", "jane@acme.co",
		"Technology", nil, nil, "Active", now, now,
	}
}

type driverValue = driver.Value

func prospectRow(id, calledCount int, callStatus string, lastCalledAt interface{}) []driverValue {
	now := time.Now()
	return []driverValue{
		id, "Acme Corp", "Jane Cruz", "091812186912", "jane@acme.co",
		"technology", nil, callStatus, "Prospect", calledCount,
		lastCalledAt, nil, nil, now, now,
	}
}
