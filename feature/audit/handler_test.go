package audit

import (
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func setupTestApp(t *testing.T) (*fiber.App, sqlmock.Sqlmock) {
	app := fiber.New()
	db, sqlMock := setupMockDB(t)
	svc := NewService(&fakeLoader{snap: testSnapshots()}, &fakeSink{}, NewStore(db), zap.NewNop())
	handler := NewHandler(svc)
	handler.RegisterRoutes(app)
	return app, sqlMock
}

func TestHandleRunAudit(t *testing.T) {
	app, sqlMock := setupTestApp(t)

	sqlMock.ExpectBegin()
	sqlMock.ExpectExec("INSERT INTO `audit_runs`").WillReturnResult(sqlmock.NewResult(1, 1))
	sqlMock.ExpectCommit()

	req := httptest.NewRequest("POST", "/audit/run", nil)
	resp, err := app.Test(req, -1)

	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	var body map[string]any
	json.NewDecoder(resp.Body).Decode(&body)
	assert.Equal(t, float64(3), body["total_devices"])
	assert.Equal(t, float64(1), body["healthy"])
	assert.Equal(t, float64(1), body["defect_count"])
	assert.Equal(t, "reports/test.csv", body["report_location"])
	assert.NotEmpty(t, body["defects"])
}

func TestHandleListRuns(t *testing.T) {
	app, sqlMock := setupTestApp(t)

	rows := sqlmock.NewRows(runColumns()).
		AddRow("run-1", time.Now(), 120, 3, 1, 1, 0, 0, 1, "", "reports/a.csv")
	sqlMock.ExpectQuery("SELECT \\* FROM `audit_runs`").WillReturnRows(rows)

	req := httptest.NewRequest("GET", "/audit/runs?limit=5", nil)
	resp, err := app.Test(req)

	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	var body []map[string]any
	json.NewDecoder(resp.Body).Decode(&body)
	require.Len(t, body, 1)
	assert.Equal(t, "run-1", body[0]["id"])
}

func TestHandleListRuns_HistoryDisabled(t *testing.T) {
	app := fiber.New()
	svc := NewService(&fakeLoader{snap: testSnapshots()}, &fakeSink{}, nil, zap.NewNop())
	NewHandler(svc).RegisterRoutes(app)

	req := httptest.NewRequest("GET", "/audit/runs", nil)
	resp, err := app.Test(req)

	require.NoError(t, err)
	assert.Equal(t, 503, resp.StatusCode)
}

func TestHandleGetRun(t *testing.T) {
	app, sqlMock := setupTestApp(t)

	rows := sqlmock.NewRows(runColumns()).
		AddRow("run-1", time.Now(), 120, 3, 1, 1, 0, 0, 1,
			`[{"index":2,"name":"BROKEN","reason":"missing objectGUID"}]`, "reports/a.csv")
	sqlMock.ExpectQuery("SELECT \\* FROM `audit_runs`").WithArgs("run-1", 1).WillReturnRows(rows)

	req := httptest.NewRequest("GET", "/audit/runs/run-1", nil)
	resp, err := app.Test(req)

	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	var body map[string]any
	json.NewDecoder(resp.Body).Decode(&body)
	assert.Equal(t, "run-1", body["id"])
	assert.NotEmpty(t, body["defects"])
}

func TestHandleGetRun_NotFound(t *testing.T) {
	app, sqlMock := setupTestApp(t)

	sqlMock.ExpectQuery("SELECT \\* FROM `audit_runs`").WillReturnError(gorm.ErrRecordNotFound)

	req := httptest.NewRequest("GET", "/audit/runs/missing", nil)
	resp, err := app.Test(req)

	require.NoError(t, err)
	assert.Equal(t, 404, resp.StatusCode)
}

func TestHandleDeleteRun(t *testing.T) {
	app, sqlMock := setupTestApp(t)

	rows := sqlmock.NewRows(runColumns()).
		AddRow("run-1", time.Now(), 120, 3, 1, 1, 0, 0, 0, "", "")
	sqlMock.ExpectQuery("SELECT \\* FROM `audit_runs`").WithArgs("run-1", 1).WillReturnRows(rows)
	sqlMock.ExpectBegin()
	sqlMock.ExpectExec("DELETE FROM `audit_runs`").WillReturnResult(sqlmock.NewResult(0, 1))
	sqlMock.ExpectCommit()

	req := httptest.NewRequest("DELETE", "/audit/runs/run-1", nil)
	resp, err := app.Test(req)

	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	var body map[string]any
	json.NewDecoder(resp.Body).Decode(&body)
	assert.Equal(t, "deleted", body["status"])
}

func TestHandleListReports_NotConfigured(t *testing.T) {
	app, _ := setupTestApp(t)

	req := httptest.NewRequest("GET", "/audit/reports", nil)
	resp, err := app.Test(req)

	require.NoError(t, err)
	assert.Equal(t, 503, resp.StatusCode)
}
