package routers

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
	"uesvalle-service/internal/app/config"
	"uesvalle-service/internal/app/delivery/http/controllers"
	"uesvalle-service/internal/app/delivery/http/middlewares"
	"uesvalle-service/internal/app/models"
	"uesvalle-service/internal/app/services/core/entities"
	"uesvalle-service/internal/pkg/constvars"
	"uesvalle-service/internal/pkg/dto/requests"
	"uesvalle-service/internal/pkg/dto/responses"
	"uesvalle-service/internal/pkg/exceptions"
	"uesvalle-service/internal/pkg/sessiontest"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const testSecret = "router-test-secret"

type MockEntityUsecase[T any] struct {
	mock.Mock
	definition *models.EntityDefinition
}

func (m *MockEntityUsecase[T]) Definition() *models.EntityDefinition {
	return m.definition
}

func (m *MockEntityUsecase[T]) List(ctx context.Context, query *requests.ListQuery) ([]T, int64, error) {
	args := m.Called(ctx, query)
	rows, _ := args.Get(0).([]T)
	return rows, args.Get(1).(int64), args.Error(2)
}

func (m *MockEntityUsecase[T]) Get(ctx context.Context, id int64) (*T, error) {
	args := m.Called(ctx, id)
	record, _ := args.Get(0).(*T)
	return record, args.Error(1)
}

func (m *MockEntityUsecase[T]) Create(ctx context.Context, form requests.EntityForm) (*models.Mutation, error) {
	args := m.Called(ctx, form)
	mutation, _ := args.Get(0).(*models.Mutation)
	return mutation, args.Error(1)
}

func (m *MockEntityUsecase[T]) Update(ctx context.Context, id int64, form requests.EntityForm) (*models.Mutation, error) {
	args := m.Called(ctx, id, form)
	mutation, _ := args.Get(0).(*models.Mutation)
	return mutation, args.Error(1)
}

func (m *MockEntityUsecase[T]) Delete(ctx context.Context, id int64, confirmed bool) (*models.Mutation, error) {
	args := m.Called(ctx, id, confirmed)
	mutation, _ := args.Get(0).(*models.Mutation)
	return mutation, args.Error(1)
}

type MockDashboardUsecase struct {
	mock.Mock
}

func (m *MockDashboardUsecase) GetDashboard(ctx context.Context) (*responses.Dashboard, error) {
	args := m.Called(ctx)
	dashboard, _ := args.Get(0).(*responses.Dashboard)
	return dashboard, args.Error(1)
}

func (m *MockDashboardUsecase) GetReportsByStatus(ctx context.Context, status string) (*responses.ReportsByStatus, error) {
	args := m.Called(ctx, status)
	result, _ := args.Get(0).(*responses.ReportsByStatus)
	return result, args.Error(1)
}

type MockExportUsecase struct {
	mock.Mock
}

func (m *MockExportUsecase) ListMerged(ctx context.Context, query *requests.ListQuery) (*responses.MergedData, int64, error) {
	args := m.Called(ctx, query)
	data, _ := args.Get(0).(*responses.MergedData)
	return data, args.Get(1).(int64), args.Error(2)
}

func (m *MockExportUsecase) BuildSpreadsheet(ctx context.Context) ([]byte, error) {
	args := m.Called(ctx)
	content, _ := args.Get(0).([]byte)
	return content, args.Error(1)
}

func (m *MockExportUsecase) BuildCSV(ctx context.Context, preview bool) ([]byte, error) {
	args := m.Called(ctx, preview)
	content, _ := args.Get(0).([]byte)
	return content, args.Error(1)
}

func (m *MockExportUsecase) ArchiveSpreadsheet(ctx context.Context) (*models.StoredObject, error) {
	args := m.Called(ctx)
	object, _ := args.Get(0).(*models.StoredObject)
	return object, args.Error(1)
}

func (m *MockExportUsecase) GetLatestArchive(ctx context.Context) (*responses.ExportArchive, error) {
	args := m.Called(ctx)
	archive, _ := args.Get(0).(*responses.ExportArchive)
	return archive, args.Error(1)
}

type MockProviderDetailUsecase struct {
	mock.Mock
}

func (m *MockProviderDetailUsecase) GetDetail(ctx context.Context, providerID int64) (*models.ProviderDetail, error) {
	args := m.Called(ctx, providerID)
	detail, _ := args.Get(0).(*models.ProviderDetail)
	return detail, args.Error(1)
}

type testServer struct {
	router    *chi.Mux
	providers *MockEntityUsecase[models.Provider]
	dashboard *MockDashboardUsecase
	export    *MockExportUsecase
	detail    *MockProviderDetailUsecase
	token     string
}

func newEntityController[T any](logger *zap.Logger, cfg *config.InternalConfig, definition *models.EntityDefinition) *controllers.EntityController[T] {
	return controllers.NewEntityController[T](logger, cfg, &MockEntityUsecase[T]{definition: definition})
}

func newTestServer(t *testing.T) *testServer {
	logger := zap.NewNop()
	cfg := &config.InternalConfig{
		App: config.App{
			EndpointPrefix:          "/api",
			Version:                 "v1",
			BaseUrl:                 "http://localhost:8080",
			MaxRequests:             1000,
			RequestTimeoutInSeconds: 5,
		},
		JWT: config.AppJWT{Secret: testSecret},
	}

	s := &testServer{
		router:    chi.NewRouter(),
		providers: &MockEntityUsecase[models.Provider]{definition: entities.ProviderDefinition},
		dashboard: new(MockDashboardUsecase),
		export:    new(MockExportUsecase),
		detail:    new(MockProviderDetailUsecase),
	}

	entityControllers := &EntityControllers{
		Provider:       controllers.NewEntityController[models.Provider](logger, cfg, s.providers),
		Laboratory:     newEntityController[models.Laboratory](logger, cfg, entities.LaboratoryDefinition),
		Technician:     newEntityController[models.Technician](logger, cfg, entities.TechnicianDefinition),
		SampleRequest:  newEntityController[models.SampleRequest](logger, cfg, entities.SampleRequestDefinition),
		Requester:      newEntityController[models.Requester](logger, cfg, entities.RequesterDefinition),
		Report:         newEntityController[models.Report](logger, cfg, entities.ReportDefinition),
		Location:       newEntityController[models.Location](logger, cfg, entities.LocationDefinition),
		Representative: newEntityController[models.Representative](logger, cfg, entities.RepresentativeDefinition),
	}

	SetupRoutes(s.router, cfg, middlewares.NewMiddlewares(logger, cfg), entityControllers,
		controllers.NewDashboardController(logger, cfg, s.dashboard),
		controllers.NewExportController(logger, cfg, s.export),
		controllers.NewProviderDetailController(logger, cfg, s.detail),
	)

	token, err := sessiontest.SignToken("operator-1", testSecret, time.Hour)
	require.NoError(t, err)
	s.token = token
	return s
}

func (s *testServer) do(method, path string, body []byte) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, bytes.NewReader(body))
	req.Header.Set(constvars.HeaderAuthorization, constvars.AuthorizationBearerPrefix+s.token)
	req.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
	rr := httptest.NewRecorder()
	s.router.ServeHTTP(rr, req)
	return rr
}

func decodeBody(t *testing.T, rr *httptest.ResponseRecorder) map[string]interface{} {
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	return body
}

func TestRouter_RequiresSession(t *testing.T) {
	s := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/providers", nil)
	rr := httptest.NewRecorder()
	s.router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.NotEmpty(t, rr.Header().Get(constvars.HeaderXRequestID))
	s.providers.AssertNotCalled(t, "List", mock.Anything, mock.Anything)
}

func TestRouter_ListEntity(t *testing.T) {
	s := newTestServer(t)
	s.providers.On("List", mock.Anything, &requests.ListQuery{Search: "acu", Page: 2, PageSize: 10}).
		Return([]models.Provider{{ID: 21, Nombre: "Acueducto"}}, int64(45), nil).Once()

	rr := s.do(http.MethodGet, "/api/v1/providers?search=acu&page=2&page_size=10", nil)

	require.Equal(t, http.StatusOK, rr.Code)
	body := decodeBody(t, rr)
	pagination := body["pagination"].(map[string]interface{})
	assert.Equal(t, float64(45), pagination["total"])
	assert.Equal(t, float64(2), pagination["page"])
	assert.Equal(t, "http://localhost:8080/api/v1/providers?page=3&page_size=10", pagination["next_url"])
	assert.Len(t, body["data"], 1)
}

func TestRouter_ListEntityRejectsPageSize(t *testing.T) {
	s := newTestServer(t)

	rr := s.do(http.MethodGet, "/api/v1/providers?page_size=30", nil)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	s.providers.AssertNotCalled(t, "List", mock.Anything, mock.Anything)
}

func TestRouter_CreateValidationKeepsDialogOpen(t *testing.T) {
	s := newTestServer(t)
	s.providers.On("Create", mock.Anything, mock.Anything).
		Return(&models.Mutation{Values: map[string]interface{}{"nombre": nil, "nit": "900"}},
			exceptions.ErrFieldValidation(map[string]string{"nombre": "This field is required"})).Once()

	rr := s.do(http.MethodPost, "/api/v1/providers", []byte(`{"nombre":"","nit":"900"}`))

	require.Equal(t, http.StatusBadRequest, rr.Code)
	form := decodeBody(t, rr)["form"].(map[string]interface{})
	assert.Equal(t, "open", form["state"])
	assert.Equal(t, "create", form["mode"])
	assert.Contains(t, form["field_errors"], "nombre")
	assert.Equal(t, "900", form["values"].(map[string]interface{})["nit"])
}

func TestRouter_CreateSucceeds(t *testing.T) {
	s := newTestServer(t)
	notification := &responses.Notification{Level: constvars.NotificationLevelSuccess, Title: "Provider created successfully"}
	s.providers.On("Create", mock.Anything, requests.EntityForm{"nombre": "Acueducto XYZ"}).
		Return(&models.Mutation{ID: 40, Values: map[string]interface{}{"nombre": "Acueducto XYZ"}, Notification: notification}, nil).Once()

	rr := s.do(http.MethodPost, "/api/v1/providers", []byte(`{"nombre":"Acueducto XYZ"}`))

	require.Equal(t, http.StatusCreated, rr.Code)
	body := decodeBody(t, rr)
	assert.Equal(t, "Provider created successfully", body["message"])
	form := body["form"].(map[string]interface{})
	assert.Equal(t, "closed", form["state"])
	assert.Equal(t, float64(40), form["record_id"])
}

func TestRouter_UpdateBackendRejection(t *testing.T) {
	s := newTestServer(t)
	rejected := exceptions.BuildNewCustomError(nil, constvars.StatusConflict, `duplicate key value violates unique constraint "prestador_nit_key"`, "unique")
	s.providers.On("Get", mock.Anything, int64(5)).Return(&models.Provider{ID: 5, Nombre: "Acueducto"}, nil).Once()
	s.providers.On("Update", mock.Anything, int64(5), mock.Anything).
		Return(&models.Mutation{
			ID:     5,
			Values: map[string]interface{}{"nombre": "Acueducto", "nit": "900"},
			Notification: &responses.Notification{
				Level:       constvars.NotificationLevelError,
				Title:       "Error updating provider",
				Description: rejected.ClientMessage,
			},
		}, rejected).Once()

	rr := s.do(http.MethodPut, "/api/v1/providers/5", []byte(`{"nombre":"Acueducto","nit":"900"}`))

	require.Equal(t, http.StatusConflict, rr.Code)
	body := decodeBody(t, rr)
	form := body["form"].(map[string]interface{})
	assert.Equal(t, "open", form["state"])
	assert.Equal(t, "edit", form["mode"])
	assert.Equal(t, "900", form["values"].(map[string]interface{})["nit"])
	notification := body["notification"].(map[string]interface{})
	assert.Contains(t, notification["description"], "prestador_nit_key")
}

func TestRouter_UpdateUnknownRecord(t *testing.T) {
	s := newTestServer(t)
	s.providers.On("Get", mock.Anything, int64(99)).
		Return(nil, exceptions.ErrRecordNotFound(nil, "Provider", constvars.TableProvider, 99)).Once()

	rr := s.do(http.MethodPut, "/api/v1/providers/99", []byte(`{"nombre":"X"}`))

	assert.Equal(t, http.StatusNotFound, rr.Code)
	s.providers.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
}

func TestRouter_Delete(t *testing.T) {
	t.Run("without confirmation", func(t *testing.T) {
		s := newTestServer(t)
		s.providers.On("Delete", mock.Anything, int64(7), false).
			Return(nil, exceptions.ErrDeleteNotConfirmed("provider", constvars.TableProvider)).Once()

		rr := s.do(http.MethodDelete, "/api/v1/providers/7", nil)

		assert.Equal(t, http.StatusPreconditionRequired, rr.Code)
	})

	t.Run("confirmed", func(t *testing.T) {
		s := newTestServer(t)
		s.providers.On("Delete", mock.Anything, int64(7), true).
			Return(&models.Mutation{ID: 7, Notification: &responses.Notification{Level: constvars.NotificationLevelSuccess, Title: "Provider deleted successfully"}}, nil).Once()

		rr := s.do(http.MethodDelete, "/api/v1/providers/7?confirm=true", nil)

		require.Equal(t, http.StatusOK, rr.Code)
		body := decodeBody(t, rr)
		assert.Equal(t, float64(7), body["data"].(map[string]interface{})["id_prestador"])
	})

	t.Run("invalid id", func(t *testing.T) {
		s := newTestServer(t)

		rr := s.do(http.MethodDelete, "/api/v1/providers/abc?confirm=true", nil)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestRouter_Forms(t *testing.T) {
	s := newTestServer(t)
	s.providers.On("Get", mock.Anything, int64(3)).Return(&models.Provider{ID: 3, Nombre: "Acueducto"}, nil).Once()

	rr := s.do(http.MethodGet, "/api/v1/providers/form", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "create", decodeBody(t, rr)["form"].(map[string]interface{})["mode"])

	rr = s.do(http.MethodGet, "/api/v1/providers/3/form", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	form := decodeBody(t, rr)["form"].(map[string]interface{})
	assert.Equal(t, "edit", form["mode"])
	assert.Equal(t, "Acueducto", form["values"].(map[string]interface{})["nombre"])
}

func TestRouter_Dashboard(t *testing.T) {
	s := newTestServer(t)
	s.dashboard.On("GetDashboard", mock.Anything).Return(&responses.Dashboard{
		Counts:      responses.DashboardCounts{Providers: 3},
		Departments: []responses.LocationSlice{{Name: "A", Count: 2}, {Name: "B", Count: 1}},
	}, nil).Once()

	rr := s.do(http.MethodGet, "/api/v1/dashboard", nil)

	require.Equal(t, http.StatusOK, rr.Code)
	data := decodeBody(t, rr)["data"].(map[string]interface{})
	assert.Equal(t, float64(3), data["counts"].(map[string]interface{})["providers"])
}

func TestRouter_ReportsByStatus(t *testing.T) {
	s := newTestServer(t)
	s.dashboard.On("GetReportsByStatus", mock.Anything, "Sin estado").Return(&responses.ReportsByStatus{
		Total:    4,
		Statuses: []string{"Emitido", "Sin estado"},
		Groups: []responses.ReportStatusGroup{
			{Estado: "Sin estado", Count: 1, Percentage: 25, Reports: []responses.ReportSummary{{ID: 9, Codigo: "R-009"}}},
		},
	}, nil).Once()
	s.dashboard.On("GetReportsByStatus", mock.Anything, "").Return(&responses.ReportsByStatus{}, nil).Once()

	rr := s.do(http.MethodGet, "/api/v1/dashboard/reports/by-status?estado=Sin+estado", nil)

	require.Equal(t, http.StatusOK, rr.Code)
	data := decodeBody(t, rr)["data"].(map[string]interface{})
	assert.Equal(t, float64(4), data["total"])
	groups := data["groups"].([]interface{})
	require.Len(t, groups, 1)
	group := groups[0].(map[string]interface{})
	assert.Equal(t, "Sin estado", group["estado"])
	assert.Equal(t, float64(25), group["percentage"])
	assert.Equal(t, "R-009", group["reports"].([]interface{})[0].(map[string]interface{})["codigo"])

	rr = s.do(http.MethodGet, "/api/v1/dashboard/reports/by-status", nil)
	assert.Equal(t, http.StatusOK, rr.Code)
	s.dashboard.AssertExpectations(t)
}

func TestRouter_Export(t *testing.T) {
	s := newTestServer(t)
	s.export.On("BuildCSV", mock.Anything, true).Return([]byte("a,b\n1,2\n"), nil).Once()
	s.export.On("BuildSpreadsheet", mock.Anything).Return([]byte("PK"), nil).Once()
	s.export.On("GetLatestArchive", mock.Anything).Return(nil, exceptions.ErrExportArchiveDisabled()).Once()

	rr := s.do(http.MethodGet, "/api/v1/export/csv?preview=true", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, constvars.MIMETextCSVCharsetUTF8, rr.Header().Get(constvars.HeaderContentType))
	assert.True(t, strings.HasPrefix(rr.Header().Get(constvars.HeaderContentDisposition), `attachment; filename="exportacion_`))
	assert.Equal(t, "a,b\n1,2\n", rr.Body.String())

	rr = s.do(http.MethodGet, "/api/v1/export/merge.xlsx", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, constvars.MIMEApplicationXLSX, rr.Header().Get(constvars.HeaderContentType))

	rr = s.do(http.MethodGet, "/api/v1/export/archives/latest", nil)
	assert.Equal(t, http.StatusServiceUnavailable, rr.Code)
}

func TestRouter_ProviderDetail(t *testing.T) {
	s := newTestServer(t)
	s.detail.On("GetDetail", mock.Anything, int64(5)).Return(&models.ProviderDetail{Provider: models.Provider{ID: 5}}, nil).Once()

	rr := s.do(http.MethodGet, "/api/v1/providers/5/detail", nil)

	require.Equal(t, http.StatusOK, rr.Code)
	s.detail.AssertExpectations(t)
}

func TestBuildCORSOptions(t *testing.T) {
	t.Run("configured origins share credentials", func(t *testing.T) {
		options := buildCORSOptions("https://console.uesvalle.gov.co, http://localhost:5173")

		assert.Equal(t, []string{"https://console.uesvalle.gov.co", "http://localhost:5173"}, options.AllowedOrigins)
		assert.True(t, options.AllowCredentials)
	})

	t.Run("no configured origin falls back to a wildcard without credentials", func(t *testing.T) {
		for _, domain := range []string{"", " , ", "*"} {
			options := buildCORSOptions(domain)

			assert.Equal(t, []string{"*"}, options.AllowedOrigins, domain)
			assert.False(t, options.AllowCredentials, domain)
		}
	})
}
