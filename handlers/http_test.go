package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-kit/log"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"arenamanager/domain"
	"arenamanager/helpers"
	"arenamanager/interfaces/mock"
	"arenamanager/service"
)

type serverMocks struct {
	themes    *mock.ThemeCatalogMock
	bosses    *mock.BossCatalogMock
	registry  *mock.InstanceRegistryMock
	orch      *mock.ArenaOrchestratorMock
	workflow  *mock.EventWorkflowMock
	validator *mock.PartyValidatorMock
}

func newTestServer(t *testing.T) (*echo.Echo, *serverMocks) {
	t.Helper()
	m := &serverMocks{
		themes:    &mock.ThemeCatalogMock{},
		bosses:    &mock.BossCatalogMock{},
		registry:  &mock.InstanceRegistryMock{},
		orch:      &mock.ArenaOrchestratorMock{},
		workflow:  &mock.EventWorkflowMock{},
		validator: &mock.PartyValidatorMock{},
	}
	e := echo.New()
	service.RegisterErrorHandler(e, log.NewNopLogger())
	RegisterRoutes(e, NewHTTPServer(m.themes, m.bosses, m.registry, m.orch, m.workflow, m.validator, log.NewNopLogger()))
	return e, m
}

func doRequest(e *echo.Echo, method, target, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func testInstance() *domain.ArenaInstance {
	return domain.NewArenaInstance("inst-1",
		domain.ArenaTheme{ID: "volcano", DisplayName: "Volcano"},
		domain.SlotInfo{SlotID: 2}, helpers.TestNow())
}

func TestHTTPServer_GetThemes(t *testing.T) {
	e, m := newTestServer(t)
	m.themes.ThemesFunc = func() []domain.ArenaTheme {
		return []domain.ArenaTheme{{ID: "volcano", DisplayName: "Volcano", HasGeometry: true}}
	}

	rec := doRequest(e, http.MethodGet, "/v1/themes", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp ThemesResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Themes, 1)
	assert.Equal(t, "volcano", resp.Themes[0].ThemeId)
	assert.True(t, resp.Themes[0].HasGeometry)
}

func TestHTTPServer_GetBosses(t *testing.T) {
	t.Run("lists all", func(t *testing.T) {
		e, m := newTestServer(t)
		m.bosses.BossesFunc = func() []domain.BossDefinition {
			return []domain.BossDefinition{{ID: "magma_lord", GemCost: 250}}
		}

		rec := doRequest(e, http.MethodGet, "/v1/bosses", "")
		require.Equal(t, http.StatusOK, rec.Code)

		var resp BossesResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		require.Len(t, resp.Bosses, 1)
		assert.Equal(t, int64(250), resp.Bosses[0].GemCost)
	})

	t.Run("filters by difficulty", func(t *testing.T) {
		e, m := newTestServer(t)
		m.bosses.BossesByDifficultyFunc = func(difficulty string) []domain.BossDefinition {
			assert.Equal(t, "hard", difficulty)
			return nil
		}

		rec := doRequest(e, http.MethodGet, "/v1/bosses?difficulty=hard", "")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Len(t, m.bosses.BossesByDifficultyCalls(), 1)
		assert.Empty(t, m.bosses.BossesCalls())
	})
}

func TestHTTPServer_GetInstances(t *testing.T) {
	e, m := newTestServer(t)
	m.registry.ListFunc = func() []*domain.ArenaInstance {
		return []*domain.ArenaInstance{testInstance()}
	}

	rec := doRequest(e, http.MethodGet, "/v1/instances", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp InstancesResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Instances, 1)
	assert.Equal(t, "inst-1", resp.Instances[0].InstanceId)
	assert.Equal(t, "preparing", resp.Instances[0].State)
	assert.Equal(t, 2, resp.Instances[0].SlotId)
}

func TestHTTPServer_ProvisionInstance(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		provision      func(ctx context.Context, themeID string) (*domain.ArenaInstance, error)
		expectedStatus int
	}{
		{
			name: "201 created",
			body: `{"theme_id":"volcano"}`,
			provision: func(ctx context.Context, themeID string) (*domain.ArenaInstance, error) {
				assert.Equal(t, "volcano", themeID)
				return testInstance(), nil
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "400 invalid JSON",
			body:           `{invalid`,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "400 missing theme_id",
			body:           `{}`,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "404 unknown theme",
			body: `{"theme_id":"atlantis"}`,
			provision: func(ctx context.Context, themeID string) (*domain.ArenaInstance, error) {
				return nil, service.NewEntityNotFoundError("theme not found", nil)
			},
			expectedStatus: http.StatusNotFound,
		},
		{
			name: "409 no capacity",
			body: `{"theme_id":"volcano"}`,
			provision: func(ctx context.Context, themeID string) (*domain.ArenaInstance, error) {
				return nil, service.NewNoCapacityError("all slots in use", nil)
			},
			expectedStatus: http.StatusConflict,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, m := newTestServer(t)
			m.orch.ProvisionFunc = tt.provision

			rec := doRequest(e, http.MethodPost, "/v1/instances", tt.body)
			assert.Equal(t, tt.expectedStatus, rec.Code)
		})
	}
}

func TestHTTPServer_RetireInstance(t *testing.T) {
	t.Run("200 retires a known instance", func(t *testing.T) {
		e, m := newTestServer(t)
		inst := testInstance()
		m.registry.GetFunc = func(instanceID string) (*domain.ArenaInstance, bool) {
			return inst, instanceID == "inst-1"
		}

		rec := doRequest(e, http.MethodPost, "/v1/instances/inst-1/retire", "")
		require.Equal(t, http.StatusOK, rec.Code)
		require.Len(t, m.orch.RetireCalls(), 1)
		assert.Same(t, inst, m.orch.RetireCalls()[0].Instance)
	})

	t.Run("404 unknown instance", func(t *testing.T) {
		e, _ := newTestServer(t)
		rec := doRequest(e, http.MethodPost, "/v1/instances/ghost/retire", "")
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestHTTPServer_StartEvent(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		start          func(ctx context.Context, requesterID, bossID, themeID string) error
		expectedStatus int
	}{
		{
			name: "202 accepted",
			body: `{"requester_id":"leader","boss_id":"magma_lord","theme_id":"volcano"}`,
			start: func(ctx context.Context, requesterID, bossID, themeID string) error {
				assert.Equal(t, "leader", requesterID)
				return nil
			},
			expectedStatus: http.StatusAccepted,
		},
		{
			name:           "400 missing fields",
			body:           `{"boss_id":"magma_lord"}`,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "409 party check failed",
			body: `{"requester_id":"leader","boss_id":"magma_lord","theme_id":"volcano"}`,
			start: func(ctx context.Context, requesterID, bossID, themeID string) error {
				return service.NewPartyCheckFailedError("not the leader", nil)
			},
			expectedStatus: http.StatusConflict,
		},
		{
			name: "409 insufficient funds",
			body: `{"requester_id":"leader","boss_id":"magma_lord","theme_id":"volcano"}`,
			start: func(ctx context.Context, requesterID, bossID, themeID string) error {
				return service.NewInsufficientFundsError("too poor", nil)
			},
			expectedStatus: http.StatusConflict,
		},
		{
			name: "500 collaborator failure",
			body: `{"requester_id":"leader","boss_id":"magma_lord","theme_id":"volcano"}`,
			start: func(ctx context.Context, requesterID, bossID, themeID string) error {
				return service.NewCollaboratorFailureError("spawner down", nil)
			},
			expectedStatus: http.StatusInternalServerError,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, m := newTestServer(t)
			m.workflow.StartEncounterFunc = tt.start

			rec := doRequest(e, http.MethodPost, "/v1/events", tt.body)
			assert.Equal(t, tt.expectedStatus, rec.Code)
		})
	}
}

func TestHTTPServer_StartTestEvent(t *testing.T) {
	t.Run("201 provisions and activates a solo run", func(t *testing.T) {
		e, m := newTestServer(t)
		m.bosses.BossFunc = func(id string) (domain.BossDefinition, bool) {
			return domain.BossDefinition{ID: "magma_lord", ScriptID: "MagmaLord"}, true
		}
		m.orch.ProvisionFunc = func(ctx context.Context, themeID string) (*domain.ArenaInstance, error) {
			return testInstance(), nil
		}

		rec := doRequest(e, http.MethodPost, "/v1/events/test",
			`{"subject_id":"admin","boss_id":"magma_lord","theme_id":"volcano"}`)
		require.Equal(t, http.StatusCreated, rec.Code)
		require.Len(t, m.orch.ActivateCalls(), 1)
		assert.Equal(t, []string{"admin"}, m.orch.ActivateCalls()[0].MemberIDs)
	})

	t.Run("404 unknown boss", func(t *testing.T) {
		e, _ := newTestServer(t)
		rec := doRequest(e, http.MethodPost, "/v1/events/test",
			`{"subject_id":"admin","boss_id":"ghost","theme_id":"volcano"}`)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestHTTPServer_GetPartyInfo(t *testing.T) {
	t.Run("200 returns the authority's answer", func(t *testing.T) {
		e, m := newTestServer(t)
		m.validator.RequestPartyInfoFunc = func(ctx context.Context, subjectID string) (domain.PartyInfo, error) {
			return domain.PartyInfo{SubjectID: subjectID, Success: true, IsLeader: true, Size: 2}, nil
		}

		rec := doRequest(e, http.MethodGet, "/v1/party/player-1", "")
		require.Equal(t, http.StatusOK, rec.Code)

		var resp PartyInfoResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "player-1", resp.SubjectId)
		assert.True(t, resp.IsLeader)
	})

	t.Run("400 duplicate lookup", func(t *testing.T) {
		e, m := newTestServer(t)
		m.validator.RequestPartyInfoFunc = func(ctx context.Context, subjectID string) (domain.PartyInfo, error) {
			return domain.PartyInfo{}, service.ErrRequestPending
		}

		rec := doRequest(e, http.MethodGet, "/v1/party/player-1", "")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestHTTPServer_Reload(t *testing.T) {
	t.Run("200 reloads both catalogs", func(t *testing.T) {
		e, m := newTestServer(t)
		rec := doRequest(e, http.MethodPost, "/v1/reload", "")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Len(t, m.themes.ReloadCalls(), 1)
		assert.Len(t, m.bosses.ReloadCalls(), 1)
	})

	t.Run("500 when a reload fails", func(t *testing.T) {
		e, m := newTestServer(t)
		m.themes.ReloadFunc = func() error {
			return service.NewInternalServerError("config unreadable", nil)
		}

		rec := doRequest(e, http.MethodPost, "/v1/reload", "")
		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})
}
