// Package handlers contains http handlers for the arenamanager admin surface.
package handlers

import (
	"fmt"
	"net/http"

	"github.com/go-kit/log"
	"github.com/labstack/echo/v4"

	"arenamanager/helpers"
	"arenamanager/interfaces"
	"arenamanager/service"
)

// HTTPServer exposes the operator surface: catalog listings, live instance
// inspection, manual lifecycle operations and the encounter entrypoints.
type HTTPServer struct {
	themes    interfaces.ThemeCatalog
	bosses    interfaces.BossCatalog
	registry  interfaces.InstanceRegistry
	orch      interfaces.ArenaOrchestrator
	workflow  interfaces.EventWorkflow
	validator interfaces.PartyValidator
	logger    log.Logger
}

// NewHTTPServer creates a new HTTPServer. All collaborators must be non-nil.
func NewHTTPServer(
	themes interfaces.ThemeCatalog,
	bosses interfaces.BossCatalog,
	registry interfaces.InstanceRegistry,
	orch interfaces.ArenaOrchestrator,
	workflow interfaces.EventWorkflow,
	validator interfaces.PartyValidator,
	logger log.Logger,
) *HTTPServer {
	return &HTTPServer{
		themes:    helpers.NilPanic(themes, "handlers.http.go: themes is required"),
		bosses:    helpers.NilPanic(bosses, "handlers.http.go: bosses is required"),
		registry:  helpers.NilPanic(registry, "handlers.http.go: registry is required"),
		orch:      helpers.NilPanic(orch, "handlers.http.go: orch is required"),
		workflow:  helpers.NilPanic(workflow, "handlers.http.go: workflow is required"),
		validator: helpers.NilPanic(validator, "handlers.http.go: validator is required"),
		logger:    log.WithPrefix(helpers.NilPanic(logger, "handlers.http.go: logger is required"), "component", "HTTPServer"),
	}
}

// RegisterRoutes binds all handlers to the echo instance.
func RegisterRoutes(e *echo.Echo, s *HTTPServer) {
	e.GET("/v1/themes", s.GetThemes)
	e.GET("/v1/bosses", s.GetBosses)
	e.GET("/v1/instances", s.GetInstances)
	e.POST("/v1/instances", s.ProvisionInstance)
	e.POST("/v1/instances/:instance_id/retire", s.RetireInstance)
	e.POST("/v1/events", s.StartEvent)
	e.POST("/v1/events/test", s.StartTestEvent)
	e.GET("/v1/party/:subject_id", s.GetPartyInfo)
	e.POST("/v1/reload", s.Reload)
}

// GetThemes (GET /v1/themes) lists the theme catalog.
func (h *HTTPServer) GetThemes(ectx echo.Context) error {
	return ectx.JSON(http.StatusOK, toThemesResponse(h.themes.Themes()))
}

// GetBosses (GET /v1/bosses) lists the boss catalog, optionally filtered by
// the difficulty query parameter.
func (h *HTTPServer) GetBosses(ectx echo.Context) error {
	if difficulty := ectx.QueryParam("difficulty"); difficulty != "" {
		return ectx.JSON(http.StatusOK, toBossesResponse(h.bosses.BossesByDifficulty(difficulty)))
	}
	return ectx.JSON(http.StatusOK, toBossesResponse(h.bosses.Bosses()))
}

// GetInstances (GET /v1/instances) lists the live arena instances.
func (h *HTTPServer) GetInstances(ectx echo.Context) error {
	return ectx.JSON(http.StatusOK, toInstancesResponse(h.registry.List()))
}

// ProvisionInstance (POST /v1/instances) provisions a bare instance of a
// theme without a party. Returns the created instance.
func (h *HTTPServer) ProvisionInstance(ectx echo.Context) error {
	var req ProvisionRequest
	if err := ectx.Bind(&req); err != nil {
		return service.NewBadParameterError("invalid request body", err)
	}
	if req.ThemeId == "" {
		return service.NewBadParameterError("theme_id is required", nil)
	}

	inst, err := h.orch.Provision(ectx.Request().Context(), req.ThemeId)
	if err != nil {
		return fmt.Errorf("provisionInstance failed, err: %w", err)
	}

	return ectx.JSON(http.StatusCreated, toInstanceInfo(inst))
}

// RetireInstance (POST /v1/instances/{instance_id}/retire) tears a live
// instance down.
func (h *HTTPServer) RetireInstance(ectx echo.Context) error {
	instanceID := ectx.Param("instance_id")
	inst, ok := h.registry.Get(instanceID)
	if !ok {
		return service.NewEntityNotFoundError("instance not found", nil)
	}

	if err := h.orch.Retire(ectx.Request().Context(), inst); err != nil {
		return fmt.Errorf("retireInstance failed, err: %w", err)
	}

	return ectx.NoContent(http.StatusOK)
}

// StartEvent (POST /v1/events) runs the full encounter workflow for a
// requester: party check, funds, provisioning, activation.
func (h *HTTPServer) StartEvent(ectx echo.Context) error {
	var req StartEventRequest
	if err := ectx.Bind(&req); err != nil {
		return service.NewBadParameterError("invalid request body", err)
	}
	if req.RequesterId == "" || req.BossId == "" || req.ThemeId == "" {
		return service.NewBadParameterError("requester_id, boss_id and theme_id are required", nil)
	}

	ctx := ectx.Request().Context()
	if err := h.workflow.StartEncounter(ctx, req.RequesterId, req.BossId, req.ThemeId); err != nil {
		return fmt.Errorf("startEvent failed, err: %w", err)
	}

	return ectx.NoContent(http.StatusAccepted)
}

// StartTestEvent (POST /v1/events/test) provisions and activates a solo
// encounter for one subject, skipping the party check and the entry cost.
func (h *HTTPServer) StartTestEvent(ectx echo.Context) error {
	var req TestEventRequest
	if err := ectx.Bind(&req); err != nil {
		return service.NewBadParameterError("invalid request body", err)
	}
	if req.SubjectId == "" || req.BossId == "" || req.ThemeId == "" {
		return service.NewBadParameterError("subject_id, boss_id and theme_id are required", nil)
	}

	boss, ok := h.bosses.Boss(req.BossId)
	if !ok {
		return service.NewEntityNotFoundError("boss not found", nil)
	}

	ctx := ectx.Request().Context()
	inst, err := h.orch.Provision(ctx, req.ThemeId)
	if err != nil {
		return fmt.Errorf("startTestEvent failed to provision, err: %w", err)
	}
	if err := h.orch.Activate(ctx, inst, []string{req.SubjectId}, &boss); err != nil {
		return fmt.Errorf("startTestEvent failed to activate, err: %w", err)
	}

	return ectx.JSON(http.StatusCreated, toInstanceInfo(inst))
}

// GetPartyInfo (GET /v1/party/{subject_id}) queries the party authority for a
// subject and returns its answer, including the failure sentinel on timeout.
func (h *HTTPServer) GetPartyInfo(ectx echo.Context) error {
	subjectID := ectx.Param("subject_id")

	info, err := h.validator.RequestPartyInfo(ectx.Request().Context(), subjectID)
	if err != nil {
		if err == service.ErrRequestPending {
			return service.NewBadParameterError("a party lookup for this subject is already running", err)
		}
		return fmt.Errorf("getPartyInfo failed, err: %w", err)
	}

	return ectx.JSON(http.StatusOK, toPartyInfoResponse(info))
}

// Reload (POST /v1/reload) rebuilds both catalogs from configuration.
func (h *HTTPServer) Reload(ectx echo.Context) error {
	if err := h.themes.Reload(); err != nil {
		return fmt.Errorf("reload failed on themes, err: %w", err)
	}
	if err := h.bosses.Reload(); err != nil {
		return fmt.Errorf("reload failed on bosses, err: %w", err)
	}

	return ectx.NoContent(http.StatusOK)
}
