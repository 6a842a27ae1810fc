package httpadapter

import (
	"context"
	"encoding/json"
	"errors"
	"sync"

	"github.com/p-rivero/EDA-ThePurge2020/internal/app/ports"
	"github.com/p-rivero/EDA-ThePurge2020/internal/app/round"
	"github.com/p-rivero/EDA-ThePurge2020/internal/domain/game"
	"github.com/p-rivero/EDA-ThePurge2020/internal/domain/planner"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/app/server"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
)

// Handler exposes the decision core over HTTP. The host posts one snapshot
// per round and receives the planned submissions back, in the order they
// must reach the engine.
type Handler struct {
	Metrics ports.RoundMetrics
	Tuning  planner.Tuning
	KPI     kpiSnapshotProvider

	mu   sync.Mutex
	host snapshotHolder
	log  actionLog
	uc   *round.UseCase
	rows int
	cols int
}

func (h *Handler) RegisterRoutes(s *server.Hertz) {
	s.Use(corsMiddleware())
	s.POST("/v1/round", h.round)
	s.GET("/ops/kpi", h.kpi)
	s.GET("/healthz", h.healthz)
}

type roundRequest struct {
	Snapshot *game.Snapshot `json:"snapshot"`
}

type roundResponse struct {
	Round   int          `json:"round"`
	Day     bool         `json:"day"`
	Actions []actionItem `json:"actions"`
}

type actionItem struct {
	Op        string   `json:"op"`
	CitizenID int      `json:"citizen_id"`
	Dir       game.Dir `json:"dir"`
}

func (h *Handler) round(c context.Context, ctx *app.RequestContext) {
	var body roundRequest
	if err := decodeJSON(ctx, &body); err != nil {
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid_json", "invalid json")
		return
	}
	if err := validateSnapshot(body.Snapshot); err != nil {
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid_snapshot", err.Error())
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	if h.uc != nil && (body.Snapshot.Rows != h.rows || body.Snapshot.Cols != h.cols) {
		writeErrorBody(ctx, consts.StatusConflict, "grid_changed", errSnapshotGridChanged.Error())
		return
	}
	if h.uc == nil {
		h.rows = body.Snapshot.Rows
		h.cols = body.Snapshot.Cols
		h.uc = &round.UseCase{
			Host:    &h.host,
			Sink:    &h.log,
			Metrics: h.Metrics,
			Tuning:  h.Tuning,
		}
	}
	h.host.snap = body.Snapshot
	h.log.actions = h.log.actions[:0]

	report, err := h.uc.PlayRound(c)
	if err != nil {
		writeError(ctx, err)
		return
	}

	resp := roundResponse{
		Round:   report.Round,
		Day:     report.Day,
		Actions: make([]actionItem, len(h.log.actions)),
	}
	copy(resp.Actions, h.log.actions)
	ctx.JSON(consts.StatusOK, resp)
}

type kpiSnapshotProvider interface {
	SnapshotAny() any
}

func (h *Handler) kpi(_ context.Context, ctx *app.RequestContext) {
	if h.KPI == nil {
		writeErrorBody(ctx, consts.StatusNotFound, "not_configured", "kpi provider not configured")
		return
	}
	ctx.JSON(consts.StatusOK, h.KPI.SnapshotAny())
}

func (h *Handler) healthz(_ context.Context, ctx *app.RequestContext) {
	ctx.JSON(consts.StatusOK, map[string]string{"status": "ok"})
}

// snapshotHolder feeds the current request's snapshot into the round use
// case through the host port.
type snapshotHolder struct {
	snap *game.Snapshot
}

func (s *snapshotHolder) Snapshot(_ context.Context) (*game.Snapshot, error) {
	if s.snap == nil {
		return nil, errors.New("no snapshot")
	}
	return s.snap, nil
}

type actionLog struct {
	actions []actionItem
}

func (l *actionLog) Move(id int, d game.Dir) error {
	l.actions = append(l.actions, actionItem{Op: "move", CitizenID: id, Dir: d})
	return nil
}

func (l *actionLog) Build(id int, d game.Dir) error {
	l.actions = append(l.actions, actionItem{Op: "build", CitizenID: id, Dir: d})
	return nil
}

var errSnapshotMissing = errors.New("snapshot is required")
var errSnapshotShape = errors.New("cells do not match rows and cols")
var errSnapshotGridChanged = errors.New("rows and cols must not change mid-match")
var errSnapshotRules = errors.New("rules must carry positive attack damage and initial lives")

func validateSnapshot(s *game.Snapshot) error {
	if s == nil {
		return errSnapshotMissing
	}
	if s.Rows <= 0 || s.Cols <= 0 || len(s.Cells) != s.Rows {
		return errSnapshotShape
	}
	for i := range s.Cells {
		if len(s.Cells[i]) != s.Cols {
			return errSnapshotShape
		}
	}
	if s.Rules.AttackDamage <= 0 {
		return errSnapshotRules
	}
	if s.Rules.BuilderInitialLife <= 0 || s.Rules.WarriorInitialLife <= 0 {
		return errSnapshotRules
	}
	for id, c := range s.Citizens {
		if c.ID != id {
			return errors.New("citizen id does not match map key")
		}
		if c.Life > 0 && !s.InBounds(c.Pos) {
			return errors.New("citizen position out of bounds")
		}
	}
	return nil
}

func decodeJSON(ctx *app.RequestContext, out any) error {
	body := ctx.Request.Body()
	if len(body) == 0 {
		return nil
	}
	return json.Unmarshal(body, out)
}

func writeError(ctx *app.RequestContext, err error) {
	switch {
	case errors.Is(err, ports.ErrNotFound):
		writeErrorBody(ctx, consts.StatusNotFound, "not_found", err.Error())
	case errors.Is(err, ports.ErrConflict):
		writeErrorBody(ctx, consts.StatusConflict, "conflict", err.Error())
	default:
		writeErrorBody(ctx, consts.StatusInternalServerError, "internal_error", "internal error")
	}
}

func writeErrorBody(ctx *app.RequestContext, status int, code, message string) {
	ctx.JSON(status, map[string]any{
		"error": map[string]string{
			"code":    code,
			"message": message,
		},
	})
}
