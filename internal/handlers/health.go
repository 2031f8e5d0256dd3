// internal/handlers/health.go
package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"runtime"
	"strconv"
	"sync"
	"time"

	"github.com/hibiken/asynq"

	"github.com/alsaqri/phoneshop/internal/core/domain"
	"github.com/alsaqri/phoneshop/internal/core/ports"
	"github.com/alsaqri/phoneshop/internal/pkg/config"
)

const healthTimeout = 5 * time.Second

// QueueInspector is the part of *asynq.Inspector the health check reads.
type QueueInspector interface {
	Queues() ([]string, error)
	GetQueueInfo(queue string) (*asynq.QueueInfo, error)
	Servers() ([]*asynq.ServerInfo, error)
}

// HealthHandler reports on the database, Redis, the task queue and how
// many phone numbers remain.
type HealthHandler struct {
	db        ports.Database
	cache     ports.Cache
	ids       ports.IdentifierService
	queue     QueueInspector
	config    *config.Config
	logger    *slog.Logger
	startTime time.Time
}

// NewHealthHandler creates a health handler. ids and inspector may be nil.
func NewHealthHandler(
	database ports.Database,
	cache ports.Cache,
	ids ports.IdentifierService,
	inspector QueueInspector,
	cfg *config.Config,
	logger *slog.Logger,
) *HealthHandler {
	return &HealthHandler{
		db:        database,
		cache:     cache,
		ids:       ids,
		queue:     inspector,
		config:    cfg,
		logger:    logger.With(slog.String("handler", "health")),
		startTime: time.Now(),
	}
}

// HealthStatus is the body of GET /health.
type HealthStatus struct {
	Status      string                 `json:"status"`
	Version     string                 `json:"version"`
	Environment string                 `json:"environment"`
	Uptime      string                 `json:"uptime"`
	Timestamp   time.Time              `json:"timestamp"`
	Checks      map[string]CheckResult `json:"checks"`
	System      SystemInfo             `json:"system"`
}

// CheckResult is the outcome of one dependency probe.
type CheckResult struct {
	Status   string                 `json:"status"`
	Message  string                 `json:"message,omitempty"`
	Duration string                 `json:"duration,omitempty"`
	Details  map[string]interface{} `json:"details,omitempty"`
}

// SystemInfo is a runtime snapshot.
type SystemInfo struct {
	GoVersion     string `json:"go_version"`
	NumGoroutines int    `json:"num_goroutines"`
	MemoryAllocMB uint64 `json:"memory_alloc_mb"`
}

type check func(ctx context.Context) (map[string]interface{}, error)

// Health handles GET /health. Any failed check answers 503.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), healthTimeout)
	defer cancel()

	checks := map[string]check{
		"database": h.checkDatabase,
		"redis":    h.checkRedis,
	}
	if h.ids != nil {
		checks["phone_numbers"] = h.checkPhoneNumbers
	}
	if h.queue != nil {
		checks["queue"] = h.checkQueue
	}

	status := HealthStatus{
		Status:      "healthy",
		Version:     h.config.App.Version,
		Environment: h.config.App.Environment,
		Uptime:      time.Since(h.startTime).Round(time.Second).String(),
		Timestamp:   time.Now().UTC(),
		Checks:      make(map[string]CheckResult, len(checks)),
		System:      systemInfo(),
	}

	var (
		mu sync.Mutex
		wg sync.WaitGroup
	)
	for name, fn := range checks {
		wg.Add(1)
		go func(name string, fn check) {
			defer wg.Done()
			result := h.run(ctx, name, fn)

			mu.Lock()
			defer mu.Unlock()
			status.Checks[name] = result
			if result.Status != "healthy" {
				status.Status = "degraded"
			}
		}(name, fn)
	}
	wg.Wait()

	code := http.StatusOK
	if status.Status != "healthy" {
		code = http.StatusServiceUnavailable
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(status); err != nil {
		h.logger.ErrorContext(ctx, "failed to encode health response",
			slog.String("error", err.Error()))
	}
}

func (h *HealthHandler) run(ctx context.Context, name string, fn check) CheckResult {
	start := time.Now()
	details, err := fn(ctx)
	result := CheckResult{
		Status:   "healthy",
		Duration: time.Since(start).String(),
		Details:  details,
	}
	if err != nil {
		result.Status = "unhealthy"
		result.Message = err.Error()
		h.logger.ErrorContext(ctx, "health check failed",
			slog.String("check", name),
			slog.String("error", err.Error()))
	}
	return result
}

func (h *HealthHandler) checkDatabase(ctx context.Context) (map[string]interface{}, error) {
	if err := h.db.Ping(ctx); err != nil {
		return nil, err
	}
	return map[string]interface{}{"pool": h.db.Stats()}, nil
}

func (h *HealthHandler) checkRedis(ctx context.Context) (map[string]interface{}, error) {
	return nil, h.cache.Ping(ctx)
}

// checkPhoneNumbers fails once the six-digit range is used up.
func (h *HealthHandler) checkPhoneNumbers(ctx context.Context) (map[string]interface{}, error) {
	next, err := h.ids.NextPhoneNumber(ctx)
	if errors.Is(err, domain.ErrCapacityExceeded) {
		return map[string]interface{}{"remaining": 0, "max": domain.MaxPhoneNumber}, err
	}
	if err != nil {
		return nil, err
	}

	n, _ := strconv.Atoi(next)
	return map[string]interface{}{
		"next":      next,
		"remaining": domain.MaxPhoneNumber - n + 1,
		"max":       domain.MaxPhoneNumber,
	}, nil
}

func (h *HealthHandler) checkQueue(ctx context.Context) (map[string]interface{}, error) {
	queues, err := h.queue.Queues()
	if err != nil {
		return nil, err
	}

	stats := make(map[string]interface{}, len(queues))
	for _, name := range queues {
		info, err := h.queue.GetQueueInfo(name)
		if err != nil {
			continue
		}
		stats[name] = map[string]int{
			"pending":  info.Pending,
			"active":   info.Active,
			"retry":    info.Retry,
			"archived": info.Archived,
		}
	}

	details := map[string]interface{}{"queues": stats}
	if servers, err := h.queue.Servers(); err == nil {
		details["workers"] = len(servers)
	}
	return details, nil
}

func systemInfo() SystemInfo {
	var mem runtime.MemStats
	runtime.ReadMemStats(&mem)

	return SystemInfo{
		GoVersion:     runtime.Version(),
		NumGoroutines: runtime.NumGoroutine(),
		MemoryAllocMB: mem.Alloc / 1024 / 1024,
	}
}
