package api

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/thulya6/task-analyzer/internal/prioritization/application/queries"
	"github.com/thulya6/task-analyzer/internal/prioritization/application/services"
	"github.com/thulya6/task-analyzer/internal/prioritization/domain/task"
	"github.com/thulya6/task-analyzer/internal/prioritization/domain/value_objects"
)

// maxBodyBytes bounds request bodies; the engine itself imposes no batch
// size limit, the transport does.
const maxBodyBytes = 4 << 20

// TasksHandler serves the analyze, suggest, and graph endpoints.
type TasksHandler struct {
	analyze *queries.AnalyzeTasksHandler
	suggest *queries.SuggestTasksHandler
	graph   *queries.DependencyGraphHandler
	cache   *ResponseCache // nil disables caching
	logger  *slog.Logger
}

// NewTasksHandler creates a new TasksHandler. cache may be nil.
func NewTasksHandler(
	analyze *queries.AnalyzeTasksHandler,
	suggest *queries.SuggestTasksHandler,
	graph *queries.DependencyGraphHandler,
	cache *ResponseCache,
	logger *slog.Logger,
) *TasksHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &TasksHandler{
		analyze: analyze,
		suggest: suggest,
		graph:   graph,
		cache:   cache,
		logger:  logger,
	}
}

// batchRequest is the request body shared by all three endpoints.
type batchRequest struct {
	Strategy string        `json:"strategy"`
	Tasks    *[]task.Input `json:"tasks"`
}

// rankedEntry is one ranked task on the wire: the DTO plus the explanation
// rendered to text. Rendering happens here, at the presentation boundary;
// the engine only ever produces structured factors.
type rankedEntry struct {
	queries.RankedTaskDTO
	Explanation string `json:"explanation"`
}

type rankedResponse struct {
	Strategy string              `json:"strategy"`
	Tasks    []rankedEntry       `json:"tasks"`
	Errors   []validationMessage `json:"errors,omitempty"`
}

type validationMessage struct {
	Index   int    `json:"index"`
	TaskID  int64  `json:"task_id,omitempty"`
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Analyze handles POST /api/v1/tasks/analyze.
func (h *TasksHandler) Analyze(w http.ResponseWriter, r *http.Request) {
	body, req, ok := h.decodeBatch(w, r, false)
	if !ok {
		return
	}

	if payload, hit := h.cacheGet(r, "analyze", body); hit {
		writeRaw(w, payload)
		return
	}

	result, err := h.analyze.Handle(r.Context(), queries.AnalyzeTasksQuery{
		Tasks:    *req.Tasks,
		Strategy: req.Strategy,
	})
	if err != nil {
		h.logger.ErrorContext(r.Context(), "analyze failed", "error", err)
		writeError(w, http.StatusInternalServerError, "analysis failed")
		return
	}

	h.respondRanked(w, r, "analyze", body, result)
}

// Suggest handles POST /api/v1/tasks/suggest. An optional limit query
// parameter caps the subset.
func (h *TasksHandler) Suggest(w http.ResponseWriter, r *http.Request) {
	body, req, ok := h.decodeBatch(w, r, false)
	if !ok {
		return
	}

	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			writeError(w, http.StatusBadRequest, "limit must be a positive integer")
			return
		}
		limit = parsed
	}

	cacheKey := fmt.Sprintf("suggest:%d", limit)
	if payload, hit := h.cacheGet(r, cacheKey, body); hit {
		writeRaw(w, payload)
		return
	}

	result, err := h.suggest.Handle(r.Context(), queries.SuggestTasksQuery{
		Tasks:    *req.Tasks,
		Strategy: req.Strategy,
		Limit:    limit,
	})
	if err != nil {
		h.logger.ErrorContext(r.Context(), "suggest failed", "error", err)
		writeError(w, http.StatusInternalServerError, "suggestion failed")
		return
	}

	h.respondRanked(w, r, cacheKey, body, result)
}

// Graph handles POST /api/v1/tasks/graph. Unlike analyze and suggest, an
// empty task list is accepted.
func (h *TasksHandler) Graph(w http.ResponseWriter, r *http.Request) {
	_, req, ok := h.decodeBatch(w, r, true)
	if !ok {
		return
	}

	result, err := h.graph.Handle(r.Context(), queries.DependencyGraphQuery{
		Tasks: *req.Tasks,
	})
	if err != nil {
		h.logger.ErrorContext(r.Context(), "graph failed", "error", err)
		writeError(w, http.StatusInternalServerError, "graph construction failed")
		return
	}

	writeJSON(w, http.StatusOK, result)
}

// decodeBatch reads and validates the request body. A body that is not a
// well-formed task list is fatal for the request (malformed batch);
// individually invalid tasks are not, those surface in the response's
// errors list.
func (h *TasksHandler) decodeBatch(w http.ResponseWriter, r *http.Request, allowEmpty bool) ([]byte, batchRequest, bool) {
	var req batchRequest

	body, err := io.ReadAll(io.LimitReader(r.Body, maxBodyBytes))
	if err != nil {
		writeError(w, http.StatusBadRequest, "failed to read request body")
		return nil, req, false
	}

	if err := json.Unmarshal(body, &req); err != nil {
		writeError(w, http.StatusBadRequest, task.ErrMalformedBatch.Error())
		return nil, req, false
	}
	if req.Tasks == nil {
		writeError(w, http.StatusBadRequest, "field 'tasks' must be a list")
		return nil, req, false
	}
	if !allowEmpty && len(*req.Tasks) == 0 {
		writeError(w, http.StatusBadRequest, "field 'tasks' must be a non-empty list")
		return nil, req, false
	}

	return body, req, true
}

func (h *TasksHandler) respondRanked(w http.ResponseWriter, r *http.Request, endpoint string, body []byte, result queries.AnalyzeTasksResult) {
	strategy := value_objects.ParseStrategy(result.Strategy)

	resp := rankedResponse{
		Strategy: result.Strategy,
		Tasks:    make([]rankedEntry, 0, len(result.Tasks)),
	}
	for _, dto := range result.Tasks {
		resp.Tasks = append(resp.Tasks, rankedEntry{
			RankedTaskDTO: dto,
			Explanation:   renderExplanation(strategy.Label(), dto.Factors),
		})
	}
	for _, issue := range result.Errors {
		resp.Errors = append(resp.Errors, validationMessage{
			Index:   issue.Index,
			TaskID:  issue.TaskID,
			Field:   issue.Field,
			Message: issue.Message,
		})
	}

	payload, err := json.Marshal(resp)
	if err != nil {
		h.logger.ErrorContext(r.Context(), "failed to marshal response", "error", err)
		writeError(w, http.StatusInternalServerError, "encoding failed")
		return
	}

	h.cacheSet(r, endpoint, body, payload)
	writeRaw(w, payload)
}

func (h *TasksHandler) cacheGet(r *http.Request, endpoint string, body []byte) ([]byte, bool) {
	if h.cache == nil {
		return nil, false
	}
	return h.cache.Get(r.Context(), CacheKey(endpoint, body))
}

func (h *TasksHandler) cacheSet(r *http.Request, endpoint string, body, payload []byte) {
	if h.cache == nil {
		return
	}
	h.cache.Set(r.Context(), CacheKey(endpoint, body), payload)
}

func writeRaw(w http.ResponseWriter, payload []byte) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write(payload)
}

// renderExplanation turns the scorer's factor list into the human-readable
// explanation string.
func renderExplanation(strategyLabel string, factors []services.Factor) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Strategy: %s.", strategyLabel)
	for _, f := range factors {
		if f.Delta != 0 {
			fmt.Fprintf(&b, " %s %+.2f (%s).", f.Name, f.Delta, f.Reason)
		} else {
			fmt.Fprintf(&b, " %s: %s.", f.Name, f.Reason)
		}
	}
	return b.String()
}
