package payrun

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	payrunerrors "github.com/shilpmis/saral-payroll/internal/payrun/errors"
	"github.com/shilpmis/saral-payroll/internal/shared/apperror"
	"github.com/shilpmis/saral-payroll/internal/shared/response"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

type Handler struct {
	service Service
	rdb     *redis.Client
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

func NewHandlerWithRedis(service Service, rdb *redis.Client) *Handler {
	return &Handler{service: service, rdb: rdb}
}

func getActorID(c *gin.Context) string {
	actorID := c.GetString("staff_id")
	if actorID == "" {
		actorID = c.GetString("user_id_validated")
	}
	return actorID
}

func parsePayRunID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		h := apperror.ToHTTP(payrunerrors.ErrPayRunNotFound)
		response.Error(c, h.Status, h.Code, h.Message, nil)
		return 0, false
	}
	return id, true
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func (h *Handler) Create(c *gin.Context) {
	lockKey, _ := c.Get("idempotency_lock_key")
	cacheKey, _ := c.Get("idempotency_cache_key")

	if h.rdb != nil {
		if lk, ok := lockKey.(string); ok && lk != "" {
			defer h.rdb.Del(c.Request.Context(), lk)
		}
	}

	schoolID := c.GetString("school_id")
	actorID := getActorID(c)

	var req CreatePayRunRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeServiceError(c, apperror.MapValidationError(err))
		return
	}

	resp, err := h.service.Create(c.Request.Context(), schoolID, actorID, req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	if h.rdb != nil {
		if ck, ok := cacheKey.(string); ok && ck != "" {
			if payload, marshalErr := json.Marshal(resp); marshalErr == nil {
				_ = h.rdb.Set(c.Request.Context(), ck, payload, 24*time.Hour).Err()
			}
		}
	}

	response.Success(c, http.StatusCreated, resp, nil)
}

func (h *Handler) GetAll(c *gin.Context) {
	ctx := c.Request.Context()
	schoolID := c.GetString("school_id")

	var filterReq GetPayRunsFilterRequest
	if err := c.ShouldBindQuery(&filterReq); err != nil {
		h.writeServiceError(c, apperror.MapValidationError(err))
		return
	}

	resp, total, err := h.service.GetAll(ctx, schoolID, filterReq)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	page := filterReq.Page
	if page < 1 {
		page = 1
	}
	limit := filterReq.Limit
	if limit < 1 {
		limit = 20
	}

	meta := response.NewPaginationMeta(total, page, limit)
	response.Success(c, http.StatusOK, resp, &meta)
}

func (h *Handler) GetByID(c *gin.Context) {
	ctx := c.Request.Context()
	schoolID := c.GetString("school_id")

	id, ok := parsePayRunID(c)
	if !ok {
		return
	}

	resp, err := h.service.GetByID(ctx, schoolID, id)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) GetSummary(c *gin.Context) {
	ctx := c.Request.Context()
	schoolID := c.GetString("school_id")

	id, ok := parsePayRunID(c)
	if !ok {
		return
	}

	resp, err := h.service.GetSummary(ctx, schoolID, id)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) PreviewTemplate(c *gin.Context) {
	ctx := c.Request.Context()
	schoolID := c.GetString("school_id")

	templateID, err := strconv.ParseInt(c.Param("template_id"), 10, 64)
	if err != nil || templateID <= 0 {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "invalid template id", nil)
		return
	}

	resp, svcErr := h.service.PreviewTemplate(ctx, schoolID, templateID)
	if svcErr != nil {
		h.writeServiceError(c, svcErr)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) Update(c *gin.Context) {
	ctx := c.Request.Context()
	schoolID := c.GetString("school_id")
	actorID := getActorID(c)

	id, ok := parsePayRunID(c)
	if !ok {
		return
	}

	var req UpdatePayRunRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeServiceError(c, apperror.MapValidationError(err))
		return
	}

	resp, err := h.service.Update(ctx, schoolID, actorID, id, req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) MarkAsPaid(c *gin.Context) {
	ctx := c.Request.Context()
	schoolID := c.GetString("school_id")
	actorID := getActorID(c)

	id, ok := parsePayRunID(c)
	if !ok {
		return
	}

	resp, err := h.service.MarkAsPaid(ctx, schoolID, actorID, id)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) DownloadPayslip(c *gin.Context) {
	ctx := c.Request.Context()
	schoolID := c.GetString("school_id")

	id, ok := parsePayRunID(c)
	if !ok {
		return
	}

	resp, err := h.service.GetByID(ctx, schoolID, id)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	if resp.PayslipURL == nil || *resp.PayslipURL == "" {
		h.writeServiceError(c, payrunerrors.ErrPayslipNotGenerated)
		return
	}

	c.Redirect(http.StatusTemporaryRedirect, *resp.PayslipURL)
}

func (h *Handler) Delete(c *gin.Context) {
	ctx := c.Request.Context()
	schoolID := c.GetString("school_id")

	id, ok := parsePayRunID(c)
	if !ok {
		return
	}

	if err := h.service.Delete(ctx, schoolID, id); err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"deleted": true}, nil)
}
