package http

import (
	"crypto/subtle"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/pastoraldigital/mass-schedule-manager/internal/config"
	"github.com/pastoraldigital/mass-schedule-manager/internal/core/domain"
	"github.com/pastoraldigital/mass-schedule-manager/internal/core/json_types"
	"github.com/pastoraldigital/mass-schedule-manager/internal/core/ports/in"
	"github.com/pastoraldigital/mass-schedule-manager/internal/core/services/title_service"
)

const sessionHeader = "X-Session-Id"

// RosterController is the editing surface: it resolves views for the form
// UI, accepts full-tuple upserts, and triggers the two exports.
type RosterController struct {
	rosterUseCase in.RosterUseCase
	exportUseCase in.ExportUseCase
	titleService  *title_service.TitleService
	cfg           *config.Config
}

func NewRosterController(
	rosterUseCase in.RosterUseCase,
	exportUseCase in.ExportUseCase,
	titleService *title_service.TitleService,
	cfg *config.Config,
) *RosterController {
	return &RosterController{
		rosterUseCase: rosterUseCase,
		exportUseCase: exportUseCase,
		titleService:  titleService,
		cfg:           cfg,
	}
}

func (c *RosterController) RegisterRoutes(router *gin.Engine) {
	api := router.Group("/api/v1")
	api.Use(c.basicAuth(), c.session())
	{
		api.GET("/roster/:year/:month", c.monthView)
		api.PUT("/assignments", c.upsertAssignment)
		api.PUT("/annotations", c.upsertAnnotation)
		api.GET("/celebrants", c.celebrants)
		api.GET("/titles/report", c.titlesReport)
		api.GET("/export/:year/:month/pdf", c.exportMonthPDF)
		api.GET("/export/:year/workbook", c.exportYearWorkbook)
	}
}

type upsertAssignmentRequest struct {
	Key       string `json:"key" binding:"required"`
	Celebrant string `json:"celebrant"`
	Note      string `json:"note"`
}

type upsertAnnotationRequest struct {
	Date        json_types.Date `json:"date" binding:"required"`
	CustomTitle string          `json:"customTitle"`
}

type slotResponse struct {
	Key         string `json:"key"`
	Community   string `json:"community"`
	Time        string `json:"time"`
	Celebrant   string `json:"celebrant"`
	Placeholder bool   `json:"placeholder"`
	Note        string `json:"note"`
}

type sundayResponse struct {
	Date  json_types.Date `json:"date"`
	Title string          `json:"title"`
	Slots []slotResponse  `json:"slots"`
}

type monthResponse struct {
	Year      int              `json:"year"`
	Month     int              `json:"month"`
	MonthName string           `json:"monthName"`
	Sundays   []sundayResponse `json:"sundays"`
}

func (c *RosterController) monthView(ctx *gin.Context) {
	year, month, ok := c.yearMonthParams(ctx)
	if !ok {
		return
	}

	view, err := c.rosterUseCase.MonthView(ctx.Request.Context(), c.sessionFrom(ctx), year, month)
	if err != nil {
		c.writeError(ctx, err)
		return
	}

	response := monthResponse{
		Year:      view.Year,
		Month:     int(view.Month),
		MonthName: domain.MonthName(view.Month),
		Sundays:   make([]sundayResponse, 0, len(view.Sundays)),
	}
	for _, sunday := range view.Sundays {
		slots := make([]slotResponse, 0, len(sunday.Slots))
		for _, slot := range sunday.Slots {
			slots = append(slots, slotResponse{
				Key:         slot.Key,
				Community:   slot.Community,
				Time:        slot.Time,
				Celebrant:   slot.Celebrant,
				Placeholder: slot.Placeholder,
				Note:        slot.Note,
			})
		}
		response.Sundays = append(response.Sundays, sundayResponse{
			Date:  json_types.Date{Date: sunday.Date},
			Title: sunday.Title,
			Slots: slots,
		})
	}

	ctx.JSON(http.StatusOK, response)
}

func (c *RosterController) upsertAssignment(ctx *gin.Context) {
	var req upsertAssignmentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	err := c.rosterUseCase.UpsertAssignment(ctx.Request.Context(), c.sessionFrom(ctx), req.Key, domain.Assignment{
		Celebrant: req.Celebrant,
		Note:      req.Note,
	})
	if err != nil {
		c.writeError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"key": req.Key})
}

func (c *RosterController) upsertAnnotation(ctx *gin.Context) {
	var req upsertAnnotationRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	err := c.rosterUseCase.UpsertAnnotation(ctx.Request.Context(), c.sessionFrom(ctx), req.Date.Date, req.CustomTitle)
	if err != nil {
		c.writeError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"key": domain.AnnotationKey(req.Date.Date)})
}

func (c *RosterController) celebrants(ctx *gin.Context) {
	sess := c.sessionFrom(ctx)
	ctx.JSON(http.StatusOK, gin.H{
		"freeText":   sess.FreeTextCelebrant,
		"celebrants": c.rosterUseCase.Celebrants(sess),
	})
}

// titlesReport exposes the extractor's diagnostics. Informational only: a
// missing or broken document shows up here but never fails anything.
func (c *RosterController) titlesReport(ctx *gin.Context) {
	_, report := c.titleService.TitlesWithReport(ctx.Request.Context())
	ctx.JSON(http.StatusOK, report)
}

func (c *RosterController) exportMonthPDF(ctx *gin.Context) {
	year, month, ok := c.yearMonthParams(ctx)
	if !ok {
		return
	}

	data, err := c.exportUseCase.ExportMonthPDF(ctx.Request.Context(), c.sessionFrom(ctx), year, month)
	if err != nil {
		c.writeError(ctx, err)
		return
	}

	filename := fmt.Sprintf("Missas_%s.pdf", domain.MonthName(month))
	ctx.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	ctx.Data(http.StatusOK, "application/pdf", data)
}

func (c *RosterController) exportYearWorkbook(ctx *gin.Context) {
	year, err := strconv.Atoi(ctx.Param("year"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid year"})
		return
	}

	data, err := c.exportUseCase.ExportYearWorkbook(ctx.Request.Context(), c.sessionFrom(ctx), year)
	if err != nil {
		c.writeError(ctx, err)
		return
	}

	filename := fmt.Sprintf("Escala_Missas_%d.xlsx", year)
	ctx.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	ctx.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", data)
}

func (c *RosterController) yearMonthParams(ctx *gin.Context) (int, time.Month, bool) {
	year, err := strconv.Atoi(ctx.Param("year"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid year"})
		return 0, 0, false
	}
	monthNum, err := strconv.Atoi(ctx.Param("month"))
	if err != nil || monthNum < 1 || monthNum > 12 {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid month"})
		return 0, 0, false
	}
	return year, time.Month(monthNum), true
}

// writeError maps domain errors to status codes. Store connectivity problems
// are surfaced to the user and fatal for this operation only; the client
// keeps its widget state and retries by hand.
func (c *RosterController) writeError(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrStoreUnavailable):
		ctx.JSON(http.StatusServiceUnavailable, gin.H{"error": "schedule store unavailable, try again"})
	case errors.Is(err, domain.ErrMalformedKey),
		errors.Is(err, domain.ErrUnknownSlot),
		errors.Is(err, domain.ErrUnknownYear):
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}

// session builds the per-request edit session: the caller's session id when
// it sends one, a fresh one otherwise. Free-text celebrant mode is
// configuration-scoped, so it applies to every session alike.
func (c *RosterController) session() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		sess := domain.NewSession(c.cfg.Roster.FreeTextCelebrant)
		if id, err := uuid.Parse(ctx.GetHeader(sessionHeader)); err == nil {
			sess.ID = id
		}
		ctx.Set("session", sess)
		ctx.Header(sessionHeader, sess.ID.String())
		ctx.Next()
	}
}

func (c *RosterController) sessionFrom(ctx *gin.Context) domain.Session {
	if value, ok := ctx.Get("session"); ok {
		if sess, ok := value.(domain.Session); ok {
			return sess
		}
	}
	return domain.NewSession(c.cfg.Roster.FreeTextCelebrant)
}

func (c *RosterController) basicAuth() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		username, password, hasAuth := ctx.Request.BasicAuth()
		if !hasAuth {
			ctx.Header("WWW-Authenticate", "Basic realm=Authorization Required")
			ctx.AbortWithStatus(http.StatusUnauthorized)
			return
		}

		for _, client := range c.cfg.Auth.BasicClients {
			if subtle.ConstantTimeCompare([]byte(username), []byte(client.Username)) == 1 &&
				subtle.ConstantTimeCompare([]byte(password), []byte(client.Password)) == 1 {
				ctx.Next()
				return
			}
		}

		ctx.Header("WWW-Authenticate", "Basic realm=Authorization Required")
		ctx.AbortWithStatus(http.StatusUnauthorized)
	}
}
