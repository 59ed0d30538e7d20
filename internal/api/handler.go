package api

import (
	"errors"
	"mime/multipart"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/ukaji3/schedulforge-go/internal/config"
	"github.com/ukaji3/schedulforge-go/pkg/schedulforge"
	"github.com/ukaji3/schedulforge-go/pkg/schedulforge/document"
	"github.com/ukaji3/schedulforge-go/pkg/schedulforge/models"
)

type Handler struct {
	cfg  *config.Config
	opts schedulforge.Options
	log  zerolog.Logger
}

func NewHandler(cfg *config.Config, log zerolog.Logger) *Handler {
	return &Handler{
		cfg:  cfg,
		opts: cfg.ExtractOptions(),
		log:  log,
	}
}

type uploadForm struct {
	File *multipart.FileHeader `form:"file" binding:"required"`
}

type groupsForm struct {
	File        *multipart.FileHeader `form:"file" binding:"required"`
	SheetChoice int                   `form:"sheet_choice"`
}

type timetableForm struct {
	File          *multipart.FileHeader `form:"file" binding:"required"`
	SheetChoice   int                   `form:"sheet_choice"`
	TutorialGroup string                `form:"tutorial_group" binding:"required"`
}

func (h *Handler) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Unified timetable API running."})
}

func (h *Handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": h.cfg.App.Name,
		"version": h.cfg.App.Version,
	})
}

func (h *Handler) ListSheets(c *gin.Context) {
	var form uploadForm
	if !h.bind(c, &form) {
		return
	}

	doc, ok := h.open(c, form.File)
	if !ok {
		return
	}
	defer doc.Close()

	c.JSON(http.StatusOK, models.SheetList{Sheets: schedulforge.ListSheets(doc)})
}

func (h *Handler) ListTutorialGroups(c *gin.Context) {
	var form groupsForm
	if !h.bind(c, &form) {
		return
	}

	doc, ok := h.open(c, form.File)
	if !ok {
		return
	}
	defer doc.Close()

	groups, err := schedulforge.ListTutorialGroups(doc, schedulforge.Selection{SheetChoice: form.SheetChoice}, h.opts)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, groups)
}

func (h *Handler) Timetable(c *gin.Context) {
	var form timetableForm
	if !h.bind(c, &form) {
		return
	}

	doc, ok := h.open(c, form.File)
	if !ok {
		return
	}
	defer doc.Close()

	sel := schedulforge.Selection{SheetChoice: form.SheetChoice, TutorialGroup: form.TutorialGroup}
	tt, err := schedulforge.Extract(doc, sel, h.opts)
	if err != nil {
		h.fail(c, err)
		return
	}

	for _, f := range tt.Flagged {
		h.log.Warn().
			Str("request_id", c.GetString("request_id")).
			Str("sheet", tt.SheetName).
			Str("group", tt.TutorialGroup).
			Str("day", f.Day).
			Str("time", f.Time).
			Int("row", f.Row).
			Str("content", f.Content).
			Msg("Unrecognized timetable label")
	}

	h.log.Info().
		Str("request_id", c.GetString("request_id")).
		Str("sheet", tt.SheetName).
		Str("group", tt.TutorialGroup).
		Int("entries", tt.Timetable.Len()).
		Msg("Timetable extracted")

	c.JSON(http.StatusOK, tt)
}

func (h *Handler) bind(c *gin.Context, form any) bool {
	if err := c.ShouldBind(form); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			c.JSON(http.StatusRequestEntityTooLarge, errorBody(codeInvalidRequest, "Uploaded file is too large"))
			return false
		}
		c.JSON(http.StatusBadRequest, errorBody(codeInvalidRequest, "Invalid request: a spreadsheet file is required"))
		return false
	}
	return true
}

// open loads the uploaded workbook for this request only.
func (h *Handler) open(c *gin.Context, fh *multipart.FileHeader) (document.Document, bool) {
	f, err := fh.Open()
	if err != nil {
		h.fail(c, err)
		return nil, false
	}
	defer f.Close()

	doc, err := schedulforge.LoadReader(f, fh.Filename)
	if err != nil {
		h.fail(c, err)
		return nil, false
	}
	return doc, true
}

func (h *Handler) fail(c *gin.Context, err error) {
	code := schedulforge.ErrorCode(err)
	status, message := http.StatusInternalServerError, "Internal server error"

	switch code {
	case schedulforge.CodeInvalidSelection:
		status, message = http.StatusBadRequest, "Invalid sheet_choice"
	case schedulforge.CodeGroupNotFound:
		status, message = http.StatusNotFound, err.Error()
		var ge *schedulforge.GroupError
		if errors.As(err, &ge) {
			message = "Tutorial group '" + ge.Group + "' not found."
		}
	case schedulforge.CodeDocumentLoad:
		status, message = http.StatusBadRequest, "Uploaded file is not a readable spreadsheet"
	}

	event := h.log.Warn()
	if status == http.StatusInternalServerError {
		event = h.log.Error()
	}
	event.Err(err).
		Str("request_id", c.GetString("request_id")).
		Str("code", string(code)).
		Msg("Request failed")

	c.JSON(status, errorBody(code, message))
}

const codeInvalidRequest schedulforge.Code = "invalid_request"

func errorBody(code schedulforge.Code, message string) gin.H {
	return gin.H{"error": message, "code": code}
}
