package server

import (
	"context"
	"strconv"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/common/utils"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
	"go.uber.org/zap"

	"github.com/radargen/radargen/pkg/radar"
	"github.com/radargen/radargen/pkg/radar/models"
	"github.com/radargen/radargen/pkg/radar/output"
	"github.com/radargen/radargen/pkg/radar/source"
)

// Response is the uniform JSON envelope of the API.
type Response struct {
	Code    string      `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

// renderPayload is the success body of the radar endpoint.
type renderPayload struct {
	Size  int           `json:"size"`
	Radar *models.Radar `json:"radar"`
}

// SuccessResponse returns a successful response
func SuccessResponse(c *app.RequestContext, data interface{}) {
	c.JSON(consts.StatusOK, Response{
		Code:    "SUCCESS",
		Message: "operation successful",
		Data:    data,
	})
}

// BadRequestResponse returns a bad request response
func BadRequestResponse(c *app.RequestContext, message string) {
	c.JSON(consts.StatusBadRequest, Response{
		Code:    "BAD_REQUEST",
		Message: message,
	})
}

// ErrorResponse classifies a build failure and writes it with its mapped
// status. Unknown failures are logged here with full detail; the body only
// ever carries the classified message.
func ErrorResponse(c *app.RequestContext, logger *zap.Logger, err error) {
	cls := models.Classify(err)
	switch cls.Kind {
	case models.KindNotFound:
		c.JSON(consts.StatusNotFound, Response{
			Code:    "NOT_FOUND",
			Message: cls.Message,
		})
	case models.KindMalformed:
		c.JSON(consts.StatusUnprocessableEntity, Response{
			Code:    "MALFORMED_DATA",
			Message: cls.Message,
		})
	case models.KindUnauthorized:
		var data interface{}
		if cls.Account != "" {
			data = utils.H{"account": cls.Account, "status": cls.Status}
		}
		c.JSON(consts.StatusForbidden, Response{
			Code:    "UNAUTHORIZED",
			Message: cls.Message,
			Data:    data,
		})
	default:
		logger.Error("radar build failed",
			zap.String("request_id", GetRequestID(c)),
			zap.Error(err))
		c.JSON(consts.StatusInternalServerError, Response{
			Code:    "INTERNAL_ERROR",
			Message: cls.Message,
		})
	}
}

// RadarHandler builds radars on demand from query-selected sources.
type RadarHandler struct {
	cfg    source.Config
	logger *zap.Logger
}

// NewRadarHandler creates the handler. cfg carries the source dependencies
// shared by all requests.
func NewRadarHandler(cfg source.Config, logger *zap.Logger) *RadarHandler {
	return &RadarHandler{cfg: cfg, logger: logger}
}

// Get handles GET /api/radar. The document is selected by either the
// sheetId or the url query parameter; sheetName optionally picks a tab and
// height feeds the canvas size hint.
func (h *RadarHandler) Get(ctx context.Context, c *app.RequestContext) {
	sheetID := c.Query("sheetId")
	rawURL := c.Query("url")
	sheetName := c.Query("sheetName")

	var desc source.Descriptor
	switch {
	case rawURL != "":
		desc = source.Resolve(rawURL, sheetName, h.cfg.TokenSource != nil)
	case sheetID != "":
		kind := source.KindPublicSheet
		if h.cfg.TokenSource != nil {
			kind = source.KindProtectedSheet
		}
		desc = source.Descriptor{
			Kind:      kind,
			SheetID:   source.SheetIDFromURL(sheetID),
			SheetName: sheetName,
		}
	default:
		BadRequestResponse(c, "missing sheetId or url query parameter")
		return
	}

	src, err := source.New(desc, h.cfg)
	if err != nil {
		BadRequestResponse(c, err.Error())
		return
	}

	r, err := radar.Build(ctx, src, radar.Options{Logger: h.logger})
	if err != nil {
		ErrorResponse(c, h.logger, err)
		return
	}

	height, _ := strconv.Atoi(c.Query("height"))
	SuccessResponse(c, renderPayload{Size: output.CanvasSize(height), Radar: r})
}

// Ping answers liveness probes.
func Ping(ctx context.Context, c *app.RequestContext) {
	c.JSON(consts.StatusOK, utils.H{"message": "pong"})
}
