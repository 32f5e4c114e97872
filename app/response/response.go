package response

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/sahayak-ai/sahayak/pkg/errors"
	"github.com/sahayak-ai/sahayak/pkg/i18n"
	"github.com/sahayak-ai/sahayak/pkg/utils"
)

func ProvideResponseLocalizer(l i18n.Localizer) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("i18n", l)
	}
}

func InjectResponseLocalizer(c *gin.Context) i18n.Localizer {
	return c.MustGet("i18n").(i18n.Localizer)
}

const (
	RequestIDKey = "request_id"
	ResponseKey  = "response_key"
)

type EmptyStruct struct {
}

type Response struct {
	Meta Meta        `json:"meta"`
	Data interface{} `json:"data"`
}

type Meta struct {
	Code      int    `json:"code"`
	Message   string `json:"message"`
	RequestID string `json:"request_id"`
}

func GetLangFromRequestOrDefault(c *gin.Context) string {
	lang := c.Request.Header.Get("Accept-Language")
	if i18n.ALLOW_LANG[lang] {
		return lang
	}
	return i18n.DEFAULT_LANG
}

// APIError answers a failed request. CustomizedError carries the status
// code and a localizable message id, anything else becomes a 500.
func APIError(c *gin.Context, err error) {
	c.Abort()
	l := InjectResponseLocalizer(c)

	res := c.MustGet(ResponseKey).(*Response)
	var httpStatus int
	if cerrptr, ok := err.(*errors.CustomizedError); !ok {
		res.Meta.Code = http.StatusInternalServerError
		res.Meta.Message = err.Error()
		httpStatus = res.Meta.Code
	} else {
		res.Meta.Code = cerrptr.GetCode()
		res.Meta.Message = l.Get(GetLangFromRequestOrDefault(c), cerrptr.Message())
		httpStatus = cerrptr.GetCode()
	}

	c.JSON(httpStatus, res)
	printErrorLog(c, res, err)
}

func printErrorLog(c *gin.Context, res *Response, err error) {
	slog.Error("response error", slog.Any("fields", map[string]any{
		"request_uri": c.Request.URL.Path,
		"end_time":    time.Now().Unix(),
		"code":        res.Meta.Code,
		"error":       err.Error(),
	}))
}

func printSuccessLog(c *gin.Context, res *Response) {
	var logFields = map[string]any{
		"request_uri": c.Request.URL.Path,
		"end_time":    time.Now().Unix(),
	}
	if c.Request.Method != http.MethodPost {
		logFields["params"] = c.Request.URL.Query().Encode()
	}
	slog.Info("request success", slog.Any("fields", logFields))
}

func APISuccess(c *gin.Context, response interface{}) {
	c.Abort()
	res := c.MustGet(ResponseKey).(*Response)
	if response != nil {
		res.Data = response
	}
	c.JSON(http.StatusOK, res)
	printSuccessLog(c, res)
}

func NewResponse() gin.HandlerFunc {
	return func(c *gin.Context) {
		resp := &Response{
			Meta: Meta{
				RequestID: utils.GenRandomID(),
			},
		}
		c.Set(ResponseKey, resp)
	}
}
