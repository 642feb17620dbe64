package response

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"

	"github.com/ignatzorin/portfolio-backend/internal/logger"
	"github.com/ignatzorin/portfolio-backend/internal/pkg/apperror"
)

// Response — общий конверт всех ответов API.
type Response struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
	Code    string `json:"code,omitempty"`
	Message string `json:"message,omitempty"`
}

func Success(c *gin.Context, data any) {
	c.JSON(http.StatusOK, Response{Success: true, Data: data})
}

func Created(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, Response{Success: true, Data: data})
}

// Message отвечает 200 с текстом без данных.
func Message(c *gin.Context, message string) {
	c.JSON(http.StatusOK, Response{Success: true, Message: message})
}

// Error переводит ошибку в конверт. Внутренние ошибки логируются с тегом обработчика,
// клиент получает только общее сообщение.
func Error(c *gin.Context, tag string, err error) {
	appErr, ok := apperror.As(err)
	if !ok {
		appErr = apperror.Internal(err)
	}

	if appErr.Code == apperror.ErrCodeInternal {
		fields := logrus.Fields{
			"method": c.Request.Method,
			"path":   c.Request.URL.Path,
		}
		if appErr.Cause != nil {
			fields["error"] = appErr.Cause.Error()
		}
		logger.Handler(tag).WithFields(fields).Error("request failed")
	}

	c.AbortWithStatusJSON(appErr.HTTPStatus, Response{
		Success: false,
		Error:   appErr.Message,
		Code:    string(appErr.Code),
	})
}

// Unauthorized отвечает 401 и прерывает цепочку обработчиков.
func Unauthorized(c *gin.Context, message string) {
	if message == "" {
		message = apperror.ErrUnauthorized.Message
	}
	c.AbortWithStatusJSON(http.StatusUnauthorized, Response{
		Success: false,
		Error:   message,
		Code:    string(apperror.ErrCodeUnauthorized),
	})
}

// BindError превращает ошибку разбора тела запроса в ошибку валидации.
func BindError(err error) error {
	var syntaxErr *json.SyntaxError
	var typeErr *json.UnmarshalTypeError
	var validationErrs validator.ValidationErrors

	switch {
	case errors.Is(err, io.EOF):
		return apperror.Validation("тело запроса пустое")
	case errors.As(err, &syntaxErr):
		return apperror.Validation("некорректный JSON")
	case errors.As(err, &typeErr):
		return apperror.Validation("поле %s имеет неверный тип", typeErr.Field)
	case errors.As(err, &validationErrs):
		first := validationErrs[0]
		switch first.Tag() {
		case "required":
			return apperror.Validation("поле %s обязательно", first.Field())
		case "oneof":
			return apperror.Validation("поле %s должно быть одним из: %s", first.Field(), first.Param())
		default:
			return apperror.Validation("поле %s не прошло проверку %s", first.Field(), first.Tag())
		}
	}
	return apperror.Validation("некорректный запрос: %s", err.Error())
}
