package helper

import (
	"net/http"
	"reflect"

	"blogly/models"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"gopkg.in/go-playground/validator.v9"
	en_translations "gopkg.in/go-playground/validator.v9/translations/en"
)

// HTTPHelper ...
type HTTPHelper struct {
	Validate   *validator.Validate
	Translator ut.Translator
}

func NewHTTPHelper() *HTTPHelper {
	enLocale := en.New()
	uni := ut.New(enLocale, enLocale)
	trans, _ := uni.GetTranslator("en")

	validate := validator.New()
	_ = en_translations.RegisterDefaultTranslations(validate, trans)

	return &HTTPHelper{
		Validate:   validate,
		Translator: trans,
	}
}

func (u *HTTPHelper) getTypeData(i interface{}) string {
	v := reflect.ValueOf(i)
	v = reflect.Indirect(v)

	return v.Type().String()
}

// GetStatusCode maps service errors onto HTTP status codes.
func (u *HTTPHelper) GetStatusCode(err error) int {
	statusCode := http.StatusOK
	if err != nil {
		switch u.getTypeData(err) {
		case "models.ErrorNotFound":
			statusCode = http.StatusNotFound
		case "models.ErrorConflict":
			statusCode = http.StatusConflict
		case "models.ErrorInternalServer":
			statusCode = http.StatusInternalServerError
		default:
			statusCode = http.StatusInternalServerError
		}
	}

	return statusCode
}

// ValidateStruct runs presence/length validation and returns translated
// per-field messages keyed by the form field name, or nil when valid.
func (u *HTTPHelper) ValidateStruct(s interface{}) map[string][]string {
	err := u.Validate.Struct(s)
	if err == nil {
		return nil
	}

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return map[string][]string{"form": {err.Error()}}
	}

	errorResponse := map[string][]string{}
	errorTranslation := validationErrors.Translate(u.Translator)
	for _, fieldErr := range validationErrors {
		errKey := Underscore(fieldErr.StructField())
		errorResponse[errKey] = append(errorResponse[errKey], errorTranslation[fieldErr.Namespace()])
	}

	return errorResponse
}

// RenderNotFound renders the 404 page.
func (u *HTTPHelper) RenderNotFound(c *gin.Context, message string) {
	if message == "" {
		message = "Page not found"
	}
	c.HTML(http.StatusNotFound, "404.html", gin.H{
		"message": message,
	})
}

// RenderServerError renders the generic error page.
func (u *HTTPHelper) RenderServerError(c *gin.Context, err error) {
	c.HTML(http.StatusInternalServerError, "error.html", gin.H{
		"error": err.Error(),
	})
}

// RenderError picks the error page matching the service error type. Used
// by handlers for failures outside the re-render-the-form flow.
func (u *HTTPHelper) RenderError(c *gin.Context, err error) {
	if u.GetStatusCode(err) == http.StatusNotFound {
		u.RenderNotFound(c, err.Error())
		return
	}
	u.RenderServerError(c, err)
}

// ConflictMessage extracts a user-facing message for rejected writes, or
// "" when the error is not a constraint violation.
func (u *HTTPHelper) ConflictMessage(err error) string {
	if conflict, ok := err.(models.ErrorConflict); ok {
		return conflict.Message
	}
	return ""
}
