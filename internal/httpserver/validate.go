package httpserver

import (
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"regexp"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

const (
	uuid4Pattern = `^[0-9a-f]{8}-[0-9a-f]{4}-4[0-9a-f]{3}-[89ab][0-9a-f]{3}-[0-9a-f]{12}$`
	namePattern  = `^[A-Za-z][A-Za-z' -]*$`
)

var (
	uuid4Re = regexp.MustCompile(uuid4Pattern)
	nameRe  = regexp.MustCompile(namePattern)
)

// validationDetail is one field-level issue in a 422 response.
type validationDetail struct {
	Loc  []string `json:"loc"`
	Msg  string   `json:"msg"`
	Type string   `json:"type"`
}

// registerValidations installs the name-pattern rule on gin's validator and
// makes field errors report json names rather than Go field names.
func registerValidations() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return errors.New("gin binding validator engine unavailable")
	}

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return v.RegisterValidation("name_chars", func(fl validator.FieldLevel) bool {
		return nameRe.MatchString(fl.Field().String())
	})
}

// guidParam validates the :guid path parameter, writing a 422 response and
// returning ok=false on a pattern mismatch.
func guidParam(c *gin.Context) (string, bool) {
	guid := c.Param("guid")
	if !uuid4Re.MatchString(guid) {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"detail": []validationDetail{{
			Loc:  []string{"path", "guid"},
			Msg:  fmt.Sprintf("String should match pattern '%s'", uuid4Pattern),
			Type: "string_pattern_mismatch",
		}}})
		return "", false
	}
	return guid, true
}

// bindingError writes the 422 response for a failed request-body bind.
// Validator failures become per-field detail entries; anything else (for
// example malformed JSON) becomes a plain string detail.
func bindingError(c *gin.Context, err error) {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"detail": err.Error()})
		return
	}

	details := make([]validationDetail, 0, len(verrs))
	for _, fe := range verrs {
		details = append(details, validationDetail{
			Loc:  []string{"body", fe.Field()},
			Msg:  validationMsg(fe),
			Type: validationType(fe),
		})
	}
	c.JSON(http.StatusUnprocessableEntity, gin.H{"detail": details})
}

func validationMsg(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "Field required"
	case "uuid4":
		return fmt.Sprintf("String should match pattern '%s'", uuid4Pattern)
	case "name_chars":
		return fmt.Sprintf("String should match pattern '%s'", namePattern)
	case "datetime":
		return fmt.Sprintf("Value is not a valid date in format %s", fe.Param())
	case "email":
		return "Value is not a valid email address"
	case "oneof":
		return fmt.Sprintf("Input should be one of: %s", fe.Param())
	case "max":
		return fmt.Sprintf("Value should have at most %s characters", fe.Param())
	default:
		return fmt.Sprintf("Invalid value for %s", fe.Field())
	}
}

func validationType(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "missing"
	case "uuid4", "name_chars":
		return "string_pattern_mismatch"
	default:
		return "value_error"
	}
}
