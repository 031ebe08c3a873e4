// Package bind validates request inputs and maps failures to project errors
package bind

import (
	"net/http"
	"reflect"
	"regexp"
	"strconv"
	"strings"
	"sync"

	perr "foodproxy/internal/platform/errors"
	"foodproxy/internal/platform/logger"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"
)

// FieldError aliases validator.FieldError
type FieldError = validator.FieldError

// ValidatorSvc holds a singleton validator and translator
type ValidatorSvc struct {
	Validator  *validator.Validate
	Translator ut.Translator
}

var (
	vOnce sync.Once
	vSvc  *ValidatorSvc
)

// Get returns the validator singleton with english translations and json tag names
func Get() *ValidatorSvc {
	vOnce.Do(func() {
		enLoc := en.New()
		trans, _ := ut.New(enLoc, enLoc).GetTranslator("en")

		v := validator.New(validator.WithRequiredStructEnabled())
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
			if name == "" || name == "-" {
				return fld.Name
			}
			return name
		})
		_ = en_translations.RegisterDefaultTranslations(v, trans)
		registerDigits(v, trans)

		vSvc = &ValidatorSvc{Validator: v, Translator: trans}
	})
	return vSvc
}

// Messages overrides translated messages, keyed "<json field>.<tag>", e.g. "q.required"
type Messages map[string]string

// Validate checks v's `validate` tags and returns a validation error for the first failure
// the message comes from msgs when present, else from the english translator
func Validate(v any, msgs Messages) error {
	err := Get().Validator.Struct(v)
	if err == nil {
		return nil
	}
	verrs, ok := err.(validator.ValidationErrors)
	if !ok || len(verrs) == 0 {
		logger.Get().Error().Err(err).Msg("validator internal error")
		return perr.Wrap(err, perr.ErrorCodeUnknown, "validation error")
	}
	fe := verrs[0]
	msg, ok := msgs[fe.Field()+"."+fe.Tag()]
	if !ok {
		msg = fe.Translate(Get().Translator)
	}
	return perr.WithField(perr.Validationf("%s", msg), fe.Field())
}

// QueryInt reads an integer query parameter clamped to [lo, hi]
// missing or non integer values give def; hi <= 0 means no upper bound
func QueryInt(r *http.Request, key string, def, lo, hi int) int {
	s := strings.TrimSpace(r.URL.Query().Get(key))
	if s == "" {
		return def
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	if n < lo {
		n = lo
	}
	if hi > 0 && n > hi {
		n = hi
	}
	return n
}

// Query reads a trimmed query parameter
func Query(r *http.Request, key string) string {
	return strings.TrimSpace(r.URL.Query().Get(key))
}

var digitsRe = regexp.MustCompile(`^[0-9]+$`)

// registerDigits adds the "digits" tag: an unsigned base 10 integer with no sign or point
func registerDigits(v *validator.Validate, trans ut.Translator) {
	_ = v.RegisterValidation("digits", func(fl validator.FieldLevel) bool {
		return digitsRe.MatchString(fl.Field().String())
	})
	_ = v.RegisterTranslation("digits", trans,
		func(ut ut.Translator) error {
			return ut.Add("digits", "{0} must contain only digits", true)
		},
		func(ut ut.Translator, fe validator.FieldError) string {
			msg, _ := ut.T("digits", fe.Field())
			return msg
		},
	)
}
