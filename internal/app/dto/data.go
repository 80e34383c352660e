package dto

import (
	"errors"
	"fmt"
	"math"
	"reflect"
	"slices"
	"strings"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	enTranslations "github.com/go-playground/validator/v10/translations/en"
	"github.com/ijalalfrz/travel-booking-service/internal/pkg/utils"
)

var (
	Validate = validator.New()
	trans    ut.Translator
)

type ErrorResponse struct {
	Error           string   `json:"error"`
	Details         []string `json:"details,omitempty"`
	RedirectTo      string   `json:"redirect_to,omitempty"`
	RedirectAfterMs int64    `json:"redirect_after_ms,omitempty"`
}

type Response struct {
	Message string `json:"message"`
}

func InitValidator() error {
	uni := ut.New(en.New(), en.New())
	trans, _ = uni.GetTranslator("en")

	err := enTranslations.RegisterDefaultTranslations(Validate, trans)
	if err != nil {
		return err
	}

	if err := registerOptionValidation("trip_type", TripTypes); err != nil {
		return err
	}

	if err := registerOptionValidation("trip_requirement", RequirementOptions); err != nil {
		return err
	}

	Validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return nil
}

// registerOptionValidation adds a validation tag accepting only the given options,
// translated like the built-in oneof.
func registerOptionValidation(tag string, options []string) error {
	err := Validate.RegisterValidation(tag, func(fl validator.FieldLevel) bool {
		return slices.Contains(options, fl.Field().String())
	})
	if err != nil {
		return err
	}

	return Validate.RegisterTranslation(tag, trans,
		func(tr ut.Translator) error {
			return tr.Add(tag, "{0} must be one of [{1}]", true)
		},
		func(tr ut.Translator, fe validator.FieldError) string {
			msg, _ := tr.T(tag, fe.Field(), strings.Join(options, ", "))
			return msg
		},
	)
}

func ValidateSingleError(req interface{}) error {
	if err := Validate.Struct(req); err != nil {
		var ve validator.ValidationErrors
		if errors.As(err, &ve) {
			return errors.New(ve[0].Translate(trans))
		}
		return err
	}
	return nil
}

// Price is a display amount.
type Price struct {
	Amount    float64 `json:"amount"`
	Currency  string  `json:"currency"`
	Formatted string  `json:"formatted"`
}

// NewPrice rounds amount to paise and formats it for display.
func NewPrice(amount float64, currency string) Price {
	amount = math.Round(amount*100) / 100

	formatted := fmt.Sprintf("%s %.2f", currency, amount)
	if currency == "INR" {
		formatted = utils.FormatRupee(int64(math.Round(amount)))
	}

	return Price{
		Amount:    amount,
		Currency:  currency,
		Formatted: formatted,
	}
}

type Duration struct {
	TotalMinutes int    `json:"total_minutes"`
	Formatted    string `json:"formatted"`
}
