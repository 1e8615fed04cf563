// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"errors"
	"reflect"
	"regexp"
	"strings"

	"github.com/MKhiriev/go-cert-registry/models"
	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	entranslations "github.com/go-playground/validator/v10/translations/en"
)

// Field names for validating bare lookup parameters.
const (
	FieldCertificateID = "certificate_id"
	FieldUniqueCode    = "unique_code"
	FieldUserID        = "user_id"
)

const (
	notBlankTag  = "notblank"
	notBlankText = "this field cannot be blank"

	maxIdentifierLength = 128
)

// uniqueCodeRegex accepts codes with or without dashes, in any case. The
// service normalizes them before lookup.
var uniqueCodeRegex = regexp.MustCompile(`^[A-Za-z0-9]{4}-?[A-Za-z0-9]{4}-?[A-Za-z0-9]{4}$`)

// CertificateValidator validates certificate domain input using
// go-playground/validator struct tags with English error messages.
type CertificateValidator struct {
	validate   *validator.Validate
	translator ut.Translator
}

// NewCertificateValidator returns a ready [CertificateValidator].
func NewCertificateValidator() Validator {
	validate := validator.New(validator.WithRequiredStructEnabled())

	english := en.New()
	translator, _ := ut.New(english, english).GetTranslator("en")
	_ = entranslations.RegisterDefaultTranslations(validate, translator)

	// report JSON names instead of Go field names
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	_ = validate.RegisterValidation(notBlankTag, notBlankValidation)
	_ = validate.RegisterTranslation(notBlankTag, translator,
		func(t ut.Translator) error { return t.Add(notBlankTag, notBlankText, false) },
		func(t ut.Translator, fe validator.FieldError) string {
			s, _ := t.T(notBlankTag, fe.Field())
			return s
		},
	)

	return &CertificateValidator{validate: validate, translator: translator}
}

// Validate dispatches on the dynamic type of obj.
//
// Supported types:
//   - models.IssueRequest / *models.IssueRequest (fields restrict validation
//     to the named struct fields)
//   - models.CertificateTemplate / *models.CertificateTemplate
//   - string, checked as the lookup parameter named by the single field
func (v *CertificateValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.IssueRequest:
		return v.validateStruct(ctx, value, ErrInvalidIssueRequest, fields...)
	case *models.IssueRequest:
		if value == nil {
			return ErrInvalidIssueRequest
		}
		return v.validateStruct(ctx, *value, ErrInvalidIssueRequest, fields...)

	case models.CertificateTemplate:
		return v.validateStruct(ctx, value, ErrInvalidTemplate)
	case *models.CertificateTemplate:
		if value == nil {
			return ErrInvalidTemplate
		}
		return v.validateStruct(ctx, *value, ErrInvalidTemplate)

	case string:
		return v.validateParam(value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *CertificateValidator) validateStruct(ctx context.Context, s any, kind error, fields ...string) error {
	var err error
	if len(fields) == 0 {
		err = v.validate.StructCtx(ctx, s)
	} else {
		err = v.validate.StructPartialCtx(ctx, s, fields...)
	}
	if err == nil {
		return nil
	}

	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return errors.Join(kind, err)
	}

	fieldErrs := newFieldErrors(kind)
	for _, fe := range validationErrs {
		name := fe.Namespace()
		if idx := strings.Index(name, "."); idx >= 0 {
			name = name[idx+1:]
		}
		fieldErrs.Fields[name] = fe.Translate(v.translator)
	}

	return fieldErrs
}

func (v *CertificateValidator) validateParam(value string, fields ...string) error {
	if len(fields) != 1 {
		return ErrUnknownField
	}

	trimmed := strings.TrimSpace(value)
	switch fields[0] {
	case FieldCertificateID:
		if trimmed == "" || len(trimmed) > maxIdentifierLength {
			return ErrInvalidCertificateID
		}
	case FieldUserID:
		if trimmed == "" || len(trimmed) > maxIdentifierLength {
			return ErrInvalidUserID
		}
	case FieldUniqueCode:
		if !uniqueCodeRegex.MatchString(trimmed) {
			return ErrInvalidUniqueCode
		}
	default:
		return ErrUnknownField
	}

	return nil
}

func notBlankValidation(fl validator.FieldLevel) bool {
	if str, ok := fl.Field().Interface().(string); ok {
		return strings.TrimSpace(str) != ""
	}
	return false
}
