// Package validation holds the struct validator shared by gin binding and the
// services that accept input outside of HTTP (bulk booking, import).
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"
	"time"

	"airline/internal/domain"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var (
	once     sync.Once
	validate *validator.Validate
)

func engine() *validator.Validate {
	once.Do(func() {
		v := validator.New(validator.WithRequiredStructEnabled())
		v.SetTagName("binding")
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" || name == "" {
				return fld.Name
			}
			return name
		})
		_ = v.RegisterValidation("hhmm", isHHMM)
		validate = v
	})
	return validate
}

// isHHMM accepts zero-padded 24h "HH:MM" so that string order equals time order.
func isHHMM(fl validator.FieldLevel) bool {
	s := fl.Field().String()
	if len(s) != 5 {
		return false
	}
	_, err := time.Parse("15:04", s)
	return err == nil
}

// Struct validates s and returns a domain.ValidationError naming the first
// offending field.
func Struct(s any) error {
	err := engine().Struct(s)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		return domain.ValidationError{
			Field: fieldPath(fe),
			Msg:   fmt.Sprintf("failed on '%s' rule", fe.Tag()),
			Err:   err,
		}
	}
	return domain.ValidationError{Msg: err.Error(), Err: err}
}

// fieldPath drops the root struct name: "Snapshot.flights[0].departure_time"
// becomes "flights[0].departure_time".
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.IndexByte(ns, '.'); i >= 0 {
		return ns[i+1:]
	}
	return fe.Field()
}

type ginValidator struct{}

// Gin returns a binding.StructValidator backed by the shared engine so that
// ShouldBindJSON reports domain.ValidationError.
func Gin() binding.StructValidator {
	return ginValidator{}
}

func (ginValidator) ValidateStruct(obj any) error {
	if obj == nil {
		return nil
	}
	v := reflect.ValueOf(obj)
	for v.Kind() == reflect.Pointer {
		if v.IsNil() {
			return nil
		}
		v = v.Elem()
	}
	switch v.Kind() {
	case reflect.Struct:
		return Struct(v.Interface())
	case reflect.Slice, reflect.Array:
		for i := 0; i < v.Len(); i++ {
			if err := (ginValidator{}).ValidateStruct(v.Index(i).Interface()); err != nil {
				return err
			}
		}
	}
	return nil
}

func (ginValidator) Engine() any {
	return engine()
}
