package handler

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"
)

// Trans is the validator message translator used by HandleParamError.
var Trans ut.Translator

// InitTrans registers English validation messages and switches error keys
// from struct field names to json tag names, so a failing field in the
// response matches the field the client actually sent.
func InitTrans() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return fmt.Errorf("unexpected gin validator engine %T", binding.Validator.Engine())
	}

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	enT := en.New()
	uni := ut.New(enT, enT)
	Trans, ok = uni.GetTranslator("en")
	if !ok {
		return fmt.Errorf("en translator not found")
	}
	return en_translations.RegisterDefaultTranslations(v, Trans)
}

// RemoveTopStruct strips the struct name prefix from translated validation
// errors: "LoginRequest.email" becomes "email".
func RemoveTopStruct(fields map[string]string) map[string]string {
	rsp := make(map[string]string, len(fields))
	for field, msg := range fields {
		rsp[field[strings.Index(field, ".")+1:]] = msg
	}
	return rsp
}
