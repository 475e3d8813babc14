package apperror

import (
	"reflect"
	"strings"
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var initOnce sync.Once

// Init registers FieldName on gin's binding validator. Safe to call more
// than once; tests and main both call it.
func Init() {
	initOnce.Do(func() {
		if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
			v.RegisterTagNameFunc(FieldName)
		}
	})
}

// FieldName is the name a client sent for fld: the json tag, else the form
// tag for query binding. Fields tagged "-" report as empty.
func FieldName(fld reflect.StructField) string {
	name := tagName(fld, "json")
	if name == "" {
		name = tagName(fld, "form")
	}
	if name == "-" {
		return ""
	}
	return name
}

func tagName(fld reflect.StructField, key string) string {
	name, _, _ := strings.Cut(fld.Tag.Get(key), ",")
	return name
}
