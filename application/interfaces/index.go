package interfaces

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ApplicationContext carries a parsed request body and per-request
// metadata from the transport layer into controllers and usecases.
type ApplicationContext[T any] struct {
	Ctx       interface{}
	Body      *T
	Keys      map[string]any
	Header    http.Header
	ClientIP  string
	UserAgent string
}

func (ac *ApplicationContext[T]) GetContextData(key string) any {
	if ac.Keys == nil {
		return nil
	}
	return ac.Keys[key]
}

func (ac *ApplicationContext[T]) SetContextData(key string, value any) {
	if ac.Keys == nil {
		ac.Keys = map[string]any{}
	}
	ac.Keys[key] = value
}

func (ac *ApplicationContext[T]) GetStringContextData(key string) string {
	value, ok := ac.GetContextData(key).(string)
	if !ok {
		return ""
	}
	return value
}

func (ac *ApplicationContext[T]) GetHeader(key string) *string {
	if ac.Header == nil {
		return nil
	}
	value := ac.Header.Get(key)
	if value == "" {
		return nil
	}
	return &value
}

// GinCtx returns the underlying gin context when the request came
// through the gin transport.
func (ac *ApplicationContext[T]) GinCtx() *gin.Context {
	ginCtx, _ := (ac.Ctx).(*gin.Context)
	return ginCtx
}
