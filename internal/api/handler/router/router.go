package router

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/justinas/alice"

	"github.com/fernando-m-vale/superseller-ia-sub001/pkg/apiErrors"
)

// Middleware é aplicado na ordem em que aparece: o primeiro envolve todos os demais
type Middleware = alice.Constructor

type Route struct {
	Path        string
	Method      string
	Handler     http.Handler
	Middlewares []Middleware // Middlewares da rota, aplicados depois dos middlewares do grupo
}

type Router struct {
	router *httprouter.Router
}

type ConfigRouter func(router *Router)

// WithRoutes registra rotas na raiz, sem prefixo nem middlewares de grupo
func WithRoutes(routes ...Route) ConfigRouter {
	return WithGroup("", nil, routes...)
}

// WithGroup registra rotas sob um prefixo comum (ex.: /v1) compartilhando middlewares
func WithGroup(prefix string, middlewares []Middleware, routes ...Route) ConfigRouter {
	return func(router *Router) {
		router.AddGroup(prefix, middlewares, routes...)
	}
}

func New(configs ...ConfigRouter) Router {
	router := &Router{
		router: httprouter.New(),
	}

	router.router.NotFound = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		apiErrors.WriteError(w, apiErrors.ErrRouteNotFound, "Rota não encontrada", map[string]string{"path": r.URL.Path})
	})
	router.router.MethodNotAllowed = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		apiErrors.WriteError(w, apiErrors.ErrMethodNotAllowed, "Método não permitido para a rota", map[string]string{
			"path":   r.URL.Path,
			"method": r.Method,
			"allow":  w.Header().Get("Allow"),
		})
	})

	for _, config := range configs {
		config(router)
	}

	return *router
}

func (r Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	r.router.ServeHTTP(w, req)
}

// AddGroup monta a cadeia grupo + rota de cada rota e a registra com o prefixo
func (r Router) AddGroup(prefix string, middlewares []Middleware, routes ...Route) {
	for _, route := range routes {
		chain := alice.New(middlewares...).Append(route.Middlewares...)
		r.router.Handler(route.Method, prefix+route.Path, chain.Then(route.Handler))
	}
}
