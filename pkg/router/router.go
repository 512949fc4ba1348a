package router

import (
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

type HandlerFunc func(http.ResponseWriter, *http.Request)

type route struct {
	method  string
	path    string
	handler HandlerFunc
}

type Router struct {
	mux    *http.ServeMux
	routes map[string]HandlerFunc // key = METHOD:PATH
	paths  map[string]bool        // track registered paths
	order  []route                // registration order; wildcard routes are tried in it
	log    zerolog.Logger
}

func New(logger zerolog.Logger) *Router {
	r := &Router{
		mux:    http.NewServeMux(),
		routes: make(map[string]HandlerFunc),
		paths:  make(map[string]bool),
		log:    logger,
	}

	// Catch-all handler for every path
	r.mux.HandleFunc("/", r.dispatch)

	return r
}

func (r *Router) dispatch(w http.ResponseWriter, req *http.Request) {
	start := time.Now()
	lrw := &loggingResponseWriter{ResponseWriter: w, statusCode: http.StatusOK}

	if h := r.lookup(req.Method, req.URL.Path); h != nil {
		h(lrw, req)
	} else if r.pathExists(req.URL.Path) {
		// Path exists but method not allowed
		http.Error(lrw, "Method Not Allowed", http.StatusMethodNotAllowed)
	} else {
		http.Error(lrw, "Not Found", http.StatusNotFound)
	}

	event := r.log.Info()
	if lrw.statusCode >= http.StatusInternalServerError {
		event = r.log.Error()
	} else if lrw.statusCode >= http.StatusBadRequest {
		event = r.log.Warn()
	}
	event.
		Str("method", req.Method).
		Str("path", req.URL.Path).
		Int("status", lrw.statusCode).
		Dur("duration", time.Since(start)).
		Msg("request")
}

func (r *Router) lookup(method, path string) HandlerFunc {
	if h, ok := r.routes[method+":"+path]; ok {
		return h
	}
	// More specific wildcard routes are registered first
	for _, rt := range r.order {
		if rt.method == method && strings.Contains(rt.path, "*") && matchWildcardRoute(path, rt.path) {
			return rt.handler
		}
	}
	return nil
}

func (r *Router) pathExists(path string) bool {
	if r.paths[path] {
		return true
	}
	for _, rt := range r.order {
		if strings.Contains(rt.path, "*") && matchWildcardRoute(path, rt.path) {
			return true
		}
	}
	return false
}

// matchWildcardRoute checks if a request path matches a wildcard route pattern
func matchWildcardRoute(requestPath, routePattern string) bool {
	// Split both paths into segments
	requestSegments := strings.Split(strings.Trim(requestPath, "/"), "/")
	routeSegments := strings.Split(strings.Trim(routePattern, "/"), "/")

	// Handle single wildcard at the end (matches one or more remaining segments)
	if len(routeSegments) > 0 && routeSegments[len(routeSegments)-1] == "*" {
		if len(requestSegments) < len(routeSegments) {
			return false
		}

		// Check all segments except the last wildcard
		for i := 0; i < len(routeSegments)-1; i++ {
			if routeSegments[i] != "*" && requestSegments[i] != routeSegments[i] {
				return false
			}
		}
		return requestSegments[len(routeSegments)-1] != ""
	}

	// Exact segment matching
	if len(requestSegments) != len(routeSegments) {
		return false
	}

	for i, routeSegment := range routeSegments {
		if routeSegment == "*" {
			// Wildcard matches any non-empty segment
			if requestSegments[i] == "" {
				return false
			}
			continue
		}
		if requestSegments[i] != routeSegment {
			return false
		}
	}

	return true
}

// --- Register paths ---
func (r *Router) register(method, path string, handler HandlerFunc) {
	key := method + ":" + path
	r.routes[key] = handler
	r.paths[path] = true
	r.order = append(r.order, route{method: method, path: path, handler: handler})
}

func (r *Router) GET(path string, handler HandlerFunc)   { r.register(http.MethodGet, path, handler) }
func (r *Router) POST(path string, handler HandlerFunc)  { r.register(http.MethodPost, path, handler) }
func (r *Router) PUT(path string, handler HandlerFunc)   { r.register(http.MethodPut, path, handler) }
func (r *Router) PATCH(path string, handler HandlerFunc) { r.register(http.MethodPatch, path, handler) }
func (r *Router) DELETE(path string, handler HandlerFunc) {
	r.register(http.MethodDelete, path, handler)
}

// Getter methods for testing
func (r *Router) Routes() map[string]HandlerFunc {
	return r.routes
}

func (r *Router) Paths() map[string]bool {
	return r.paths
}

// ServeHTTP lets the router be mounted or driven by httptest
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	r.mux.ServeHTTP(w, req)
}

// --- Start server ---
func (r *Router) Start(addr string) error {
	r.log.Info().Str("addr", addr).Msg("🚀 Server started")
	return http.ListenAndServe(addr, r.mux)
}

// --- Logging response writer to capture status codes ---
type loggingResponseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (lrw *loggingResponseWriter) WriteHeader(code int) {
	lrw.statusCode = code
	lrw.ResponseWriter.WriteHeader(code)
}
