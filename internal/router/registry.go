package router

import "github.com/gin-gonic/gin"

// Module is a feature slice that knows how to mount its own routes.
type Module interface {
	Register(rg *gin.RouterGroup)
}

// Registry collects feature modules and mounts them under /api in one
// RegisterAll pass, after any group-level middleware.
type Registry struct {
	Engine *gin.Engine
	API    *gin.RouterGroup

	groupMW []gin.HandlerFunc
	modules []Module
}

func NewRegistry(engine *gin.Engine) *Registry {
	return &Registry{Engine: engine, API: engine.Group("/api")}
}

// Use queues middleware that applies to the whole /api group.
func (r *Registry) Use(mw ...gin.HandlerFunc) {
	r.groupMW = append(r.groupMW, mw...)
}

func (r *Registry) Add(mods ...Module) {
	r.modules = append(r.modules, mods...)
}

func (r *Registry) RegisterAll() {
	if len(r.groupMW) > 0 {
		r.API.Use(r.groupMW...)
	}
	for _, m := range r.modules {
		m.Register(r.API)
	}
}
