package collision

import (
	"github.com/zeusync/collide/internal/core/render"
)

// DebugDrawAll draws every collidable whose shape strategy implements
// DebugDrawer. Objects with unregistered kinds are skipped silently; drawing
// never changes collision state.
func DebugDrawAll(registry *Registry, objs []Collidable, surface render.Surface) {
	for _, obj := range objs {
		shape, ok := registry.Shape(obj.ShapeKind())
		if !ok || !shape.Accepts(obj) {
			continue
		}
		if drawer, ok := shape.(DebugDrawer); ok {
			drawer.DebugDraw(obj, surface)
		}
	}
}
