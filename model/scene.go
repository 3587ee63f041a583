package model

import (
	"fmt"
	"log"
)

// Scene keeps the models that are drawn each frame. The models are attached to a common root node so
// parent transforms carry over to their children.
type Scene struct {
	Root   *Object3D
	models []*Model
}

func NewScene() *Scene {
	return &Scene{Root: NewObject3D("root")}
}

func (s *Scene) Models() []*Model {
	return s.models
}

func (s *Scene) FindInScene(name string) (*Model, error) {
	for i, v := range s.models {
		if v.Name == name {
			return s.models[i], nil
		}
	}
	return nil, fmt.Errorf("model '%s' not found", name)
}

// AddToScene registers the model and attaches it to parent, or to the root if parent is nil.
func (s *Scene) AddToScene(m *Model, parent *Object3D) {
	if parent == nil {
		parent = s.Root
	}
	parent.Add(m.Object3D)
	s.models = append(s.models, m)
}

// RemoveFromScene drops the model and detaches its node. Registered models below the node leave the
// scene with it.
func (s *Scene) RemoveFromScene(m *Model) {
	if !s.contains(m) {
		log.Printf("Model '%s' is not part of the scene, nothing to remove.", m.Name)
		return
	}
	subtree := map[*Object3D]bool{m.Object3D: true}
	m.Traverse(func(child *Object3D) {
		subtree[child] = true
	})
	m.RemoveSelf(true)

	kept := s.models[:0]
	for _, v := range s.models {
		if !subtree[v.Object3D] {
			kept = append(kept, v)
		}
	}
	for i := len(kept); i < len(s.models); i++ {
		s.models[i] = nil
	}
	s.models = kept
}

func (s *Scene) contains(m *Model) bool {
	for _, v := range s.models {
		if v == m {
			return true
		}
	}
	return false
}

func (s *Scene) ClearScene() {
	for len(s.models) > 0 {
		s.RemoveFromScene(s.models[0])
	}
}

// Traverse visits every registered model reachable from the root in scene tree order.
func (s *Scene) Traverse(fn func(m *Model)) {
	byNode := make(map[*Object3D]*Model, len(s.models))
	for _, m := range s.models {
		byNode[m.Object3D] = m
	}
	s.Root.Traverse(func(child *Object3D) {
		if m, ok := byNode[child]; ok {
			fn(m)
		}
	})
}

// DrawCall pairs a model with the uniforms it is drawn with.
type DrawCall struct {
	Model *Model
	Ubo   UniformBufferObject
	Ctx   ContextUniformBufferObject
}

// DrawCalls updates the camera and sequences one draw call per model. The matrices are handed over
// unmodified, the backend only uploads their flat storage.
func (s *Scene) DrawCalls(cam *Camera) ([]DrawCall, error) {
	if err := cam.Update(); err != nil {
		return nil, err
	}
	calls := make([]DrawCall, 0, len(s.models))
	s.Traverse(func(m *Model) {
		calls = append(calls, DrawCall{
			Model: m,
			Ubo: UniformBufferObject{
				Model:      m.WorldMatrix(),
				View:       cam.View,
				Projection: cam.Projection,
			},
			Ctx: ContextUniformBufferObject{ModelType: m.Type},
		})
	})
	return calls, nil
}
