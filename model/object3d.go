package model

import (
	vm "local/vector_math"
)

// Object3D is a node of the scene tree. Every node owns its local transform, which is mutated in
// place so previously composed transforms are kept.
type Object3D struct {
	Name      string
	ModelView vm.Mat4

	parent   *Object3D
	children []*Object3D
}

func NewObject3D(name string) *Object3D {
	return &Object3D{
		Name:      name,
		ModelView: vm.NewMat4(),
	}
}

func (o *Object3D) Parent() *Object3D {
	return o.parent
}

func (o *Object3D) Children() []*Object3D {
	return o.children
}

// Traverse calls fn for every descendant of o, depth first and in insertion order. o itself is not visited.
func (o *Object3D) Traverse(fn func(child *Object3D)) {
	for _, child := range o.children {
		fn(child)
		child.Traverse(fn)
	}
}

func (o *Object3D) Has(child *Object3D) bool {
	for _, c := range o.children {
		if c == child {
			return true
		}
	}
	return false
}

// Add attaches child to o, detaching it from its previous parent first. Adding a node to itself or to
// one of its own descendants is ignored.
func (o *Object3D) Add(child *Object3D) {
	if child == o || child.isAncestorOf(o) {
		return
	}
	child.RemoveSelf(true)
	o.children = append(o.children, child)
	child.parent = o
}

func (o *Object3D) isAncestorOf(n *Object3D) bool {
	for p := n.parent; p != nil; p = p.parent {
		if p == o {
			return true
		}
	}
	return false
}

func (o *Object3D) Remove(child *Object3D) bool {
	for i, c := range o.children {
		if c == child {
			o.children = append(o.children[:i], o.children[i+1:]...)
			child.parent = nil
			return true
		}
	}
	return false
}

// RemoveSelf detaches o from its parent. With notifyParent set the parent drops o from its children,
// otherwise only the back reference is cleared. Returns false if o had no parent.
func (o *Object3D) RemoveSelf(notifyParent bool) bool {
	if o.parent == nil || !o.parent.Has(o) {
		return false
	}
	if notifyParent {
		return o.parent.Remove(o)
	}
	o.parent = nil
	return true
}

func (o *Object3D) TranslateByVec(by vm.Vec3) *Object3D {
	o.ModelView.Translate(by)
	return o
}

func (o *Object3D) TranslateByCoords(x float32, y float32, z float32) *Object3D {
	o.ModelView.TranslateByValues(x, y, z)
	return o
}

func (o *Object3D) Rotate(rad float64, axis vm.Vec3) *Object3D {
	o.ModelView.Rotate(rad, axis)
	return o
}

func (o *Object3D) Scale(by vm.Vec3) *Object3D {
	o.ModelView.Scale(by)
	return o
}

// SetRotation replaces the rotation of the local transform, keeping its translation.
func (o *Object3D) SetRotation(q vm.Quat) *Object3D {
	o.ModelView.SetRotationFromQuat(q)
	return o
}

// Position reads the translation part of the world transform.
func (o *Object3D) Position() vm.Vec3 {
	w := o.WorldMatrix()
	var p vm.Vec3
	p.CopyFromMat4Pos(&w)
	return p
}

// WorldMatrix composes the local transforms from the root down to o.
func (o *Object3D) WorldMatrix() vm.Mat4 {
	if o.parent == nil {
		return o.ModelView
	}
	w := o.parent.WorldMatrix()
	w.Mul(&o.ModelView)
	return w
}
