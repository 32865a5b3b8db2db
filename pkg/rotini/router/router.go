// Package router layers a menu navigation stack on top of a rotini
// controller. The core keeps no history; this package remembers which menu
// was active and where its selection sat, so going back restores both.
package router

import (
	"fmt"

	"github.com/BrandonKowalski/rotini/pkg/rotini"
)

// Router manages menu navigation with explicit back support. Menus are
// registered under names, Go pushes the active menu onto the stack before
// switching, and Back pops it and restores the previous selection.
type Router struct {
	ctrl  *rotini.Controller
	menus map[string]rotini.Menu
	stack *Stack
}

// New creates a router over the given controller.
func New(ctrl *rotini.Controller) *Router {
	return &Router{
		ctrl:  ctrl,
		menus: make(map[string]rotini.Menu),
		stack: NewStack(),
	}
}

// Register adds a menu under a name.
func (r *Router) Register(name string, menu rotini.Menu) *Router {
	r.menus[name] = menu
	return r
}

// Go switches to a registered menu, pushing the active menu and its
// selection so Back can return to it.
func (r *Router) Go(name string) error {
	menu, ok := r.menus[name]
	if !ok {
		return fmt.Errorf("router: menu %q not registered", name)
	}
	r.stack.Push(r.ctrl.CurrentMenu(), r.ctrl.Index(), r.ctrl.Shift())
	return r.ctrl.Set(menu)
}

// Back pops the stack and reactivates the previous menu with its selection
// restored. With an empty stack it falls back to the main menu.
func (r *Router) Back() error {
	entry := r.stack.Pop()
	if entry == nil {
		return r.ctrl.Set(nil)
	}
	if err := r.ctrl.Set(entry.Menu); err != nil {
		return err
	}
	return r.ctrl.Restore(entry.Index, entry.Shift)
}

// Home clears the stack and reactivates the main menu.
func (r *Router) Home() error {
	r.stack.Clear()
	return r.ctrl.Set(nil)
}

// Stack returns the navigation stack, e.g. for depth checks in callbacks.
func (r *Router) Stack() *Stack {
	return r.stack
}
