package router_test

import (
	"fmt"

	"github.com/BrandonKowalski/rotini/pkg/rotini"
	"github.com/BrandonKowalski/rotini/pkg/rotini/display"
	"github.com/BrandonKowalski/rotini/pkg/rotini/input"
	"github.com/BrandonKowalski/rotini/pkg/rotini/router"
)

func slots(names ...string) []rotini.Slot {
	out := make([]rotini.Slot, len(names))
	for i, n := range names {
		out[i] = rotini.NewStatic("#+#" + n + "#+#")
	}
	return out
}

// Example demonstrates pushing into a settings menu and returning to the
// main menu with the selection restored.
func Example() {
	geom := display.Geometry{Cols: 20, Rows: 4}
	d := display.NewMemory(geom)

	main := rotini.NewMainMenu(slots("Play", "Library", "Settings"), nil, rotini.MenuOptions{})
	settings := rotini.NewSubMenu(slots("Wi-Fi", "Sound"), nil, rotini.MenuOptions{})

	ctrl, err := rotini.NewController(d, geom, main)
	if err != nil {
		fmt.Println(err)
		return
	}

	r := router.New(ctrl).Register("settings", settings)

	// Rotate down to "Settings", then open the submenu.
	_ = ctrl.Handle(input.RotateRight)
	_ = ctrl.Handle(input.RotateRight)
	_ = r.Go("settings")
	fmt.Printf("in %s menu, index %d\n", ctrl.CurrentMenu().Kind(), ctrl.Index())

	// Back restores the main menu selection.
	_ = r.Back()
	fmt.Printf("back in %s menu, index %d\n", ctrl.CurrentMenu().Kind(), ctrl.Index())

	// Output:
	// in sub menu, index 0
	// back in main menu, index 2
}
