package tangent

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// DrawFPS prints the current FPS and TPS at (x, y) in canvas pixels.
// Cheap enough to call every frame; Run draws it automatically when
// RunConfig.ShowFPS is set.
func DrawFPS(screen *ebiten.Image, x, y int) {
	ebitenutil.DebugPrintAt(screen,
		fmt.Sprintf("FPS: %.1f  TPS: %.1f", ebiten.ActualFPS(), ebiten.ActualTPS()), x, y)
}
