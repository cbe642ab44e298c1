package host

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/spaceinvaders-go/invaders8080/internal/video"
)

// Update ticks the scheduler once per ebiten logical update (ebiten
// calls Update at a fixed logical rate independent of vsync, so the
// scheduler is driven at least once per display frame), and mirrors the
// current pressed/released state of the bound keys into the input ports.
func (g *Game) Update() error {
	if g.ctx != nil && g.ctx.Err() != nil {
		return ebiten.Termination
	}
	if ebiten.IsWindowBeingClosed() {
		return ebiten.Termination
	}

	g.applyKeyEdges()
	g.sched.Tick(time.Now())

	return nil
}

// Draw blits the latest decoded framebuffer via WritePixels/DrawImage.
func (g *Game) Draw(screen *ebiten.Image) {
	if g.img == nil {
		g.img = ebiten.NewImage(video.Width, video.Height)
	}
	g.img.WritePixels(g.fb.Pix)
	screen.DrawImage(g.img, nil)
}

// Layout reports the fixed 224x256 logical screen size; ebiten scales
// that to the actual window size set in Run.
func (g *Game) Layout(_, _ int) (int, int) {
	return video.Width, video.Height
}
