//go:build !tinygo && cgo

package hal

import (
	"image/color"
	"tuner/internal/buildinfo"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const (
	ledScale = 14 // window pixels per LED
	ledCols  = 40
	ledRows  = 8
)

// RunWindow opens a desktop window that renders the LED matrix model and
// maps keys to simulated input. It blocks until the window closes.
func RunWindow(newApp func(HAL) func() error) error {
	h := New().(*hostHAL)
	step := newApp(h)

	g := &hostGame{h: h, step: step}
	ebiten.SetWindowTitle("Tuner Display (" + buildinfo.Short() + ")")
	ebiten.SetWindowSize(ledCols*ledScale, ledRows*ledScale+2*ledScale)
	ebiten.SetTPS(60)
	return ebiten.RunGame(g)
}

type hostGame struct {
	h    *hostHAL
	step func() error
	ram  [40]byte
	tick uint64
}

func (g *hostGame) Update() error {
	g.tick++
	pollKeys(g.h)
	if g.step != nil {
		if err := g.step(); err != nil {
			return err
		}
	}
	return nil
}

func (g *hostGame) Draw(screen *ebiten.Image) {
	power, blink, brightness := g.h.bus.snapshot(&g.ram)

	screen.Fill(color.RGBA{0x10, 0x10, 0x10, 0xFF})
	lit := color.RGBA{0xFF, 0x40 + brightness*8, 0x00, 0xFF}
	dark := color.RGBA{0x28, 0x20, 0x18, 0xFF}

	on := power == 0x03
	if on && blink != 0 {
		// Blink periods in 60 TPS frames: 2 Hz, 1 Hz, 0.5 Hz.
		period := uint64(30) << (blink - 1)
		if (g.tick/period)%2 == 1 {
			on = false
		}
	}

	for i, b := range g.ram {
		module := i / 8
		row := i % 8
		for bit := 0; bit < 8; bit++ {
			c := dark
			if on && b&(0x80>>bit) != 0 {
				c = lit
			}
			x := float32((module*8 + bit) * ledScale)
			y := float32(row * ledScale)
			vector.DrawFilledCircle(screen, x+ledScale/2, y+ledScale/2, ledScale/2-1, c, true)
		}
	}

	if g.h.led.lit() {
		vector.DrawFilledRect(screen, 4, float32(ledRows*ledScale)+4, 8, 8,
			color.RGBA{0x00, 0xC0, 0x00, 0xFF}, false)
	}
}

func (g *hostGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return ledCols * ledScale, ledRows*ledScale + 2*ledScale
}
