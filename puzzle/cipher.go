package puzzle

import (
	"fmt"
	"image/color"
	"strings"
	"unicode"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/hvail/terminal-echo/input"
	"github.com/hvail/terminal-echo/render"
	"github.com/hvail/terminal-echo/state"
)

const (
	cipherAnswer   = "they are in the herd"
	cipherMaxInput = 30
)

// Cipher is the server room console: a ROT-3 log line the player decodes and
// types back.
type Cipher struct {
	width, height float64
	flags         *state.Flags

	entered  []rune
	resolved bool
	blink    int
}

// NewCipher builds the console for a screen of the given size.
func NewCipher(width, height float64, flags *state.Flags) *Cipher {
	return &Cipher{width: width, height: height, flags: flags}
}

// Resolved reports whether the log has been decoded.
func (c *Cipher) Resolved() bool {
	return c != nil && c.resolved
}

// HandleInput consumes one tick of input.
func (c *Cipher) HandleInput(in *input.State) {
	if c == nil || in == nil {
		return
	}
	c.blink = (c.blink + 1) % 60
	if c.resolved {
		return
	}
	switch {
	case in.Enter:
		if strings.ToLower(strings.TrimSpace(string(c.entered))) == cipherAnswer {
			c.resolved = true
			c.flags.Set(state.FlagSecretKnown)
		}
	case in.Backspace:
		if len(c.entered) > 0 {
			c.entered = c.entered[:len(c.entered)-1]
		}
	default:
		for _, r := range in.Typed {
			if len(c.entered) < cipherMaxInput && unicode.IsPrint(r) {
				c.entered = append(c.entered, r)
			}
		}
	}
}

// Draw renders the console.
func (c *Cipher) Draw(dst *ebiten.Image) {
	if c == nil {
		return
	}
	vector.DrawFilledRect(dst, 0, 0, float32(c.width), float32(c.height), color.RGBA{0, 10, 0, 255}, false)
	vector.DrawFilledRect(dst, 100, 80, float32(c.width-200), float32(c.height-160), color.RGBA{0, 20, 0, 255}, false)
	vector.StrokeRect(dst, 100, 80, float32(c.width-200), float32(c.height-160), 2, render.Green, false)

	lines := []string{
		"ADMIN_CONSOLE_V7.2",
		"LOG_ENCRYPTED [ROT-3]",
		`RAW: "Wkhb duh lq wkh khug."`,
		"",
	}
	y := 100.0
	for _, l := range lines {
		render.Text(dst, l, 120, y, render.Green, text.AlignStart)
		y += 30
	}

	cursor := ""
	if c.blink < 30 && !c.resolved {
		cursor = "_"
	}
	clr := color.Color(render.White)
	if c.resolved {
		clr = render.Cyan
	}
	render.Text(dst, fmt.Sprintf("> %s%s", string(c.entered), cursor), 120, y, clr, text.AlignStart)

	if c.resolved {
		render.Text(dst, "ACCESS GRANTED. SUBJECT: 'THE HERD' IS SENTIENT.", c.width/2, y+80, render.Green, text.AlignCenter)
	}
}
