package main

import (
	"fmt"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/jakecoffman/cp"

	"github.com/hvail/terminal-echo/arena"
	"github.com/hvail/terminal-echo/effect"
	"github.com/hvail/terminal-echo/render"
)

func (g *Game) drawIntro(screen *ebiten.Image) {
	w := g.cfg.Screen.Width
	h := g.cfg.Screen.Height
	vector.DrawFilledRect(screen, 0, 0, float32(w), float32(h), render.Background, false)
	render.Grid(screen, float64(g.frames)*0.2, render.GridLine)
	render.Text(screen, "ECHO OF TERMINAL 7", w/2, h/2-60, render.Cyan, text.AlignCenter)
	render.Text(screen, "STATION SYSTEMS OFFLINE. RESTORE POWER, DECODE THE LOGS, STABILIZE THE DRIVE.", w/2, h/2-10, render.White, text.AlignCenter)
	if (g.frames/30)%2 == 0 {
		render.Text(screen, "PRESS ANY KEY", w/2, h/2+50, render.Dim, text.AlignCenter)
	}
}

func (g *Game) drawPlayer(screen *ebiten.Image) {
	tr := g.world.GetTransform(g.player)
	ctrl := g.world.GetPlayerController(g.player)
	hp := g.world.GetHealth(g.player)
	if tr == nil || ctrl == nil {
		return
	}
	if hp != nil && hp.IFrames > 0 && (hp.IFrames/5)%2 == 0 {
		return // blink while invulnerable
	}
	center := ctrl.Center(tr.Pos)
	render.GlowCircle(screen, center.X, center.Y, 12, render.Cyan)
	vector.DrawFilledCircle(screen, float32(center.X), float32(center.Y), 6, render.White, false)

	aim := cp.Vector{X: g.cursorX, Y: g.cursorY}.Sub(center)
	if aim.Length() > 0 {
		tip := center.Add(aim.Normalize().Mult(20))
		vector.StrokeLine(screen, float32(center.X), float32(center.Y), float32(tip.X), float32(tip.Y), 4, render.Cyan, false)
	}
}

func (g *Game) drawArena(screen *ebiten.Image) {
	w := g.cfg.Screen.Width
	h := g.cfg.Screen.Height
	vector.DrawFilledRect(screen, 0, 0, float32(w), float32(h), color.RGBA{20, 0, 0, 255}, false)

	t := float64(g.frames) * 3
	for i := 0.0; i < w+100; i += 100 {
		x := math.Mod(i+t, w+100) - 50
		vector.StrokeLine(screen, float32(x), 0, float32(x), float32(h), 1, color.RGBA{50, 0, 0, 255}, false)
	}

	for _, e := range g.arena.Units() {
		tr := g.world.GetTransform(e)
		unit := g.world.GetSwarmUnit(e)
		hp := g.world.GetHealth(e)
		if tr == nil || unit == nil {
			continue
		}
		clr := render.Magenta
		if hp != nil && hp.Current <= hp.Max/2 {
			clr = render.Orange
		}
		render.GlowCircle(screen, tr.Pos.X, tr.Pos.Y, unit.Radius, clr)
		vector.StrokeCircle(screen, float32(tr.Pos.X), float32(tr.Pos.Y), float32(unit.Radius+4+2*math.Sin(unit.Phase)), 1, render.WithAlpha(clr, 120), false)
	}

	for _, e := range g.arena.Projectiles() {
		tr := g.world.GetTransform(e)
		pr := g.world.GetProjectile(e)
		if tr == nil || pr == nil || !pr.Active {
			continue
		}
		render.GlowCircle(screen, tr.Pos.X, tr.Pos.Y, pr.Radius, render.Yellow)
	}

	g.drawPlayer(screen)

	switch g.arena.Phase() {
	case arena.PhaseIntro:
		render.Text(screen, "WARNING: SPECIMEN BREACH", w/2, h/2-50, render.Red, text.AlignCenter)
		render.Text(screen, "ELIMINATE THE HERD", w/2, h/2, render.White, text.AlignCenter)
		secs := (g.arena.IntroTicksLeft() + 59) / 60
		render.Text(screen, fmt.Sprintf("%d", secs), w/2, h/2+50, render.Yellow, text.AlignCenter)
	case arena.PhaseFight:
		hp := g.world.GetHealth(g.player)
		if hp != nil {
			clr := render.Green
			if hp.Current <= 2 {
				clr = render.Red
			}
			render.Text(screen, fmt.Sprintf("INTEGRITY: %d%%", hp.Current*20), 100, h-30, clr, text.AlignCenter)
		}
		render.Text(screen, fmt.Sprintf("ENTITIES: %d", len(g.arena.Units())), w-100, h-30, render.Magenta, text.AlignCenter)
	case arena.PhaseGameOver:
		vector.DrawFilledRect(screen, 0, 0, float32(w), float32(h), color.RGBA{0, 0, 0, 150}, false)
		render.Text(screen, "STATUS: DECEASED", w/2, h/2, render.Red, text.AlignCenter)
		render.Text(screen, "PRESS ESC TO RETRY", w/2, h/2+40, render.White, text.AlignCenter)
	case arena.PhaseWin:
		render.Text(screen, "HERD ELIMINATED", w/2, h/2, render.Green, text.AlignCenter)
		render.Text(screen, "TERMINAL SECURED. MISSION COMPLETE.", w/2, h/2+40, render.White, text.AlignCenter)
	}
}

func (g *Game) drawParticles(screen *ebiten.Image) {
	for _, p := range g.fx.Particles() {
		vector.DrawFilledCircle(screen, float32(p.Pos.X), float32(p.Pos.Y), float32(p.Size), particleColor(p.Tag), false)
	}
}

func particleColor(tag effect.Tag) color.RGBA {
	switch tag {
	case effect.TagRecoil:
		return render.Cyan
	case effect.TagPlayerHit, effect.TagUnitDeath, effect.TagError:
		return render.Red
	case effect.TagUnitHit:
		return render.Yellow
	case effect.TagResolve:
		return render.Green
	default:
		return render.White
	}
}
