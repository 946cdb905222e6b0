// internal/render/renderer.go
package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"go-arena-survival/internal/component"
	"go-arena-survival/internal/config"
	"go-arena-survival/internal/entity"
	gfx "go-arena-survival/pkg/render"
	"go-arena-survival/pkg/utils"
)

// Renderer draws the arena. It only reads the world.
type Renderer struct {
	camera gfx.Camera
}

func NewRenderer(camera gfx.Camera) *Renderer {
	return &Renderer{camera: camera}
}

func (r *Renderer) Camera() gfx.Camera {
	return r.camera
}

// Draw paints the world back to front: ground effects, spawners,
// particles, enemies, the player and finally the arena border.
func (r *Renderer) Draw(screen *ebiten.Image, world *entity.World) {
	r.drawAreaEffects(screen, world.AreaEffects)
	r.drawPlayerLife(screen, world.Player)
	r.drawSpawners(screen, world.Spawners)
	r.drawParticles(screen, world.Particles)
	r.drawEntities(screen, world.Entities)
	r.drawPlayer(screen, world.Player)
	r.drawBounds(screen, world.Bounds)
}

func (r *Renderer) circle(screen *ebiten.Image, center utils.Vec2, radius float64, clr color.Color) {
	x, y := r.camera.ToScreen(center)
	vector.DrawFilledCircle(screen, x, y, r.camera.Length(radius), clr, true)
}

func (r *Renderer) ring(screen *ebiten.Image, center utils.Vec2, radius float64, width float32, clr color.Color) {
	x, y := r.camera.ToScreen(center)
	vector.StrokeCircle(screen, x, y, r.camera.Length(radius), width, clr, true)
}

func (r *Renderer) drawAreaEffects(screen *ebiten.Image, effects []*component.AreaEffect) {
	for _, effect := range effects {
		switch effect.Effect.(type) {
		case component.Heal:
			fill := gfx.FromRGBA(config.HealColor)
			fill.A *= float32(effect.Lifetime.HpFrac())
			r.circle(screen, effect.Position, effect.Radius, fill.ToRGBA())
		}
	}
}

// drawPlayerLife shows health as a disc that shrinks inside the chain circle.
func (r *Renderer) drawPlayerLife(screen *ebiten.Image, player *component.Player) {
	radius := player.ChainLength * player.Health.HpFrac()
	if radius <= 0 {
		return
	}
	life := gfx.FromRGBA(config.PlayerLifeColor).WithAlpha(0.25)
	r.circle(screen, player.Body.Position, radius, life.ToRGBA())
}

func (r *Renderer) drawSpawners(screen *ebiten.Image, spawners []*component.Spawner) {
	for _, s := range spawners {
		r.ring(screen, s.Position, s.SpawnGroup.Radius, config.ThinStrokeWidth, config.SpawnerColor)
		r.circle(screen, s.Position, s.Progress()*s.SpawnGroup.Radius, config.SpawnerColor)
	}
}

func (r *Renderer) drawParticles(screen *ebiten.Image, particles []*component.Particle) {
	for _, p := range particles {
		r.circle(screen, p.RigidBody.Position, p.RigidBody.Collider.Radius, p.Color.ToRGBA())
	}
}

// drawEntities draws each enemy as an outline filled in proportion to its
// health. Projectiles fill by remaining lifetime instead.
func (r *Renderer) drawEntities(screen *ebiten.Image, entities []*entity.Entity) {
	for _, e := range entities {
		body := e.RigidBody
		frac := e.Health.HpFrac()
		if projectile, ok := e.EnemyType().(*component.Projectile); ok {
			frac = projectile.Lifetime.HpFrac()
		}
		r.ring(screen, body.Position, body.Collider.Radius, config.ThinStrokeWidth, e.Color.ToRGBA())
		if frac > 0 {
			r.circle(screen, body.Position, body.Collider.Radius*frac, e.Color.ToRGBA())
		}
	}
}

func (r *Renderer) drawPlayer(screen *ebiten.Image, player *component.Player) {
	r.ring(screen, player.Body.Position, player.ChainLength, config.ThinStrokeWidth, config.PlayerBorderColor)

	bx, by := r.camera.ToScreen(player.Body.Position)
	hx, hy := r.camera.ToScreen(player.Head.Position)
	vector.StrokeLine(screen, bx, by, hx, hy, config.ThinStrokeWidth, config.PlayerBorderColor, true)

	clr := gfx.FromRGBA(config.PlayerColor)
	if !player.IsAlive() {
		clr = gfx.DarkenColor(clr)
	}
	r.circle(screen, player.Body.Position, player.Body.Collider.Radius, clr.ToRGBA())
	r.circle(screen, player.Head.Position, player.Head.Collider.Radius, clr.ToRGBA())
}

func (r *Renderer) drawBounds(screen *ebiten.Image, bounds component.Bounds) {
	x, y := r.camera.ToScreen(bounds.Min)
	size := bounds.Max.Sub(bounds.Min)
	vector.StrokeRect(screen, x, y, r.camera.Length(size.X), r.camera.Length(size.Y), config.StrokeWidth, config.BorderColor, true)
}
