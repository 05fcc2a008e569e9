// Package render draws bracket trees into PNG images: mirrored left/right
// halves meeting at the final, connector lines per matchup, team logos at
// every slot, and red connectors for picks that turned out wrong.
package render

import (
	"fmt"
	"image"
	"image/color"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/fogleman/gg"
	"github.com/google/uuid"
	xdraw "golang.org/x/image/draw"

	"github.com/omarshaarawi/bracketpool/internal/bracket"
	"github.com/omarshaarawi/bracketpool/internal/models"
)

const (
	imgWidth  = 1600
	imgHeight = 600

	logoSize     = 50
	championSize = 150
)

var (
	lineGray = color.RGBA{R: 128, G: 128, B: 128, A: 255}
	lineRed  = color.RGBA{R: 220, G: 40, B: 40, A: 255}
)

// Renderer writes bracket images into a results directory, pulling team
// logos from a logo directory. Logos are cached per size across renders.
type Renderer struct {
	logosDir   string
	resultsDir string
	logos      map[string]image.Image
}

func New(logosDir, resultsDir string) *Renderer {
	return &Renderer{
		logosDir:   logosDir,
		resultsDir: resultsDir,
		logos:      make(map[string]image.Image),
	}
}

func (r *Renderer) ResultsDir() string { return r.resultsDir }

// AvailableTeams lists the team names with a logo on disk, derived from the
// PNG filenames (underscores read as spaces).
func (r *Renderer) AvailableTeams() ([]string, error) {
	entries, err := os.ReadDir(r.logosDir)
	if err != nil {
		return nil, fmt.Errorf("error reading logo directory: %w", err)
	}
	var names []string
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".png") {
			continue
		}
		stem := strings.TrimSuffix(e.Name(), ".png")
		names = append(names, strings.ReplaceAll(stem, "_", " "))
	}
	sort.Strings(names)
	return names, nil
}

// Render draws the bracket, decided or not, and writes <filename> under the
// results directory. It returns the written path.
func (r *Renderer) Render(b *bracket.Bracket, filename string) (string, error) {
	return r.RenderScored(b, filename, nil)
}

// RenderScored draws the bracket with the connectors named in wrong
// coloured red, marking picks that disagree with the actual outcome.
func (r *Renderer) RenderScored(b *bracket.Bracket, filename string, wrong map[uuid.UUID]models.Side) (string, error) {
	dc := r.draw(b, wrong)

	if err := os.MkdirAll(r.resultsDir, 0o755); err != nil {
		return "", fmt.Errorf("error creating results directory: %w", err)
	}
	path := filepath.Join(r.resultsDir, filename)
	if err := dc.SavePNG(path); err != nil {
		return "", fmt.Errorf("error saving bracket image: %w", err)
	}
	slog.Info("Bracket image written", "bracket", b.Label(), "path", path)
	return path, nil
}

type pass struct {
	r     *Renderer
	dc    *gg.Context
	dx    float64
	wrong map[uuid.UUID]models.Side
}

func (r *Renderer) draw(b *bracket.Bracket, wrong map[uuid.UUID]models.Side) *gg.Context {
	dc := gg.NewContext(imgWidth, imgHeight)
	dc.SetRGB(1, 1, 1)
	dc.Clear()

	// One column per round on each side plus the centre champion column.
	cols := b.NumRounds() + 1
	dx := float64(imgWidth) / float64(2*cols)
	baseDY := float64(imgHeight) / (2 * harmonic(b.NumRounds()))

	p := &pass{r: r, dc: dc, dx: dx, wrong: wrong}

	root := b.Root()
	cx, cy := float64(imgWidth)/2, float64(imgHeight)/2
	topCol, bottomCol := p.branchColors(root)
	p.segment(cx, cy, cx-dx, cy, topCol)
	p.segment(cx, cy, cx+dx, cy, bottomCol)
	p.drawSlot(root.Top(), cx-dx, cy, baseDY, -1)
	p.drawSlot(root.Bottom(), cx+dx, cy, baseDY, +1)
	if winner, err := root.Winner(); err == nil {
		p.drawTeam(winner, cx, cy, championSize)
	}

	return dc
}

// drawSlot renders the subtree hanging off one slot, anchored at (x, y) and
// growing in direction dir (-1 leftwards, +1 rightwards). dy is the vertical
// spread to this slot's children; it halves each level down.
func (p *pass) drawSlot(s bracket.Slot, x, y, dy float64, dir float64) {
	if s.IsLeaf() {
		p.drawTeam(*s.Team, x, y, logoSize)
		return
	}

	n := s.Node
	topCol, bottomCol := p.branchColors(n)
	center := topCol
	if topCol != bottomCol {
		center = lineRed
	}

	// Three-segment connector: half a column out, then up and down to the
	// two feeding matchups.
	midX := x + dir*p.dx/2
	p.segment(x, y, midX, y, center)
	for _, branch := range []struct {
		yOff float64
		col  color.RGBA
	}{
		{y - dy, topCol},
		{y + dy, bottomCol},
	} {
		p.segment(midX, y, midX, branch.yOff, branch.col)
		p.segment(midX, branch.yOff, x+dir*p.dx, branch.yOff, branch.col)
	}

	p.drawSlot(n.Top(), x+dir*p.dx, y-dy, dy/2, dir)
	p.drawSlot(n.Bottom(), x+dir*p.dx, y+dy, dy/2, dir)

	if winner, err := n.Winner(); err == nil {
		p.drawTeam(winner, x, y, logoSize)
	}
}

func (p *pass) branchColors(n *bracket.Node) (top, bottom color.RGBA) {
	top, bottom = lineGray, lineGray
	if side, ok := p.wrong[n.ID()]; ok {
		if side == models.SideTop {
			top = lineRed
		} else {
			bottom = lineRed
		}
	}
	return top, bottom
}

func (p *pass) segment(x1, y1, x2, y2 float64, col color.RGBA) {
	p.dc.SetColor(col)
	p.dc.SetLineWidth(1)
	p.dc.DrawLine(x1, y1, x2, y2)
	p.dc.Stroke()
}

func (p *pass) drawTeam(t models.Team, x, y float64, size int) {
	img, err := p.r.logo(t, size)
	if err != nil {
		slog.Warn("Logo unavailable, drawing team name", "team", t.Name, "error", err)
		p.dc.SetRGB(0, 0, 0)
		p.dc.DrawStringAnchored(t.Name, x, y, 0.5, 0.5)
		return
	}
	p.dc.DrawImageAnchored(img, int(x), int(y), 0.5, 0.5)
}

func (r *Renderer) logo(t models.Team, size int) (image.Image, error) {
	key := fmt.Sprintf("%s|%d", t.LogoRef(), size)
	if img, ok := r.logos[key]; ok {
		return img, nil
	}

	src, err := gg.LoadPNG(filepath.Join(r.logosDir, t.LogoRef()))
	if err != nil {
		return nil, fmt.Errorf("error loading logo for %s: %w", t.Name, err)
	}
	dst := image.NewRGBA(image.Rect(0, 0, size, size))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), src, src.Bounds(), xdraw.Over, nil)

	r.logos[key] = dst
	return dst, nil
}

// harmonic is the partial harmonic sum 1 + 1/2 + ... + 1/n, which spaces the
// shrinking vertical spread of successive rounds into the image height.
func harmonic(n int) float64 {
	sum := 0.0
	for i := 1; i <= n; i++ {
		sum += 1 / float64(i)
	}
	return sum
}
