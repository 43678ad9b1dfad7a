package window

import (
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/starlinks/internal/config"
	"github.com/vovakirdan/starlinks/internal/render"
)

// Texture is a target icon uploaded to the GPU.
type Texture struct {
	img *ebiten.Image
}

func (t *Texture) Ready() bool {
	return t != nil && t.img != nil
}

func (t *Texture) Size() (w, h int) {
	if !t.Ready() {
		return 0, 0
	}
	b := t.img.Bounds()
	return b.Dx(), b.Dy()
}

// LoadTextures loads the icon of every link from dir. Links whose icon is
// missing or unreadable are left out and draw their glyph instead.
func LoadTextures(dir string, links []config.Link, size int, logger *log.Logger) render.Textures {
	tex := render.Textures{}
	if dir == "" {
		return tex
	}

	for _, l := range links {
		if l.Icon == "" {
			continue
		}
		img, err := render.LoadIcon(filepath.Join(dir, l.Icon), size)
		if err != nil {
			logger.Debug("icon unavailable, using glyph", "tag", l.Tag, "error", err)
			continue
		}
		tex[l.Tag] = &Texture{img: ebiten.NewImageFromImage(img)}
	}
	logger.Debug("icons loaded", "count", len(tex), "dir", dir)
	return tex
}
