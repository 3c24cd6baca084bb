package render

import (
	"image/color"
	"math"
	"strconv"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

// WheelRenderer рисует колесо один раз в отдельное изображение,
// а на каждом кадре только поворачивает его.
type WheelRenderer struct {
	radius     float64
	wedges     []int // награда каждого клина против часовой стрелки от указателя
	colors     *WheelColors
	fontFace   font.Face
	fillImg    *ebiten.Image
	fillVs     []ebiten.Vertex
	fillIs     []uint16
	strokeVs   []ebiten.Vertex
	strokeIs   []uint16
	wheelImage *ebiten.Image // Предрендеренное колесо
}

// NewWheelRenderer creates a renderer for a wheel with len(wedges) sectors.
func NewWheelRenderer(radius float64, wedges []int, fontFace font.Face, colors *WheelColors) *WheelRenderer {
	fillImg := ebiten.NewImage(1, 1)
	fillImg.Fill(color.White)

	size := int(math.Ceil(radius*2)) + 4
	r := &WheelRenderer{
		radius:     radius,
		wedges:     wedges,
		colors:     colors,
		fontFace:   fontFace,
		fillImg:    fillImg,
		fillVs:     make([]ebiten.Vertex, 0, 64),
		fillIs:     make([]uint16, 0, 96),
		strokeVs:   make([]ebiten.Vertex, 0, 64),
		strokeIs:   make([]uint16, 0, 96),
		wheelImage: ebiten.NewImage(size, size),
	}
	r.RenderWheelImage()
	return r
}

// RenderWheelImage перерисовывает изображение колеса.
func (r *WheelRenderer) RenderWheelImage() {
	r.wheelImage.Clear()
	c := float32(r.wheelImage.Bounds().Dx()) / 2
	step := 2 * math.Pi / float64(len(r.wedges))

	for k, reward := range r.wedges {
		// Клин k центрирован на угле k*step против часовой стрелки от верха.
		// На экране ось Y смотрит вниз, поэтому "против часовой" - минус.
		mid := -math.Pi/2 - float64(k)*step
		from, to := mid-step/2, mid+step/2

		path := vector.Path{}
		path.MoveTo(c, c)
		path.Arc(c, c, float32(r.radius), float32(from), float32(to), vector.Clockwise)
		path.Close()

		fill := r.colors.Sectors[k%len(r.colors.Sectors)]
		r.fillVs, r.fillIs = path.AppendVerticesAndIndicesForFilling(r.fillVs[:0], r.fillIs[:0])
		paintVertices(r.fillVs, fill)
		r.wheelImage.DrawTriangles(r.fillVs, r.fillIs, r.fillImg, &ebiten.DrawTrianglesOptions{
			AntiAlias: true,
		})

		r.strokeVs, r.strokeIs = path.AppendVerticesAndIndicesForStroke(r.strokeVs[:0], r.strokeIs[:0], &vector.StrokeOptions{
			Width:    r.colors.StrokeWidth,
			LineJoin: vector.LineJoinRound,
		})
		paintVertices(r.strokeVs, r.colors.Stroke)
		r.wheelImage.DrawTriangles(r.strokeVs, r.strokeIs, r.fillImg, &ebiten.DrawTrianglesOptions{
			AntiAlias: true,
		})

		r.drawLabel(strconv.Itoa(reward), c, mid, fill)
	}
}

func (r *WheelRenderer) drawLabel(label string, c float32, angle float64, fill color.RGBA) {
	x := float64(c) + r.radius*0.7*math.Cos(angle)
	y := float64(c) + r.radius*0.7*math.Sin(angle)

	textColor := r.colors.TextLight
	if (int(fill.R)+int(fill.G)+int(fill.B))/3 > 128 {
		textColor = r.colors.TextDark
	}
	bounds := text.BoundString(r.fontFace, label)
	text.Draw(r.wheelImage, label, r.fontFace, int(x)-bounds.Dx()/2, int(y)+bounds.Dy()/2, textColor)
}

// Draw рисует колесо с центром в (cx, cy), повернутое на rotationDeg.
// Положительный угол - против часовой стрелки.
func (r *WheelRenderer) Draw(screen *ebiten.Image, cx, cy, rotationDeg float64) {
	half := float64(r.wheelImage.Bounds().Dx()) / 2
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(-half, -half)
	op.GeoM.Rotate(-rotationDeg * math.Pi / 180)
	op.GeoM.Translate(cx, cy)
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(r.wheelImage, op)

	// Указатель над колесом
	p := float32(r.colors.PointerSize)
	top := float32(cy - r.radius)
	path := vector.Path{}
	path.MoveTo(float32(cx)-p/2, top-p)
	path.LineTo(float32(cx)+p/2, top-p)
	path.LineTo(float32(cx), top+p/2)
	path.Close()
	r.fillVs, r.fillIs = path.AppendVerticesAndIndicesForFilling(r.fillVs[:0], r.fillIs[:0])
	paintVertices(r.fillVs, r.colors.Pointer)
	screen.DrawTriangles(r.fillVs, r.fillIs, r.fillImg, &ebiten.DrawTrianglesOptions{AntiAlias: true})
}

func paintVertices(vs []ebiten.Vertex, c color.RGBA) {
	for i := range vs {
		vs[i].SrcX, vs[i].SrcY = 0, 0
		vs[i].ColorR = float32(c.R) / 255
		vs[i].ColorG = float32(c.G) / 255
		vs[i].ColorB = float32(c.B) / 255
		vs[i].ColorA = float32(c.A) / 255
	}
}
