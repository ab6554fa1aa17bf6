package main

import (
	"fmt"
	"image/color"

	"github.com/ebitenui/ebitenui"
	imageui "github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"

	"github.com/milk9111/arena/encounter"
)

const maxShownRecords = 8

var (
	panelColor = color.NRGBA{R: 0x00, G: 0x00, B: 0x00, A: 200}
	buttonIdle = color.NRGBA{R: 0x33, G: 0x33, B: 0x33, A: 255}
	textColor  = color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	latestText = color.NRGBA{R: 0xff, G: 0xd5, B: 0x4f, A: 0xff}
)

type uiButton struct {
	label   string
	onClick func()
}

type uiLine struct {
	text string
	clr  color.Color
}

// newPanelUI builds a centered panel of text lines and buttons. Buttons use
// colored nine-slices so no theme assets are needed.
func newPanelUI(width, height int, title string, lines []uiLine, buttons []uiButton) *ebitenui.UI {
	var face ebtext.Face = ebtext.NewGoXFace(basicfont.Face7x13)
	center := widget.WidgetOpts.LayoutData(widget.RowLayoutData{Position: widget.RowLayoutPositionCenter})

	panel := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(imageui.NewNineSliceColor(panelColor)),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Spacing(10),
			widget.RowLayoutOpts.Padding(&widget.Insets{Top: 20, Bottom: 20, Left: 30, Right: 30}),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(width/2, height/2),
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{HorizontalPosition: widget.AnchorLayoutPositionCenter, VerticalPosition: widget.AnchorLayoutPositionCenter}),
		),
	)

	panel.AddChild(widget.NewText(
		widget.TextOpts.Text(title, &face, textColor),
		widget.TextOpts.WidgetOpts(center),
	))
	for _, l := range lines {
		panel.AddChild(widget.NewText(
			widget.TextOpts.Text(l.text, &face, l.clr),
			widget.TextOpts.WidgetOpts(center),
		))
	}

	btnImg := imageui.NewNineSliceColor(buttonIdle)
	for _, b := range buttons {
		onClick := b.onClick
		panel.AddChild(widget.NewButton(
			widget.ButtonOpts.Image(&widget.ButtonImage{Idle: btnImg, Pressed: btnImg}),
			widget.ButtonOpts.Text(b.label, &face, &widget.ButtonTextColor{Idle: textColor}),
			widget.ButtonOpts.WidgetOpts(center),
			widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
				onClick()
			}),
		))
	}

	root := widget.NewContainer(widget.ContainerOpts.Layout(widget.NewAnchorLayout()))
	root.AddChild(panel)
	return &ebitenui.UI{Container: root}
}

func NewPauseUI(g *Game) *ebitenui.UI {
	w, h := g.Layout(0, 0)
	return newPanelUI(w, h, "Paused", nil, []uiButton{
		{label: "Resume", onClick: g.resume},
	})
}

// NewRunOverUI lists the best runs so far, the one just finished marked.
func NewRunOverUI(g *Game, r encounter.Record) *ebitenui.UI {
	w, h := g.Layout(0, 0)
	title := fmt.Sprintf("Run over: reached wave %d", r.Wave)

	var lines []uiLine
	for i, ranked := range g.records.Sorted() {
		if i >= maxShownRecords {
			break
		}
		l := uiLine{text: fmt.Sprintf("%d. wave %d  %s", i+1, ranked.Wave, ranked.At.Format("15:04:05")), clr: textColor}
		if ranked.Latest {
			l.text += "  (this run)"
			l.clr = latestText
		}
		lines = append(lines, l)
	}
	return newPanelUI(w, h, title, lines, []uiButton{
		{label: "Restart (R)", onClick: g.reset},
	})
}
