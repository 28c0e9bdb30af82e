package ui

import (
	"fmt"
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"ShapeBoard/internal/state"
)

var swatchColors = []color.Color{
	color.Black,
	color.NRGBA{R: 255, A: 255},
	color.NRGBA{G: 255, A: 255},
	color.NRGBA{B: 255, A: 255},
	color.NRGBA{R: 255, G: 255, A: 255},
}

type colorSwatch struct {
	widget.BaseWidget
	Color    color.Color
	OnTapped func(color.Color)
}

func newColorSwatch(c color.Color, tapped func(color.Color)) *colorSwatch {
	s := &colorSwatch{Color: c, OnTapped: tapped}
	s.ExtendBaseWidget(s)
	return s
}

func (s *colorSwatch) CreateRenderer() fyne.WidgetRenderer {
	rect := canvas.NewRectangle(s.Color)
	rect.SetMinSize(fyne.NewSize(24, 24))

	border := canvas.NewRectangle(color.Transparent)
	border.StrokeColor = color.Gray{Y: 150}
	border.StrokeWidth = 1

	return widget.NewSimpleRenderer(container.NewStack(rect, border))
}

func (s *colorSwatch) Tapped(_ *fyne.PointEvent) {
	if s.OnTapped != nil {
		s.OnTapped(s.Color)
	}
}

// NewToolbar builds the colour, width, shape and file controls.
func NewToolbar(d *Desktop) fyne.CanvasObject {
	colorEntry := widget.NewEntry()
	colorEntry.SetText(d.editor.Color())
	setColor := func(c string) {
		if err := d.editor.SetColor(c); err != nil {
			d.SetStatus(err.Error())
		}
		colorEntry.SetText(d.editor.Color())
	}
	colorEntry.OnSubmitted = setColor

	swatches := container.NewHBox()
	for _, c := range swatchColors {
		swatches.Add(newColorSwatch(c, func(c color.Color) {
			setColor(state.ColorString(c))
		}))
	}

	widthLabel := widget.NewLabel(fmt.Sprintf("%.0f", d.editor.LineWidth()))
	widthSlider := widget.NewSlider(1, 50)
	widthSlider.SetValue(d.editor.LineWidth())
	widthSlider.OnChanged = func(v float64) {
		if err := d.editor.SetLineWidth(v); err != nil {
			d.SetStatus(err.Error())
			return
		}
		widthLabel.SetText(fmt.Sprintf("%.0f", v))
	}
	sliderContainer := container.New(layout.NewGridWrapLayout(fyne.NewSize(120, 35)), widthSlider)

	add := func(name string, fn func() (state.Shape, error)) *widget.Button {
		return widget.NewButton(name, func() {
			if _, err := fn(); err != nil {
				d.SetStatus(err.Error())
			}
		})
	}

	actions := widget.NewToolbar(
		widget.NewToolbarAction(theme.ContentUndoIcon(), d.Undo),
		widget.NewToolbarAction(theme.DocumentSaveIcon(), d.SaveImage),
		widget.NewToolbarAction(theme.DocumentPrintIcon(), d.SavePDF),
		widget.NewToolbarAction(theme.ViewRestoreIcon(), d.board.ResetView),
	)

	grid := widget.NewCheck("Grid", d.board.ToggleGrid)
	grid.SetChecked(true)

	return container.NewHBox(
		swatches,
		container.New(layout.NewGridWrapLayout(fyne.NewSize(90, 35)), colorEntry),
		widget.NewSeparator(),
		widget.NewLabel("Width:"),
		sliderContainer,
		widthLabel,
		widget.NewSeparator(),
		add("Rectangle", d.editor.AddRect),
		add("Circle", d.editor.AddCircle),
		add("Line", d.editor.AddLine),
		widget.NewSeparator(),
		actions,
		grid,
		layout.NewSpacer(),
	)
}
