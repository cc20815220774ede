// Package render turns parsed subtitle tracks into per-tick presentation
// instructions: it schedules the active cue set, merges style tables with
// inline overrides, animates fade/move properties and computes layout
// geometry for an arbitrary viewport. Painting is left to the caller.
package render

import (
	"github.com/Lakunake/web-subtitle-renderer/internal/subtitle"
)

// how an instruction is placed on the surface
type PlacementMode string

const (
	// element is pinned to an explicit point, with a percent translation
	// making that point the alignment anchor
	PlacementAnchored PlacementMode = "anchored"

	// element flows along viewport edges using scaled margins
	PlacementFlow PlacementMode = "flow"
)

type VerticalRow string

const (
	RowBottom VerticalRow = "bottom"
	RowMiddle VerticalRow = "middle"
	RowTop    VerticalRow = "top"
)

type HorizontalCol string

const (
	ColLeft   HorizontalCol = "left"
	ColCenter HorizontalCol = "center"
	ColRight  HorizontalCol = "right"
)

// Instruction is the sole output record of the pipeline: everything a
// presentation surface needs to paint one cue at one tick. Each evaluation
// yields an ordered list that wholesale-replaces the previous one.
type Instruction struct {
	Text string `json:"text"`

	Mode PlacementMode `json:"mode"`

	// anchored placement: point in viewport pixels plus percent translation
	X          float64 `json:"x,omitempty"`
	Y          float64 `json:"y,omitempty"`
	TranslateX float64 `json:"translateX"`
	TranslateY float64 `json:"translateY"`

	// flow placement: edge assignment plus scaled margins in pixels
	Row          VerticalRow   `json:"row,omitempty"`
	Col          HorizontalCol `json:"col,omitempty"`
	MarginLeft   float64       `json:"marginLeft,omitempty"`
	MarginRight  float64       `json:"marginRight,omitempty"`
	MarginBottom float64       `json:"marginBottom,omitempty"`
	MarginTop    float64       `json:"marginTop,omitempty"`

	FontName string  `json:"fontName"`
	FontSize float64 `json:"fontSize"`
	Bold     bool    `json:"bold,omitempty"`
	Italic   bool    `json:"italic,omitempty"`

	Color        subtitle.RGBA `json:"color"`
	OutlineColor subtitle.RGBA `json:"outlineColor"`
	BackColor    subtitle.RGBA `json:"backColor"`

	OutlineWidth float64 `json:"outlineWidth"`
	ShadowDepth  float64 `json:"shadowDepth"`
	Blur         float64 `json:"blur,omitempty"`

	Opacity float64 `json:"opacity"`

	RotationX float64 `json:"rotationX,omitempty"`
	RotationY float64 `json:"rotationY,omitempty"`
	RotationZ float64 `json:"rotationZ,omitempty"`
}

// viewport content box in pixels
type Viewport struct {
	Width  float64
	Height float64
}
