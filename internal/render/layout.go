package render

import (
	"github.com/Lakunake/web-subtitle-renderer/internal/subtitle"
)

// Alignment codes follow the numeric-keypad layout: rows 1-3, 4-6 and 7-9 map
// to bottom, middle and top; within a row the columns run left, center, right.

func alignmentRow(align int) VerticalRow {
	switch {
	case align >= 7:
		return RowTop
	case align >= 4:
		return RowMiddle
	default:
		return RowBottom
	}
}

func alignmentCol(align int) HorizontalCol {
	switch align {
	case 1, 4, 7:
		return ColLeft
	case 3, 6, 9:
		return ColRight
	default:
		return ColCenter
	}
}

// AnchorTranslation returns the percent translation that makes a point the
// alignment anchor of an element: alignment 7 (top-left) keeps the element
// at the point, alignment 5 centers it with translate(-50%,-50%).
func AnchorTranslation(align int) (float64, float64) {
	var tx float64
	switch alignmentCol(align) {
	case ColLeft:
		tx = 0
	case ColCenter:
		tx = -50
	case ColRight:
		tx = -100
	}

	var ty float64
	switch alignmentRow(align) {
	case RowTop:
		ty = 0
	case RowMiddle:
		ty = -50
	case RowBottom:
		ty = -100
	}

	return tx, ty
}

// Layout computes the geometry of one cue for the given viewport. pos is the
// cue's current position in authoring coordinates when an explicit \pos or
// \move override applies; nil selects flow placement along viewport edges.
// Styling fields of the returned instruction are filled from rs; opacity is
// left at 1 for the animation pass to adjust.
func Layout(vp Viewport, info subtitle.ScriptInfo, rs ResolvedStyle, text string, pos *subtitle.Position, rot *subtitle.Rotation) Instruction {
	scaleX, scaleY := info.ScaleTo(vp.Width, vp.Height)

	inst := Instruction{
		Text:         text,
		FontName:     rs.FontName,
		FontSize:     rs.FontSize * scaleY,
		Bold:         rs.Bold,
		Italic:       rs.Italic,
		Color:        rs.Color,
		OutlineColor: rs.OutlineColor,
		BackColor:    rs.BackColor,
		OutlineWidth: rs.OutlineWidth * scaleY,
		ShadowDepth:  rs.ShadowDepth * scaleY,
		Blur:         rs.Blur,
		Opacity:      1,
	}
	if rot != nil {
		inst.RotationX = rot.X
		inst.RotationY = rot.Y
		inst.RotationZ = rot.Z
	}

	if pos != nil {
		inst.Mode = PlacementAnchored
		inst.X = pos.X * scaleX
		inst.Y = pos.Y * scaleY
		inst.TranslateX, inst.TranslateY = AnchorTranslation(rs.Alignment)
		return inst
	}

	inst.Mode = PlacementFlow
	inst.Row = alignmentRow(rs.Alignment)
	inst.Col = alignmentCol(rs.Alignment)

	switch inst.Row {
	case RowTop:
		inst.MarginTop = rs.MarginV * scaleY
	case RowBottom:
		inst.MarginBottom = rs.MarginV * scaleY
	}

	switch inst.Col {
	case ColLeft:
		inst.MarginLeft = rs.MarginL * scaleX
	case ColRight:
		inst.MarginRight = rs.MarginR * scaleX
	case ColCenter:
		// full width with symmetric padding keeps centering stable
		inst.MarginLeft = rs.MarginL * scaleX
		inst.MarginRight = rs.MarginR * scaleX
	}

	return inst
}
