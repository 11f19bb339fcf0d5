// SPDX-License-Identifier: MIT

package transform

import "strconv"

// axisDelta is the angle change produced by a reflection along each axis.
type axisDelta struct {
	row, column int
}

// symmetricShapes keep angle 0 under any reflection.
var symmetricShapes = map[string]struct{}{
	"circle":  {},
	"diamond": {},
	"plus":    {},
	"square":  {},
}

// angleTables maps shape -> starting angle -> delta per axis.
var angleTables = map[string]map[int]axisDelta{
	"pac-man": {
		0:   {row: 180, column: 0},
		45:  {row: 90, column: 270},
		90:  {row: 0, column: 180},
		135: {row: -90, column: 90},
		180: {row: -180, column: 0},
		225: {row: 90, column: -90},
		270: {row: 0, column: -180},
		315: {row: -90, column: -270},
	},
	"right triangle": {
		0:   {row: -90, column: 90},
		90:  {row: 90, column: -90},
		180: {row: -90, column: 90},
		270: {row: 90, column: -90},
	},
}

// shapeAliases folds spelling variants found in problem files.
var shapeAliases = map[string]string{
	"pacman":         "pac-man",
	"right-triangle": "right triangle",
}

type alignmentPair struct {
	row, column string
}

var alignmentTable = map[string]alignmentPair{
	"none":         {row: "none", column: "none"},
	"top":          {row: "top", column: "bottom"},
	"bottom":       {row: "bottom", column: "top"},
	"left":         {row: "right", column: "left"},
	"right":        {row: "left", column: "right"},
	"top-left":     {row: "top-right", column: "bottom-left"},
	"top-right":    {row: "top-left", column: "bottom-right"},
	"bottom-left":  {row: "bottom-right", column: "top-left"},
	"bottom-right": {row: "bottom-left", column: "top-right"},
}

// ReflectAngle returns the angle of shape after reflecting it along dir.
// The result is normalized to [0,360).
func ReflectAngle(shape string, angle int, dir Direction) (int, error) {
	if err := dir.Validate(); err != nil {
		return 0, err
	}
	if alias, ok := shapeAliases[shape]; ok {
		shape = alias
	}
	if _, ok := symmetricShapes[shape]; ok {
		return 0, nil
	}
	table, ok := angleTables[shape]
	if !ok {
		return 0, &MissingMappingError{Table: "angle", Shape: shape, Key: strconv.Itoa(angle), Direction: dir}
	}
	delta, ok := table[angle]
	if !ok {
		return 0, &MissingMappingError{Table: "angle", Shape: shape, Key: strconv.Itoa(angle), Direction: dir}
	}
	d := delta.row
	if dir == Column {
		d = delta.column
	}

	return normalizeAngle(angle + d), nil
}

// ReflectAlignment returns the alignment after reflecting it along dir.
func ReflectAlignment(alignment string, dir Direction) (string, error) {
	if err := dir.Validate(); err != nil {
		return "", err
	}
	pair, ok := alignmentTable[alignment]
	if !ok {
		return "", &MissingMappingError{Table: "alignment", Key: alignment, Direction: dir}
	}
	if dir == Column {
		return pair.column, nil
	}

	return pair.row, nil
}

func normalizeAngle(a int) int {
	return ((a % 360) + 360) % 360
}
