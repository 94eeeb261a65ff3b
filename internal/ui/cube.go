package ui

import (
	"math"
	"strings"

	"github.com/zft5024/manus-aicad/internal"
)

// cubeVertices are the corners of a unit cube centered on the origin.
var cubeVertices = [8][3]float64{
	{-1, -1, -1}, {1, -1, -1}, {1, 1, -1}, {-1, 1, -1},
	{-1, -1, 1}, {1, -1, 1}, {1, 1, 1}, {-1, 1, 1},
}

// cubeEdges index pairs into cubeVertices.
var cubeEdges = [12][2]int{
	{0, 1}, {1, 2}, {2, 3}, {3, 0},
	{4, 5}, {5, 6}, {6, 7}, {7, 4},
	{0, 4}, {1, 5}, {2, 6}, {3, 7},
}

// RenderCube draws an orthographic wireframe projection of a cube into a
// w-by-h character grid, applying the transform's rotation and zoom. This
// is presentation only; there is no geometry behind it.
func RenderCube(vt internal.ViewTransform, w, h int) string {
	if w < 3 || h < 3 {
		return ""
	}

	grid := make([][]rune, h)
	for i := range grid {
		grid[i] = make([]rune, w)
		for j := range grid[i] {
			grid[i][j] = ' '
		}
	}

	rx := vt.RotX * math.Pi / 180
	ry := vt.RotY * math.Pi / 180
	// Terminal cells are roughly twice as tall as wide.
	scale := vt.Zoom * float64(min(w/2, h)) / 3.2

	var pts [8][2]int
	for i, v := range cubeVertices {
		x, y, z := v[0], v[1], v[2]

		// Rotate around Y, then X. The projection is orthographic, so
		// the depth after the second rotation is never needed.
		x, z = x*math.Cos(ry)+z*math.Sin(ry), -x*math.Sin(ry)+z*math.Cos(ry)
		y = y*math.Cos(rx) - z*math.Sin(rx)

		pts[i][0] = w/2 + int(math.Round(x*scale*2))
		pts[i][1] = h/2 + int(math.Round(y*scale))
	}

	for _, e := range cubeEdges {
		drawLine(grid, pts[e[0]][0], pts[e[0]][1], pts[e[1]][0], pts[e[1]][1])
	}
	for _, p := range pts {
		plot(grid, p[0], p[1], '+')
	}

	lines := make([]string, h)
	for i, row := range grid {
		lines[i] = string(row)
	}
	return strings.Join(lines, "\n")
}

// drawLine rasterizes a segment with Bresenham's algorithm.
func drawLine(grid [][]rune, x0, y0, x1, y1 int) {
	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	err := dx + dy

	for {
		plot(grid, x0, y0, '.')
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

func plot(grid [][]rune, x, y int, c rune) {
	if y < 0 || y >= len(grid) || x < 0 || x >= len(grid[y]) {
		return
	}
	grid[y][x] = c
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
