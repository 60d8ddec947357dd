// Package exportsvg renders a boxen panel layout to SVG, outside the core
// engine's import graph: it consumes a Snapshot and a SheetLayout and
// produces a cutting drawing, exactly as a CAM/laser-cutter front end would,
// in the manner of the Turtle.OutputSVG helper found elsewhere in this
// ecosystem.
package exportsvg
