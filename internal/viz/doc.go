// Package viz renders scan datasets in the terminal.
//
//   - [PlotDataset]: asciigraph |Z| curve with extremum glyphs overlaid
//   - [StaircasePlot]: braille-canvas psi(x) staircase view
//   - [Canvas]: braille pixel surface shared by the chart renderers
package viz
