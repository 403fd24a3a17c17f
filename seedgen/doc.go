// Package seedgen deterministically places N seeds over an image without
// any interactive UI, for the CLI's -a/--automatic flag. Placement order
// is fixed: the center first, then the four quarter-centroids, then the
// four mid-edge points, filling the nine-position
// {center, 4 quarter-centroids, 4 mid-edges} set in that order.
package seedgen
