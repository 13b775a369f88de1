// Package pixel implements the monochrome color and page-addressed image types
// used to model SSD1306 display RAM.
//
// The types are compatible with Go's native [color.Color] and [image.Image] /
// [draw.Image] interfaces.
package pixel
