// Package raster draws a scene tree into an RGBA image on the CPU.
//
// World space is y-up; the image is y-down, so the top of the scene's
// bounding box becomes row 0. Glyph sprites whose font can provide an
// x/image face are drawn with it; every other glyph, sprite and polygon
// is drawn as a filled shape in its node's color and opacity.
//
// Image textures are not loaded. A sprite with an image texture is filled
// with a flat color chosen per image name (see WithImageColor).
package raster
