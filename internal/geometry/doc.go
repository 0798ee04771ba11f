// Package geometry holds the value types consumed by the transform engine:
// crop rectangles and colours.
//
// Coordinates are 0-based with the origin at the top-left corner; X grows
// rightward and Y grows downward. Rectangles returned by Clamp follow the
// image.Rectangle convention (Min inclusive, Max exclusive).
package geometry
