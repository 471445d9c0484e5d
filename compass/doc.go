// Package compass provides the four-way Direction type and integer grid
// Points used by every other roomtopo package.
//
// What:
//
//   - Direction is one of North, East, South, West.
//   - Left, Right and Backward are pure 90°/180° rotations, closed under
//     composition (four Rights are the identity).
//   - Translate moves a Point one cell in a Direction.
//
// Coordinates:
//
//	X grows East, Y grows South (row-major, Y is the row index).
//
//	        North (0,-1)
//	West (-1,0)  ·  East (1,0)
//	        South (0,1)
//
// Complexity: every operation is O(1).
package compass
