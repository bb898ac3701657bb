// Package model provides the shared geometric value types used across the
// screentext library.
//
// Screen coordinates follow the usual convention: the origin is the top-left
// corner of the screen and Y grows downward. All coordinates are absolute
// screen positions unless a function documents otherwise.
//
//   - [Point] - 2D screen coordinate with distance calculation
//   - [Rect] - screen region with intersection, union, and scaling
package model
