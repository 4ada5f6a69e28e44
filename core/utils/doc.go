// Package utils provides conversion helpers for loosely typed input such as
// query parameters.
package utils
