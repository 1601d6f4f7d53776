// Package compositor builds application icons from a base image, an
// optional color overlay and an optional corner text badge.
//
// All operations are synchronous and keep no state between calls. Buffers
// are *image.NRGBA with straight alpha.
package compositor
