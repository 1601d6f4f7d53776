//go:build windows

package main

import "image"

// iconToBytes encodes an image as ICO for the Windows systray, which loads
// icons through LoadImage and rejects bare PNG data.
func iconToBytes(img image.Image) ([]byte, error) {
	return encodeICO(img)
}
