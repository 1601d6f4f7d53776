//go:build darwin && cgo

package main

// #cgo CFLAGS: -x objective-c
// #cgo LDFLAGS: -framework Cocoa
// #import <Cocoa/Cocoa.h>
//
// void unicon_set_dock_icon(const unsigned char* data, int length) {
//     // Copy before dispatching; the Go buffer may be gone by then.
//     NSData* imgData = [NSData dataWithBytes:data length:length];
//     dispatch_async(dispatch_get_main_queue(), ^{
//         NSImage* img = [[NSImage alloc] initWithData:imgData];
//         if (img) {
//             [[NSApplication sharedApplication] setApplicationIconImage:img];
//         }
//     });
// }
//
// void unicon_reset_dock_icon(void) {
//     dispatch_async(dispatch_get_main_queue(), ^{
//         [[NSApplication sharedApplication] setApplicationIconImage:nil];
//     });
// }
import "C"

import (
	"errors"
	"image"
	"unsafe"
)

// dockInstaller sets the application's Dock tile image. The update runs on
// the main queue, so the process must be running a Cocoa event loop.
type dockInstaller struct{}

func newDockInstaller() (Installer, error) {
	return dockInstaller{}, nil
}

func (dockInstaller) Install(img image.Image) error {
	data, err := encodePNG(img)
	if err != nil {
		return err
	}
	if len(data) == 0 {
		return errors.New("empty dock icon")
	}
	C.unicon_set_dock_icon((*C.uchar)(unsafe.Pointer(&data[0])), C.int(len(data)))
	return nil
}

func (dockInstaller) Reset() error {
	C.unicon_reset_dock_icon()
	return nil
}
