// Package x11 is the X Window System driver. It speaks the X protocol
// directly through github.com/BurntSushi/xgb, so it needs no C libraries.
//
// Each X screen is a device and each TrueColor or DirectColor visual of a
// screen is a pixel format. Importing the package registers the driver on
// Unix-like systems.
package x11
