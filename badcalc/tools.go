//go:build tools

package main

// gogio packages the app for Android, iOS and the browser.
import _ "gioui.org/cmd/gogio"
