//go:build !unix

package main

import "os"

// notifyResize is a no-op where the platform has no resize signal; --watch
// still redraws once and exits on interrupt.
func notifyResize(ch chan<- os.Signal) {}
