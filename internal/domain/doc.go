// Package domain contains the core model of the livebot launcher.
//
// The domain does not touch the process environment, the filesystem or
// os/exec directly. Interpreter resolution is expressed as strategies over an
// explicit Host; infra adapters provide the real host and run processes.
package domain
