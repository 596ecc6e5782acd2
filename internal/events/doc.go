// Package events lets services announce booking changes without knowing who
// listens. Handlers are observers: an emitter reports their errors, but a
// failed observer never undoes the change that produced the event.
package events
