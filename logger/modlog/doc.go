// Package modlog decorates a logger engine with per-module log level
// ceilings, so subsystems of a firmware image can be silenced or made
// verbose independently beneath one global ceiling.
package modlog
