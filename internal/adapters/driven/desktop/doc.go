// Package desktop adapts the user's desktop environment: the default web
// browser and the system clipboard.
package desktop
