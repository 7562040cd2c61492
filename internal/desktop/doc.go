// Package desktop mirrors status area alerts to the desktop notification
// daemon over D-Bus. Only sticky warnings and dangers are forwarded, with
// rate limiting so a reconnect storm cannot flood the desktop.
package desktop
