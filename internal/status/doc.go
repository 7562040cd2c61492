// Package status implements the notification area for a notebook frontend:
// named widgets with severity styling and auto-clear timers, a registry that
// owns them, and an event router that translates kernel and document
// lifecycle events into widget updates, modal dialogs, indicator icons, and
// window title changes.
package status
