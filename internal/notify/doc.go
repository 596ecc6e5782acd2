// Package notify turns booking events into notifications for the office and
// the customer. Events are queued and handled by a small worker pool so a
// slow Sender never delays an HTTP response; a full queue drops the event.
package notify
