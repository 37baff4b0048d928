// Package board implements the client-side notes board session.
//
// A [Session] owns one [Model] and keeps the presentation in step with it.
// Every model write goes through [Session.SetModel], which compares the new
// value with the current one by identity and re-derives the whole view on
// change. Remote auth-state and note events are translated into model writes,
// and user commands are turned into asynchronous service calls whose results
// come back through the same event loop.
//
// All model access happens on the session's [Loop], so no locking is needed
// around the model itself.
package board
