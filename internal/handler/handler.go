// Package handler is the first layer after the router.
//
// It binds and validates requests through the validation package, calls
// the service layer and shapes the JSON responses (dates rendered as
// "Mon Jan 02 2006").
package handler
