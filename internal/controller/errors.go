package controller

import "errors"

// ErrInFlight rejects a submission attempted while another one is
// still running.
var ErrInFlight = errors.New("a submission is already in flight")
