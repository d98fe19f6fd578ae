package gotenberg

import "errors"

// Sentinel errors returned by [Client.Convert].
var (
	// ErrServiceDown is returned when the health probe reports the service
	// as down. No conversion request is sent in that case.
	ErrServiceDown = errors.New("gotenberg: service is down")

	// ErrTransport wraps a transport-level fault (connection refused,
	// timeout, DNS failure) during the conversion request. It is only
	// returned under the [ReportFault] policy.
	ErrTransport = errors.New("gotenberg: transport failure")

	// ErrConversionFailed is returned when the service answers the
	// conversion request with a non-200 status.
	ErrConversionFailed = errors.New("gotenberg: conversion failed")
)
