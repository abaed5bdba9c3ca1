// Package api
// Author: momentics <momentics@gmail.com>
//
// Result classification and error interop helpers.

package api

import "errors"

// Class groups results by how a caller is expected to react to them.
type Class int

const (
	ClassNone Class = iota
	// ClassValidation covers bad input detected before any syscall. Never retry.
	ClassValidation
	// ClassTransient covers conditions the caller should poll or retry on.
	ClassTransient
	// ClassResourceExhaustion covers descriptor, memory and port exhaustion.
	ClassResourceExhaustion
	// ClassPeer covers failures terminal for the handle; close and maybe reopen.
	ClassPeer
	// ClassCapabilityGap means the platform lacks the feature. Not a program error.
	ClassCapabilityGap
	// ClassUnknown is everything the translator did not recognise.
	ClassUnknown
)

func (c Class) String() string {
	switch c {
	case ClassNone:
		return "none"
	case ClassValidation:
		return "validation"
	case ClassTransient:
		return "transient"
	case ClassResourceExhaustion:
		return "resource-exhaustion"
	case ClassPeer:
		return "peer"
	case ClassCapabilityGap:
		return "capability-gap"
	default:
		return "unknown"
	}
}

// Class returns the handling class of r.
func (r Result) Class() Class {
	switch r {
	case ResultSuccess:
		return ClassNone
	case ResultNotASocket, ResultInvalidAddress, ResultInvalidFileDescriptor,
		ResultNotValidAddressFamily, ResultInvalidInputParam, ResultInvalidProtocol,
		ResultBufferTooSmall, ResultAlreadyConnected, ResultNotListeningOrNotConnected,
		ResultSocketAlreadyInUse, ResultAccessDenied, ResultTooLongMsgNotSent,
		ResultAddressFamilyUnsupported, ResultNoName, ResultLibraryNotInitialized:
		return ClassValidation
	case ResultWouldBlock, ResultInProgress, ResultTimedOut, ResultBlocking,
		ResultBlockingCanceled, ResultNameServerFail:
		return ClassTransient
	case ResultMaxSocketsReached, ResultNoFreePort, ResultNoFreeFileDescriptors,
		ResultNoFreeFiles, ResultNoMemory, ResultNotEnoughSpace:
		return ClassResourceExhaustion
	case ResultConnectionRefused, ResultConnectionAborted, ResultSocketReset,
		ResultConnectionClosed, ResultNetUnreachable, ResultNoNetwork,
		ResultNetworkSubsystemFailed, ResultNameResolutionFailure, ResultFail:
		return ClassPeer
	case ResultPlatformNotSupported:
		return ClassCapabilityGap
	default:
		return ClassUnknown
	}
}

// Pending reports whether r signals an operation still in flight on a
// non-blocking handle. Poll for readiness to learn completion.
func (r Result) Pending() bool {
	return r == ResultWouldBlock || r == ResultInProgress
}

// Temporary reports whether retrying or polling can make the operation succeed.
func (r Result) Temporary() bool {
	return r.Class() == ClassTransient
}

// ResultOf extracts the Result carried by err. nil is ResultSuccess, errors
// that carry no Result are ResultUnknown.
func ResultOf(err error) Result {
	if err == nil {
		return ResultSuccess
	}
	var r Result
	if errors.As(err, &r) {
		return r
	}
	return ResultUnknown
}

// Err converts r to an error value, nil for ResultSuccess.
func (r Result) Err() error {
	if r == ResultSuccess {
		return nil
	}
	return r
}
