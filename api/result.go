// File: api/result.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Closed outcome taxonomy shared by every socket operation.

package api

// Result is the outcome of a socket operation. The set is closed: every native
// error is translated into one of these kinds, with ResultUnknown as the catch-all.
type Result uint8

const (
	ResultSuccess Result = iota
	ResultUnknown
	ResultLibraryNotInitialized
	ResultBlocking
	ResultMaxSocketsReached
	ResultNotASocket
	ResultWouldBlock
	ResultConnectionRefused
	ResultInvalidAddress
	ResultInvalidFileDescriptor
	ResultAccessDenied
	ResultSocketAlreadyInUse
	ResultNoFreePort
	ResultInProgress
	ResultAlreadyConnected
	ResultTimedOut
	ResultConnectionAborted
	ResultNotListeningOrNotConnected
	ResultNoFreeFileDescriptors
	ResultNoFreeFiles
	ResultSocketReset
	ResultConnectionClosed
	ResultNotValidAddressFamily
	ResultNotEnoughSpace
	ResultNetworkSubsystemFailed
	ResultInvalidInputParam
	ResultPlatformNotSupported
	ResultTooLongMsgNotSent
	ResultFail
	ResultInvalidProtocol
	ResultNoMemory
	ResultNoNetwork
	ResultBlockingCanceled
	ResultNetUnreachable
	ResultBufferTooSmall
	ResultNameServerFail
	ResultNoName
	ResultAddressFamilyUnsupported
	ResultNameResolutionFailure

	resultCount
)

var resultNames = [resultCount]string{
	ResultSuccess:                    "SUCCESS",
	ResultUnknown:                    "UNKNOWN",
	ResultLibraryNotInitialized:      "LIBRARY_NOT_INITIALIZED",
	ResultBlocking:                   "BLOCKING",
	ResultMaxSocketsReached:          "MAX_SOCKETS_REACHED",
	ResultNotASocket:                 "NOT_A_SOCKET",
	ResultWouldBlock:                 "WOULD_BLOCK",
	ResultConnectionRefused:          "CONNECTION_REFUSED",
	ResultInvalidAddress:             "INVALID_ADDRESS",
	ResultInvalidFileDescriptor:      "INVALID_FILE_DESCRIPTOR",
	ResultAccessDenied:               "ACCESS_DENIED",
	ResultSocketAlreadyInUse:         "SOCKET_ALREADY_IN_USE",
	ResultNoFreePort:                 "NO_FREE_PORT",
	ResultInProgress:                 "IN_PROGRESS",
	ResultAlreadyConnected:           "ALREADY_CONNECTED",
	ResultTimedOut:                   "TIMEDOUT",
	ResultConnectionAborted:          "CONNECTION_ABORTED",
	ResultNotListeningOrNotConnected: "NOT_LISTENING_OR_NOT_CONNECTED",
	ResultNoFreeFileDescriptors:      "NO_FREE_FILE_DESCRIPTORS",
	ResultNoFreeFiles:                "NO_FREE_FILES",
	ResultSocketReset:                "SOCKET_RESET",
	ResultConnectionClosed:           "CONNECTION_CLOSED",
	ResultNotValidAddressFamily:      "NOT_VALID_ADDRESS_FAMILY",
	ResultNotEnoughSpace:             "NOT_ENOUGH_SPACE",
	ResultNetworkSubsystemFailed:     "NETWORK_SUBSYSTEM_FAILED",
	ResultInvalidInputParam:          "INVALID_INPUT_PARAM",
	ResultPlatformNotSupported:       "PLATFORM_NOT_SUPPORTED",
	ResultTooLongMsgNotSent:          "TOO_LONG_MSG_NOT_SENT",
	ResultFail:                       "FAIL",
	ResultInvalidProtocol:            "INVALID_PROTOCOL",
	ResultNoMemory:                   "NO_MEMORY",
	ResultNoNetwork:                  "NO_NETWORK",
	ResultBlockingCanceled:           "BLOCKING_CANCELED",
	ResultNetUnreachable:             "NET_UNREACHABLE",
	ResultBufferTooSmall:             "BUFFER_TOO_SMALL",
	ResultNameServerFail:             "NAME_SERVER_FAIL",
	ResultNoName:                     "NO_NAME",
	ResultAddressFamilyUnsupported:   "ADDRESS_FAMILY_UNSUPPORTED",
	ResultNameResolutionFailure:      "NAME_RESOLUTION_FAILURE",
}

// String returns the stable upper-case name of the result.
func (r Result) String() string {
	if r < resultCount {
		return resultNames[r]
	}
	return "INTERNAL_ERROR"
}

// Error implements the error interface so a Result can be returned directly.
func (r Result) Error() string {
	return "socket: " + r.String()
}

// Valid reports whether r is a member of the closed set.
func (r Result) Valid() bool {
	return r < resultCount
}

// Results lists every defined result, Success first.
func Results() []Result {
	out := make([]Result, 0, resultCount)
	for r := ResultSuccess; r < resultCount; r++ {
		out = append(out, r)
	}
	return out
}
