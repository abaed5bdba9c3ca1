//go:build windows

// File: internal/platform/translate_windows.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Winsock error codes. x/sys/windows does not export all of them, so the
// numeric values from winerror.h are declared here.

package platform

import (
	"syscall"

	"github.com/momentics/hioload-net/api"
)

const (
	errInvalidHandle   syscall.Errno = 6
	errNotEnoughMemory syscall.Errno = 8
	wsaEINTR           syscall.Errno = 10004
	wsaEBADF           syscall.Errno = 10009
	wsaEACCES          syscall.Errno = 10013
	wsaEFAULT          syscall.Errno = 10014
	wsaEINVAL          syscall.Errno = 10022
	wsaEMFILE          syscall.Errno = 10024
	wsaEWOULDBLOCK     syscall.Errno = 10035
	wsaEINPROGRESS     syscall.Errno = 10036
	wsaEALREADY        syscall.Errno = 10037
	wsaENOTSOCK        syscall.Errno = 10038
	wsaEDESTADDRREQ    syscall.Errno = 10039
	wsaEMSGSIZE        syscall.Errno = 10040
	wsaEPROTOTYPE      syscall.Errno = 10041
	wsaENOPROTOOPT     syscall.Errno = 10042
	wsaEPROTONOSUPPORT syscall.Errno = 10043
	wsaESOCKTNOSUPPORT syscall.Errno = 10044
	wsaEOPNOTSUPP      syscall.Errno = 10045
	wsaEPFNOSUPPORT    syscall.Errno = 10046
	wsaEAFNOSUPPORT    syscall.Errno = 10047
	wsaEADDRINUSE      syscall.Errno = 10048
	wsaEADDRNOTAVAIL   syscall.Errno = 10049
	wsaENETDOWN        syscall.Errno = 10050
	wsaENETUNREACH     syscall.Errno = 10051
	wsaENETRESET       syscall.Errno = 10052
	wsaECONNABORTED    syscall.Errno = 10053
	wsaECONNRESET      syscall.Errno = 10054
	wsaENOBUFS         syscall.Errno = 10055
	wsaEISCONN         syscall.Errno = 10056
	wsaENOTCONN        syscall.Errno = 10057
	wsaESHUTDOWN       syscall.Errno = 10058
	wsaETIMEDOUT       syscall.Errno = 10060
	wsaECONNREFUSED    syscall.Errno = 10061
	wsaEHOSTDOWN       syscall.Errno = 10064
	wsaEHOSTUNREACH    syscall.Errno = 10065
	wsaEPROCLIM        syscall.Errno = 10067
	wsaSYSNOTREADY     syscall.Errno = 10091
	wsaVERNOTSUPPORTED syscall.Errno = 10092
	wsaNOTINITIALISED  syscall.Errno = 10093
	wsaEDISCON         syscall.Errno = 10101
	wsaHOST_NOT_FOUND  syscall.Errno = 11001
	wsaTRY_AGAIN       syscall.Errno = 11002
	wsaNO_RECOVERY     syscall.Errno = 11003
	wsaNO_DATA         syscall.Errno = 11004
)

var errnoTable = map[syscall.Errno]api.Result{
	errInvalidHandle:   api.ResultInvalidFileDescriptor,
	errNotEnoughMemory: api.ResultNoMemory,
	wsaEINTR:           api.ResultBlockingCanceled,
	wsaEBADF:           api.ResultInvalidFileDescriptor,
	wsaEACCES:          api.ResultAccessDenied,
	wsaEFAULT:          api.ResultInvalidInputParam,
	wsaEINVAL:          api.ResultNotListeningOrNotConnected,
	wsaEMFILE:          api.ResultMaxSocketsReached,
	wsaEWOULDBLOCK:     api.ResultWouldBlock,
	wsaEINPROGRESS:     api.ResultInProgress,
	wsaEALREADY:        api.ResultInProgress,
	wsaENOTSOCK:        api.ResultNotASocket,
	wsaEDESTADDRREQ:    api.ResultInvalidAddress,
	wsaEMSGSIZE:        api.ResultTooLongMsgNotSent,
	wsaEPROTOTYPE:      api.ResultInvalidProtocol,
	wsaENOPROTOOPT:     api.ResultInvalidProtocol,
	wsaEPROTONOSUPPORT: api.ResultInvalidProtocol,
	wsaESOCKTNOSUPPORT: api.ResultInvalidProtocol,
	wsaEOPNOTSUPP:      api.ResultInvalidProtocol,
	wsaEPFNOSUPPORT:    api.ResultNotValidAddressFamily,
	wsaEAFNOSUPPORT:    api.ResultNotValidAddressFamily,
	wsaEADDRINUSE:      api.ResultSocketAlreadyInUse,
	wsaEADDRNOTAVAIL:   api.ResultInvalidAddress,
	wsaENETDOWN:        api.ResultNetworkSubsystemFailed,
	wsaENETUNREACH:     api.ResultNetUnreachable,
	wsaENETRESET:       api.ResultSocketReset,
	wsaECONNABORTED:    api.ResultConnectionAborted,
	wsaECONNRESET:      api.ResultSocketReset,
	wsaENOBUFS:         api.ResultNoMemory,
	wsaEISCONN:         api.ResultAlreadyConnected,
	wsaENOTCONN:        api.ResultConnectionClosed,
	wsaESHUTDOWN:       api.ResultConnectionClosed,
	wsaETIMEDOUT:       api.ResultTimedOut,
	wsaECONNREFUSED:    api.ResultConnectionRefused,
	wsaEHOSTDOWN:       api.ResultNetUnreachable,
	wsaEHOSTUNREACH:    api.ResultNetUnreachable,
	wsaEPROCLIM:        api.ResultMaxSocketsReached,
	wsaSYSNOTREADY:     api.ResultNetworkSubsystemFailed,
	wsaVERNOTSUPPORTED: api.ResultPlatformNotSupported,
	wsaNOTINITIALISED:  api.ResultLibraryNotInitialized,
	wsaEDISCON:         api.ResultConnectionClosed,
	wsaHOST_NOT_FOUND:  api.ResultNoName,
	wsaTRY_AGAIN:       api.ResultNameServerFail,
	wsaNO_RECOVERY:     api.ResultNameResolutionFailure,
	wsaNO_DATA:         api.ResultNoName,
}
