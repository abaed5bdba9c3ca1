// File: internal/platform/doc.go
// Package platform
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Native socket backends for hioload-net. Each supported OS family has one
// api.Backend implementation selected by build tags (unix: linux, darwin and
// the BSDs; windows: ws2_32; everything else: a stub that reports
// ResultPlatformNotSupported). The native error spaces of each platform are
// translated here into the closed api.Result taxonomy.
package platform
