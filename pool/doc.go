// Package pool
// Author: momentics <momentics@gmail.com>
//
// Reusable byte buffers for socket read and write paths, so a server loop
// does not allocate a fresh buffer per readiness event.
package pool
