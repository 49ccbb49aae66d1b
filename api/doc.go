// Package api
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Public contracts for hioload-ring containers.
// Implementations live in the ring, sorted and pool packages and assert
// compliance at compile time.
package api
