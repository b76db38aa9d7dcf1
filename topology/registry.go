// Package topology assigns sysex addresses to discovered devices.
//
// The host addresses each device on the ring by a 7-bit topology index with
// bit 6 reserved, leaving 64 usable slots. Discovery hands the registry
// device serial numbers; the registry hashes them to stable 64-bit IDs and
// hands back the index to put in the packet header.
package topology

import (
	"errors"
	"fmt"

	"github.com/gridlink/gridlink/internal/hash"
	"github.com/gridlink/gridlink/protocol"
)

// ErrFull is returned by Assign when all 64 topology indices are taken.
var ErrFull = errors.New("topology: no free device index")

// DeviceID converts a device serial number to its 64-bit hash identifier.
// The same serial always produces the same ID, so hosts can recognise a
// device across reconnects without keeping the serial string around.
func DeviceID(serial string) uint64 {
	return hash.ID(serial)
}

// Registry maps discovered devices to topology indices.
//
// A Registry belongs to one connection and is not safe for concurrent use;
// discovery is a single-threaded affair.
type Registry struct {
	byID    map[uint64]protocol.TopologyIndex
	serials map[uint64]string
	next    protocol.TopologyIndex
}

// NewRegistry creates an empty registry. Index 0 is conventionally the
// master device, so the first assigned serial becomes the master.
func NewRegistry() *Registry {
	return &Registry{
		byID:    make(map[uint64]protocol.TopologyIndex),
		serials: make(map[uint64]string),
	}
}

// Assign returns the topology index for the given serial, allocating the
// next free index for serials seen for the first time. It returns ErrFull
// when the 0-63 index space is exhausted.
func (r *Registry) Assign(serial string) (protocol.TopologyIndex, error) {
	id := hash.ID(serial)
	if idx, ok := r.byID[id]; ok {
		if prev := r.serials[id]; prev != serial {
			// Two serials hashing to one ID would cross-address devices.
			return 0, fmt.Errorf("topology: device ID collision between %q and %q", prev, serial)
		}

		return idx, nil
	}

	if int(r.next) > protocol.MaxTopologyIndex {
		return 0, ErrFull
	}

	idx := r.next
	r.byID[id] = idx
	r.serials[id] = serial
	r.next++

	return idx, nil
}

// Lookup returns the index previously assigned to serial.
func (r *Registry) Lookup(serial string) (protocol.TopologyIndex, bool) {
	idx, ok := r.byID[hash.ID(serial)]
	return idx, ok
}

// Len returns the number of registered devices.
func (r *Registry) Len() int {
	return len(r.byID)
}
