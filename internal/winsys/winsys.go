//go:build windows

// Package winsys wraps the Windows logical-processor information API
// shared by the topology and cache sources.
package winsys

import (
	"fmt"
	"unsafe"

	"golang.org/x/sys/windows"
)

var (
	kernel32                             = windows.NewLazySystemDLL("kernel32.dll")
	procGetLogicalProcessorInformationEx = kernel32.NewProc("GetLogicalProcessorInformationEx")
)

// Relationship selectors for GetLogicalProcessorInformationEx.
const (
	relationProcessorCore = 0
	relationCache         = 2
)

// groupAffinity mirrors GROUP_AFFINITY.
type groupAffinity struct {
	Mask     uintptr
	Group    uint16
	Reserved [3]uint16
}

// processorRelationship mirrors PROCESSOR_RELATIONSHIP.
type processorRelationship struct {
	Flags           byte
	EfficiencyClass byte
	Reserved        [20]byte
	GroupCount      uint16
	GroupMask       [1]groupAffinity
}

// cacheRelationship mirrors CACHE_RELATIONSHIP.
type cacheRelationship struct {
	Level         byte
	Associativity byte
	LineSize      uint16
	CacheSize     uint32
	Type          uint32
	Reserved      [18]byte
	GroupMask     groupAffinity
}

// infoHeader mirrors the leading fields of
// SYSTEM_LOGICAL_PROCESSOR_INFORMATION_EX; the union payload follows at
// offset 8.
type infoHeader struct {
	Relationship uint32
	Size         uint32
}

// CacheInstance is one cache relationship record.
type CacheInstance struct {
	Level   int
	SizeKiB int
	Mask    uint64
}

// ProcessorCoreMasks returns one logical-processor affinity mask per
// physical-core record. Only the first group of each record is
// consulted, so systems with more than 64 logical processors per group
// are truncated to the first group.
func ProcessorCoreMasks() ([]uint64, error) {
	buf, err := queryRelationship(relationProcessorCore)
	if err != nil {
		return nil, err
	}

	var masks []uint64
	walkRecords(buf, func(relationship uint32, payload unsafe.Pointer) {
		if relationship != relationProcessorCore {
			return
		}
		rel := (*processorRelationship)(payload)
		masks = append(masks, uint64(rel.GroupMask[0].Mask))
	})
	return masks, nil
}

// CacheInstances returns every cache relationship record with its level,
// size in KiB, and sharing mask.
func CacheInstances() ([]CacheInstance, error) {
	buf, err := queryRelationship(relationCache)
	if err != nil {
		return nil, err
	}

	var instances []CacheInstance
	walkRecords(buf, func(relationship uint32, payload unsafe.Pointer) {
		if relationship != relationCache {
			return
		}
		rel := (*cacheRelationship)(payload)
		instances = append(instances, CacheInstance{
			Level:   int(rel.Level),
			SizeKiB: int(rel.CacheSize / 1024),
			Mask:    uint64(rel.GroupMask.Mask),
		})
	})
	return instances, nil
}

// queryRelationship performs the two-call size-then-fill protocol and
// returns the raw record buffer.
func queryRelationship(relationship uint32) ([]byte, error) {
	var length uint32
	ret, _, err := procGetLogicalProcessorInformationEx.Call(
		uintptr(relationship), 0, uintptr(unsafe.Pointer(&length)))
	if ret != 0 {
		return nil, fmt.Errorf("sizing logical processor information: unexpected success")
	}
	if err != windows.ERROR_INSUFFICIENT_BUFFER {
		return nil, fmt.Errorf("sizing logical processor information: %w", err)
	}
	if length == 0 {
		return nil, nil
	}

	buf := make([]byte, length)
	ret, _, err = procGetLogicalProcessorInformationEx.Call(
		uintptr(relationship), uintptr(unsafe.Pointer(&buf[0])), uintptr(unsafe.Pointer(&length)))
	if ret == 0 {
		return nil, fmt.Errorf("querying logical processor information: %w", err)
	}
	return buf[:length], nil
}

// walkRecords iterates the variable-size records in a
// SYSTEM_LOGICAL_PROCESSOR_INFORMATION_EX buffer.
func walkRecords(buf []byte, visit func(relationship uint32, payload unsafe.Pointer)) {
	const headerSize = int(unsafe.Sizeof(infoHeader{}))
	for offset := 0; offset+headerSize <= len(buf); {
		h := (*infoHeader)(unsafe.Pointer(&buf[offset]))
		if h.Size == 0 || offset+int(h.Size) > len(buf) {
			return
		}
		visit(h.Relationship, unsafe.Pointer(&buf[offset+headerSize]))
		offset += int(h.Size)
	}
}
