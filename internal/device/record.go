package device

import (
	"errors"
	"fmt"
	"strings"

	"github.com/junglivre/nomoject/internal/regstore"
)

// DefaultRoot is where Windows enumerates PCI devices, relative to HKLM.
const DefaultRoot = `SYSTEM\CurrentControlSet\Enum\PCI`

// Value names read from each instance key.
const (
	ValueCapabilities = "Capabilities"
	ValueDeviceDesc   = "DeviceDesc"
)

// CapabilityRemovable marks a device the shell offers to eject.
// CapabilityHidden is what a generated artifact writes instead.
const (
	CapabilityRemovable = 6
	CapabilityHidden    = 2
)

// descDelimiter separates the INF reference from the display label in
// DeviceDesc, e.g. "@oem12.inf,%desc%;Intel SATA Controller".
const descDelimiter = ";"

// Record is one removable device found by a scan.
type Record struct {
	Path        string `json:"path"`
	Description string `json:"description"`
	VendorKey   string `json:"vendor_key"`
	InstanceKey string `json:"instance_key"`
}

// NewRecord builds a record for the instance key root\vendor\instance.
func NewRecord(root, vendor, instance, deviceDesc string) Record {
	return Record{
		Path:        regstore.JoinPath(root, vendor, instance),
		Description: TrimDescription(deviceDesc),
		VendorKey:   vendor,
		InstanceKey: instance,
	}
}

// TrimDescription keeps only the text after the last ';'.
func TrimDescription(desc string) string {
	if i := strings.LastIndex(desc, descDelimiter); i >= 0 {
		return desc[i+1:]
	}
	return desc
}

// AccessError reports that the scan root could not be opened.
type AccessError struct {
	Root string
	Err  error
}

func (e *AccessError) Error() string {
	return fmt.Sprintf("failed to access registry key %s\\%s: %v", regstore.HiveLocalMachine, e.Root, e.Err)
}

func (e *AccessError) Unwrap() error {
	return e.Err
}

// errDataGap marks an instance key missing a value the scan needs. It never
// leaves this package.
var errDataGap = errors.New("device entry is missing an expected value")
