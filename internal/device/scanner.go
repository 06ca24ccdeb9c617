// Package device finds PCI devices that Windows lists in its "Safely Remove
// Hardware and Eject Media" menu.
//
// The scan walks two levels below the enumeration root, vendor keys and
// their instance keys, and keeps every instance whose Capabilities value is
// 6. Only a failure to open the root is reported; unreadable branches are
// skipped so a partial result still comes back.
package device

import (
	"fmt"

	"github.com/junglivre/nomoject/internal/logging"
	"github.com/junglivre/nomoject/internal/regstore"
)

// Scanner enumerates removable devices from a registry store.
type Scanner struct {
	store regstore.Store
	root  string
	log   logging.Logger
}

// NewScanner creates a scanner over store. An empty root means DefaultRoot.
func NewScanner(store regstore.Store, root string, log logging.Logger) *Scanner {
	if root == "" {
		root = DefaultRoot
	}
	return &Scanner{store: store, root: root, log: log}
}

// Root returns the key path the scanner starts from.
func (s *Scanner) Root() string {
	return s.root
}

// Scan returns every removable device in enumeration order. The only error
// it returns is an *AccessError.
func (s *Scanner) Scan() ([]Record, error) {
	root, err := s.store.OpenKey(s.root)
	if err != nil {
		return nil, &AccessError{Root: s.root, Err: err}
	}
	defer s.release(root, s.root)

	records := []Record{}
	for vendor, err := range regstore.SubKeys(root) {
		if err != nil {
			s.log.Debugf("stopped enumerating %s: %v", s.root, err)
			break
		}
		found, ok := s.scanVendor(root, vendor)
		records = append(records, found...)
		if !ok {
			break
		}
	}

	s.log.Debugf("scan of %s found %d removable device(s)", s.root, len(records))
	return records, nil
}

// scanVendor collects the records below one vendor key. It reports false
// when the vendor key itself could not be opened, which ends the outer
// enumeration the same way an enumeration fault does.
func (s *Scanner) scanVendor(root regstore.Key, vendor string) ([]Record, bool) {
	vendorPath := regstore.JoinPath(s.root, vendor)
	vk, err := root.OpenSubKey(vendor)
	if err != nil {
		s.log.Debugf("stopped enumerating %s: opening %s: %v", s.root, vendor, err)
		return nil, false
	}
	defer s.release(vk, vendorPath)

	var records []Record
	for instance, err := range regstore.SubKeys(vk) {
		if err != nil {
			s.log.Debugf("stopped enumerating %s: %v", vendorPath, err)
			break
		}
		ik, err := vk.OpenSubKey(instance)
		if err != nil {
			s.log.Debugf("stopped enumerating %s: opening %s: %v", vendorPath, instance, err)
			break
		}
		rec, err := s.readInstance(ik, vendor, instance)
		s.release(ik, regstore.JoinPath(vendorPath, instance))
		if err != nil {
			continue
		}
		if rec != nil {
			records = append(records, *rec)
		}
	}
	return records, true
}

// readInstance returns a record for a removable instance, nil for any other
// device, or an errDataGap wrap when a needed value can't be read.
func (s *Scanner) readInstance(k regstore.Key, vendor, instance string) (*Record, error) {
	caps, err := k.IntegerValue(ValueCapabilities)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", errDataGap, ValueCapabilities, err)
	}
	if caps != CapabilityRemovable {
		return nil, nil
	}
	desc, err := k.StringValue(ValueDeviceDesc)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", errDataGap, ValueDeviceDesc, err)
	}
	rec := NewRecord(s.root, vendor, instance, desc)
	return &rec, nil
}

func (s *Scanner) release(k regstore.Key, path string) {
	if err := k.Close(); err != nil {
		s.log.Debugf("closing %s: %v", path, err)
	}
}
