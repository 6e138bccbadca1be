//go:build tinygo

package eeprom

import "tinygo.org/x/drivers/at24cx"

// at24cxRegion adapts an AT24Cx-family I2C EEPROM to the Region
// interface. The device's own WriteAt/ReadAt handle page boundaries.
type at24cxRegion struct {
	dev  *at24cx.Device
	size int64
}

// AT24CX returns a Region over the first size bytes of dev. The device
// must already be configured.
func AT24CX(dev *at24cx.Device, size int64) Region {
	return &at24cxRegion{dev: dev, size: size}
}

func (r *at24cxRegion) ReadAt(p []byte, off int64) (int, error) {
	return r.dev.ReadAt(p, off)
}

func (r *at24cxRegion) WriteAt(p []byte, off int64) (int, error) {
	return r.dev.WriteAt(p, off)
}

func (r *at24cxRegion) Size() int64 {
	return r.size
}
