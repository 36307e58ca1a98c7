package common

const (
	BaseWidth  = 1280
	BaseHeight = 720

	// TPS is the fixed update rate; every system steps by 1/TPS seconds.
	TPS = 60
)
