package storage

const (
	KeySerialNumber = "serial_number" // string
	KeyProductName  = "product_name"  // string, raw hardware identifier
	KeyModel        = "model"         // string, resolved display name
	KeyModelFamily  = "model_family"  // string
	KeyCPU          = "cpu"           // string
	KeySimulator    = "simulator"     // bool
	KeyUnknownModel = "unknown_model" // bool
	KeyDeviceName   = "device_name"   // string
	KeyOSVersion    = "os_version"    // string
	KeyBuildVersion = "build_version" // string
	KeyUDID         = "udid"          // string
	KeyLastSource   = "last_source"   // string
	KeyModified     = "modified"      // time.Time
)
